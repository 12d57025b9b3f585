package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

// AddMonitor inserts a monitor definition and returns its id.
func (db *DB) AddMonitor(conf *models.MonitorConfig) (int64, error) {
	settings := string(conf.Settings)
	if settings == "" {
		settings = "{}"
	}

	if conf.CreatedAt.IsZero() {
		conf.CreatedAt = time.Now()
	}

	result, err := db.Exec(`
        INSERT INTO monitors (type, name, target, settings, created_at)
        VALUES (?, ?, ?, ?, ?)
    `, string(conf.Kind), conf.Name, conf.Target, settings, conf.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%w monitor: %w", ErrFailedToInsert, err)
	}

	return result.LastInsertId()
}

// GetMonitors returns every stored monitor definition ordered by id.
func (db *DB) GetMonitors() ([]models.MonitorConfig, error) {
	const querySQL = `
        SELECT id, type, name, target, settings, created_at
        FROM monitors
        ORDER BY id
    `

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("%w monitors: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var monitors []models.MonitorConfig

	for rows.Next() {
		conf, err := scanMonitor(rows.Scan)
		if err != nil {
			return nil, err
		}

		monitors = append(monitors, *conf)
	}

	return monitors, rows.Err()
}

// GetMonitor returns one monitor definition, ErrNotFound when absent.
func (db *DB) GetMonitor(id int64) (*models.MonitorConfig, error) {
	const querySQL = `
        SELECT id, type, name, target, settings, created_at
        FROM monitors
        WHERE id = ?
    `

	conf, err := scanMonitor(db.QueryRow(querySQL, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return conf, nil
}

// DeleteMonitor removes a monitor definition. Deleting an unknown id is
// a no-op.
func (db *DB) DeleteMonitor(id int64) error {
	if _, err := db.Exec("DELETE FROM monitors WHERE id = ?", id); err != nil {
		return fmt.Errorf("%w monitor: %w", ErrFailedToDelete, err)
	}

	return nil
}

// scanMonitor reads one monitor row through any Scan-shaped function.
func scanMonitor(scan func(dest ...interface{}) error) (*models.MonitorConfig, error) {
	var (
		conf     models.MonitorConfig
		kind     string
		settings []byte
	)

	err := scan(&conf.ID, &kind, &conf.Name, &conf.Target, &settings, &conf.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err != nil {
		return nil, fmt.Errorf("%w monitor row: %w", ErrFailedToScan, err)
	}

	conf.Kind = models.MonitorKind(kind)
	conf.Settings = settings

	return &conf, nil
}
