// Package db pkg/db/db.go provides SQLite database functionality for netwatch.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/carverauto/netwatch/pkg/models"
)

const (
	// SQL statements for database initialization.
	createTablesSQL = `
	-- Managed SNMP devices
	CREATE TABLE IF NOT EXISTS devices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		address TEXT NOT NULL UNIQUE,
		community TEXT NOT NULL DEFAULT 'public',
		sys_descr TEXT NOT NULL DEFAULT '',
		added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Interface rows discovered per device
	CREATE TABLE IF NOT EXISTS interfaces (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		device_id INTEGER NOT NULL,
		if_index INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		speed_mbps INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (device_id) REFERENCES devices(id) ON DELETE CASCADE,
		UNIQUE (device_id, if_index)
	);

	-- Monitor definitions; settings is a JSON object parsed by the
	-- kind-specific builder
	CREATE TABLE IF NOT EXISTS monitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		target TEXT NOT NULL,
		settings TEXT NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Threshold and packet loss events; no FK so events outlive their monitor
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		event_type TEXT NOT NULL,
		monitor_id INTEGER NOT NULL,
		monitor_name TEXT NOT NULL,
		message TEXT NOT NULL
	);

	-- Raw result history per monitor; value is the JSON result payload
	CREATE TABLE IF NOT EXISTS metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		monitor_id INTEGER NOT NULL,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		type TEXT NOT NULL,
		value TEXT NOT NULL
	);

	-- Indexes for better query performance
	CREATE INDEX IF NOT EXISTS idx_events_timestamp
		ON events(timestamp);
	CREATE INDEX IF NOT EXISTS idx_metrics_monitor_time
		ON metrics(monitor_id, timestamp);
	CREATE INDEX IF NOT EXISTS idx_interfaces_device
		ON interfaces(device_id);
	`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// New creates a new database connection and initializes the schema.
// WAL mode and foreign key enforcement go through the DSN so every
// pooled connection gets them.
func New(dbPath string) (Service, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on", dbPath)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return db, nil
}

// initSchema creates the database tables if they don't exist.
func (db *DB) initSchema() error {
	_, err := db.Exec(createTablesSQL)

	return err
}

// CloseRows closes rows and logs any error.
func CloseRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("failed to close rows: %v", err)
	}
}

// AddDevice inserts a device and returns its id.
func (db *DB) AddDevice(device *models.Device) (int64, error) {
	if device.AddedAt.IsZero() {
		device.AddedAt = time.Now()
	}

	result, err := db.Exec(`
        INSERT INTO devices (name, address, community, sys_descr, added_at)
        VALUES (?, ?, ?, ?, ?)
    `, device.Name, device.Address, device.Community, device.SysDescr, device.AddedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return 0, fmt.Errorf("%w: %s", ErrDeviceExists, device.Address)
		}

		return 0, fmt.Errorf("%w device: %w", ErrFailedToInsert, err)
	}

	return result.LastInsertId()
}

// GetDevices returns all devices ordered by id.
func (db *DB) GetDevices() ([]models.Device, error) {
	const querySQL = `
        SELECT id, name, address, community, sys_descr, added_at
        FROM devices
        ORDER BY id
    `

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("%w devices: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var devices []models.Device

	for rows.Next() {
		var d models.Device

		if err := rows.Scan(&d.ID, &d.Name, &d.Address, &d.Community, &d.SysDescr, &d.AddedAt); err != nil {
			return nil, fmt.Errorf("%w device row: %w", ErrFailedToScan, err)
		}

		devices = append(devices, d)
	}

	return devices, rows.Err()
}

// GetDevice returns one device, ErrNotFound when the id is unknown.
func (db *DB) GetDevice(id int64) (*models.Device, error) {
	const querySQL = `
        SELECT id, name, address, community, sys_descr, added_at
        FROM devices
        WHERE id = ?
    `

	var d models.Device

	err := db.QueryRow(querySQL, id).Scan(&d.ID, &d.Name, &d.Address, &d.Community, &d.SysDescr, &d.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w device: %w", ErrFailedToQuery, err)
	}

	return &d, nil
}

// DeleteDevice removes a device, its interfaces (FK cascade) and every
// bandwidth monitor targeting one of those interfaces. The removed
// monitor ids are returned so the engine can be told to drop them.
func (db *DB) DeleteDevice(id int64) (removed []int64, err error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("failed to rollback: %v", rbErr)
			}

			return
		}

		err = tx.Commit()
	}()

	rows, err := tx.Query(`
        SELECT id FROM monitors
        WHERE type = ?
        AND target IN (SELECT CAST(id AS TEXT) FROM interfaces WHERE device_id = ?)
    `, string(models.KindBandwidth), id)
	if err != nil {
		return nil, fmt.Errorf("%w device monitors: %w", ErrFailedToQuery, err)
	}

	for rows.Next() {
		var monitorID int64

		if err = rows.Scan(&monitorID); err != nil {
			CloseRows(rows)
			return nil, fmt.Errorf("%w monitor id: %w", ErrFailedToScan, err)
		}

		removed = append(removed, monitorID)
	}

	err = rows.Err()

	CloseRows(rows)

	if err != nil {
		return nil, fmt.Errorf("%w device monitors: %w", ErrFailedToQuery, err)
	}

	for _, monitorID := range removed {
		if _, err = tx.Exec("DELETE FROM monitors WHERE id = ?", monitorID); err != nil {
			return nil, fmt.Errorf("%w monitor: %w", ErrFailedToDelete, err)
		}
	}

	if _, err = tx.Exec("DELETE FROM devices WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("%w device: %w", ErrFailedToDelete, err)
	}

	return removed, nil
}

// ReplaceInterfaces swaps the stored interface rows for a device with a
// fresh discovery walk.
func (db *DB) ReplaceInterfaces(deviceID int64, ifaces []models.Interface) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("failed to rollback: %v", rbErr)
			}

			return
		}

		err = tx.Commit()
	}()

	if _, err = tx.Exec("DELETE FROM interfaces WHERE device_id = ?", deviceID); err != nil {
		return fmt.Errorf("%w interfaces: %w", ErrFailedToDelete, err)
	}

	for i := range ifaces {
		iface := &ifaces[i]

		if _, err = tx.Exec(`
            INSERT INTO interfaces (device_id, if_index, name, description, speed_mbps)
            VALUES (?, ?, ?, ?, ?)
        `, deviceID, iface.IfIndex, iface.Name, iface.Description, iface.SpeedMbps); err != nil {
			return fmt.Errorf("%w interface: %w", ErrFailedToInsert, err)
		}
	}

	return nil
}

// GetInterfaces returns the cached interface rows for a device.
func (db *DB) GetInterfaces(deviceID int64) ([]models.Interface, error) {
	const querySQL = `
        SELECT id, device_id, if_index, name, description, speed_mbps
        FROM interfaces
        WHERE device_id = ?
        ORDER BY if_index
    `

	rows, err := db.Query(querySQL, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w interfaces: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var ifaces []models.Interface

	for rows.Next() {
		var iface models.Interface

		if err := rows.Scan(&iface.ID, &iface.DeviceID, &iface.IfIndex,
			&iface.Name, &iface.Description, &iface.SpeedMbps); err != nil {
			return nil, fmt.Errorf("%w interface row: %w", ErrFailedToScan, err)
		}

		ifaces = append(ifaces, iface)
	}

	return ifaces, rows.Err()
}

// GetInterfaceBinding resolves an interface row id to the SNMP
// coordinates a bandwidth monitor needs. ErrNotFound when the row or
// its device is gone.
func (db *DB) GetInterfaceBinding(ifaceID int64) (*models.InterfaceBinding, error) {
	const querySQL = `
        SELECT d.address, d.community, i.if_index
        FROM interfaces i
        JOIN devices d ON d.id = i.device_id
        WHERE i.id = ?
    `

	var binding models.InterfaceBinding

	err := db.QueryRow(querySQL, ifaceID).Scan(&binding.DeviceAddress, &binding.Community, &binding.IfIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w interface binding: %w", ErrFailedToQuery, err)
	}

	return &binding, nil
}
