package db

import (
	"fmt"
	"log"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

// StoreEvent persists an event and returns its id.
func (db *DB) StoreEvent(event *models.Event) (int64, error) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	result, err := db.Exec(`
        INSERT INTO events (timestamp, event_type, monitor_id, monitor_name, message)
        VALUES (?, ?, ?, ?, ?)
    `, event.Timestamp, string(event.Type), event.MonitorID, event.MonitorName, event.Message)
	if err != nil {
		return 0, fmt.Errorf("%w event: %w", ErrFailedToInsert, err)
	}

	return result.LastInsertId()
}

// GetEvents returns the most recent events, newest first.
func (db *DB) GetEvents(limit int) ([]models.Event, error) {
	const querySQL = `
        SELECT id, timestamp, event_type, monitor_id, monitor_name, message
        FROM events
        ORDER BY timestamp DESC
        LIMIT ?
    `

	rows, err := db.Query(querySQL, limit)
	if err != nil {
		return nil, fmt.Errorf("%w events: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	return scanEvents(rows)
}

// GetEventsSince returns events at or after the cutoff in chronological
// order, for report windows.
func (db *DB) GetEventsSince(since time.Time) ([]models.Event, error) {
	const querySQL = `
        SELECT id, timestamp, event_type, monitor_id, monitor_name, message
        FROM events
        WHERE timestamp >= ?
        ORDER BY timestamp ASC
    `

	rows, err := db.Query(querySQL, since)
	if err != nil {
		return nil, fmt.Errorf("%w events since: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	return scanEvents(rows)
}

func scanEvents(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]models.Event, error) {
	var events []models.Event

	for rows.Next() {
		var (
			e         models.Event
			eventType string
		)

		if err := rows.Scan(&e.ID, &e.Timestamp, &eventType, &e.MonitorID, &e.MonitorName, &e.Message); err != nil {
			return nil, fmt.Errorf("%w event row: %w", ErrFailedToScan, err)
		}

		e.Type = models.EventType(eventType)
		events = append(events, e)
	}

	return events, rows.Err()
}

// CleanOldData removes events and metric history older than the
// retention period.
func (db *DB) CleanOldData(retentionPeriod time.Duration) (err error) {
	cutoff := time.Now().Add(-retentionPeriod)

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

	// Clean up events
	if _, err = tx.Exec(
		"DELETE FROM events WHERE timestamp < ?",
		cutoff,
	); err != nil {
		return fmt.Errorf("%w events: %w", ErrFailedToClean, err)
	}

	// Clean up metric history
	if _, err = tx.Exec(
		"DELETE FROM metrics WHERE timestamp < ?",
		cutoff,
	); err != nil {
		return fmt.Errorf("%w metrics: %w", ErrFailedToClean, err)
	}

	return nil
}
