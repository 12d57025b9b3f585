package db

import (
	"fmt"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

// StoreMetric stores one result payload in the metric history.
func (db *DB) StoreMetric(record *MetricRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	_, err := db.Exec(`
        INSERT INTO metrics (monitor_id, timestamp, type, value)
        VALUES (?, ?, ?, ?)`,
		record.MonitorID,
		record.Timestamp,
		string(record.Kind),
		string(record.Value),
	)
	if err != nil {
		return fmt.Errorf("%w metric: %w", ErrFailedToInsert, err)
	}

	return nil
}

// GetMetricsSince retrieves a monitor's history from the cutoff onward
// in chronological order.
func (db *DB) GetMetricsSince(monitorID int64, since time.Time) ([]MetricRecord, error) {
	rows, err := db.Query(`
        SELECT monitor_id, timestamp, type, value
        FROM metrics
        WHERE monitor_id = ?
        AND timestamp >= ?
        ORDER BY timestamp ASC`,
		monitorID,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("%w metrics: %w", ErrFailedToQuery, err)
	}
	defer CloseRows(rows)

	var records []MetricRecord

	for rows.Next() {
		var (
			record MetricRecord
			kind   string
			value  []byte
		)

		if err := rows.Scan(&record.MonitorID, &record.Timestamp, &kind, &value); err != nil {
			return nil, fmt.Errorf("%w metric row: %w", ErrFailedToScan, err)
		}

		record.Kind = models.MonitorKind(kind)
		record.Value = value

		records = append(records, record)
	}

	return records, rows.Err()
}
