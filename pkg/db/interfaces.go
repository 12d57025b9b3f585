// Package db pkg/db/interfaces.go
package db

import (
	"encoding/json"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

// MetricRecord is one persisted result payload. Value holds the raw
// JSON of the kind-specific result data.
type MetricRecord struct {
	MonitorID int64              `json:"monitor_id"`
	Timestamp time.Time          `json:"timestamp"`
	Kind      models.MonitorKind `json:"type"`
	Value     json.RawMessage    `json:"value"`
}

// Service represents all database operations.
type Service interface {
	Close() error

	// Device operations.

	AddDevice(device *models.Device) (int64, error)
	GetDevices() ([]models.Device, error)
	GetDevice(id int64) (*models.Device, error)
	DeleteDevice(id int64) ([]int64, error)

	// Interface operations.

	ReplaceInterfaces(deviceID int64, ifaces []models.Interface) error
	GetInterfaces(deviceID int64) ([]models.Interface, error)
	GetInterfaceBinding(ifaceID int64) (*models.InterfaceBinding, error)

	// Monitor operations.

	AddMonitor(conf *models.MonitorConfig) (int64, error)
	GetMonitors() ([]models.MonitorConfig, error)
	GetMonitor(id int64) (*models.MonitorConfig, error)
	DeleteMonitor(id int64) error

	// Event operations.

	StoreEvent(event *models.Event) (int64, error)
	GetEvents(limit int) ([]models.Event, error)
	GetEventsSince(since time.Time) ([]models.Event, error)

	// Metric history operations.

	StoreMetric(record *MetricRecord) error
	GetMetricsSince(monitorID int64, since time.Time) ([]MetricRecord, error)

	// Maintenance operations.

	CleanOldData(retentionPeriod time.Duration) error
}
