// Package api pkg/api/interfaces.go

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/models"
)

//go:generate mockgen -destination=mock_api.go -package=api github.com/carverauto/netwatch/pkg/api Store,Engine,Discoverer,Collector,Reporter,Hub

// Store is the persistence surface the API serves from.
type Store interface {
	AddDevice(device *models.Device) (int64, error)
	GetDevices() ([]models.Device, error)
	GetDevice(id int64) (*models.Device, error)
	DeleteDevice(id int64) ([]int64, error)

	ReplaceInterfaces(deviceID int64, ifaces []models.Interface) error
	GetInterfaces(deviceID int64) ([]models.Interface, error)

	AddMonitor(conf *models.MonitorConfig) (int64, error)
	GetMonitors() ([]models.MonitorConfig, error)
	DeleteMonitor(id int64) error

	GetEvents(limit int) ([]models.Event, error)
	GetMetricsSince(monitorID int64, since time.Time) ([]db.MetricRecord, error)
}

// Engine is the live scheduler surface the API drives.
type Engine interface {
	Running() bool
	MonitorCount() int
	Reload(id int64) error
	Remove(id int64)
}

// Discoverer validates SNMP devices and walks their interface tables.
type Discoverer interface {
	Validate(ctx context.Context, address, community string) (string, error)
	DiscoverInterfaces(ctx context.Context, address, community string) ([]models.Interface, error)
}

// Collector exposes the in-memory graph buffers.
type Collector interface {
	GetPoints(monitorID int64) []models.MetricPoint
	Remove(monitorID int64)
}

// Reporter renders the PDF status report.
type Reporter interface {
	Generate(ctx context.Context, window time.Duration) ([]byte, error)
}

// Hub is the WebSocket endpoint and its client statistics.
type Hub interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
	ClientCount() int
}
