// Package events pkg/events/interfaces.go

package events

import (
	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/models"
)

//go:generate mockgen -destination=mock_events.go -package=events github.com/carverauto/netwatch/pkg/events EventStore,Collector,Broadcaster

// EventStore persists metric samples and classified events.
type EventStore interface {
	StoreMetric(record *db.MetricRecord) error
	StoreEvent(event *models.Event) (int64, error)
}

// Collector keeps recent samples in memory for graphing.
type Collector interface {
	Add(monitorID int64, point models.MetricPoint)
}

// Broadcaster pushes typed messages to connected dashboards.
type Broadcaster interface {
	Broadcast(msgType string, data interface{})
}
