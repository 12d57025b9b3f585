// Package models pkg/models/events.go
package models

import "time"

// EventType classifies a monitoring event.
type EventType string

const (
	EventPacketLoss        EventType = "packet_loss"
	EventThresholdExceeded EventType = "threshold_exceeded"
)

// Event is a notable occurrence worth persisting and pushing to
// subscribers.
type Event struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"event_type"`
	MonitorID   int64     `json:"monitor_id"`
	MonitorName string    `json:"monitor_name"`
	Message     string    `json:"message"`
}
