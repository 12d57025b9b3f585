// Package models pkg/models/metrics.go
package models

import "time"

// MetricPoint is one graphable sample held in the live ring buffers.
// Ping monitors populate LatencyMs/PacketLoss, bandwidth monitors
// populate InBps/OutBps.
type MetricPoint struct {
	MonitorID  int64       `json:"monitor_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Kind       MonitorKind `json:"type"`
	LatencyMs  *float64    `json:"latency_ms,omitempty"`
	PacketLoss bool        `json:"packet_loss,omitempty"`
	InBps      float64     `json:"in_bps,omitempty"`
	OutBps     float64     `json:"out_bps,omitempty"`
}
