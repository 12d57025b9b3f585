// Package models pkg/models/monitors.go
package models

import (
	"encoding/json"
	"time"
)

// MonitorKind identifies the probe a monitor runs.
type MonitorKind string

const (
	KindPing      MonitorKind = "ping"
	KindBandwidth MonitorKind = "bandwidth"
)

// MonitorConfig is a monitor definition as stored. Settings stays raw
// here; the kind-specific builder parses and validates it.
type MonitorConfig struct {
	ID        int64           `json:"id"`
	Kind      MonitorKind     `json:"type"`
	Name      string          `json:"name"`
	Target    string          `json:"target"`
	Settings  json.RawMessage `json:"settings,omitempty"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

// PollResult is a single observation produced by one monitor poll.
// Exactly one of Ping or Bandwidth is set, matching Kind.
type PollResult struct {
	MonitorID   int64          `json:"monitor_id"`
	MonitorName string         `json:"monitor_name"`
	Kind        MonitorKind    `json:"type"`
	Target      string         `json:"target"`
	Timestamp   time.Time      `json:"timestamp"`
	Ping        *PingData      `json:"ping,omitempty"`
	Bandwidth   *BandwidthData `json:"bandwidth,omitempty"`
}

// PingData carries one ping outcome. LatencyMs is nil when the probe
// timed out; the threshold fields are set only on a successful reply.
type PingData struct {
	LatencyMs         *float64 `json:"latency_ms"`
	PacketLoss        bool     `json:"packet_loss"`
	ThresholdExceeded *bool    `json:"threshold_exceeded,omitempty"`
	ThresholdMs       *float64 `json:"threshold_ms,omitempty"`
}

// BandwidthData carries one computed rate pair. The threshold fields
// are set only when the configured threshold was crossed.
type BandwidthData struct {
	InBps             float64  `json:"in_bps"`
	OutBps            float64  `json:"out_bps"`
	ThresholdExceeded *bool    `json:"threshold_exceeded,omitempty"`
	ThresholdMbps     *float64 `json:"threshold_mbps,omitempty"`
}

// CounterSample is one raw octet counter reading for an interface.
type CounterSample struct {
	InOctets   uint64    `json:"in_octets"`
	OutOctets  uint64    `json:"out_octets"`
	CapturedAt time.Time `json:"captured_at"`
}

// InterfaceBinding holds the resolved SNMP coordinates a bandwidth
// monitor polls against.
type InterfaceBinding struct {
	DeviceAddress string `json:"device_address"`
	Community     string `json:"community"`
	IfIndex       int    `json:"if_index"`
}
