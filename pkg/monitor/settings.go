// Package monitor pkg/monitor/settings.go

package monitor

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

const (
	// minInterval is the scheduler floor; anything shorter cannot be
	// honored by a one second tick loop.
	minInterval = 100 * time.Millisecond

	defaultPingIntervalSeconds = 1.0
	defaultPingThresholdMs     = 5.0
	defaultPingTimeoutSeconds  = 1.0
	minPingTimeout             = 100 * time.Millisecond

	defaultBandwidthIntervalSeconds = 5.0
	defaultCounterBits              = 64
)

// pingSettings is the stored settings document for ping monitors.
// Durations are plain seconds and thresholds milliseconds, matching
// what the API accepts.
type pingSettings struct {
	Interval  float64 `json:"interval"`
	Threshold float64 `json:"threshold"`
	Timeout   float64 `json:"timeout"`
}

// bandwidthSettings is the stored settings document for bandwidth
// monitors. A zero threshold disables threshold evaluation.
type bandwidthSettings struct {
	Interval      float64 `json:"interval"`
	ThresholdMbps float64 `json:"threshold_mbps"`
	CounterBits   int     `json:"counter_bits"`
}

func parsePingSettings(raw json.RawMessage) (*pingSettings, error) {
	settings := &pingSettings{
		Interval:  defaultPingIntervalSeconds,
		Threshold: defaultPingThresholdMs,
		Timeout:   defaultPingTimeoutSeconds,
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, settings); err != nil {
			return nil, fmt.Errorf("failed to parse ping settings: %w", err)
		}
	}

	if err := validateInterval(settings.Interval); err != nil {
		return nil, err
	}

	if settings.Threshold <= 0 {
		return nil, fmt.Errorf("%w: latency threshold must be positive, got %v", ErrInvalidThreshold, settings.Threshold)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = defaultPingTimeoutSeconds
	}

	return settings, nil
}

func parseBandwidthSettings(raw json.RawMessage) (*bandwidthSettings, error) {
	settings := &bandwidthSettings{
		Interval:    defaultBandwidthIntervalSeconds,
		CounterBits: defaultCounterBits,
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, settings); err != nil {
			return nil, fmt.Errorf("failed to parse bandwidth settings: %w", err)
		}
	}

	if err := validateInterval(settings.Interval); err != nil {
		return nil, err
	}

	if settings.ThresholdMbps < 0 {
		return nil, fmt.Errorf("%w: bandwidth threshold must not be negative, got %v", ErrInvalidThreshold, settings.ThresholdMbps)
	}

	if settings.CounterBits != 32 && settings.CounterBits != 64 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCounterBits, settings.CounterBits)
	}

	return settings, nil
}

func validateInterval(seconds float64) error {
	if secondsToDuration(seconds) < minInterval {
		return fmt.Errorf("%w: got %vs", ErrIntervalTooShort, seconds)
	}

	return nil
}

func (s *pingSettings) interval() time.Duration {
	return secondsToDuration(s.Interval)
}

// timeout returns the probe timeout with a floor of minPingTimeout;
// shorter waits would expire before the reply listener can deliver.
func (s *pingSettings) timeout() time.Duration {
	timeout := secondsToDuration(s.Timeout)
	if timeout < minPingTimeout {
		timeout = minPingTimeout
	}

	return timeout
}

func (s *bandwidthSettings) interval() time.Duration {
	return secondsToDuration(s.Interval)
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func validateTarget(conf *models.MonitorConfig) error {
	if conf.Target == "" {
		return ErrEmptyTarget
	}

	return nil
}
