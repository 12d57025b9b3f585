// Package monitor pkg/monitor/errors.go

package monitor

import "errors"

var (
	// ErrUnknownMonitorKind means no builder is registered for the
	// requested monitor type.
	ErrUnknownMonitorKind = errors.New("unknown monitor type")

	// ErrEmptyTarget means the monitor definition has no target.
	ErrEmptyTarget = errors.New("monitor target is required")

	// ErrInvalidTarget means the target cannot be interpreted for the
	// monitor's kind.
	ErrInvalidTarget = errors.New("invalid monitor target")

	// ErrIntervalTooShort rejects intervals below the scheduler floor.
	ErrIntervalTooShort = errors.New("poll interval must be at least 0.1 seconds")

	// ErrInvalidThreshold rejects thresholds outside the kind's range.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrInvalidCounterBits rejects counter widths other than 32 or 64.
	ErrInvalidCounterBits = errors.New("counter_bits must be 32 or 64")

	// ErrCounterUnavailable means the device answered but did not
	// include the polled interface's counters.
	ErrCounterUnavailable = errors.New("interface counters unavailable")
)
