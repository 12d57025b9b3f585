/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package monitor pkg/monitor/interfaces.go

package monitor

import (
	"context"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

//go:generate mockgen -destination=mock_monitor.go -package=monitor github.com/carverauto/netwatch/pkg/monitor Monitor,Pinger,CounterReader,ResultSink,ConfigSource,InterfaceResolver

// Monitor is one scheduled probe with its own interval and state.
type Monitor interface {
	ID() int64
	Name() string
	Kind() models.MonitorKind
	Interval() time.Duration
	// Poll runs the probe when the monitor is due at now. A nil result
	// with a nil error means there is nothing to report this tick.
	Poll(ctx context.Context, now time.Time) (*models.PollResult, error)
}

// Pinger sends a single echo probe. A timed-out probe reports
// replied=false with a nil error; errors mean the probe never went out.
type Pinger interface {
	Ping(ctx context.Context, host string, timeout time.Duration) (time.Duration, bool, error)
}

// CounterReader fetches raw octet counters for interfaces on a device.
// Indexes the device does not answer for are absent from the map.
type CounterReader interface {
	ReadCounters(ctx context.Context, address, community string, ifIndexes []int) (map[int]models.CounterSample, error)
}

// ResultSink receives every produced result synchronously, in poll
// order.
type ResultSink interface {
	Handle(ctx context.Context, result *models.PollResult) error
}

// ConfigSource supplies stored monitor definitions.
type ConfigSource interface {
	GetMonitors() ([]models.MonitorConfig, error)
	GetMonitor(id int64) (*models.MonitorConfig, error)
}

// InterfaceResolver resolves a bandwidth monitor's target interface to
// the device coordinates it polls.
type InterfaceResolver interface {
	GetInterfaceBinding(ifaceID int64) (*models.InterfaceBinding, error)
}
