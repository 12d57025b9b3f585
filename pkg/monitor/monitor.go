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

// Package monitor pkg/monitor/monitor.go

package monitor

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

// baseMonitor carries the identity and scheduling state shared by all
// monitor kinds. Monitors are only ever touched from the poll loop, so
// lastPoll needs no lock.
type baseMonitor struct {
	id       int64
	name     string
	kind     models.MonitorKind
	interval time.Duration
	lastPoll time.Time
}

func (b *baseMonitor) ID() int64                { return b.id }
func (b *baseMonitor) Name() string             { return b.name }
func (b *baseMonitor) Kind() models.MonitorKind { return b.kind }
func (b *baseMonitor) Interval() time.Duration  { return b.interval }

// due reports whether the monitor's interval has elapsed since the last
// poll. A monitor that has never polled is always due.
func (b *baseMonitor) due(now time.Time) bool {
	if b.lastPoll.IsZero() {
		return true
	}

	return now.Sub(b.lastPoll) >= b.interval
}

// markPolled advances the schedule before the probe runs, so a slow or
// failing probe cannot make the monitor fire again immediately.
func (b *baseMonitor) markPolled(now time.Time) {
	b.lastPoll = now
}

// PingMonitor measures ICMP round-trip latency to a host and compares
// it against a latency threshold.
type PingMonitor struct {
	baseMonitor
	target    string
	threshold float64
	timeout   time.Duration
	pinger    Pinger
}

// NewPingMonitor builds a ping monitor from its stored definition.
func NewPingMonitor(conf *models.MonitorConfig, pinger Pinger) (*PingMonitor, error) {
	if err := validateTarget(conf); err != nil {
		return nil, err
	}

	settings, err := parsePingSettings(conf.Settings)
	if err != nil {
		return nil, err
	}

	return &PingMonitor{
		baseMonitor: baseMonitor{
			id:       conf.ID,
			name:     conf.Name,
			kind:     models.KindPing,
			interval: settings.interval(),
		},
		target:    conf.Target,
		threshold: settings.Threshold,
		timeout:   settings.timeout(),
		pinger:    pinger,
	}, nil
}

// Target returns the probed host.
func (m *PingMonitor) Target() string { return m.target }

// Poll sends one echo probe when due. Packet loss is a reportable
// outcome; only a probe that never left counts as an error.
func (m *PingMonitor) Poll(ctx context.Context, now time.Time) (*models.PollResult, error) {
	if !m.due(now) {
		return nil, nil
	}

	m.markPolled(now)

	rtt, replied, err := m.pinger.Ping(ctx, m.target, m.timeout)
	if err != nil {
		return nil, fmt.Errorf("ping %s failed: %w", m.target, err)
	}

	data := &models.PingData{}

	if replied {
		latency := math.Round(rtt.Seconds()*1000*100) / 100
		exceeded := latency > m.threshold
		threshold := m.threshold

		data.LatencyMs = &latency
		data.ThresholdExceeded = &exceeded
		data.ThresholdMs = &threshold
	} else {
		data.PacketLoss = true
	}

	return &models.PollResult{
		MonitorID:   m.id,
		MonitorName: m.name,
		Kind:        models.KindPing,
		Target:      m.target,
		Timestamp:   now,
		Ping:        data,
	}, nil
}
