// Package monitor pkg/monitor/bandwidth.go

package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

const bitsPerOctet = 8

// BandwidthMonitor derives interface throughput from successive SNMP
// octet counter samples.
type BandwidthMonitor struct {
	baseMonitor
	binding       models.InterfaceBinding
	thresholdMbps float64
	counterBits   int
	previous      *models.CounterSample
	reader        CounterReader
}

// NewBandwidthMonitor builds a bandwidth monitor from its stored
// definition and the resolved interface binding.
func NewBandwidthMonitor(conf *models.MonitorConfig, binding models.InterfaceBinding, reader CounterReader) (*BandwidthMonitor, error) {
	settings, err := parseBandwidthSettings(conf.Settings)
	if err != nil {
		return nil, err
	}

	return &BandwidthMonitor{
		baseMonitor: baseMonitor{
			id:       conf.ID,
			name:     conf.Name,
			kind:     models.KindBandwidth,
			interval: settings.interval(),
		},
		binding:       binding,
		thresholdMbps: settings.ThresholdMbps,
		counterBits:   settings.CounterBits,
		reader:        reader,
	}, nil
}

// Binding returns the device coordinates this monitor polls.
func (m *BandwidthMonitor) Binding() models.InterfaceBinding { return m.binding }

// Poll samples the interface counters when due. The first successful
// sample only establishes the rate baseline and produces no result.
func (m *BandwidthMonitor) Poll(ctx context.Context, now time.Time) (*models.PollResult, error) {
	if !m.due(now) {
		return nil, nil
	}

	m.markPolled(now)

	samples, err := m.reader.ReadCounters(ctx, m.binding.DeviceAddress, m.binding.Community, []int{m.binding.IfIndex})
	if err != nil {
		return nil, fmt.Errorf("failed to read counters from %s: %w", m.binding.DeviceAddress, err)
	}

	sample, ok := samples[m.binding.IfIndex]
	if !ok {
		return nil, fmt.Errorf("%w: %s ifIndex %d", ErrCounterUnavailable, m.binding.DeviceAddress, m.binding.IfIndex)
	}

	previous := m.previous
	m.previous = &sample

	if previous == nil {
		return nil, nil
	}

	elapsed := sample.CapturedAt.Sub(previous.CapturedAt)
	if elapsed <= 0 {
		return nil, nil
	}

	data := m.computeRates(previous, &sample, elapsed)

	return &models.PollResult{
		MonitorID:   m.id,
		MonitorName: m.name,
		Kind:        models.KindBandwidth,
		Target:      m.binding.DeviceAddress,
		Timestamp:   now,
		Bandwidth:   data,
	}, nil
}

func (m *BandwidthMonitor) computeRates(previous, current *models.CounterSample, elapsed time.Duration) *models.BandwidthData {
	seconds := elapsed.Seconds()

	data := &models.BandwidthData{
		InBps:  float64(m.counterDelta(previous.InOctets, current.InOctets)) * bitsPerOctet / seconds,
		OutBps: float64(m.counterDelta(previous.OutOctets, current.OutOctets)) * bitsPerOctet / seconds,
	}

	if m.thresholdMbps > 0 {
		inMbps := data.InBps / 1e6
		outMbps := data.OutBps / 1e6

		if inMbps > m.thresholdMbps || outMbps > m.thresholdMbps {
			exceeded := true
			threshold := m.thresholdMbps

			data.ThresholdExceeded = &exceeded
			data.ThresholdMbps = &threshold
		}
	}

	return data
}

// counterDelta returns current-previous corrected for counter wrap at
// the configured bit width. Unsigned subtraction already wraps at 64
// bits; 32 bit counters need the modulus added back explicitly.
func (m *BandwidthMonitor) counterDelta(previous, current uint64) uint64 {
	if current >= previous {
		return current - previous
	}

	if m.counterBits == 32 {
		return current + (1 << 32) - previous
	}

	return current - previous
}
