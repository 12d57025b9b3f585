package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/netwatch/pkg/models"
)

var testBinding = models.InterfaceBinding{
	DeviceAddress: "10.0.0.1",
	Community:     "public",
	IfIndex:       2,
}

func bandwidthConfig(settings string) *models.MonitorConfig {
	conf := &models.MonitorConfig{
		ID:     2,
		Kind:   models.KindBandwidth,
		Name:   "uplink",
		Target: "42",
	}

	if settings != "" {
		conf.Settings = json.RawMessage(settings)
	}

	return conf
}

func counterReply(in, out uint64, at time.Time) map[int]models.CounterSample {
	return map[int]models.CounterSample{
		testBinding.IfIndex: {InOctets: in, OutOctets: out, CapturedAt: at},
	}
}

func TestNewBandwidthMonitorDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, err := NewBandwidthMonitor(bandwidthConfig(""), testBinding, NewMockCounterReader(ctrl))
	require.NoError(t, err)

	assert.Equal(t, int64(2), m.ID())
	assert.Equal(t, models.KindBandwidth, m.Kind())
	assert.Equal(t, 5*time.Second, m.Interval())
	assert.Equal(t, testBinding, m.Binding())
}

func TestNewBandwidthMonitorValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockCounterReader(ctrl)

	tests := []struct {
		name     string
		settings string
		wantErr  error
	}{
		{"negative threshold", `{"threshold_mbps": -1}`, ErrInvalidThreshold},
		{"interval below floor", `{"interval": 0.01}`, ErrIntervalTooShort},
		{"unsupported counter width", `{"counter_bits": 16}`, ErrInvalidCounterBits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBandwidthMonitor(bandwidthConfig(tt.settings), testBinding, reader)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBandwidthMonitorFirstSampleIsBaseline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	reader := NewMockCounterReader(ctrl)
	reader.EXPECT().
		ReadCounters(gomock.Any(), "10.0.0.1", "public", []int{2}).
		Return(counterReply(1000, 500, base), nil)

	m, err := NewBandwidthMonitor(bandwidthConfig(""), testBinding, reader)
	require.NoError(t, err)

	result, err := m.Poll(context.Background(), base)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestBandwidthMonitorComputesRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	reader := NewMockCounterReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().
			ReadCounters(gomock.Any(), "10.0.0.1", "public", []int{2}).
			Return(counterReply(1000000, 500000, base), nil),
		reader.EXPECT().
			ReadCounters(gomock.Any(), "10.0.0.1", "public", []int{2}).
			Return(counterReply(3000000, 1500000, base.Add(5*time.Second)), nil),
	)

	m, err := NewBandwidthMonitor(bandwidthConfig(""), testBinding, reader)
	require.NoError(t, err)

	result, err := m.Poll(context.Background(), base)
	require.NoError(t, err)
	require.Nil(t, result)

	result, err = m.Poll(context.Background(), base.Add(5*time.Second))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Bandwidth)

	// 2,000,000 octets over 5s is 3.2 Mbps; 1,000,000 is 1.6 Mbps.
	assert.InDelta(t, 3200000.0, result.Bandwidth.InBps, 0.001)
	assert.InDelta(t, 1600000.0, result.Bandwidth.OutBps, 0.001)

	assert.Nil(t, result.Bandwidth.ThresholdExceeded)
	assert.Nil(t, result.Bandwidth.ThresholdMbps)
}

func TestBandwidthMonitorCounterWrap64(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	nearMax := math.MaxUint64 - uint64(99)

	reader := NewMockCounterReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(nearMax, nearMax, base), nil),
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(50, 50, base.Add(time.Second)), nil),
	)

	m, err := NewBandwidthMonitor(bandwidthConfig(`{"interval": 1}`), testBinding, reader)
	require.NoError(t, err)

	result, err := m.Poll(context.Background(), base)
	require.NoError(t, err)
	require.Nil(t, result)

	result, err = m.Poll(context.Background(), base.Add(time.Second))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Bandwidth)

	// The counter advanced 150 octets through the wrap: 1200 bps.
	assert.InDelta(t, 1200.0, result.Bandwidth.InBps, 0.001)
	assert.InDelta(t, 1200.0, result.Bandwidth.OutBps, 0.001)
}

func TestBandwidthMonitorCounterWrap32(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	reader := NewMockCounterReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(4294967000, 0, base), nil),
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(296, 0, base.Add(time.Second)), nil),
	)

	m, err := NewBandwidthMonitor(bandwidthConfig(`{"interval": 1, "counter_bits": 32}`), testBinding, reader)
	require.NoError(t, err)

	result, err := m.Poll(context.Background(), base)
	require.NoError(t, err)
	require.Nil(t, result)

	result, err = m.Poll(context.Background(), base.Add(time.Second))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Bandwidth)

	// 296 + 2^32 - 4,294,967,000 = 592 octets, 4736 bps.
	assert.InDelta(t, 4736.0, result.Bandwidth.InBps, 0.001)
}

func TestBandwidthMonitorSkipsNonPositiveElapsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	reader := NewMockCounterReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(1000, 1000, base), nil),
		// Same capture timestamp: the device clock stalled.
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(2000, 2000, base), nil),
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(3000, 3000, base.Add(time.Second)), nil),
	)

	m, err := NewBandwidthMonitor(bandwidthConfig(`{"interval": 1}`), testBinding, reader)
	require.NoError(t, err)

	result, err := m.Poll(context.Background(), base)
	require.NoError(t, err)
	require.Nil(t, result)

	result, err = m.Poll(context.Background(), base.Add(time.Second))
	require.NoError(t, err)
	require.Nil(t, result)

	// The skipped sample still became the baseline: the third poll
	// measures 1000 octets over 1s, not 2000 over 1s.
	result, err = m.Poll(context.Background(), base.Add(2*time.Second))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Bandwidth)
	assert.InDelta(t, 8000.0, result.Bandwidth.InBps, 0.001)
}

func TestBandwidthMonitorThresholdExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		in, out      uint64
		wantExceeded bool
	}{
		{"inbound over threshold", 2000000, 1000, true},
		{"outbound over threshold", 1000, 2000000, true},
		{"both under threshold", 10000, 10000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockCounterReader(ctrl)
			gomock.InOrder(
				reader.EXPECT().
					ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(counterReply(0, 0, base), nil),
				reader.EXPECT().
					ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(counterReply(tt.in, tt.out, base.Add(5*time.Second)), nil),
			)

			m, err := NewBandwidthMonitor(bandwidthConfig(`{"threshold_mbps": 1.0}`), testBinding, reader)
			require.NoError(t, err)

			result, err := m.Poll(context.Background(), base)
			require.NoError(t, err)
			require.Nil(t, result)

			result, err = m.Poll(context.Background(), base.Add(5*time.Second))
			require.NoError(t, err)
			require.NotNil(t, result)
			require.NotNil(t, result.Bandwidth)

			if tt.wantExceeded {
				require.NotNil(t, result.Bandwidth.ThresholdExceeded)
				assert.True(t, *result.Bandwidth.ThresholdExceeded)
				require.NotNil(t, result.Bandwidth.ThresholdMbps)
				assert.InDelta(t, 1.0, *result.Bandwidth.ThresholdMbps, 0.0001)
			} else {
				assert.Nil(t, result.Bandwidth.ThresholdExceeded)
				assert.Nil(t, result.Bandwidth.ThresholdMbps)
			}
		})
	}
}

func TestBandwidthMonitorMissingIndexKeepsBaseline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	reader := NewMockCounterReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(1000, 1000, base), nil),
		// Device answers but leaves out the polled interface.
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[int]models.CounterSample{}, nil),
		reader.EXPECT().
			ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(counterReply(2000, 1000, base.Add(2*time.Second)), nil),
	)

	m, err := NewBandwidthMonitor(bandwidthConfig(`{"interval": 1}`), testBinding, reader)
	require.NoError(t, err)

	result, err := m.Poll(context.Background(), base)
	require.NoError(t, err)
	require.Nil(t, result)

	result, err = m.Poll(context.Background(), base.Add(time.Second))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCounterUnavailable)

	// The failed read kept the first sample as the baseline: 1000
	// octets over the full 2s window.
	result, err = m.Poll(context.Background(), base.Add(2*time.Second))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Bandwidth)
	assert.InDelta(t, 4000.0, result.Bandwidth.InBps, 0.001)
}

func TestBandwidthMonitorReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readErr := errors.New("request timeout")

	reader := NewMockCounterReader(ctrl)
	reader.EXPECT().
		ReadCounters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, readErr).
		Times(1)

	m, err := NewBandwidthMonitor(bandwidthConfig(""), testBinding, reader)
	require.NoError(t, err)

	now := time.Now()

	result, err := m.Poll(context.Background(), now)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)

	// Schedule advanced despite the failure.
	result, err = m.Poll(context.Background(), now.Add(time.Second))
	assert.Nil(t, result)
	assert.NoError(t, err)
}
