package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

// monitorMetrics pairs a ring buffer with a lock and the last write
// time, so stale buffers can be dropped after their monitor goes away.
type monitorMetrics struct {
	mu        sync.RWMutex
	buffer    MetricStore
	lastWrite time.Time
}

// Manager keeps one ring buffer of recent points per monitor id.
type Manager struct {
	monitors       sync.Map // Map of monitorID -> *monitorMetrics
	bufferSize     int
	activeMonitors int64 // Atomic counter for buffers held
}

// NewManager creates a Manager whose per-monitor buffers hold
// bufferSize points.
func NewManager(bufferSize int) *Manager {
	if bufferSize <= 0 {
		bufferSize = 60
	}

	return &Manager{
		bufferSize: bufferSize,
	}
}

// Add records a point for a monitor, creating its buffer on first use.
func (m *Manager) Add(monitorID int64, point models.MetricPoint) {
	entry, loaded := m.monitors.LoadOrStore(monitorID, &monitorMetrics{
		buffer: NewBuffer(m.bufferSize),
	})

	if !loaded {
		atomic.AddInt64(&m.activeMonitors, 1)
	}

	mm := entry.(*monitorMetrics)

	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.buffer.Add(point)
	mm.lastWrite = time.Now()
}

// GetPoints returns the buffered points for a monitor, oldest first.
func (m *Manager) GetPoints(monitorID int64) []models.MetricPoint {
	entry, ok := m.monitors.Load(monitorID)
	if !ok {
		return nil
	}

	mm := entry.(*monitorMetrics)

	mm.mu.RLock()
	defer mm.mu.RUnlock()

	return mm.buffer.GetPoints()
}

// Remove drops a monitor's buffer.
func (m *Manager) Remove(monitorID int64) {
	if _, ok := m.monitors.LoadAndDelete(monitorID); ok {
		atomic.AddInt64(&m.activeMonitors, -1)
	}
}

// CleanupStale drops buffers that have not been written within the
// given age.
func (m *Manager) CleanupStale(staleDuration time.Duration) {
	cutoff := time.Now().Add(-staleDuration)

	m.monitors.Range(func(key, value interface{}) bool {
		mm := value.(*monitorMetrics)

		mm.mu.RLock()
		stale := mm.lastWrite.Before(cutoff)
		mm.mu.RUnlock()

		if stale {
			m.Remove(key.(int64))
		}

		return true
	})
}

// ActiveMonitors returns the number of buffers currently held.
func (m *Manager) ActiveMonitors() int64 {
	return atomic.LoadInt64(&m.activeMonitors)
}
