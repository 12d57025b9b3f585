package metrics

import (
	"sync/atomic"

	"github.com/carverauto/netwatch/pkg/models"
)

// LockFreeRingBuffer keeps the most recent metric points for one
// monitor. Writes only bump an atomic position counter; readers take a
// consistent-enough snapshot for live graphing.
type LockFreeRingBuffer struct {
	points []models.MetricPoint
	pos    int64 // Atomic position counter
	size   int64
}

// NewBuffer creates a new MetricStore.
func NewBuffer(size int) MetricStore {
	return NewLockFreeBuffer(size)
}

// NewLockFreeBuffer creates a new LockFreeRingBuffer with the specified size.
func NewLockFreeBuffer(size int) *LockFreeRingBuffer {
	if size <= 0 {
		size = 1
	}

	return &LockFreeRingBuffer{
		points: make([]models.MetricPoint, size),
		size:   int64(size),
	}
}

// Add appends a metric point, overwriting the oldest once full.
func (b *LockFreeRingBuffer) Add(point models.MetricPoint) {
	pos := atomic.AddInt64(&b.pos, 1) - 1
	b.points[pos%b.size] = point
}

// GetPoints returns the buffered points oldest first. A buffer that has
// not wrapped yet returns only what was written.
func (b *LockFreeRingBuffer) GetPoints() []models.MetricPoint {
	pos := atomic.LoadInt64(&b.pos)

	count := pos
	if count > b.size {
		count = b.size
	}

	points := make([]models.MetricPoint, count)

	for i := int64(0); i < count; i++ {
		idx := (pos - count + i + b.size) % b.size
		points[i] = b.points[idx]
	}

	return points
}

// GetLastPoint returns the most recent point, nil when nothing has been
// written yet.
func (b *LockFreeRingBuffer) GetLastPoint() *models.MetricPoint {
	pos := atomic.LoadInt64(&b.pos)
	if pos == 0 {
		return nil
	}

	point := b.points[(pos-1)%b.size]

	return &point
}
