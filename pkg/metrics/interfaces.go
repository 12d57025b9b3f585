package metrics

import (
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

type MetricStore interface {
	Add(point models.MetricPoint)
	GetPoints() []models.MetricPoint
	GetLastPoint() *models.MetricPoint
}

type MetricCollector interface {
	Add(monitorID int64, point models.MetricPoint)
	GetPoints(monitorID int64) []models.MetricPoint
	Remove(monitorID int64)
	CleanupStale(staleDuration time.Duration)
}
