// Package report pkg/report/interfaces.go

package report

import (
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

//go:generate mockgen -destination=mock_report.go -package=report github.com/carverauto/netwatch/pkg/report Source

// Source provides the stored state a report is rendered from.
type Source interface {
	GetDevices() ([]models.Device, error)
	GetMonitors() ([]models.MonitorConfig, error)
	GetEventsSince(since time.Time) ([]models.Event, error)
}
