// Package api pkg/api/types.go

package api

import (
	"encoding/json"

	"github.com/carverauto/netwatch/pkg/models"
)

type createDeviceRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Community string `json:"community"`
}

type createMonitorRequest struct {
	Kind     models.MonitorKind `json:"type"`
	Name     string             `json:"name"`
	Target   string             `json:"target"`
	Settings json.RawMessage    `json:"settings"`
}

type deviceResponse struct {
	models.Device
	Interfaces []models.Interface `json:"interfaces"`
}

type deleteDeviceResponse struct {
	Status          string  `json:"status"`
	RemovedMonitors []int64 `json:"removed_monitors"`
}

type statusResponse struct {
	Status        string  `json:"status"`
	EngineRunning bool    `json:"engine_running"`
	Monitors      int     `json:"monitors"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusOnlyResponse struct {
	Status string `json:"status"`
}
