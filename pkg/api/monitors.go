// Package api pkg/api/monitors.go

package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/models"
)

const defaultMetricsWindowMinutes = 60

func (s *Server) listMonitors(w http.ResponseWriter, _ *http.Request) {
	monitors, err := s.store.GetMonitors()
	if err != nil {
		log.Printf("Error listing monitors: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list monitors")

		return
	}

	if monitors == nil {
		monitors = []models.MonitorConfig{}
	}

	writeJSON(w, http.StatusOK, monitors)
}

// createMonitor stores the definition and reloads it into the engine.
// Settings are validated in depth by the monitor builder; a definition
// that fails to build stays stored but does not poll.
func (s *Server) createMonitor(w http.ResponseWriter, r *http.Request) {
	var req createMonitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Kind != models.KindPing && req.Kind != models.KindBandwidth {
		writeError(w, http.StatusBadRequest, "monitor type must be ping or bandwidth")
		return
	}

	if req.Target == "" {
		writeError(w, http.StatusBadRequest, "monitor target is required")
		return
	}

	if req.Name == "" {
		req.Name = req.Target
	}

	if len(req.Settings) > 0 {
		var settings map[string]interface{}
		if err := json.Unmarshal(req.Settings, &settings); err != nil {
			writeError(w, http.StatusBadRequest, "settings must be a JSON object")
			return
		}
	}

	conf := &models.MonitorConfig{
		Kind:     req.Kind,
		Name:     req.Name,
		Target:   req.Target,
		Settings: req.Settings,
	}

	id, err := s.store.AddMonitor(conf)
	if err != nil {
		log.Printf("Error storing monitor %s: %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "failed to store monitor")

		return
	}

	conf.ID = id

	if err := s.engine.Reload(id); err != nil {
		log.Printf("Error loading monitor %d into engine: %v", id, err)
	}

	writeJSON(w, http.StatusCreated, conf)
}

func (s *Server) deleteMonitor(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid monitor id")
		return
	}

	if err := s.store.DeleteMonitor(id); err != nil {
		log.Printf("Error deleting monitor %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete monitor")

		return
	}

	s.engine.Remove(id)
	s.collector.Remove(id)

	writeJSON(w, http.StatusOK, statusOnlyResponse{Status: "deleted"})
}

// getMonitorMetrics serves recent points from the in-memory buffers,
// falling back to stored history when the buffers are cold (for
// example right after a restart).
func (s *Server) getMonitorMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid monitor id")
		return
	}

	minutes, ok := queryInt(r, "minutes", defaultMetricsWindowMinutes)
	if !ok {
		writeError(w, http.StatusBadRequest, "minutes must be a positive integer")
		return
	}

	since := time.Now().Add(-time.Duration(minutes) * time.Minute)

	points := s.collector.GetPoints(id)
	if len(points) == 0 {
		records, err := s.store.GetMetricsSince(id, since)
		if err != nil {
			log.Printf("Error loading metrics for monitor %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to load metrics")

			return
		}

		points = pointsFromRecords(records)
	} else {
		points = filterSince(points, since)
	}

	if points == nil {
		points = []models.MetricPoint{}
	}

	writeJSON(w, http.StatusOK, points)
}

func filterSince(points []models.MetricPoint, since time.Time) []models.MetricPoint {
	filtered := make([]models.MetricPoint, 0, len(points))

	for _, point := range points {
		if point.Timestamp.After(since) {
			filtered = append(filtered, point)
		}
	}

	return filtered
}

// pointsFromRecords rehydrates stored result payloads into graph
// points. Rows that no longer parse are skipped.
func pointsFromRecords(records []db.MetricRecord) []models.MetricPoint {
	points := make([]models.MetricPoint, 0, len(records))

	for i := range records {
		record := &records[i]

		point := models.MetricPoint{
			MonitorID: record.MonitorID,
			Timestamp: record.Timestamp,
			Kind:      record.Kind,
		}

		switch record.Kind {
		case models.KindPing:
			var data models.PingData
			if err := json.Unmarshal(record.Value, &data); err != nil {
				continue
			}

			point.LatencyMs = data.LatencyMs
			point.PacketLoss = data.PacketLoss
		case models.KindBandwidth:
			var data models.BandwidthData
			if err := json.Unmarshal(record.Value, &data); err != nil {
				continue
			}

			point.InBps = data.InBps
			point.OutBps = data.OutBps
		default:
			continue
		}

		points = append(points, point)
	}

	return points
}
