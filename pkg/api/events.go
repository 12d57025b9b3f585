// Package api pkg/api/events.go

package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/carverauto/netwatch/pkg/models"
)

const (
	defaultEventLimit  = 50
	defaultReportHours = 24
)

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", defaultEventLimit)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	events, err := s.store.GetEvents(limit)
	if err != nil {
		log.Printf("Error listing events: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list events")

		return
	}

	if events == nil {
		events = []models.Event{}
	}

	writeJSON(w, http.StatusOK, events)
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	hours, ok := queryInt(r, "hours", defaultReportHours)
	if !ok {
		writeError(w, http.StatusBadRequest, "hours must be a positive integer")
		return
	}

	data, err := s.reporter.Generate(r.Context(), time.Duration(hours)*time.Hour)
	if err != nil {
		log.Printf("Error generating report: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate report")

		return
	}

	filename := fmt.Sprintf("netwatch-report-%s.pdf", time.Now().Format("20060102-1504"))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing report response: %v", err)
	}
}
