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

// Package api pkg/api/server.go

package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	httpx "github.com/carverauto/netwatch/pkg/http"
)

// Server is the HTTP API over the monitoring engine and its storage.
type Server struct {
	router     *mux.Router
	handler    http.Handler
	store      Store
	engine     Engine
	discoverer Discoverer
	collector  Collector
	reporter   Reporter
	hub        Hub
	started    time.Time
}

// NewServer builds the API server and its route table.
func NewServer(store Store, engine Engine, discoverer Discoverer, collector Collector, reporter Reporter, hub Hub) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		store:      store,
		engine:     engine,
		discoverer: discoverer,
		collector:  collector,
		reporter:   reporter,
		hub:        hub,
		started:    time.Now(),
	}

	s.setupRoutes()

	// The middleware wraps the router rather than hanging off it so
	// CORS preflights are answered even for unmatched routes.
	s.handler = httpx.CommonMiddleware(httpx.RequestLogger(s.router))

	return s
}

// ServeHTTP makes the server mountable anywhere an http.Handler goes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/api/status", s.getStatus).Methods(http.MethodGet)

	s.router.HandleFunc("/api/devices", s.listDevices).Methods(http.MethodGet)
	s.router.HandleFunc("/api/devices", s.createDevice).Methods(http.MethodPost)
	s.router.HandleFunc("/api/devices/{id}", s.deleteDevice).Methods(http.MethodDelete)
	s.router.HandleFunc("/api/devices/{id}/interfaces", s.listInterfaces).Methods(http.MethodGet)
	s.router.HandleFunc("/api/devices/{id}/discover", s.discoverDevice).Methods(http.MethodPost)

	s.router.HandleFunc("/api/monitors", s.listMonitors).Methods(http.MethodGet)
	s.router.HandleFunc("/api/monitors", s.createMonitor).Methods(http.MethodPost)
	s.router.HandleFunc("/api/monitors/{id}", s.deleteMonitor).Methods(http.MethodDelete)
	s.router.HandleFunc("/api/monitors/{id}/metrics", s.getMonitorMetrics).Methods(http.MethodGet)

	s.router.HandleFunc("/api/events", s.listEvents).Methods(http.MethodGet)
	s.router.HandleFunc("/api/report", s.getReport).Methods(http.MethodGet)

	s.router.HandleFunc("/ws", s.hub.ServeWS)
}

func (s *Server) getStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:        "ok",
		EngineRunning: s.engine.Running(),
		Monitors:      s.engine.MonitorCount(),
		WSClients:     s.hub.ClientCount(),
		UptimeSeconds: time.Since(s.started).Seconds(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func idFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// queryInt reads an integer query parameter, returning the fallback
// when absent. A present but malformed value reports ok=false.
func queryInt(r *http.Request, key string, fallback int) (value int, ok bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, false
	}

	return parsed, true
}
