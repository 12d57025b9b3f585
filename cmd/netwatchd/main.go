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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/carverauto/netwatch/pkg/api"
	"github.com/carverauto/netwatch/pkg/config"
	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/events"
	"github.com/carverauto/netwatch/pkg/lifecycle"
	"github.com/carverauto/netwatch/pkg/metrics"
	"github.com/carverauto/netwatch/pkg/monitor"
	"github.com/carverauto/netwatch/pkg/ping"
	"github.com/carverauto/netwatch/pkg/report"
	"github.com/carverauto/netwatch/pkg/snmp"
	"github.com/carverauto/netwatch/pkg/ws"
)

const (
	retentionSweepInterval = time.Hour

	// Graph buffers idle this long belong to monitors that no longer
	// poll; the sweep reclaims them.
	staleBufferAge = 24 * time.Hour
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log.Printf("Starting netwatchd...")

	// Parse command line flags
	configPath := flag.String("config", "/etc/netwatch/netwatch.json", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	store, err := db.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	pinger, err := ping.NewPinger(ping.Config{
		ListenAddr: cfg.Ping.ListenAddr,
		RateLimit:  cfg.Ping.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to start pinger: %w", err)
	}

	snmpClient := snmp.NewClient(snmp.ClientConfig{
		Port:    cfg.SNMP.Port,
		Timeout: time.Duration(cfg.SNMP.Timeout),
		Retries: cfg.SNMP.Retries,
	})

	collector := metrics.NewManager(cfg.GraphPoints)
	hub := ws.NewHub()
	dispatcher := events.NewDispatcher(store, collector, hub)

	registry := monitor.NewRegistry(monitor.NewBuilders(pinger, snmpClient, store))

	engine := monitor.NewEngine(monitor.EngineConfig{
		TickInterval: time.Duration(cfg.TickInterval),
		StopTimeout:  time.Duration(cfg.ShutdownTimeout),
	}, registry, store, dispatcher)

	reporter := report.NewGenerator(store)
	apiServer := api.NewServer(store, engine, snmpClient, collector, reporter, hub)

	svc := &netwatchService{
		engine:    engine,
		hub:       hub,
		pinger:    pinger,
		store:     store,
		collector: collector,
		retention: time.Duration(cfg.RetentionDays) * 24 * time.Hour,
	}

	opts := lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "netwatchd",
		Service:     svc,
		Handler:     apiServer,
	}

	// Run service with lifecycle management
	if err := lifecycle.RunServer(context.Background(), &opts); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// netwatchService ties the poll engine and its supporting loops to the
// process lifecycle.
type netwatchService struct {
	engine    *monitor.Engine
	hub       *ws.Hub
	pinger    *ping.Pinger
	store     db.Service
	collector metrics.MetricCollector
	retention time.Duration
}

func (s *netwatchService) Start(ctx context.Context) error {
	log.Printf("Starting monitoring service...")

	go s.hub.Run(ctx)
	go s.retentionLoop(ctx)

	return s.engine.Start(ctx)
}

func (s *netwatchService) Stop(ctx context.Context) error {
	log.Printf("Stopping monitoring service...")

	err := s.engine.Stop(ctx)

	if perr := s.pinger.Stop(); perr != nil {
		log.Printf("Error closing ICMP socket: %v", perr)
	}

	if cerr := s.store.Close(); cerr != nil {
		log.Printf("Error closing database: %v", cerr)
	}

	return err
}

// retentionLoop prunes stored events and metric history on an hourly
// cadence.
func (s *netwatchService) retentionLoop(ctx context.Context) {
	ticker := time.NewTicker(retentionSweepInterval)
	defer ticker.Stop()

	s.sweep()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *netwatchService) sweep() {
	if err := s.store.CleanOldData(s.retention); err != nil {
		log.Printf("Error cleaning old data: %v", err)
	}

	s.collector.CleanupStale(staleBufferAge)
}
