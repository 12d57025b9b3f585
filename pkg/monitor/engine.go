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

// Package monitor pkg/monitor/engine.go

package monitor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/carverauto/netwatch/pkg/db"
)

const (
	defaultTickInterval = time.Second
	defaultStopTimeout  = 5 * time.Second

	// minSleep guarantees forward progress even when a tick overruns
	// its interval.
	minSleep = 100 * time.Millisecond
)

// EngineConfig tunes the poll loop.
type EngineConfig struct {
	TickInterval time.Duration
	StopTimeout  time.Duration
}

// Engine drives the poll loop. It keeps the registry loaded from the
// config source and hands every produced result to the sink.
type Engine struct {
	cfg      EngineConfig
	registry *Registry
	source   ConfigSource
	sink     ResultSink

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	now func() time.Time
}

// NewEngine creates an engine over the given registry, definition
// source and result sink.
func NewEngine(cfg EngineConfig, registry *Registry, source ConfigSource, sink ResultSink) *Engine {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}

	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = defaultStopTimeout
	}

	return &Engine{
		cfg:      cfg,
		registry: registry,
		source:   source,
		sink:     sink,
		now:      time.Now,
	}
}

// Start loads the stored monitors and launches the poll loop. Starting
// a running engine is a no-op.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		log.Printf("Monitor engine already running")

		return nil
	}
	e.mu.Unlock()

	if err := e.loadAll(); err != nil {
		return err
	}

	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return nil
	}

	e.running = true
	e.stopCh = make(chan struct{})
	e.doneCh = make(chan struct{})
	stopCh, doneCh := e.stopCh, e.doneCh
	e.mu.Unlock()

	go e.run(ctx, stopCh, doneCh)

	log.Printf("Monitor engine started with %d monitors", e.registry.Count())

	return nil
}

// Stop signals the poll loop and waits for it to drain, up to the stop
// timeout. A loop stuck in a probe is abandoned; the engine still
// reports stopped.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return nil
	}

	e.running = false
	close(e.stopCh)
	doneCh := e.doneCh
	e.mu.Unlock()

	select {
	case <-doneCh:
		log.Printf("Monitor engine stopped")
	case <-time.After(e.cfg.StopTimeout):
		log.Printf("Monitor engine stop timed out after %v, abandoning poll loop", e.cfg.StopTimeout)
	case <-ctx.Done():
		log.Printf("Monitor engine stop canceled: %v", ctx.Err())
	}

	return nil
}

// Running reports whether the poll loop is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.running
}

// MonitorCount returns the number of live monitors.
func (e *Engine) MonitorCount() int {
	return e.registry.Count()
}

// Reload fetches one monitor's stored definition and applies it: a
// present row is upserted, a missing row removes the live entry.
func (e *Engine) Reload(id int64) error {
	conf, err := e.source.GetMonitor(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			e.registry.Remove(id)
			return nil
		}

		return fmt.Errorf("failed to load monitor %d: %w", id, err)
	}

	e.registry.Upsert(conf)

	return nil
}

// Remove drops a monitor from the live set.
func (e *Engine) Remove(id int64) {
	e.registry.Remove(id)
}

func (e *Engine) loadAll() error {
	configs, err := e.source.GetMonitors()
	if err != nil {
		return fmt.Errorf("failed to load monitors: %w", err)
	}

	e.registry.Load(configs)

	return nil
}

func (e *Engine) run(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	for {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		started := e.now()
		e.tick(ctx, stopCh)
		elapsed := e.now().Sub(started)

		sleep := e.cfg.TickInterval - elapsed
		if sleep < minSleep {
			sleep = minSleep
		}

		timer := time.NewTimer(sleep)
		select {
		case <-stopCh:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// tick polls the current snapshot in order. Stop requests are honored
// between monitors, never mid-probe.
func (e *Engine) tick(ctx context.Context, stopCh chan struct{}) {
	for _, m := range e.registry.Snapshot() {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		e.pollMonitor(ctx, m)
	}
}

// pollMonitor runs one monitor's probe. Errors and panics are contained
// here so one broken monitor cannot take down the loop.
func (e *Engine) pollMonitor(ctx context.Context, m Monitor) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic polling monitor %d (%s): %v", m.ID(), m.Name(), r)
		}
	}()

	result, err := m.Poll(ctx, e.now())
	if err != nil {
		log.Printf("Error polling monitor %d (%s): %v", m.ID(), m.Name(), err)
		return
	}

	if result == nil {
		return
	}

	if err := e.sink.Handle(ctx, result); err != nil {
		log.Printf("Error handling result for monitor %d (%s): %v", m.ID(), m.Name(), err)
	}
}
