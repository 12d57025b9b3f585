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

// Package monitor pkg/monitor/registry.go

package monitor

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/carverauto/netwatch/pkg/models"
)

// Builder constructs a monitor from its stored definition.
type Builder func(conf *models.MonitorConfig) (Monitor, error)

// BuilderRegistry maps monitor kinds to their builders.
type BuilderRegistry struct {
	mu       sync.RWMutex
	builders map[models.MonitorKind]Builder
}

// NewBuilderRegistry creates an empty builder registry.
func NewBuilderRegistry() *BuilderRegistry {
	return &BuilderRegistry{
		builders: make(map[models.MonitorKind]Builder),
	}
}

// Register adds a builder for the given monitor kind.
func (r *BuilderRegistry) Register(kind models.MonitorKind, builder Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.builders[kind] = builder
}

// Build constructs a monitor of the configured kind.
func (r *BuilderRegistry) Build(conf *models.MonitorConfig) (Monitor, error) {
	r.mu.RLock()
	builder, ok := r.builders[conf.Kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMonitorKind, conf.Kind)
	}

	return builder(conf)
}

// Registry owns the live monitor set. Mutations swap or replace map
// entries under a short lock; probes never run while it is held.
type Registry struct {
	mu       sync.RWMutex
	builders *BuilderRegistry
	monitors map[int64]Monitor
}

// NewRegistry creates an empty registry backed by the given builders.
func NewRegistry(builders *BuilderRegistry) *Registry {
	return &Registry{
		builders: builders,
		monitors: make(map[int64]Monitor),
	}
}

// Load replaces the whole monitor set with freshly built monitors.
// Definitions that fail to build are skipped. Rate baselines do not
// survive a full reload.
func (r *Registry) Load(configs []models.MonitorConfig) {
	monitors := make(map[int64]Monitor, len(configs))

	for i := range configs {
		conf := &configs[i]

		m, err := r.builders.Build(conf)
		if err != nil {
			log.Printf("Skipping monitor %d (%s): %v", conf.ID, conf.Name, err)
			continue
		}

		monitors[conf.ID] = m
	}

	r.mu.Lock()
	r.monitors = monitors
	r.mu.Unlock()

	log.Printf("Loaded %d monitors", len(monitors))
}

// Upsert builds and installs one monitor, replacing any previous entry
// and its accumulated state. When the build fails the existing entry is
// removed: a monitor whose definition no longer resolves must stop
// polling.
func (r *Registry) Upsert(conf *models.MonitorConfig) {
	m, err := r.builders.Build(conf)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		log.Printf("Removing monitor %d (%s): %v", conf.ID, conf.Name, err)
		delete(r.monitors, conf.ID)

		return
	}

	r.monitors[conf.ID] = m
}

// Remove drops a monitor from the set. Removing an unknown id is a
// no-op.
func (r *Registry) Remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.monitors, id)
}

// Snapshot returns the current monitors ordered by id. Callers poll
// the snapshot after the lock is released, so concurrent mutations
// take effect on the next tick.
func (r *Registry) Snapshot() []Monitor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	monitors := make([]Monitor, 0, len(r.monitors))
	for _, m := range r.monitors {
		monitors = append(monitors, m)
	}

	sort.Slice(monitors, func(i, j int) bool {
		return monitors[i].ID() < monitors[j].ID()
	})

	return monitors
}

// Count returns the number of registered monitors.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.monitors)
}
