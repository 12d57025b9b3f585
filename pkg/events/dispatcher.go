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

// Package events pkg/events/dispatcher.go

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/models"
	"github.com/carverauto/netwatch/pkg/ws"
)

// Dispatcher is the synchronous sink behind the poll loop. Every
// result is buffered for graphs, persisted, classified into an event
// when it crossed a threshold, and pushed to connected dashboards.
// Storage failures are logged and never stop the pipeline.
type Dispatcher struct {
	store     EventStore
	collector Collector
	hub       Broadcaster
}

// NewDispatcher wires the sink to its storage, in-memory buffers and
// broadcast hub.
func NewDispatcher(store EventStore, collector Collector, hub Broadcaster) *Dispatcher {
	return &Dispatcher{
		store:     store,
		collector: collector,
		hub:       hub,
	}
}

// Handle processes one poll result through the full pipeline.
func (d *Dispatcher) Handle(_ context.Context, result *models.PollResult) error {
	d.collector.Add(result.MonitorID, metricPoint(result))
	d.storeMetric(result)

	if event := classify(result); event != nil {
		id, err := d.store.StoreEvent(event)
		if err != nil {
			log.Printf("Error storing event for monitor %d (%s): %v", result.MonitorID, result.MonitorName, err)
		} else {
			event.ID = id
		}

		d.hub.Broadcast(ws.MsgNewEvent, event)
	}

	d.hub.Broadcast(ws.MsgMonitorData, result)

	return nil
}

func (d *Dispatcher) storeMetric(result *models.PollResult) {
	var payload interface{}

	switch result.Kind {
	case models.KindPing:
		payload = result.Ping
	case models.KindBandwidth:
		payload = result.Bandwidth
	default:
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling metric for monitor %d: %v", result.MonitorID, err)
		return
	}

	record := &db.MetricRecord{
		MonitorID: result.MonitorID,
		Timestamp: result.Timestamp,
		Kind:      result.Kind,
		Value:     value,
	}

	if err := d.store.StoreMetric(record); err != nil {
		log.Printf("Error storing metric for monitor %d (%s): %v", result.MonitorID, result.MonitorName, err)
	}
}

// metricPoint flattens a result into the shape the graph buffers hold.
func metricPoint(result *models.PollResult) models.MetricPoint {
	point := models.MetricPoint{
		MonitorID: result.MonitorID,
		Timestamp: result.Timestamp,
		Kind:      result.Kind,
	}

	if result.Ping != nil {
		point.LatencyMs = result.Ping.LatencyMs
		point.PacketLoss = result.Ping.PacketLoss
	}

	if result.Bandwidth != nil {
		point.InBps = result.Bandwidth.InBps
		point.OutBps = result.Bandwidth.OutBps
	}

	return point
}

// classify turns a result into an event when it reports packet loss or
// a crossed threshold. Results inside normal bounds produce nothing.
func classify(result *models.PollResult) *models.Event {
	switch result.Kind {
	case models.KindPing:
		return classifyPing(result)
	case models.KindBandwidth:
		return classifyBandwidth(result)
	default:
		return nil
	}
}

func classifyPing(result *models.PollResult) *models.Event {
	data := result.Ping
	if data == nil {
		return nil
	}

	if data.PacketLoss {
		return newEvent(result, models.EventPacketLoss,
			fmt.Sprintf("%s: no reply from %s (packet loss)", result.MonitorName, result.Target))
	}

	if data.ThresholdExceeded != nil && *data.ThresholdExceeded {
		return newEvent(result, models.EventThresholdExceeded,
			fmt.Sprintf("%s: latency %vms exceeded threshold %vms",
				result.MonitorName, *data.LatencyMs, *data.ThresholdMs))
	}

	return nil
}

func classifyBandwidth(result *models.PollResult) *models.Event {
	data := result.Bandwidth
	if data == nil {
		return nil
	}

	if data.ThresholdExceeded != nil && *data.ThresholdExceeded {
		return newEvent(result, models.EventThresholdExceeded,
			fmt.Sprintf("%s: bandwidth in %.2fMbps / out %.2fMbps exceeded threshold %vMbps",
				result.MonitorName, data.InBps/1e6, data.OutBps/1e6, *data.ThresholdMbps))
	}

	return nil
}

func newEvent(result *models.PollResult, eventType models.EventType, message string) *models.Event {
	return &models.Event{
		Timestamp:   result.Timestamp,
		Type:        eventType,
		MonitorID:   result.MonitorID,
		MonitorName: result.MonitorName,
		Message:     message,
	}
}
