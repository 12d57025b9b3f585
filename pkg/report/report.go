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

// Package report pkg/report/report.go

package report

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/carverauto/netwatch/pkg/models"
)

var (
	colorHeader = [3]int{30, 58, 95}
	colorText   = [3]int{44, 62, 80}
	colorMuted  = [3]int{127, 140, 141}
	colorDanger = [3]int{231, 76, 60}
	colorWarn   = [3]int{230, 126, 34}
	colorRowAlt = [3]int{241, 245, 249}
)

const maxTableEvents = 40

// Generator renders PDF status reports from stored monitoring state.
type Generator struct {
	source Source
	now    func() time.Time
}

// NewGenerator creates a report generator over the given source.
func NewGenerator(source Source) *Generator {
	return &Generator{
		source: source,
		now:    time.Now,
	}
}

// Generate renders a report covering the trailing window.
func (g *Generator) Generate(ctx context.Context, window time.Duration) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := g.now()
	since := now.Add(-window)

	events, err := g.source.GetEventsSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	monitors, err := g.source.GetMonitors()
	if err != nil {
		return nil, fmt.Errorf("failed to load monitors: %w", err)
	}

	devices, err := g.source.GetDevices()
	if err != nil {
		return nil, fmt.Errorf("failed to load devices: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	writeTitle(pdf, window, now)
	writeSummary(pdf, devices, monitors, events)
	writeEventsTable(pdf, events)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return buf.Bytes(), nil
}

func writeTitle(pdf *fpdf.Fpdf, window time.Duration, now time.Time) {
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(colorHeader[0], colorHeader[1], colorHeader[2])
	pdf.CellFormat(0, 12, "NETWATCH", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.CellFormat(0, 8, "Network Monitoring Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.CellFormat(0, 6, windowLabel(window), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", now.Format("January 2, 2006 at 15:04 MST")), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func writeSummary(pdf *fpdf.Fpdf, devices []models.Device, monitors []models.MonitorConfig, events []models.Event) {
	var lost, exceeded int

	for _, e := range events {
		switch e.Type {
		case models.EventPacketLoss:
			lost++
		case models.EventThresholdExceeded:
			exceeded++
		}
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	stats := []struct {
		label string
		value string
	}{
		{"Devices", strconv.Itoa(len(devices))},
		{"Monitors", strconv.Itoa(len(monitors))},
		{"Events in window", strconv.Itoa(len(events))},
		{"Packet loss events", strconv.Itoa(lost)},
		{"Threshold events", strconv.Itoa(exceeded)},
	}

	pdf.SetFont("Arial", "", 10)

	for _, stat := range stats {
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		pdf.CellFormat(50, 6, stat.label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
		pdf.CellFormat(0, 6, stat.value, "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
}

func writeEventsTable(pdf *fpdf.Fpdf, events []models.Event) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.CellFormat(0, 8, "Events", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	if len(events) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		pdf.CellFormat(0, 6, "No events recorded in this window.", "", 1, "L", false, 0, "")

		return
	}

	colWidths := []float64{30, 35, 30, 75}
	headers := []string{"Time", "Type", "Monitor", "Message"}

	pdf.SetFillColor(colorHeader[0], colorHeader[1], colorHeader[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 8)

	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	fill := false

	shown := events
	if len(shown) > maxTableEvents {
		shown = shown[:maxTableEvents]
	}

	for _, event := range shown {
		if fill {
			pdf.SetFillColor(colorRowAlt[0], colorRowAlt[1], colorRowAlt[2])
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
		pdf.CellFormat(colWidths[0], 6, event.Timestamp.Format("Jan 02 15:04"), "1", 0, "C", fill, 0, "")

		if event.Type == models.EventPacketLoss {
			pdf.SetTextColor(colorDanger[0], colorDanger[1], colorDanger[2])
		} else {
			pdf.SetTextColor(colorWarn[0], colorWarn[1], colorWarn[2])
		}
		pdf.CellFormat(colWidths[1], 6, string(event.Type), "1", 0, "C", fill, 0, "")

		pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
		pdf.CellFormat(colWidths[2], 6, truncate(event.MonitorName, 18), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 6, truncate(event.Message, 52), "1", 0, "L", fill, 0, "")

		pdf.Ln(-1)
		fill = !fill
	}

	if remaining := len(events) - len(shown); remaining > 0 {
		pdf.Ln(2)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		pdf.CellFormat(0, 6, fmt.Sprintf("+ %d more events in the selected window", remaining), "", 1, "L", false, 0, "")
	}
}

func windowLabel(window time.Duration) string {
	hours := int(window.Hours())

	switch {
	case hours == 1:
		return "Last hour"
	case hours > 1:
		return fmt.Sprintf("Last %d hours", hours)
	default:
		return fmt.Sprintf("Last %s", window)
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit-3] + "..."
}
