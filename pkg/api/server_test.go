package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/netwatch/pkg/db"
	"github.com/carverauto/netwatch/pkg/models"
)

type serverMocks struct {
	store      *MockStore
	engine     *MockEngine
	discoverer *MockDiscoverer
	collector  *MockCollector
	reporter   *MockReporter
	hub        *MockHub
}

func newTestServer(t *testing.T) (*Server, serverMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := serverMocks{
		store:      NewMockStore(ctrl),
		engine:     NewMockEngine(ctrl),
		discoverer: NewMockDiscoverer(ctrl),
		collector:  NewMockCollector(ctrl),
		reporter:   NewMockReporter(ctrl),
		hub:        NewMockHub(ctrl),
	}

	srv := NewServer(mocks.store, mocks.engine, mocks.discoverer, mocks.collector, mocks.reporter, mocks.hub)

	return srv, mocks
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	return rec
}

func TestGetStatus(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.engine.EXPECT().Running().Return(true)
	mocks.engine.EXPECT().MonitorCount().Return(3)
	mocks.hub.EXPECT().ClientCount().Return(2)

	rec := doRequest(t, srv, http.MethodGet, "/api/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var status statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	assert.Equal(t, "ok", status.Status)
	assert.True(t, status.EngineRunning)
	assert.Equal(t, 3, status.Monitors)
	assert.Equal(t, 2, status.WSClients)
	assert.GreaterOrEqual(t, status.UptimeSeconds, 0.0)
}

func TestListDevicesEmpty(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.store.EXPECT().GetDevices().Return(nil, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/devices", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateDevice(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.discoverer.EXPECT().
		Validate(gomock.Any(), "10.0.0.1", "public").
		Return("Cisco IOS Software", nil)

	mocks.store.EXPECT().
		AddDevice(gomock.Any()).
		DoAndReturn(func(device *models.Device) (int64, error) {
			assert.Equal(t, "10.0.0.1", device.Name)
			assert.Equal(t, "10.0.0.1", device.Address)
			assert.Equal(t, "public", device.Community)
			assert.Equal(t, "Cisco IOS Software", device.SysDescr)

			return 7, nil
		})

	discovered := []models.Interface{{IfIndex: 1, Name: "GigabitEthernet0/0"}}
	stored := []models.Interface{{ID: 12, DeviceID: 7, IfIndex: 1, Name: "GigabitEthernet0/0"}}

	mocks.discoverer.EXPECT().
		DiscoverInterfaces(gomock.Any(), "10.0.0.1", "public").
		Return(discovered, nil)
	mocks.store.EXPECT().ReplaceInterfaces(int64(7), discovered).Return(nil)
	mocks.store.EXPECT().GetInterfaces(int64(7)).Return(stored, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/devices", `{"address": "10.0.0.1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp deviceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "10.0.0.1", resp.Name)
	require.Len(t, resp.Interfaces, 1)
	assert.Equal(t, int64(12), resp.Interfaces[0].ID)
}

func TestCreateDeviceValidationFailure(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.discoverer.EXPECT().
		Validate(gomock.Any(), "10.0.0.2", "secret").
		Return("", fmt.Errorf("request timeout"))

	rec := doRequest(t, srv, http.MethodPost, "/api/devices",
		`{"address": "10.0.0.2", "community": "secret"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "SNMP validation failed")
}

func TestCreateDeviceMissingAddress(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/devices", `{"name": "router"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDeviceDuplicate(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.discoverer.EXPECT().
		Validate(gomock.Any(), "10.0.0.1", "public").
		Return("Cisco IOS Software", nil)
	mocks.store.EXPECT().
		AddDevice(gomock.Any()).
		Return(int64(0), fmt.Errorf("%w: 10.0.0.1", db.ErrDeviceExists))

	rec := doRequest(t, srv, http.MethodPost, "/api/devices", `{"address": "10.0.0.1"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "already exists")
}

func TestDeleteDevice(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.store.EXPECT().DeleteDevice(int64(3)).Return([]int64{7, 9}, nil)
	mocks.engine.EXPECT().Remove(int64(7))
	mocks.engine.EXPECT().Remove(int64(9))
	mocks.collector.EXPECT().Remove(int64(7))
	mocks.collector.EXPECT().Remove(int64(9))

	rec := doRequest(t, srv, http.MethodDelete, "/api/devices/3", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp deleteDeviceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "deleted", resp.Status)
	assert.Equal(t, []int64{7, 9}, resp.RemovedMonitors)
}

func TestDeleteDeviceInvalidID(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodDelete, "/api/devices/router", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListInterfacesDiscoversWhenEmpty(t *testing.T) {
	srv, mocks := newTestServer(t)

	device := &models.Device{ID: 5, Name: "core", Address: "10.0.0.5", Community: "public"}
	discovered := []models.Interface{{IfIndex: 2, Name: "eth1"}}
	stored := []models.Interface{{ID: 31, DeviceID: 5, IfIndex: 2, Name: "eth1"}}

	mocks.store.EXPECT().GetDevice(int64(5)).Return(device, nil)

	gomock.InOrder(
		mocks.store.EXPECT().GetInterfaces(int64(5)).Return(nil, nil),
		mocks.discoverer.EXPECT().
			DiscoverInterfaces(gomock.Any(), "10.0.0.5", "public").
			Return(discovered, nil),
		mocks.store.EXPECT().ReplaceInterfaces(int64(5), discovered).Return(nil),
		mocks.store.EXPECT().GetInterfaces(int64(5)).Return(stored, nil),
	)

	rec := doRequest(t, srv, http.MethodGet, "/api/devices/5/interfaces", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var ifaces []models.Interface
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ifaces))

	require.Len(t, ifaces, 1)
	assert.Equal(t, int64(31), ifaces[0].ID)
}

func TestListInterfacesUnknownDevice(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.store.EXPECT().
		GetDevice(int64(9)).
		Return(nil, fmt.Errorf("%w: device 9", db.ErrNotFound))

	rec := doRequest(t, srv, http.MethodGet, "/api/devices/9/interfaces", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDiscoverDeviceReplacesInterfaces(t *testing.T) {
	srv, mocks := newTestServer(t)

	device := &models.Device{ID: 5, Address: "10.0.0.5", Community: "public"}
	discovered := []models.Interface{{IfIndex: 1, Name: "eth0"}}
	stored := []models.Interface{{ID: 40, DeviceID: 5, IfIndex: 1, Name: "eth0"}}

	mocks.store.EXPECT().GetDevice(int64(5)).Return(device, nil)
	mocks.discoverer.EXPECT().
		DiscoverInterfaces(gomock.Any(), "10.0.0.5", "public").
		Return(discovered, nil)
	mocks.store.EXPECT().ReplaceInterfaces(int64(5), discovered).Return(nil)
	mocks.store.EXPECT().GetInterfaces(int64(5)).Return(stored, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/devices/5/discover", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var ifaces []models.Interface
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ifaces))
	require.Len(t, ifaces, 1)
}

func TestDiscoverDeviceUnreachable(t *testing.T) {
	srv, mocks := newTestServer(t)

	device := &models.Device{ID: 5, Address: "10.0.0.5", Community: "public"}

	mocks.store.EXPECT().GetDevice(int64(5)).Return(device, nil)
	mocks.discoverer.EXPECT().
		DiscoverInterfaces(gomock.Any(), "10.0.0.5", "public").
		Return(nil, fmt.Errorf("request timeout"))

	rec := doRequest(t, srv, http.MethodPost, "/api/devices/5/discover", "")

	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreateMonitor(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.store.EXPECT().
		AddMonitor(gomock.Any()).
		DoAndReturn(func(conf *models.MonitorConfig) (int64, error) {
			assert.Equal(t, models.KindPing, conf.Kind)
			assert.Equal(t, "gateway", conf.Name)
			assert.Equal(t, "192.168.1.1", conf.Target)
			assert.JSONEq(t, `{"interval": 5, "threshold": 10}`, string(conf.Settings))

			return 4, nil
		})
	mocks.engine.EXPECT().Reload(int64(4)).Return(nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/monitors",
		`{"type": "ping", "name": "gateway", "target": "192.168.1.1", "settings": {"interval": 5, "threshold": 10}}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var conf models.MonitorConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conf))

	assert.Equal(t, int64(4), conf.ID)
	assert.Equal(t, "gateway", conf.Name)
}

func TestCreateMonitorDefaultsNameToTarget(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.store.EXPECT().
		AddMonitor(gomock.Any()).
		DoAndReturn(func(conf *models.MonitorConfig) (int64, error) {
			assert.Equal(t, "8.8.8.8", conf.Name)
			return 11, nil
		})
	mocks.engine.EXPECT().Reload(int64(11)).Return(nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/monitors",
		`{"type": "ping", "target": "8.8.8.8"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateMonitorValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unknown type",
			body: `{"type": "traceroute", "target": "10.0.0.1"}`,
			want: "monitor type must be ping or bandwidth",
		},
		{
			name: "missing target",
			body: `{"type": "ping", "name": "gateway"}`,
			want: "monitor target is required",
		},
		{
			name: "settings not an object",
			body: `{"type": "ping", "target": "10.0.0.1", "settings": "fast"}`,
			want: "settings must be a JSON object",
		},
		{
			name: "malformed body",
			body: `{"type": `,
			want: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t)

			rec := doRequest(t, srv, http.MethodPost, "/api/monitors", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Error)
		})
	}
}

func TestDeleteMonitor(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.store.EXPECT().DeleteMonitor(int64(2)).Return(nil)
	mocks.engine.EXPECT().Remove(int64(2))
	mocks.collector.EXPECT().Remove(int64(2))

	rec := doRequest(t, srv, http.MethodDelete, "/api/monitors/2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "deleted"}`, rec.Body.String())
}

func TestMonitorMetricsFromBuffer(t *testing.T) {
	srv, mocks := newTestServer(t)

	latency := 2.35
	fresh := models.MetricPoint{
		MonitorID: 1,
		Timestamp: time.Now().Add(-time.Minute),
		Kind:      models.KindPing,
		LatencyMs: &latency,
	}
	stale := models.MetricPoint{
		MonitorID: 1,
		Timestamp: time.Now().Add(-2 * time.Hour),
		Kind:      models.KindPing,
		LatencyMs: &latency,
	}

	mocks.collector.EXPECT().GetPoints(int64(1)).Return([]models.MetricPoint{stale, fresh})

	rec := doRequest(t, srv, http.MethodGet, "/api/monitors/1/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var points []models.MetricPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))

	require.Len(t, points, 1)
	require.NotNil(t, points[0].LatencyMs)
	assert.InDelta(t, 2.35, *points[0].LatencyMs, 0.001)
}

func TestMonitorMetricsFallsBackToStore(t *testing.T) {
	srv, mocks := newTestServer(t)

	now := time.Now()
	records := []db.MetricRecord{
		{
			MonitorID: 1,
			Timestamp: now.Add(-10 * time.Minute),
			Kind:      models.KindPing,
			Value:     json.RawMessage(`{"latency_ms": 2.35, "packet_loss": false}`),
		},
		{
			MonitorID: 1,
			Timestamp: now.Add(-5 * time.Minute),
			Kind:      models.KindBandwidth,
			Value:     json.RawMessage(`{"in_bps": 3200000, "out_bps": 1600000}`),
		},
		{
			MonitorID: 1,
			Timestamp: now.Add(-time.Minute),
			Kind:      models.KindPing,
			Value:     json.RawMessage(`{broken`),
		},
	}

	mocks.collector.EXPECT().GetPoints(int64(1)).Return(nil)
	mocks.store.EXPECT().
		GetMetricsSince(int64(1), gomock.Any()).
		DoAndReturn(func(_ int64, since time.Time) ([]db.MetricRecord, error) {
			assert.WithinDuration(t, now.Add(-30*time.Minute), since, 5*time.Second)
			return records, nil
		})

	rec := doRequest(t, srv, http.MethodGet, "/api/monitors/1/metrics?minutes=30", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var points []models.MetricPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))

	require.Len(t, points, 2)
	require.NotNil(t, points[0].LatencyMs)
	assert.InDelta(t, 2.35, *points[0].LatencyMs, 0.001)
	assert.InDelta(t, 3200000, points[1].InBps, 0.001)
}

func TestMonitorMetricsRejectsBadWindow(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, query := range []string{"minutes=0", "minutes=-5", "minutes=soon"} {
		rec := doRequest(t, srv, http.MethodGet, "/api/monitors/1/metrics?"+query, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestListEvents(t *testing.T) {
	srv, mocks := newTestServer(t)

	events := []models.Event{
		{ID: 1, Type: models.EventPacketLoss, MonitorID: 3, MonitorName: "gateway", Message: "gateway: no reply from 192.168.1.1 (packet loss)"},
	}

	mocks.store.EXPECT().GetEvents(50).Return(events, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/events", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	require.Len(t, got, 1)
	assert.Equal(t, models.EventPacketLoss, got[0].Type)
}

func TestListEventsCustomLimit(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.store.EXPECT().GetEvents(10).Return(nil, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/events?limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetReport(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.reporter.EXPECT().
		Generate(gomock.Any(), 24*time.Hour).
		Return([]byte("%PDF-1.4 report"), nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/report", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=netwatch-report-")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestGetReportCustomWindow(t *testing.T) {
	srv, mocks := newTestServer(t)

	mocks.reporter.EXPECT().
		Generate(gomock.Any(), 6*time.Hour).
		Return([]byte("%PDF-1.4 report"), nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/report?hours=6", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodOptions, "/api/devices", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
