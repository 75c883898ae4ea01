package diag

import (
	"FlowScope/internal/model"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMetrics_Read(t *testing.T) {
	var m Metrics
	m.EventsProcessed.Add(42)
	m.SetRingStats(7, 0.5, 262144)
	m.SetWatchConnected(true)
	m.AddReconnect()
	m.AddReconnect()
	resync := time.Unix(1700000000, 0)
	m.SetLastResync(resync)
	m.SetTrackedPods(12)
	m.SetActiveFlows(99)

	s := m.Read()
	if s.EventsProcessed != 42 {
		t.Errorf("Expected 42 events processed, got %d", s.EventsProcessed)
	}
	if s.RingBufferDropCount != 7 || s.RingBufferUtilizationRatio != 0.5 || s.RingBufferSizeBytes != 262144 {
		t.Errorf("Unexpected ring stats: %+v", s)
	}
	if !s.IdentityWatchConnected || s.IdentityWatchReconnects != 2 {
		t.Errorf("Unexpected watch stats: %+v", s)
	}
	if s.IdentityLastFullResyncTs != resync.Unix() {
		t.Errorf("Expected resync ts %d, got %d", resync.Unix(), s.IdentityLastFullResyncTs)
	}
	if s.TrackedWorkloads != 12 || s.ActiveFlows != 99 {
		t.Errorf("Unexpected gauges: %+v", s)
	}
}

func TestHandler_MetricsContract(t *testing.T) {
	var m Metrics
	m.SetRingStats(3, 0.25, 131072)
	m.SetActiveFlows(5)

	srv := httptest.NewServer(NewHandler(&m, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode metrics JSON: %v", err)
	}

	// The scrape contract: these names must exist exactly.
	for _, name := range []string{
		"ringbuffer_drop_count",
		"ringbuffer_utilization_ratio",
		"ringbuffer_size_bytes",
		"identity_watch_connected",
		"identity_watch_reconnects",
		"identity_last_full_resync_ts",
		"tracked_workloads",
		"active_flows",
	} {
		if _, ok := body[name]; !ok {
			t.Errorf("Metrics JSON missing contract field %q", name)
		}
	}
	if body["ringbuffer_drop_count"].(float64) != 3 {
		t.Errorf("Expected drop count 3, got %v", body["ringbuffer_drop_count"])
	}
}

func TestHandler_Status(t *testing.T) {
	var m Metrics
	status := func() model.NodeStatus {
		return model.NodeStatus{
			NodeName:        "node-a",
			Version:         "test",
			Healthy:         true,
			EventsProcessed: 10,
			ActiveFlows:     2,
			StartTime:       time.Now().Add(-time.Minute),
		}
	}

	srv := httptest.NewServer(NewHandler(&m, status))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode status JSON: %v", err)
	}
	if body["node_name"] != "node-a" {
		t.Errorf("Expected node_name 'node-a', got %v", body["node_name"])
	}
	if body["healthy"] != true {
		t.Errorf("Expected healthy true, got %v", body["healthy"])
	}
	if body["uptime_seconds"].(float64) < 59 {
		t.Errorf("Expected uptime of about a minute, got %v", body["uptime_seconds"])
	}
}

func TestHandler_Healthz(t *testing.T) {
	srv := httptest.NewServer(NewHandler(&Metrics{}, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from /healthz, got %d", resp.StatusCode)
	}
}
