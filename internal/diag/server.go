package diag

import (
	"FlowScope/internal/model"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// NewHandler builds the diagnostics HTTP handler. status may be nil when
// the caller has no status provider (tests, replay tooling).
func NewHandler(m *Metrics, status func() model.NodeStatus) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(m.Read())
	}).Methods("GET")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	r.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status == nil {
			http.Error(w, "status provider not configured", http.StatusServiceUnavailable)
			return
		}
		s := status()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"node_name":        s.NodeName,
			"version":          s.Version,
			"healthy":          s.Healthy,
			"events_processed": s.EventsProcessed,
			"active_flows":     s.ActiveFlows,
			"tracked_pods":     s.TrackedPods,
			"uptime_seconds":   int64(s.Uptime().Seconds()),
		})
	}).Methods("GET")

	return r
}
