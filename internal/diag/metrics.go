package diag

import (
	"math"
	"sync/atomic"
	"time"
)

// Metrics is the agent-wide diagnostic registry. Counters are written by
// the pipeline tasks and read by the HTTP endpoint and GetStatus. The JSON
// field names in Snapshot are a scrape contract; renaming one breaks
// downstream collectors.
type Metrics struct {
	EventsProcessed    atomic.Uint64
	EventsTruncated    atomic.Uint64
	EventsSelfFiltered atomic.Uint64
	SampledEvents      atomic.Uint64
	PendingTimeouts    atomic.Uint64
	PendingOverflow    atomic.Uint64
	ResolutionDropped  atomic.Uint64
	StreamLagged       atomic.Uint64

	ringDrops       atomic.Uint64
	ringUtilization atomic.Uint64 // float64 bits
	ringSize        atomic.Int64

	watchConnected atomic.Bool
	reconnects     atomic.Uint64
	lastResyncUnix atomic.Int64
	trackedPods    atomic.Int64
	activeFlows    atomic.Int64
}

// Snapshot is one consistent-enough read of every metric. Field names are
// the contract other systems scrape.
type Snapshot struct {
	RingBufferDropCount        uint64  `json:"ringbuffer_drop_count"`
	RingBufferUtilizationRatio float64 `json:"ringbuffer_utilization_ratio"`
	RingBufferSizeBytes        int64   `json:"ringbuffer_size_bytes"`
	IdentityWatchConnected     bool    `json:"identity_watch_connected"`
	IdentityWatchReconnects    uint64  `json:"identity_watch_reconnects"`
	IdentityLastFullResyncTs   int64   `json:"identity_last_full_resync_ts"`
	TrackedWorkloads           int64   `json:"tracked_workloads"`
	ActiveFlows                int64   `json:"active_flows"`
	EventsProcessed            uint64  `json:"events_processed"`
	EventsTruncated            uint64  `json:"events_truncated"`
	EventsSelfFiltered         uint64  `json:"events_self_filtered"`
	SampledEvents              uint64  `json:"sampled_events"`
	PendingTimeouts            uint64  `json:"pending_timeouts"`
	PendingOverflow            uint64  `json:"pending_overflow"`
	ResolutionDropped          uint64  `json:"resolution_dropped"`
	StreamLagged               uint64  `json:"stream_lagged"`
}

// SetRingStats records the source's buffer health. Drops is the absolute
// count maintained by the kernel side, not a delta.
func (m *Metrics) SetRingStats(drops uint64, utilization float64, sizeBytes int) {
	m.ringDrops.Store(drops)
	m.ringUtilization.Store(math.Float64bits(utilization))
	m.ringSize.Store(int64(sizeBytes))
}

// SetWatchConnected flips the control-plane connection flag.
func (m *Metrics) SetWatchConnected(connected bool) {
	m.watchConnected.Store(connected)
}

// AddReconnect counts one watcher reconnection attempt cycle.
func (m *Metrics) AddReconnect() {
	m.reconnects.Add(1)
}

// SetLastResync records the completion time of a full identity resync.
func (m *Metrics) SetLastResync(t time.Time) {
	m.lastResyncUnix.Store(t.Unix())
}

// SetTrackedPods records the current identity cache population.
func (m *Metrics) SetTrackedPods(n int) {
	m.trackedPods.Store(int64(n))
}

// SetActiveFlows records the current live flow table size.
func (m *Metrics) SetActiveFlows(n int) {
	m.activeFlows.Store(int64(n))
}

// Read returns the current values of every metric.
func (m *Metrics) Read() Snapshot {
	return Snapshot{
		RingBufferDropCount:        m.ringDrops.Load(),
		RingBufferUtilizationRatio: math.Float64frombits(m.ringUtilization.Load()),
		RingBufferSizeBytes:        m.ringSize.Load(),
		IdentityWatchConnected:     m.watchConnected.Load(),
		IdentityWatchReconnects:    m.reconnects.Load(),
		IdentityLastFullResyncTs:   m.lastResyncUnix.Load(),
		TrackedWorkloads:           m.trackedPods.Load(),
		ActiveFlows:                m.activeFlows.Load(),
		EventsProcessed:            m.EventsProcessed.Load(),
		EventsTruncated:            m.EventsTruncated.Load(),
		EventsSelfFiltered:         m.EventsSelfFiltered.Load(),
		SampledEvents:              m.SampledEvents.Load(),
		PendingTimeouts:            m.PendingTimeouts.Load(),
		PendingOverflow:            m.PendingOverflow.Load(),
		ResolutionDropped:          m.ResolutionDropped.Load(),
		StreamLagged:               m.StreamLagged.Load(),
	}
}
