package model

import "time"

// FlowQuery is a filter over the live flow table. Zero values match
// everything; Limit caps the result set after sorting by total bytes.
type FlowQuery struct {
	Namespace string
	PodName   string
	Start     time.Time
	End       time.Time
	Limit     int
}

// Matches reports whether a record passes the query's filters.
// The time range matches records whose activity overlaps [Start, End].
func (q FlowQuery) Matches(r FlowRecord) bool {
	if q.Namespace != "" && r.Key.Identity.Namespace != q.Namespace {
		return false
	}
	if q.PodName != "" && r.Key.Identity.PodName != q.PodName {
		return false
	}
	if !q.Start.IsZero() && r.LastSeen.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.FirstSeen.After(q.End) {
		return false
	}
	return true
}

// QueryResult carries flows merged from one or more agents. Partial is set
// when at least one peer could not contribute.
type QueryResult struct {
	Flows        []FlowRecord
	Partial      bool
	PeersQueried int
	PeersFailed  int
}

// NodeStatus is the agent's self-description returned by GetStatus.
type NodeStatus struct {
	NodeName        string
	Version         string
	Healthy         bool
	EventsProcessed uint64
	ActiveFlows     uint64
	TrackedPods     uint64
	StartTime       time.Time
}

// Uptime is the elapsed time since the agent started.
func (s NodeStatus) Uptime() time.Duration {
	return time.Since(s.StartTime)
}
