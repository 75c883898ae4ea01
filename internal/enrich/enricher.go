// Package enrich joins raw network events with workload identities.
package enrich

import (
	"FlowScope/internal/diag"
	"FlowScope/internal/identity"
	"FlowScope/internal/model"
	"fmt"
	"sync"
	"time"
)

type pendingEvent struct {
	ev       model.RawEvent
	deadline time.Time
}

// Enricher attaches a WorkloadIdentity to every event. Events whose
// identity is not cached yet are parked in a bounded queue and retried by
// Sweep until they resolve or age out; aged-out and overflow events get
// the synthetic fallback identity so no event is ever silently dropped
// here.
type Enricher struct {
	cache   *identity.Cache
	emit    func(model.EnrichedEvent)
	metrics *diag.Metrics

	timeout    time.Duration
	maxPending int

	mu      sync.Mutex
	pending []pendingEvent
}

// NewEnricher wires the enricher to its identity cache and downstream
// consumer. The emit function must not block; it runs on the caller's
// goroutine for Process and on the sweeper's for Sweep.
func NewEnricher(cache *identity.Cache, pendingTimeout time.Duration, maxPending int, emit func(model.EnrichedEvent), metrics *diag.Metrics) *Enricher {
	if pendingTimeout <= 0 {
		pendingTimeout = 10 * time.Second
	}
	if maxPending <= 0 {
		maxPending = 8192
	}
	return &Enricher{
		cache:      cache,
		emit:       emit,
		metrics:    metrics,
		timeout:    pendingTimeout,
		maxPending: maxPending,
	}
}

// Process enriches one event. Hits emit immediately; misses are parked
// unless the queue is full, in which case the event is emitted at once
// with the fallback identity.
func (e *Enricher) Process(ev model.RawEvent) {
	if id, ok := e.resolve(ev); ok {
		e.emit(model.EnrichedEvent{Event: ev, Identity: id})
		return
	}

	e.mu.Lock()
	if len(e.pending) >= e.maxPending {
		e.mu.Unlock()
		e.metrics.PendingOverflow.Add(1)
		e.emit(model.EnrichedEvent{Event: ev, Identity: FallbackIdentity(ev.CgroupID)})
		return
	}
	e.pending = append(e.pending, pendingEvent{ev: ev, deadline: time.Now().Add(e.timeout)})
	e.mu.Unlock()
}

// Sweep retries every parked event against the current cache. Events past
// their deadline are emitted with the fallback identity and never retried
// again. The caller supplies now so the cadence stays in one place.
func (e *Enricher) Sweep(now time.Time) {
	e.mu.Lock()
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()
	if len(pending) == 0 {
		return
	}

	var keep []pendingEvent
	for _, p := range pending {
		if id, ok := e.resolve(p.ev); ok {
			e.emit(model.EnrichedEvent{Event: p.ev, Identity: id})
			continue
		}
		if now.After(p.deadline) {
			e.metrics.PendingTimeouts.Add(1)
			e.emit(model.EnrichedEvent{Event: p.ev, Identity: FallbackIdentity(p.ev.CgroupID)})
			continue
		}
		keep = append(keep, p)
	}
	if len(keep) == 0 {
		return
	}
	e.mu.Lock()
	e.pending = append(keep, e.pending...)
	e.mu.Unlock()
}

// Flush empties the pending queue, resolving what it can and falling back
// for the rest. Called once on shutdown so parked events still reach the
// flow table.
func (e *Enricher) Flush() {
	e.mu.Lock()
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()

	for _, p := range pending {
		id, ok := e.resolve(p.ev)
		if !ok {
			id = FallbackIdentity(p.ev.CgroupID)
		}
		e.emit(model.EnrichedEvent{Event: p.ev, Identity: id})
	}
}

// PendingLen reports how many events are parked.
func (e *Enricher) PendingLen() int {
	e.mu.Lock()
	n := len(e.pending)
	e.mu.Unlock()
	return n
}

// resolve finds the identity for an event. The container group id is
// authoritative; events the kernel attributed to the host (id zero) fall
// back to the pod IP index, local side of the flow first.
func (e *Enricher) resolve(ev model.RawEvent) (model.WorkloadIdentity, bool) {
	if ev.CgroupID != 0 {
		return e.cache.Lookup(ev.CgroupID)
	}

	local, remote := ev.SrcIP, ev.DstIP
	if ev.Direction == model.DirectionIngress {
		local, remote = ev.DstIP, ev.SrcIP
	}
	if id, ok := e.cache.LookupIP(local); ok {
		return id, true
	}
	return e.cache.LookupIP(remote)
}

// FallbackIdentity names traffic nothing could attribute. The cgroup id is
// kept in the workload name so operators can chase it by hand.
func FallbackIdentity(cgroupID uint64) model.WorkloadIdentity {
	return model.WorkloadIdentity{
		Namespace: "unknown",
		PodName:   fmt.Sprintf("cgroup-%d", cgroupID),
	}
}
