// Package agent wires the capture, enrichment and aggregation stages into
// one pipeline and owns their lifecycle.
package agent

import (
	"FlowScope/internal/config"
	"FlowScope/internal/diag"
	"FlowScope/internal/enrich"
	"FlowScope/internal/flow"
	"FlowScope/internal/identity"
	"FlowScope/internal/model"
	"log"
	"net"
	"strconv"
	"sync"
	"time"
)

// Version is stamped into GetStatus responses. Release builds override it
// with -ldflags "-X FlowScope/internal/agent.Version=...".
var Version = "0.2.0"

// pendingSweepInterval is how often parked events are retried against the
// identity cache.
const pendingSweepInterval = time.Second

// Agent drains the event source, enriches events with workload identity
// and folds them into the flow table.
type Agent struct {
	cfg      *config.Config
	source   model.EventSource
	enricher *enrich.Enricher
	agg      *flow.Aggregator
	metrics  *diag.Metrics

	selfPort uint16
	started  time.Time

	pollerDone chan struct{}
	sweepDone  chan struct{}
	pollerWg   sync.WaitGroup
	sweepWg    sync.WaitGroup
}

// New assembles the pipeline around a source and an identity cache.
func New(cfg *config.Config, source model.EventSource, cache *identity.Cache, metrics *diag.Metrics) *Agent {
	agg := flow.NewAggregator(cfg.Flows, cfg.Query.StreamBuffer, metrics)
	enricher := enrich.NewEnricher(cache, cfg.Identity.PendingTimeoutDuration(), cfg.Identity.PendingQueueSize, agg.Add, metrics)
	return &Agent{
		cfg:        cfg,
		source:     source,
		enricher:   enricher,
		agg:        agg,
		metrics:    metrics,
		selfPort:   listenPort(cfg.Query.ListenAddr),
		pollerDone: make(chan struct{}),
		sweepDone:  make(chan struct{}),
	}
}

// Flows exposes the live table for the query service and sink wiring.
func (a *Agent) Flows() *flow.Aggregator {
	return a.agg
}

// Status describes the agent for GetStatus and the diagnostics endpoint.
// An agent without its identity watch is still serving, but its records
// degrade to fallback attribution, so it reports unhealthy.
func (a *Agent) Status() model.NodeStatus {
	snap := a.metrics.Read()
	return model.NodeStatus{
		NodeName:        a.cfg.NodeName,
		Version:         Version,
		Healthy:         snap.IdentityWatchConnected,
		EventsProcessed: snap.EventsProcessed,
		ActiveFlows:     uint64(snap.ActiveFlows),
		TrackedPods:     uint64(snap.TrackedWorkloads),
		StartTime:       a.started,
	}
}

// Start launches the poller and the sweep loops.
func (a *Agent) Start() {
	a.started = time.Now()

	a.pollerWg.Add(1)
	go a.runPoller()

	a.sweepWg.Add(2)
	go a.runPendingSweeper()
	go a.runFlowSweeper()

	log.Printf("agent: pipeline started on node %s (poll every %s, sweep every %s)",
		a.cfg.NodeName, a.cfg.Probe.PollInterval, a.cfg.Flows.SweepInterval)
}

// Stop drains the pipeline in dependency order.
func (a *Agent) Stop() {
	log.Println("agent: stopping...")

	// 1. Detach the probe so no new events arrive.
	if err := a.source.Close(); err != nil {
		log.Printf("agent: failed to close event source: %v", err)
	}

	// 2. Stop the poller; its final pass drains what was already buffered.
	close(a.pollerDone)
	a.pollerWg.Wait()

	// 3. Resolve or fall back everything still parked in the enricher so it
	// reaches the table before the final sweep.
	a.enricher.Flush()

	// 4. Stop the sweep loops.
	close(a.sweepDone)
	a.sweepWg.Wait()

	// 5. Evict everything still live. Shutdown ends observation for these
	// flows, so the sinks get them now or never.
	a.agg.Sweep(time.Now().Add(a.cfg.Flows.ExpiryDuration() + time.Second))

	log.Println("agent: pipeline stopped")
}

func (a *Agent) runPoller() {
	defer a.pollerWg.Done()
	interval := a.cfg.Probe.PollIntervalDuration()
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.poll()
		case <-a.pollerDone:
			a.poll()
			return
		}
	}
}

// poll moves one batch from the source into the pipeline and refreshes
// the buffer health metrics the sampler keys off.
func (a *Agent) poll() {
	events, err := a.source.Drain(a.cfg.Probe.PollBatch)
	if err != nil {
		log.Printf("agent: failed to drain event source: %v", err)
		return
	}
	for _, ev := range events {
		if a.isSelfTraffic(ev) {
			a.metrics.EventsSelfFiltered.Add(1)
			continue
		}
		a.metrics.EventsProcessed.Add(1)
		a.enricher.Process(ev)
	}

	stats := a.source.Stats()
	a.metrics.SetRingStats(stats.Dropped, stats.Utilization, stats.Capacity)
	a.agg.SetUtilization(stats.Utilization)
}

// isSelfTraffic reports whether the event belongs to the agent's own query
// plane. Counting our own gRPC responses would feed back: every query
// would mint flows describing itself.
func (a *Agent) isSelfTraffic(ev model.RawEvent) bool {
	if a.selfPort == 0 || ev.Protocol != model.ProtocolTCP {
		return false
	}
	return ev.SrcPort == a.selfPort || ev.DstPort == a.selfPort
}

func (a *Agent) runPendingSweeper() {
	defer a.sweepWg.Done()
	ticker := time.NewTicker(pendingSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.enricher.Sweep(time.Now())
		case <-a.sweepDone:
			return
		}
	}
}

func (a *Agent) runFlowSweeper() {
	defer a.sweepWg.Done()
	interval := a.cfg.Flows.SweepIntervalDuration()
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			evicted := a.agg.Sweep(time.Now())
			if len(evicted) > 0 {
				log.Printf("agent: swept %d idle flows from the table", len(evicted))
			}
		case <-a.sweepDone:
			return
		}
	}
}

// listenPort extracts the port from a listen address like ":9090".
func listenPort(addr string) uint16 {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return 0
	}
	return uint16(port)
}
