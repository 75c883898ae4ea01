// Package flow maintains the per-node table of aggregated flow records.
package flow

import (
	"FlowScope/internal/config"
	"FlowScope/internal/diag"
	"FlowScope/internal/model"
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const defaultShardCount = 256

// entry wraps a live record with sampling state that never leaves the
// table. arrivals counts every event seen for the key, admitted or not.
type entry struct {
	rec      model.FlowRecord
	arrivals uint64
}

type shard struct {
	mu    sync.RWMutex
	flows map[model.FlowKey]*entry
}

// Aggregator exclusively owns the flow table. All mutation goes through
// Add and Sweep; queries and subscribers only ever see copies. Counters
// are purely additive, so events may arrive reordered without changing
// the totals.
type Aggregator struct {
	shards     []*shard
	shardCount uint32

	expiry         time.Duration
	highWater      float64
	stride         uint64
	protectedFirst uint64

	// float64 bits, fed by the collector's poller each cycle.
	utilization atomic.Uint64

	metrics *diag.Metrics
	sinks   []model.FlowSink
	hub     *hub

	now func() time.Time
}

// NewAggregator builds the sharded table. streamBuffer sizes each
// subscriber's update channel.
func NewAggregator(cfg config.FlowConfig, streamBuffer int, metrics *diag.Metrics) *Aggregator {
	a := &Aggregator{
		shards:         make([]*shard, defaultShardCount),
		shardCount:     defaultShardCount,
		expiry:         cfg.ExpiryDuration(),
		highWater:      cfg.HighWaterMark,
		stride:         uint64(cfg.SamplingStride),
		protectedFirst: uint64(cfg.ProtectedFirst),
		metrics:        metrics,
		hub:            newHub(streamBuffer, metrics),
		now:            time.Now,
	}
	if a.expiry <= 0 {
		a.expiry = 30 * time.Second
	}
	if a.stride < 1 {
		a.stride = 1
	}
	if a.highWater <= 0 {
		a.highWater = 0.9
	}
	for i := range a.shards {
		a.shards[i] = &shard{flows: make(map[model.FlowKey]*entry)}
	}
	return a
}

// AddSink registers a consumer of evicted records. Call before the
// pipeline starts; the slice is read without a lock afterwards.
func (a *Aggregator) AddSink(s model.FlowSink) {
	a.sinks = append(a.sinks, s)
}

// SetUtilization feeds the sampler the collector's current buffer level.
func (a *Aggregator) SetUtilization(u float64) {
	a.utilization.Store(math.Float64bits(u))
}

func (a *Aggregator) samplingActive() bool {
	return math.Float64frombits(a.utilization.Load()) >= a.highWater
}

// Add folds one enriched event into its flow record, creating the record
// on first sight. Under buffer pressure high-volume flows are thinned to
// one admitted event per stride, with counters scaled by the stride so
// totals remain estimates of the truth. Connection lifecycle markers and
// the first events of a new flow are always admitted verbatim.
func (a *Aggregator) Add(ev model.EnrichedEvent) {
	key := flowKey(ev)
	sh := a.shards[a.shardIndex(key)]
	now := a.now()

	sh.mu.Lock()
	e, ok := sh.flows[key]
	if !ok {
		e = &entry{rec: model.FlowRecord{Key: key, FirstSeen: now}}
		sh.flows[key] = e
	}
	arrivals := e.arrivals
	e.arrivals++

	weight := uint64(1)
	admit := true
	switch {
	case !a.samplingActive():
	case ev.Event.HasControlFlags():
		// Losing steady-state packets is tolerable; losing an open or
		// close marker is not.
	case arrivals < a.protectedFirst:
	default:
		a.metrics.SampledEvents.Add(1)
		e.rec.Sampled = true
		if (arrivals-a.protectedFirst)%a.stride != 0 {
			admit = false
		} else {
			weight = a.stride
		}
	}

	if admit {
		bytes := uint64(ev.Event.ByteLen) * weight
		if ev.Event.Direction == model.DirectionEgress {
			e.rec.BytesSent += bytes
			e.rec.PacketsSent += weight
		} else {
			e.rec.BytesReceived += bytes
			e.rec.PacketsReceived += weight
		}
	}
	// The flow is alive even when sampling dropped this event.
	e.rec.LastSeen = now
	rec := e.rec
	sh.mu.Unlock()

	if admit {
		a.hub.publish(Update{Record: rec})
	}
}

// Sweep evicts records idle past the expiry window, handing each to the
// registered sinks and the update stream. Evicted flows stop being
// visible to queries immediately.
func (a *Aggregator) Sweep(now time.Time) []model.FlowRecord {
	cutoff := now.Add(-a.expiry)
	var evicted []model.FlowRecord
	for _, sh := range a.shards {
		sh.mu.Lock()
		for k, e := range sh.flows {
			if e.rec.LastSeen.Before(cutoff) {
				evicted = append(evicted, e.rec)
				delete(sh.flows, k)
			}
		}
		sh.mu.Unlock()
	}

	for _, rec := range evicted {
		for _, s := range a.sinks {
			s.Publish(rec)
		}
		a.hub.publish(Update{Record: rec, Evicted: true})
	}
	a.metrics.SetActiveFlows(a.Len())
	return evicted
}

// Query returns copies of the live records matching the filter. Read-only
// with respect to the table.
func (a *Aggregator) Query(q model.FlowQuery) []model.FlowRecord {
	var out []model.FlowRecord
	for _, sh := range a.shards {
		sh.mu.RLock()
		for _, e := range sh.flows {
			if q.Matches(e.rec) {
				out = append(out, e.rec)
			}
		}
		sh.mu.RUnlock()
	}
	return out
}

// Len counts the live records across all shards.
func (a *Aggregator) Len() int {
	n := 0
	for _, sh := range a.shards {
		sh.mu.RLock()
		n += len(sh.flows)
		sh.mu.RUnlock()
	}
	return n
}

// Subscribe attaches a live update consumer. The returned cancel closes
// the channel and must be called exactly once.
func (a *Aggregator) Subscribe() (<-chan Update, func()) {
	return a.hub.subscribe()
}

// flowKey derives the aggregation bucket for an event. Keys are oriented
// from the local workload outward, so ingress events, which arrive in
// wire order with the remote end first, are flipped before keying. That
// is what folds both directions of a conversation into one record.
func flowKey(ev model.EnrichedEvent) model.FlowKey {
	k := model.FlowKey{
		Identity: ev.Identity,
		SrcIP:    ev.Event.SrcIP,
		DstIP:    ev.Event.DstIP,
		SrcPort:  ev.Event.SrcPort,
		DstPort:  ev.Event.DstPort,
		Protocol: ev.Event.Protocol,
	}
	if ev.Event.Direction == model.DirectionIngress {
		k.SrcIP, k.DstIP = k.DstIP, k.SrcIP
		k.SrcPort, k.DstPort = k.DstPort, k.SrcPort
	}
	return k
}

func (a *Aggregator) shardIndex(k model.FlowKey) uint32 {
	h := fnv.New32a()
	h.Write([]byte(k.Identity.Namespace))
	h.Write([]byte(k.Identity.PodName))
	h.Write([]byte(k.Identity.ContainerName))
	h.Write([]byte(k.Identity.PodUID))
	var buf [13]byte
	binary.LittleEndian.PutUint32(buf[0:4], k.SrcIP)
	binary.LittleEndian.PutUint32(buf[4:8], k.DstIP)
	binary.LittleEndian.PutUint16(buf[8:10], k.SrcPort)
	binary.LittleEndian.PutUint16(buf[10:12], k.DstPort)
	buf[12] = k.Protocol
	h.Write(buf[:])
	return h.Sum32() % a.shardCount
}
