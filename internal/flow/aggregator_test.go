package flow

import (
	"FlowScope/internal/config"
	"FlowScope/internal/diag"
	"FlowScope/internal/model"
	"testing"
	"time"
)

func testFlowConfig() config.FlowConfig {
	return config.FlowConfig{
		Expiry:         "30s",
		SweepInterval:  "5s",
		HighWaterMark:  0.9,
		SamplingStride: 4,
		ProtectedFirst: 2,
	}
}

// egressEvent is one packet the workload sent: 10.0.0.1:5000 -> 10.0.0.2:80.
func egressEvent(id model.WorkloadIdentity, bytes uint32, flags uint8) model.EnrichedEvent {
	return model.EnrichedEvent{
		Event: model.RawEvent{
			CgroupID:  7,
			SrcIP:     model.ParseIPv4(10, 0, 0, 1),
			DstIP:     model.ParseIPv4(10, 0, 0, 2),
			SrcPort:   5000,
			DstPort:   80,
			Protocol:  model.ProtocolTCP,
			TCPFlags:  flags,
			ByteLen:   bytes,
			Direction: model.DirectionEgress,
		},
		Identity: id,
	}
}

// ingressEvent is the reply in wire order: 10.0.0.2:80 -> 10.0.0.1:5000.
func ingressEvent(id model.WorkloadIdentity, bytes uint32) model.EnrichedEvent {
	return model.EnrichedEvent{
		Event: model.RawEvent{
			CgroupID:  7,
			SrcIP:     model.ParseIPv4(10, 0, 0, 2),
			DstIP:     model.ParseIPv4(10, 0, 0, 1),
			SrcPort:   80,
			DstPort:   5000,
			Protocol:  model.ProtocolTCP,
			ByteLen:   bytes,
			Direction: model.DirectionIngress,
		},
		Identity: id,
	}
}

type captureSink struct {
	recs []model.FlowRecord
}

func (c *captureSink) Publish(rec model.FlowRecord) {
	c.recs = append(c.recs, rec)
}

func TestAdd_AggregatesConversation(t *testing.T) {
	a := NewAggregator(testFlowConfig(), 10, &diag.Metrics{})
	id := model.WorkloadIdentity{Namespace: "default", PodName: "web-0", PodUID: "uid-a"}

	// 1. Five packets of one TCP conversation, both directions.
	a.Add(egressEvent(id, 100, 0))
	a.Add(egressEvent(id, 200, 0))
	a.Add(ingressEvent(id, 50))
	a.Add(egressEvent(id, 300, 0))
	a.Add(ingressEvent(id, 60))

	// 2. Exactly one record holds the whole conversation.
	flows := a.Query(model.FlowQuery{})
	if len(flows) != 1 {
		t.Fatalf("Expected 1 flow record, got %d", len(flows))
	}
	rec := flows[0]
	if rec.PacketsSent != 3 || rec.PacketsReceived != 2 {
		t.Errorf("Expected 3 sent / 2 received packets, got %d/%d", rec.PacketsSent, rec.PacketsReceived)
	}
	if rec.BytesSent != 600 || rec.BytesReceived != 110 {
		t.Errorf("Expected 600 sent / 110 received bytes, got %d/%d", rec.BytesSent, rec.BytesReceived)
	}
	if rec.TotalPackets() != 5 {
		t.Errorf("Expected 5 total packets, got %d", rec.TotalPackets())
	}
	if rec.Sampled {
		t.Errorf("Expected exact counters without sampling")
	}

	// 3. The key is oriented from the workload outward.
	if rec.Key.SrcIP != model.ParseIPv4(10, 0, 0, 1) || rec.Key.SrcPort != 5000 {
		t.Errorf("Expected local-first key 10.0.0.1:5000, got %s:%d",
			model.FormatIPv4(rec.Key.SrcIP), rec.Key.SrcPort)
	}
	if rec.FirstSeen.After(rec.LastSeen) {
		t.Errorf("Expected first_seen <= last_seen, got %v > %v", rec.FirstSeen, rec.LastSeen)
	}
	if a.Len() != 1 {
		t.Errorf("Expected 1 active flow, got %d", a.Len())
	}
}

func TestAdd_SeparatesWorkloadsAndTuples(t *testing.T) {
	a := NewAggregator(testFlowConfig(), 10, &diag.Metrics{})
	web := model.WorkloadIdentity{Namespace: "default", PodName: "web-0", PodUID: "uid-a"}
	api := model.WorkloadIdentity{Namespace: "payments", PodName: "api-1", PodUID: "uid-b"}

	a.Add(egressEvent(web, 100, 0))
	a.Add(egressEvent(api, 100, 0)) // same tuple, different workload

	other := egressEvent(web, 100, 0)
	other.Event.DstPort = 443 // same workload, different tuple
	a.Add(other)

	if a.Len() != 3 {
		t.Fatalf("Expected 3 distinct flow records, got %d", a.Len())
	}
	byNS := a.Query(model.FlowQuery{Namespace: "payments"})
	if len(byNS) != 1 || byNS[0].Key.Identity.PodName != "api-1" {
		t.Errorf("Expected namespace filter to return the payments flow, got %+v", byNS)
	}
	byPod := a.Query(model.FlowQuery{Namespace: "default", PodName: "web-0"})
	if len(byPod) != 2 {
		t.Errorf("Expected 2 flows for web-0, got %d", len(byPod))
	}
}

func TestSweep_EvictsIdleFlows(t *testing.T) {
	a := NewAggregator(testFlowConfig(), 10, &diag.Metrics{})
	sink := &captureSink{}
	a.AddSink(sink)

	old := model.WorkloadIdentity{Namespace: "default", PodName: "old-0", PodUID: "uid-old"}
	fresh := model.WorkloadIdentity{Namespace: "default", PodName: "fresh-0", PodUID: "uid-new"}

	base := time.Now()
	a.now = func() time.Time { return base }
	a.Add(egressEvent(old, 100, 0))
	a.now = func() time.Time { return base.Add(20 * time.Second) }
	a.Add(egressEvent(fresh, 200, 0))

	// 1. At +31s only the untouched flow has crossed the 30s window.
	evicted := a.Sweep(base.Add(31 * time.Second))
	if len(evicted) != 1 || evicted[0].Key.Identity.PodName != "old-0" {
		t.Fatalf("Expected old-0 evicted, got %+v", evicted)
	}
	if len(sink.recs) != 1 || sink.recs[0].BytesSent != 100 {
		t.Errorf("Expected evicted record delivered to sink, got %+v", sink.recs)
	}

	// 2. Evicted flows are gone from queries; live ones are not.
	if got := a.Query(model.FlowQuery{PodName: "old-0"}); len(got) != 0 {
		t.Errorf("Expected evicted flow absent from query, got %d records", len(got))
	}
	if a.Len() != 1 {
		t.Errorf("Expected 1 flow left after sweep, got %d", a.Len())
	}

	// 3. The survivor expires in its own time.
	evicted = a.Sweep(base.Add(51 * time.Second))
	if len(evicted) != 1 || evicted[0].Key.Identity.PodName != "fresh-0" {
		t.Fatalf("Expected fresh-0 evicted on second sweep, got %+v", evicted)
	}
	if a.Len() != 0 {
		t.Errorf("Expected empty table, got %d flows", a.Len())
	}
}

func TestSampling_ExtrapolatesUnderPressure(t *testing.T) {
	metrics := &diag.Metrics{}
	a := NewAggregator(testFlowConfig(), 10, metrics) // stride 4, first 2 protected
	a.SetUtilization(0.95)
	id := model.WorkloadIdentity{Namespace: "default", PodName: "busy-0", PodUID: "uid-c"}

	// Ten uniform packets: 2 protected, then 1-in-4 admitted at weight 4.
	for i := 0; i < 10; i++ {
		a.Add(egressEvent(id, 100, 0))
	}

	flows := a.Query(model.FlowQuery{})
	if len(flows) != 1 {
		t.Fatalf("Expected 1 flow record, got %d", len(flows))
	}
	rec := flows[0]
	if rec.PacketsSent != 10 {
		t.Errorf("Expected extrapolated packet count 10, got %d", rec.PacketsSent)
	}
	if rec.BytesSent != 1000 {
		t.Errorf("Expected extrapolated byte count 1000, got %d", rec.BytesSent)
	}
	if !rec.Sampled {
		t.Errorf("Expected sampled flag set on extrapolated record")
	}
	if got := metrics.SampledEvents.Load(); got != 8 {
		t.Errorf("Expected 8 events through the sampling path, got %d", got)
	}
}

func TestSampling_ProtectsLifecycleEvents(t *testing.T) {
	cfg := testFlowConfig()
	cfg.SamplingStride = 8
	cfg.ProtectedFirst = 0
	a := NewAggregator(cfg, 10, &diag.Metrics{})
	a.SetUtilization(1.0)
	id := model.WorkloadIdentity{Namespace: "default", PodName: "conn-0", PodUID: "uid-d"}

	// 1. Handshake packets pass untouched even at full pressure.
	for i := 0; i < 5; i++ {
		a.Add(egressEvent(id, 60, model.TCPFlagSYN))
	}
	rec := a.Query(model.FlowQuery{})[0]
	if rec.PacketsSent != 5 {
		t.Errorf("Expected all 5 control packets admitted, got %d", rec.PacketsSent)
	}
	if rec.Sampled {
		t.Errorf("Expected no sampling applied to control-only traffic")
	}

	// 2. A steady-state packet off the stride is thinned.
	a.Add(egressEvent(id, 1000, 0))
	rec = a.Query(model.FlowQuery{})[0]
	if rec.PacketsSent != 5 {
		t.Errorf("Expected steady-state packet thinned, got %d packets", rec.PacketsSent)
	}
	if !rec.Sampled {
		t.Errorf("Expected sampled flag once thinning occurred")
	}

	// 3. The close marker still lands exactly.
	a.Add(egressEvent(id, 60, model.TCPFlagFIN|model.TCPFlagACK))
	rec = a.Query(model.FlowQuery{})[0]
	if rec.PacketsSent != 6 {
		t.Errorf("Expected FIN admitted at weight 1, got %d packets", rec.PacketsSent)
	}
}

func TestSampling_InactiveBelowHighWater(t *testing.T) {
	metrics := &diag.Metrics{}
	a := NewAggregator(testFlowConfig(), 10, metrics)
	a.SetUtilization(0.5)
	id := model.WorkloadIdentity{Namespace: "default", PodName: "calm-0", PodUID: "uid-e"}

	for i := 0; i < 10; i++ {
		a.Add(egressEvent(id, 100, 0))
	}
	rec := a.Query(model.FlowQuery{})[0]
	if rec.PacketsSent != 10 || rec.BytesSent != 1000 {
		t.Errorf("Expected exact counters below high water, got %d packets / %d bytes",
			rec.PacketsSent, rec.BytesSent)
	}
	if rec.Sampled {
		t.Errorf("Expected sampled false below high water")
	}
	if metrics.SampledEvents.Load() != 0 {
		t.Errorf("Expected no events through sampling path, got %d", metrics.SampledEvents.Load())
	}
}

func TestSubscribe_DeliversUpdatesAndEvictions(t *testing.T) {
	a := NewAggregator(testFlowConfig(), 10, &diag.Metrics{})
	id := model.WorkloadIdentity{Namespace: "default", PodName: "web-0", PodUID: "uid-a"}

	base := time.Now()
	a.now = func() time.Time { return base }

	ch, cancel := a.Subscribe()

	// 1. Every admitted event pushes the record's current state.
	a.Add(egressEvent(id, 100, 0))
	select {
	case u := <-ch:
		if u.Evicted {
			t.Errorf("Expected live update, got eviction")
		}
		if u.Record.PacketsSent != 1 || u.Record.BytesSent != 100 {
			t.Errorf("Expected update with 1 packet / 100 bytes, got %+v", u.Record)
		}
	default:
		t.Fatalf("Expected an update after Add")
	}

	// 2. Eviction arrives flagged.
	a.Sweep(base.Add(31 * time.Second))
	select {
	case u := <-ch:
		if !u.Evicted {
			t.Errorf("Expected eviction update, got live one")
		}
	default:
		t.Fatalf("Expected an update after Sweep")
	}

	// 3. Cancel closes the channel.
	cancel()
	if _, ok := <-ch; ok {
		t.Errorf("Expected closed channel after cancel")
	}
}

func TestSubscribe_SlowConsumerDropsUpdates(t *testing.T) {
	metrics := &diag.Metrics{}
	a := NewAggregator(testFlowConfig(), 1, metrics)
	id := model.WorkloadIdentity{Namespace: "default", PodName: "web-0", PodUID: "uid-a"}

	_, cancel := a.Subscribe()
	defer cancel()

	// Nobody reads: the 1-slot buffer fills, the rest must drop without
	// blocking the aggregation path.
	a.Add(egressEvent(id, 100, 0))
	a.Add(egressEvent(id, 100, 0))
	a.Add(egressEvent(id, 100, 0))

	if got := metrics.StreamLagged.Load(); got != 2 {
		t.Errorf("Expected 2 lagged drops, got %d", got)
	}
}
