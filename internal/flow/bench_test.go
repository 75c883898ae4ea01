package flow

import (
	"FlowScope/internal/config"
	"FlowScope/internal/diag"
	"FlowScope/internal/model"
	"fmt"
	"testing"
)

// benchEvents spreads traffic over 64 workloads and 512 remote ports so
// the shards all see work.
func benchEvents() []model.EnrichedEvent {
	events := make([]model.EnrichedEvent, 4096)
	for i := range events {
		events[i] = model.EnrichedEvent{
			Event: model.RawEvent{
				CgroupID:  uint64(i % 64),
				SrcIP:     model.ParseIPv4(10, 0, byte(i%64), 1),
				DstIP:     model.ParseIPv4(10, 1, 0, 2),
				SrcPort:   uint16(30000 + i%512),
				DstPort:   80,
				Protocol:  model.ProtocolTCP,
				ByteLen:   512,
				Direction: model.DirectionEgress,
			},
			Identity: model.WorkloadIdentity{
				Namespace: "bench",
				PodName:   fmt.Sprintf("pod-%d", i%64),
			},
		}
	}
	return events
}

func BenchmarkAggregator_Add(b *testing.B) {
	cfg := config.FlowConfig{
		Expiry:         "30s",
		SweepInterval:  "5s",
		HighWaterMark:  0.9,
		SamplingStride: 8,
		ProtectedFirst: 10,
	}
	events := benchEvents()

	b.Run("Exact", func(b *testing.B) {
		a := NewAggregator(cfg, 16, &diag.Metrics{})
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Add(events[i%len(events)])
		}
	})

	b.Run("Sampled", func(b *testing.B) {
		a := NewAggregator(cfg, 16, &diag.Metrics{})
		a.SetUtilization(0.95)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Add(events[i%len(events)])
		}
	})

	b.Run("ExactParallel", func(b *testing.B) {
		a := NewAggregator(cfg, 16, &diag.Metrics{})
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				a.Add(events[i%len(events)])
				i++
			}
		})
	})
}
