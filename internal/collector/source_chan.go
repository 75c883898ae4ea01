package collector

import (
	"FlowScope/internal/model"
	"sync/atomic"
)

// ChannelSource is an in-process EventSource backed by a buffered channel.
// Tests and the replay tooling feed it directly; on linux the ring buffer
// source uses one as its userspace stage.
type ChannelSource struct {
	ch         chan model.RawEvent
	eventsRead atomic.Uint64
	drops      atomic.Uint64
	closed     atomic.Bool
}

// NewChannelSource builds a source able to hold capacity events.
func NewChannelSource(capacity int) *ChannelSource {
	if capacity < 1 {
		capacity = 1
	}
	return &ChannelSource{ch: make(chan model.RawEvent, capacity)}
}

// Submit offers one event without blocking. It reports false and counts a
// drop when the buffer is full or the source is closed.
func (s *ChannelSource) Submit(ev model.RawEvent) bool {
	if s.closed.Load() {
		s.drops.Add(1)
		return false
	}
	select {
	case s.ch <- ev:
		return true
	default:
		s.drops.Add(1)
		return false
	}
}

// Drain returns up to max buffered events and never blocks. Events already
// buffered stay drainable after Close.
func (s *ChannelSource) Drain(max int) ([]model.RawEvent, error) {
	var out []model.RawEvent
	for len(out) < max {
		select {
		case ev := <-s.ch:
			out = append(out, ev)
		default:
			s.eventsRead.Add(uint64(len(out)))
			return out, nil
		}
	}
	s.eventsRead.Add(uint64(len(out)))
	return out, nil
}

// Stats reports buffer health. Capacity follows the wire contract's unit
// of bytes so the utilization metric means the same for every source.
func (s *ChannelSource) Stats() model.SourceStats {
	return model.SourceStats{
		EventsRead:  s.eventsRead.Load(),
		Dropped:     s.drops.Load(),
		Capacity:    cap(s.ch) * EventSize,
		Utilization: float64(len(s.ch)) / float64(cap(s.ch)),
	}
}

// Close stops accepting submissions. The channel itself stays open so a
// concurrent Submit can never hit a closed channel.
func (s *ChannelSource) Close() error {
	s.closed.Store(true)
	return nil
}
