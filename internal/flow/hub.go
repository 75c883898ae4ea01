package flow

import (
	"FlowScope/internal/diag"
	"FlowScope/internal/model"
	"sync"
	"sync/atomic"
)

// Update is one change notification from the flow table: a record whose
// counters just moved, or a record leaving the table.
type Update struct {
	Record  model.FlowRecord
	Evicted bool
}

// hub fans updates out to stream subscribers. A consumer that cannot keep
// up loses updates, counted, rather than stalling the aggregation path.
type hub struct {
	metrics *diag.Metrics
	buf     int

	active atomic.Int32

	mu   sync.Mutex
	subs map[uint64]chan Update
	next uint64
}

func newHub(buf int, metrics *diag.Metrics) *hub {
	if buf <= 0 {
		buf = 1000
	}
	return &hub{
		metrics: metrics,
		buf:     buf,
		subs:    make(map[uint64]chan Update),
	}
}

func (h *hub) subscribe() (<-chan Update, func()) {
	ch := make(chan Update, h.buf)
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()
	h.active.Add(1)

	cancel := func() {
		h.mu.Lock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
			h.active.Add(-1)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *hub) publish(u Update) {
	// Keep the no-subscriber case off the table's hot path.
	if h.active.Load() == 0 {
		return
	}
	h.mu.Lock()
	for _, ch := range h.subs {
		select {
		case ch <- u:
		default:
			h.metrics.StreamLagged.Add(1)
		}
	}
	h.mu.Unlock()
}
