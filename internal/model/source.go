package model

// SourceStats reports the health of an event source's buffer. Dropped is
// maintained by the producer side; the source only surfaces it.
type SourceStats struct {
	EventsRead  uint64
	Dropped     uint64
	Capacity    int
	Utilization float64
}

// EventSource is a non-blocking supplier of raw probe events.
type EventSource interface {
	// Drain returns at most max buffered events and never blocks.
	// An empty buffer yields a nil slice and a nil error.
	Drain(max int) ([]RawEvent, error)

	// Stats returns a point-in-time view of buffer health.
	Stats() SourceStats

	Close() error
}
