package model

// FlowSink receives flow records as they are evicted from the live table.
// Publish must not block the caller; sinks buffer or drop internally.
type FlowSink interface {
	Publish(rec FlowRecord)
}

// ArchiveWriter persists batches of evicted flow records.
// The implementation owns its connection and flush semantics.
type ArchiveWriter interface {
	Write(records []FlowRecord) error
	Close() error
}
