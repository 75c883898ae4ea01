package export

import (
	"FlowScope/internal/config"
	"FlowScope/internal/model"
	"fmt"
	"log"
	"sync"
	"time"
)

// Archiver buffers evicted flows and hands them to the configured writer
// in periodic batches, so a slow archive backend never stalls the sweep.
type Archiver struct {
	writer   model.ArchiveWriter
	interval time.Duration

	mu  sync.Mutex
	buf []model.FlowRecord

	done chan struct{}
	wg   sync.WaitGroup
}

// NewArchiver starts the flush loop around an archive writer.
func NewArchiver(w model.ArchiveWriter, flushInterval time.Duration) *Archiver {
	if flushInterval <= 0 {
		flushInterval = time.Minute
	}
	a := &Archiver{writer: w, interval: flushInterval, done: make(chan struct{})}
	a.wg.Add(1)
	go a.run()
	return a
}

// Publish appends the record to the current batch.
func (a *Archiver) Publish(rec model.FlowRecord) {
	a.mu.Lock()
	a.buf = append(a.buf, rec)
	a.mu.Unlock()
}

func (a *Archiver) run() {
	defer a.wg.Done()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.flush()
		case <-a.done:
			// Final flush so records evicted just before shutdown
			// still reach the archive.
			a.flush()
			return
		}
	}
}

func (a *Archiver) flush() {
	a.mu.Lock()
	batch := a.buf
	a.buf = nil
	a.mu.Unlock()
	if len(batch) == 0 {
		return
	}
	if err := a.writer.Write(batch); err != nil {
		log.Printf("export: failed to archive %d flows: %v", len(batch), err)
	}
}

// Close flushes the remaining batch and closes the writer.
func (a *Archiver) Close() {
	close(a.done)
	a.wg.Wait()
	if err := a.writer.Close(); err != nil {
		log.Printf("export: failed to close archive writer: %v", err)
	}
}

// NewWriter builds the archive writer named by the driver.
func NewWriter(cfg config.ArchiveConfig) (model.ArchiveWriter, error) {
	switch cfg.Driver {
	case "clickhouse":
		return NewClickHouseWriter(cfg.ClickHouse)
	case "gob":
		return NewGobWriter(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown archive driver: %s", cfg.Driver)
	}
}
