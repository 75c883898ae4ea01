//go:build linux

package collector

import (
	"FlowScope/internal/diag"
	"FlowScope/internal/model"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/link"
	"github.com/cilium/ebpf/ringbuf"
	"github.com/cilium/ebpf/rlimit"
)

// Map names the probe object must expose. The events map is the shared
// ring buffer; the drop counter is maintained kernel-side on failed
// reservations and only surfaced here.
const (
	eventsMapName = "events"
	dropsMapName  = "flow_drops"
)

// utilAlpha weights the utilization estimate: an EWMA of bytes drained per
// poll against the ring capacity.
const utilAlpha = 0.3

// RingBufferSource drains the kernel probe's ring buffer. A background
// goroutine moves records off the ring as fast as the kernel produces
// them; Drain hands them out in the caller's polling cadence.
type RingBufferSource struct {
	coll   *ebpf.Collection
	links  []link.Link
	reader *ringbuf.Reader
	drops  *ebpf.Map

	inner    *ChannelSource
	metrics  *diag.Metrics
	capacity int

	utilization atomic.Uint64 // float64 bits
	kernelDrops atomic.Uint64

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewRingBufferSource loads the probe object, sizes its ring buffer,
// attaches every kprobe/tracepoint program it contains and starts the
// reader goroutine.
func NewRingBufferSource(objectPath string, bufferBytes int, metrics *diag.Metrics) (*RingBufferSource, error) {
	if err := rlimit.RemoveMemlock(); err != nil {
		log.Printf("collector: failed to remove memlock limit: %v", err)
	}

	spec, err := ebpf.LoadCollectionSpec(objectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load probe object %s: %w", objectPath, err)
	}
	events, ok := spec.Maps[eventsMapName]
	if !ok {
		return nil, fmt.Errorf("probe object %s has no %q map", objectPath, eventsMapName)
	}
	if bufferBytes > 0 {
		events.MaxEntries = uint32(bufferBytes)
	}

	// Section names carry the attach point; collect them before loading
	// because the loaded Collection no longer knows them.
	type attachSpec struct{ name, section string }
	var plan []attachSpec
	for name, p := range spec.Programs {
		plan = append(plan, attachSpec{name: name, section: p.SectionName})
	}

	coll, err := ebpf.NewCollection(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load probe collection: %w", err)
	}

	s := &RingBufferSource{
		coll:     coll,
		inner:    NewChannelSource(bufferBytes / EventSize),
		metrics:  metrics,
		capacity: int(events.MaxEntries),
	}

	for _, a := range plan {
		prog := coll.Programs[a.name]
		if prog == nil {
			continue
		}
		l, err := attachBySection(a.section, prog)
		if err != nil {
			s.cleanup()
			return nil, fmt.Errorf("failed to attach program %s (%s): %w", a.name, a.section, err)
		}
		if l == nil {
			log.Printf("collector: skipping program %s with unsupported section %s", a.name, a.section)
			continue
		}
		s.links = append(s.links, l)
	}
	if len(s.links) == 0 {
		s.cleanup()
		return nil, fmt.Errorf("probe object %s contains no attachable programs", objectPath)
	}

	s.drops = coll.Maps[dropsMapName]
	if s.drops == nil {
		log.Printf("collector: probe object has no %q map, overflow accounting unavailable", dropsMapName)
	}

	reader, err := ringbuf.NewReader(coll.Maps[eventsMapName])
	if err != nil {
		s.cleanup()
		return nil, fmt.Errorf("failed to open ring buffer reader: %w", err)
	}
	s.reader = reader

	s.wg.Add(1)
	go s.run()
	return s, nil
}

// attachBySection links a program according to its ELF section. Unknown
// section kinds return a nil link so the caller can skip them.
func attachBySection(section string, prog *ebpf.Program) (link.Link, error) {
	switch {
	case strings.HasPrefix(section, "kprobe/"):
		return link.Kprobe(strings.TrimPrefix(section, "kprobe/"), prog, nil)
	case strings.HasPrefix(section, "kretprobe/"):
		return link.Kretprobe(strings.TrimPrefix(section, "kretprobe/"), prog, nil)
	case strings.HasPrefix(section, "tracepoint/"), strings.HasPrefix(section, "tp/"):
		rest := section[strings.Index(section, "/")+1:]
		parts := strings.SplitN(rest, "/", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed tracepoint section %q", section)
		}
		return link.Tracepoint(parts[0], parts[1], prog, nil)
	default:
		return nil, nil
	}
}

// run moves records off the kernel ring until the reader is closed.
func (s *RingBufferSource) run() {
	defer s.wg.Done()
	for {
		rec, err := s.reader.Read()
		if err != nil {
			if errors.Is(err, ringbuf.ErrClosed) {
				return
			}
			log.Printf("collector: ring buffer read failed: %v", err)
			continue
		}
		ev, err := Decode(rec.RawSample)
		if err != nil {
			if s.metrics != nil {
				s.metrics.EventsTruncated.Add(1)
			}
			continue
		}
		s.inner.Submit(ev)
	}
}

// Drain returns up to max events and refreshes the utilization estimate.
func (s *RingBufferSource) Drain(max int) ([]model.RawEvent, error) {
	evs, err := s.inner.Drain(max)
	sample := float64(len(evs)*EventSize) / float64(s.capacity)
	if sample > 1 {
		sample = 1
	}
	prev := math.Float64frombits(s.utilization.Load())
	s.utilization.Store(math.Float64bits(utilAlpha*sample + (1-utilAlpha)*prev))
	return evs, err
}

// Stats surfaces the kernel drop counter alongside userspace accounting.
func (s *RingBufferSource) Stats() model.SourceStats {
	if s.drops != nil {
		var v uint64
		if err := s.drops.Lookup(uint32(0), &v); err == nil {
			s.kernelDrops.Store(v)
		}
	}
	inner := s.inner.Stats()
	return model.SourceStats{
		EventsRead:  inner.EventsRead,
		Dropped:     s.kernelDrops.Load() + inner.Dropped,
		Capacity:    s.capacity,
		Utilization: math.Float64frombits(s.utilization.Load()),
	}
}

// Close detaches the probe and stops the reader goroutine.
func (s *RingBufferSource) Close() error {
	s.closeOnce.Do(func() {
		if s.reader != nil {
			s.reader.Close()
		}
		s.wg.Wait()
		s.cleanup()
		s.inner.Close()
	})
	return nil
}

func (s *RingBufferSource) cleanup() {
	for _, l := range s.links {
		l.Close()
	}
	s.links = nil
	if s.coll != nil {
		s.coll.Close()
	}
}
