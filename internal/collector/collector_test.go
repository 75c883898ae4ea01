package collector

import (
	"FlowScope/internal/model"
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecode_WireVector(t *testing.T) {
	// Hand-built record: pod group 7, 10.0.0.1:5000 -> 10.0.0.2:80,
	// TCP SYN, 60 bytes, egress.
	buf := make([]byte, EventSize)
	binary.LittleEndian.PutUint64(buf[0:8], 7)
	binary.LittleEndian.PutUint64(buf[8:16], 1_700_000_000_000_000_000)
	binary.LittleEndian.PutUint32(buf[16:20], model.ParseIPv4(10, 0, 0, 1))
	binary.LittleEndian.PutUint32(buf[20:24], model.ParseIPv4(10, 0, 0, 2))
	binary.LittleEndian.PutUint16(buf[24:26], 5000)
	binary.LittleEndian.PutUint16(buf[26:28], 80)
	buf[28] = model.ProtocolTCP
	buf[29] = model.TCPFlagSYN
	binary.LittleEndian.PutUint32(buf[32:36], 60)
	buf[36] = model.DirectionEgress

	ev, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if ev.CgroupID != 7 {
		t.Errorf("Expected cgroup id 7, got %d", ev.CgroupID)
	}
	if ev.TimestampNs != 1_700_000_000_000_000_000 {
		t.Errorf("Unexpected timestamp %d", ev.TimestampNs)
	}
	if model.FormatIPv4(ev.SrcIP) != "10.0.0.1" || model.FormatIPv4(ev.DstIP) != "10.0.0.2" {
		t.Errorf("Unexpected addresses %s -> %s", model.FormatIPv4(ev.SrcIP), model.FormatIPv4(ev.DstIP))
	}
	if ev.SrcPort != 5000 || ev.DstPort != 80 {
		t.Errorf("Unexpected ports %d -> %d", ev.SrcPort, ev.DstPort)
	}
	if ev.Protocol != model.ProtocolTCP || ev.TCPFlags != model.TCPFlagSYN {
		t.Errorf("Unexpected protocol %d flags %#x", ev.Protocol, ev.TCPFlags)
	}
	if ev.ByteLen != 60 || ev.Direction != model.DirectionEgress {
		t.Errorf("Unexpected length %d direction %d", ev.ByteLen, ev.Direction)
	}
	if !ev.HasControlFlags() {
		t.Errorf("SYN event should report control flags")
	}
}

func TestDecode_Truncated(t *testing.T) {
	for _, n := range []int{0, 1, EventSize - 1} {
		_, err := Decode(make([]byte, n))
		if !errors.Is(err, ErrTruncatedRecord) {
			t.Errorf("Decode of %d bytes: expected ErrTruncatedRecord, got %v", n, err)
		}
	}
}

func TestDecode_TrailingBytesTolerated(t *testing.T) {
	ev := model.RawEvent{CgroupID: 1, ByteLen: 9, Direction: model.DirectionIngress}
	buf := append(Marshal(ev), 0xAA, 0xBB)

	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode with trailing bytes failed: %v", err)
	}
	if got != ev {
		t.Errorf("Expected %+v, got %+v", ev, got)
	}
}

func TestChannelSource_DrainOrderAndCap(t *testing.T) {
	s := NewChannelSource(16)
	for i := 0; i < 5; i++ {
		if !s.Submit(model.RawEvent{ByteLen: uint32(i)}) {
			t.Fatalf("Submit %d rejected", i)
		}
	}

	first, err := s.Drain(3)
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if len(first) != 3 || first[0].ByteLen != 0 || first[2].ByteLen != 2 {
		t.Fatalf("Unexpected first batch: %+v", first)
	}

	rest, _ := s.Drain(100)
	if len(rest) != 2 || rest[1].ByteLen != 4 {
		t.Fatalf("Unexpected second batch: %+v", rest)
	}

	empty, err := s.Drain(10)
	if err != nil || len(empty) != 0 {
		t.Errorf("Expected immediate empty drain, got %v events, err %v", len(empty), err)
	}
}

func TestChannelSource_OverflowCountsDrops(t *testing.T) {
	s := NewChannelSource(2)
	s.Submit(model.RawEvent{})
	s.Submit(model.RawEvent{})
	if s.Submit(model.RawEvent{}) {
		t.Fatalf("Submit into a full source should be rejected")
	}
	if got := s.Stats().Dropped; got != 1 {
		t.Errorf("Expected 1 drop, got %d", got)
	}
}

func TestChannelSource_Utilization(t *testing.T) {
	s := NewChannelSource(10)
	for i := 0; i < 5; i++ {
		s.Submit(model.RawEvent{})
	}
	st := s.Stats()
	if st.Utilization != 0.5 {
		t.Errorf("Expected utilization 0.5, got %v", st.Utilization)
	}
	if st.Capacity != 10*EventSize {
		t.Errorf("Expected capacity %d bytes, got %d", 10*EventSize, st.Capacity)
	}
}

func TestChannelSource_CloseStopsIntakeKeepsDrain(t *testing.T) {
	s := NewChannelSource(4)
	s.Submit(model.RawEvent{ByteLen: 1})
	s.Close()

	if s.Submit(model.RawEvent{ByteLen: 2}) {
		t.Errorf("Submit after Close should be rejected")
	}
	evs, _ := s.Drain(10)
	if len(evs) != 1 || evs[0].ByteLen != 1 {
		t.Errorf("Buffered event should stay drainable after Close, got %+v", evs)
	}
}

func TestChannelSource_EventsRead(t *testing.T) {
	s := NewChannelSource(8)
	for i := 0; i < 6; i++ {
		s.Submit(model.RawEvent{})
	}
	s.Drain(4)
	s.Drain(4)
	if got := s.Stats().EventsRead; got != 6 {
		t.Errorf("Expected 6 events read, got %d", got)
	}
}
