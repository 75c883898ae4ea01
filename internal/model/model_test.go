package model

import (
	"testing"
	"time"
)

func TestFormatIPv4(t *testing.T) {
	ip := ParseIPv4(10, 0, 0, 1)
	if got := FormatIPv4(ip); got != "10.0.0.1" {
		t.Errorf("Expected 10.0.0.1, got %s", got)
	}
	if got := FormatIPv4(ParseIPv4(192, 168, 1, 254)); got != "192.168.1.254" {
		t.Errorf("Expected 192.168.1.254, got %s", got)
	}
}

func TestHasControlFlags(t *testing.T) {
	cases := []struct {
		name  string
		ev    RawEvent
		wantC bool
	}{
		{"tcp syn", RawEvent{Protocol: ProtocolTCP, TCPFlags: TCPFlagSYN}, true},
		{"tcp fin-ack", RawEvent{Protocol: ProtocolTCP, TCPFlags: TCPFlagFIN | TCPFlagACK}, true},
		{"tcp rst", RawEvent{Protocol: ProtocolTCP, TCPFlags: TCPFlagRST}, true},
		{"tcp ack only", RawEvent{Protocol: ProtocolTCP, TCPFlags: TCPFlagACK}, false},
		{"tcp no flags", RawEvent{Protocol: ProtocolTCP}, false},
		{"udp with stray bits", RawEvent{Protocol: ProtocolUDP, TCPFlags: TCPFlagSYN}, false},
	}
	for _, tc := range cases {
		if got := tc.ev.HasControlFlags(); got != tc.wantC {
			t.Errorf("%s: HasControlFlags = %v, want %v", tc.name, got, tc.wantC)
		}
	}
}

func TestProtocolName(t *testing.T) {
	if ProtocolName(ProtocolTCP) != "TCP" || ProtocolName(ProtocolUDP) != "UDP" || ProtocolName(ProtocolICMP) != "ICMP" {
		t.Errorf("Unexpected well-known protocol names")
	}
	if got := ProtocolName(47); got != "OTHER(47)" {
		t.Errorf("Expected OTHER(47), got %s", got)
	}
}

func TestFlowQueryMatches(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rec := FlowRecord{
		Key: FlowKey{
			Identity: WorkloadIdentity{Namespace: "payments", PodName: "api-0"},
		},
		FirstSeen: base,
		LastSeen:  base.Add(10 * time.Second),
	}

	cases := []struct {
		name string
		q    FlowQuery
		want bool
	}{
		{"empty matches", FlowQuery{}, true},
		{"namespace match", FlowQuery{Namespace: "payments"}, true},
		{"namespace mismatch", FlowQuery{Namespace: "default"}, false},
		{"pod match", FlowQuery{PodName: "api-0"}, true},
		{"pod mismatch", FlowQuery{PodName: "api-1"}, false},
		{"range overlaps", FlowQuery{Start: base.Add(5 * time.Second), End: base.Add(20 * time.Second)}, true},
		{"range before activity", FlowQuery{End: base.Add(-time.Second)}, false},
		{"range after activity", FlowQuery{Start: base.Add(time.Minute)}, false},
	}
	for _, tc := range cases {
		if got := tc.q.Matches(rec); got != tc.want {
			t.Errorf("%s: Matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}
