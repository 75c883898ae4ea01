package model

import (
	"fmt"
	"time"
)

// Direction of an observed packet relative to the workload.
const (
	DirectionIngress uint8 = 0
	DirectionEgress  uint8 = 1
)

// IP protocol numbers the probe reports.
const (
	ProtocolICMP uint8 = 1
	ProtocolTCP  uint8 = 6
	ProtocolUDP  uint8 = 17
)

// TCP control flags carried in RawEvent.TCPFlags.
const (
	TCPFlagFIN uint8 = 0x01
	TCPFlagSYN uint8 = 0x02
	TCPFlagRST uint8 = 0x04
	TCPFlagPSH uint8 = 0x08
	TCPFlagACK uint8 = 0x10
)

// RawEvent is one fixed-layout record read from the kernel ring buffer.
// IPv4 addresses keep the probe's in-memory byte order: the first octet of
// the address sits in the least significant byte of the uint32.
type RawEvent struct {
	CgroupID    uint64
	TimestampNs uint64
	SrcIP       uint32
	DstIP       uint32
	SrcPort     uint16
	DstPort     uint16
	Protocol    uint8
	TCPFlags    uint8
	ByteLen     uint32
	Direction   uint8
}

// HasControlFlags reports whether the event marks a TCP connection
// open or close transition.
func (e RawEvent) HasControlFlags() bool {
	return e.Protocol == ProtocolTCP && e.TCPFlags&(TCPFlagSYN|TCPFlagFIN|TCPFlagRST) != 0
}

// Timestamp converts the probe's nanosecond stamp to a time.Time.
func (e RawEvent) Timestamp() time.Time {
	return time.Unix(0, int64(e.TimestampNs))
}

// WorkloadIdentity names the pod and container a container group belongs to.
// Values are replaced wholesale on update and never mutated in place.
type WorkloadIdentity struct {
	Namespace     string
	PodName       string
	ContainerName string
	PodUID        string
}

// EnrichedEvent is a RawEvent joined with the identity that owns it.
type EnrichedEvent struct {
	Event    RawEvent
	Identity WorkloadIdentity
}

// FlowKey identifies one aggregation bucket. Direction is deliberately
// absent: both directions of a conversation land in the same record. The
// tuple is oriented local-first, SrcIP being the workload's own endpoint.
type FlowKey struct {
	Identity WorkloadIdentity
	SrcIP    uint32
	DstIP    uint32
	SrcPort  uint16
	DstPort  uint16
	Protocol uint8
}

// FlowRecord is the aggregated state of one flow. Counters only grow for
// the life of the record; Sampled marks counters as extrapolated estimates.
type FlowRecord struct {
	Key             FlowKey
	BytesSent       uint64
	BytesReceived   uint64
	PacketsSent     uint64
	PacketsReceived uint64
	FirstSeen       time.Time
	LastSeen        time.Time
	Sampled         bool
}

// TotalBytes is the byte count across both directions.
func (r FlowRecord) TotalBytes() uint64 {
	return r.BytesSent + r.BytesReceived
}

// TotalPackets is the packet count across both directions.
func (r FlowRecord) TotalPackets() uint64 {
	return r.PacketsSent + r.PacketsReceived
}

// PeerHandle describes a remote agent reachable for cluster queries.
type PeerHandle struct {
	Address         string
	LastSeenHealthy time.Time
}

// FormatIPv4 renders a probe-order uint32 address in dotted-quad form.
func FormatIPv4(ip uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(ip), byte(ip>>8), byte(ip>>16), byte(ip>>24))
}

// ParseIPv4 converts four octets into the probe's uint32 byte order.
func ParseIPv4(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// ProtocolName returns the conventional name for an IP protocol number.
func ProtocolName(p uint8) string {
	switch p {
	case ProtocolICMP:
		return "ICMP"
	case ProtocolTCP:
		return "TCP"
	case ProtocolUDP:
		return "UDP"
	default:
		return fmt.Sprintf("OTHER(%d)", p)
	}
}

// DirectionName returns "ingress" or "egress".
func DirectionName(d uint8) string {
	if d == DirectionEgress {
		return "egress"
	}
	return "ingress"
}
