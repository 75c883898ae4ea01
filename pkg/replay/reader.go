// Package replay feeds capture files through the aggregation pipeline as
// if the kernel probe had emitted them.
package replay

import (
	"FlowScope/internal/model"
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// Reader reads packets from a pcap file and synthesizes probe events.
type Reader struct {
	handle *pcap.Handle
	local  *net.IPNet
}

// NewReader opens a capture file. localCIDR, when given, marks which side
// of each packet counts as the local workload for direction purposes.
func NewReader(filePath, localCIDR string) (*Reader, error) {
	handle, err := pcap.OpenOffline(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	var local *net.IPNet
	if localCIDR != "" {
		_, local, err = net.ParseCIDR(localCIDR)
		if err != nil {
			handle.Close()
			return nil, fmt.Errorf("failed to parse local CIDR: %w", err)
		}
	}
	return &Reader{handle: handle, local: local}, nil
}

// Close closes the pcap handle.
func (r *Reader) Close() {
	r.handle.Close()
}

// ReadEvents parses every packet and hands the resulting events to emit.
// It returns how many events were emitted and how many packets were
// skipped as unparseable.
func (r *Reader) ReadEvents(emit func(model.RawEvent)) (int, int) {
	source := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	read, skipped := 0, 0
	for packet := range source.Packets() {
		ev, err := ParsePacket(packet)
		if err != nil {
			skipped++
			continue
		}
		ev.Direction = r.direction(ev)
		emit(ev)
		read++
	}
	return read, skipped
}

// direction classifies by the local CIDR; a packet sourced inside it left
// the workload. Without a CIDR everything counts as egress.
func (r *Reader) direction(ev model.RawEvent) uint8 {
	if r.local == nil || r.local.Contains(uint32ToIP(ev.SrcIP)) {
		return model.DirectionEgress
	}
	return model.DirectionIngress
}

// ParsePacket decodes one captured packet into a probe-shaped event.
// Packets without an IPv4 TCP, UDP or ICMP payload are rejected.
func ParsePacket(packet gopacket.Packet) (model.RawEvent, error) {
	ev := model.RawEvent{TimestampNs: uint64(time.Now().UnixNano())}
	if meta := packet.Metadata(); meta != nil {
		if !meta.Timestamp.IsZero() {
			ev.TimestampNs = uint64(meta.Timestamp.UnixNano())
		}
		ev.ByteLen = uint32(meta.Length)
	}

	l := packet.Layer(layers.LayerTypeIPv4)
	if l == nil {
		return ev, fmt.Errorf("not an IPv4 packet")
	}
	ip := l.(*layers.IPv4)
	ev.SrcIP = ipToUint32(ip.SrcIP)
	ev.DstIP = ipToUint32(ip.DstIP)
	ev.Protocol = uint8(ip.Protocol)

	if l := packet.Layer(layers.LayerTypeTCP); l != nil {
		tcp := l.(*layers.TCP)
		ev.SrcPort = uint16(tcp.SrcPort)
		ev.DstPort = uint16(tcp.DstPort)
		ev.TCPFlags = tcpFlags(tcp)
	} else if l := packet.Layer(layers.LayerTypeUDP); l != nil {
		udp := l.(*layers.UDP)
		ev.SrcPort = uint16(udp.SrcPort)
		ev.DstPort = uint16(udp.DstPort)
	} else if ev.Protocol != model.ProtocolICMP {
		// ICMP carries no ports; everything else is out of scope.
		return ev, fmt.Errorf("not a TCP, UDP or ICMP packet")
	}

	if ev.ByteLen == 0 {
		ev.ByteLen = uint32(len(packet.Data()))
	}
	return ev, nil
}

func tcpFlags(tcp *layers.TCP) uint8 {
	var flags uint8
	if tcp.FIN {
		flags |= model.TCPFlagFIN
	}
	if tcp.SYN {
		flags |= model.TCPFlagSYN
	}
	if tcp.RST {
		flags |= model.TCPFlagRST
	}
	if tcp.PSH {
		flags |= model.TCPFlagPSH
	}
	if tcp.ACK {
		flags |= model.TCPFlagACK
	}
	return flags
}

func ipToUint32(ip net.IP) uint32 {
	v4 := ip.To4()
	if v4 == nil {
		return 0
	}
	return model.ParseIPv4(v4[0], v4[1], v4[2], v4[3])
}

func uint32ToIP(ip uint32) net.IP {
	return net.IPv4(byte(ip), byte(ip>>8), byte(ip>>16), byte(ip>>24))
}
