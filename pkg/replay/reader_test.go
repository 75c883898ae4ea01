package replay

import (
	"FlowScope/internal/model"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

func serialize(t *testing.T, l ...gopacket.SerializableLayer) []byte {
	t.Helper()
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, l...); err != nil {
		t.Fatalf("Failed to serialize packet: %v", err)
	}
	return buf.Bytes()
}

func tcpFrame(t *testing.T, src, dst net.IP, srcPort, dstPort uint16, syn bool) []byte {
	t.Helper()
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xaa},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{SrcIP: src, DstIP: dst, Version: 4, TTL: 64, Protocol: layers.IPProtocolTCP}
	tcp := &layers.TCP{SrcPort: layers.TCPPort(srcPort), DstPort: layers.TCPPort(dstPort), SYN: syn, Window: 14600}
	tcp.SetNetworkLayerForChecksum(ip)
	return serialize(t, eth, ip, tcp, gopacket.Payload(make([]byte, 64)))
}

func TestParsePacket_TCP(t *testing.T) {
	data := tcpFrame(t, net.IP{10, 0, 0, 1}, net.IP{10, 0, 0, 2}, 5000, 80, true)
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)

	ev, err := ParsePacket(packet)
	if err != nil {
		t.Fatalf("Failed to parse TCP packet: %v", err)
	}
	if ev.SrcIP != model.ParseIPv4(10, 0, 0, 1) || ev.DstIP != model.ParseIPv4(10, 0, 0, 2) {
		t.Errorf("Unexpected addresses: src=%s dst=%s", model.FormatIPv4(ev.SrcIP), model.FormatIPv4(ev.DstIP))
	}
	if ev.SrcPort != 5000 || ev.DstPort != 80 {
		t.Errorf("Expected ports 5000 -> 80, got %d -> %d", ev.SrcPort, ev.DstPort)
	}
	if ev.Protocol != model.ProtocolTCP {
		t.Errorf("Expected protocol TCP, got %d", ev.Protocol)
	}
	if ev.TCPFlags&model.TCPFlagSYN == 0 {
		t.Error("Expected the SYN flag to be carried through")
	}
	if ev.ByteLen != uint32(len(data)) {
		t.Errorf("Expected byte length %d, got %d", len(data), ev.ByteLen)
	}
}

func TestParsePacket_ICMP(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xaa},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{SrcIP: net.IP{10, 0, 0, 1}, DstIP: net.IP{8, 8, 8, 8}, Version: 4, TTL: 64, Protocol: layers.IPProtocolICMPv4}
	icmp := &layers.ICMPv4{TypeCode: layers.CreateICMPv4TypeCode(layers.ICMPv4TypeEchoRequest, 0)}
	data := serialize(t, eth, ip, icmp)

	ev, err := ParsePacket(gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default))
	if err != nil {
		t.Fatalf("Failed to parse ICMP packet: %v", err)
	}
	if ev.Protocol != model.ProtocolICMP {
		t.Errorf("Expected protocol ICMP, got %d", ev.Protocol)
	}
	if ev.SrcPort != 0 || ev.DstPort != 0 {
		t.Errorf("Expected zero ports for ICMP, got %d / %d", ev.SrcPort, ev.DstPort)
	}
}

func TestParsePacket_RejectsUnsupportedProtocol(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xaa},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{SrcIP: net.IP{10, 0, 0, 1}, DstIP: net.IP{10, 0, 0, 2}, Version: 4, TTL: 64, Protocol: layers.IPProtocolIGMP}
	data := serialize(t, eth, ip)

	if _, err := ParsePacket(gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)); err == nil {
		t.Error("Expected an error for a packet without a supported transport")
	}
}

func TestReader_ReplaysCaptureFile(t *testing.T) {
	// 1. Write a small capture: two packets leaving 10.0.0.0/8, one
	// coming back.
	path := filepath.Join(t.TempDir(), "test.pcap")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create capture file: %v", err)
	}
	writer := pcapgo.NewWriter(f)
	if err := writer.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("Failed to write pcap header: %v", err)
	}
	frames := [][]byte{
		tcpFrame(t, net.IP{10, 0, 0, 1}, net.IP{1, 1, 1, 1}, 5000, 80, true),
		tcpFrame(t, net.IP{10, 0, 0, 1}, net.IP{1, 1, 1, 1}, 5000, 80, false),
		tcpFrame(t, net.IP{1, 1, 1, 1}, net.IP{10, 0, 0, 1}, 80, 5000, false),
	}
	for _, frame := range frames {
		ci := gopacket.CaptureInfo{Timestamp: time.Now(), CaptureLength: len(frame), Length: len(frame)}
		if err := writer.WritePacket(ci, frame); err != nil {
			t.Fatalf("Failed to write packet: %v", err)
		}
	}
	f.Close()

	// 2. Replay it with the capture's local side declared.
	reader, err := NewReader(path, "10.0.0.0/8")
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	defer reader.Close()

	var events []model.RawEvent
	read, skipped := reader.ReadEvents(func(ev model.RawEvent) { events = append(events, ev) })
	if read != 3 || skipped != 0 {
		t.Fatalf("Expected 3 events and 0 skips, got %d / %d", read, skipped)
	}
	if events[0].Direction != model.DirectionEgress || events[2].Direction != model.DirectionIngress {
		t.Errorf("Expected egress, egress, ingress; got %s, %s, %s",
			model.DirectionName(events[0].Direction),
			model.DirectionName(events[1].Direction),
			model.DirectionName(events[2].Direction))
	}
	if events[0].ByteLen == 0 {
		t.Error("Expected the wire length to be carried from the capture metadata")
	}
}

func TestNewReader_BadCIDR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pcap")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create capture file: %v", err)
	}
	writer := pcapgo.NewWriter(f)
	if err := writer.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("Failed to write pcap header: %v", err)
	}
	f.Close()

	if _, err := NewReader(path, "not-a-cidr"); err == nil {
		t.Error("Expected an error for an invalid local CIDR")
	}
}
