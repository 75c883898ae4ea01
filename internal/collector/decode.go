package collector

import (
	"FlowScope/internal/model"
	"encoding/binary"
	"errors"
	"fmt"
)

// EventSize is the fixed length of one probe record on the wire.
const EventSize = 40

// ErrTruncatedRecord means the probe handed us fewer bytes than one record.
var ErrTruncatedRecord = errors.New("truncated event record")

// Decode parses one fixed-layout probe record. Layout (little-endian):
//
//	0   container group id  u64
//	8   timestamp           u64 (ktime ns)
//	16  src ip              u32 (first octet in low byte)
//	20  dst ip              u32
//	24  src port            u16 (host order, probe swaps)
//	26  dst port            u16
//	28  protocol            u8
//	29  tcp flags           u8 (0 unless TCP)
//	32  byte length         u32
//	36  direction           u8 (0 ingress, 1 egress)
//
// Bytes 30-31 and 37-39 are struct padding.
func Decode(data []byte) (model.RawEvent, error) {
	if len(data) < EventSize {
		return model.RawEvent{}, fmt.Errorf("%d byte record: %w", len(data), ErrTruncatedRecord)
	}
	return model.RawEvent{
		CgroupID:    binary.LittleEndian.Uint64(data[0:8]),
		TimestampNs: binary.LittleEndian.Uint64(data[8:16]),
		SrcIP:       binary.LittleEndian.Uint32(data[16:20]),
		DstIP:       binary.LittleEndian.Uint32(data[20:24]),
		SrcPort:     binary.LittleEndian.Uint16(data[24:26]),
		DstPort:     binary.LittleEndian.Uint16(data[26:28]),
		Protocol:    data[28],
		TCPFlags:    data[29],
		ByteLen:     binary.LittleEndian.Uint32(data[32:36]),
		Direction:   data[36],
	}, nil
}

// Marshal renders an event in the probe's wire layout. The agent never
// sends records; this exists for test vectors and synthetic feeds.
func Marshal(ev model.RawEvent) []byte {
	buf := make([]byte, EventSize)
	binary.LittleEndian.PutUint64(buf[0:8], ev.CgroupID)
	binary.LittleEndian.PutUint64(buf[8:16], ev.TimestampNs)
	binary.LittleEndian.PutUint32(buf[16:20], ev.SrcIP)
	binary.LittleEndian.PutUint32(buf[20:24], ev.DstIP)
	binary.LittleEndian.PutUint16(buf[24:26], ev.SrcPort)
	binary.LittleEndian.PutUint16(buf[26:28], ev.DstPort)
	buf[28] = ev.Protocol
	buf[29] = ev.TCPFlags
	binary.LittleEndian.PutUint32(buf[32:36], ev.ByteLen)
	buf[36] = ev.Direction
	return buf
}
