package query

import (
	v1 "FlowScope/api/gen/v1"
	"FlowScope/internal/model"
	"net"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// RecordToProto converts a flow record for the wire.
func RecordToProto(rec model.FlowRecord) *v1.FlowRecord {
	return &v1.FlowRecord{
		Key: &v1.FlowKey{
			Identity: &v1.WorkloadIdentity{
				Namespace:     rec.Key.Identity.Namespace,
				PodName:       rec.Key.Identity.PodName,
				ContainerName: rec.Key.Identity.ContainerName,
				PodUid:        rec.Key.Identity.PodUID,
			},
			SrcIp:    model.FormatIPv4(rec.Key.SrcIP),
			DstIp:    model.FormatIPv4(rec.Key.DstIP),
			SrcPort:  uint32(rec.Key.SrcPort),
			DstPort:  uint32(rec.Key.DstPort),
			Protocol: uint32(rec.Key.Protocol),
		},
		BytesSent:       rec.BytesSent,
		BytesReceived:   rec.BytesReceived,
		PacketsSent:     rec.PacketsSent,
		PacketsReceived: rec.PacketsReceived,
		FirstSeen:       timestamppb.New(rec.FirstSeen),
		LastSeen:        timestamppb.New(rec.LastSeen),
		Sampled:         rec.Sampled,
	}
}

// RecordsToProto converts a batch of records.
func RecordsToProto(recs []model.FlowRecord) []*v1.FlowRecord {
	out := make([]*v1.FlowRecord, len(recs))
	for i, rec := range recs {
		out[i] = RecordToProto(rec)
	}
	return out
}

// RecordFromProto converts a wire record back to the model. Nil submessages
// become zero values; peers never get to crash the merge path.
func RecordFromProto(pb *v1.FlowRecord) model.FlowRecord {
	if pb == nil {
		return model.FlowRecord{}
	}
	rec := model.FlowRecord{
		BytesSent:       pb.BytesSent,
		BytesReceived:   pb.BytesReceived,
		PacketsSent:     pb.PacketsSent,
		PacketsReceived: pb.PacketsReceived,
		Sampled:         pb.Sampled,
	}
	if pb.FirstSeen != nil {
		rec.FirstSeen = pb.FirstSeen.AsTime()
	}
	if pb.LastSeen != nil {
		rec.LastSeen = pb.LastSeen.AsTime()
	}
	if pb.Key != nil {
		rec.Key.SrcIP = ipv4FromString(pb.Key.SrcIp)
		rec.Key.DstIP = ipv4FromString(pb.Key.DstIp)
		rec.Key.SrcPort = uint16(pb.Key.SrcPort)
		rec.Key.DstPort = uint16(pb.Key.DstPort)
		rec.Key.Protocol = uint8(pb.Key.Protocol)
		if pb.Key.Identity != nil {
			rec.Key.Identity = model.WorkloadIdentity{
				Namespace:     pb.Key.Identity.Namespace,
				PodName:       pb.Key.Identity.PodName,
				ContainerName: pb.Key.Identity.ContainerName,
				PodUID:        pb.Key.Identity.PodUid,
			}
		}
	}
	return rec
}

// QueryFromProto translates the request into the model filter.
func QueryFromProto(req *v1.QueryFlowsRequest) model.FlowQuery {
	q := model.FlowQuery{
		Namespace: req.Namespace,
		PodName:   req.PodName,
		Limit:     int(req.Limit),
	}
	if req.StartTime != nil {
		q.Start = req.StartTime.AsTime()
	}
	if req.EndTime != nil {
		q.End = req.EndTime.AsTime()
	}
	return q
}

func ipv4FromString(s string) uint32 {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0
	}
	v4 := ip.To4()
	if v4 == nil {
		return 0
	}
	return model.ParseIPv4(v4[0], v4[1], v4[2], v4[3])
}
