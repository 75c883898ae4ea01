package cluster

import (
	v1 "FlowScope/api/gen/v1"
	"FlowScope/internal/model"
	"FlowScope/internal/query"
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// grpcPeer speaks the query API to one remote agent.
type grpcPeer struct {
	conn   *grpc.ClientConn
	client v1.QueryServiceClient
}

// DialGRPC opens the standard peer client. Connection setup is lazy, so
// the first query pays for the handshake.
func DialGRPC(addr string) (PeerClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", addr, err)
	}
	return &grpcPeer{conn: conn, client: v1.NewQueryServiceClient(conn)}, nil
}

// QueryFlows forwards the query to the peer. ClusterWide is deliberately
// left unset on the outgoing request; peers answer for their own node
// only, which keeps the fan-out a single hop.
func (p *grpcPeer) QueryFlows(ctx context.Context, q model.FlowQuery) ([]model.FlowRecord, error) {
	req := &v1.QueryFlowsRequest{
		Namespace: q.Namespace,
		PodName:   q.PodName,
		Limit:     uint32(q.Limit),
	}
	if !q.Start.IsZero() {
		req.StartTime = timestamppb.New(q.Start)
	}
	if !q.End.IsZero() {
		req.EndTime = timestamppb.New(q.End)
	}

	resp, err := p.client.QueryFlows(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to query peer: %w", err)
	}
	flows := make([]model.FlowRecord, 0, len(resp.Flows))
	for _, rec := range resp.Flows {
		flows = append(flows, query.RecordFromProto(rec))
	}
	return flows, nil
}

func (p *grpcPeer) Close() error {
	return p.conn.Close()
}
