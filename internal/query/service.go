// Package query serves the agent's gRPC API over the live flow table.
package query

import (
	v1 "FlowScope/api/gen/v1"
	"FlowScope/internal/flow"
	"FlowScope/internal/model"
	"context"
	"log"
	"sort"
)

// Fanout distributes a query to peer agents and merges their answers.
// Implemented by the cluster aggregator; nil disables cluster-wide
// queries.
type Fanout interface {
	QueryFlows(ctx context.Context, q model.FlowQuery) model.QueryResult
}

// Service implements the QueryService RPCs. Every operation is read-only
// with respect to the flow table.
type Service struct {
	v1.UnimplementedQueryServiceServer

	agg        *flow.Aggregator
	fanout     Fanout
	status     func() model.NodeStatus
	maxResults int
}

// NewService wires the RPC surface to the aggregator. status supplies the
// agent's self-description for GetStatus.
func NewService(agg *flow.Aggregator, fanout Fanout, status func() model.NodeStatus, maxResults int) *Service {
	if maxResults <= 0 {
		maxResults = 1000
	}
	return &Service{
		agg:        agg,
		fanout:     fanout,
		status:     status,
		maxResults: maxResults,
	}
}

// QueryFlows filters the live table, heaviest flows first. With
// cluster_wide set the query also fans out to every known peer and the
// merged answer carries the partial indicator.
func (s *Service) QueryFlows(ctx context.Context, req *v1.QueryFlowsRequest) (*v1.QueryFlowsResponse, error) {
	q := QueryFromProto(req)
	limit := int(req.Limit)
	if limit <= 0 || limit > s.maxResults {
		limit = s.maxResults
	}

	flows := s.agg.Query(q)
	resp := &v1.QueryFlowsResponse{}

	if req.ClusterWide && s.fanout != nil {
		res := s.fanout.QueryFlows(ctx, q)
		flows = append(flows, res.Flows...)
		resp.Partial = res.Partial
		resp.PeersQueried = uint32(res.PeersQueried)
		resp.PeersFailed = uint32(res.PeersFailed)
	}

	resp.Flows = RecordsToProto(SortByBytes(flows, limit))
	return resp, nil
}

// StreamEvents pushes every change to a matching flow record until the
// client goes away. A client that cannot keep up misses updates instead
// of stalling the table.
func (s *Service) StreamEvents(req *v1.StreamEventsRequest, stream v1.QueryService_StreamEventsServer) error {
	updates, cancel := s.agg.Subscribe()
	defer cancel()

	log.Printf("query: stream subscriber attached (namespace=%q pod=%q)", req.Namespace, req.PodName)
	defer log.Printf("query: stream subscriber detached")

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			if u.Evicted && !req.IncludeEvicted {
				continue
			}
			if req.Namespace != "" && u.Record.Key.Identity.Namespace != req.Namespace {
				continue
			}
			if req.PodName != "" && u.Record.Key.Identity.PodName != req.PodName {
				continue
			}
			if err := stream.Send(&v1.FlowUpdate{Record: RecordToProto(u.Record), Evicted: u.Evicted}); err != nil {
				return err
			}
		}
	}
}

// GetStatus reports the agent's identity and health counters.
func (s *Service) GetStatus(ctx context.Context, req *v1.GetStatusRequest) (*v1.StatusResponse, error) {
	st := s.status()
	return &v1.StatusResponse{
		NodeName:        st.NodeName,
		Version:         st.Version,
		Healthy:         st.Healthy,
		EventsProcessed: st.EventsProcessed,
		ActiveFlows:     st.ActiveFlows,
		TrackedPods:     st.TrackedPods,
		UptimeSeconds:   int64(st.Uptime().Seconds()),
	}, nil
}

// SortByBytes orders records by total volume descending and truncates to
// the limit. Shared with the cluster merge path.
func SortByBytes(flows []model.FlowRecord, limit int) []model.FlowRecord {
	sort.Slice(flows, func(i, j int) bool {
		return flows[i].TotalBytes() > flows[j].TotalBytes()
	})
	if limit > 0 && len(flows) > limit {
		flows = flows[:limit]
	}
	return flows
}
