package main

import (
	v1 "FlowScope/api/gen/v1"
	"FlowScope/internal/model"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func main() {
	// Command-line flags
	serverAddr := flag.String("addr", "localhost:9090", "The agent's gRPC address")
	mode := flag.String("mode", "flows", "Query mode: 'flows', 'stream', or 'status'")
	namespace := flag.String("namespace", "", "Filter flows by namespace")
	pod := flag.String("pod", "", "Filter flows by pod name")
	since := flag.Duration("since", 0, "Only show flows active within this window (e.g. 15m)")
	limit := flag.Int("limit", 20, "Limit for the flows query")
	clusterWide := flag.Bool("cluster", false, "Fan the query out to every agent in the cluster")
	evicted := flag.Bool("evicted", false, "Include eviction notices in stream mode")

	flag.Parse()

	// Set up a connection to the agent.
	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := v1.NewQueryServiceClient(conn)

	switch *mode {
	case "flows":
		doFlowsQuery(client, *namespace, *pod, *since, *limit, *clusterWide)
	case "stream":
		doStream(client, *namespace, *pod, *evicted)
	case "status":
		doStatus(client)
	default:
		log.Fatalf("Unknown mode: %s. Use 'flows', 'stream', or 'status'", *mode)
	}
}

// doFlowsQuery fetches the current flow table, optionally cluster-wide.
func doFlowsQuery(client v1.QueryServiceClient, namespace, pod string, since time.Duration, limit int, clusterWide bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := &v1.QueryFlowsRequest{
		Namespace:   namespace,
		PodName:     pod,
		Limit:       uint32(limit),
		ClusterWide: clusterWide,
	}
	if since > 0 {
		req.StartTime = timestamppb.New(time.Now().Add(-since))
	}

	resp, err := client.QueryFlows(ctx, req)
	if err != nil {
		log.Fatalf("could not query flows: %v", err)
	}

	log.Println("--- Flow Query Results ---")
	if resp.Partial {
		log.Printf("WARNING: partial result, %d of %d peers failed to answer", resp.PeersFailed, resp.PeersQueried)
	}
	if len(resp.Flows) == 0 {
		log.Println("No flows returned.")
		return
	}
	log.Printf("%-4s | %-28s | %-44s | %-12s | %-12s | %s", "Rank", "Workload", "Flow", "Bytes Out", "Bytes In", "Packets")
	log.Println(strings.Repeat("-", 120))
	for i, rec := range resp.Flows {
		log.Printf("%-4d | %-28s | %-44s | %-12d | %-12d | %d%s",
			i+1, renderWorkload(rec), renderTuple(rec),
			rec.BytesSent, rec.BytesReceived,
			rec.PacketsSent+rec.PacketsReceived, sampledMark(rec))
	}
	log.Println("--------------------------")
}

// doStream follows live flow updates until interrupted.
func doStream(client v1.QueryServiceClient, namespace, pod string, evicted bool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream, err := client.StreamEvents(ctx, &v1.StreamEventsRequest{
		Namespace:      namespace,
		PodName:        pod,
		IncludeEvicted: evicted,
	})
	if err != nil {
		log.Fatalf("could not open stream: %v", err)
	}

	log.Println("Streaming flow updates (Ctrl-C to stop)...")
	for {
		update, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Stream closed.")
				return
			}
			log.Fatalf("stream error: %v", err)
		}
		rec := update.Record
		tag := "UPDATE"
		if update.Evicted {
			tag = "EVICT "
		}
		log.Printf("%s %-28s %-44s out=%dB in=%dB pkts=%d%s",
			tag, renderWorkload(rec), renderTuple(rec),
			rec.BytesSent, rec.BytesReceived,
			rec.PacketsSent+rec.PacketsReceived, sampledMark(rec))
	}
}

// doStatus prints the agent's self-description.
func doStatus(client v1.QueryServiceClient) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.GetStatus(ctx, &v1.GetStatusRequest{})
	if err != nil {
		log.Fatalf("could not get status: %v", err)
	}

	log.Println("--- Agent Status ---")
	log.Printf("  Node:             %s", resp.NodeName)
	log.Printf("  Version:          %s", resp.Version)
	log.Printf("  Healthy:          %v", resp.Healthy)
	log.Printf("  Events Processed: %d", resp.EventsProcessed)
	log.Printf("  Active Flows:     %d", resp.ActiveFlows)
	log.Printf("  Tracked Pods:     %d", resp.TrackedPods)
	log.Printf("  Uptime:           %s", (time.Duration(resp.UptimeSeconds) * time.Second).String())
	log.Println("--------------------")
}

func renderWorkload(rec *v1.FlowRecord) string {
	if rec == nil || rec.Key == nil || rec.Key.Identity == nil {
		return "?"
	}
	return fmt.Sprintf("%s/%s", rec.Key.Identity.Namespace, rec.Key.Identity.PodName)
}

func renderTuple(rec *v1.FlowRecord) string {
	if rec == nil || rec.Key == nil {
		return "?"
	}
	return fmt.Sprintf("%s:%d -> %s:%d %s",
		rec.Key.SrcIp, rec.Key.SrcPort, rec.Key.DstIp, rec.Key.DstPort,
		model.ProtocolName(uint8(rec.Key.Protocol)))
}

func sampledMark(rec *v1.FlowRecord) string {
	if rec != nil && rec.Sampled {
		return " (sampled)"
	}
	return ""
}
