package main

import (
	"FlowScope/internal/config"
	"FlowScope/internal/diag"
	"FlowScope/internal/enrich"
	"FlowScope/internal/flow"
	"FlowScope/internal/identity"
	"FlowScope/internal/model"
	"FlowScope/internal/query"
	"FlowScope/pkg/replay"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

func main() {
	pcapPath := flag.String("pcap", "", "Path to the capture file to replay (required)")
	localCIDR := flag.String("local", "", "CIDR treated as the local workload side (e.g. 10.0.0.0/8)")
	limit := flag.Int("limit", 20, "Number of flows to print")
	flag.Parse()

	if *pcapPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: fsc-replay -pcap <file> [-local <CIDR>] [-limit <n>]")
		flag.Usage()
		os.Exit(1)
	}

	// The offline pipeline runs with defaults and no control plane, so
	// every flow carries fallback attribution; the tuples are the point.
	cfg := config.Default()
	metrics := &diag.Metrics{}
	cache := identity.NewCache()
	agg := flow.NewAggregator(cfg.Flows, cfg.Query.StreamBuffer, metrics)
	enricher := enrich.NewEnricher(cache, cfg.Identity.PendingTimeoutDuration(), cfg.Identity.PendingQueueSize, agg.Add, metrics)

	reader, err := replay.NewReader(*pcapPath, *localCIDR)
	if err != nil {
		log.Fatalf("Failed to open capture: %v", err)
	}
	defer reader.Close()

	read, skipped := reader.ReadEvents(enricher.Process)
	enricher.Flush()

	flows := query.SortByBytes(agg.Query(model.FlowQuery{}), *limit)
	log.Printf("Replayed %d events (%d packets skipped) into %d flows", read, skipped, agg.Len())
	if len(flows) == 0 {
		return
	}

	fmt.Printf("%-4s | %-44s | %-12s | %-12s | %s\n", "Rank", "Flow", "Bytes Out", "Bytes In", "Packets")
	fmt.Println(strings.Repeat("-", 90))
	for i, rec := range flows {
		fmt.Printf("%-4d | %-44s | %-12d | %-12d | %d\n",
			i+1, renderTuple(rec), rec.BytesSent, rec.BytesReceived, rec.TotalPackets())
	}
}

func renderTuple(rec model.FlowRecord) string {
	return fmt.Sprintf("%s:%d -> %s:%d %s",
		model.FormatIPv4(rec.Key.SrcIP), rec.Key.SrcPort,
		model.FormatIPv4(rec.Key.DstIP), rec.Key.DstPort,
		model.ProtocolName(rec.Key.Protocol))
}
