package main

import (
	v1 "FlowScope/api/gen/v1"
	"FlowScope/internal/agent"
	"FlowScope/internal/cgroup"
	"FlowScope/internal/cluster"
	"FlowScope/internal/collector"
	"FlowScope/internal/config"
	"FlowScope/internal/diag"
	"FlowScope/internal/export"
	"FlowScope/internal/identity"
	"FlowScope/internal/query"
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"k8s.io/client-go/kubernetes"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the agent configuration file.")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("fsc-agent %s starting on node %s", agent.Version, cfg.NodeName)

	metrics := &diag.Metrics{}
	cache := identity.NewCache()

	source, err := collector.NewRingBufferSource(cfg.Probe.ObjectPath, cfg.Probe.RingBufferBytes, metrics)
	if err != nil {
		log.Fatalf("Failed to open the kernel event source: %v", err)
	}

	// The agent is useless if it cannot reach the control plane at startup;
	// outages after that are ridden out by the watcher itself.
	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	var k8sClient kubernetes.Interface
	if cfg.Identity.Enabled {
		k8sClient, err = identity.NewClient(cfg.Identity.Kubeconfig)
		if err != nil {
			log.Fatalf("Failed to build the Kubernetes client: %v", err)
		}
		pingCtx, cancel := context.WithTimeout(runCtx, 30*time.Second)
		err = identity.Ping(pingCtx, k8sClient, 5, 2*time.Second)
		cancel()
		if err != nil {
			log.Fatalf("Failed to reach the Kubernetes control plane: %v", err)
		}

		resolver := cgroup.NewResolver(cfg.Identity.CgroupRoot)
		watcher := identity.NewWatcher(k8sClient, cache, resolver, identity.WatcherConfig{
			NodeName:        cfg.NodeName,
			BackoffMin:      cfg.Identity.BackoffMinDuration(),
			BackoffMax:      cfg.Identity.BackoffMaxDuration(),
			ResolveAttempts: cfg.Identity.ResolveAttempts,
		}, metrics)
		go watcher.Run(runCtx)
	} else {
		log.Println("Identity tracking disabled; flows will carry fallback attribution only.")
	}

	a := agent.New(cfg, source, cache, metrics)

	// Optional sinks for evicted flows. They close after the pipeline so
	// the final sweep still reaches them.
	var closeSinks []func()
	if cfg.Export.NATS.Enabled {
		pub, err := export.NewPublisher(cfg.Export.NATS, cfg.NodeName)
		if err != nil {
			log.Fatalf("Failed to start the NATS publisher: %v", err)
		}
		a.Flows().AddSink(pub)
		closeSinks = append(closeSinks, pub.Close)
	}
	if cfg.Export.Archive.Enabled {
		writer, err := export.NewWriter(cfg.Export.Archive)
		if err != nil {
			log.Fatalf("Failed to build the archive writer: %v", err)
		}
		archiver := export.NewArchiver(writer, cfg.Export.Archive.FlushIntervalDuration())
		a.Flows().AddSink(archiver)
		closeSinks = append(closeSinks, archiver.Close)
	}

	fan := cluster.New(nil, cfg.Cluster.PeerTimeoutDuration())
	if len(cfg.Cluster.Peers) > 0 || cfg.Cluster.LabelSelector != "" {
		if cfg.Cluster.LabelSelector != "" && k8sClient == nil {
			log.Fatalf("cluster.label_selector requires identity tracking to be enabled")
		}
		discovery := cluster.NewDiscovery(k8sClient, fan, cfg.Cluster, cfg.NodeName, grpcPort(cfg.Query.ListenAddr))
		go discovery.Run(runCtx)
	}

	a.Start()

	service := query.NewService(a.Flows(), fan, a.Status, cfg.Query.MaxResults)
	grpcServer := grpc.NewServer()
	v1.RegisterQueryServiceServer(grpcServer, service)

	lis, err := net.Listen("tcp", cfg.Query.ListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Query.ListenAddr, err)
	}
	go func() {
		log.Printf("gRPC query server starting on %s", cfg.Query.ListenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	var httpServer *http.Server
	if cfg.Query.HTTPListenAddr != "" {
		httpServer = &http.Server{
			Addr:    cfg.Query.HTTPListenAddr,
			Handler: diag.NewHandler(metrics, a.Status),
		}
		go func() {
			log.Printf("Diagnostics HTTP server starting on %s", cfg.Query.HTTPListenAddr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("HTTP server error: %v", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received...")

	grpcServer.GracefulStop()
	if httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		httpServer.Shutdown(ctx)
		cancel()
	}

	cancelRun()
	a.Stop()
	fan.Close()
	for _, closeSink := range closeSinks {
		closeSink()
	}
	log.Println("fsc-agent exited.")
}

// grpcPort extracts the port component of the query listen address.
func grpcPort(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "9090"
	}
	return port
}
