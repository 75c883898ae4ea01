package cluster

import (
	"FlowScope/internal/config"
	"FlowScope/internal/model"
	"context"
	"log"
	"net"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Discovery keeps the aggregator's peer set in sync with the agent pods a
// label selector matches. With an empty selector the statically configured
// peer list is installed once and the control plane is never consulted.
type Discovery struct {
	client   kubernetes.Interface
	agg      *Aggregator
	static   []string
	selector string
	ns       string
	node     string
	port     string
	interval time.Duration
}

// NewDiscovery builds a refresher from the cluster config. The port is the
// agent's own gRPC port; peers run the same manifest, so they listen on it
// too. nodeName identifies this agent's pod for self-exclusion.
func NewDiscovery(client kubernetes.Interface, agg *Aggregator, cfg config.ClusterConfig, nodeName, grpcPort string) *Discovery {
	interval := cfg.RefreshIntervalDuration()
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Discovery{
		client:   client,
		agg:      agg,
		static:   cfg.Peers,
		selector: cfg.LabelSelector,
		ns:       cfg.Namespace,
		node:     nodeName,
		port:     grpcPort,
		interval: interval,
	}
}

// Run installs the peer set and keeps it fresh until the context ends.
func (d *Discovery) Run(ctx context.Context) {
	if d.selector == "" {
		peers := make([]model.PeerHandle, 0, len(d.static))
		for _, addr := range d.static {
			peers = append(peers, model.PeerHandle{Address: addr, LastSeenHealthy: time.Now()})
		}
		d.agg.SetPeers(peers)
		if len(peers) > 0 {
			log.Printf("cluster: using %d statically configured peers", len(peers))
		}
		return
	}

	if err := d.refresh(ctx); err != nil {
		log.Printf("cluster: initial peer discovery failed: %v", err)
	}
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.refresh(ctx); err != nil {
				log.Printf("cluster: peer discovery failed: %v", err)
			}
		}
	}
}

// refresh lists the matching pods and rebuilds the peer set from their
// addresses. The previous set stays installed when the list call fails.
func (d *Discovery) refresh(ctx context.Context) error {
	pods, err := d.client.CoreV1().Pods(d.ns).List(ctx, metav1.ListOptions{LabelSelector: d.selector})
	if err != nil {
		return err
	}

	now := time.Now()
	var peers []model.PeerHandle
	for i := range pods.Items {
		pod := &pods.Items[i]
		if pod.Spec.NodeName == d.node {
			// Local flows are served directly; querying ourselves
			// would double-count them.
			continue
		}
		if pod.Status.Phase != corev1.PodRunning || pod.Status.PodIP == "" {
			continue
		}
		peers = append(peers, model.PeerHandle{
			Address:         net.JoinHostPort(pod.Status.PodIP, d.port),
			LastSeenHealthy: now,
		})
	}
	d.agg.SetPeers(peers)
	log.Printf("cluster: peer discovery refreshed, %d reachable agents", len(peers))
	return nil
}
