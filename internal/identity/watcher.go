package identity

import (
	"FlowScope/internal/diag"
	"FlowScope/internal/model"
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// State of the watcher's connection to the control plane.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateSyncing
	StateStreaming
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateSyncing:
		return "syncing"
	case StateStreaming:
		return "streaming"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Resolver narrows the cgroup resolver to what the watcher needs.
type Resolver interface {
	Resolve(podUID, containerID string) (uint64, error)
}

// WatcherConfig bounds the reconnect backoff and resolution retries.
type WatcherConfig struct {
	NodeName        string
	BackoffMin      time.Duration
	BackoffMax      time.Duration
	ResolveAttempts int
	RetryInterval   time.Duration
}

// maxPending bounds the resolution retry list. Entries past the bound are
// dropped with a counted diagnostic instead of growing without limit.
const maxPending = 1024

type pendingResolve struct {
	identity    model.WorkloadIdentity
	containerID string
	attempts    int
}

// Watcher drives the identity cache from pod lifecycle events. It runs as
// one goroutine looping through an explicit state machine:
//
//	disconnected -> connecting -> syncing -> streaming -> (error) -> disconnected
//
// Every reconnect passes through syncing, which replaces the cache
// wholesale, so no stale entry can survive an outage. A lifecycle event is
// never fatal; the loop retries forever with capped exponential backoff.
type Watcher struct {
	client   kubernetes.Interface
	cache    *Cache
	resolver Resolver
	metrics  *diag.Metrics
	cfg      WatcherConfig

	state atomic.Int32

	mu      sync.Mutex
	pending []pendingResolve
}

// NewWatcher wires the watcher to its cache, resolver and metrics.
// Zero config fields fall back to the documented defaults.
func NewWatcher(client kubernetes.Interface, cache *Cache, resolver Resolver, cfg WatcherConfig, metrics *diag.Metrics) *Watcher {
	if cfg.BackoffMin <= 0 {
		cfg.BackoffMin = time.Second
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = 30 * time.Second
	}
	if cfg.ResolveAttempts <= 0 {
		cfg.ResolveAttempts = 5
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = time.Second
	}
	return &Watcher{
		client:   client,
		cache:    cache,
		resolver: resolver,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// State reports the current connection state.
func (w *Watcher) State() State {
	return State(w.state.Load())
}

func (w *Watcher) setState(s State) {
	old := State(w.state.Swap(int32(s)))
	if old != s {
		log.Printf("watcher: state %s -> %s", old, s)
	}
}

// Run loops the state machine until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.setState(StateDisconnected)

	backoff := w.cfg.BackoffMin
	first := true
	for {
		if ctx.Err() != nil {
			return
		}
		if !first {
			w.metrics.AddReconnect()
		}
		first = false

		w.setState(StateConnecting)
		w.setState(StateSyncing)
		rv, err := w.resync(ctx)
		if err != nil {
			w.metrics.SetWatchConnected(false)
			w.setState(StateDisconnected)
			log.Printf("watcher: resync failed: %v", err)
			if !sleepCtx(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff, w.cfg.BackoffMax)
			continue
		}
		w.metrics.SetWatchConnected(true)
		w.metrics.SetLastResync(time.Now())
		backoff = w.cfg.BackoffMin

		w.setState(StateStreaming)
		if err := w.stream(ctx, rv); err != nil {
			log.Printf("watcher: stream ended: %v", err)
		}
		w.metrics.SetWatchConnected(false)
		w.setState(StateDisconnected)

		if ctx.Err() != nil {
			return
		}
		if !sleepCtx(ctx, backoff) {
			return
		}
		backoff = nextBackoff(backoff, w.cfg.BackoffMax)
	}
}

// resync lists every pod on this node, resolves their container groups and
// swaps the cache in one step. Returns the list's resource version for the
// subsequent watch.
func (w *Watcher) resync(ctx context.Context) (string, error) {
	opts := metav1.ListOptions{}
	if w.cfg.NodeName != "" {
		opts.FieldSelector = "spec.nodeName=" + w.cfg.NodeName
	}
	pods, err := w.client.CoreV1().Pods(metav1.NamespaceAll).List(ctx, opts)
	if err != nil {
		return "", fmt.Errorf("failed to list pods: %w", err)
	}

	w.mu.Lock()
	w.pending = nil
	w.mu.Unlock()

	groups := make(map[uint64]model.WorkloadIdentity)
	podIPs := make(map[uint32]model.WorkloadIdentity)
	for i := range pods.Items {
		w.collectPod(&pods.Items[i], groups, podIPs)
	}
	w.cache.ReplaceAll(groups, podIPs)
	w.metrics.SetTrackedPods(w.cache.Len())
	log.Printf("watcher: full resync complete, %d container groups across %d pods", len(groups), len(pods.Items))
	return pods.ResourceVersion, nil
}

// collectPod resolves one pod's containers into the resync maps.
func (w *Watcher) collectPod(pod *corev1.Pod, groups map[uint64]model.WorkloadIdentity, podIPs map[uint32]model.WorkloadIdentity) {
	podID := model.WorkloadIdentity{
		Namespace: pod.Namespace,
		PodName:   pod.Name,
		PodUID:    string(pod.UID),
	}
	if ip := parsePodIP(pod.Status.PodIP); ip != 0 {
		podIPs[ip] = podID
	}
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.ContainerID == "" {
			continue
		}
		id := podID
		id.ContainerName = cs.Name
		ino, err := w.resolver.Resolve(string(pod.UID), cs.ContainerID)
		if err != nil {
			w.addPending(id, cs.ContainerID)
			continue
		}
		groups[ino] = id
	}
}

// stream consumes lifecycle events until the watch breaks. The resolution
// retry ticker shares this loop so pending containers get another chance
// each interval.
func (w *Watcher) stream(ctx context.Context, resourceVersion string) error {
	opts := metav1.ListOptions{ResourceVersion: resourceVersion}
	if w.cfg.NodeName != "" {
		opts.FieldSelector = "spec.nodeName=" + w.cfg.NodeName
	}
	wi, err := w.client.CoreV1().Pods(metav1.NamespaceAll).Watch(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to open watch: %w", err)
	}
	defer wi.Stop()

	retry := time.NewTicker(w.cfg.RetryInterval)
	defer retry.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-retry.C:
			w.processPending()
		case ev, ok := <-wi.ResultChan():
			if !ok {
				return fmt.Errorf("watch stream closed")
			}
			switch ev.Type {
			case watch.Added, watch.Modified:
				if pod, ok := ev.Object.(*corev1.Pod); ok {
					w.applyPod(pod)
				}
			case watch.Deleted:
				if pod, ok := ev.Object.(*corev1.Pod); ok {
					w.removePod(pod)
				}
			case watch.Error:
				return fmt.Errorf("watch error event: %v", ev.Object)
			}
		}
	}
}

// applyPod upserts identities for a created or modified pod.
func (w *Watcher) applyPod(pod *corev1.Pod) {
	podID := model.WorkloadIdentity{
		Namespace: pod.Namespace,
		PodName:   pod.Name,
		PodUID:    string(pod.UID),
	}
	if ip := parsePodIP(pod.Status.PodIP); ip != 0 {
		w.cache.SetPodIP(ip, podID)
	}
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.ContainerID == "" {
			continue
		}
		id := podID
		id.ContainerName = cs.Name
		ino, err := w.resolver.Resolve(string(pod.UID), cs.ContainerID)
		if err != nil {
			w.addPending(id, cs.ContainerID)
			continue
		}
		w.cache.Upsert(ino, id)
	}
	w.metrics.SetTrackedPods(w.cache.Len())
}

// removePod drops every cached entry for a deleted pod.
func (w *Watcher) removePod(pod *corev1.Pod) {
	uid := string(pod.UID)
	w.cache.RemovePod(uid)

	w.mu.Lock()
	kept := w.pending[:0]
	for _, p := range w.pending {
		if p.identity.PodUID != uid {
			kept = append(kept, p)
		}
	}
	w.pending = kept
	w.mu.Unlock()

	w.metrics.SetTrackedPods(w.cache.Len())
}

// addPending queues a container whose cgroup is not visible yet, typically
// because the runtime is still creating it.
func (w *Watcher) addPending(id model.WorkloadIdentity, containerID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) >= maxPending {
		w.metrics.ResolutionDropped.Add(1)
		return
	}
	w.pending = append(w.pending, pendingResolve{identity: id, containerID: containerID})
}

// processPending retries queued resolutions, dropping entries that exhaust
// their attempts with a counted diagnostic.
func (w *Watcher) processPending() {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()
	if len(pending) == 0 {
		return
	}

	var keep []pendingResolve
	for _, p := range pending {
		ino, err := w.resolver.Resolve(p.identity.PodUID, p.containerID)
		if err == nil {
			w.cache.Upsert(ino, p.identity)
			continue
		}
		p.attempts++
		if p.attempts >= w.cfg.ResolveAttempts {
			w.metrics.ResolutionDropped.Add(1)
			log.Printf("watcher: giving up on %s/%s container %s after %d resolve attempts",
				p.identity.Namespace, p.identity.PodName, p.identity.ContainerName, p.attempts)
			continue
		}
		keep = append(keep, p)
	}
	if len(keep) > 0 {
		w.mu.Lock()
		w.pending = append(w.pending, keep...)
		w.mu.Unlock()
	}
	w.metrics.SetTrackedPods(w.cache.Len())
}

// NewClient builds a clientset, preferring in-cluster credentials and
// falling back to kubeconfig for development hosts.
func NewClient(kubeconfigPath string) (kubernetes.Interface, error) {
	cfg, err := loadRESTConfig(kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build kubernetes config: %w", err)
	}
	cfg.QPS = 30
	cfg.Burst = 60
	client, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build kubernetes client: %w", err)
	}
	return client, nil
}

func loadRESTConfig(kubeconfigPath string) (*rest.Config, error) {
	if cfg, err := rest.InClusterConfig(); err == nil {
		return cfg, nil
	}
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfigPath != "" {
		rules.ExplicitPath = kubeconfigPath
	}
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
}

// Ping verifies the control plane answers at all. The agent calls this
// once at startup, where exhausted retries are a fatal configuration
// problem; steady-state loss is Run's business, never fatal.
func Ping(ctx context.Context, client kubernetes.Interface, attempts int, delay time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if _, err = client.Discovery().ServerVersion(); err == nil {
			return nil
		}
		if !sleepCtx(ctx, delay) {
			break
		}
	}
	return fmt.Errorf("control plane unreachable after %d attempts: %w", attempts, err)
}

func parsePodIP(s string) uint32 {
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

func nextBackoff(cur, max time.Duration) time.Duration {
	next := cur * 2
	if next > max {
		return max
	}
	return next
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
