package identity

import (
	"FlowScope/internal/model"
	"testing"
)

func TestCache_LookupAndUpsert(t *testing.T) {
	c := NewCache()

	// 1. Empty cache misses.
	if _, ok := c.Lookup(42); ok {
		t.Errorf("Expected miss on empty cache, got hit")
	}

	// 2. Upsert then hit.
	id := model.WorkloadIdentity{Namespace: "default", PodName: "web-0", ContainerName: "nginx", PodUID: "uid-1"}
	c.Upsert(42, id)
	got, ok := c.Lookup(42)
	if !ok {
		t.Fatalf("Failed to look up cgroup 42 after upsert")
	}
	if got != id {
		t.Errorf("Expected identity %+v, got %+v", id, got)
	}

	// 3. Upsert overwrites in place.
	id.ContainerName = "nginx-v2"
	c.Upsert(42, id)
	got, _ = c.Lookup(42)
	if got.ContainerName != "nginx-v2" {
		t.Errorf("Expected container name nginx-v2 after overwrite, got %q", got.ContainerName)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry after overwrite, got %d", c.Len())
	}
}

func TestCache_PodIPIndex(t *testing.T) {
	c := NewCache()
	ip := model.ParseIPv4(10, 0, 0, 5)
	id := model.WorkloadIdentity{Namespace: "default", PodName: "web-0", PodUID: "uid-1"}

	if _, ok := c.LookupIP(ip); ok {
		t.Errorf("Expected IP miss on empty cache, got hit")
	}
	c.SetPodIP(ip, id)
	got, ok := c.LookupIP(ip)
	if !ok {
		t.Fatalf("Failed to look up pod IP after SetPodIP")
	}
	if got.PodName != "web-0" || got.Namespace != "default" {
		t.Errorf("Expected web-0/default, got %q/%q", got.PodName, got.Namespace)
	}
	// Address attribution stops at the pod, never a container.
	if got.ContainerName != "" {
		t.Errorf("Expected empty container name on IP lookup, got %q", got.ContainerName)
	}
}

func TestCache_RemovePod(t *testing.T) {
	c := NewCache()
	ipA := model.ParseIPv4(10, 0, 0, 1)
	ipB := model.ParseIPv4(10, 0, 0, 2)
	c.Upsert(1, model.WorkloadIdentity{PodName: "a", PodUID: "uid-a", ContainerName: "app"})
	c.Upsert(2, model.WorkloadIdentity{PodName: "a", PodUID: "uid-a", ContainerName: "sidecar"})
	c.Upsert(3, model.WorkloadIdentity{PodName: "b", PodUID: "uid-b", ContainerName: "app"})
	c.SetPodIP(ipA, model.WorkloadIdentity{PodName: "a", PodUID: "uid-a"})
	c.SetPodIP(ipB, model.WorkloadIdentity{PodName: "b", PodUID: "uid-b"})

	c.RemovePod("uid-a")

	if _, ok := c.Lookup(1); ok {
		t.Errorf("Expected cgroup 1 gone after RemovePod")
	}
	if _, ok := c.Lookup(2); ok {
		t.Errorf("Expected cgroup 2 gone after RemovePod")
	}
	if _, ok := c.LookupIP(ipA); ok {
		t.Errorf("Expected pod IP gone after RemovePod")
	}
	if _, ok := c.Lookup(3); !ok {
		t.Errorf("Expected other pod's cgroup to survive RemovePod")
	}
	if _, ok := c.LookupIP(ipB); !ok {
		t.Errorf("Expected other pod's IP to survive RemovePod")
	}
}

func TestCache_ReplaceAll(t *testing.T) {
	c := NewCache()
	c.Upsert(1, model.WorkloadIdentity{PodName: "stale", PodUID: "uid-old"})
	c.SetPodIP(model.ParseIPv4(10, 0, 0, 9), model.WorkloadIdentity{PodName: "stale", PodUID: "uid-old"})

	groups := map[uint64]model.WorkloadIdentity{
		7: {PodName: "fresh", PodUID: "uid-new", ContainerName: "app"},
	}
	ips := map[uint32]model.WorkloadIdentity{
		model.ParseIPv4(10, 0, 0, 10): {PodName: "fresh", PodUID: "uid-new"},
	}
	c.ReplaceAll(groups, ips)

	if _, ok := c.Lookup(1); ok {
		t.Errorf("Expected stale cgroup entry gone after ReplaceAll")
	}
	if _, ok := c.LookupIP(model.ParseIPv4(10, 0, 0, 9)); ok {
		t.Errorf("Expected stale IP entry gone after ReplaceAll")
	}
	if got, ok := c.Lookup(7); !ok || got.PodName != "fresh" {
		t.Errorf("Expected fresh entry after ReplaceAll, got %+v ok=%v", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Expected Len 1 after ReplaceAll, got %d", c.Len())
	}

	// Nil maps clear everything.
	c.ReplaceAll(nil, nil)
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after ReplaceAll(nil, nil), got Len %d", c.Len())
	}
}
