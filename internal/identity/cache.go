package identity

import (
	"FlowScope/internal/model"
	"sync"
)

// Cache maps container group ids to workload identities, with a secondary
// pod-IP index for address-based enrichment. There is exactly one writer
// (the Watcher); readers come in on the event path at high frequency and
// hold the read lock for a single lookup.
type Cache struct {
	mu      sync.RWMutex
	byGroup map[uint64]model.WorkloadIdentity
	byPodIP map[uint32]model.WorkloadIdentity
}

func NewCache() *Cache {
	return &Cache{
		byGroup: make(map[uint64]model.WorkloadIdentity),
		byPodIP: make(map[uint32]model.WorkloadIdentity),
	}
}

// Lookup resolves a container group id to its identity.
func (c *Cache) Lookup(cgroupID uint64) (model.WorkloadIdentity, bool) {
	c.mu.RLock()
	id, ok := c.byGroup[cgroupID]
	c.mu.RUnlock()
	return id, ok
}

// LookupIP resolves a pod IP (probe byte order) to its pod identity.
// The returned identity carries no container name; address attribution
// cannot see past the pod boundary.
func (c *Cache) LookupIP(ip uint32) (model.WorkloadIdentity, bool) {
	c.mu.RLock()
	id, ok := c.byPodIP[ip]
	c.mu.RUnlock()
	return id, ok
}

// Upsert installs or replaces the identity for one container group.
func (c *Cache) Upsert(cgroupID uint64, id model.WorkloadIdentity) {
	c.mu.Lock()
	c.byGroup[cgroupID] = id
	c.mu.Unlock()
}

// SetPodIP installs or replaces the pod identity for one address.
func (c *Cache) SetPodIP(ip uint32, id model.WorkloadIdentity) {
	c.mu.Lock()
	c.byPodIP[ip] = id
	c.mu.Unlock()
}

// RemovePod deletes every entry belonging to the pod UID, across both
// indexes, in one critical section.
func (c *Cache) RemovePod(podUID string) {
	c.mu.Lock()
	for cgid, id := range c.byGroup {
		if id.PodUID == podUID {
			delete(c.byGroup, cgid)
		}
	}
	for ip, id := range c.byPodIP {
		if id.PodUID == podUID {
			delete(c.byPodIP, ip)
		}
	}
	c.mu.Unlock()
}

// ReplaceAll swaps the entire cache in one critical section. Used by the
// watcher's full resync so stale entries cannot outlive a reconnect.
func (c *Cache) ReplaceAll(groups map[uint64]model.WorkloadIdentity, podIPs map[uint32]model.WorkloadIdentity) {
	if groups == nil {
		groups = make(map[uint64]model.WorkloadIdentity)
	}
	if podIPs == nil {
		podIPs = make(map[uint32]model.WorkloadIdentity)
	}
	c.mu.Lock()
	c.byGroup = groups
	c.byPodIP = podIPs
	c.mu.Unlock()
}

// Len reports the number of tracked container groups.
func (c *Cache) Len() int {
	c.mu.RLock()
	n := len(c.byGroup)
	c.mu.RUnlock()
	return n
}
