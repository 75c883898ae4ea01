// Package cluster fans queries out to peer agents and merges the answers.
package cluster

import (
	"FlowScope/internal/model"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// ErrPeerUnreachable classifies a peer that failed or timed out. Such
// peers are excluded from the merge and counted, never fatal.
var ErrPeerUnreachable = errors.New("peer unreachable")

// PeerClient is one remote agent's query surface.
type PeerClient interface {
	QueryFlows(ctx context.Context, q model.FlowQuery) ([]model.FlowRecord, error)
	Close() error
}

// Dialer opens a client for a peer address.
type Dialer func(addr string) (PeerClient, error)

// Aggregator holds the current peer set and fans queries out concurrently
// with a per-peer timeout. Peers that fail or time out are excluded from
// the merge and surfaced through the partial indicator; a degraded answer
// always beats no answer.
type Aggregator struct {
	dial    Dialer
	timeout time.Duration

	mu      sync.Mutex
	peers   []model.PeerHandle
	clients map[string]PeerClient
}

// New builds the fan-out aggregator. A nil dialer uses gRPC.
func New(dial Dialer, timeout time.Duration) *Aggregator {
	if dial == nil {
		dial = DialGRPC
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Aggregator{
		dial:    dial,
		timeout: timeout,
		clients: make(map[string]PeerClient),
	}
}

// SetPeers replaces the peer set. Clients for departed peers are closed;
// the discovery refresher owns the list's contents.
func (a *Aggregator) SetPeers(peers []model.PeerHandle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	keep := make(map[string]bool, len(peers))
	for _, p := range peers {
		keep[p.Address] = true
	}
	for addr, c := range a.clients {
		if !keep[addr] {
			c.Close()
			delete(a.clients, addr)
		}
	}
	a.peers = append(a.peers[:0:0], peers...)
}

// Peers returns a copy of the current peer set.
func (a *Aggregator) Peers() []model.PeerHandle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.PeerHandle(nil), a.peers...)
}

// Close drops every cached peer client.
func (a *Aggregator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for addr, c := range a.clients {
		c.Close()
		delete(a.clients, addr)
	}
}

// QueryFlows asks every known peer at once and concatenates what comes
// back. Each node reports disjoint, locally observed flows, so the merge
// needs no deduplication.
func (a *Aggregator) QueryFlows(ctx context.Context, q model.FlowQuery) model.QueryResult {
	peers := a.Peers()
	res := model.QueryResult{PeersQueried: len(peers)}
	if len(peers) == 0 {
		return res
	}

	type answer struct {
		addr  string
		flows []model.FlowRecord
		err   error
	}
	answers := make(chan answer, len(peers))
	for _, p := range peers {
		go func(p model.PeerHandle) {
			flows, err := a.queryPeer(ctx, p.Address, q)
			answers <- answer{addr: p.Address, flows: flows, err: err}
		}(p)
	}

	for range peers {
		ans := <-answers
		if ans.err != nil {
			log.Printf("cluster: peer %s excluded from merge: %v", ans.addr, ans.err)
			res.PeersFailed++
			res.Partial = true
			continue
		}
		res.Flows = append(res.Flows, ans.flows...)
	}
	return res
}

func (a *Aggregator) queryPeer(ctx context.Context, addr string, q model.FlowQuery) ([]model.FlowRecord, error) {
	client, err := a.client(addr)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	flows, err := client.QueryFlows(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeerUnreachable, err)
	}
	return flows, nil
}

// client returns the cached connection for a peer, dialing on first use.
func (a *Aggregator) client(addr string) (PeerClient, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if c, ok := a.clients[addr]; ok {
		return c, nil
	}
	c, err := a.dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial peer %s: %w", addr, err)
	}
	a.clients[addr] = c
	return c, nil
}
