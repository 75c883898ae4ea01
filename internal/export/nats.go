// Package export ships evicted flow records off the node, to a NATS
// subject for live consumers and to an archive for retention.
package export

import (
	v1 "FlowScope/api/gen/v1"
	"FlowScope/internal/config"
	"FlowScope/internal/model"
	"FlowScope/internal/query"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// Publisher forwards evicted flows to a NATS subject as FlowUpdate
// protobufs. Each node publishes on its own subject suffix so consumers
// can subscribe per node or use a wildcard for the whole cluster.
type Publisher struct {
	nc      *nats.Conn
	subject string
	node    string
}

// NewPublisher connects to the NATS server named in the config.
func NewPublisher(cfg config.NATSConfig, nodeName string) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.URL, err)
	}
	log.Printf("export: connected to NATS server at %s", cfg.URL)
	return &Publisher{nc: nc, subject: cfg.Subject + "." + nodeName, node: nodeName}, nil
}

// Publish serializes the record and hands it to the NATS client. The
// client buffers writes internally, so the flow table's sweep never
// blocks here.
func (p *Publisher) Publish(rec model.FlowRecord) {
	update := &v1.FlowUpdate{
		Record:   query.RecordToProto(rec),
		Evicted:  true,
		NodeName: p.node,
	}
	data, err := proto.Marshal(update)
	if err != nil {
		log.Printf("export: failed to marshal flow update: %v", err)
		return
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		log.Printf("export: failed to publish flow update: %v", err)
	}
}

// Close drains the connection so buffered publishes reach the server.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("export: NATS connection drained and closed")
	}
}
