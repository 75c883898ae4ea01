package export

import (
	"FlowScope/internal/config"
	"FlowScope/internal/model"
	"context"
	"fmt"
	"log"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS flow_records (
    Namespace       String,
    PodName         String,
    ContainerName   String,
    PodUID          String,
    SrcIP           String,
    DstIP           String,
    SrcPort         UInt16,
    DstPort         UInt16,
    Protocol        UInt8,
    BytesSent       UInt64,
    BytesReceived   UInt64,
    PacketsSent     UInt64,
    PacketsReceived UInt64,
    FirstSeen       DateTime,
    LastSeen        DateTime,
    Sampled         Bool
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(LastSeen)
ORDER BY (Namespace, PodName, LastSeen);
`

// ClickHouseWriter archives evicted flows into the flow_records table.
type ClickHouseWriter struct {
	conn driver.Conn
}

// NewClickHouseWriter connects to ClickHouse and ensures the table exists.
func NewClickHouseWriter(cfg config.ClickHouseConfig) (model.ArchiveWriter, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	log.Println("export: connected to ClickHouse and ensured flow_records exists")

	return &ClickHouseWriter{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

// Write inserts one batch of evicted flows.
func (w *ClickHouseWriter) Write(records []model.FlowRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO flow_records")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, rec := range records {
		err = batch.Append(
			rec.Key.Identity.Namespace,
			rec.Key.Identity.PodName,
			rec.Key.Identity.ContainerName,
			rec.Key.Identity.PodUID,
			model.FormatIPv4(rec.Key.SrcIP),
			model.FormatIPv4(rec.Key.DstIP),
			rec.Key.SrcPort,
			rec.Key.DstPort,
			rec.Key.Protocol,
			rec.BytesSent,
			rec.BytesReceived,
			rec.PacketsSent,
			rec.PacketsReceived,
			rec.FirstSeen,
			rec.LastSeen,
			rec.Sampled,
		)
		if err != nil {
			return fmt.Errorf("failed to append flow to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("export: archived %d flows to ClickHouse", len(records))
	return nil
}

// Close releases the database connection.
func (w *ClickHouseWriter) Close() error {
	return w.conn.Close()
}
