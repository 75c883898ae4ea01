package export

import (
	"FlowScope/internal/model"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SummaryData describes one archived batch, written alongside it so the
// directory can be inspected without decoding the gob payload.
type SummaryData struct {
	TotalFlows   int    `json:"total_flows"`
	TotalBytes   uint64 `json:"total_bytes"`
	TotalPackets uint64 `json:"total_packets"`
	Timestamp    string `json:"timestamp"`
}

// GobWriter archives evicted flows to disk in gob format, one timestamped
// directory per batch. It is the zero-infrastructure archive backend.
type GobWriter struct {
	rootPath string
}

// NewGobWriter creates a writer rooted at the given directory.
func NewGobWriter(rootPath string) model.ArchiveWriter {
	return &GobWriter{rootPath: rootPath}
}

// Write serializes one batch of evicted flows to a new batch directory.
func (w *GobWriter) Write(records []model.FlowRecord) error {
	if len(records) == 0 {
		return nil
	}

	batchDir := filepath.Join(w.rootPath, time.Now().UTC().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(batchDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	filePath := filepath.Join(batchDir, "flows.gob")
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create archive file '%s': %w", filePath, err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(records); err != nil {
		return fmt.Errorf("failed to encode flows to gob: %w", err)
	}

	var totalBytes, totalPackets uint64
	for i := range records {
		totalBytes += records[i].TotalBytes()
		totalPackets += records[i].TotalPackets()
	}
	summary := SummaryData{
		TotalFlows:   len(records),
		TotalBytes:   totalBytes,
		TotalPackets: totalPackets,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	summaryPath := filepath.Join(batchDir, "summary.json")
	summaryFile, err := os.Create(summaryPath)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer summaryFile.Close()

	encoder := json.NewEncoder(summaryFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary to json: %w", err)
	}

	return nil
}

// Close is a no-op; each batch closes its own files.
func (w *GobWriter) Close() error {
	return nil
}
