package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Limits for the ring buffer size option.
const (
	MinRingBufferBytes = 4096
	MaxRingBufferBytes = 64 << 20
)

// ProbeConfig holds the configuration for the kernel event source.
type ProbeConfig struct {
	RingBufferBytes int    `yaml:"ring_buffer_bytes"`
	PollInterval    string `yaml:"poll_interval"`
	PollBatch       int    `yaml:"poll_batch"`
	ObjectPath      string `yaml:"object_path"`
}

// FlowConfig holds the configuration for the flow aggregator.
type FlowConfig struct {
	Expiry         string  `yaml:"expiry"`
	SweepInterval  string  `yaml:"sweep_interval"`
	HighWaterMark  float64 `yaml:"high_water_mark"`
	SamplingStride int     `yaml:"sampling_stride"`
	ProtectedFirst int     `yaml:"protected_first"`
}

// IdentityConfig holds the configuration for pod identity tracking.
type IdentityConfig struct {
	Enabled          bool   `yaml:"enabled"`
	Kubeconfig       string `yaml:"kubeconfig"`
	CgroupRoot       string `yaml:"cgroup_root"`
	PendingTimeout   string `yaml:"pending_timeout"`
	PendingQueueSize int    `yaml:"pending_queue_size"`
	BackoffMin       string `yaml:"backoff_min"`
	BackoffMax       string `yaml:"backoff_max"`
	ResolveAttempts  int    `yaml:"resolve_attempts"`
}

// QueryConfig holds the configuration for the query and diagnostics servers.
type QueryConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	HTTPListenAddr string `yaml:"http_listen_addr"`
	MaxResults     int    `yaml:"max_results"`
	StreamBuffer   int    `yaml:"stream_buffer"`
}

// ClusterConfig holds the configuration for peer fan-out queries.
type ClusterConfig struct {
	Peers           []string `yaml:"peers"`
	PeerTimeout     string   `yaml:"peer_timeout"`
	LabelSelector   string   `yaml:"label_selector"`
	Namespace       string   `yaml:"namespace"`
	RefreshInterval string   `yaml:"refresh_interval"`
}

// NATSConfig holds the configuration for the flow update publisher.
type NATSConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// ClickHouseConfig holds the connection settings for the archive database.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ArchiveConfig holds the configuration for the evicted flow archive.
type ArchiveConfig struct {
	Enabled       bool             `yaml:"enabled"`
	Driver        string           `yaml:"driver"`
	FlushInterval string           `yaml:"flush_interval"`
	Path          string           `yaml:"path"`
	ClickHouse    ClickHouseConfig `yaml:"clickhouse"`
}

// ExportConfig groups the optional outbound sinks.
type ExportConfig struct {
	NATS    NATSConfig    `yaml:"nats"`
	Archive ArchiveConfig `yaml:"archive"`
}

// Config is the top-level configuration struct for the entire agent.
type Config struct {
	NodeName string         `yaml:"node_name"`
	Probe    ProbeConfig    `yaml:"probe"`
	Flows    FlowConfig     `yaml:"flows"`
	Identity IdentityConfig `yaml:"identity"`
	Query    QueryConfig    `yaml:"query"`
	Cluster  ClusterConfig  `yaml:"cluster"`
	Export   ExportConfig   `yaml:"export"`
}

// Default returns a Config populated with the agent's defaults.
func Default() *Config {
	return &Config{
		Probe: ProbeConfig{
			RingBufferBytes: 256 * 1024,
			PollInterval:    "10ms",
			PollBatch:       1024,
			ObjectPath:      "bpf/flowscope.bpf.o",
		},
		Flows: FlowConfig{
			Expiry:         "30s",
			SweepInterval:  "5s",
			HighWaterMark:  0.9,
			SamplingStride: 8,
			ProtectedFirst: 10,
		},
		Identity: IdentityConfig{
			Enabled:          true,
			CgroupRoot:       "/sys/fs/cgroup",
			PendingTimeout:   "10s",
			PendingQueueSize: 8192,
			BackoffMin:       "1s",
			BackoffMax:       "30s",
			ResolveAttempts:  5,
		},
		Query: QueryConfig{
			ListenAddr:     ":9090",
			HTTPListenAddr: ":9091",
			MaxResults:     1000,
			StreamBuffer:   1000,
		},
		Cluster: ClusterConfig{
			PeerTimeout:     "2s",
			RefreshInterval: "30s",
		},
		Export: ExportConfig{
			NATS: NATSConfig{
				URL:     "nats://127.0.0.1:4222",
				Subject: "flowscope.flows",
			},
			Archive: ArchiveConfig{
				Driver:        "gob",
				FlushInterval: "30s",
				Path:          "archive",
			},
		},
	}
}

// LoadConfig reads the configuration from a YAML file, applies defaults for
// omitted options and validates the result.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if cfg.NodeName == "" {
		cfg.NodeName = nodeName()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option ranges and duration syntax. A Config that fails
// validation must not be used to start the agent.
func (c *Config) Validate() error {
	n := c.Probe.RingBufferBytes
	if n < MinRingBufferBytes || n > MaxRingBufferBytes {
		return fmt.Errorf("probe.ring_buffer_bytes %d out of range [%d, %d]", n, MinRingBufferBytes, MaxRingBufferBytes)
	}
	if n&(n-1) != 0 {
		return fmt.Errorf("probe.ring_buffer_bytes %d is not a power of two", n)
	}
	if c.Probe.PollBatch < 1 {
		return fmt.Errorf("probe.poll_batch must be at least 1, got %d", c.Probe.PollBatch)
	}
	if c.Flows.HighWaterMark <= 0 || c.Flows.HighWaterMark > 1 {
		return fmt.Errorf("flows.high_water_mark %v out of range (0, 1]", c.Flows.HighWaterMark)
	}
	if c.Flows.SamplingStride < 1 {
		return fmt.Errorf("flows.sampling_stride must be at least 1, got %d", c.Flows.SamplingStride)
	}
	if c.Flows.ProtectedFirst < 0 {
		return fmt.Errorf("flows.protected_first must not be negative, got %d", c.Flows.ProtectedFirst)
	}
	if c.Identity.PendingQueueSize < 1 {
		return fmt.Errorf("identity.pending_queue_size must be at least 1, got %d", c.Identity.PendingQueueSize)
	}
	if c.Identity.ResolveAttempts < 1 {
		return fmt.Errorf("identity.resolve_attempts must be at least 1, got %d", c.Identity.ResolveAttempts)
	}
	if c.Query.ListenAddr == "" {
		return fmt.Errorf("query.listen_addr must not be empty")
	}
	if c.Query.MaxResults < 1 {
		return fmt.Errorf("query.max_results must be at least 1, got %d", c.Query.MaxResults)
	}
	if c.Query.StreamBuffer < 1 {
		return fmt.Errorf("query.stream_buffer must be at least 1, got %d", c.Query.StreamBuffer)
	}

	durations := map[string]string{
		"probe.poll_interval":      c.Probe.PollInterval,
		"flows.expiry":             c.Flows.Expiry,
		"flows.sweep_interval":     c.Flows.SweepInterval,
		"identity.pending_timeout": c.Identity.PendingTimeout,
		"identity.backoff_min":     c.Identity.BackoffMin,
		"identity.backoff_max":     c.Identity.BackoffMax,
		"cluster.peer_timeout":     c.Cluster.PeerTimeout,
		"cluster.refresh_interval": c.Cluster.RefreshInterval,
		"export.archive.flush_interval": c.Export.Archive.FlushInterval,
	}
	for name, val := range durations {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, val)
		}
	}
	if dur(c.Identity.BackoffMin) > dur(c.Identity.BackoffMax) {
		return fmt.Errorf("identity.backoff_min %s exceeds backoff_max %s", c.Identity.BackoffMin, c.Identity.BackoffMax)
	}

	if c.Export.Archive.Enabled {
		switch c.Export.Archive.Driver {
		case "clickhouse":
			if c.Export.Archive.ClickHouse.Host == "" {
				return fmt.Errorf("export.archive.clickhouse.host must be set for the clickhouse driver")
			}
		case "gob":
			if c.Export.Archive.Path == "" {
				return fmt.Errorf("export.archive.path must be set for the gob driver")
			}
		default:
			return fmt.Errorf("unknown archive driver %q (want clickhouse or gob)", c.Export.Archive.Driver)
		}
	}
	if c.Export.NATS.Enabled && c.Export.NATS.URL == "" {
		return fmt.Errorf("export.nats.url must be set when the publisher is enabled")
	}
	return nil
}

// Duration accessors. Validate has already checked the syntax, so parse
// errors here mean the Config skipped validation and zero is returned.

func (p ProbeConfig) PollIntervalDuration() time.Duration    { return dur(p.PollInterval) }
func (f FlowConfig) ExpiryDuration() time.Duration           { return dur(f.Expiry) }
func (f FlowConfig) SweepIntervalDuration() time.Duration    { return dur(f.SweepInterval) }
func (i IdentityConfig) PendingTimeoutDuration() time.Duration { return dur(i.PendingTimeout) }
func (i IdentityConfig) BackoffMinDuration() time.Duration   { return dur(i.BackoffMin) }
func (i IdentityConfig) BackoffMaxDuration() time.Duration   { return dur(i.BackoffMax) }
func (c ClusterConfig) PeerTimeoutDuration() time.Duration   { return dur(c.PeerTimeout) }
func (c ClusterConfig) RefreshIntervalDuration() time.Duration { return dur(c.RefreshInterval) }
func (a ArchiveConfig) FlushIntervalDuration() time.Duration { return dur(a.FlushInterval) }

func dur(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func nodeName() string {
	if name := os.Getenv("NODE_NAME"); name != "" {
		return name
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown-node"
	}
	return host
}
