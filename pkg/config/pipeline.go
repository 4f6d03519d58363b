package config

import "time"

// Setting keys for runtime-tunable values stored in system_settings.
// Absent keys fall back to the config values below.
const (
	SettingDiscardThreshold      = "layer1_discard_threshold"
	SettingFullAnalysisThreshold = "layer1_full_analysis_threshold"
	SettingFetchProviderChain    = "layer15_provider_chain"
	SettingVendorBaseURL         = "layer15_vendor_base_url"
	SettingVendorAPIKey          = "layer15_vendor_api_key"
)

// PipelineConfig groups tunables for the three-layer news pipeline.
type PipelineConfig struct {
	// ContentRoot is the directory for per-article content files.
	ContentRoot string `yaml:"content_root"`

	// DiscardThreshold is the Layer-1 routing floor: total < discard → discard.
	// Overridable per system-settings row.
	DiscardThreshold int `yaml:"discard_threshold"`

	// FullAnalysisThreshold is the Layer-1 routing ceiling:
	// total ≥ full → full_analysis.
	FullAnalysisThreshold int `yaml:"full_analysis_threshold"`

	// ScoringBatchSize is how many articles share one Layer-1 prompt prefix.
	ScoringBatchSize int `yaml:"scoring_batch_size"`

	// ScoringTimeout bounds each Layer-1 agent call.
	ScoringTimeout time.Duration `yaml:"scoring_timeout"`

	// AnalysisAgentTimeout bounds each Layer-2 deep-analysis agent call.
	AnalysisAgentTimeout time.Duration `yaml:"analysis_agent_timeout"`

	// FetchTimeout bounds a single content-provider attempt in Layer 1.5.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// FetchConcurrency bounds concurrent fetches within one Layer-1.5 chunk.
	FetchConcurrency int `yaml:"fetch_concurrency"`

	// DispatchChunkSize is how many articles go into one Layer-2 enqueue chunk.
	DispatchChunkSize int `yaml:"dispatch_chunk_size"`

	// MonitorInterval is the dispatcher tick period.
	MonitorInterval time.Duration `yaml:"monitor_interval"`

	// FeedConcurrency bounds concurrent feed polls per tick.
	FeedConcurrency int `yaml:"feed_concurrency"`

	// InitialFilterEnabled runs the token-efficient single-stage filter over
	// title+summary before Layer 1.5 for standard feeds.
	InitialFilterEnabled bool `yaml:"initial_filter_enabled"`

	// EmbeddingChunkSize is the window size (runes) for embedding chunks.
	EmbeddingChunkSize int `yaml:"embedding_chunk_size"`

	// EmbeddingChunkOverlap is the overlap (runes) between adjacent chunks.
	EmbeddingChunkOverlap int `yaml:"embedding_chunk_overlap"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
// Threshold defaults (105, 195) match older deployments that carried no
// system-settings rows; do not re-guess them.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		ContentRoot:           "./data/content",
		DiscardThreshold:      105,
		FullAnalysisThreshold: 195,
		ScoringBatchSize:      20,
		ScoringTimeout:        60 * time.Second,
		AnalysisAgentTimeout:  120 * time.Second,
		FetchTimeout:          30 * time.Second,
		FetchConcurrency:      4,
		DispatchChunkSize:     10,
		MonitorInterval:       5 * time.Minute,
		FeedConcurrency:       3,
		InitialFilterEnabled:  true,
		EmbeddingChunkSize:    1500,
		EmbeddingChunkOverlap: 200,
	}
}
