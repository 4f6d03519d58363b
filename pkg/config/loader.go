package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NewsflowYAMLConfig represents the complete newsflow.yaml file structure
type NewsflowYAMLConfig struct {
	System   *SystemYAMLConfig  `yaml:"system"`
	Pipeline *PipelineConfig    `yaml:"pipeline"`
	Queue    *QueueConfig       `yaml:"queue"`
	Purposes map[string]string  `yaml:"purposes"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Retention      *RetentionConfig `yaml:"retention"`
	StatsRedisAddr string           `yaml:"stats_redis_addr"`
	AdminToken     string           `yaml:"admin_token"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]*LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Apply default values
//  5. Build in-memory registries and the purpose resolver
//  6. Validate all configuration (every purpose must resolve)
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"purposes", stats.Purposes)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	newsflowConfig, err := loader.loadNewsflowYAML()
	if err != nil {
		return nil, NewLoadError("newsflow.yaml", err)
	}

	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	providerRegistry := NewLLMProviderRegistry(llmProviders)

	assignments := make(map[Purpose]string, len(newsflowConfig.Purposes))
	for purpose, provider := range newsflowConfig.Purposes {
		assignments[Purpose(purpose)] = provider
	}
	resolver := NewPurposeResolver(assignments, providerRegistry)

	// Resolve pipeline config (user YAML overrides built-in defaults)
	pipelineConfig := DefaultPipelineConfig()
	if newsflowConfig.Pipeline != nil {
		mergePipelineConfig(pipelineConfig, newsflowConfig.Pipeline)
	}

	queueConfig := DefaultQueueConfig()
	if newsflowConfig.Queue != nil {
		mergeQueueConfig(queueConfig, newsflowConfig.Queue)
	}

	retentionConfig := resolveRetentionConfig(newsflowConfig.System)

	statsAddr := "localhost:6379"
	var adminToken string
	if newsflowConfig.System != nil {
		if newsflowConfig.System.StatsRedisAddr != "" {
			statsAddr = newsflowConfig.System.StatsRedisAddr
		}
		adminToken = newsflowConfig.System.AdminToken
	}

	return &Config{
		configDir:           configDir,
		Pipeline:            pipelineConfig,
		Queue:               queueConfig,
		Retention:           retentionConfig,
		LLMProviderRegistry: providerRegistry,
		PurposeResolver:     resolver,
		StatsRedisAddr:      statsAddr,
		AdminToken:          adminToken,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadNewsflowYAML() (*NewsflowYAMLConfig, error) {
	var config NewsflowYAMLConfig
	config.Purposes = make(map[string]string)

	if err := l.loadYAML("newsflow.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]*LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig
	config.LLMProviders = make(map[string]*LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.TraceRetentionDays > 0 {
		cfg.TraceRetentionDays = r.TraceRetentionDays
	}
	if r.ContentRetentionDays > 0 {
		cfg.ContentRetentionDays = r.ContentRetentionDays
	}
	if r.JobRetentionDays > 0 {
		cfg.JobRetentionDays = r.JobRetentionDays
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}

// mergePipelineConfig overlays non-zero user values onto defaults.
func mergePipelineConfig(dst, src *PipelineConfig) {
	if src.ContentRoot != "" {
		dst.ContentRoot = src.ContentRoot
	}
	if src.DiscardThreshold > 0 {
		dst.DiscardThreshold = src.DiscardThreshold
	}
	if src.FullAnalysisThreshold > 0 {
		dst.FullAnalysisThreshold = src.FullAnalysisThreshold
	}
	if src.ScoringBatchSize > 0 {
		dst.ScoringBatchSize = src.ScoringBatchSize
	}
	if src.ScoringTimeout > 0 {
		dst.ScoringTimeout = src.ScoringTimeout
	}
	if src.AnalysisAgentTimeout > 0 {
		dst.AnalysisAgentTimeout = src.AnalysisAgentTimeout
	}
	if src.FetchTimeout > 0 {
		dst.FetchTimeout = src.FetchTimeout
	}
	if src.FetchConcurrency > 0 {
		dst.FetchConcurrency = src.FetchConcurrency
	}
	if src.DispatchChunkSize > 0 {
		dst.DispatchChunkSize = src.DispatchChunkSize
	}
	if src.MonitorInterval > 0 {
		dst.MonitorInterval = src.MonitorInterval
	}
	if src.FeedConcurrency > 0 {
		dst.FeedConcurrency = src.FeedConcurrency
	}
	if src.EmbeddingChunkSize > 0 {
		dst.EmbeddingChunkSize = src.EmbeddingChunkSize
	}
	if src.EmbeddingChunkOverlap > 0 {
		dst.EmbeddingChunkOverlap = src.EmbeddingChunkOverlap
	}
}

// mergeQueueConfig overlays non-zero user values onto defaults.
func mergeQueueConfig(dst, src *QueueConfig) {
	if src.DefaultWorkerCount > 0 {
		dst.DefaultWorkerCount = src.DefaultWorkerCount
	}
	if src.ScrapeWorkerCount > 0 {
		dst.ScrapeWorkerCount = src.ScrapeWorkerCount
	}
	if src.MaxConcurrentJobs > 0 {
		dst.MaxConcurrentJobs = src.MaxConcurrentJobs
	}
	if src.PollInterval > 0 {
		dst.PollInterval = src.PollInterval
	}
	if src.PollIntervalJitter > 0 {
		dst.PollIntervalJitter = src.PollIntervalJitter
	}
	if src.JobSoftTimeout > 0 {
		dst.JobSoftTimeout = src.JobSoftTimeout
	}
	if src.JobHardTimeout > 0 {
		dst.JobHardTimeout = src.JobHardTimeout
	}
	if src.RetryBackoffBase > 0 {
		dst.RetryBackoffBase = src.RetryBackoffBase
	}
	if src.GracefulShutdownTimeout > 0 {
		dst.GracefulShutdownTimeout = src.GracefulShutdownTimeout
	}
	if src.OrphanDetectionInterval > 0 {
		dst.OrphanDetectionInterval = src.OrphanDetectionInterval
	}
	if src.OrphanThreshold > 0 {
		dst.OrphanThreshold = src.OrphanThreshold
	}
	if src.HeartbeatInterval > 0 {
		dst.HeartbeatInterval = src.HeartbeatInterval
	}
}
