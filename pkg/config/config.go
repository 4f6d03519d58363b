// Package config loads and validates the newsflow YAML configuration.
package config

// Config is the fully-loaded, validated runtime configuration.
type Config struct {
	configDir string

	Pipeline  *PipelineConfig
	Queue     *QueueConfig
	Retention *RetentionConfig

	LLMProviderRegistry *LLMProviderRegistry
	PurposeResolver     *PurposeResolver

	// StatsRedisAddr is the Redis endpoint for the filter-stats store.
	StatsRedisAddr string

	// AdminToken, when non-empty, gates the admin API behind a bearer token.
	AdminToken string
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes loaded configuration for boot logging.
type Stats struct {
	LLMProviders int
	Purposes     int
}

// Stats returns counts of loaded components.
func (c *Config) Stats() Stats {
	return Stats{
		LLMProviders: c.LLMProviderRegistry.Len(),
		Purposes:     len(AllPurposes),
	}
}
