package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// TraceRetentionDays is how many days of pipeline trace events to keep.
	TraceRetentionDays int `yaml:"trace_retention_days"`

	// ContentRetentionDays is the age threshold for the content-file sweep.
	// Files older than this whose owning article is terminal (or absent)
	// are deleted.
	ContentRetentionDays int `yaml:"content_retention_days"`

	// JobRetentionDays is how many days of terminal pipeline jobs to keep.
	JobRetentionDays int `yaml:"job_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TraceRetentionDays:   7,
		ContentRetentionDays: 30,
		JobRetentionDays:     14,
		CleanupInterval:      24 * time.Hour,
	}
}
