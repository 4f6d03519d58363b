package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how pipeline jobs are polled, claimed, and processed.
type QueueConfig struct {
	// DefaultWorkerCount is the number of workers on the default (LLM-bound)
	// queue per replica/pod.
	DefaultWorkerCount int `yaml:"default_worker_count"`

	// ScrapeWorkerCount is the number of workers on the scrape (I/O-bound)
	// queue. Kept separate so fetches don't crowd LLM calls.
	ScrapeWorkerCount int `yaml:"scrape_worker_count"`

	// MaxConcurrentJobs is the global limit of concurrent jobs being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobSoftTimeout is the wall-clock budget given to a job's context.
	JobSoftTimeout time.Duration `yaml:"job_soft_timeout"`

	// JobHardTimeout is the absolute ceiling; exceeding it marks the job
	// timed_out even if the executor hasn't returned.
	JobHardTimeout time.Duration `yaml:"job_hard_timeout"`

	// RetryBackoffBase is the base for exponential retry backoff
	// (attempt n waits RetryBackoffBase * 2^(n-1)).
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		DefaultWorkerCount:      4,
		ScrapeWorkerCount:       2,
		MaxConcurrentJobs:       8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobSoftTimeout:          4 * time.Minute,
		JobHardTimeout:          5 * time.Minute,
		RetryBackoffBase:        30 * time.Second,
		GracefulShutdownTimeout: 5 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
	}
}
