// Package queue implements the database-backed job queue. PipelineJob rows
// are the queue: workers claim pending jobs with FOR UPDATE SKIP LOCKED,
// heartbeat while processing, and write a terminal status when done.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinejob"
)

// Worker queue names. Scrape workers are kept separate so outbound fetches
// don't crowd the LLM-bound workers.
const (
	QueueDefault = "default"
	QueueScrape  = "scrape"
)

// queueForKind maps a job kind to the worker queue that processes it.
func queueForKind(kind pipelinejob.Kind) string {
	if kind == pipelinejob.KindFetchBatch {
		return QueueScrape
	}
	return QueueDefault
}

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are on the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Executor processes a claimed job. The executor owns the job's side effects
// (DB writes, traces, downstream enqueues); the worker only handles claiming,
// heartbeat, retry scheduling, and the terminal status update.
type Executor interface {
	Execute(ctx context.Context, job *ent.PipelineJob) *ExecutionResult
}

// ExecutionResult is the terminal state of one job attempt.
type ExecutionResult struct {
	Status pipelinejob.Status     // completed, failed, timed_out, cancelled
	Result map[string]interface{} // optional summary stored on the job row
	Error  error                  // error details (if failed/timed_out)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Queue         string    `json:"queue"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
