package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls one queue for pending jobs.
type Worker struct {
	id       string
	podID    string
	queue    string
	client   *ent.Client
	config   *config.QueueConfig
	executor Executor
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for job registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a queue worker bound to a single queue.
func NewWorker(id, podID, queue string, client *ent.Client, cfg *config.QueueConfig, executor Executor, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Queue:         w.queue,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers but
	// bounded by worker counts and mitigated by poll jitter).
	activeCount, err := w.client.PipelineJob.Query().
		Where(pipelinejob.StatusEQ(pipelinejob.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "kind", job.Kind, "worker_id", w.id)
	log.Info("Job claimed", "attempt", job.Attempts)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Soft timeout: the budget the executor sees on its context.
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobSoftTimeout)
	defer cancelJob()

	// Register cancel function for API-triggered cancellation.
	w.pool.RegisterJob(job.ID, cancelJob)
	defer w.pool.UnregisterJob(job.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID)

	result := w.execute(jobCtx, job)

	// Nil-guard: synthesize a safe result if the executor returned nil.
	if result == nil {
		switch {
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: pipelinejob.StatusTimedOut,
				Error:  fmt.Errorf("job timed out after %v", w.config.JobSoftTimeout),
			}
		case errors.Is(jobCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: pipelinejob.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: pipelinejob.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	cancelHeartbeat()

	// Use background context for the terminal write — the job context may
	// already be cancelled.
	if err := w.settleJob(context.Background(), job, result); err != nil {
		log.Error("Failed to settle job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "status", result.Status)
	return nil
}

// execute runs the executor under the hard timeout ceiling. The soft timeout
// cancels the job context; the hard timeout stops waiting for an executor
// that ignores cancellation.
func (w *Worker) execute(ctx context.Context, job *ent.PipelineJob) *ExecutionResult {
	done := make(chan *ExecutionResult, 1)
	go func() {
		done <- w.executor.Execute(ctx, job)
	}()

	select {
	case result := <-done:
		return result
	case <-time.After(w.config.JobHardTimeout):
		return &ExecutionResult{
			Status: pipelinejob.StatusTimedOut,
			Error:  fmt.Errorf("job exceeded hard timeout of %v", w.config.JobHardTimeout),
		}
	}
}

// claimNextJob atomically claims the next runnable job on this worker's queue
// using FOR UPDATE SKIP LOCKED, FIFO by creation time. run_at gates retries
// scheduled for the future.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.PipelineJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.PipelineJob.Query().
		Where(
			pipelinejob.StatusEQ(pipelinejob.StatusPending),
			pipelinejob.QueueEQ(w.queue),
			pipelinejob.RunAtLTE(time.Now()),
		).
		Order(ent.Asc(pipelinejob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	job, err = job.Update().
		SetStatus(pipelinejob.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.PipelineJob.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// settleJob writes the job's outcome: failed and timed-out jobs with attempts
// remaining are rescheduled with exponential backoff, everything else gets a
// terminal status.
func (w *Worker) settleJob(ctx context.Context, job *ent.PipelineJob, result *ExecutionResult) error {
	retryable := result.Status == pipelinejob.StatusFailed || result.Status == pipelinejob.StatusTimedOut
	if retryable && job.Attempts < job.MaxAttempts {
		return w.scheduleRetry(ctx, job, result)
	}

	update := w.client.PipelineJob.UpdateOneID(job.ID).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}
	if result.Result != nil {
		update = update.SetResult(result.Result)
	}
	return update.Exec(ctx)
}

// scheduleRetry resets the job to pending with run_at pushed into the future.
// Attempt n waits RetryBackoffBase * 2^(n-1).
func (w *Worker) scheduleRetry(ctx context.Context, job *ent.PipelineJob, result *ExecutionResult) error {
	backoff := w.config.RetryBackoffBase << (job.Attempts - 1)
	runAt := time.Now().Add(backoff)

	slog.Info("Scheduling job retry",
		"job_id", job.ID,
		"attempt", job.Attempts,
		"max_attempts", job.MaxAttempts,
		"run_at", runAt.Format(time.RFC3339))

	update := w.client.PipelineJob.UpdateOneID(job.ID).
		SetStatus(pipelinejob.StatusPending).
		SetRunAt(runAt).
		ClearPodID().
		ClearStartedAt().
		ClearLastHeartbeatAt()
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}
	return update.Exec(ctx)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
