package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/config"
	testdb "github.com/finsight/newsflow/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExecutor returns a canned result and records the jobs it saw.
type stubExecutor struct {
	mu     sync.Mutex
	jobs   []*ent.PipelineJob
	result *ExecutionResult
}

func (s *stubExecutor) Execute(ctx context.Context, job *ent.PipelineJob) *ExecutionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return s.result
}

func (s *stubExecutor) seen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		DefaultWorkerCount:      2,
		ScrapeWorkerCount:       1,
		MaxConcurrentJobs:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		JobSoftTimeout:          30 * time.Second,
		JobHardTimeout:          40 * time.Second,
		RetryBackoffBase:        30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       30 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func TestEnqueueRoutesByKind(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	monitorID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)
	fetchID, err := qc.Enqueue(ctx, pipelinejob.KindFetchBatch, map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"article_id": "art-1"}},
	})
	require.NoError(t, err)

	monitor, err := client.PipelineJob.Get(ctx, monitorID)
	require.NoError(t, err)
	assert.Equal(t, QueueDefault, monitor.Queue)
	assert.Equal(t, pipelinejob.StatusPending, monitor.Status)
	assert.Equal(t, 0, monitor.Attempts)
	assert.Equal(t, 3, monitor.MaxAttempts)

	fetch, err := client.PipelineJob.Get(ctx, fetchID)
	require.NoError(t, err)
	assert.Equal(t, QueueScrape, fetch.Queue)
	require.NotNil(t, fetch.Payload)
	assert.Len(t, fetch.Payload["items"], 1)
}

func TestClaimNextJob(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	jobID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", QueueDefault, client, cfg, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, jobID, claimed.ID)
	assert.Equal(t, pipelinejob.StatusInProgress, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoJobsAvailable
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimRespectsQueueAndRunAt(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	// fetch_batch goes to the scrape queue; default workers must not see it.
	_, err := qc.Enqueue(ctx, pipelinejob.KindFetchBatch, map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"article_id": "art-1"}},
	})
	require.NoError(t, err)

	// A job scheduled in the future is not claimable yet.
	futureID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)
	require.NoError(t, client.PipelineJob.UpdateOneID(futureID).
		SetRunAt(time.Now().Add(time.Hour)).
		Exec(ctx))

	cfg := intTestQueueConfig()
	defaultWorker := NewWorker("w-default", "test-pod", QueueDefault, client, cfg, nil, nil)
	_, err = defaultWorker.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)

	scrapeWorker := NewWorker("w-scrape", "test-pod", QueueScrape, client, cfg, nil, nil)
	claimed, err := scrapeWorker.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.KindFetchBatch, claimed.Kind)
}

func TestConcurrentClaimsDifferentJobs(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		id, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
		require.NoError(t, err)
		jobIDs[id] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", QueueDefault, client, cfg, nil, nil)
			job, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, job.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, claimed, 5, "all 5 jobs should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in original set", id)
	}
}

func TestSettleJobRetriesWithBackoff(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	jobID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("w-0", "test-pod", QueueDefault, client, cfg, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	before := time.Now()
	require.NoError(t, w.settleJob(ctx, claimed, &ExecutionResult{
		Status: pipelinejob.StatusFailed,
		Error:  fmt.Errorf("transient fetch error"),
	}))

	job, err := client.PipelineJob.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusPending, job.Status, "failed job with attempts left goes back to pending")
	assert.Equal(t, 1, job.Attempts)
	assert.Nil(t, job.PodID)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "transient fetch error")
	// First retry waits RetryBackoffBase.
	assert.True(t, job.RunAt.After(before.Add(cfg.RetryBackoffBase-time.Second)),
		"run_at should be pushed ~%v into the future, got %v", cfg.RetryBackoffBase, job.RunAt.Sub(before))

	// Not claimable until run_at passes.
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestSettleJobExhaustedAttemptsIsTerminal(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	jobID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("w-0", "test-pod", QueueDefault, client, cfg, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	// Simulate this being the final allowed attempt.
	claimed, err = claimed.Update().SetAttempts(claimed.MaxAttempts).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, w.settleJob(ctx, claimed, &ExecutionResult{
		Status: pipelinejob.StatusFailed,
		Error:  fmt.Errorf("still broken"),
	}))

	job, err := client.PipelineJob.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusFailed, job.Status)
	require.NotNil(t, job.CompletedAt)
}

func TestSettleJobCompletedStoresResult(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	jobID, err := qc.Enqueue(ctx, pipelinejob.KindArticleAnalysis, map[string]interface{}{
		"article_id": "art-1",
	})
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("w-0", "test-pod", QueueDefault, client, cfg, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)

	require.NoError(t, w.settleJob(ctx, claimed, &ExecutionResult{
		Status: pipelinejob.StatusCompleted,
		Result: map[string]interface{}{"decision": "keep"},
	}))

	job, err := client.PipelineJob.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusCompleted, job.Status)
	assert.Equal(t, "keep", job.Result["decision"])
	require.NotNil(t, job.CompletedAt)
}

func TestWorkerPoolProcessesJobs(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	exec := &stubExecutor{result: &ExecutionResult{Status: pipelinejob.StatusCompleted}}
	cfg := intTestQueueConfig()
	pool := NewWorkerPool("test-pod", client, cfg, exec)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	for i := 0; i < 3; i++ {
		_, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
		require.NoError(t, err)
	}

	awaitCondition(t, 10*time.Second, 100*time.Millisecond, "jobs processed", func() bool {
		return exec.seen() >= 3
	})

	awaitCondition(t, 5*time.Second, 100*time.Millisecond, "jobs completed", func() bool {
		n, err := client.PipelineJob.Query().
			Where(pipelinejob.StatusEQ(pipelinejob.StatusCompleted)).
			Count(ctx)
		return err == nil && n == 3
	})
}

func TestOrphanRecoveryRequeuesAndTerminates(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	cfg := intTestQueueConfig()
	stale := time.Now().Add(-cfg.OrphanThreshold - time.Minute)

	// Orphan with attempts remaining: should go back to pending.
	retryID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)
	require.NoError(t, client.PipelineJob.UpdateOneID(retryID).
		SetStatus(pipelinejob.StatusInProgress).
		SetPodID("dead-pod").
		SetAttempts(1).
		SetLastHeartbeatAt(stale).
		Exec(ctx))

	// Orphan out of attempts: should be timed_out.
	deadID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)
	require.NoError(t, client.PipelineJob.UpdateOneID(deadID).
		SetStatus(pipelinejob.StatusInProgress).
		SetPodID("dead-pod").
		SetAttempts(3).
		SetLastHeartbeatAt(stale).
		Exec(ctx))

	pool := NewWorkerPool("test-pod", client, cfg, nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	requeued, err := client.PipelineJob.Get(ctx, retryID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)
	require.NotNil(t, requeued.ErrorMessage)
	assert.Contains(t, *requeued.ErrorMessage, "dead-pod")

	terminated, err := client.PipelineJob.Get(ctx, deadID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusTimedOut, terminated.Status)
	require.NotNil(t, terminated.CompletedAt)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	qc := NewClient(client)

	jobID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)
	require.NoError(t, client.PipelineJob.UpdateOneID(jobID).
		SetStatus(pipelinejob.StatusInProgress).
		SetPodID("this-pod").
		SetAttempts(1).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	// A job on another pod must not be touched.
	otherID, err := qc.Enqueue(ctx, pipelinejob.KindMonitor, nil)
	require.NoError(t, err)
	require.NoError(t, client.PipelineJob.UpdateOneID(otherID).
		SetStatus(pipelinejob.StatusInProgress).
		SetPodID("other-pod").
		SetAttempts(1).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, client, "this-pod"))

	recovered, err := client.PipelineJob.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusPending, recovered.Status)

	other, err := client.PipelineJob.Get(ctx, otherID)
	require.NoError(t, err)
	assert.Equal(t, pipelinejob.StatusInProgress, other.Status)
}
