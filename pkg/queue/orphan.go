package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinejob"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress jobs with stale heartbeats.
// Jobs with attempts remaining are returned to the queue; exhausted jobs
// are marked timed_out.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.PipelineJob.Query().
		Where(
			pipelinejob.StatusEQ(pipelinejob.StatusInProgress),
			pipelinejob.LastHeartbeatAtNotNil(),
			pipelinejob.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		if err := recoverOrphanedJob(ctx, job); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", job.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob requeues or terminates a single orphaned job.
func recoverOrphanedJob(ctx context.Context, job *ent.PipelineJob) error {
	lastHeartbeat := "unknown"
	if job.LastHeartbeatAt != nil {
		lastHeartbeat = job.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if job.PodID != nil {
		podID = *job.PodID
	}
	reason := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	if job.Attempts < job.MaxAttempts {
		err := job.Update().
			SetStatus(pipelinejob.StatusPending).
			SetRunAt(time.Now()).
			SetErrorMessage(reason).
			ClearPodID().
			ClearStartedAt().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to requeue orphaned job: %w", err)
		}
		slog.Warn("Orphaned job returned to queue",
			"job_id", job.ID,
			"old_pod_id", podID,
			"attempt", job.Attempts,
			"last_heartbeat", lastHeartbeat)
		return nil
	}

	err := job.Update().
		SetStatus(pipelinejob.StatusTimedOut).
		SetCompletedAt(time.Now()).
		SetErrorMessage(reason).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job as timed_out: %w", err)
	}
	slog.Warn("Orphaned job marked as timed_out",
		"job_id", job.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of jobs owned by this pod
// that were in-progress when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.PipelineJob.Query().
		Where(
			pipelinejob.StatusEQ(pipelinejob.StatusInProgress),
			pipelinejob.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, job := range orphans {
		if err := recoverOrphanedJob(ctx, job); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", job.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", job.ID)
	}

	return nil
}
