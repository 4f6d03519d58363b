// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
)

// tracePurger removes old pipeline trace rows.
type tracePurger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// contentSweeper removes old content files whose owners release them.
type contentSweeper interface {
	Sweep(cutoff time.Time, removable contentstore.OwnerCheck) (int, error)
}

// jobPruner removes old terminal pipeline jobs.
type jobPruner interface {
	PruneTerminalBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// articlePurger hard-deletes long-deleted article rows and answers content
// ownership checks for the sweep.
type articlePurger interface {
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int, error)
	RemovableContent(ctx context.Context, articleIDs []string) (map[string]bool, error)
}

// Service periodically enforces retention policies:
//   - Purges pipeline traces past their retention window
//   - Sweeps aged content files from disk
//   - Prunes terminal pipeline jobs
//   - Hard-deletes articles soft-deleted long ago
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	traces   tracePurger
	content  contentSweeper
	jobs     jobPruner
	articles articlePurger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, traces tracePurger, content contentSweeper, jobs jobPruner, articles articlePurger) *Service {
	return &Service{
		config:   cfg,
		traces:   traces,
		content:  content,
		jobs:     jobs,
		articles: articles,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"trace_retention_days", s.config.TraceRetentionDays,
		"content_retention_days", s.config.ContentRetentionDays,
		"job_retention_days", s.config.JobRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	now := time.Now()
	s.purgeTraces(ctx, now)
	s.sweepContent(ctx, now)
	s.pruneJobs(ctx, now)
	s.purgeArticles(ctx, now)
}

func (s *Service) purgeTraces(ctx context.Context, now time.Time) {
	cutoff := now.AddDate(0, 0, -s.config.TraceRetentionDays)
	count, err := s.traces.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: trace purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old traces", "count", count)
	}
}

// sweepContent removes aged content files. Age alone is not enough: the
// article owning a file must have released it (deleted, failed, blocked, or
// purged), so an old but still-embedded article keeps its content.
func (s *Service) sweepContent(ctx context.Context, now time.Time) {
	cutoff := now.AddDate(0, 0, -s.config.ContentRetentionDays)
	count, err := s.content.Sweep(cutoff, func(ids []string) (map[string]bool, error) {
		return s.articles.RemovableContent(ctx, ids)
	})
	if err != nil {
		slog.Error("Retention: content sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept old content files", "count", count)
	}
}

func (s *Service) pruneJobs(ctx context.Context, now time.Time) {
	cutoff := now.AddDate(0, 0, -s.config.JobRetentionDays)
	count, err := s.jobs.PruneTerminalBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: job prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned terminal jobs", "count", count)
	}
}

func (s *Service) purgeArticles(ctx context.Context, now time.Time) {
	cutoff := now.AddDate(0, 0, -s.config.ContentRetentionDays)
	count, err := s.articles.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: article purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged deleted articles", "count", count)
	}
}
