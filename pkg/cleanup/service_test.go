package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPurger struct {
	cutoffs []time.Time
	count   int
	err     error
}

func (r *recordingPurger) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	r.cutoffs = append(r.cutoffs, cutoff)
	return r.count, r.err
}

func (r *recordingPurger) PruneTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return r.PurgeOlderThan(ctx, cutoff)
}

func (r *recordingPurger) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return r.PurgeOlderThan(ctx, cutoff)
}

func (r *recordingPurger) RemovableContent(ctx context.Context, ids []string) (map[string]bool, error) {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = id != "live"
	}
	return out, nil
}

type recordingSweeper struct {
	cutoffs []time.Time
	checks  []contentstore.OwnerCheck
	err     error
}

func (r *recordingSweeper) Sweep(cutoff time.Time, removable contentstore.OwnerCheck) (int, error) {
	r.cutoffs = append(r.cutoffs, cutoff)
	r.checks = append(r.checks, removable)
	return 2, r.err
}

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		TraceRetentionDays:   7,
		ContentRetentionDays: 30,
		JobRetentionDays:     14,
		CleanupInterval:      time.Hour,
	}
}

func TestRunAllUsesConfiguredCutoffs(t *testing.T) {
	traces := &recordingPurger{count: 3}
	content := &recordingSweeper{}
	jobs := &recordingPurger{}
	articles := &recordingPurger{}

	svc := NewService(testRetentionConfig(), traces, content, jobs, articles)
	before := time.Now()
	svc.runAll(context.Background())

	require.Len(t, traces.cutoffs, 1)
	require.Len(t, content.cutoffs, 1)
	require.Len(t, jobs.cutoffs, 1)
	require.Len(t, articles.cutoffs, 1)

	assert.WithinDuration(t, before.AddDate(0, 0, -7), traces.cutoffs[0], time.Minute)
	assert.WithinDuration(t, before.AddDate(0, 0, -30), content.cutoffs[0], time.Minute)
	assert.WithinDuration(t, before.AddDate(0, 0, -14), jobs.cutoffs[0], time.Minute)
	assert.WithinDuration(t, before.AddDate(0, 0, -30), articles.cutoffs[0], time.Minute)
}

func TestSweepConsultsArticleOwnership(t *testing.T) {
	traces := &recordingPurger{}
	content := &recordingSweeper{}
	jobs := &recordingPurger{}
	articles := &recordingPurger{}

	svc := NewService(testRetentionConfig(), traces, content, jobs, articles)
	svc.runAll(context.Background())

	// The sweep receives an owner check backed by the article service: live
	// articles hold on to their files, released ones do not.
	require.Len(t, content.checks, 1)
	require.NotNil(t, content.checks[0])

	got, err := content.checks[0]([]string{"live", "gone"})
	require.NoError(t, err)
	assert.False(t, got["live"])
	assert.True(t, got["gone"])
}

func TestRunAllContinuesPastFailures(t *testing.T) {
	traces := &recordingPurger{err: errors.New("db down")}
	content := &recordingSweeper{err: errors.New("disk error")}
	jobs := &recordingPurger{}
	articles := &recordingPurger{}

	svc := NewService(testRetentionConfig(), traces, content, jobs, articles)
	svc.runAll(context.Background())

	// A failing sweep must not stop the later ones.
	assert.Len(t, jobs.cutoffs, 1)
	assert.Len(t, articles.cutoffs, 1)
}

func TestStartStop(t *testing.T) {
	traces := &recordingPurger{}
	content := &recordingSweeper{}
	jobs := &recordingPurger{}
	articles := &recordingPurger{}

	svc := NewService(testRetentionConfig(), traces, content, jobs, articles)
	svc.Start(context.Background())
	svc.Stop()

	// The loop runs once immediately on start.
	assert.GreaterOrEqual(t, len(traces.cutoffs), 1)
}
