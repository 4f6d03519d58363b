package stats

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) (*Tracker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	tracker := NewTrackerWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { tracker.Close() })
	return tracker, mr
}

func TestTrackFilterBatch(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.TrackFilterBatch(ctx, 3, 5, 12)
	tracker.TrackFilterBatch(ctx, 1, 0, 19)

	snap, err := tracker.FilterSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap[FieldBatches])
	assert.Equal(t, int64(40), snap[FieldArticles])
	assert.Equal(t, int64(4), snap[FieldFullAnalysis])
	assert.Equal(t, int64(5), snap[FieldLightweight])
	assert.Equal(t, int64(31), snap[FieldDiscard])
}

func TestTrackCriticalFastpathAndErrors(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.TrackCriticalFastpath(ctx)
	tracker.TrackCriticalFastpath(ctx)
	tracker.TrackFilterError(ctx)

	snap, err := tracker.FilterSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap[FieldCriticalEvent])
	assert.Equal(t, int64(1), snap[FieldErrors])
}

func TestDailySnapshot(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	day1 := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tracker.now = func() time.Time { return day1 }
	tracker.TrackFilterBatch(ctx, 2, 1, 7)

	tracker.now = func() time.Time { return day2 }
	tracker.TrackFilterBatch(ctx, 4, 0, 6)

	daily, err := tracker.DailySnapshot(ctx, 3)
	require.NoError(t, err)
	require.Len(t, daily, 3)

	assert.Equal(t, "2026-08-24", daily[0].Date)
	assert.Equal(t, int64(4), daily[0].Counters[FieldFullAnalysis])
	assert.Equal(t, "2026-08-23", daily[1].Date)
	assert.Equal(t, int64(2), daily[1].Counters[FieldFullAnalysis])
	assert.Empty(t, daily[2].Counters)
}

func TestDailyBucketsExpire(t *testing.T) {
	tracker, mr := newTestTracker(t)
	ctx := context.Background()

	tracker.now = func() time.Time { return time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) }
	tracker.TrackFilterBatch(ctx, 1, 1, 1)

	key := keyFilterDaily + "2026-08-24"
	require.True(t, mr.Exists(key))
	ttl := mr.TTL(key)
	assert.Greater(t, ttl, 30*24*time.Hour)
}

func TestTrackLayer15(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.TrackLayer15(ctx, FieldKeep)
	tracker.TrackLayer15(ctx, FieldKeep)
	tracker.TrackLayer15(ctx, FieldDelete)
	tracker.TrackLayer15(ctx, FieldFineKeep)

	snap, err := tracker.Layer15Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap[FieldKeep])
	assert.Equal(t, int64(1), snap[FieldDelete])
	assert.Equal(t, int64(1), snap[FieldFineKeep])
	assert.Zero(t, snap[FieldFineDelete])
}

func TestTrackTokens(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.TrackTokens(ctx, "layer1_scoring", 1000, 50, 900)
	tracker.TrackTokens(ctx, "layer1_scoring", 500, 25, 450)
	tracker.TrackTokens(ctx, "embedding", 200, 0, 0)

	snap, err := tracker.TokenSnapshot(ctx)
	require.NoError(t, err)
	require.Contains(t, snap, "layer1_scoring")
	require.Contains(t, snap, "embedding")

	scoring := snap["layer1_scoring"]
	assert.Equal(t, int64(2), scoring["calls"])
	assert.Equal(t, int64(1500), scoring["prompt_tokens"])
	assert.Equal(t, int64(75), scoring["completion_tokens"])
	assert.Equal(t, int64(1350), scoring["cached_tokens"])
}

func TestTrackPipeline(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.TrackPipeline(ctx, "fetched", 10)
	tracker.TrackPipeline(ctx, "fetched", 5)
	tracker.TrackPipeline(ctx, "embedded", 3)

	snap, err := tracker.PipelineSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), snap["fetched"])
	assert.Equal(t, int64(3), snap["embedded"])
}

func TestResetFilterStats(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.TrackFilterBatch(ctx, 1, 2, 3)
	tracker.TrackScore(ctx, 150)
	require.NoError(t, tracker.ResetFilterStats(ctx))

	snap, err := tracker.FilterSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap)

	scores, err := tracker.ScoreSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, scores, "reset clears the score distribution too")

	// Daily buckets survive a reset.
	daily, err := tracker.DailySnapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), daily[0].Counters[FieldFullAnalysis])
}

func TestTrackScoreBuckets(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.TrackScore(ctx, 0)
	tracker.TrackScore(ctx, 49)
	tracker.TrackScore(ctx, 150)
	tracker.TrackScore(ctx, 199)
	tracker.TrackScore(ctx, 260)
	tracker.TrackScore(ctx, -5)

	snap, err := tracker.ScoreSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), snap["0-49"], "negative totals clamp into the lowest bucket")
	assert.Equal(t, int64(2), snap["150-199"])
	assert.Equal(t, int64(1), snap["250-299"])
}

func TestTrackingSurvivesRedisOutage(t *testing.T) {
	tracker, mr := newTestTracker(t)
	ctx := context.Background()

	mr.Close()

	// Must not panic or block.
	tracker.TrackFilterBatch(ctx, 1, 1, 1)
	tracker.TrackTokens(ctx, "news_filter", 10, 1, 0)
}
