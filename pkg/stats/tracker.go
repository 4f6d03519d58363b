// Package stats tracks filter outcomes, cleaning decisions, pipeline
// progress, and LLM token consumption in Redis. Counters live in hashes with
// a rolling set of daily buckets; a lost counter is tolerable, so every
// tracking call is fail-soft and never blocks the pipeline.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyFilterTotals  = "newsflow:stats:filter:totals"
	keyFilterDaily   = "newsflow:stats:filter:daily:" // + YYYY-MM-DD
	keyScoreDist     = "newsflow:stats:filter:scores"
	keyLayer15       = "newsflow:stats:layer15"
	keyPipeline      = "newsflow:stats:pipeline"
	keyTokensPrefix  = "newsflow:stats:tokens:" // + purpose
	keyTokenPurposes = "newsflow:stats:tokens:purposes"

	dailyBucketTTL = 35 * 24 * time.Hour
	dateLayout     = "2006-01-02"
)

// Filter outcome fields shared by the totals hash and daily buckets. The
// layer1_* names are the wire names dashboards consume; renaming them
// orphans historical counters.
const (
	FieldBatches       = "batches"
	FieldArticles      = "articles"
	FieldFullAnalysis  = "layer1_full_analysis"
	FieldLightweight   = "layer1_lightweight"
	FieldDiscard       = "layer1_discard"
	FieldCriticalEvent = "layer1_critical_event"
	FieldErrors        = "errors"
)

// scoreBucketWidth groups Layer-1 totals into distribution buckets.
const scoreBucketWidth = 50

// Layer-1.5 cleaning decision fields.
const (
	FieldKeep       = "keep"
	FieldDelete     = "delete"
	FieldFineKeep   = "fine_keep"
	FieldFineDelete = "fine_delete"
)

// Tracker is the Redis-backed statistics sink.
type Tracker struct {
	rdb *redis.Client
	now func() time.Time
}

// NewTracker connects to Redis at addr.
func NewTracker(addr string) *Tracker {
	return &Tracker{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		now: time.Now,
	}
}

// NewTrackerWithClient wraps an existing client (used by tests).
func NewTrackerWithClient(rdb *redis.Client) *Tracker {
	return &Tracker{rdb: rdb, now: time.Now}
}

// Ping verifies connectivity at boot.
func (t *Tracker) Ping(ctx context.Context) error {
	return t.rdb.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (t *Tracker) Close() error {
	return t.rdb.Close()
}

// TrackFilterBatch records one scored batch: how many articles it held and
// how the scores routed.
func (t *Tracker) TrackFilterBatch(ctx context.Context, fullAnalysis, lightweight, discard int) {
	fields := map[string]int64{
		FieldBatches:      1,
		FieldArticles:     int64(fullAnalysis + lightweight + discard),
		FieldFullAnalysis: int64(fullAnalysis),
		FieldLightweight:  int64(lightweight),
		FieldDiscard:      int64(discard),
	}
	t.incr(ctx, keyFilterTotals, fields)
	t.incrDaily(ctx, fields)
}

// TrackCriticalFastpath records a critical-keyword promotion.
func (t *Tracker) TrackCriticalFastpath(ctx context.Context) {
	fields := map[string]int64{FieldCriticalEvent: 1}
	t.incr(ctx, keyFilterTotals, fields)
	t.incrDaily(ctx, fields)
}

// TrackScore adds one Layer-1 total to the score distribution.
func (t *Tracker) TrackScore(ctx context.Context, total int) {
	if total < 0 {
		total = 0
	}
	low := (total / scoreBucketWidth) * scoreBucketWidth
	bucket := fmt.Sprintf("%d-%d", low, low+scoreBucketWidth-1)
	t.incr(ctx, keyScoreDist, map[string]int64{bucket: 1})
}

// TrackFilterError records a scoring failure (the batch fell back to
// uncertain defaults).
func (t *Tracker) TrackFilterError(ctx context.Context) {
	fields := map[string]int64{FieldErrors: 1}
	t.incr(ctx, keyFilterTotals, fields)
	t.incrDaily(ctx, fields)
}

// TrackLayer15 records one cleaning decision (keep/delete/fine_keep/fine_delete).
func (t *Tracker) TrackLayer15(ctx context.Context, decision string) {
	t.incr(ctx, keyLayer15, map[string]int64{decision: 1})
}

// TrackPipeline bumps a named pipeline progress counter, e.g. "fetched",
// "partial", "embedded", "analysis_completed".
func (t *Tracker) TrackPipeline(ctx context.Context, field string, delta int64) {
	t.incr(ctx, keyPipeline, map[string]int64{field: delta})
}

// TrackTokens records LLM token consumption for a purpose.
func (t *Tracker) TrackTokens(ctx context.Context, purpose string, prompt, completion, cached int) {
	key := keyTokensPrefix + purpose
	t.incr(ctx, key, map[string]int64{
		"calls":             1,
		"prompt_tokens":     int64(prompt),
		"completion_tokens": int64(completion),
		"cached_tokens":     int64(cached),
	})
	if err := t.rdb.SAdd(ctx, keyTokenPurposes, purpose).Err(); err != nil {
		slog.Warn("Failed to register token purpose", "purpose", purpose, "error", err)
	}
}

// FilterSnapshot returns the all-time filter counters.
func (t *Tracker) FilterSnapshot(ctx context.Context) (map[string]int64, error) {
	return t.snapshot(ctx, keyFilterTotals)
}

// DailySnapshot returns per-day filter counters for the last n days,
// most recent first. Days with no traffic appear with zero counters.
func (t *Tracker) DailySnapshot(ctx context.Context, days int) ([]DailyStats, error) {
	out := make([]DailyStats, 0, days)
	today := t.now().UTC()
	for i := range days {
		day := today.AddDate(0, 0, -i).Format(dateLayout)
		counters, err := t.snapshot(ctx, keyFilterDaily+day)
		if err != nil {
			return nil, err
		}
		out = append(out, DailyStats{Date: day, Counters: counters})
	}
	return out, nil
}

// DailyStats is one day's filter counters.
type DailyStats struct {
	Date     string           `json:"date"`
	Counters map[string]int64 `json:"counters"`
}

// ScoreSnapshot returns the Layer-1 score distribution, keyed by bucket
// range ("100-149" → count).
func (t *Tracker) ScoreSnapshot(ctx context.Context) (map[string]int64, error) {
	return t.snapshot(ctx, keyScoreDist)
}

// Layer15Snapshot returns the cleaning decision counters.
func (t *Tracker) Layer15Snapshot(ctx context.Context) (map[string]int64, error) {
	return t.snapshot(ctx, keyLayer15)
}

// PipelineSnapshot returns the pipeline progress counters.
func (t *Tracker) PipelineSnapshot(ctx context.Context) (map[string]int64, error) {
	return t.snapshot(ctx, keyPipeline)
}

// TokenSnapshot returns per-purpose token counters.
func (t *Tracker) TokenSnapshot(ctx context.Context) (map[string]map[string]int64, error) {
	purposes, err := t.rdb.SMembers(ctx, keyTokenPurposes).Result()
	if err != nil {
		return nil, fmt.Errorf("list token purposes: %w", err)
	}

	out := make(map[string]map[string]int64, len(purposes))
	for _, p := range purposes {
		counters, err := t.snapshot(ctx, keyTokensPrefix+p)
		if err != nil {
			return nil, err
		}
		out[p] = counters
	}
	return out, nil
}

// ResetFilterStats clears all-time filter counters and the score
// distribution. Daily buckets are kept; they expire on their own.
func (t *Tracker) ResetFilterStats(ctx context.Context) error {
	if err := t.rdb.Del(ctx, keyFilterTotals, keyScoreDist).Err(); err != nil {
		return fmt.Errorf("reset filter stats: %w", err)
	}
	return nil
}

func (t *Tracker) incr(ctx context.Context, key string, fields map[string]int64) {
	pipe := t.rdb.Pipeline()
	for field, delta := range fields {
		if delta != 0 {
			pipe.HIncrBy(ctx, key, field, delta)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Failed to record stats", "key", key, "error", err)
	}
}

func (t *Tracker) incrDaily(ctx context.Context, fields map[string]int64) {
	key := keyFilterDaily + t.now().UTC().Format(dateLayout)
	pipe := t.rdb.Pipeline()
	for field, delta := range fields {
		if delta != 0 {
			pipe.HIncrBy(ctx, key, field, delta)
		}
	}
	pipe.Expire(ctx, key, dailyBucketTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Failed to record daily stats", "key", key, "error", err)
	}
}

func (t *Tracker) snapshot(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := t.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("read stats %s: %w", key, err)
	}
	out := make(map[string]int64, len(raw))
	for field, val := range raw {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}
