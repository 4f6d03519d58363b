package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
	"github.com/finsight/newsflow/pkg/models"
)

// articleUpdater is the slice of the article service the fetcher writes to.
type articleUpdater interface {
	UpdateContentFetched(ctx context.Context, articleID, filePath string, partial bool) error
	UpdateContentStatus(ctx context.Context, articleID string, status article.ContentStatus, errMsg string) error
}

// chainSource resolves the configured provider order.
type chainSource interface {
	ProviderChain(ctx context.Context) []string
}

// jobEnqueuer hands successful articles to the Layer-2 queue.
type jobEnqueuer interface {
	Enqueue(ctx context.Context, kind pipelinejob.Kind, payload map[string]any) (string, error)
}

// traceRecorder persists per-article fetch events.
type traceRecorder interface {
	Record(ctx context.Context, ev models.TraceEvent) error
}

// statsSink receives fetch outcome counters; nil disables tracking.
type statsSink interface {
	TrackPipeline(ctx context.Context, field string, delta int64)
}

// Fetcher runs Layer 1.5: resolve the provider chain per article, refine the
// extracted text, persist the payload, and dispatch Layer-2 jobs in bounded
// chunks.
type Fetcher struct {
	providers map[string]Provider
	chain     chainSource
	refiner   *Refiner
	store     *contentstore.Store
	articles  articleUpdater
	jobs      jobEnqueuer
	traces    traceRecorder
	stats     statsSink
	cfg       *config.PipelineConfig
}

// NewFetcher creates a Layer-1.5 fetcher over the given providers. Providers
// absent from the configured chain are simply never used. refiner and stats
// may be nil; a nil refiner skips the LLM cleaning and salvage passes.
func NewFetcher(
	providers []Provider,
	chain chainSource,
	refiner *Refiner,
	store *contentstore.Store,
	articles articleUpdater,
	jobs jobEnqueuer,
	traces traceRecorder,
	stats statsSink,
	cfg *config.PipelineConfig,
) *Fetcher {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &Fetcher{
		providers: byName,
		chain:     chain,
		refiner:   refiner,
		store:     store,
		articles:  articles,
		jobs:      jobs,
		traces:    traces,
		stats:     stats,
		cfg:       cfg,
	}
}

// fetchOutcome is the per-item result collected for dispatch.
type fetchOutcome struct {
	item     Item
	filePath string
	partial  bool
	ok       bool
}

// BatchFetch processes items in chunks: fetches run concurrently within a
// chunk under a semaphore, then the chunk's successes are enqueued for
// Layer 2 before the next chunk starts, so downstream load stays bounded.
// Failed articles are marked terminally and never enqueued.
func (f *Fetcher) BatchFetch(ctx context.Context, items []Item) error {
	chunkSize := f.cfg.DispatchChunkSize
	if chunkSize <= 0 {
		chunkSize = 10
	}
	concurrency := int64(f.cfg.FetchConcurrency)
	if concurrency <= 0 {
		concurrency = 4
	}

	for start := 0; start < len(items); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+chunkSize, len(items))
		chunk := items[start:end]

		outcomes := make([]fetchOutcome, len(chunk))
		sem := semaphore.NewWeighted(concurrency)
		for i, item := range chunk {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			go func() {
				defer sem.Release(1)
				outcomes[i] = f.fetchOne(ctx, item)
			}()
		}
		if err := sem.Acquire(ctx, concurrency); err != nil {
			return err
		}

		f.dispatch(ctx, outcomes)
	}
	return nil
}

// fetchOne tries the provider chain in order; first success wins. Total
// failure marks the article failed or blocked by error class.
func (f *Fetcher) fetchOne(ctx context.Context, item Item) fetchOutcome {
	start := time.Now()
	chain := f.chain.ProviderChain(ctx)

	var lastErr error
	for _, name := range chain {
		provider, ok := f.providers[name]
		if !ok {
			slog.Warn("Unknown fetch provider in chain", "provider", name)
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, f.cfg.FetchTimeout)
		content, err := provider.Fetch(callCtx, item)
		cancel()
		if err != nil {
			lastErr = err
			slog.Debug("Fetch provider failed",
				"article_id", item.ArticleID, "provider", name, "error", err)
			continue
		}

		words := wordCount(content.Text)
		if words < partialWords {
			salvaged, err := f.salvage(ctx, item, content)
			if err != nil {
				lastErr = err
				continue
			}
			content.Text = salvaged
			words = wordCount(salvaged)
		}

		if f.refiner != nil {
			content.Text = f.refiner.Clean(ctx, item.Title, content.Text)
			words = wordCount(content.Text)
		}

		return f.persist(ctx, item, name, content, words, start)
	}

	if lastErr == nil {
		lastErr = errors.New("no fetch providers configured")
	}
	f.markFailed(ctx, item, lastErr, start)
	return fetchOutcome{item: item}
}

// salvage asks the LLM to pull the article out of the raw page text when
// selector extraction came up short. No refiner or no raw text means the
// attempt stays a plain too-short failure.
func (f *Fetcher) salvage(ctx context.Context, item Item, content *Content) (string, error) {
	if f.refiner == nil || wordCount(content.RawText) < partialWords {
		return "", errors.New("extracted text too short")
	}
	text, err := f.refiner.Salvage(ctx, item.Title, content.RawText)
	if err != nil {
		return "", fmt.Errorf("extracted text too short, salvage failed: %w", err)
	}
	if wordCount(text) < partialWords {
		return "", errors.New("extracted text too short")
	}
	slog.Debug("Salvaged article text from raw page", "article_id", item.ArticleID)
	return text, nil
}

func (f *Fetcher) persist(ctx context.Context, item Item, provider string, content *Content, words int, start time.Time) fetchOutcome {
	partial := words < fullTextWords

	title := item.Title
	if content.Title != "" {
		title = content.Title
	}
	filePath, err := f.store.Save(&contentstore.Document{
		ArticleID: item.ArticleID,
		Symbol:    item.Symbol,
		Market:    item.Market,
		Source:    item.Source,
		URL:       item.URL,
		Title:     title,
		Text:      content.Text,
		Authors:   content.Authors,
		Keywords:  content.Keywords,
		Language:  content.Language,
		Provider:  provider,
		Partial:   partial,
		FetchedAt: time.Now().UTC(),
	})
	if err != nil {
		f.markFailed(ctx, item, err, start)
		return fetchOutcome{item: item}
	}

	if err := f.articles.UpdateContentFetched(ctx, item.ArticleID, filePath, partial); err != nil {
		slog.Error("Failed to mark article fetched",
			"article_id", item.ArticleID, "error", err)
		return fetchOutcome{item: item}
	}

	f.trace(ctx, item, models.TraceStatusSuccess, "", start, map[string]any{
		"provider":   provider,
		"word_count": words,
		"partial":    partial,
	})
	if f.stats != nil {
		f.stats.TrackPipeline(ctx, "fetched", 1)
		if partial {
			f.stats.TrackPipeline(ctx, "fetched_partial", 1)
		}
	}
	return fetchOutcome{item: item, filePath: filePath, partial: partial, ok: true}
}

func (f *Fetcher) markFailed(ctx context.Context, item Item, fetchErr error, start time.Time) {
	status := article.ContentStatusFailed
	if errors.Is(fetchErr, ErrBlocked) {
		status = article.ContentStatusBlocked
	}
	if err := f.articles.UpdateContentStatus(ctx, item.ArticleID, status, fetchErr.Error()); err != nil {
		slog.Error("Failed to record fetch failure",
			"article_id", item.ArticleID, "error", err)
	}

	f.trace(ctx, item, models.TraceStatusError, fetchErr.Error(), start, map[string]any{
		"status": string(status),
	})
	if f.stats != nil {
		f.stats.TrackPipeline(ctx, "fetch_failed", 1)
	}
}

// dispatch enqueues one Layer-2 job per successful article in the chunk.
func (f *Fetcher) dispatch(ctx context.Context, outcomes []fetchOutcome) {
	for _, o := range outcomes {
		if !o.ok {
			continue
		}
		_, err := f.jobs.Enqueue(ctx, pipelinejob.KindArticleAnalysis, map[string]any{
			"article_id":    o.item.ArticleID,
			"file_path":     o.filePath,
			"routing":       o.item.Routing,
			"filter_status": o.item.FilterStatus,
			"partial":       o.partial,
		})
		if err != nil {
			slog.Error("Failed to enqueue analysis job",
				"article_id", o.item.ArticleID, "error", err)
		}
	}
}

func (f *Fetcher) trace(ctx context.Context, item Item, status, errMsg string, start time.Time, metadata map[string]any) {
	ev := models.TraceEvent{
		ArticleID:  item.ArticleID,
		Layer:      models.TraceLayerFetch,
		Node:       "fetch",
		Status:     status,
		DurationMS: time.Since(start).Milliseconds(),
		Metadata:   metadata,
		Error:      errMsg,
		OccurredAt: time.Now().UTC(),
	}
	if err := f.traces.Record(ctx, ev); err != nil {
		slog.Warn("Failed to record fetch trace", "article_id", item.ArticleID, "error", err)
	}
}
