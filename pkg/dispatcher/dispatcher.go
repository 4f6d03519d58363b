package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
	"github.com/finsight/newsflow/pkg/models"
	"github.com/finsight/newsflow/pkg/scoring"
	"github.com/finsight/newsflow/pkg/services"
)

// feedStore is the slice of the feed service the dispatcher uses.
type feedStore interface {
	ListDueFeeds(ctx context.Context, now time.Time) ([]*ent.Feed, error)
	RecordPollSuccess(ctx context.Context, feedID string, result models.PollResult) error
	RecordPollError(ctx context.Context, feedID string) error
}

// articleRegistry registers headlines and applies Layer-1 outcomes.
type articleRegistry interface {
	CreateFromFeedItem(ctx context.Context, req models.CreateArticleRequest) (*ent.Article, error)
	UpdateContentFetched(ctx context.Context, articleID, filePath string, partial bool) error
	UpdateFilterStatus(ctx context.Context, articleID string, status article.FilterStatus) error
}

// batchScorer is the Layer-1 scoring engine.
type batchScorer interface {
	BatchScore(ctx context.Context, items []scoring.Item) ([]scoring.ScoreResult, error)
}

// headlineScreen is the optional cheap pre-filter over title+summary that
// drops obvious skips before the heavy scorer runs.
type headlineScreen interface {
	Screen(ctx context.Context, items []scoring.Item) ([]bool, error)
}

// feedPoller fetches one feed.
type feedPoller interface {
	Poll(ctx context.Context, feed *ent.Feed) (*pollOutcome, error)
}

// jobEnqueuer hands work to the pipeline queue.
type jobEnqueuer interface {
	Enqueue(ctx context.Context, kind pipelinejob.Kind, payload map[string]any) (string, error)
}

// traceRecorder persists dispatch and Layer-1 events.
type traceRecorder interface {
	Record(ctx context.Context, ev models.TraceEvent) error
}

// Dispatcher polls due feeds, registers new articles, scores them, and
// dispatches the keepers into the fetch queue.
type Dispatcher struct {
	feeds     feedStore
	articles  articleRegistry
	scorer    batchScorer
	prefilter headlineScreen
	poller    feedPoller
	store     *contentstore.Store
	jobs      jobEnqueuer
	traces    traceRecorder
	cfg       *config.PipelineConfig

	status *statusTracker
	now    func() time.Time
}

// NewDispatcher wires the ingest dispatcher.
func NewDispatcher(
	feeds feedStore,
	articles articleRegistry,
	scorer batchScorer,
	prefilter headlineScreen,
	poller feedPoller,
	store *contentstore.Store,
	jobs jobEnqueuer,
	traces traceRecorder,
	cfg *config.PipelineConfig,
) *Dispatcher {
	return &Dispatcher{
		feeds:     feeds,
		articles:  articles,
		scorer:    scorer,
		prefilter: prefilter,
		poller:    poller,
		store:     store,
		jobs:      jobs,
		traces:    traces,
		cfg:       cfg,
		status:    newStatusTracker(),
		now:       time.Now,
	}
}

// Status returns the monitor snapshot for the admin API.
func (d *Dispatcher) Status() MonitorStatus {
	return d.status.snapshot()
}

// Start runs the monitor loop until the context is cancelled. Each tick runs
// one full dispatch pass.
func (d *Dispatcher) Start(ctx context.Context) {
	interval := d.cfg.MonitorInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("Ingest dispatcher started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Ingest dispatcher stopped")
			return
		case <-ticker.C:
			if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("Dispatch run failed", "error", err)
			}
		}
		d.status.setNextRun(d.now().Add(interval))
	}
}

// Run executes one dispatch pass over all due feeds. Concurrent runs are
// rejected so a manual trigger cannot overlap the ticker.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.status.begin() {
		return errors.New("dispatch run already in progress")
	}
	stats := map[string]int{}
	defer func() { d.status.finish(d.now(), stats) }()

	now := d.now()
	feeds, err := d.feeds.ListDueFeeds(ctx, now)
	if err != nil {
		return fmt.Errorf("list due feeds: %w", err)
	}
	d.status.setProgress("polling", fmt.Sprintf("%d feeds due", len(feeds)), 0)
	if len(feeds) == 0 {
		return nil
	}

	concurrency := int64(d.cfg.FeedConcurrency)
	if concurrency <= 0 {
		concurrency = 3
	}
	sem := semaphore.NewWeighted(concurrency)

	results := make([]feedResult, len(feeds))
	for i, feed := range feeds {
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		go func() {
			defer sem.Release(1)
			results[i] = d.pollFeed(ctx, feed)
		}()
	}
	if err := sem.Acquire(ctx, concurrency); err != nil {
		return err
	}

	for _, r := range results {
		stats["feeds_polled"]++
		if r.err != nil {
			stats["feeds_failed"]++
			continue
		}
		stats["articles_new"] += r.created
		stats["articles_dispatched"] += r.dispatched
	}
	d.status.setProgress("done", fmt.Sprintf("%d feeds polled", len(feeds)), 100)
	return nil
}

type feedResult struct {
	created    int
	dispatched int
	err        error
}

// newArticle pairs a registered row with its source item.
type newArticle struct {
	row  *ent.Article
	item feedItem
}

// pollFeed handles one feed end to end. Feed progress is committed as soon
// as headlines are registered, before any LLM work, so a filtering stall
// never makes the feed look dead.
func (d *Dispatcher) pollFeed(ctx context.Context, feed *ent.Feed) feedResult {
	start := d.now()

	outcome, err := d.poller.Poll(ctx, feed)
	if err != nil {
		slog.Warn("Feed poll failed", "feed_id", feed.ID, "route", feed.Route, "error", err)
		if recErr := d.feeds.RecordPollError(ctx, feed.ID); recErr != nil {
			slog.Error("Failed to record poll error", "feed_id", feed.ID, "error", recErr)
		}
		return feedResult{err: err}
	}

	if outcome.NotModified {
		err := d.feeds.RecordPollSuccess(ctx, feed.ID, models.PollResult{
			ETag: outcome.ETag, LastModified: outcome.LastModified, NotModified: true,
		})
		return feedResult{err: err}
	}

	created := d.registerItems(ctx, feed, outcome.Items)

	// Commit feed progress before the expensive filter calls.
	if err := d.feeds.RecordPollSuccess(ctx, feed.ID, models.PollResult{
		ETag:         outcome.ETag,
		LastModified: outcome.LastModified,
		NewArticles:  len(created),
	}); err != nil {
		slog.Error("Failed to record poll success", "feed_id", feed.ID, "error", err)
	}

	slog.Info("Feed polled",
		"feed_id", feed.ID,
		"seen", len(outcome.Items),
		"created", len(created),
		"duration_ms", time.Since(start).Milliseconds())

	var dispatched int
	if feed.Fulltext {
		dispatched = d.dispatchFulltext(ctx, feed, created)
	} else {
		dispatched = d.scoreAndDispatch(ctx, feed, created)
	}
	return feedResult{created: len(created), dispatched: dispatched}
}

// registerItems creates pending articles, skipping known (source, url) pairs.
func (d *Dispatcher) registerItems(ctx context.Context, feed *ent.Feed, items []feedItem) []newArticle {
	source := feed.Name
	if source == "" {
		source = feed.ID
	}

	created := make([]newArticle, 0, len(items))
	for _, item := range items {
		row, err := d.articles.CreateFromFeedItem(ctx, models.CreateArticleRequest{
			ArticleID:   uuid.New().String(),
			Source:      source,
			URL:         item.Link,
			Title:       item.Title,
			Summary:     item.Summary,
			PublishedAt: item.Published,
		})
		if err != nil {
			if errors.Is(err, services.ErrAlreadyExists) {
				continue
			}
			slog.Error("Failed to register article", "feed_id", feed.ID, "url", item.Link, "error", err)
			continue
		}
		created = append(created, newArticle{row: row, item: item})
	}
	return created
}

// dispatchFulltext persists inline payloads and hands the articles straight
// to Layer 2; fulltext feeds skip both scoring and the fetch stage.
func (d *Dispatcher) dispatchFulltext(ctx context.Context, feed *ent.Feed, created []newArticle) int {
	var dispatched int
	for _, na := range created {
		text := na.item.Content
		if text == "" {
			text = na.item.Summary
		}
		filePath, err := d.store.Save(&contentstore.Document{
			ArticleID: na.row.ID,
			Symbol:    na.row.Symbol,
			Market:    na.row.Market,
			Source:    na.row.Source,
			URL:       na.row.URL,
			Title:     na.row.Title,
			Text:      text,
			Provider:  "feed",
			FetchedAt: d.now().UTC(),
		})
		if err != nil {
			slog.Error("Failed to persist fulltext payload", "article_id", na.row.ID, "error", err)
			continue
		}
		if err := d.articles.UpdateContentFetched(ctx, na.row.ID, filePath, false); err != nil {
			slog.Error("Failed to mark fulltext article fetched", "article_id", na.row.ID, "error", err)
			continue
		}
		if _, err := d.jobs.Enqueue(ctx, pipelinejob.KindArticleAnalysis, map[string]any{
			"article_id": na.row.ID,
			"file_path":  filePath,
			"routing":    string(scoring.RoutingFullAnalysis),
		}); err != nil {
			slog.Error("Failed to enqueue fulltext analysis", "article_id", na.row.ID, "error", err)
			continue
		}
		dispatched++
	}
	return dispatched
}

// scoreAndDispatch runs the optional initial screen and then Layer-1 scoring
// over the new headlines, and enqueues the keepers into fetch chunks. The
// heavy scorer always runs; the screen only narrows its input.
func (d *Dispatcher) scoreAndDispatch(ctx context.Context, feed *ent.Feed, created []newArticle) int {
	if len(created) == 0 {
		return 0
	}
	d.status.setProgress("scoring", fmt.Sprintf("feed %s: %d articles", feed.ID, len(created)), 50)

	items := make([]scoring.Item, len(created))
	for i, na := range created {
		items[i] = scoring.Item{
			ArticleID: na.row.ID,
			URL:       na.row.URL,
			Source:    na.row.Source,
			Title:     na.row.Title,
			Summary:   na.row.Summary,
			Symbol:    na.row.Symbol,
			Market:    na.row.Market,
		}
	}

	// Cheap title+summary screen drops obvious skips before the three-agent
	// scorer spends tokens on them. A failed screen keeps everything.
	survivors := created
	survivorItems := items
	if d.cfg.InitialFilterEnabled && d.prefilter != nil {
		keep, err := d.prefilter.Screen(ctx, items)
		if err != nil {
			slog.Warn("Initial filter failed, keeping all headlines",
				"feed_id", feed.ID, "error", err)
		} else {
			survivors = make([]newArticle, 0, len(created))
			survivorItems = make([]scoring.Item, 0, len(items))
			for i, na := range created {
				if keep[i] {
					survivors = append(survivors, na)
					survivorItems = append(survivorItems, items[i])
					continue
				}
				if err := d.articles.UpdateFilterStatus(ctx, na.row.ID, article.FilterStatusSkipped); err != nil {
					slog.Error("Failed to mark screened article skipped",
						"article_id", na.row.ID, "error", err)
				}
				d.traceScreenDrop(ctx, na.row.ID)
			}
		}
	}
	if len(survivors) == 0 {
		return 0
	}

	results, err := d.scorer.BatchScore(ctx, survivorItems)
	if err != nil || results == nil {
		if err != nil {
			slog.Error("Layer-1 scoring failed, routing feed batch lightweight",
				"feed_id", feed.ID, "error", err)
		}
		results = make([]scoring.ScoreResult, len(survivors))
		for i, na := range survivors {
			results[i] = scoring.ScoreResult{
				ArticleID: na.row.ID,
				URL:       na.row.URL,
				Routing:   scoring.RoutingLightweight,
			}
		}
	}

	var fetchItems []map[string]any
	for i, res := range results {
		na := survivors[i]
		status := filterStatusFor(res.Routing)
		if err := d.articles.UpdateFilterStatus(ctx, na.row.ID, status); err != nil {
			slog.Error("Failed to apply filter status", "article_id", na.row.ID, "error", err)
		}
		d.traceScore(ctx, na.row.ID, res)

		if res.Routing == scoring.RoutingDiscard {
			continue
		}
		fetchItems = append(fetchItems, map[string]any{
			"article_id":    na.row.ID,
			"url":           na.row.URL,
			"source":        na.row.Source,
			"title":         na.row.Title,
			"summary":       na.row.Summary,
			"symbol":        na.row.Symbol,
			"market":        na.row.Market,
			"routing":       string(res.Routing),
			"filter_status": string(status),
		})
	}

	chunkSize := d.cfg.DispatchChunkSize
	if chunkSize <= 0 {
		chunkSize = 10
	}
	var dispatched int
	for start := 0; start < len(fetchItems); start += chunkSize {
		end := min(start+chunkSize, len(fetchItems))
		if _, err := d.jobs.Enqueue(ctx, pipelinejob.KindFetchBatch, map[string]any{
			"items": fetchItems[start:end],
		}); err != nil {
			slog.Error("Failed to enqueue fetch chunk", "feed_id", feed.ID, "error", err)
			continue
		}
		dispatched += end - start
	}
	return dispatched
}

// filterStatusFor maps Layer-1 routing to the stored filter status.
func filterStatusFor(routing scoring.Routing) article.FilterStatus {
	switch routing {
	case scoring.RoutingFullAnalysis:
		return article.FilterStatusUseful
	case scoring.RoutingDiscard:
		return article.FilterStatusSkipped
	default:
		return article.FilterStatusUncertain
	}
}

// traceScreenDrop records a headline the initial screen rejected.
func (d *Dispatcher) traceScreenDrop(ctx context.Context, articleID string) {
	ev := models.TraceEvent{
		ArticleID:  articleID,
		Layer:      models.TraceLayerLayer1,
		Node:       "initial_filter",
		Status:     models.TraceStatusSuccess,
		Metadata:   map[string]any{"keep": false},
		OccurredAt: d.now().UTC(),
	}
	if err := d.traces.Record(ctx, ev); err != nil {
		slog.Warn("Failed to record screen trace", "article_id", articleID, "error", err)
	}
}

func (d *Dispatcher) traceScore(ctx context.Context, articleID string, res scoring.ScoreResult) {
	ev := models.TraceEvent{
		ArticleID: articleID,
		Layer:     models.TraceLayerLayer1,
		Node:      "score",
		Status:    models.TraceStatusSuccess,
		Metadata: map[string]any{
			"total":       res.Total,
			"routing":     string(res.Routing),
			"is_critical": res.IsCritical,
		},
		OccurredAt: d.now().UTC(),
	}
	if err := d.traces.Record(ctx, ev); err != nil {
		slog.Warn("Failed to record score trace", "article_id", articleID, "error", err)
	}
}
