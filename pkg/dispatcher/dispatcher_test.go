package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
	"github.com/finsight/newsflow/pkg/models"
	"github.com/finsight/newsflow/pkg/scoring"
	"github.com/finsight/newsflow/pkg/services"
)

type fakeFeeds struct {
	mu        sync.Mutex
	due       []*ent.Feed
	successes []models.PollResult
	errored   []string
}

func (f *fakeFeeds) ListDueFeeds(context.Context, time.Time) ([]*ent.Feed, error) {
	return f.due, nil
}

func (f *fakeFeeds) RecordPollSuccess(_ context.Context, _ string, result models.PollResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.successes = append(f.successes, result)
	return nil
}

func (f *fakeFeeds) RecordPollError(_ context.Context, feedID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errored = append(f.errored, feedID)
	return nil
}

type fakeRegistry struct {
	mu       sync.Mutex
	existing map[string]bool // url → already known
	created  []models.CreateArticleRequest
	fetched  map[string]string // article id → file path
	statuses map[string]article.FilterStatus
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		existing: make(map[string]bool),
		fetched:  make(map[string]string),
		statuses: make(map[string]article.FilterStatus),
	}
}

func (f *fakeRegistry) CreateFromFeedItem(_ context.Context, req models.CreateArticleRequest) (*ent.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existing[req.URL] {
		return nil, services.ErrAlreadyExists
	}
	f.existing[req.URL] = true
	f.created = append(f.created, req)
	return &ent.Article{
		ID: req.ArticleID, Source: req.Source, URL: req.URL,
		Title: req.Title, Summary: req.Summary,
	}, nil
}

func (f *fakeRegistry) UpdateContentFetched(_ context.Context, articleID, filePath string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched[articleID] = filePath
	return nil
}

func (f *fakeRegistry) UpdateFilterStatus(_ context.Context, articleID string, status article.FilterStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[articleID] = status
	return nil
}

type fakeScorer struct {
	routing scoring.Routing
	err     error
	calls   int
}

func (f *fakeScorer) BatchScore(_ context.Context, items []scoring.Item) ([]scoring.ScoreResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	results := make([]scoring.ScoreResult, len(items))
	for i, item := range items {
		results[i] = scoring.ScoreResult{
			ArticleID: item.ArticleID, URL: item.URL,
			Total: 150, Routing: f.routing,
		}
	}
	return results, nil
}

type fakePoller struct {
	outcomes map[string]*pollOutcome
	errs     map[string]error
}

func (f *fakePoller) Poll(_ context.Context, feed *ent.Feed) (*pollOutcome, error) {
	if err := f.errs[feed.ID]; err != nil {
		return nil, err
	}
	return f.outcomes[feed.ID], nil
}

type fakeJobs struct {
	mu       sync.Mutex
	kinds    []pipelinejob.Kind
	payloads []map[string]any
}

func (f *fakeJobs) Enqueue(_ context.Context, kind pipelinejob.Kind, payload map[string]any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kinds = append(f.kinds, kind)
	f.payloads = append(f.payloads, payload)
	return fmt.Sprintf("job-%d", len(f.kinds)), nil
}

type fakeTraces struct {
	mu     sync.Mutex
	events []models.TraceEvent
}

func (f *fakeTraces) Record(_ context.Context, ev models.TraceEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

type fakeScreen struct {
	drop  map[string]bool // url → drop; absent means keep
	err   error
	calls int
}

func (f *fakeScreen) Screen(_ context.Context, items []scoring.Item) ([]bool, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	keep := make([]bool, len(items))
	for i, item := range items {
		keep[i] = !f.drop[item.URL]
	}
	return keep, nil
}

type dispatchFixture struct {
	d        *Dispatcher
	feeds    *fakeFeeds
	registry *fakeRegistry
	scorer   *fakeScorer
	screen   *fakeScreen
	poller   *fakePoller
	jobs     *fakeJobs
	traces   *fakeTraces
}

func newDispatchFixture(t *testing.T, feeds []*ent.Feed, poller *fakePoller) *dispatchFixture {
	t.Helper()
	store, err := contentstore.NewStore(t.TempDir())
	require.NoError(t, err)

	fx := &dispatchFixture{
		feeds:    &fakeFeeds{due: feeds},
		registry: newFakeRegistry(),
		scorer:   &fakeScorer{routing: scoring.RoutingLightweight},
		screen:   &fakeScreen{},
		poller:   poller,
		jobs:     &fakeJobs{},
		traces:   &fakeTraces{},
	}
	fx.d = NewDispatcher(fx.feeds, fx.registry, fx.scorer, fx.screen, fx.poller, store, fx.jobs, fx.traces, config.DefaultPipelineConfig())
	return fx
}

func standardFeed(id string) *ent.Feed {
	return &ent.Feed{ID: id, Route: "https://feeds.example.com/" + id, Name: "example"}
}

func twoItems() []feedItem {
	return []feedItem{
		{Title: "First story", Link: "https://example.com/1", Summary: "s1"},
		{Title: "Second story", Link: "https://example.com/2", Summary: "s2"},
	}
}

func TestRunStandardFeedScoresAndDispatches(t *testing.T) {
	feed := standardFeed("f1")
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {Items: twoItems(), ETag: `"v2"`},
	}})

	require.NoError(t, fx.d.Run(context.Background()))

	// Articles registered and feed progress committed with the new ETag.
	assert.Len(t, fx.registry.created, 2)
	require.Len(t, fx.feeds.successes, 1)
	assert.Equal(t, `"v2"`, fx.feeds.successes[0].ETag)
	assert.Equal(t, 2, fx.feeds.successes[0].NewArticles)

	// Scored lightweight → uncertain, enqueued as one fetch chunk.
	assert.Equal(t, 1, fx.scorer.calls)
	for _, status := range fx.registry.statuses {
		assert.Equal(t, article.FilterStatusUncertain, status)
	}
	require.Len(t, fx.jobs.kinds, 1)
	assert.Equal(t, pipelinejob.KindFetchBatch, fx.jobs.kinds[0])
	items := fx.jobs.payloads[0]["items"].([]map[string]any)
	assert.Len(t, items, 2)
	assert.Equal(t, "lightweight", items[0]["routing"])

	// One Layer-1 trace per article.
	assert.Len(t, fx.traces.events, 2)
}

func TestRunDiscardedArticlesNotDispatched(t *testing.T) {
	feed := standardFeed("f1")
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {Items: twoItems()},
	}})
	fx.scorer.routing = scoring.RoutingDiscard

	require.NoError(t, fx.d.Run(context.Background()))

	for _, status := range fx.registry.statuses {
		assert.Equal(t, article.FilterStatusSkipped, status)
	}
	assert.Empty(t, fx.jobs.kinds, "discarded articles never reach the fetch queue")
}

func TestRunDedupSkipsKnownArticles(t *testing.T) {
	feed := standardFeed("f1")
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {Items: twoItems()},
	}})
	fx.registry.existing["https://example.com/1"] = true

	require.NoError(t, fx.d.Run(context.Background()))

	require.Len(t, fx.registry.created, 1)
	assert.Equal(t, "https://example.com/2", fx.registry.created[0].URL)
	assert.Equal(t, 1, fx.feeds.successes[0].NewArticles)
}

func TestRunFulltextFeedSkipsFetchStage(t *testing.T) {
	feed := standardFeed("f1")
	feed.Fulltext = true
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {Items: []feedItem{{
			Title: "Inline story", Link: "https://example.com/full",
			Summary: "teaser", Content: "Full body delivered by the feed.",
		}}},
	}})

	require.NoError(t, fx.d.Run(context.Background()))

	assert.Zero(t, fx.scorer.calls, "fulltext skips Layer-1 scoring")
	require.Len(t, fx.jobs.kinds, 1)
	assert.Equal(t, pipelinejob.KindArticleAnalysis, fx.jobs.kinds[0])
	assert.NotEmpty(t, fx.jobs.payloads[0]["file_path"])

	// Payload persisted to the content store and the article marked fetched.
	require.Len(t, fx.registry.fetched, 1)
}

func TestRunPollErrorRecordsAndContinues(t *testing.T) {
	bad, good := standardFeed("bad"), standardFeed("good")
	fx := newDispatchFixture(t, []*ent.Feed{bad, good}, &fakePoller{
		errs:     map[string]error{"bad": errors.New("dns failure")},
		outcomes: map[string]*pollOutcome{"good": {Items: twoItems()}},
	})

	require.NoError(t, fx.d.Run(context.Background()))

	assert.Equal(t, []string{"bad"}, fx.feeds.errored)
	assert.Len(t, fx.registry.created, 2, "healthy feed unaffected")
}

func TestRunNotModifiedCommitsProgressOnly(t *testing.T) {
	feed := standardFeed("f1")
	feed.Etag = `"v1"`
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {NotModified: true, ETag: `"v1"`},
	}})

	require.NoError(t, fx.d.Run(context.Background()))

	require.Len(t, fx.feeds.successes, 1)
	assert.True(t, fx.feeds.successes[0].NotModified)
	assert.Empty(t, fx.registry.created)
	assert.Empty(t, fx.jobs.kinds)
}

func TestRunInitialFilterDisabledStillScores(t *testing.T) {
	feed := standardFeed("f1")
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {Items: twoItems()},
	}})
	fx.d.cfg.InitialFilterEnabled = false

	require.NoError(t, fx.d.Run(context.Background()))

	assert.Zero(t, fx.screen.calls, "screen bypassed when disabled")
	assert.Equal(t, 1, fx.scorer.calls, "Layer-1 scoring runs regardless of the screen flag")
	require.Len(t, fx.jobs.kinds, 1)
	items := fx.jobs.payloads[0]["items"].([]map[string]any)
	assert.Len(t, items, 2)
}

func TestRunInitialFilterDropsBeforeScoring(t *testing.T) {
	feed := standardFeed("f1")
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {Items: twoItems()},
	}})
	fx.screen.drop = map[string]bool{"https://example.com/1": true}

	require.NoError(t, fx.d.Run(context.Background()))

	assert.Equal(t, 1, fx.screen.calls)
	assert.Equal(t, 1, fx.scorer.calls, "survivors still hit the heavy scorer")

	// Only the survivor reaches the fetch queue.
	require.Len(t, fx.jobs.kinds, 1)
	items := fx.jobs.payloads[0]["items"].([]map[string]any)
	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com/2", items[0]["url"])

	// The dropped headline is marked skipped and its screen verdict traced.
	var droppedID string
	for _, req := range fx.registry.created {
		if req.URL == "https://example.com/1" {
			droppedID = req.ArticleID
		}
	}
	require.NotEmpty(t, droppedID)
	assert.Equal(t, article.FilterStatusSkipped, fx.registry.statuses[droppedID])

	var screenNodes int
	for _, ev := range fx.traces.events {
		if ev.Node == "initial_filter" {
			screenNodes++
			assert.Equal(t, droppedID, ev.ArticleID)
		}
	}
	assert.Equal(t, 1, screenNodes)
}

func TestRunScreenFailureKeepsAllHeadlines(t *testing.T) {
	feed := standardFeed("f1")
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {Items: twoItems()},
	}})
	fx.screen.err = errors.New("provider down")

	require.NoError(t, fx.d.Run(context.Background()))

	assert.Equal(t, 1, fx.scorer.calls)
	items := fx.jobs.payloads[0]["items"].([]map[string]any)
	assert.Len(t, items, 2, "failed screen keeps everything")
}

func TestRunScoringFailureFallsBackToLightweight(t *testing.T) {
	feed := standardFeed("f1")
	fx := newDispatchFixture(t, []*ent.Feed{feed}, &fakePoller{outcomes: map[string]*pollOutcome{
		"f1": {Items: twoItems()},
	}})
	fx.scorer.err = errors.New("llm down")

	require.NoError(t, fx.d.Run(context.Background()))

	for _, status := range fx.registry.statuses {
		assert.Equal(t, article.FilterStatusUncertain, status)
	}
	require.Len(t, fx.jobs.kinds, 1, "articles still dispatched to fetch")
}

func TestRunRejectsOverlappingRuns(t *testing.T) {
	fx := newDispatchFixture(t, nil, &fakePoller{})
	require.True(t, fx.d.status.begin())
	err := fx.d.Run(context.Background())
	assert.Error(t, err)
}

func TestMonitorStatusLifecycle(t *testing.T) {
	fx := newDispatchFixture(t, nil, &fakePoller{})

	s := fx.d.Status()
	assert.Equal(t, "idle", s.Status)
	assert.Nil(t, s.LastRun)

	require.NoError(t, fx.d.Run(context.Background()))

	s = fx.d.Status()
	assert.Equal(t, "idle", s.Status)
	require.NotNil(t, s.LastRun)
	assert.Equal(t, 0, s.LastRun.Stats["feeds_polled"])
}

func TestPollerConditionalGET(t *testing.T) {
	var gotIfNoneMatch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIfNoneMatch = r.Header.Get("If-None-Match")
		if gotIfNoneMatch == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte(rssPayload))
	}))
	defer srv.Close()

	p := NewPoller(srv.Client())
	feed := &ent.Feed{ID: "f1", Route: srv.URL}

	outcome, err := p.Poll(context.Background(), feed)
	require.NoError(t, err)
	assert.False(t, outcome.NotModified)
	assert.Equal(t, `"v1"`, outcome.ETag)
	assert.Len(t, outcome.Items, 2)

	feed.Etag = outcome.ETag
	outcome, err = p.Poll(context.Background(), feed)
	require.NoError(t, err)
	assert.True(t, outcome.NotModified)
	assert.Equal(t, `"v1"`, outcome.ETag, "validators preserved on 304")
}
