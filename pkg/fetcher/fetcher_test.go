package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
	"github.com/finsight/newsflow/pkg/models"
)

// scriptedProvider returns canned content or an error per article id.
type scriptedProvider struct {
	name    string
	content map[string]*Content
	errs    map[string]error
	calls   []string
	mu      sync.Mutex
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Fetch(_ context.Context, item Item) (*Content, error) {
	p.mu.Lock()
	p.calls = append(p.calls, item.ArticleID)
	p.mu.Unlock()
	if err, ok := p.errs[item.ArticleID]; ok {
		return nil, err
	}
	if c, ok := p.content[item.ArticleID]; ok {
		return c, nil
	}
	return nil, errors.New("not scripted")
}

type fakeArticles struct {
	mu       sync.Mutex
	fetched  map[string]bool // article id → partial
	statuses map[string]article.ContentStatus
	errors   map[string]string
}

func newFakeArticles() *fakeArticles {
	return &fakeArticles{
		fetched:  make(map[string]bool),
		statuses: make(map[string]article.ContentStatus),
		errors:   make(map[string]string),
	}
}

func (f *fakeArticles) UpdateContentFetched(_ context.Context, articleID, _ string, partial bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched[articleID] = partial
	return nil
}

func (f *fakeArticles) UpdateContentStatus(_ context.Context, articleID string, status article.ContentStatus, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[articleID] = status
	f.errors[articleID] = errMsg
	return nil
}

type fakeChain struct{ chain []string }

func (f fakeChain) ProviderChain(context.Context) []string { return f.chain }

type fakeJobs struct {
	mu       sync.Mutex
	payloads []map[string]any
	kinds    []pipelinejob.Kind
}

func (f *fakeJobs) Enqueue(_ context.Context, kind pipelinejob.Kind, payload map[string]any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kinds = append(f.kinds, kind)
	f.payloads = append(f.payloads, payload)
	return fmt.Sprintf("job-%d", len(f.payloads)), nil
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

func longText(words int) string {
	return strings.TrimSpace(strings.Repeat("market news word ", words/3+1))
}

type fetchFixture struct {
	fetcher  *Fetcher
	articles *fakeArticles
	jobs     *fakeJobs
	traces   *fakeTraces
	store    *contentstore.Store
}

func newFixture(t *testing.T, chain []string, providers ...Provider) *fetchFixture {
	return newFixtureWithRefiner(t, chain, nil, providers...)
}

func newFixtureWithRefiner(t *testing.T, chain []string, refiner *Refiner, providers ...Provider) *fetchFixture {
	t.Helper()
	store, err := contentstore.NewStore(t.TempDir())
	require.NoError(t, err)

	articles := newFakeArticles()
	jobs := &fakeJobs{}
	traces := &fakeTraces{}
	f := NewFetcher(providers, fakeChain{chain}, refiner, store, articles, jobs, traces, nil, config.DefaultPipelineConfig())
	return &fetchFixture{fetcher: f, articles: articles, jobs: jobs, traces: traces, store: store}
}

func TestBatchFetchSuccessEnqueuesAnalysis(t *testing.T) {
	provider := &scriptedProvider{name: "scraper", content: map[string]*Content{
		"a1": {Title: "Full title", Text: longText(300)},
	}}
	fx := newFixture(t, []string{"scraper"}, provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{
		ArticleID: "a1", URL: "https://example.com/a1", Source: "rss",
		Routing: "full_analysis", FilterStatus: "useful",
	}})
	require.NoError(t, err)

	partial, ok := fx.articles.fetched["a1"]
	require.True(t, ok)
	assert.False(t, partial)

	require.Len(t, fx.jobs.payloads, 1)
	assert.Equal(t, pipelinejob.KindArticleAnalysis, fx.jobs.kinds[0])
	payload := fx.jobs.payloads[0]
	assert.Equal(t, "a1", payload["article_id"])
	assert.Equal(t, "full_analysis", payload["routing"])
	assert.NotEmpty(t, payload["file_path"])

	// Saved document is readable back through the store.
	doc, err := fx.store.Read(payload["file_path"].(string))
	require.NoError(t, err)
	assert.Equal(t, "Full title", doc.Title)
	assert.Equal(t, "scraper", doc.Provider)

	require.Len(t, fx.traces.events, 1)
	ev := fx.traces.events[0]
	assert.Equal(t, models.TraceLayerFetch, ev.Layer)
	assert.Equal(t, models.TraceStatusSuccess, ev.Status)
	assert.Equal(t, "scraper", ev.Metadata["provider"])
	assert.Equal(t, false, ev.Metadata["partial"])
}

func TestBatchFetchProviderFallback(t *testing.T) {
	scraper := &scriptedProvider{name: "scraper", errs: map[string]error{"a1": errors.New("boom")}}
	vendor := &scriptedProvider{name: "vendor", content: map[string]*Content{
		"a1": {Text: longText(200)},
	}}
	fx := newFixture(t, []string{"scraper", "vendor"}, scraper, vendor)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"a1"}, scraper.calls)
	assert.Equal(t, []string{"a1"}, vendor.calls)
	require.Len(t, fx.jobs.payloads, 1)
	assert.Equal(t, "vendor", fx.traces.events[0].Metadata["provider"])
}

func TestBatchFetchShortTextMarkedPartial(t *testing.T) {
	provider := &scriptedProvider{name: "scraper", content: map[string]*Content{
		"a1": {Text: longText(60)}, // between partial and full boundaries
	}}
	fx := newFixture(t, []string{"scraper"}, provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)

	partial, ok := fx.articles.fetched["a1"]
	require.True(t, ok)
	assert.True(t, partial)

	require.Len(t, fx.jobs.payloads, 1, "partial results still reach Layer 2")
	assert.Equal(t, true, fx.jobs.payloads[0]["partial"])
}

func TestBatchFetchTotalFailureMarksFailed(t *testing.T) {
	provider := &scriptedProvider{name: "scraper", errs: map[string]error{"a1": errors.New("timeout")}}
	fx := newFixture(t, []string{"scraper"}, provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)

	assert.Equal(t, article.ContentStatusFailed, fx.articles.statuses["a1"])
	assert.Empty(t, fx.jobs.payloads, "failed articles are not enqueued")

	require.Len(t, fx.traces.events, 1)
	assert.Equal(t, models.TraceStatusError, fx.traces.events[0].Status)
}

func TestBatchFetchBlockedClassification(t *testing.T) {
	provider := &scriptedProvider{name: "scraper", errs: map[string]error{
		"a1": fmt.Errorf("%w: status 403", ErrBlocked),
	}}
	fx := newFixture(t, []string{"scraper"}, provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)

	assert.Equal(t, article.ContentStatusBlocked, fx.articles.statuses["a1"])
	assert.Empty(t, fx.jobs.payloads)
}

func TestBatchFetchTooShortTextFails(t *testing.T) {
	provider := &scriptedProvider{name: "scraper", content: map[string]*Content{
		"a1": {Text: "paywall teaser"},
	}}
	fx := newFixture(t, []string{"scraper"}, provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)

	assert.Equal(t, article.ContentStatusFailed, fx.articles.statuses["a1"])
	assert.Contains(t, fx.articles.errors["a1"], "too short")
}

func TestBatchFetchUnknownProviderSkipped(t *testing.T) {
	provider := &scriptedProvider{name: "scraper", content: map[string]*Content{
		"a1": {Text: longText(200)},
	}}
	fx := newFixture(t, []string{"missing", "scraper"}, provider)

	err := fx.fetcher.BatchFetch(context.Background(), []Item{{ArticleID: "a1", URL: "https://example.com/a1"}})
	require.NoError(t, err)
	require.Len(t, fx.jobs.payloads, 1)
}

func TestBatchFetchProcessesAllChunks(t *testing.T) {
	content := make(map[string]*Content)
	items := make([]Item, 23)
	for i := range items {
		id := fmt.Sprintf("a%d", i)
		items[i] = Item{ArticleID: id, URL: "https://example.com/" + id}
		content[id] = &Content{Text: longText(200)}
	}
	provider := &scriptedProvider{name: "scraper", content: content}
	fx := newFixture(t, []string{"scraper"}, provider)

	err := fx.fetcher.BatchFetch(context.Background(), items)
	require.NoError(t, err)
	assert.Len(t, fx.jobs.payloads, 23)
	assert.Len(t, fx.articles.fetched, 23)
}
