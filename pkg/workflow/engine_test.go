package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/pkg/analysis"
	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
	"github.com/finsight/newsflow/pkg/llm"
	"github.com/finsight/newsflow/pkg/models"
)

type fakeAnalyzer struct {
	result *analysis.Result
	calls  int
}

func (f *fakeAnalyzer) FullAnalysis(_ context.Context, _ analysis.Input) *analysis.Result {
	f.calls = f.calls + 1
	return f.result
}

type fakeChat struct {
	content string
	err     error
	calls   int
}

func (f *fakeChat) ChatForPurpose(_ context.Context, _ config.Purpose, _ *llm.Request) (*llm.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.content, Usage: llm.Usage{PromptTokens: 100, CompletionTokens: 5}}, nil
}

type fakeIndexer struct {
	err     error
	calls   int
	content string
}

func (f *fakeIndexer) IndexContent(_ context.Context, _, _, content, _ string) (int, error) {
	f.calls++
	f.content = content
	if f.err != nil {
		return 0, f.err
	}
	return 3, nil
}

type fakeArticles struct {
	analysis      *models.AnalysisResult
	filterStatus  article.FilterStatus
	contentStatus article.ContentStatus
	errMsg        string
	deleted       bool
	saveErr       error
}

func (f *fakeArticles) SaveAnalysis(_ context.Context, _ string, result *models.AnalysisResult) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.analysis = result
	return nil
}

func (f *fakeArticles) UpdateFilterStatus(_ context.Context, _ string, status article.FilterStatus) error {
	f.filterStatus = status
	return nil
}

func (f *fakeArticles) UpdateContentStatus(_ context.Context, _ string, status article.ContentStatus, errMsg string) error {
	f.contentStatus = status
	f.errMsg = errMsg
	return nil
}

func (f *fakeArticles) MarkDeleted(_ context.Context, _ string) error {
	f.deleted = true
	return nil
}

type fakeTraces struct {
	batches [][]models.TraceEvent
}

func (f *fakeTraces) RecordMany(_ context.Context, events []models.TraceEvent) error {
	f.batches = append(f.batches, events)
	return nil
}

type fixture struct {
	engine   *Engine
	store    *contentstore.Store
	analyzer *fakeAnalyzer
	chat     *fakeChat
	indexer  *fakeIndexer
	articles *fakeArticles
	traces   *fakeTraces
}

func keepResult() *analysis.Result {
	return &analysis.Result{
		Decision: "keep",
		Analysis: models.AnalysisResult{
			SentimentTag:      "bullish",
			InvestmentSummary: "Strong quarter",
		},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := contentstore.NewStore(t.TempDir())
	require.NoError(t, err)

	fx := &fixture{
		store:    store,
		analyzer: &fakeAnalyzer{result: keepResult()},
		chat:     &fakeChat{content: `{"keep": true}`},
		indexer:  &fakeIndexer{},
		articles: &fakeArticles{},
		traces:   &fakeTraces{},
	}
	fx.engine = NewEngine(store, fx.analyzer, fx.chat, fx.indexer, fx.articles, fx.traces, nil, config.DefaultPipelineConfig())
	return fx
}

func saveDoc(t *testing.T, store *contentstore.Store, articleID, text string) string {
	t.Helper()
	path, err := store.Save(&contentstore.Document{
		ArticleID: articleID,
		Symbol:    "AAPL",
		Title:     "Apple beats expectations",
		Text:      text,
		Provider:  "scraper",
		FetchedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return path
}

func nodeNames(events []models.TraceEvent) []string {
	names := make([]string, len(events))
	for i, ev := range events {
		names[i] = ev.Node
	}
	return names
}

func TestRunFullAnalysisPath(t *testing.T) {
	fx := newFixture(t)
	path := saveDoc(t, fx.store, "a1", "Apple reported strong results driven by services revenue.")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "full_analysis",
	})
	require.NoError(t, err)

	assert.Equal(t, modeTwoPhase, s.FilterMode)
	assert.Equal(t, 1, fx.analyzer.calls)
	assert.Zero(t, fx.chat.calls, "deep path never touches the single filter")

	require.NotNil(t, fx.articles.analysis)
	assert.Equal(t, "bullish", fx.articles.analysis.SentimentTag)
	assert.Equal(t, article.FilterStatusFineKeep, fx.articles.filterStatus)
	assert.Equal(t, article.ContentStatusEmbedded, fx.articles.contentStatus)

	assert.Equal(t, 1, fx.indexer.calls)
	assert.True(t, strings.HasPrefix(fx.indexer.content, "Apple beats expectations\n\n"))

	require.Len(t, fx.traces.batches, 1, "one trace batch per run")
	assert.Equal(t, []string{"read_file", "deep_filter", "embed", "update_db"}, nodeNames(fx.traces.batches[0]))
}

func TestRunLegacyKeepPath(t *testing.T) {
	fx := newFixture(t)
	path := saveDoc(t, fx.store, "a1", "Minor update about a mid-cap company.")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "lightweight",
	})
	require.NoError(t, err)

	assert.Equal(t, modeLegacy, s.FilterMode)
	assert.Equal(t, 1, fx.chat.calls)
	assert.Zero(t, fx.analyzer.calls)
	assert.Nil(t, fx.articles.analysis, "legacy path produces no analysis")
	assert.Equal(t, article.FilterStatusKeep, fx.articles.filterStatus)
	assert.Equal(t, article.ContentStatusEmbedded, fx.articles.contentStatus)
	assert.Equal(t, []string{"read_file", "single_filter", "embed", "update_db"}, nodeNames(fx.traces.batches[0]))
}

func TestRunLegacyDeletePath(t *testing.T) {
	fx := newFixture(t)
	fx.chat.content = `{"keep": false}`
	path := saveDoc(t, fx.store, "a1", "Sponsored content about a trading course.")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "lightweight",
	})
	require.NoError(t, err)

	assert.Equal(t, DecisionDelete, s.Decision)
	assert.True(t, fx.articles.deleted)
	assert.Equal(t, article.FilterStatusDelete, fx.articles.filterStatus)
	assert.Zero(t, fx.indexer.calls, "deleted articles are never embedded")

	// Content file removed from disk.
	_, err = fx.store.Read(path)
	assert.ErrorIs(t, err, contentstore.ErrNotFound)

	assert.Equal(t, []string{"read_file", "single_filter", "mark_deleted", "update_db"}, nodeNames(fx.traces.batches[0]))
}

func TestRunDeepFilterDeletePath(t *testing.T) {
	fx := newFixture(t)
	fx.analyzer.result = &analysis.Result{
		Decision: "delete",
		Analysis: models.AnalysisResult{SentimentTag: "neutral"},
	}
	path := saveDoc(t, fx.store, "a1", "Recycled press release with no new information.")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "full_analysis",
	})
	require.NoError(t, err)

	assert.Equal(t, modeTwoPhase, s.FilterMode)
	assert.Equal(t, DecisionDelete, s.Decision)
	assert.True(t, fx.articles.deleted)
	assert.Equal(t, article.FilterStatusFineDelete, fx.articles.filterStatus)
	assert.Zero(t, fx.indexer.calls, "deleted articles are never embedded")

	// Content file removed from disk.
	_, err = fx.store.Read(path)
	assert.ErrorIs(t, err, contentstore.ErrNotFound)

	assert.Equal(t, []string{"read_file", "deep_filter", "mark_deleted", "update_db"}, nodeNames(fx.traces.batches[0]))
}

func TestRunReadFailureGoesStraightToUpdateDB(t *testing.T) {
	fx := newFixture(t)

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: "missing/file.json", Routing: "full_analysis",
	})
	require.NoError(t, err)

	assert.True(t, s.Failed)
	assert.Equal(t, article.ContentStatusFailed, fx.articles.contentStatus)
	assert.NotEmpty(t, fx.articles.errMsg)
	assert.Empty(t, fx.articles.filterStatus, "no filter status without a filter run")
	assert.Zero(t, fx.analyzer.calls)
	assert.Zero(t, fx.indexer.calls)
	assert.Equal(t, []string{"read_file", "update_db"}, nodeNames(fx.traces.batches[0]))
}

func TestRunEmptyTextIsTerminalFailure(t *testing.T) {
	fx := newFixture(t)
	path := saveDoc(t, fx.store, "a1", "   ")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "lightweight",
	})
	require.NoError(t, err)
	assert.True(t, s.Failed)
	assert.Equal(t, article.ContentStatusFailed, fx.articles.contentStatus)
}

func TestRunSingleFilterFailureKeepsArticle(t *testing.T) {
	fx := newFixture(t)
	fx.chat.err = errors.New("provider down")
	path := saveDoc(t, fx.store, "a1", "Some article body text.")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "lightweight",
	})
	require.NoError(t, err)

	assert.Equal(t, DecisionKeep, s.Decision)
	assert.Equal(t, article.FilterStatusKeep, fx.articles.filterStatus)
	assert.Equal(t, article.ContentStatusEmbedded, fx.articles.contentStatus)
}

func TestRunUnparseableFilterVerdictKeepsArticle(t *testing.T) {
	fx := newFixture(t)
	fx.chat.content = "definitely keep it"
	path := saveDoc(t, fx.store, "a1", "Some article body text.")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "lightweight",
	})
	require.NoError(t, err)
	assert.Equal(t, DecisionKeep, s.Decision)
}

func TestRunEmbedFailureRecordsEmbeddingFailed(t *testing.T) {
	fx := newFixture(t)
	fx.indexer.err = errors.New("embedding provider down")
	path := saveDoc(t, fx.store, "a1", "Apple reported strong results.")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "full_analysis",
	})
	require.NoError(t, err)

	assert.True(t, s.Failed)
	assert.Equal(t, article.ContentStatusEmbeddingFailed, fx.articles.contentStatus)
	assert.Contains(t, fx.articles.errMsg, "embedding provider down")

	// The deep analysis still landed: enrichment survives an embed outage.
	require.NotNil(t, fx.articles.analysis)
	assert.Equal(t, article.FilterStatusFineKeep, fx.articles.filterStatus)
}

func TestRunDeepFilterFailureStillKeeps(t *testing.T) {
	fx := newFixture(t)
	fx.analyzer.result = &analysis.Result{
		Decision: "keep",
		Analysis: models.AnalysisResult{SentimentTag: "neutral"},
		Stats:    analysis.CacheStats{Error: "no provider", AgentsFailed: 5},
	}
	path := saveDoc(t, fx.store, "a1", "Apple reported strong results.")

	s, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "full_analysis",
	})
	require.NoError(t, err)

	assert.Equal(t, DecisionKeep, s.Decision)
	assert.Equal(t, article.ContentStatusEmbedded, fx.articles.contentStatus)

	var deepEvent models.TraceEvent
	for _, ev := range fx.traces.batches[0] {
		if ev.Node == "deep_filter" {
			deepEvent = ev
		}
	}
	assert.Equal(t, models.TraceStatusError, deepEvent.Status)
}

func TestRunUpdateDBFailureReturnsError(t *testing.T) {
	fx := newFixture(t)
	fx.articles.saveErr = errors.New("db down")
	path := saveDoc(t, fx.store, "a1", "Apple reported strong results.")

	_, err := fx.engine.Run(context.Background(), Job{
		ArticleID: "a1", FilePath: path, Routing: "full_analysis",
	})
	require.Error(t, err, "terminal write failure surfaces for job retry")

	// Buffered traces were still flushed for debuggability.
	require.Len(t, fx.traces.batches, 1)
}
