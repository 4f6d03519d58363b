package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/pkg/analysis"
	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
	"github.com/finsight/newsflow/pkg/llm"
	"github.com/finsight/newsflow/pkg/models"
)

// fileStore is the slice of the content store the workflow uses.
type fileStore interface {
	Read(relPath string) (*contentstore.Document, error)
	Delete(relPath string) error
}

// deepAnalyzer runs the five-agent analysis.
type deepAnalyzer interface {
	FullAnalysis(ctx context.Context, in analysis.Input) *analysis.Result
}

// chatClient issues the legacy single-call filter.
type chatClient interface {
	ChatForPurpose(ctx context.Context, purpose config.Purpose, req *llm.Request) (*llm.Response, error)
}

// contentIndexer writes embeddings.
type contentIndexer interface {
	IndexContent(ctx context.Context, sourceType, sourceID, content, symbol string) (int, error)
}

// articleWriter is the slice of the article service update_db uses.
type articleWriter interface {
	SaveAnalysis(ctx context.Context, articleID string, result *models.AnalysisResult) error
	UpdateFilterStatus(ctx context.Context, articleID string, status article.FilterStatus) error
	UpdateContentStatus(ctx context.Context, articleID string, status article.ContentStatus, errMsg string) error
	MarkDeleted(ctx context.Context, articleID string) error
}

// traceWriter persists the buffered events in one batch.
type traceWriter interface {
	RecordMany(ctx context.Context, events []models.TraceEvent) error
}

// statsSink receives decision and progress counters; nil disables tracking.
type statsSink interface {
	TrackLayer15(ctx context.Context, decision string)
	TrackPipeline(ctx context.Context, field string, delta int64)
	TrackTokens(ctx context.Context, purpose string, prompt, completion, cached int)
}

// Engine executes the per-article Layer-2 graph.
type Engine struct {
	store    fileStore
	analyzer deepAnalyzer
	chat     chatClient
	indexer  contentIndexer
	articles articleWriter
	traces   traceWriter
	stats    statsSink
	cfg      *config.PipelineConfig
}

// NewEngine creates a workflow engine. stats may be nil.
func NewEngine(
	store fileStore,
	analyzer deepAnalyzer,
	chat chatClient,
	indexer contentIndexer,
	articles articleWriter,
	traces traceWriter,
	stats statsSink,
	cfg *config.PipelineConfig,
) *Engine {
	return &Engine{
		store:    store,
		analyzer: analyzer,
		chat:     chat,
		indexer:  indexer,
		articles: articles,
		traces:   traces,
		stats:    stats,
		cfg:      cfg,
	}
}

// Run executes the graph for one article. The returned state is terminal:
// update_db has run exactly once. Run only returns an error when the terminal
// database update itself failed, so the enclosing job can retry.
func (e *Engine) Run(ctx context.Context, job Job) (*State, error) {
	s := newState(job)

	e.readFile(s)
	mode := e.routeFilterMode(s)
	switch mode {
	case modeTwoPhase:
		e.deepFilter(ctx, s)
	case modeLegacy:
		e.singleFilter(ctx, s)
	}

	if !s.Failed {
		if s.Decision == DecisionDelete {
			e.markDeleted(s)
		} else {
			e.embed(ctx, s)
		}
	}

	if err := e.updateDB(ctx, s); err != nil {
		return s, err
	}
	return s, nil
}

// readFile loads the content document into the state. A missing file or an
// empty body is a terminal failure surfaced to update_db.
func (e *Engine) readFile(s *State) {
	start := time.Now()

	doc, err := e.store.Read(s.Job.FilePath)
	if err != nil {
		s.fail(article.ContentStatusFailed, fmt.Errorf("read content file: %w", err))
		s.addEvent("read_file", models.TraceStatusError, s.Err, start, nil)
		return
	}
	if strings.TrimSpace(doc.Text) == "" {
		s.fail(article.ContentStatusFailed, errors.New("content file has empty text"))
		s.addEvent("read_file", models.TraceStatusError, s.Err, start, nil)
		return
	}

	s.Title = doc.Title
	s.Text = doc.Text
	s.Symbol = doc.Symbol
	s.Market = doc.Market
	s.Language = doc.Language
	s.Authors = doc.Authors
	s.Keywords = doc.Keywords
	s.WordCount = len(strings.Fields(doc.Text))

	s.addEvent("read_file", models.TraceStatusSuccess, "", start, map[string]any{
		"word_count": s.WordCount,
		"partial":    s.Job.Partial,
	})
}

// routeFilterMode selects the filter path from the Layer-1 routing: articles
// promoted to full analysis get the five-agent deep filter, lightweight ones
// the legacy single call. A prior failure routes straight to update_db.
func (e *Engine) routeFilterMode(s *State) string {
	if s.Failed {
		return ""
	}
	if s.Job.Routing == "full_analysis" {
		s.FilterMode = modeTwoPhase
	} else {
		s.FilterMode = modeLegacy
	}
	return s.FilterMode
}

// deepFilter runs the five-agent analysis. The analyzer is fail-open, so the
// decision is always keep; what varies is how much enrichment survived.
func (e *Engine) deepFilter(ctx context.Context, s *State) {
	start := time.Now()

	result := e.analyzer.FullAnalysis(ctx, analysis.Input{
		ArticleID:   s.Job.ArticleID,
		Title:       s.Title,
		CleanedText: s.Text,
		Symbol:      s.Symbol,
	})
	s.Analysis = result
	s.Decision = result.Decision

	status := models.TraceStatusSuccess
	if result.Stats.Error != "" {
		status = models.TraceStatusError
	}
	s.addEvent("deep_filter", status, result.Stats.Error, start, map[string]any{
		"agents_succeeded": result.Stats.AgentsSucceeded,
		"agents_failed":    result.Stats.AgentsFailed,
		"cache_hit_rate":   result.Stats.CacheHitRate,
		"total_tokens":     result.Stats.TotalTokens,
	})
	if e.stats != nil {
		e.stats.TrackPipeline(ctx, "analysis_completed", 1)
	}
}

// singleFilterPrompt asks for a bare relevance verdict.
const singleFilterPrompt = `You are a financial news relevance filter. Decide whether the article below is worth keeping for investors of the named symbol, or should be deleted as irrelevant, promotional, or content-free. Respond with ONLY a JSON object: {"keep": true} or {"keep": false}.`

// singleFilter is the legacy one-call relevance check. Any failure keeps the
// article: filtering must never silently lose content.
func (e *Engine) singleFilter(ctx context.Context, s *State) {
	start := time.Now()

	resp, err := e.chat.ChatForPurpose(ctx, config.PurposeLayer2Lightweight, &llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: singleFilterPrompt},
			{Role: llm.RoleUser, Content: buildFilterPrompt(s)},
		},
		ResponseFormat: llm.ResponseFormatJSON,
		Timeout:        e.cfg.ScoringTimeout,
	})
	if err != nil {
		slog.Warn("Single filter failed, keeping article",
			"article_id", s.Job.ArticleID, "error", err)
		s.Decision = DecisionKeep
		s.addEvent("single_filter", models.TraceStatusError, err.Error(), start, nil)
		return
	}
	if e.stats != nil {
		e.stats.TrackTokens(ctx, string(config.PurposeLayer2Lightweight),
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.CachedTokens)
	}

	var verdict struct {
		Keep bool `json:"keep"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Content)), &verdict); err != nil {
		slog.Warn("Single filter returned unparseable verdict, keeping article",
			"article_id", s.Job.ArticleID, "error", err)
		s.Decision = DecisionKeep
		s.addEvent("single_filter", models.TraceStatusError, err.Error(), start, nil)
		return
	}

	if verdict.Keep {
		s.Decision = DecisionKeep
	} else {
		s.Decision = DecisionDelete
	}
	s.addEvent("single_filter", models.TraceStatusSuccess, "", start, map[string]any{
		"keep": verdict.Keep,
	})
}

func buildFilterPrompt(s *State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", s.Title)
	if s.Symbol != "" {
		fmt.Fprintf(&b, "Symbol: %s\n", s.Symbol)
	}
	b.WriteString("\n")
	b.WriteString(truncateRunes(s.Text, 4000))
	return b.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// embed writes the article's combined text into the vector store.
func (e *Engine) embed(ctx context.Context, s *State) {
	start := time.Now()

	combined := strings.TrimSpace(s.Title + "\n\n" + s.Text)
	if combined == "" {
		s.fail(article.ContentStatusEmbeddingFailed, errors.New("no content to embed"))
		s.addEvent("embed", models.TraceStatusError, s.Err, start, nil)
		return
	}

	chunks, err := e.indexer.IndexContent(ctx, "article", s.Job.ArticleID, combined, s.Symbol)
	if err != nil {
		s.fail(article.ContentStatusEmbeddingFailed, err)
		s.addEvent("embed", models.TraceStatusError, s.Err, start, nil)
		if e.stats != nil {
			e.stats.TrackPipeline(ctx, "embedding_failed", 1)
		}
		return
	}

	s.FinalStatus = article.ContentStatusEmbedded
	s.addEvent("embed", models.TraceStatusSuccess, "", start, map[string]any{
		"chunks": chunks,
	})
	if e.stats != nil {
		e.stats.TrackPipeline(ctx, "embedded", 1)
	}
}

// markDeleted removes the content file (best-effort) and records the
// deletion for update_db. Mutually exclusive with embed.
func (e *Engine) markDeleted(s *State) {
	start := time.Now()

	if err := e.store.Delete(s.Job.FilePath); err != nil && !errors.Is(err, contentstore.ErrNotFound) {
		slog.Warn("Failed to delete content file",
			"article_id", s.Job.ArticleID, "path", s.Job.FilePath, "error", err)
	}
	s.FinalStatus = article.ContentStatusDeleted
	s.addEvent("mark_deleted", models.TraceStatusSuccess, "", start, nil)
}

// updateDB is the single terminal write: analysis fields, filter status,
// content status, then the buffered trace batch. Safe to re-run on job
// retry: the field writes are idempotent and traces append.
func (e *Engine) updateDB(ctx context.Context, s *State) error {
	start := time.Now()
	id := s.Job.ArticleID

	if s.Analysis != nil {
		if err := e.articles.SaveAnalysis(ctx, id, &s.Analysis.Analysis); err != nil {
			s.addEvent("update_db", models.TraceStatusError, err.Error(), start, nil)
			e.flushTraces(ctx, s)
			return fmt.Errorf("save analysis: %w", err)
		}
	}

	if s.FilterMode != "" {
		if err := e.articles.UpdateFilterStatus(ctx, id, filterStatus(s)); err != nil {
			s.addEvent("update_db", models.TraceStatusError, err.Error(), start, nil)
			e.flushTraces(ctx, s)
			return fmt.Errorf("update filter status: %w", err)
		}
		if e.stats != nil {
			e.stats.TrackLayer15(ctx, string(filterStatus(s)))
		}
	}

	var err error
	if s.FinalStatus == article.ContentStatusDeleted {
		err = e.articles.MarkDeleted(ctx, id)
	} else if s.FinalStatus != "" {
		err = e.articles.UpdateContentStatus(ctx, id, s.FinalStatus, s.Err)
	}
	if err != nil {
		s.addEvent("update_db", models.TraceStatusError, err.Error(), start, nil)
		e.flushTraces(ctx, s)
		return fmt.Errorf("update content status: %w", err)
	}

	s.addEvent("update_db", models.TraceStatusSuccess, "", start, map[string]any{
		"final_status": string(s.FinalStatus),
		"decision":     s.Decision,
	})
	e.flushTraces(ctx, s)
	return nil
}

// filterStatus maps the decision to the stored filter status: two-phase runs
// record the fine-grained pair, legacy runs the plain pair.
func filterStatus(s *State) article.FilterStatus {
	if s.FilterMode == modeTwoPhase {
		if s.Decision == DecisionDelete {
			return article.FilterStatusFineDelete
		}
		return article.FilterStatusFineKeep
	}
	if s.Decision == DecisionDelete {
		return article.FilterStatusDelete
	}
	return article.FilterStatusKeep
}

func (e *Engine) flushTraces(ctx context.Context, s *State) {
	if len(s.events) == 0 {
		return
	}
	if err := e.traces.RecordMany(ctx, s.events); err != nil {
		slog.Warn("Failed to persist workflow trace batch",
			"article_id", s.Job.ArticleID, "events", len(s.events), "error", err)
	}
}
