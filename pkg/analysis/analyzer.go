package analysis

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/llm"
)

// chatClient is the slice of the LLM gateway the analyzer uses.
type chatClient interface {
	ChatForPurpose(ctx context.Context, purpose config.Purpose, req *llm.Request) (*llm.Response, error)
	ModelForPurpose(purpose config.Purpose) (string, error)
}

// statsSink receives token counters; a nil sink disables tracking.
type statsSink interface {
	TrackTokens(ctx context.Context, purpose string, prompt, completion, cached int)
}

// Analyzer runs the five-agent deep analysis over one article.
type Analyzer struct {
	chat  chatClient
	stats statsSink
	cfg   *config.PipelineConfig
	now   func() time.Time
}

// NewAnalyzer creates an analyzer. stats may be nil.
func NewAnalyzer(chat chatClient, stats statsSink, cfg *config.PipelineConfig) *Analyzer {
	return &Analyzer{
		chat:  chat,
		stats: stats,
		cfg:   cfg,
		now:   time.Now,
	}
}

// applyFns routes each agent's raw response into the shared result. The
// result is guarded by the caller's mutex.
var applyFns = map[agentName]func(*Result, string) error{
	agentEntity:    applyEntityOutput,
	agentSentiment: applySentimentOutput,
	agentSummary:   applySummaryOutput,
	agentImpact:    applyImpactOutput,
	agentReport:    applyReportOutput,
}

// FullAnalysis fans out the five agents over a shared cached prefix and
// merges their outputs. It never returns an error for agent-level failures:
// a failed or malformed agent contributes its defaults, and the stats block
// records what happened. The decision is always "keep".
func (a *Analyzer) FullAnalysis(ctx context.Context, in Input) *Result {
	start := a.now()
	result := emptyResult()

	// No text means nothing to analyse: skip all five agents rather than burn
	// tokens asking them about an empty article.
	if strings.TrimSpace(in.CleanedText) == "" {
		slog.Warn("Analysis skipped, cleaned text is empty", "article_id", in.ArticleID)
		result.Stats.Error = "cleaned text is empty"
		result.Stats.AgentsFailed = len(agentNames)
		result.Stats.ElapsedMS = a.now().Sub(start).Milliseconds()
		return result
	}

	// Service-level failure: nothing to call, return the empty keep-shaped
	// result so update_db still persists a row in a sane state.
	if _, err := a.chat.ModelForPurpose(config.PurposeLayer2Analysis); err != nil {
		slog.Error("Analysis model unresolvable, returning empty result",
			"article_id", in.ArticleID, "error", err)
		result.Stats.Error = err.Error()
		result.Stats.AgentsFailed = len(agentNames)
		result.Stats.ElapsedMS = a.now().Sub(start).Milliseconds()
		return result
	}

	// Shared cached prefix: identical SYSTEM and USER across all five calls,
	// both flagged ephemeral. Only the trailing instruction differs, so the
	// provider serves the bulk of the prompt from cache.
	shared := []llm.Message{
		{Role: llm.RoleSystem, Content: analysisSystemPrompt, CacheControl: llm.CacheControlEphemeral},
		{Role: llm.RoleUser, Content: buildContextPrompt(in), CacheControl: llm.CacheControlEphemeral},
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range agentNames {
		g.Go(func() error {
			usage, content, err := a.callAgent(gctx, name, shared)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				err = applyFns[name](result, content)
			}
			if err != nil {
				slog.Warn("Analysis agent failed, merging defaults",
					"article_id", in.ArticleID, "agent", string(name), "error", err)
				usage.Error = err.Error()
				result.Stats.AgentsFailed++
			} else {
				result.Stats.AgentsSucceeded++
			}
			result.Stats.PerAgent[string(name)] = usage
			result.Stats.PromptTokens += usage.PromptTokens
			result.Stats.CompletionTokens += usage.CompletionTokens
			result.Stats.CachedTokens += usage.CachedTokens
			return nil // fail-open: one agent never fails the article
		})
	}
	_ = g.Wait()

	result.Stats.TotalTokens = result.Stats.PromptTokens + result.Stats.CompletionTokens
	if result.Stats.PromptTokens > 0 {
		result.Stats.CacheHitRate = float64(result.Stats.CachedTokens) / float64(result.Stats.PromptTokens)
	}
	result.Stats.ElapsedMS = a.now().Sub(start).Milliseconds()
	return result
}

func (a *Analyzer) callAgent(ctx context.Context, name agentName, shared []llm.Message) (AgentUsage, string, error) {
	messages := make([]llm.Message, 0, len(shared)+1)
	messages = append(messages, shared...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: agentPrompts[name]})

	callStart := a.now()
	resp, err := a.chat.ChatForPurpose(ctx, config.PurposeLayer2Analysis, &llm.Request{
		Messages:       messages,
		ResponseFormat: llm.ResponseFormatJSON,
		Timeout:        a.cfg.AnalysisAgentTimeout,
	})
	usage := AgentUsage{DurationMS: a.now().Sub(callStart).Milliseconds()}
	if err != nil {
		return usage, "", err
	}

	usage.PromptTokens = resp.Usage.PromptTokens
	usage.CompletionTokens = resp.Usage.CompletionTokens
	usage.CachedTokens = resp.Usage.CachedTokens
	if a.stats != nil {
		a.stats.TrackTokens(ctx, string(config.PurposeLayer2Analysis),
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.CachedTokens)
	}
	return usage, resp.Content, nil
}

// emptyResult is the keep-shaped zero value: every agent's defaults applied
// with no agent output merged in.
func emptyResult() *Result {
	return &Result{
		Decision: "keep",
		Analysis: analysisDefaults(),
		Impact: Impact{
			TimeHorizon:     defaultTimeHorizon,
			ImpactMagnitude: defaultMagnitude,
		},
		Stats: CacheStats{PerAgent: make(map[string]AgentUsage, len(agentNames))},
	}
}
