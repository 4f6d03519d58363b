package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/llm"
)

// chatClient is the slice of the LLM gateway the scorer uses.
type chatClient interface {
	ChatForPurpose(ctx context.Context, purpose config.Purpose, req *llm.Request) (*llm.Response, error)
	ModelForPurpose(purpose config.Purpose) (string, error)
}

// thresholdSource supplies the current routing boundaries.
type thresholdSource interface {
	Thresholds(ctx context.Context) (discard int, full int)
}

// statsSink receives non-fatal counters; a nil sink disables tracking.
type statsSink interface {
	TrackFilterBatch(ctx context.Context, fullAnalysis, lightweight, discard int)
	TrackScore(ctx context.Context, total int)
	TrackCriticalFastpath(ctx context.Context)
	TrackFilterError(ctx context.Context)
	TrackTokens(ctx context.Context, purpose string, prompt, completion, cached int)
}

// Engine scores article batches with three perspective agents.
type Engine struct {
	chat       chatClient
	thresholds thresholdSource
	stats      statsSink
	cfg        *config.PipelineConfig
}

// NewEngine creates a scoring engine. stats may be nil.
func NewEngine(chat chatClient, thresholds thresholdSource, stats statsSink, cfg *config.PipelineConfig) *Engine {
	return &Engine{
		chat:       chat,
		thresholds: thresholds,
		stats:      stats,
		cfg:        cfg,
	}
}

// BatchScore scores the items in input order. Items are processed in batches
// of the configured size; batches run sequentially, the three agents within
// a batch run in parallel. The returned slice always has len(items): scoring
// failures degrade to defaults, they never drop articles.
func (e *Engine) BatchScore(ctx context.Context, items []Item) ([]ScoreResult, error) {
	if len(items) == 0 {
		return nil, nil
	}

	batchSize := e.cfg.ScoringBatchSize
	if batchSize <= 0 {
		batchSize = 20
	}

	results := make([]ScoreResult, 0, len(items))
	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))
		batch, err := e.scoreBatch(ctx, items[start:end])
		if err != nil {
			return nil, err
		}
		results = append(results, batch...)
	}
	return results, nil
}

func (e *Engine) scoreBatch(ctx context.Context, items []Item) ([]ScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]ScoreResult, len(items))

	// Critical fast-path: matched articles never reach the LLM. The
	// remaining articles keep their original positions via llmIndex.
	var llmItems []Item
	var llmIndex []int
	for i, item := range items {
		if isCritical(item) {
			results[i] = criticalResult(item)
			if e.stats != nil {
				e.stats.TrackCriticalFastpath(ctx)
			}
			continue
		}
		llmItems = append(llmItems, item)
		llmIndex = append(llmIndex, i)
	}

	discard, full := e.thresholds.Thresholds(ctx)

	if len(llmItems) > 0 {
		// Service-level failure: if the purpose cannot resolve at all,
		// fail open to lightweight so nothing is silently dropped.
		if _, err := e.chat.ModelForPurpose(config.PurposeLayer1Scoring); err != nil {
			slog.Error("Scoring model unresolvable, defaulting batch to lightweight", "error", err)
			if e.stats != nil {
				e.stats.TrackFilterError(ctx)
			}
			for pos, item := range llmItems {
				results[llmIndex[pos]] = errorResult(item)
			}
		} else {
			scores := e.runAgents(ctx, llmItems)
			for pos, item := range llmItems {
				results[llmIndex[pos]] = assemble(item, scores[pos], discard, full)
			}
		}
	}

	// Critical results computed above still need threshold-independent
	// routing; they are already full_analysis. Count routing outcomes.
	var fullAnalysis, lightweight, discarded int
	for i := range results {
		switch results[i].Routing {
		case RoutingFullAnalysis:
			fullAnalysis++
		case RoutingLightweight:
			lightweight++
		case RoutingDiscard:
			discarded++
		}
		if e.stats != nil {
			e.stats.TrackScore(ctx, results[i].Total)
		}
	}
	if e.stats != nil {
		e.stats.TrackFilterBatch(ctx, fullAnalysis, lightweight, discarded)
	}

	return results, nil
}

// runAgents fans out the three perspective calls and returns per-article
// agent scores indexed [article][agent].
func (e *Engine) runAgents(ctx context.Context, items []Item) [][]AgentScore {
	// Shared cached prefix: identical SYSTEM and USER across all three
	// calls, both flagged ephemeral. The per-agent instruction comes after
	// the prefix so the provider can serve it from cache.
	shared := []llm.Message{
		{Role: llm.RoleSystem, Content: scoringSystemPrompt, CacheControl: llm.CacheControlEphemeral},
		{Role: llm.RoleUser, Content: buildBatchPrompt(items), CacheControl: llm.CacheControlEphemeral},
	}

	scores := make([][]AgentScore, len(items))
	for i := range scores {
		scores[i] = make([]AgentScore, len(perspectives))
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for agentIdx, p := range perspectives {
		g.Go(func() error {
			parsed, err := e.callAgent(gctx, p, shared, len(items))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("Scoring agent failed, applying defaults",
					"agent", string(p), "error", err)
				if e.stats != nil {
					e.stats.TrackFilterError(gctx)
				}
				for i := range items {
					scores[i][agentIdx] = AgentScore{Agent: p, Tier: tierError, Score: defaultAgentScore}
				}
				return nil // fail-open: one agent never fails the batch
			}
			for i := range items {
				if s, ok := parsed[i]; ok {
					s.Agent = p
					scores[i][agentIdx] = s
				} else {
					scores[i][agentIdx] = AgentScore{Agent: p, Tier: tierError, Score: defaultAgentScore}
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return scores
}

// callAgent performs one perspective call and parses the index-keyed JSON.
func (e *Engine) callAgent(ctx context.Context, p Perspective, shared []llm.Message, count int) (map[int]AgentScore, error) {
	messages := make([]llm.Message, 0, len(shared)+1)
	messages = append(messages, shared...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: perspectivePrompt(p)})

	resp, err := e.chat.ChatForPurpose(ctx, config.PurposeLayer1Scoring, &llm.Request{
		Messages:       messages,
		ResponseFormat: llm.ResponseFormatJSON,
		Timeout:        e.cfg.ScoringTimeout,
	})
	if err != nil {
		return nil, err
	}

	if e.stats != nil {
		e.stats.TrackTokens(ctx, string(config.PurposeLayer1Scoring),
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.CachedTokens)
	}

	return parseAgentJSON(resp.Content, count)
}

// parseAgentJSON decodes {"1": {tier, score, reason}, ...} into 0-based
// article positions. Out-of-range indices are ignored; scores are clamped
// to [0,100].
func parseAgentJSON(content string, count int) (map[int]AgentScore, error) {
	raw := stripJSONFences(content)

	var decoded map[string]struct {
		Tier   string  `json:"tier"`
		Score  float64 `json:"score"`
		Reason string  `json:"reason"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("unparseable agent JSON: %w", err)
	}

	out := make(map[int]AgentScore, len(decoded))
	for key, v := range decoded {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 1 || idx > count {
			continue
		}
		score := int(v.Score)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		out[idx-1] = AgentScore{Tier: v.Tier, Score: score, Reason: v.Reason}
	}
	return out, nil
}

func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

func assemble(item Item, agents []AgentScore, discard, full int) ScoreResult {
	total := 0
	reasons := make([]string, 0, len(agents))
	for _, a := range agents {
		total += a.Score
		if a.Reason != "" {
			reasons = append(reasons, fmt.Sprintf("%s: %s", a.Agent, a.Reason))
		}
	}

	routing := RoutingLightweight
	switch {
	case total < discard:
		routing = RoutingDiscard
	case total >= full:
		routing = RoutingFullAnalysis
	}

	return ScoreResult{
		ArticleID: item.ArticleID,
		URL:       item.URL,
		Agents:    agents,
		Total:     total,
		Routing:   routing,
		Rationale: strings.Join(reasons, "; "),
	}
}

func criticalResult(item Item) ScoreResult {
	agents := make([]AgentScore, len(perspectives))
	for i, p := range perspectives {
		agents[i] = AgentScore{Agent: p, Tier: tierCriticalEvent, Score: 100}
	}
	return ScoreResult{
		ArticleID:  item.ArticleID,
		URL:        item.URL,
		Agents:     agents,
		Total:      300,
		Routing:    RoutingFullAnalysis,
		IsCritical: true,
		Rationale:  "critical event keyword match",
	}
}

// errorResult is the service-level fail-open: lightweight routing so the
// article still gets fetched and filtered downstream.
func errorResult(item Item) ScoreResult {
	agents := make([]AgentScore, len(perspectives))
	total := 0
	for i, p := range perspectives {
		agents[i] = AgentScore{Agent: p, Tier: tierError, Score: defaultAgentScore}
		total += defaultAgentScore
	}
	return ScoreResult{
		ArticleID: item.ArticleID,
		URL:       item.URL,
		Agents:    agents,
		Total:     total,
		Routing:   RoutingLightweight,
	}
}
