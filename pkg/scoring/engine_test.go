package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/llm"
)

// fakeChat scripts per-perspective responses and records every request.
type fakeChat struct {
	mu        sync.Mutex
	requests  []*llm.Request
	responses map[Perspective]string // raw JSON content
	errs      map[Perspective]error
	resolveErr error
}

func (f *fakeChat) ChatForPurpose(_ context.Context, purpose config.Purpose, req *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	p := perspectiveOf(req)
	if err := f.errs[p]; err != nil {
		return nil, err
	}
	return &llm.Response{
		Content: f.responses[p],
		Usage:   llm.Usage{PromptTokens: 4000, CompletionTokens: 100, CachedTokens: 3800},
	}, nil
}

func (f *fakeChat) ModelForPurpose(config.Purpose) (string, error) {
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	return "test-model", nil
}

func perspectiveOf(req *llm.Request) Perspective {
	last := req.Messages[len(req.Messages)-1].Content
	for _, p := range perspectives {
		if strings.Contains(last, "the "+string(p)+" perspective") {
			return p
		}
	}
	return ""
}

// uniformScores builds a JSON response giving every article the same score.
func uniformScores(count, score int, tier string) string {
	m := make(map[string]map[string]any, count)
	for i := 1; i <= count; i++ {
		m[fmt.Sprint(i)] = map[string]any{"tier": tier, "score": score, "reason": "test"}
	}
	data, _ := json.Marshal(m)
	return string(data)
}

type fakeThresholds struct{ discard, full int }

func (f fakeThresholds) Thresholds(context.Context) (int, int) { return f.discard, f.full }

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ArticleID: fmt.Sprintf("a%d", i),
			URL:       fmt.Sprintf("https://example.com/%d", i),
			Title:     fmt.Sprintf("Company %d reports results", i),
			Summary:   "Quarterly revenue in line with expectations.",
		}
	}
	return items
}

func newTestEngine(chat *fakeChat) *Engine {
	return NewEngine(chat, fakeThresholds{discard: 105, full: 195}, nil, config.DefaultPipelineConfig())
}

func TestBatchScorePreservesOrder(t *testing.T) {
	chat := &fakeChat{responses: map[Perspective]string{
		PerspectiveMacro:  uniformScores(3, 70, "major"),
		PerspectiveMarket: uniformScores(3, 60, "important"),
		PerspectiveSignal: uniformScores(3, 50, "important"),
	}}
	engine := newTestEngine(chat)

	items := testItems(3)
	results, err := engine.BatchScore(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, items[i].ArticleID, r.ArticleID)
		assert.Equal(t, 180, r.Total)
		assert.Equal(t, RoutingLightweight, r.Routing)
		require.Len(t, r.Agents, 3)
		assert.Equal(t, PerspectiveMacro, r.Agents[0].Agent)
		assert.Equal(t, 70, r.Agents[0].Score)
	}
}

func TestBatchScoreSharedCachedPrefix(t *testing.T) {
	chat := &fakeChat{responses: map[Perspective]string{
		PerspectiveMacro:  uniformScores(2, 50, "important"),
		PerspectiveMarket: uniformScores(2, 50, "important"),
		PerspectiveSignal: uniformScores(2, 50, "important"),
	}}
	engine := newTestEngine(chat)

	_, err := engine.BatchScore(context.Background(), testItems(2))
	require.NoError(t, err)
	require.Len(t, chat.requests, 3)

	first := chat.requests[0]
	for _, req := range chat.requests {
		require.Len(t, req.Messages, 3)

		// Shared prefix is byte-identical across all three calls and
		// carries the cache hint on both messages.
		assert.Equal(t, first.Messages[0].Content, req.Messages[0].Content)
		assert.Equal(t, first.Messages[1].Content, req.Messages[1].Content)
		assert.Equal(t, llm.CacheControlEphemeral, req.Messages[0].CacheControl)
		assert.Equal(t, llm.CacheControlEphemeral, req.Messages[1].CacheControl)

		// Only the trailing instruction differs.
		assert.Empty(t, req.Messages[2].CacheControl)
	}
	assert.NotEqual(t, chat.requests[0].Messages[2].Content, chat.requests[1].Messages[2].Content)
}

func TestBatchScoreCriticalFastpath(t *testing.T) {
	// Two normal articles around one critical one: the LLM sees a 2-article
	// batch and its 1-based indices must map back around the gap.
	chat := &fakeChat{responses: map[Perspective]string{
		PerspectiveMacro:  `{"1": {"tier": "major", "score": 80, "reason": "a"}, "2": {"tier": "marginal", "score": 10, "reason": "b"}}`,
		PerspectiveMarket: `{"1": {"tier": "major", "score": 80}, "2": {"tier": "marginal", "score": 10}}`,
		PerspectiveSignal: `{"1": {"tier": "major", "score": 80}, "2": {"tier": "marginal", "score": 10}}`,
	}}
	engine := newTestEngine(chat)

	items := testItems(3)
	items[1].Title = "Lehman-style collapse: bank files for bankruptcy"

	results, err := engine.BatchScore(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, 3)

	critical := results[1]
	assert.True(t, critical.IsCritical)
	assert.Equal(t, 300, critical.Total)
	assert.Equal(t, RoutingFullAnalysis, critical.Routing)
	for _, a := range critical.Agents {
		assert.Equal(t, "critical_event", a.Tier)
		assert.Equal(t, 100, a.Score)
	}

	// Non-critical neighbours got the LLM scores at the right positions.
	assert.Equal(t, 240, results[0].Total)
	assert.Equal(t, RoutingFullAnalysis, results[0].Routing)
	assert.Equal(t, 30, results[2].Total)
	assert.Equal(t, RoutingDiscard, results[2].Routing)

	// The batch prompt only contained the two non-critical articles.
	batchPrompt := chat.requests[0].Messages[1].Content
	assert.NotContains(t, batchPrompt, "bankruptcy")
	assert.Contains(t, batchPrompt, "### Article 2")
	assert.NotContains(t, batchPrompt, "### Article 3")
}

func TestBatchScoreAgentFailureIsFailOpen(t *testing.T) {
	chat := &fakeChat{
		responses: map[Perspective]string{
			PerspectiveMacro:  uniformScores(1, 90, "extreme"),
			PerspectiveSignal: uniformScores(1, 90, "extreme"),
		},
		errs: map[Perspective]error{
			PerspectiveMarket: errors.New("rate limited"),
		},
	}
	engine := newTestEngine(chat)

	results, err := engine.BatchScore(context.Background(), testItems(1))
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 90+defaultAgentScore+90, r.Total)
	assert.Equal(t, "error", r.Agents[1].Tier)
	assert.Equal(t, defaultAgentScore, r.Agents[1].Score)
	assert.Equal(t, RoutingFullAnalysis, r.Routing)
}

func TestBatchScoreUnparseableJSONDefaults(t *testing.T) {
	chat := &fakeChat{responses: map[Perspective]string{
		PerspectiveMacro:  "I cannot score these articles.",
		PerspectiveMarket: uniformScores(1, 40, "general"),
		PerspectiveSignal: uniformScores(1, 40, "general"),
	}}
	engine := newTestEngine(chat)

	results, err := engine.BatchScore(context.Background(), testItems(1))
	require.NoError(t, err)
	assert.Equal(t, defaultAgentScore+40+40, results[0].Total)
	assert.Equal(t, "error", results[0].Agents[0].Tier)
}

func TestBatchScoreServiceFailureDefaultsToLightweight(t *testing.T) {
	chat := &fakeChat{resolveErr: errors.New("unknown purpose")}
	engine := newTestEngine(chat)

	results, err := engine.BatchScore(context.Background(), testItems(2))
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, RoutingLightweight, r.Routing)
		assert.Equal(t, "error", r.Agents[0].Tier)
	}
	assert.Empty(t, chat.requests, "no LLM calls on service failure")
}

func TestBatchScoreSplitsLargeInput(t *testing.T) {
	chat := &fakeChat{responses: map[Perspective]string{
		PerspectiveMacro:  uniformScores(20, 50, "important"),
		PerspectiveMarket: uniformScores(20, 50, "important"),
		PerspectiveSignal: uniformScores(20, 50, "important"),
	}}
	engine := newTestEngine(chat)

	results, err := engine.BatchScore(context.Background(), testItems(25))
	require.NoError(t, err)
	assert.Len(t, results, 25)
	// Two batches of three agents each.
	assert.Len(t, chat.requests, 6)
}

func TestBatchScoreMarkdownFencedJSON(t *testing.T) {
	chat := &fakeChat{responses: map[Perspective]string{
		PerspectiveMacro:  "```json\n" + uniformScores(1, 65, "important") + "\n```",
		PerspectiveMarket: uniformScores(1, 65, "important"),
		PerspectiveSignal: uniformScores(1, 65, "important"),
	}}
	engine := newTestEngine(chat)

	results, err := engine.BatchScore(context.Background(), testItems(1))
	require.NoError(t, err)
	assert.Equal(t, 195, results[0].Total)
	assert.Equal(t, RoutingFullAnalysis, results[0].Routing)
}

func TestParseAgentJSONClampsAndFilters(t *testing.T) {
	parsed, err := parseAgentJSON(`{"1": {"tier": "extreme", "score": 150}, "2": {"tier": "irrelevant", "score": -5}, "9": {"tier": "x", "score": 50}}`, 2)
	require.NoError(t, err)
	assert.Equal(t, 100, parsed[0].Score)
	assert.Equal(t, 0, parsed[1].Score)
	_, ok := parsed[8]
	assert.False(t, ok, "out-of-range index dropped")
}

func TestIsCritical(t *testing.T) {
	assert.True(t, isCritical(Item{Title: "Central bank announces EMERGENCY RATE cut"}))
	assert.True(t, isCritical(Item{Summary: "The exchange confirmed trading halted pending news."}))
	assert.False(t, isCritical(Item{Title: "Company reports quarterly results"}))
}
