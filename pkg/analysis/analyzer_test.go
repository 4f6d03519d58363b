package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/llm"
)

// fakeChat scripts per-agent responses keyed by an identifying fragment of
// the agent instruction, and records every request.
type fakeChat struct {
	mu         sync.Mutex
	requests   []*llm.Request
	responses  map[agentName]string
	errs       map[agentName]error
	resolveErr error
}

func (f *fakeChat) ChatForPurpose(_ context.Context, _ config.Purpose, req *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	name := agentOf(req)
	if err := f.errs[name]; err != nil {
		return nil, err
	}
	return &llm.Response{
		Content: f.responses[name],
		Usage:   llm.Usage{PromptTokens: 5000, CompletionTokens: 200, CachedTokens: 4800},
	}, nil
}

func (f *fakeChat) ModelForPurpose(config.Purpose) (string, error) {
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	return "test-model", nil
}

func agentOf(req *llm.Request) agentName {
	last := req.Messages[len(req.Messages)-1].Content
	switch {
	case strings.Contains(last, "entity extractor"):
		return agentEntity
	case strings.Contains(last, "sentiment and tagging"):
		return agentSentiment
	case strings.Contains(last, "summary agent"):
		return agentSummary
	case strings.Contains(last, "impact assessor"):
		return agentImpact
	case strings.Contains(last, "report writer"):
		return agentReport
	}
	return ""
}

const sampleReport = "## Key Takeaways\n\nRates held.\n\n## Event Details\n\nThe decision was unanimous.\n\n## Market Context\n\nExpected.\n\n## Affected Entities\n\nSPX.\n\n## Risks\n\nInflation.\n\n## Outlook\n\nStable."

func happyResponses() map[agentName]string {
	return map[agentName]string{
		agentEntity:    `{"entities": [{"entity": "AAPL", "type": "stock", "score": 0.9}, {"entity": "interest rates", "type": "macro", "score": 0.4}]}`,
		agentSentiment: `{"sentiment": "bullish", "industry_tags": ["tech", "finance"], "event_tags": ["earnings"]}`,
		agentSummary:   `{"investment_summary": "Apple beats on services growth", "detailed_summary": "Apple reported quarterly results above consensus. Services revenue grew strongly. Margins expanded. Guidance was raised for the next quarter. The board approved an additional buyback."}`,
		agentImpact:    `{"market_impact": "Mild positive", "sector_impact": "Lifts megacap tech", "stock_impact": "Shares up after hours", "time_horizon": "short_term", "impact_magnitude": "medium"}`,
		agentReport:    `{"analysis_report": "` + strings.ReplaceAll(sampleReport, "\n", `\n`) + `"}`,
	}
}

func testInput() Input {
	return Input{
		ArticleID:   "a1",
		Title:       "Apple beats expectations",
		CleanedText: "Apple reported strong quarterly results driven by services.",
		Symbol:      "AAPL",
	}
}

func newTestAnalyzer(chat *fakeChat) *Analyzer {
	return NewAnalyzer(chat, nil, config.DefaultPipelineConfig())
}

func TestFullAnalysisMergesAllAgents(t *testing.T) {
	chat := &fakeChat{responses: happyResponses()}
	result := newTestAnalyzer(chat).FullAnalysis(context.Background(), testInput())

	assert.Equal(t, "keep", result.Decision)

	require.Len(t, result.Analysis.RelatedEntities, 2)
	assert.Equal(t, "AAPL", result.Analysis.PrimaryEntity)
	assert.True(t, result.Analysis.HasStockEntity)
	assert.True(t, result.Analysis.HasMacroEntity)
	assert.InDelta(t, 0.9, result.Analysis.MaxEntityScore, 0.001)

	assert.Equal(t, "bullish", result.Analysis.SentimentTag)
	assert.Equal(t, []string{"tech", "finance"}, result.Analysis.IndustryTags)
	assert.Equal(t, []string{"earnings"}, result.Analysis.EventTags)

	assert.Equal(t, "Apple beats on services growth", result.Analysis.InvestmentSummary)
	assert.NotEmpty(t, result.Analysis.DetailedSummary)

	assert.Equal(t, "short_term", result.Impact.TimeHorizon)
	assert.Equal(t, "medium", result.Impact.ImpactMagnitude)

	assert.True(t, strings.HasPrefix(result.Analysis.AnalysisReport, "## Key Takeaways"))

	assert.Equal(t, 5, result.Stats.AgentsSucceeded)
	assert.Equal(t, 0, result.Stats.AgentsFailed)
	assert.Equal(t, 5*5000, result.Stats.PromptTokens)
	assert.Equal(t, 5*4800, result.Stats.CachedTokens)
	assert.InDelta(t, 0.96, result.Stats.CacheHitRate, 0.001)
	assert.Len(t, result.Stats.PerAgent, 5)
}

func TestFullAnalysisSharedCachedPrefix(t *testing.T) {
	chat := &fakeChat{responses: happyResponses()}
	newTestAnalyzer(chat).FullAnalysis(context.Background(), testInput())

	require.Len(t, chat.requests, 5)
	first := chat.requests[0]
	instructions := make(map[string]bool)
	for _, req := range chat.requests {
		require.Len(t, req.Messages, 3)
		assert.Equal(t, first.Messages[0].Content, req.Messages[0].Content)
		assert.Equal(t, first.Messages[1].Content, req.Messages[1].Content)
		assert.Equal(t, llm.CacheControlEphemeral, req.Messages[0].CacheControl)
		assert.Equal(t, llm.CacheControlEphemeral, req.Messages[1].CacheControl)
		assert.Empty(t, req.Messages[2].CacheControl)
		instructions[req.Messages[2].Content] = true
	}
	assert.Len(t, instructions, 5, "each agent gets its own instruction")
}

func TestFullAnalysisTruncatesContext(t *testing.T) {
	chat := &fakeChat{responses: happyResponses()}
	in := testInput()
	in.CleanedText = strings.Repeat("x", maxContextChars+5000)

	newTestAnalyzer(chat).FullAnalysis(context.Background(), in)

	contextMsg := chat.requests[0].Messages[1].Content
	assert.Less(t, len(contextMsg), maxContextChars+500)
}

func TestFullAnalysisAgentFailureMergesDefaults(t *testing.T) {
	chat := &fakeChat{
		responses: happyResponses(),
		errs:      map[agentName]error{agentSentiment: errors.New("timeout")},
	}
	result := newTestAnalyzer(chat).FullAnalysis(context.Background(), testInput())

	assert.Equal(t, "keep", result.Decision)
	assert.Equal(t, "neutral", result.Analysis.SentimentTag)
	assert.Empty(t, result.Analysis.IndustryTags)
	assert.Equal(t, 4, result.Stats.AgentsSucceeded)
	assert.Equal(t, 1, result.Stats.AgentsFailed)
	assert.Equal(t, "timeout", result.Stats.PerAgent[string(agentSentiment)].Error)

	// The other agents still landed.
	assert.Equal(t, "AAPL", result.Analysis.PrimaryEntity)
}

func TestFullAnalysisServiceFailureReturnsEmptyKeep(t *testing.T) {
	chat := &fakeChat{resolveErr: errors.New("no provider for purpose")}
	result := newTestAnalyzer(chat).FullAnalysis(context.Background(), testInput())

	assert.Equal(t, "keep", result.Decision)
	assert.Empty(t, result.Analysis.RelatedEntities)
	assert.Equal(t, "neutral", result.Analysis.SentimentTag)
	assert.Equal(t, "medium_term", result.Impact.TimeHorizon)
	assert.Equal(t, 5, result.Stats.AgentsFailed)
	assert.NotEmpty(t, result.Stats.Error)
	assert.Empty(t, chat.requests, "no LLM calls when the model cannot resolve")
}

func TestFullAnalysisEmptyTextSkipsAgents(t *testing.T) {
	chat := &fakeChat{responses: happyResponses()}
	in := testInput()
	in.CleanedText = "   \n\t  "
	result := newTestAnalyzer(chat).FullAnalysis(context.Background(), in)

	assert.Equal(t, "keep", result.Decision)
	assert.Equal(t, 5, result.Stats.AgentsFailed)
	assert.Equal(t, "cleaned text is empty", result.Stats.Error)
	assert.Empty(t, chat.requests, "no LLM calls for empty cleaned text")
}

func TestApplyEntityOutputFiltersAndCaps(t *testing.T) {
	result := emptyResult()
	err := applyEntityOutput(result, `{"entities": [
		{"entity": "AAPL", "type": "stock", "score": 0.5},
		{"entity": "Apple Inc", "type": "stock", "score": 0.9},
		{"entity": "NVDA", "type": "stock", "score": 1.5},
		{"entity": "rates", "type": "opinion", "score": 0.4},
		{"entity": "MSFT", "type": "stock", "score": 0.8},
		{"entity": "GOOG", "type": "stock", "score": 0.7},
		{"entity": "AMZN", "type": "stock", "score": 0.6},
		{"entity": "META", "type": "stock", "score": 0.55},
		{"entity": "TSLA", "type": "stock", "score": 0.52},
		{"entity": "0700.HK", "type": "stock", "score": 0.51}
	]}`)
	require.NoError(t, err)

	// Company name, bad type and out-of-range score dropped; capped at 6,
	// sorted by score.
	require.Len(t, result.Analysis.RelatedEntities, 6)
	assert.Equal(t, "MSFT", result.Analysis.PrimaryEntity)
	assert.InDelta(t, 0.8, result.Analysis.MaxEntityScore, 0.001)
}

func TestApplySentimentOutputFiltersTags(t *testing.T) {
	result := emptyResult()
	err := applySentimentOutput(result, `{"sentiment": "euphoric", "industry_tags": ["tech", "crypto", "TECH", "finance", "energy", "consumer", "telecom", "utilities"], "event_tags": ["earnings", "rumor"]}`)
	require.NoError(t, err)

	assert.Equal(t, "neutral", result.Analysis.SentimentTag, "invalid sentiment keeps default")
	assert.Equal(t, []string{"tech", "finance", "energy", "consumer", "telecom"}, result.Analysis.IndustryTags)
	assert.Equal(t, []string{"earnings"}, result.Analysis.EventTags)
}

func TestApplySummaryOutputValidatesLengths(t *testing.T) {
	result := emptyResult()
	long := strings.Repeat("a", 80)
	err := applySummaryOutput(result, `{"investment_summary": "`+long+`", "detailed_summary": "Too short."}`)
	require.NoError(t, err)

	assert.Len(t, []rune(result.Analysis.InvestmentSummary), maxInvestmentSummary)
	assert.Empty(t, result.Analysis.DetailedSummary, "under-length summary cleared")
}

func TestApplyImpactOutputDefaults(t *testing.T) {
	result := emptyResult()
	err := applyImpactOutput(result, `{"market_impact": "big", "time_horizon": "forever", "impact_magnitude": "extreme"}`)
	require.NoError(t, err)

	assert.Equal(t, "medium_term", result.Impact.TimeHorizon)
	assert.Equal(t, "medium", result.Impact.ImpactMagnitude)
	assert.Equal(t, "big", result.Impact.MarketImpact)
}

func TestApplyReportOutputRecoversFromPreamble(t *testing.T) {
	result := emptyResult()
	err := applyReportOutput(result, `{"analysis_report": "Sure, here is the report:\n`+strings.ReplaceAll(sampleReport, "\n", `\n`)+`"}`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Analysis.AnalysisReport, "## Key Takeaways"))
}

func TestApplyReportOutputDictToMarkdown(t *testing.T) {
	result := emptyResult()
	err := applyReportOutput(result, `{"analysis_report": {"Key Takeaways": "Rates held.", "Outlook": "Stable."}}`)
	require.NoError(t, err)
	assert.Contains(t, result.Analysis.AnalysisReport, "## Key Takeaways")
	assert.Contains(t, result.Analysis.AnalysisReport, "## Outlook")
}

func TestApplyReportOutputRawMarkdown(t *testing.T) {
	result := emptyResult()
	err := applyReportOutput(result, sampleReport)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Analysis.AnalysisReport, "## Key Takeaways"))
}

func TestApplyReportOutputNoHeadersCleared(t *testing.T) {
	result := emptyResult()
	err := applyReportOutput(result, `{"analysis_report": "The company did well this quarter overall."}`)
	require.NoError(t, err)
	assert.Empty(t, result.Analysis.AnalysisReport)
}
