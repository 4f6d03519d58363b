// Package analysis implements the Layer-2 deep-analysis stage: five
// specialist agents share one cached prompt prefix over the article text and
// their outputs merge into a single enrichment result.
package analysis

import "github.com/finsight/newsflow/pkg/models"

// Input is the per-article payload for a full analysis run.
type Input struct {
	ArticleID     string
	Title         string
	CleanedText   string
	ImageInsights string
	Symbol        string
}

// Impact is the impact assessor's verdict. It travels with the result but is
// not persisted on the article row.
type Impact struct {
	MarketImpact    string `json:"market_impact,omitempty"`
	SectorImpact    string `json:"sector_impact,omitempty"`
	StockImpact     string `json:"stock_impact,omitempty"`
	TimeHorizon     string `json:"time_horizon"`
	ImpactMagnitude string `json:"impact_magnitude"`
}

// AgentUsage is the token accounting for one agent call.
type AgentUsage struct {
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	CachedTokens     int    `json:"cached_tokens"`
	DurationMS       int64  `json:"duration_ms"`
	Error            string `json:"error,omitempty"`
}

// CacheStats summarises the whole fan-out, including the prompt-cache yield.
type CacheStats struct {
	TotalTokens      int                   `json:"total_tokens"`
	PromptTokens     int                   `json:"prompt_tokens"`
	CompletionTokens int                   `json:"completion_tokens"`
	CachedTokens     int                   `json:"cached_tokens"`
	CacheHitRate     float64               `json:"cache_hit_rate"`
	AgentsSucceeded  int                   `json:"agents_succeeded"`
	AgentsFailed     int                   `json:"agents_failed"`
	ElapsedMS        int64                 `json:"elapsed_ms"`
	PerAgent         map[string]AgentUsage `json:"per_agent"`
	Error            string                `json:"error,omitempty"`
}

// Result is the merged Layer-2 output. Decision is always "keep": articles
// only reach the full path after scoring high, so this stage enriches rather
// than re-triages.
type Result struct {
	Decision string                `json:"decision"`
	Analysis models.AnalysisResult `json:"analysis"`
	Impact   Impact                `json:"impact"`
	Stats    CacheStats            `json:"stats"`
}

// agentName identifies one of the five specialist agents.
type agentName string

const (
	agentEntity    agentName = "entity_extractor"
	agentSentiment agentName = "sentiment_tags"
	agentSummary   agentName = "summary"
	agentImpact    agentName = "impact"
	agentReport    agentName = "report_writer"
)

var agentNames = []agentName{agentEntity, agentSentiment, agentSummary, agentImpact, agentReport}

// Validation vocabularies.
var (
	validSentiments = map[string]bool{"bullish": true, "bearish": true, "neutral": true}

	validIndustryTags = map[string]bool{
		"tech": true, "finance": true, "healthcare": true, "energy": true,
		"consumer": true, "industrial": true, "materials": true,
		"utilities": true, "realestate": true, "telecom": true,
	}

	validEventTags = map[string]bool{
		"earnings": true, "merger": true, "ipo": true, "regulatory": true,
		"executive": true, "product": true, "lawsuit": true, "dividend": true,
		"buyback": true, "guidance": true, "macro": true,
	}

	validEntityTypes = map[string]bool{"stock": true, "index": true, "macro": true}

	validTimeHorizons = map[string]bool{"short_term": true, "medium_term": true, "long_term": true}
	validMagnitudes   = map[string]bool{"high": true, "medium": true, "low": true}
)

const (
	maxEntities          = 6
	maxTags              = 5
	maxContextChars      = 20000
	maxInvestmentSummary = 50
	minDetailedSummary   = 30

	defaultSentiment   = "neutral"
	defaultTimeHorizon = "medium_term"
	defaultMagnitude   = "medium"
)
