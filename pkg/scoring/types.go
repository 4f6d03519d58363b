// Package scoring implements the Layer-1 triage stage: every candidate
// article is scored 0-300 by three perspective agents sharing one cached
// prompt prefix, then routed to discard, lightweight, or full analysis.
package scoring

// Item is the minimal article view the scorer needs.
type Item struct {
	ArticleID string
	URL       string
	Source    string
	Title     string
	Summary   string
	Symbol    string
	Market    string
}

// Perspective identifies one scoring agent.
type Perspective string

// The three scoring perspectives.
const (
	PerspectiveMacro  Perspective = "macro"
	PerspectiveMarket Perspective = "market"
	PerspectiveSignal Perspective = "signal"
)

var perspectives = []Perspective{PerspectiveMacro, PerspectiveMarket, PerspectiveSignal}

// AgentScore is one perspective's verdict on one article.
type AgentScore struct {
	Agent  Perspective `json:"agent"`
	Tier   string      `json:"tier"`
	Score  int         `json:"score"`
	Reason string      `json:"reason,omitempty"`
}

// Routing is the Layer-1 decision for an article.
type Routing string

// Routing decisions in ascending order of downstream cost.
const (
	RoutingDiscard      Routing = "discard"
	RoutingLightweight  Routing = "lightweight"
	RoutingFullAnalysis Routing = "full_analysis"
)

// ScoreResult is the per-article Layer-1 output, in input order.
type ScoreResult struct {
	ArticleID  string       `json:"article_id"`
	URL        string       `json:"url"`
	Agents     []AgentScore `json:"agents"`
	Total      int          `json:"total"`
	Routing    Routing      `json:"routing"`
	IsCritical bool         `json:"is_critical"`
	Rationale  string       `json:"rationale,omitempty"`
}

// Synthetic tiers used outside the rubric.
const (
	tierCriticalEvent = "critical_event"
	tierError         = "error"
)

// defaultAgentScore is the fail-open score when an agent errors or returns
// unparseable output. 50 lands squarely in the uncertain band so a broken
// agent can neither discard nor promote on its own.
const defaultAgentScore = 50
