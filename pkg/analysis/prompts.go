package analysis

import (
	"fmt"
	"strings"
)

// analysisSystemPrompt is the shared analysis framework. It is identical for
// every article and every agent, carries the cache hint, and forms the first
// part of the shared prefix.
const analysisSystemPrompt = `You are a financial news analysis engine. Five specialist agents analyse the same article; you will be told which agent you are. Apply only your agent's instruction, but follow this shared framework.

## Entity rules
- An entity is a stock, an index, or a macro-economic subject (policy, rate, commodity, currency).
- Stock entities MUST be identified by their ticker symbol (e.g. AAPL, 0700.HK, 7203.T), never by company name alone.
- Each entity carries a relevance score in [0, 1]: 1.0 = the article is about this entity; below 0.3 = passing mention.
- Report at most 6 entities, highest relevance first.

## Sentiment rules
- Sentiment is the article's directional read for investors holding the primary entity: bullish, bearish, or neutral.
- Mixed or purely informational coverage is neutral.

## Taxonomies (closed vocabularies, use exactly these values)
- industry_tags: tech, finance, healthcare, energy, consumer, industrial, materials, utilities, realestate, telecom
- event_tags: earnings, merger, ipo, regulatory, executive, product, lawsuit, dividend, buyback, guidance, macro

## Quality rules
- Base every claim on the article text. Never invent figures.
- Summaries state what happened and why it matters for investors, no filler.
- All output is a single JSON object matching your agent's schema. No prose outside the JSON.`

// buildContextPrompt renders the shared USER message: the article context all
// five agents see. Full text is truncated to keep the prefix cacheable and
// bounded.
func buildContextPrompt(in Input) string {
	var b strings.Builder
	b.WriteString("Analyse the following article.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", in.Title)
	if in.Symbol != "" {
		fmt.Fprintf(&b, "Symbol: %s\n", in.Symbol)
	}
	if in.ImageInsights != "" {
		fmt.Fprintf(&b, "Image insights: %s\n", in.ImageInsights)
	}
	b.WriteString("\nFull text:\n")
	b.WriteString(truncateRunes(in.CleanedText, maxContextChars))
	return b.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// agentPrompts are the per-agent instructions appended after the shared
// prefix. Keys must cover every entry in agentNames.
var agentPrompts = map[agentName]string{
	agentEntity: `You are the entity extractor. Return:
{"entities": [{"entity": "<ticker or macro subject>", "type": "stock|index|macro", "score": <float 0-1>}]}
At most 6 entities, highest score first. Stock entities must be ticker symbols.`,

	agentSentiment: `You are the sentiment and tagging agent. Return:
{"sentiment": "bullish|bearish|neutral", "industry_tags": [...], "event_tags": [...]}
At most 5 tags per list, values strictly from the framework taxonomies.`,

	agentSummary: `You are the summary agent. Return:
{"investment_summary": "<one line, max 50 characters>", "detailed_summary": "<5 to 20 sentences>"}`,

	agentImpact: `You are the impact assessor. Return:
{"market_impact": "<one sentence>", "sector_impact": "<one sentence>", "stock_impact": "<one sentence>", "time_horizon": "short_term|medium_term|long_term", "impact_magnitude": "high|medium|low"}`,

	agentReport: `You are the report writer. Return:
{"analysis_report": "<markdown string>"}
The report must contain exactly these six sections, each starting with a "## " header:
## Key Takeaways
## Event Details
## Market Context
## Affected Entities
## Risks
## Outlook`,
}
