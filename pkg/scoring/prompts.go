package scoring

import (
	"fmt"
	"strings"
)

// scoringSystemPrompt holds the full tier rubric for all three perspectives.
// It is identical for every batch and every agent, so it carries the
// cache_control hint and forms the first part of the shared cached prefix.
const scoringSystemPrompt = `You are a financial news triage engine. Three independent perspectives score each article. You will be told which perspective you are; score ONLY from that perspective, using its tier rubric.

## Perspective: macro (macro-economic importance)
- extreme (90-100): war, sovereign default, currency collapse, emergency central-bank action
- major (70-89): rate decisions, major fiscal policy, systemic banking stress
- important (50-69): inflation/employment data, trade policy, notable central-bank commentary
- general (30-49): routine economic releases, regional policy news
- marginal (10-29): minor indicators, local economic items
- irrelevant (0-9): no macro-economic content

## Perspective: market (trading and capital-market impact)
- extreme (90-100): index-moving events, trading halts, major M&A over $10B
- major (70-89): large-cap earnings surprises, sector-wide moves, major guidance changes
- important (50-69): notable earnings, analyst actions on large caps, IPOs
- general (30-49): small/mid-cap company news, routine corporate actions
- marginal (10-29): minor corporate updates, personnel changes
- irrelevant (0-9): no tradable impact

## Perspective: signal (information quality)
- extreme (90-100): primary-source disclosure, verified breaking news
- major (70-89): detailed reporting with named sources and data
- important (50-69): solid reporting, some verifiable specifics
- general (30-49): aggregated or derivative coverage
- marginal (10-29): speculation, thin sourcing, opinion
- irrelevant (0-9): promotional content, rumor, clickbait

## Output format
Return ONLY a JSON object keyed by the article's 1-based index:
{"1": {"tier": "<tier name>", "score": <int inside tier range>, "reason": "<max 20 chars>"}, ...}
Every article in the batch must appear exactly once. No prose outside the JSON.`

// buildBatchPrompt renders the shared USER message holding the batch text.
// Identical across the three agent calls; carries the cache_control hint.
func buildBatchPrompt(items []Item) string {
	var b strings.Builder
	b.WriteString("Score each of the following articles.\n\n")
	for i, item := range items {
		fmt.Fprintf(&b, "### Article %d\n", i+1)
		fmt.Fprintf(&b, "Title: %s\n", item.Title)
		if item.Symbol != "" {
			fmt.Fprintf(&b, "Symbol: %s\n", item.Symbol)
		}
		if item.Source != "" {
			fmt.Fprintf(&b, "Source: %s\n", item.Source)
		}
		if item.Summary != "" {
			fmt.Fprintf(&b, "Summary: %s\n", item.Summary)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// perspectivePrompt is the only per-agent content; it is appended after the
// shared prefix so the provider can serve the prefix from cache.
func perspectivePrompt(p Perspective) string {
	return fmt.Sprintf("You are the %s perspective. Score every article above from the %s rubric only, and return the JSON object.", p, p)
}
