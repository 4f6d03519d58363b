package scoring

import "strings"

// criticalKeywords trip the fast-path: a match in title+summary promotes the
// article straight to full analysis without any LLM call. Grouped by event
// class; matching is case-insensitive substring.
var criticalKeywords = []string{
	// War / geopolitical conflict
	"declares war", "military strike", "missile attack", "invasion of",
	"armed conflict", "nuclear threat",

	// Central-bank emergency action
	"emergency rate", "emergency meeting", "unscheduled rate",
	"intervenes in currency", "currency intervention", "capital controls",

	// Bankruptcy / default
	"files for bankruptcy", "chapter 11", "declares bankruptcy",
	"defaults on debt", "debt default", "insolvency",

	// Fraud / accounting scandal
	"accounting fraud", "securities fraud", "ponzi scheme",
	"embezzlement", "financial misconduct",

	// Major regulatory events
	"trading halted", "trading suspension", "delisting",
	"sec charges", "antitrust lawsuit", "banned from trading",

	// Macro shock
	"market crash", "flash crash", "circuit breaker",
	"bank run", "bank collapse", "sovereign default", "hyperinflation",
}

// isCritical reports whether the article's title or summary contains any
// critical-event keyword.
func isCritical(item Item) bool {
	haystack := strings.ToLower(item.Title + " " + item.Summary)
	for _, kw := range criticalKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
