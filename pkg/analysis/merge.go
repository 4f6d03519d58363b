package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/finsight/newsflow/pkg/models"
)

// analysisDefaults is the merge base: what an article ends up with when an
// agent is missing or malformed. Slices are non-nil so the persisted JSON is
// [] rather than null.
func analysisDefaults() models.AnalysisResult {
	return models.AnalysisResult{
		RelatedEntities: []map[string]any{},
		IndustryTags:    []string{},
		EventTags:       []string{},
		SentimentTag:    defaultSentiment,
	}
}

// tickerPattern accepts exchange-style identifiers: AAPL, BRK.B, 0700.HK.
var tickerPattern = regexp.MustCompile(`^[A-Z0-9]{1,6}([.\-][A-Z0-9]{1,4})?$`)

// applyEntityOutput parses the entity extractor's JSON and fills the entity
// fields. Invalid entries are filtered, the list is capped and re-sorted by
// score so the primary entity is deterministic.
func applyEntityOutput(r *Result, content string) error {
	var decoded struct {
		Entities []struct {
			Entity string  `json:"entity"`
			Type   string  `json:"type"`
			Score  float64 `json:"score"`
		} `json:"entities"`
	}
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &decoded); err != nil {
		return fmt.Errorf("entity agent: %w", err)
	}

	kept := make([]map[string]any, 0, len(decoded.Entities))
	for _, e := range decoded.Entities {
		name := strings.TrimSpace(e.Entity)
		if name == "" || !validEntityTypes[e.Type] || e.Score < 0 || e.Score > 1 {
			continue
		}
		if e.Type == "stock" && !tickerPattern.MatchString(name) {
			continue
		}
		kept = append(kept, map[string]any{"entity": name, "type": e.Type, "score": e.Score})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i]["score"].(float64) > kept[j]["score"].(float64)
	})
	if len(kept) > maxEntities {
		kept = kept[:maxEntities]
	}

	r.Analysis.RelatedEntities = kept
	for _, e := range kept {
		switch e["type"].(string) {
		case "stock", "index":
			r.Analysis.HasStockEntity = true
		case "macro":
			r.Analysis.HasMacroEntity = true
		}
		if s := e["score"].(float64); s > r.Analysis.MaxEntityScore {
			r.Analysis.MaxEntityScore = s
		}
	}
	if len(kept) > 0 {
		r.Analysis.PrimaryEntity = kept[0]["entity"].(string)
	}
	return nil
}

// applySentimentOutput parses sentiment + tags. Unknown tag values are
// dropped rather than failing the agent.
func applySentimentOutput(r *Result, content string) error {
	var decoded struct {
		Sentiment    string   `json:"sentiment"`
		IndustryTags []string `json:"industry_tags"`
		EventTags    []string `json:"event_tags"`
	}
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &decoded); err != nil {
		return fmt.Errorf("sentiment agent: %w", err)
	}

	if validSentiments[decoded.Sentiment] {
		r.Analysis.SentimentTag = decoded.Sentiment
	}
	r.Analysis.IndustryTags = filterTags(decoded.IndustryTags, validIndustryTags)
	r.Analysis.EventTags = filterTags(decoded.EventTags, validEventTags)
	return nil
}

func filterTags(tags []string, valid map[string]bool) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if !valid[t] || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

// applySummaryOutput parses the two summaries. The one-liner is truncated to
// its budget; a detailed summary below the minimum length is cleared so a
// truncated or refused response never masquerades as analysis.
func applySummaryOutput(r *Result, content string) error {
	var decoded struct {
		InvestmentSummary string `json:"investment_summary"`
		DetailedSummary   string `json:"detailed_summary"`
	}
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &decoded); err != nil {
		return fmt.Errorf("summary agent: %w", err)
	}

	r.Analysis.InvestmentSummary = truncateRunes(strings.TrimSpace(decoded.InvestmentSummary), maxInvestmentSummary)
	detailed := strings.TrimSpace(decoded.DetailedSummary)
	if len([]rune(detailed)) >= minDetailedSummary {
		r.Analysis.DetailedSummary = detailed
	}
	return nil
}

func applyImpactOutput(r *Result, content string) error {
	var decoded Impact
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &decoded); err != nil {
		return fmt.Errorf("impact agent: %w", err)
	}

	if !validTimeHorizons[decoded.TimeHorizon] {
		decoded.TimeHorizon = defaultTimeHorizon
	}
	if !validMagnitudes[decoded.ImpactMagnitude] {
		decoded.ImpactMagnitude = defaultMagnitude
	}
	r.Impact = decoded
	return nil
}

// applyReportOutput handles the report writer's known quirks: the field may
// arrive as a markdown string, as a nested object of sections, or the whole
// response may be raw markdown with no JSON wrapper at all.
func applyReportOutput(r *Result, content string) error {
	raw := stripJSONFences(content)

	var decoded struct {
		AnalysisReport json.RawMessage `json:"analysis_report"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil && len(decoded.AnalysisReport) > 0 {
		var asString string
		if json.Unmarshal(decoded.AnalysisReport, &asString) == nil {
			r.Analysis.AnalysisReport = recoverMarkdown(asString)
			return nil
		}
		var asDict map[string]string
		if json.Unmarshal(decoded.AnalysisReport, &asDict) == nil {
			r.Analysis.AnalysisReport = dictToMarkdown(asDict)
			return nil
		}
		return fmt.Errorf("report agent: analysis_report is neither string nor object")
	}

	// No JSON wrapper: treat the response as raw markdown.
	r.Analysis.AnalysisReport = recoverMarkdown(raw)
	return nil
}

// recoverMarkdown drops any preamble before the first section header. A
// report with no headers is cleared: downstream rendering keys on sections.
func recoverMarkdown(s string) string {
	if strings.HasPrefix(s, "## ") {
		return strings.TrimSpace(s)
	}
	if i := strings.Index(s, "\n## "); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return ""
}

// dictToMarkdown renders a section map into markdown, keys sorted for
// stable output.
func dictToMarkdown(sections map[string]string) string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		body := strings.TrimSpace(sections[k])
		if body == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", strings.TrimPrefix(strings.TrimSpace(k), "## "), body)
	}
	return strings.TrimSpace(b.String())
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
