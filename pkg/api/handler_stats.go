package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finsight/newsflow/pkg/stats"
)

// Rough per-million-token prices used for the admin cost estimate. These are
// estimates for dashboards, not billing.
const (
	promptCostPerMTok     = 3.0
	completionCostPerMTok = 15.0
	cachedCostPerMTok     = 0.3
)

// FilterStatsResponse is returned by GET /admin/news/filter-stats.
type FilterStatsResponse struct {
	Filter           map[string]int64            `json:"filter"`
	Cleaning         map[string]int64            `json:"cleaning"`
	Pipeline         map[string]int64            `json:"pipeline"`
	Tokens           map[string]map[string]int64 `json:"tokens"`
	Rates            map[string]float64          `json:"rates"`
	EstimatedCostUSD map[string]float64          `json:"estimated_cost_usd"`
	TotalCostUSD     float64                     `json:"total_cost_usd"`
}

// filterStatsHandler handles GET /admin/news/filter-stats.
func (s *Server) filterStatsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	filter, err := s.deps.Stats.FilterSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}
	cleaning, err := s.deps.Stats.Layer15Snapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}
	pipeline, err := s.deps.Stats.PipelineSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}
	tokens, err := s.deps.Stats.TokenSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}

	costs, total := estimateCosts(tokens)
	c.JSON(http.StatusOK, FilterStatsResponse{
		Filter:           filter,
		Cleaning:         cleaning,
		Pipeline:         pipeline,
		Tokens:           tokens,
		Rates:            passThroughRates(filter, cleaning),
		EstimatedCostUSD: costs,
		TotalCostUSD:     total,
	})
}

// filterStatsDailyHandler handles GET /admin/news/filter-stats/daily?days=N.
func (s *Server) filterStatsDailyHandler(c *gin.Context) {
	days := intQuery(c, "days", 7, 1, 35)

	daily, err := s.deps.Stats.DailySnapshot(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "daily": daily})
}

// resetFilterStatsHandler handles POST /admin/news/filter-stats/reset. Daily
// buckets are left alone; only the running totals are cleared.
func (s *Server) resetFilterStatsHandler(c *gin.Context) {
	if err := s.deps.Stats.ResetFilterStats(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// layer15StatsHandler handles GET /admin/news/layer15-stats: fetch outcomes
// and cleaning decisions.
func (s *Server) layer15StatsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	cleaning, err := s.deps.Stats.Layer15Snapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}
	pipeline, err := s.deps.Stats.PipelineSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}

	fetch := map[string]int64{
		"fetched":         pipeline["fetched"],
		"fetched_partial": pipeline["fetched_partial"],
		"fetch_failed":    pipeline["fetch_failed"],
	}
	c.JSON(http.StatusOK, gin.H{
		"fetch":    fetch,
		"cleaning": cleaning,
	})
}

// newsPipelineStatsHandler handles GET /admin/news/news-pipeline-stats?days=N:
// routing counts, token totals per purpose, and per-node latency summaries.
func (s *Server) newsPipelineStatsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	days := intQuery(c, "days", 7, 1, 90)

	filter, err := s.deps.Stats.FilterSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}
	pipeline, err := s.deps.Stats.PipelineSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}
	tokens, err := s.deps.Stats.TokenSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}

	nodes, err := s.deps.Traces.WindowStats(ctx, daysAgo(days))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	scores, err := s.deps.Stats.ScoreSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stats backend unavailable"})
		return
	}

	routing := map[string]int64{
		stats.FieldDiscard:       filter[stats.FieldDiscard],
		stats.FieldLightweight:   filter[stats.FieldLightweight],
		stats.FieldFullAnalysis:  filter[stats.FieldFullAnalysis],
		stats.FieldCriticalEvent: filter[stats.FieldCriticalEvent],
		stats.FieldErrors:        filter[stats.FieldErrors],
	}
	c.JSON(http.StatusOK, gin.H{
		"days":               days,
		"routing":            routing,
		"score_distribution": scores,
		"cache":              cacheHitStats(tokens),
		"pipeline":           pipeline,
		"tokens":             tokens,
		"nodes":              nodes,
	})
}

// passThroughRates derives stage pass rates from raw counters.
func passThroughRates(filter, cleaning map[string]int64) map[string]float64 {
	rates := make(map[string]float64)

	if articles := filter[stats.FieldArticles]; articles > 0 {
		rates[stats.FieldFullAnalysis] = float64(filter[stats.FieldFullAnalysis]) / float64(articles)
		rates[stats.FieldLightweight] = float64(filter[stats.FieldLightweight]) / float64(articles)
		rates[stats.FieldDiscard] = float64(filter[stats.FieldDiscard]) / float64(articles)
	}
	if fine := cleaning["fine_keep"] + cleaning["fine_delete"]; fine > 0 {
		rates["fine_keep"] = float64(cleaning["fine_keep"]) / float64(fine)
	}
	if legacy := cleaning["keep"] + cleaning["delete"]; legacy > 0 {
		rates["keep"] = float64(cleaning["keep"]) / float64(legacy)
	}
	return rates
}

// cacheHitStats derives per-purpose and overall prompt-cache hit rates from
// the token counters.
func cacheHitStats(tokens map[string]map[string]int64) map[string]any {
	perPurpose := make(map[string]float64, len(tokens))
	var prompt, cached int64
	for purpose, counters := range tokens {
		prompt += counters["prompt_tokens"]
		cached += counters["cached_tokens"]
		if counters["prompt_tokens"] > 0 {
			perPurpose[purpose] = float64(counters["cached_tokens"]) / float64(counters["prompt_tokens"])
		}
	}

	out := map[string]any{
		"cached_tokens": cached,
		"prompt_tokens": prompt,
		"hit_rates":     perPurpose,
	}
	if prompt > 0 {
		out["overall_hit_rate"] = float64(cached) / float64(prompt)
	}
	return out
}

// estimateCosts converts token counters to a rough USD estimate per purpose.
func estimateCosts(tokens map[string]map[string]int64) (map[string]float64, float64) {
	costs := make(map[string]float64, len(tokens))
	var total float64
	for purpose, counters := range tokens {
		prompt := counters["prompt_tokens"] - counters["cached_tokens"]
		if prompt < 0 {
			prompt = 0
		}
		cost := float64(prompt)/1e6*promptCostPerMTok +
			float64(counters["completion_tokens"])/1e6*completionCostPerMTok +
			float64(counters["cached_tokens"])/1e6*cachedCostPerMTok
		costs[purpose] = cost
		total += cost
	}
	return costs, total
}

// intQuery parses a bounded integer query parameter with a default.
func intQuery(c *gin.Context, name string, def, min, max int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return def
	}
	if v > max {
		return max
	}
	return v
}
