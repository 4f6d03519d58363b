package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/pkg/models"
)

// TraceEventResponse is one trace row in API responses.
type TraceEventResponse struct {
	ID         string                 `json:"id"`
	ArticleID  string                 `json:"article_id"`
	Layer      string                 `json:"layer"`
	Node       string                 `json:"node"`
	Status     string                 `json:"status"`
	DurationMS int                    `json:"duration_ms"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Error      string                 `json:"error,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

func traceResponse(t *ent.PipelineTrace) TraceEventResponse {
	return TraceEventResponse{
		ID:         t.ID,
		ArticleID:  t.ArticleID,
		Layer:      t.Layer,
		Node:       t.Node,
		Status:     string(t.Status),
		DurationMS: t.DurationMs,
		Metadata:   t.Metadata,
		Error:      t.Error,
		CreatedAt:  t.CreatedAt,
	}
}

// articleTimelineHandler handles GET /admin/pipeline/article/:id — the
// ordered trace timeline for one article.
func (s *Server) articleTimelineHandler(c *gin.Context) {
	articleID := c.Param("id")
	if articleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article id is required"})
		return
	}

	traces, err := s.deps.Traces.GetTimeline(c.Request.Context(), articleID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	events := make([]TraceEventResponse, len(traces))
	for i, t := range traces {
		events[i] = traceResponse(t)
	}
	c.JSON(http.StatusOK, gin.H{"article_id": articleID, "events": events})
}

// pipelineStatsHandler handles GET /admin/pipeline/stats?days=N — per
// (layer, node) success/error counts and latency summaries.
func (s *Server) pipelineStatsHandler(c *gin.Context) {
	days := intQuery(c, "days", 7, 1, 90)

	nodes, err := s.deps.Traces.WindowStats(c.Request.Context(), daysAgo(days))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "nodes": nodes})
}

// pipelineEventsHandler handles GET /admin/pipeline/events — filtered,
// paginated trace search.
func (s *Server) pipelineEventsHandler(c *gin.Context) {
	days := intQuery(c, "days", 7, 1, 90)
	since := daysAgo(days)
	filters := models.TraceFilters{
		ArticleID: c.Query("article_id"),
		Layer:     c.Query("layer"),
		Node:      c.Query("node"),
		Status:    c.Query("status"),
		Since:     &since,
		Limit:     intQuery(c, "limit", 50, 1, 500),
		Offset:    intQuery(c, "offset", 0, 0, 1<<20),
	}

	traces, total, err := s.deps.Traces.SearchTraces(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	events := make([]TraceEventResponse, len(traces))
	for i, t := range traces {
		events[i] = traceResponse(t)
	}
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  total,
		"limit":  filters.Limit,
		"offset": filters.Offset,
	})
}

func daysAgo(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -days)
}
