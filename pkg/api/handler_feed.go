package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/pkg/models"
)

// FeedResponse is the admin-facing feed shape.
type FeedResponse struct {
	ID                string     `json:"id"`
	Route             string     `json:"route"`
	Name              string     `json:"name,omitempty"`
	Category          string     `json:"category,omitempty"`
	IntervalMinutes   int        `json:"interval_minutes"`
	Fulltext          bool       `json:"fulltext"`
	Enabled           bool       `json:"enabled"`
	LastPollAt        *time.Time `json:"last_poll_at,omitempty"`
	ConsecutiveErrors int        `json:"consecutive_errors"`
	ArticleCount      int        `json:"article_count"`
	CreatedAt         time.Time  `json:"created_at"`
}

func feedResponse(f *ent.Feed) FeedResponse {
	return FeedResponse{
		ID:                f.ID,
		Route:             f.Route,
		Name:              f.Name,
		Category:          f.Category,
		IntervalMinutes:   f.IntervalMinutes,
		Fulltext:          f.Fulltext,
		Enabled:           f.Enabled,
		LastPollAt:        f.LastPollAt,
		ConsecutiveErrors: f.ConsecutiveErrors,
		ArticleCount:      f.ArticleCount,
		CreatedAt:         f.CreatedAt,
	}
}

// createFeedHandler handles POST /admin/feeds.
func (s *Server) createFeedHandler(c *gin.Context) {
	var req models.CreateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed, err := s.deps.Feeds.CreateFeed(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedResponse(feed))
}

// listFeedsHandler handles GET /admin/feeds.
func (s *Server) listFeedsHandler(c *gin.Context) {
	feeds, err := s.deps.Feeds.ListFeeds(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]FeedResponse, len(feeds))
	for i, f := range feeds {
		out[i] = feedResponse(f)
	}
	c.JSON(http.StatusOK, gin.H{"feeds": out})
}

// getFeedHandler handles GET /admin/feeds/:id.
func (s *Server) getFeedHandler(c *gin.Context) {
	feed, err := s.deps.Feeds.GetFeed(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedResponse(feed))
}

// updateFeedHandler handles PUT /admin/feeds/:id.
func (s *Server) updateFeedHandler(c *gin.Context) {
	var req models.UpdateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed, err := s.deps.Feeds.UpdateFeed(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedResponse(feed))
}

// deleteFeedHandler handles DELETE /admin/feeds/:id.
func (s *Server) deleteFeedHandler(c *gin.Context) {
	if err := s.deps.Feeds.DeleteFeed(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
