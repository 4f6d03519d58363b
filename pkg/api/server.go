// Package api exposes the admin HTTP surface: pipeline statistics, trace
// inspection, feed management, and monitor control. All /admin routes are
// behind static bearer-token auth; /health is open for orchestrators.
package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/pkg/dispatcher"
	"github.com/finsight/newsflow/pkg/models"
	"github.com/finsight/newsflow/pkg/queue"
	"github.com/finsight/newsflow/pkg/stats"
)

// feedManager is the feed CRUD surface consumed by the admin handlers.
type feedManager interface {
	CreateFeed(ctx context.Context, req models.CreateFeedRequest) (*ent.Feed, error)
	GetFeed(ctx context.Context, feedID string) (*ent.Feed, error)
	ListFeeds(ctx context.Context) ([]*ent.Feed, error)
	UpdateFeed(ctx context.Context, feedID string, req models.UpdateFeedRequest) (*ent.Feed, error)
	DeleteFeed(ctx context.Context, feedID string) error
}

// traceReader reads pipeline trace timelines and aggregates.
type traceReader interface {
	GetTimeline(ctx context.Context, articleID string) ([]*ent.PipelineTrace, error)
	WindowStats(ctx context.Context, since time.Time) ([]models.NodeStats, error)
	SearchTraces(ctx context.Context, filters models.TraceFilters) ([]*ent.PipelineTrace, int, error)
}

// statsReader reads the Redis counter snapshots.
type statsReader interface {
	FilterSnapshot(ctx context.Context) (map[string]int64, error)
	DailySnapshot(ctx context.Context, days int) ([]stats.DailyStats, error)
	ScoreSnapshot(ctx context.Context) (map[string]int64, error)
	Layer15Snapshot(ctx context.Context) (map[string]int64, error)
	PipelineSnapshot(ctx context.Context) (map[string]int64, error)
	TokenSnapshot(ctx context.Context) (map[string]map[string]int64, error)
	ResetFilterStats(ctx context.Context) error
}

// jobEnqueuer inserts pipeline jobs (trigger-monitor).
type jobEnqueuer interface {
	Enqueue(ctx context.Context, kind pipelinejob.Kind, payload map[string]interface{}) (string, error)
}

// monitorSource exposes the dispatcher's run status.
type monitorSource interface {
	Status() dispatcher.MonitorStatus
}

// poolHealthSource exposes worker pool health.
type poolHealthSource interface {
	Health() *queue.PoolHealth
}

// Deps bundles the collaborators the server needs.
type Deps struct {
	DB        *sql.DB
	Feeds     feedManager
	Traces    traceReader
	Stats     statsReader
	Jobs      jobEnqueuer
	Monitor   monitorSource
	Pool      poolHealthSource
	AuthToken string
}

// Server is the admin HTTP server.
type Server struct {
	deps Deps
}

// NewServer creates the admin API server.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)

	admin := r.Group("/admin", bearerAuth(s.deps.AuthToken))

	news := admin.Group("/news")
	news.GET("/filter-stats", s.filterStatsHandler)
	news.GET("/filter-stats/daily", s.filterStatsDailyHandler)
	news.GET("/layer15-stats", s.layer15StatsHandler)
	news.GET("/news-pipeline-stats", s.newsPipelineStatsHandler)
	news.POST("/filter-stats/reset", s.resetFilterStatsHandler)
	news.POST("/trigger-monitor", s.triggerMonitorHandler)
	news.GET("/monitor-status", s.monitorStatusHandler)

	pipeline := admin.Group("/pipeline")
	pipeline.GET("/article/:id", s.articleTimelineHandler)
	pipeline.GET("/stats", s.pipelineStatsHandler)
	pipeline.GET("/events", s.pipelineEventsHandler)

	feeds := admin.Group("/feeds")
	feeds.POST("", s.createFeedHandler)
	feeds.GET("", s.listFeedsHandler)
	feeds.GET("/:id", s.getFeedHandler)
	feeds.PUT("/:id", s.updateFeedHandler)
	feeds.DELETE("/:id", s.deleteFeedHandler)

	return r
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
