package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/ent/pipelinetrace"
	"github.com/finsight/newsflow/pkg/dispatcher"
	"github.com/finsight/newsflow/pkg/models"
	"github.com/finsight/newsflow/pkg/queue"
	"github.com/finsight/newsflow/pkg/services"
	"github.com/finsight/newsflow/pkg/stats"
)

const testToken = "test-admin-token"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeFeeds struct {
	feeds   map[string]*ent.Feed
	created *models.CreateFeedRequest
	err     error
}

func (f *fakeFeeds) CreateFeed(ctx context.Context, req models.CreateFeedRequest) (*ent.Feed, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = &req
	feed := &ent.Feed{ID: "feed-1", Route: req.Route, Name: req.Name, IntervalMinutes: 30, Enabled: true}
	return feed, nil
}

func (f *fakeFeeds) GetFeed(ctx context.Context, feedID string) (*ent.Feed, error) {
	if feed, ok := f.feeds[feedID]; ok {
		return feed, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeFeeds) ListFeeds(ctx context.Context) ([]*ent.Feed, error) {
	out := make([]*ent.Feed, 0, len(f.feeds))
	for _, feed := range f.feeds {
		out = append(out, feed)
	}
	return out, nil
}

func (f *fakeFeeds) UpdateFeed(ctx context.Context, feedID string, req models.UpdateFeedRequest) (*ent.Feed, error) {
	feed, ok := f.feeds[feedID]
	if !ok {
		return nil, services.ErrNotFound
	}
	if req.Name != nil {
		feed.Name = *req.Name
	}
	return feed, nil
}

func (f *fakeFeeds) DeleteFeed(ctx context.Context, feedID string) error {
	if _, ok := f.feeds[feedID]; !ok {
		return services.ErrNotFound
	}
	delete(f.feeds, feedID)
	return nil
}

type fakeTraces struct {
	timeline []*ent.PipelineTrace
	nodes    []models.NodeStats
	filters  models.TraceFilters
	total    int
}

func (f *fakeTraces) GetTimeline(ctx context.Context, articleID string) ([]*ent.PipelineTrace, error) {
	return f.timeline, nil
}

func (f *fakeTraces) WindowStats(ctx context.Context, since time.Time) ([]models.NodeStats, error) {
	return f.nodes, nil
}

func (f *fakeTraces) SearchTraces(ctx context.Context, filters models.TraceFilters) ([]*ent.PipelineTrace, int, error) {
	f.filters = filters
	return f.timeline, f.total, nil
}

type fakeJobs struct {
	kind pipelinejob.Kind
	err  error
}

func (f *fakeJobs) Enqueue(ctx context.Context, kind pipelinejob.Kind, payload map[string]interface{}) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.kind = kind
	return "job-123", nil
}

type fakeMonitor struct {
	status dispatcher.MonitorStatus
}

func (f *fakeMonitor) Status() dispatcher.MonitorStatus { return f.status }

type fakePool struct {
	health *queue.PoolHealth
}

func (f *fakePool) Health() *queue.PoolHealth { return f.health }

// newTestServer wires a server with fakes and a miniredis-backed tracker.
func newTestServer(t *testing.T) (*Server, *fakeFeeds, *fakeTraces, *fakeJobs, *stats.Tracker) {
	t.Helper()

	mr := miniredis.RunT(t)
	tracker := stats.NewTrackerWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	feeds := &fakeFeeds{feeds: map[string]*ent.Feed{
		"feed-1": {ID: "feed-1", Route: "https://example.com/rss", Name: "Example", IntervalMinutes: 30, Enabled: true},
	}}
	traces := &fakeTraces{
		timeline: []*ent.PipelineTrace{
			{ID: "t-1", ArticleID: "art-1", Layer: "layer1", Node: "score", Status: pipelinetrace.StatusSuccess, DurationMs: 420},
			{ID: "t-2", ArticleID: "art-1", Layer: "layer2", Node: "deep_filter", Status: pipelinetrace.StatusSuccess, DurationMs: 8000},
		},
		nodes: []models.NodeStats{{Layer: "layer2", Node: "embed", Success: 10, Error: 1, AvgDurationMS: 120}},
		total: 2,
	}
	jobs := &fakeJobs{}
	monitor := &fakeMonitor{status: dispatcher.MonitorStatus{Status: "idle"}}
	pool := &fakePool{health: &queue.PoolHealth{IsHealthy: true, TotalWorkers: 3}}

	srv := NewServer(Deps{
		Feeds:     feeds,
		Traces:    traces,
		Stats:     tracker,
		Jobs:      jobs,
		Monitor:   monitor,
		Pool:      pool,
		AuthToken: testToken,
	})
	return srv, feeds, traces, jobs, tracker
}

func doRequest(t *testing.T, srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestBearerAuth(t *testing.T) {
	srv, _, _, _, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/admin/feeds", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "missing token")

	w = doRequest(t, srv, http.MethodGet, "/admin/feeds", "wrong-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong token")

	w = doRequest(t, srv, http.MethodGet, "/admin/feeds", testToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerAuthUnconfiguredTokenClosesAPI(t *testing.T) {
	srv := NewServer(Deps{AuthToken: ""})
	w := doRequest(t, srv, http.MethodGet, "/admin/feeds", "anything", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthOpenAndDegraded(t *testing.T) {
	srv, _, _, _, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code, "health must not require auth")
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])

	srv.deps.Pool = &fakePool{health: &queue.PoolHealth{IsHealthy: false}}
	w = doRequest(t, srv, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "degraded", body["status"])
}

func TestFilterStats(t *testing.T) {
	srv, _, _, _, tracker := newTestServer(t)
	ctx := context.Background()

	tracker.TrackFilterBatch(ctx, 2, 5, 3)
	tracker.TrackLayer15(ctx, "fine_keep")
	tracker.TrackLayer15(ctx, "fine_keep")
	tracker.TrackLayer15(ctx, "fine_delete")
	tracker.TrackTokens(ctx, "layer1_scoring", 1_000_000, 100_000, 500_000)

	w := doRequest(t, srv, http.MethodGet, "/admin/news/filter-stats", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	filter := body["filter"].(map[string]interface{})
	assert.Equal(t, float64(10), filter["articles"])
	assert.Equal(t, float64(2), filter["layer1_full_analysis"])

	rates := body["rates"].(map[string]interface{})
	assert.InDelta(t, 0.2, rates["layer1_full_analysis"], 1e-9)
	assert.InDelta(t, 0.3, rates["layer1_discard"], 1e-9)
	assert.InDelta(t, 2.0/3.0, rates["fine_keep"], 1e-9)

	// 0.5M uncached prompt + 0.1M completion + 0.5M cached
	costs := body["estimated_cost_usd"].(map[string]interface{})
	assert.InDelta(t, 0.5*3.0+0.1*15.0+0.5*0.3, costs["layer1_scoring"], 1e-6)
	assert.Greater(t, body["total_cost_usd"], 0.0)
}

func TestResetFilterStats(t *testing.T) {
	srv, _, _, _, tracker := newTestServer(t)
	ctx := context.Background()
	tracker.TrackFilterBatch(ctx, 2, 5, 3)

	w := doRequest(t, srv, http.MethodPost, "/admin/news/filter-stats/reset", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	snap, err := tracker.FilterSnapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, snap["articles"])
}

func TestFilterStatsDaily(t *testing.T) {
	srv, _, _, _, tracker := newTestServer(t)
	tracker.TrackFilterBatch(context.Background(), 1, 1, 1)

	w := doRequest(t, srv, http.MethodGet, "/admin/news/filter-stats/daily?days=3", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["days"])
	assert.Len(t, body["daily"], 3)
}

func TestLayer15Stats(t *testing.T) {
	srv, _, _, _, tracker := newTestServer(t)
	ctx := context.Background()
	tracker.TrackPipeline(ctx, "fetched", 7)
	tracker.TrackPipeline(ctx, "fetch_failed", 2)
	tracker.TrackLayer15(ctx, "keep")

	w := doRequest(t, srv, http.MethodGet, "/admin/news/layer15-stats", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	fetch := body["fetch"].(map[string]interface{})
	assert.Equal(t, float64(7), fetch["fetched"])
	assert.Equal(t, float64(2), fetch["fetch_failed"])
	cleaning := body["cleaning"].(map[string]interface{})
	assert.Equal(t, float64(1), cleaning["keep"])
}

func TestNewsPipelineStats(t *testing.T) {
	srv, _, _, _, tracker := newTestServer(t)
	ctx := context.Background()
	tracker.TrackFilterBatch(ctx, 4, 3, 2)
	tracker.TrackCriticalFastpath(ctx)
	tracker.TrackScore(ctx, 210)
	tracker.TrackScore(ctx, 212)
	tracker.TrackScore(ctx, 80)
	tracker.TrackTokens(ctx, "layer1_scoring", 1000, 100, 800)

	w := doRequest(t, srv, http.MethodGet, "/admin/news/news-pipeline-stats?days=14", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	routing := body["routing"].(map[string]interface{})
	assert.Equal(t, float64(4), routing["layer1_full_analysis"])
	assert.Equal(t, float64(3), routing["layer1_lightweight"])
	assert.Equal(t, float64(2), routing["layer1_discard"])
	assert.Equal(t, float64(1), routing["layer1_critical_event"])

	scores := body["score_distribution"].(map[string]interface{})
	assert.Equal(t, float64(2), scores["200-249"])
	assert.Equal(t, float64(1), scores["50-99"])

	cache := body["cache"].(map[string]interface{})
	assert.InDelta(t, 0.8, cache["overall_hit_rate"], 1e-9)
	hitRates := cache["hit_rates"].(map[string]interface{})
	assert.InDelta(t, 0.8, hitRates["layer1_scoring"], 1e-9)

	nodes := body["nodes"].([]interface{})
	require.Len(t, nodes, 1)
}

func TestArticleTimeline(t *testing.T) {
	srv, _, _, _, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/admin/pipeline/article/art-1", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "art-1", body["article_id"])
	events := body["events"].([]interface{})
	require.Len(t, events, 2)
	first := events[0].(map[string]interface{})
	assert.Equal(t, "score", first["node"])
	assert.Equal(t, "success", first["status"])
}

func TestPipelineEventsPlumbsFilters(t *testing.T) {
	srv, _, traces, _, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet,
		"/admin/pipeline/events?layer=layer2&node=embed&status=error&days=3&limit=10&offset=20",
		testToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "layer2", traces.filters.Layer)
	assert.Equal(t, "embed", traces.filters.Node)
	assert.Equal(t, "error", traces.filters.Status)
	assert.Equal(t, 10, traces.filters.Limit)
	assert.Equal(t, 20, traces.filters.Offset)
	require.NotNil(t, traces.filters.Since)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total"])
}

func TestTriggerMonitor(t *testing.T) {
	srv, _, _, jobs, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodPost, "/admin/news/trigger-monitor", testToken, "")
	require.Equal(t, http.StatusAccepted, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "job-123", body["job_id"])
	assert.Equal(t, pipelinejob.KindMonitor, jobs.kind)
}

func TestMonitorStatus(t *testing.T) {
	srv, _, _, _, _ := newTestServer(t)
	srv.deps.Monitor = &fakeMonitor{status: dispatcher.MonitorStatus{
		Status:   "running",
		Progress: &dispatcher.Progress{Stage: "polling", Percent: 40},
	}}

	w := doRequest(t, srv, http.MethodGet, "/admin/news/monitor-status", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "running", body["status"])
	progress := body["progress"].(map[string]interface{})
	assert.Equal(t, "polling", progress["stage"])
}

func TestFeedCRUD(t *testing.T) {
	srv, feeds, _, _, _ := newTestServer(t)

	// Create
	w := doRequest(t, srv, http.MethodPost, "/admin/feeds", testToken,
		`{"route":"https://example.com/new.rss","name":"New Feed","interval_minutes":15}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, feeds.created)
	assert.Equal(t, "https://example.com/new.rss", feeds.created.Route)

	// Get existing
	w = doRequest(t, srv, http.MethodGet, "/admin/feeds/feed-1", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "https://example.com/rss", body["route"])

	// Get missing
	w = doRequest(t, srv, http.MethodGet, "/admin/feeds/nope", testToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Update
	w = doRequest(t, srv, http.MethodPut, "/admin/feeds/feed-1", testToken, `{"name":"Renamed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Renamed", body["name"])

	// Delete
	w = doRequest(t, srv, http.MethodDelete, "/admin/feeds/feed-1", testToken, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doRequest(t, srv, http.MethodGet, "/admin/feeds/feed-1", testToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateFeedValidationError(t *testing.T) {
	srv, feeds, _, _, _ := newTestServer(t)
	feeds.err = services.NewValidationError("route", "route is required")

	w := doRequest(t, srv, http.MethodPost, "/admin/feeds", testToken, `{"name":"No Route"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
