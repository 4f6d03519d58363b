package services

import (
	"context"
	"testing"
	"time"

	"github.com/finsight/newsflow/pkg/models"
	testdb "github.com/finsight/newsflow/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTraceArticle(t *testing.T, service *ArticleService) string {
	t.Helper()
	req := newArticleRequest()
	_, err := service.CreateFromFeedItem(context.Background(), req)
	require.NoError(t, err)
	return req.ArticleID
}

func TestTraceService_RecordAndTimeline(t *testing.T) {
	client := testdb.NewTestClient(t)
	articles := NewArticleService(client.Client)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	articleID := createTraceArticle(t, articles)

	base := time.Now().Add(-time.Minute)
	events := []models.TraceEvent{
		{
			ArticleID:  articleID,
			Layer:      models.TraceLayerLayer2,
			Node:       "read_file",
			Status:     models.TraceStatusSuccess,
			DurationMS: 4,
			OccurredAt: base,
		},
		{
			ArticleID:  articleID,
			Layer:      models.TraceLayerLayer2,
			Node:       "deep_filter",
			Status:     models.TraceStatusSuccess,
			DurationMS: 1200,
			Metadata:   map[string]any{"agents": 5},
			OccurredAt: base.Add(2 * time.Second),
		},
		{
			ArticleID:  articleID,
			Layer:      models.TraceLayerEmbed,
			Node:       "embed",
			Status:     models.TraceStatusError,
			DurationMS: 300,
			Error:      "embeddings endpoint unavailable",
			OccurredAt: base.Add(4 * time.Second),
		},
	}
	require.NoError(t, service.RecordMany(ctx, events))

	timeline, err := service.GetTimeline(ctx, articleID)
	require.NoError(t, err)
	require.Len(t, timeline, 3)
	assert.Equal(t, "read_file", timeline[0].Node)
	assert.Equal(t, "deep_filter", timeline[1].Node)
	assert.Equal(t, "embed", timeline[2].Node)
	assert.Equal(t, "embeddings endpoint unavailable", timeline[2].Error)
	require.NotNil(t, timeline[1].Metadata)
}

func TestTraceService_TruncatesLongErrors(t *testing.T) {
	client := testdb.NewTestClient(t)
	articles := NewArticleService(client.Client)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	articleID := createTraceArticle(t, articles)

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'e'
	}
	require.NoError(t, service.Record(ctx, models.TraceEvent{
		ArticleID: articleID,
		Layer:     models.TraceLayerFetch,
		Node:      "fetch",
		Status:    models.TraceStatusError,
		Error:     string(long),
	}))

	timeline, err := service.GetTimeline(ctx, articleID)
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	assert.Len(t, timeline[0].Error, 200)
}

func TestTraceService_WindowStats(t *testing.T) {
	client := testdb.NewTestClient(t)
	articles := NewArticleService(client.Client)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	articleID := createTraceArticle(t, articles)

	events := []models.TraceEvent{
		{ArticleID: articleID, Layer: "layer1", Node: "score_batch", Status: models.TraceStatusSuccess, DurationMS: 100},
		{ArticleID: articleID, Layer: "layer1", Node: "score_batch", Status: models.TraceStatusSuccess, DurationMS: 300},
		{ArticleID: articleID, Layer: "layer1", Node: "score_batch", Status: models.TraceStatusError, DurationMS: 50},
		{ArticleID: articleID, Layer: "layer2", Node: "deep_filter", Status: models.TraceStatusSkip, DurationMS: 0},
	}
	require.NoError(t, service.RecordMany(ctx, events))

	stats, err := service.WindowStats(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	byNode := make(map[string]models.NodeStats, len(stats))
	for _, s := range stats {
		byNode[s.Layer+"/"+s.Node] = s
	}

	score := byNode["layer1/score_batch"]
	assert.Equal(t, 2, score.Success)
	assert.Equal(t, 1, score.Error)
	assert.InDelta(t, 150.0, score.AvgDurationMS, 0.001)

	filter := byNode["layer2/deep_filter"]
	assert.Equal(t, 1, filter.Skip)
}

func TestTraceService_SearchTraces(t *testing.T) {
	client := testdb.NewTestClient(t)
	articles := NewArticleService(client.Client)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	articleID := createTraceArticle(t, articles)

	for range 5 {
		require.NoError(t, service.Record(ctx, models.TraceEvent{
			ArticleID: articleID,
			Layer:     "layer1",
			Node:      "score_batch",
			Status:    models.TraceStatusSuccess,
		}))
	}
	require.NoError(t, service.Record(ctx, models.TraceEvent{
		ArticleID: articleID,
		Layer:     "layer2",
		Node:      "deep_filter",
		Status:    models.TraceStatusError,
	}))

	traces, total, err := service.SearchTraces(ctx, models.TraceFilters{
		Status: models.TraceStatusError,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, traces, 1)
	assert.Equal(t, "deep_filter", traces[0].Node)

	traces, total, err = service.SearchTraces(ctx, models.TraceFilters{
		ArticleID: articleID,
		Limit:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, traces, 3)
}

func TestTraceService_PurgeOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	articles := NewArticleService(client.Client)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	articleID := createTraceArticle(t, articles)

	old := time.Now().Add(-10 * 24 * time.Hour)
	require.NoError(t, service.Record(ctx, models.TraceEvent{
		ArticleID:  articleID,
		Layer:      "layer1",
		Node:       "score_batch",
		Status:     models.TraceStatusSuccess,
		OccurredAt: old,
	}))
	require.NoError(t, service.Record(ctx, models.TraceEvent{
		ArticleID: articleID,
		Layer:     "layer1",
		Node:      "score_batch",
		Status:    models.TraceStatusSuccess,
	}))

	n, err := service.PurgeOlderThan(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	timeline, err := service.GetTimeline(ctx, articleID)
	require.NoError(t, err)
	assert.Len(t, timeline, 1)
}
