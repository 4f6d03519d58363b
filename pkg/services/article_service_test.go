package services

import (
	"context"
	"testing"
	"time"

	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/pkg/models"
	testdb "github.com/finsight/newsflow/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleRequest() models.CreateArticleRequest {
	published := time.Now().Add(-time.Hour)
	return models.CreateArticleRequest{
		ArticleID:   uuid.New().String(),
		Source:      "reuters",
		URL:         "https://example.com/news/" + uuid.New().String(),
		Title:       "Fed holds rates steady",
		Summary:     "The Federal Reserve left rates unchanged.",
		Symbol:      "SPY",
		Market:      "US",
		PublishedAt: &published,
	}
}

func TestArticleService_CreateFromFeedItem(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()

	t.Run("creates article in pending state", func(t *testing.T) {
		req := newArticleRequest()

		a, err := service.CreateFromFeedItem(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.ArticleID, a.ID)
		assert.Equal(t, req.Source, a.Source)
		assert.Equal(t, article.ContentStatusPending, a.ContentStatus)
		assert.Equal(t, article.FilterStatusPending, a.FilterStatus)
	})

	t.Run("rejects duplicate source and url", func(t *testing.T) {
		req := newArticleRequest()
		_, err := service.CreateFromFeedItem(ctx, req)
		require.NoError(t, err)

		dup := req
		dup.ArticleID = uuid.New().String()
		_, err = service.CreateFromFeedItem(ctx, dup)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		req := newArticleRequest()
		req.Title = ""
		_, err := service.CreateFromFeedItem(ctx, req)
		assert.True(t, IsValidationError(err))
	})
}

func TestArticleService_ExistsBySourceURL(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()

	req := newArticleRequest()
	_, err := service.CreateFromFeedItem(ctx, req)
	require.NoError(t, err)

	exists, err := service.ExistsBySourceURL(ctx, req.Source, req.URL)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.ExistsBySourceURL(ctx, req.Source, "https://example.com/other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestArticleService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()

	req := newArticleRequest()
	_, err := service.CreateFromFeedItem(ctx, req)
	require.NoError(t, err)

	t.Run("records filter decision", func(t *testing.T) {
		err := service.UpdateFilterStatus(ctx, req.ArticleID, article.FilterStatusUseful)
		require.NoError(t, err)

		a, err := service.GetArticle(ctx, req.ArticleID)
		require.NoError(t, err)
		assert.Equal(t, article.FilterStatusUseful, a.FilterStatus)
	})

	t.Run("records content fetch with file path", func(t *testing.T) {
		err := service.UpdateContentFetched(ctx, req.ArticleID, "SPY/2026-08-24/a1.json", false)
		require.NoError(t, err)

		a, err := service.GetArticle(ctx, req.ArticleID)
		require.NoError(t, err)
		assert.Equal(t, article.ContentStatusFetched, a.ContentStatus)
		require.NotNil(t, a.ContentFilePath)
		assert.Equal(t, "SPY/2026-08-24/a1.json", *a.ContentFilePath)
	})

	t.Run("partial fetch gets partial status", func(t *testing.T) {
		err := service.UpdateContentFetched(ctx, req.ArticleID, "SPY/2026-08-24/a1.json", true)
		require.NoError(t, err)

		a, err := service.GetArticle(ctx, req.ArticleID)
		require.NoError(t, err)
		assert.Equal(t, article.ContentStatusPartial, a.ContentStatus)
	})

	t.Run("records failure with truncated message", func(t *testing.T) {
		long := make([]byte, 1000)
		for i := range long {
			long[i] = 'x'
		}
		err := service.UpdateContentStatus(ctx, req.ArticleID, article.ContentStatusFailed, string(long))
		require.NoError(t, err)

		a, err := service.GetArticle(ctx, req.ArticleID)
		require.NoError(t, err)
		assert.Equal(t, article.ContentStatusFailed, a.ContentStatus)
		require.NotNil(t, a.ErrorMessage)
		assert.Len(t, *a.ErrorMessage, 500)
	})

	t.Run("mark deleted clears file path", func(t *testing.T) {
		err := service.MarkDeleted(ctx, req.ArticleID)
		require.NoError(t, err)

		a, err := service.GetArticle(ctx, req.ArticleID)
		require.NoError(t, err)
		assert.Equal(t, article.ContentStatusDeleted, a.ContentStatus)
		assert.Nil(t, a.ContentFilePath)
	})
}

func TestArticleService_SaveAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()

	req := newArticleRequest()
	_, err := service.CreateFromFeedItem(ctx, req)
	require.NoError(t, err)

	result := &models.AnalysisResult{
		RelatedEntities: []map[string]any{
			{"entity": "Apple", "type": "stock", "score": 92.0},
		},
		IndustryTags:      []string{"technology"},
		EventTags:         []string{"earnings"},
		SentimentTag:      "bullish",
		InvestmentSummary: "Strong quarter.",
		DetailedSummary:   "Revenue beat expectations.",
		AnalysisReport:    "## Overview\nStrong quarter across segments.",
		PrimaryEntity:     "Apple",
		HasStockEntity:    true,
		MaxEntityScore:    92,
	}

	require.NoError(t, service.SaveAnalysis(ctx, req.ArticleID, result))

	// Idempotent: a second write succeeds and leaves the same data.
	require.NoError(t, service.SaveAnalysis(ctx, req.ArticleID, result))

	a, err := service.GetArticle(ctx, req.ArticleID)
	require.NoError(t, err)
	assert.Equal(t, "bullish", a.SentimentTag)
	assert.Equal(t, "Apple", a.PrimaryEntity)
	assert.True(t, a.HasStockEntity)
	assert.False(t, a.HasMacroEntity)
	assert.Equal(t, 92.0, a.MaxEntityScore)
	require.Len(t, a.RelatedEntities, 1)
}

func TestArticleService_ListArticles(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()

	for range 3 {
		req := newArticleRequest()
		_, err := service.CreateFromFeedItem(ctx, req)
		require.NoError(t, err)
	}
	other := newArticleRequest()
	other.Source = "bloomberg"
	_, err := service.CreateFromFeedItem(ctx, other)
	require.NoError(t, err)

	t.Run("filters by source", func(t *testing.T) {
		resp, err := service.ListArticles(ctx, models.ArticleFilters{Source: "bloomberg"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Articles, 1)
		assert.Equal(t, "bloomberg", resp.Articles[0].Source)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := service.ListArticles(ctx, models.ArticleFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Articles, 2)
	})
}

func TestArticleService_PurgeDeletedBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()

	req := newArticleRequest()
	_, err := service.CreateFromFeedItem(ctx, req)
	require.NoError(t, err)
	require.NoError(t, service.MarkDeleted(ctx, req.ArticleID))

	// Cutoff in the past: nothing purged yet.
	n, err := service.PurgeDeletedBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	// Cutoff in the future: the deleted article goes.
	n, err = service.PurgeDeletedBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.GetArticle(ctx, req.ArticleID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleService_RemovableContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArticleService(client.Client)
	ctx := context.Background()

	embedded := newArticleRequest()
	_, err := service.CreateFromFeedItem(ctx, embedded)
	require.NoError(t, err)
	require.NoError(t, service.UpdateContentFetched(ctx, embedded.ArticleID, "SPY/2026-08-01/a.json", false))
	require.NoError(t, service.UpdateContentStatus(ctx, embedded.ArticleID, article.ContentStatusEmbedded, ""))

	deleted := newArticleRequest()
	_, err = service.CreateFromFeedItem(ctx, deleted)
	require.NoError(t, err)
	require.NoError(t, service.MarkDeleted(ctx, deleted.ArticleID))

	failed := newArticleRequest()
	_, err = service.CreateFromFeedItem(ctx, failed)
	require.NoError(t, err)
	require.NoError(t, service.UpdateContentStatus(ctx, failed.ArticleID, article.ContentStatusFailed, "fetch error"))

	got, err := service.RemovableContent(ctx, []string{
		embedded.ArticleID, deleted.ArticleID, failed.ArticleID, "no-such-row",
	})
	require.NoError(t, err)

	// Only the live embedded article holds on to its file. Terminal statuses
	// and missing rows release theirs.
	assert.False(t, got[embedded.ArticleID])
	assert.True(t, got[deleted.ArticleID])
	assert.True(t, got[failed.ArticleID])
	assert.True(t, got["no-such-row"])
}
