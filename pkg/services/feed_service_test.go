package services

import (
	"context"
	"testing"
	"time"

	"github.com/finsight/newsflow/pkg/models"
	testdb "github.com/finsight/newsflow/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedRequest() models.CreateFeedRequest {
	return models.CreateFeedRequest{
		Route:           "https://feeds.example.com/" + uuid.New().String(),
		Name:            "Example Markets",
		Category:        "equities",
		IntervalMinutes: 15,
	}
}

func TestFeedService_CreateFeed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewFeedService(client.Client)
	ctx := context.Background()

	t.Run("creates enabled feed with defaults", func(t *testing.T) {
		req := newFeedRequest()
		req.IntervalMinutes = 0

		f, err := service.CreateFeed(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.Route, f.Route)
		assert.True(t, f.Enabled)
		assert.Equal(t, 30, f.IntervalMinutes)
		assert.False(t, f.Fulltext)
	})

	t.Run("rejects duplicate route", func(t *testing.T) {
		req := newFeedRequest()
		_, err := service.CreateFeed(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateFeed(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates route", func(t *testing.T) {
		req := newFeedRequest()
		req.Route = ""
		_, err := service.CreateFeed(ctx, req)
		assert.True(t, IsValidationError(err))
	})
}

func TestFeedService_UpdateFeed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewFeedService(client.Client)
	ctx := context.Background()

	f, err := service.CreateFeed(ctx, newFeedRequest())
	require.NoError(t, err)

	interval := 60
	disabled := false
	updated, err := service.UpdateFeed(ctx, f.ID, models.UpdateFeedRequest{
		IntervalMinutes: &interval,
		Enabled:         &disabled,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.IntervalMinutes)
	assert.False(t, updated.Enabled)

	// Untouched fields survive.
	assert.Equal(t, f.Name, updated.Name)

	t.Run("missing feed", func(t *testing.T) {
		_, err := service.UpdateFeed(ctx, uuid.New().String(), models.UpdateFeedRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFeedService_ListDueFeeds(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewFeedService(client.Client)
	ctx := context.Background()

	never, err := service.CreateFeed(ctx, newFeedRequest())
	require.NoError(t, err)

	recent, err := service.CreateFeed(ctx, newFeedRequest())
	require.NoError(t, err)
	require.NoError(t, service.RecordPollSuccess(ctx, recent.ID, models.PollResult{}))

	stale, err := service.CreateFeed(ctx, newFeedRequest())
	require.NoError(t, err)
	_, err = client.Feed.UpdateOneID(stale.ID).
		SetLastPollAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	disabledReq := newFeedRequest()
	off := false
	disabledReq.Enabled = &off
	_, err = service.CreateFeed(ctx, disabledReq)
	require.NoError(t, err)

	due, err := service.ListDueFeeds(ctx, time.Now())
	require.NoError(t, err)

	dueIDs := make(map[string]bool, len(due))
	for _, f := range due {
		dueIDs[f.ID] = true
	}
	assert.True(t, dueIDs[never.ID], "never-polled feed is due")
	assert.True(t, dueIDs[stale.ID], "stale feed is due")
	assert.False(t, dueIDs[recent.ID], "freshly polled feed is not due")
	assert.Len(t, due, 2)
}

func TestFeedService_PollBookkeeping(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewFeedService(client.Client)
	ctx := context.Background()

	f, err := service.CreateFeed(ctx, newFeedRequest())
	require.NoError(t, err)

	t.Run("success stores validators and resets errors", func(t *testing.T) {
		require.NoError(t, service.RecordPollError(ctx, f.ID))

		err := service.RecordPollSuccess(ctx, f.ID, models.PollResult{
			ETag:         `"abc123"`,
			LastModified: "Mon, 24 Aug 2026 10:00:00 GMT",
			NewArticles:  7,
		})
		require.NoError(t, err)

		got, err := service.GetFeed(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, `"abc123"`, got.Etag)
		assert.Equal(t, 0, got.ConsecutiveErrors)
		assert.Equal(t, 7, got.ArticleCount)
		assert.NotNil(t, got.LastPollAt)
	})

	t.Run("304 keeps existing validators", func(t *testing.T) {
		err := service.RecordPollSuccess(ctx, f.ID, models.PollResult{NotModified: true})
		require.NoError(t, err)

		got, err := service.GetFeed(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, `"abc123"`, got.Etag)
		assert.Equal(t, 7, got.ArticleCount)
	})

	t.Run("errors accumulate", func(t *testing.T) {
		require.NoError(t, service.RecordPollError(ctx, f.ID))
		require.NoError(t, service.RecordPollError(ctx, f.ID))

		got, err := service.GetFeed(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ConsecutiveErrors)
	})
}

func TestFeedService_DeleteFeed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewFeedService(client.Client)
	ctx := context.Background()

	f, err := service.CreateFeed(ctx, newFeedRequest())
	require.NoError(t, err)

	require.NoError(t, service.DeleteFeed(ctx, f.ID))
	_, err = service.GetFeed(ctx, f.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, service.DeleteFeed(ctx, f.ID), ErrNotFound)
}
