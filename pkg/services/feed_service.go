package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/feed"
	"github.com/finsight/newsflow/pkg/models"
	"github.com/google/uuid"
)

// FeedService manages RSS/Atom feed registrations and poll bookkeeping.
type FeedService struct {
	client *ent.Client
}

// NewFeedService creates a new FeedService.
func NewFeedService(client *ent.Client) *FeedService {
	return &FeedService{client: client}
}

// CreateFeed registers a feed. The route is the unique upstream identifier.
func (s *FeedService) CreateFeed(httpCtx context.Context, req models.CreateFeedRequest) (*ent.Feed, error) {
	if req.Route == "" {
		return nil, NewValidationError("route", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.IntervalMinutes < 0 {
		return nil, NewValidationError("interval_minutes", "must not be negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Feed.Create().
		SetID(uuid.New().String()).
		SetRoute(req.Route).
		SetName(req.Name).
		SetFulltext(req.Fulltext)

	if req.Category != "" {
		builder.SetCategory(req.Category)
	}
	if req.IntervalMinutes > 0 {
		builder.SetIntervalMinutes(req.IntervalMinutes)
	}
	if req.Enabled != nil {
		builder.SetEnabled(*req.Enabled)
	}

	f, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create feed: %w", err)
	}
	return f, nil
}

// GetFeed retrieves a feed by ID.
func (s *FeedService) GetFeed(ctx context.Context, feedID string) (*ent.Feed, error) {
	f, err := s.client.Feed.Get(ctx, feedID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}
	return f, nil
}

// ListFeeds returns all registered feeds ordered by name.
func (s *FeedService) ListFeeds(ctx context.Context) ([]*ent.Feed, error) {
	feeds, err := s.client.Feed.Query().
		Order(ent.Asc(feed.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}
	return feeds, nil
}

// UpdateFeed applies a partial update.
func (s *FeedService) UpdateFeed(ctx context.Context, feedID string, req models.UpdateFeedRequest) (*ent.Feed, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Feed.UpdateOneID(feedID)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Category != nil {
		update.SetCategory(*req.Category)
	}
	if req.IntervalMinutes != nil {
		if *req.IntervalMinutes <= 0 {
			return nil, NewValidationError("interval_minutes", "must be positive")
		}
		update.SetIntervalMinutes(*req.IntervalMinutes)
	}
	if req.Fulltext != nil {
		update.SetFulltext(*req.Fulltext)
	}
	if req.Enabled != nil {
		update.SetEnabled(*req.Enabled)
	}

	f, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update feed: %w", err)
	}
	return f, nil
}

// DeleteFeed removes a feed registration. Articles already discovered
// through it are kept.
func (s *FeedService) DeleteFeed(ctx context.Context, feedID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Feed.DeleteOneID(feedID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete feed: %w", err)
	}
	return nil
}

// ListDueFeeds returns enabled feeds whose polling interval has elapsed.
// Never-polled feeds are always due.
func (s *FeedService) ListDueFeeds(ctx context.Context, now time.Time) ([]*ent.Feed, error) {
	feeds, err := s.client.Feed.Query().
		Where(feed.EnabledEQ(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query feeds: %w", err)
	}

	due := make([]*ent.Feed, 0, len(feeds))
	for _, f := range feeds {
		if f.LastPollAt == nil {
			due = append(due, f)
			continue
		}
		interval := time.Duration(f.IntervalMinutes) * time.Minute
		if now.Sub(*f.LastPollAt) >= interval {
			due = append(due, f)
		}
	}
	return due, nil
}

// RecordPollSuccess updates conditional-GET validators and poll bookkeeping
// after a successful fetch. A 304 carries no new validators.
func (s *FeedService) RecordPollSuccess(ctx context.Context, feedID string, result models.PollResult) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Feed.UpdateOneID(feedID).
		SetLastPollAt(time.Now()).
		SetConsecutiveErrors(0)

	if !result.NotModified {
		if result.ETag != "" {
			update.SetEtag(result.ETag)
		}
		if result.LastModified != "" {
			update.SetLastModified(result.LastModified)
		}
		if result.NewArticles > 0 {
			update.AddArticleCount(result.NewArticles)
		}
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record poll success: %w", err)
	}
	return nil
}

// RecordPollError bumps the consecutive error counter. The poll timestamp
// still advances so a dead feed doesn't get hammered every cycle.
func (s *FeedService) RecordPollError(ctx context.Context, feedID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Feed.UpdateOneID(feedID).
		SetLastPollAt(time.Now()).
		AddConsecutiveErrors(1).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record poll error: %w", err)
	}
	return nil
}
