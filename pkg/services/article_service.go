package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/newsflow/ent"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/pkg/models"
)

// ArticleService manages article lifecycle and analysis outputs.
type ArticleService struct {
	client *ent.Client
}

// NewArticleService creates a new ArticleService.
func NewArticleService(client *ent.Client) *ArticleService {
	return &ArticleService{client: client}
}

// CreateFromFeedItem registers a new article discovered by the dispatcher.
// The (source, url) unique constraint makes duplicate discovery a no-op at
// the caller: ErrAlreadyExists signals "seen before", not a failure.
func (s *ArticleService) CreateFromFeedItem(httpCtx context.Context, req models.CreateArticleRequest) (*ent.Article, error) {
	if req.ArticleID == "" {
		return nil, NewValidationError("article_id", "required")
	}
	if req.Source == "" {
		return nil, NewValidationError("source", "required")
	}
	if req.URL == "" {
		return nil, NewValidationError("url", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Article.Create().
		SetID(req.ArticleID).
		SetSource(req.Source).
		SetURL(req.URL).
		SetTitle(req.Title).
		SetContentStatus(article.ContentStatusPending).
		SetFilterStatus(article.FilterStatusPending)

	if req.Summary != "" {
		builder.SetSummary(req.Summary)
	}
	if req.Symbol != "" {
		builder.SetSymbol(req.Symbol)
	}
	if req.Market != "" {
		builder.SetMarket(req.Market)
	}
	if req.PublishedAt != nil {
		builder.SetPublishedAt(*req.PublishedAt)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return a, nil
}

// GetArticle retrieves an article by ID.
func (s *ArticleService) GetArticle(ctx context.Context, articleID string) (*ent.Article, error) {
	a, err := s.client.Article.Get(ctx, articleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return a, nil
}

// ExistsBySourceURL reports whether an article with the same (source, url)
// identity is already registered.
func (s *ArticleService) ExistsBySourceURL(ctx context.Context, source, url string) (bool, error) {
	exists, err := s.client.Article.Query().
		Where(article.SourceEQ(source), article.URLEQ(url)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}
	return exists, nil
}

// UpdateFilterStatus records a Layer-1 or Layer-1.5 decision.
func (s *ArticleService) UpdateFilterStatus(ctx context.Context, articleID string, status article.FilterStatus) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Article.UpdateOneID(articleID).
		SetFilterStatus(status).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update filter status: %w", err)
	}
	return nil
}

// UpdateContentFetched records a successful (or partial) content fetch.
func (s *ArticleService) UpdateContentFetched(ctx context.Context, articleID, filePath string, partial bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := article.ContentStatusFetched
	if partial {
		status = article.ContentStatusPartial
	}

	err := s.client.Article.UpdateOneID(articleID).
		SetContentStatus(status).
		SetContentFilePath(filePath).
		ClearErrorMessage().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record content fetch: %w", err)
	}
	return nil
}

// UpdateContentStatus moves an article to a terminal or intermediate content
// state, optionally recording the error that put it there.
func (s *ArticleService) UpdateContentStatus(ctx context.Context, articleID string, status article.ContentStatus, errMsg string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Article.UpdateOneID(articleID).SetContentStatus(status)
	if errMsg != "" {
		update.SetErrorMessage(truncateError(errMsg))
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update content status: %w", err)
	}
	return nil
}

// SaveAnalysis persists the merged deep-analysis output. Idempotent: writing
// the same result twice leaves the row unchanged apart from updated_at.
func (s *ArticleService) SaveAnalysis(ctx context.Context, articleID string, result *models.AnalysisResult) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Article.UpdateOneID(articleID).
		SetRelatedEntities(result.RelatedEntities).
		SetIndustryTags(result.IndustryTags).
		SetEventTags(result.EventTags).
		SetSentimentTag(result.SentimentTag).
		SetInvestmentSummary(result.InvestmentSummary).
		SetDetailedSummary(result.DetailedSummary).
		SetAnalysisReport(result.AnalysisReport).
		SetPrimaryEntity(result.PrimaryEntity).
		SetHasStockEntity(result.HasStockEntity).
		SetHasMacroEntity(result.HasMacroEntity).
		SetMaxEntityScore(result.MaxEntityScore).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// MarkDeleted moves an article to the deleted content state and clears its
// content file path. The caller removes the file itself.
func (s *ArticleService) MarkDeleted(ctx context.Context, articleID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Article.UpdateOneID(articleID).
		SetContentStatus(article.ContentStatusDeleted).
		ClearContentFilePath().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark article deleted: %w", err)
	}
	return nil
}

// ListArticles lists articles with filtering and pagination.
func (s *ArticleService) ListArticles(ctx context.Context, filters models.ArticleFilters) (*models.ArticleListResponse, error) {
	query := s.client.Article.Query()

	if filters.Source != "" {
		query = query.Where(article.SourceEQ(filters.Source))
	}
	if filters.Symbol != "" {
		query = query.Where(article.SymbolEQ(filters.Symbol))
	}
	if filters.ContentStatus != "" {
		query = query.Where(article.ContentStatusEQ(article.ContentStatus(filters.ContentStatus)))
	}
	if filters.FilterStatus != "" {
		query = query.Where(article.FilterStatusEQ(article.FilterStatus(filters.FilterStatus)))
	}
	if filters.PublishedAfter != nil {
		query = query.Where(article.PublishedAtGTE(*filters.PublishedAfter))
	}
	if filters.PublishedBefore != nil {
		query = query.Where(article.PublishedAtLT(*filters.PublishedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	articles, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(article.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return &models.ArticleListResponse{
		Articles:   articles,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// CountByContentStatus returns article counts grouped by content status.
func (s *ArticleService) CountByContentStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		ContentStatus string `json:"content_status"`
		Count         int    `json:"count"`
	}
	err := s.client.Article.Query().
		GroupBy(article.FieldContentStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count by content status: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.ContentStatus] = r.Count
	}
	return out, nil
}

// PurgeDeletedBefore hard-deletes articles that reached the deleted state
// before cutoff. Traces cascade with the row.
func (s *ArticleService) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Article.Delete().
		Where(
			article.ContentStatusEQ(article.ContentStatusDeleted),
			article.UpdatedAtLT(cutoff),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted articles: %w", err)
	}
	return n, nil
}

// RemovableContent reports which of the given articles no longer need their
// content files: the row is terminal (deleted, failed, blocked) or absent
// entirely. The retention sweep consults this before removing aged files so a
// live article never loses the file its content_file_path points at.
func (s *ArticleService) RemovableContent(ctx context.Context, articleIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(articleIDs))
	if len(articleIDs) == 0 {
		return out, nil
	}

	live, err := s.client.Article.Query().
		Where(
			article.IDIn(articleIDs...),
			article.ContentStatusNotIn(
				article.ContentStatusDeleted,
				article.ContentStatusFailed,
				article.ContentStatusBlocked,
			),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check content owners: %w", err)
	}

	for _, id := range articleIDs {
		out[id] = true
	}
	for _, id := range live {
		out[id] = false
	}
	return out, nil
}

// truncateError caps stored error messages so a pathological provider reply
// cannot bloat the row.
func truncateError(msg string) string {
	const maxLen = 500
	if len(msg) <= maxLen {
		return msg
	}
	return msg[:maxLen]
}
