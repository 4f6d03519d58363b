// Package models defines request/response shapes shared by the services
// layer and the admin API.
package models

import (
	"time"

	"github.com/finsight/newsflow/ent"
)

// CreateArticleRequest contains fields for registering a feed item.
type CreateArticleRequest struct {
	ArticleID   string     `json:"article_id"`
	Source      string     `json:"source"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Symbol      string     `json:"symbol,omitempty"`
	Market      string     `json:"market,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ArticleFilters contains filtering options for listing articles.
type ArticleFilters struct {
	Source          string     `json:"source,omitempty"`
	Symbol          string     `json:"symbol,omitempty"`
	ContentStatus   string     `json:"content_status,omitempty"`
	FilterStatus    string     `json:"filter_status,omitempty"`
	PublishedAfter  *time.Time `json:"published_after,omitempty"`
	PublishedBefore *time.Time `json:"published_before,omitempty"`
	Limit           int        `json:"limit,omitempty"`
	Offset          int        `json:"offset,omitempty"`
}

// ArticleListResponse contains a paginated article list.
type ArticleListResponse struct {
	Articles   []*ent.Article `json:"articles"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// AnalysisResult carries the merged output of the deep analysis agents.
type AnalysisResult struct {
	RelatedEntities   []map[string]any `json:"related_entities"`
	IndustryTags      []string         `json:"industry_tags"`
	EventTags         []string         `json:"event_tags"`
	SentimentTag      string           `json:"sentiment_tag"`
	InvestmentSummary string           `json:"investment_summary"`
	DetailedSummary   string           `json:"detailed_summary"`
	AnalysisReport    string           `json:"analysis_report"`
	PrimaryEntity     string           `json:"primary_entity"`
	HasStockEntity    bool             `json:"has_stock_entity"`
	HasMacroEntity    bool             `json:"has_macro_entity"`
	MaxEntityScore    float64          `json:"max_entity_score"`
}
