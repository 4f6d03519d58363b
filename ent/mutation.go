// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/feed"
	"github.com/finsight/newsflow/ent/pipelinejob"
	"github.com/finsight/newsflow/ent/pipelinetrace"
	"github.com/finsight/newsflow/ent/predicate"
	"github.com/finsight/newsflow/ent/systemsetting"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArticle       = "Article"
	TypeFeed          = "Feed"
	TypePipelineJob   = "PipelineJob"
	TypePipelineTrace = "PipelineTrace"
	TypeSystemSetting = "SystemSetting"
)

// ArticleMutation represents an operation that mutates the Article nodes in the graph.
type ArticleMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	source                 *string
	url                    *string
	title                  *string
	summary                *string
	symbol                 *string
	market                 *string
	published_at           *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	content_status         *article.ContentStatus
	filter_status          *article.FilterStatus
	content_file_path      *string
	related_entities       *[]map[string]interface{}
	appendrelated_entities []map[string]interface{}
	industry_tags          *[]string
	appendindustry_tags    []string
	event_tags             *[]string
	appendevent_tags       []string
	sentiment_tag          *string
	investment_summary     *string
	detailed_summary       *string
	analysis_report        *string
	primary_entity         *string
	has_stock_entity       *bool
	has_macro_entity       *bool
	max_entity_score       *float64
	addmax_entity_score    *float64
	error_message          *string
	clearedFields          map[string]struct{}
	traces                 map[string]struct{}
	removedtraces          map[string]struct{}
	clearedtraces          bool
	done                   bool
	oldValue               func(context.Context) (*Article, error)
	predicates             []predicate.Article
}

var _ ent.Mutation = (*ArticleMutation)(nil)

// articleOption allows management of the mutation configuration using functional options.
type articleOption func(*ArticleMutation)

// newArticleMutation creates new mutation for the Article entity.
func newArticleMutation(c config, op Op, opts ...articleOption) *ArticleMutation {
	m := &ArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArticleID sets the ID field of the mutation.
func withArticleID(id string) articleOption {
	return func(m *ArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *Article
		)
		m.oldValue = func(ctx context.Context) (*Article, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Article.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArticle sets the old Article of the mutation.
func withArticle(node *Article) articleOption {
	return func(m *ArticleMutation) {
		m.oldValue = func(context.Context) (*Article, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Article entities.
func (m *ArticleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArticleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArticleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Article.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *ArticleMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ArticleMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ArticleMutation) ResetSource() {
	m.source = nil
}

// SetURL sets the "url" field.
func (m *ArticleMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ArticleMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ArticleMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *ArticleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ArticleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ArticleMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *ArticleMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ArticleMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ArticleMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[article.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ArticleMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[article.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ArticleMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, article.FieldSummary)
}

// SetSymbol sets the "symbol" field.
func (m *ArticleMutation) SetSymbol(s string) {
	m.symbol = &s
}

// Symbol returns the value of the "symbol" field in the mutation.
func (m *ArticleMutation) Symbol() (r string, exists bool) {
	v := m.symbol
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbol returns the old "symbol" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSymbol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbol: %w", err)
	}
	return oldValue.Symbol, nil
}

// ClearSymbol clears the value of the "symbol" field.
func (m *ArticleMutation) ClearSymbol() {
	m.symbol = nil
	m.clearedFields[article.FieldSymbol] = struct{}{}
}

// SymbolCleared returns if the "symbol" field was cleared in this mutation.
func (m *ArticleMutation) SymbolCleared() bool {
	_, ok := m.clearedFields[article.FieldSymbol]
	return ok
}

// ResetSymbol resets all changes to the "symbol" field.
func (m *ArticleMutation) ResetSymbol() {
	m.symbol = nil
	delete(m.clearedFields, article.FieldSymbol)
}

// SetMarket sets the "market" field.
func (m *ArticleMutation) SetMarket(s string) {
	m.market = &s
}

// Market returns the value of the "market" field in the mutation.
func (m *ArticleMutation) Market() (r string, exists bool) {
	v := m.market
	if v == nil {
		return
	}
	return *v, true
}

// OldMarket returns the old "market" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldMarket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarket: %w", err)
	}
	return oldValue.Market, nil
}

// ClearMarket clears the value of the "market" field.
func (m *ArticleMutation) ClearMarket() {
	m.market = nil
	m.clearedFields[article.FieldMarket] = struct{}{}
}

// MarketCleared returns if the "market" field was cleared in this mutation.
func (m *ArticleMutation) MarketCleared() bool {
	_, ok := m.clearedFields[article.FieldMarket]
	return ok
}

// ResetMarket resets all changes to the "market" field.
func (m *ArticleMutation) ResetMarket() {
	m.market = nil
	delete(m.clearedFields, article.FieldMarket)
}

// SetPublishedAt sets the "published_at" field.
func (m *ArticleMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *ArticleMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *ArticleMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[article.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *ArticleMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[article.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *ArticleMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, article.FieldPublishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArticleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArticleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArticleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArticleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArticleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArticleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetContentStatus sets the "content_status" field.
func (m *ArticleMutation) SetContentStatus(as article.ContentStatus) {
	m.content_status = &as
}

// ContentStatus returns the value of the "content_status" field in the mutation.
func (m *ArticleMutation) ContentStatus() (r article.ContentStatus, exists bool) {
	v := m.content_status
	if v == nil {
		return
	}
	return *v, true
}

// OldContentStatus returns the old "content_status" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldContentStatus(ctx context.Context) (v article.ContentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentStatus: %w", err)
	}
	return oldValue.ContentStatus, nil
}

// ResetContentStatus resets all changes to the "content_status" field.
func (m *ArticleMutation) ResetContentStatus() {
	m.content_status = nil
}

// SetFilterStatus sets the "filter_status" field.
func (m *ArticleMutation) SetFilterStatus(as article.FilterStatus) {
	m.filter_status = &as
}

// FilterStatus returns the value of the "filter_status" field in the mutation.
func (m *ArticleMutation) FilterStatus() (r article.FilterStatus, exists bool) {
	v := m.filter_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFilterStatus returns the old "filter_status" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldFilterStatus(ctx context.Context) (v article.FilterStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilterStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilterStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilterStatus: %w", err)
	}
	return oldValue.FilterStatus, nil
}

// ResetFilterStatus resets all changes to the "filter_status" field.
func (m *ArticleMutation) ResetFilterStatus() {
	m.filter_status = nil
}

// SetContentFilePath sets the "content_file_path" field.
func (m *ArticleMutation) SetContentFilePath(s string) {
	m.content_file_path = &s
}

// ContentFilePath returns the value of the "content_file_path" field in the mutation.
func (m *ArticleMutation) ContentFilePath() (r string, exists bool) {
	v := m.content_file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldContentFilePath returns the old "content_file_path" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldContentFilePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentFilePath: %w", err)
	}
	return oldValue.ContentFilePath, nil
}

// ClearContentFilePath clears the value of the "content_file_path" field.
func (m *ArticleMutation) ClearContentFilePath() {
	m.content_file_path = nil
	m.clearedFields[article.FieldContentFilePath] = struct{}{}
}

// ContentFilePathCleared returns if the "content_file_path" field was cleared in this mutation.
func (m *ArticleMutation) ContentFilePathCleared() bool {
	_, ok := m.clearedFields[article.FieldContentFilePath]
	return ok
}

// ResetContentFilePath resets all changes to the "content_file_path" field.
func (m *ArticleMutation) ResetContentFilePath() {
	m.content_file_path = nil
	delete(m.clearedFields, article.FieldContentFilePath)
}

// SetRelatedEntities sets the "related_entities" field.
func (m *ArticleMutation) SetRelatedEntities(value []map[string]interface{}) {
	m.related_entities = &value
	m.appendrelated_entities = nil
}

// RelatedEntities returns the value of the "related_entities" field in the mutation.
func (m *ArticleMutation) RelatedEntities() (r []map[string]interface{}, exists bool) {
	v := m.related_entities
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedEntities returns the old "related_entities" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldRelatedEntities(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedEntities: %w", err)
	}
	return oldValue.RelatedEntities, nil
}

// AppendRelatedEntities adds value to the "related_entities" field.
func (m *ArticleMutation) AppendRelatedEntities(value []map[string]interface{}) {
	m.appendrelated_entities = append(m.appendrelated_entities, value...)
}

// AppendedRelatedEntities returns the list of values that were appended to the "related_entities" field in this mutation.
func (m *ArticleMutation) AppendedRelatedEntities() ([]map[string]interface{}, bool) {
	if len(m.appendrelated_entities) == 0 {
		return nil, false
	}
	return m.appendrelated_entities, true
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (m *ArticleMutation) ClearRelatedEntities() {
	m.related_entities = nil
	m.appendrelated_entities = nil
	m.clearedFields[article.FieldRelatedEntities] = struct{}{}
}

// RelatedEntitiesCleared returns if the "related_entities" field was cleared in this mutation.
func (m *ArticleMutation) RelatedEntitiesCleared() bool {
	_, ok := m.clearedFields[article.FieldRelatedEntities]
	return ok
}

// ResetRelatedEntities resets all changes to the "related_entities" field.
func (m *ArticleMutation) ResetRelatedEntities() {
	m.related_entities = nil
	m.appendrelated_entities = nil
	delete(m.clearedFields, article.FieldRelatedEntities)
}

// SetIndustryTags sets the "industry_tags" field.
func (m *ArticleMutation) SetIndustryTags(s []string) {
	m.industry_tags = &s
	m.appendindustry_tags = nil
}

// IndustryTags returns the value of the "industry_tags" field in the mutation.
func (m *ArticleMutation) IndustryTags() (r []string, exists bool) {
	v := m.industry_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustryTags returns the old "industry_tags" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldIndustryTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustryTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustryTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustryTags: %w", err)
	}
	return oldValue.IndustryTags, nil
}

// AppendIndustryTags adds s to the "industry_tags" field.
func (m *ArticleMutation) AppendIndustryTags(s []string) {
	m.appendindustry_tags = append(m.appendindustry_tags, s...)
}

// AppendedIndustryTags returns the list of values that were appended to the "industry_tags" field in this mutation.
func (m *ArticleMutation) AppendedIndustryTags() ([]string, bool) {
	if len(m.appendindustry_tags) == 0 {
		return nil, false
	}
	return m.appendindustry_tags, true
}

// ClearIndustryTags clears the value of the "industry_tags" field.
func (m *ArticleMutation) ClearIndustryTags() {
	m.industry_tags = nil
	m.appendindustry_tags = nil
	m.clearedFields[article.FieldIndustryTags] = struct{}{}
}

// IndustryTagsCleared returns if the "industry_tags" field was cleared in this mutation.
func (m *ArticleMutation) IndustryTagsCleared() bool {
	_, ok := m.clearedFields[article.FieldIndustryTags]
	return ok
}

// ResetIndustryTags resets all changes to the "industry_tags" field.
func (m *ArticleMutation) ResetIndustryTags() {
	m.industry_tags = nil
	m.appendindustry_tags = nil
	delete(m.clearedFields, article.FieldIndustryTags)
}

// SetEventTags sets the "event_tags" field.
func (m *ArticleMutation) SetEventTags(s []string) {
	m.event_tags = &s
	m.appendevent_tags = nil
}

// EventTags returns the value of the "event_tags" field in the mutation.
func (m *ArticleMutation) EventTags() (r []string, exists bool) {
	v := m.event_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTags returns the old "event_tags" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldEventTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTags: %w", err)
	}
	return oldValue.EventTags, nil
}

// AppendEventTags adds s to the "event_tags" field.
func (m *ArticleMutation) AppendEventTags(s []string) {
	m.appendevent_tags = append(m.appendevent_tags, s...)
}

// AppendedEventTags returns the list of values that were appended to the "event_tags" field in this mutation.
func (m *ArticleMutation) AppendedEventTags() ([]string, bool) {
	if len(m.appendevent_tags) == 0 {
		return nil, false
	}
	return m.appendevent_tags, true
}

// ClearEventTags clears the value of the "event_tags" field.
func (m *ArticleMutation) ClearEventTags() {
	m.event_tags = nil
	m.appendevent_tags = nil
	m.clearedFields[article.FieldEventTags] = struct{}{}
}

// EventTagsCleared returns if the "event_tags" field was cleared in this mutation.
func (m *ArticleMutation) EventTagsCleared() bool {
	_, ok := m.clearedFields[article.FieldEventTags]
	return ok
}

// ResetEventTags resets all changes to the "event_tags" field.
func (m *ArticleMutation) ResetEventTags() {
	m.event_tags = nil
	m.appendevent_tags = nil
	delete(m.clearedFields, article.FieldEventTags)
}

// SetSentimentTag sets the "sentiment_tag" field.
func (m *ArticleMutation) SetSentimentTag(s string) {
	m.sentiment_tag = &s
}

// SentimentTag returns the value of the "sentiment_tag" field in the mutation.
func (m *ArticleMutation) SentimentTag() (r string, exists bool) {
	v := m.sentiment_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentTag returns the old "sentiment_tag" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldSentimentTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentTag: %w", err)
	}
	return oldValue.SentimentTag, nil
}

// ClearSentimentTag clears the value of the "sentiment_tag" field.
func (m *ArticleMutation) ClearSentimentTag() {
	m.sentiment_tag = nil
	m.clearedFields[article.FieldSentimentTag] = struct{}{}
}

// SentimentTagCleared returns if the "sentiment_tag" field was cleared in this mutation.
func (m *ArticleMutation) SentimentTagCleared() bool {
	_, ok := m.clearedFields[article.FieldSentimentTag]
	return ok
}

// ResetSentimentTag resets all changes to the "sentiment_tag" field.
func (m *ArticleMutation) ResetSentimentTag() {
	m.sentiment_tag = nil
	delete(m.clearedFields, article.FieldSentimentTag)
}

// SetInvestmentSummary sets the "investment_summary" field.
func (m *ArticleMutation) SetInvestmentSummary(s string) {
	m.investment_summary = &s
}

// InvestmentSummary returns the value of the "investment_summary" field in the mutation.
func (m *ArticleMutation) InvestmentSummary() (r string, exists bool) {
	v := m.investment_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestmentSummary returns the old "investment_summary" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldInvestmentSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestmentSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestmentSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestmentSummary: %w", err)
	}
	return oldValue.InvestmentSummary, nil
}

// ClearInvestmentSummary clears the value of the "investment_summary" field.
func (m *ArticleMutation) ClearInvestmentSummary() {
	m.investment_summary = nil
	m.clearedFields[article.FieldInvestmentSummary] = struct{}{}
}

// InvestmentSummaryCleared returns if the "investment_summary" field was cleared in this mutation.
func (m *ArticleMutation) InvestmentSummaryCleared() bool {
	_, ok := m.clearedFields[article.FieldInvestmentSummary]
	return ok
}

// ResetInvestmentSummary resets all changes to the "investment_summary" field.
func (m *ArticleMutation) ResetInvestmentSummary() {
	m.investment_summary = nil
	delete(m.clearedFields, article.FieldInvestmentSummary)
}

// SetDetailedSummary sets the "detailed_summary" field.
func (m *ArticleMutation) SetDetailedSummary(s string) {
	m.detailed_summary = &s
}

// DetailedSummary returns the value of the "detailed_summary" field in the mutation.
func (m *ArticleMutation) DetailedSummary() (r string, exists bool) {
	v := m.detailed_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldDetailedSummary returns the old "detailed_summary" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldDetailedSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetailedSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetailedSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetailedSummary: %w", err)
	}
	return oldValue.DetailedSummary, nil
}

// ClearDetailedSummary clears the value of the "detailed_summary" field.
func (m *ArticleMutation) ClearDetailedSummary() {
	m.detailed_summary = nil
	m.clearedFields[article.FieldDetailedSummary] = struct{}{}
}

// DetailedSummaryCleared returns if the "detailed_summary" field was cleared in this mutation.
func (m *ArticleMutation) DetailedSummaryCleared() bool {
	_, ok := m.clearedFields[article.FieldDetailedSummary]
	return ok
}

// ResetDetailedSummary resets all changes to the "detailed_summary" field.
func (m *ArticleMutation) ResetDetailedSummary() {
	m.detailed_summary = nil
	delete(m.clearedFields, article.FieldDetailedSummary)
}

// SetAnalysisReport sets the "analysis_report" field.
func (m *ArticleMutation) SetAnalysisReport(s string) {
	m.analysis_report = &s
}

// AnalysisReport returns the value of the "analysis_report" field in the mutation.
func (m *ArticleMutation) AnalysisReport() (r string, exists bool) {
	v := m.analysis_report
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisReport returns the old "analysis_report" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldAnalysisReport(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisReport: %w", err)
	}
	return oldValue.AnalysisReport, nil
}

// ClearAnalysisReport clears the value of the "analysis_report" field.
func (m *ArticleMutation) ClearAnalysisReport() {
	m.analysis_report = nil
	m.clearedFields[article.FieldAnalysisReport] = struct{}{}
}

// AnalysisReportCleared returns if the "analysis_report" field was cleared in this mutation.
func (m *ArticleMutation) AnalysisReportCleared() bool {
	_, ok := m.clearedFields[article.FieldAnalysisReport]
	return ok
}

// ResetAnalysisReport resets all changes to the "analysis_report" field.
func (m *ArticleMutation) ResetAnalysisReport() {
	m.analysis_report = nil
	delete(m.clearedFields, article.FieldAnalysisReport)
}

// SetPrimaryEntity sets the "primary_entity" field.
func (m *ArticleMutation) SetPrimaryEntity(s string) {
	m.primary_entity = &s
}

// PrimaryEntity returns the value of the "primary_entity" field in the mutation.
func (m *ArticleMutation) PrimaryEntity() (r string, exists bool) {
	v := m.primary_entity
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryEntity returns the old "primary_entity" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldPrimaryEntity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryEntity: %w", err)
	}
	return oldValue.PrimaryEntity, nil
}

// ClearPrimaryEntity clears the value of the "primary_entity" field.
func (m *ArticleMutation) ClearPrimaryEntity() {
	m.primary_entity = nil
	m.clearedFields[article.FieldPrimaryEntity] = struct{}{}
}

// PrimaryEntityCleared returns if the "primary_entity" field was cleared in this mutation.
func (m *ArticleMutation) PrimaryEntityCleared() bool {
	_, ok := m.clearedFields[article.FieldPrimaryEntity]
	return ok
}

// ResetPrimaryEntity resets all changes to the "primary_entity" field.
func (m *ArticleMutation) ResetPrimaryEntity() {
	m.primary_entity = nil
	delete(m.clearedFields, article.FieldPrimaryEntity)
}

// SetHasStockEntity sets the "has_stock_entity" field.
func (m *ArticleMutation) SetHasStockEntity(b bool) {
	m.has_stock_entity = &b
}

// HasStockEntity returns the value of the "has_stock_entity" field in the mutation.
func (m *ArticleMutation) HasStockEntity() (r bool, exists bool) {
	v := m.has_stock_entity
	if v == nil {
		return
	}
	return *v, true
}

// OldHasStockEntity returns the old "has_stock_entity" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldHasStockEntity(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasStockEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasStockEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasStockEntity: %w", err)
	}
	return oldValue.HasStockEntity, nil
}

// ResetHasStockEntity resets all changes to the "has_stock_entity" field.
func (m *ArticleMutation) ResetHasStockEntity() {
	m.has_stock_entity = nil
}

// SetHasMacroEntity sets the "has_macro_entity" field.
func (m *ArticleMutation) SetHasMacroEntity(b bool) {
	m.has_macro_entity = &b
}

// HasMacroEntity returns the value of the "has_macro_entity" field in the mutation.
func (m *ArticleMutation) HasMacroEntity() (r bool, exists bool) {
	v := m.has_macro_entity
	if v == nil {
		return
	}
	return *v, true
}

// OldHasMacroEntity returns the old "has_macro_entity" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldHasMacroEntity(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasMacroEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasMacroEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasMacroEntity: %w", err)
	}
	return oldValue.HasMacroEntity, nil
}

// ResetHasMacroEntity resets all changes to the "has_macro_entity" field.
func (m *ArticleMutation) ResetHasMacroEntity() {
	m.has_macro_entity = nil
}

// SetMaxEntityScore sets the "max_entity_score" field.
func (m *ArticleMutation) SetMaxEntityScore(f float64) {
	m.max_entity_score = &f
	m.addmax_entity_score = nil
}

// MaxEntityScore returns the value of the "max_entity_score" field in the mutation.
func (m *ArticleMutation) MaxEntityScore() (r float64, exists bool) {
	v := m.max_entity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxEntityScore returns the old "max_entity_score" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldMaxEntityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxEntityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxEntityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxEntityScore: %w", err)
	}
	return oldValue.MaxEntityScore, nil
}

// AddMaxEntityScore adds f to the "max_entity_score" field.
func (m *ArticleMutation) AddMaxEntityScore(f float64) {
	if m.addmax_entity_score != nil {
		*m.addmax_entity_score += f
	} else {
		m.addmax_entity_score = &f
	}
}

// AddedMaxEntityScore returns the value that was added to the "max_entity_score" field in this mutation.
func (m *ArticleMutation) AddedMaxEntityScore() (r float64, exists bool) {
	v := m.addmax_entity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxEntityScore resets all changes to the "max_entity_score" field.
func (m *ArticleMutation) ResetMaxEntityScore() {
	m.max_entity_score = nil
	m.addmax_entity_score = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ArticleMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ArticleMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ArticleMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[article.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ArticleMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[article.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ArticleMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, article.FieldErrorMessage)
}

// AddTraceIDs adds the "traces" edge to the PipelineTrace entity by ids.
func (m *ArticleMutation) AddTraceIDs(ids ...string) {
	if m.traces == nil {
		m.traces = make(map[string]struct{})
	}
	for i := range ids {
		m.traces[ids[i]] = struct{}{}
	}
}

// ClearTraces clears the "traces" edge to the PipelineTrace entity.
func (m *ArticleMutation) ClearTraces() {
	m.clearedtraces = true
}

// TracesCleared reports if the "traces" edge to the PipelineTrace entity was cleared.
func (m *ArticleMutation) TracesCleared() bool {
	return m.clearedtraces
}

// RemoveTraceIDs removes the "traces" edge to the PipelineTrace entity by IDs.
func (m *ArticleMutation) RemoveTraceIDs(ids ...string) {
	if m.removedtraces == nil {
		m.removedtraces = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.traces, ids[i])
		m.removedtraces[ids[i]] = struct{}{}
	}
}

// RemovedTraces returns the removed IDs of the "traces" edge to the PipelineTrace entity.
func (m *ArticleMutation) RemovedTracesIDs() (ids []string) {
	for id := range m.removedtraces {
		ids = append(ids, id)
	}
	return
}

// TracesIDs returns the "traces" edge IDs in the mutation.
func (m *ArticleMutation) TracesIDs() (ids []string) {
	for id := range m.traces {
		ids = append(ids, id)
	}
	return
}

// ResetTraces resets all changes to the "traces" edge.
func (m *ArticleMutation) ResetTraces() {
	m.traces = nil
	m.clearedtraces = false
	m.removedtraces = nil
}

// Where appends a list predicates to the ArticleMutation builder.
func (m *ArticleMutation) Where(ps ...predicate.Article) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Article, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Article).
func (m *ArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArticleMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.source != nil {
		fields = append(fields, article.FieldSource)
	}
	if m.url != nil {
		fields = append(fields, article.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, article.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, article.FieldSummary)
	}
	if m.symbol != nil {
		fields = append(fields, article.FieldSymbol)
	}
	if m.market != nil {
		fields = append(fields, article.FieldMarket)
	}
	if m.published_at != nil {
		fields = append(fields, article.FieldPublishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, article.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, article.FieldUpdatedAt)
	}
	if m.content_status != nil {
		fields = append(fields, article.FieldContentStatus)
	}
	if m.filter_status != nil {
		fields = append(fields, article.FieldFilterStatus)
	}
	if m.content_file_path != nil {
		fields = append(fields, article.FieldContentFilePath)
	}
	if m.related_entities != nil {
		fields = append(fields, article.FieldRelatedEntities)
	}
	if m.industry_tags != nil {
		fields = append(fields, article.FieldIndustryTags)
	}
	if m.event_tags != nil {
		fields = append(fields, article.FieldEventTags)
	}
	if m.sentiment_tag != nil {
		fields = append(fields, article.FieldSentimentTag)
	}
	if m.investment_summary != nil {
		fields = append(fields, article.FieldInvestmentSummary)
	}
	if m.detailed_summary != nil {
		fields = append(fields, article.FieldDetailedSummary)
	}
	if m.analysis_report != nil {
		fields = append(fields, article.FieldAnalysisReport)
	}
	if m.primary_entity != nil {
		fields = append(fields, article.FieldPrimaryEntity)
	}
	if m.has_stock_entity != nil {
		fields = append(fields, article.FieldHasStockEntity)
	}
	if m.has_macro_entity != nil {
		fields = append(fields, article.FieldHasMacroEntity)
	}
	if m.max_entity_score != nil {
		fields = append(fields, article.FieldMaxEntityScore)
	}
	if m.error_message != nil {
		fields = append(fields, article.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case article.FieldSource:
		return m.Source()
	case article.FieldURL:
		return m.URL()
	case article.FieldTitle:
		return m.Title()
	case article.FieldSummary:
		return m.Summary()
	case article.FieldSymbol:
		return m.Symbol()
	case article.FieldMarket:
		return m.Market()
	case article.FieldPublishedAt:
		return m.PublishedAt()
	case article.FieldCreatedAt:
		return m.CreatedAt()
	case article.FieldUpdatedAt:
		return m.UpdatedAt()
	case article.FieldContentStatus:
		return m.ContentStatus()
	case article.FieldFilterStatus:
		return m.FilterStatus()
	case article.FieldContentFilePath:
		return m.ContentFilePath()
	case article.FieldRelatedEntities:
		return m.RelatedEntities()
	case article.FieldIndustryTags:
		return m.IndustryTags()
	case article.FieldEventTags:
		return m.EventTags()
	case article.FieldSentimentTag:
		return m.SentimentTag()
	case article.FieldInvestmentSummary:
		return m.InvestmentSummary()
	case article.FieldDetailedSummary:
		return m.DetailedSummary()
	case article.FieldAnalysisReport:
		return m.AnalysisReport()
	case article.FieldPrimaryEntity:
		return m.PrimaryEntity()
	case article.FieldHasStockEntity:
		return m.HasStockEntity()
	case article.FieldHasMacroEntity:
		return m.HasMacroEntity()
	case article.FieldMaxEntityScore:
		return m.MaxEntityScore()
	case article.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case article.FieldSource:
		return m.OldSource(ctx)
	case article.FieldURL:
		return m.OldURL(ctx)
	case article.FieldTitle:
		return m.OldTitle(ctx)
	case article.FieldSummary:
		return m.OldSummary(ctx)
	case article.FieldSymbol:
		return m.OldSymbol(ctx)
	case article.FieldMarket:
		return m.OldMarket(ctx)
	case article.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case article.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case article.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case article.FieldContentStatus:
		return m.OldContentStatus(ctx)
	case article.FieldFilterStatus:
		return m.OldFilterStatus(ctx)
	case article.FieldContentFilePath:
		return m.OldContentFilePath(ctx)
	case article.FieldRelatedEntities:
		return m.OldRelatedEntities(ctx)
	case article.FieldIndustryTags:
		return m.OldIndustryTags(ctx)
	case article.FieldEventTags:
		return m.OldEventTags(ctx)
	case article.FieldSentimentTag:
		return m.OldSentimentTag(ctx)
	case article.FieldInvestmentSummary:
		return m.OldInvestmentSummary(ctx)
	case article.FieldDetailedSummary:
		return m.OldDetailedSummary(ctx)
	case article.FieldAnalysisReport:
		return m.OldAnalysisReport(ctx)
	case article.FieldPrimaryEntity:
		return m.OldPrimaryEntity(ctx)
	case article.FieldHasStockEntity:
		return m.OldHasStockEntity(ctx)
	case article.FieldHasMacroEntity:
		return m.OldHasMacroEntity(ctx)
	case article.FieldMaxEntityScore:
		return m.OldMaxEntityScore(ctx)
	case article.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Article field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case article.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case article.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case article.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case article.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case article.FieldSymbol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbol(v)
		return nil
	case article.FieldMarket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarket(v)
		return nil
	case article.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case article.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case article.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case article.FieldContentStatus:
		v, ok := value.(article.ContentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentStatus(v)
		return nil
	case article.FieldFilterStatus:
		v, ok := value.(article.FilterStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilterStatus(v)
		return nil
	case article.FieldContentFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentFilePath(v)
		return nil
	case article.FieldRelatedEntities:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedEntities(v)
		return nil
	case article.FieldIndustryTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustryTags(v)
		return nil
	case article.FieldEventTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTags(v)
		return nil
	case article.FieldSentimentTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentTag(v)
		return nil
	case article.FieldInvestmentSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestmentSummary(v)
		return nil
	case article.FieldDetailedSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetailedSummary(v)
		return nil
	case article.FieldAnalysisReport:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisReport(v)
		return nil
	case article.FieldPrimaryEntity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryEntity(v)
		return nil
	case article.FieldHasStockEntity:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasStockEntity(v)
		return nil
	case article.FieldHasMacroEntity:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasMacroEntity(v)
		return nil
	case article.FieldMaxEntityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxEntityScore(v)
		return nil
	case article.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArticleMutation) AddedFields() []string {
	var fields []string
	if m.addmax_entity_score != nil {
		fields = append(fields, article.FieldMaxEntityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArticleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case article.FieldMaxEntityScore:
		return m.AddedMaxEntityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case article.FieldMaxEntityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxEntityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Article numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArticleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(article.FieldSummary) {
		fields = append(fields, article.FieldSummary)
	}
	if m.FieldCleared(article.FieldSymbol) {
		fields = append(fields, article.FieldSymbol)
	}
	if m.FieldCleared(article.FieldMarket) {
		fields = append(fields, article.FieldMarket)
	}
	if m.FieldCleared(article.FieldPublishedAt) {
		fields = append(fields, article.FieldPublishedAt)
	}
	if m.FieldCleared(article.FieldContentFilePath) {
		fields = append(fields, article.FieldContentFilePath)
	}
	if m.FieldCleared(article.FieldRelatedEntities) {
		fields = append(fields, article.FieldRelatedEntities)
	}
	if m.FieldCleared(article.FieldIndustryTags) {
		fields = append(fields, article.FieldIndustryTags)
	}
	if m.FieldCleared(article.FieldEventTags) {
		fields = append(fields, article.FieldEventTags)
	}
	if m.FieldCleared(article.FieldSentimentTag) {
		fields = append(fields, article.FieldSentimentTag)
	}
	if m.FieldCleared(article.FieldInvestmentSummary) {
		fields = append(fields, article.FieldInvestmentSummary)
	}
	if m.FieldCleared(article.FieldDetailedSummary) {
		fields = append(fields, article.FieldDetailedSummary)
	}
	if m.FieldCleared(article.FieldAnalysisReport) {
		fields = append(fields, article.FieldAnalysisReport)
	}
	if m.FieldCleared(article.FieldPrimaryEntity) {
		fields = append(fields, article.FieldPrimaryEntity)
	}
	if m.FieldCleared(article.FieldErrorMessage) {
		fields = append(fields, article.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArticleMutation) ClearField(name string) error {
	switch name {
	case article.FieldSummary:
		m.ClearSummary()
		return nil
	case article.FieldSymbol:
		m.ClearSymbol()
		return nil
	case article.FieldMarket:
		m.ClearMarket()
		return nil
	case article.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case article.FieldContentFilePath:
		m.ClearContentFilePath()
		return nil
	case article.FieldRelatedEntities:
		m.ClearRelatedEntities()
		return nil
	case article.FieldIndustryTags:
		m.ClearIndustryTags()
		return nil
	case article.FieldEventTags:
		m.ClearEventTags()
		return nil
	case article.FieldSentimentTag:
		m.ClearSentimentTag()
		return nil
	case article.FieldInvestmentSummary:
		m.ClearInvestmentSummary()
		return nil
	case article.FieldDetailedSummary:
		m.ClearDetailedSummary()
		return nil
	case article.FieldAnalysisReport:
		m.ClearAnalysisReport()
		return nil
	case article.FieldPrimaryEntity:
		m.ClearPrimaryEntity()
		return nil
	case article.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Article nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArticleMutation) ResetField(name string) error {
	switch name {
	case article.FieldSource:
		m.ResetSource()
		return nil
	case article.FieldURL:
		m.ResetURL()
		return nil
	case article.FieldTitle:
		m.ResetTitle()
		return nil
	case article.FieldSummary:
		m.ResetSummary()
		return nil
	case article.FieldSymbol:
		m.ResetSymbol()
		return nil
	case article.FieldMarket:
		m.ResetMarket()
		return nil
	case article.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case article.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case article.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case article.FieldContentStatus:
		m.ResetContentStatus()
		return nil
	case article.FieldFilterStatus:
		m.ResetFilterStatus()
		return nil
	case article.FieldContentFilePath:
		m.ResetContentFilePath()
		return nil
	case article.FieldRelatedEntities:
		m.ResetRelatedEntities()
		return nil
	case article.FieldIndustryTags:
		m.ResetIndustryTags()
		return nil
	case article.FieldEventTags:
		m.ResetEventTags()
		return nil
	case article.FieldSentimentTag:
		m.ResetSentimentTag()
		return nil
	case article.FieldInvestmentSummary:
		m.ResetInvestmentSummary()
		return nil
	case article.FieldDetailedSummary:
		m.ResetDetailedSummary()
		return nil
	case article.FieldAnalysisReport:
		m.ResetAnalysisReport()
		return nil
	case article.FieldPrimaryEntity:
		m.ResetPrimaryEntity()
		return nil
	case article.FieldHasStockEntity:
		m.ResetHasStockEntity()
		return nil
	case article.FieldHasMacroEntity:
		m.ResetHasMacroEntity()
		return nil
	case article.FieldMaxEntityScore:
		m.ResetMaxEntityScore()
		return nil
	case article.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.traces != nil {
		edges = append(edges, article.EdgeTraces)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArticleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case article.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.traces))
		for id := range m.traces {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtraces != nil {
		edges = append(edges, article.EdgeTraces)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArticleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case article.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.removedtraces))
		for id := range m.removedtraces {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtraces {
		edges = append(edges, article.EdgeTraces)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArticleMutation) EdgeCleared(name string) bool {
	switch name {
	case article.EdgeTraces:
		return m.clearedtraces
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArticleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Article unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArticleMutation) ResetEdge(name string) error {
	switch name {
	case article.EdgeTraces:
		m.ResetTraces()
		return nil
	}
	return fmt.Errorf("unknown Article edge %s", name)
}

// FeedMutation represents an operation that mutates the Feed nodes in the graph.
type FeedMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	route                 *string
	name                  *string
	category              *string
	interval_minutes      *int
	addinterval_minutes   *int
	fulltext              *bool
	enabled               *bool
	last_poll_at          *time.Time
	etag                  *string
	last_modified         *string
	consecutive_errors    *int
	addconsecutive_errors *int
	article_count         *int
	addarticle_count      *int
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Feed, error)
	predicates            []predicate.Feed
}

var _ ent.Mutation = (*FeedMutation)(nil)

// feedOption allows management of the mutation configuration using functional options.
type feedOption func(*FeedMutation)

// newFeedMutation creates new mutation for the Feed entity.
func newFeedMutation(c config, op Op, opts ...feedOption) *FeedMutation {
	m := &FeedMutation{
		config:        c,
		op:            op,
		typ:           TypeFeed,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedID sets the ID field of the mutation.
func withFeedID(id string) feedOption {
	return func(m *FeedMutation) {
		var (
			err   error
			once  sync.Once
			value *Feed
		)
		m.oldValue = func(ctx context.Context) (*Feed, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feed.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeed sets the old Feed of the mutation.
func withFeed(node *Feed) feedOption {
	return func(m *FeedMutation) {
		m.oldValue = func(context.Context) (*Feed, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feed entities.
func (m *FeedMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feed.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoute sets the "route" field.
func (m *FeedMutation) SetRoute(s string) {
	m.route = &s
}

// Route returns the value of the "route" field in the mutation.
func (m *FeedMutation) Route() (r string, exists bool) {
	v := m.route
	if v == nil {
		return
	}
	return *v, true
}

// OldRoute returns the old "route" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldRoute(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoute: %w", err)
	}
	return oldValue.Route, nil
}

// ResetRoute resets all changes to the "route" field.
func (m *FeedMutation) ResetRoute() {
	m.route = nil
}

// SetName sets the "name" field.
func (m *FeedMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FeedMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *FeedMutation) ClearName() {
	m.name = nil
	m.clearedFields[feed.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *FeedMutation) NameCleared() bool {
	_, ok := m.clearedFields[feed.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *FeedMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, feed.FieldName)
}

// SetCategory sets the "category" field.
func (m *FeedMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *FeedMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *FeedMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[feed.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *FeedMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[feed.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *FeedMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, feed.FieldCategory)
}

// SetIntervalMinutes sets the "interval_minutes" field.
func (m *FeedMutation) SetIntervalMinutes(i int) {
	m.interval_minutes = &i
	m.addinterval_minutes = nil
}

// IntervalMinutes returns the value of the "interval_minutes" field in the mutation.
func (m *FeedMutation) IntervalMinutes() (r int, exists bool) {
	v := m.interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalMinutes returns the old "interval_minutes" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldIntervalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalMinutes: %w", err)
	}
	return oldValue.IntervalMinutes, nil
}

// AddIntervalMinutes adds i to the "interval_minutes" field.
func (m *FeedMutation) AddIntervalMinutes(i int) {
	if m.addinterval_minutes != nil {
		*m.addinterval_minutes += i
	} else {
		m.addinterval_minutes = &i
	}
}

// AddedIntervalMinutes returns the value that was added to the "interval_minutes" field in this mutation.
func (m *FeedMutation) AddedIntervalMinutes() (r int, exists bool) {
	v := m.addinterval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalMinutes resets all changes to the "interval_minutes" field.
func (m *FeedMutation) ResetIntervalMinutes() {
	m.interval_minutes = nil
	m.addinterval_minutes = nil
}

// SetFulltext sets the "fulltext" field.
func (m *FeedMutation) SetFulltext(b bool) {
	m.fulltext = &b
}

// Fulltext returns the value of the "fulltext" field in the mutation.
func (m *FeedMutation) Fulltext() (r bool, exists bool) {
	v := m.fulltext
	if v == nil {
		return
	}
	return *v, true
}

// OldFulltext returns the old "fulltext" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldFulltext(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFulltext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFulltext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFulltext: %w", err)
	}
	return oldValue.Fulltext, nil
}

// ResetFulltext resets all changes to the "fulltext" field.
func (m *FeedMutation) ResetFulltext() {
	m.fulltext = nil
}

// SetEnabled sets the "enabled" field.
func (m *FeedMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *FeedMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *FeedMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastPollAt sets the "last_poll_at" field.
func (m *FeedMutation) SetLastPollAt(t time.Time) {
	m.last_poll_at = &t
}

// LastPollAt returns the value of the "last_poll_at" field in the mutation.
func (m *FeedMutation) LastPollAt() (r time.Time, exists bool) {
	v := m.last_poll_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPollAt returns the old "last_poll_at" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldLastPollAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPollAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPollAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPollAt: %w", err)
	}
	return oldValue.LastPollAt, nil
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (m *FeedMutation) ClearLastPollAt() {
	m.last_poll_at = nil
	m.clearedFields[feed.FieldLastPollAt] = struct{}{}
}

// LastPollAtCleared returns if the "last_poll_at" field was cleared in this mutation.
func (m *FeedMutation) LastPollAtCleared() bool {
	_, ok := m.clearedFields[feed.FieldLastPollAt]
	return ok
}

// ResetLastPollAt resets all changes to the "last_poll_at" field.
func (m *FeedMutation) ResetLastPollAt() {
	m.last_poll_at = nil
	delete(m.clearedFields, feed.FieldLastPollAt)
}

// SetEtag sets the "etag" field.
func (m *FeedMutation) SetEtag(s string) {
	m.etag = &s
}

// Etag returns the value of the "etag" field in the mutation.
func (m *FeedMutation) Etag() (r string, exists bool) {
	v := m.etag
	if v == nil {
		return
	}
	return *v, true
}

// OldEtag returns the old "etag" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldEtag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtag: %w", err)
	}
	return oldValue.Etag, nil
}

// ClearEtag clears the value of the "etag" field.
func (m *FeedMutation) ClearEtag() {
	m.etag = nil
	m.clearedFields[feed.FieldEtag] = struct{}{}
}

// EtagCleared returns if the "etag" field was cleared in this mutation.
func (m *FeedMutation) EtagCleared() bool {
	_, ok := m.clearedFields[feed.FieldEtag]
	return ok
}

// ResetEtag resets all changes to the "etag" field.
func (m *FeedMutation) ResetEtag() {
	m.etag = nil
	delete(m.clearedFields, feed.FieldEtag)
}

// SetLastModified sets the "last_modified" field.
func (m *FeedMutation) SetLastModified(s string) {
	m.last_modified = &s
}

// LastModified returns the value of the "last_modified" field in the mutation.
func (m *FeedMutation) LastModified() (r string, exists bool) {
	v := m.last_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldLastModified returns the old "last_modified" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldLastModified(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastModified: %w", err)
	}
	return oldValue.LastModified, nil
}

// ClearLastModified clears the value of the "last_modified" field.
func (m *FeedMutation) ClearLastModified() {
	m.last_modified = nil
	m.clearedFields[feed.FieldLastModified] = struct{}{}
}

// LastModifiedCleared returns if the "last_modified" field was cleared in this mutation.
func (m *FeedMutation) LastModifiedCleared() bool {
	_, ok := m.clearedFields[feed.FieldLastModified]
	return ok
}

// ResetLastModified resets all changes to the "last_modified" field.
func (m *FeedMutation) ResetLastModified() {
	m.last_modified = nil
	delete(m.clearedFields, feed.FieldLastModified)
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (m *FeedMutation) SetConsecutiveErrors(i int) {
	m.consecutive_errors = &i
	m.addconsecutive_errors = nil
}

// ConsecutiveErrors returns the value of the "consecutive_errors" field in the mutation.
func (m *FeedMutation) ConsecutiveErrors() (r int, exists bool) {
	v := m.consecutive_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveErrors returns the old "consecutive_errors" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldConsecutiveErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveErrors: %w", err)
	}
	return oldValue.ConsecutiveErrors, nil
}

// AddConsecutiveErrors adds i to the "consecutive_errors" field.
func (m *FeedMutation) AddConsecutiveErrors(i int) {
	if m.addconsecutive_errors != nil {
		*m.addconsecutive_errors += i
	} else {
		m.addconsecutive_errors = &i
	}
}

// AddedConsecutiveErrors returns the value that was added to the "consecutive_errors" field in this mutation.
func (m *FeedMutation) AddedConsecutiveErrors() (r int, exists bool) {
	v := m.addconsecutive_errors
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveErrors resets all changes to the "consecutive_errors" field.
func (m *FeedMutation) ResetConsecutiveErrors() {
	m.consecutive_errors = nil
	m.addconsecutive_errors = nil
}

// SetArticleCount sets the "article_count" field.
func (m *FeedMutation) SetArticleCount(i int) {
	m.article_count = &i
	m.addarticle_count = nil
}

// ArticleCount returns the value of the "article_count" field in the mutation.
func (m *FeedMutation) ArticleCount() (r int, exists bool) {
	v := m.article_count
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleCount returns the old "article_count" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldArticleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleCount: %w", err)
	}
	return oldValue.ArticleCount, nil
}

// AddArticleCount adds i to the "article_count" field.
func (m *FeedMutation) AddArticleCount(i int) {
	if m.addarticle_count != nil {
		*m.addarticle_count += i
	} else {
		m.addarticle_count = &i
	}
}

// AddedArticleCount returns the value that was added to the "article_count" field in this mutation.
func (m *FeedMutation) AddedArticleCount() (r int, exists bool) {
	v := m.addarticle_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleCount resets all changes to the "article_count" field.
func (m *FeedMutation) ResetArticleCount() {
	m.article_count = nil
	m.addarticle_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FeedMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FeedMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FeedMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FeedMutation builder.
func (m *FeedMutation) Where(ps ...predicate.Feed) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feed, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feed).
func (m *FeedMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.route != nil {
		fields = append(fields, feed.FieldRoute)
	}
	if m.name != nil {
		fields = append(fields, feed.FieldName)
	}
	if m.category != nil {
		fields = append(fields, feed.FieldCategory)
	}
	if m.interval_minutes != nil {
		fields = append(fields, feed.FieldIntervalMinutes)
	}
	if m.fulltext != nil {
		fields = append(fields, feed.FieldFulltext)
	}
	if m.enabled != nil {
		fields = append(fields, feed.FieldEnabled)
	}
	if m.last_poll_at != nil {
		fields = append(fields, feed.FieldLastPollAt)
	}
	if m.etag != nil {
		fields = append(fields, feed.FieldEtag)
	}
	if m.last_modified != nil {
		fields = append(fields, feed.FieldLastModified)
	}
	if m.consecutive_errors != nil {
		fields = append(fields, feed.FieldConsecutiveErrors)
	}
	if m.article_count != nil {
		fields = append(fields, feed.FieldArticleCount)
	}
	if m.created_at != nil {
		fields = append(fields, feed.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, feed.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feed.FieldRoute:
		return m.Route()
	case feed.FieldName:
		return m.Name()
	case feed.FieldCategory:
		return m.Category()
	case feed.FieldIntervalMinutes:
		return m.IntervalMinutes()
	case feed.FieldFulltext:
		return m.Fulltext()
	case feed.FieldEnabled:
		return m.Enabled()
	case feed.FieldLastPollAt:
		return m.LastPollAt()
	case feed.FieldEtag:
		return m.Etag()
	case feed.FieldLastModified:
		return m.LastModified()
	case feed.FieldConsecutiveErrors:
		return m.ConsecutiveErrors()
	case feed.FieldArticleCount:
		return m.ArticleCount()
	case feed.FieldCreatedAt:
		return m.CreatedAt()
	case feed.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feed.FieldRoute:
		return m.OldRoute(ctx)
	case feed.FieldName:
		return m.OldName(ctx)
	case feed.FieldCategory:
		return m.OldCategory(ctx)
	case feed.FieldIntervalMinutes:
		return m.OldIntervalMinutes(ctx)
	case feed.FieldFulltext:
		return m.OldFulltext(ctx)
	case feed.FieldEnabled:
		return m.OldEnabled(ctx)
	case feed.FieldLastPollAt:
		return m.OldLastPollAt(ctx)
	case feed.FieldEtag:
		return m.OldEtag(ctx)
	case feed.FieldLastModified:
		return m.OldLastModified(ctx)
	case feed.FieldConsecutiveErrors:
		return m.OldConsecutiveErrors(ctx)
	case feed.FieldArticleCount:
		return m.OldArticleCount(ctx)
	case feed.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case feed.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Feed field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feed.FieldRoute:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoute(v)
		return nil
	case feed.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case feed.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case feed.FieldIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalMinutes(v)
		return nil
	case feed.FieldFulltext:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFulltext(v)
		return nil
	case feed.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case feed.FieldLastPollAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPollAt(v)
		return nil
	case feed.FieldEtag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtag(v)
		return nil
	case feed.FieldLastModified:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastModified(v)
		return nil
	case feed.FieldConsecutiveErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveErrors(v)
		return nil
	case feed.FieldArticleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleCount(v)
		return nil
	case feed.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case feed.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Feed field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_minutes != nil {
		fields = append(fields, feed.FieldIntervalMinutes)
	}
	if m.addconsecutive_errors != nil {
		fields = append(fields, feed.FieldConsecutiveErrors)
	}
	if m.addarticle_count != nil {
		fields = append(fields, feed.FieldArticleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feed.FieldIntervalMinutes:
		return m.AddedIntervalMinutes()
	case feed.FieldConsecutiveErrors:
		return m.AddedConsecutiveErrors()
	case feed.FieldArticleCount:
		return m.AddedArticleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feed.FieldIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalMinutes(v)
		return nil
	case feed.FieldConsecutiveErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveErrors(v)
		return nil
	case feed.FieldArticleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleCount(v)
		return nil
	}
	return fmt.Errorf("unknown Feed numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feed.FieldName) {
		fields = append(fields, feed.FieldName)
	}
	if m.FieldCleared(feed.FieldCategory) {
		fields = append(fields, feed.FieldCategory)
	}
	if m.FieldCleared(feed.FieldLastPollAt) {
		fields = append(fields, feed.FieldLastPollAt)
	}
	if m.FieldCleared(feed.FieldEtag) {
		fields = append(fields, feed.FieldEtag)
	}
	if m.FieldCleared(feed.FieldLastModified) {
		fields = append(fields, feed.FieldLastModified)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedMutation) ClearField(name string) error {
	switch name {
	case feed.FieldName:
		m.ClearName()
		return nil
	case feed.FieldCategory:
		m.ClearCategory()
		return nil
	case feed.FieldLastPollAt:
		m.ClearLastPollAt()
		return nil
	case feed.FieldEtag:
		m.ClearEtag()
		return nil
	case feed.FieldLastModified:
		m.ClearLastModified()
		return nil
	}
	return fmt.Errorf("unknown Feed nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedMutation) ResetField(name string) error {
	switch name {
	case feed.FieldRoute:
		m.ResetRoute()
		return nil
	case feed.FieldName:
		m.ResetName()
		return nil
	case feed.FieldCategory:
		m.ResetCategory()
		return nil
	case feed.FieldIntervalMinutes:
		m.ResetIntervalMinutes()
		return nil
	case feed.FieldFulltext:
		m.ResetFulltext()
		return nil
	case feed.FieldEnabled:
		m.ResetEnabled()
		return nil
	case feed.FieldLastPollAt:
		m.ResetLastPollAt()
		return nil
	case feed.FieldEtag:
		m.ResetEtag()
		return nil
	case feed.FieldLastModified:
		m.ResetLastModified()
		return nil
	case feed.FieldConsecutiveErrors:
		m.ResetConsecutiveErrors()
		return nil
	case feed.FieldArticleCount:
		m.ResetArticleCount()
		return nil
	case feed.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case feed.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Feed field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Feed unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Feed edge %s", name)
}

// PipelineJobMutation represents an operation that mutates the PipelineJob nodes in the graph.
type PipelineJobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	kind              *pipelinejob.Kind
	queue             *string
	payload           *map[string]interface{}
	status            *pipelinejob.Status
	attempts          *int
	addattempts       *int
	max_attempts      *int
	addmax_attempts   *int
	run_at            *time.Time
	pod_id            *string
	started_at        *time.Time
	completed_at      *time.Time
	last_heartbeat_at *time.Time
	error_message     *string
	result            *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PipelineJob, error)
	predicates        []predicate.PipelineJob
}

var _ ent.Mutation = (*PipelineJobMutation)(nil)

// pipelinejobOption allows management of the mutation configuration using functional options.
type pipelinejobOption func(*PipelineJobMutation)

// newPipelineJobMutation creates new mutation for the PipelineJob entity.
func newPipelineJobMutation(c config, op Op, opts ...pipelinejobOption) *PipelineJobMutation {
	m := &PipelineJobMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineJobID sets the ID field of the mutation.
func withPipelineJobID(id string) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineJob
		)
		m.oldValue = func(ctx context.Context) (*PipelineJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineJob sets the old PipelineJob of the mutation.
func withPipelineJob(node *PipelineJob) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		m.oldValue = func(context.Context) (*PipelineJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineJob entities.
func (m *PipelineJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *PipelineJobMutation) SetKind(pi pipelinejob.Kind) {
	m.kind = &pi
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PipelineJobMutation) Kind() (r pipelinejob.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldKind(ctx context.Context) (v pipelinejob.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PipelineJobMutation) ResetKind() {
	m.kind = nil
}

// SetQueue sets the "queue" field.
func (m *PipelineJobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *PipelineJobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *PipelineJobMutation) ResetQueue() {
	m.queue = nil
}

// SetPayload sets the "payload" field.
func (m *PipelineJobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PipelineJobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *PipelineJobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[pipelinejob.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *PipelineJobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *PipelineJobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, pipelinejob.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *PipelineJobMutation) SetStatus(pi pipelinejob.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineJobMutation) Status() (r pipelinejob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStatus(ctx context.Context) (v pipelinejob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *PipelineJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *PipelineJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *PipelineJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *PipelineJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *PipelineJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *PipelineJobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *PipelineJobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *PipelineJobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *PipelineJobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *PipelineJobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRunAt sets the "run_at" field.
func (m *PipelineJobMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *PipelineJobMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *PipelineJobMutation) ResetRunAt() {
	m.run_at = nil
}

// SetPodID sets the "pod_id" field.
func (m *PipelineJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *PipelineJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *PipelineJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[pipelinejob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *PipelineJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *PipelineJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, pipelinejob.FieldPodID)
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinejob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinejob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinejob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinejob.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *PipelineJobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *PipelineJobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *PipelineJobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[pipelinejob.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *PipelineJobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *PipelineJobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, pipelinejob.FieldLastHeartbeatAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinejob.FieldErrorMessage)
}

// SetResult sets the "result" field.
func (m *PipelineJobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *PipelineJobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *PipelineJobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[pipelinejob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *PipelineJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *PipelineJobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, pipelinejob.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PipelineJobMutation builder.
func (m *PipelineJobMutation) Where(ps ...predicate.PipelineJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineJob).
func (m *PipelineJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.kind != nil {
		fields = append(fields, pipelinejob.FieldKind)
	}
	if m.queue != nil {
		fields = append(fields, pipelinejob.FieldQueue)
	}
	if m.payload != nil {
		fields = append(fields, pipelinejob.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, pipelinejob.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, pipelinejob.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, pipelinejob.FieldMaxAttempts)
	}
	if m.run_at != nil {
		fields = append(fields, pipelinejob.FieldRunAt)
	}
	if m.pod_id != nil {
		fields = append(fields, pipelinejob.FieldPodID)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinejob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinejob.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, pipelinejob.FieldLastHeartbeatAt)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinejob.FieldErrorMessage)
	}
	if m.result != nil {
		fields = append(fields, pipelinejob.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinejob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldKind:
		return m.Kind()
	case pipelinejob.FieldQueue:
		return m.Queue()
	case pipelinejob.FieldPayload:
		return m.Payload()
	case pipelinejob.FieldStatus:
		return m.Status()
	case pipelinejob.FieldAttempts:
		return m.Attempts()
	case pipelinejob.FieldMaxAttempts:
		return m.MaxAttempts()
	case pipelinejob.FieldRunAt:
		return m.RunAt()
	case pipelinejob.FieldPodID:
		return m.PodID()
	case pipelinejob.FieldStartedAt:
		return m.StartedAt()
	case pipelinejob.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinejob.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case pipelinejob.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinejob.FieldResult:
		return m.Result()
	case pipelinejob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinejob.FieldKind:
		return m.OldKind(ctx)
	case pipelinejob.FieldQueue:
		return m.OldQueue(ctx)
	case pipelinejob.FieldPayload:
		return m.OldPayload(ctx)
	case pipelinejob.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinejob.FieldAttempts:
		return m.OldAttempts(ctx)
	case pipelinejob.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case pipelinejob.FieldRunAt:
		return m.OldRunAt(ctx)
	case pipelinejob.FieldPodID:
		return m.OldPodID(ctx)
	case pipelinejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinejob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinejob.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case pipelinejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinejob.FieldResult:
		return m.OldResult(ctx)
	case pipelinejob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldKind:
		v, ok := value.(pipelinejob.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case pipelinejob.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case pipelinejob.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case pipelinejob.FieldStatus:
		v, ok := value.(pipelinejob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinejob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case pipelinejob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case pipelinejob.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case pipelinejob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case pipelinejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinejob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinejob.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case pipelinejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinejob.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case pipelinejob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, pipelinejob.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, pipelinejob.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldAttempts:
		return m.AddedAttempts()
	case pipelinejob.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case pipelinejob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinejob.FieldPayload) {
		fields = append(fields, pipelinejob.FieldPayload)
	}
	if m.FieldCleared(pipelinejob.FieldPodID) {
		fields = append(fields, pipelinejob.FieldPodID)
	}
	if m.FieldCleared(pipelinejob.FieldStartedAt) {
		fields = append(fields, pipelinejob.FieldStartedAt)
	}
	if m.FieldCleared(pipelinejob.FieldCompletedAt) {
		fields = append(fields, pipelinejob.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinejob.FieldLastHeartbeatAt) {
		fields = append(fields, pipelinejob.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(pipelinejob.FieldErrorMessage) {
		fields = append(fields, pipelinejob.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinejob.FieldResult) {
		fields = append(fields, pipelinejob.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineJobMutation) ClearField(name string) error {
	switch name {
	case pipelinejob.FieldPayload:
		m.ClearPayload()
		return nil
	case pipelinejob.FieldPodID:
		m.ClearPodID()
		return nil
	case pipelinejob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinejob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinejob.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case pipelinejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinejob.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineJobMutation) ResetField(name string) error {
	switch name {
	case pipelinejob.FieldKind:
		m.ResetKind()
		return nil
	case pipelinejob.FieldQueue:
		m.ResetQueue()
		return nil
	case pipelinejob.FieldPayload:
		m.ResetPayload()
		return nil
	case pipelinejob.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinejob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case pipelinejob.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case pipelinejob.FieldRunAt:
		m.ResetRunAt()
		return nil
	case pipelinejob.FieldPodID:
		m.ResetPodID()
		return nil
	case pipelinejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinejob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinejob.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case pipelinejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinejob.FieldResult:
		m.ResetResult()
		return nil
	case pipelinejob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineJob edge %s", name)
}

// PipelineTraceMutation represents an operation that mutates the PipelineTrace nodes in the graph.
type PipelineTraceMutation struct {
	config
	op             Op
	typ            string
	id             *string
	layer          *string
	node           *string
	status         *pipelinetrace.Status
	duration_ms    *int
	addduration_ms *int
	metadata       *map[string]interface{}
	error          *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	article        *string
	clearedarticle bool
	done           bool
	oldValue       func(context.Context) (*PipelineTrace, error)
	predicates     []predicate.PipelineTrace
}

var _ ent.Mutation = (*PipelineTraceMutation)(nil)

// pipelinetraceOption allows management of the mutation configuration using functional options.
type pipelinetraceOption func(*PipelineTraceMutation)

// newPipelineTraceMutation creates new mutation for the PipelineTrace entity.
func newPipelineTraceMutation(c config, op Op, opts ...pipelinetraceOption) *PipelineTraceMutation {
	m := &PipelineTraceMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineTraceID sets the ID field of the mutation.
func withPipelineTraceID(id string) pipelinetraceOption {
	return func(m *PipelineTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineTrace
		)
		m.oldValue = func(ctx context.Context) (*PipelineTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineTrace sets the old PipelineTrace of the mutation.
func withPipelineTrace(node *PipelineTrace) pipelinetraceOption {
	return func(m *PipelineTraceMutation) {
		m.oldValue = func(context.Context) (*PipelineTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineTrace entities.
func (m *PipelineTraceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineTraceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineTraceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArticleID sets the "article_id" field.
func (m *PipelineTraceMutation) SetArticleID(s string) {
	m.article = &s
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *PipelineTraceMutation) ArticleID() (r string, exists bool) {
	v := m.article
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the PipelineTrace entity.
// If the PipelineTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTraceMutation) OldArticleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *PipelineTraceMutation) ResetArticleID() {
	m.article = nil
}

// SetLayer sets the "layer" field.
func (m *PipelineTraceMutation) SetLayer(s string) {
	m.layer = &s
}

// Layer returns the value of the "layer" field in the mutation.
func (m *PipelineTraceMutation) Layer() (r string, exists bool) {
	v := m.layer
	if v == nil {
		return
	}
	return *v, true
}

// OldLayer returns the old "layer" field's value of the PipelineTrace entity.
// If the PipelineTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTraceMutation) OldLayer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayer: %w", err)
	}
	return oldValue.Layer, nil
}

// ResetLayer resets all changes to the "layer" field.
func (m *PipelineTraceMutation) ResetLayer() {
	m.layer = nil
}

// SetNode sets the "node" field.
func (m *PipelineTraceMutation) SetNode(s string) {
	m.node = &s
}

// Node returns the value of the "node" field in the mutation.
func (m *PipelineTraceMutation) Node() (r string, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNode returns the old "node" field's value of the PipelineTrace entity.
// If the PipelineTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTraceMutation) OldNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNode: %w", err)
	}
	return oldValue.Node, nil
}

// ResetNode resets all changes to the "node" field.
func (m *PipelineTraceMutation) ResetNode() {
	m.node = nil
}

// SetStatus sets the "status" field.
func (m *PipelineTraceMutation) SetStatus(pi pipelinetrace.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineTraceMutation) Status() (r pipelinetrace.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineTrace entity.
// If the PipelineTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTraceMutation) OldStatus(ctx context.Context) (v pipelinetrace.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineTraceMutation) ResetStatus() {
	m.status = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *PipelineTraceMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *PipelineTraceMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the PipelineTrace entity.
// If the PipelineTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTraceMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *PipelineTraceMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *PipelineTraceMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *PipelineTraceMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetMetadata sets the "metadata" field.
func (m *PipelineTraceMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PipelineTraceMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the PipelineTrace entity.
// If the PipelineTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTraceMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PipelineTraceMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[pipelinetrace.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PipelineTraceMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[pipelinetrace.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PipelineTraceMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, pipelinetrace.FieldMetadata)
}

// SetError sets the "error" field.
func (m *PipelineTraceMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *PipelineTraceMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the PipelineTrace entity.
// If the PipelineTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTraceMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *PipelineTraceMutation) ClearError() {
	m.error = nil
	m.clearedFields[pipelinetrace.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *PipelineTraceMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[pipelinetrace.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *PipelineTraceMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, pipelinetrace.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineTraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineTraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineTrace entity.
// If the PipelineTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineTraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineTraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearArticle clears the "article" edge to the Article entity.
func (m *PipelineTraceMutation) ClearArticle() {
	m.clearedarticle = true
	m.clearedFields[pipelinetrace.FieldArticleID] = struct{}{}
}

// ArticleCleared reports if the "article" edge to the Article entity was cleared.
func (m *PipelineTraceMutation) ArticleCleared() bool {
	return m.clearedarticle
}

// ArticleIDs returns the "article" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArticleID instead. It exists only for internal usage by the builders.
func (m *PipelineTraceMutation) ArticleIDs() (ids []string) {
	if id := m.article; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArticle resets all changes to the "article" edge.
func (m *PipelineTraceMutation) ResetArticle() {
	m.article = nil
	m.clearedarticle = false
}

// Where appends a list predicates to the PipelineTraceMutation builder.
func (m *PipelineTraceMutation) Where(ps ...predicate.PipelineTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineTrace).
func (m *PipelineTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineTraceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.article != nil {
		fields = append(fields, pipelinetrace.FieldArticleID)
	}
	if m.layer != nil {
		fields = append(fields, pipelinetrace.FieldLayer)
	}
	if m.node != nil {
		fields = append(fields, pipelinetrace.FieldNode)
	}
	if m.status != nil {
		fields = append(fields, pipelinetrace.FieldStatus)
	}
	if m.duration_ms != nil {
		fields = append(fields, pipelinetrace.FieldDurationMs)
	}
	if m.metadata != nil {
		fields = append(fields, pipelinetrace.FieldMetadata)
	}
	if m.error != nil {
		fields = append(fields, pipelinetrace.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinetrace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinetrace.FieldArticleID:
		return m.ArticleID()
	case pipelinetrace.FieldLayer:
		return m.Layer()
	case pipelinetrace.FieldNode:
		return m.Node()
	case pipelinetrace.FieldStatus:
		return m.Status()
	case pipelinetrace.FieldDurationMs:
		return m.DurationMs()
	case pipelinetrace.FieldMetadata:
		return m.Metadata()
	case pipelinetrace.FieldError:
		return m.Error()
	case pipelinetrace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinetrace.FieldArticleID:
		return m.OldArticleID(ctx)
	case pipelinetrace.FieldLayer:
		return m.OldLayer(ctx)
	case pipelinetrace.FieldNode:
		return m.OldNode(ctx)
	case pipelinetrace.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinetrace.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case pipelinetrace.FieldMetadata:
		return m.OldMetadata(ctx)
	case pipelinetrace.FieldError:
		return m.OldError(ctx)
	case pipelinetrace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinetrace.FieldArticleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case pipelinetrace.FieldLayer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayer(v)
		return nil
	case pipelinetrace.FieldNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNode(v)
		return nil
	case pipelinetrace.FieldStatus:
		v, ok := value.(pipelinetrace.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinetrace.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case pipelinetrace.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case pipelinetrace.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case pipelinetrace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineTraceMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, pipelinetrace.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineTraceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinetrace.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinetrace.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinetrace.FieldMetadata) {
		fields = append(fields, pipelinetrace.FieldMetadata)
	}
	if m.FieldCleared(pipelinetrace.FieldError) {
		fields = append(fields, pipelinetrace.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineTraceMutation) ClearField(name string) error {
	switch name {
	case pipelinetrace.FieldMetadata:
		m.ClearMetadata()
		return nil
	case pipelinetrace.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown PipelineTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineTraceMutation) ResetField(name string) error {
	switch name {
	case pipelinetrace.FieldArticleID:
		m.ResetArticleID()
		return nil
	case pipelinetrace.FieldLayer:
		m.ResetLayer()
		return nil
	case pipelinetrace.FieldNode:
		m.ResetNode()
		return nil
	case pipelinetrace.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinetrace.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case pipelinetrace.FieldMetadata:
		m.ResetMetadata()
		return nil
	case pipelinetrace.FieldError:
		m.ResetError()
		return nil
	case pipelinetrace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.article != nil {
		edges = append(edges, pipelinetrace.EdgeArticle)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineTraceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinetrace.EdgeArticle:
		if id := m.article; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarticle {
		edges = append(edges, pipelinetrace.EdgeArticle)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineTraceMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinetrace.EdgeArticle:
		return m.clearedarticle
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineTraceMutation) ClearEdge(name string) error {
	switch name {
	case pipelinetrace.EdgeArticle:
		m.ClearArticle()
		return nil
	}
	return fmt.Errorf("unknown PipelineTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineTraceMutation) ResetEdge(name string) error {
	switch name {
	case pipelinetrace.EdgeArticle:
		m.ResetArticle()
		return nil
	}
	return fmt.Errorf("unknown PipelineTrace edge %s", name)
}

// SystemSettingMutation represents an operation that mutates the SystemSetting nodes in the graph.
type SystemSettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SystemSetting, error)
	predicates    []predicate.SystemSetting
}

var _ ent.Mutation = (*SystemSettingMutation)(nil)

// systemsettingOption allows management of the mutation configuration using functional options.
type systemsettingOption func(*SystemSettingMutation)

// newSystemSettingMutation creates new mutation for the SystemSetting entity.
func newSystemSettingMutation(c config, op Op, opts ...systemsettingOption) *SystemSettingMutation {
	m := &SystemSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemSettingID sets the ID field of the mutation.
func withSystemSettingID(id int) systemsettingOption {
	return func(m *SystemSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemSetting
		)
		m.oldValue = func(ctx context.Context) (*SystemSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemSetting sets the old SystemSetting of the mutation.
func withSystemSetting(node *SystemSetting) systemsettingOption {
	return func(m *SystemSettingMutation) {
		m.oldValue = func(context.Context) (*SystemSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemSettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemSettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SystemSettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SystemSettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SystemSettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SystemSettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SystemSettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SystemSettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SystemSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SystemSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SystemSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SystemSettingMutation builder.
func (m *SystemSettingMutation) Where(ps ...predicate.SystemSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemSetting).
func (m *SystemSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemSettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, systemsetting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, systemsetting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, systemsetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemsetting.FieldKey:
		return m.Key()
	case systemsetting.FieldValue:
		return m.Value()
	case systemsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemsetting.FieldKey:
		return m.OldKey(ctx)
	case systemsetting.FieldValue:
		return m.OldValue(ctx)
	case systemsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemsetting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case systemsetting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case systemsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SystemSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemSettingMutation) ResetField(name string) error {
	switch name {
	case systemsetting.FieldKey:
		m.ResetKey()
		return nil
	case systemsetting.FieldValue:
		m.ResetValue()
		return nil
	case systemsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SystemSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SystemSetting edge %s", name)
}
