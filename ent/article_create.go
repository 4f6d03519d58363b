// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/pipelinetrace"
)

// ArticleCreate is the builder for creating a Article entity.
type ArticleCreate struct {
	config
	mutation *ArticleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSource sets the "source" field.
func (_c *ArticleCreate) SetSource(v string) *ArticleCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ArticleCreate) SetURL(v string) *ArticleCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ArticleCreate) SetTitle(v string) *ArticleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ArticleCreate) SetSummary(v string) *ArticleCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableSummary(v *string) *ArticleCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetSymbol sets the "symbol" field.
func (_c *ArticleCreate) SetSymbol(v string) *ArticleCreate {
	_c.mutation.SetSymbol(v)
	return _c
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableSymbol(v *string) *ArticleCreate {
	if v != nil {
		_c.SetSymbol(*v)
	}
	return _c
}

// SetMarket sets the "market" field.
func (_c *ArticleCreate) SetMarket(v string) *ArticleCreate {
	_c.mutation.SetMarket(v)
	return _c
}

// SetNillableMarket sets the "market" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableMarket(v *string) *ArticleCreate {
	if v != nil {
		_c.SetMarket(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *ArticleCreate) SetPublishedAt(v time.Time) *ArticleCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *ArticleCreate) SetNillablePublishedAt(v *time.Time) *ArticleCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArticleCreate) SetCreatedAt(v time.Time) *ArticleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableCreatedAt(v *time.Time) *ArticleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArticleCreate) SetUpdatedAt(v time.Time) *ArticleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableUpdatedAt(v *time.Time) *ArticleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetContentStatus sets the "content_status" field.
func (_c *ArticleCreate) SetContentStatus(v article.ContentStatus) *ArticleCreate {
	_c.mutation.SetContentStatus(v)
	return _c
}

// SetNillableContentStatus sets the "content_status" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableContentStatus(v *article.ContentStatus) *ArticleCreate {
	if v != nil {
		_c.SetContentStatus(*v)
	}
	return _c
}

// SetFilterStatus sets the "filter_status" field.
func (_c *ArticleCreate) SetFilterStatus(v article.FilterStatus) *ArticleCreate {
	_c.mutation.SetFilterStatus(v)
	return _c
}

// SetNillableFilterStatus sets the "filter_status" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableFilterStatus(v *article.FilterStatus) *ArticleCreate {
	if v != nil {
		_c.SetFilterStatus(*v)
	}
	return _c
}

// SetContentFilePath sets the "content_file_path" field.
func (_c *ArticleCreate) SetContentFilePath(v string) *ArticleCreate {
	_c.mutation.SetContentFilePath(v)
	return _c
}

// SetNillableContentFilePath sets the "content_file_path" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableContentFilePath(v *string) *ArticleCreate {
	if v != nil {
		_c.SetContentFilePath(*v)
	}
	return _c
}

// SetRelatedEntities sets the "related_entities" field.
func (_c *ArticleCreate) SetRelatedEntities(v []map[string]interface{}) *ArticleCreate {
	_c.mutation.SetRelatedEntities(v)
	return _c
}

// SetIndustryTags sets the "industry_tags" field.
func (_c *ArticleCreate) SetIndustryTags(v []string) *ArticleCreate {
	_c.mutation.SetIndustryTags(v)
	return _c
}

// SetEventTags sets the "event_tags" field.
func (_c *ArticleCreate) SetEventTags(v []string) *ArticleCreate {
	_c.mutation.SetEventTags(v)
	return _c
}

// SetSentimentTag sets the "sentiment_tag" field.
func (_c *ArticleCreate) SetSentimentTag(v string) *ArticleCreate {
	_c.mutation.SetSentimentTag(v)
	return _c
}

// SetNillableSentimentTag sets the "sentiment_tag" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableSentimentTag(v *string) *ArticleCreate {
	if v != nil {
		_c.SetSentimentTag(*v)
	}
	return _c
}

// SetInvestmentSummary sets the "investment_summary" field.
func (_c *ArticleCreate) SetInvestmentSummary(v string) *ArticleCreate {
	_c.mutation.SetInvestmentSummary(v)
	return _c
}

// SetNillableInvestmentSummary sets the "investment_summary" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableInvestmentSummary(v *string) *ArticleCreate {
	if v != nil {
		_c.SetInvestmentSummary(*v)
	}
	return _c
}

// SetDetailedSummary sets the "detailed_summary" field.
func (_c *ArticleCreate) SetDetailedSummary(v string) *ArticleCreate {
	_c.mutation.SetDetailedSummary(v)
	return _c
}

// SetNillableDetailedSummary sets the "detailed_summary" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableDetailedSummary(v *string) *ArticleCreate {
	if v != nil {
		_c.SetDetailedSummary(*v)
	}
	return _c
}

// SetAnalysisReport sets the "analysis_report" field.
func (_c *ArticleCreate) SetAnalysisReport(v string) *ArticleCreate {
	_c.mutation.SetAnalysisReport(v)
	return _c
}

// SetNillableAnalysisReport sets the "analysis_report" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableAnalysisReport(v *string) *ArticleCreate {
	if v != nil {
		_c.SetAnalysisReport(*v)
	}
	return _c
}

// SetPrimaryEntity sets the "primary_entity" field.
func (_c *ArticleCreate) SetPrimaryEntity(v string) *ArticleCreate {
	_c.mutation.SetPrimaryEntity(v)
	return _c
}

// SetNillablePrimaryEntity sets the "primary_entity" field if the given value is not nil.
func (_c *ArticleCreate) SetNillablePrimaryEntity(v *string) *ArticleCreate {
	if v != nil {
		_c.SetPrimaryEntity(*v)
	}
	return _c
}

// SetHasStockEntity sets the "has_stock_entity" field.
func (_c *ArticleCreate) SetHasStockEntity(v bool) *ArticleCreate {
	_c.mutation.SetHasStockEntity(v)
	return _c
}

// SetNillableHasStockEntity sets the "has_stock_entity" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableHasStockEntity(v *bool) *ArticleCreate {
	if v != nil {
		_c.SetHasStockEntity(*v)
	}
	return _c
}

// SetHasMacroEntity sets the "has_macro_entity" field.
func (_c *ArticleCreate) SetHasMacroEntity(v bool) *ArticleCreate {
	_c.mutation.SetHasMacroEntity(v)
	return _c
}

// SetNillableHasMacroEntity sets the "has_macro_entity" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableHasMacroEntity(v *bool) *ArticleCreate {
	if v != nil {
		_c.SetHasMacroEntity(*v)
	}
	return _c
}

// SetMaxEntityScore sets the "max_entity_score" field.
func (_c *ArticleCreate) SetMaxEntityScore(v float64) *ArticleCreate {
	_c.mutation.SetMaxEntityScore(v)
	return _c
}

// SetNillableMaxEntityScore sets the "max_entity_score" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableMaxEntityScore(v *float64) *ArticleCreate {
	if v != nil {
		_c.SetMaxEntityScore(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ArticleCreate) SetErrorMessage(v string) *ArticleCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ArticleCreate) SetNillableErrorMessage(v *string) *ArticleCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArticleCreate) SetID(v string) *ArticleCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTraceIDs adds the "traces" edge to the PipelineTrace entity by IDs.
func (_c *ArticleCreate) AddTraceIDs(ids ...string) *ArticleCreate {
	_c.mutation.AddTraceIDs(ids...)
	return _c
}

// AddTraces adds the "traces" edges to the PipelineTrace entity.
func (_c *ArticleCreate) AddTraces(v ...*PipelineTrace) *ArticleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTraceIDs(ids...)
}

// Mutation returns the ArticleMutation object of the builder.
func (_c *ArticleCreate) Mutation() *ArticleMutation {
	return _c.mutation
}

// Save creates the Article in the database.
func (_c *ArticleCreate) Save(ctx context.Context) (*Article, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArticleCreate) SaveX(ctx context.Context) *Article {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArticleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := article.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := article.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ContentStatus(); !ok {
		v := article.DefaultContentStatus
		_c.mutation.SetContentStatus(v)
	}
	if _, ok := _c.mutation.FilterStatus(); !ok {
		v := article.DefaultFilterStatus
		_c.mutation.SetFilterStatus(v)
	}
	if _, ok := _c.mutation.HasStockEntity(); !ok {
		v := article.DefaultHasStockEntity
		_c.mutation.SetHasStockEntity(v)
	}
	if _, ok := _c.mutation.HasMacroEntity(); !ok {
		v := article.DefaultHasMacroEntity
		_c.mutation.SetHasMacroEntity(v)
	}
	if _, ok := _c.mutation.MaxEntityScore(); !ok {
		v := article.DefaultMaxEntityScore
		_c.mutation.SetMaxEntityScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArticleCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Article.source"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Article.url"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Article.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Article.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Article.updated_at"`)}
	}
	if _, ok := _c.mutation.ContentStatus(); !ok {
		return &ValidationError{Name: "content_status", err: errors.New(`ent: missing required field "Article.content_status"`)}
	}
	if v, ok := _c.mutation.ContentStatus(); ok {
		if err := article.ContentStatusValidator(v); err != nil {
			return &ValidationError{Name: "content_status", err: fmt.Errorf(`ent: validator failed for field "Article.content_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilterStatus(); !ok {
		return &ValidationError{Name: "filter_status", err: errors.New(`ent: missing required field "Article.filter_status"`)}
	}
	if v, ok := _c.mutation.FilterStatus(); ok {
		if err := article.FilterStatusValidator(v); err != nil {
			return &ValidationError{Name: "filter_status", err: fmt.Errorf(`ent: validator failed for field "Article.filter_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasStockEntity(); !ok {
		return &ValidationError{Name: "has_stock_entity", err: errors.New(`ent: missing required field "Article.has_stock_entity"`)}
	}
	if _, ok := _c.mutation.HasMacroEntity(); !ok {
		return &ValidationError{Name: "has_macro_entity", err: errors.New(`ent: missing required field "Article.has_macro_entity"`)}
	}
	if _, ok := _c.mutation.MaxEntityScore(); !ok {
		return &ValidationError{Name: "max_entity_score", err: errors.New(`ent: missing required field "Article.max_entity_score"`)}
	}
	return nil
}

func (_c *ArticleCreate) sqlSave(ctx context.Context) (*Article, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Article.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArticleCreate) createSpec() (*Article, *sqlgraph.CreateSpec) {
	var (
		_node = &Article{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(article.Table, sqlgraph.NewFieldSpec(article.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(article.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(article.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(article.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(article.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Symbol(); ok {
		_spec.SetField(article.FieldSymbol, field.TypeString, value)
		_node.Symbol = value
	}
	if value, ok := _c.mutation.Market(); ok {
		_spec.SetField(article.FieldMarket, field.TypeString, value)
		_node.Market = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(article.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(article.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ContentStatus(); ok {
		_spec.SetField(article.FieldContentStatus, field.TypeEnum, value)
		_node.ContentStatus = value
	}
	if value, ok := _c.mutation.FilterStatus(); ok {
		_spec.SetField(article.FieldFilterStatus, field.TypeEnum, value)
		_node.FilterStatus = value
	}
	if value, ok := _c.mutation.ContentFilePath(); ok {
		_spec.SetField(article.FieldContentFilePath, field.TypeString, value)
		_node.ContentFilePath = &value
	}
	if value, ok := _c.mutation.RelatedEntities(); ok {
		_spec.SetField(article.FieldRelatedEntities, field.TypeJSON, value)
		_node.RelatedEntities = value
	}
	if value, ok := _c.mutation.IndustryTags(); ok {
		_spec.SetField(article.FieldIndustryTags, field.TypeJSON, value)
		_node.IndustryTags = value
	}
	if value, ok := _c.mutation.EventTags(); ok {
		_spec.SetField(article.FieldEventTags, field.TypeJSON, value)
		_node.EventTags = value
	}
	if value, ok := _c.mutation.SentimentTag(); ok {
		_spec.SetField(article.FieldSentimentTag, field.TypeString, value)
		_node.SentimentTag = value
	}
	if value, ok := _c.mutation.InvestmentSummary(); ok {
		_spec.SetField(article.FieldInvestmentSummary, field.TypeString, value)
		_node.InvestmentSummary = value
	}
	if value, ok := _c.mutation.DetailedSummary(); ok {
		_spec.SetField(article.FieldDetailedSummary, field.TypeString, value)
		_node.DetailedSummary = value
	}
	if value, ok := _c.mutation.AnalysisReport(); ok {
		_spec.SetField(article.FieldAnalysisReport, field.TypeString, value)
		_node.AnalysisReport = value
	}
	if value, ok := _c.mutation.PrimaryEntity(); ok {
		_spec.SetField(article.FieldPrimaryEntity, field.TypeString, value)
		_node.PrimaryEntity = value
	}
	if value, ok := _c.mutation.HasStockEntity(); ok {
		_spec.SetField(article.FieldHasStockEntity, field.TypeBool, value)
		_node.HasStockEntity = value
	}
	if value, ok := _c.mutation.HasMacroEntity(); ok {
		_spec.SetField(article.FieldHasMacroEntity, field.TypeBool, value)
		_node.HasMacroEntity = value
	}
	if value, ok := _c.mutation.MaxEntityScore(); ok {
		_spec.SetField(article.FieldMaxEntityScore, field.TypeFloat64, value)
		_node.MaxEntityScore = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(article.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.TracesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   article.TracesTable,
			Columns: []string{article.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinetrace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Article.Create().
//		SetSource(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArticleUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *ArticleCreate) OnConflict(opts ...sql.ConflictOption) *ArticleUpsertOne {
	_c.conflict = opts
	return &ArticleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArticleCreate) OnConflictColumns(columns ...string) *ArticleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArticleUpsertOne{
		create: _c,
	}
}

type (
	// ArticleUpsertOne is the builder for "upsert"-ing
	//  one Article node.
	ArticleUpsertOne struct {
		create *ArticleCreate
	}

	// ArticleUpsert is the "OnConflict" setter.
	ArticleUpsert struct {
		*sql.UpdateSet
	}
)

// SetSource sets the "source" field.
func (u *ArticleUpsert) SetSource(v string) *ArticleUpsert {
	u.Set(article.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateSource() *ArticleUpsert {
	u.SetExcluded(article.FieldSource)
	return u
}

// SetURL sets the "url" field.
func (u *ArticleUpsert) SetURL(v string) *ArticleUpsert {
	u.Set(article.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateURL() *ArticleUpsert {
	u.SetExcluded(article.FieldURL)
	return u
}

// SetTitle sets the "title" field.
func (u *ArticleUpsert) SetTitle(v string) *ArticleUpsert {
	u.Set(article.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateTitle() *ArticleUpsert {
	u.SetExcluded(article.FieldTitle)
	return u
}

// SetSummary sets the "summary" field.
func (u *ArticleUpsert) SetSummary(v string) *ArticleUpsert {
	u.Set(article.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateSummary() *ArticleUpsert {
	u.SetExcluded(article.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *ArticleUpsert) ClearSummary() *ArticleUpsert {
	u.SetNull(article.FieldSummary)
	return u
}

// SetSymbol sets the "symbol" field.
func (u *ArticleUpsert) SetSymbol(v string) *ArticleUpsert {
	u.Set(article.FieldSymbol, v)
	return u
}

// UpdateSymbol sets the "symbol" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateSymbol() *ArticleUpsert {
	u.SetExcluded(article.FieldSymbol)
	return u
}

// ClearSymbol clears the value of the "symbol" field.
func (u *ArticleUpsert) ClearSymbol() *ArticleUpsert {
	u.SetNull(article.FieldSymbol)
	return u
}

// SetMarket sets the "market" field.
func (u *ArticleUpsert) SetMarket(v string) *ArticleUpsert {
	u.Set(article.FieldMarket, v)
	return u
}

// UpdateMarket sets the "market" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateMarket() *ArticleUpsert {
	u.SetExcluded(article.FieldMarket)
	return u
}

// ClearMarket clears the value of the "market" field.
func (u *ArticleUpsert) ClearMarket() *ArticleUpsert {
	u.SetNull(article.FieldMarket)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *ArticleUpsert) SetPublishedAt(v time.Time) *ArticleUpsert {
	u.Set(article.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ArticleUpsert) UpdatePublishedAt() *ArticleUpsert {
	u.SetExcluded(article.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ArticleUpsert) ClearPublishedAt() *ArticleUpsert {
	u.SetNull(article.FieldPublishedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArticleUpsert) SetUpdatedAt(v time.Time) *ArticleUpsert {
	u.Set(article.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateUpdatedAt() *ArticleUpsert {
	u.SetExcluded(article.FieldUpdatedAt)
	return u
}

// SetContentStatus sets the "content_status" field.
func (u *ArticleUpsert) SetContentStatus(v article.ContentStatus) *ArticleUpsert {
	u.Set(article.FieldContentStatus, v)
	return u
}

// UpdateContentStatus sets the "content_status" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateContentStatus() *ArticleUpsert {
	u.SetExcluded(article.FieldContentStatus)
	return u
}

// SetFilterStatus sets the "filter_status" field.
func (u *ArticleUpsert) SetFilterStatus(v article.FilterStatus) *ArticleUpsert {
	u.Set(article.FieldFilterStatus, v)
	return u
}

// UpdateFilterStatus sets the "filter_status" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateFilterStatus() *ArticleUpsert {
	u.SetExcluded(article.FieldFilterStatus)
	return u
}

// SetContentFilePath sets the "content_file_path" field.
func (u *ArticleUpsert) SetContentFilePath(v string) *ArticleUpsert {
	u.Set(article.FieldContentFilePath, v)
	return u
}

// UpdateContentFilePath sets the "content_file_path" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateContentFilePath() *ArticleUpsert {
	u.SetExcluded(article.FieldContentFilePath)
	return u
}

// ClearContentFilePath clears the value of the "content_file_path" field.
func (u *ArticleUpsert) ClearContentFilePath() *ArticleUpsert {
	u.SetNull(article.FieldContentFilePath)
	return u
}

// SetRelatedEntities sets the "related_entities" field.
func (u *ArticleUpsert) SetRelatedEntities(v []map[string]interface{}) *ArticleUpsert {
	u.Set(article.FieldRelatedEntities, v)
	return u
}

// UpdateRelatedEntities sets the "related_entities" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateRelatedEntities() *ArticleUpsert {
	u.SetExcluded(article.FieldRelatedEntities)
	return u
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (u *ArticleUpsert) ClearRelatedEntities() *ArticleUpsert {
	u.SetNull(article.FieldRelatedEntities)
	return u
}

// SetIndustryTags sets the "industry_tags" field.
func (u *ArticleUpsert) SetIndustryTags(v []string) *ArticleUpsert {
	u.Set(article.FieldIndustryTags, v)
	return u
}

// UpdateIndustryTags sets the "industry_tags" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateIndustryTags() *ArticleUpsert {
	u.SetExcluded(article.FieldIndustryTags)
	return u
}

// ClearIndustryTags clears the value of the "industry_tags" field.
func (u *ArticleUpsert) ClearIndustryTags() *ArticleUpsert {
	u.SetNull(article.FieldIndustryTags)
	return u
}

// SetEventTags sets the "event_tags" field.
func (u *ArticleUpsert) SetEventTags(v []string) *ArticleUpsert {
	u.Set(article.FieldEventTags, v)
	return u
}

// UpdateEventTags sets the "event_tags" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateEventTags() *ArticleUpsert {
	u.SetExcluded(article.FieldEventTags)
	return u
}

// ClearEventTags clears the value of the "event_tags" field.
func (u *ArticleUpsert) ClearEventTags() *ArticleUpsert {
	u.SetNull(article.FieldEventTags)
	return u
}

// SetSentimentTag sets the "sentiment_tag" field.
func (u *ArticleUpsert) SetSentimentTag(v string) *ArticleUpsert {
	u.Set(article.FieldSentimentTag, v)
	return u
}

// UpdateSentimentTag sets the "sentiment_tag" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateSentimentTag() *ArticleUpsert {
	u.SetExcluded(article.FieldSentimentTag)
	return u
}

// ClearSentimentTag clears the value of the "sentiment_tag" field.
func (u *ArticleUpsert) ClearSentimentTag() *ArticleUpsert {
	u.SetNull(article.FieldSentimentTag)
	return u
}

// SetInvestmentSummary sets the "investment_summary" field.
func (u *ArticleUpsert) SetInvestmentSummary(v string) *ArticleUpsert {
	u.Set(article.FieldInvestmentSummary, v)
	return u
}

// UpdateInvestmentSummary sets the "investment_summary" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateInvestmentSummary() *ArticleUpsert {
	u.SetExcluded(article.FieldInvestmentSummary)
	return u
}

// ClearInvestmentSummary clears the value of the "investment_summary" field.
func (u *ArticleUpsert) ClearInvestmentSummary() *ArticleUpsert {
	u.SetNull(article.FieldInvestmentSummary)
	return u
}

// SetDetailedSummary sets the "detailed_summary" field.
func (u *ArticleUpsert) SetDetailedSummary(v string) *ArticleUpsert {
	u.Set(article.FieldDetailedSummary, v)
	return u
}

// UpdateDetailedSummary sets the "detailed_summary" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateDetailedSummary() *ArticleUpsert {
	u.SetExcluded(article.FieldDetailedSummary)
	return u
}

// ClearDetailedSummary clears the value of the "detailed_summary" field.
func (u *ArticleUpsert) ClearDetailedSummary() *ArticleUpsert {
	u.SetNull(article.FieldDetailedSummary)
	return u
}

// SetAnalysisReport sets the "analysis_report" field.
func (u *ArticleUpsert) SetAnalysisReport(v string) *ArticleUpsert {
	u.Set(article.FieldAnalysisReport, v)
	return u
}

// UpdateAnalysisReport sets the "analysis_report" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateAnalysisReport() *ArticleUpsert {
	u.SetExcluded(article.FieldAnalysisReport)
	return u
}

// ClearAnalysisReport clears the value of the "analysis_report" field.
func (u *ArticleUpsert) ClearAnalysisReport() *ArticleUpsert {
	u.SetNull(article.FieldAnalysisReport)
	return u
}

// SetPrimaryEntity sets the "primary_entity" field.
func (u *ArticleUpsert) SetPrimaryEntity(v string) *ArticleUpsert {
	u.Set(article.FieldPrimaryEntity, v)
	return u
}

// UpdatePrimaryEntity sets the "primary_entity" field to the value that was provided on create.
func (u *ArticleUpsert) UpdatePrimaryEntity() *ArticleUpsert {
	u.SetExcluded(article.FieldPrimaryEntity)
	return u
}

// ClearPrimaryEntity clears the value of the "primary_entity" field.
func (u *ArticleUpsert) ClearPrimaryEntity() *ArticleUpsert {
	u.SetNull(article.FieldPrimaryEntity)
	return u
}

// SetHasStockEntity sets the "has_stock_entity" field.
func (u *ArticleUpsert) SetHasStockEntity(v bool) *ArticleUpsert {
	u.Set(article.FieldHasStockEntity, v)
	return u
}

// UpdateHasStockEntity sets the "has_stock_entity" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateHasStockEntity() *ArticleUpsert {
	u.SetExcluded(article.FieldHasStockEntity)
	return u
}

// SetHasMacroEntity sets the "has_macro_entity" field.
func (u *ArticleUpsert) SetHasMacroEntity(v bool) *ArticleUpsert {
	u.Set(article.FieldHasMacroEntity, v)
	return u
}

// UpdateHasMacroEntity sets the "has_macro_entity" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateHasMacroEntity() *ArticleUpsert {
	u.SetExcluded(article.FieldHasMacroEntity)
	return u
}

// SetMaxEntityScore sets the "max_entity_score" field.
func (u *ArticleUpsert) SetMaxEntityScore(v float64) *ArticleUpsert {
	u.Set(article.FieldMaxEntityScore, v)
	return u
}

// UpdateMaxEntityScore sets the "max_entity_score" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateMaxEntityScore() *ArticleUpsert {
	u.SetExcluded(article.FieldMaxEntityScore)
	return u
}

// AddMaxEntityScore adds v to the "max_entity_score" field.
func (u *ArticleUpsert) AddMaxEntityScore(v float64) *ArticleUpsert {
	u.Add(article.FieldMaxEntityScore, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ArticleUpsert) SetErrorMessage(v string) *ArticleUpsert {
	u.Set(article.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ArticleUpsert) UpdateErrorMessage() *ArticleUpsert {
	u.SetExcluded(article.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ArticleUpsert) ClearErrorMessage() *ArticleUpsert {
	u.SetNull(article.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(article.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArticleUpsertOne) UpdateNewValues() *ArticleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(article.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(article.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Article.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ArticleUpsertOne) Ignore() *ArticleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArticleUpsertOne) DoNothing() *ArticleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArticleCreate.OnConflict
// documentation for more info.
func (u *ArticleUpsertOne) Update(set func(*ArticleUpsert)) *ArticleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArticleUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *ArticleUpsertOne) SetSource(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateSource() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSource()
	})
}

// SetURL sets the "url" field.
func (u *ArticleUpsertOne) SetURL(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateURL() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateURL()
	})
}

// SetTitle sets the "title" field.
func (u *ArticleUpsertOne) SetTitle(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateTitle() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *ArticleUpsertOne) SetSummary(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateSummary() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ArticleUpsertOne) ClearSummary() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearSummary()
	})
}

// SetSymbol sets the "symbol" field.
func (u *ArticleUpsertOne) SetSymbol(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSymbol(v)
	})
}

// UpdateSymbol sets the "symbol" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateSymbol() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSymbol()
	})
}

// ClearSymbol clears the value of the "symbol" field.
func (u *ArticleUpsertOne) ClearSymbol() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearSymbol()
	})
}

// SetMarket sets the "market" field.
func (u *ArticleUpsertOne) SetMarket(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetMarket(v)
	})
}

// UpdateMarket sets the "market" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateMarket() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateMarket()
	})
}

// ClearMarket clears the value of the "market" field.
func (u *ArticleUpsertOne) ClearMarket() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearMarket()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *ArticleUpsertOne) SetPublishedAt(v time.Time) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdatePublishedAt() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ArticleUpsertOne) ClearPublishedAt() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearPublishedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArticleUpsertOne) SetUpdatedAt(v time.Time) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateUpdatedAt() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetContentStatus sets the "content_status" field.
func (u *ArticleUpsertOne) SetContentStatus(v article.ContentStatus) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetContentStatus(v)
	})
}

// UpdateContentStatus sets the "content_status" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateContentStatus() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateContentStatus()
	})
}

// SetFilterStatus sets the "filter_status" field.
func (u *ArticleUpsertOne) SetFilterStatus(v article.FilterStatus) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetFilterStatus(v)
	})
}

// UpdateFilterStatus sets the "filter_status" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateFilterStatus() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateFilterStatus()
	})
}

// SetContentFilePath sets the "content_file_path" field.
func (u *ArticleUpsertOne) SetContentFilePath(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetContentFilePath(v)
	})
}

// UpdateContentFilePath sets the "content_file_path" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateContentFilePath() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateContentFilePath()
	})
}

// ClearContentFilePath clears the value of the "content_file_path" field.
func (u *ArticleUpsertOne) ClearContentFilePath() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearContentFilePath()
	})
}

// SetRelatedEntities sets the "related_entities" field.
func (u *ArticleUpsertOne) SetRelatedEntities(v []map[string]interface{}) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetRelatedEntities(v)
	})
}

// UpdateRelatedEntities sets the "related_entities" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateRelatedEntities() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateRelatedEntities()
	})
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (u *ArticleUpsertOne) ClearRelatedEntities() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearRelatedEntities()
	})
}

// SetIndustryTags sets the "industry_tags" field.
func (u *ArticleUpsertOne) SetIndustryTags(v []string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetIndustryTags(v)
	})
}

// UpdateIndustryTags sets the "industry_tags" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateIndustryTags() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateIndustryTags()
	})
}

// ClearIndustryTags clears the value of the "industry_tags" field.
func (u *ArticleUpsertOne) ClearIndustryTags() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearIndustryTags()
	})
}

// SetEventTags sets the "event_tags" field.
func (u *ArticleUpsertOne) SetEventTags(v []string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetEventTags(v)
	})
}

// UpdateEventTags sets the "event_tags" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateEventTags() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateEventTags()
	})
}

// ClearEventTags clears the value of the "event_tags" field.
func (u *ArticleUpsertOne) ClearEventTags() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearEventTags()
	})
}

// SetSentimentTag sets the "sentiment_tag" field.
func (u *ArticleUpsertOne) SetSentimentTag(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSentimentTag(v)
	})
}

// UpdateSentimentTag sets the "sentiment_tag" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateSentimentTag() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSentimentTag()
	})
}

// ClearSentimentTag clears the value of the "sentiment_tag" field.
func (u *ArticleUpsertOne) ClearSentimentTag() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearSentimentTag()
	})
}

// SetInvestmentSummary sets the "investment_summary" field.
func (u *ArticleUpsertOne) SetInvestmentSummary(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetInvestmentSummary(v)
	})
}

// UpdateInvestmentSummary sets the "investment_summary" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateInvestmentSummary() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateInvestmentSummary()
	})
}

// ClearInvestmentSummary clears the value of the "investment_summary" field.
func (u *ArticleUpsertOne) ClearInvestmentSummary() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearInvestmentSummary()
	})
}

// SetDetailedSummary sets the "detailed_summary" field.
func (u *ArticleUpsertOne) SetDetailedSummary(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetDetailedSummary(v)
	})
}

// UpdateDetailedSummary sets the "detailed_summary" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateDetailedSummary() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateDetailedSummary()
	})
}

// ClearDetailedSummary clears the value of the "detailed_summary" field.
func (u *ArticleUpsertOne) ClearDetailedSummary() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearDetailedSummary()
	})
}

// SetAnalysisReport sets the "analysis_report" field.
func (u *ArticleUpsertOne) SetAnalysisReport(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetAnalysisReport(v)
	})
}

// UpdateAnalysisReport sets the "analysis_report" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateAnalysisReport() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateAnalysisReport()
	})
}

// ClearAnalysisReport clears the value of the "analysis_report" field.
func (u *ArticleUpsertOne) ClearAnalysisReport() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearAnalysisReport()
	})
}

// SetPrimaryEntity sets the "primary_entity" field.
func (u *ArticleUpsertOne) SetPrimaryEntity(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetPrimaryEntity(v)
	})
}

// UpdatePrimaryEntity sets the "primary_entity" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdatePrimaryEntity() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdatePrimaryEntity()
	})
}

// ClearPrimaryEntity clears the value of the "primary_entity" field.
func (u *ArticleUpsertOne) ClearPrimaryEntity() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearPrimaryEntity()
	})
}

// SetHasStockEntity sets the "has_stock_entity" field.
func (u *ArticleUpsertOne) SetHasStockEntity(v bool) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetHasStockEntity(v)
	})
}

// UpdateHasStockEntity sets the "has_stock_entity" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateHasStockEntity() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateHasStockEntity()
	})
}

// SetHasMacroEntity sets the "has_macro_entity" field.
func (u *ArticleUpsertOne) SetHasMacroEntity(v bool) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetHasMacroEntity(v)
	})
}

// UpdateHasMacroEntity sets the "has_macro_entity" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateHasMacroEntity() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateHasMacroEntity()
	})
}

// SetMaxEntityScore sets the "max_entity_score" field.
func (u *ArticleUpsertOne) SetMaxEntityScore(v float64) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetMaxEntityScore(v)
	})
}

// AddMaxEntityScore adds v to the "max_entity_score" field.
func (u *ArticleUpsertOne) AddMaxEntityScore(v float64) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.AddMaxEntityScore(v)
	})
}

// UpdateMaxEntityScore sets the "max_entity_score" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateMaxEntityScore() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateMaxEntityScore()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ArticleUpsertOne) SetErrorMessage(v string) *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ArticleUpsertOne) UpdateErrorMessage() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ArticleUpsertOne) ClearErrorMessage() *ArticleUpsertOne {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ArticleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArticleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArticleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ArticleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ArticleUpsertOne.ID is not supported by MySQL driver. Use ArticleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ArticleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ArticleCreateBulk is the builder for creating many Article entities in bulk.
type ArticleCreateBulk struct {
	config
	err      error
	builders []*ArticleCreate
	conflict []sql.ConflictOption
}

// Save creates the Article entities in the database.
func (_c *ArticleCreateBulk) Save(ctx context.Context) ([]*Article, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Article, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArticleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ArticleCreateBulk) SaveX(ctx context.Context) []*Article {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArticleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArticleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Article.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArticleUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *ArticleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ArticleUpsertBulk {
	_c.conflict = opts
	return &ArticleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArticleCreateBulk) OnConflictColumns(columns ...string) *ArticleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArticleUpsertBulk{
		create: _c,
	}
}

// ArticleUpsertBulk is the builder for "upsert"-ing
// a bulk of Article nodes.
type ArticleUpsertBulk struct {
	create *ArticleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(article.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArticleUpsertBulk) UpdateNewValues() *ArticleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(article.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(article.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Article.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ArticleUpsertBulk) Ignore() *ArticleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArticleUpsertBulk) DoNothing() *ArticleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArticleCreateBulk.OnConflict
// documentation for more info.
func (u *ArticleUpsertBulk) Update(set func(*ArticleUpsert)) *ArticleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArticleUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *ArticleUpsertBulk) SetSource(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateSource() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSource()
	})
}

// SetURL sets the "url" field.
func (u *ArticleUpsertBulk) SetURL(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateURL() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateURL()
	})
}

// SetTitle sets the "title" field.
func (u *ArticleUpsertBulk) SetTitle(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateTitle() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *ArticleUpsertBulk) SetSummary(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateSummary() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ArticleUpsertBulk) ClearSummary() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearSummary()
	})
}

// SetSymbol sets the "symbol" field.
func (u *ArticleUpsertBulk) SetSymbol(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSymbol(v)
	})
}

// UpdateSymbol sets the "symbol" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateSymbol() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSymbol()
	})
}

// ClearSymbol clears the value of the "symbol" field.
func (u *ArticleUpsertBulk) ClearSymbol() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearSymbol()
	})
}

// SetMarket sets the "market" field.
func (u *ArticleUpsertBulk) SetMarket(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetMarket(v)
	})
}

// UpdateMarket sets the "market" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateMarket() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateMarket()
	})
}

// ClearMarket clears the value of the "market" field.
func (u *ArticleUpsertBulk) ClearMarket() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearMarket()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *ArticleUpsertBulk) SetPublishedAt(v time.Time) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdatePublishedAt() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *ArticleUpsertBulk) ClearPublishedAt() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearPublishedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArticleUpsertBulk) SetUpdatedAt(v time.Time) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateUpdatedAt() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetContentStatus sets the "content_status" field.
func (u *ArticleUpsertBulk) SetContentStatus(v article.ContentStatus) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetContentStatus(v)
	})
}

// UpdateContentStatus sets the "content_status" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateContentStatus() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateContentStatus()
	})
}

// SetFilterStatus sets the "filter_status" field.
func (u *ArticleUpsertBulk) SetFilterStatus(v article.FilterStatus) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetFilterStatus(v)
	})
}

// UpdateFilterStatus sets the "filter_status" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateFilterStatus() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateFilterStatus()
	})
}

// SetContentFilePath sets the "content_file_path" field.
func (u *ArticleUpsertBulk) SetContentFilePath(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetContentFilePath(v)
	})
}

// UpdateContentFilePath sets the "content_file_path" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateContentFilePath() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateContentFilePath()
	})
}

// ClearContentFilePath clears the value of the "content_file_path" field.
func (u *ArticleUpsertBulk) ClearContentFilePath() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearContentFilePath()
	})
}

// SetRelatedEntities sets the "related_entities" field.
func (u *ArticleUpsertBulk) SetRelatedEntities(v []map[string]interface{}) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetRelatedEntities(v)
	})
}

// UpdateRelatedEntities sets the "related_entities" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateRelatedEntities() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateRelatedEntities()
	})
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (u *ArticleUpsertBulk) ClearRelatedEntities() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearRelatedEntities()
	})
}

// SetIndustryTags sets the "industry_tags" field.
func (u *ArticleUpsertBulk) SetIndustryTags(v []string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetIndustryTags(v)
	})
}

// UpdateIndustryTags sets the "industry_tags" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateIndustryTags() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateIndustryTags()
	})
}

// ClearIndustryTags clears the value of the "industry_tags" field.
func (u *ArticleUpsertBulk) ClearIndustryTags() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearIndustryTags()
	})
}

// SetEventTags sets the "event_tags" field.
func (u *ArticleUpsertBulk) SetEventTags(v []string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetEventTags(v)
	})
}

// UpdateEventTags sets the "event_tags" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateEventTags() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateEventTags()
	})
}

// ClearEventTags clears the value of the "event_tags" field.
func (u *ArticleUpsertBulk) ClearEventTags() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearEventTags()
	})
}

// SetSentimentTag sets the "sentiment_tag" field.
func (u *ArticleUpsertBulk) SetSentimentTag(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetSentimentTag(v)
	})
}

// UpdateSentimentTag sets the "sentiment_tag" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateSentimentTag() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateSentimentTag()
	})
}

// ClearSentimentTag clears the value of the "sentiment_tag" field.
func (u *ArticleUpsertBulk) ClearSentimentTag() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearSentimentTag()
	})
}

// SetInvestmentSummary sets the "investment_summary" field.
func (u *ArticleUpsertBulk) SetInvestmentSummary(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetInvestmentSummary(v)
	})
}

// UpdateInvestmentSummary sets the "investment_summary" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateInvestmentSummary() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateInvestmentSummary()
	})
}

// ClearInvestmentSummary clears the value of the "investment_summary" field.
func (u *ArticleUpsertBulk) ClearInvestmentSummary() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearInvestmentSummary()
	})
}

// SetDetailedSummary sets the "detailed_summary" field.
func (u *ArticleUpsertBulk) SetDetailedSummary(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetDetailedSummary(v)
	})
}

// UpdateDetailedSummary sets the "detailed_summary" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateDetailedSummary() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateDetailedSummary()
	})
}

// ClearDetailedSummary clears the value of the "detailed_summary" field.
func (u *ArticleUpsertBulk) ClearDetailedSummary() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearDetailedSummary()
	})
}

// SetAnalysisReport sets the "analysis_report" field.
func (u *ArticleUpsertBulk) SetAnalysisReport(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetAnalysisReport(v)
	})
}

// UpdateAnalysisReport sets the "analysis_report" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateAnalysisReport() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateAnalysisReport()
	})
}

// ClearAnalysisReport clears the value of the "analysis_report" field.
func (u *ArticleUpsertBulk) ClearAnalysisReport() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearAnalysisReport()
	})
}

// SetPrimaryEntity sets the "primary_entity" field.
func (u *ArticleUpsertBulk) SetPrimaryEntity(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetPrimaryEntity(v)
	})
}

// UpdatePrimaryEntity sets the "primary_entity" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdatePrimaryEntity() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdatePrimaryEntity()
	})
}

// ClearPrimaryEntity clears the value of the "primary_entity" field.
func (u *ArticleUpsertBulk) ClearPrimaryEntity() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearPrimaryEntity()
	})
}

// SetHasStockEntity sets the "has_stock_entity" field.
func (u *ArticleUpsertBulk) SetHasStockEntity(v bool) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetHasStockEntity(v)
	})
}

// UpdateHasStockEntity sets the "has_stock_entity" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateHasStockEntity() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateHasStockEntity()
	})
}

// SetHasMacroEntity sets the "has_macro_entity" field.
func (u *ArticleUpsertBulk) SetHasMacroEntity(v bool) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetHasMacroEntity(v)
	})
}

// UpdateHasMacroEntity sets the "has_macro_entity" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateHasMacroEntity() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateHasMacroEntity()
	})
}

// SetMaxEntityScore sets the "max_entity_score" field.
func (u *ArticleUpsertBulk) SetMaxEntityScore(v float64) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetMaxEntityScore(v)
	})
}

// AddMaxEntityScore adds v to the "max_entity_score" field.
func (u *ArticleUpsertBulk) AddMaxEntityScore(v float64) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.AddMaxEntityScore(v)
	})
}

// UpdateMaxEntityScore sets the "max_entity_score" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateMaxEntityScore() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateMaxEntityScore()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ArticleUpsertBulk) SetErrorMessage(v string) *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ArticleUpsertBulk) UpdateErrorMessage() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ArticleUpsertBulk) ClearErrorMessage() *ArticleUpsertBulk {
	return u.Update(func(s *ArticleUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ArticleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ArticleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArticleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArticleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
