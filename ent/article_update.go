// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/finsight/newsflow/ent/article"
	"github.com/finsight/newsflow/ent/pipelinetrace"
	"github.com/finsight/newsflow/ent/predicate"
)

// ArticleUpdate is the builder for updating Article entities.
type ArticleUpdate struct {
	config
	hooks    []Hook
	mutation *ArticleMutation
}

// Where appends a list predicates to the ArticleUpdate builder.
func (_u *ArticleUpdate) Where(ps ...predicate.Article) *ArticleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *ArticleUpdate) SetSource(v string) *ArticleUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableSource(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ArticleUpdate) SetURL(v string) *ArticleUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableURL(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArticleUpdate) SetTitle(v string) *ArticleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableTitle(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArticleUpdate) SetSummary(v string) *ArticleUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableSummary(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ArticleUpdate) ClearSummary() *ArticleUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *ArticleUpdate) SetSymbol(v string) *ArticleUpdate {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableSymbol(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// ClearSymbol clears the value of the "symbol" field.
func (_u *ArticleUpdate) ClearSymbol() *ArticleUpdate {
	_u.mutation.ClearSymbol()
	return _u
}

// SetMarket sets the "market" field.
func (_u *ArticleUpdate) SetMarket(v string) *ArticleUpdate {
	_u.mutation.SetMarket(v)
	return _u
}

// SetNillableMarket sets the "market" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableMarket(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetMarket(*v)
	}
	return _u
}

// ClearMarket clears the value of the "market" field.
func (_u *ArticleUpdate) ClearMarket() *ArticleUpdate {
	_u.mutation.ClearMarket()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *ArticleUpdate) SetPublishedAt(v time.Time) *ArticleUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillablePublishedAt(v *time.Time) *ArticleUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *ArticleUpdate) ClearPublishedAt() *ArticleUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleUpdate) SetUpdatedAt(v time.Time) *ArticleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetContentStatus sets the "content_status" field.
func (_u *ArticleUpdate) SetContentStatus(v article.ContentStatus) *ArticleUpdate {
	_u.mutation.SetContentStatus(v)
	return _u
}

// SetNillableContentStatus sets the "content_status" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableContentStatus(v *article.ContentStatus) *ArticleUpdate {
	if v != nil {
		_u.SetContentStatus(*v)
	}
	return _u
}

// SetFilterStatus sets the "filter_status" field.
func (_u *ArticleUpdate) SetFilterStatus(v article.FilterStatus) *ArticleUpdate {
	_u.mutation.SetFilterStatus(v)
	return _u
}

// SetNillableFilterStatus sets the "filter_status" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableFilterStatus(v *article.FilterStatus) *ArticleUpdate {
	if v != nil {
		_u.SetFilterStatus(*v)
	}
	return _u
}

// SetContentFilePath sets the "content_file_path" field.
func (_u *ArticleUpdate) SetContentFilePath(v string) *ArticleUpdate {
	_u.mutation.SetContentFilePath(v)
	return _u
}

// SetNillableContentFilePath sets the "content_file_path" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableContentFilePath(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetContentFilePath(*v)
	}
	return _u
}

// ClearContentFilePath clears the value of the "content_file_path" field.
func (_u *ArticleUpdate) ClearContentFilePath() *ArticleUpdate {
	_u.mutation.ClearContentFilePath()
	return _u
}

// SetRelatedEntities sets the "related_entities" field.
func (_u *ArticleUpdate) SetRelatedEntities(v []map[string]interface{}) *ArticleUpdate {
	_u.mutation.SetRelatedEntities(v)
	return _u
}

// AppendRelatedEntities appends value to the "related_entities" field.
func (_u *ArticleUpdate) AppendRelatedEntities(v []map[string]interface{}) *ArticleUpdate {
	_u.mutation.AppendRelatedEntities(v)
	return _u
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (_u *ArticleUpdate) ClearRelatedEntities() *ArticleUpdate {
	_u.mutation.ClearRelatedEntities()
	return _u
}

// SetIndustryTags sets the "industry_tags" field.
func (_u *ArticleUpdate) SetIndustryTags(v []string) *ArticleUpdate {
	_u.mutation.SetIndustryTags(v)
	return _u
}

// AppendIndustryTags appends value to the "industry_tags" field.
func (_u *ArticleUpdate) AppendIndustryTags(v []string) *ArticleUpdate {
	_u.mutation.AppendIndustryTags(v)
	return _u
}

// ClearIndustryTags clears the value of the "industry_tags" field.
func (_u *ArticleUpdate) ClearIndustryTags() *ArticleUpdate {
	_u.mutation.ClearIndustryTags()
	return _u
}

// SetEventTags sets the "event_tags" field.
func (_u *ArticleUpdate) SetEventTags(v []string) *ArticleUpdate {
	_u.mutation.SetEventTags(v)
	return _u
}

// AppendEventTags appends value to the "event_tags" field.
func (_u *ArticleUpdate) AppendEventTags(v []string) *ArticleUpdate {
	_u.mutation.AppendEventTags(v)
	return _u
}

// ClearEventTags clears the value of the "event_tags" field.
func (_u *ArticleUpdate) ClearEventTags() *ArticleUpdate {
	_u.mutation.ClearEventTags()
	return _u
}

// SetSentimentTag sets the "sentiment_tag" field.
func (_u *ArticleUpdate) SetSentimentTag(v string) *ArticleUpdate {
	_u.mutation.SetSentimentTag(v)
	return _u
}

// SetNillableSentimentTag sets the "sentiment_tag" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableSentimentTag(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetSentimentTag(*v)
	}
	return _u
}

// ClearSentimentTag clears the value of the "sentiment_tag" field.
func (_u *ArticleUpdate) ClearSentimentTag() *ArticleUpdate {
	_u.mutation.ClearSentimentTag()
	return _u
}

// SetInvestmentSummary sets the "investment_summary" field.
func (_u *ArticleUpdate) SetInvestmentSummary(v string) *ArticleUpdate {
	_u.mutation.SetInvestmentSummary(v)
	return _u
}

// SetNillableInvestmentSummary sets the "investment_summary" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableInvestmentSummary(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetInvestmentSummary(*v)
	}
	return _u
}

// ClearInvestmentSummary clears the value of the "investment_summary" field.
func (_u *ArticleUpdate) ClearInvestmentSummary() *ArticleUpdate {
	_u.mutation.ClearInvestmentSummary()
	return _u
}

// SetDetailedSummary sets the "detailed_summary" field.
func (_u *ArticleUpdate) SetDetailedSummary(v string) *ArticleUpdate {
	_u.mutation.SetDetailedSummary(v)
	return _u
}

// SetNillableDetailedSummary sets the "detailed_summary" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableDetailedSummary(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetDetailedSummary(*v)
	}
	return _u
}

// ClearDetailedSummary clears the value of the "detailed_summary" field.
func (_u *ArticleUpdate) ClearDetailedSummary() *ArticleUpdate {
	_u.mutation.ClearDetailedSummary()
	return _u
}

// SetAnalysisReport sets the "analysis_report" field.
func (_u *ArticleUpdate) SetAnalysisReport(v string) *ArticleUpdate {
	_u.mutation.SetAnalysisReport(v)
	return _u
}

// SetNillableAnalysisReport sets the "analysis_report" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableAnalysisReport(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetAnalysisReport(*v)
	}
	return _u
}

// ClearAnalysisReport clears the value of the "analysis_report" field.
func (_u *ArticleUpdate) ClearAnalysisReport() *ArticleUpdate {
	_u.mutation.ClearAnalysisReport()
	return _u
}

// SetPrimaryEntity sets the "primary_entity" field.
func (_u *ArticleUpdate) SetPrimaryEntity(v string) *ArticleUpdate {
	_u.mutation.SetPrimaryEntity(v)
	return _u
}

// SetNillablePrimaryEntity sets the "primary_entity" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillablePrimaryEntity(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetPrimaryEntity(*v)
	}
	return _u
}

// ClearPrimaryEntity clears the value of the "primary_entity" field.
func (_u *ArticleUpdate) ClearPrimaryEntity() *ArticleUpdate {
	_u.mutation.ClearPrimaryEntity()
	return _u
}

// SetHasStockEntity sets the "has_stock_entity" field.
func (_u *ArticleUpdate) SetHasStockEntity(v bool) *ArticleUpdate {
	_u.mutation.SetHasStockEntity(v)
	return _u
}

// SetNillableHasStockEntity sets the "has_stock_entity" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableHasStockEntity(v *bool) *ArticleUpdate {
	if v != nil {
		_u.SetHasStockEntity(*v)
	}
	return _u
}

// SetHasMacroEntity sets the "has_macro_entity" field.
func (_u *ArticleUpdate) SetHasMacroEntity(v bool) *ArticleUpdate {
	_u.mutation.SetHasMacroEntity(v)
	return _u
}

// SetNillableHasMacroEntity sets the "has_macro_entity" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableHasMacroEntity(v *bool) *ArticleUpdate {
	if v != nil {
		_u.SetHasMacroEntity(*v)
	}
	return _u
}

// SetMaxEntityScore sets the "max_entity_score" field.
func (_u *ArticleUpdate) SetMaxEntityScore(v float64) *ArticleUpdate {
	_u.mutation.ResetMaxEntityScore()
	_u.mutation.SetMaxEntityScore(v)
	return _u
}

// SetNillableMaxEntityScore sets the "max_entity_score" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableMaxEntityScore(v *float64) *ArticleUpdate {
	if v != nil {
		_u.SetMaxEntityScore(*v)
	}
	return _u
}

// AddMaxEntityScore adds value to the "max_entity_score" field.
func (_u *ArticleUpdate) AddMaxEntityScore(v float64) *ArticleUpdate {
	_u.mutation.AddMaxEntityScore(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ArticleUpdate) SetErrorMessage(v string) *ArticleUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ArticleUpdate) SetNillableErrorMessage(v *string) *ArticleUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ArticleUpdate) ClearErrorMessage() *ArticleUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddTraceIDs adds the "traces" edge to the PipelineTrace entity by IDs.
func (_u *ArticleUpdate) AddTraceIDs(ids ...string) *ArticleUpdate {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the PipelineTrace entity.
func (_u *ArticleUpdate) AddTraces(v ...*PipelineTrace) *ArticleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// Mutation returns the ArticleMutation object of the builder.
func (_u *ArticleUpdate) Mutation() *ArticleMutation {
	return _u.mutation
}

// ClearTraces clears all "traces" edges to the PipelineTrace entity.
func (_u *ArticleUpdate) ClearTraces() *ArticleUpdate {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to PipelineTrace entities by IDs.
func (_u *ArticleUpdate) RemoveTraceIDs(ids ...string) *ArticleUpdate {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to PipelineTrace entities.
func (_u *ArticleUpdate) RemoveTraces(v ...*PipelineTrace) *ArticleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArticleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArticleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := article.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleUpdate) check() error {
	if v, ok := _u.mutation.ContentStatus(); ok {
		if err := article.ContentStatusValidator(v); err != nil {
			return &ValidationError{Name: "content_status", err: fmt.Errorf(`ent: validator failed for field "Article.content_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilterStatus(); ok {
		if err := article.FilterStatusValidator(v); err != nil {
			return &ValidationError{Name: "filter_status", err: fmt.Errorf(`ent: validator failed for field "Article.filter_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ArticleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(article.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(article.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(article.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(article.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(article.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(article.FieldSymbol, field.TypeString, value)
	}
	if _u.mutation.SymbolCleared() {
		_spec.ClearField(article.FieldSymbol, field.TypeString)
	}
	if value, ok := _u.mutation.Market(); ok {
		_spec.SetField(article.FieldMarket, field.TypeString, value)
	}
	if _u.mutation.MarketCleared() {
		_spec.ClearField(article.FieldMarket, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(article.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(article.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ContentStatus(); ok {
		_spec.SetField(article.FieldContentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FilterStatus(); ok {
		_spec.SetField(article.FieldFilterStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentFilePath(); ok {
		_spec.SetField(article.FieldContentFilePath, field.TypeString, value)
	}
	if _u.mutation.ContentFilePathCleared() {
		_spec.ClearField(article.FieldContentFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedEntities(); ok {
		_spec.SetField(article.FieldRelatedEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldRelatedEntities, value)
		})
	}
	if _u.mutation.RelatedEntitiesCleared() {
		_spec.ClearField(article.FieldRelatedEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.IndustryTags(); ok {
		_spec.SetField(article.FieldIndustryTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIndustryTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldIndustryTags, value)
		})
	}
	if _u.mutation.IndustryTagsCleared() {
		_spec.ClearField(article.FieldIndustryTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventTags(); ok {
		_spec.SetField(article.FieldEventTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEventTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldEventTags, value)
		})
	}
	if _u.mutation.EventTagsCleared() {
		_spec.ClearField(article.FieldEventTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SentimentTag(); ok {
		_spec.SetField(article.FieldSentimentTag, field.TypeString, value)
	}
	if _u.mutation.SentimentTagCleared() {
		_spec.ClearField(article.FieldSentimentTag, field.TypeString)
	}
	if value, ok := _u.mutation.InvestmentSummary(); ok {
		_spec.SetField(article.FieldInvestmentSummary, field.TypeString, value)
	}
	if _u.mutation.InvestmentSummaryCleared() {
		_spec.ClearField(article.FieldInvestmentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.DetailedSummary(); ok {
		_spec.SetField(article.FieldDetailedSummary, field.TypeString, value)
	}
	if _u.mutation.DetailedSummaryCleared() {
		_spec.ClearField(article.FieldDetailedSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisReport(); ok {
		_spec.SetField(article.FieldAnalysisReport, field.TypeString, value)
	}
	if _u.mutation.AnalysisReportCleared() {
		_spec.ClearField(article.FieldAnalysisReport, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryEntity(); ok {
		_spec.SetField(article.FieldPrimaryEntity, field.TypeString, value)
	}
	if _u.mutation.PrimaryEntityCleared() {
		_spec.ClearField(article.FieldPrimaryEntity, field.TypeString)
	}
	if value, ok := _u.mutation.HasStockEntity(); ok {
		_spec.SetField(article.FieldHasStockEntity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasMacroEntity(); ok {
		_spec.SetField(article.FieldHasMacroEntity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxEntityScore(); ok {
		_spec.SetField(article.FieldMaxEntityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxEntityScore(); ok {
		_spec.AddField(article.FieldMaxEntityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(article.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(article.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArticleUpdateOne is the builder for updating a single Article entity.
type ArticleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArticleMutation
}

// SetSource sets the "source" field.
func (_u *ArticleUpdateOne) SetSource(v string) *ArticleUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableSource(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ArticleUpdateOne) SetURL(v string) *ArticleUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableURL(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArticleUpdateOne) SetTitle(v string) *ArticleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableTitle(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArticleUpdateOne) SetSummary(v string) *ArticleUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableSummary(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ArticleUpdateOne) ClearSummary() *ArticleUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *ArticleUpdateOne) SetSymbol(v string) *ArticleUpdateOne {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableSymbol(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// ClearSymbol clears the value of the "symbol" field.
func (_u *ArticleUpdateOne) ClearSymbol() *ArticleUpdateOne {
	_u.mutation.ClearSymbol()
	return _u
}

// SetMarket sets the "market" field.
func (_u *ArticleUpdateOne) SetMarket(v string) *ArticleUpdateOne {
	_u.mutation.SetMarket(v)
	return _u
}

// SetNillableMarket sets the "market" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableMarket(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetMarket(*v)
	}
	return _u
}

// ClearMarket clears the value of the "market" field.
func (_u *ArticleUpdateOne) ClearMarket() *ArticleUpdateOne {
	_u.mutation.ClearMarket()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *ArticleUpdateOne) SetPublishedAt(v time.Time) *ArticleUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillablePublishedAt(v *time.Time) *ArticleUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *ArticleUpdateOne) ClearPublishedAt() *ArticleUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArticleUpdateOne) SetUpdatedAt(v time.Time) *ArticleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetContentStatus sets the "content_status" field.
func (_u *ArticleUpdateOne) SetContentStatus(v article.ContentStatus) *ArticleUpdateOne {
	_u.mutation.SetContentStatus(v)
	return _u
}

// SetNillableContentStatus sets the "content_status" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableContentStatus(v *article.ContentStatus) *ArticleUpdateOne {
	if v != nil {
		_u.SetContentStatus(*v)
	}
	return _u
}

// SetFilterStatus sets the "filter_status" field.
func (_u *ArticleUpdateOne) SetFilterStatus(v article.FilterStatus) *ArticleUpdateOne {
	_u.mutation.SetFilterStatus(v)
	return _u
}

// SetNillableFilterStatus sets the "filter_status" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableFilterStatus(v *article.FilterStatus) *ArticleUpdateOne {
	if v != nil {
		_u.SetFilterStatus(*v)
	}
	return _u
}

// SetContentFilePath sets the "content_file_path" field.
func (_u *ArticleUpdateOne) SetContentFilePath(v string) *ArticleUpdateOne {
	_u.mutation.SetContentFilePath(v)
	return _u
}

// SetNillableContentFilePath sets the "content_file_path" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableContentFilePath(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetContentFilePath(*v)
	}
	return _u
}

// ClearContentFilePath clears the value of the "content_file_path" field.
func (_u *ArticleUpdateOne) ClearContentFilePath() *ArticleUpdateOne {
	_u.mutation.ClearContentFilePath()
	return _u
}

// SetRelatedEntities sets the "related_entities" field.
func (_u *ArticleUpdateOne) SetRelatedEntities(v []map[string]interface{}) *ArticleUpdateOne {
	_u.mutation.SetRelatedEntities(v)
	return _u
}

// AppendRelatedEntities appends value to the "related_entities" field.
func (_u *ArticleUpdateOne) AppendRelatedEntities(v []map[string]interface{}) *ArticleUpdateOne {
	_u.mutation.AppendRelatedEntities(v)
	return _u
}

// ClearRelatedEntities clears the value of the "related_entities" field.
func (_u *ArticleUpdateOne) ClearRelatedEntities() *ArticleUpdateOne {
	_u.mutation.ClearRelatedEntities()
	return _u
}

// SetIndustryTags sets the "industry_tags" field.
func (_u *ArticleUpdateOne) SetIndustryTags(v []string) *ArticleUpdateOne {
	_u.mutation.SetIndustryTags(v)
	return _u
}

// AppendIndustryTags appends value to the "industry_tags" field.
func (_u *ArticleUpdateOne) AppendIndustryTags(v []string) *ArticleUpdateOne {
	_u.mutation.AppendIndustryTags(v)
	return _u
}

// ClearIndustryTags clears the value of the "industry_tags" field.
func (_u *ArticleUpdateOne) ClearIndustryTags() *ArticleUpdateOne {
	_u.mutation.ClearIndustryTags()
	return _u
}

// SetEventTags sets the "event_tags" field.
func (_u *ArticleUpdateOne) SetEventTags(v []string) *ArticleUpdateOne {
	_u.mutation.SetEventTags(v)
	return _u
}

// AppendEventTags appends value to the "event_tags" field.
func (_u *ArticleUpdateOne) AppendEventTags(v []string) *ArticleUpdateOne {
	_u.mutation.AppendEventTags(v)
	return _u
}

// ClearEventTags clears the value of the "event_tags" field.
func (_u *ArticleUpdateOne) ClearEventTags() *ArticleUpdateOne {
	_u.mutation.ClearEventTags()
	return _u
}

// SetSentimentTag sets the "sentiment_tag" field.
func (_u *ArticleUpdateOne) SetSentimentTag(v string) *ArticleUpdateOne {
	_u.mutation.SetSentimentTag(v)
	return _u
}

// SetNillableSentimentTag sets the "sentiment_tag" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableSentimentTag(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetSentimentTag(*v)
	}
	return _u
}

// ClearSentimentTag clears the value of the "sentiment_tag" field.
func (_u *ArticleUpdateOne) ClearSentimentTag() *ArticleUpdateOne {
	_u.mutation.ClearSentimentTag()
	return _u
}

// SetInvestmentSummary sets the "investment_summary" field.
func (_u *ArticleUpdateOne) SetInvestmentSummary(v string) *ArticleUpdateOne {
	_u.mutation.SetInvestmentSummary(v)
	return _u
}

// SetNillableInvestmentSummary sets the "investment_summary" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableInvestmentSummary(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetInvestmentSummary(*v)
	}
	return _u
}

// ClearInvestmentSummary clears the value of the "investment_summary" field.
func (_u *ArticleUpdateOne) ClearInvestmentSummary() *ArticleUpdateOne {
	_u.mutation.ClearInvestmentSummary()
	return _u
}

// SetDetailedSummary sets the "detailed_summary" field.
func (_u *ArticleUpdateOne) SetDetailedSummary(v string) *ArticleUpdateOne {
	_u.mutation.SetDetailedSummary(v)
	return _u
}

// SetNillableDetailedSummary sets the "detailed_summary" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableDetailedSummary(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetDetailedSummary(*v)
	}
	return _u
}

// ClearDetailedSummary clears the value of the "detailed_summary" field.
func (_u *ArticleUpdateOne) ClearDetailedSummary() *ArticleUpdateOne {
	_u.mutation.ClearDetailedSummary()
	return _u
}

// SetAnalysisReport sets the "analysis_report" field.
func (_u *ArticleUpdateOne) SetAnalysisReport(v string) *ArticleUpdateOne {
	_u.mutation.SetAnalysisReport(v)
	return _u
}

// SetNillableAnalysisReport sets the "analysis_report" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableAnalysisReport(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetAnalysisReport(*v)
	}
	return _u
}

// ClearAnalysisReport clears the value of the "analysis_report" field.
func (_u *ArticleUpdateOne) ClearAnalysisReport() *ArticleUpdateOne {
	_u.mutation.ClearAnalysisReport()
	return _u
}

// SetPrimaryEntity sets the "primary_entity" field.
func (_u *ArticleUpdateOne) SetPrimaryEntity(v string) *ArticleUpdateOne {
	_u.mutation.SetPrimaryEntity(v)
	return _u
}

// SetNillablePrimaryEntity sets the "primary_entity" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillablePrimaryEntity(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetPrimaryEntity(*v)
	}
	return _u
}

// ClearPrimaryEntity clears the value of the "primary_entity" field.
func (_u *ArticleUpdateOne) ClearPrimaryEntity() *ArticleUpdateOne {
	_u.mutation.ClearPrimaryEntity()
	return _u
}

// SetHasStockEntity sets the "has_stock_entity" field.
func (_u *ArticleUpdateOne) SetHasStockEntity(v bool) *ArticleUpdateOne {
	_u.mutation.SetHasStockEntity(v)
	return _u
}

// SetNillableHasStockEntity sets the "has_stock_entity" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableHasStockEntity(v *bool) *ArticleUpdateOne {
	if v != nil {
		_u.SetHasStockEntity(*v)
	}
	return _u
}

// SetHasMacroEntity sets the "has_macro_entity" field.
func (_u *ArticleUpdateOne) SetHasMacroEntity(v bool) *ArticleUpdateOne {
	_u.mutation.SetHasMacroEntity(v)
	return _u
}

// SetNillableHasMacroEntity sets the "has_macro_entity" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableHasMacroEntity(v *bool) *ArticleUpdateOne {
	if v != nil {
		_u.SetHasMacroEntity(*v)
	}
	return _u
}

// SetMaxEntityScore sets the "max_entity_score" field.
func (_u *ArticleUpdateOne) SetMaxEntityScore(v float64) *ArticleUpdateOne {
	_u.mutation.ResetMaxEntityScore()
	_u.mutation.SetMaxEntityScore(v)
	return _u
}

// SetNillableMaxEntityScore sets the "max_entity_score" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableMaxEntityScore(v *float64) *ArticleUpdateOne {
	if v != nil {
		_u.SetMaxEntityScore(*v)
	}
	return _u
}

// AddMaxEntityScore adds value to the "max_entity_score" field.
func (_u *ArticleUpdateOne) AddMaxEntityScore(v float64) *ArticleUpdateOne {
	_u.mutation.AddMaxEntityScore(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ArticleUpdateOne) SetErrorMessage(v string) *ArticleUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ArticleUpdateOne) SetNillableErrorMessage(v *string) *ArticleUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ArticleUpdateOne) ClearErrorMessage() *ArticleUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddTraceIDs adds the "traces" edge to the PipelineTrace entity by IDs.
func (_u *ArticleUpdateOne) AddTraceIDs(ids ...string) *ArticleUpdateOne {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the PipelineTrace entity.
func (_u *ArticleUpdateOne) AddTraces(v ...*PipelineTrace) *ArticleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// Mutation returns the ArticleMutation object of the builder.
func (_u *ArticleUpdateOne) Mutation() *ArticleMutation {
	return _u.mutation
}

// ClearTraces clears all "traces" edges to the PipelineTrace entity.
func (_u *ArticleUpdateOne) ClearTraces() *ArticleUpdateOne {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to PipelineTrace entities by IDs.
func (_u *ArticleUpdateOne) RemoveTraceIDs(ids ...string) *ArticleUpdateOne {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to PipelineTrace entities.
func (_u *ArticleUpdateOne) RemoveTraces(v ...*PipelineTrace) *ArticleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// Where appends a list predicates to the ArticleUpdate builder.
func (_u *ArticleUpdateOne) Where(ps ...predicate.Article) *ArticleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArticleUpdateOne) Select(field string, fields ...string) *ArticleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Article entity.
func (_u *ArticleUpdateOne) Save(ctx context.Context) (*Article, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArticleUpdateOne) SaveX(ctx context.Context) *Article {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArticleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArticleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := article.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArticleUpdateOne) check() error {
	if v, ok := _u.mutation.ContentStatus(); ok {
		if err := article.ContentStatusValidator(v); err != nil {
			return &ValidationError{Name: "content_status", err: fmt.Errorf(`ent: validator failed for field "Article.content_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilterStatus(); ok {
		if err := article.FilterStatusValidator(v); err != nil {
			return &ValidationError{Name: "filter_status", err: fmt.Errorf(`ent: validator failed for field "Article.filter_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ArticleUpdateOne) sqlSave(ctx context.Context) (_node *Article, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Article.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, article.FieldID)
		for _, f := range fields {
			if !article.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != article.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(article.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(article.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(article.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(article.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(article.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(article.FieldSymbol, field.TypeString, value)
	}
	if _u.mutation.SymbolCleared() {
		_spec.ClearField(article.FieldSymbol, field.TypeString)
	}
	if value, ok := _u.mutation.Market(); ok {
		_spec.SetField(article.FieldMarket, field.TypeString, value)
	}
	if _u.mutation.MarketCleared() {
		_spec.ClearField(article.FieldMarket, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(article.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(article.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ContentStatus(); ok {
		_spec.SetField(article.FieldContentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FilterStatus(); ok {
		_spec.SetField(article.FieldFilterStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentFilePath(); ok {
		_spec.SetField(article.FieldContentFilePath, field.TypeString, value)
	}
	if _u.mutation.ContentFilePathCleared() {
		_spec.ClearField(article.FieldContentFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedEntities(); ok {
		_spec.SetField(article.FieldRelatedEntities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedEntities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldRelatedEntities, value)
		})
	}
	if _u.mutation.RelatedEntitiesCleared() {
		_spec.ClearField(article.FieldRelatedEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.IndustryTags(); ok {
		_spec.SetField(article.FieldIndustryTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIndustryTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldIndustryTags, value)
		})
	}
	if _u.mutation.IndustryTagsCleared() {
		_spec.ClearField(article.FieldIndustryTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventTags(); ok {
		_spec.SetField(article.FieldEventTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEventTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, article.FieldEventTags, value)
		})
	}
	if _u.mutation.EventTagsCleared() {
		_spec.ClearField(article.FieldEventTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SentimentTag(); ok {
		_spec.SetField(article.FieldSentimentTag, field.TypeString, value)
	}
	if _u.mutation.SentimentTagCleared() {
		_spec.ClearField(article.FieldSentimentTag, field.TypeString)
	}
	if value, ok := _u.mutation.InvestmentSummary(); ok {
		_spec.SetField(article.FieldInvestmentSummary, field.TypeString, value)
	}
	if _u.mutation.InvestmentSummaryCleared() {
		_spec.ClearField(article.FieldInvestmentSummary, field.TypeString)
	}
	if value, ok := _u.mutation.DetailedSummary(); ok {
		_spec.SetField(article.FieldDetailedSummary, field.TypeString, value)
	}
	if _u.mutation.DetailedSummaryCleared() {
		_spec.ClearField(article.FieldDetailedSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisReport(); ok {
		_spec.SetField(article.FieldAnalysisReport, field.TypeString, value)
	}
	if _u.mutation.AnalysisReportCleared() {
		_spec.ClearField(article.FieldAnalysisReport, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryEntity(); ok {
		_spec.SetField(article.FieldPrimaryEntity, field.TypeString, value)
	}
	if _u.mutation.PrimaryEntityCleared() {
		_spec.ClearField(article.FieldPrimaryEntity, field.TypeString)
	}
	if value, ok := _u.mutation.HasStockEntity(); ok {
		_spec.SetField(article.FieldHasStockEntity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasMacroEntity(); ok {
		_spec.SetField(article.FieldHasMacroEntity, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxEntityScore(); ok {
		_spec.SetField(article.FieldMaxEntityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxEntityScore(); ok {
		_spec.AddField(article.FieldMaxEntityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(article.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(article.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Article{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
