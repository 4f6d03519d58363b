// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finsight/newsflow/ent/feed"
	"github.com/finsight/newsflow/ent/predicate"
)

// FeedUpdate is the builder for updating Feed entities.
type FeedUpdate struct {
	config
	hooks    []Hook
	mutation *FeedMutation
}

// Where appends a list predicates to the FeedUpdate builder.
func (_u *FeedUpdate) Where(ps ...predicate.Feed) *FeedUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoute sets the "route" field.
func (_u *FeedUpdate) SetRoute(v string) *FeedUpdate {
	_u.mutation.SetRoute(v)
	return _u
}

// SetNillableRoute sets the "route" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableRoute(v *string) *FeedUpdate {
	if v != nil {
		_u.SetRoute(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FeedUpdate) SetName(v string) *FeedUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableName(v *string) *FeedUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *FeedUpdate) ClearName() *FeedUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetCategory sets the "category" field.
func (_u *FeedUpdate) SetCategory(v string) *FeedUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableCategory(v *string) *FeedUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *FeedUpdate) ClearCategory() *FeedUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetIntervalMinutes sets the "interval_minutes" field.
func (_u *FeedUpdate) SetIntervalMinutes(v int) *FeedUpdate {
	_u.mutation.ResetIntervalMinutes()
	_u.mutation.SetIntervalMinutes(v)
	return _u
}

// SetNillableIntervalMinutes sets the "interval_minutes" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableIntervalMinutes(v *int) *FeedUpdate {
	if v != nil {
		_u.SetIntervalMinutes(*v)
	}
	return _u
}

// AddIntervalMinutes adds value to the "interval_minutes" field.
func (_u *FeedUpdate) AddIntervalMinutes(v int) *FeedUpdate {
	_u.mutation.AddIntervalMinutes(v)
	return _u
}

// SetFulltext sets the "fulltext" field.
func (_u *FeedUpdate) SetFulltext(v bool) *FeedUpdate {
	_u.mutation.SetFulltext(v)
	return _u
}

// SetNillableFulltext sets the "fulltext" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableFulltext(v *bool) *FeedUpdate {
	if v != nil {
		_u.SetFulltext(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *FeedUpdate) SetEnabled(v bool) *FeedUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableEnabled(v *bool) *FeedUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastPollAt sets the "last_poll_at" field.
func (_u *FeedUpdate) SetLastPollAt(v time.Time) *FeedUpdate {
	_u.mutation.SetLastPollAt(v)
	return _u
}

// SetNillableLastPollAt sets the "last_poll_at" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableLastPollAt(v *time.Time) *FeedUpdate {
	if v != nil {
		_u.SetLastPollAt(*v)
	}
	return _u
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (_u *FeedUpdate) ClearLastPollAt() *FeedUpdate {
	_u.mutation.ClearLastPollAt()
	return _u
}

// SetEtag sets the "etag" field.
func (_u *FeedUpdate) SetEtag(v string) *FeedUpdate {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableEtag(v *string) *FeedUpdate {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *FeedUpdate) ClearEtag() *FeedUpdate {
	_u.mutation.ClearEtag()
	return _u
}

// SetLastModified sets the "last_modified" field.
func (_u *FeedUpdate) SetLastModified(v string) *FeedUpdate {
	_u.mutation.SetLastModified(v)
	return _u
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableLastModified(v *string) *FeedUpdate {
	if v != nil {
		_u.SetLastModified(*v)
	}
	return _u
}

// ClearLastModified clears the value of the "last_modified" field.
func (_u *FeedUpdate) ClearLastModified() *FeedUpdate {
	_u.mutation.ClearLastModified()
	return _u
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (_u *FeedUpdate) SetConsecutiveErrors(v int) *FeedUpdate {
	_u.mutation.ResetConsecutiveErrors()
	_u.mutation.SetConsecutiveErrors(v)
	return _u
}

// SetNillableConsecutiveErrors sets the "consecutive_errors" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableConsecutiveErrors(v *int) *FeedUpdate {
	if v != nil {
		_u.SetConsecutiveErrors(*v)
	}
	return _u
}

// AddConsecutiveErrors adds value to the "consecutive_errors" field.
func (_u *FeedUpdate) AddConsecutiveErrors(v int) *FeedUpdate {
	_u.mutation.AddConsecutiveErrors(v)
	return _u
}

// SetArticleCount sets the "article_count" field.
func (_u *FeedUpdate) SetArticleCount(v int) *FeedUpdate {
	_u.mutation.ResetArticleCount()
	_u.mutation.SetArticleCount(v)
	return _u
}

// SetNillableArticleCount sets the "article_count" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableArticleCount(v *int) *FeedUpdate {
	if v != nil {
		_u.SetArticleCount(*v)
	}
	return _u
}

// AddArticleCount adds value to the "article_count" field.
func (_u *FeedUpdate) AddArticleCount(v int) *FeedUpdate {
	_u.mutation.AddArticleCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeedUpdate) SetUpdatedAt(v time.Time) *FeedUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FeedMutation object of the builder.
func (_u *FeedUpdate) Mutation() *FeedMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeedUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feed.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *FeedUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(feed.Table, feed.Columns, sqlgraph.NewFieldSpec(feed.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Route(); ok {
		_spec.SetField(feed.FieldRoute, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(feed.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(feed.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(feed.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(feed.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.IntervalMinutes(); ok {
		_spec.SetField(feed.FieldIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalMinutes(); ok {
		_spec.AddField(feed.FieldIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fulltext(); ok {
		_spec.SetField(feed.FieldFulltext, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(feed.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPollAt(); ok {
		_spec.SetField(feed.FieldLastPollAt, field.TypeTime, value)
	}
	if _u.mutation.LastPollAtCleared() {
		_spec.ClearField(feed.FieldLastPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(feed.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(feed.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.LastModified(); ok {
		_spec.SetField(feed.FieldLastModified, field.TypeString, value)
	}
	if _u.mutation.LastModifiedCleared() {
		_spec.ClearField(feed.FieldLastModified, field.TypeString)
	}
	if value, ok := _u.mutation.ConsecutiveErrors(); ok {
		_spec.SetField(feed.FieldConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveErrors(); ok {
		_spec.AddField(feed.FieldConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArticleCount(); ok {
		_spec.SetField(feed.FieldArticleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleCount(); ok {
		_spec.AddField(feed.FieldArticleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feed.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedUpdateOne is the builder for updating a single Feed entity.
type FeedUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedMutation
}

// SetRoute sets the "route" field.
func (_u *FeedUpdateOne) SetRoute(v string) *FeedUpdateOne {
	_u.mutation.SetRoute(v)
	return _u
}

// SetNillableRoute sets the "route" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableRoute(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetRoute(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FeedUpdateOne) SetName(v string) *FeedUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableName(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *FeedUpdateOne) ClearName() *FeedUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetCategory sets the "category" field.
func (_u *FeedUpdateOne) SetCategory(v string) *FeedUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableCategory(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *FeedUpdateOne) ClearCategory() *FeedUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetIntervalMinutes sets the "interval_minutes" field.
func (_u *FeedUpdateOne) SetIntervalMinutes(v int) *FeedUpdateOne {
	_u.mutation.ResetIntervalMinutes()
	_u.mutation.SetIntervalMinutes(v)
	return _u
}

// SetNillableIntervalMinutes sets the "interval_minutes" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableIntervalMinutes(v *int) *FeedUpdateOne {
	if v != nil {
		_u.SetIntervalMinutes(*v)
	}
	return _u
}

// AddIntervalMinutes adds value to the "interval_minutes" field.
func (_u *FeedUpdateOne) AddIntervalMinutes(v int) *FeedUpdateOne {
	_u.mutation.AddIntervalMinutes(v)
	return _u
}

// SetFulltext sets the "fulltext" field.
func (_u *FeedUpdateOne) SetFulltext(v bool) *FeedUpdateOne {
	_u.mutation.SetFulltext(v)
	return _u
}

// SetNillableFulltext sets the "fulltext" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableFulltext(v *bool) *FeedUpdateOne {
	if v != nil {
		_u.SetFulltext(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *FeedUpdateOne) SetEnabled(v bool) *FeedUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableEnabled(v *bool) *FeedUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastPollAt sets the "last_poll_at" field.
func (_u *FeedUpdateOne) SetLastPollAt(v time.Time) *FeedUpdateOne {
	_u.mutation.SetLastPollAt(v)
	return _u
}

// SetNillableLastPollAt sets the "last_poll_at" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableLastPollAt(v *time.Time) *FeedUpdateOne {
	if v != nil {
		_u.SetLastPollAt(*v)
	}
	return _u
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (_u *FeedUpdateOne) ClearLastPollAt() *FeedUpdateOne {
	_u.mutation.ClearLastPollAt()
	return _u
}

// SetEtag sets the "etag" field.
func (_u *FeedUpdateOne) SetEtag(v string) *FeedUpdateOne {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableEtag(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *FeedUpdateOne) ClearEtag() *FeedUpdateOne {
	_u.mutation.ClearEtag()
	return _u
}

// SetLastModified sets the "last_modified" field.
func (_u *FeedUpdateOne) SetLastModified(v string) *FeedUpdateOne {
	_u.mutation.SetLastModified(v)
	return _u
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableLastModified(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetLastModified(*v)
	}
	return _u
}

// ClearLastModified clears the value of the "last_modified" field.
func (_u *FeedUpdateOne) ClearLastModified() *FeedUpdateOne {
	_u.mutation.ClearLastModified()
	return _u
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (_u *FeedUpdateOne) SetConsecutiveErrors(v int) *FeedUpdateOne {
	_u.mutation.ResetConsecutiveErrors()
	_u.mutation.SetConsecutiveErrors(v)
	return _u
}

// SetNillableConsecutiveErrors sets the "consecutive_errors" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableConsecutiveErrors(v *int) *FeedUpdateOne {
	if v != nil {
		_u.SetConsecutiveErrors(*v)
	}
	return _u
}

// AddConsecutiveErrors adds value to the "consecutive_errors" field.
func (_u *FeedUpdateOne) AddConsecutiveErrors(v int) *FeedUpdateOne {
	_u.mutation.AddConsecutiveErrors(v)
	return _u
}

// SetArticleCount sets the "article_count" field.
func (_u *FeedUpdateOne) SetArticleCount(v int) *FeedUpdateOne {
	_u.mutation.ResetArticleCount()
	_u.mutation.SetArticleCount(v)
	return _u
}

// SetNillableArticleCount sets the "article_count" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableArticleCount(v *int) *FeedUpdateOne {
	if v != nil {
		_u.SetArticleCount(*v)
	}
	return _u
}

// AddArticleCount adds value to the "article_count" field.
func (_u *FeedUpdateOne) AddArticleCount(v int) *FeedUpdateOne {
	_u.mutation.AddArticleCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeedUpdateOne) SetUpdatedAt(v time.Time) *FeedUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FeedMutation object of the builder.
func (_u *FeedUpdateOne) Mutation() *FeedMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedUpdate builder.
func (_u *FeedUpdateOne) Where(ps ...predicate.Feed) *FeedUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedUpdateOne) Select(field string, fields ...string) *FeedUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feed entity.
func (_u *FeedUpdateOne) Save(ctx context.Context) (*Feed, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedUpdateOne) SaveX(ctx context.Context) *Feed {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeedUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feed.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *FeedUpdateOne) sqlSave(ctx context.Context) (_node *Feed, err error) {
	_spec := sqlgraph.NewUpdateSpec(feed.Table, feed.Columns, sqlgraph.NewFieldSpec(feed.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feed.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feed.FieldID)
		for _, f := range fields {
			if !feed.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feed.FieldID {
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
	if value, ok := _u.mutation.Route(); ok {
		_spec.SetField(feed.FieldRoute, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(feed.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(feed.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(feed.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(feed.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.IntervalMinutes(); ok {
		_spec.SetField(feed.FieldIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalMinutes(); ok {
		_spec.AddField(feed.FieldIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fulltext(); ok {
		_spec.SetField(feed.FieldFulltext, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(feed.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPollAt(); ok {
		_spec.SetField(feed.FieldLastPollAt, field.TypeTime, value)
	}
	if _u.mutation.LastPollAtCleared() {
		_spec.ClearField(feed.FieldLastPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(feed.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(feed.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.LastModified(); ok {
		_spec.SetField(feed.FieldLastModified, field.TypeString, value)
	}
	if _u.mutation.LastModifiedCleared() {
		_spec.ClearField(feed.FieldLastModified, field.TypeString)
	}
	if value, ok := _u.mutation.ConsecutiveErrors(); ok {
		_spec.SetField(feed.FieldConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveErrors(); ok {
		_spec.AddField(feed.FieldConsecutiveErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArticleCount(); ok {
		_spec.SetField(feed.FieldArticleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleCount(); ok {
		_spec.AddField(feed.FieldArticleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feed.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Feed{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
