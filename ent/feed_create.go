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
	"github.com/finsight/newsflow/ent/feed"
)

// FeedCreate is the builder for creating a Feed entity.
type FeedCreate struct {
	config
	mutation *FeedMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRoute sets the "route" field.
func (_c *FeedCreate) SetRoute(v string) *FeedCreate {
	_c.mutation.SetRoute(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FeedCreate) SetName(v string) *FeedCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *FeedCreate) SetNillableName(v *string) *FeedCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *FeedCreate) SetCategory(v string) *FeedCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *FeedCreate) SetNillableCategory(v *string) *FeedCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetIntervalMinutes sets the "interval_minutes" field.
func (_c *FeedCreate) SetIntervalMinutes(v int) *FeedCreate {
	_c.mutation.SetIntervalMinutes(v)
	return _c
}

// SetNillableIntervalMinutes sets the "interval_minutes" field if the given value is not nil.
func (_c *FeedCreate) SetNillableIntervalMinutes(v *int) *FeedCreate {
	if v != nil {
		_c.SetIntervalMinutes(*v)
	}
	return _c
}

// SetFulltext sets the "fulltext" field.
func (_c *FeedCreate) SetFulltext(v bool) *FeedCreate {
	_c.mutation.SetFulltext(v)
	return _c
}

// SetNillableFulltext sets the "fulltext" field if the given value is not nil.
func (_c *FeedCreate) SetNillableFulltext(v *bool) *FeedCreate {
	if v != nil {
		_c.SetFulltext(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *FeedCreate) SetEnabled(v bool) *FeedCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *FeedCreate) SetNillableEnabled(v *bool) *FeedCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastPollAt sets the "last_poll_at" field.
func (_c *FeedCreate) SetLastPollAt(v time.Time) *FeedCreate {
	_c.mutation.SetLastPollAt(v)
	return _c
}

// SetNillableLastPollAt sets the "last_poll_at" field if the given value is not nil.
func (_c *FeedCreate) SetNillableLastPollAt(v *time.Time) *FeedCreate {
	if v != nil {
		_c.SetLastPollAt(*v)
	}
	return _c
}

// SetEtag sets the "etag" field.
func (_c *FeedCreate) SetEtag(v string) *FeedCreate {
	_c.mutation.SetEtag(v)
	return _c
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_c *FeedCreate) SetNillableEtag(v *string) *FeedCreate {
	if v != nil {
		_c.SetEtag(*v)
	}
	return _c
}

// SetLastModified sets the "last_modified" field.
func (_c *FeedCreate) SetLastModified(v string) *FeedCreate {
	_c.mutation.SetLastModified(v)
	return _c
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_c *FeedCreate) SetNillableLastModified(v *string) *FeedCreate {
	if v != nil {
		_c.SetLastModified(*v)
	}
	return _c
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (_c *FeedCreate) SetConsecutiveErrors(v int) *FeedCreate {
	_c.mutation.SetConsecutiveErrors(v)
	return _c
}

// SetNillableConsecutiveErrors sets the "consecutive_errors" field if the given value is not nil.
func (_c *FeedCreate) SetNillableConsecutiveErrors(v *int) *FeedCreate {
	if v != nil {
		_c.SetConsecutiveErrors(*v)
	}
	return _c
}

// SetArticleCount sets the "article_count" field.
func (_c *FeedCreate) SetArticleCount(v int) *FeedCreate {
	_c.mutation.SetArticleCount(v)
	return _c
}

// SetNillableArticleCount sets the "article_count" field if the given value is not nil.
func (_c *FeedCreate) SetNillableArticleCount(v *int) *FeedCreate {
	if v != nil {
		_c.SetArticleCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedCreate) SetCreatedAt(v time.Time) *FeedCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedCreate) SetNillableCreatedAt(v *time.Time) *FeedCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FeedCreate) SetUpdatedAt(v time.Time) *FeedCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FeedCreate) SetNillableUpdatedAt(v *time.Time) *FeedCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedCreate) SetID(v string) *FeedCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FeedMutation object of the builder.
func (_c *FeedCreate) Mutation() *FeedMutation {
	return _c.mutation
}

// Save creates the Feed in the database.
func (_c *FeedCreate) Save(ctx context.Context) (*Feed, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedCreate) SaveX(ctx context.Context) *Feed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedCreate) defaults() {
	if _, ok := _c.mutation.IntervalMinutes(); !ok {
		v := feed.DefaultIntervalMinutes
		_c.mutation.SetIntervalMinutes(v)
	}
	if _, ok := _c.mutation.Fulltext(); !ok {
		v := feed.DefaultFulltext
		_c.mutation.SetFulltext(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := feed.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.ConsecutiveErrors(); !ok {
		v := feed.DefaultConsecutiveErrors
		_c.mutation.SetConsecutiveErrors(v)
	}
	if _, ok := _c.mutation.ArticleCount(); !ok {
		v := feed.DefaultArticleCount
		_c.mutation.SetArticleCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feed.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := feed.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedCreate) check() error {
	if _, ok := _c.mutation.Route(); !ok {
		return &ValidationError{Name: "route", err: errors.New(`ent: missing required field "Feed.route"`)}
	}
	if _, ok := _c.mutation.IntervalMinutes(); !ok {
		return &ValidationError{Name: "interval_minutes", err: errors.New(`ent: missing required field "Feed.interval_minutes"`)}
	}
	if _, ok := _c.mutation.Fulltext(); !ok {
		return &ValidationError{Name: "fulltext", err: errors.New(`ent: missing required field "Feed.fulltext"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Feed.enabled"`)}
	}
	if _, ok := _c.mutation.ConsecutiveErrors(); !ok {
		return &ValidationError{Name: "consecutive_errors", err: errors.New(`ent: missing required field "Feed.consecutive_errors"`)}
	}
	if _, ok := _c.mutation.ArticleCount(); !ok {
		return &ValidationError{Name: "article_count", err: errors.New(`ent: missing required field "Feed.article_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Feed.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Feed.updated_at"`)}
	}
	return nil
}

func (_c *FeedCreate) sqlSave(ctx context.Context) (*Feed, error) {
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
			return nil, fmt.Errorf("unexpected Feed.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedCreate) createSpec() (*Feed, *sqlgraph.CreateSpec) {
	var (
		_node = &Feed{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feed.Table, sqlgraph.NewFieldSpec(feed.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Route(); ok {
		_spec.SetField(feed.FieldRoute, field.TypeString, value)
		_node.Route = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(feed.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(feed.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.IntervalMinutes(); ok {
		_spec.SetField(feed.FieldIntervalMinutes, field.TypeInt, value)
		_node.IntervalMinutes = value
	}
	if value, ok := _c.mutation.Fulltext(); ok {
		_spec.SetField(feed.FieldFulltext, field.TypeBool, value)
		_node.Fulltext = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(feed.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastPollAt(); ok {
		_spec.SetField(feed.FieldLastPollAt, field.TypeTime, value)
		_node.LastPollAt = &value
	}
	if value, ok := _c.mutation.Etag(); ok {
		_spec.SetField(feed.FieldEtag, field.TypeString, value)
		_node.Etag = value
	}
	if value, ok := _c.mutation.LastModified(); ok {
		_spec.SetField(feed.FieldLastModified, field.TypeString, value)
		_node.LastModified = value
	}
	if value, ok := _c.mutation.ConsecutiveErrors(); ok {
		_spec.SetField(feed.FieldConsecutiveErrors, field.TypeInt, value)
		_node.ConsecutiveErrors = value
	}
	if value, ok := _c.mutation.ArticleCount(); ok {
		_spec.SetField(feed.FieldArticleCount, field.TypeInt, value)
		_node.ArticleCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feed.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(feed.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Feed.Create().
//		SetRoute(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedUpsert) {
//			SetRoute(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedCreate) OnConflict(opts ...sql.ConflictOption) *FeedUpsertOne {
	_c.conflict = opts
	return &FeedUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Feed.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedCreate) OnConflictColumns(columns ...string) *FeedUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedUpsertOne{
		create: _c,
	}
}

type (
	// FeedUpsertOne is the builder for "upsert"-ing
	//  one Feed node.
	FeedUpsertOne struct {
		create *FeedCreate
	}

	// FeedUpsert is the "OnConflict" setter.
	FeedUpsert struct {
		*sql.UpdateSet
	}
)

// SetRoute sets the "route" field.
func (u *FeedUpsert) SetRoute(v string) *FeedUpsert {
	u.Set(feed.FieldRoute, v)
	return u
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *FeedUpsert) UpdateRoute() *FeedUpsert {
	u.SetExcluded(feed.FieldRoute)
	return u
}

// SetName sets the "name" field.
func (u *FeedUpsert) SetName(v string) *FeedUpsert {
	u.Set(feed.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FeedUpsert) UpdateName() *FeedUpsert {
	u.SetExcluded(feed.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *FeedUpsert) ClearName() *FeedUpsert {
	u.SetNull(feed.FieldName)
	return u
}

// SetCategory sets the "category" field.
func (u *FeedUpsert) SetCategory(v string) *FeedUpsert {
	u.Set(feed.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *FeedUpsert) UpdateCategory() *FeedUpsert {
	u.SetExcluded(feed.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *FeedUpsert) ClearCategory() *FeedUpsert {
	u.SetNull(feed.FieldCategory)
	return u
}

// SetIntervalMinutes sets the "interval_minutes" field.
func (u *FeedUpsert) SetIntervalMinutes(v int) *FeedUpsert {
	u.Set(feed.FieldIntervalMinutes, v)
	return u
}

// UpdateIntervalMinutes sets the "interval_minutes" field to the value that was provided on create.
func (u *FeedUpsert) UpdateIntervalMinutes() *FeedUpsert {
	u.SetExcluded(feed.FieldIntervalMinutes)
	return u
}

// AddIntervalMinutes adds v to the "interval_minutes" field.
func (u *FeedUpsert) AddIntervalMinutes(v int) *FeedUpsert {
	u.Add(feed.FieldIntervalMinutes, v)
	return u
}

// SetFulltext sets the "fulltext" field.
func (u *FeedUpsert) SetFulltext(v bool) *FeedUpsert {
	u.Set(feed.FieldFulltext, v)
	return u
}

// UpdateFulltext sets the "fulltext" field to the value that was provided on create.
func (u *FeedUpsert) UpdateFulltext() *FeedUpsert {
	u.SetExcluded(feed.FieldFulltext)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *FeedUpsert) SetEnabled(v bool) *FeedUpsert {
	u.Set(feed.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *FeedUpsert) UpdateEnabled() *FeedUpsert {
	u.SetExcluded(feed.FieldEnabled)
	return u
}

// SetLastPollAt sets the "last_poll_at" field.
func (u *FeedUpsert) SetLastPollAt(v time.Time) *FeedUpsert {
	u.Set(feed.FieldLastPollAt, v)
	return u
}

// UpdateLastPollAt sets the "last_poll_at" field to the value that was provided on create.
func (u *FeedUpsert) UpdateLastPollAt() *FeedUpsert {
	u.SetExcluded(feed.FieldLastPollAt)
	return u
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (u *FeedUpsert) ClearLastPollAt() *FeedUpsert {
	u.SetNull(feed.FieldLastPollAt)
	return u
}

// SetEtag sets the "etag" field.
func (u *FeedUpsert) SetEtag(v string) *FeedUpsert {
	u.Set(feed.FieldEtag, v)
	return u
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *FeedUpsert) UpdateEtag() *FeedUpsert {
	u.SetExcluded(feed.FieldEtag)
	return u
}

// ClearEtag clears the value of the "etag" field.
func (u *FeedUpsert) ClearEtag() *FeedUpsert {
	u.SetNull(feed.FieldEtag)
	return u
}

// SetLastModified sets the "last_modified" field.
func (u *FeedUpsert) SetLastModified(v string) *FeedUpsert {
	u.Set(feed.FieldLastModified, v)
	return u
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *FeedUpsert) UpdateLastModified() *FeedUpsert {
	u.SetExcluded(feed.FieldLastModified)
	return u
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *FeedUpsert) ClearLastModified() *FeedUpsert {
	u.SetNull(feed.FieldLastModified)
	return u
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (u *FeedUpsert) SetConsecutiveErrors(v int) *FeedUpsert {
	u.Set(feed.FieldConsecutiveErrors, v)
	return u
}

// UpdateConsecutiveErrors sets the "consecutive_errors" field to the value that was provided on create.
func (u *FeedUpsert) UpdateConsecutiveErrors() *FeedUpsert {
	u.SetExcluded(feed.FieldConsecutiveErrors)
	return u
}

// AddConsecutiveErrors adds v to the "consecutive_errors" field.
func (u *FeedUpsert) AddConsecutiveErrors(v int) *FeedUpsert {
	u.Add(feed.FieldConsecutiveErrors, v)
	return u
}

// SetArticleCount sets the "article_count" field.
func (u *FeedUpsert) SetArticleCount(v int) *FeedUpsert {
	u.Set(feed.FieldArticleCount, v)
	return u
}

// UpdateArticleCount sets the "article_count" field to the value that was provided on create.
func (u *FeedUpsert) UpdateArticleCount() *FeedUpsert {
	u.SetExcluded(feed.FieldArticleCount)
	return u
}

// AddArticleCount adds v to the "article_count" field.
func (u *FeedUpsert) AddArticleCount(v int) *FeedUpsert {
	u.Add(feed.FieldArticleCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FeedUpsert) SetUpdatedAt(v time.Time) *FeedUpsert {
	u.Set(feed.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FeedUpsert) UpdateUpdatedAt() *FeedUpsert {
	u.SetExcluded(feed.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Feed.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(feed.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FeedUpsertOne) UpdateNewValues() *FeedUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(feed.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(feed.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Feed.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FeedUpsertOne) Ignore() *FeedUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedUpsertOne) DoNothing() *FeedUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedCreate.OnConflict
// documentation for more info.
func (u *FeedUpsertOne) Update(set func(*FeedUpsert)) *FeedUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoute sets the "route" field.
func (u *FeedUpsertOne) SetRoute(v string) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetRoute(v)
	})
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateRoute() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateRoute()
	})
}

// SetName sets the "name" field.
func (u *FeedUpsertOne) SetName(v string) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateName() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *FeedUpsertOne) ClearName() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.ClearName()
	})
}

// SetCategory sets the "category" field.
func (u *FeedUpsertOne) SetCategory(v string) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateCategory() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *FeedUpsertOne) ClearCategory() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.ClearCategory()
	})
}

// SetIntervalMinutes sets the "interval_minutes" field.
func (u *FeedUpsertOne) SetIntervalMinutes(v int) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetIntervalMinutes(v)
	})
}

// AddIntervalMinutes adds v to the "interval_minutes" field.
func (u *FeedUpsertOne) AddIntervalMinutes(v int) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.AddIntervalMinutes(v)
	})
}

// UpdateIntervalMinutes sets the "interval_minutes" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateIntervalMinutes() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateIntervalMinutes()
	})
}

// SetFulltext sets the "fulltext" field.
func (u *FeedUpsertOne) SetFulltext(v bool) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetFulltext(v)
	})
}

// UpdateFulltext sets the "fulltext" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateFulltext() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateFulltext()
	})
}

// SetEnabled sets the "enabled" field.
func (u *FeedUpsertOne) SetEnabled(v bool) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateEnabled() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateEnabled()
	})
}

// SetLastPollAt sets the "last_poll_at" field.
func (u *FeedUpsertOne) SetLastPollAt(v time.Time) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetLastPollAt(v)
	})
}

// UpdateLastPollAt sets the "last_poll_at" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateLastPollAt() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateLastPollAt()
	})
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (u *FeedUpsertOne) ClearLastPollAt() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.ClearLastPollAt()
	})
}

// SetEtag sets the "etag" field.
func (u *FeedUpsertOne) SetEtag(v string) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetEtag(v)
	})
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateEtag() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateEtag()
	})
}

// ClearEtag clears the value of the "etag" field.
func (u *FeedUpsertOne) ClearEtag() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.ClearEtag()
	})
}

// SetLastModified sets the "last_modified" field.
func (u *FeedUpsertOne) SetLastModified(v string) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetLastModified(v)
	})
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateLastModified() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateLastModified()
	})
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *FeedUpsertOne) ClearLastModified() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.ClearLastModified()
	})
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (u *FeedUpsertOne) SetConsecutiveErrors(v int) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetConsecutiveErrors(v)
	})
}

// AddConsecutiveErrors adds v to the "consecutive_errors" field.
func (u *FeedUpsertOne) AddConsecutiveErrors(v int) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.AddConsecutiveErrors(v)
	})
}

// UpdateConsecutiveErrors sets the "consecutive_errors" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateConsecutiveErrors() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateConsecutiveErrors()
	})
}

// SetArticleCount sets the "article_count" field.
func (u *FeedUpsertOne) SetArticleCount(v int) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetArticleCount(v)
	})
}

// AddArticleCount adds v to the "article_count" field.
func (u *FeedUpsertOne) AddArticleCount(v int) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.AddArticleCount(v)
	})
}

// UpdateArticleCount sets the "article_count" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateArticleCount() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateArticleCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FeedUpsertOne) SetUpdatedAt(v time.Time) *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FeedUpsertOne) UpdateUpdatedAt() *FeedUpsertOne {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FeedUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FeedUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FeedUpsertOne.ID is not supported by MySQL driver. Use FeedUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FeedUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FeedCreateBulk is the builder for creating many Feed entities in bulk.
type FeedCreateBulk struct {
	config
	err      error
	builders []*FeedCreate
	conflict []sql.ConflictOption
}

// Save creates the Feed entities in the database.
func (_c *FeedCreateBulk) Save(ctx context.Context) ([]*Feed, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Feed, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedMutation)
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
func (_c *FeedCreateBulk) SaveX(ctx context.Context) []*Feed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Feed.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedUpsert) {
//			SetRoute(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedCreateBulk) OnConflict(opts ...sql.ConflictOption) *FeedUpsertBulk {
	_c.conflict = opts
	return &FeedUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Feed.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedCreateBulk) OnConflictColumns(columns ...string) *FeedUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedUpsertBulk{
		create: _c,
	}
}

// FeedUpsertBulk is the builder for "upsert"-ing
// a bulk of Feed nodes.
type FeedUpsertBulk struct {
	create *FeedCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Feed.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(feed.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FeedUpsertBulk) UpdateNewValues() *FeedUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(feed.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(feed.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Feed.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FeedUpsertBulk) Ignore() *FeedUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedUpsertBulk) DoNothing() *FeedUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedCreateBulk.OnConflict
// documentation for more info.
func (u *FeedUpsertBulk) Update(set func(*FeedUpsert)) *FeedUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoute sets the "route" field.
func (u *FeedUpsertBulk) SetRoute(v string) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetRoute(v)
	})
}

// UpdateRoute sets the "route" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateRoute() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateRoute()
	})
}

// SetName sets the "name" field.
func (u *FeedUpsertBulk) SetName(v string) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateName() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *FeedUpsertBulk) ClearName() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.ClearName()
	})
}

// SetCategory sets the "category" field.
func (u *FeedUpsertBulk) SetCategory(v string) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateCategory() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *FeedUpsertBulk) ClearCategory() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.ClearCategory()
	})
}

// SetIntervalMinutes sets the "interval_minutes" field.
func (u *FeedUpsertBulk) SetIntervalMinutes(v int) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetIntervalMinutes(v)
	})
}

// AddIntervalMinutes adds v to the "interval_minutes" field.
func (u *FeedUpsertBulk) AddIntervalMinutes(v int) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.AddIntervalMinutes(v)
	})
}

// UpdateIntervalMinutes sets the "interval_minutes" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateIntervalMinutes() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateIntervalMinutes()
	})
}

// SetFulltext sets the "fulltext" field.
func (u *FeedUpsertBulk) SetFulltext(v bool) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetFulltext(v)
	})
}

// UpdateFulltext sets the "fulltext" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateFulltext() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateFulltext()
	})
}

// SetEnabled sets the "enabled" field.
func (u *FeedUpsertBulk) SetEnabled(v bool) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateEnabled() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateEnabled()
	})
}

// SetLastPollAt sets the "last_poll_at" field.
func (u *FeedUpsertBulk) SetLastPollAt(v time.Time) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetLastPollAt(v)
	})
}

// UpdateLastPollAt sets the "last_poll_at" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateLastPollAt() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateLastPollAt()
	})
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (u *FeedUpsertBulk) ClearLastPollAt() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.ClearLastPollAt()
	})
}

// SetEtag sets the "etag" field.
func (u *FeedUpsertBulk) SetEtag(v string) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetEtag(v)
	})
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateEtag() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateEtag()
	})
}

// ClearEtag clears the value of the "etag" field.
func (u *FeedUpsertBulk) ClearEtag() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.ClearEtag()
	})
}

// SetLastModified sets the "last_modified" field.
func (u *FeedUpsertBulk) SetLastModified(v string) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetLastModified(v)
	})
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateLastModified() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateLastModified()
	})
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *FeedUpsertBulk) ClearLastModified() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.ClearLastModified()
	})
}

// SetConsecutiveErrors sets the "consecutive_errors" field.
func (u *FeedUpsertBulk) SetConsecutiveErrors(v int) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetConsecutiveErrors(v)
	})
}

// AddConsecutiveErrors adds v to the "consecutive_errors" field.
func (u *FeedUpsertBulk) AddConsecutiveErrors(v int) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.AddConsecutiveErrors(v)
	})
}

// UpdateConsecutiveErrors sets the "consecutive_errors" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateConsecutiveErrors() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateConsecutiveErrors()
	})
}

// SetArticleCount sets the "article_count" field.
func (u *FeedUpsertBulk) SetArticleCount(v int) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetArticleCount(v)
	})
}

// AddArticleCount adds v to the "article_count" field.
func (u *FeedUpsertBulk) AddArticleCount(v int) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.AddArticleCount(v)
	})
}

// UpdateArticleCount sets the "article_count" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateArticleCount() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateArticleCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FeedUpsertBulk) SetUpdatedAt(v time.Time) *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FeedUpsertBulk) UpdateUpdatedAt() *FeedUpsertBulk {
	return u.Update(func(s *FeedUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *FeedUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FeedCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
