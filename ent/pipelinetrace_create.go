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

// PipelineTraceCreate is the builder for creating a PipelineTrace entity.
type PipelineTraceCreate struct {
	config
	mutation *PipelineTraceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetArticleID sets the "article_id" field.
func (_c *PipelineTraceCreate) SetArticleID(v string) *PipelineTraceCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetLayer sets the "layer" field.
func (_c *PipelineTraceCreate) SetLayer(v string) *PipelineTraceCreate {
	_c.mutation.SetLayer(v)
	return _c
}

// SetNode sets the "node" field.
func (_c *PipelineTraceCreate) SetNode(v string) *PipelineTraceCreate {
	_c.mutation.SetNode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineTraceCreate) SetStatus(v pipelinetrace.Status) *PipelineTraceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *PipelineTraceCreate) SetDurationMs(v int) *PipelineTraceCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *PipelineTraceCreate) SetNillableDurationMs(v *int) *PipelineTraceCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PipelineTraceCreate) SetMetadata(v map[string]interface{}) *PipelineTraceCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetError sets the "error" field.
func (_c *PipelineTraceCreate) SetError(v string) *PipelineTraceCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *PipelineTraceCreate) SetNillableError(v *string) *PipelineTraceCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineTraceCreate) SetCreatedAt(v time.Time) *PipelineTraceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineTraceCreate) SetNillableCreatedAt(v *time.Time) *PipelineTraceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineTraceCreate) SetID(v string) *PipelineTraceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArticle sets the "article" edge to the Article entity.
func (_c *PipelineTraceCreate) SetArticle(v *Article) *PipelineTraceCreate {
	return _c.SetArticleID(v.ID)
}

// Mutation returns the PipelineTraceMutation object of the builder.
func (_c *PipelineTraceCreate) Mutation() *PipelineTraceMutation {
	return _c.mutation
}

// Save creates the PipelineTrace in the database.
func (_c *PipelineTraceCreate) Save(ctx context.Context) (*PipelineTrace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineTraceCreate) SaveX(ctx context.Context) *PipelineTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineTraceCreate) defaults() {
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := pipelinetrace.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinetrace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineTraceCreate) check() error {
	if _, ok := _c.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "PipelineTrace.article_id"`)}
	}
	if _, ok := _c.mutation.Layer(); !ok {
		return &ValidationError{Name: "layer", err: errors.New(`ent: missing required field "PipelineTrace.layer"`)}
	}
	if _, ok := _c.mutation.Node(); !ok {
		return &ValidationError{Name: "node", err: errors.New(`ent: missing required field "PipelineTrace.node"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineTrace.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinetrace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineTrace.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "PipelineTrace.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineTrace.created_at"`)}
	}
	if len(_c.mutation.ArticleIDs()) == 0 {
		return &ValidationError{Name: "article", err: errors.New(`ent: missing required edge "PipelineTrace.article"`)}
	}
	return nil
}

func (_c *PipelineTraceCreate) sqlSave(ctx context.Context) (*PipelineTrace, error) {
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
			return nil, fmt.Errorf("unexpected PipelineTrace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineTraceCreate) createSpec() (*PipelineTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinetrace.Table, sqlgraph.NewFieldSpec(pipelinetrace.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Layer(); ok {
		_spec.SetField(pipelinetrace.FieldLayer, field.TypeString, value)
		_node.Layer = value
	}
	if value, ok := _c.mutation.Node(); ok {
		_spec.SetField(pipelinetrace.FieldNode, field.TypeString, value)
		_node.Node = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinetrace.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(pipelinetrace.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(pipelinetrace.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(pipelinetrace.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinetrace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ArticleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinetrace.ArticleTable,
			Columns: []string{pipelinetrace.ArticleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(article.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ArticleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineTrace.Create().
//		SetArticleID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineTraceUpsert) {
//			SetArticleID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineTraceCreate) OnConflict(opts ...sql.ConflictOption) *PipelineTraceUpsertOne {
	_c.conflict = opts
	return &PipelineTraceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineTraceCreate) OnConflictColumns(columns ...string) *PipelineTraceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineTraceUpsertOne{
		create: _c,
	}
}

type (
	// PipelineTraceUpsertOne is the builder for "upsert"-ing
	//  one PipelineTrace node.
	PipelineTraceUpsertOne struct {
		create *PipelineTraceCreate
	}

	// PipelineTraceUpsert is the "OnConflict" setter.
	PipelineTraceUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinetrace.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineTraceUpsertOne) UpdateNewValues() *PipelineTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinetrace.FieldID)
		}
		if _, exists := u.create.mutation.ArticleID(); exists {
			s.SetIgnore(pipelinetrace.FieldArticleID)
		}
		if _, exists := u.create.mutation.Layer(); exists {
			s.SetIgnore(pipelinetrace.FieldLayer)
		}
		if _, exists := u.create.mutation.Node(); exists {
			s.SetIgnore(pipelinetrace.FieldNode)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(pipelinetrace.FieldStatus)
		}
		if _, exists := u.create.mutation.DurationMs(); exists {
			s.SetIgnore(pipelinetrace.FieldDurationMs)
		}
		if _, exists := u.create.mutation.Metadata(); exists {
			s.SetIgnore(pipelinetrace.FieldMetadata)
		}
		if _, exists := u.create.mutation.Error(); exists {
			s.SetIgnore(pipelinetrace.FieldError)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelinetrace.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineTrace.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineTraceUpsertOne) Ignore() *PipelineTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineTraceUpsertOne) DoNothing() *PipelineTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineTraceCreate.OnConflict
// documentation for more info.
func (u *PipelineTraceUpsertOne) Update(set func(*PipelineTraceUpsert)) *PipelineTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineTraceUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *PipelineTraceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineTraceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineTraceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineTraceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineTraceUpsertOne.ID is not supported by MySQL driver. Use PipelineTraceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineTraceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineTraceCreateBulk is the builder for creating many PipelineTrace entities in bulk.
type PipelineTraceCreateBulk struct {
	config
	err      error
	builders []*PipelineTraceCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineTrace entities in the database.
func (_c *PipelineTraceCreateBulk) Save(ctx context.Context) ([]*PipelineTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineTraceMutation)
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
func (_c *PipelineTraceCreateBulk) SaveX(ctx context.Context) []*PipelineTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineTrace.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineTraceUpsert) {
//			SetArticleID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineTraceCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineTraceUpsertBulk {
	_c.conflict = opts
	return &PipelineTraceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineTraceCreateBulk) OnConflictColumns(columns ...string) *PipelineTraceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineTraceUpsertBulk{
		create: _c,
	}
}

// PipelineTraceUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineTrace nodes.
type PipelineTraceUpsertBulk struct {
	create *PipelineTraceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinetrace.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineTraceUpsertBulk) UpdateNewValues() *PipelineTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinetrace.FieldID)
			}
			if _, exists := b.mutation.ArticleID(); exists {
				s.SetIgnore(pipelinetrace.FieldArticleID)
			}
			if _, exists := b.mutation.Layer(); exists {
				s.SetIgnore(pipelinetrace.FieldLayer)
			}
			if _, exists := b.mutation.Node(); exists {
				s.SetIgnore(pipelinetrace.FieldNode)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(pipelinetrace.FieldStatus)
			}
			if _, exists := b.mutation.DurationMs(); exists {
				s.SetIgnore(pipelinetrace.FieldDurationMs)
			}
			if _, exists := b.mutation.Metadata(); exists {
				s.SetIgnore(pipelinetrace.FieldMetadata)
			}
			if _, exists := b.mutation.Error(); exists {
				s.SetIgnore(pipelinetrace.FieldError)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelinetrace.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineTrace.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineTraceUpsertBulk) Ignore() *PipelineTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineTraceUpsertBulk) DoNothing() *PipelineTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineTraceCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineTraceUpsertBulk) Update(set func(*PipelineTraceUpsert)) *PipelineTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineTraceUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *PipelineTraceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineTraceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineTraceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineTraceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
