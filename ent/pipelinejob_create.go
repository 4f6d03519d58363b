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
	"github.com/finsight/newsflow/ent/pipelinejob"
)

// PipelineJobCreate is the builder for creating a PipelineJob entity.
type PipelineJobCreate struct {
	config
	mutation *PipelineJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKind sets the "kind" field.
func (_c *PipelineJobCreate) SetKind(v pipelinejob.Kind) *PipelineJobCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQueue sets the "queue" field.
func (_c *PipelineJobCreate) SetQueue(v string) *PipelineJobCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableQueue(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetQueue(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PipelineJobCreate) SetPayload(v map[string]interface{}) *PipelineJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineJobCreate) SetStatus(v pipelinejob.Status) *PipelineJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableStatus(v *pipelinejob.Status) *PipelineJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *PipelineJobCreate) SetAttempts(v int) *PipelineJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableAttempts(v *int) *PipelineJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *PipelineJobCreate) SetMaxAttempts(v int) *PipelineJobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableMaxAttempts(v *int) *PipelineJobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetRunAt sets the "run_at" field.
func (_c *PipelineJobCreate) SetRunAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetRunAt(v)
	return _c
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableRunAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetRunAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *PipelineJobCreate) SetPodID(v string) *PipelineJobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillablePodID(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineJobCreate) SetStartedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableStartedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineJobCreate) SetCompletedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableCompletedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *PipelineJobCreate) SetLastHeartbeatAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableLastHeartbeatAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineJobCreate) SetErrorMessage(v string) *PipelineJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableErrorMessage(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *PipelineJobCreate) SetResult(v map[string]interface{}) *PipelineJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineJobCreate) SetCreatedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableCreatedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineJobCreate) SetID(v string) *PipelineJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_c *PipelineJobCreate) Mutation() *PipelineJobMutation {
	return _c.mutation
}

// Save creates the PipelineJob in the database.
func (_c *PipelineJobCreate) Save(ctx context.Context) (*PipelineJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineJobCreate) SaveX(ctx context.Context) *PipelineJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineJobCreate) defaults() {
	if _, ok := _c.mutation.Queue(); !ok {
		v := pipelinejob.DefaultQueue
		_c.mutation.SetQueue(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinejob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := pipelinejob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := pipelinejob.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		v := pipelinejob.DefaultRunAt()
		_c.mutation.SetRunAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinejob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineJobCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PipelineJob.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := pipelinejob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "PipelineJob.queue"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "PipelineJob.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "PipelineJob.max_attempts"`)}
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		return &ValidationError{Name: "run_at", err: errors.New(`ent: missing required field "PipelineJob.run_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineJob.created_at"`)}
	}
	return nil
}

func (_c *PipelineJobCreate) sqlSave(ctx context.Context) (*PipelineJob, error) {
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
			return nil, fmt.Errorf("unexpected PipelineJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineJobCreate) createSpec() (*PipelineJob, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinejob.Table, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(pipelinejob.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(pipelinejob.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(pipelinejob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinejob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(pipelinejob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(pipelinejob.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.RunAt(); ok {
		_spec.SetField(pipelinejob.FieldRunAt, field.TypeTime, value)
		_node.RunAt = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(pipelinejob.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinejob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinejob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(pipelinejob.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(pipelinejob.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinejob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineJob.Create().
//		SetKind(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineJobUpsert) {
//			SetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineJobCreate) OnConflict(opts ...sql.ConflictOption) *PipelineJobUpsertOne {
	_c.conflict = opts
	return &PipelineJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineJobCreate) OnConflictColumns(columns ...string) *PipelineJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineJobUpsertOne{
		create: _c,
	}
}

type (
	// PipelineJobUpsertOne is the builder for "upsert"-ing
	//  one PipelineJob node.
	PipelineJobUpsertOne struct {
		create *PipelineJobCreate
	}

	// PipelineJobUpsert is the "OnConflict" setter.
	PipelineJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *PipelineJobUpsert) SetStatus(v pipelinejob.Status) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateStatus() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *PipelineJobUpsert) SetAttempts(v int) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateAttempts() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *PipelineJobUpsert) AddAttempts(v int) *PipelineJobUpsert {
	u.Add(pipelinejob.FieldAttempts, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *PipelineJobUpsert) SetMaxAttempts(v int) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateMaxAttempts() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *PipelineJobUpsert) AddMaxAttempts(v int) *PipelineJobUpsert {
	u.Add(pipelinejob.FieldMaxAttempts, v)
	return u
}

// SetRunAt sets the "run_at" field.
func (u *PipelineJobUpsert) SetRunAt(v time.Time) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldRunAt, v)
	return u
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateRunAt() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldRunAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *PipelineJobUpsert) SetPodID(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdatePodID() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineJobUpsert) ClearPodID() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldPodID)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineJobUpsert) SetStartedAt(v time.Time) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateStartedAt() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineJobUpsert) ClearStartedAt() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineJobUpsert) SetCompletedAt(v time.Time) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateCompletedAt() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineJobUpsert) ClearCompletedAt() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldCompletedAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *PipelineJobUpsert) SetLastHeartbeatAt(v time.Time) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateLastHeartbeatAt() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *PipelineJobUpsert) ClearLastHeartbeatAt() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldLastHeartbeatAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineJobUpsert) SetErrorMessage(v string) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateErrorMessage() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineJobUpsert) ClearErrorMessage() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldErrorMessage)
	return u
}

// SetResult sets the "result" field.
func (u *PipelineJobUpsert) SetResult(v map[string]interface{}) *PipelineJobUpsert {
	u.Set(pipelinejob.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PipelineJobUpsert) UpdateResult() *PipelineJobUpsert {
	u.SetExcluded(pipelinejob.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *PipelineJobUpsert) ClearResult() *PipelineJobUpsert {
	u.SetNull(pipelinejob.FieldResult)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinejob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineJobUpsertOne) UpdateNewValues() *PipelineJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinejob.FieldID)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(pipelinejob.FieldKind)
		}
		if _, exists := u.create.mutation.Queue(); exists {
			s.SetIgnore(pipelinejob.FieldQueue)
		}
		if _, exists := u.create.mutation.Payload(); exists {
			s.SetIgnore(pipelinejob.FieldPayload)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelinejob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineJobUpsertOne) Ignore() *PipelineJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineJobUpsertOne) DoNothing() *PipelineJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineJobCreate.OnConflict
// documentation for more info.
func (u *PipelineJobUpsertOne) Update(set func(*PipelineJobUpsert)) *PipelineJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineJobUpsertOne) SetStatus(v pipelinejob.Status) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateStatus() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *PipelineJobUpsertOne) SetAttempts(v int) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *PipelineJobUpsertOne) AddAttempts(v int) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateAttempts() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *PipelineJobUpsertOne) SetMaxAttempts(v int) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *PipelineJobUpsertOne) AddMaxAttempts(v int) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateMaxAttempts() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetRunAt sets the "run_at" field.
func (u *PipelineJobUpsertOne) SetRunAt(v time.Time) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateRunAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateRunAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *PipelineJobUpsertOne) SetPodID(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdatePodID() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineJobUpsertOne) ClearPodID() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearPodID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineJobUpsertOne) SetStartedAt(v time.Time) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateStartedAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineJobUpsertOne) ClearStartedAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineJobUpsertOne) SetCompletedAt(v time.Time) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateCompletedAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineJobUpsertOne) ClearCompletedAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *PipelineJobUpsertOne) SetLastHeartbeatAt(v time.Time) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateLastHeartbeatAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *PipelineJobUpsertOne) ClearLastHeartbeatAt() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineJobUpsertOne) SetErrorMessage(v string) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateErrorMessage() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineJobUpsertOne) ClearErrorMessage() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResult sets the "result" field.
func (u *PipelineJobUpsertOne) SetResult(v map[string]interface{}) *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PipelineJobUpsertOne) UpdateResult() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *PipelineJobUpsertOne) ClearResult() *PipelineJobUpsertOne {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearResult()
	})
}

// Exec executes the query.
func (u *PipelineJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineJobUpsertOne.ID is not supported by MySQL driver. Use PipelineJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineJobCreateBulk is the builder for creating many PipelineJob entities in bulk.
type PipelineJobCreateBulk struct {
	config
	err      error
	builders []*PipelineJobCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineJob entities in the database.
func (_c *PipelineJobCreateBulk) Save(ctx context.Context) ([]*PipelineJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineJobMutation)
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
func (_c *PipelineJobCreateBulk) SaveX(ctx context.Context) []*PipelineJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineJobUpsert) {
//			SetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineJobUpsertBulk {
	_c.conflict = opts
	return &PipelineJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineJobCreateBulk) OnConflictColumns(columns ...string) *PipelineJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineJobUpsertBulk{
		create: _c,
	}
}

// PipelineJobUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineJob nodes.
type PipelineJobUpsertBulk struct {
	create *PipelineJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinejob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineJobUpsertBulk) UpdateNewValues() *PipelineJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinejob.FieldID)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(pipelinejob.FieldKind)
			}
			if _, exists := b.mutation.Queue(); exists {
				s.SetIgnore(pipelinejob.FieldQueue)
			}
			if _, exists := b.mutation.Payload(); exists {
				s.SetIgnore(pipelinejob.FieldPayload)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelinejob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineJobUpsertBulk) Ignore() *PipelineJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineJobUpsertBulk) DoNothing() *PipelineJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineJobCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineJobUpsertBulk) Update(set func(*PipelineJobUpsert)) *PipelineJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineJobUpsertBulk) SetStatus(v pipelinejob.Status) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateStatus() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *PipelineJobUpsertBulk) SetAttempts(v int) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *PipelineJobUpsertBulk) AddAttempts(v int) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateAttempts() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *PipelineJobUpsertBulk) SetMaxAttempts(v int) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *PipelineJobUpsertBulk) AddMaxAttempts(v int) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateMaxAttempts() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetRunAt sets the "run_at" field.
func (u *PipelineJobUpsertBulk) SetRunAt(v time.Time) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateRunAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateRunAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *PipelineJobUpsertBulk) SetPodID(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdatePodID() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PipelineJobUpsertBulk) ClearPodID() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearPodID()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PipelineJobUpsertBulk) SetStartedAt(v time.Time) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateStartedAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PipelineJobUpsertBulk) ClearStartedAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PipelineJobUpsertBulk) SetCompletedAt(v time.Time) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateCompletedAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PipelineJobUpsertBulk) ClearCompletedAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *PipelineJobUpsertBulk) SetLastHeartbeatAt(v time.Time) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateLastHeartbeatAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *PipelineJobUpsertBulk) ClearLastHeartbeatAt() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PipelineJobUpsertBulk) SetErrorMessage(v string) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateErrorMessage() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PipelineJobUpsertBulk) ClearErrorMessage() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResult sets the "result" field.
func (u *PipelineJobUpsertBulk) SetResult(v map[string]interface{}) *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PipelineJobUpsertBulk) UpdateResult() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *PipelineJobUpsertBulk) ClearResult() *PipelineJobUpsertBulk {
	return u.Update(func(s *PipelineJobUpsert) {
		s.ClearResult()
	})
}

// Exec executes the query.
func (u *PipelineJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
