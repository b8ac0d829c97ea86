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
	"github.com/trustlane/vetd/ent/predicate"
	"github.com/trustlane/vetd/ent/verificationjob"
)

// VerificationJobUpdate is the builder for updating VerificationJob entities.
type VerificationJobUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationJobMutation
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdate) Where(ps ...predicate.VerificationJob) *VerificationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRetryMode sets the "retry_mode" field.
func (_u *VerificationJobUpdate) SetRetryMode(v verificationjob.RetryMode) *VerificationJobUpdate {
	_u.mutation.SetRetryMode(v)
	return _u
}

// SetNillableRetryMode sets the "retry_mode" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableRetryMode(v *verificationjob.RetryMode) *VerificationJobUpdate {
	if v != nil {
		_u.SetRetryMode(*v)
	}
	return _u
}

// SetFailedChecks sets the "failed_checks" field.
func (_u *VerificationJobUpdate) SetFailedChecks(v []string) *VerificationJobUpdate {
	_u.mutation.SetFailedChecks(v)
	return _u
}

// AppendFailedChecks appends value to the "failed_checks" field.
func (_u *VerificationJobUpdate) AppendFailedChecks(v []string) *VerificationJobUpdate {
	_u.mutation.AppendFailedChecks(v)
	return _u
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (_u *VerificationJobUpdate) ClearFailedChecks() *VerificationJobUpdate {
	_u.mutation.ClearFailedChecks()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *VerificationJobUpdate) SetCorrelationID(v string) *VerificationJobUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableCorrelationID(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_u *VerificationJobUpdate) SetEnqueuedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetEnqueuedAt(v)
	return _u
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableEnqueuedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetEnqueuedAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdate) SetStatus(v verificationjob.Status) *VerificationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStatus(v *verificationjob.Status) *VerificationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *VerificationJobUpdate) SetAttempts(v int) *VerificationJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableAttempts(v *int) *VerificationJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *VerificationJobUpdate) AddAttempts(v int) *VerificationJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *VerificationJobUpdate) SetPodID(v string) *VerificationJobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillablePodID(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *VerificationJobUpdate) ClearPodID() *VerificationJobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdate) SetStartedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStartedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *VerificationJobUpdate) ClearStartedAt() *VerificationJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VerificationJobUpdate) SetCompletedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableCompletedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VerificationJobUpdate) ClearCompletedAt() *VerificationJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *VerificationJobUpdate) SetLastHeartbeatAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *VerificationJobUpdate) ClearLastHeartbeatAt() *VerificationJobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetError sets the "error" field.
func (_u *VerificationJobUpdate) SetError(v string) *VerificationJobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableError(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *VerificationJobUpdate) ClearError() *VerificationJobUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VerificationJobUpdate) SetUpdatedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdate) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VerificationJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := verificationjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdate) check() error {
	if v, ok := _u.mutation.RetryMode(); ok {
		if err := verificationjob.RetryModeValidator(v); err != nil {
			return &ValidationError{Name: "retry_mode", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.retry_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.company"`)
	}
	return nil
}

func (_u *VerificationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RetryMode(); ok {
		_spec.SetField(verificationjob.FieldRetryMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailedChecks(); ok {
		_spec.SetField(verificationjob.FieldFailedChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldFailedChecks, value)
		})
	}
	if _u.mutation.FailedChecksCleared() {
		_spec.ClearField(verificationjob.FieldFailedChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(verificationjob.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnqueuedAt(); ok {
		_spec.SetField(verificationjob.FieldEnqueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(verificationjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(verificationjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(verificationjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(verificationjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(verificationjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(verificationjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(verificationjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(verificationjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(verificationjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(verificationjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(verificationjob.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationJobUpdateOne is the builder for updating a single VerificationJob entity.
type VerificationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationJobMutation
}

// SetRetryMode sets the "retry_mode" field.
func (_u *VerificationJobUpdateOne) SetRetryMode(v verificationjob.RetryMode) *VerificationJobUpdateOne {
	_u.mutation.SetRetryMode(v)
	return _u
}

// SetNillableRetryMode sets the "retry_mode" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableRetryMode(v *verificationjob.RetryMode) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetRetryMode(*v)
	}
	return _u
}

// SetFailedChecks sets the "failed_checks" field.
func (_u *VerificationJobUpdateOne) SetFailedChecks(v []string) *VerificationJobUpdateOne {
	_u.mutation.SetFailedChecks(v)
	return _u
}

// AppendFailedChecks appends value to the "failed_checks" field.
func (_u *VerificationJobUpdateOne) AppendFailedChecks(v []string) *VerificationJobUpdateOne {
	_u.mutation.AppendFailedChecks(v)
	return _u
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (_u *VerificationJobUpdateOne) ClearFailedChecks() *VerificationJobUpdateOne {
	_u.mutation.ClearFailedChecks()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *VerificationJobUpdateOne) SetCorrelationID(v string) *VerificationJobUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableCorrelationID(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_u *VerificationJobUpdateOne) SetEnqueuedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetEnqueuedAt(v)
	return _u
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableEnqueuedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetEnqueuedAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdateOne) SetStatus(v verificationjob.Status) *VerificationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStatus(v *verificationjob.Status) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *VerificationJobUpdateOne) SetAttempts(v int) *VerificationJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableAttempts(v *int) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *VerificationJobUpdateOne) AddAttempts(v int) *VerificationJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *VerificationJobUpdateOne) SetPodID(v string) *VerificationJobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillablePodID(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *VerificationJobUpdateOne) ClearPodID() *VerificationJobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdateOne) SetStartedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStartedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *VerificationJobUpdateOne) ClearStartedAt() *VerificationJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VerificationJobUpdateOne) SetCompletedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableCompletedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VerificationJobUpdateOne) ClearCompletedAt() *VerificationJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *VerificationJobUpdateOne) SetLastHeartbeatAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *VerificationJobUpdateOne) ClearLastHeartbeatAt() *VerificationJobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetError sets the "error" field.
func (_u *VerificationJobUpdateOne) SetError(v string) *VerificationJobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableError(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *VerificationJobUpdateOne) ClearError() *VerificationJobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VerificationJobUpdateOne) SetUpdatedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdateOne) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdateOne) Where(ps ...predicate.VerificationJob) *VerificationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationJobUpdateOne) Select(field string, fields ...string) *VerificationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationJob entity.
func (_u *VerificationJobUpdateOne) Save(ctx context.Context) (*VerificationJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) SaveX(ctx context.Context) *VerificationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VerificationJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := verificationjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdateOne) check() error {
	if v, ok := _u.mutation.RetryMode(); ok {
		if err := verificationjob.RetryModeValidator(v); err != nil {
			return &ValidationError{Name: "retry_mode", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.retry_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationJob.company"`)
	}
	return nil
}

func (_u *VerificationJobUpdateOne) sqlSave(ctx context.Context) (_node *VerificationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationjob.FieldID)
		for _, f := range fields {
			if !verificationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationjob.FieldID {
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
	if value, ok := _u.mutation.RetryMode(); ok {
		_spec.SetField(verificationjob.FieldRetryMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailedChecks(); ok {
		_spec.SetField(verificationjob.FieldFailedChecks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedChecks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldFailedChecks, value)
		})
	}
	if _u.mutation.FailedChecksCleared() {
		_spec.ClearField(verificationjob.FieldFailedChecks, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(verificationjob.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnqueuedAt(); ok {
		_spec.SetField(verificationjob.FieldEnqueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(verificationjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(verificationjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(verificationjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(verificationjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(verificationjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(verificationjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(verificationjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(verificationjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(verificationjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(verificationjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(verificationjob.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &VerificationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
