// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/verificationjob"
)

// VerificationJobCreate is the builder for creating a VerificationJob entity.
type VerificationJobCreate struct {
	config
	mutation *VerificationJobMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *VerificationJobCreate) SetCompanyID(v string) *VerificationJobCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetRetryMode sets the "retry_mode" field.
func (_c *VerificationJobCreate) SetRetryMode(v verificationjob.RetryMode) *VerificationJobCreate {
	_c.mutation.SetRetryMode(v)
	return _c
}

// SetNillableRetryMode sets the "retry_mode" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableRetryMode(v *verificationjob.RetryMode) *VerificationJobCreate {
	if v != nil {
		_c.SetRetryMode(*v)
	}
	return _c
}

// SetFailedChecks sets the "failed_checks" field.
func (_c *VerificationJobCreate) SetFailedChecks(v []string) *VerificationJobCreate {
	_c.mutation.SetFailedChecks(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *VerificationJobCreate) SetCorrelationID(v string) *VerificationJobCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_c *VerificationJobCreate) SetEnqueuedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetEnqueuedAt(v)
	return _c
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableEnqueuedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetEnqueuedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationJobCreate) SetStatus(v verificationjob.Status) *VerificationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStatus(v *verificationjob.Status) *VerificationJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *VerificationJobCreate) SetAttempts(v int) *VerificationJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableAttempts(v *int) *VerificationJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *VerificationJobCreate) SetPodID(v string) *VerificationJobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillablePodID(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *VerificationJobCreate) SetStartedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStartedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *VerificationJobCreate) SetCompletedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableCompletedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *VerificationJobCreate) SetLastHeartbeatAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableLastHeartbeatAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *VerificationJobCreate) SetError(v string) *VerificationJobCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableError(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationJobCreate) SetCreatedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableCreatedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VerificationJobCreate) SetUpdatedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableUpdatedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationJobCreate) SetID(v string) *VerificationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *VerificationJobCreate) SetCompany(v *Company) *VerificationJobCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_c *VerificationJobCreate) Mutation() *VerificationJobMutation {
	return _c.mutation
}

// Save creates the VerificationJob in the database.
func (_c *VerificationJobCreate) Save(ctx context.Context) (*VerificationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationJobCreate) SaveX(ctx context.Context) *VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationJobCreate) defaults() {
	if _, ok := _c.mutation.RetryMode(); !ok {
		v := verificationjob.DefaultRetryMode
		_c.mutation.SetRetryMode(v)
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		v := verificationjob.DefaultEnqueuedAt()
		_c.mutation.SetEnqueuedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := verificationjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := verificationjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := verificationjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationJobCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "VerificationJob.company_id"`)}
	}
	if _, ok := _c.mutation.RetryMode(); !ok {
		return &ValidationError{Name: "retry_mode", err: errors.New(`ent: missing required field "VerificationJob.retry_mode"`)}
	}
	if v, ok := _c.mutation.RetryMode(); ok {
		if err := verificationjob.RetryModeValidator(v); err != nil {
			return &ValidationError{Name: "retry_mode", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.retry_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "VerificationJob.correlation_id"`)}
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		return &ValidationError{Name: "enqueued_at", err: errors.New(`ent: missing required field "VerificationJob.enqueued_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "VerificationJob.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VerificationJob.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "VerificationJob.company"`)}
	}
	return nil
}

func (_c *VerificationJobCreate) sqlSave(ctx context.Context) (*VerificationJob, error) {
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
			return nil, fmt.Errorf("unexpected VerificationJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationJobCreate) createSpec() (*VerificationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationjob.Table, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RetryMode(); ok {
		_spec.SetField(verificationjob.FieldRetryMode, field.TypeEnum, value)
		_node.RetryMode = value
	}
	if value, ok := _c.mutation.FailedChecks(); ok {
		_spec.SetField(verificationjob.FieldFailedChecks, field.TypeJSON, value)
		_node.FailedChecks = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(verificationjob.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.EnqueuedAt(); ok {
		_spec.SetField(verificationjob.FieldEnqueuedAt, field.TypeTime, value)
		_node.EnqueuedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(verificationjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(verificationjob.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(verificationjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(verificationjob.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(verificationjob.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationjob.CompanyTable,
			Columns: []string{verificationjob.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationJobCreateBulk is the builder for creating many VerificationJob entities in bulk.
type VerificationJobCreateBulk struct {
	config
	err      error
	builders []*VerificationJobCreate
}

// Save creates the VerificationJob entities in the database.
func (_c *VerificationJobCreateBulk) Save(ctx context.Context) ([]*VerificationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationJobMutation)
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
func (_c *VerificationJobCreateBulk) SaveX(ctx context.Context) []*VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
