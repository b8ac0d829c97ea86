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
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/ent/verificationjob"
)

// CompanyCreate is the builder for creating a Company entity.
type CompanyCreate struct {
	config
	mutation *CompanyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CompanyCreate) SetName(v string) *CompanyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *CompanyCreate) SetDomain(v string) *CompanyCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetWebsiteURL sets the "website_url" field.
func (_c *CompanyCreate) SetWebsiteURL(v string) *CompanyCreate {
	_c.mutation.SetWebsiteURL(v)
	return _c
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableWebsiteURL(v *string) *CompanyCreate {
	if v != nil {
		_c.SetWebsiteURL(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *CompanyCreate) SetEmail(v string) *CompanyCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableEmail(v *string) *CompanyCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CompanyCreate) SetPhone(v string) *CompanyCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CompanyCreate) SetNillablePhone(v *string) *CompanyCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CompanyCreate) SetStatus(v company.Status) *CompanyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableStatus(v *company.Status) *CompanyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *CompanyCreate) SetRiskScore(v int) *CompanyCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableRiskScore(v *int) *CompanyCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_c *CompanyCreate) SetAnalysisStatus(v company.AnalysisStatus) *CompanyCreate {
	_c.mutation.SetAnalysisStatus(v)
	return _c
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableAnalysisStatus(v *company.AnalysisStatus) *CompanyCreate {
	if v != nil {
		_c.SetAnalysisStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *CompanyCreate) SetCurrentStep(v string) *CompanyCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableCurrentStep(v *string) *CompanyCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetLastAnalyzedAt sets the "last_analyzed_at" field.
func (_c *CompanyCreate) SetLastAnalyzedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetLastAnalyzedAt(v)
	return _c
}

// SetNillableLastAnalyzedAt sets the "last_analyzed_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableLastAnalyzedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetLastAnalyzedAt(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *CompanyCreate) SetIsDeleted(v bool) *CompanyCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableIsDeleted(v *bool) *CompanyCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyCreate) SetCreatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableCreatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompanyCreate) SetUpdatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableUpdatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyCreate) SetID(v string) *CompanyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAnalysisIDs adds the "analyses" edge to the CompanyAnalysis entity by IDs.
func (_c *CompanyCreate) AddAnalysisIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddAnalysisIDs(ids...)
	return _c
}

// AddAnalyses adds the "analyses" edges to the CompanyAnalysis entity.
func (_c *CompanyCreate) AddAnalyses(v ...*CompanyAnalysis) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_c *CompanyCreate) AddJobIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_c *CompanyCreate) AddJobs(v ...*VerificationJob) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_c *CompanyCreate) Mutation() *CompanyMutation {
	return _c.mutation
}

// Save creates the Company in the database.
func (_c *CompanyCreate) Save(ctx context.Context) (*Company, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyCreate) SaveX(ctx context.Context) *Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := company.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := company.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.AnalysisStatus(); !ok {
		v := company.DefaultAnalysisStatus
		_c.mutation.SetAnalysisStatus(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := company.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := company.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := company.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Company.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Company.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := company.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Company.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Company.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := company.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Company.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "Company.risk_score"`)}
	}
	if v, ok := _c.mutation.RiskScore(); ok {
		if err := company.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "Company.risk_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnalysisStatus(); !ok {
		return &ValidationError{Name: "analysis_status", err: errors.New(`ent: missing required field "Company.analysis_status"`)}
	}
	if v, ok := _c.mutation.AnalysisStatus(); ok {
		if err := company.AnalysisStatusValidator(v); err != nil {
			return &ValidationError{Name: "analysis_status", err: fmt.Errorf(`ent: validator failed for field "Company.analysis_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Company.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Company.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Company.updated_at"`)}
	}
	return nil
}

func (_c *CompanyCreate) sqlSave(ctx context.Context) (*Company, error) {
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
			return nil, fmt.Errorf("unexpected Company.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyCreate) createSpec() (*Company, *sqlgraph.CreateSpec) {
	var (
		_node = &Company{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(company.Table, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.WebsiteURL(); ok {
		_spec.SetField(company.FieldWebsiteURL, field.TypeString, value)
		_node.WebsiteURL = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(company.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(company.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(company.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(company.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.AnalysisStatus(); ok {
		_spec.SetField(company.FieldAnalysisStatus, field.TypeEnum, value)
		_node.AnalysisStatus = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(company.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = &value
	}
	if value, ok := _c.mutation.LastAnalyzedAt(); ok {
		_spec.SetField(company.FieldLastAnalyzedAt, field.TypeTime, value)
		_node.LastAnalyzedAt = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(company.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.AnalysesTable,
			Columns: []string{company.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(companyanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.JobsTable,
			Columns: []string{company.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompanyCreateBulk is the builder for creating many Company entities in bulk.
type CompanyCreateBulk struct {
	config
	err      error
	builders []*CompanyCreate
}

// Save creates the Company entities in the database.
func (_c *CompanyCreateBulk) Save(ctx context.Context) ([]*Company, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Company, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyMutation)
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
func (_c *CompanyCreateBulk) SaveX(ctx context.Context) []*Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
