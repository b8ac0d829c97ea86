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
	"github.com/trustlane/vetd/pkg/models"
)

// CompanyAnalysisCreate is the builder for creating a CompanyAnalysis entity.
type CompanyAnalysisCreate struct {
	config
	mutation *CompanyAnalysisMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *CompanyAnalysisCreate) SetCompanyID(v string) *CompanyAnalysisCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *CompanyAnalysisCreate) SetVersion(v int) *CompanyAnalysisCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetAlgorithmVersion sets the "algorithm_version" field.
func (_c *CompanyAnalysisCreate) SetAlgorithmVersion(v string) *CompanyAnalysisCreate {
	_c.mutation.SetAlgorithmVersion(v)
	return _c
}

// SetSubmittedData sets the "submitted_data" field.
func (_c *CompanyAnalysisCreate) SetSubmittedData(v models.SubmittedData) *CompanyAnalysisCreate {
	_c.mutation.SetSubmittedData(v)
	return _c
}

// SetDiscoveredData sets the "discovered_data" field.
func (_c *CompanyAnalysisCreate) SetDiscoveredData(v models.DiscoveredData) *CompanyAnalysisCreate {
	_c.mutation.SetDiscoveredData(v)
	return _c
}

// SetSignals sets the "signals" field.
func (_c *CompanyAnalysisCreate) SetSignals(v []models.Signal) *CompanyAnalysisCreate {
	_c.mutation.SetSignals(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *CompanyAnalysisCreate) SetRiskScore(v int) *CompanyAnalysisCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetLlmSummary sets the "llm_summary" field.
func (_c *CompanyAnalysisCreate) SetLlmSummary(v string) *CompanyAnalysisCreate {
	_c.mutation.SetLlmSummary(v)
	return _c
}

// SetNillableLlmSummary sets the "llm_summary" field if the given value is not nil.
func (_c *CompanyAnalysisCreate) SetNillableLlmSummary(v *string) *CompanyAnalysisCreate {
	if v != nil {
		_c.SetLlmSummary(*v)
	}
	return _c
}

// SetLlmDetails sets the "llm_details" field.
func (_c *CompanyAnalysisCreate) SetLlmDetails(v string) *CompanyAnalysisCreate {
	_c.mutation.SetLlmDetails(v)
	return _c
}

// SetNillableLlmDetails sets the "llm_details" field if the given value is not nil.
func (_c *CompanyAnalysisCreate) SetNillableLlmDetails(v *string) *CompanyAnalysisCreate {
	if v != nil {
		_c.SetLlmDetails(*v)
	}
	return _c
}

// SetIsComplete sets the "is_complete" field.
func (_c *CompanyAnalysisCreate) SetIsComplete(v bool) *CompanyAnalysisCreate {
	_c.mutation.SetIsComplete(v)
	return _c
}

// SetFailedChecks sets the "failed_checks" field.
func (_c *CompanyAnalysisCreate) SetFailedChecks(v []string) *CompanyAnalysisCreate {
	_c.mutation.SetFailedChecks(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyAnalysisCreate) SetCreatedAt(v time.Time) *CompanyAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyAnalysisCreate) SetNillableCreatedAt(v *time.Time) *CompanyAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyAnalysisCreate) SetID(v string) *CompanyAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *CompanyAnalysisCreate) SetCompany(v *Company) *CompanyAnalysisCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the CompanyAnalysisMutation object of the builder.
func (_c *CompanyAnalysisCreate) Mutation() *CompanyAnalysisMutation {
	return _c.mutation
}

// Save creates the CompanyAnalysis in the database.
func (_c *CompanyAnalysisCreate) Save(ctx context.Context) (*CompanyAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyAnalysisCreate) SaveX(ctx context.Context) *CompanyAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyAnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := companyanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyAnalysisCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "CompanyAnalysis.company_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CompanyAnalysis.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := companyanalysis.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "CompanyAnalysis.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AlgorithmVersion(); !ok {
		return &ValidationError{Name: "algorithm_version", err: errors.New(`ent: missing required field "CompanyAnalysis.algorithm_version"`)}
	}
	if _, ok := _c.mutation.SubmittedData(); !ok {
		return &ValidationError{Name: "submitted_data", err: errors.New(`ent: missing required field "CompanyAnalysis.submitted_data"`)}
	}
	if _, ok := _c.mutation.DiscoveredData(); !ok {
		return &ValidationError{Name: "discovered_data", err: errors.New(`ent: missing required field "CompanyAnalysis.discovered_data"`)}
	}
	if _, ok := _c.mutation.Signals(); !ok {
		return &ValidationError{Name: "signals", err: errors.New(`ent: missing required field "CompanyAnalysis.signals"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "CompanyAnalysis.risk_score"`)}
	}
	if v, ok := _c.mutation.RiskScore(); ok {
		if err := companyanalysis.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "CompanyAnalysis.risk_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsComplete(); !ok {
		return &ValidationError{Name: "is_complete", err: errors.New(`ent: missing required field "CompanyAnalysis.is_complete"`)}
	}
	if _, ok := _c.mutation.FailedChecks(); !ok {
		return &ValidationError{Name: "failed_checks", err: errors.New(`ent: missing required field "CompanyAnalysis.failed_checks"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CompanyAnalysis.created_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "CompanyAnalysis.company"`)}
	}
	return nil
}

func (_c *CompanyAnalysisCreate) sqlSave(ctx context.Context) (*CompanyAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected CompanyAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyAnalysisCreate) createSpec() (*CompanyAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &CompanyAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(companyanalysis.Table, sqlgraph.NewFieldSpec(companyanalysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(companyanalysis.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.AlgorithmVersion(); ok {
		_spec.SetField(companyanalysis.FieldAlgorithmVersion, field.TypeString, value)
		_node.AlgorithmVersion = value
	}
	if value, ok := _c.mutation.SubmittedData(); ok {
		_spec.SetField(companyanalysis.FieldSubmittedData, field.TypeJSON, value)
		_node.SubmittedData = value
	}
	if value, ok := _c.mutation.DiscoveredData(); ok {
		_spec.SetField(companyanalysis.FieldDiscoveredData, field.TypeJSON, value)
		_node.DiscoveredData = value
	}
	if value, ok := _c.mutation.Signals(); ok {
		_spec.SetField(companyanalysis.FieldSignals, field.TypeJSON, value)
		_node.Signals = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(companyanalysis.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.LlmSummary(); ok {
		_spec.SetField(companyanalysis.FieldLlmSummary, field.TypeString, value)
		_node.LlmSummary = &value
	}
	if value, ok := _c.mutation.LlmDetails(); ok {
		_spec.SetField(companyanalysis.FieldLlmDetails, field.TypeString, value)
		_node.LlmDetails = &value
	}
	if value, ok := _c.mutation.IsComplete(); ok {
		_spec.SetField(companyanalysis.FieldIsComplete, field.TypeBool, value)
		_node.IsComplete = value
	}
	if value, ok := _c.mutation.FailedChecks(); ok {
		_spec.SetField(companyanalysis.FieldFailedChecks, field.TypeJSON, value)
		_node.FailedChecks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(companyanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   companyanalysis.CompanyTable,
			Columns: []string{companyanalysis.CompanyColumn},
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

// CompanyAnalysisCreateBulk is the builder for creating many CompanyAnalysis entities in bulk.
type CompanyAnalysisCreateBulk struct {
	config
	err      error
	builders []*CompanyAnalysisCreate
}

// Save creates the CompanyAnalysis entities in the database.
func (_c *CompanyAnalysisCreateBulk) Save(ctx context.Context) ([]*CompanyAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompanyAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyAnalysisMutation)
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
func (_c *CompanyAnalysisCreateBulk) SaveX(ctx context.Context) []*CompanyAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
