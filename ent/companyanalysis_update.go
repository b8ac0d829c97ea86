// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/ent/predicate"
)

// CompanyAnalysisUpdate is the builder for updating CompanyAnalysis entities.
type CompanyAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyAnalysisMutation
}

// Where appends a list predicates to the CompanyAnalysisUpdate builder.
func (_u *CompanyAnalysisUpdate) Where(ps ...predicate.CompanyAnalysis) *CompanyAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CompanyAnalysisMutation object of the builder.
func (_u *CompanyAnalysisUpdate) Mutation() *CompanyAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyAnalysisUpdate) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompanyAnalysis.company"`)
	}
	return nil
}

func (_u *CompanyAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(companyanalysis.Table, companyanalysis.Columns, sqlgraph.NewFieldSpec(companyanalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.LlmSummaryCleared() {
		_spec.ClearField(companyanalysis.FieldLlmSummary, field.TypeString)
	}
	if _u.mutation.LlmDetailsCleared() {
		_spec.ClearField(companyanalysis.FieldLlmDetails, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companyanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyAnalysisUpdateOne is the builder for updating a single CompanyAnalysis entity.
type CompanyAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyAnalysisMutation
}

// Mutation returns the CompanyAnalysisMutation object of the builder.
func (_u *CompanyAnalysisUpdateOne) Mutation() *CompanyAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompanyAnalysisUpdate builder.
func (_u *CompanyAnalysisUpdateOne) Where(ps ...predicate.CompanyAnalysis) *CompanyAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyAnalysisUpdateOne) Select(field string, fields ...string) *CompanyAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompanyAnalysis entity.
func (_u *CompanyAnalysisUpdateOne) Save(ctx context.Context) (*CompanyAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyAnalysisUpdateOne) SaveX(ctx context.Context) *CompanyAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyAnalysisUpdateOne) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompanyAnalysis.company"`)
	}
	return nil
}

func (_u *CompanyAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *CompanyAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(companyanalysis.Table, companyanalysis.Columns, sqlgraph.NewFieldSpec(companyanalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompanyAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, companyanalysis.FieldID)
		for _, f := range fields {
			if !companyanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != companyanalysis.FieldID {
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
	if _u.mutation.LlmSummaryCleared() {
		_spec.ClearField(companyanalysis.FieldLlmSummary, field.TypeString)
	}
	if _u.mutation.LlmDetailsCleared() {
		_spec.ClearField(companyanalysis.FieldLlmDetails, field.TypeString)
	}
	_node = &CompanyAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{companyanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
