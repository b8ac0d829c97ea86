// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/ent/predicate"
)

// CompanyAnalysisDelete is the builder for deleting a CompanyAnalysis entity.
type CompanyAnalysisDelete struct {
	config
	hooks    []Hook
	mutation *CompanyAnalysisMutation
}

// Where appends a list predicates to the CompanyAnalysisDelete builder.
func (_d *CompanyAnalysisDelete) Where(ps ...predicate.CompanyAnalysis) *CompanyAnalysisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompanyAnalysisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompanyAnalysisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompanyAnalysisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(companyanalysis.Table, sqlgraph.NewFieldSpec(companyanalysis.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CompanyAnalysisDeleteOne is the builder for deleting a single CompanyAnalysis entity.
type CompanyAnalysisDeleteOne struct {
	_d *CompanyAnalysisDelete
}

// Where appends a list predicates to the CompanyAnalysisDelete builder.
func (_d *CompanyAnalysisDeleteOne) Where(ps ...predicate.CompanyAnalysis) *CompanyAnalysisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompanyAnalysisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{companyanalysis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompanyAnalysisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
