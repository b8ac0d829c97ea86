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
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/ent/predicate"
	"github.com/trustlane/vetd/ent/verificationjob"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyMutation
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdate) SetName(v string) *CompanyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableName(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CompanyUpdate) SetDomain(v string) *CompanyUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableDomain(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetWebsiteURL sets the "website_url" field.
func (_u *CompanyUpdate) SetWebsiteURL(v string) *CompanyUpdate {
	_u.mutation.SetWebsiteURL(v)
	return _u
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableWebsiteURL(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetWebsiteURL(*v)
	}
	return _u
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (_u *CompanyUpdate) ClearWebsiteURL() *CompanyUpdate {
	_u.mutation.ClearWebsiteURL()
	return _u
}

// SetEmail sets the "email" field.
func (_u *CompanyUpdate) SetEmail(v string) *CompanyUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableEmail(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CompanyUpdate) ClearEmail() *CompanyUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CompanyUpdate) SetPhone(v string) *CompanyUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillablePhone(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CompanyUpdate) ClearPhone() *CompanyUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CompanyUpdate) SetStatus(v company.Status) *CompanyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableStatus(v *company.Status) *CompanyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *CompanyUpdate) SetRiskScore(v int) *CompanyUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableRiskScore(v *int) *CompanyUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *CompanyUpdate) AddRiskScore(v int) *CompanyUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_u *CompanyUpdate) SetAnalysisStatus(v company.AnalysisStatus) *CompanyUpdate {
	_u.mutation.SetAnalysisStatus(v)
	return _u
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableAnalysisStatus(v *company.AnalysisStatus) *CompanyUpdate {
	if v != nil {
		_u.SetAnalysisStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *CompanyUpdate) SetCurrentStep(v string) *CompanyUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableCurrentStep(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *CompanyUpdate) ClearCurrentStep() *CompanyUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetLastAnalyzedAt sets the "last_analyzed_at" field.
func (_u *CompanyUpdate) SetLastAnalyzedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetLastAnalyzedAt(v)
	return _u
}

// SetNillableLastAnalyzedAt sets the "last_analyzed_at" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableLastAnalyzedAt(v *time.Time) *CompanyUpdate {
	if v != nil {
		_u.SetLastAnalyzedAt(*v)
	}
	return _u
}

// ClearLastAnalyzedAt clears the value of the "last_analyzed_at" field.
func (_u *CompanyUpdate) ClearLastAnalyzedAt() *CompanyUpdate {
	_u.mutation.ClearLastAnalyzedAt()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *CompanyUpdate) SetIsDeleted(v bool) *CompanyUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableIsDeleted(v *bool) *CompanyUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdate) SetUpdatedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the CompanyAnalysis entity by IDs.
func (_u *CompanyUpdate) AddAnalysisIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the CompanyAnalysis entity.
func (_u *CompanyUpdate) AddAnalyses(v ...*CompanyAnalysis) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_u *CompanyUpdate) AddJobIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_u *CompanyUpdate) AddJobs(v ...*VerificationJob) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdate) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the CompanyAnalysis entity.
func (_u *CompanyUpdate) ClearAnalyses() *CompanyUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to CompanyAnalysis entities by IDs.
func (_u *CompanyUpdate) RemoveAnalysisIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to CompanyAnalysis entities.
func (_u *CompanyUpdate) RemoveAnalyses(v ...*CompanyAnalysis) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the VerificationJob entity.
func (_u *CompanyUpdate) ClearJobs() *CompanyUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to VerificationJob entities by IDs.
func (_u *CompanyUpdate) RemoveJobIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to VerificationJob entities.
func (_u *CompanyUpdate) RemoveJobs(v ...*VerificationJob) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := company.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Company.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := company.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Company.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskScore(); ok {
		if err := company.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "Company.risk_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnalysisStatus(); ok {
		if err := company.AnalysisStatusValidator(v); err != nil {
			return &ValidationError{Name: "analysis_status", err: fmt.Errorf(`ent: validator failed for field "Company.analysis_status": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.WebsiteURL(); ok {
		_spec.SetField(company.FieldWebsiteURL, field.TypeString, value)
	}
	if _u.mutation.WebsiteURLCleared() {
		_spec.ClearField(company.FieldWebsiteURL, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(company.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(company.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(company.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(company.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(company.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(company.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(company.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnalysisStatus(); ok {
		_spec.SetField(company.FieldAnalysisStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(company.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(company.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.LastAnalyzedAt(); ok {
		_spec.SetField(company.FieldLastAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAnalyzedAtCleared() {
		_spec.ClearField(company.FieldLastAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(company.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyMutation
}

// SetName sets the "name" field.
func (_u *CompanyUpdateOne) SetName(v string) *CompanyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableName(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *CompanyUpdateOne) SetDomain(v string) *CompanyUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableDomain(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetWebsiteURL sets the "website_url" field.
func (_u *CompanyUpdateOne) SetWebsiteURL(v string) *CompanyUpdateOne {
	_u.mutation.SetWebsiteURL(v)
	return _u
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableWebsiteURL(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetWebsiteURL(*v)
	}
	return _u
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (_u *CompanyUpdateOne) ClearWebsiteURL() *CompanyUpdateOne {
	_u.mutation.ClearWebsiteURL()
	return _u
}

// SetEmail sets the "email" field.
func (_u *CompanyUpdateOne) SetEmail(v string) *CompanyUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableEmail(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CompanyUpdateOne) ClearEmail() *CompanyUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CompanyUpdateOne) SetPhone(v string) *CompanyUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillablePhone(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CompanyUpdateOne) ClearPhone() *CompanyUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CompanyUpdateOne) SetStatus(v company.Status) *CompanyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableStatus(v *company.Status) *CompanyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *CompanyUpdateOne) SetRiskScore(v int) *CompanyUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableRiskScore(v *int) *CompanyUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *CompanyUpdateOne) AddRiskScore(v int) *CompanyUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_u *CompanyUpdateOne) SetAnalysisStatus(v company.AnalysisStatus) *CompanyUpdateOne {
	_u.mutation.SetAnalysisStatus(v)
	return _u
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableAnalysisStatus(v *company.AnalysisStatus) *CompanyUpdateOne {
	if v != nil {
		_u.SetAnalysisStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *CompanyUpdateOne) SetCurrentStep(v string) *CompanyUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableCurrentStep(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *CompanyUpdateOne) ClearCurrentStep() *CompanyUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetLastAnalyzedAt sets the "last_analyzed_at" field.
func (_u *CompanyUpdateOne) SetLastAnalyzedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetLastAnalyzedAt(v)
	return _u
}

// SetNillableLastAnalyzedAt sets the "last_analyzed_at" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableLastAnalyzedAt(v *time.Time) *CompanyUpdateOne {
	if v != nil {
		_u.SetLastAnalyzedAt(*v)
	}
	return _u
}

// ClearLastAnalyzedAt clears the value of the "last_analyzed_at" field.
func (_u *CompanyUpdateOne) ClearLastAnalyzedAt() *CompanyUpdateOne {
	_u.mutation.ClearLastAnalyzedAt()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *CompanyUpdateOne) SetIsDeleted(v bool) *CompanyUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableIsDeleted(v *bool) *CompanyUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdateOne) SetUpdatedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the CompanyAnalysis entity by IDs.
func (_u *CompanyUpdateOne) AddAnalysisIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the CompanyAnalysis entity.
func (_u *CompanyUpdateOne) AddAnalyses(v ...*CompanyAnalysis) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by IDs.
func (_u *CompanyUpdateOne) AddJobIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the VerificationJob entity.
func (_u *CompanyUpdateOne) AddJobs(v ...*VerificationJob) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdateOne) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the CompanyAnalysis entity.
func (_u *CompanyUpdateOne) ClearAnalyses() *CompanyUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to CompanyAnalysis entities by IDs.
func (_u *CompanyUpdateOne) RemoveAnalysisIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to CompanyAnalysis entities.
func (_u *CompanyUpdateOne) RemoveAnalyses(v ...*CompanyAnalysis) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the VerificationJob entity.
func (_u *CompanyUpdateOne) ClearJobs() *CompanyUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to VerificationJob entities by IDs.
func (_u *CompanyUpdateOne) RemoveJobIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to VerificationJob entities.
func (_u *CompanyUpdateOne) RemoveJobs(v ...*VerificationJob) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdateOne) Where(ps ...predicate.Company) *CompanyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyUpdateOne) Select(field string, fields ...string) *CompanyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Company entity.
func (_u *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := company.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Company.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := company.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Company.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskScore(); ok {
		if err := company.RiskScoreValidator(v); err != nil {
			return &ValidationError{Name: "risk_score", err: fmt.Errorf(`ent: validator failed for field "Company.risk_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnalysisStatus(); ok {
		if err := company.AnalysisStatusValidator(v); err != nil {
			return &ValidationError{Name: "analysis_status", err: fmt.Errorf(`ent: validator failed for field "Company.analysis_status": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdateOne) sqlSave(ctx context.Context) (_node *Company, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Company.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, company.FieldID)
		for _, f := range fields {
			if !company.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != company.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(company.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.WebsiteURL(); ok {
		_spec.SetField(company.FieldWebsiteURL, field.TypeString, value)
	}
	if _u.mutation.WebsiteURLCleared() {
		_spec.ClearField(company.FieldWebsiteURL, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(company.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(company.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(company.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(company.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(company.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(company.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(company.FieldRiskScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnalysisStatus(); ok {
		_spec.SetField(company.FieldAnalysisStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(company.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(company.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.LastAnalyzedAt(); ok {
		_spec.SetField(company.FieldLastAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAnalyzedAtCleared() {
		_spec.ClearField(company.FieldLastAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(company.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Company{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
