// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/ent/predicate"
	"github.com/trustlane/vetd/ent/verificationjob"
	"github.com/trustlane/vetd/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompany         = "Company"
	TypeCompanyAnalysis = "CompanyAnalysis"
	TypeVerificationJob = "VerificationJob"
)

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	domain           *string
	website_url      *string
	email            *string
	phone            *string
	status           *company.Status
	risk_score       *int
	addrisk_score    *int
	analysis_status  *company.AnalysisStatus
	current_step     *string
	last_analyzed_at *time.Time
	is_deleted       *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	analyses         map[string]struct{}
	removedanalyses  map[string]struct{}
	clearedanalyses  bool
	jobs             map[string]struct{}
	removedjobs      map[string]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*Company, error)
	predicates       []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id string) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetDomain sets the "domain" field.
func (m *CompanyMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *CompanyMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *CompanyMutation) ResetDomain() {
	m.domain = nil
}

// SetWebsiteURL sets the "website_url" field.
func (m *CompanyMutation) SetWebsiteURL(s string) {
	m.website_url = &s
}

// WebsiteURL returns the value of the "website_url" field in the mutation.
func (m *CompanyMutation) WebsiteURL() (r string, exists bool) {
	v := m.website_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsiteURL returns the old "website_url" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldWebsiteURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsiteURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsiteURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsiteURL: %w", err)
	}
	return oldValue.WebsiteURL, nil
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (m *CompanyMutation) ClearWebsiteURL() {
	m.website_url = nil
	m.clearedFields[company.FieldWebsiteURL] = struct{}{}
}

// WebsiteURLCleared returns if the "website_url" field was cleared in this mutation.
func (m *CompanyMutation) WebsiteURLCleared() bool {
	_, ok := m.clearedFields[company.FieldWebsiteURL]
	return ok
}

// ResetWebsiteURL resets all changes to the "website_url" field.
func (m *CompanyMutation) ResetWebsiteURL() {
	m.website_url = nil
	delete(m.clearedFields, company.FieldWebsiteURL)
}

// SetEmail sets the "email" field.
func (m *CompanyMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CompanyMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CompanyMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[company.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CompanyMutation) EmailCleared() bool {
	_, ok := m.clearedFields[company.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CompanyMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, company.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *CompanyMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CompanyMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CompanyMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[company.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CompanyMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[company.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CompanyMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, company.FieldPhone)
}

// SetStatus sets the "status" field.
func (m *CompanyMutation) SetStatus(c company.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CompanyMutation) Status() (r company.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldStatus(ctx context.Context) (v company.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CompanyMutation) ResetStatus() {
	m.status = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *CompanyMutation) SetRiskScore(i int) {
	m.risk_score = &i
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *CompanyMutation) RiskScore() (r int, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldRiskScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds i to the "risk_score" field.
func (m *CompanyMutation) AddRiskScore(i int) {
	if m.addrisk_score != nil {
		*m.addrisk_score += i
	} else {
		m.addrisk_score = &i
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *CompanyMutation) AddedRiskScore() (r int, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *CompanyMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetAnalysisStatus sets the "analysis_status" field.
func (m *CompanyMutation) SetAnalysisStatus(cs company.AnalysisStatus) {
	m.analysis_status = &cs
}

// AnalysisStatus returns the value of the "analysis_status" field in the mutation.
func (m *CompanyMutation) AnalysisStatus() (r company.AnalysisStatus, exists bool) {
	v := m.analysis_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisStatus returns the old "analysis_status" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldAnalysisStatus(ctx context.Context) (v company.AnalysisStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisStatus: %w", err)
	}
	return oldValue.AnalysisStatus, nil
}

// ResetAnalysisStatus resets all changes to the "analysis_status" field.
func (m *CompanyMutation) ResetAnalysisStatus() {
	m.analysis_status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *CompanyMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *CompanyMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCurrentStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *CompanyMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[company.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *CompanyMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[company.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *CompanyMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, company.FieldCurrentStep)
}

// SetLastAnalyzedAt sets the "last_analyzed_at" field.
func (m *CompanyMutation) SetLastAnalyzedAt(t time.Time) {
	m.last_analyzed_at = &t
}

// LastAnalyzedAt returns the value of the "last_analyzed_at" field in the mutation.
func (m *CompanyMutation) LastAnalyzedAt() (r time.Time, exists bool) {
	v := m.last_analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAnalyzedAt returns the old "last_analyzed_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldLastAnalyzedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAnalyzedAt: %w", err)
	}
	return oldValue.LastAnalyzedAt, nil
}

// ClearLastAnalyzedAt clears the value of the "last_analyzed_at" field.
func (m *CompanyMutation) ClearLastAnalyzedAt() {
	m.last_analyzed_at = nil
	m.clearedFields[company.FieldLastAnalyzedAt] = struct{}{}
}

// LastAnalyzedAtCleared returns if the "last_analyzed_at" field was cleared in this mutation.
func (m *CompanyMutation) LastAnalyzedAtCleared() bool {
	_, ok := m.clearedFields[company.FieldLastAnalyzedAt]
	return ok
}

// ResetLastAnalyzedAt resets all changes to the "last_analyzed_at" field.
func (m *CompanyMutation) ResetLastAnalyzedAt() {
	m.last_analyzed_at = nil
	delete(m.clearedFields, company.FieldLastAnalyzedAt)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *CompanyMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *CompanyMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *CompanyMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAnalysisIDs adds the "analyses" edge to the CompanyAnalysis entity by ids.
func (m *CompanyMutation) AddAnalysisIDs(ids ...string) {
	if m.analyses == nil {
		m.analyses = make(map[string]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the CompanyAnalysis entity.
func (m *CompanyMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the CompanyAnalysis entity was cleared.
func (m *CompanyMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the CompanyAnalysis entity by IDs.
func (m *CompanyMutation) RemoveAnalysisIDs(ids ...string) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the CompanyAnalysis entity.
func (m *CompanyMutation) RemovedAnalysesIDs() (ids []string) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *CompanyMutation) AnalysesIDs() (ids []string) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *CompanyMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// AddJobIDs adds the "jobs" edge to the VerificationJob entity by ids.
func (m *CompanyMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the VerificationJob entity.
func (m *CompanyMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the VerificationJob entity was cleared.
func (m *CompanyMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the VerificationJob entity by IDs.
func (m *CompanyMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the VerificationJob entity.
func (m *CompanyMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *CompanyMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *CompanyMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.domain != nil {
		fields = append(fields, company.FieldDomain)
	}
	if m.website_url != nil {
		fields = append(fields, company.FieldWebsiteURL)
	}
	if m.email != nil {
		fields = append(fields, company.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, company.FieldPhone)
	}
	if m.status != nil {
		fields = append(fields, company.FieldStatus)
	}
	if m.risk_score != nil {
		fields = append(fields, company.FieldRiskScore)
	}
	if m.analysis_status != nil {
		fields = append(fields, company.FieldAnalysisStatus)
	}
	if m.current_step != nil {
		fields = append(fields, company.FieldCurrentStep)
	}
	if m.last_analyzed_at != nil {
		fields = append(fields, company.FieldLastAnalyzedAt)
	}
	if m.is_deleted != nil {
		fields = append(fields, company.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldDomain:
		return m.Domain()
	case company.FieldWebsiteURL:
		return m.WebsiteURL()
	case company.FieldEmail:
		return m.Email()
	case company.FieldPhone:
		return m.Phone()
	case company.FieldStatus:
		return m.Status()
	case company.FieldRiskScore:
		return m.RiskScore()
	case company.FieldAnalysisStatus:
		return m.AnalysisStatus()
	case company.FieldCurrentStep:
		return m.CurrentStep()
	case company.FieldLastAnalyzedAt:
		return m.LastAnalyzedAt()
	case company.FieldIsDeleted:
		return m.IsDeleted()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldDomain:
		return m.OldDomain(ctx)
	case company.FieldWebsiteURL:
		return m.OldWebsiteURL(ctx)
	case company.FieldEmail:
		return m.OldEmail(ctx)
	case company.FieldPhone:
		return m.OldPhone(ctx)
	case company.FieldStatus:
		return m.OldStatus(ctx)
	case company.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case company.FieldAnalysisStatus:
		return m.OldAnalysisStatus(ctx)
	case company.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case company.FieldLastAnalyzedAt:
		return m.OldLastAnalyzedAt(ctx)
	case company.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case company.FieldWebsiteURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsiteURL(v)
		return nil
	case company.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case company.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case company.FieldStatus:
		v, ok := value.(company.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case company.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case company.FieldAnalysisStatus:
		v, ok := value.(company.AnalysisStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisStatus(v)
		return nil
	case company.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case company.FieldLastAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAnalyzedAt(v)
		return nil
	case company.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	var fields []string
	if m.addrisk_score != nil {
		fields = append(fields, company.FieldRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case company.FieldRiskScore:
		return m.AddedRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case company.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldWebsiteURL) {
		fields = append(fields, company.FieldWebsiteURL)
	}
	if m.FieldCleared(company.FieldEmail) {
		fields = append(fields, company.FieldEmail)
	}
	if m.FieldCleared(company.FieldPhone) {
		fields = append(fields, company.FieldPhone)
	}
	if m.FieldCleared(company.FieldCurrentStep) {
		fields = append(fields, company.FieldCurrentStep)
	}
	if m.FieldCleared(company.FieldLastAnalyzedAt) {
		fields = append(fields, company.FieldLastAnalyzedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldWebsiteURL:
		m.ClearWebsiteURL()
		return nil
	case company.FieldEmail:
		m.ClearEmail()
		return nil
	case company.FieldPhone:
		m.ClearPhone()
		return nil
	case company.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case company.FieldLastAnalyzedAt:
		m.ClearLastAnalyzedAt()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldDomain:
		m.ResetDomain()
		return nil
	case company.FieldWebsiteURL:
		m.ResetWebsiteURL()
		return nil
	case company.FieldEmail:
		m.ResetEmail()
		return nil
	case company.FieldPhone:
		m.ResetPhone()
		return nil
	case company.FieldStatus:
		m.ResetStatus()
		return nil
	case company.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case company.FieldAnalysisStatus:
		m.ResetAnalysisStatus()
		return nil
	case company.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case company.FieldLastAnalyzedAt:
		m.ResetLastAnalyzedAt()
		return nil
	case company.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.analyses != nil {
		edges = append(edges, company.EdgeAnalyses)
	}
	if m.jobs != nil {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedanalyses != nil {
		edges = append(edges, company.EdgeAnalyses)
	}
	if m.removedjobs != nil {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanalyses {
		edges = append(edges, company.EdgeAnalyses)
	}
	if m.clearedjobs {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeAnalyses:
		return m.clearedanalyses
	case company.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	case company.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// CompanyAnalysisMutation represents an operation that mutates the CompanyAnalysis nodes in the graph.
type CompanyAnalysisMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	version             *int
	addversion          *int
	algorithm_version   *string
	submitted_data      *models.SubmittedData
	discovered_data     *models.DiscoveredData
	signals             *[]models.Signal
	appendsignals       []models.Signal
	risk_score          *int
	addrisk_score       *int
	llm_summary         *string
	llm_details         *string
	is_complete         *bool
	failed_checks       *[]string
	appendfailed_checks []string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	company             *string
	clearedcompany      bool
	done                bool
	oldValue            func(context.Context) (*CompanyAnalysis, error)
	predicates          []predicate.CompanyAnalysis
}

var _ ent.Mutation = (*CompanyAnalysisMutation)(nil)

// companyanalysisOption allows management of the mutation configuration using functional options.
type companyanalysisOption func(*CompanyAnalysisMutation)

// newCompanyAnalysisMutation creates new mutation for the CompanyAnalysis entity.
func newCompanyAnalysisMutation(c config, op Op, opts ...companyanalysisOption) *CompanyAnalysisMutation {
	m := &CompanyAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeCompanyAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyAnalysisID sets the ID field of the mutation.
func withCompanyAnalysisID(id string) companyanalysisOption {
	return func(m *CompanyAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *CompanyAnalysis
		)
		m.oldValue = func(ctx context.Context) (*CompanyAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompanyAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompanyAnalysis sets the old CompanyAnalysis of the mutation.
func withCompanyAnalysis(node *CompanyAnalysis) companyanalysisOption {
	return func(m *CompanyAnalysisMutation) {
		m.oldValue = func(context.Context) (*CompanyAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompanyAnalysis entities.
func (m *CompanyAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompanyAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *CompanyAnalysisMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *CompanyAnalysisMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *CompanyAnalysisMutation) ResetCompanyID() {
	m.company = nil
}

// SetVersion sets the "version" field.
func (m *CompanyAnalysisMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CompanyAnalysisMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CompanyAnalysisMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CompanyAnalysisMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CompanyAnalysisMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetAlgorithmVersion sets the "algorithm_version" field.
func (m *CompanyAnalysisMutation) SetAlgorithmVersion(s string) {
	m.algorithm_version = &s
}

// AlgorithmVersion returns the value of the "algorithm_version" field in the mutation.
func (m *CompanyAnalysisMutation) AlgorithmVersion() (r string, exists bool) {
	v := m.algorithm_version
	if v == nil {
		return
	}
	return *v, true
}

// OldAlgorithmVersion returns the old "algorithm_version" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldAlgorithmVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlgorithmVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlgorithmVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlgorithmVersion: %w", err)
	}
	return oldValue.AlgorithmVersion, nil
}

// ResetAlgorithmVersion resets all changes to the "algorithm_version" field.
func (m *CompanyAnalysisMutation) ResetAlgorithmVersion() {
	m.algorithm_version = nil
}

// SetSubmittedData sets the "submitted_data" field.
func (m *CompanyAnalysisMutation) SetSubmittedData(md models.SubmittedData) {
	m.submitted_data = &md
}

// SubmittedData returns the value of the "submitted_data" field in the mutation.
func (m *CompanyAnalysisMutation) SubmittedData() (r models.SubmittedData, exists bool) {
	v := m.submitted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedData returns the old "submitted_data" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldSubmittedData(ctx context.Context) (v models.SubmittedData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedData: %w", err)
	}
	return oldValue.SubmittedData, nil
}

// ResetSubmittedData resets all changes to the "submitted_data" field.
func (m *CompanyAnalysisMutation) ResetSubmittedData() {
	m.submitted_data = nil
}

// SetDiscoveredData sets the "discovered_data" field.
func (m *CompanyAnalysisMutation) SetDiscoveredData(md models.DiscoveredData) {
	m.discovered_data = &md
}

// DiscoveredData returns the value of the "discovered_data" field in the mutation.
func (m *CompanyAnalysisMutation) DiscoveredData() (r models.DiscoveredData, exists bool) {
	v := m.discovered_data
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveredData returns the old "discovered_data" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldDiscoveredData(ctx context.Context) (v models.DiscoveredData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveredData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveredData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveredData: %w", err)
	}
	return oldValue.DiscoveredData, nil
}

// ResetDiscoveredData resets all changes to the "discovered_data" field.
func (m *CompanyAnalysisMutation) ResetDiscoveredData() {
	m.discovered_data = nil
}

// SetSignals sets the "signals" field.
func (m *CompanyAnalysisMutation) SetSignals(value []models.Signal) {
	m.signals = &value
	m.appendsignals = nil
}

// Signals returns the value of the "signals" field in the mutation.
func (m *CompanyAnalysisMutation) Signals() (r []models.Signal, exists bool) {
	v := m.signals
	if v == nil {
		return
	}
	return *v, true
}

// OldSignals returns the old "signals" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldSignals(ctx context.Context) (v []models.Signal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignals: %w", err)
	}
	return oldValue.Signals, nil
}

// AppendSignals adds value to the "signals" field.
func (m *CompanyAnalysisMutation) AppendSignals(value []models.Signal) {
	m.appendsignals = append(m.appendsignals, value...)
}

// AppendedSignals returns the list of values that were appended to the "signals" field in this mutation.
func (m *CompanyAnalysisMutation) AppendedSignals() ([]models.Signal, bool) {
	if len(m.appendsignals) == 0 {
		return nil, false
	}
	return m.appendsignals, true
}

// ResetSignals resets all changes to the "signals" field.
func (m *CompanyAnalysisMutation) ResetSignals() {
	m.signals = nil
	m.appendsignals = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *CompanyAnalysisMutation) SetRiskScore(i int) {
	m.risk_score = &i
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *CompanyAnalysisMutation) RiskScore() (r int, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldRiskScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds i to the "risk_score" field.
func (m *CompanyAnalysisMutation) AddRiskScore(i int) {
	if m.addrisk_score != nil {
		*m.addrisk_score += i
	} else {
		m.addrisk_score = &i
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *CompanyAnalysisMutation) AddedRiskScore() (r int, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *CompanyAnalysisMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetLlmSummary sets the "llm_summary" field.
func (m *CompanyAnalysisMutation) SetLlmSummary(s string) {
	m.llm_summary = &s
}

// LlmSummary returns the value of the "llm_summary" field in the mutation.
func (m *CompanyAnalysisMutation) LlmSummary() (r string, exists bool) {
	v := m.llm_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmSummary returns the old "llm_summary" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldLlmSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmSummary: %w", err)
	}
	return oldValue.LlmSummary, nil
}

// ClearLlmSummary clears the value of the "llm_summary" field.
func (m *CompanyAnalysisMutation) ClearLlmSummary() {
	m.llm_summary = nil
	m.clearedFields[companyanalysis.FieldLlmSummary] = struct{}{}
}

// LlmSummaryCleared returns if the "llm_summary" field was cleared in this mutation.
func (m *CompanyAnalysisMutation) LlmSummaryCleared() bool {
	_, ok := m.clearedFields[companyanalysis.FieldLlmSummary]
	return ok
}

// ResetLlmSummary resets all changes to the "llm_summary" field.
func (m *CompanyAnalysisMutation) ResetLlmSummary() {
	m.llm_summary = nil
	delete(m.clearedFields, companyanalysis.FieldLlmSummary)
}

// SetLlmDetails sets the "llm_details" field.
func (m *CompanyAnalysisMutation) SetLlmDetails(s string) {
	m.llm_details = &s
}

// LlmDetails returns the value of the "llm_details" field in the mutation.
func (m *CompanyAnalysisMutation) LlmDetails() (r string, exists bool) {
	v := m.llm_details
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmDetails returns the old "llm_details" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldLlmDetails(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmDetails: %w", err)
	}
	return oldValue.LlmDetails, nil
}

// ClearLlmDetails clears the value of the "llm_details" field.
func (m *CompanyAnalysisMutation) ClearLlmDetails() {
	m.llm_details = nil
	m.clearedFields[companyanalysis.FieldLlmDetails] = struct{}{}
}

// LlmDetailsCleared returns if the "llm_details" field was cleared in this mutation.
func (m *CompanyAnalysisMutation) LlmDetailsCleared() bool {
	_, ok := m.clearedFields[companyanalysis.FieldLlmDetails]
	return ok
}

// ResetLlmDetails resets all changes to the "llm_details" field.
func (m *CompanyAnalysisMutation) ResetLlmDetails() {
	m.llm_details = nil
	delete(m.clearedFields, companyanalysis.FieldLlmDetails)
}

// SetIsComplete sets the "is_complete" field.
func (m *CompanyAnalysisMutation) SetIsComplete(b bool) {
	m.is_complete = &b
}

// IsComplete returns the value of the "is_complete" field in the mutation.
func (m *CompanyAnalysisMutation) IsComplete() (r bool, exists bool) {
	v := m.is_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldIsComplete returns the old "is_complete" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldIsComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsComplete: %w", err)
	}
	return oldValue.IsComplete, nil
}

// ResetIsComplete resets all changes to the "is_complete" field.
func (m *CompanyAnalysisMutation) ResetIsComplete() {
	m.is_complete = nil
}

// SetFailedChecks sets the "failed_checks" field.
func (m *CompanyAnalysisMutation) SetFailedChecks(s []string) {
	m.failed_checks = &s
	m.appendfailed_checks = nil
}

// FailedChecks returns the value of the "failed_checks" field in the mutation.
func (m *CompanyAnalysisMutation) FailedChecks() (r []string, exists bool) {
	v := m.failed_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedChecks returns the old "failed_checks" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldFailedChecks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedChecks: %w", err)
	}
	return oldValue.FailedChecks, nil
}

// AppendFailedChecks adds s to the "failed_checks" field.
func (m *CompanyAnalysisMutation) AppendFailedChecks(s []string) {
	m.appendfailed_checks = append(m.appendfailed_checks, s...)
}

// AppendedFailedChecks returns the list of values that were appended to the "failed_checks" field in this mutation.
func (m *CompanyAnalysisMutation) AppendedFailedChecks() ([]string, bool) {
	if len(m.appendfailed_checks) == 0 {
		return nil, false
	}
	return m.appendfailed_checks, true
}

// ResetFailedChecks resets all changes to the "failed_checks" field.
func (m *CompanyAnalysisMutation) ResetFailedChecks() {
	m.failed_checks = nil
	m.appendfailed_checks = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CompanyAnalysis entity.
// If the CompanyAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *CompanyAnalysisMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[companyanalysis.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *CompanyAnalysisMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *CompanyAnalysisMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *CompanyAnalysisMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the CompanyAnalysisMutation builder.
func (m *CompanyAnalysisMutation) Where(ps ...predicate.CompanyAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompanyAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompanyAnalysis).
func (m *CompanyAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.company != nil {
		fields = append(fields, companyanalysis.FieldCompanyID)
	}
	if m.version != nil {
		fields = append(fields, companyanalysis.FieldVersion)
	}
	if m.algorithm_version != nil {
		fields = append(fields, companyanalysis.FieldAlgorithmVersion)
	}
	if m.submitted_data != nil {
		fields = append(fields, companyanalysis.FieldSubmittedData)
	}
	if m.discovered_data != nil {
		fields = append(fields, companyanalysis.FieldDiscoveredData)
	}
	if m.signals != nil {
		fields = append(fields, companyanalysis.FieldSignals)
	}
	if m.risk_score != nil {
		fields = append(fields, companyanalysis.FieldRiskScore)
	}
	if m.llm_summary != nil {
		fields = append(fields, companyanalysis.FieldLlmSummary)
	}
	if m.llm_details != nil {
		fields = append(fields, companyanalysis.FieldLlmDetails)
	}
	if m.is_complete != nil {
		fields = append(fields, companyanalysis.FieldIsComplete)
	}
	if m.failed_checks != nil {
		fields = append(fields, companyanalysis.FieldFailedChecks)
	}
	if m.created_at != nil {
		fields = append(fields, companyanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case companyanalysis.FieldCompanyID:
		return m.CompanyID()
	case companyanalysis.FieldVersion:
		return m.Version()
	case companyanalysis.FieldAlgorithmVersion:
		return m.AlgorithmVersion()
	case companyanalysis.FieldSubmittedData:
		return m.SubmittedData()
	case companyanalysis.FieldDiscoveredData:
		return m.DiscoveredData()
	case companyanalysis.FieldSignals:
		return m.Signals()
	case companyanalysis.FieldRiskScore:
		return m.RiskScore()
	case companyanalysis.FieldLlmSummary:
		return m.LlmSummary()
	case companyanalysis.FieldLlmDetails:
		return m.LlmDetails()
	case companyanalysis.FieldIsComplete:
		return m.IsComplete()
	case companyanalysis.FieldFailedChecks:
		return m.FailedChecks()
	case companyanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case companyanalysis.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case companyanalysis.FieldVersion:
		return m.OldVersion(ctx)
	case companyanalysis.FieldAlgorithmVersion:
		return m.OldAlgorithmVersion(ctx)
	case companyanalysis.FieldSubmittedData:
		return m.OldSubmittedData(ctx)
	case companyanalysis.FieldDiscoveredData:
		return m.OldDiscoveredData(ctx)
	case companyanalysis.FieldSignals:
		return m.OldSignals(ctx)
	case companyanalysis.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case companyanalysis.FieldLlmSummary:
		return m.OldLlmSummary(ctx)
	case companyanalysis.FieldLlmDetails:
		return m.OldLlmDetails(ctx)
	case companyanalysis.FieldIsComplete:
		return m.OldIsComplete(ctx)
	case companyanalysis.FieldFailedChecks:
		return m.OldFailedChecks(ctx)
	case companyanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompanyAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case companyanalysis.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case companyanalysis.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case companyanalysis.FieldAlgorithmVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlgorithmVersion(v)
		return nil
	case companyanalysis.FieldSubmittedData:
		v, ok := value.(models.SubmittedData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedData(v)
		return nil
	case companyanalysis.FieldDiscoveredData:
		v, ok := value.(models.DiscoveredData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveredData(v)
		return nil
	case companyanalysis.FieldSignals:
		v, ok := value.([]models.Signal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignals(v)
		return nil
	case companyanalysis.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case companyanalysis.FieldLlmSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmSummary(v)
		return nil
	case companyanalysis.FieldLlmDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmDetails(v)
		return nil
	case companyanalysis.FieldIsComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsComplete(v)
		return nil
	case companyanalysis.FieldFailedChecks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedChecks(v)
		return nil
	case companyanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompanyAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, companyanalysis.FieldVersion)
	}
	if m.addrisk_score != nil {
		fields = append(fields, companyanalysis.FieldRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case companyanalysis.FieldVersion:
		return m.AddedVersion()
	case companyanalysis.FieldRiskScore:
		return m.AddedRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case companyanalysis.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case companyanalysis.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown CompanyAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(companyanalysis.FieldLlmSummary) {
		fields = append(fields, companyanalysis.FieldLlmSummary)
	}
	if m.FieldCleared(companyanalysis.FieldLlmDetails) {
		fields = append(fields, companyanalysis.FieldLlmDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyAnalysisMutation) ClearField(name string) error {
	switch name {
	case companyanalysis.FieldLlmSummary:
		m.ClearLlmSummary()
		return nil
	case companyanalysis.FieldLlmDetails:
		m.ClearLlmDetails()
		return nil
	}
	return fmt.Errorf("unknown CompanyAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyAnalysisMutation) ResetField(name string) error {
	switch name {
	case companyanalysis.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case companyanalysis.FieldVersion:
		m.ResetVersion()
		return nil
	case companyanalysis.FieldAlgorithmVersion:
		m.ResetAlgorithmVersion()
		return nil
	case companyanalysis.FieldSubmittedData:
		m.ResetSubmittedData()
		return nil
	case companyanalysis.FieldDiscoveredData:
		m.ResetDiscoveredData()
		return nil
	case companyanalysis.FieldSignals:
		m.ResetSignals()
		return nil
	case companyanalysis.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case companyanalysis.FieldLlmSummary:
		m.ResetLlmSummary()
		return nil
	case companyanalysis.FieldLlmDetails:
		m.ResetLlmDetails()
		return nil
	case companyanalysis.FieldIsComplete:
		m.ResetIsComplete()
		return nil
	case companyanalysis.FieldFailedChecks:
		m.ResetFailedChecks()
		return nil
	case companyanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompanyAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, companyanalysis.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case companyanalysis.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, companyanalysis.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case companyanalysis.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case companyanalysis.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown CompanyAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case companyanalysis.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown CompanyAnalysis edge %s", name)
}

// VerificationJobMutation represents an operation that mutates the VerificationJob nodes in the graph.
type VerificationJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	retry_mode          *verificationjob.RetryMode
	failed_checks       *[]string
	appendfailed_checks []string
	correlation_id      *string
	enqueued_at         *time.Time
	status              *verificationjob.Status
	attempts            *int
	addattempts         *int
	pod_id              *string
	started_at          *time.Time
	completed_at        *time.Time
	last_heartbeat_at   *time.Time
	error               *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	company             *string
	clearedcompany      bool
	done                bool
	oldValue            func(context.Context) (*VerificationJob, error)
	predicates          []predicate.VerificationJob
}

var _ ent.Mutation = (*VerificationJobMutation)(nil)

// verificationjobOption allows management of the mutation configuration using functional options.
type verificationjobOption func(*VerificationJobMutation)

// newVerificationJobMutation creates new mutation for the VerificationJob entity.
func newVerificationJobMutation(c config, op Op, opts ...verificationjobOption) *VerificationJobMutation {
	m := &VerificationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationJobID sets the ID field of the mutation.
func withVerificationJobID(id string) verificationjobOption {
	return func(m *VerificationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationJob
		)
		m.oldValue = func(ctx context.Context) (*VerificationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationJob sets the old VerificationJob of the mutation.
func withVerificationJob(node *VerificationJob) verificationjobOption {
	return func(m *VerificationJobMutation) {
		m.oldValue = func(context.Context) (*VerificationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationJob entities.
func (m *VerificationJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *VerificationJobMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *VerificationJobMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *VerificationJobMutation) ResetCompanyID() {
	m.company = nil
}

// SetRetryMode sets the "retry_mode" field.
func (m *VerificationJobMutation) SetRetryMode(vm verificationjob.RetryMode) {
	m.retry_mode = &vm
}

// RetryMode returns the value of the "retry_mode" field in the mutation.
func (m *VerificationJobMutation) RetryMode() (r verificationjob.RetryMode, exists bool) {
	v := m.retry_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryMode returns the old "retry_mode" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldRetryMode(ctx context.Context) (v verificationjob.RetryMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryMode: %w", err)
	}
	return oldValue.RetryMode, nil
}

// ResetRetryMode resets all changes to the "retry_mode" field.
func (m *VerificationJobMutation) ResetRetryMode() {
	m.retry_mode = nil
}

// SetFailedChecks sets the "failed_checks" field.
func (m *VerificationJobMutation) SetFailedChecks(s []string) {
	m.failed_checks = &s
	m.appendfailed_checks = nil
}

// FailedChecks returns the value of the "failed_checks" field in the mutation.
func (m *VerificationJobMutation) FailedChecks() (r []string, exists bool) {
	v := m.failed_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedChecks returns the old "failed_checks" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldFailedChecks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedChecks: %w", err)
	}
	return oldValue.FailedChecks, nil
}

// AppendFailedChecks adds s to the "failed_checks" field.
func (m *VerificationJobMutation) AppendFailedChecks(s []string) {
	m.appendfailed_checks = append(m.appendfailed_checks, s...)
}

// AppendedFailedChecks returns the list of values that were appended to the "failed_checks" field in this mutation.
func (m *VerificationJobMutation) AppendedFailedChecks() ([]string, bool) {
	if len(m.appendfailed_checks) == 0 {
		return nil, false
	}
	return m.appendfailed_checks, true
}

// ClearFailedChecks clears the value of the "failed_checks" field.
func (m *VerificationJobMutation) ClearFailedChecks() {
	m.failed_checks = nil
	m.appendfailed_checks = nil
	m.clearedFields[verificationjob.FieldFailedChecks] = struct{}{}
}

// FailedChecksCleared returns if the "failed_checks" field was cleared in this mutation.
func (m *VerificationJobMutation) FailedChecksCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldFailedChecks]
	return ok
}

// ResetFailedChecks resets all changes to the "failed_checks" field.
func (m *VerificationJobMutation) ResetFailedChecks() {
	m.failed_checks = nil
	m.appendfailed_checks = nil
	delete(m.clearedFields, verificationjob.FieldFailedChecks)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *VerificationJobMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *VerificationJobMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *VerificationJobMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *VerificationJobMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *VerificationJobMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *VerificationJobMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetStatus sets the "status" field.
func (m *VerificationJobMutation) SetStatus(v verificationjob.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationJobMutation) Status() (r verificationjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStatus(ctx context.Context) (v verificationjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *VerificationJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *VerificationJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *VerificationJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *VerificationJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *VerificationJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetPodID sets the "pod_id" field.
func (m *VerificationJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *VerificationJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *VerificationJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[verificationjob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *VerificationJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *VerificationJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, verificationjob.FieldPodID)
}

// SetStartedAt sets the "started_at" field.
func (m *VerificationJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *VerificationJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *VerificationJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[verificationjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *VerificationJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *VerificationJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, verificationjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *VerificationJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *VerificationJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *VerificationJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[verificationjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *VerificationJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *VerificationJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, verificationjob.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *VerificationJobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *VerificationJobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *VerificationJobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[verificationjob.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *VerificationJobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *VerificationJobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, verificationjob.FieldLastHeartbeatAt)
}

// SetError sets the "error" field.
func (m *VerificationJobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *VerificationJobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *VerificationJobMutation) ClearError() {
	m.error = nil
	m.clearedFields[verificationjob.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *VerificationJobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *VerificationJobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, verificationjob.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VerificationJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VerificationJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VerificationJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *VerificationJobMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[verificationjob.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *VerificationJobMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *VerificationJobMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *VerificationJobMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the VerificationJobMutation builder.
func (m *VerificationJobMutation) Where(ps ...predicate.VerificationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationJob).
func (m *VerificationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.company != nil {
		fields = append(fields, verificationjob.FieldCompanyID)
	}
	if m.retry_mode != nil {
		fields = append(fields, verificationjob.FieldRetryMode)
	}
	if m.failed_checks != nil {
		fields = append(fields, verificationjob.FieldFailedChecks)
	}
	if m.correlation_id != nil {
		fields = append(fields, verificationjob.FieldCorrelationID)
	}
	if m.enqueued_at != nil {
		fields = append(fields, verificationjob.FieldEnqueuedAt)
	}
	if m.status != nil {
		fields = append(fields, verificationjob.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, verificationjob.FieldAttempts)
	}
	if m.pod_id != nil {
		fields = append(fields, verificationjob.FieldPodID)
	}
	if m.started_at != nil {
		fields = append(fields, verificationjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, verificationjob.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, verificationjob.FieldLastHeartbeatAt)
	}
	if m.error != nil {
		fields = append(fields, verificationjob.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, verificationjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, verificationjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldCompanyID:
		return m.CompanyID()
	case verificationjob.FieldRetryMode:
		return m.RetryMode()
	case verificationjob.FieldFailedChecks:
		return m.FailedChecks()
	case verificationjob.FieldCorrelationID:
		return m.CorrelationID()
	case verificationjob.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case verificationjob.FieldStatus:
		return m.Status()
	case verificationjob.FieldAttempts:
		return m.Attempts()
	case verificationjob.FieldPodID:
		return m.PodID()
	case verificationjob.FieldStartedAt:
		return m.StartedAt()
	case verificationjob.FieldCompletedAt:
		return m.CompletedAt()
	case verificationjob.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case verificationjob.FieldError:
		return m.Error()
	case verificationjob.FieldCreatedAt:
		return m.CreatedAt()
	case verificationjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationjob.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case verificationjob.FieldRetryMode:
		return m.OldRetryMode(ctx)
	case verificationjob.FieldFailedChecks:
		return m.OldFailedChecks(ctx)
	case verificationjob.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case verificationjob.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case verificationjob.FieldStatus:
		return m.OldStatus(ctx)
	case verificationjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case verificationjob.FieldPodID:
		return m.OldPodID(ctx)
	case verificationjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case verificationjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case verificationjob.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case verificationjob.FieldError:
		return m.OldError(ctx)
	case verificationjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case verificationjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case verificationjob.FieldRetryMode:
		v, ok := value.(verificationjob.RetryMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryMode(v)
		return nil
	case verificationjob.FieldFailedChecks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedChecks(v)
		return nil
	case verificationjob.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case verificationjob.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case verificationjob.FieldStatus:
		v, ok := value.(verificationjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case verificationjob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case verificationjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case verificationjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case verificationjob.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case verificationjob.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case verificationjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case verificationjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, verificationjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationjob.FieldFailedChecks) {
		fields = append(fields, verificationjob.FieldFailedChecks)
	}
	if m.FieldCleared(verificationjob.FieldPodID) {
		fields = append(fields, verificationjob.FieldPodID)
	}
	if m.FieldCleared(verificationjob.FieldStartedAt) {
		fields = append(fields, verificationjob.FieldStartedAt)
	}
	if m.FieldCleared(verificationjob.FieldCompletedAt) {
		fields = append(fields, verificationjob.FieldCompletedAt)
	}
	if m.FieldCleared(verificationjob.FieldLastHeartbeatAt) {
		fields = append(fields, verificationjob.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(verificationjob.FieldError) {
		fields = append(fields, verificationjob.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationJobMutation) ClearField(name string) error {
	switch name {
	case verificationjob.FieldFailedChecks:
		m.ClearFailedChecks()
		return nil
	case verificationjob.FieldPodID:
		m.ClearPodID()
		return nil
	case verificationjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case verificationjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case verificationjob.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case verificationjob.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationJobMutation) ResetField(name string) error {
	switch name {
	case verificationjob.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case verificationjob.FieldRetryMode:
		m.ResetRetryMode()
		return nil
	case verificationjob.FieldFailedChecks:
		m.ResetFailedChecks()
		return nil
	case verificationjob.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case verificationjob.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case verificationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case verificationjob.FieldPodID:
		m.ResetPodID()
		return nil
	case verificationjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case verificationjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case verificationjob.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case verificationjob.FieldError:
		m.ResetError()
		return nil
	case verificationjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case verificationjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, verificationjob.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationjob.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, verificationjob.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationJobMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationjob.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationJobMutation) ClearEdge(name string) error {
	switch name {
	case verificationjob.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationJobMutation) ResetEdge(name string) error {
	switch name {
	case verificationjob.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob edge %s", name)
}
