// Code generated by ent, DO NOT EDIT.

package companyanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trustlane/vetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContainsFold(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldCompanyID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldVersion, v))
}

// AlgorithmVersion applies equality check predicate on the "algorithm_version" field. It's identical to AlgorithmVersionEQ.
func AlgorithmVersion(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldAlgorithmVersion, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldRiskScore, v))
}

// LlmSummary applies equality check predicate on the "llm_summary" field. It's identical to LlmSummaryEQ.
func LlmSummary(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldLlmSummary, v))
}

// LlmDetails applies equality check predicate on the "llm_details" field. It's identical to LlmDetailsEQ.
func LlmDetails(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldLlmDetails, v))
}

// IsComplete applies equality check predicate on the "is_complete" field. It's identical to IsCompleteEQ.
func IsComplete(v bool) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldIsComplete, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContainsFold(FieldCompanyID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLTE(FieldVersion, v))
}

// AlgorithmVersionEQ applies the EQ predicate on the "algorithm_version" field.
func AlgorithmVersionEQ(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldAlgorithmVersion, v))
}

// AlgorithmVersionNEQ applies the NEQ predicate on the "algorithm_version" field.
func AlgorithmVersionNEQ(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldAlgorithmVersion, v))
}

// AlgorithmVersionIn applies the In predicate on the "algorithm_version" field.
func AlgorithmVersionIn(vs ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIn(FieldAlgorithmVersion, vs...))
}

// AlgorithmVersionNotIn applies the NotIn predicate on the "algorithm_version" field.
func AlgorithmVersionNotIn(vs ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotIn(FieldAlgorithmVersion, vs...))
}

// AlgorithmVersionGT applies the GT predicate on the "algorithm_version" field.
func AlgorithmVersionGT(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGT(FieldAlgorithmVersion, v))
}

// AlgorithmVersionGTE applies the GTE predicate on the "algorithm_version" field.
func AlgorithmVersionGTE(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGTE(FieldAlgorithmVersion, v))
}

// AlgorithmVersionLT applies the LT predicate on the "algorithm_version" field.
func AlgorithmVersionLT(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLT(FieldAlgorithmVersion, v))
}

// AlgorithmVersionLTE applies the LTE predicate on the "algorithm_version" field.
func AlgorithmVersionLTE(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLTE(FieldAlgorithmVersion, v))
}

// AlgorithmVersionContains applies the Contains predicate on the "algorithm_version" field.
func AlgorithmVersionContains(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContains(FieldAlgorithmVersion, v))
}

// AlgorithmVersionHasPrefix applies the HasPrefix predicate on the "algorithm_version" field.
func AlgorithmVersionHasPrefix(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldHasPrefix(FieldAlgorithmVersion, v))
}

// AlgorithmVersionHasSuffix applies the HasSuffix predicate on the "algorithm_version" field.
func AlgorithmVersionHasSuffix(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldHasSuffix(FieldAlgorithmVersion, v))
}

// AlgorithmVersionEqualFold applies the EqualFold predicate on the "algorithm_version" field.
func AlgorithmVersionEqualFold(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEqualFold(FieldAlgorithmVersion, v))
}

// AlgorithmVersionContainsFold applies the ContainsFold predicate on the "algorithm_version" field.
func AlgorithmVersionContainsFold(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContainsFold(FieldAlgorithmVersion, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v int) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLTE(FieldRiskScore, v))
}

// LlmSummaryEQ applies the EQ predicate on the "llm_summary" field.
func LlmSummaryEQ(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldLlmSummary, v))
}

// LlmSummaryNEQ applies the NEQ predicate on the "llm_summary" field.
func LlmSummaryNEQ(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldLlmSummary, v))
}

// LlmSummaryIn applies the In predicate on the "llm_summary" field.
func LlmSummaryIn(vs ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIn(FieldLlmSummary, vs...))
}

// LlmSummaryNotIn applies the NotIn predicate on the "llm_summary" field.
func LlmSummaryNotIn(vs ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotIn(FieldLlmSummary, vs...))
}

// LlmSummaryGT applies the GT predicate on the "llm_summary" field.
func LlmSummaryGT(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGT(FieldLlmSummary, v))
}

// LlmSummaryGTE applies the GTE predicate on the "llm_summary" field.
func LlmSummaryGTE(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGTE(FieldLlmSummary, v))
}

// LlmSummaryLT applies the LT predicate on the "llm_summary" field.
func LlmSummaryLT(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLT(FieldLlmSummary, v))
}

// LlmSummaryLTE applies the LTE predicate on the "llm_summary" field.
func LlmSummaryLTE(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLTE(FieldLlmSummary, v))
}

// LlmSummaryContains applies the Contains predicate on the "llm_summary" field.
func LlmSummaryContains(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContains(FieldLlmSummary, v))
}

// LlmSummaryHasPrefix applies the HasPrefix predicate on the "llm_summary" field.
func LlmSummaryHasPrefix(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldHasPrefix(FieldLlmSummary, v))
}

// LlmSummaryHasSuffix applies the HasSuffix predicate on the "llm_summary" field.
func LlmSummaryHasSuffix(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldHasSuffix(FieldLlmSummary, v))
}

// LlmSummaryIsNil applies the IsNil predicate on the "llm_summary" field.
func LlmSummaryIsNil() predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIsNull(FieldLlmSummary))
}

// LlmSummaryNotNil applies the NotNil predicate on the "llm_summary" field.
func LlmSummaryNotNil() predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotNull(FieldLlmSummary))
}

// LlmSummaryEqualFold applies the EqualFold predicate on the "llm_summary" field.
func LlmSummaryEqualFold(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEqualFold(FieldLlmSummary, v))
}

// LlmSummaryContainsFold applies the ContainsFold predicate on the "llm_summary" field.
func LlmSummaryContainsFold(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContainsFold(FieldLlmSummary, v))
}

// LlmDetailsEQ applies the EQ predicate on the "llm_details" field.
func LlmDetailsEQ(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldLlmDetails, v))
}

// LlmDetailsNEQ applies the NEQ predicate on the "llm_details" field.
func LlmDetailsNEQ(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldLlmDetails, v))
}

// LlmDetailsIn applies the In predicate on the "llm_details" field.
func LlmDetailsIn(vs ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIn(FieldLlmDetails, vs...))
}

// LlmDetailsNotIn applies the NotIn predicate on the "llm_details" field.
func LlmDetailsNotIn(vs ...string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotIn(FieldLlmDetails, vs...))
}

// LlmDetailsGT applies the GT predicate on the "llm_details" field.
func LlmDetailsGT(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGT(FieldLlmDetails, v))
}

// LlmDetailsGTE applies the GTE predicate on the "llm_details" field.
func LlmDetailsGTE(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGTE(FieldLlmDetails, v))
}

// LlmDetailsLT applies the LT predicate on the "llm_details" field.
func LlmDetailsLT(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLT(FieldLlmDetails, v))
}

// LlmDetailsLTE applies the LTE predicate on the "llm_details" field.
func LlmDetailsLTE(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLTE(FieldLlmDetails, v))
}

// LlmDetailsContains applies the Contains predicate on the "llm_details" field.
func LlmDetailsContains(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContains(FieldLlmDetails, v))
}

// LlmDetailsHasPrefix applies the HasPrefix predicate on the "llm_details" field.
func LlmDetailsHasPrefix(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldHasPrefix(FieldLlmDetails, v))
}

// LlmDetailsHasSuffix applies the HasSuffix predicate on the "llm_details" field.
func LlmDetailsHasSuffix(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldHasSuffix(FieldLlmDetails, v))
}

// LlmDetailsIsNil applies the IsNil predicate on the "llm_details" field.
func LlmDetailsIsNil() predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIsNull(FieldLlmDetails))
}

// LlmDetailsNotNil applies the NotNil predicate on the "llm_details" field.
func LlmDetailsNotNil() predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotNull(FieldLlmDetails))
}

// LlmDetailsEqualFold applies the EqualFold predicate on the "llm_details" field.
func LlmDetailsEqualFold(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEqualFold(FieldLlmDetails, v))
}

// LlmDetailsContainsFold applies the ContainsFold predicate on the "llm_details" field.
func LlmDetailsContainsFold(v string) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldContainsFold(FieldLlmDetails, v))
}

// IsCompleteEQ applies the EQ predicate on the "is_complete" field.
func IsCompleteEQ(v bool) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldIsComplete, v))
}

// IsCompleteNEQ applies the NEQ predicate on the "is_complete" field.
func IsCompleteNEQ(v bool) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldIsComplete, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompanyAnalysis) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompanyAnalysis) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompanyAnalysis) predicate.CompanyAnalysis {
	return predicate.CompanyAnalysis(sql.NotPredicates(p))
}
