// Code generated by ent, DO NOT EDIT.

package verificationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trustlane/vetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCompanyID, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCorrelationID, v))
}

// EnqueuedAt applies equality check predicate on the "enqueued_at" field. It's identical to EnqueuedAtEQ.
func EnqueuedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldEnqueuedAt, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldAttempts, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldPodID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldCompanyID, v))
}

// RetryModeEQ applies the EQ predicate on the "retry_mode" field.
func RetryModeEQ(v RetryMode) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldRetryMode, v))
}

// RetryModeNEQ applies the NEQ predicate on the "retry_mode" field.
func RetryModeNEQ(v RetryMode) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldRetryMode, v))
}

// RetryModeIn applies the In predicate on the "retry_mode" field.
func RetryModeIn(vs ...RetryMode) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldRetryMode, vs...))
}

// RetryModeNotIn applies the NotIn predicate on the "retry_mode" field.
func RetryModeNotIn(vs ...RetryMode) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldRetryMode, vs...))
}

// FailedChecksIsNil applies the IsNil predicate on the "failed_checks" field.
func FailedChecksIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldFailedChecks))
}

// FailedChecksNotNil applies the NotNil predicate on the "failed_checks" field.
func FailedChecksNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldFailedChecks))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldCorrelationID, v))
}

// EnqueuedAtEQ applies the EQ predicate on the "enqueued_at" field.
func EnqueuedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtNEQ applies the NEQ predicate on the "enqueued_at" field.
func EnqueuedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtIn applies the In predicate on the "enqueued_at" field.
func EnqueuedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtNotIn applies the NotIn predicate on the "enqueued_at" field.
func EnqueuedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtGT applies the GT predicate on the "enqueued_at" field.
func EnqueuedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldEnqueuedAt, v))
}

// EnqueuedAtGTE applies the GTE predicate on the "enqueued_at" field.
func EnqueuedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldEnqueuedAt, v))
}

// EnqueuedAtLT applies the LT predicate on the "enqueued_at" field.
func EnqueuedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldEnqueuedAt, v))
}

// EnqueuedAtLTE applies the LTE predicate on the "enqueued_at" field.
func EnqueuedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldEnqueuedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldAttempts, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldPodID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.NotPredicates(p))
}
