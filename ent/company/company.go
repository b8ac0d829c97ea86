// Code generated by ent, DO NOT EDIT.

package company

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the company type in the database.
	Label = "company"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "company_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldWebsiteURL holds the string denoting the website_url field in the database.
	FieldWebsiteURL = "website_url"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldAnalysisStatus holds the string denoting the analysis_status field in the database.
	FieldAnalysisStatus = "analysis_status"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldLastAnalyzedAt holds the string denoting the last_analyzed_at field in the database.
	FieldLastAnalyzedAt = "last_analyzed_at"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAnalyses holds the string denoting the analyses edge name in mutations.
	EdgeAnalyses = "analyses"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// CompanyAnalysisFieldID holds the string denoting the ID field of the CompanyAnalysis.
	CompanyAnalysisFieldID = "analysis_id"
	// VerificationJobFieldID holds the string denoting the ID field of the VerificationJob.
	VerificationJobFieldID = "job_id"
	// Table holds the table name of the company in the database.
	Table = "companies"
	// AnalysesTable is the table that holds the analyses relation/edge.
	AnalysesTable = "company_analyses"
	// AnalysesInverseTable is the table name for the CompanyAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "companyanalysis" package.
	AnalysesInverseTable = "company_analyses"
	// AnalysesColumn is the table column denoting the analyses relation/edge.
	AnalysesColumn = "company_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "verification_jobs"
	// JobsInverseTable is the table name for the VerificationJob entity.
	// It exists in this package in order to avoid circular dependency with the "verificationjob" package.
	JobsInverseTable = "verification_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "company_id"
)

// Columns holds all SQL columns for company fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDomain,
	FieldWebsiteURL,
	FieldEmail,
	FieldPhone,
	FieldStatus,
	FieldRiskScore,
	FieldAnalysisStatus,
	FieldCurrentStep,
	FieldLastAnalyzedAt,
	FieldIsDeleted,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore int
	// RiskScoreValidator is a validator for the "risk_score" field. It is called by the builders before save.
	RiskScoreValidator func(int) error
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusSuspicious Status = "suspicious"
	StatusFraudulent Status = "fraudulent"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusSuspicious, StatusFraudulent:
		return nil
	default:
		return fmt.Errorf("company: invalid enum value for status field: %q", s)
	}
}

// AnalysisStatus defines the type for the "analysis_status" enum field.
type AnalysisStatus string

// AnalysisStatusPending is the default value of the AnalysisStatus enum.
const DefaultAnalysisStatus = AnalysisStatusPending

// AnalysisStatus values.
const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusInProgress AnalysisStatus = "in_progress"
	AnalysisStatusComplete   AnalysisStatus = "complete"
)

func (as AnalysisStatus) String() string {
	return string(as)
}

// AnalysisStatusValidator is a validator for the "analysis_status" field enum values. It is called by the builders before save.
func AnalysisStatusValidator(as AnalysisStatus) error {
	switch as {
	case AnalysisStatusPending, AnalysisStatusInProgress, AnalysisStatusComplete:
		return nil
	default:
		return fmt.Errorf("company: invalid enum value for analysis_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the Company queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByWebsiteURL orders the results by the website_url field.
func ByWebsiteURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsiteURL, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByAnalysisStatus orders the results by the analysis_status field.
func ByAnalysisStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisStatus, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByLastAnalyzedAt orders the results by the last_analyzed_at field.
func ByLastAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAnalyzedAt, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAnalysesCount orders the results by analyses count.
func ByAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysesStep(), opts...)
	}
}

// ByAnalyses orders the results by analyses terms.
func ByAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysesInverseTable, CompanyAnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, VerificationJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
