// Code generated by ent, DO NOT EDIT.

package companyanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the companyanalysis type in the database.
	Label = "company_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldAlgorithmVersion holds the string denoting the algorithm_version field in the database.
	FieldAlgorithmVersion = "algorithm_version"
	// FieldSubmittedData holds the string denoting the submitted_data field in the database.
	FieldSubmittedData = "submitted_data"
	// FieldDiscoveredData holds the string denoting the discovered_data field in the database.
	FieldDiscoveredData = "discovered_data"
	// FieldSignals holds the string denoting the signals field in the database.
	FieldSignals = "signals"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldLlmSummary holds the string denoting the llm_summary field in the database.
	FieldLlmSummary = "llm_summary"
	// FieldLlmDetails holds the string denoting the llm_details field in the database.
	FieldLlmDetails = "llm_details"
	// FieldIsComplete holds the string denoting the is_complete field in the database.
	FieldIsComplete = "is_complete"
	// FieldFailedChecks holds the string denoting the failed_checks field in the database.
	FieldFailedChecks = "failed_checks"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// Table holds the table name of the companyanalysis in the database.
	Table = "company_analyses"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "company_analyses"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
)

// Columns holds all SQL columns for companyanalysis fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldVersion,
	FieldAlgorithmVersion,
	FieldSubmittedData,
	FieldDiscoveredData,
	FieldSignals,
	FieldRiskScore,
	FieldLlmSummary,
	FieldLlmDetails,
	FieldIsComplete,
	FieldFailedChecks,
	FieldCreatedAt,
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
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// RiskScoreValidator is a validator for the "risk_score" field. It is called by the builders before save.
	RiskScoreValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CompanyAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByAlgorithmVersion orders the results by the algorithm_version field.
func ByAlgorithmVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlgorithmVersion, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByLlmSummary orders the results by the llm_summary field.
func ByLlmSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmSummary, opts...).ToFunc()
}

// ByLlmDetails orders the results by the llm_details field.
func ByLlmDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmDetails, opts...).ToFunc()
}

// ByIsComplete orders the results by the is_complete field.
func ByIsComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsComplete, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
