// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// CompanyAnalysis is the predicate function for companyanalysis builders.
type CompanyAnalysis func(*sql.Selector)

// VerificationJob is the predicate function for verificationjob builders.
type VerificationJob func(*sql.Selector)
