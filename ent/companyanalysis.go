// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/pkg/models"
)

// CompanyAnalysis is the model entity for the CompanyAnalysis schema.
type CompanyAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// Monotonic per company, assigned under a row lock
	Version int `json:"version,omitempty"`
	// AlgorithmVersion holds the value of the "algorithm_version" field.
	AlgorithmVersion string `json:"algorithm_version,omitempty"`
	// Declared inputs used for this run
	SubmittedData models.SubmittedData `json:"submitted_data,omitempty"`
	// Per-stage probe output keyed by stage data key
	DiscoveredData models.DiscoveredData `json:"discovered_data,omitempty"`
	// Signals holds the value of the "signals" field.
	Signals []models.Signal `json:"signals,omitempty"`
	// RiskScore holds the value of the "risk_score" field.
	RiskScore int `json:"risk_score,omitempty"`
	// LlmSummary holds the value of the "llm_summary" field.
	LlmSummary *string `json:"llm_summary,omitempty"`
	// LlmDetails holds the value of the "llm_details" field.
	LlmDetails *string `json:"llm_details,omitempty"`
	// IsComplete holds the value of the "is_complete" field.
	IsComplete bool `json:"is_complete,omitempty"`
	// Stage tags that failed in this run (sorted)
	FailedChecks []string `json:"failed_checks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyAnalysisQuery when eager-loading is set.
	Edges        CompanyAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyAnalysisEdges holds the relations/edges for other nodes in the graph.
type CompanyAnalysisEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompanyAnalysisEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompanyAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case companyanalysis.FieldSubmittedData, companyanalysis.FieldDiscoveredData, companyanalysis.FieldSignals, companyanalysis.FieldFailedChecks:
			values[i] = new([]byte)
		case companyanalysis.FieldIsComplete:
			values[i] = new(sql.NullBool)
		case companyanalysis.FieldVersion, companyanalysis.FieldRiskScore:
			values[i] = new(sql.NullInt64)
		case companyanalysis.FieldID, companyanalysis.FieldCompanyID, companyanalysis.FieldAlgorithmVersion, companyanalysis.FieldLlmSummary, companyanalysis.FieldLlmDetails:
			values[i] = new(sql.NullString)
		case companyanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompanyAnalysis fields.
func (_m *CompanyAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case companyanalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case companyanalysis.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case companyanalysis.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case companyanalysis.FieldAlgorithmVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field algorithm_version", values[i])
			} else if value.Valid {
				_m.AlgorithmVersion = value.String
			}
		case companyanalysis.FieldSubmittedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubmittedData); err != nil {
					return fmt.Errorf("unmarshal field submitted_data: %w", err)
				}
			}
		case companyanalysis.FieldDiscoveredData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field discovered_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DiscoveredData); err != nil {
					return fmt.Errorf("unmarshal field discovered_data: %w", err)
				}
			}
		case companyanalysis.FieldSignals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Signals); err != nil {
					return fmt.Errorf("unmarshal field signals: %w", err)
				}
			}
		case companyanalysis.FieldRiskScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = int(value.Int64)
			}
		case companyanalysis.FieldLlmSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_summary", values[i])
			} else if value.Valid {
				_m.LlmSummary = new(string)
				*_m.LlmSummary = value.String
			}
		case companyanalysis.FieldLlmDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_details", values[i])
			} else if value.Valid {
				_m.LlmDetails = new(string)
				*_m.LlmDetails = value.String
			}
		case companyanalysis.FieldIsComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_complete", values[i])
			} else if value.Valid {
				_m.IsComplete = value.Bool
			}
		case companyanalysis.FieldFailedChecks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failed_checks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailedChecks); err != nil {
					return fmt.Errorf("unmarshal field failed_checks: %w", err)
				}
			}
		case companyanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompanyAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *CompanyAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the CompanyAnalysis entity.
func (_m *CompanyAnalysis) QueryCompany() *CompanyQuery {
	return NewCompanyAnalysisClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this CompanyAnalysis.
// Note that you need to call CompanyAnalysis.Unwrap() before calling this method if this CompanyAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompanyAnalysis) Update() *CompanyAnalysisUpdateOne {
	return NewCompanyAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompanyAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompanyAnalysis) Unwrap() *CompanyAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompanyAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompanyAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("CompanyAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("algorithm_version=")
	builder.WriteString(_m.AlgorithmVersion)
	builder.WriteString(", ")
	builder.WriteString("submitted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmittedData))
	builder.WriteString(", ")
	builder.WriteString("discovered_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscoveredData))
	builder.WriteString(", ")
	builder.WriteString("signals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Signals))
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	if v := _m.LlmSummary; v != nil {
		builder.WriteString("llm_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmDetails; v != nil {
		builder.WriteString("llm_details=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsComplete))
	builder.WriteString(", ")
	builder.WriteString("failed_checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedChecks))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CompanyAnalyses is a parsable slice of CompanyAnalysis.
type CompanyAnalyses []*CompanyAnalysis
