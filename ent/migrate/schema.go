// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "company_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "website_url", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "suspicious", "fraudulent"}, Default: "pending"},
		{Name: "risk_score", Type: field.TypeInt, Default: 0},
		{Name: "analysis_status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "complete"}, Default: "pending"},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "last_analyzed_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_status",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[6]},
			},
			{
				Name:    "company_analysis_status",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[8]},
			},
			{
				Name:    "company_domain",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[2]},
			},
			{
				Name:    "company_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_deleted",
				},
			},
		},
	}
	// CompanyAnalysesColumns holds the columns for the "company_analyses" table.
	CompanyAnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "algorithm_version", Type: field.TypeString},
		{Name: "submitted_data", Type: field.TypeJSON},
		{Name: "discovered_data", Type: field.TypeJSON},
		{Name: "signals", Type: field.TypeJSON},
		{Name: "risk_score", Type: field.TypeInt},
		{Name: "llm_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "llm_details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_complete", Type: field.TypeBool},
		{Name: "failed_checks", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
	}
	// CompanyAnalysesTable holds the schema information for the "company_analyses" table.
	CompanyAnalysesTable = &schema.Table{
		Name:       "company_analyses",
		Columns:    CompanyAnalysesColumns,
		PrimaryKey: []*schema.Column{CompanyAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "company_analyses_companies_analyses",
				Columns:    []*schema.Column{CompanyAnalysesColumns[12]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "companyanalysis_company_id_version",
				Unique:  true,
				Columns: []*schema.Column{CompanyAnalysesColumns[12], CompanyAnalysesColumns[1]},
			},
			{
				Name:    "companyanalysis_company_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CompanyAnalysesColumns[12], CompanyAnalysesColumns[11]},
			},
		},
	}
	// VerificationJobsColumns holds the columns for the "verification_jobs" table.
	VerificationJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "retry_mode", Type: field.TypeEnum, Enums: []string{"full", "failed_only"}, Default: "full"},
		{Name: "failed_checks", Type: field.TypeJSON, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
	}
	// VerificationJobsTable holds the schema information for the "verification_jobs" table.
	VerificationJobsTable = &schema.Table{
		Name:       "verification_jobs",
		Columns:    VerificationJobsColumns,
		PrimaryKey: []*schema.Column{VerificationJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_jobs_companies_jobs",
				Columns:    []*schema.Column{VerificationJobsColumns[14]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationjob_company_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobsColumns[14]},
			},
			{
				Name:    "verificationjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobsColumns[5], VerificationJobsColumns[12]},
			},
			{
				Name:    "verificationjob_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobsColumns[5], VerificationJobsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompaniesTable,
		CompanyAnalysesTable,
		VerificationJobsTable,
	}
)

func init() {
	CompanyAnalysesTable.ForeignKeys[0].RefTable = CompaniesTable
	VerificationJobsTable.ForeignKeys[0].RefTable = CompaniesTable
}
