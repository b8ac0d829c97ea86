// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/companyanalysis"
	"github.com/trustlane/vetd/ent/schema"
	"github.com/trustlane/vetd/ent/verificationjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescDomain is the schema descriptor for domain field.
	companyDescDomain := companyFields[2].Descriptor()
	// company.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	company.DomainValidator = companyDescDomain.Validators[0].(func(string) error)
	// companyDescRiskScore is the schema descriptor for risk_score field.
	companyDescRiskScore := companyFields[7].Descriptor()
	// company.DefaultRiskScore holds the default value on creation for the risk_score field.
	company.DefaultRiskScore = companyDescRiskScore.Default.(int)
	// company.RiskScoreValidator is a validator for the "risk_score" field. It is called by the builders before save.
	company.RiskScoreValidator = func() func(int) error {
		validators := companyDescRiskScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(risk_score int) error {
			for _, fn := range fns {
				if err := fn(risk_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescIsDeleted is the schema descriptor for is_deleted field.
	companyDescIsDeleted := companyFields[11].Descriptor()
	// company.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	company.DefaultIsDeleted = companyDescIsDeleted.Default.(bool)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[12].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[13].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	companyanalysisFields := schema.CompanyAnalysis{}.Fields()
	_ = companyanalysisFields
	// companyanalysisDescVersion is the schema descriptor for version field.
	companyanalysisDescVersion := companyanalysisFields[2].Descriptor()
	// companyanalysis.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	companyanalysis.VersionValidator = companyanalysisDescVersion.Validators[0].(func(int) error)
	// companyanalysisDescRiskScore is the schema descriptor for risk_score field.
	companyanalysisDescRiskScore := companyanalysisFields[7].Descriptor()
	// companyanalysis.RiskScoreValidator is a validator for the "risk_score" field. It is called by the builders before save.
	companyanalysis.RiskScoreValidator = func() func(int) error {
		validators := companyanalysisDescRiskScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(risk_score int) error {
			for _, fn := range fns {
				if err := fn(risk_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyanalysisDescCreatedAt is the schema descriptor for created_at field.
	companyanalysisDescCreatedAt := companyanalysisFields[12].Descriptor()
	// companyanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	companyanalysis.DefaultCreatedAt = companyanalysisDescCreatedAt.Default.(func() time.Time)
	verificationjobFields := schema.VerificationJob{}.Fields()
	_ = verificationjobFields
	// verificationjobDescEnqueuedAt is the schema descriptor for enqueued_at field.
	verificationjobDescEnqueuedAt := verificationjobFields[5].Descriptor()
	// verificationjob.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	verificationjob.DefaultEnqueuedAt = verificationjobDescEnqueuedAt.Default.(func() time.Time)
	// verificationjobDescAttempts is the schema descriptor for attempts field.
	verificationjobDescAttempts := verificationjobFields[7].Descriptor()
	// verificationjob.DefaultAttempts holds the default value on creation for the attempts field.
	verificationjob.DefaultAttempts = verificationjobDescAttempts.Default.(int)
	// verificationjobDescCreatedAt is the schema descriptor for created_at field.
	verificationjobDescCreatedAt := verificationjobFields[13].Descriptor()
	// verificationjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationjob.DefaultCreatedAt = verificationjobDescCreatedAt.Default.(func() time.Time)
	// verificationjobDescUpdatedAt is the schema descriptor for updated_at field.
	verificationjobDescUpdatedAt := verificationjobFields[14].Descriptor()
	// verificationjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	verificationjob.DefaultUpdatedAt = verificationjobDescUpdatedAt.Default.(func() time.Time)
	// verificationjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	verificationjob.UpdateDefaultUpdatedAt = verificationjobDescUpdatedAt.UpdateDefault.(func() time.Time)
}
