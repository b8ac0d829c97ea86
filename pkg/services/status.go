package services

import "github.com/trustlane/vetd/pkg/models"

// Risk thresholds for automatic classification.
const (
	fraudulentThreshold  = 70
	autoApproveThreshold = 30
)

// ApplyAction computes the status resulting from an operator action.
// Undefined (status, action) pairs return ErrInvalidTransition and the
// caller must not mutate state.
func ApplyAction(status models.CompanyStatus, action models.StatusAction) (models.CompanyStatus, error) {
	switch status {
	case models.CompanyStatusPending:
		switch action {
		case models.ActionApprove, models.ActionMarkReviewComplete:
			return models.CompanyStatusApproved, nil
		case models.ActionReject:
			return models.CompanyStatusSuspicious, nil
		case models.ActionFlagFraudulent:
			return models.CompanyStatusFraudulent, nil
		}
	case models.CompanyStatusApproved:
		switch action {
		case models.ActionFlagFraudulent:
			return models.CompanyStatusFraudulent, nil
		case models.ActionRevokeApproval:
			return models.CompanyStatusSuspicious, nil
		}
	}
	return status, ErrInvalidTransition
}

// Classify computes the post-run status from the risk score and run
// completeness. Applied inside SaveAnalysis and after fatal-run marking.
func Classify(status models.CompanyStatus, riskScore int, runComplete bool) models.CompanyStatus {
	switch {
	case riskScore >= fraudulentThreshold:
		return models.CompanyStatusFraudulent
	case !runComplete && status != models.CompanyStatusFraudulent:
		return models.CompanyStatusSuspicious
	case riskScore > autoApproveThreshold &&
		(status == models.CompanyStatusPending || status == models.CompanyStatusApproved):
		return models.CompanyStatusSuspicious
	case riskScore <= autoApproveThreshold && runComplete && status == models.CompanyStatusPending:
		return models.CompanyStatusApproved
	default:
		return status
	}
}
