package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/pkg/models"
)

func TestApplyAction(t *testing.T) {
	allowed := []struct {
		from   models.CompanyStatus
		action models.StatusAction
		want   models.CompanyStatus
	}{
		{models.CompanyStatusPending, models.ActionApprove, models.CompanyStatusApproved},
		{models.CompanyStatusPending, models.ActionMarkReviewComplete, models.CompanyStatusApproved},
		{models.CompanyStatusPending, models.ActionReject, models.CompanyStatusSuspicious},
		{models.CompanyStatusPending, models.ActionFlagFraudulent, models.CompanyStatusFraudulent},
		{models.CompanyStatusApproved, models.ActionFlagFraudulent, models.CompanyStatusFraudulent},
		{models.CompanyStatusApproved, models.ActionRevokeApproval, models.CompanyStatusSuspicious},
	}

	for _, tt := range allowed {
		t.Run(string(tt.from)+"_"+string(tt.action), func(t *testing.T) {
			got, err := ApplyAction(tt.from, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("all undefined pairs rejected", func(t *testing.T) {
		isAllowed := func(from models.CompanyStatus, action models.StatusAction) bool {
			for _, tt := range allowed {
				if tt.from == from && tt.action == action {
					return true
				}
			}
			return false
		}

		statuses := []models.CompanyStatus{
			models.CompanyStatusPending,
			models.CompanyStatusApproved,
			models.CompanyStatusSuspicious,
			models.CompanyStatusFraudulent,
		}
		actions := []models.StatusAction{
			models.ActionApprove,
			models.ActionMarkReviewComplete,
			models.ActionReject,
			models.ActionFlagFraudulent,
			models.ActionRevokeApproval,
		}

		for _, status := range statuses {
			for _, action := range actions {
				if isAllowed(status, action) {
					continue
				}
				got, err := ApplyAction(status, action)
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s + %s", status, action)
				assert.ErrorIs(t, err, ErrPreconditionFailed)
				assert.Equal(t, status, got, "status must be unchanged on rejection")
			}
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		status      models.CompanyStatus
		risk        int
		runComplete bool
		want        models.CompanyStatus
	}{
		{
			name:        "high risk always fraudulent",
			status:      models.CompanyStatusApproved,
			risk:        70,
			runComplete: true,
			want:        models.CompanyStatusFraudulent,
		},
		{
			name:        "high risk fraudulent even when incomplete",
			status:      models.CompanyStatusPending,
			risk:        85,
			runComplete: false,
			want:        models.CompanyStatusFraudulent,
		},
		{
			name:        "incomplete run flags suspicious",
			status:      models.CompanyStatusPending,
			risk:        10,
			runComplete: false,
			want:        models.CompanyStatusSuspicious,
		},
		{
			name:        "incomplete run keeps fraudulent",
			status:      models.CompanyStatusFraudulent,
			risk:        10,
			runComplete: false,
			want:        models.CompanyStatusFraudulent,
		},
		{
			name:        "mid risk pending goes suspicious",
			status:      models.CompanyStatusPending,
			risk:        31,
			runComplete: true,
			want:        models.CompanyStatusSuspicious,
		},
		{
			name:        "mid risk approved goes suspicious",
			status:      models.CompanyStatusApproved,
			risk:        69,
			runComplete: true,
			want:        models.CompanyStatusSuspicious,
		},
		{
			name:        "mid risk suspicious unchanged",
			status:      models.CompanyStatusSuspicious,
			risk:        50,
			runComplete: true,
			want:        models.CompanyStatusSuspicious,
		},
		{
			name:        "low risk complete pending approved",
			status:      models.CompanyStatusPending,
			risk:        30,
			runComplete: true,
			want:        models.CompanyStatusApproved,
		},
		{
			name:        "low risk suspicious unchanged",
			status:      models.CompanyStatusSuspicious,
			risk:        0,
			runComplete: true,
			want:        models.CompanyStatusSuspicious,
		},
		{
			name:        "low risk approved unchanged",
			status:      models.CompanyStatusApproved,
			risk:        20,
			runComplete: true,
			want:        models.CompanyStatusApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.status, tt.risk, tt.runComplete))
		})
	}
}
