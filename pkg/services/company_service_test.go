package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/pkg/models"
	testdb "github.com/trustlane/vetd/test/database"
)

func strPtr(s string) *string { return &s }

func createCompany(t *testing.T, svc *CompanyService, req models.CreateCompanyRequest) *ent.Company {
	t.Helper()
	c, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	return c
}

func TestCompanyService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	t.Run("creates company with pending statuses", func(t *testing.T) {
		c, err := service.Create(ctx, models.CreateCompanyRequest{
			Name:   "  NovaGeo  ",
			Domain: "NovaGeo.IO",
			Email:  strPtr("info@novageo.io"),
			Phone:  strPtr("+15551234567"),
		})
		require.NoError(t, err)

		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "NovaGeo", c.Name)
		assert.Equal(t, "novageo.io", c.Domain, "domain is lowercased")
		assert.Equal(t, company.StatusPending, c.Status)
		assert.Equal(t, company.AnalysisStatusPending, c.AnalysisStatus)
		assert.Equal(t, 0, c.RiskScore)
		assert.Nil(t, c.LastAnalyzedAt)
		require.NotNil(t, c.Email)
		assert.Equal(t, "info@novageo.io", *c.Email)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name    string
			req     models.CreateCompanyRequest
			wantErr string
		}{
			{
				name:    "missing name",
				req:     models.CreateCompanyRequest{Domain: "acme.com"},
				wantErr: "name",
			},
			{
				name:    "missing domain",
				req:     models.CreateCompanyRequest{Name: "Acme"},
				wantErr: "domain",
			},
			{
				name:    "whitespace name",
				req:     models.CreateCompanyRequest{Name: "   ", Domain: "acme.com"},
				wantErr: "name",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Create(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestCompanyService_GetAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	c := createCompany(t, service, models.CreateCompanyRequest{Name: "Acme", Domain: "acme.com"})

	t.Run("get returns the company", func(t *testing.T) {
		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := service.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("soft delete hides the company", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, c.ID))

		_, err := service.Get(ctx, c.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// Row still exists, flagged deleted
		raw, err := client.Company.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, raw.IsDeleted)

		// Second delete reports not found
		assert.ErrorIs(t, service.Delete(ctx, c.ID), ErrNotFound)
	})
}

func TestCompanyService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	t.Run("updates declared attributes before analysis", func(t *testing.T) {
		c := createCompany(t, service, models.CreateCompanyRequest{Name: "Acme", Domain: "acme.com"})

		updated, err := service.Update(ctx, c.ID, models.UpdateCompanyRequest{
			Name:   strPtr("Acme Industries"),
			Domain: strPtr("ACME-Industries.com"),
			Email:  strPtr("hello@acme-industries.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Industries", updated.Name)
		assert.Equal(t, "acme-industries.com", updated.Domain)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		c := createCompany(t, service, models.CreateCompanyRequest{Name: "Noop", Domain: "noop.com"})

		updated, err := service.Update(ctx, c.ID, models.UpdateCompanyRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Noop", updated.Name)
	})

	t.Run("rejected after analysis", func(t *testing.T) {
		c := createCompany(t, service, models.CreateCompanyRequest{Name: "Locked", Domain: "locked.com"})

		_, err := client.Company.UpdateOneID(c.ID).SetLastAnalyzedAt(time.Now()).Save(ctx)
		require.NoError(t, err)

		_, err = service.Update(ctx, c.ID, models.UpdateCompanyRequest{Name: strPtr("Changed")})
		assert.ErrorIs(t, err, ErrAnalysisLocked)
		assert.ErrorIs(t, err, ErrPreconditionFailed)

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Locked", got.Name, "rejected update must not mutate")
	})
}

func TestCompanyService_StepAndAnalysisStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	c := createCompany(t, service, models.CreateCompanyRequest{Name: "Stepper", Domain: "stepper.com"})

	t.Run("update step with status", func(t *testing.T) {
		status := models.AnalysisStatusInProgress
		require.NoError(t, service.UpdateStep(ctx, c.ID, models.StepWhois, &status))

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CurrentStep)
		assert.Equal(t, "whois", *got.CurrentStep)
		assert.Equal(t, company.AnalysisStatusInProgress, got.AnalysisStatus)
	})

	t.Run("complete stamps last_analyzed_at", func(t *testing.T) {
		step := string(models.StepComplete)
		require.NoError(t, service.UpdateAnalysisStatus(ctx, c.ID, models.AnalysisStatusComplete, &step))

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.AnalysisStatusComplete, got.AnalysisStatus)
		require.NotNil(t, got.CurrentStep)
		assert.Equal(t, "complete", *got.CurrentStep)
		assert.NotNil(t, got.LastAnalyzedAt)
	})

	t.Run("pending reset clears step", func(t *testing.T) {
		require.NoError(t, service.UpdateAnalysisStatus(ctx, c.ID, models.AnalysisStatusPending, nil))

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.AnalysisStatusPending, got.AnalysisStatus)
		assert.Nil(t, got.CurrentStep)
	})

	t.Run("unknown company", func(t *testing.T) {
		assert.ErrorIs(t, service.UpdateStep(ctx, "missing", models.StepWhois, nil), ErrNotFound)
	})
}

func TestCompanyService_MarkRunFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	t.Run("flags suspicious", func(t *testing.T) {
		c := createCompany(t, service, models.CreateCompanyRequest{Name: "Fatal", Domain: "fatal.com"})

		require.NoError(t, service.MarkRunFailed(ctx, c.ID))

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusSuspicious, got.Status)
		assert.Equal(t, company.AnalysisStatusComplete, got.AnalysisStatus)
		assert.Nil(t, got.CurrentStep)
	})

	t.Run("fraudulent stays fraudulent", func(t *testing.T) {
		c := createCompany(t, service, models.CreateCompanyRequest{Name: "Fraud", Domain: "fraud.com"})
		_, err := client.Company.UpdateOneID(c.ID).SetStatus(company.StatusFraudulent).Save(ctx)
		require.NoError(t, err)

		require.NoError(t, service.MarkRunFailed(ctx, c.ID))

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusFraudulent, got.Status)
	})
}

func TestCompanyService_ApplyStatusAction(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	t.Run("pending approve", func(t *testing.T) {
		c := createCompany(t, service, models.CreateCompanyRequest{Name: "A", Domain: "a.com"})

		updated, err := service.ApplyStatusAction(ctx, c.ID, models.ActionApprove)
		require.NoError(t, err)
		assert.Equal(t, company.StatusApproved, updated.Status)
	})

	t.Run("invalid transition leaves status untouched", func(t *testing.T) {
		c := createCompany(t, service, models.CreateCompanyRequest{Name: "B", Domain: "b.com"})

		_, err := service.ApplyStatusAction(ctx, c.ID, models.ActionRevokeApproval)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusPending, got.Status)
	})
}

func TestCompanyService_AutoApprove(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCompanyService(client.Client)
	ctx := context.Background()

	prep := func(t *testing.T, analysisStatus company.AnalysisStatus, risk int, status company.Status) *ent.Company {
		t.Helper()
		c := createCompany(t, service, models.CreateCompanyRequest{Name: t.Name(), Domain: "auto.com"})
		_, err := client.Company.UpdateOneID(c.ID).
			SetAnalysisStatus(analysisStatus).
			SetRiskScore(risk).
			SetStatus(status).
			Save(ctx)
		require.NoError(t, err)
		return c
	}

	t.Run("eligible company approved", func(t *testing.T) {
		c := prep(t, company.AnalysisStatusComplete, 30, company.StatusPending)

		updated, err := service.AutoApprove(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusApproved, updated.Status)
	})

	t.Run("incomplete analysis rejected", func(t *testing.T) {
		c := prep(t, company.AnalysisStatusPending, 0, company.StatusPending)

		_, err := service.AutoApprove(ctx, c.ID)
		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("risk above threshold rejected", func(t *testing.T) {
		c := prep(t, company.AnalysisStatusComplete, 31, company.StatusPending)

		_, err := service.AutoApprove(ctx, c.ID)
		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("already approved rejected", func(t *testing.T) {
		c := prep(t, company.AnalysisStatusComplete, 10, company.StatusApproved)

		_, err := service.AutoApprove(ctx, c.ID)
		assert.ErrorIs(t, err, ErrNotEligible)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})
}
