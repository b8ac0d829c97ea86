package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/pkg/models"
	testdb "github.com/trustlane/vetd/test/database"
)

func saveInput(companyID string, risk int, complete bool) SaveAnalysisInput {
	return SaveAnalysisInput{
		CompanyID:        companyID,
		AlgorithmVersion: "1.0.0",
		SubmittedData:    models.SubmittedData{Name: "Acme", Domain: "acme.com"},
		DiscoveredData:   models.DiscoveredData{"dns": {"resolves": true}},
		Signals: []models.Signal{
			{Field: "dns_resolution", Status: models.SignalOK, Value: "Resolves to 1 IP(s)", Severity: models.SeverityLow},
		},
		RiskScore:    risk,
		IsComplete:   complete,
		FailedChecks: []string{},
	}
}

func TestAnalysisService_Save(t *testing.T) {
	client := testdb.NewTestClient(t)
	companies := NewCompanyService(client.Client)
	analyses := NewAnalysisService(client.Client)
	ctx := context.Background()

	t.Run("first save assigns version 1 and classifies", func(t *testing.T) {
		c := createCompany(t, companies, models.CreateCompanyRequest{Name: "Acme", Domain: "acme.com"})

		a, err := analyses.Save(ctx, saveInput(c.ID, 0, true))
		require.NoError(t, err)
		assert.Equal(t, 1, a.Version)
		assert.Equal(t, 0, a.RiskScore)
		assert.True(t, a.IsComplete)

		got, err := companies.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusApproved, got.Status, "low-risk complete run auto-approves")
		assert.Equal(t, company.AnalysisStatusComplete, got.AnalysisStatus)
		require.NotNil(t, got.CurrentStep)
		assert.Equal(t, "complete", *got.CurrentStep)
		assert.NotNil(t, got.LastAnalyzedAt)
		assert.Equal(t, 0, got.RiskScore)
	})

	t.Run("versions increase monotonically", func(t *testing.T) {
		c := createCompany(t, companies, models.CreateCompanyRequest{Name: "Versioned", Domain: "versioned.com"})

		for want := 1; want <= 3; want++ {
			a, err := analyses.Save(ctx, saveInput(c.ID, 10, true))
			require.NoError(t, err)
			assert.Equal(t, want, a.Version)
		}
	})

	t.Run("failed checks persisted sorted", func(t *testing.T) {
		c := createCompany(t, companies, models.CreateCompanyRequest{Name: "Sorted", Domain: "sorted.com"})

		input := saveInput(c.ID, 50, false)
		input.FailedChecks = []string{"website_scrape", "dns", "whois"}

		a, err := analyses.Save(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, []string{"dns", "website_scrape", "whois"}, a.FailedChecks)

		got, err := companies.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusSuspicious, got.Status, "incomplete run flags suspicious")
	})

	t.Run("high risk flags fraudulent", func(t *testing.T) {
		c := createCompany(t, companies, models.CreateCompanyRequest{Name: "Risky", Domain: "risky.com"})

		_, err := analyses.Save(ctx, saveInput(c.ID, 80, true))
		require.NoError(t, err)

		got, err := companies.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.StatusFraudulent, got.Status)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := analyses.Save(ctx, saveInput("missing", 0, true))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("llm fields persisted", func(t *testing.T) {
		c := createCompany(t, companies, models.CreateCompanyRequest{Name: "Narrated", Domain: "narrated.com"})

		summary := "Low risk overall."
		details := "Consistent records across all probes."
		input := saveInput(c.ID, 5, true)
		input.LLMSummary = &summary
		input.LLMDetails = &details

		a, err := analyses.Save(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, a.LlmSummary)
		assert.Equal(t, summary, *a.LlmSummary)
		require.NotNil(t, a.LlmDetails)
		assert.Equal(t, details, *a.LlmDetails)
	})
}

func TestAnalysisService_SaveConcurrent(t *testing.T) {
	client := testdb.NewTestClient(t)
	companies := NewCompanyService(client.Client)
	analyses := NewAnalysisService(client.Client)
	ctx := context.Background()

	c := createCompany(t, companies, models.CreateCompanyRequest{Name: "Parallel", Domain: "parallel.com"})

	// The row lock serializes concurrent saves; every version is unique
	const runs = 5
	var wg sync.WaitGroup
	errs := make([]error, runs)
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = analyses.Save(ctx, saveInput(c.ID, 10, true))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "save %d", i)
	}

	list, err := analyses.List(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, runs)

	seen := map[int]bool{}
	for _, a := range list {
		assert.False(t, seen[a.Version], "duplicate version %d", a.Version)
		seen[a.Version] = true
	}
	assert.Equal(t, runs, list[0].Version, "list is newest-first")
}

func TestAnalysisService_LatestAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	companies := NewCompanyService(client.Client)
	analyses := NewAnalysisService(client.Client)
	ctx := context.Background()

	c := createCompany(t, companies, models.CreateCompanyRequest{Name: "History", Domain: "history.com"})

	t.Run("latest is nil when no analyses", func(t *testing.T) {
		got, err := analyses.Latest(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("latest returns newest", func(t *testing.T) {
		_, err := analyses.Save(ctx, saveInput(c.ID, 10, true))
		require.NoError(t, err)
		second, err := analyses.Save(ctx, saveInput(c.ID, 20, true))
		require.NoError(t, err)

		got, err := analyses.Latest(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, second.ID, got.ID)
		assert.Equal(t, 2, got.Version)
	})
}
