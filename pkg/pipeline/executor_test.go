package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/llm"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/ratelimit"
	"github.com/trustlane/vetd/pkg/services"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

type fakeCompanies struct {
	company *ent.Company
	getErr  error
	steps   []string
}

func (f *fakeCompanies) Get(_ context.Context, id string) (*ent.Company, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.company, nil
}

func (f *fakeCompanies) UpdateStep(_ context.Context, _ string, step models.Step, status *models.AnalysisStatus) error {
	tag := string(step)
	if status != nil {
		tag = fmt.Sprintf("%s:%s", step, *status)
	}
	f.steps = append(f.steps, tag)
	return nil
}

type fakeAnalyses struct {
	latest    *ent.CompanyAnalysis
	latestErr error
	saved     []services.SaveAnalysisInput
	saveErr   error
}

func (f *fakeAnalyses) Latest(_ context.Context, _ string) (*ent.CompanyAnalysis, error) {
	return f.latest, f.latestErr
}

func (f *fakeAnalyses) Save(_ context.Context, input services.SaveAnalysisInput) (*ent.CompanyAnalysis, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = append(f.saved, input)
	return &ent.CompanyAnalysis{Version: len(f.saved), RiskScore: input.RiskScore, IsComplete: input.IsComplete}, nil
}

type fakeWhois struct {
	result *models.WhoisResult
	calls  int
}

func (f *fakeWhois) Check(_ context.Context, _ string) *models.WhoisResult {
	f.calls++
	return f.result
}

type fakeDNS struct {
	result *models.DNSResult
	calls  int
}

func (f *fakeDNS) Check(_ context.Context, _ string) *models.DNSResult {
	f.calls++
	return f.result
}

type fakeMX struct {
	result *models.MXResult
	calls  int
}

func (f *fakeMX) Check(_ context.Context, _, _ string) *models.MXResult {
	f.calls++
	return f.result
}

type fakeWebsite struct {
	result  *models.WebsiteResult
	calls   int
	lastURL string
}

func (f *fakeWebsite) Check(_ context.Context, rawURL string) *models.WebsiteResult {
	f.calls++
	f.lastURL = rawURL
	return f.result
}

type fakePhone struct {
	result *models.PhoneResult
	calls  int
}

func (f *fakePhone) Check(_ context.Context, _ string) *models.PhoneResult {
	f.calls++
	return f.result
}

type fakeAssessor struct {
	assessment *llm.Assessment
	err        error
	calls      int
	ruleScore  int
}

func (f *fakeAssessor) Assess(_ context.Context, _ models.SubmittedData, _ models.DiscoveredData, _ []models.Signal, ruleScore int) (*llm.Assessment, error) {
	f.calls++
	f.ruleScore = ruleScore
	if f.err != nil {
		return nil, f.err
	}
	return f.assessment, nil
}

type fixture struct {
	companies *fakeCompanies
	analyses  *fakeAnalyses
	whois     *fakeWhois
	dns       *fakeDNS
	mx        *fakeMX
	website   *fakeWebsite
	phone     *fakePhone
	assessor  *fakeAssessor
}

func healthyCompany() *ent.Company {
	return &ent.Company{
		ID:     "c-1",
		Name:   "Acme",
		Domain: "acme.com",
		Email:  strPtr("info@acme.com"),
		Phone:  strPtr("+14155552671"),
	}
}

func healthyFixture() *fixture {
	return &fixture{
		companies: &fakeCompanies{company: healthyCompany()},
		analyses:  &fakeAnalyses{},
		whois: &fakeWhois{result: &models.WhoisResult{
			Status:        models.CheckSuccess,
			DomainAgeDays: intPtr(4000),
			Registrar:     strPtr("Example Registrar"),
		}},
		dns: &fakeDNS{result: &models.DNSResult{
			Status:   models.CheckSuccess,
			Resolves: true,
			ARecords: []string{"93.184.216.34"},
		}},
		mx: &fakeMX{result: &models.MXResult{
			Status:          models.CheckSuccess,
			HasMXRecords:    true,
			MXRecords:       []string{"10 mail.acme.com"},
			EmailConfigured: true,
		}},
		website: &fakeWebsite{result: &models.WebsiteResult{
			Status:     models.CheckSuccess,
			Reachable:  true,
			StatusCode: intPtr(200),
		}},
		phone: &fakePhone{result: &models.PhoneResult{
			Status:     models.CheckSuccess,
			Valid:      true,
			Normalized: strPtr("+14155552671"),
			Region:     strPtr("US"),
		}},
	}
}

func newExecutor(f *fixture) *Executor {
	// High rates so rate limiting never delays tests
	limiters := ratelimit.NewRegistry(map[string]float64{
		"whois": 1000, "dns": 1000, "http": 1000, "llm": 1000,
	})
	var assessor Assessor
	if f.assessor != nil {
		assessor = f.assessor
	}
	return NewExecutor(
		f.companies, f.analyses,
		f.whois, f.dns, f.mx, f.website, f.phone,
		assessor, limiters,
		config.DefaultSignalWeights(), config.DefaultPipelineConfig(),
	)
}

func fullJob(companyID string) *models.JobMessage {
	return &models.JobMessage{
		CompanyID:     companyID,
		RetryMode:     models.RetryFull,
		CorrelationID: "corr-1",
	}
}

func TestExecuteFullRunAllChecksPass(t *testing.T) {
	f := healthyFixture()
	err := newExecutor(f).Execute(context.Background(), fullJob("c-1"))
	require.NoError(t, err)

	require.Len(t, f.analyses.saved, 1)
	saved := f.analyses.saved[0]
	assert.True(t, saved.IsComplete)
	assert.Equal(t, 0, saved.RiskScore)
	assert.Empty(t, saved.FailedChecks)
	assert.Equal(t, "1.0.0", saved.AlgorithmVersion)
	assert.Equal(t, "acme.com", saved.SubmittedData.Domain)

	for _, key := range []string{"whois", "dns", "mx", "website", "phone"} {
		assert.Contains(t, saved.DiscoveredData, key)
	}

	// Every probe ran exactly once
	assert.Equal(t, 1, f.whois.calls)
	assert.Equal(t, 1, f.dns.calls)
	assert.Equal(t, 1, f.mx.calls)
	assert.Equal(t, 1, f.website.calls)
	assert.Equal(t, 1, f.phone.calls)

	// The run starts at whois/in_progress and advances after every stage
	assert.Equal(t, []string{
		"whois:in_progress",
		"dns", "mx_validation", "website_scrape", "phone", "llm_processing",
	}, f.companies.steps)
}

func TestExecuteWebsiteURLFallsBackToDomain(t *testing.T) {
	f := healthyFixture()
	require.NoError(t, newExecutor(f).Execute(context.Background(), fullJob("c-1")))
	assert.Equal(t, "https://acme.com", f.website.lastURL)

	f = healthyFixture()
	f.companies.company.WebsiteURL = strPtr("https://www.acme.com/about")
	require.NoError(t, newExecutor(f).Execute(context.Background(), fullJob("c-1")))
	assert.Equal(t, "https://www.acme.com/about", f.website.lastURL)
}

func TestExecuteCapturesStageFailures(t *testing.T) {
	f := healthyFixture()
	f.whois.result = &models.WhoisResult{Status: models.CheckFailed, Error: "whois timed out"}
	f.website.result = &models.WebsiteResult{Status: models.CheckFailed, Error: "connection refused"}

	err := newExecutor(f).Execute(context.Background(), fullJob("c-1"))
	require.NoError(t, err, "stage failures are captured, not returned")

	require.Len(t, f.analyses.saved, 1)
	saved := f.analyses.saved[0]
	assert.False(t, saved.IsComplete)
	assert.Equal(t, []string{"website_scrape", "whois"}, saved.FailedChecks, "sorted")
	assert.Equal(t, map[string]any{"error": "whois timed out"}, saved.DiscoveredData["whois"])
	assert.Equal(t, map[string]any{"error": "connection refused"}, saved.DiscoveredData["website"])

	// domain_age 20 + website 25; dns, mx, phone stay healthy
	assert.Equal(t, 45, saved.RiskScore)
}

func TestExecuteSkipsPhoneWithoutNumber(t *testing.T) {
	f := healthyFixture()
	f.companies.company.Phone = nil

	err := newExecutor(f).Execute(context.Background(), fullJob("c-1"))
	require.NoError(t, err)

	assert.Equal(t, 0, f.phone.calls)
	require.Len(t, f.analyses.saved, 1)
	saved := f.analyses.saved[0]
	assert.True(t, saved.IsComplete, "four successful checks clear the completeness bar")
	assert.NotContains(t, saved.DiscoveredData, "phone")

	// current_step still advances through the phone slot
	assert.Contains(t, f.companies.steps, "phone")
	assert.Contains(t, f.companies.steps, "llm_processing")
}

func TestExecuteMissingCompanyIsFatal(t *testing.T) {
	f := healthyFixture()
	f.companies.getErr = services.ErrNotFound

	err := newExecutor(f).Execute(context.Background(), fullJob("ghost"))
	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Empty(t, f.analyses.saved)
}

func TestExecuteSaveFailureIsRetriable(t *testing.T) {
	f := healthyFixture()
	f.analyses.saveErr = errors.New("connection reset")

	err := newExecutor(f).Execute(context.Background(), fullJob("c-1"))
	require.Error(t, err)
	assert.False(t, IsFatal(err))
}

func previousAnalysis(failed ...string) *ent.CompanyAnalysis {
	discovered := models.DiscoveredData{
		"whois": {
			"domain_age_days": float64(4000),
			"registrar":       "Example Registrar",
			"privacy_enabled": false,
			"creation_date":   nil,
		},
		"dns": {
			"resolves":    true,
			"nameservers": []any{"ns1.acme.com"},
			"a_records":   []any{"93.184.216.34"},
		},
		"mx": {
			"has_mx_records":   true,
			"mx_records":       []any{"10 mail.acme.com"},
			"email_configured": true,
		},
		"website": {
			"reachable":      true,
			"status_code":    float64(200),
			"title":          "Acme",
			"description":    nil,
			"content_length": float64(1024),
		},
	}
	for _, check := range failed {
		key := models.Step(check).DataKey()
		discovered[key] = map[string]any{"error": "previous failure"}
	}
	return &ent.CompanyAnalysis{
		Version:        1,
		DiscoveredData: discovered,
		FailedChecks:   failed,
	}
}

func TestExecuteSelectiveRetryRunsOnlyFailedChecks(t *testing.T) {
	f := healthyFixture()
	f.analyses.latest = previousAnalysis("phone")

	job := &models.JobMessage{
		CompanyID:     "c-1",
		RetryMode:     models.RetryFailedOnly,
		FailedChecks:  []models.Step{models.StepPhone},
		CorrelationID: "corr-2",
	}
	err := newExecutor(f).Execute(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, 0, f.whois.calls)
	assert.Equal(t, 0, f.dns.calls)
	assert.Equal(t, 0, f.mx.calls)
	assert.Equal(t, 0, f.website.calls)
	assert.Equal(t, 1, f.phone.calls)

	require.Len(t, f.analyses.saved, 1)
	saved := f.analyses.saved[0]
	assert.True(t, saved.IsComplete)
	assert.Empty(t, saved.FailedChecks, "retried phone now passes")
	assert.Equal(t, 0, saved.RiskScore)

	// Seeded payloads survive alongside the fresh phone result
	assert.Equal(t, true, saved.DiscoveredData["dns"]["resolves"])
	assert.Equal(t, "+14155552671", saved.DiscoveredData["phone"]["normalized"])
}

func TestExecuteSelectiveRetryKeepsStillFailingCheck(t *testing.T) {
	f := healthyFixture()
	f.analyses.latest = previousAnalysis("phone")
	f.phone.result = &models.PhoneResult{Status: models.CheckFailed, Error: "still invalid"}

	job := &models.JobMessage{
		CompanyID:    "c-1",
		RetryMode:    models.RetryFailedOnly,
		FailedChecks: []models.Step{models.StepPhone},
	}
	require.NoError(t, newExecutor(f).Execute(context.Background(), job))

	saved := f.analyses.saved[0]
	assert.False(t, saved.IsComplete)
	assert.Equal(t, []string{"phone"}, saved.FailedChecks)
}

func TestExecuteSelectiveRetryWithoutFailedChecksReusesResults(t *testing.T) {
	f := healthyFixture()
	f.analyses.latest = previousAnalysis()

	job := &models.JobMessage{
		CompanyID: "c-1",
		RetryMode: models.RetryFailedOnly,
	}
	err := newExecutor(f).Execute(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, 0, f.whois.calls)
	assert.Equal(t, 0, f.dns.calls)
	assert.Equal(t, 0, f.mx.calls)
	assert.Equal(t, 0, f.website.calls)
	assert.Equal(t, 0, f.phone.calls)

	saved := f.analyses.saved[0]
	assert.True(t, saved.IsComplete, "four seeded successes, no failures")
	assert.Empty(t, saved.FailedChecks)
}

func TestExecuteSelectiveRetryWithoutHistoryIsIncomplete(t *testing.T) {
	f := healthyFixture()
	f.analyses.latest = nil

	job := &models.JobMessage{
		CompanyID: "c-1",
		RetryMode: models.RetryFailedOnly,
	}
	require.NoError(t, newExecutor(f).Execute(context.Background(), job))

	saved := f.analyses.saved[0]
	assert.False(t, saved.IsComplete, "no seeded successes and nothing ran")
	assert.Empty(t, saved.FailedChecks)
}

func TestExecuteLLMAdjustsScore(t *testing.T) {
	f := healthyFixture()
	f.whois.result = &models.WhoisResult{Status: models.CheckFailed, Error: "whois timed out"}
	f.assessor = &fakeAssessor{assessment: &llm.Assessment{
		Summary:         "Moderate risk.",
		Details:         "WHOIS data unavailable.",
		ScoreAdjustment: 10,
	}}

	err := newExecutor(f).Execute(context.Background(), fullJob("c-1"))
	require.NoError(t, err)

	assert.Equal(t, 1, f.assessor.calls)
	assert.Equal(t, 20, f.assessor.ruleScore, "adjuster sees the rule score")

	saved := f.analyses.saved[0]
	assert.Equal(t, 30, saved.RiskScore, "rule 20 + adjustment 10")
	require.NotNil(t, saved.LLMSummary)
	assert.Equal(t, "Moderate risk.", *saved.LLMSummary)
	require.NotNil(t, saved.LLMDetails)
	assert.False(t, saved.IsComplete, "whois failed")
}

func TestExecuteLLMFailureMarksIncomplete(t *testing.T) {
	f := healthyFixture()
	f.assessor = &fakeAssessor{err: errors.New("rate limited")}

	err := newExecutor(f).Execute(context.Background(), fullJob("c-1"))
	require.NoError(t, err, "LLM failure is captured, not returned")

	saved := f.analyses.saved[0]
	assert.False(t, saved.IsComplete)
	assert.Equal(t, []string{"llm_processing"}, saved.FailedChecks)
	assert.Nil(t, saved.LLMSummary)
	assert.Equal(t, 0, saved.RiskScore, "falls back to the rule score")
}

func TestExecuteSelectiveRetryIsIdempotent(t *testing.T) {
	// Retrying an all-green analysis with the same failed_only job twice
	// produces identical snapshots without touching the probes.
	f := healthyFixture()
	f.analyses.latest = previousAnalysis()

	job := &models.JobMessage{CompanyID: "c-1", RetryMode: models.RetryFailedOnly}
	require.NoError(t, newExecutor(f).Execute(context.Background(), job))
	f.analyses.latest = previousAnalysis()
	require.NoError(t, newExecutor(f).Execute(context.Background(), job))

	require.Len(t, f.analyses.saved, 2)
	assert.Equal(t, f.analyses.saved[0].DiscoveredData, f.analyses.saved[1].DiscoveredData)
	assert.Equal(t, f.analyses.saved[0].RiskScore, f.analyses.saved[1].RiskScore)
	assert.Equal(t, 0, f.whois.calls+f.dns.calls+f.mx.calls+f.website.calls+f.phone.calls)
}
