// Package pipeline drives one verification job through the probe stages,
// signal generation, scoring, the optional LLM adjustment, and the final
// transactional save.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/llm"
	"github.com/trustlane/vetd/pkg/metrics"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/ratelimit"
	"github.com/trustlane/vetd/pkg/scoring"
	"github.com/trustlane/vetd/pkg/services"
)

// minSuccessfulChecks is how many probe stages must succeed before a run
// without failures counts as complete.
const minSuccessfulChecks = 3

// WhoisProber looks up domain registration data.
type WhoisProber interface {
	Check(ctx context.Context, domain string) *models.WhoisResult
}

// DNSProber resolves A and NS records for a domain.
type DNSProber interface {
	Check(ctx context.Context, domain string) *models.DNSResult
}

// MXProber queries mail-exchanger records for the company's email domain.
type MXProber interface {
	Check(ctx context.Context, domain, email string) *models.MXResult
}

// WebsiteProber fetches the company homepage.
type WebsiteProber interface {
	Check(ctx context.Context, rawURL string) *models.WebsiteResult
}

// PhoneProber parses and validates the submitted phone number.
type PhoneProber interface {
	Check(ctx context.Context, raw string) *models.PhoneResult
}

// Assessor produces the qualitative LLM risk adjustment. A nil Assessor on
// the Executor disables the LLM stage entirely.
type Assessor interface {
	Assess(ctx context.Context, submitted models.SubmittedData, discovered models.DiscoveredData, signals []models.Signal, ruleScore int) (*llm.Assessment, error)
}

// CompanyStore is the subset of the company service the executor needs.
type CompanyStore interface {
	Get(ctx context.Context, id string) (*ent.Company, error)
	UpdateStep(ctx context.Context, id string, step models.Step, status *models.AnalysisStatus) error
}

// AnalysisStore is the subset of the analysis service the executor needs.
type AnalysisStore interface {
	Latest(ctx context.Context, companyID string) (*ent.CompanyAnalysis, error)
	Save(ctx context.Context, input services.SaveAnalysisInput) (*ent.CompanyAnalysis, error)
}

// Executor runs verification jobs. One instance is shared by all queue
// workers; the probe clients and rate limiters are safe for concurrent use.
type Executor struct {
	companies CompanyStore
	analyses  AnalysisStore
	whois     WhoisProber
	dns       DNSProber
	mx        MXProber
	website   WebsiteProber
	phone     PhoneProber
	adjuster  Assessor
	limiters  *ratelimit.Registry
	signals   *scoring.Generator
	cfg       *config.PipelineConfig
	warnings  *services.SystemWarningsService
}

// NewExecutor wires the executor from its collaborators. adjuster must be
// nil (not a typed nil wrapped in the interface) when the LLM is disabled.
func NewExecutor(
	companies CompanyStore,
	analyses AnalysisStore,
	whois WhoisProber,
	dns DNSProber,
	mx MXProber,
	website WebsiteProber,
	phone PhoneProber,
	adjuster Assessor,
	limiters *ratelimit.Registry,
	weights *config.SignalWeights,
	cfg *config.PipelineConfig,
) *Executor {
	return &Executor{
		companies: companies,
		analyses:  analyses,
		whois:     whois,
		dns:       dns,
		mx:        mx,
		website:   website,
		phone:     phone,
		adjuster:  adjuster,
		limiters:  limiters,
		signals:   scoring.NewGenerator(weights),
		cfg:       cfg,
	}
}

// SetWarnings attaches the warnings sink surfaced on the health endpoint.
// Optional; a nil sink disables warning reporting.
func (e *Executor) SetWarnings(warnings *services.SystemWarningsService) {
	e.warnings = warnings
}

// runState tracks the per-job check bookkeeping: the discovered payloads and
// which stages have succeeded or failed so far (including seeded history on
// a selective retry).
type runState struct {
	discovered models.DiscoveredData
	successful map[models.Step]bool
	failed     map[models.Step]bool

	whoisResult   *models.WhoisResult
	dnsResult     *models.DNSResult
	mxResult      *models.MXResult
	websiteResult *models.WebsiteResult
	phoneResult   *models.PhoneResult
}

// Execute runs one verification job end to end. Stage failures are captured
// in the analysis record, never returned. A returned error means the run
// could not be persisted and the job should be redelivered; a fatal error
// (IsFatal) means the job is unprocessable and must not be retried.
func (e *Executor) Execute(ctx context.Context, job *models.JobMessage) error {
	start := time.Now()
	log := slog.With(
		"company_id", job.CompanyID,
		"correlation_id", job.CorrelationID,
		"retry_mode", job.RetryMode,
	)
	log.InfoContext(ctx, "Processing company")

	company, err := e.companies.Get(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return Fatal(fmt.Errorf("company %s: %w", job.CompanyID, err))
		}
		return fmt.Errorf("fetching company: %w", err)
	}

	inProgress := models.AnalysisStatusInProgress
	if err := e.companies.UpdateStep(ctx, company.ID, models.StepWhois, &inProgress); err != nil {
		return fmt.Errorf("marking run in progress: %w", err)
	}

	submitted := models.SubmittedData{
		Name:       company.Name,
		Domain:     company.Domain,
		WebsiteURL: company.WebsiteURL,
		Email:      company.Email,
		Phone:      company.Phone,
	}

	run, prevFailed, err := e.seedRunState(ctx, job)
	if err != nil {
		return err
	}

	scheduled := e.checksToRun(job, log)

	for _, step := range models.ProbeSteps() {
		if scheduled[step] && (step != models.StepPhone || company.Phone != nil) {
			e.runStage(ctx, step, company, run, log)
		} else {
			hydrateStage(step, company, run, prevFailed)
		}
		if err := e.companies.UpdateStep(ctx, company.ID, step.Next(), nil); err != nil {
			return fmt.Errorf("advancing step after %s: %w", step, err)
		}
	}

	signals := e.signals.Generate(submitted, run.whoisResult, run.dnsResult, run.websiteResult, run.mxResult, run.phoneResult)
	ruleScore := scoring.RuleScore(signals)
	log.InfoContext(ctx, "Rule score computed", "rule_score", ruleScore, "signals", len(signals))

	var llmSummary, llmDetails *string
	adjustment := 0
	llmAttempted := false
	llmSucceeded := false
	if e.adjuster != nil {
		llmAttempted = true
		assessment, err := e.adjuster.Assess(ctx, submitted, run.discovered, signals, ruleScore)
		if err != nil {
			log.ErrorContext(ctx, "LLM assessment failed", "error", err)
			run.failed[models.StepLLMProcessing] = true
			metrics.RecordIntegration(string(models.StepLLMProcessing), false, "llm_error")
			if e.warnings != nil {
				e.warnings.AddWarning(services.WarningCategoryLLM,
					"LLM risk adjustment failed", err.Error(), "llm")
			}
		} else {
			llmSucceeded = true
			if e.warnings != nil {
				e.warnings.ClearBySource(services.WarningCategoryLLM, "llm")
			}
			llmSummary = &assessment.Summary
			llmDetails = &assessment.Details
			adjustment = assessment.ScoreAdjustment
			log.InfoContext(ctx, "LLM assessment complete", "adjustment", adjustment)
		}
	}

	finalScore := ruleScore
	if llmAttempted {
		finalScore = scoring.HybridScore(ruleScore, adjustment)
	}

	isComplete := len(run.successful) >= minSuccessfulChecks &&
		len(run.failed) == 0 &&
		(!llmAttempted || llmSucceeded)

	failedChecks := make([]string, 0, len(run.failed))
	for step := range run.failed {
		failedChecks = append(failedChecks, string(step))
	}
	sort.Strings(failedChecks)

	analysis, err := e.analyses.Save(ctx, services.SaveAnalysisInput{
		CompanyID:        company.ID,
		AlgorithmVersion: e.cfg.AlgorithmVersion,
		SubmittedData:    submitted,
		DiscoveredData:   run.discovered,
		Signals:          signals,
		RiskScore:        finalScore,
		LLMSummary:       llmSummary,
		LLMDetails:       llmDetails,
		IsComplete:       isComplete,
		FailedChecks:     failedChecks,
	})
	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}

	elapsed := time.Since(start).Seconds()
	switch {
	case isComplete:
		metrics.AnalysisSuccess.Inc()
		metrics.AnalysisDuration.Observe(elapsed)
	case len(run.failed) > 0:
		metrics.AnalysisIncomplete.Inc()
		metrics.FailedChecksCount.Add(float64(len(run.failed)))
	default:
		metrics.AnalysisFailure.WithLabelValues("unknown").Inc()
	}
	metrics.WorkerExecutionDuration.Observe(elapsed)

	log.InfoContext(ctx, "Analysis saved",
		"version", analysis.Version,
		"rule_score", ruleScore,
		"llm_adjustment", adjustment,
		"final_score", finalScore,
		"is_complete", isComplete,
		"failed_checks", failedChecks,
		"duration_seconds", elapsed,
	)
	return nil
}

// seedRunState prepares the check bookkeeping. On a selective retry it
// copies the previous analysis's discovered data and reconstructs the
// success and failure sets from it, so unscheduled stages keep their old
// outcome.
func (e *Executor) seedRunState(ctx context.Context, job *models.JobMessage) (*runState, map[models.Step]bool, error) {
	run := &runState{
		discovered: models.DiscoveredData{},
		successful: map[models.Step]bool{},
		failed:     map[models.Step]bool{},
	}
	prevFailed := map[models.Step]bool{}

	if job.RetryMode == models.RetryFailedOnly {
		prev, err := e.analyses.Latest(ctx, job.CompanyID)
		if err != nil {
			return nil, nil, fmt.Errorf("loading previous analysis: %w", err)
		}
		if prev != nil {
			run.discovered = prev.DiscoveredData.Clone()
			for _, check := range prev.FailedChecks {
				prevFailed[models.Step(check)] = true
			}
		}
	}

	for _, step := range models.ProbeSteps() {
		switch {
		case prevFailed[step]:
			run.failed[step] = true
		case run.discovered.Stage(step.DataKey()) != nil:
			run.successful[step] = true
		}
	}

	return run, prevFailed, nil
}

// checksToRun selects the probe stages this job executes.
func (e *Executor) checksToRun(job *models.JobMessage, log *slog.Logger) map[models.Step]bool {
	scheduled := map[models.Step]bool{}
	if job.RetryMode == models.RetryFailedOnly {
		if len(job.FailedChecks) == 0 {
			log.Info("Selective retry requested without failed checks, reusing previous results")
			return scheduled
		}
		for _, step := range job.FailedChecks {
			scheduled[step] = true
		}
		return scheduled
	}
	for _, step := range models.ProbeSteps() {
		scheduled[step] = true
	}
	return scheduled
}

// runStage executes one scheduled probe: rate token, stage timeout, probe
// call, then discovered-data and set updates. Failures are recorded, never
// returned.
func (e *Executor) runStage(ctx context.Context, step models.Step, company *ent.Company, run *runState, log *slog.Logger) {
	delete(run.successful, step)
	delete(run.failed, step)

	key := step.DataKey()
	var succeeded bool
	var errMsg string

	switch step {
	case models.StepWhois:
		e.limiters.Acquire(ctx, "whois", -1)
		log.InfoContext(ctx, "Executing WHOIS lookup", "domain", company.Domain)
		stageCtx, cancel := context.WithTimeout(ctx, e.cfg.WhoisTimeout)
		result := e.whois.Check(stageCtx, company.Domain)
		cancel()
		run.whoisResult = result
		if result.Succeeded() {
			run.discovered.SetSuccess(key, result.Payload())
			succeeded = true
		} else {
			errMsg = result.Error
		}

	case models.StepDNS:
		e.limiters.Acquire(ctx, "dns", -1)
		log.InfoContext(ctx, "Executing DNS resolution", "domain", company.Domain)
		stageCtx, cancel := context.WithTimeout(ctx, e.cfg.DNSTimeout)
		result := e.dns.Check(stageCtx, company.Domain)
		cancel()
		run.dnsResult = result
		if result.Succeeded() {
			run.discovered.SetSuccess(key, result.Payload())
			succeeded = true
		} else {
			errMsg = result.Error
		}

	case models.StepMXValidation:
		email := ""
		if company.Email != nil {
			email = *company.Email
		}
		log.InfoContext(ctx, "Executing MX validation", "domain", company.Domain)
		stageCtx, cancel := context.WithTimeout(ctx, e.cfg.MXTimeout)
		result := e.mx.Check(stageCtx, company.Domain, email)
		cancel()
		run.mxResult = result
		if result.Succeeded() {
			run.discovered.SetSuccess(key, result.Payload())
			succeeded = true
		} else {
			errMsg = result.Error
		}

	case models.StepWebsiteScrape:
		e.limiters.Acquire(ctx, "http", -1)
		targetURL := "https://" + company.Domain
		if company.WebsiteURL != nil && *company.WebsiteURL != "" {
			targetURL = *company.WebsiteURL
		}
		log.InfoContext(ctx, "Executing website scrape", "url", targetURL)
		stageCtx, cancel := context.WithTimeout(ctx, e.cfg.WebsiteTimeout)
		result := e.website.Check(stageCtx, targetURL)
		cancel()
		run.websiteResult = result
		if result.Succeeded() {
			run.discovered.SetSuccess(key, result.Payload())
			succeeded = true
		} else {
			errMsg = result.Error
		}

	case models.StepPhone:
		log.InfoContext(ctx, "Executing phone validation")
		result := e.phone.Check(ctx, *company.Phone)
		run.phoneResult = result
		if result.Succeeded() {
			run.discovered.SetSuccess(key, result.Payload())
			succeeded = true
		} else {
			errMsg = result.Error
		}
	}

	if succeeded {
		run.successful[step] = true
		metrics.RecordIntegration(string(step), true, "")
		return
	}

	log.WarnContext(ctx, "Check failed", "integration", string(step), "error", errMsg)
	run.failed[step] = true
	run.discovered.SetError(key, errMsg)
	metrics.RecordIntegration(string(step), false, "check_failed")
}

// hydrateStage rebuilds the typed result for an unscheduled stage from the
// seeded discovered data. The set membership is already seeded; the typed
// result is what signal generation consumes. Phone history only counts when
// the company still has a phone on file.
func hydrateStage(step models.Step, company *ent.Company, run *runState, prevFailed map[models.Step]bool) {
	switch step {
	case models.StepWhois:
		run.whoisResult = models.HydrateWhois(run.discovered)
	case models.StepDNS:
		run.dnsResult = models.HydrateDNS(run.discovered)
	case models.StepMXValidation:
		run.mxResult = models.HydrateMX(run.discovered)
	case models.StepWebsiteScrape:
		run.websiteResult = models.HydrateWebsite(run.discovered)
	case models.StepPhone:
		run.phoneResult = models.HydratePhone(run.discovered)
		if company.Phone == nil {
			delete(run.successful, step)
			delete(run.failed, step)
		} else if !prevFailed[step] && run.phoneResult != nil {
			run.successful[step] = true
		}
	}
}
