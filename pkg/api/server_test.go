package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/ent"
	"github.com/trustlane/vetd/ent/company"
	"github.com/trustlane/vetd/ent/verificationjob"
	"github.com/trustlane/vetd/pkg/correlation"
	"github.com/trustlane/vetd/pkg/database"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/queue"
	"github.com/trustlane/vetd/pkg/services"
	testdb "github.com/trustlane/vetd/test/database"
)

type testServer struct {
	server    *Server
	router    *gin.Engine
	client    *database.Client
	companies *services.CompanyService
	analyses  *services.AnalysisService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	companies := services.NewCompanyService(client.Client)
	analyses := services.NewAnalysisService(client.Client)
	enqueuer := queue.NewEnqueuer(client.Client)
	server := NewServer(client, companies, analyses, enqueuer, nil)

	return &testServer{
		server:    server,
		router:    server.Router(),
		client:    client,
		companies: companies,
		analyses:  analyses,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) createCompany(t *testing.T, domain string) *ent.Company {
	t.Helper()
	c, err := ts.companies.Create(context.Background(), models.CreateCompanyRequest{
		Name:   "API " + domain,
		Domain: domain,
	})
	require.NoError(t, err)
	return c
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateCompanyEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("creates and enqueues", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/companies", gin.H{
			"name":   "NovaGeo",
			"domain": "NovaGeo.IO",
			"email":  "info@novageo.io",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["correlation_id"])
		assert.NotEmpty(t, body["job_id"])
		assert.NotEmpty(t, rec.Header().Get(correlation.HeaderName))

		comp := body["company"].(map[string]any)
		assert.Equal(t, "novageo.io", comp["domain"], "domain normalized")
		assert.Equal(t, "pending", comp["status"])

		jobs, err := ts.client.VerificationJob.Query().
			Where(verificationjob.StatusEQ(verificationjob.StatusPending)).
			All(context.Background())
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, verificationjob.RetryModeFull, jobs[0].RetryMode)
		assert.Equal(t, body["correlation_id"], jobs[0].CorrelationID)
	})

	t.Run("echoes a supplied correlation id", func(t *testing.T) {
		raw, _ := json.Marshal(gin.H{"name": "Echoed", "domain": "echoed.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/companies", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(correlation.HeaderName, "corr-supplied")
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "corr-supplied", rec.Header().Get(correlation.HeaderName))
		assert.Equal(t, "corr-supplied", decodeBody(t, rec)["correlation_id"])
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/companies", gin.H{"name": "No Domain"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompanyCRUDEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		c := ts.createCompany(t, "get.com")

		rec := ts.do(t, http.MethodGet, "/api/v1/companies/"+c.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "get.com", decodeBody(t, rec)["domain"])

		rec = ts.do(t, http.MethodGet, "/api/v1/companies/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update before analysis", func(t *testing.T) {
		c := ts.createCompany(t, "update.com")

		rec := ts.do(t, http.MethodPatch, "/api/v1/companies/"+c.ID, gin.H{"name": "Renamed"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Renamed", decodeBody(t, rec)["name"])
	})

	t.Run("update locked after analysis", func(t *testing.T) {
		c := ts.createCompany(t, "locked.com")
		_, err := ts.client.Company.UpdateOneID(c.ID).SetLastAnalyzedAt(time.Now()).Save(ctx)
		require.NoError(t, err)

		rec := ts.do(t, http.MethodPatch, "/api/v1/companies/"+c.ID, gin.H{"name": "Changed"})
		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		c := ts.createCompany(t, "delete.com")

		rec := ts.do(t, http.MethodDelete, "/api/v1/companies/"+c.ID, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/v1/companies/"+c.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func saveAnalysis(t *testing.T, ts *testServer, companyID string, risk int, complete bool, failedChecks []string) {
	t.Helper()
	_, err := ts.analyses.Save(context.Background(), services.SaveAnalysisInput{
		CompanyID:        companyID,
		AlgorithmVersion: "1.0.0",
		SubmittedData:    models.SubmittedData{Name: "X", Domain: "x.com"},
		DiscoveredData:   models.DiscoveredData{},
		Signals:          []models.Signal{},
		RiskScore:        risk,
		IsComplete:       complete,
		FailedChecks:     failedChecks,
	})
	require.NoError(t, err)
}

func TestReanalyzeEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	t.Run("full reanalysis", func(t *testing.T) {
		c := ts.createCompany(t, "full.com")
		saveAnalysis(t, ts, c.ID, 10, true, nil)

		rec := ts.do(t, http.MethodPost, "/api/v1/companies/"+c.ID+"/reanalyze", gin.H{})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "full", body["retry_mode"])

		// Run state reset for progress polling
		got, err := ts.companies.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, company.AnalysisStatusPending, got.AnalysisStatus)
		assert.Nil(t, got.CurrentStep)
	})

	t.Run("empty body means full", func(t *testing.T) {
		c := ts.createCompany(t, "emptybody.com")

		rec := ts.do(t, http.MethodPost, "/api/v1/companies/"+c.ID+"/reanalyze", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "full", decodeBody(t, rec)["retry_mode"])
	})

	t.Run("failed_only with failed checks", func(t *testing.T) {
		c := ts.createCompany(t, "partial.com")
		saveAnalysis(t, ts, c.ID, 40, false, []string{"whois", "phone"})

		rec := ts.do(t, http.MethodPost, "/api/v1/companies/"+c.ID+"/reanalyze",
			gin.H{"retry_failed_only": true})
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "failed_only", body["retry_mode"])

		job, err := ts.client.VerificationJob.Get(ctx, body["job_id"].(string))
		require.NoError(t, err)
		assert.Equal(t, verificationjob.RetryModeFailedOnly, job.RetryMode)
		assert.Equal(t, []string{"phone", "whois"}, job.FailedChecks, "persisted sorted")
	})

	t.Run("failed_only without history", func(t *testing.T) {
		c := ts.createCompany(t, "nohistory.com")

		rec := ts.do(t, http.MethodPost, "/api/v1/companies/"+c.ID+"/reanalyze",
			gin.H{"retry_failed_only": true})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("failed_only with a clean run", func(t *testing.T) {
		c := ts.createCompany(t, "clean.com")
		saveAnalysis(t, ts, c.ID, 0, true, nil)

		rec := ts.do(t, http.MethodPost, "/api/v1/companies/"+c.ID+"/reanalyze",
			gin.H{"retry_failed_only": true})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown company", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/companies/ghost/reanalyze", gin.H{})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStatusActionEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("approve pending", func(t *testing.T) {
		c := ts.createCompany(t, "approve.com")

		rec := ts.do(t, http.MethodPatch, "/api/v1/companies/"+c.ID+"/status",
			gin.H{"action": "approve"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "approved", decodeBody(t, rec)["status"])
	})

	t.Run("unknown action", func(t *testing.T) {
		c := ts.createCompany(t, "badaction.com")

		rec := ts.do(t, http.MethodPatch, "/api/v1/companies/"+c.ID+"/status",
			gin.H{"action": "promote"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid transition", func(t *testing.T) {
		c := ts.createCompany(t, "badmove.com")

		rec := ts.do(t, http.MethodPatch, "/api/v1/companies/"+c.ID+"/status",
			gin.H{"action": "revoke_approval"})
		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})
}

func TestAutoApproveEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	t.Run("eligible", func(t *testing.T) {
		c := ts.createCompany(t, "eligible.com")
		_, err := ts.client.Company.UpdateOneID(c.ID).
			SetAnalysisStatus(company.AnalysisStatusComplete).
			SetRiskScore(20).
			Save(ctx)
		require.NoError(t, err)

		rec := ts.do(t, http.MethodPost, "/api/v1/companies/"+c.ID+"/auto-approve", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "approved", decodeBody(t, rec)["status"])
	})

	t.Run("not eligible", func(t *testing.T) {
		c := ts.createCompany(t, "ineligible.com")

		rec := ts.do(t, http.MethodPost, "/api/v1/companies/"+c.ID+"/auto-approve", nil)
		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})
}

func TestAnalysisStatusEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	c := ts.createCompany(t, "progress.com")

	t.Run("pending company reports zero progress", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/companies/"+c.ID+"/analysis-status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "pending", body["analysis_status"])
		assert.Equal(t, float64(0), body["progress_percentage"])
	})

	t.Run("mid-run progress tracks the step", func(t *testing.T) {
		require.NoError(t, ts.companies.UpdateStep(ctx, c.ID, models.StepWebsiteScrape, nil))
		_, err := ts.client.Company.UpdateOneID(c.ID).
			SetAnalysisStatus(company.AnalysisStatusInProgress).
			Save(ctx)
		require.NoError(t, err)

		rec := ts.do(t, http.MethodGet, "/api/v1/companies/"+c.ID+"/analysis-status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "in_progress", body["analysis_status"])
		assert.Equal(t, float64(60), body["progress_percentage"])
	})

	t.Run("complete run reports full progress and failed checks", func(t *testing.T) {
		saveAnalysis(t, ts, c.ID, 40, false, []string{"dns"})

		rec := ts.do(t, http.MethodGet, "/api/v1/companies/"+c.ID+"/analysis-status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "complete", body["analysis_status"])
		assert.Equal(t, float64(100), body["progress_percentage"])
		assert.Equal(t, []any{"dns"}, body["failed_checks"])
	})
}

func TestListAnalysesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	c := ts.createCompany(t, "versions.com")
	saveAnalysis(t, ts, c.ID, 10, true, nil)
	saveAnalysis(t, ts, c.ID, 20, true, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/companies/"+c.ID+"/analyses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Analyses []analysisResponse `json:"analyses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Analyses, 2)
	assert.Equal(t, 2, body.Analyses[0].Version, "newest first")
	assert.Equal(t, 1, body.Analyses[1].Version)
	assert.Equal(t, 20, body.Analyses[0].RiskScore)
}

type stubPool struct {
	health *queue.PoolHealth
}

func (p *stubPool) Health() *queue.PoolHealth { return p.health }

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("healthy without a pool", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "healthy", body["status"])
		assert.NotNil(t, body["database"])
	})

	t.Run("degraded pool turns the response unhealthy", func(t *testing.T) {
		ts.server.pool = &stubPool{health: &queue.PoolHealth{IsHealthy: false, PodID: "pod-1"}}
		t.Cleanup(func() { ts.server.pool = nil })

		rec := ts.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", decodeBody(t, rec)["status"])
	})
}
