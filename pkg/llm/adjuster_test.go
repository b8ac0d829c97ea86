package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/ratelimit"
)

func TestParseAssessment(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		wantErr        string
		wantAdjustment int
	}{
		{
			name:           "clean JSON",
			content:        `{"llm_summary": "Low risk.", "llm_details": "All checks passed.", "llm_score_adjustment": -5}`,
			wantAdjustment: -5,
		},
		{
			name:           "JSON wrapped in prose",
			content:        "Here is my assessment:\n{\"llm_summary\": \"s\", \"llm_details\": \"d\", \"llm_score_adjustment\": 10}\nThanks!",
			wantAdjustment: 10,
		},
		{
			name:           "adjustment clamped high",
			content:        `{"llm_summary": "s", "llm_details": "d", "llm_score_adjustment": 50}`,
			wantAdjustment: 20,
		},
		{
			name:           "adjustment clamped low",
			content:        `{"llm_summary": "s", "llm_details": "d", "llm_score_adjustment": -99}`,
			wantAdjustment: -20,
		},
		{
			name:           "float adjustment truncated",
			content:        `{"llm_summary": "s", "llm_details": "d", "llm_score_adjustment": 7.9}`,
			wantAdjustment: 7,
		},
		{
			name:    "missing field",
			content: `{"llm_summary": "s", "llm_score_adjustment": 5}`,
			wantErr: "llm_details",
		},
		{
			name:    "not JSON at all",
			content: "I cannot assess this company.",
			wantErr: "invalid JSON response",
		},
		{
			name:    "non-numeric adjustment",
			content: `{"llm_summary": "s", "llm_details": "d", "llm_score_adjustment": "high"}`,
			wantErr: "llm_score_adjustment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAssessment(tt.content)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdjustment, got.ScoreAdjustment)
		})
	}
}

func TestBuildPromptContents(t *testing.T) {
	email := "info@novageo.io"
	submitted := models.SubmittedData{Name: "NovaGeo", Domain: "novageo.io", Email: &email}
	discovered := models.DiscoveredData{"dns": {"resolves": true}}
	signals := []models.Signal{
		{Field: "domain_age", Status: models.SignalSuspicious, Value: "90 days", Weight: 20, Severity: models.SeverityHigh},
	}

	prompt := buildPrompt(submitted, discovered, signals, 30)

	assert.Contains(t, prompt, "- Name: NovaGeo")
	assert.Contains(t, prompt, "- Email: info@novageo.io")
	assert.Contains(t, prompt, "- Phone: N/A")
	assert.Contains(t, prompt, "- Website URL: N/A")
	assert.Contains(t, prompt, "- domain_age: suspicious (90 days, weight: 20, severity: high)")
	assert.Contains(t, prompt, "Current Rule Score: 30/100")
	assert.Contains(t, prompt, `"llm_score_adjustment"`)
	assert.Contains(t, prompt, "Respond with ONLY the JSON object")
}

// stubCompletion returns a chat-completion response body with the given content.
func stubCompletion(content string) []byte {
	body := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": content}}},
	}
	raw, _ := json.Marshal(body)
	return raw
}

func newTestAdjuster(t *testing.T, baseURL string, maxRetries int) *Adjuster {
	t.Helper()
	cfg := config.DefaultLLMConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	cfg.MaxRetries = maxRetries

	a := NewAdjuster(cfg, 5*time.Second, ratelimit.NewLimiter(100))
	require.NotNil(t, a)
	return a
}

func TestAssessSuccess(t *testing.T) {
	var gotBody struct {
		Model          string `json:"model"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(stubCompletion(`{"llm_summary": "Looks fine.", "llm_details": "Consistent data.", "llm_score_adjustment": -10}`))
	}))
	defer srv.Close()

	a := newTestAdjuster(t, srv.URL+"/v1", 3)
	got, err := a.Assess(context.Background(), models.SubmittedData{Name: "NovaGeo", Domain: "novageo.io"}, models.DiscoveredData{}, nil, 30)

	require.NoError(t, err)
	assert.Equal(t, "Looks fine.", got.Summary)
	assert.Equal(t, "Consistent data.", got.Details)
	assert.Equal(t, -10, got.ScoreAdjustment)

	assert.Equal(t, "gpt-4", gotBody.Model)
	assert.Equal(t, "json_object", gotBody.ResponseFormat.Type)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, systemPrompt, gotBody.Messages[0].Content)
	assert.True(t, strings.Contains(gotBody.Messages[1].Content, "Current Rule Score: 30/100"))
}

func TestAssessRetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit_error"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(stubCompletion(`{"llm_summary": "s", "llm_details": "d", "llm_score_adjustment": 0}`))
	}))
	defer srv.Close()

	a := newTestAdjuster(t, srv.URL+"/v1", 3)
	got, err := a.Assess(context.Background(), models.SubmittedData{}, models.DiscoveredData{}, nil, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, got.ScoreAdjustment)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAssessExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom"}}`))
	}))
	defer srv.Close()

	a := newTestAdjuster(t, srv.URL+"/v1", 2)
	_, err := a.Assess(context.Background(), models.SubmittedData{}, models.DiscoveredData{}, nil, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM assessment failed")
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewAdjusterDisabledWithoutKey(t *testing.T) {
	cfg := config.DefaultLLMConfig()
	assert.Nil(t, NewAdjuster(cfg, time.Second, nil))
}
