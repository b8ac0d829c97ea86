// Package llm implements the optional qualitative risk adjustment step
// backed by the OpenAI chat completions API.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"

	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/models"
	"github.com/trustlane/vetd/pkg/ratelimit"
)

const (
	// Adjustment bounds enforced on every response.
	minAdjustment = -20
	maxAdjustment = 20
)

// Assessment is the validated LLM output.
type Assessment struct {
	Summary         string
	Details         string
	ScoreAdjustment int
}

// Adjuster calls the LLM with the full verification context and returns a
// bounded score adjustment plus narrative.
type Adjuster struct {
	client  *openai.Client
	cfg     *config.LLMConfig
	limiter *ratelimit.Limiter
	timeout time.Duration
	logger  *slog.Logger
}

// NewAdjuster creates an adjuster, or nil when no API key is configured.
func NewAdjuster(cfg *config.LLMConfig, timeout time.Duration, limiter *ratelimit.Limiter) *Adjuster {
	if !cfg.Enabled() {
		return nil
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Adjuster{
		client:  openai.NewClientWithConfig(clientCfg),
		cfg:     cfg,
		limiter: limiter,
		timeout: timeout,
		logger:  slog.With("component", "llm"),
	}
}

// Assess requests a risk adjustment. Attempts retry with exponential
// backoff (1s, 2s, 4s) on API and parse errors; each attempt first waits
// for a rate-limit token.
func (a *Adjuster) Assess(
	ctx context.Context,
	submitted models.SubmittedData,
	discovered models.DiscoveredData,
	signals []models.Signal,
	ruleScore int,
) (*Assessment, error) {
	prompt := buildPrompt(submitted, discovered, signals, ruleScore)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 1 * time.Second
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxInterval = 4 * time.Second

	var retries uint64
	if a.cfg.MaxRetries > 1 {
		retries = uint64(a.cfg.MaxRetries - 1)
	}

	attempt := 0
	var result *Assessment
	operation := func() error {
		attempt++

		if a.limiter != nil && !a.limiter.Acquire(ctx, 1, -1) {
			return backoff.Permanent(ctx.Err())
		}

		a.logger.InfoContext(ctx, "Calling LLM API", "attempt", attempt, "max_retries", a.cfg.MaxRetries)

		assessment, err := a.complete(ctx, prompt)
		if err != nil {
			a.logger.WarnContext(ctx, "LLM attempt failed", "attempt", attempt, "error", err)
			return err
		}
		result = assessment
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx))
	if err != nil {
		return nil, fmt.Errorf("LLM assessment failed after %d attempts: %w", attempt, err)
	}
	return result, nil
}

// complete performs one chat-completion attempt and parses the response.
func (a *Adjuster) complete(ctx context.Context, prompt string) (*Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("LLM returned no choices")
	}

	return parseAssessment(resp.Choices[0].Message.Content)
}

// jsonBlockPattern extracts the first brace-delimited block from a response
// that wrapped its JSON in prose.
var jsonBlockPattern = regexp.MustCompile(`(?s)\{[^{}]*\}`)

// parseAssessment decodes the model output, requiring all three fields and
// clamping the adjustment to the allowed range.
func parseAssessment(content string) (*Assessment, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		block := jsonBlockPattern.FindString(content)
		if block == "" {
			return nil, fmt.Errorf("invalid JSON response: %w", err)
		}
		if err := json.Unmarshal([]byte(block), &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON response: %w", err)
		}
	}

	for _, field := range []string{"llm_summary", "llm_details", "llm_score_adjustment"} {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("missing required field in LLM response: %s", field)
		}
	}

	var summary, details string
	if err := json.Unmarshal(raw["llm_summary"], &summary); err != nil {
		return nil, fmt.Errorf("invalid llm_summary: %w", err)
	}
	if err := json.Unmarshal(raw["llm_details"], &details); err != nil {
		return nil, fmt.Errorf("invalid llm_details: %w", err)
	}

	// Models occasionally emit the adjustment as a float
	var adjustment float64
	if err := json.Unmarshal(raw["llm_score_adjustment"], &adjustment); err != nil {
		return nil, fmt.Errorf("invalid llm_score_adjustment: %w", err)
	}

	n := int(adjustment)
	if n < minAdjustment {
		n = minAdjustment
	}
	if n > maxAdjustment {
		n = maxAdjustment
	}

	return &Assessment{
		Summary:         summary,
		Details:         details,
		ScoreAdjustment: n,
	}, nil
}
