package config

import "fmt"

// LLMConfig controls the optional LLM risk adjustment step.
// An empty APIKey disables the step entirely.
type LLMConfig struct {
	// APIKey is typically supplied via {{.OPENAI_API_KEY}} template
	// expansion in the config file.
	APIKey string `yaml:"api_key"`

	Model       string  `yaml:"model"`
	MaxRetries  int     `yaml:"max_retries"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`

	// BaseURL overrides the API endpoint, used for gateways and tests.
	BaseURL string `yaml:"base_url"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:       "gpt-4",
		MaxRetries:  3,
		Temperature: 0.3,
		MaxTokens:   1000,
	}
}

// Enabled reports whether the LLM adjustment step should run.
func (c *LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// Validate checks LLM configuration for invalid values.
func (c *LLMConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("%w: llm.model", ErrMissingRequiredField)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: llm.max_retries must be >= 0, got %d", ErrInvalidValue, c.MaxRetries)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("%w: llm.max_tokens must be >= 1, got %d", ErrInvalidValue, c.MaxTokens)
	}
	return nil
}
