package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vetd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeDefaults(t *testing.T) {
	// Missing file falls back to built-in defaults
	cfg, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Pipeline.WhoisTimeout)
	assert.Equal(t, "1.0.0", cfg.Pipeline.AlgorithmVersion)
	assert.Equal(t, "US", cfg.Pipeline.DefaultPhoneRegion)
	assert.Equal(t, 20, cfg.Weights.DomainAge)
	assert.Equal(t, 25, cfg.Weights.WebsiteUnreachable)
	assert.Equal(t, "gpt-4", cfg.LLM.Model)
	assert.False(t, cfg.LLM.Enabled())
	assert.Equal(t, 168*time.Hour, cfg.Retention.JobTTL)
	assert.Equal(t, "0.0.0.0:8080", cfg.API.Addr())
}

func TestInitializeMergesFileOverDefaults(t *testing.T) {
	path := writeConfigFile(t, `
queue:
  worker_count: 2
  max_concurrent_jobs: 4
  job_timeout: 5m
pipeline:
  whois_timeout: 10s
  dns_resolver: "8.8.8.8:53"
weights:
  domain_age: 30
llm:
  api_key: test-key
  model: gpt-4o
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 4, cfg.Queue.MaxConcurrentJobs)
	assert.Equal(t, 5*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, 10*time.Second, cfg.Pipeline.WhoisTimeout)
	assert.Equal(t, "8.8.8.8:53", cfg.Pipeline.DNSResolver)
	assert.Equal(t, 30, cfg.Weights.DomainAge)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.True(t, cfg.LLM.Enabled())

	// Untouched values keep their defaults
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.Pipeline.DNSTimeout)
	assert.Equal(t, 25, cfg.Weights.WebsiteUnreachable)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
}

func TestInitializeExpandsEnvTemplates(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	path := writeConfigFile(t, `
llm:
  api_key: "{{.OPENAI_API_KEY}}"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.LLM.APIKey)
	assert.True(t, cfg.LLM.Enabled())
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "queue: [not: a: mapping\n")

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Queue.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "concurrency below worker count",
			mutate:  func(c *Config) { c.Queue.MaxConcurrentJobs = 1; c.Queue.WorkerCount = 5 },
			wantErr: "max_concurrent_jobs",
		},
		{
			name:    "heartbeat above orphan threshold",
			mutate:  func(c *Config) { c.Queue.HeartbeatInterval = 10 * time.Minute },
			wantErr: "heartbeat_interval",
		},
		{
			name:    "negative stage timeout",
			mutate:  func(c *Config) { c.Pipeline.DNSTimeout = -1 },
			wantErr: "dns_timeout",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.Pipeline.LLMRateLimit = 0 },
			wantErr: "llm_rate_limit",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Weights.PhoneInvalid = -1 },
			wantErr: "phone_invalid",
		},
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.LLM.Model = "" },
			wantErr: "llm.model",
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.API.Port = 0 },
			wantErr: "api.port",
		},
		{
			name:    "retention zero ttl",
			mutate:  func(c *Config) { c.Retention.JobTTL = 0 },
			wantErr: "job_ttl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
