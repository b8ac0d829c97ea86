package config

import (
	"fmt"
	"time"
)

// PipelineConfig controls the verification pipeline stages: per-stage
// timeouts, outbound rate limits, and probe client settings.
type PipelineConfig struct {
	WhoisTimeout   time.Duration `yaml:"whois_timeout"`
	DNSTimeout     time.Duration `yaml:"dns_timeout"`
	MXTimeout      time.Duration `yaml:"mx_timeout"`
	WebsiteTimeout time.Duration `yaml:"website_timeout"`
	LLMTimeout     time.Duration `yaml:"llm_timeout"`

	// Outbound rate limits in requests per second, applied process-wide
	// per service tag.
	WhoisRateLimit float64 `yaml:"whois_rate_limit"`
	DNSRateLimit   float64 `yaml:"dns_rate_limit"`
	HTTPRateLimit  float64 `yaml:"http_rate_limit"`
	LLMRateLimit   float64 `yaml:"llm_rate_limit"`

	// AlgorithmVersion is stamped on every persisted analysis.
	AlgorithmVersion string `yaml:"algorithm_version"`

	// DefaultPhoneRegion is the region hint for parsing phone numbers
	// without a country prefix.
	DefaultPhoneRegion string `yaml:"default_phone_region"`

	// UserAgent is sent with website probe requests.
	UserAgent string `yaml:"user_agent"`

	// DNSResolver is the resolver address (host:port) for DNS and MX
	// queries. Empty means use the system resolver from /etc/resolv.conf.
	DNSResolver string `yaml:"dns_resolver"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		WhoisTimeout:       30 * time.Second,
		DNSTimeout:         30 * time.Second,
		MXTimeout:          30 * time.Second,
		WebsiteTimeout:     30 * time.Second,
		LLMTimeout:         30 * time.Second,
		WhoisRateLimit:     1,
		DNSRateLimit:       5,
		HTTPRateLimit:      10,
		LLMRateLimit:       3,
		AlgorithmVersion:   "1.0.0",
		DefaultPhoneRegion: "US",
		UserAgent:          "Mozilla/5.0 (compatible; vetd/1.0; +https://github.com/trustlane/vetd)",
	}
}

// Validate checks pipeline configuration for invalid values.
func (c *PipelineConfig) Validate() error {
	for name, d := range map[string]time.Duration{
		"pipeline.whois_timeout":   c.WhoisTimeout,
		"pipeline.dns_timeout":     c.DNSTimeout,
		"pipeline.mx_timeout":      c.MXTimeout,
		"pipeline.website_timeout": c.WebsiteTimeout,
		"pipeline.llm_timeout":     c.LLMTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidValue, name)
		}
	}
	for name, r := range map[string]float64{
		"pipeline.whois_rate_limit": c.WhoisRateLimit,
		"pipeline.dns_rate_limit":   c.DNSRateLimit,
		"pipeline.http_rate_limit":  c.HTTPRateLimit,
		"pipeline.llm_rate_limit":   c.LLMRateLimit,
	} {
		if r <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidValue, name)
		}
	}
	if c.AlgorithmVersion == "" {
		return fmt.Errorf("%w: pipeline.algorithm_version", ErrMissingRequiredField)
	}
	if c.DefaultPhoneRegion == "" {
		return fmt.Errorf("%w: pipeline.default_phone_region", ErrMissingRequiredField)
	}
	return nil
}
