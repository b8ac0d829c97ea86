package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls cleanup of terminal verification job rows.
type RetentionConfig struct {
	// Enabled turns the retention loop on.
	Enabled bool `yaml:"enabled"`

	// JobTTL is the maximum age of completed/failed job rows before deletion.
	JobTTL time.Duration `yaml:"job_ttl"`

	// CheckInterval is how often the cleanup loop runs.
	CheckInterval time.Duration `yaml:"check_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:       true,
		JobTTL:        168 * time.Hour,
		CheckInterval: 1 * time.Hour,
	}
}

// Validate checks retention configuration for invalid values.
func (c *RetentionConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.JobTTL <= 0 {
		return fmt.Errorf("%w: retention.job_ttl must be positive", ErrInvalidValue)
	}
	if c.CheckInterval <= 0 {
		return fmt.Errorf("%w: retention.check_interval must be positive", ErrInvalidValue)
	}
	return nil
}
