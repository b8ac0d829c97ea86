// Package config loads and validates service configuration from a YAML file
// with {{.ENV_VAR}} template expansion, merged over built-in defaults.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the fully resolved service configuration.
type Config struct {
	Queue     *QueueConfig     `yaml:"queue"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Weights   *SignalWeights   `yaml:"weights"`
	LLM       *LLMConfig       `yaml:"llm"`
	Retention *RetentionConfig `yaml:"retention"`
	API       *APIConfig       `yaml:"api"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Read the YAML file (optional; defaults apply when absent)
//  3. Expand environment variables using {{.VAR}} template syntax
//  4. Merge file values over defaults (non-zero values override)
//  5. Validate all configuration
func Initialize(_ context.Context, configPath string) (*Config, error) {
	log := slog.With("config_path", configPath)
	log.Info("Initializing configuration")

	cfg, err := load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"llm_enabled", cfg.LLM.Enabled())

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Queue:     DefaultQueueConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Weights:   DefaultSignalWeights(),
		LLM:       DefaultLLMConfig(),
		Retention: DefaultRetentionConfig(),
		API:       DefaultAPIConfig(),
	}
}

func load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// The file is optional; defaults plus env expansion cover the
			// common deployment where everything comes from the environment.
			slog.Warn("Config file not found, using built-in defaults", "path", configPath)
			return cfg, nil
		}
		return nil, NewLoadError(configPath, err)
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, NewLoadError(configPath, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	// Merge each file section into defaults so unset keys keep default values.
	if err := mergeSection(cfg.Queue, fileCfg.Queue); err != nil {
		return nil, fmt.Errorf("failed to merge queue config: %w", err)
	}
	if err := mergeSection(cfg.Pipeline, fileCfg.Pipeline); err != nil {
		return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
	}
	if err := mergeSection(cfg.Weights, fileCfg.Weights); err != nil {
		return nil, fmt.Errorf("failed to merge weights config: %w", err)
	}
	if err := mergeSection(cfg.LLM, fileCfg.LLM); err != nil {
		return nil, fmt.Errorf("failed to merge llm config: %w", err)
	}
	if err := mergeSection(cfg.Retention, fileCfg.Retention); err != nil {
		return nil, fmt.Errorf("failed to merge retention config: %w", err)
	}
	if err := mergeSection(cfg.API, fileCfg.API); err != nil {
		return nil, fmt.Errorf("failed to merge api config: %w", err)
	}

	return cfg, nil
}

// mergeSection merges non-zero values from src over dst defaults.
func mergeSection[T any](dst *T, src *T) error {
	if src == nil {
		return nil
	}
	return mergo.Merge(dst, src, mergo.WithOverride)
}

// Validate checks all sections for invalid values.
func (c *Config) Validate() error {
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	if err := c.Pipeline.Validate(); err != nil {
		return err
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	if err := c.Retention.Validate(); err != nil {
		return err
	}
	return c.API.Validate()
}
