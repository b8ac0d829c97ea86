package config

import "fmt"

// APIConfig controls the HTTP server.
type APIConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DefaultAPIConfig returns the built-in API defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		Host: "0.0.0.0",
		Port: 8080,
	}
}

// Addr returns the listen address.
func (c *APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks API configuration for invalid values.
func (c *APIConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: api.port must be in 1..65535, got %d", ErrInvalidValue, c.Port)
	}
	return nil
}
