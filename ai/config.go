package ai

import (
	"fmt"
	"strings"
)

const (
	// DefaultHost is the base URL for a local OpenAI-compatible server.
	DefaultHost = "http://localhost:11434/v1"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "qwen2.5:7b"

	// DefaultTemperature keeps generation near-deterministic.
	DefaultTemperature = 0.1

	// DefaultSummaryTokens caps chunk summaries and compressed context.
	DefaultSummaryTokens = 1000

	// DefaultAnswerTokens caps the final answer response.
	DefaultAnswerTokens = 500
)

// Config holds settings for connecting to an OpenAI-compatible API.
type Config struct {
	// Host is the base URL of the API, including the /v1 suffix.
	Host string

	// APIKey authenticates requests. Local servers usually ignore it but
	// the client library requires a non-empty value.
	APIKey string

	// Model names the model to use for all calls.
	Model string

	// Temperature controls generation randomness.
	Temperature float64

	// SummaryTokens is the max token budget for summarize calls.
	SummaryTokens int

	// AnswerTokens is the max token budget for answer calls.
	AnswerTokens int
}

// DefaultConfig returns a Config aimed at a local Ollama-style server.
func DefaultConfig() Config {
	return Config{
		Host:          DefaultHost,
		APIKey:        "none",
		Model:         DefaultModel,
		Temperature:   DefaultTemperature,
		SummaryTokens: DefaultSummaryTokens,
		AnswerTokens:  DefaultAnswerTokens,
	}
}

// Normalize fills zero-valued fields with defaults and appends the /v1
// path when the host lacks it.
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.Host == "" {
		c.Host = d.Host
	}
	if c.APIKey == "" {
		c.APIKey = d.APIKey
	}
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.Temperature == 0 {
		c.Temperature = d.Temperature
	}
	if c.SummaryTokens == 0 {
		c.SummaryTokens = d.SummaryTokens
	}
	if c.AnswerTokens == 0 {
		c.AnswerTokens = d.AnswerTokens
	}
	c.Host = strings.TrimRight(c.Host, "/")
	if !strings.HasSuffix(c.Host, "/v1") {
		c.Host += "/v1"
	}
	return c
}

// Validate checks the configuration for usability. Call after Normalize.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidConfig)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be in [0, 2], got %g", ErrInvalidConfig, c.Temperature)
	}
	if c.SummaryTokens <= 0 {
		return fmt.Errorf("%w: summary tokens must be positive, got %d", ErrInvalidConfig, c.SummaryTokens)
	}
	if c.AnswerTokens <= 0 {
		return fmt.Errorf("%w: answer tokens must be positive, got %d", ErrInvalidConfig, c.AnswerTokens)
	}
	return nil
}
