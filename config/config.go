// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/longdoc/ai"
	"github.com/poiesic/longdoc/search"
	"github.com/poiesic/longdoc/solver"
)

// ErrLoadConfig indicates the config file could not be read or parsed.
var ErrLoadConfig = errors.New("failed to load config")

// AIConfig configures the OpenAI-compatible endpoint.
type AIConfig struct {
	Host          string  `yaml:"host"`
	APIKey        string  `yaml:"api_key"`
	Model         string  `yaml:"model"`
	Temperature   float64 `yaml:"temperature"`
	SummaryTokens int     `yaml:"summary_tokens"`
	AnswerTokens  int     `yaml:"answer_tokens"`
}

// SolverConfig configures the rolling-context document pass.
type SolverConfig struct {
	ChunkSize   int `yaml:"chunk_size"`
	ContextSize int `yaml:"context_size"`
}

// SearchConfig configures default search limits.
type SearchConfig struct {
	MaxResults   int `yaml:"max_results"`
	ContextChars int `yaml:"context_chars"`
}

// StorageConfig configures the session cache.
type StorageConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// Config is the root configuration for longdoc.
type Config struct {
	AI      AIConfig      `yaml:"ai"`
	Solver  SolverConfig  `yaml:"solver"`
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage"`
}

// Default returns a Config with every field set to its working default.
func Default() Config {
	aiDefaults := ai.DefaultConfig()
	return Config{
		AI: AIConfig{
			Host:          aiDefaults.Host,
			APIKey:        aiDefaults.APIKey,
			Model:         aiDefaults.Model,
			Temperature:   aiDefaults.Temperature,
			SummaryTokens: aiDefaults.SummaryTokens,
			AnswerTokens:  aiDefaults.AnswerTokens,
		},
		Solver: SolverConfig{
			ChunkSize:   solver.DefaultChunkSize,
			ContextSize: solver.DefaultContextSize,
		},
		Search: SearchConfig{
			MaxResults:   search.DefaultMaxResults,
			ContextChars: search.DefaultContextChars,
		},
		Storage: StorageConfig{
			Path:     "longdoc.db",
			InMemory: false,
		},
	}
}

// Load reads configuration from a YAML file, then applies LONGDOC_*
// environment overrides. An empty path skips the file and returns
// defaults plus overrides; a named file that is missing is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides replaces config fields from LONGDOC_* environment
// variables when set. Unparseable numeric values are ignored.
func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := os.LookupEnv(key); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}

	setString("LONGDOC_AI_HOST", &cfg.AI.Host)
	setString("LONGDOC_AI_API_KEY", &cfg.AI.APIKey)
	setString("LONGDOC_AI_MODEL", &cfg.AI.Model)
	setFloat("LONGDOC_AI_TEMPERATURE", &cfg.AI.Temperature)
	setInt("LONGDOC_AI_SUMMARY_TOKENS", &cfg.AI.SummaryTokens)
	setInt("LONGDOC_AI_ANSWER_TOKENS", &cfg.AI.AnswerTokens)
	setInt("LONGDOC_SOLVER_CHUNK_SIZE", &cfg.Solver.ChunkSize)
	setInt("LONGDOC_SOLVER_CONTEXT_SIZE", &cfg.Solver.ContextSize)
	setInt("LONGDOC_SEARCH_MAX_RESULTS", &cfg.Search.MaxResults)
	setInt("LONGDOC_SEARCH_CONTEXT_CHARS", &cfg.Search.ContextChars)
	setString("LONGDOC_STORAGE_PATH", &cfg.Storage.Path)
}

// AIConfig converts the AI section to an ai.Config.
func (c Config) AIConfig() ai.Config {
	return ai.Config{
		Host:          c.AI.Host,
		APIKey:        c.AI.APIKey,
		Model:         c.AI.Model,
		Temperature:   c.AI.Temperature,
		SummaryTokens: c.AI.SummaryTokens,
		AnswerTokens:  c.AI.AnswerTokens,
	}
}
