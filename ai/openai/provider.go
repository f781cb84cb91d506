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

package openai

import (
	"log/slog"

	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/longdoc/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services. One
// chat client is shared by every service it creates.
type Provider struct {
	config   ai.Config
	client   llms.Model
	answerer *Answerer
	logger   *slog.Logger
}

// NewProvider creates an AI provider backed by an OpenAI-compatible API.
// The config is normalized and validated before use.
//
// Returns ai.Provider (not *Provider) to keep callers decoupled from
// OpenAI-specific details.
func NewProvider(config ai.Config) (ai.Provider, error) {
	config = config.Normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:   config,
		client:   client,
		answerer: newAnswerer(client, config),
		logger:   slog.Default().With("component", "openai-provider"),
	}, nil
}

// ChunkSummarizer returns a summarizer bound to the given question.
func (p *Provider) ChunkSummarizer(question string) ai.Summarizer {
	return newSummarizer(p.client, p.config, question)
}

// ContextCompressor returns a compressor bound to the given question.
func (p *Provider) ContextCompressor(question string) ai.Compressor {
	return newCompressor(p.client, p.config, question)
}

// Answerer returns the answer-selection service.
func (p *Provider) Answerer() ai.Answerer {
	return p.answerer
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying client needs no explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
