package openai

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/longdoc/ai"
)

// Summarizer implements ai.Summarizer using OpenAI-compatible chat APIs.
// It is bound to one question for its lifetime.
type Summarizer struct {
	client      llms.Model
	question    string
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

var _ ai.Summarizer = (*Summarizer)(nil)

func newSummarizer(client llms.Model, config ai.Config, question string) *Summarizer {
	return &Summarizer{
		client:      client,
		question:    question,
		temperature: config.Temperature,
		maxTokens:   config.SummaryTokens,
		logger:      slog.Default().With("component", "openai-summarizer"),
	}
}

// Summarize produces a question-focused summary of chunk that integrates
// with the accumulated context.
func (s *Summarizer) Summarize(ctx context.Context, contextText, chunk string) (string, error) {
	prompt := buildSummarizePrompt(s.question, contextText, chunk)

	summary, err := generate(ctx, s.client, prompt, s.temperature, s.maxTokens)
	if err != nil {
		s.logger.Error("summarize call failed", "chunkSize", len(chunk), "err", err)
		return "", err
	}

	s.logger.Debug("summarized chunk", "chunkSize", len(chunk), "summarySize", len(summary))
	return summary, nil
}
