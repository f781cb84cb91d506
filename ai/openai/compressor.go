package openai

import (
	"context"
	"log/slog"

	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/longdoc/ai"
)

// Compressor implements ai.Compressor using OpenAI-compatible chat APIs.
// It is bound to one question for its lifetime.
type Compressor struct {
	client      llms.Model
	question    string
	temperature float64
	logger      *slog.Logger
}

var _ ai.Compressor = (*Compressor)(nil)

func newCompressor(client llms.Model, config ai.Config, question string) *Compressor {
	return &Compressor{
		client:      client,
		question:    question,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "openai-compressor"),
	}
}

// Compress asks the model to shrink contextText while keeping facts
// relevant to the question. The token budget is half the input length,
// which pushes the model toward an actually smaller result; callers
// still verify the output shrank.
func (c *Compressor) Compress(ctx context.Context, contextText string) (string, error) {
	prompt := buildCompressPrompt(c.question, contextText)

	maxTokens := len(contextText) / 2
	if maxTokens < 1 {
		maxTokens = 1
	}

	compressed, err := generate(ctx, c.client, prompt, c.temperature, maxTokens)
	if err != nil {
		c.logger.Error("compress call failed", "contextSize", len(contextText), "err", err)
		return "", err
	}

	c.logger.Debug("compressed context",
		"contextSize", len(contextText), "compressedSize", len(compressed))
	return compressed, nil
}
