package openai

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/longdoc/ai"
)

// newClient creates a chat client for an OpenAI-compatible endpoint.
// Local services usually ignore the token but the client requires one.
func newClient(config ai.Config) (llms.Model, error) {
	return openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	)
}

// generate sends a single user prompt and returns the trimmed response text.
func generate(ctx context.Context, client llms.Model, prompt string, temperature float64, maxTokens int) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := client.GenerateContent(ctx, content,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens))
	if err != nil {
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", ai.ErrEmptyResponse
	}
	return strings.TrimSpace(response.Choices[0].Content), nil
}
