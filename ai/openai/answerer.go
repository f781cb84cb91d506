package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/poiesic/longdoc/ai"
)

// defaultAnswer is returned when no answer letter can be found in the
// model response.
const defaultAnswer = "A"

// Answerer implements ai.Answerer using OpenAI-compatible chat APIs.
type Answerer struct {
	client      llms.Model
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

var _ ai.Answerer = (*Answerer)(nil)

func newAnswerer(client llms.Model, config ai.Config) *Answerer {
	return &Answerer{
		client:      client,
		temperature: config.Temperature,
		maxTokens:   config.AnswerTokens,
		logger:      slog.Default().With("component", "openai-answerer"),
	}
}

// Answer asks the model to pick one of the choices and returns the chosen
// letter. When the response contains no recognizable letter the first
// choice is assumed.
func (a *Answerer) Answer(ctx context.Context, question, contextText string, choices []string) (string, error) {
	prompt := buildAnswerPrompt(question, contextText, choices)

	response, err := generate(ctx, a.client, prompt, a.temperature, a.maxTokens)
	if err != nil {
		a.logger.Error("answer call failed", "err", err)
		return "", err
	}

	letter := extractAnswerLetter(response, len(choices))
	a.logger.Debug("extracted answer", "letter", letter, "responseSize", len(response))
	return letter, nil
}

// extractAnswerLetter finds the first standalone choice letter in the
// response. Matching only isolated letters keeps ordinary words from
// being mistaken for an answer; scanning in response order favors the
// model's stated conclusion over letters mentioned in passing.
func extractAnswerLetter(response string, choiceCount int) string {
	if choiceCount > 26 {
		choiceCount = 26
	}
	upper := strings.ToUpper(response)
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if c < 'A' || c >= byte('A'+choiceCount) {
			continue
		}
		prevIsLetter := i > 0 && isASCIILetter(upper[i-1])
		nextIsLetter := i+1 < len(upper) && isASCIILetter(upper[i+1])
		if !prevIsLetter && !nextIsLetter {
			return string(c)
		}
	}
	return defaultAnswer
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
