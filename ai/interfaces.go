package ai

import "context"

// Summarizer produces context-aware summaries of document chunks.
// Implementations must be thread-safe for concurrent use.
type Summarizer interface {
	// Summarize produces a summary of chunk that integrates with the
	// accumulated context. The context may be empty at the start of a run.
	// Returns an error if the external call fails.
	Summarize(ctx context.Context, contextText, chunk string) (string, error)
}

// Compressor shrinks accumulated context while preserving salient facts.
// Implementations must be thread-safe for concurrent use.
type Compressor interface {
	// Compress returns a shorter representation of contextText. The
	// contract expects, but cannot enforce, len(result) < len(contextText);
	// callers must verify the output actually shrank.
	Compress(ctx context.Context, contextText string) (string, error)
}

// Answerer selects a final answer for a multiple-choice question.
// Implementations must be thread-safe for concurrent use.
type Answerer interface {
	// Answer returns the chosen answer letter given the question, the
	// accumulated context and the candidate choices.
	Answer(ctx context.Context, question, contextText string, choices []string) (string, error)
}

// Provider aggregates the AI services for convenient initialization and
// lifecycle management. Summarizer and compressor construction takes the
// task question because both prompts are steered toward it.
type Provider interface {
	// ChunkSummarizer returns a summarizer scoped to the given question.
	// The returned Summarizer is safe for concurrent use.
	ChunkSummarizer(question string) Summarizer

	// ContextCompressor returns a compressor scoped to the given question.
	// The returned Compressor is safe for concurrent use.
	ContextCompressor(question string) Compressor

	// Answerer returns the answer-selection service.
	Answerer() Answerer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
