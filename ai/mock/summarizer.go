package mock

import (
	"context"
	"sync"

	"github.com/poiesic/longdoc/ai"
)

// Summarizer is a configurable mock implementation of ai.Summarizer.
type Summarizer struct {
	mu    sync.Mutex
	calls int

	// SummarizeFunc overrides the default behavior when set.
	SummarizeFunc func(ctx context.Context, contextText, chunk string) (string, error)
}

var _ ai.Summarizer = (*Summarizer)(nil)

// NewSummarizer creates a mock summarizer with default behavior: return
// the first 200 characters of the chunk.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize implements ai.Summarizer.
func (s *Summarizer) Summarize(ctx context.Context, contextText, chunk string) (string, error) {
	s.mu.Lock()
	s.calls++
	fn := s.SummarizeFunc
	s.mu.Unlock()

	if fn != nil {
		return fn(ctx, contextText, chunk)
	}
	if len(chunk) > 200 {
		chunk = chunk[:200]
	}
	return chunk, nil
}

// CallCount returns how many times Summarize was called.
func (s *Summarizer) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Reset clears call counts and overrides.
func (s *Summarizer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = 0
	s.SummarizeFunc = nil
}
