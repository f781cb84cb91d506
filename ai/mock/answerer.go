package mock

import (
	"context"
	"sync"

	"github.com/poiesic/longdoc/ai"
)

// Answerer is a configurable mock implementation of ai.Answerer.
type Answerer struct {
	mu    sync.Mutex
	calls int

	// AnswerFunc overrides the default behavior when set.
	AnswerFunc func(ctx context.Context, question, contextText string, choices []string) (string, error)
}

var _ ai.Answerer = (*Answerer)(nil)

// NewAnswerer creates a mock answerer that always answers "A".
func NewAnswerer() *Answerer {
	return &Answerer{}
}

// Answer implements ai.Answerer.
func (a *Answerer) Answer(ctx context.Context, question, contextText string, choices []string) (string, error) {
	a.mu.Lock()
	a.calls++
	fn := a.AnswerFunc
	a.mu.Unlock()

	if fn != nil {
		return fn(ctx, question, contextText, choices)
	}
	return "A", nil
}

// CallCount returns how many times Answer was called.
func (a *Answerer) CallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// Reset clears call counts and overrides.
func (a *Answerer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = 0
	a.AnswerFunc = nil
}
