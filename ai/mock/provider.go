package mock

import (
	"sync"

	"github.com/poiesic/longdoc/ai"
)

// Provider is a mock implementation of ai.Provider that hands out shared
// mock services. Tests configure the service mocks directly.
type Provider struct {
	Summarizer *Summarizer
	Compressor *Compressor
	Ans        *Answerer

	mu        sync.Mutex
	questions []string
	closed    bool
}

var _ ai.Provider = (*Provider)(nil)

// NewProvider creates a mock provider with default-behavior services.
func NewProvider() *Provider {
	return &Provider{
		Summarizer: NewSummarizer(),
		Compressor: NewCompressor(),
		Ans:        NewAnswerer(),
	}
}

// ChunkSummarizer implements ai.Provider.
func (p *Provider) ChunkSummarizer(question string) ai.Summarizer {
	p.mu.Lock()
	p.questions = append(p.questions, question)
	p.mu.Unlock()
	return p.Summarizer
}

// ContextCompressor implements ai.Provider.
func (p *Provider) ContextCompressor(question string) ai.Compressor {
	p.mu.Lock()
	p.questions = append(p.questions, question)
	p.mu.Unlock()
	return p.Compressor
}

// Answerer implements ai.Provider.
func (p *Provider) Answerer() ai.Answerer {
	return p.Ans
}

// Close implements ai.Provider.
func (p *Provider) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

// Questions returns the questions passed to ChunkSummarizer and
// ContextCompressor, in call order.
func (p *Provider) Questions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.questions...)
}

// Closed reports whether Close was called.
func (p *Provider) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
