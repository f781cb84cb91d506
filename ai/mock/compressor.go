package mock

import (
	"context"
	"sync"

	"github.com/poiesic/longdoc/ai"
)

// Compressor is a configurable mock implementation of ai.Compressor.
type Compressor struct {
	mu    sync.Mutex
	calls int

	// CompressFunc overrides the default behavior when set.
	CompressFunc func(ctx context.Context, contextText string) (string, error)
}

var _ ai.Compressor = (*Compressor)(nil)

// NewCompressor creates a mock compressor with default behavior: return
// the first half of the context, which always strictly shrinks non-empty
// input.
func NewCompressor() *Compressor {
	return &Compressor{}
}

// Compress implements ai.Compressor.
func (c *Compressor) Compress(ctx context.Context, contextText string) (string, error) {
	c.mu.Lock()
	c.calls++
	fn := c.CompressFunc
	c.mu.Unlock()

	if fn != nil {
		return fn(ctx, contextText)
	}
	return contextText[:len(contextText)/2], nil
}

// CallCount returns how many times Compress was called.
func (c *Compressor) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Reset clears call counts and overrides.
func (c *Compressor) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = 0
	c.CompressFunc = nil
}
