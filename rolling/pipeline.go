package rolling

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/longdoc/ai"
)

// Pipeline folds a document through the rolling-context state machine.
// A Pipeline is bound to one summarizer/compressor pair; each Run owns
// its own window, so a Pipeline may be reused across runs but a single
// run is strictly sequential.
type Pipeline struct {
	summarizer  ai.Summarizer
	compressor  ai.Compressor
	chunkSize   int
	contextSize int
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a rolling-context pipeline. chunkSize is the stride
// of the document pass; contextSize is the window capacity in characters.
func NewPipeline(summarizer ai.Summarizer, compressor ai.Compressor, chunkSize, contextSize int, opts ...Option) (*Pipeline, error) {
	if summarizer == nil {
		return nil, ErrSummarizerRequired
	}
	if compressor == nil {
		return nil, ErrCompressorRequired
	}
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if contextSize <= 0 {
		return nil, ErrInvalidContextSize
	}

	p := &Pipeline{
		summarizer:  summarizer,
		compressor:  compressor,
		chunkSize:   chunkSize,
		contextSize: contextSize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Run processes text in a single left-to-right pass and returns the final
// accumulated context, bounded by the configured window capacity.
//
// For each chunk: summarize it against the current window content; if the
// summary does not fit, compress the window first (failing fast when the
// compressor does not strictly shrink it), then append. A failure from
// either external call aborts the run with a wrapped error; no partial
// progress is kept.
func (p *Pipeline) Run(ctx context.Context, text string) (string, error) {
	window := NewContextWindow(p.contextSize)
	total := ChunkCount(len(text), p.chunkSize)

	chunkNum := 0
	for chunk := range Chunks(text, p.chunkSize) {
		chunkNum++

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		p.logger.Info("processing chunk",
			"chunk", chunkNum, "of", total, "start", chunk.Start, "size", len(chunk.Text))

		summary, err := p.summarizer.Summarize(ctx, window.Content(), chunk.Text)
		if err != nil {
			return "", fmt.Errorf("%w: chunk %d: %w", ErrSummarize, chunkNum, err)
		}

		if !window.CanFit(summary) {
			p.logger.Info("context window full, compressing",
				"size", window.Size(), "maxSize", window.MaxSize())

			compressed, err := p.compressor.Compress(ctx, window.Content())
			if err != nil {
				return "", fmt.Errorf("%w: chunk %d: %w", ErrCompress, chunkNum, err)
			}
			if len(compressed) >= window.Size() {
				return "", fmt.Errorf("%w: %d -> %d bytes", ErrCompressorNoShrink, window.Size(), len(compressed))
			}
			window = window.Replace(compressed)
		}

		window = window.Add(summary)
		p.logger.Debug("context window updated", "size", window.Size(), "maxSize", window.MaxSize())
	}

	return window.Content(), nil
}
