package rolling

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/longdoc/ai/mock"
)

func TestNewPipeline(t *testing.T) {
	summarizer := mock.NewSummarizer()
	compressor := mock.NewCompressor()

	t.Run("valid arguments", func(t *testing.T) {
		p, err := NewPipeline(summarizer, compressor, 1000, 500)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("nil summarizer", func(t *testing.T) {
		_, err := NewPipeline(nil, compressor, 1000, 500)
		assert.ErrorIs(t, err, ErrSummarizerRequired)
	})

	t.Run("nil compressor", func(t *testing.T) {
		_, err := NewPipeline(summarizer, nil, 1000, 500)
		assert.ErrorIs(t, err, ErrCompressorRequired)
	})

	t.Run("non-positive chunk size", func(t *testing.T) {
		_, err := NewPipeline(summarizer, compressor, 0, 500)
		assert.ErrorIs(t, err, ErrInvalidChunkSize)
	})

	t.Run("non-positive context size", func(t *testing.T) {
		_, err := NewPipeline(summarizer, compressor, 1000, -1)
		assert.ErrorIs(t, err, ErrInvalidContextSize)
	})
}

func TestPipelineRun(t *testing.T) {
	ctx := context.Background()

	t.Run("empty document yields empty context", func(t *testing.T) {
		p, err := NewPipeline(mock.NewSummarizer(), mock.NewCompressor(), 100, 50)
		require.NoError(t, err)

		out, err := p.Run(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("summaries accumulate in order", func(t *testing.T) {
		summarizer := mock.NewSummarizer()
		summarizer.SummarizeFunc = func(ctx context.Context, contextText, chunk string) (string, error) {
			return "sum:" + chunk[:1], nil
		}

		p, err := NewPipeline(summarizer, mock.NewCompressor(), 4, 1000)
		require.NoError(t, err)

		out, err := p.Run(ctx, "aaaabbbbcccc")
		require.NoError(t, err)
		assert.Equal(t, "sum:a\n\nsum:b\n\nsum:c", out)
		assert.Equal(t, 3, summarizer.CallCount())
	})

	t.Run("summarizer sees accumulated context", func(t *testing.T) {
		var seen []string
		summarizer := mock.NewSummarizer()
		summarizer.SummarizeFunc = func(ctx context.Context, contextText, chunk string) (string, error) {
			seen = append(seen, contextText)
			return chunk, nil
		}

		p, err := NewPipeline(summarizer, mock.NewCompressor(), 2, 1000)
		require.NoError(t, err)

		_, err = p.Run(ctx, "aabb")
		require.NoError(t, err)
		assert.Equal(t, []string{"", "aa"}, seen)
	})

	t.Run("compresses before an overflowing append", func(t *testing.T) {
		summarizer := mock.NewSummarizer()
		summarizer.SummarizeFunc = func(ctx context.Context, contextText, chunk string) (string, error) {
			return strings.Repeat("s", 40), nil
		}

		var compressedInput string
		compressor := mock.NewCompressor()
		compressor.CompressFunc = func(ctx context.Context, contextText string) (string, error) {
			compressedInput = contextText
			return contextText[:10], nil
		}

		p, err := NewPipeline(summarizer, compressor, 10, 100, WithLogger(nil))
		require.NoError(t, err)

		// Three 10-char chunks: windows of 40, 82, then 82+42 would
		// exceed 100, so the third append is preceded by a compression.
		out, err := p.Run(ctx, strings.Repeat("x", 30))
		require.NoError(t, err)
		assert.Equal(t, 1, compressor.CallCount())
		assert.Len(t, compressedInput, 82)
		assert.Len(t, out, 52)
		assert.LessOrEqual(t, len(out), 100)
	})

	t.Run("long document stays within capacity", func(t *testing.T) {
		summarizer := mock.NewSummarizer()
		summarizer.SummarizeFunc = func(ctx context.Context, contextText, chunk string) (string, error) {
			return strings.Repeat("s", 10_000), nil
		}
		compressor := mock.NewCompressor()

		p, err := NewPipeline(summarizer, compressor, 100_000, 50_000)
		require.NoError(t, err)

		out, err := p.Run(ctx, strings.Repeat("x", 1_000_000))
		require.NoError(t, err)
		assert.Equal(t, 10, summarizer.CallCount())
		assert.Greater(t, compressor.CallCount(), 0)
		assert.LessOrEqual(t, len(out), 50_000)
	})

	t.Run("summarizer failure aborts", func(t *testing.T) {
		boom := errors.New("model unavailable")
		summarizer := mock.NewSummarizer()
		summarizer.SummarizeFunc = func(ctx context.Context, contextText, chunk string) (string, error) {
			return "", boom
		}

		p, err := NewPipeline(summarizer, mock.NewCompressor(), 10, 100)
		require.NoError(t, err)

		_, err = p.Run(ctx, "some document text")
		assert.ErrorIs(t, err, ErrSummarize)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("compressor failure aborts", func(t *testing.T) {
		summarizer := mock.NewSummarizer()
		summarizer.SummarizeFunc = func(ctx context.Context, contextText, chunk string) (string, error) {
			return strings.Repeat("s", 60), nil
		}

		boom := errors.New("model unavailable")
		compressor := mock.NewCompressor()
		compressor.CompressFunc = func(ctx context.Context, contextText string) (string, error) {
			return "", boom
		}

		p, err := NewPipeline(summarizer, compressor, 10, 100)
		require.NoError(t, err)

		_, err = p.Run(ctx, strings.Repeat("x", 30))
		assert.ErrorIs(t, err, ErrCompress)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("non-shrinking compressor fails fast", func(t *testing.T) {
		summarizer := mock.NewSummarizer()
		summarizer.SummarizeFunc = func(ctx context.Context, contextText, chunk string) (string, error) {
			return strings.Repeat("s", 60), nil
		}

		compressor := mock.NewCompressor()
		compressor.CompressFunc = func(ctx context.Context, contextText string) (string, error) {
			return contextText, nil
		}

		p, err := NewPipeline(summarizer, compressor, 10, 100)
		require.NoError(t, err)

		_, err = p.Run(ctx, strings.Repeat("x", 30))
		assert.ErrorIs(t, err, ErrCompressorNoShrink)
	})

	t.Run("cancellation stops the run", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		summarizer := mock.NewSummarizer()
		p, err := NewPipeline(summarizer, mock.NewCompressor(), 10, 100)
		require.NoError(t, err)

		_, err = p.Run(cancelled, "some document text")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, summarizer.CallCount())
	})
}
