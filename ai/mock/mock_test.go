package mock

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer(t *testing.T) {
	ctx := context.Background()

	t.Run("default truncates chunk", func(t *testing.T) {
		s := NewSummarizer()
		out, err := s.Summarize(ctx, "", strings.Repeat("x", 500))
		require.NoError(t, err)
		assert.Len(t, out, 200)
		assert.Equal(t, 1, s.CallCount())
	})

	t.Run("override and reset", func(t *testing.T) {
		s := NewSummarizer()
		s.SummarizeFunc = func(ctx context.Context, contextText, chunk string) (string, error) {
			return "", errors.New("boom")
		}
		_, err := s.Summarize(ctx, "", "chunk")
		assert.Error(t, err)

		s.Reset()
		assert.Equal(t, 0, s.CallCount())
		out, err := s.Summarize(ctx, "", "chunk")
		require.NoError(t, err)
		assert.Equal(t, "chunk", out)
	})
}

func TestCompressor(t *testing.T) {
	t.Run("default strictly shrinks", func(t *testing.T) {
		c := NewCompressor()
		out, err := c.Compress(context.Background(), "0123456789")
		require.NoError(t, err)
		assert.Equal(t, "01234", out)
		assert.Less(t, len(out), 10)
	})
}

func TestProvider(t *testing.T) {
	p := NewProvider()

	s := p.ChunkSummarizer("what happened?")
	c := p.ContextCompressor("what happened?")
	assert.Same(t, p.Summarizer, s)
	assert.Same(t, p.Compressor, c)
	assert.Equal(t, []string{"what happened?", "what happened?"}, p.Questions())

	letter, err := p.Answerer().Answer(context.Background(), "q", "ctx", []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, "A", letter)

	require.NoError(t, p.Close())
	assert.True(t, p.Closed())
}
