package rolling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunks(t *testing.T) {
	t.Run("concatenation equals source", func(t *testing.T) {
		text := strings.Repeat("abcdefghij", 1000) // 10000 chars
		for _, size := range []int{1, 7, 100, 3333, 10000, 20000} {
			var sb strings.Builder
			for chunk := range Chunks(text, size) {
				sb.WriteString(chunk.Text)
			}
			assert.Equal(t, text, sb.String(), "chunk size %d", size)
		}
	})

	t.Run("starts advance by chunk size", func(t *testing.T) {
		text := strings.Repeat("x", 250)
		var starts []int
		var sizes []int
		for chunk := range Chunks(text, 100) {
			starts = append(starts, chunk.Start)
			sizes = append(sizes, len(chunk.Text))
		}
		assert.Equal(t, []int{0, 100, 200}, starts)
		assert.Equal(t, []int{100, 100, 50}, sizes)
	})

	t.Run("single chunk when text fits", func(t *testing.T) {
		var chunks []Chunk
		for chunk := range Chunks("short", 100) {
			chunks = append(chunks, chunk)
		}
		require.Len(t, chunks, 1)
		assert.Equal(t, "short", chunks[0].Text)
		assert.Equal(t, 0, chunks[0].Start)
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		count := 0
		for range Chunks("", 100) {
			count++
		}
		assert.Equal(t, 0, count)
	})

	t.Run("non-positive chunk size yields nothing", func(t *testing.T) {
		count := 0
		for range Chunks("some text", 0) {
			count++
		}
		for range Chunks("some text", -5) {
			count++
		}
		assert.Equal(t, 0, count)
	})

	t.Run("break stops iteration", func(t *testing.T) {
		text := strings.Repeat("x", 1000)
		count := 0
		for range Chunks(text, 10) {
			count++
			if count == 3 {
				break
			}
		}
		assert.Equal(t, 3, count)
	})
}

func TestChunkCount(t *testing.T) {
	assert.Equal(t, 0, ChunkCount(0, 100))
	assert.Equal(t, 0, ChunkCount(100, 0))
	assert.Equal(t, 1, ChunkCount(1, 100))
	assert.Equal(t, 1, ChunkCount(100, 100))
	assert.Equal(t, 2, ChunkCount(101, 100))
	assert.Equal(t, 10, ChunkCount(1_000_000, 100_000))
	assert.Equal(t, 11, ChunkCount(1_000_001, 100_000))
}
