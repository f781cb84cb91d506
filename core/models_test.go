package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("who built the lighthouse")
		b := IDFromContent("who built the lighthouse")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content distinct IDs", func(t *testing.T) {
		a := IDFromContent("alpha")
		b := IDFromContent("beta")
		assert.NotEqual(t, a, b)
	})
}

func TestSessionID(t *testing.T) {
	// Same question against different documents must not collide,
	// and the separator must keep (q, doc) pairs unambiguous.
	a := SessionID("q", "document one")
	b := SessionID("q", "document two")
	assert.NotEqual(t, a, b)

	c := SessionID("qdoc", "ument")
	d := SessionID("q", "document")
	assert.NotEqual(t, c, d)
}

func TestDocumentSlice(t *testing.T) {
	doc := NewDocument("hello world")

	t.Run("in range", func(t *testing.T) {
		assert.Equal(t, "hello", doc.Slice(0, 5))
	})

	t.Run("clamps negative start", func(t *testing.T) {
		assert.Equal(t, "hel", doc.Slice(-10, 3))
	})

	t.Run("clamps end past length", func(t *testing.T) {
		assert.Equal(t, "world", doc.Slice(6, 100))
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		assert.Equal(t, "", doc.Slice(8, 2))
	})

	t.Run("empty document", func(t *testing.T) {
		empty := NewDocument("")
		assert.Equal(t, "", empty.Slice(0, 10))
		assert.Equal(t, 0, empty.Len())
	})
}
