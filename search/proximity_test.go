package search

import (
	"strings"
	"testing"

	"github.com/poiesic/longdoc/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProximitySearch_SingleKeyword(t *testing.T) {
	// One result per occurrence, all at the base score: with a single
	// keyword there is only one matched position, so no proximity bonus.
	engine := newTestEngine(t, "the quick brown fox fox fox")

	results := engine.ProximitySearch([]string{"fox"}, 10, 10)
	require.Len(t, results, 3)

	cursors := make(map[int]bool)
	for _, r := range results {
		assert.Equal(t, 10.0, r.Score)
		assert.Equal(t, []string{"fox"}, r.MatchedKeywords)
		assert.False(t, cursors[r.Cursor], "cursors must be unique")
		cursors[r.Cursor] = true
	}
}

func TestProximitySearch_BooleanAnd(t *testing.T) {
	engine := newTestEngine(t,
		"the fox ran past the dog near the river while a lone fox slept far away from everything else entirely")

	t.Run("all keywords required", func(t *testing.T) {
		results := engine.ProximitySearch([]string{"fox", "dog"}, 10, 100)
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.ElementsMatch(t, []string{"fox", "dog"}, r.MatchedKeywords)
			assert.NotEmpty(t, r.KeywordPositions["fox"])
			assert.NotEmpty(t, r.KeywordPositions["dog"])
		}
	})

	t.Run("candidates missing a keyword are rejected", func(t *testing.T) {
		// Narrow window: the second fox is ~10 tokens from the dog, so only
		// the first fox co-occurs within a window of 20/5 = 4 tokens.
		results := engine.ProximitySearch([]string{"fox", "dog"}, 10, 20)
		require.Len(t, results, 1)
	})

	t.Run("keywords are lowercased", func(t *testing.T) {
		results := engine.ProximitySearch([]string{"FOX", "Dog"}, 10, 100)
		assert.NotEmpty(t, results)
	})
}

func TestProximitySearch_EdgeCases(t *testing.T) {
	engine := newTestEngine(t, "alpha beta gamma")

	t.Run("empty keyword list", func(t *testing.T) {
		assert.Empty(t, engine.ProximitySearch(nil, 10, 100))
	})

	t.Run("unknown base keyword", func(t *testing.T) {
		assert.Empty(t, engine.ProximitySearch([]string{"missing"}, 10, 100))
	})

	t.Run("empty document", func(t *testing.T) {
		empty := newTestEngine(t, "")
		assert.Empty(t, empty.ProximitySearch([]string{"alpha"}, 10, 100))
	})

	t.Run("zero limits fall back to defaults", func(t *testing.T) {
		results := engine.ProximitySearch([]string{"alpha"}, 0, 0)
		assert.Len(t, results, 1)
	})
}

func TestProximitySearch_Ranking(t *testing.T) {
	// Two co-occurrence sites: one tight ("storm lamp"), one spread out.
	// The tight site gets a larger proximity bonus and must rank first.
	text := "storm lamp " + strings.Repeat("filler ", 30) + "storm " + strings.Repeat("pad ", 8) + "lamp end"
	engine := newTestEngine(t, text)

	results := engine.ProximitySearch([]string{"storm", "lamp"}, 10, 100)
	require.Len(t, results, 2)

	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
	assert.Greater(t, results[0].Score, 20.0, "tight match earns a proximity bonus")
	assert.Equal(t, 0, results[0].Cursor, "tight site is at the document start")

	t.Run("sorted non-increasing", func(t *testing.T) {
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})
}

func TestProximitySearch_SnippetAndCursor(t *testing.T) {
	text := "intro words before the needle appears here and trailing text follows"
	engine := newTestEngine(t, text)

	results := engine.ProximitySearch([]string{"needle"}, 10, 10)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, strings.Index(text, "needle"), r.Cursor,
		"cursor is the exact character offset of the token")
	assert.Equal(t, core.NewDocument(text).Slice(r.Cursor-10, r.Cursor+10), r.Text)
	assert.LessOrEqual(t, len(r.Text), 20)
}

func TestProximitySearch_Truncation(t *testing.T) {
	engine := newTestEngine(t, strings.Repeat("echo word ", 50))

	results := engine.ProximitySearch([]string{"echo"}, 3, 10)
	assert.Len(t, results, 3)
}

func TestProximitySearch_CommonTermSampling(t *testing.T) {
	// 5000 occurrences exceed the 2000-position cap; search must still
	// return promptly with results and unique cursors.
	engine := newTestEngine(t, strings.Repeat("common filler more filler ", 5000))

	results := engine.ProximitySearch([]string{"common"}, 5, 40)
	require.Len(t, results, 5)

	seen := make(map[int]bool)
	for _, r := range results {
		assert.False(t, seen[r.Cursor])
		seen[r.Cursor] = true
	}
}

type recordingMonitor struct {
	started   bool
	baseCount int
	hits      int
	finished  bool
}

func (m *recordingMonitor) Start(_ []string)               { m.started = true }
func (m *recordingMonitor) BaseCandidates(_ string, n int) { m.baseCount = n }
func (m *recordingMonitor) SampledCandidates(_ int)        {}
func (m *recordingMonitor) Hit(_ *core.SearchResult)       { m.hits++ }
func (m *recordingMonitor) Finish(_ []*core.SearchResult)  { m.finished = true }

func TestProximitySearch_Monitor(t *testing.T) {
	engine := newTestEngine(t, "fox fox fox")

	monitor := &recordingMonitor{}
	results := engine.ProximitySearchWithMonitor([]string{"fox"}, 10, 10, monitor)

	assert.True(t, monitor.started)
	assert.Equal(t, 3, monitor.baseCount)
	assert.Equal(t, len(results), monitor.hits)
	assert.True(t, monitor.finished)
}
