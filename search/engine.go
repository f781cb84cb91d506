package search

import (
	"log/slog"
	"strings"

	"github.com/poiesic/longdoc/core"
	"github.com/poiesic/longdoc/index"
)

const (
	// DefaultMaxResults is the result count used when callers pass 0.
	DefaultMaxResults = 10

	// DefaultContextChars is the snippet half-width used when callers pass 0.
	DefaultContextChars = 100

	// maxBasePositions caps how many base-term occurrences proximity search
	// inspects. Very common base terms are subsampled with an even stride,
	// trading completeness for bounded latency.
	maxBasePositions = 2000
)

// Engine performs keyword search and context expansion over one document.
// The engine owns the position index; searches borrow it read-only, so a
// single Engine may serve any number of concurrent callers.
type Engine struct {
	doc    *core.Document
	index  *index.PositionIndex
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine builds the position index for doc and returns an engine bound
// to it. Index construction happens once here; the document and index are
// read-only afterward.
func NewEngine(doc *core.Document, opts ...Option) (*Engine, error) {
	if doc == nil {
		return nil, ErrDocumentRequired
	}

	e := &Engine{
		doc:    doc,
		index:  index.Build(doc.Content()),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Document returns the document this engine searches.
func (e *Engine) Document() *core.Document {
	return e.doc
}

// Index returns the engine's position index.
func (e *Engine) Index() *index.PositionIndex {
	return e.index
}

// SearchWithFallback runs proximity search and, when it returns fewer than
// minResults hits, falls back to fuzzy search. Fuzzy results are
// lower-confidence: they match morphological variants and substrings
// rather than exact co-occurring terms.
func (e *Engine) SearchWithFallback(keywords []string, maxResults, contextChars, minResults int) []*core.SearchResult {
	results := e.ProximitySearch(keywords, maxResults, contextChars)
	if len(results) >= minResults {
		return results
	}

	e.logger.Debug("proximity search under-returned, falling back to fuzzy",
		"proximityHits", len(results), "minResults", minResults)
	return e.FuzzySearch(keywords, maxResults, contextChars)
}

// snippet extracts a context window of contextChars on each side of cursor.
func (e *Engine) snippet(cursor, contextChars int) string {
	return e.doc.Slice(cursor-contextChars, cursor+contextChars)
}

func normalizeLimits(maxResults, contextChars int) (int, int) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if contextChars <= 0 {
		contextChars = DefaultContextChars
	}
	return maxResults, contextChars
}

func lowercaseKeywords(keywords []string) []string {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return lowered
}
