package search

// DefaultExpandChars is a sensible before/after width for callers that
// just want "the passage around this hit". It is deliberately much wider
// than a search snippet: expansion is how a caller drills into a result
// to read surrounding text without re-running search.
const DefaultExpandChars = 10000

// ContextAt returns the document text around cursor, extending before
// characters to the left and after characters to the right. Bounds are
// silently clamped to the document, so out-of-range cursors are never an
// error; the result is always
// document[max(0,cursor-before):min(len,cursor+after)].
func (e *Engine) ContextAt(cursor, before, after int) string {
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}
	return e.doc.Slice(cursor-before, cursor+after)
}
