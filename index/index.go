package index

import (
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring"
)

// PositionIndex maps each distinct word to the ascending set of token
// ordinals at which it occurs. It also keeps the token sequence so that
// ordinals can be converted back to exact character offsets.
//
// The index is built once and never mutated; all accessors are safe for
// concurrent use without locking.
type PositionIndex struct {
	tokens   []Token
	postings map[string]*roaring.Bitmap
	words    []string // distinct words in first-appearance order
	docLen   int
}

// Build tokenizes text and constructs its position index.
func Build(text string) *PositionIndex {
	start := time.Now()
	tokens := Tokenize(text)

	postings := make(map[string]*roaring.Bitmap)
	words := make([]string, 0, len(postings))
	for _, token := range tokens {
		bm, ok := postings[token.Text]
		if !ok {
			bm = roaring.New()
			postings[token.Text] = bm
			words = append(words, token.Text)
		}
		bm.Add(token.Ordinal)
	}

	slog.Debug("position index built",
		"documentBytes", len(text),
		"tokens", len(tokens),
		"distinctWords", len(words),
		"elapsed", time.Since(start))

	return &PositionIndex{
		tokens:   tokens,
		postings: postings,
		words:    words,
		docLen:   len(text),
	}
}

// TokenCount returns the number of tokens in the document.
func (ix *PositionIndex) TokenCount() int {
	return len(ix.tokens)
}

// DocumentLength returns the indexed document's length in bytes.
func (ix *PositionIndex) DocumentLength() int {
	return ix.docLen
}

// Positions returns the ordinal set for word, or nil if the word does not
// occur. The returned bitmap is shared and must not be modified.
func (ix *PositionIndex) Positions(word string) *roaring.Bitmap {
	return ix.postings[word]
}

// Words returns the distinct words in first-appearance order. The returned
// slice is shared and must not be modified. Iteration order is stable so
// capped scans (fuzzy matching) stay deterministic.
func (ix *PositionIndex) Words() []string {
	return ix.words
}

// Offset converts a token ordinal to the exact character offset where the
// token starts. Ordinals outside the token sequence clamp to the document
// bounds.
func (ix *PositionIndex) Offset(ordinal uint32) int {
	if len(ix.tokens) == 0 {
		return 0
	}
	if int(ordinal) >= len(ix.tokens) {
		return ix.docLen
	}
	return ix.tokens[ordinal].Offset
}

// CountInWindow returns how many occurrences of word fall inside the
// closed token-ordinal window [center-radius, center+radius].
func (ix *PositionIndex) CountInWindow(word string, center, radius uint32) uint64 {
	bm := ix.postings[word]
	if bm == nil {
		return 0
	}
	lo := uint32(0)
	if center > radius {
		lo = center - radius
	}
	hi := center + radius
	count := bm.Rank(hi)
	if lo > 0 {
		count -= bm.Rank(lo - 1)
	}
	return count
}

// OrdinalsInWindow returns the ascending ordinals of word inside the closed
// token-ordinal window [center-radius, center+radius].
func (ix *PositionIndex) OrdinalsInWindow(word string, center, radius uint32) []uint32 {
	bm := ix.postings[word]
	if bm == nil {
		return nil
	}
	lo := uint32(0)
	if center > radius {
		lo = center - radius
	}
	hi := center + radius

	var ordinals []uint32
	it := bm.Iterator()
	it.AdvanceIfNeeded(lo)
	for it.HasNext() {
		v := it.Next()
		if v > hi {
			break
		}
		ordinals = append(ordinals, v)
	}
	return ordinals
}
