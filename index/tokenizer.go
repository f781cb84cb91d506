package index

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single word occurrence in a document.
type Token struct {
	Text    string // lowercased word
	Ordinal uint32 // position in the token sequence
	Offset  int    // exact character offset of the first byte in the document
}

// isWordRune reports whether r is part of a word token.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Tokenize splits text into lowercased word tokens. Words are maximal runs
// of letters, digits and underscores; everything else is a separator.
// Each token records the exact byte offset where it starts, so cursors
// derived from token ordinals point at the real document position instead
// of a whitespace-normalized approximation.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)/6)

	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			tokens = append(tokens, Token{
				Text:    strings.ToLower(text[start:i]),
				Ordinal: uint32(len(tokens)),
				Offset:  start,
			})
			start = -1
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, Token{
			Text:    strings.ToLower(text[start:]),
			Ordinal: uint32(len(tokens)),
			Offset:  start,
		})
	}

	return tokens
}
