package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/longdoc/core"
)

// FormatResults renders results as a textual report block. The report is
// meant to be read by a text-oriented reasoning caller, not machine-parsed.
func FormatResults(results []*core.SearchResult, keywords []string) string {
	if len(results) == 0 {
		return fmt.Sprintf("No matches found for keywords: %v", keywords)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "===== Search Results for %v =====\n", keywords)
	fmt.Fprintf(&b, "Found %d results:", len(results))

	for i, result := range results {
		fmt.Fprintf(&b, "\n\n--- Result %d (Score: %.2f, Cursor: %d) ---\n", i+1, result.Score, result.Cursor)
		fmt.Fprintf(&b, "Matched keywords: %s\n", strings.Join(result.MatchedKeywords, ", "))
		fmt.Fprintf(&b, "Text: ...%s...", result.Text)
	}

	return b.String()
}
