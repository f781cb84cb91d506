package search

import (
	"sort"
	"strings"
	"time"

	"github.com/poiesic/longdoc/core"
)

const (
	// minFuzzyKeywordLen is the shortest keyword considered for fuzzy
	// matching; anything shorter matches too much to be useful.
	minFuzzyKeywordLen = 3

	// maxFuzzyWordsPerKeyword caps how many index words a single keyword
	// may partially match.
	maxFuzzyWordsPerKeyword = 10

	// maxFuzzyPositionsPerWord caps the sampled occurrences of each
	// matching word.
	maxFuzzyPositionsPerWord = 100

	// maxFuzzyCandidates caps the total candidate positions scored.
	maxFuzzyCandidates = 1000
)

// FuzzySearch finds approximate matches using symmetric substring
// comparison: an index word matches a keyword when either contains the
// other. This trades precision for recall on morphological variants and
// typos; callers must treat fuzzy results as lower-confidence than
// proximity results.
//
// A candidate position scores one point per keyword occurrence found
// within contextChars/10 tokens. Results are sorted by score descending
// and truncated to maxResults.
func (e *Engine) FuzzySearch(keywords []string, maxResults, contextChars int) []*core.SearchResult {
	start := time.Now()
	maxResults, contextChars = normalizeLimits(maxResults, contextChars)

	if len(keywords) == 0 {
		return []*core.SearchResult{}
	}
	keywords = lowercaseKeywords(keywords)

	// Collect index words that partially match each keyword. Words() is in
	// first-appearance order, so the per-keyword cap is deterministic.
	matchingWords := make(map[string][]string, len(keywords))
	for _, word := range e.index.Words() {
		for _, kw := range keywords {
			if len(kw) < minFuzzyKeywordLen {
				continue
			}
			if len(matchingWords[kw]) >= maxFuzzyWordsPerKeyword {
				continue
			}
			if strings.Contains(word, kw) || strings.Contains(kw, word) {
				matchingWords[kw] = append(matchingWords[kw], word)
			}
		}
	}

	// Sample occurrence positions for the matched words.
	candidateSet := make(map[uint32]bool)
	keywordMatches := make(map[string][]uint32, len(keywords))
	for kw, words := range matchingWords {
		for _, word := range words {
			positions := e.index.Positions(word).ToArray()
			if len(positions) > maxFuzzyPositionsPerWord {
				step := len(positions) / maxFuzzyPositionsPerWord
				sampled := make([]uint32, 0, maxFuzzyPositionsPerWord)
				for i := 0; i < len(positions) && len(sampled) < maxFuzzyPositionsPerWord; i += step {
					sampled = append(sampled, positions[i])
				}
				positions = sampled
			}
			keywordMatches[kw] = append(keywordMatches[kw], positions...)
			for _, p := range positions {
				candidateSet[p] = true
			}
		}
	}

	candidates := make([]uint32, 0, len(candidateSet))
	for p := range candidateSet {
		candidates = append(candidates, p)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	if len(candidates) > maxFuzzyCandidates {
		candidates = candidates[:maxFuzzyCandidates]
	}

	window := uint32(contextChars / 10)

	var results []*core.SearchResult
	for _, pos := range candidates {
		var matched []string
		positions := make(map[string][]uint32)
		score := 0.0

		for _, kw := range keywords {
			var nearby []uint32
			for _, p := range keywordMatches[kw] {
				if within(p, pos, window) {
					nearby = append(nearby, p)
				}
			}
			if len(nearby) > 0 {
				matched = append(matched, kw)
				positions[kw] = nearby
				score += float64(len(nearby))
			}
		}

		if len(matched) == 0 {
			continue
		}

		cursor := e.index.Offset(pos)
		results = append(results, &core.SearchResult{
			Text:             e.snippet(cursor, contextChars),
			Score:            score,
			Cursor:           cursor,
			MatchedKeywords:  matched,
			KeywordPositions: positions,
		})
	}

	results = dedupeByCursor(results)
	sortByScore(results)
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	e.logger.Debug("fuzzy search completed",
		"keywords", keywords, "results", len(results), "elapsed", time.Since(start))

	return results
}

// within reports whether a and b are at most radius ordinals apart.
func within(a, b, radius uint32) bool {
	if a > b {
		return a-b <= radius
	}
	return b-a <= radius
}
