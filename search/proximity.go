package search

import (
	"sort"
	"time"

	"github.com/poiesic/longdoc/core"
)

// ProximitySearch finds places where all keywords co-occur within a
// token-distance window, using boolean AND semantics.
//
// The first keyword is the base term: its occurrences form the candidate
// set, and every other keyword must have an occurrence within
// contextChars/5 tokens of a candidate for it to be accepted. A candidate
// scores 10 points per keyword plus a proximity bonus of max(0, 50-span),
// where span is the ordinal distance between the earliest and latest
// matched occurrences.
//
// Results are deduplicated by cursor, sorted by score descending and
// truncated to maxResults. An empty keyword list, an empty document or an
// unknown base term all return an empty slice, never an error.
func (e *Engine) ProximitySearch(keywords []string, maxResults, contextChars int) []*core.SearchResult {
	return e.ProximitySearchWithMonitor(keywords, maxResults, contextChars, nil)
}

// ProximitySearchWithMonitor is ProximitySearch with observation hooks.
// The monitor receives callbacks at each stage of the search.
func (e *Engine) ProximitySearchWithMonitor(keywords []string, maxResults, contextChars int, monitor SearchMonitor) []*core.SearchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	start := time.Now()
	maxResults, contextChars = normalizeLimits(maxResults, contextChars)

	if len(keywords) == 0 {
		return []*core.SearchResult{}
	}
	keywords = lowercaseKeywords(keywords)
	monitor.Start(keywords)

	// Token-distance window derived from the requested character width.
	window := uint32(contextChars / 5)

	base := keywords[0]
	basePositions := e.index.Positions(base)
	if basePositions == nil {
		e.logger.Debug("base keyword not found in document", "keyword", base)
		monitor.Finish(nil)
		return []*core.SearchResult{}
	}

	candidates := basePositions.ToArray()
	monitor.BaseCandidates(base, len(candidates))

	// Subsample very common base terms with an even stride. This bounds
	// latency at the cost of completeness; see the package documentation.
	if len(candidates) > maxBasePositions {
		e.logger.Info("base keyword is very common, sampling positions",
			"keyword", base, "positions", len(candidates), "sampled", maxBasePositions)
		step := len(candidates) / maxBasePositions
		sampled := make([]uint32, 0, maxBasePositions)
		for i := 0; i < len(candidates) && len(sampled) < maxBasePositions; i += step {
			sampled = append(sampled, candidates[i])
		}
		candidates = sampled
		monitor.SampledCandidates(len(candidates))
	}

	var results []*core.SearchResult
	for _, basePos := range candidates {
		matched := []string{base}
		positions := map[string][]uint32{base: {basePos}}

		for _, kw := range keywords[1:] {
			nearby := e.index.OrdinalsInWindow(kw, basePos, window)
			if len(nearby) > 0 {
				matched = append(matched, kw)
				positions[kw] = nearby
			}
		}

		// True boolean AND: all keywords or nothing.
		if len(matched) != len(keywords) {
			continue
		}

		cursor := e.index.Offset(basePos)
		result := &core.SearchResult{
			Text:             e.snippet(cursor, contextChars),
			Score:            scoreCandidate(matched, positions),
			Cursor:           cursor,
			MatchedKeywords:  matched,
			KeywordPositions: positions,
		}
		results = append(results, result)
		monitor.Hit(result)

		// Collect twice the requested count, then stop. Combined with the
		// base-position cap this keeps worst-case latency roughly linear
		// in the base term's frequency.
		if len(results) >= maxResults*2 {
			e.logger.Debug("early exit", "collected", len(results))
			break
		}
	}

	results = dedupeByCursor(results)
	sortByScore(results)
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	e.logger.Debug("proximity search completed",
		"keywords", keywords, "results", len(results), "elapsed", time.Since(start))
	monitor.Finish(results)

	return results
}

// scoreCandidate computes 10 points per matched keyword plus a proximity
// bonus when more than one occurrence participates in the match.
func scoreCandidate(matched []string, positions map[string][]uint32) float64 {
	score := float64(10 * len(matched))

	var all []uint32
	for _, ordinals := range positions {
		all = append(all, ordinals...)
	}
	if len(all) > 1 {
		lo, hi := all[0], all[0]
		for _, p := range all[1:] {
			if p < lo {
				lo = p
			}
			if p > hi {
				hi = p
			}
		}
		span := float64(hi - lo)
		if bonus := 50 - span; bonus > 0 {
			score += bonus
		}
	}

	return score
}

// dedupeByCursor keeps the first result seen for each cursor.
func dedupeByCursor(results []*core.SearchResult) []*core.SearchResult {
	seen := make(map[int]bool, len(results))
	unique := results[:0]
	for _, r := range results {
		if seen[r.Cursor] {
			continue
		}
		seen[r.Cursor] = true
		unique = append(unique, r)
	}
	return unique
}

// sortByScore orders results by non-increasing score, keeping document
// order among equal scores.
func sortByScore(results []*core.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
