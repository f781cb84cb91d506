package search

import "github.com/poiesic/longdoc/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(keywords []string)
	BaseCandidates(keyword string, count int)
	SampledCandidates(count int)
	Hit(result *core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ []string)               {}
func (n *noopMonitor) BaseCandidates(_ string, _ int) {}
func (n *noopMonitor) SampledCandidates(_ int)        {}
func (n *noopMonitor) Hit(_ *core.SearchResult)       {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)  {}
