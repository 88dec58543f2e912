package search

import "github.com/Sanjay1766/OptiSearch-AI/core"

// SearchMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	// Start is called once per query before any scoring.
	Start(query string)

	// Candidates is called with the ids collected by the inclusion policy,
	// in ranked order, before truncation.
	Candidates(ids []core.ID)

	// Fallback is called when the inclusion policy collected nothing and
	// the top-5 fallback engaged.
	Fallback(query string)

	// Finish is called with the final truncated results.
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)               {}
func (n *noopMonitor) Candidates(_ []core.ID)       {}
func (n *noopMonitor) Fallback(_ string)            {}
func (n *noopMonitor) Finish(_ []core.SearchResult) {}
