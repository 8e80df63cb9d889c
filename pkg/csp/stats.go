package csp

import "fmt"

// SearchStats accumulates counters for one search invocation. Counters are
// owned by the invocation, never process-wide: independent solver calls do
// not share state.
type SearchStats struct {
	// Nodes counts entries into the search procedure, one per visited
	// variable node (terminal solution nodes are not counted).
	Nodes int

	// Branches sums, over all visited nodes, the node's variable domain
	// size at entry — the branching factor before any pruning there.
	Branches int

	// Solutions counts assignments yielded to the caller.
	Solutions int
}

// String returns the counters in a stable diagnostic form.
func (s SearchStats) String() string {
	return fmt.Sprintf("nodes: %d, branches: %d, solutions: %d", s.Nodes, s.Branches, s.Solutions)
}
