package csp

import (
	"context"
	"fmt"
	"iter"
	"slices"
)

// Solver enumerates satisfying assignments of a model by depth-first
// backtracking over a fixed variable order, with one-variable-ahead
// forward checking (configurable).
//
// Solving is purely synchronous recursion: no goroutines, no shared
// mutable state across invocations. Each call to Solutions clones the
// model's domains and owns its clone exclusively, so the same solver (or
// several solvers over one model) can run searches one after another
// without interference.
//
// Thread safety: a Solver instance is not safe for concurrent use. Share
// the immutable Model instead and give each goroutine its own Solver.
type Solver struct {
	model  *Model
	order  []Variable
	config *SolverConfig
	stats  SearchStats
}

// NewSolver creates a solver that visits variables in the model's
// declaration order.
func NewSolver(m *Model) *Solver {
	return NewSolverWithOrder(m, nil)
}

// NewSolverWithOrder creates a solver with an explicit variable order,
// typically produced by OrderVariables. A nil or empty order falls back to
// the model's declaration order.
func NewSolverWithOrder(m *Model, order []Variable) *Solver {
	return NewSolverWithConfig(m, order, m.Config())
}

// NewSolverWithConfig creates a solver with a custom configuration that
// overrides the model's. A nil config falls back to the model's.
func NewSolverWithConfig(m *Model, order []Variable, config *SolverConfig) *Solver {
	if len(order) == 0 {
		order = m.Variables()
	}
	if config == nil {
		config = m.Config()
	}
	return &Solver{
		model:  m,
		order:  slices.Clone(order),
		config: config,
	}
}

// Model returns the model this solver searches over.
func (s *Solver) Model() *Model { return s.model }

// Order returns the fixed variable order used by this solver.
// The returned slice must not be modified.
func (s *Solver) Order() []Variable { return s.order }

// Stats returns the counters of the most recent Solutions run, including
// runs the caller abandoned early. Zero before the first run.
func (s *Solver) Stats() SearchStats { return s.stats }

// Solutions returns a lazy sequence of satisfying assignments. No solution
// is computed before the caller demands it; breaking out of the range
// stops the search with no background work left behind. Each range over
// the sequence restarts the search from scratch on freshly cloned domains.
//
// The context is checked at every node; cancellation ends the sequence
// early without error (an exhausted and a cancelled sequence both simply
// stop — inspect ctx.Err() to tell them apart). A nil context disables
// the checks.
//
// Yielded assignments are snapshots: callers may retain or mutate them.
// An empty sequence means the problem has no solutions; it is never an
// error.
func (s *Solver) Solutions(ctx context.Context) iter.Seq[Assignment] {
	return func(yield func(Assignment) bool) {
		st := &search{
			model:      s.model,
			order:      s.order,
			domains:    s.model.CloneDomains(),
			assignment: make(Assignment, len(s.order)),
			forward:    s.config.ForwardChecking,
		}
		defer func() { s.stats = st.stats }()
		st.backtrack(ctx, 0, yield)
	}
}

// All collects every solution. It validates the model first, failing fast
// on malformed input; the context bounds the search and its error is
// returned alongside whatever solutions were found before cancellation.
func (s *Solver) All(ctx context.Context) ([]Assignment, error) {
	if err := s.model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}
	solutions := make([]Assignment, 0)
	for sol := range s.Solutions(ctx) {
		solutions = append(solutions, sol)
	}
	if ctx != nil {
		return solutions, ctx.Err()
	}
	return solutions, nil
}

// First returns the first solution, or ok=false if none exists. The
// remainder of the search tree is never explored.
func (s *Solver) First(ctx context.Context) (Assignment, bool) {
	for sol := range s.Solutions(ctx) {
		return sol, true
	}
	return nil, false
}

// search is the state of one in-flight invocation: the pruned domain
// clone, the partial assignment, and the counters. It exists only for the
// duration of one Solutions run.
type search struct {
	model      *Model
	order      []Variable
	domains    map[Variable]Domain
	assignment Assignment
	forward    bool
	stats      SearchStats
}

// removal records the values pruned from one variable's domain during a
// forward-checking pass, for restoration when the branch returns.
type removal struct {
	v      Variable
	values []Value
}

// backtrack explores the subtree rooted at order[idx]. It returns false
// when the caller stopped consuming solutions (or the context was
// cancelled), which unwinds the whole recursion.
func (st *search) backtrack(ctx context.Context, idx int, yield func(Assignment) bool) bool {
	if ctx != nil && ctx.Err() != nil {
		return false
	}
	if idx == len(st.order) {
		st.stats.Solutions++
		return yield(st.assignment.Clone())
	}

	v := st.order[idx]
	dom := st.domains[v]
	st.stats.Nodes++
	st.stats.Branches += len(dom)

	for _, val := range dom {
		st.assignment[v] = val
		if st.model.Consistent(v, st.assignment) {
			pruned, alive := st.forwardCheck(idx)
			if alive {
				if !st.backtrack(ctx, idx+1, yield) {
					st.restore(pruned)
					delete(st.assignment, v)
					return false
				}
			}
			// Restore regardless of whether the branch yielded
			// anything — sibling branches need the full domains.
			st.restore(pruned)
		}
		delete(st.assignment, v)
	}
	return true
}

// forwardCheck prunes, for every variable after order[idx], the domain
// values that fail that variable's local constraints under a tentative
// probe on top of the current assignment. Removals are recorded per
// variable for later restoration. Returns alive=false as soon as some
// future domain empties: the branch is dead.
//
// Because of deferred evaluation, a constraint only prunes once enough of
// its scope is tentatively filled, so pruning power depends on the
// variable order and constraint arity.
func (st *search) forwardCheck(idx int) ([]removal, bool) {
	if !st.forward {
		return nil, true
	}
	var pruned []removal
	for _, w := range st.order[idx+1:] {
		dom := st.domains[w]
		kept := dom[:0:0]
		var removed []Value
		for _, cand := range dom {
			st.assignment[w] = cand
			if st.model.Consistent(w, st.assignment) {
				kept = append(kept, cand)
			} else {
				removed = append(removed, cand)
			}
			delete(st.assignment, w)
		}
		if len(removed) > 0 {
			st.domains[w] = kept
			pruned = append(pruned, removal{v: w, values: removed})
		}
		if len(st.domains[w]) == 0 {
			return pruned, false
		}
	}
	return pruned, true
}

// restore splices pruned values back into their domains.
func (st *search) restore(pruned []removal) {
	for _, r := range pruned {
		st.domains[r.v] = append(st.domains[r.v], r.values...)
	}
}
