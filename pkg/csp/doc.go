// Package csp implements a finite-domain constraint-satisfaction search
// engine. Problems are described as a Model: a set of named variables with
// ordered integer domains, plus a list of constraints over those variables.
// The Solver enumerates satisfying assignments lazily using chronological
// backtracking with one-variable-ahead forward checking.
//
// # Architecture Overview
//
// The engine separates the immutable problem definition from mutable
// search state:
//
//	Model (immutable during solving):
//	  - Variables with initial domains, in declaration order
//	  - Constraints implementing the Constraint interface
//	  - Configuration (forward checking on/off)
//
//	Search state (owned by one Solutions call):
//	  - A private clone of the domain map, pruned and restored as the
//	    search descends and backtracks
//	  - The partial assignment for the current path
//	  - Node and branch counters
//
// # Deferred Evaluation
//
// Every constraint honors a deferred-evaluation contract: Evaluate returns
// true whenever its scope is only partially assigned, and checks the real
// condition only once the relevant variables are present in the assignment.
// This lets a single predicate be probed safely against partial assignments
// during forward checking and heuristic ranking, without per-call-site
// special cases.
//
// # Variable Ordering
//
// OrderVariables computes a static visitation order before search begins,
// using minimum-remaining-legal-values with an optional degree tie-break.
// The order is a one-shot approximation probed against single-variable
// assignments; it is not recomputed per search node. See heuristic.go.
//
// # Laziness
//
// Solver.Solutions returns an iter.Seq: no solution is computed before the
// caller demands it, and breaking out of the range stops the search. The
// search is purely synchronous, so early termination needs no cancellation
// machinery beyond an optional context checked at every node.
package csp
