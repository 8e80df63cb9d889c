package csp

import (
	"slices"
	"strings"
)

// AllDifferent requires its variables to take pairwise distinct values.
//
// Unlike the full-scope variants, AllDifferent is set-like: it checks the
// subset of its scope that is currently assigned, so it can reject a
// duplicate as soon as the second copy of a value appears. This is what
// gives forward checking its pruning power on permutation-style problems.
type AllDifferent struct {
	vars []Variable
}

// NewAllDifferent creates an all-different constraint over the given variables.
func NewAllDifferent(vars ...Variable) *AllDifferent {
	return &AllDifferent{vars: slices.Clone(vars)}
}

// Scope implements Constraint.
func (c *AllDifferent) Scope() []Variable { return c.vars }

// Type implements Constraint.
func (c *AllDifferent) Type() string { return "AllDifferent" }

// Evaluate reports true iff the assigned subset of the scope contains no
// duplicate values. Implements Constraint.
func (c *AllDifferent) Evaluate(a Assignment) bool {
	seen := make(map[Value]struct{}, len(c.vars))
	for _, v := range c.vars {
		val, ok := a[v]
		if !ok {
			continue
		}
		if _, dup := seen[val]; dup {
			return false
		}
		seen[val] = struct{}{}
	}
	return true
}

// String implements Constraint.
func (c *AllDifferent) String() string {
	return "alldiff(" + strings.Join(c.vars, ",") + ")"
}
