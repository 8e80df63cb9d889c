package csp

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Value is the only supported domain element type.
type Value = int

// Variable is an opaque identifier for a decision variable. Variables are
// introduced by Model.AddVariable and referenced by name in constraints.
type Variable = string

// Assignment maps variables to values. It represents the path from the
// search root to the current node; a key's absence means "unassigned",
// not zero.
type Assignment map[Variable]Value

// Clone returns an independent copy of the assignment. The solver yields
// clones so that callers may retain solutions across iterations.
func (a Assignment) Clone() Assignment {
	return maps.Clone(a)
}

// String returns the assignment in sorted-key order for stable diagnostics.
func (a Assignment) String() string {
	keys := make([]Variable, 0, len(a))
	for v := range a {
		keys = append(keys, v)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, v := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", v, a[v])
	}
	b.WriteString("}")
	return b.String()
}
