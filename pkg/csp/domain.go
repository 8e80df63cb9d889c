package csp

import (
	"fmt"
	"slices"
	"strings"
)

// Domain is the ordered sequence of candidate values a variable may take.
// Order is significant: the solver tries values in domain order, and the
// heuristic probes them in domain order.
//
// Domains held by a Model are never mutated by the engine; each search
// invocation works on a private clone and restores every pruned value on
// backtrack.
type Domain []Value

// NewDomain creates a domain from the given values, preserving order.
func NewDomain(values ...Value) Domain {
	return slices.Clone(values)
}

// Clone returns an independent copy of the domain.
func (d Domain) Clone() Domain {
	return slices.Clone(d)
}

// Has returns true if the domain contains the given value.
func (d Domain) Has(v Value) bool {
	return slices.Contains(d, v)
}

// String returns a human-readable representation, e.g. "{1,2,3}".
func (d Domain) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, v := range d {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteString("}")
	return b.String()
}
