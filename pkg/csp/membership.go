package csp

import (
	"fmt"
	"slices"
	"strings"
)

// Membership restricts a single variable to an explicit set of values.
// It is the only unary variant, which makes it the main contributor to the
// legal-value counts computed by the ordering heuristic.
type Membership struct {
	v       Variable
	allowed []Value
	set     map[Value]struct{}
}

// NewMembership creates a membership constraint restricting v to allowed.
func NewMembership(v Variable, allowed []Value) *Membership {
	set := make(map[Value]struct{}, len(allowed))
	for _, val := range allowed {
		set[val] = struct{}{}
	}
	return &Membership{v: v, allowed: slices.Clone(allowed), set: set}
}

// Scope implements Constraint.
func (c *Membership) Scope() []Variable { return []Variable{c.v} }

// Type implements Constraint.
func (c *Membership) Type() string { return "Membership" }

// Evaluate reports true unless v is assigned, in which case it checks set
// membership. Implements Constraint.
func (c *Membership) Evaluate(a Assignment) bool {
	val, ok := a[c.v]
	if !ok {
		return true
	}
	_, allowed := c.set[val]
	return allowed
}

// String implements Constraint.
func (c *Membership) String() string {
	vals := make([]string, len(c.allowed))
	for i, v := range c.allowed {
		vals[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("in(%s,{%s})", c.v, strings.Join(vals, ","))
}
