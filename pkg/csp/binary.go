package csp

import "fmt"

// Binary relates two variables with one of the six integer comparisons.
// It is permissive until both variables are assigned.
type Binary struct {
	x, y Variable
	rel  Relation
}

// NewBinary creates a binary comparison constraint, read as "x rel y".
func NewBinary(x Variable, rel Relation, y Variable) *Binary {
	return &Binary{x: x, y: y, rel: rel}
}

// Scope implements Constraint.
func (c *Binary) Scope() []Variable { return []Variable{c.x, c.y} }

// Type implements Constraint.
func (c *Binary) Type() string { return "Binary" }

// Evaluate reports true unless both variables are assigned, in which case
// it checks the comparison. Implements Constraint.
func (c *Binary) Evaluate(a Assignment) bool {
	xv, okX := a[c.x]
	yv, okY := a[c.y]
	if !okX || !okY {
		return true
	}
	return c.rel.Holds(xv, yv)
}

// String implements Constraint.
func (c *Binary) String() string {
	return fmt.Sprintf("%s(%s,%s)", c.rel.name(), c.x, c.y)
}
