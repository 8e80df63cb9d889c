package csp

import "fmt"

// DigitAddition models one column of base-10 addition with carry:
//
//	x + y + cin == 10*cout + z
//
// once all five variables are assigned. It encodes no range restriction on
// its variables; callers add Membership constraints separately when digit
// or carry ranges must be enforced. Intended for cryptarithmetic puzzles,
// one constraint per column.
type DigitAddition struct {
	x, y, cin, z, cout Variable
}

// NewDigitAddition creates a digit-addition constraint for one column.
func NewDigitAddition(x, y, cin, z, cout Variable) *DigitAddition {
	return &DigitAddition{x: x, y: y, cin: cin, z: z, cout: cout}
}

// Scope implements Constraint.
func (c *DigitAddition) Scope() []Variable {
	return []Variable{c.x, c.y, c.cin, c.z, c.cout}
}

// Type implements Constraint.
func (c *DigitAddition) Type() string { return "DigitAddition" }

// Evaluate reports true unless all five variables are assigned, in which
// case it checks the column equation. Implements Constraint.
func (c *DigitAddition) Evaluate(a Assignment) bool {
	x, ok := a[c.x]
	if !ok {
		return true
	}
	y, ok := a[c.y]
	if !ok {
		return true
	}
	cin, ok := a[c.cin]
	if !ok {
		return true
	}
	z, ok := a[c.z]
	if !ok {
		return true
	}
	cout, ok := a[c.cout]
	if !ok {
		return true
	}
	return x+y+cin == 10*cout+z
}

// String implements Constraint.
func (c *DigitAddition) String() string {
	return fmt.Sprintf("add10(%s,%s,%s->%s,%s)", c.x, c.y, c.cin, c.z, c.cout)
}
