package csp

import (
	"fmt"
	"slices"
	"strings"
)

// LinearSum compares the sum of its variables against a constant.
// It is permissive until every variable in its scope is assigned.
type LinearSum struct {
	vars []Variable
	rel  Relation
	k    Value
}

// NewLinearSum creates a sum comparison constraint, read as
// "sum(vars) op k". The operator string is validated here: an unrecognized
// operator fails with ErrInvalidOperator before any search begins.
func NewLinearSum(vars []Variable, op string, k Value) (*LinearSum, error) {
	rel, err := ParseRelation(op)
	if err != nil {
		return nil, err
	}
	return &LinearSum{vars: slices.Clone(vars), rel: rel, k: k}, nil
}

// Scope implements Constraint.
func (c *LinearSum) Scope() []Variable { return c.vars }

// Type implements Constraint.
func (c *LinearSum) Type() string { return "LinearSum" }

// Evaluate reports true unless all variables are assigned, in which case it
// compares their sum against the constant. Implements Constraint.
func (c *LinearSum) Evaluate(a Assignment) bool {
	sum := 0
	for _, v := range c.vars {
		val, ok := a[v]
		if !ok {
			return true
		}
		sum += val
	}
	return c.rel.Holds(sum, c.k)
}

// String implements Constraint.
func (c *LinearSum) String() string {
	return fmt.Sprintf("sum(%s) %s %d", strings.Join(c.vars, ","), c.rel, c.k)
}
