package csp

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Table is an extensional constraint: once every variable in its scope is
// assigned, the tuple of their values (in scope order) must equal one of
// the allowed rows. Rows are stored in a set keyed by an encoded tuple, so
// evaluation is O(arity) regardless of table size.
type Table struct {
	vars    []Variable
	rows    [][]Value
	allowed map[string]struct{}
}

// NewTable creates an extensional constraint over the given variables and
// allowed rows. Scope order determines how rows are matched.
func NewTable(vars []Variable, rows [][]Value) *Table {
	copied := make([][]Value, len(rows))
	allowed := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		copied[i] = slices.Clone(row)
		allowed[encodeTuple(row)] = struct{}{}
	}
	return &Table{vars: slices.Clone(vars), rows: copied, allowed: allowed}
}

// encodeTuple produces a canonical key for a value tuple.
func encodeTuple(row []Value) string {
	var b strings.Builder
	for i, v := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Scope implements Constraint.
func (c *Table) Scope() []Variable { return c.vars }

// Type implements Constraint.
func (c *Table) Type() string { return "Table" }

// Evaluate reports true unless all variables are assigned, in which case
// the tuple of their values must be an allowed row. Implements Constraint.
func (c *Table) Evaluate(a Assignment) bool {
	tuple := make([]Value, len(c.vars))
	for i, v := range c.vars {
		val, ok := a[v]
		if !ok {
			return true
		}
		tuple[i] = val
	}
	_, ok := c.allowed[encodeTuple(tuple)]
	return ok
}

// String implements Constraint.
func (c *Table) String() string {
	return fmt.Sprintf("table(%s) rows=%d", strings.Join(c.vars, ","), len(c.rows))
}
