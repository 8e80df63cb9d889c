package csp

import (
	"errors"
	"fmt"
)

// ErrInvalidOperator is returned when a comparison constraint is built with
// an unrecognized operator string. It is the only constraint-construction
// failure in the engine: a malformed operator never reaches search time.
var ErrInvalidOperator = errors.New("invalid comparison operator")

// Relation identifies one of the six supported integer comparisons.
type Relation int

const (
	// Eq is the == comparison.
	Eq Relation = iota
	// Ne is the != comparison.
	Ne
	// Le is the <= comparison.
	Le
	// Lt is the < comparison.
	Lt
	// Ge is the >= comparison.
	Ge
	// Gt is the > comparison.
	Gt
)

// ParseRelation maps an operator string to a Relation. Recognized operators
// are ==, !=, <=, <, >= and >. Any other token fails with ErrInvalidOperator.
func ParseRelation(op string) (Relation, error) {
	switch op {
	case "==":
		return Eq, nil
	case "!=":
		return Ne, nil
	case "<=":
		return Le, nil
	case "<":
		return Lt, nil
	case ">=":
		return Ge, nil
	case ">":
		return Gt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}
}

// Holds reports whether the comparison holds for the given operands.
func (r Relation) Holds(a, b int) bool {
	switch r {
	case Eq:
		return a == b
	case Ne:
		return a != b
	case Le:
		return a <= b
	case Lt:
		return a < b
	case Ge:
		return a >= b
	case Gt:
		return a > b
	default:
		return false
	}
}

// String returns the operator in its surface syntax.
func (r Relation) String() string {
	switch r {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Le:
		return "<="
	case Lt:
		return "<"
	case Ge:
		return ">="
	case Gt:
		return ">"
	default:
		return "?"
	}
}

// name returns the short mnemonic used in constraint labels, e.g. "lt(A,B)".
func (r Relation) name() string {
	switch r {
	case Eq:
		return "eq"
	case Ne:
		return "ne"
	case Le:
		return "le"
	case Lt:
		return "lt"
	case Ge:
		return "ge"
	case Gt:
		return "gt"
	default:
		return "?"
	}
}
