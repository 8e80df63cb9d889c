package csp

// Constraint is a predicate over an assignment, restricted to a fixed scope
// of variables. Implementations are immutable after construction and safe
// for concurrent read access.
//
// Every implementation must honor the deferred-evaluation contract:
// Evaluate returns true whenever the variables it needs are absent from the
// assignment, and enforces the real condition only once they are present.
// Set-like variants (AllDifferent) check whatever subset of their scope is
// assigned; all other variants wait for their full scope.
//
// Scope order is significant for the tuple-sensitive variants (Table,
// DigitAddition) and irrelevant for the set-like ones.
type Constraint interface {
	// Scope returns the variables this constraint examines.
	// The returned slice must not be modified.
	Scope() []Variable

	// Evaluate reports whether the constraint is satisfied by the
	// assignment, honoring the deferred-evaluation contract.
	Evaluate(a Assignment) bool

	// Type returns a short identifier for the constraint variant.
	Type() string

	// String returns a descriptive label for diagnostics.
	String() string
}
