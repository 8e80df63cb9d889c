package csp

import "fmt"

// Model represents a constraint satisfaction problem declaratively:
// variables with their initial domains, in declaration order, plus the
// constraints posted over them.
//
// Models are constructed incrementally (typically by a problem reader) and
// are read-only from the engine's perspective: solving never mutates the
// model's domains. Declaration order matters — it is the default search
// order and the stable tie-break of the ordering heuristic — so the model
// keeps an ordered variable list alongside the domain map.
//
// Thread safety: construct sequentially; once construction is complete a
// model may be shared by any number of solvers, since all of them treat it
// as read-only.
type Model struct {
	vars        []Variable
	domains     map[Variable]Domain
	constraints []Constraint

	// byVar indexes, per variable, the constraints whose scope contains
	// it. Shared by the heuristic probe and the search engine.
	byVar map[Variable][]Constraint

	config *SolverConfig
}

// NewModel creates an empty model with the default configuration.
func NewModel() *Model {
	return &Model{
		domains: make(map[Variable]Domain),
		byVar:   make(map[Variable][]Constraint),
		config:  DefaultSolverConfig(),
	}
}

// AddVariable declares a variable with its domain. Declaration order is
// preserved. Redeclaring a variable replaces its domain without changing
// its position.
func (m *Model) AddVariable(v Variable, domain Domain) {
	if _, exists := m.domains[v]; !exists {
		m.vars = append(m.vars, v)
	}
	m.domains[v] = domain
}

// AddConstraint posts a constraint to the model and indexes it under every
// variable in its scope.
func (m *Model) AddConstraint(c Constraint) {
	m.constraints = append(m.constraints, c)
	for _, v := range c.Scope() {
		m.byVar[v] = append(m.byVar[v], c)
	}
}

// Variables returns all variables in declaration order.
// The returned slice must not be modified.
func (m *Model) Variables() []Variable { return m.vars }

// Domain returns the declared domain of a variable, or nil if unknown.
// The returned slice must not be modified.
func (m *Model) Domain(v Variable) Domain { return m.domains[v] }

// Constraints returns all posted constraints.
// The returned slice must not be modified.
func (m *Model) Constraints() []Constraint { return m.constraints }

// LocalConstraints returns the constraints whose scope contains v.
// The returned slice must not be modified.
func (m *Model) LocalConstraints(v Variable) []Constraint { return m.byVar[v] }

// Consistent evaluates every constraint local to v against the assignment,
// returning false on the first failing predicate. Constraints honor the
// deferred-evaluation contract, so Consistent is safe to call on any
// partial assignment. Shared by the ordering heuristic and the solver.
func (m *Model) Consistent(v Variable, a Assignment) bool {
	for _, c := range m.byVar[v] {
		if !c.Evaluate(a) {
			return false
		}
	}
	return true
}

// CloneDomains returns a deep copy of the domain map. Each search
// invocation clones the domains before mutating them, so the model's
// domains survive solving untouched.
func (m *Model) CloneDomains() map[Variable]Domain {
	domains := make(map[Variable]Domain, len(m.domains))
	for v, d := range m.domains {
		domains[v] = d.Clone()
	}
	return domains
}

// Config returns the solver configuration for this model.
func (m *Model) Config() *SolverConfig { return m.config }

// SetConfig replaces the solver configuration. Call before solving begins.
func (m *Model) SetConfig(config *SolverConfig) {
	if config != nil {
		m.config = config
	}
}

// Validate checks that the model is well-formed: every variable has a
// non-empty domain and every constraint scope references declared
// variables. Problem readers are expected to produce valid models; the
// engine assumes validity during search.
func (m *Model) Validate() error {
	for _, v := range m.vars {
		if len(m.domains[v]) == 0 {
			return fmt.Errorf("variable %s has empty domain", v)
		}
	}
	for _, c := range m.constraints {
		for _, v := range c.Scope() {
			if _, ok := m.domains[v]; !ok {
				return fmt.Errorf("constraint %s references unknown variable %s", c, v)
			}
		}
	}
	return nil
}

// String returns a summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{variables: %d, constraints: %d}", len(m.vars), len(m.constraints))
}
