package csp

import (
	"slices"
	"testing"
)

func TestModel_VariableOrder(t *testing.T) {
	m := NewModel()
	m.AddVariable("C", NewDomain(1))
	m.AddVariable("A", NewDomain(1))
	m.AddVariable("B", NewDomain(1))

	want := []Variable{"C", "A", "B"}
	if !slices.Equal(m.Variables(), want) {
		t.Errorf("Variables() = %v, want declaration order %v", m.Variables(), want)
	}

	// Redeclaration replaces the domain but keeps the position.
	m.AddVariable("A", NewDomain(7, 8))
	if !slices.Equal(m.Variables(), want) {
		t.Errorf("Variables() after redeclare = %v, want %v", m.Variables(), want)
	}
	if !slices.Equal(m.Domain("A"), NewDomain(7, 8)) {
		t.Errorf("Domain(A) = %v, want {7,8}", m.Domain("A"))
	}
}

func TestModel_LocalConstraints(t *testing.T) {
	m := NewModel()
	m.AddVariable("A", NewDomain(1, 2))
	m.AddVariable("B", NewDomain(1, 2))
	m.AddVariable("C", NewDomain(1, 2))

	ad := NewAllDifferent("A", "B")
	lt := NewBinary("A", Lt, "C")
	m.AddConstraint(ad)
	m.AddConstraint(lt)

	if got := len(m.LocalConstraints("A")); got != 2 {
		t.Errorf("A has %d local constraints, want 2", got)
	}
	if got := len(m.LocalConstraints("B")); got != 1 {
		t.Errorf("B has %d local constraints, want 1", got)
	}
	if got := len(m.LocalConstraints("C")); got != 1 {
		t.Errorf("C has %d local constraints, want 1", got)
	}
}

func TestModel_Consistent(t *testing.T) {
	m := NewModel()
	m.AddVariable("A", NewDomain(1, 2))
	m.AddVariable("B", NewDomain(1, 2))
	m.AddConstraint(NewAllDifferent("A", "B"))

	if !m.Consistent("A", Assignment{"A": 1}) {
		t.Error("partial assignment should be consistent")
	}
	if !m.Consistent("A", Assignment{"A": 1, "B": 2}) {
		t.Error("distinct values should be consistent")
	}
	if m.Consistent("A", Assignment{"A": 1, "B": 1}) {
		t.Error("duplicate values should be inconsistent")
	}
}

func TestModel_Validate(t *testing.T) {
	m := NewModel()
	m.AddVariable("A", NewDomain(1))
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() on well-formed model: %v", err)
	}

	m.AddConstraint(NewAllDifferent("A", "Z"))
	if err := m.Validate(); err == nil {
		t.Error("Validate() should reject a constraint over an unknown variable")
	}

	m2 := NewModel()
	m2.AddVariable("E", NewDomain())
	if err := m2.Validate(); err == nil {
		t.Error("Validate() should reject an empty domain")
	}
}

func TestModel_CloneDomains(t *testing.T) {
	m := NewModel()
	m.AddVariable("A", NewDomain(1, 2, 3))

	clone := m.CloneDomains()
	clone["A"][0] = 99
	if m.Domain("A")[0] != 1 {
		t.Error("mutating a cloned domain must not touch the model")
	}
}
