package csp

import (
	"slices"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// probeModel has one unconstrained variable and one with a unary
// restriction, so MRV must reorder them.
func probeModel() *Model {
	m := NewModel()
	m.AddVariable("Y", NewDomain(1, 2, 3))
	m.AddVariable("X", NewDomain(1, 2, 3, 4, 5))
	m.AddConstraint(NewMembership("X", []Value{2, 4}))
	return m
}

func TestRankVariables_MRV(t *testing.T) {
	ranks := RankVariables(probeModel(), false)

	if len(ranks) != 2 {
		t.Fatalf("got %d ranks, want 2", len(ranks))
	}
	// X: only 2 of 5 values pass the Membership probe. Y: all 3 pass.
	if ranks[0].Variable != "X" || ranks[0].LegalValues != 2 {
		t.Errorf("ranks[0] = %+v, want X with 2 legal values", ranks[0])
	}
	if ranks[1].Variable != "Y" || ranks[1].LegalValues != 3 {
		t.Errorf("ranks[1] = %+v, want Y with 3 legal values", ranks[1])
	}
	if ranks[0].LegalValues > ranks[1].LegalValues {
		t.Error("first variable must have minimal legal count")
	}
}

func TestOrderVariables_StableOnTies(t *testing.T) {
	m := NewModel()
	m.AddVariable("B", NewDomain(1, 2))
	m.AddVariable("A", NewDomain(1, 2))
	m.AddVariable("C", NewDomain(1, 2))
	// Degrees: A=2, B=1, C=1. Legal counts are all 2: the probe fills a
	// single variable, so multi-variable constraints stay permissive.
	m.AddConstraint(NewAllDifferent("A", "B"))
	m.AddConstraint(NewBinary("A", Lt, "C"))

	// MRV only: all tied, declaration order wins.
	got := OrderVariables(m, false)
	if want := []Variable{"B", "A", "C"}; !slices.Equal(got, want) {
		t.Errorf("OrderVariables(mrv) = %v, want %v", got, want)
	}

	// Degree tie-break: A (degree 2) first, then B before C (both degree
	// 1, declaration order).
	got = OrderVariables(m, true)
	if want := []Variable{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Errorf("OrderVariables(mrv+degree) = %v, want %v", got, want)
	}
}

func TestOrderVariables_Deterministic(t *testing.T) {
	m := probeModel()
	first := OrderVariables(m, true)
	for i := 0; i < 10; i++ {
		if got := OrderVariables(m, true); !slices.Equal(got, first) {
			t.Fatalf("run %d: order %v differs from first run %v", i, got, first)
		}
	}
}

func TestFormatRanking_Golden(t *testing.T) {
	g := goldie.New(t)

	ranks := RankVariables(probeModel(), false)
	g.Assert(t, "ranking_mrv", []byte(FormatRanking(ranks, false)))

	ranks = RankVariables(probeModel(), true)
	g.Assert(t, "ranking_tiebreak", []byte(FormatRanking(ranks, true)))
}
