package csp

import (
	"fmt"
	"strings"
)

// This file implements the static variable-ordering heuristic: minimum
// remaining legal values (MRV), optionally tie-broken by degree.
//
// The heuristic is a one-shot approximation computed before search begins.
// Legal-value counts come from single-variable probes — assign only {v:
// val} and test v's local constraints — so under deferred evaluation only
// unary constraints (Membership) actually filter anything; wider
// constraints contribute degree, not legal counts. The resulting order is
// fixed for the entire search and is NOT recomputed per node; that would
// be a different (dynamic MRV) solver with different branch statistics.

// VariableRank reports a variable's heuristic measurements: how many of
// its domain values survive the single-variable probe, and how many
// constraints mention it.
type VariableRank struct {
	Variable    Variable
	LegalValues int
	Degree      int
}

// RankVariables computes the heuristic order over all model variables,
// returning one rank per variable in selection order. Selection picks the
// smallest legal count first; with tieBreak enabled, ties go to the
// largest degree; remaining ties resolve to declaration order (stable).
//
// Deterministic: repeated calls on the same model return identical slices.
func RankVariables(m *Model, tieBreak bool) []VariableRank {
	vars := m.Variables()
	ranks := make([]VariableRank, 0, len(vars))

	probe := make(Assignment, 1)
	for _, v := range vars {
		legal := 0
		for _, val := range m.Domain(v) {
			probe[v] = val
			if m.Consistent(v, probe) {
				legal++
			}
			delete(probe, v)
		}
		ranks = append(ranks, VariableRank{
			Variable:    v,
			LegalValues: legal,
			Degree:      len(m.LocalConstraints(v)),
		})
	}

	// Selection sort keeps the declaration-order tie-break stable.
	ordered := make([]VariableRank, 0, len(ranks))
	used := make([]bool, len(ranks))
	for len(ordered) < len(ranks) {
		best := -1
		for i, r := range ranks {
			if used[i] {
				continue
			}
			if best == -1 {
				best = i
				continue
			}
			b := ranks[best]
			if tieBreak {
				if r.LegalValues < b.LegalValues ||
					(r.LegalValues == b.LegalValues && r.Degree > b.Degree) {
					best = i
				}
			} else if r.LegalValues < b.LegalValues {
				best = i
			}
		}
		used[best] = true
		ordered = append(ordered, ranks[best])
	}
	return ordered
}

// OrderVariables returns just the heuristic variable order.
func OrderVariables(m *Model, tieBreak bool) []Variable {
	ranks := RankVariables(m, tieBreak)
	order := make([]Variable, len(ranks))
	for i, r := range ranks {
		order[i] = r.Variable
	}
	return order
}

// FormatRanking renders the human-readable ordering report. Degree is
// shown only when the tie-break was in effect.
func FormatRanking(ranks []VariableRank, tieBreak bool) string {
	var b strings.Builder
	b.WriteString("Variable ordering:\n")
	for _, r := range ranks {
		if tieBreak {
			fmt.Fprintf(&b, "  %s: %d legal values, degree %d\n", r.Variable, r.LegalValues, r.Degree)
		} else {
			fmt.Fprintf(&b, "  %s: %d legal values\n", r.Variable, r.LegalValues)
		}
	}
	b.WriteString(strings.Repeat("-", 30))
	b.WriteString("\n")
	return b.String()
}
