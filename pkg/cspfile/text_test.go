package cspfile

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

const twoQueensText = `
# trivial all-different problem
var A 1 2
var B 1 2
alldiff A B
`

func TestParseText_EndToEnd(t *testing.T) {
	m, err := ParseText(strings.NewReader(twoQueensText))
	require.NoError(t, err)
	require.Equal(t, []csp.Variable{"A", "B"}, m.Variables())

	sols, err := csp.NewSolver(m).All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []csp.Assignment{{"A": 1, "B": 2}, {"A": 2, "B": 1}}, sols)
}

func TestParseText_AllConstraintKinds(t *testing.T) {
	input := `
var A 1 2 3
var B 1 2 3
var C 1 2 3
var X 1 2 3 4 5
var Cin 0 1
var Cout 0 1
alldiff A B C
bin A < B
in X 2 4
sum A B C <= 6
table A B : 1 2 | 2 3
add10 A B Cin C Cout
`
	m, err := ParseText(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, m.Constraints(), 6)

	types := make([]string, 0, 6)
	for _, c := range m.Constraints() {
		types = append(types, c.Type())
	}
	assert.Equal(t, []string{"AllDifferent", "Binary", "Membership", "LinearSum", "Table", "DigitAddition"}, types)
}

func TestParseText_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown keyword", "frob A B", "unknown keyword"},
		{"duplicate variable", "var A 1\nvar A 2", "declared twice"},
		{"unknown variable", "var A 1\nalldiff A B", "unknown variable B"},
		{"missing values", "var A", "at least one value"},
		{"bad value", "var A one", `value "one"`},
		{"bin arity", "var A 1\nbin A <", "bin needs"},
		{"sum too short", "var A 1\nsum A ==", "sum needs"},
		{"sum bad constant", "var A 1\nvar B 1\nsum A B == x", `sum constant "x"`},
		{"table row arity", "var A 1\nvar B 1\ntable A B : 1", "table row has 1 values, want 2"},
		{"add10 arity", "var A 1\nadd10 A A A A", "add10 needs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseText_InvalidOperatorPropagates(t *testing.T) {
	_, err := ParseText(strings.NewReader("var A 1\nvar B 1\nsum A B <> 2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, csp.ErrInvalidOperator)

	_, err = ParseText(strings.NewReader("var A 1\nvar B 1\nbin A <> B"))
	require.Error(t, err)
	assert.ErrorIs(t, err, csp.ErrInvalidOperator)
}

func TestParseText_ErrorsCarryLineNumbers(t *testing.T) {
	_, err := ParseText(strings.NewReader("var A 1\n\nfrob"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3:")
}

func TestParseText_CommentsAndBlankLines(t *testing.T) {
	input := "# header\n\nvar A 1 2 # trailing comment\n   \nin A 2\n"
	m, err := ParseText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, csp.NewDomain(1, 2), m.Domain("A"))
	require.Len(t, m.Constraints(), 1)
}
