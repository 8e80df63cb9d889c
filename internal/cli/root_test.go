package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProblem(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.csp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

const alldiffProblem = `
var A 1 2
var B 1 2
alldiff A B
`

func TestRun_PrintsAllSolutions(t *testing.T) {
	path := writeProblem(t, alldiffProblem)

	out, err := execute(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "Solution #1: {A: 1, B: 2}")
	assert.Contains(t, out, "Solution #2: {A: 2, B: 1}")
	assert.Contains(t, out, "Search stats: nodes: 3, branches: 4, solutions: 2")
	assert.Contains(t, out, "Time taken:")
	assert.NotContains(t, out, "No solutions.")
}

func TestRun_NoSolutions(t *testing.T) {
	path := writeProblem(t, "var A 1\nvar B 1\nalldiff A B\n")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "No solutions.")
	assert.NotContains(t, out, "Solution #")
}

func TestRun_HeuristicModes(t *testing.T) {
	problem := `
var Y 1 2 3
var X 1 2 3 4 5
in X 2 4
`
	for _, mode := range []string{"MVR", "mvr", "MVR+", "mvr+"} {
		t.Run(mode, func(t *testing.T) {
			path := writeProblem(t, problem)

			out, err := execute(t, path, mode)
			require.NoError(t, err)

			assert.Contains(t, out, "Variable ordering:")
			assert.Contains(t, out, "X: 2 legal values")
			assert.Contains(t, out, "Time taken for ordering:")
			if strings.HasSuffix(strings.ToUpper(mode), "+") {
				assert.Contains(t, out, "degree")
			} else {
				assert.NotContains(t, out, "degree")
			}
		})
	}
}

func TestRun_UnknownModeKeepsInputOrder(t *testing.T) {
	path := writeProblem(t, alldiffProblem)

	out, err := execute(t, path, "alphabetical")
	require.NoError(t, err)
	assert.NotContains(t, out, "Variable ordering:")
	assert.Contains(t, out, "Solution #1:")
}

func TestRun_SolutionsInInputOrder(t *testing.T) {
	// Heuristic reorders the search, the printed assignments keep the
	// declaration order of the problem file.
	path := writeProblem(t, "var B 1 2 3\nvar A 1 2\nalldiff A B\nbin A < B\n")

	out, err := execute(t, path, "MVR")
	require.NoError(t, err)
	assert.Contains(t, out, "Solution #1: {B: ")
}

func TestRun_Limit(t *testing.T) {
	path := writeProblem(t, "var A 1 2 3\nvar B 1 2 3\nalldiff A B\n")

	out, err := execute(t, "--limit", "1", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Solution #1:")
	assert.NotContains(t, out, "Solution #2:")
}

func TestRun_UsageErrors(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err, "missing problem file")

	_, err = execute(t, "a.csp", "MVR", "extra")
	require.Error(t, err, "too many arguments")
}

func TestRun_FileErrors(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.csp"))
	require.Error(t, err)

	path := writeProblem(t, "var A 1\nfrob\n")
	_, err = execute(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2:")
}

func TestRun_Flags(t *testing.T) {
	cmd := NewRootCommand()

	limit := cmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "0", limit.DefValue)

	verbose := cmd.Flags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	require.NotNil(t, cmd.Flags().Lookup("no-forward-checking"))
}
