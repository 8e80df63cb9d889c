// Package cli implements the gocsp command line interface: load a problem
// file, optionally reorder its variables with the MRV heuristic, enumerate
// solutions and report search statistics.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/cspfile"
)

// Options holds the root command flags.
type Options struct {
	Limit   int
	Verbose bool
	NoFC    bool
}

// NewRootCommand creates the gocsp root command.
//
// The order-mode argument selects variable ordering: "MVR" ranks by fewest
// legal values, "MVR+" adds the constraint-degree tie-break, anything else
// (or no argument) keeps the input order. Matching is case-insensitive.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "gocsp <problem-file> [order-mode]",
		Short: "Finite-domain constraint solver",
		Long: `gocsp solves finite-domain constraint satisfaction problems.

Problems are read from a text (.csp) or YAML (.yaml/.yml) file and solved
by backtracking search with forward checking. All solutions are printed
unless --limit stops enumeration early.

Example:
  gocsp problem.csp
  gocsp problem.csp MVR+
  gocsp --limit 1 puzzle.yaml mvr`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "stop after N solutions (0 = all)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.Flags().BoolVar(&opts.NoFC, "no-forward-checking", false, "disable forward checking (plain backtracking)")

	return cmd
}

func run(opts *Options, cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	m, err := cspfile.Load(args[0])
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":        args[0],
		"variables":   len(m.Variables()),
		"constraints": len(m.Constraints()),
	}).Debug("problem loaded")

	if opts.NoFC {
		m.SetConfig(&csp.SolverConfig{ForwardChecking: false})
	}

	out := cmd.OutOrStdout()
	order := m.Variables()

	mode := ""
	if len(args) == 2 {
		mode = strings.ToUpper(args[1])
	}
	switch mode {
	case "MVR", "MVR+":
		tieBreak := mode == "MVR+"
		start := time.Now()
		ranking := csp.RankVariables(m, tieBreak)
		elapsed := time.Since(start)
		order = make([]csp.Variable, len(ranking))
		for i, r := range ranking {
			order[i] = r.Variable
		}
		fmt.Fprint(out, csp.FormatRanking(ranking, tieBreak))
		fmt.Fprintf(out, "Time taken for ordering: %s\n", elapsed)
	default:
		if mode != "" {
			log.WithField("mode", args[1]).Debug("unrecognized order mode, keeping input order")
		}
	}
	log.WithField("order", order).Debug("search order chosen")

	solver := csp.NewSolverWithOrder(m, order)
	start := time.Now()
	count, err := printSolutions(cmd, solver, m.Variables(), opts.Limit)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Fprintln(out, "No solutions.")
	}
	stats := solver.Stats()
	fmt.Fprintf(out, "Search stats: %s\n", stats)
	fmt.Fprintf(out, "Time taken: %s\n", elapsed)
	log.WithFields(logrus.Fields{
		"nodes":     stats.Nodes,
		"branches":  stats.Branches,
		"solutions": stats.Solutions,
	}).Debug("search finished")
	return nil
}

// printSolutions enumerates lazily so --limit stops the search as soon as
// enough solutions have been seen.
func printSolutions(cmd *cobra.Command, solver *csp.Solver, vars []csp.Variable, limit int) (int, error) {
	if err := solver.Model().Validate(); err != nil {
		return 0, fmt.Errorf("invalid model: %w", err)
	}
	out := cmd.OutOrStdout()
	count := 0
	for sol := range solver.Solutions(cmd.Context()) {
		count++
		fmt.Fprintf(out, "Solution #%d: %s\n", count, formatSolution(vars, sol))
		if limit > 0 && count >= limit {
			break
		}
	}
	if err := cmd.Context().Err(); err != nil {
		return count, err
	}
	return count, nil
}

// formatSolution renders an assignment with variables in problem input
// order, so output is stable regardless of the search order used.
func formatSolution(vars []csp.Variable, a csp.Assignment) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range vars {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", v, a[v])
	}
	b.WriteByte('}')
	return b.String()
}
