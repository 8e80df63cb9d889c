package cspfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// ParseText reads the line-oriented text format. Errors carry the line
// number of the offending declaration.
func ParseText(r io.Reader) (*csp.Model, error) {
	m := csp.NewModel()

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if err := parseLine(m, fields[0], fields[1:]); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}

	return finish(m)
}

// parseLine dispatches one declaration. args excludes the keyword.
func parseLine(m *csp.Model, keyword string, args []string) error {
	switch keyword {
	case "var":
		return parseVar(m, args)
	case "alldiff":
		return parseAllDiff(m, args)
	case "bin":
		return parseBin(m, args)
	case "in":
		return parseIn(m, args)
	case "sum":
		return parseSum(m, args)
	case "table":
		return parseTable(m, args)
	case "add10":
		return parseAdd10(m, args)
	default:
		return fmt.Errorf("unknown keyword %q", keyword)
	}
}

func parseVar(m *csp.Model, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("var needs a name and at least one value")
	}
	name := args[0]
	if m.Domain(name) != nil {
		return fmt.Errorf("variable %s declared twice", name)
	}
	values, err := parseValues(args[1:])
	if err != nil {
		return err
	}
	m.AddVariable(name, csp.NewDomain(values...))
	return nil
}

func parseAllDiff(m *csp.Model, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("alldiff needs at least two variables")
	}
	if err := requireVars(m, args); err != nil {
		return err
	}
	m.AddConstraint(csp.NewAllDifferent(args...))
	return nil
}

func parseBin(m *csp.Model, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("bin needs the form: bin X <op> Y")
	}
	x, op, y := args[0], args[1], args[2]
	if err := requireVars(m, []csp.Variable{x, y}); err != nil {
		return err
	}
	rel, err := csp.ParseRelation(op)
	if err != nil {
		return err
	}
	m.AddConstraint(csp.NewBinary(x, rel, y))
	return nil
}

func parseIn(m *csp.Model, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("in needs a variable and at least one value")
	}
	if err := requireVars(m, args[:1]); err != nil {
		return err
	}
	values, err := parseValues(args[1:])
	if err != nil {
		return err
	}
	m.AddConstraint(csp.NewMembership(args[0], values))
	return nil
}

func parseSum(m *csp.Model, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("sum needs the form: sum X Y ... <op> K")
	}
	vars := args[:len(args)-2]
	op := args[len(args)-2]
	k, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return fmt.Errorf("sum constant %q: %w", args[len(args)-1], err)
	}
	if err := requireVars(m, vars); err != nil {
		return err
	}
	c, err := csp.NewLinearSum(vars, op, k)
	if err != nil {
		return err
	}
	m.AddConstraint(c)
	return nil
}

func parseTable(m *csp.Model, args []string) error {
	sep := -1
	for i, a := range args {
		if a == ":" {
			sep = i
			break
		}
	}
	if sep < 1 || sep == len(args)-1 {
		return fmt.Errorf("table needs the form: table X Y : v v | v v")
	}
	vars := args[:sep]
	if err := requireVars(m, vars); err != nil {
		return err
	}

	var rows [][]csp.Value
	row := make([]string, 0, len(vars))
	flush := func() error {
		if len(row) == 0 {
			return nil
		}
		if len(row) != len(vars) {
			return fmt.Errorf("table row has %d values, want %d", len(row), len(vars))
		}
		values, err := parseValues(row)
		if err != nil {
			return err
		}
		rows = append(rows, values)
		row = row[:0]
		return nil
	}
	for _, a := range args[sep+1:] {
		if a == "|" {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		row = append(row, a)
	}
	if err := flush(); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("table needs at least one row")
	}
	m.AddConstraint(csp.NewTable(vars, rows))
	return nil
}

func parseAdd10(m *csp.Model, args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("add10 needs the form: add10 X Y Cin Z Cout")
	}
	if err := requireVars(m, args); err != nil {
		return err
	}
	m.AddConstraint(csp.NewDigitAddition(args[0], args[1], args[2], args[3], args[4]))
	return nil
}

func parseValues(tokens []string) ([]csp.Value, error) {
	values := make([]csp.Value, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", tok, err)
		}
		values[i] = v
	}
	return values, nil
}
