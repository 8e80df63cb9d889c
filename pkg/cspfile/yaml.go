package cspfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// The YAML format uses an ordered variable list (not a mapping) so that
// declaration order — the default search order and the heuristic's stable
// tie-break — survives the round trip:
//
//	variables:
//	  - name: A
//	    values: [1, 2]
//	constraints:
//	  - alldiff: [A, B]
//	  - binary: {op: "<", args: [A, B]}
//	  - in: {var: X, values: [2, 4]}
//	  - sum: {vars: [A, B, C], op: "==", k: 3}
//	  - table: {vars: [A, B], rows: [[1, 2], [2, 1]]}
//	  - add10: {x: X, y: Y, cin: Cin, z: Z, cout: Cout}

type yamlProblem struct {
	Variables   []yamlVariable   `yaml:"variables"`
	Constraints []yamlConstraint `yaml:"constraints"`
}

type yamlVariable struct {
	Name   string `yaml:"name"`
	Values []int  `yaml:"values"`
}

// yamlConstraint is a one-of: exactly one field may be set per list entry.
type yamlConstraint struct {
	AllDiff []string    `yaml:"alldiff,omitempty"`
	Binary  *yamlBinary `yaml:"binary,omitempty"`
	In      *yamlIn     `yaml:"in,omitempty"`
	Sum     *yamlSum    `yaml:"sum,omitempty"`
	Table   *yamlTable  `yaml:"table,omitempty"`
	Add10   *yamlAdd10  `yaml:"add10,omitempty"`
}

type yamlBinary struct {
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
}

type yamlIn struct {
	Var    string `yaml:"var"`
	Values []int  `yaml:"values"`
}

type yamlSum struct {
	Vars []string `yaml:"vars"`
	Op   string   `yaml:"op"`
	K    int      `yaml:"k"`
}

type yamlTable struct {
	Vars []string `yaml:"vars"`
	Rows [][]int  `yaml:"rows"`
}

type yamlAdd10 struct {
	X    string `yaml:"x"`
	Y    string `yaml:"y"`
	Cin  string `yaml:"cin"`
	Z    string `yaml:"z"`
	Cout string `yaml:"cout"`
}

// ParseYAML reads the YAML problem format.
func ParseYAML(r io.Reader) (*csp.Model, error) {
	var problem yamlProblem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&problem); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	m := csp.NewModel()
	for i, v := range problem.Variables {
		if v.Name == "" {
			return nil, fmt.Errorf("variables[%d]: missing name", i)
		}
		if m.Domain(v.Name) != nil {
			return nil, fmt.Errorf("variables[%d]: variable %s declared twice", i, v.Name)
		}
		if len(v.Values) == 0 {
			return nil, fmt.Errorf("variables[%d]: variable %s has no values", i, v.Name)
		}
		m.AddVariable(v.Name, csp.NewDomain(v.Values...))
	}

	for i, c := range problem.Constraints {
		if err := addYAMLConstraint(m, c); err != nil {
			return nil, fmt.Errorf("constraints[%d]: %w", i, err)
		}
	}

	return finish(m)
}

func addYAMLConstraint(m *csp.Model, c yamlConstraint) error {
	switch {
	case c.AllDiff != nil:
		if len(c.AllDiff) < 2 {
			return fmt.Errorf("alldiff needs at least two variables")
		}
		if err := requireVars(m, c.AllDiff); err != nil {
			return err
		}
		m.AddConstraint(csp.NewAllDifferent(c.AllDiff...))

	case c.Binary != nil:
		if len(c.Binary.Args) != 2 {
			return fmt.Errorf("binary needs exactly two args")
		}
		if err := requireVars(m, c.Binary.Args); err != nil {
			return err
		}
		rel, err := csp.ParseRelation(c.Binary.Op)
		if err != nil {
			return err
		}
		m.AddConstraint(csp.NewBinary(c.Binary.Args[0], rel, c.Binary.Args[1]))

	case c.In != nil:
		if err := requireVars(m, []csp.Variable{c.In.Var}); err != nil {
			return err
		}
		if len(c.In.Values) == 0 {
			return fmt.Errorf("in needs at least one value")
		}
		m.AddConstraint(csp.NewMembership(c.In.Var, c.In.Values))

	case c.Sum != nil:
		if err := requireVars(m, c.Sum.Vars); err != nil {
			return err
		}
		sum, err := csp.NewLinearSum(c.Sum.Vars, c.Sum.Op, c.Sum.K)
		if err != nil {
			return err
		}
		m.AddConstraint(sum)

	case c.Table != nil:
		if err := requireVars(m, c.Table.Vars); err != nil {
			return err
		}
		if len(c.Table.Rows) == 0 {
			return fmt.Errorf("table needs at least one row")
		}
		for r, row := range c.Table.Rows {
			if len(row) != len(c.Table.Vars) {
				return fmt.Errorf("table row %d has %d values, want %d", r, len(row), len(c.Table.Vars))
			}
		}
		m.AddConstraint(csp.NewTable(c.Table.Vars, c.Table.Rows))

	case c.Add10 != nil:
		vars := []csp.Variable{c.Add10.X, c.Add10.Y, c.Add10.Cin, c.Add10.Z, c.Add10.Cout}
		if err := requireVars(m, vars); err != nil {
			return err
		}
		m.AddConstraint(csp.NewDigitAddition(c.Add10.X, c.Add10.Y, c.Add10.Cin, c.Add10.Z, c.Add10.Cout))

	default:
		return fmt.Errorf("constraint entry sets no known kind")
	}
	return nil
}
