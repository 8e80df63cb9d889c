// Package cspfile reads constraint-satisfaction problem descriptions into
// csp.Model values. Two formats are supported: a line-oriented text format
// (the default) and a YAML format for tool-generated problems.
//
// The reader owns input validation: duplicate or unknown variables, empty
// domains, wrong arities and malformed lines are all rejected here, so the
// engine can assume the models it receives are well-formed. Operator
// validation is delegated to the engine (csp.ErrInvalidOperator passes
// through unwrapped for errors.Is).
//
// # Text format
//
// One declaration per line, '#' starts a comment:
//
//	var A 1 2 3
//	alldiff A B C
//	bin A < B
//	in X 2 4
//	sum A B C == 3
//	table A B : 1 2 | 2 1
//	add10 X Y Cin Z Cout
//
// Variables must be declared before any constraint references them.
package cspfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Load reads a problem file, dispatching on extension: .yaml and .yml are
// parsed as YAML, everything else as the text format.
func Load(path string) (*csp.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open problem file: %w", err)
	}
	defer f.Close()

	var m *csp.Model
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = ParseYAML(f)
	default:
		m, err = ParseText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// finish runs the engine-side validation as a final cross-check. The
// parsers reject malformed input with positional context before this runs.
func finish(m *csp.Model) (*csp.Model, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// requireVars checks that every referenced variable has been declared.
func requireVars(m *csp.Model, vars []csp.Variable) error {
	for _, v := range vars {
		if m.Domain(v) == nil {
			return fmt.Errorf("unknown variable %s", v)
		}
	}
	return nil
}
