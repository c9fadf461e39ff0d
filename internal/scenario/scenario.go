// Package scenario parses HCL files describing batches of simulation
// runs, so a set of named configurations can be replayed without long
// flag invocations.
package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/setsquared/set"
)

// File is the top-level structure of a scenario file.
type File struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario describes one simulation run.
//
//	scenario "smoke" {
//	  games      = 10000
//	  variant    = "superset"
//	  seed       = 42
//	  simplified = true
//	}
type Scenario struct {
	Name       string `hcl:"name,label"`
	Games      int    `hcl:"games,optional"`
	Variant    string `hcl:"variant,optional"`
	Seed       int64  `hcl:"seed,optional"`
	Workers    int    `hcl:"workers,optional"`
	Simplified bool   `hcl:"simplified,optional"`
}

// Rules resolves the scenario's variant name to its rule set.
func (s Scenario) Rules() (set.Rules, error) {
	switch s.Variant {
	case "set":
		return set.SetRules{}, nil
	case "superset":
		return set.SuperSetRules{}, nil
	default:
		return nil, fmt.Errorf("scenario %q: unknown variant %q", s.Name, s.Variant)
	}
}

// Load parses a scenario file and applies defaults for omitted values.
func Load(filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config File
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		if s.Games == 0 {
			s.Games = 100000
		}
		if s.Variant == "" {
			s.Variant = "set"
		}
		if _, err := s.Rules(); err != nil {
			return nil, err
		}
	}
	return &config, nil
}
