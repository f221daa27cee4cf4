// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a set of named random variables, each expanded in its
// own basis, with optional sampling.
type Scenario struct {
	// Name identifies this scenario in output.
	Name string `yaml:"name"`

	// Description is free text.
	Description string `yaml:"description,omitempty"`

	// Samples is the number of realizations drawn per variable.
	// Zero reports only the exact moments.
	Samples int `yaml:"samples,omitempty"`

	// Seed seeds variable i's source with Seed+i.
	Seed uint64 `yaml:"seed,omitempty"`

	// Method is the germ sampling method, "exact" (the default) or
	// "quadrature".
	Method string `yaml:"method,omitempty"`

	// Confidence is the level of the sampled mean's confidence
	// interval, in (0, 1). Zero means 0.95.
	Confidence float64 `yaml:"confidence,omitempty"`

	Variables []Variable `yaml:"variables"`
}

// Variable describes one random variable.
type Variable struct {
	Name    string  `yaml:"name"`
	Measure string  `yaml:"measure"`
	Alpha   float64 `yaml:"alpha,omitempty"`
	Beta    float64 `yaml:"beta,omitempty"`
	Degree  int     `yaml:"degree"`

	// Param is "native" or "meanstd" (the default).
	Param string  `yaml:"param,omitempty"`
	P1    float64 `yaml:"p1"`
	P2    float64 `yaml:"p2"`
}

// scenarioError reports an unreadable or malformed scenario file.
type scenarioError struct {
	path string
	err  error
}

func (e *scenarioError) Error() string {
	return fmt.Sprintf("scenario %s: %v", e.path, e.err)
}

func (e *scenarioError) Unwrap() error {
	return e.err
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &scenarioError{path, err}
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, &scenarioError{path, fmt.Errorf("failed to parse YAML: %w", err)}
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, &scenarioError{path, err}
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
// Parameter values are checked when the variables are expanded.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Samples < 0 {
		return fmt.Errorf("samples must be non-negative, have %d", s.Samples)
	}
	if s.Samples == 1 {
		return fmt.Errorf("samples must be 0 or at least 2")
	}
	if s.Confidence < 0 || s.Confidence >= 1 {
		return fmt.Errorf("confidence must be in (0, 1), have %v", s.Confidence)
	}
	if len(s.Variables) == 0 {
		return fmt.Errorf("variables list is required and must be non-empty")
	}
	seen := make(map[string]bool)
	for i, v := range s.Variables {
		if v.Name == "" {
			return fmt.Errorf("variable %d: name is required", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("variable %q is defined twice", v.Name)
		}
		seen[v.Name] = true
		if v.Measure == "" {
			return fmt.Errorf("variable %q: measure is required", v.Name)
		}
	}
	return nil
}
