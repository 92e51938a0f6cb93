// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrail/calculator"
	"github.com/katalvlaran/lvrail/hexmap"
	"github.com/katalvlaran/lvrail/modifier"
	"github.com/katalvlaran/lvrail/revenue"
)

var (
	// ErrUnknownCompany indicates a company not declared on the map.
	ErrUnknownCompany = errors.New("scenario: unknown company")

	// ErrInvalidScenario wraps every problem found while loading.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)

// File is the YAML layout of a scenario.
type File struct {
	Phase     string         `yaml:"phase"`
	Search    SearchOptions  `yaml:"search,omitempty"`
	Modifiers []ModifierSpec `yaml:"modifiers,omitempty"`
	Map       *hexmap.Map    `yaml:"map"`
}

// SearchOptions are the search knobs of a scenario.
type SearchOptions struct {
	// Prediction defaults to true when absent.
	Prediction *bool `yaml:"prediction,omitempty"`
	Multigraph bool  `yaml:"multigraph,omitempty"`
	// Optimize shrinks each route graph before the search.
	Optimize bool `yaml:"optimize,omitempty"`
}

// ModifierSpec names a registered modifier and its free-form parameters.
type ModifierSpec struct {
	Name   string    `yaml:"name"`
	Params yaml.Node `yaml:"params,omitempty"`
}

// Result is the outcome of one company calculation.
type Result struct {
	Company string
	Phase   string
	// CalcID is the id the adapter attached to its log lines; "" when
	// no search ran.
	CalcID string
	Value  int
	Runs   []revenue.TrainRun
	Text   string
}

// Option configures Load.
type Option func(*config)

type config struct {
	registry *modifier.Registry
	listener calculator.Listener
}

// WithRegistry resolves modifier names in r instead of modifier.Builtins.
// Panics on nil.
func WithRegistry(r *modifier.Registry) Option {
	if r == nil {
		panic("scenario: WithRegistry(nil)")
	}

	return func(c *config) { c.registry = r }
}

// WithListener forwards search progress of every calculation to l.
// Panics on nil.
func WithListener(l calculator.Listener) Option {
	if l == nil {
		panic("scenario: WithListener(nil)")
	}

	return func(c *config) { c.listener = l }
}
