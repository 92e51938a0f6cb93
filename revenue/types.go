// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, domain records, modifier contracts and options.

package revenue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvrail/calculator"
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/train"
)

// Sentinel errors of the adapter.
var (
	// ErrNilGraph indicates a nil route graph.
	ErrNilGraph = errors.New("revenue: graph is nil")

	// ErrNoTrains indicates an adapter without trains.
	ErrNoTrains = errors.New("revenue: no trains")

	// ErrStartVertexNotFound indicates a start vertex missing from the graph.
	ErrStartVertexNotFound = errors.New("revenue: start vertex not found")

	// ErrNotInitialized indicates Calculate or OptimalRun before Initialize.
	ErrNotInitialized = errors.New("revenue: adapter not initialized")

	// ErrTrainWindow indicates a train index outside the adapter trains.
	ErrTrainWindow = errors.New("revenue: train index out of range")
)

// TrainRun is the route of one train expressed in graph vertices.
type TrainRun struct {
	// Train is the train running the route; Index its position in the adapter.
	Train train.Train
	Index int

	// Stops lists the search-graph vertices in travel order.
	Stops []string

	// Path lists every vertex passed, hidden ones included.
	Path []string

	// Edges are the search-graph edges between consecutive Stops.
	Edges []*core.Edge

	// Value is the revenue of the run without dynamic modifiers.
	Value int
}

// Empty reports whether the train does not run.
func (r TrainRun) Empty() bool { return len(r.Stops) == 0 }

// First returns the first stop or "".
func (r TrainRun) First() string {
	if r.Empty() {
		return ""
	}

	return r.Stops[0]
}

// Last returns the last stop or "".
func (r TrainRun) Last() string {
	if r.Empty() {
		return ""
	}

	return r.Stops[len(r.Stops)-1]
}

// String renders "name: A -> B -> C = value".
func (r TrainRun) String() string {
	if r.Empty() {
		return fmt.Sprintf("%s: no run", r.Train)
	}

	return fmt.Sprintf("%s: %s = %d", r.Train, strings.Join(r.Stops, " -> "), r.Value)
}

// StaticModifier changes the adapter inputs once before the search.
type StaticModifier interface {
	// ModifyCalculator may add bonuses, visit sets or starts to a and
	// reports whether it changed anything.
	ModifyCalculator(a *Adapter) bool
	// PrettyPrint describes the change; "" adds nothing.
	PrettyPrint(a *Adapter) string
}

// DynamicModifier contributes value that depends on complete run sets.
type DynamicModifier interface {
	// Prepare reports whether the modifier takes part in this calculation.
	Prepare(a *Adapter) bool
	// EvaluationValue is the value added to a complete run set.
	EvaluationValue(runs []TrainRun) int
	// PredictionValue bounds EvaluationValue of every completion of runs.
	// Runs of trains not searched yet may be empty or partial.
	PredictionValue(runs []TrainRun) int
	// AdjustOptimalRun may rewrite the reported optimal runs.
	AdjustOptimalRun(runs []TrainRun)
	// PrettyPrint describes the contribution to runs; "" adds nothing.
	PrettyPrint(runs []TrainRun) string
}

// Option configures an Adapter.
type Option func(*config)

type config struct {
	predict    bool
	multigraph bool
	phase      string
	company    string
	listener   calculator.Listener
	bonuses    []RevenueBonus
	visitSets  [][]string
	static     []StaticModifier
	dynamic    []DynamicModifier
}

func defaultConfig() config {
	return config{predict: true}
}

// WithPrediction enables or disables bound pruning (enabled by default).
func WithPrediction(enabled bool) Option {
	return func(c *config) { c.predict = enabled }
}

// WithMultigraph forces the multigraph search even without H-trains.
func WithMultigraph(enabled bool) Option {
	return func(c *config) { c.multigraph = enabled }
}

// WithPhase selects the phase used to filter bonuses.
func WithPhase(phase string) Option {
	return func(c *config) { c.phase = phase }
}

// WithCompany names the operating company for logs and modifiers.
func WithCompany(name string) Option {
	return func(c *config) { c.company = name }
}

// WithListener installs the search progress listener. Panics on nil.
func WithListener(l calculator.Listener) Option {
	if l == nil {
		panic("revenue: WithListener(nil)")
	}

	return func(c *config) { c.listener = l }
}

// WithBonuses appends revenue bonuses.
func WithBonuses(bs ...RevenueBonus) Option {
	return func(c *config) { c.bonuses = append(c.bonuses, bs...) }
}

// WithVisitSet adds a group of vertices that stand for the same stop.
// Panics when fewer than two IDs are given.
func WithVisitSet(ids ...string) Option {
	if len(ids) < 2 {
		panic("revenue: WithVisitSet needs at least two vertices")
	}
	set := append([]string(nil), ids...)

	return func(c *config) { c.visitSets = append(c.visitSets, set) }
}

// WithStaticModifiers appends static modifiers, run in order. Panics on nil.
func WithStaticModifiers(mods ...StaticModifier) Option {
	for _, m := range mods {
		if m == nil {
			panic("revenue: WithStaticModifiers(nil)")
		}
	}

	return func(c *config) { c.static = append(c.static, mods...) }
}

// WithDynamicModifiers appends dynamic modifiers, consulted in order.
// Panics on nil.
func WithDynamicModifiers(mods ...DynamicModifier) Option {
	for _, m := range mods {
		if m == nil {
			panic("revenue: WithDynamicModifiers(nil)")
		}
	}

	return func(c *config) { c.dynamic = append(c.dynamic, mods...) }
}
