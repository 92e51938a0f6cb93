// SPDX-License-Identifier: MIT
//
// File: adapter.go
// Role: Adapter construction, accessors and the mutators offered to
//       static modifiers.
// Concurrency:
//   - An Adapter belongs to one goroutine; the route graph is only read.

package revenue

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvrail/calculator"
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/multigraph"
	"github.com/katalvlaran/lvrail/train"
)

// Adapter owns one revenue calculation for a company.
type Adapter struct {
	id  string
	log *slog.Logger
	cfg config

	graph  *core.Graph
	trains []train.Train
	starts []string

	modified bool
	notes    []string
	active   []DynamicModifier

	// Set by Initialize.
	calc     *calculator.Calculator
	search   *core.Graph
	multi    *multigraph.Result
	ids      []string
	index    map[string]int
	edges    []*core.Edge
	dropped  []string
	lastRuns []TrainRun
}

// NewAdapter prepares a calculation of trains running on g from the start
// vertices. g is read, never modified.
//
// Errors:
//   - ErrNilGraph, ErrNoTrains.
//   - ErrStartVertexNotFound for a start vertex missing from g.
func NewAdapter(g *core.Graph, trains []train.Train, starts []string, opts ...Option) (*Adapter, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(trains) == 0 {
		return nil, ErrNoTrains
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, s := range starts {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, s)
		}
	}

	id := uuid.NewString()
	a := &Adapter{
		id:     id,
		log:    slog.Default().With("calc", id),
		cfg:    cfg,
		graph:  g,
		trains: append([]train.Train(nil), trains...),
		starts: append([]string(nil), starts...),
	}
	if cfg.company != "" {
		a.log = a.log.With("company", cfg.company)
	}

	return a, nil
}

// ID returns the calculation id attached to every log line.
func (a *Adapter) ID() string { return a.id }

// Graph returns the route graph the adapter was built on.
func (a *Adapter) Graph() *core.Graph { return a.graph }

// SearchGraph returns the graph searched by the calculator: the route
// graph or its multigraph. Nil before Initialize.
func (a *Adapter) SearchGraph() *core.Graph { return a.search }

// Multigraph returns the multigraph bookkeeping, nil on the simple variant.
func (a *Adapter) Multigraph() *multigraph.Result { return a.multi }

// Trains returns a copy of the trains.
func (a *Adapter) Trains() []train.Train { return append([]train.Train(nil), a.trains...) }

// Starts returns a copy of the start vertices.
func (a *Adapter) Starts() []string { return append([]string(nil), a.starts...) }

// Phase returns the phase the bonuses are filtered by.
func (a *Adapter) Phase() string { return a.cfg.phase }

// Company returns the operating company name, possibly "".
func (a *Adapter) Company() string { return a.cfg.company }

// Bonuses returns a copy of the configured bonuses.
func (a *Adapter) Bonuses() []RevenueBonus { return append([]RevenueBonus(nil), a.cfg.bonuses...) }

// DroppedBonuses returns the names of the bonuses Initialize discarded
// because a vertex was missing.
func (a *Adapter) DroppedBonuses() []string { return append([]string(nil), a.dropped...) }

// Calculator returns the underlying calculator, nil before Initialize.
func (a *Adapter) Calculator() *calculator.Calculator { return a.calc }

// Initialized reports whether Initialize completed.
func (a *Adapter) Initialized() bool { return a.calc != nil }

// AddBonus appends a revenue bonus.
func (a *Adapter) AddBonus(b RevenueBonus) { a.cfg.bonuses = append(a.cfg.bonuses, b) }

// AddVisitSet adds a group of vertices that stand for the same stop.
// Sets with fewer than two IDs are ignored.
func (a *Adapter) AddVisitSet(ids ...string) {
	if len(ids) < 2 {
		return
	}
	a.cfg.visitSets = append(a.cfg.visitSets, append([]string(nil), ids...))
}

// AddStart appends a start vertex.
//
// Errors:
//   - ErrStartVertexNotFound.
func (a *Adapter) AddStart(id string) error {
	if !a.graph.HasVertex(id) {
		return fmt.Errorf("%w: %s", ErrStartVertexNotFound, id)
	}
	for _, s := range a.starts {
		if s == id {
			return nil
		}
	}
	a.starts = append(a.starts, id)

	return nil
}
