// SPDX-License-Identifier: MIT

// Package scenario runs revenue calculations for the companies of a map
// described in one YAML file.
//
// A scenario holds the map, the current phase, search options and the
// modifiers to plug in. Calculate builds the map graph of the phase and
// the route graph of the company (both cached), runs a revenue.Adapter
// and returns the result. Calls are serialized; modifiers may keep state
// between the stages of one calculation.
//
// Example file:
//
//	phase: "3"
//	search: {optimize: true}
//	modifiers:
//	  - name: home_bonus
//	    params: {value: 10}
//	map:
//	  hexes: [...]
//	  companies: [...]
package scenario

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrail/builder"
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/hexmap"
	"github.com/katalvlaran/lvrail/modifier"
	"github.com/katalvlaran/lvrail/revenue"
	"github.com/katalvlaran/lvrail/train"
)

// Scenario is a loaded scenario with its graph caches.
type Scenario struct {
	mu    sync.Mutex
	cfg   config
	phase string
	opts  SearchOptions
	m     *hexmap.Map

	mapMods   []builder.MapGraphModifier
	routeMods []builder.RouteGraphModifier
	static    []revenue.StaticModifier
	dynamic   []revenue.DynamicModifier

	mapGraphs   map[string]*core.Graph
	routeGraphs map[routeKey]*core.Graph
}

type routeKey struct{ company, phase string }

// Load decodes and validates a YAML scenario.
//
// Errors:
//   - ErrInvalidScenario wrapping decode, map validation and modifier
//     construction errors.
func Load(r io.Reader, opts ...Option) (*Scenario, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = modifier.Builtins()
	}

	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidScenario, err)
	}
	if f.Map == nil {
		return nil, fmt.Errorf("%w: no map", ErrInvalidScenario)
	}
	if err := f.Map.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	s := &Scenario{
		cfg:         cfg,
		phase:       f.Phase,
		opts:        f.Search,
		m:           f.Map,
		mapGraphs:   make(map[string]*core.Graph),
		routeGraphs: make(map[routeKey]*core.Graph),
	}
	for _, spec := range f.Modifiers {
		if err := s.addModifier(spec); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}
	slog.Info("scenario loaded",
		"hexes", len(f.Map.Hexes), "companies", len(f.Map.Companies),
		"phase", f.Phase, "modifiers", len(f.Modifiers))

	return s, nil
}

// LoadFile reads the scenario stored at path.
func LoadFile(path string, opts ...Option) (*Scenario, error) {
	slog.Info("reading scenario file", "path", path)
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer fh.Close()

	return Load(fh, opts...)
}

// addModifier builds spec and files it under every hook it implements.
func (s *Scenario) addModifier(spec ModifierSpec) error {
	var decode modifier.Decoder
	if spec.Params.Kind != 0 {
		params := spec.Params
		decode = params.Decode
	}
	m, err := s.cfg.registry.Build(spec.Name, decode)
	if err != nil {
		return err
	}
	used := false
	if mm, ok := m.(builder.MapGraphModifier); ok {
		s.mapMods, used = append(s.mapMods, mm), true
	}
	if rm, ok := m.(builder.RouteGraphModifier); ok {
		s.routeMods, used = append(s.routeMods, rm), true
	}
	if sm, ok := m.(revenue.StaticModifier); ok {
		s.static, used = append(s.static, sm), true
	}
	if dm, ok := m.(revenue.DynamicModifier); ok {
		s.dynamic, used = append(s.dynamic, dm), true
	}
	if !used {
		return fmt.Errorf("modifier %s implements no hook", spec.Name)
	}

	return nil
}

// Map returns the scenario map.
func (s *Scenario) Map() *hexmap.Map { return s.m }

// Phase returns the current phase.
func (s *Scenario) Phase() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase
}

// SetPhase switches the phase. Graphs of other phases stay cached.
func (s *Scenario) SetPhase(phase string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
}

// Invalidate drops every cached graph, e.g. after the map changed.
func (s *Scenario) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.mapGraphs)
	clear(s.routeGraphs)
}

// Calculate computes the revenue of company in the current phase. A
// company without trains or without a reachable base token earns 0.
//
// Errors:
//   - ErrUnknownCompany.
//   - train.ErrBadTrainSpec for an unparsable company train.
//   - builder, revenue and context errors.
func (s *Scenario) Calculate(ctx context.Context, company string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.m.Company(company)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompany, company)
	}
	res := &Result{Company: company, Phase: s.phase}
	trains, err := train.ParseAll(c.Trains)
	if err != nil {
		return nil, fmt.Errorf("scenario: company %s: %w", company, err)
	}
	if len(trains) == 0 {
		return res, nil
	}

	rg, err := s.routeGraph(company)
	if err != nil {
		return nil, err
	}
	var starts []string
	for _, id := range s.m.BaseTokens(company) {
		if rg.HasVertex(id) {
			starts = append(starts, id)
		}
	}
	if len(starts) == 0 {
		return res, nil
	}

	opts := []revenue.Option{
		revenue.WithPhase(s.phase),
		revenue.WithCompany(company),
		revenue.WithMultigraph(s.opts.Multigraph),
		revenue.WithPrediction(s.opts.Prediction == nil || *s.opts.Prediction),
		revenue.WithBonuses(revenue.BonusesFromTemplates(s.m.BonusTemplates())...),
		revenue.WithStaticModifiers(s.static...),
		revenue.WithDynamicModifiers(s.dynamic...),
	}
	if s.cfg.listener != nil {
		opts = append(opts, revenue.WithListener(s.cfg.listener))
	}
	a, err := revenue.NewAdapter(rg, trains, starts, opts...)
	if err != nil {
		return nil, err
	}
	if err = a.Initialize(ctx); err != nil {
		return nil, err
	}
	if res.Value, err = a.Calculate(ctx); err != nil {
		return nil, err
	}
	if res.Runs, err = a.OptimalRun(); err != nil {
		return nil, err
	}
	res.CalcID = a.ID()
	res.Text = a.PrettyPrint(res.Runs)

	return res, nil
}

// CalculateAll runs Calculate for every company in map order.
func (s *Scenario) CalculateAll(ctx context.Context) ([]*Result, error) {
	out := make([]*Result, 0, len(s.m.Companies))
	for _, c := range s.m.Companies {
		r, err := s.Calculate(ctx, c.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// mapGraph returns the cached map graph of the current phase.
func (s *Scenario) mapGraph() (*core.Graph, error) {
	if g, ok := s.mapGraphs[s.phase]; ok {
		return g, nil
	}
	g, err := builder.BuildMapGraph(s.m, builder.WithMapModifiers(s.mapMods...))
	if err != nil {
		return nil, err
	}
	builder.InitVertexForPhase(g, s.m, s.phase)
	s.mapGraphs[s.phase] = g
	slog.Debug("map graph cached", "phase", s.phase, "stats", g.Stats().String())

	return g, nil
}

// bonusLocations returns the vertices named by any bonus template; they
// must survive route graph optimization.
func (s *Scenario) bonusLocations() []string {
	var out []string
	for _, b := range s.m.BonusTemplates() {
		for _, l := range b.Locations {
			if l != "" {
				out = append(out, l)
			}
		}
	}

	return out
}

// routeGraph returns the cached route graph of company in the current phase.
func (s *Scenario) routeGraph(company string) (*core.Graph, error) {
	key := routeKey{company, s.phase}
	if g, ok := s.routeGraphs[key]; ok {
		return g, nil
	}
	mg, err := s.mapGraph()
	if err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{builder.WithRouteModifiers(s.routeMods...)}
	if s.opts.Optimize {
		bopts = append(bopts, builder.WithOptimize(), builder.WithProtected(s.bonusLocations()...))
	}
	g, err := builder.BuildRouteGraph(mg, s.m, company, false, bopts...)
	if err != nil {
		return nil, err
	}
	s.routeGraphs[key] = g
	slog.Debug("route graph cached", "company", company, "phase", s.phase, "stats", g.Stats().String())

	return g, nil
}
