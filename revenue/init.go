// SPDX-License-Identifier: MIT
//
// File: init.go
// Role: Translation of the adapter inputs into a calculator.Problem.
// Determinism:
//   - Vertices are indexed in ID order, edges in creation order, travel
//     sets in detailed edge ID order.

package revenue

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/lvrail/calculator"
	"github.com/katalvlaran/lvrail/multigraph"
)

// Initialize runs the modifiers, chooses the calculator variant and builds
// the calculator. It may be called again after the inputs changed; static
// modifiers run on the first call only.
//
// Implementation:
//   - Stage 1: Static modifiers, then Prepare of the dynamic ones.
//   - Stage 2: Search graph: the route graph or its multigraph.
//   - Stage 3: Dense vertices, edges, starts, visit sets and bonuses.
//   - Stage 4: calculator.New with prediction, listener and evaluator.
//
// Errors:
//   - context errors while the multigraph is built.
//   - calculator.ErrInvalidArgument wrapped with the adapter context.
func (a *Adapter) Initialize(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a.calc, a.lastRuns = nil, nil

	// Stage 1
	if !a.modified {
		a.modified = true
		for _, m := range a.cfg.static {
			if m.ModifyCalculator(a) {
				if text := m.PrettyPrint(a); text != "" {
					a.notes = append(a.notes, text)
				}
			}
		}
	}
	a.active = a.active[:0]
	for _, m := range a.cfg.dynamic {
		if m.Prepare(a) {
			a.active = append(a.active, m)
		}
	}

	// Stage 2
	variant, err := a.buildSearchGraph(ctx)
	if err != nil {
		return err
	}

	// Stage 3
	a.ids = a.search.VertexIDs()
	a.index = make(map[string]int, len(a.ids))
	for i, id := range a.ids {
		a.index[id] = i
	}
	p := calculator.Problem{Trains: a.Trains()}
	simple, complexBonuses := a.bindBonuses()
	p.Vertices = a.vertexSpecs(simple)
	p.Edges = a.edgeSpecs()
	p.Bonuses = complexBonuses
	p.VisitSets = a.visitSets()
	for _, s := range a.starts {
		i, ok := a.index[s]
		if !ok {
			return fmt.Errorf("%w: %s not in search graph", ErrStartVertexNotFound, s)
		}
		p.Starts = append(p.Starts, i)
	}

	// Stage 4
	opts := []calculator.Option{calculator.WithPrediction(a.cfg.predict)}
	if a.cfg.listener != nil {
		opts = append(opts, calculator.WithListener(a.cfg.listener))
	}
	if len(a.active) > 0 {
		opts = append(opts, calculator.WithEvaluator(&dynamicHook{a: a}))
	}
	calc, err := calculator.New(variant, p, opts...)
	if err != nil {
		return fmt.Errorf("revenue: initialize %s: %w", a.id, err)
	}
	a.calc = calc

	d := calc.Dimensions()
	a.log.Info("revenue calculator initialized",
		"variant", variant.String(),
		"vertices", d.Vertices, "edges", d.Edges, "trains", d.Trains,
		"starts", len(p.Starts), "visit_sets", len(p.VisitSets),
		"complex_bonuses", d.ComplexBonuses, "travel_sets", d.TravelSets, "pass_points", d.PassPoints,
		"dynamic_modifiers", len(a.active))

	return nil
}

// buildSearchGraph picks the variant and sets a.search and a.multi.
func (a *Adapter) buildSearchGraph(ctx context.Context) (calculator.Variant, error) {
	hex := false
	for _, tr := range a.trains {
		hex = hex || tr.IsHTrain
	}
	a.multi = nil
	if !a.cfg.multigraph && !hex {
		a.search = a.graph

		return calculator.VariantSimple, nil
	}

	// Bonus vertices and starts must stay addressable after collapsing.
	protected := append([]string(nil), a.starts...)
	for _, b := range a.cfg.bonuses {
		for _, id := range b.Vertices {
			if a.graph.HasVertex(id) {
				protected = append(protected, id)
			}
		}
	}
	res, err := multigraph.Build(a.graph, multigraph.WithContext(ctx), multigraph.WithProtected(protected...))
	if err != nil {
		return 0, fmt.Errorf("revenue: multigraph: %w", err)
	}
	a.multi, a.search = res, res.Graph
	if hex {
		return calculator.VariantMultiDistance, nil
	}

	return calculator.VariantMulti, nil
}

// bindBonuses keeps the bonuses active in the phase whose vertices are all
// present. Simple bonuses are returned per vertex index; complex ones as
// calculator specs.
func (a *Adapter) bindBonuses() (map[int][]RevenueBonus, []calculator.BonusSpec) {
	a.dropped = a.dropped[:0]
	simple := make(map[int][]RevenueBonus)
	var specs []calculator.BonusSpec
	for _, b := range a.cfg.bonuses {
		if !b.ActiveIn(a.cfg.phase) || len(b.Vertices) == 0 {
			continue
		}
		vs, missing := make([]int, 0, len(b.Vertices)), ""
		for _, id := range b.Vertices {
			i, ok := a.index[id]
			if !ok {
				missing = id

				break
			}
			vs = append(vs, i)
		}
		if missing != "" {
			a.dropped = append(a.dropped, b.Name)
			a.log.Warn("revenue bonus dropped", "bonus", b.Name, "vertex", missing)

			continue
		}
		if b.IsSimple() {
			simple[vs[0]] = append(simple[vs[0]], b)

			continue
		}
		spec := calculator.BonusSpec{Value: b.Value, Vertices: vs}
		restricted := false
		for t, tr := range a.trains {
			if b.AppliesTo(tr) {
				spec.Trains = append(spec.Trains, t)
			} else {
				restricted = true
			}
		}
		if !restricted {
			spec.Trains = nil
		} else if len(spec.Trains) == 0 {
			continue
		}
		specs = append(specs, spec)
	}

	return simple, specs
}

// vertexSpecs scores every vertex per train. Simple bonuses add their
// value unscaled.
func (a *Adapter) vertexSpecs(simple map[int][]RevenueBonus) []calculator.VertexSpec {
	out := make([]calculator.VertexSpec, len(a.ids))
	for i, id := range a.ids {
		v, _ := a.search.Vertex(id)
		spec := calculator.VertexSpec{
			Major:  v.IsMajor(),
			Minor:  v.IsMinor(),
			Side:   v.IsSide(),
			Sink:   v.Sink,
			Values: make([]int, len(a.trains)),
		}
		for t, tr := range a.trains {
			val := 0
			if v.IsStation() {
				val = tr.Value(v.Value, v.IsMajor())
			}
			for _, b := range simple[i] {
				if b.AppliesTo(tr) {
					val += b.Value
				}
			}
			spec.Values[t] = val
		}
		out[i] = spec
	}

	return out
}

// edgeSpecs lists the search edges and, on a multigraph, the travel sets
// of every macro-edge.
func (a *Adapter) edgeSpecs() []calculator.EdgeSpec {
	a.edges = a.search.Edges()
	pos := make(map[string]int, len(a.edges))
	out := make([]calculator.EdgeSpec, len(a.edges))
	for i, e := range a.edges {
		pos[e.ID] = i
		out[i] = calculator.EdgeSpec{
			From:     a.index[e.Source],
			To:       a.index[e.Target],
			Greedy:   e.Greedy,
			Distance: e.Distance,
		}
	}
	if a.multi == nil {
		return out
	}
	for set, detailed := range a.multi.SharedEdges() {
		for _, macro := range a.multi.TravelSets[detailed] {
			if i, ok := pos[macro]; ok {
				out[i].TravelSets = append(out[i].TravelSets, set)
			}
		}
	}
	for k, hidden := range a.multi.SharedVertices() {
		for _, macro := range a.multi.PassSets[hidden] {
			if i, ok := pos[macro]; ok {
				out[i].Passes = append(out[i].Passes, k)
			}
		}
	}

	return out
}

// visitSets groups vertices sharing a stop name with the explicit visit
// sets, merging groups that overlap. Members missing from the search
// graph are skipped.
func (a *Adapter) visitSets() [][]int {
	parent := make(map[string]string)
	var find func(string) string
	find = func(x string) string {
		if p, ok := parent[x]; ok && p != x {
			r := find(p)
			parent[x] = r

			return r
		}
		parent[x] = x

		return x
	}
	union := func(ids []string) {
		var present []string
		for _, id := range ids {
			if _, ok := a.index[id]; ok {
				present = append(present, id)
			}
		}
		for _, id := range present[min(1, len(present)):] {
			parent[find(id)] = find(present[0])
		}
	}

	byStop := make(map[string][]string)
	for _, id := range a.ids {
		v, _ := a.search.Vertex(id)
		if v.StopName != "" {
			byStop[v.StopName] = append(byStop[v.StopName], id)
		}
	}
	for _, ids := range byStop {
		union(ids)
	}
	for _, ids := range a.cfg.visitSets {
		union(ids)
	}

	groups := make(map[string][]int)
	for _, id := range maps.Keys(parent) {
		root := find(id)
		groups[root] = append(groups[root], a.index[id])
	}
	roots := maps.Keys(groups)
	sort.Strings(roots)
	var out [][]int
	for _, r := range roots {
		if g := groups[r]; len(g) > 1 {
			sort.Ints(g)
			out = append(out, g)
		}
	}

	return out
}
