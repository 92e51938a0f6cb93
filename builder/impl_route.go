// SPDX-License-Identifier: MIT

package builder

import (
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/dfs"
	"github.com/katalvlaran/lvrail/hexmap"
)

// buildRouteGraph implements BuildRouteGraph.
//
// Implementation:
//   - Stage 1: Clone the map graph; apply route-graph modifiers.
//   - Stage 2: Mark company sinks (InitVertexForCompany).
//   - Stage 3: Add the HQ vertex, linked non-greedy to every base token.
//   - Stage 4: Walk from each token with its sink flag cleared; union the
//     reached vertices and usable edges.
//   - Stage 5: Drop HQ unless requested; optionally optimize around the
//     tokens and the WithProtected vertices.
func buildRouteGraph(mapGraph *core.Graph, m *hexmap.Map, company string, addHome bool, cfg builderConfig) (*core.Graph, error) {
	if err := validateGraph(MethodBuildRouteGraph, mapGraph); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, builderErrorf(MethodBuildRouteGraph, "%w", ErrNilMap)
	}
	if err := validateCompany(MethodBuildRouteGraph, m, company); err != nil {
		return nil, err
	}

	// Stage 1
	work := mapGraph.Clone()
	for _, mod := range cfg.routeModifiers {
		if err := mod.ModifyRouteGraph(work, company); err != nil {
			return nil, builderErrorf(MethodBuildRouteGraph, "%w: %w", ErrModifierFailed, err)
		}
	}

	// Stage 2
	if err := InitVertexForCompany(work, m, company); err != nil {
		return nil, err
	}

	// Stage 3
	tokens := make([]string, 0, 4)
	for _, id := range m.BaseTokens(company) {
		if work.HasVertex(id) {
			tokens = append(tokens, id)
		}
	}
	out := core.NewGraph()
	if len(tokens) == 0 {
		slog.Info("company has no base token on the graph", "company", company)

		return out, nil
	}
	hq := &core.Vertex{ID: HQID(company), Type: core.TypeHQ, Sink: true, Virtual: true}
	if err := work.AddVertex(hq); err != nil {
		return nil, builderErrorf(MethodBuildRouteGraph, "%w", err)
	}
	for _, t := range tokens {
		if _, err := work.AddEdge(hq.ID, t, core.WithGreedy(false), core.WithDistance(InHexDistance)); err != nil {
			return nil, builderErrorf(MethodBuildRouteGraph, "link HQ to %s: %w", t, err)
		}
	}

	// Stage 4
	keepV := make(map[string]bool)
	keepE := make(map[string]bool)
	for _, t := range tokens {
		v, _ := work.Vertex(t)
		wasSink := v.Sink
		v.Sink = false
		res, err := dfs.Walk(work, t)
		v.Sink = wasSink
		if err != nil {
			return nil, builderErrorf(MethodBuildRouteGraph, "walk from %s: %w", t, err)
		}
		for id := range res.Visited {
			keepV[id] = true
		}
		for _, eid := range res.Edges {
			keepE[eid] = true
		}
	}
	for _, v := range work.Vertices() {
		if keepV[v.ID] {
			_ = out.AddVertex(v)
		}
	}
	for _, e := range work.Edges() {
		if keepE[e.ID] {
			if err := out.InsertEdge(e); err != nil {
				return nil, builderErrorf(MethodBuildRouteGraph, "edge %s: %w", e.ID, err)
			}
		}
	}

	// Stage 5
	if !addHome {
		_ = out.RemoveVertex(hq.ID)
	}
	if cfg.optimize {
		protected := append([]string(nil), tokens...)
		if addHome {
			protected = append(protected, hq.ID)
		}
		for _, id := range cfg.protected {
			if out.HasVertex(id) {
				protected = append(protected, id)
			}
		}
		OptimizeGraph(out, protected)
	}

	slog.Debug("route graph built", "company", company, "stats", out.Stats().String())

	return out, nil
}

// InitVertexForCompany sets the sink flags company sees on g:
// off-map stations are always sinks; a city whose slots are all taken by
// other companies is a sink; every other station is passable.
//
// Errors:
//   - ErrNilGraph, ErrNilMap.
func InitVertexForCompany(g *core.Graph, m *hexmap.Map, company string) error {
	if err := validateGraph(MethodInitVertexForCompany, g); err != nil {
		return err
	}
	if m == nil {
		return builderErrorf(MethodInitVertexForCompany, "%w", ErrNilMap)
	}
	forEachStation(g, m, func(v *core.Vertex, s *hexmap.Station) {
		switch {
		case s.Type == hexmap.KindOffmap:
			v.Sink = true
		case s.Type == hexmap.KindCity && s.Slots > 0 && s.FreeSlots() == 0 && !s.HasToken(company):
			v.Sink = true
		default:
			v.Sink = false
		}
	})

	return nil
}

// InitVertexForPhase sets each station vertex value to its phase value.
// Vertices missing from g are ignored; nil arguments are a no-op.
func InitVertexForPhase(g *core.Graph, m *hexmap.Map, phase string) {
	if g == nil || m == nil {
		return
	}
	forEachStation(g, m, func(v *core.Vertex, s *hexmap.Station) {
		v.Value = s.ValueFor(phase)
	})
}
