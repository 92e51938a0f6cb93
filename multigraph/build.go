// SPDX-License-Identifier: MIT

package multigraph

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/dfs"
)

// Build collapses g into its station-to-station multigraph. g is not
// modified.
//
// Implementation:
//   - Stage 1: Collect relevant vertices; clone g and make them sinks.
//   - Stage 2: Enumerate routes from each relevant vertex in ID order,
//     retiring the vertex afterwards.
//   - Stage 3: Keep detailed edges and hidden vertices shared by two or
//     more macro-edges.
func Build(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1
	relevant, err := relevantVertices(g, cfg.protected)
	if err != nil {
		return nil, err
	}
	work := g.Clone()
	for id := range relevant {
		v, _ := work.Vertex(id)
		v.Sink = true
	}

	res := &Result{
		Graph:      core.NewGraph(core.WithMultiEdges()),
		Routes:     make(map[string][]string),
		TravelSets: make(map[string][]string),
		PassSets:   make(map[string][]string),
	}
	starts := make([]string, 0, len(relevant))
	for id := range relevant {
		starts = append(starts, id)
		v, _ := g.Vertex(id)
		_ = res.Graph.AddVertex(v)
	}
	sort.Strings(starts)

	// Stage 2
	usage := make(map[string][]string)
	passes := make(map[string][]string)
	for _, start := range starts {
		if err = collectRoutes(cfg.ctx, work, start, relevant, res, usage, passes); err != nil {
			return nil, err
		}
		_ = work.RemoveVertex(start)
	}

	// Stage 3
	for detailed, macros := range usage {
		if len(macros) < 2 {
			continue
		}
		sort.Strings(macros)
		res.TravelSets[detailed] = macros
	}
	for hidden, macros := range passes {
		if len(macros) < 2 {
			continue
		}
		sort.Strings(macros)
		res.PassSets[hidden] = macros
	}

	slog.Debug("multigraph built",
		"relevant", len(starts), "macro_edges", res.Graph.EdgeCount(),
		"shared_edges", len(res.TravelSets), "shared_vertices", len(res.PassSets))

	return res, nil
}

// relevantVertices returns stations, HQ vertices and the protected IDs.
func relevantVertices(g *core.Graph, protected []string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, v := range g.Vertices() {
		if v.IsStation() || v.IsHQ() {
			out[v.ID] = true
		}
	}
	for _, id := range protected {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVertex, id)
		}
		out[id] = true
	}

	return out, nil
}

// collectRoutes adds a macro-edge for every route from start to another
// relevant vertex of work.
func collectRoutes(ctx context.Context, work *core.Graph, start string, relevant map[string]bool, res *Result, usage, passes map[string][]string) error {
	sv, err := work.Vertex(start)
	if err != nil {
		return err
	}
	wasSink := sv.Sink
	sv.Sink = false
	defer func() { sv.Sink = wasSink }()

	it, err := dfs.NewIterator(work, start, dfs.WithRouteMode(), dfs.WithContext(ctx))
	if err != nil {
		return err
	}
	for it.MoveNext() {
		cur := it.Current()
		if cur == start || !relevant[cur] {
			continue
		}
		edges := it.CurrentEdges()
		macro, err := core.JoinPath(start, edges)
		if err != nil {
			return fmt.Errorf("multigraph: join route %s-%s: %w", start, cur, err)
		}
		if err = res.Graph.InsertEdge(macro); err != nil {
			return fmt.Errorf("multigraph: insert route %s-%s: %w", start, cur, err)
		}
		ids := make([]string, len(edges))
		for i, e := range edges {
			ids[i] = e.ID
			usage[e.ID] = append(usage[e.ID], macro.ID)
		}
		res.Routes[macro.ID] = ids
		for _, hidden := range macro.Hidden {
			passes[hidden] = append(passes[hidden], macro.ID)
		}
	}

	return it.Err()
}
