// SPDX-License-Identifier: MIT

package builder

import (
	"errors"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvrail/core"
)

// optimizeGraph implements OptimizeGraph.
//
// Implementation:
//   - Stage 1: Promote edges to greedy until no more promotions apply.
//   - Stage 2: One removal pass over vertices in ID order:
//     hermits (no edges), dead-end sides (one edge) and pass-through sides
//     (two mergeable edges). Protected vertices are skipped.
//   - Repeat until a removal pass removes nothing.
//
// Termination: every repeated round removes at least one vertex.
// Greedy promotion never reverts, and removals only make promotion easier,
// so the fixed point is reached monotonically.
func optimizeGraph(g *core.Graph, protected map[string]bool) OptimizeReport {
	var rep OptimizeReport
	if g == nil {
		return rep
	}
	before := g.Stats()

	for {
		rep.Promoted += increaseGreedy(g)
		rep.Rounds++
		removed := removeVertices(g, protected, &rep)
		if removed == 0 {
			break
		}
	}

	slog.Debug("graph optimized",
		"before", before.String(), "after", g.Stats().String(),
		"rounds", rep.Rounds, "promoted", rep.Promoted, "removed", rep.Removed())

	return rep
}

// increaseGreedy turns non-greedy edges greedy while doing so leaves every
// train no fewer and no more legal moves: for each endpoint, the endpoint
// is not a side, or e is its only non-greedy edge.
// Returns the number of promoted edges.
func increaseGreedy(g *core.Graph) int {
	promoted := 0
	for changed := true; changed; {
		changed = false
		for _, e := range g.Edges() {
			if e.Greedy {
				continue
			}
			if soleWayOut(g, e.Source, e) && soleWayOut(g, e.Target, e) {
				e.Greedy = true
				promoted++
				changed = true
			}
		}
	}

	return promoted
}

// soleWayOut reports whether promoting e is neutral at endpoint id.
func soleWayOut(g *core.Graph, id string, e *core.Edge) bool {
	v, err := g.Vertex(id)
	if err != nil {
		return false
	}
	if !v.IsSide() {
		return true
	}
	edges, err := g.EdgesOf(id)
	if err != nil {
		return false
	}
	for _, other := range edges {
		if other.ID != e.ID && !other.Greedy {
			return false
		}
	}

	return true
}

// removeVertices performs one removal pass and returns the number of
// vertices removed.
func removeVertices(g *core.Graph, protected map[string]bool, rep *OptimizeReport) int {
	removed := 0
	for _, id := range g.VertexIDs() {
		if protected[id] {
			continue
		}
		v, err := g.Vertex(id)
		if err != nil {
			continue // merged away earlier in this pass
		}
		deg, _ := g.Degree(id)
		switch {
		case deg == 0:
			_ = g.RemoveVertex(id)
			rep.Hermits++
			removed++
		case deg == 1 && v.IsSide():
			_ = g.RemoveVertex(id)
			rep.DeadEnds++
			removed++
		case deg == 2 && v.IsSide():
			_, err = g.MergeVertex(id)
			if err == nil {
				rep.Merged++
				removed++
			} else if !errors.Is(err, core.ErrNotMergeable) {
				slog.Error("merge failed", "vertex", id, "err", err)
			}
		}
	}

	return removed
}
