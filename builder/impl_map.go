// SPDX-License-Identifier: MIT

package builder

import (
	"errors"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/hexmap"
)

// buildMapGraph implements BuildMapGraph.
//
// Implementation:
//   - Stage 1: Validate the map (builds the coordinate index).
//   - Stage 2: Add station vertices and one vertex per tracked side.
//   - Stage 3: Add in-hex tracks as non-greedy edges; skip self-loops.
//   - Stage 4: Connect facing sides of neighbouring hexes with greedy edges,
//     synthesizing dead ends where the counterpart is missing.
//   - Stage 5: Apply map-graph modifiers in order.
func buildMapGraph(m *hexmap.Map, cfg builderConfig) (*core.Graph, error) {
	if err := validateMap(MethodBuildMapGraph, m); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	hexes := sortedHexes(m)

	// Stage 2: vertices
	for _, h := range hexes {
		for i := range h.Stations {
			_ = g.AddVertex(stationVertex(h, &h.Stations[i]))
		}
		for _, s := range h.TrackSides() {
			_ = g.AddVertex(sideVertex(h, s))
		}
	}

	// Stage 3: in-hex tracks
	for _, h := range hexes {
		for _, tr := range h.Tracks {
			from, to := hexmap.VertexID(h.ID, tr[0]), hexmap.VertexID(h.ID, tr[1])
			_, err := g.AddEdge(from, to, core.WithGreedy(false), core.WithDistance(InHexDistance))
			switch {
			case err == nil:
			case errors.Is(err, core.ErrLoopNotAllowed):
				slog.Error("track loops onto itself, skipped", "hex", h.ID, "point", tr[0])
			case errors.Is(err, core.ErrMultiEdgeNotAllowed):
				slog.Debug("duplicate track ignored", "hex", h.ID, "from", tr[0], "to", tr[1])
			default:
				return nil, builderErrorf(MethodBuildMapGraph, "track %v in %s: %w", tr, h.ID, err)
			}
		}
	}

	// Stage 4: hex-to-hex connections
	deadEnds := 0
	for _, h := range hexes {
		for _, s := range h.TrackSides() {
			from := hexmap.VertexID(h.ID, s)
			to := ""
			if n, ok := m.Neighbor(h, s); ok && g.HasVertex(hexmap.VertexID(n.ID, hexmap.Opposite(s))) {
				to = hexmap.VertexID(n.ID, hexmap.Opposite(s))
			} else {
				dead := deadEndVertex(h, s)
				_ = g.AddVertex(dead)
				to = dead.ID
				deadEnds++
			}
			if _, exists := g.GetEdge(from, to); exists {
				continue
			}
			if _, err := g.AddEdge(from, to, core.WithGreedy(true), core.WithDistance(CrossHexDistance)); err != nil {
				return nil, builderErrorf(MethodBuildMapGraph, "connect %s-%s: %w", from, to, err)
			}
		}
	}

	// Stage 5: modifiers
	for _, mod := range cfg.mapModifiers {
		if err := mod.ModifyMapGraph(g); err != nil {
			return nil, builderErrorf(MethodBuildMapGraph, "%w: %w", ErrModifierFailed, err)
		}
	}

	slog.Debug("map graph built", "stats", g.Stats().String(), "deadEnds", deadEnds)

	return g, nil
}
