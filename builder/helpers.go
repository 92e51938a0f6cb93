// SPDX-License-Identifier: MIT

// Package builder provides internal helper functions used by the entry points.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Determinism: every helper that iterates a collection sorts it first.
package builder

import (
	"sort"

	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/hexmap"
)

// sortedHexes returns the hexes of m ordered by ID.
func sortedHexes(m *hexmap.Map) []*hexmap.Hex {
	out := make([]*hexmap.Hex, len(m.Hexes))
	copy(out, m.Hexes)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// stationVertex maps a map station to its graph vertex.
func stationVertex(h *hexmap.Hex, s *hexmap.Station) *core.Vertex {
	point := hexmap.StationPoint(s.Number)
	v := &core.Vertex{
		ID:       hexmap.VertexID(h.ID, point),
		Type:     core.TypeStation,
		Hex:      h.ID,
		Point:    point,
		Value:    s.Value,
		StopName: s.StopName,
	}
	switch s.Type {
	case hexmap.KindTown:
		v.StationType = core.StationMinor
	case hexmap.KindOffmap:
		v.StationType = core.StationMajor
		v.Sink = true
	default:
		v.StationType = core.StationMajor
	}

	return v
}

// sideVertex creates the vertex of a tracked hex side.
func sideVertex(h *hexmap.Hex, side int) *core.Vertex {
	return &core.Vertex{
		ID:    hexmap.VertexID(h.ID, side),
		Type:  core.TypeSide,
		Hex:   h.ID,
		Point: side,
	}
}

// deadEndVertex creates the synthetic counterpart of a side whose
// connection leads off the map or into an untracked side.
func deadEndVertex(h *hexmap.Hex, side int) *core.Vertex {
	return &core.Vertex{
		ID:      hexmap.VertexID(h.ID, side) + DeadEndSuffix,
		Type:    core.TypeSide,
		Hex:     h.ID,
		Point:   side,
		Virtual: true,
	}
}

// forEachStation calls fn for every station of m whose vertex exists in g.
func forEachStation(g *core.Graph, m *hexmap.Map, fn func(v *core.Vertex, s *hexmap.Station)) {
	for _, h := range sortedHexes(m) {
		for i := range h.Stations {
			s := &h.Stations[i]
			v, err := g.Vertex(hexmap.VertexID(h.ID, hexmap.StationPoint(s.Number)))
			if err != nil {
				continue
			}
			fn(v, s)
		}
	}
}
