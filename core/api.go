// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshot helpers (Stats) used for logging and diagnostics.
// Policy:
//   - No algorithms or hidden state here.

package core

import "fmt"

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Vertices    int // total vertex count
	Stations    int // vertices of TypeStation
	Sides       int // vertices of TypeSide
	Sinks       int // vertices with Sink set
	Edges       int // total edge count
	GreedyEdges int // edges with Greedy set
	HiddenTotal int // sum of hidden-vertex chain lengths
}

// String renders the stats in a compact single line for log output.
func (s GraphStats) String() string {
	return fmt.Sprintf("V=%d (stations=%d sides=%d sinks=%d) E=%d (greedy=%d hidden=%d)",
		s.Vertices, s.Stations, s.Sides, s.Sinks, s.Edges, s.GreedyEdges, s.HiddenTotal)
}

// Stats returns a snapshot of vertex and edge counts.
// Complexity: O(V + E), read lock.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var s GraphStats
	s.Vertices = len(g.vertices)
	for _, v := range g.vertices {
		switch v.Type {
		case TypeStation:
			s.Stations++
		case TypeSide:
			s.Sides++
		}
		if v.Sink {
			s.Sinks++
		}
	}
	s.Edges = len(g.edges)
	for _, e := range g.edges {
		if e.Greedy {
			s.GreedyEdges++
		}
		s.HiddenTotal += len(e.Hidden)
	}

	return s
}
