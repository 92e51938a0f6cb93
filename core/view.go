// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Derived graphs (induced subgraph, union).
// Determinism:
//   - Vertex and edge records are shared with the source; IDs preserved.
// Concurrency:
//   - Read locks on sources; the result is a fresh graph instance.

package core

// CreateSubgraph returns the subgraph induced by keep: vertices with
// keep[id] == true, and every edge whose endpoints are both kept.
// The input graph is not mutated; records are shared, not copied.
//
// Complexity: O(V + E).
func (g *Graph) CreateSubgraph(keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.allowMulti = g.allowMulti
	for id, v := range g.vertices {
		if keep[id] {
			out.addVertexLocked(v)
		}
	}
	for eid, e := range g.edges {
		if !keep[e.Source] || !keep[e.Target] {
			continue
		}
		out.edges[eid] = e
		out.adjacency[e.Source][eid] = struct{}{}
		out.adjacency[e.Target][eid] = struct{}{}
	}

	return out
}

// UnionWith adds every vertex and edge of other to g.
//
// Vertices already present keep g's record. An edge whose ID is already
// present is skipped silently; an edge that would duplicate a vertex pair
// of a simple graph is rejected. The number of rejected edges is returned.
//
// Complexity: O(V' + E'·d) where V', E' are the sizes of other.
func (g *Graph) UnionWith(other *Graph) int {
	if other == nil || other == g {
		return 0
	}

	vertices := other.Vertices()
	edges := other.Edges()

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range vertices {
		g.addVertexLocked(v)
	}
	rejected := 0
	for _, e := range edges {
		if _, ok := g.edges[e.ID]; ok {
			continue
		}
		if err := g.insertEdgeLocked(e); err != nil {
			rejected++
		}
	}

	return rejected
}
