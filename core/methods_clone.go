// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves vertex and edge IDs, so derived graphs stay comparable.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertex records,
// edge records and adjacency. Edge IDs and sequence numbers are preserved.
//
// Use Clone before company- or phase-specific initialization so cached
// graphs are never mutated.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.allowMulti = g.allowMulti
	for id, v := range g.vertices {
		clone.vertices[id] = v.Copy()
		clone.adjacency[id] = make(map[string]struct{}, len(g.adjacency[id]))
	}
	for eid, e := range g.edges {
		ne := *e
		ne.Hidden = append([]string(nil), e.Hidden...)
		clone.edges[eid] = &ne
		clone.adjacency[e.Source][eid] = struct{}{}
		clone.adjacency[e.Target][eid] = struct{}{}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Complexity: O(1)
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]struct{})
}
