// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (EdgesOf, NeighborsOf, GetOppositeVertex).
// Determinism:
//   - EdgesOf() sorts by creation order.
//   - NeighborsOf() returns unique IDs sorted lex asc.

package core

import "sort"

// EdgesOf returns all edges incident to id in creation order.
//
// The returned records are live catalog entries; treat them as read-only.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) EdgesOf(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(adj))
	for eid := range adj {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// NeighborsOf returns the unique IDs adjacent to id, sorted ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from EdgesOf.
func (g *Graph) NeighborsOf(id string) ([]string, error) {
	edges, err := g.EdgesOf(id)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		other, _ := e.Opposite(id)
		set[other] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for nid := range set {
		out = append(out, nid)
	}
	sort.Strings(out)

	return out, nil
}

// GetOppositeVertex returns the endpoint of e that is not id.
//
// Errors:
//   - ErrNilEdge, ErrNotIncident.
func (g *Graph) GetOppositeVertex(id string, e *Edge) (string, error) {
	if e == nil {
		return "", ErrNilEdge
	}
	other, ok := e.Opposite(id)
	if !ok {
		return "", ErrNotIncident
	}

	return other, nil
}
