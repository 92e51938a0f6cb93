// SPDX-License-Identifier: MIT
//
// File: merge.go
// Role: Edge merging, side-vertex elimination, path joining and vertex duplication.
// Determinism:
//   - Merged paths are oriented from the far end of the first edge to the far
//     end of the second; Hidden keeps that order.
// Concurrency:
//   - MergeVertex and DuplicateVertex hold the write lock for the whole rewrite.

package core

import "fmt"

// MergeEdges computes the edge that replaces a and b, which must share
// exactly one endpoint. The result is a fresh record; g is not modified.
//
// Greedy flag of the result:
//   - both sub-edges non-greedy: not mergeable (a reversal at the shared vertex).
//   - equal flags: kept.
//   - differing flags: the flag of the sub-edge adjacent to a side far end;
//     not mergeable if both far ends are sides; true if neither is.
//
// Errors:
//   - ErrNilEdge, ErrNotIncident (no shared endpoint), ErrVertexNotFound,
//     ErrNotMergeable.
func (g *Graph) MergeEdges(a, b *Edge) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.mergeEdgesLocked(a, b)
}

func (g *Graph) mergeEdgesLocked(a, b *Edge) (*Edge, error) {
	if a == nil || b == nil {
		return nil, ErrNilEdge
	}
	shared, ok := sharedEndpoint(a, b)
	if !ok {
		return nil, ErrNotIncident
	}
	farA, _ := a.Opposite(shared)
	farB, _ := b.Opposite(shared)
	if farA == farB {
		return nil, fmt.Errorf("%w: %s and %s form a cycle", ErrNotMergeable, a.ID, b.ID)
	}
	va, okA := g.vertices[farA]
	vb, okB := g.vertices[farB]
	if !okA || !okB {
		return nil, ErrVertexNotFound
	}

	greedy, err := mergedGreedy(a.Greedy, b.Greedy, va.IsSide(), vb.IsSide())
	if err != nil {
		return nil, fmt.Errorf("%w: %s and %s", err, a.ID, b.ID)
	}

	// Orient a to end at the shared vertex and b to start at it.
	pathA := a.VertexPath()
	if pathA[0] == shared {
		reverse(pathA)
	}
	pathB := b.VertexPath()
	if pathB[len(pathB)-1] == shared {
		reverse(pathB)
	}
	path := append(pathA, pathB[1:]...)

	merged := newEdgeRecord(path[0], path[len(path)-1])
	merged.Greedy = greedy
	merged.Distance = a.Distance + b.Distance
	merged.Hidden = append([]string(nil), path[1:len(path)-1]...)

	return merged, nil
}

// mergedGreedy resolves the greedy flag of a merged edge from the flags of
// its sub-edges and whether their far ends are side vertices.
func mergedGreedy(ga, gb, sideA, sideB bool) (bool, error) {
	switch {
	case !ga && !gb:
		return false, ErrNotMergeable
	case ga == gb:
		return ga, nil
	case sideA && sideB:
		return false, ErrNotMergeable
	case sideA:
		return ga, nil
	case sideB:
		return gb, nil
	}

	return true, nil
}

// MergeVertex removes the side vertex id, which must have exactly two
// incident edges, and connects its neighbours with the merged edge.
//
// Errors:
//   - ErrVertexNotFound.
//   - ErrNotMergeable: id is not a side, does not have exactly two edges,
//     the edges cannot be merged, or the merged edge would duplicate an
//     existing connection of a simple graph.
//
// Complexity: O(d) over the neighbours' adjacency.
func (g *Graph) MergeVertex(id string) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	if !v.IsSide() {
		return nil, fmt.Errorf("%w: %s is not a side vertex", ErrNotMergeable, id)
	}
	adj := g.adjacency[id]
	if len(adj) != 2 {
		return nil, fmt.Errorf("%w: %s has %d edges", ErrNotMergeable, id, len(adj))
	}
	pair := make([]*Edge, 0, 2)
	for eid := range adj {
		pair = append(pair, g.edges[eid])
	}
	sortEdges(pair)

	merged, err := g.mergeEdgesLocked(pair[0], pair[1])
	if err != nil {
		return nil, err
	}
	if !g.allowMulti && g.edgeBetweenLocked(merged.Source, merged.Target) != nil {
		return nil, fmt.Errorf("%w: %s duplicates an existing edge", ErrNotMergeable, merged)
	}

	g.removeEdgeLocked(pair[0])
	g.removeEdgeLocked(pair[1])
	delete(g.adjacency, id)
	delete(g.vertices, id)
	if err = g.insertEdgeLocked(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// JoinPath concatenates a chain of consecutive edges walked from start into
// one greedy record running from start to the last vertex reached. Distances
// are summed and intermediate vertices become the hidden chain. The result
// is not inserted into any graph.
//
// Errors:
//   - ErrNilEdge: empty chain or nil element.
//   - ErrNotIncident: an edge does not continue from the current vertex.
//   - ErrLoopNotAllowed: the chain returns to start.
func JoinPath(start string, edges []*Edge) (*Edge, error) {
	if len(edges) == 0 {
		return nil, ErrNilEdge
	}
	path := []string{start}
	cur, dist := start, 0
	for _, e := range edges {
		if e == nil {
			return nil, ErrNilEdge
		}
		seg := e.VertexPath()
		switch cur {
		case seg[0]:
		case seg[len(seg)-1]:
			reverse(seg)
		default:
			return nil, fmt.Errorf("%w: %s does not continue from %s", ErrNotIncident, e.ID, cur)
		}
		path = append(path, seg[1:]...)
		cur = seg[len(seg)-1]
		dist += e.Distance
	}
	if cur == start {
		return nil, ErrLoopNotAllowed
	}

	joined := newEdgeRecord(start, cur)
	joined.Greedy = true
	joined.Distance = dist
	joined.Hidden = append([]string(nil), path[1:len(path)-1]...)

	return joined, nil
}

// DuplicateVertex adds a copy of vertex id under newID together with a
// fresh copy of every incident edge. Returns the new vertex record.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrVertexExists.
func (g *Graph) DuplicateVertex(id, newID string) (*Vertex, error) {
	if id == "" || newID == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	if _, taken := g.vertices[newID]; taken {
		return nil, fmt.Errorf("%w: %s", ErrVertexExists, newID)
	}
	dup := v.Copy()
	dup.ID = newID
	g.addVertexLocked(dup)

	incident := make([]*Edge, 0, len(g.adjacency[id]))
	for eid := range g.adjacency[id] {
		incident = append(incident, g.edges[eid])
	}
	sortEdges(incident)
	for _, e := range incident {
		other, _ := e.Opposite(id)
		ne := newEdgeRecord(newID, other)
		if e.Target == id {
			ne.Source, ne.Target = other, newID
		}
		ne.Greedy = e.Greedy
		ne.Distance = e.Distance
		ne.Hidden = append([]string(nil), e.Hidden...)
		if err := g.insertEdgeLocked(ne); err != nil {
			return nil, err
		}
	}

	return dup, nil
}

// sharedEndpoint returns the single vertex common to a and b.
func sharedEndpoint(a, b *Edge) (string, bool) {
	switch {
	case a.Source == b.Source || a.Source == b.Target:
		if a.Target == b.Source || a.Target == b.Target {
			return "", false // parallel edges share both endpoints
		}

		return a.Source, true
	case a.Target == b.Source || a.Target == b.Target:
		return a.Target, true
	}

	return "", false
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
