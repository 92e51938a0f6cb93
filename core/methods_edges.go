// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/InsertEdge/RemoveEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in creation order (Edge.Seq asc).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddEdge creates a new undirected edge between two existing vertices.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Build the Edge record with a fresh ID and apply opts.
//  3. Insert under lock (endpoint presence, multi-edge constraint).
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound, ErrMultiEdgeNotAllowed.
//
// Complexity: O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if from == to {
		return nil, ErrLoopNotAllowed
	}

	e := newEdgeRecord(from, to)
	for _, opt := range opts {
		opt(e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.insertEdgeLocked(e); err != nil {
		return nil, err
	}

	return e, nil
}

// InsertEdge adds a pre-built edge record. An empty ID is replaced by a
// fresh one. The record is shared, not copied.
//
// Errors:
//   - ErrNilEdge, ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound,
//     ErrDuplicateEdgeID, ErrMultiEdgeNotAllowed.
func (g *Graph) InsertEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.Source == "" || e.Target == "" {
		return ErrEmptyVertexID
	}
	if e.Source == e.Target {
		return ErrLoopNotAllowed
	}
	if e.ID == "" {
		fresh := newEdgeRecord(e.Source, e.Target)
		e.ID, e.seq = fresh.ID, fresh.seq
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.insertEdgeLocked(e)
}

// insertEdgeLocked registers e in the catalog and both adjacency buckets.
// Caller must hold mu for writing.
func (g *Graph) insertEdgeLocked(e *Edge) error {
	if _, ok := g.vertices[e.Source]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[e.Target]; !ok {
		return ErrVertexNotFound
	}
	if _, dup := g.edges[e.ID]; dup {
		return ErrDuplicateEdgeID
	}
	if !g.allowMulti && g.edgeBetweenLocked(e.Source, e.Target) != nil {
		return ErrMultiEdgeNotAllowed
	}

	g.edges[e.ID] = e
	g.adjacency[e.Source][e.ID] = struct{}{}
	g.adjacency[e.Target][e.ID] = struct{}{}

	return nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)

	return nil
}

// removeEdgeLocked drops e from catalog and adjacency. Caller holds mu.
func (g *Graph) removeEdgeLocked(e *Edge) {
	if e == nil {
		return
	}
	delete(g.edges, e.ID)
	if adj, ok := g.adjacency[e.Source]; ok {
		delete(adj, e.ID)
	}
	if adj, ok := g.adjacency[e.Target]; ok {
		delete(adj, e.ID)
	}
}

// HasEdge reports whether an edge with the given ID exists.
func (g *Graph) HasEdge(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// EdgeByID returns the edge record for id.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) EdgeByID(id string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// GetEdge returns the first edge (creation order) between u and v.
// The bool is false when no edge connects them.
func (g *Graph) GetEdge(u, v string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.edgeBetweenLocked(u, v)

	return e, e != nil
}

// EdgesBetween returns all edges between u and v in creation order.
func (g *Graph) EdgesBetween(u, v string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Edge
	for eid := range g.adjacency[u] {
		e := g.edges[eid]
		if (e.Source == u && e.Target == v) || (e.Source == v && e.Target == u) {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// edgeBetweenLocked scans the adjacency of u for an edge to v.
// Caller holds mu.
func (g *Graph) edgeBetweenLocked(u, v string) *Edge {
	var best *Edge
	for eid := range g.adjacency[u] {
		e := g.edges[eid]
		if (e.Source == u && e.Target == v) || (e.Source == v && e.Target == u) {
			if best == nil || e.seq < best.seq {
				best = e
			}
		}
	}

	return best
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by creation sequence, then ID for records
// inserted from outside the package.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].seq != es[j].seq {
			return es[i].seq < es[j].seq
		}

		return es[i].ID < es[j].ID
	})
}
