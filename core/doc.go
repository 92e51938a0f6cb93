// SPDX-License-Identifier: MIT

// Package core provides the network graph used by the revenue optimizer:
// typed vertices (stations, hex sides, company headquarters), undirected
// edges carrying track semantics, and the Graph that ties them together.
//
// The Graph G = (V,E) is an adjacency structure keyed by vertex ID:
//
//   - Vertices are addressed by a deterministic string key
//     ("<hex>.<point>" for map vertices, synthetic keys for virtual ones).
//   - Edges are undirected, but keep Source/Target for merge bookkeeping.
//   - A simple graph holds at most one edge per unordered vertex pair;
//     WithMultiEdges lifts that restriction (used for route multigraphs).
//   - Self-loops are never allowed.
//
// Track semantics on edges:
//
//	Greedy    a train that entered a hex side over a non-greedy (in-hex)
//	          track must leave it over a greedy edge; greedy edges reset
//	          that forced state.
//	Distance  hex count, consulted only by distance-limited trains.
//	Hidden    vertices absorbed by merges, in source→target order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v *Vertex) error
//	Vertex(id string) (*Vertex, error)
//	HasVertex(id string) bool
//	RemoveVertex(id string) error       // also drops incident edges
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (*Edge, error)
//	InsertEdge(e *Edge) error           // pre-built edges (union, merge)
//	RemoveEdge(id string) error
//	GetEdge(u, v string) (*Edge, bool)
//
//	// Query
//	EdgesOf(id string) ([]*Edge, error) // sorted by creation order
//	NeighborsOf(id string) ([]string, error)
//	GetOppositeVertex(id string, e *Edge) (string, error)
//	Vertices(), Edges(), VertexCount(), EdgeCount(), Degree(id)
//
//	// Derivation
//	CreateSubgraph(keep) *Graph         // induced, shares vertex/edge records
//	UnionWith(other) int                // returns number of rejected edges
//	Clone() *Graph                      // deep copy of records
//
//	// Merging
//	MergeEdges(a, b) (*Edge, error)     // new edge, graph untouched
//	MergeVertex(id) (*Edge, error)      // replaces a 2-edge side vertex
//	JoinPath(start, edges) (*Edge, error)
//	DuplicateVertex(id, newID) (*Vertex, error)
//
//	// Diagnostics
//	Stats() GraphStats
//
// All mutation is in place; callers that need isolation Clone first.
// Vertex Value/Sink/StationType are mutable during company and phase
// initialization and must not be changed while a search reads them.
package core
