// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph declarations, options, sentinel errors and NewGraph.

package core

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was passed to AddVertex.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrNilEdge indicates a nil *Edge was passed to an edge operation.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates a vertex ID is already taken.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDuplicateEdgeID indicates an edge with the same ID already exists.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")

	// ErrNotIncident indicates a vertex is not an endpoint of the given edge.
	ErrNotIncident = errors.New("core: vertex not incident to edge")

	// ErrNotMergeable indicates two edges (or a vertex) cannot be merged.
	ErrNotMergeable = errors.New("core: edges not mergeable")
)

// VertexType classifies a vertex by its role on the map.
type VertexType int

const (
	// TypeStation is a city, town or off-map area where trains score.
	TypeStation VertexType = iota
	// TypeSide is a hex side carrying at least one track.
	TypeSide
	// TypeHQ is the synthetic company home vertex linked to all base tokens.
	TypeHQ
)

// String returns a short label for the vertex type.
func (t VertexType) String() string {
	switch t {
	case TypeStation:
		return "station"
	case TypeSide:
		return "side"
	case TypeHQ:
		return "hq"
	}

	return fmt.Sprintf("VertexType(%d)", int(t))
}

// StationType is the scoring class of a station vertex.
type StationType int

const (
	// StationNone marks non-station vertices.
	StationNone StationType = iota
	// StationMajor is a city-class stop.
	StationMajor
	// StationMinor is a town-class stop.
	StationMinor
)

// String returns a short label for the station type.
func (t StationType) String() string {
	switch t {
	case StationNone:
		return "none"
	case StationMajor:
		return "major"
	case StationMinor:
		return "minor"
	}

	return fmt.Sprintf("StationType(%d)", int(t))
}

// Vertex is a node of the network graph.
//
// ID is immutable; Value, Sink and StationType are adjusted by phase and
// company initialization before a search starts.
type Vertex struct {
	// ID is the deterministic identity key.
	ID string

	// Type is station, side or HQ.
	Type VertexType

	// StationType is major/minor for stations and StationNone otherwise.
	StationType StationType

	// Hex is the owning hex identifier; empty for virtual vertices.
	Hex string

	// Point is the track point number inside the hex (sides 0..5, stations -k).
	Point int

	// Value is the revenue earned when a train visits this vertex.
	Value int

	// Sink marks vertices a train may start or end at but never pass through.
	Sink bool

	// StopName groups vertices that represent the same real-world stop.
	StopName string

	// Virtual marks synthetic vertices (HQ, dead ends).
	Virtual bool
}

// IsStation reports whether v is a station vertex.
func (v *Vertex) IsStation() bool { return v.Type == TypeStation }

// IsSide reports whether v is a hex-side vertex.
func (v *Vertex) IsSide() bool { return v.Type == TypeSide }

// IsHQ reports whether v is a company headquarters vertex.
func (v *Vertex) IsHQ() bool { return v.Type == TypeHQ }

// IsMajor reports whether v is a major station.
func (v *Vertex) IsMajor() bool { return v.Type == TypeStation && v.StationType == StationMajor }

// IsMinor reports whether v is a minor station.
func (v *Vertex) IsMinor() bool { return v.Type == TypeStation && v.StationType == StationMinor }

// String returns the vertex ID.
func (v *Vertex) String() string { return v.ID }

// Copy returns an independent copy of v.
func (v *Vertex) Copy() *Vertex {
	c := *v

	return &c
}

// Edge is an undirected track connection between two vertices.
//
// Source and Target are retained so merged edges can rebuild their full
// vertex path in a stable orientation. Edges are replaced, never mutated,
// by merge operations.
type Edge struct {
	// ID uniquely identifies this edge across all graphs of the process.
	ID string

	// Source is the first endpoint.
	Source string

	// Target is the second endpoint.
	Target string

	// Greedy marks a connection that resets a forced continuation state.
	Greedy bool

	// Distance is the hex count covered by the edge.
	Distance int

	// Hidden lists vertices absorbed by merges, ordered from Source to Target.
	Hidden []string

	seq uint64
}

// String renders the edge as "Source-Target".
func (e *Edge) String() string { return e.Source + "-" + e.Target }

// Opposite returns the endpoint of e that is not id.
func (e *Edge) Opposite(id string) (string, bool) {
	switch id {
	case e.Source:
		return e.Target, true
	case e.Target:
		return e.Source, true
	}

	return "", false
}

// VertexPath returns Source, the hidden vertices and Target in order.
func (e *Edge) VertexPath() []string {
	path := make([]string, 0, len(e.Hidden)+2)
	path = append(path, e.Source)
	path = append(path, e.Hidden...)

	return append(path, e.Target)
}

// Seq returns the creation sequence number of the edge.
func (e *Edge) Seq() uint64 { return e.seq }

// edgeSeq is the process-wide edge ID generator. Edges are shared between
// derived graphs (subgraphs, unions), so IDs must never collide across graphs.
var edgeSeq atomic.Uint64

// newEdgeRecord allocates an edge with a fresh ID.
func newEdgeRecord(source, target string) *Edge {
	seq := edgeSeq.Add(1)

	return &Edge{ID: fmt.Sprintf("e%d", seq), Source: source, Target: target, seq: seq}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithGreedy sets the greedy flag of a new edge.
func WithGreedy(greedy bool) EdgeOption {
	return func(e *Edge) { e.Greedy = greedy }
}

// WithDistance sets the hex distance of a new edge.
func WithDistance(d int) EdgeOption {
	if d < 0 {
		panic("core: WithDistance(negative)")
	}

	return func(e *Edge) { e.Distance = d }
}

// WithHidden sets the hidden vertex chain of a new edge.
func WithHidden(ids ...string) EdgeOption {
	return func(e *Edge) { e.Hidden = append([]string(nil), ids...) }
}

// Graph is the network graph: vertex catalog, edge catalog and
// adjacency (vertex ID → incident edge IDs).
//
// mu guards all three maps. Vertex records themselves are shared with
// derived graphs and are not protected by mu.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool

	vertices map[string]*Vertex
	edges    map[string]*Edge

	// adjacency[vertexID][edgeID] = struct{}{}
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty simple Graph; see WithMultiEdges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
