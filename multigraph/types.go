// SPDX-License-Identifier: MIT

package multigraph

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/lvrail/core"
)

var (
	// ErrGraphNil is returned when Build receives a nil graph.
	ErrGraphNil = errors.New("multigraph: graph is nil")

	// ErrUnknownVertex indicates a protected vertex missing from the graph.
	ErrUnknownVertex = errors.New("multigraph: unknown vertex")
)

// Option configures Build.
type Option func(*config)

type config struct {
	ctx       context.Context
	protected []string
}

// WithContext sets the context checked while routes are enumerated.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithProtected adds vertices that must survive as macro-edge endpoints
// even though they are not stations.
func WithProtected(ids ...string) Option {
	return func(c *config) { c.protected = append(c.protected, ids...) }
}

// Result is the collapsed multigraph and its travel-set bookkeeping.
type Result struct {
	// Graph holds the relevant vertices (records shared with the input)
	// and one macro-edge per discovered route.
	Graph *core.Graph

	// Routes maps a macro-edge ID to the detailed edge IDs it covers, in
	// travel order.
	Routes map[string][]string

	// TravelSets maps a detailed edge ID to the sorted IDs of the
	// macro-edges that use it. Only edges shared by two or more
	// macro-edges are kept.
	TravelSets map[string][]string

	// PassSets maps a hidden vertex ID to the sorted IDs of the
	// macro-edges passing through it. Only vertices inside two or more
	// macro-edges are kept; one train may cross each of them once.
	PassSets map[string][]string
}

// Conflicts returns, sorted, every other macro-edge sharing a detailed
// edge with macro.
func (r *Result) Conflicts(macro string) []string {
	seen := make(map[string]bool)
	for _, detailed := range r.Routes[macro] {
		for _, other := range r.TravelSets[detailed] {
			if other != macro {
				seen[other] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// SharedEdges returns the sorted IDs of the detailed edges in TravelSets.
func (r *Result) SharedEdges() []string { return sortedKeys(r.TravelSets) }

// SharedVertices returns the sorted IDs of the hidden vertices in PassSets.
func (r *Result) SharedVertices() []string { return sortedKeys(r.PassSets) }

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
