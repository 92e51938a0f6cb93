// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Visitation tags of the global mode.
const (
	unseen     = 0
	seenForced = 1 << 0
	seenFree   = 1 << 1
	done       = seenForced | seenFree
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to NewIterator or Walk.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of the route iterator.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// RouteMode checks revisits against the current path only.
	RouteMode bool

	// OnVisit, if non-nil, is invoked by Walk for every admitted vertex.
	// Returning an error aborts the walk with that error.
	OnVisit func(id string) error
}

// DefaultOptions returns Options with a background context, global
// visitation mode and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context checked on every MoveNext.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRouteMode switches the iterator to path-local revisit checks.
func WithRouteMode() Option {
	return func(o *Options) { o.RouteMode = true }
}

// WithOnVisit installs fn as the admission hook used by Walk.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result captures the outcome of Walk.
type Result struct {
	// Order lists vertices in admission order; a vertex admitted in both
	// arrival modes appears twice.
	Order []string

	// Visited flags every vertex reached.
	Visited map[string]bool

	// Edges lists, sorted by ID, every edge a train may travel from a
	// reached vertex.
	Edges []string
}
