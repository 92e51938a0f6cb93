// SPDX-License-Identifier: MIT

package dfs

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/lvrail/core"
)

// frame is one stack entry. A sentinel frame sits directly above the frame
// of a vertex whose children have all been scheduled.
type frame struct {
	vertex   string
	via      *core.Edge // arriving edge; nil for the start vertex
	forced   bool       // arrived at a side over a non-greedy edge
	sentinel bool
}

// Iterator walks the graph depth-first from a fixed start vertex.
//
// Usage:
//
//	it, err := dfs.NewIterator(g, "A1.-1")
//	for it.MoveNext() {
//		v := it.Current()
//		route := it.CurrentRoute()
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator struct {
	graph *core.Graph
	start string
	opts  Options

	stack   []frame
	current frame
	started bool
	err     error

	seen      map[string]uint8    // global mode tags
	onPath    map[string]struct{} // route mode path membership
	traversed map[string]struct{} // edge IDs usable from admitted vertices
}

// NewIterator prepares a traversal of g from start.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound.
func NewIterator(g *core.Graph, start string, opts ...Option) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	it := &Iterator{
		graph:     g,
		start:     start,
		opts:      o,
		stack:     []frame{{vertex: start}},
		seen:      make(map[string]uint8),
		onPath:    make(map[string]struct{}),
		traversed: make(map[string]struct{}),
	}

	return it, nil
}

// MoveNext advances to the next admitted vertex. It returns false when the
// traversal is exhausted or the context is done (see Err).
func (it *Iterator) MoveNext() bool {
	if it.err != nil {
		return false
	}
	for len(it.stack) > 0 {
		if err := it.opts.Ctx.Err(); err != nil {
			it.err = err

			return false
		}

		top := it.pop()
		if top.sentinel {
			// Subtree complete: drop the finished vertex below the sentinel.
			fin := it.pop()
			if it.opts.RouteMode {
				delete(it.onPath, fin.vertex)
			}

			continue
		}
		if !it.admit(top) {
			continue
		}

		it.stack = append(it.stack, top, frame{sentinel: true})
		it.current = top
		it.started = true
		it.expand(top)

		return true
	}

	return false
}

// Current returns the vertex admitted by the last successful MoveNext.
func (it *Iterator) Current() string {
	if !it.started {
		return ""
	}

	return it.current.vertex
}

// CurrentForced reports whether the current vertex was reached in the
// forced state.
func (it *Iterator) CurrentForced() bool { return it.current.forced }

// CurrentRoute returns the live path from the start vertex to Current:
// every frame directly followed by a sentinel, bottom to top.
func (it *Iterator) CurrentRoute() []string {
	route := make([]string, 0, 8)
	for i := 0; i+1 < len(it.stack); i++ {
		if !it.stack[i].sentinel && it.stack[i+1].sentinel {
			route = append(route, it.stack[i].vertex)
		}
	}

	return route
}

// CurrentEdges returns the edges of CurrentRoute in travel order.
func (it *Iterator) CurrentEdges() []*core.Edge {
	edges := make([]*core.Edge, 0, 8)
	for i := 0; i+1 < len(it.stack); i++ {
		f := it.stack[i]
		if !f.sentinel && it.stack[i+1].sentinel && f.via != nil {
			edges = append(edges, f.via)
		}
	}

	return edges
}

// Visited returns the IDs reached so far (global mode), sorted.
func (it *Iterator) Visited() []string {
	ids := maps.Keys(it.seen)
	sort.Strings(ids)

	return ids
}

// TraversedEdges returns, sorted by ID, every edge scheduled from an
// admitted vertex so far.
func (it *Iterator) TraversedEdges() []string {
	ids := maps.Keys(it.traversed)
	sort.Strings(ids)

	return ids
}

// Err returns the context error that stopped the traversal, if any.
func (it *Iterator) Err() error { return it.err }

func (it *Iterator) pop() frame {
	f := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	return f
}

// admit applies the visitation rule of the active mode and records the
// vertex as seen.
func (it *Iterator) admit(f frame) bool {
	if it.opts.RouteMode {
		if _, on := it.onPath[f.vertex]; on {
			return false
		}
		it.onPath[f.vertex] = struct{}{}
		it.seen[f.vertex] |= modeBit(f.forced)

		return true
	}

	tag := it.seen[f.vertex]
	bit := modeBit(f.forced)
	if tag&bit != 0 {
		return false
	}
	// A free arrival covers every edge a forced one could take.
	if f.forced && tag&seenFree != 0 {
		return false
	}
	it.seen[f.vertex] = tag | bit

	return true
}

func modeBit(forced bool) uint8 {
	if forced {
		return seenForced
	}

	return seenFree
}

// expand schedules the children of f in reverse creation order so they
// are popped in creation order.
func (it *Iterator) expand(f frame) {
	v, err := it.graph.Vertex(f.vertex)
	if err != nil {
		return
	}
	if v.Sink && f.via != nil {
		return
	}
	edges, err := it.graph.EdgesOf(f.vertex)
	if err != nil {
		return
	}
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		if f.forced && !e.Greedy {
			continue
		}
		w, _ := e.Opposite(f.vertex)
		it.traversed[e.ID] = struct{}{}
		if it.opts.RouteMode {
			if _, on := it.onPath[w]; on {
				continue
			}
		}
		wv, err := it.graph.Vertex(w)
		if err != nil {
			continue
		}
		it.stack = append(it.stack, frame{vertex: w, via: e, forced: wv.IsSide() && !e.Greedy})
	}
}
