// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvrail/core"
)

// Walk drains a route iterator from start and returns the reachable
// vertices together with every edge usable from them.
//
// Implementation:
//   - Stage 1: Build an Iterator (validates g and start).
//   - Stage 2: Advance until exhausted, invoking OnVisit per admission.
//   - Stage 3: Collect visited vertices and traversed edges.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound.
//   - ctx.Err() when cancelled.
//   - OnVisit errors, wrapped with the vertex ID.
func Walk(g *core.Graph, start string, opts ...Option) (*Result, error) {
	it, err := NewIterator(g, start, opts...)
	if err != nil {
		return nil, err
	}

	res := &Result{Visited: make(map[string]bool)}
	for it.MoveNext() {
		id := it.Current()
		if it.opts.OnVisit != nil {
			if err = it.opts.OnVisit(id); err != nil {
				return nil, fmt.Errorf("dfs: visit %s: %w", id, err)
			}
		}
		res.Order = append(res.Order, id)
		res.Visited[id] = true
	}
	if err = it.Err(); err != nil {
		return nil, err
	}
	res.Edges = it.TraversedEdges()

	return res, nil
}
