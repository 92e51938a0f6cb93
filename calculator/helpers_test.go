// SPDX-License-Identifier: MIT

package calculator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrail/calculator"
	"github.com/katalvlaran/lvrail/train"
)

// net builds small problems by vertex name.
type net struct {
	t     testing.TB
	names map[string]int
	p     calculator.Problem
}

func newNet(t testing.TB, trains ...string) *net {
	t.Helper()
	n := &net{t: t, names: make(map[string]int)}
	for _, s := range trains {
		n.p.Trains = append(n.p.Trains, train.MustParse(s))
	}

	return n
}

func (n *net) vertex(name string, vs calculator.VertexSpec, value int) *net {
	vs.Values = make([]int, len(n.p.Trains))
	for i := range vs.Values {
		vs.Values[i] = value
	}
	n.names[name] = len(n.p.Vertices)
	n.p.Vertices = append(n.p.Vertices, vs)

	return n
}

func (n *net) major(name string, value int) *net {
	return n.vertex(name, calculator.VertexSpec{Major: true}, value)
}

func (n *net) minor(name string, value int) *net {
	return n.vertex(name, calculator.VertexSpec{Minor: true}, value)
}

func (n *net) side(name string) *net {
	return n.vertex(name, calculator.VertexSpec{Side: true}, 0)
}

func (n *net) sink(name string) *net {
	n.p.Vertices[n.idx(name)].Sink = true

	return n
}

// value overrides the value of name for train t.
func (n *net) value(name string, t, v int) *net {
	n.p.Vertices[n.idx(name)].Values[t] = v

	return n
}

func (n *net) edge(a, b string, greedy bool) *net {
	return n.edgeD(a, b, greedy, 1)
}

func (n *net) edgeD(a, b string, greedy bool, dist int, travel ...int) *net {
	n.p.Edges = append(n.p.Edges, calculator.EdgeSpec{
		From: n.idx(a), To: n.idx(b), Greedy: greedy, Distance: dist, TravelSets: travel,
	})

	return n
}

// edgeP adds a greedy unit edge crossing the given pass points.
func (n *net) edgeP(a, b string, passes ...int) *net {
	n.edgeD(a, b, true, 1)
	n.p.Edges[len(n.p.Edges)-1].Passes = passes

	return n
}

func (n *net) start(names ...string) *net {
	for _, s := range names {
		n.p.Starts = append(n.p.Starts, n.idx(s))
	}

	return n
}

func (n *net) visitSet(names ...string) *net {
	set := make([]int, len(names))
	for i, s := range names {
		set[i] = n.idx(s)
	}
	n.p.VisitSets = append(n.p.VisitSets, set)

	return n
}

func (n *net) bonus(value int, trains []int, names ...string) *net {
	b := calculator.BonusSpec{Value: value, Trains: trains}
	for _, s := range names {
		b.Vertices = append(b.Vertices, n.idx(s))
	}
	n.p.Bonuses = append(n.p.Bonuses, b)

	return n
}

func (n *net) idx(name string) int {
	i, ok := n.names[name]
	require.True(n.t, ok, "unknown vertex %s", name)

	return i
}

// path returns the vertex names of a run.
func (n *net) path(r calculator.Run) []string {
	rev := make(map[int]string, len(n.names))
	for k, v := range n.names {
		rev[v] = k
	}
	out := make([]string, len(r.Vertices))
	for i, v := range r.Vertices {
		out[i] = rev[v]
	}

	return out
}

func (n *net) solve(variant calculator.Variant, opts ...calculator.Option) (int, *calculator.Calculator) {
	n.t.Helper()
	c, err := calculator.New(variant, n.p, opts...)
	require.NoError(n.t, err)
	v, err := c.Calculate(context.Background())
	require.NoError(n.t, err)

	return v, c
}
