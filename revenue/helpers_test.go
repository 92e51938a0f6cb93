// SPDX-License-Identifier: MIT

package revenue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/revenue"
	"github.com/katalvlaran/lvrail/train"
)

func city(id string, value int) *core.Vertex {
	return &core.Vertex{ID: id, Type: core.TypeStation, StationType: core.StationMajor, Value: value}
}

func side(id string) *core.Vertex {
	return &core.Vertex{ID: id, Type: core.TypeSide}
}

// link is an edge of a test graph.
type link struct {
	u, v   string
	greedy bool
	dist   int
}

// graphOf builds a simple graph from vertices and links.
func graphOf(t testing.TB, vs []*core.Vertex, links ...link) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vs {
		require.NoError(t, g.AddVertex(v))
	}
	for _, l := range links {
		_, err := g.AddEdge(l.u, l.v, core.WithGreedy(l.greedy), core.WithDistance(l.dist))
		require.NoError(t, err)
	}

	return g
}

// twoCities is A(30) - B(20) over one greedy edge.
func twoCities(t testing.TB) *core.Graph {
	return graphOf(t, []*core.Vertex{city("A", 30), city("B", 20)}, link{"A", "B", true, 1})
}

// fork is A(10) - S1 - S2 with branches to B(20) and C(30); only the
// trunk S1-S2 is greedy, so no route runs from B to C.
func fork(t testing.TB) *core.Graph {
	return graphOf(t,
		[]*core.Vertex{city("A", 10), city("B", 20), city("C", 30), side("S1"), side("S2")},
		link{"A", "S1", false, 0}, link{"S1", "S2", true, 1},
		link{"S2", "B", false, 0}, link{"S2", "C", false, 0},
	)
}

func trains(specs ...string) []train.Train {
	out := make([]train.Train, len(specs))
	for i, s := range specs {
		out[i] = train.MustParse(s)
	}

	return out
}

// solve initializes a and runs the search.
func solve(t testing.TB, a *revenue.Adapter) (int, []revenue.TrainRun) {
	t.Helper()
	require.NoError(t, a.Initialize(context.Background()))
	value, err := a.Calculate(context.Background())
	require.NoError(t, err)
	runs, err := a.OptimalRun()
	require.NoError(t, err)

	return value, runs
}

// perRunBonus pays value for every train that runs.
type perRunBonus struct {
	value    int
	active   bool
	adjusted bool
}

func (m *perRunBonus) Prepare(*revenue.Adapter) bool { return m.active }

func (m *perRunBonus) EvaluationValue(runs []revenue.TrainRun) int {
	total := 0
	for _, r := range runs {
		if !r.Empty() {
			total += m.value
		}
	}

	return total
}

func (m *perRunBonus) PredictionValue(runs []revenue.TrainRun) int { return m.value * len(runs) }

func (m *perRunBonus) AdjustOptimalRun(runs []revenue.TrainRun) {
	m.adjusted = true
	for i := range runs {
		if !runs[i].Empty() {
			runs[i].Value += m.value
		}
	}
}

func (m *perRunBonus) PrettyPrint([]revenue.TrainRun) string { return "per run bonus" }

// startBonus adds a simple bonus on every start vertex.
type startBonus struct{ value int }

func (m startBonus) ModifyCalculator(a *revenue.Adapter) bool {
	for _, s := range a.Starts() {
		a.AddBonus(revenue.RevenueBonus{Name: "start", Value: m.value, Vertices: []string{s}})
	}

	return len(a.Starts()) > 0
}

func (m startBonus) PrettyPrint(*revenue.Adapter) string { return "start bonus" }
