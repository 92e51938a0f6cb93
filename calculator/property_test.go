// SPDX-License-Identifier: MIT

package calculator_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrail/calculator"
	"github.com/katalvlaran/lvrail/train"
)

// randomProblem draws a small simple graph with stations, sides, sinks
// (starts included), one optional visit set and one optional complex
// bonus, which may be negative.
func randomProblem(r *rand.Rand) calculator.Problem {
	var p calculator.Problem
	nT := 1 + r.Intn(2)
	for i := 0; i < nT; i++ {
		p.Trains = append(p.Trains, train.Train{
			Majors: 2 + r.Intn(3), Minors: r.Intn(2), MultiplyMajors: 1, MultiplyMinors: 1,
		})
	}

	n := 3 + r.Intn(6)
	var stations []int
	for v := 0; v < n; v++ {
		vs := calculator.VertexSpec{Values: make([]int, nT)}
		if v == 0 || r.Intn(10) < 6 {
			if r.Intn(10) < 7 {
				vs.Major = true
			} else {
				vs.Minor = true
			}
			stations = append(stations, v)
			for t := range vs.Values {
				vs.Values[t] = 10 * (1 + r.Intn(5))
			}
		} else {
			vs.Side = true
		}
		p.Vertices = append(p.Vertices, vs)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Intn(100) < 40 {
				p.Edges = append(p.Edges, calculator.EdgeSpec{From: u, To: v, Greedy: r.Intn(2) == 0, Distance: 1})
			}
		}
	}

	isStart := make(map[int]bool)
	for i := 0; i < 1+r.Intn(2); i++ {
		s := stations[r.Intn(len(stations))]
		if !isStart[s] {
			isStart[s] = true
			p.Starts = append(p.Starts, s)
		}
	}
	for _, v := range stations {
		if r.Intn(5) == 0 {
			p.Vertices[v].Sink = true
		}
	}
	if len(stations) >= 3 && r.Intn(3) == 0 {
		a, b := stations[1], stations[2]
		p.VisitSets = [][]int{{a, b}}
	}
	if len(stations) >= 2 && r.Intn(5) < 2 {
		a := stations[r.Intn(len(stations))]
		b := stations[r.Intn(len(stations))]
		if a != b {
			value := 25
			if r.Intn(3) == 0 {
				value = -10 * (1 + r.Intn(10))
			}
			p.Bonuses = []calculator.BonusSpec{{Value: value, Vertices: []int{a, b}}}
		}
	}

	return p
}

// candidate is one legal run of a train found by enumeration.
type candidate struct {
	edges uint64
	value int
}

// bruteForce enumerates every legal joint selection of runs.
func bruteForce(p calculator.Problem) int {
	n := len(p.Vertices)
	type arc struct{ to, edge int }
	adj := make([][]arc, n)
	for i, e := range p.Edges {
		adj[e.From] = append(adj[e.From], arc{e.To, i})
		adj[e.To] = append(adj[e.To], arc{e.From, i})
	}
	isStart := make(map[int]bool)
	for _, s := range p.Starts {
		isStart[s] = true
	}
	visitSet := make(map[int]int)
	for i, set := range p.VisitSets {
		for _, v := range set {
			visitSet[v] = i
		}
	}
	station := func(v int) bool { return p.Vertices[v].Major || p.Vertices[v].Minor }

	perTrain := make([][]candidate, len(p.Trains))
	for t, tr := range p.Trains {
		var path, edges []int
		onPath := make([]bool, n)
		var legal func() (int, bool)
		legal = func() (int, bool) {
			last := path[len(path)-1]
			if len(path) < 2 || !station(path[0]) || !station(last) || path[0] > last {
				return 0, false
			}
			hasStart, value, maj, min, stops := false, 0, tr.Majors, tr.Minors, 0
			sets := make(map[int]bool)
			for i, v := range path {
				vs := p.Vertices[v]
				hasStart = hasStart || isStart[v]
				interior := i > 0 && i < len(path)-1
				if interior && vs.Sink {
					return 0, false
				}
				if interior && vs.Side && !p.Edges[edges[i-1]].Greedy && !p.Edges[edges[i]].Greedy {
					return 0, false
				}
				if s, ok := visitSet[v]; ok {
					if sets[s] {
						return 0, false
					}
					sets[s] = true
				}
				switch {
				case vs.Major:
					maj--
					stops++
				case vs.Minor:
					min--
					stops++
				}
				value += vs.Values[t]
			}
			if !hasStart || stops < 2 || maj < 0 || maj+min < 0 {
				return 0, false
			}
			for _, b := range p.Bonuses {
				all := true
				for _, bv := range b.Vertices {
					all = all && onPath[bv]
				}
				if all {
					value += b.Value
				}
			}

			return value, true
		}
		var walk func(v int)
		walk = func(v int) {
			if value, ok := legal(); ok {
				var mask uint64
				for _, e := range edges {
					mask |= 1 << uint(e)
				}
				perTrain[t] = append(perTrain[t], candidate{mask, value})
			}
			for _, a := range adj[v] {
				if onPath[a.to] {
					continue
				}
				onPath[a.to] = true
				path, edges = append(path, a.to), append(edges, a.edge)
				walk(a.to)
				path, edges = path[:len(path)-1], edges[:len(edges)-1]
				onPath[a.to] = false
			}
		}
		for s := 0; s < n; s++ {
			path, edges = []int{s}, nil
			onPath[s] = true
			walk(s)
			onPath[s] = false
		}
	}

	best := 0
	var combine func(t int, used uint64, total int)
	combine = func(t int, used uint64, total int) {
		if t == len(perTrain) {
			if total > best {
				best = total
			}

			return
		}
		combine(t+1, used, total)
		for _, c := range perTrain[t] {
			if c.edges&used == 0 {
				combine(t+1, used|c.edges, total+c.value)
			}
		}
	}
	combine(0, 0, 0)

	return best
}

func TestCalculate_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(1830))
	for i := 0; i < 300; i++ {
		p := randomProblem(r)
		want := bruteForce(p)
		for _, predict := range []bool{true, false} {
			c, err := calculator.New(calculator.VariantSimple, p, calculator.WithPrediction(predict))
			require.NoError(t, err)
			got, err := c.Calculate(context.Background())
			require.NoError(t, err)
			require.Equal(t, want, got, "case %d (prediction %v): %+v", i, predict, p)

			checkRuns(t, c, p)
		}
	}
}

// checkRuns verifies that the reported runs are simple, edge-disjoint and
// add up to the best value.
func checkRuns(t *testing.T, c *calculator.Calculator, p calculator.Problem) {
	t.Helper()
	used := make(map[int]bool)
	total := 0
	for _, run := range c.BestRuns() {
		total += run.Value
		seen := make(map[int]bool)
		for _, v := range run.Vertices {
			require.False(t, seen[v], "vertex %d revisited", v)
			seen[v] = true
		}
		if run.Empty() {
			continue
		}
		require.Len(t, run.Edges, len(run.Vertices)-1)
		for i, e := range run.Edges {
			require.False(t, used[e], "edge %d used twice", e)
			used[e] = true
			ends := map[int]bool{p.Edges[e].From: true, p.Edges[e].To: true}
			require.True(t, ends[run.Vertices[i]] && ends[run.Vertices[i+1]], "edge %d does not join the path", e)
		}
	}
	require.Equal(t, c.BestValue(), total)
}
