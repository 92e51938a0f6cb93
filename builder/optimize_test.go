// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrail/builder"
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/hexmap"
)

// pathFrom orients an edge path to start at id.
func pathFrom(e *core.Edge, id string) []string {
	p := e.VertexPath()
	if p[0] != id {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}

	return p
}

func edgeSnapshot(g *core.Graph) map[string]bool {
	out := make(map[string]bool)
	for _, e := range g.Edges() {
		out[e.ID] = e.Greedy
	}

	return out
}

func TestOptimizeGraph_CollapsesLine(t *testing.T) {
	g, err := builder.BuildMapGraph(lineMap())
	require.NoError(t, err)

	rep := builder.OptimizeGraph(g, nil)
	assert.Equal(t, 6, rep.Promoted)
	assert.Equal(t, 6, rep.Merged)
	assert.Equal(t, 6, rep.Removed())
	assert.Equal(t, 2, rep.Rounds)

	assert.Equal(t, []string{"A1.-1", "B1.-1", "C1.-1", "D1.-1"}, g.VertexIDs())
	require.Equal(t, 3, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.True(t, e.Greedy, e.String())
		assert.Equal(t, 1, e.Distance, e.String())
	}
	ab, ok := g.GetEdge("A1.-1", "B1.-1")
	require.True(t, ok)
	assert.Equal(t, []string{"A1.-1", "A1.0", "B1.3", "B1.-1"}, pathFrom(ab, "A1.-1"))
}

func TestOptimizeGraph_Idempotent(t *testing.T) {
	g, err := builder.BuildMapGraph(lineMap())
	require.NoError(t, err)
	builder.OptimizeGraph(g, []string{"B1.0"})
	first := edgeSnapshot(g)
	ids := g.VertexIDs()
	assert.Contains(t, ids, "B1.0", "protected vertex kept")

	rep := builder.OptimizeGraph(g, []string{"B1.0"})
	assert.Equal(t, 0, rep.Removed())
	assert.Equal(t, 0, rep.Promoted)
	assert.Equal(t, first, edgeSnapshot(g))
	assert.Equal(t, ids, g.VertexIDs())
}

// reversalMap has two cities joined only through one hex side, which is a
// reversal: the side must survive optimization with both tracks non-greedy.
func reversalMap() *hexmap.Map {
	return &hexmap.Map{Hexes: []*hexmap.Hex{{
		ID: "X",
		Stations: []hexmap.Station{
			{Number: 1, Type: hexmap.KindCity, Value: 10},
			{Number: 2, Type: hexmap.KindCity, Value: 10},
		},
		Tracks: [][2]int{{-1, 0}, {-2, 0}},
	}}}
}

func TestOptimizeGraph_KeepsReversal(t *testing.T) {
	g, err := builder.BuildMapGraph(reversalMap())
	require.NoError(t, err)
	require.True(t, g.HasVertex("X.0.dead"))

	rep := builder.OptimizeGraph(g, nil)
	assert.Equal(t, 1, rep.DeadEnds)
	assert.Equal(t, 0, rep.Promoted)
	assert.Equal(t, []string{"X.-1", "X.-2", "X.0"}, g.VertexIDs())
	for _, e := range g.Edges() {
		assert.False(t, e.Greedy)
	}
}

func TestOptimizeGraph_GreedyIsMonotonic(t *testing.T) {
	for _, m := range []*hexmap.Map{lineMap(), reversalMap()} {
		g, err := builder.BuildMapGraph(m)
		require.NoError(t, err)
		builder.OptimizeGraph(g, []string{"B1.3"})
		greedy := edgeSnapshot(g)

		builder.OptimizeGraph(g, nil)
		after := edgeSnapshot(g)
		for id, wasGreedy := range greedy {
			isGreedy, stillThere := after[id]
			if wasGreedy && stillThere {
				assert.True(t, isGreedy, "edge %s lost its greedy flag", id)
			}
		}
	}
}

func TestOptimizeGraph_RemovesHermits(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(&core.Vertex{ID: "lonely", Type: core.TypeStation}))
	require.NoError(t, g.AddVertex(&core.Vertex{ID: "home", Type: core.TypeStation}))

	rep := builder.OptimizeGraph(g, []string{"home"})
	assert.Equal(t, 1, rep.Hermits)
	assert.Equal(t, []string{"home"}, g.VertexIDs())

	assert.Equal(t, builder.OptimizeReport{}, builder.OptimizeGraph(nil, nil))
}
