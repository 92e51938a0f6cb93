package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/dfs"
)

// ExampleIterator lists every vertex with the route that reached it.
func ExampleIterator() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(&core.Vertex{ID: id, Type: core.TypeStation})
	}
	_, _ = g.AddEdge("A", "B", core.WithGreedy(true))
	_, _ = g.AddEdge("B", "C", core.WithGreedy(true))

	it, _ := dfs.NewIterator(g, "A")
	for it.MoveNext() {
		fmt.Println(it.Current(), it.CurrentRoute())
	}

	// Output:
	// A [A]
	// B [A B]
	// C [A B C]
}

// ExampleWalk shows the forced-continuation rule at a hex side.
func ExampleWalk() {
	g := core.NewGraph()
	_ = g.AddVertex(&core.Vertex{ID: "A", Type: core.TypeStation})
	_ = g.AddVertex(&core.Vertex{ID: "x", Type: core.TypeSide})
	_ = g.AddVertex(&core.Vertex{ID: "y", Type: core.TypeSide})
	_, _ = g.AddEdge("A", "x") // in-hex track
	_, _ = g.AddEdge("x", "y") // another in-hex track: a reversal

	res, _ := dfs.Walk(g, "A")
	fmt.Println(res.Order)

	// Output:
	// [A x]
}
