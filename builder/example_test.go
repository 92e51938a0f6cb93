// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvrail/builder"
)

// ExampleBuildMapGraph builds the line map and collapses its sides.
func ExampleBuildMapGraph() {
	g, err := builder.BuildMapGraph(lineMap())
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Stats())

	rep := builder.OptimizeGraph(g, nil)
	fmt.Println(g.Stats())
	fmt.Println(rep.Removed(), g.VertexIDs())
	// Output:
	// V=10 (stations=4 sides=6 sinks=0) E=9 (greedy=3 hidden=0)
	// V=4 (stations=4 sides=0 sinks=0) E=3 (greedy=3 hidden=6)
	// 6 [A1.-1 B1.-1 C1.-1 D1.-1]
}

// ExampleBuildRouteGraph shows how a foreign full city bounds a company network.
func ExampleBuildRouteGraph() {
	m := lineMap()
	g, _ := builder.BuildMapGraph(m)

	prr, _ := builder.BuildRouteGraph(g, m, "PRR", true, builder.WithOptimize())
	fmt.Println(prr.VertexIDs())
	// Output:
	// [A1.-1 B1.-1 C1.-1 HQ.PRR]
}
