// Package lvrail computes the best revenue a railway company can earn from
// its trains on an 18xx style hex map.
//
// A map of hexes with stations and track is turned into a graph, reduced to
// what one company can reach from its base tokens, and searched for the set
// of vertex-disjoint, edge-disjoint train runs of maximal total value.
//
// The work is split over flat subpackages:
//
//	core/         Vertex, Edge and Graph with edge merging
//	hexmap/       hex map, companies and bonus templates (YAML)
//	builder/      map graph, route graph, graph reduction and modifier hooks
//	dfs/          route iterator discovering the reachable subgraph
//	multigraph/   station-to-station macro edges with travel sets
//	train/        train grammar ("4", "2+2", "D", "H5", "TGV", "4x2")
//	calculator/   branch-and-bound revenue search (simple, multi, distance)
//	revenue/      adapter between graphs and the calculator, bonuses, runs
//	modifier/     modifier registry and built-in modifiers
//	scenario/     YAML scenarios with cached graphs per phase and company
//	metrics/      Prometheus counters for the search
//	cmd/revcalc   command line front end
//
// Quick example (two cities joined by one track):
//
//	A(30) ─── B(20)      train "2" ⇒ A → B = 50
//
//	go run ./cmd/revcalc -scenario game.yaml -company PRR
package lvrail
