// SPDX-License-Identifier: MIT

// Package multigraph collapses a detailed route graph into a graph whose
// edges are complete station-to-station routes ("macro-edges").
//
// A macro-edge stands for a whole legal path of detailed edges between two
// relevant vertices (every station and HQ, plus caller-protected vertices)
// with only non-relevant vertices in between. Parallel macro-edges between
// the same pair are normal, so the result is a core.Graph created with
// core.WithMultiEdges.
//
// Travel sets:
//
//	Two macro-edges that share a detailed edge run over the same physical
//	track and are mutually exclusive within one joint search. Result keeps,
//	for every detailed edge used by at least two macro-edges, the IDs of
//	those macro-edges (TravelSets), and for every macro-edge the detailed
//	edges it covers (Routes). Hidden vertices passed by two or more
//	macro-edges are kept the same way (PassSets): a train crossing one
//	may not cross it again.
//
// Algorithm:
//
//  1. Clone the input graph and mark every relevant vertex as a sink.
//  2. For each relevant vertex r in ID order: clear its sink flag, enumerate
//     every route from r with a route-mode dfs.Iterator, join each route
//     ending on another relevant vertex into one macro-edge (core.JoinPath),
//     then remove r from the working graph so each route is found once.
//  3. Index travel and pass sets, dropping detailed edges and hidden
//     vertices used by a single macro-edge.
//
// Complexity is proportional to the number of simple relevant-to-relevant
// routes, which stays small on optimized route graphs.
//
// Errors:
//
//	ErrGraphNil         nil input graph
//	ErrUnknownVertex    a protected vertex is not in the graph
//	context errors      propagated from the route iterator
package multigraph
