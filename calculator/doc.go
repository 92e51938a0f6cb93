// SPDX-License-Identifier: MIT

// Package calculator finds the best joint set of train runs on a route
// graph by branch-and-bound depth-first search.
//
// The input is a Problem: dense integer indices for vertices, edges,
// trains, start vertices, visit sets and complex bonuses. New validates it
// and lays everything out in flat, pre-sized arrays (adjacency in CSR form,
// per-train value tables, per-train path stacks); nothing is allocated
// during the search itself.
//
// Variants differ only in their edge rules:
//
//	VariantSimple          detailed graph; an edge may be taken only if it is
//	                       greedy or the train arrived at the current vertex
//	                       free (not at a side over a non-greedy edge).
//	VariantMulti           macro-edge multigraph; no greedy rule, macro-edges
//	                       sharing a detailed edge exclude each other.
//	VariantMultiDistance   VariantMulti plus a distance budget for hex trains.
//
// Search (trains in order, best train first when prediction is on):
//
//  1. Reset the train's counters and path stack.
//  2. Try every start vertex. Start vertices stay marked visited for the
//     rest of the train's start attempts, so no route is found twice.
//  3. From each vertex, follow every usable edge to an unvisited vertex,
//     count the stop, propagate visit sets and complex bonuses, recurse
//     unless the vertex is a sink, then treat the vertex as a run end.
//  4. At a run end, first try one bottom run (a second walk from the start
//     station, unless the start is a sink), then continue with the next
//     train.
//  5. After the last train, evaluate; on a new best, copy the stacks and
//     notify the listener. A train may always not run at all.
//
// Counting: a major stop decrements Majors, a counted minor stop Minors.
// A run is infeasible when Majors < 0, or Majors+Minors < 0 for non-express
// trains. A run needs at least two counted stops and must end at a station.
// Exploration continues past a complete run; any further counted stop is
// infeasible, so only non-counting vertices extend it.
//
// Prediction: when enabled, each train is first solved alone; the joint
// search then prunes any branch whose realized value plus the remaining
// stop estimate of the current train plus the solo maxima of the later
// trains cannot beat the best total found so far.
//
// Recursion depth is bounded by the vertex count (a run never revisits a
// vertex), and in practice by the train stop limits.
//
// A Calculator is single-threaded; Calculate must not be called
// concurrently, and a Listener must not call back into the Calculator
// except through the read-only accessors.
package calculator
