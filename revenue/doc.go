// SPDX-License-Identifier: MIT

// Package revenue connects a company route graph to the branch-and-bound
// search of package calculator.
//
// An Adapter collects the domain inputs of one calculation (route graph,
// trains, start vertices, bonuses, visit sets and modifiers), translates
// them into a dense calculator.Problem, runs the search and converts the
// winning index runs back into TrainRun values that name graph vertices.
//
// Lifecycle:
//
//	a, err := revenue.NewAdapter(routeGraph, trains, tokens, revenue.WithPhase("3"))
//	if err := a.Initialize(ctx); err != nil { ... }
//	value, err := a.Calculate(ctx)
//	runs, err := a.OptimalRun()
//
// Variant choice:
//   - WithMultigraph(true) or any H-train makes Initialize collapse the
//     graph with package multigraph; overlapping macro-edges become
//     travel sets and shared hidden vertices become pass points.
//   - Any H-train selects calculator.VariantMultiDistance, otherwise
//     calculator.VariantMulti on a multigraph and calculator.VariantSimple
//     on the detailed graph.
//
// Bonuses:
//   - A bonus on one vertex is simple: its value is added to that
//     vertex for every train it applies to.
//   - A bonus on several vertices is complex and is tracked by the search.
//   - A bonus naming a vertex absent from the search graph is dropped
//     and logged.
//
// Modifiers:
//   - StaticModifier runs once in Initialize and may change the inputs.
//   - DynamicModifier is asked by Prepare whether it takes part; active
//     ones add value to complete run sets, bound that value for pruning
//     and may adjust the reported runs.
//
// An Adapter is not safe for concurrent use.
package revenue
