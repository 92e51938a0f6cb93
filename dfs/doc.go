// Package dfs implements the route iterator: a lazily advancing depth-first
// traversal of a core.Graph that honours track semantics.
//
// What:
//
//   - Iterator: external iterator (MoveNext/Current) over the vertices
//     reachable from a fixed start vertex. It keeps an explicit stack of
//     frames; after a vertex is entered a sentinel frame is pushed on top of
//     it, so the live path is every frame directly followed by a sentinel.
//     No recursion is used, so map size never threatens the goroutine stack.
//   - Walk: drains an Iterator and reports discovered vertices and every
//     edge that a train could legally use (the reachable route graph).
//
// Traversal rules for an edge v→w:
//
//   - A train that entered a side vertex over a non-greedy edge is forced:
//     it may only leave over a greedy edge. Stations and HQ vertices never
//     force.
//   - In route mode a vertex already on the path is never re-entered, so
//     the arriving edge is never taken back.
//   - Sinks are entered but not expanded, except the start vertex.
//
// Visitation modes:
//
//   - Global (default): each vertex carries a 4-state tag
//     (unseen / seen-forced / seen-free / done). A vertex is admitted once
//     per arrival mode, so a side first reached forced is expanded again
//     when later reached free. The search runs over (vertex, forced) states
//     and may include a vertex only reachable by reversing, never the
//     other way round: every legally reachable vertex is found.
//   - Route mode (WithRouteMode): only the current path is checked, so the
//     same vertex is revisited on different branches. Used to enumerate
//     every simple station-to-station route for the multigraph builder.
//
// An Iterator is finite and not restartable; build a fresh one per traversal.
//
// Complexity:
//
//   - Global mode: Time O(V + E) (each vertex admitted at most twice).
//   - Route mode:  Time proportional to the number of simple paths.
//   - Memory:      O(V + E) for the stack and bookkeeping.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        traversal cancelled via context (Iterator.Err)
//   - hook errors             propagated from OnVisit by Walk
package dfs
