// SPDX-License-Identifier: MIT

// Package builder turns a hexmap.Map into the network graphs searched by
// the revenue calculator.
//
// The package offers the following key components:
//
//   - BuildMapGraph:   one vertex per station and per tracked hex side,
//     non-greedy in-hex tracks, greedy hex-to-hex connections, synthesized
//     dead ends for connections leaving the map, then the map-graph
//     modifiers registered with WithMapModifiers.
//   - OptimizeGraph:   alternates greedy promotion with removal of hermits,
//     dead-end sides and pass-through sides until nothing changes.
//     Protected vertices are never removed.
//   - BuildRouteGraph: company view of a map graph: route-graph modifiers,
//     company sinks, an HQ vertex linked to every base token, and the
//     union of everything reachable from those tokens.
//   - InitVertexForPhase / InitVertexForCompany: phase values and
//     company-specific sinks.
//
// Configuration primitives:
//
//   - BuilderOption:  a function that mutates builderConfig before use.
//   - MapGraphModifier / RouteGraphModifier: external graph rewriting hooks,
//     applied in registration order.
//
// Guarantees:
//
//   - Determinism: hexes, tracks and vertices are processed in sorted order,
//     so equal maps yield equal graphs (edge IDs aside).
//   - OptimizeGraph is idempotent and never turns a greedy edge back.
//   - Malformed tracks (a segment looping onto itself) are logged and
//     skipped; the build continues.
//
// Errors:
//
//   - ErrNilMap, ErrNilGraph, ErrUnknownCompany, ErrModifierFailed.
package builder
