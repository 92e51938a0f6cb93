// SPDX-License-Identifier: MIT
// Package: lvrail/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - All public entry points are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same map, options and modifier order ⇒ same graph shape.

package builder

import (
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/hexmap"
)

// MapGraphModifier rewrites the raw map graph once after it is built.
type MapGraphModifier interface {
	ModifyMapGraph(g *core.Graph) error
}

// RouteGraphModifier rewrites a company-specific clone of the map graph
// before reachability discovery.
type RouteGraphModifier interface {
	ModifyRouteGraph(g *core.Graph, company string) error
}

// OptimizeReport summarizes what OptimizeGraph changed.
type OptimizeReport struct {
	Rounds   int // removal passes executed
	Promoted int // edges turned greedy
	Hermits  int // isolated vertices removed
	DeadEnds int // single-edge sides removed
	Merged   int // pass-through sides merged away
}

// Removed returns the total number of vertices removed.
func (r OptimizeReport) Removed() int { return r.Hermits + r.DeadEnds + r.Merged }

// BuildMapGraph creates the map-level graph of m and applies the map-graph
// modifiers from opts.
//
// Complexity: O(H·(S + T)) for H hexes with S stations and T tracks.
//
// Errors:
//   - ErrNilMap, hexmap.ErrInvalidMap (from validation).
//   - ErrModifierFailed wrapping a modifier error.
func BuildMapGraph(m *hexmap.Map, opts ...BuilderOption) (*core.Graph, error) {
	return buildMapGraph(m, newBuilderConfig(opts...))
}

// OptimizeGraph shrinks g in place until a fixed point, never touching
// the protected vertex IDs. See impl_optimize.go for the passes.
func OptimizeGraph(g *core.Graph, protected []string) OptimizeReport {
	set := make(map[string]bool, len(protected))
	for _, id := range protected {
		set[id] = true
	}

	return optimizeGraph(g, set)
}

// BuildRouteGraph derives the graph company can operate on from mapGraph,
// which is cloned and never modified. When addHome is false the HQ vertex
// used for discovery is dropped again.
//
// Errors:
//   - ErrNilGraph, ErrNilMap, ErrUnknownCompany.
//   - ErrModifierFailed wrapping a route-graph modifier error.
func BuildRouteGraph(mapGraph *core.Graph, m *hexmap.Map, company string, addHome bool, opts ...BuilderOption) (*core.Graph, error) {
	return buildRouteGraph(mapGraph, m, company, addHome, newBuilderConfig(opts...))
}

// HQID returns the ID of the company home vertex.
func HQID(company string) string { return HQPrefix + company }
