// SPDX-License-Identifier: MIT
// Package: lvrail/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later modifiers append).

package builder

// builderConfig aggregates all knobs used by the entry points.
type builderConfig struct {
	// mapModifiers rewrite the raw map graph after BuildMapGraph.
	mapModifiers []MapGraphModifier
	// routeModifiers rewrite each company route graph before discovery.
	routeModifiers []RouteGraphModifier
	// optimize runs OptimizeGraph on the route graph with the base tokens protected.
	optimize bool
	// protected vertices survive optimization next to the base tokens.
	protected []string
}

// newBuilderConfig constructs a config with defaults (no modifiers, no
// optimization) and applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
