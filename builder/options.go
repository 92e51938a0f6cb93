// SPDX-License-Identifier: MIT
// Package: lvrail/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Algorithms themselves do not panic.

package builder

// BuilderOption customizes the behavior of an entry point by mutating a
// builderConfig before the build begins.
type BuilderOption func(*builderConfig)

// WithMapModifiers appends map-graph modifiers, applied in order after the
// raw map graph is built. Panics on a nil modifier.
func WithMapModifiers(mods ...MapGraphModifier) BuilderOption {
	for _, m := range mods {
		if m == nil {
			panic("builder: WithMapModifiers(nil)")
		}
	}

	return func(c *builderConfig) {
		c.mapModifiers = append(c.mapModifiers, mods...)
	}
}

// WithRouteModifiers appends route-graph modifiers, applied in order to
// the company clone before reachability discovery. Panics on a nil modifier.
func WithRouteModifiers(mods ...RouteGraphModifier) BuilderOption {
	for _, m := range mods {
		if m == nil {
			panic("builder: WithRouteModifiers(nil)")
		}
	}

	return func(c *builderConfig) {
		c.routeModifiers = append(c.routeModifiers, mods...)
	}
}

// WithOptimize makes BuildRouteGraph run OptimizeGraph on its result,
// protecting the company base tokens (and HQ when kept) plus the IDs of
// WithProtected.
func WithOptimize() BuilderOption {
	return func(c *builderConfig) { c.optimize = true }
}

// WithProtected keeps the given vertices through WithOptimize, typically
// the locations of bonuses. IDs absent from a route graph are ignored.
// Panics on an empty ID.
func WithProtected(ids ...string) BuilderOption {
	for _, id := range ids {
		if id == "" {
			panic("builder: WithProtected(\"\")")
		}
	}

	return func(c *builderConfig) {
		c.protected = append(c.protected, ids...)
	}
}
