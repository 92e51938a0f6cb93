// SPDX-License-Identifier: MIT

// Package modifier maps configured modifier names to constructors.
//
// A modifier is any value implementing one or more of
// builder.MapGraphModifier, builder.RouteGraphModifier,
// revenue.StaticModifier and revenue.DynamicModifier. Callers type-switch
// on the value returned by Build to decide where it plugs in.
//
// Builtins returns a registry holding:
//
//	blocked_hexes     map graph: removes every vertex of the listed hexes
//	home_bonus        static: adds a bonus on every start vertex
//	offmap_run_bonus  dynamic: pays a bonus per run between two sinks
package modifier

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownModifier indicates Build with an unregistered name.
	ErrUnknownModifier = errors.New("modifier: unknown modifier")

	// ErrDuplicateModifier indicates a second Register under one name.
	ErrDuplicateModifier = errors.New("modifier: duplicate modifier")

	// ErrBadParams wraps parameter decoding and validation failures.
	ErrBadParams = errors.New("modifier: bad parameters")
)

// Decoder fills v from the configured parameters, typically
// (*yaml.Node).Decode. A nil Decoder leaves v untouched.
type Decoder func(v any) error

// Factory builds a modifier from its parameters.
type Factory func(decode Decoder) (any, error)

// Registry is a concurrency-safe name to Factory table.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds f under name. Panics on an empty name or nil factory.
//
// Errors:
//   - ErrDuplicateModifier.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		panic("modifier: Register with empty name or nil factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.factories[name]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateModifier, name)
	}
	r.factories[name] = f

	return nil
}

// Build constructs the modifier registered under name.
//
// Errors:
//   - ErrUnknownModifier.
//   - ErrBadParams wrapping the factory error.
func (r *Registry) Build(name string, decode Decoder) (any, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModifier, name)
	}
	if decode == nil {
		decode = func(any) error { return nil }
	}
	m, err := f(decode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadParams, name, err)
	}

	return m, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for n := range r.factories {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Builtins returns a new registry holding the built-in modifiers.
func Builtins() *Registry {
	r := NewRegistry()
	_ = r.Register(NameBlockedHexes, newBlockedHexes)
	_ = r.Register(NameHomeBonus, newHomeBonus)
	_ = r.Register(NameOffmapRunBonus, newOffmapRunBonus)

	return r
}
