// SPDX-License-Identifier: MIT

package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvrail/core"
)

type nopMod struct{ name string }

func (nopMod) ModifyMapGraph(*core.Graph) error           { return nil }
func (nopMod) ModifyRouteGraph(*core.Graph, string) error { return nil }

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Empty(t, cfg.mapModifiers)
	assert.Empty(t, cfg.routeModifiers)
	assert.False(t, cfg.optimize)
	assert.Empty(t, cfg.protected)
}

func TestNewBuilderConfig_AppendsInOrder(t *testing.T) {
	a, b, c := nopMod{"a"}, nopMod{"b"}, nopMod{"c"}
	cfg := newBuilderConfig(
		WithMapModifiers(a),
		WithMapModifiers(b, c),
		WithRouteModifiers(c),
		WithOptimize(),
		WithProtected("X1.-1"),
		WithProtected("Y2.0", "Z3.1"),
	)
	assert.Equal(t, []MapGraphModifier{a, b, c}, cfg.mapModifiers)
	assert.Equal(t, []RouteGraphModifier{c}, cfg.routeModifiers)
	assert.True(t, cfg.optimize)
	assert.Equal(t, []string{"X1.-1", "Y2.0", "Z3.1"}, cfg.protected)
	assert.Panics(t, func() { WithProtected("") })
}

func TestBuilderErrorf_WrapsMethod(t *testing.T) {
	err := builderErrorf(MethodBuildMapGraph, "%w", ErrNilMap)
	assert.ErrorIs(t, err, ErrNilMap)
	assert.Contains(t, err.Error(), MethodBuildMapGraph)
}
