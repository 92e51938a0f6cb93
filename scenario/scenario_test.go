// SPDX-License-Identifier: MIT

package scenario_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrail/calculator"
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/modifier"
	"github.com/katalvlaran/lvrail/scenario"
)

// rowMap is four hexes in a row:
//
//	A1 city(30, PRR) - B1 town(20) - C1 city(40, B&O) - D1 town(10)
//
// Both cities have one slot, so each company sees the other city as a sink.
const rowMap = `
map:
  hexes:
    - id: A1
      q: 0
      r: 0
      stations:
        - {number: 1, type: city, value: 30, slots: 1, tokens: [PRR], phase_values: {"5": 60}}
      tracks: [[-1, 0]]
    - id: B1
      q: 1
      r: 0
      stations:
        - {number: 1, type: town, value: 20}
      tracks: [[3, -1], [-1, 0]]
    - id: C1
      q: 2
      r: 0
      stations:
        - {number: 1, type: city, value: 40, slots: 1, tokens: [B&O]}
      tracks: [[3, -1], [-1, 0]]
    - id: D1
      q: 3
      r: 0
      stations:
        - {number: 1, type: town, value: 10}
      tracks: [[3, -1]]
  companies:
    - {name: PRR, trains: ["2"]}
    - {name: B&O, trains: ["3"]}
    - {name: NYC, trains: []}
  bonuses:
    - {name: east-west, value: 25, locations: [A1.-1, C1.-1], phases: ["5"]}
`

func load(t *testing.T, head string, opts ...scenario.Option) *scenario.Scenario {
	t.Helper()
	s, err := scenario.Load(strings.NewReader(head+rowMap), opts...)
	require.NoError(t, err)

	return s
}

func calc(t *testing.T, s *scenario.Scenario, company string) *scenario.Result {
	t.Helper()
	r, err := s.Calculate(context.Background(), company)
	require.NoError(t, err)

	return r
}

func TestCalculate_Phases(t *testing.T) {
	s := load(t, "phase: \"3\"\nsearch: {optimize: true}\n")

	prr := calc(t, s, "PRR")
	assert.Equal(t, 50, prr.Value)
	assert.Equal(t, "3", prr.Phase)
	assert.NotEmpty(t, prr.CalcID)
	require.Len(t, prr.Runs, 1)
	assert.Equal(t, []string{"A1.-1", "B1.-1"}, prr.Runs[0].Stops)
	assert.Equal(t, []string{"A1.-1", "A1.0", "B1.3", "B1.-1"}, prr.Runs[0].Path)

	bo := calc(t, s, "B&O")
	assert.Equal(t, 90, bo.Value)
	assert.Equal(t, []string{"C1.-1", "B1.-1", "A1.-1"}, bo.Runs[0].Stops)

	s.SetPhase("5")
	assert.Equal(t, "5", s.Phase())
	assert.Equal(t, 80, calc(t, s, "PRR").Value)
	assert.Equal(t, 145, calc(t, s, "B&O").Value)
}

func TestCalculate_DetailedGraph(t *testing.T) {
	s := load(t, "phase: \"3\"\n")

	prr := calc(t, s, "PRR")
	assert.Equal(t, 50, prr.Value)
	assert.Equal(t, []string{"A1.-1", "A1.0", "B1.3", "B1.-1"}, prr.Runs[0].Stops)

	s = load(t, "phase: \"3\"\nsearch: {multigraph: true, prediction: false}\n")
	bo := calc(t, s, "B&O")
	assert.Equal(t, 90, bo.Value)
	assert.Equal(t, []string{"C1.-1", "C1.3", "B1.0", "B1.-1", "B1.3", "A1.0", "A1.-1"}, bo.Runs[0].Path)
}

func TestCalculate_OptimizeKeepsBonusLocations(t *testing.T) {
	junction := "    - {name: junction, value: 15, locations: [B1.0, C1.-1]}\n"
	s, err := scenario.Load(strings.NewReader("phase: \"3\"\nsearch: {optimize: true}\n" + rowMap + junction))
	require.NoError(t, err)

	bo := calc(t, s, "B&O")
	assert.Equal(t, 105, bo.Value)
	assert.Contains(t, bo.Runs[0].Path, "B1.0")
}

func TestCalculate_NoTrainsOrTokens(t *testing.T) {
	s := load(t, "phase: \"3\"\n")
	r := calc(t, s, "NYC")
	assert.Zero(t, r.Value)
	assert.Empty(t, r.Runs)
	assert.Empty(t, r.CalcID)

	_, err := s.Calculate(context.Background(), "Erie")
	assert.ErrorIs(t, err, scenario.ErrUnknownCompany)
}

func TestCalculate_Modifiers(t *testing.T) {
	head := `phase: "3"
modifiers:
  - name: home_bonus
    params: {value: 10}
  - name: blocked_hexes
    params: {hexes: [D1]}
`
	s := load(t, head)
	prr := calc(t, s, "PRR")
	assert.Equal(t, 60, prr.Value)
	assert.Contains(t, prr.Text, "home bonus +10 at A1.-1")

	bo := calc(t, s, "B&O")
	assert.Equal(t, 100, bo.Value)
	for _, id := range bo.Runs[0].Path {
		assert.NotContains(t, id, "D1")
	}
}

// countingModifier counts route graph builds.
type countingModifier struct{ calls int }

func (m *countingModifier) ModifyRouteGraph(*core.Graph, string) error {
	m.calls++

	return nil
}

func TestCalculate_CachesRouteGraphs(t *testing.T) {
	counter := &countingModifier{}
	reg := modifier.NewRegistry()
	require.NoError(t, reg.Register("count", func(modifier.Decoder) (any, error) { return counter, nil }))

	finals := 0
	listener := calculator.ListenerFunc(func(_ int, final bool) {
		if final {
			finals++
		}
	})
	s := load(t, "phase: \"3\"\nmodifiers: [{name: count}]\n", scenario.WithRegistry(reg), scenario.WithListener(listener))

	calc(t, s, "PRR")
	calc(t, s, "PRR")
	assert.Equal(t, 1, counter.calls)

	calc(t, s, "B&O")
	assert.Equal(t, 2, counter.calls)

	s.SetPhase("5")
	calc(t, s, "PRR")
	assert.Equal(t, 3, counter.calls)

	s.Invalidate()
	calc(t, s, "PRR")
	assert.Equal(t, 4, counter.calls)
	assert.Equal(t, 5, finals)

	all, err := s.CalculateAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"PRR", "B&O", "NYC"}, []string{all[0].Company, all[1].Company, all[2].Company})
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"no map":           "phase: \"3\"\n",
		"unknown field":    "bogus: 1\n" + rowMap,
		"unknown modifier": "modifiers: [{name: nope}]\n" + rowMap,
		"bad params":       "modifiers: [{name: home_bonus, params: {value: 0}}]\n" + rowMap,
		"no hook":          "modifiers: [{name: inert}]\n" + rowMap,
		"invalid map":      "map:\n  hexes: [{id: A1, q: 0, r: 0}, {id: A1, q: 1, r: 0}]\n",
	}
	reg := modifier.Builtins()
	require.NoError(t, reg.Register("inert", func(modifier.Decoder) (any, error) { return struct{}{}, nil }))
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.Load(strings.NewReader(doc), scenario.WithRegistry(reg))
			assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
		})
	}

	_, err := scenario.Load(strings.NewReader("modifiers: [{name: nope}]\n"+rowMap))
	assert.ErrorIs(t, err, modifier.ErrUnknownModifier)
	assert.Panics(t, func() { scenario.WithRegistry(nil) })
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "row.yaml")
	require.NoError(t, os.WriteFile(path, []byte("phase: \"3\"\n"+rowMap), 0o600))
	s, err := scenario.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Map().Hexes, 4)

	_, err = scenario.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
