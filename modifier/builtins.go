// SPDX-License-Identifier: MIT

package modifier

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/revenue"
)

// Built-in modifier names.
const (
	NameBlockedHexes   = "blocked_hexes"
	NameHomeBonus      = "home_bonus"
	NameOffmapRunBonus = "offmap_run_bonus"
)

// BlockedHexes removes every vertex of the listed hexes from the map graph.
type BlockedHexes struct {
	Hexes []string `yaml:"hexes"`
}

func newBlockedHexes(decode Decoder) (any, error) {
	m := &BlockedHexes{}
	if err := decode(m); err != nil {
		return nil, err
	}
	if len(m.Hexes) == 0 {
		return nil, errors.New("no hexes listed")
	}

	return m, nil
}

// ModifyMapGraph implements builder.MapGraphModifier.
func (m *BlockedHexes) ModifyMapGraph(g *core.Graph) error {
	blocked := make(map[string]bool, len(m.Hexes))
	for _, h := range m.Hexes {
		blocked[h] = true
	}
	removed := 0
	for _, v := range g.Vertices() {
		if v.Hex != "" && blocked[v.Hex] {
			if err := g.RemoveVertex(v.ID); err != nil {
				return err
			}
			removed++
		}
	}
	slog.Debug("hexes blocked", "hexes", m.Hexes, "vertices", removed)

	return nil
}

// HomeBonus adds a simple bonus of Value on every start vertex.
type HomeBonus struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`

	applied []string
}

func newHomeBonus(decode Decoder) (any, error) {
	m := &HomeBonus{Name: "home"}
	if err := decode(m); err != nil {
		return nil, err
	}
	if m.Value <= 0 {
		return nil, fmt.Errorf("value %d must be positive", m.Value)
	}

	return m, nil
}

// ModifyCalculator implements revenue.StaticModifier.
func (m *HomeBonus) ModifyCalculator(a *revenue.Adapter) bool {
	m.applied = a.Starts()
	for _, s := range m.applied {
		a.AddBonus(revenue.RevenueBonus{Name: m.Name, Value: m.Value, Vertices: []string{s}})
	}

	return len(m.applied) > 0
}

// PrettyPrint implements revenue.StaticModifier.
func (m *HomeBonus) PrettyPrint(*revenue.Adapter) string {
	return fmt.Sprintf("%s bonus +%d at %s", m.Name, m.Value, strings.Join(m.applied, ", "))
}

// OffmapRunBonus pays Value for every run whose two ends are sinks.
type OffmapRunBonus struct {
	Value int `yaml:"value"`

	sinks map[string]bool
	paid  int
}

func newOffmapRunBonus(decode Decoder) (any, error) {
	m := &OffmapRunBonus{}
	if err := decode(m); err != nil {
		return nil, err
	}
	if m.Value <= 0 {
		return nil, fmt.Errorf("value %d must be positive", m.Value)
	}

	return m, nil
}

// Prepare implements revenue.DynamicModifier: the bonus takes part when
// the route graph holds at least two sink stations.
func (m *OffmapRunBonus) Prepare(a *revenue.Adapter) bool {
	m.sinks = make(map[string]bool)
	for _, v := range a.Graph().Vertices() {
		if v.Sink && v.IsStation() {
			m.sinks[v.ID] = true
		}
	}

	return len(m.sinks) >= 2
}

func (m *OffmapRunBonus) qualifies(r revenue.TrainRun) bool {
	return len(r.Stops) >= 2 && m.sinks[r.First()] && m.sinks[r.Last()]
}

// EvaluationValue implements revenue.DynamicModifier.
func (m *OffmapRunBonus) EvaluationValue(runs []revenue.TrainRun) int {
	total := 0
	for _, r := range runs {
		if m.qualifies(r) {
			total += m.Value
		}
	}

	return total
}

// PredictionValue implements revenue.DynamicModifier.
func (m *OffmapRunBonus) PredictionValue(runs []revenue.TrainRun) int {
	return m.Value * len(runs)
}

// AdjustOptimalRun implements revenue.DynamicModifier by adding the bonus
// to the value of each qualifying run.
func (m *OffmapRunBonus) AdjustOptimalRun(runs []revenue.TrainRun) {
	m.paid = 0
	for i := range runs {
		if m.qualifies(runs[i]) {
			runs[i].Value += m.Value
			m.paid++
		}
	}
}

// PrettyPrint implements revenue.DynamicModifier.
func (m *OffmapRunBonus) PrettyPrint(runs []revenue.TrainRun) string {
	if m.paid == 0 {
		return ""
	}
	ends := make([]string, 0, m.paid)
	for _, r := range runs {
		if m.qualifies(r) {
			ends = append(ends, r.First()+"/"+r.Last())
		}
	}
	sort.Strings(ends)

	return fmt.Sprintf("offmap run bonus +%d x %d (%s)", m.Value, m.paid, strings.Join(ends, ", "))
}
