// SPDX-License-Identifier: MIT

package revenue

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvrail/hexmap"
	"github.com/katalvlaran/lvrail/train"
)

// RevenueBonus is value earned by a run that visits all of Vertices.
// Empty Trains, TrainTypes or Phases lists do not restrict the bonus.
type RevenueBonus struct {
	Name       string
	Value      int
	Vertices   []string
	Trains     []string
	TrainTypes []string
	Phases     []string
}

// BonusesFromTemplates converts map bonus templates.
func BonusesFromTemplates(ts []hexmap.BonusTemplate) []RevenueBonus {
	out := make([]RevenueBonus, 0, len(ts))
	for _, t := range ts {
		out = append(out, RevenueBonus{
			Name:       t.Name,
			Value:      t.Value,
			Vertices:   append([]string(nil), t.Locations...),
			Trains:     append([]string(nil), t.Trains...),
			TrainTypes: append([]string(nil), t.TrainTypes...),
			Phases:     append([]string(nil), t.Phases...),
		})
	}

	return out
}

// IsSimple reports whether the bonus needs a single vertex.
func (b RevenueBonus) IsSimple() bool { return len(b.Vertices) == 1 }

// ActiveIn reports whether the bonus applies in phase.
func (b RevenueBonus) ActiveIn(phase string) bool {
	return len(b.Phases) == 0 || contains(b.Phases, phase)
}

// AppliesTo reports whether tr may earn the bonus.
func (b RevenueBonus) AppliesTo(tr train.Train) bool {
	if len(b.Trains) > 0 && !contains(b.Trains, tr.Name) && !contains(b.Trains, tr.String()) {
		return false
	}
	if len(b.TrainTypes) > 0 && !contains(b.TrainTypes, tr.Type()) {
		return false
	}

	return true
}

// String renders "name +value [v1 v2]".
func (b RevenueBonus) String() string {
	return fmt.Sprintf("%s +%d [%s]", b.Name, b.Value, strings.Join(b.Vertices, " "))
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if strings.EqualFold(x, s) {
			return true
		}
	}

	return false
}
