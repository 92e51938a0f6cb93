// SPDX-License-Identifier: MIT

package hexmap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// VertexID formats the identifier of a track point inside a hex.
func VertexID(hex string, point int) string {
	return hex + "." + strconv.Itoa(point)
}

// StationPoint returns the track point of station number n.
func StationPoint(n int) int { return -n }

// Opposite returns the side facing side s on the neighbouring hex.
func Opposite(side int) int { return (side + Sides/2) % Sides }

// IsSide reports whether a track point denotes a hex side.
func IsSide(point int) bool { return point >= 0 && point < Sides }

// ValueFor returns the station value in the given phase.
func (s *Station) ValueFor(phase string) int {
	if v, ok := s.PhaseValues[phase]; ok {
		return v
	}

	return s.Value
}

// FreeSlots returns the number of empty token slots.
func (s *Station) FreeSlots() int {
	if n := s.Slots - len(s.Tokens); n > 0 {
		return n
	}

	return 0
}

// HasToken reports whether company holds a token on the station.
func (s *Station) HasToken(company string) bool {
	for _, t := range s.Tokens {
		if t == company {
			return true
		}
	}

	return false
}

// Station returns the station with the given number.
func (h *Hex) Station(n int) (*Station, bool) {
	for i := range h.Stations {
		if h.Stations[i].Number == n {
			return &h.Stations[i], true
		}
	}

	return nil, false
}

// TrackSides returns the sorted set of sides that carry at least one track.
func (h *Hex) TrackSides() []int {
	seen := [Sides]bool{}
	for _, tr := range h.Tracks {
		for _, p := range tr {
			if IsSide(p) {
				seen[p] = true
			}
		}
	}
	out := make([]int, 0, Sides)
	for s, ok := range seen {
		if ok {
			out = append(out, s)
		}
	}

	return out
}

// Hex returns the hex with the given ID.
func (m *Map) Hex(id string) (*Hex, bool) {
	m.ensureIndex()
	h, ok := m.byID[id]

	return h, ok
}

// Neighbor returns the hex across side of h.
func (m *Map) Neighbor(h *Hex, side int) (*Hex, bool) {
	m.ensureIndex()
	d := NeighborOffsets[side]
	n, ok := m.byCoord[[2]int{h.Q + d[0], h.R + d[1]}]

	return n, ok
}

// Company returns the company with the given name.
func (m *Map) Company(name string) (*Company, bool) {
	for _, c := range m.Companies {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}

// BaseTokens returns the sorted vertex IDs of every station holding a
// token of company.
func (m *Map) BaseTokens(company string) []string {
	var out []string
	for _, h := range m.Hexes {
		for i := range h.Stations {
			if h.Stations[i].HasToken(company) {
				out = append(out, VertexID(h.ID, StationPoint(h.Stations[i].Number)))
			}
		}
	}
	sort.Strings(out)

	return out
}

// BonusTemplates returns map-level bonuses followed by hex-level bonuses
// with their locations resolved to vertex IDs.
func (m *Map) BonusTemplates() []BonusTemplate {
	out := make([]BonusTemplate, 0, len(m.Bonuses))
	out = append(out, m.Bonuses...)
	for _, h := range m.Hexes {
		for _, b := range h.Bonuses {
			locs := make([]string, len(b.Locations))
			for i, l := range b.Locations {
				if strings.Contains(l, ".") {
					locs[i] = l
				} else {
					locs[i] = h.ID + "." + l
				}
			}
			b.Locations = locs
			out = append(out, b)
		}
	}

	return out
}

// ensureIndex builds the lookup tables on first use.
func (m *Map) ensureIndex() {
	if m.byID != nil {
		return
	}
	m.byID = make(map[string]*Hex, len(m.Hexes))
	m.byCoord = make(map[[2]int]*Hex, len(m.Hexes))
	for _, h := range m.Hexes {
		m.byID[h.ID] = h
		m.byCoord[[2]int{h.Q, h.R}] = h
	}
}

// Validate checks the map structure and (re)builds the lookup tables.
//
// Errors (all wrapped in ErrInvalidMap):
//   - ErrDuplicateHex for repeated IDs or coordinates.
//   - ErrUnknownStationType, ErrBadTrack.
func (m *Map) Validate() error {
	m.byID, m.byCoord = nil, nil

	ids := make(map[string]bool, len(m.Hexes))
	coords := make(map[[2]int]string, len(m.Hexes))
	for _, h := range m.Hexes {
		if h == nil || h.ID == "" {
			return fmt.Errorf("%w: hex without id", ErrInvalidMap)
		}
		if strings.Contains(h.ID, ".") {
			return fmt.Errorf("%w: hex id %q contains '.'", ErrInvalidMap, h.ID)
		}
		if ids[h.ID] {
			return fmt.Errorf("%w: %w: id %s", ErrInvalidMap, ErrDuplicateHex, h.ID)
		}
		ids[h.ID] = true
		c := [2]int{h.Q, h.R}
		if other, taken := coords[c]; taken {
			return fmt.Errorf("%w: %w: %s and %s at (%d,%d)", ErrInvalidMap, ErrDuplicateHex, other, h.ID, h.Q, h.R)
		}
		coords[c] = h.ID
		if err := validateHex(h); err != nil {
			return fmt.Errorf("%w: hex %s: %w", ErrInvalidMap, h.ID, err)
		}
	}

	names := make(map[string]bool, len(m.Companies))
	for _, c := range m.Companies {
		if c == nil || c.Name == "" {
			return fmt.Errorf("%w: company without name", ErrInvalidMap)
		}
		if names[c.Name] {
			return fmt.Errorf("%w: duplicate company %s", ErrInvalidMap, c.Name)
		}
		names[c.Name] = true
	}
	m.ensureIndex()

	return nil
}

func validateHex(h *Hex) error {
	numbers := make(map[int]bool, len(h.Stations))
	for _, s := range h.Stations {
		if s.Number < 1 {
			return fmt.Errorf("station number %d must be >= 1", s.Number)
		}
		if numbers[s.Number] {
			return fmt.Errorf("duplicate station %d", s.Number)
		}
		numbers[s.Number] = true
		switch s.Type {
		case KindCity, KindTown, KindOffmap:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownStationType, s.Type)
		}
		if s.Slots < 0 {
			return fmt.Errorf("station %d: negative slots", s.Number)
		}
	}
	for _, tr := range h.Tracks {
		for _, p := range tr {
			if IsSide(p) {
				continue
			}
			if p < 0 && numbers[-p] {
				continue
			}

			return fmt.Errorf("%w: point %d", ErrBadTrack, p)
		}
	}

	return nil
}
