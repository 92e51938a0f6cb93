// SPDX-License-Identifier: MIT

package hexmap

import "errors"

// Sentinel errors for map validation.
var (
	// ErrInvalidMap wraps every structural problem found by Validate.
	ErrInvalidMap = errors.New("hexmap: invalid map")

	// ErrDuplicateHex indicates two hexes share an ID or coordinates.
	ErrDuplicateHex = errors.New("hexmap: duplicate hex")

	// ErrBadTrack indicates a track endpoint is neither a side nor a known station.
	ErrBadTrack = errors.New("hexmap: bad track")

	// ErrUnknownStationType indicates a station type outside city/town/offmap.
	ErrUnknownStationType = errors.New("hexmap: unknown station type")

	// ErrUnknownHex indicates a lookup of a hex ID not present on the map.
	ErrUnknownHex = errors.New("hexmap: unknown hex")
)

// Sides is the number of sides of a hex.
const Sides = 6

// NeighborOffsets holds the axial (dq, dr) offset of the neighbour across
// each side, indexed by side number.
var NeighborOffsets = [Sides][2]int{{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1}}

// StationKind is the map-level class of a station.
type StationKind string

const (
	// KindCity scores as a major stop and may hold tokens.
	KindCity StationKind = "city"
	// KindTown scores as a minor stop.
	KindTown StationKind = "town"
	// KindOffmap scores as a major stop and is always a sink.
	KindOffmap StationKind = "offmap"
)

// Station is a revenue location inside a hex.
type Station struct {
	Number      int            `yaml:"number"`
	Type        StationKind    `yaml:"type"`
	Value       int            `yaml:"value"`
	PhaseValues map[string]int `yaml:"phase_values,omitempty"`
	Slots       int            `yaml:"slots,omitempty"`
	Tokens      []string       `yaml:"tokens,omitempty"`
	StopName    string         `yaml:"stop_name,omitempty"`
}

// Hex is one map tile with its stations and track segments.
type Hex struct {
	ID       string          `yaml:"id"`
	Q        int             `yaml:"q"`
	R        int             `yaml:"r"`
	Stations []Station       `yaml:"stations,omitempty"`
	Tracks   [][2]int        `yaml:"tracks,omitempty"`
	Bonuses  []BonusTemplate `yaml:"bonuses,omitempty"`
}

// Company operates trains from its base tokens.
type Company struct {
	Name   string   `yaml:"name"`
	Trains []string `yaml:"trains"`
}

// BonusTemplate is a revenue bonus before it is bound to a graph.
//
// Locations are vertex IDs. Inside a Hex, a bare track point ("-1")
// refers to that hex.
type BonusTemplate struct {
	Name       string   `yaml:"name"`
	Value      int      `yaml:"value"`
	Locations  []string `yaml:"locations"`
	Trains     []string `yaml:"trains,omitempty"`
	TrainTypes []string `yaml:"train_types,omitempty"`
	Phases     []string `yaml:"phases,omitempty"`
}

// Map is the complete game map.
type Map struct {
	Hexes     []*Hex          `yaml:"hexes"`
	Companies []*Company      `yaml:"companies"`
	Bonuses   []BonusTemplate `yaml:"bonuses,omitempty"`

	byID    map[string]*Hex
	byCoord map[[2]int]*Hex
}
