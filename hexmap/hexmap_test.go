// SPDX-License-Identifier: MIT

package hexmap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrail/hexmap"
)

const twoHexes = `
hexes:
  - id: A1
    q: 0
    r: 0
    stations:
      - {number: 1, type: city, value: 30, slots: 1, tokens: [PRR], phase_values: {"5": 50}}
    tracks:
      - [-1, 0]
    bonuses:
      - {name: port, value: 10, locations: ["-1"]}
  - id: B1
    q: 1
    r: 0
    stations:
      - {number: 1, type: town, value: 20}
    tracks:
      - [3, -1]
companies:
  - {name: PRR, trains: ["2", "3+1"]}
bonuses:
  - {name: east-west, value: 20, locations: [A1.-1, B1.-1], phases: ["3"]}
`

func TestLoad_TwoHexes(t *testing.T) {
	m, err := hexmap.Load(strings.NewReader(twoHexes))
	require.NoError(t, err)

	a, ok := m.Hex("A1")
	require.True(t, ok)
	b, ok := m.Neighbor(a, 0)
	require.True(t, ok)
	assert.Equal(t, "B1", b.ID)
	_, ok = m.Neighbor(a, 1)
	assert.False(t, ok)

	st, ok := a.Station(1)
	require.True(t, ok)
	assert.Equal(t, 30, st.ValueFor("3"))
	assert.Equal(t, 50, st.ValueFor("5"))
	assert.Equal(t, 0, st.FreeSlots())
	assert.Equal(t, []int{0}, a.TrackSides())

	assert.Equal(t, []string{"A1.-1"}, m.BaseTokens("PRR"))
	assert.Empty(t, m.BaseTokens("B&O"))

	c, ok := m.Company("PRR")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "3+1"}, c.Trains)

	bonuses := m.BonusTemplates()
	require.Len(t, bonuses, 2)
	assert.Equal(t, "east-west", bonuses[0].Name)
	assert.Equal(t, []string{"A1.-1"}, bonuses[1].Locations)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := hexmap.Load(strings.NewReader("hexes: []\nbogus: 1\n"))
	assert.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		m    *hexmap.Map
		want error
	}{
		{
			name: "duplicate id",
			m:    &hexmap.Map{Hexes: []*hexmap.Hex{{ID: "A"}, {ID: "A", Q: 1}}},
			want: hexmap.ErrDuplicateHex,
		},
		{
			name: "duplicate coordinates",
			m:    &hexmap.Map{Hexes: []*hexmap.Hex{{ID: "A"}, {ID: "B"}}},
			want: hexmap.ErrDuplicateHex,
		},
		{
			name: "bad station type",
			m: &hexmap.Map{Hexes: []*hexmap.Hex{{ID: "A", Stations: []hexmap.Station{
				{Number: 1, Type: "village"},
			}}}},
			want: hexmap.ErrUnknownStationType,
		},
		{
			name: "track to missing station",
			m:    &hexmap.Map{Hexes: []*hexmap.Hex{{ID: "A", Tracks: [][2]int{{0, -2}}}}},
			want: hexmap.ErrBadTrack,
		},
		{
			name: "side out of range",
			m:    &hexmap.Map{Hexes: []*hexmap.Hex{{ID: "A", Tracks: [][2]int{{0, 6}}}}},
			want: hexmap.ErrBadTrack,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			assert.ErrorIs(t, err, hexmap.ErrInvalidMap)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOppositeAndOffsets(t *testing.T) {
	for s := 0; s < hexmap.Sides; s++ {
		o := hexmap.Opposite(s)
		assert.Equal(t, s, hexmap.Opposite(o))
		d, e := hexmap.NeighborOffsets[s], hexmap.NeighborOffsets[o]
		assert.Equal(t, [2]int{0, 0}, [2]int{d[0] + e[0], d[1] + e[1]}, "side %d", s)
	}
	assert.Equal(t, "A1.-2", hexmap.VertexID("A1", hexmap.StationPoint(2)))
	assert.True(t, hexmap.IsSide(5))
	assert.False(t, hexmap.IsSide(-1))
}
