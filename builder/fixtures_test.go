// SPDX-License-Identifier: MIT

package builder_test

import (
	"github.com/katalvlaran/lvrail/hexmap"
)

// lineMap is a row of four hexes:
//
//	A1 city(30, PRR) - B1 town(20) - C1 city(40, full: B&O) - D1 town(10)
//
// Every hex links its station to the sides facing its row neighbours.
func lineMap() *hexmap.Map {
	return &hexmap.Map{
		Hexes: []*hexmap.Hex{
			{ID: "A1", Q: 0, R: 0,
				Stations: []hexmap.Station{{Number: 1, Type: hexmap.KindCity, Value: 30, Slots: 1, Tokens: []string{"PRR"},
					PhaseValues: map[string]int{"5": 60}}},
				Tracks: [][2]int{{-1, 0}}},
			{ID: "B1", Q: 1, R: 0,
				Stations: []hexmap.Station{{Number: 1, Type: hexmap.KindTown, Value: 20}},
				Tracks:   [][2]int{{3, -1}, {-1, 0}}},
			{ID: "C1", Q: 2, R: 0,
				Stations: []hexmap.Station{{Number: 1, Type: hexmap.KindCity, Value: 40, Slots: 1, Tokens: []string{"B&O"}}},
				Tracks:   [][2]int{{3, -1}, {-1, 0}}},
			{ID: "D1", Q: 3, R: 0,
				Stations: []hexmap.Station{{Number: 1, Type: hexmap.KindTown, Value: 10}},
				Tracks:   [][2]int{{3, -1}}},
		},
		Companies: []*hexmap.Company{
			{Name: "PRR", Trains: []string{"2"}},
			{Name: "B&O", Trains: []string{"3"}},
		},
	}
}
