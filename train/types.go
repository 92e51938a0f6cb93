// SPDX-License-Identifier: MIT

package train

import "errors"

// ErrBadTrainSpec indicates a train string outside the grammar.
var ErrBadTrainSpec = errors.New("train: bad train spec")

// Unlimited is the stop count of trains without a stop limit.
const Unlimited = 99

// Train is the optimizer view of one train.
type Train struct {
	// Name is the display name; Parse keeps the input string.
	Name string

	// Majors is the number of counted stops.
	Majors int

	// Minors is the number of extra stops reserved for towns.
	Minors int

	// MultiplyMajors and MultiplyMinors scale city and town values.
	MultiplyMajors int
	MultiplyMinors int

	// IgnoreMinors makes towns neither count nor score.
	IgnoreMinors bool

	// IsETrain marks express trains, complete on Majors alone.
	IsETrain bool

	// IsHTrain marks distance-limited trains; Distance holds the limit.
	IsHTrain bool
	Distance int
}
