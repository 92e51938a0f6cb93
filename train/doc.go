// SPDX-License-Identifier: MIT

// Package train describes what a train may do on a run: how many major
// and minor stops it may count, how it scores them and whether it is
// limited by distance instead of stops.
//
// Compact grammar accepted by Parse:
//
//	"n"      n stops; towns count against the same budget.
//	"n+m"    n stops plus m stops reserved for towns.
//	"nE"     express: n cities, towns are passed without counting or scoring.
//	"E"      express with unlimited cities.
//	"D"      diesel: unlimited stops.
//	"Hn"     hex train: runs at most n hexes, stops unlimited.
//	"TGV"    4 cities at double value, towns ignored.
//	"...xK"  any of the above with every value multiplied by K ("4x2").
//
// Counting rule used by the calculator: a city decrements Majors, a
// counted town decrements Minors. Minors may go negative, borrowing from
// Majors; a run is complete when Majors+Minors reaches zero (Majors alone
// for express trains) and infeasible when either bound is crossed.
//
// Dominates implements the domination partial order used to discard
// trains that can never beat another one of the same kind.
package train
