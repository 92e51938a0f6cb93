// SPDX-License-Identifier: MIT

// Package hexmap describes the game map consumed by the graph builder:
// hexes on an axial coordinate grid, the stations and track segments laid
// on them, the companies operating trains and their base tokens, and the
// revenue bonus templates.
//
// Coordinates and sides:
//
//	Hexes use axial coordinates (Q, R). Side s of a hex faces the neighbour
//	at offset NeighborOffsets[s]; the matching side on that neighbour is
//	Opposite(s) = (s+3) % 6.
//
// Track points:
//
//	0..5   hex sides
//	-k     station number k of the hex
//
// A track is a pair of track points inside one hex. Vertex identifiers are
// "<hex>.<point>", built by VertexID.
//
// Maps are usually loaded from YAML with Load or LoadFile; maps built in
// code must be checked with Validate before use.
package hexmap
