// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by graph builders.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the entry point name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMapGraph is the canonical name for BuildMapGraph.
	MethodBuildMapGraph = "BuildMapGraph"
	// MethodBuildRouteGraph is the canonical name for BuildRouteGraph.
	MethodBuildRouteGraph = "BuildRouteGraph"
	// MethodInitVertexForCompany is the canonical name for InitVertexForCompany.
	MethodInitVertexForCompany = "InitVertexForCompany"
)

//-----------------------------------------------------------------------------
// Vertex ID conventions
//-----------------------------------------------------------------------------

const (
	// HQPrefix prefixes the synthetic company home vertex: "HQ.<company>".
	HQPrefix = "HQ."
	// DeadEndSuffix marks a synthesized vertex for a connection leaving the map.
	DeadEndSuffix = ".dead"
)

//-----------------------------------------------------------------------------
// Edge distances
//-----------------------------------------------------------------------------

const (
	// InHexDistance is the distance of a track segment inside one hex.
	InHexDistance = 0
	// CrossHexDistance is the distance of a connection between two hexes.
	CrossHexDistance = 1
)
