// SPDX-License-Identifier: MIT

// Package builder provides validation helpers shared by the entry points.
package builder

import (
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/hexmap"
)

// validateMap rejects a nil map and runs structural validation.
func validateMap(method string, m *hexmap.Map) error {
	if m == nil {
		return builderErrorf(method, "%w", ErrNilMap)
	}
	if err := m.Validate(); err != nil {
		return builderErrorf(method, "%w", err)
	}

	return nil
}

// validateCompany ensures company is declared on m.
func validateCompany(method string, m *hexmap.Map, company string) error {
	if _, ok := m.Company(company); !ok {
		return builderErrorf(method, "%w: %q", ErrUnknownCompany, company)
	}

	return nil
}

// validateGraph rejects a nil graph.
func validateGraph(method string, g *core.Graph) error {
	if g == nil {
		return builderErrorf(method, "%w", ErrNilGraph)
	}

	return nil
}
