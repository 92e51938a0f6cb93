// SPDX-License-Identifier: MIT
// Package: lvrail/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilMap indicates a nil *hexmap.Map was passed to a builder.
var ErrNilMap = errors.New("builder: map is nil")

// ErrNilGraph indicates a nil *core.Graph was passed to a builder.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrUnknownCompany indicates a company name absent from the map.
var ErrUnknownCompany = errors.New("builder: unknown company")

// ErrModifierFailed wraps an error returned by a graph modifier.
var ErrModifierFailed = errors.New("builder: graph modifier failed")

// builderErrorf prefixes an error with the method context while keeping the
// wrapped sentinel visible to errors.Is.
// It returns an error of the form "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
