// SPDX-License-Identifier: MIT

package hexmap

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Load decodes a YAML map from r and validates it.
func Load(r io.Reader) (*Map, error) {
	var m Map
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("hexmap: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadFile reads and validates the YAML map stored at path.
func LoadFile(path string) (*Map, error) {
	slog.Info("reading map file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hexmap: %w", err)
	}
	defer f.Close()

	return Load(f)
}
