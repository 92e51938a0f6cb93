// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const pairScenario = `phase: "3"
search: {optimize: true}
map:
  hexes:
    - id: A1
      q: 0
      r: 0
      stations: [{number: 1, type: city, value: 30, slots: 1, tokens: [PRR]}]
      tracks: [[-1, 0]]
    - id: B1
      q: 1
      r: 0
      stations: [{number: 1, type: town, value: 20}]
      tracks: [[3, -1]]
  companies:
    - {name: PRR, trains: ["2"]}
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pair.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pairScenario), 0o600))

	return path
}

func TestRun_PrintsRuns(t *testing.T) {
	var stdout, stderr bytes.Buffer
	prom := filepath.Join(t.TempDir(), "revcalc.prom")
	code := run([]string{"-scenario", writeScenario(t), "-company", "PRR", "-metrics-out", prom}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "PRR (phase 3): 50\n2: A1.-1 -> B1.-1 = 50\n", stdout.String())
	assert.Contains(t, stderr.String(), "revenue calculated")

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "revenue_calculations_total")
}

func TestRun_BadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-scenario is required")

	assert.Equal(t, 2, run([]string{"-scenario", "x.yaml", "-log-level", "loud"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-scenario", writeScenario(t), "-company", "Erie"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-scenario", filepath.Join(t.TempDir(), "none.yaml")}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewLogHandler(&buf, slog.LevelInfo)).With("calc", "c1")
	log.Debug("hidden")
	log.WithGroup("search").Info("done", "value", 50)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO done calc=c1 search.value=50\n")
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}
