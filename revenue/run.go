// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: Search execution, dynamic modifier hooks and run conversion.

package revenue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvrail/calculator"
	"github.com/katalvlaran/lvrail/core"
	"github.com/katalvlaran/lvrail/metrics"
)

// Calculate searches the optimal runs and returns the total revenue,
// dynamic modifier contributions included.
//
// Errors:
//   - ErrNotInitialized.
//   - ctx.Err() when the search was cancelled.
func (a *Adapter) Calculate(ctx context.Context) (int, error) {
	if a.calc == nil {
		return 0, ErrNotInitialized
	}
	a.lastRuns = nil
	started := time.Now()
	value, err := a.calc.Calculate(ctx)
	elapsed := time.Since(started)
	if err != nil {
		a.log.Warn("revenue calculation aborted", "err", err, "elapsed", elapsed)

		return 0, err
	}

	st := a.calc.Stats()
	metrics.Observe(a.calc.Variant(), elapsed, st)
	a.log.Info("revenue calculated",
		"value", value, "elapsed", elapsed,
		"evaluations", st.Evaluations, "improvements", st.Improvements,
		"predictions", st.Predictions, "pruned", st.Pruned)

	return value, nil
}

// OptimalRun returns one TrainRun per train after Calculate, adjusted by
// the active dynamic modifiers.
//
// Errors:
//   - ErrNotInitialized.
func (a *Adapter) OptimalRun() ([]TrainRun, error) {
	if a.calc == nil {
		return nil, ErrNotInitialized
	}
	if a.lastRuns == nil {
		runs := a.convert(a.calc.BestRuns())
		for _, m := range a.active {
			m.AdjustOptimalRun(runs)
		}
		a.lastRuns = runs
	}

	return append([]TrainRun(nil), a.lastRuns...), nil
}

// Run returns the optimal run of train i.
//
// Errors:
//   - ErrNotInitialized, ErrTrainWindow.
func (a *Adapter) Run(i int) (TrainRun, error) {
	if i < 0 || i >= len(a.trains) {
		return TrainRun{}, fmt.Errorf("%w: %d of %d", ErrTrainWindow, i, len(a.trains))
	}
	runs, err := a.OptimalRun()
	if err != nil {
		return TrainRun{}, err
	}

	return runs[i], nil
}

// DynamicEvaluation sums the contribution of the active dynamic modifiers
// to the runs the calculator currently holds.
func (a *Adapter) DynamicEvaluation() int {
	if a.calc == nil || len(a.active) == 0 {
		return 0
	}
	runs := a.currentRuns()
	total := 0
	for _, m := range a.active {
		total += m.EvaluationValue(runs)
	}

	return total
}

// DynamicPrediction sums the bounds of the active dynamic modifiers for
// the runs the calculator currently holds.
func (a *Adapter) DynamicPrediction() int {
	if a.calc == nil || len(a.active) == 0 {
		return 0
	}
	runs := a.currentRuns()
	total := 0
	for _, m := range a.active {
		total += m.PredictionValue(runs)
	}

	return total
}

// PrettyPrint describes the static modifiers, the dynamic contributions
// and each run, one line each.
func (a *Adapter) PrettyPrint(runs []TrainRun) string {
	var b strings.Builder
	for _, n := range a.notes {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	for _, m := range a.active {
		if text := m.PrettyPrint(runs); text != "" {
			b.WriteString(text)
			b.WriteByte('\n')
		}
	}
	for _, r := range runs {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}

	return b.String()
}

func (a *Adapter) currentRuns() []TrainRun {
	runs := make([]calculator.Run, len(a.trains))
	for t := range runs {
		runs[t] = a.calc.CurrentRun(t)
	}

	return a.convert(runs)
}

// convert maps index runs onto search-graph vertices and edges.
func (a *Adapter) convert(in []calculator.Run) []TrainRun {
	out := make([]TrainRun, len(in))
	for i, r := range in {
		tr := TrainRun{Train: a.trains[r.Train], Index: r.Train, Value: r.Value}
		if !r.Empty() {
			tr.Stops = make([]string, len(r.Vertices))
			for j, v := range r.Vertices {
				tr.Stops[j] = a.ids[v]
			}
			tr.Edges = make([]*core.Edge, len(r.Edges))
			for j, e := range r.Edges {
				tr.Edges[j] = a.edges[e]
			}
			tr.Path = vertexPath(tr.Stops[0], tr.Edges)
		}
		out[i] = tr
	}

	return out
}

// vertexPath expands a walk over search edges into every vertex passed.
func vertexPath(start string, edges []*core.Edge) []string {
	path := []string{start}
	cur := start
	for _, e := range edges {
		seg := e.VertexPath()
		if seg[0] != cur {
			for i, j := 0, len(seg)-1; i < j; i, j = i+1, j-1 {
				seg[i], seg[j] = seg[j], seg[i]
			}
		}
		path = append(path, seg[1:]...)
		cur = seg[len(seg)-1]
	}

	return path
}

// dynamicHook exposes the adapter as a calculator.Evaluator.
type dynamicHook struct{ a *Adapter }

func (h *dynamicHook) Evaluate(*calculator.Calculator) int { return h.a.DynamicEvaluation() }
func (h *dynamicHook) Predict(*calculator.Calculator) int  { return h.a.DynamicPrediction() }
