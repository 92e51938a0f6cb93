// SPDX-License-Identifier: MIT

package calculator

import (
	"errors"

	"github.com/katalvlaran/lvrail/train"
)

// ErrInvalidArgument reports a Problem that violates a precondition.
var ErrInvalidArgument = errors.New("calculator: invalid argument")

// Variant selects the edge rules of the search.
type Variant int

const (
	// VariantSimple searches a detailed graph under the greedy rule.
	VariantSimple Variant = iota
	// VariantMulti searches a macro-edge multigraph with travel sets.
	VariantMulti
	// VariantMultiDistance adds distance budgets for hex trains.
	VariantMultiDistance
)

// String returns the metric label of the variant.
func (v Variant) String() string {
	switch v {
	case VariantSimple:
		return "simple"
	case VariantMulti:
		return "multi"
	case VariantMultiDistance:
		return "multi_distance"
	}

	return "unknown"
}

// VertexSpec describes one vertex.
type VertexSpec struct {
	Major bool
	Minor bool
	// Side marks hex-side vertices, where the greedy rule applies.
	Side bool
	Sink bool
	// Values holds the value per train index.
	Values []int
}

// EdgeSpec describes one undirected edge.
type EdgeSpec struct {
	From, To int
	Greedy   bool
	Distance int
	// TravelSets lists the travel sets the edge belongs to.
	TravelSets []int
	// Passes lists the pass points the edge crosses: vertices hidden inside
	// macro-edges. A train crosses each pass point at most once.
	Passes []int
}

// BonusSpec is a complex bonus: Value is earned by a train whose run
// visits every vertex in Vertices.
type BonusSpec struct {
	Value    int
	Vertices []int
	// Trains restricts the bonus to these train indices; nil means all.
	Trains []int
}

// Problem is the complete dense input of a search.
type Problem struct {
	Vertices []VertexSpec
	Edges    []EdgeSpec
	Trains   []train.Train
	Starts   []int
	// VisitSets groups vertices that stand for the same stop.
	VisitSets [][]int
	Bonuses   []BonusSpec
}

// Dimensions are the maxima the flat arrays were sized from.
type Dimensions struct {
	Vertices, Edges, Trains int
	MaxNeighbors            int
	MaxVisitSet             int
	MaxTravelSet            int
	TravelSets              int
	PassPoints              int
	ComplexBonuses          int
}

// Run is the route of one train: vertices and edges in travel order.
type Run struct {
	Train    int
	Vertices []int
	Edges    []int
	Value    int
}

// Empty reports whether the train does not run.
func (r Run) Empty() bool { return len(r.Vertices) == 0 }

// Stats counts search work of the last Calculate call.
type Stats struct {
	Evaluations     int64
	Improvements    int64
	Predictions     int64
	Pruned          int64
	EdgesTravelled  int64
	VerticesVisited int64
}

// Listener is notified with every new best total (final=false) and once
// with the result when the search completes (final=true).
type Listener interface {
	Notify(value int, final bool)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(value int, final bool)

// Notify calls f.
func (f ListenerFunc) Notify(value int, final bool) { f(value, final) }

// Evaluator contributes value that depends on the runs as a whole.
// Evaluate is added to each complete candidate; Predict must be an upper
// bound of any Evaluate result reachable from the current state. Both may
// read the partial runs through Calculator.CurrentRun.
type Evaluator interface {
	Evaluate(c *Calculator) int
	Predict(c *Calculator) int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPrediction enables or disables bound pruning (enabled by default).
func WithPrediction(enabled bool) Option {
	return func(c *Calculator) { c.predict = enabled }
}

// WithListener installs the progress listener. Panics on nil.
func WithListener(l Listener) Option {
	if l == nil {
		panic("calculator: WithListener(nil)")
	}

	return func(c *Calculator) { c.listener = l }
}

// WithEvaluator installs the dynamic evaluator. Panics on nil.
func WithEvaluator(e Evaluator) Option {
	if e == nil {
		panic("calculator: WithEvaluator(nil)")
	}

	return func(c *Calculator) { c.evaluator = e }
}
