// SPDX-License-Identifier: MIT
//
// File: calculator.go
// Role: Calculator layout (flat arrays), construction and public accessors.

package calculator

import (
	"context"
	"fmt"
	"sort"
)

// Calculator holds one Problem in flat arrays plus the search state.
type Calculator struct {
	variant Variant
	rules   edgeRules
	dims    Dimensions

	nV, nE, nT, nB int

	// vertices
	vMajor, vMinor, vSide, vSink []bool
	vValue                       []int // [t*nV+v]
	adjStart, adjEdge, adjNext   []int // CSR: vertex -> (edge, neighbour)
	visitStart, visitMember      []int // CSR: vertex -> co-members
	vBonusStart, vBonus          []int // CSR: vertex -> complex bonuses

	// edges
	eGreedy               []bool
	eDist                 []int
	eTravelStart, eTravel []int // CSR: edge -> travel sets
	nTravel               int
	ePassStart, ePass     []int // CSR: edge -> pass points
	nPass                 int

	// trains
	tMajors, tMinors, tDistance []int
	tIgnore, tExpress, tHex     []bool

	// complex bonuses
	bValue, bSize []int
	bAllowed      []bool // [t*nB+b]

	starts []int

	// search state
	edgeUsed     []bool
	travelUsed   []int
	passUsed     []int // [t*nPass+k]
	visited      []int // [t*nV+v], counts marks
	curValue     []int
	majors       []int
	minors       []int
	dist         []int
	stops        []int
	bonusLeft    []int // [t*nB+b]
	bonusPending []int
	stackV       []int // [t*(nV+1)+i]
	stackE       []int // [t*nV+i]
	posV, posE   []int
	startV       []int
	bottomV      []int // vertex stack index where the bottom run starts; -1 when none
	bottomE      []int

	// best run
	best       int
	bestV      []int
	bestE      []int
	bestPosV   []int
	bestPosE   []int
	bestBotV   []int
	bestBotE   []int
	bestValues []int

	// prediction
	predict   bool
	order     []int // search position -> train index
	winFirst  int
	winLast   int
	suffix    []int // by position: solo maxima of later positions in the window
	soloMax   []int
	haveSolo  bool
	sortAll   [][]int // per train: prefix sums of majors+counted minors, descending
	sortMajor [][]int
	sortMinor [][]int
	freeValue []int

	// hooks
	listener  Listener
	evaluator Evaluator
	notify    bool
	useEval   bool

	ctx   context.Context
	err   error
	tick  uint
	stats Stats
}

// New validates p and builds a Calculator of the given variant.
//
// Errors:
//   - ErrInvalidArgument: no trains, index out of range, self-loop edge,
//     negative distance, value table of the wrong length, a vertex in two
//     visit sets, an empty bonus, a negative travel set or pass point.
func New(variant Variant, p Problem, opts ...Option) (*Calculator, error) {
	c := &Calculator{variant: variant, predict: true}
	switch variant {
	case VariantSimple:
		c.rules = simpleRules{}
	case VariantMulti:
		c.rules = multiRules{}
	case VariantMultiDistance:
		c.rules = distanceRules{}
	default:
		return nil, fmt.Errorf("%w: variant %d", ErrInvalidArgument, int(variant))
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.layout(p); err != nil {
		return nil, err
	}
	c.preparePrediction()

	return c, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// layout validates p and fills every flat array.
func (c *Calculator) layout(p Problem) error {
	c.nV, c.nE, c.nT, c.nB = len(p.Vertices), len(p.Edges), len(p.Trains), len(p.Bonuses)
	nV, nE, nT, nB := c.nV, c.nE, c.nT, c.nB
	if nT == 0 {
		return invalid("no trains")
	}
	inV := func(v int) bool { return v >= 0 && v < nV }

	c.vMajor, c.vMinor = make([]bool, nV), make([]bool, nV)
	c.vSide, c.vSink = make([]bool, nV), make([]bool, nV)
	c.vValue = make([]int, nT*nV)
	for v, vs := range p.Vertices {
		if len(vs.Values) != nT {
			return invalid("vertex %d has %d values for %d trains", v, len(vs.Values), nT)
		}
		c.vMajor[v], c.vMinor[v], c.vSide[v], c.vSink[v] = vs.Major, vs.Minor && !vs.Major, vs.Side, vs.Sink
		for t, val := range vs.Values {
			c.vValue[t*nV+v] = val
		}
	}

	// Edges and CSR adjacency in edge order.
	c.eGreedy, c.eDist = make([]bool, nE), make([]int, nE)
	degree := make([]int, nV)
	travelCount := 0
	for e, es := range p.Edges {
		if !inV(es.From) || !inV(es.To) {
			return invalid("edge %d endpoint out of range", e)
		}
		if es.From == es.To {
			return invalid("edge %d is a self-loop", e)
		}
		if es.Distance < 0 {
			return invalid("edge %d has negative distance", e)
		}
		c.eGreedy[e], c.eDist[e] = es.Greedy, es.Distance
		degree[es.From]++
		degree[es.To]++
		for _, ts := range es.TravelSets {
			if ts < 0 {
				return invalid("edge %d has negative travel set", e)
			}
			if ts+1 > c.nTravel {
				c.nTravel = ts + 1
			}
		}
		travelCount += len(es.TravelSets)
		for _, k := range es.Passes {
			if k < 0 {
				return invalid("edge %d has negative pass point", e)
			}
			if k+1 > c.nPass {
				c.nPass = k + 1
			}
		}
	}
	c.adjStart = make([]int, nV+1)
	for v := 0; v < nV; v++ {
		c.adjStart[v+1] = c.adjStart[v] + degree[v]
		if degree[v] > c.dims.MaxNeighbors {
			c.dims.MaxNeighbors = degree[v]
		}
	}
	c.adjEdge, c.adjNext = make([]int, 2*nE), make([]int, 2*nE)
	fill := append([]int(nil), c.adjStart[:nV]...)
	for e, es := range p.Edges {
		c.adjEdge[fill[es.From]], c.adjNext[fill[es.From]] = e, es.To
		fill[es.From]++
		c.adjEdge[fill[es.To]], c.adjNext[fill[es.To]] = e, es.From
		fill[es.To]++
	}
	c.eTravelStart, c.eTravel = make([]int, nE+1), make([]int, 0, travelCount)
	setSize := make([]int, c.nTravel)
	for e, es := range p.Edges {
		c.eTravel = append(c.eTravel, es.TravelSets...)
		c.eTravelStart[e+1] = len(c.eTravel)
		for _, ts := range es.TravelSets {
			setSize[ts]++
		}
	}
	for _, n := range setSize {
		if n > c.dims.MaxTravelSet {
			c.dims.MaxTravelSet = n
		}
	}
	c.ePassStart = make([]int, nE+1)
	for e, es := range p.Edges {
		c.ePass = append(c.ePass, es.Passes...)
		c.ePassStart[e+1] = len(c.ePass)
	}

	// Visit sets: vertex -> the other members of its set.
	owner := make([]int, nV)
	for i := range owner {
		owner[i] = -1
	}
	for i, set := range p.VisitSets {
		for _, v := range set {
			if !inV(v) {
				return invalid("visit set %d member out of range", i)
			}
			if owner[v] >= 0 {
				return invalid("vertex %d in visit sets %d and %d", v, owner[v], i)
			}
			owner[v] = i
		}
		if len(set) > c.dims.MaxVisitSet {
			c.dims.MaxVisitSet = len(set)
		}
	}
	c.visitStart = make([]int, nV+1)
	for v := 0; v < nV; v++ {
		if owner[v] >= 0 {
			for _, m := range p.VisitSets[owner[v]] {
				if m != v {
					c.visitMember = append(c.visitMember, m)
				}
			}
		}
		c.visitStart[v+1] = len(c.visitMember)
	}

	// Trains.
	c.tMajors, c.tMinors, c.tDistance = make([]int, nT), make([]int, nT), make([]int, nT)
	c.tIgnore, c.tExpress, c.tHex = make([]bool, nT), make([]bool, nT), make([]bool, nT)
	for t, tr := range p.Trains {
		if tr.Majors < 0 || tr.Minors < 0 || tr.Distance < 0 {
			return invalid("train %d has negative limits", t)
		}
		c.tMajors[t], c.tMinors[t], c.tDistance[t] = tr.Majors, tr.Minors, tr.Distance
		c.tIgnore[t], c.tExpress[t], c.tHex[t] = tr.IgnoreMinors || tr.IsETrain, tr.IsETrain, tr.IsHTrain
	}

	// Complex bonuses.
	c.bValue, c.bSize = make([]int, nB), make([]int, nB)
	c.bAllowed = make([]bool, nT*nB)
	perVertex := make([][]int, nV)
	for b, bs := range p.Bonuses {
		if len(bs.Vertices) == 0 {
			return invalid("bonus %d has no vertices", b)
		}
		c.bValue[b], c.bSize[b] = bs.Value, len(bs.Vertices)
		for _, v := range bs.Vertices {
			if !inV(v) {
				return invalid("bonus %d vertex out of range", b)
			}
			perVertex[v] = append(perVertex[v], b)
		}
		if bs.Trains == nil {
			for t := 0; t < nT; t++ {
				c.bAllowed[t*nB+b] = true
			}
		}
		for _, t := range bs.Trains {
			if t < 0 || t >= nT {
				return invalid("bonus %d train out of range", b)
			}
			c.bAllowed[t*nB+b] = true
		}
	}
	c.vBonusStart = make([]int, nV+1)
	for v := 0; v < nV; v++ {
		c.vBonus = append(c.vBonus, perVertex[v]...)
		c.vBonusStart[v+1] = len(c.vBonus)
	}

	for _, s := range p.Starts {
		if !inV(s) {
			return invalid("start vertex %d out of range", s)
		}
	}
	c.starts = append([]int(nil), p.Starts...)

	c.dims.Vertices, c.dims.Edges, c.dims.Trains = nV, nE, nT
	c.dims.TravelSets, c.dims.ComplexBonuses = c.nTravel, nB
	c.dims.PassPoints = c.nPass

	c.allocState()

	return nil
}

// allocState sizes every search array once.
func (c *Calculator) allocState() {
	nV, nT := c.nV, c.nT
	c.edgeUsed = make([]bool, c.nE)
	c.travelUsed = make([]int, c.nTravel)
	c.passUsed = make([]int, nT*c.nPass)
	c.visited = make([]int, nT*nV)
	c.curValue, c.majors, c.minors = make([]int, nT), make([]int, nT), make([]int, nT)
	c.dist, c.stops = make([]int, nT), make([]int, nT)
	c.bonusLeft, c.bonusPending = make([]int, nT*c.nB), make([]int, nT)
	c.stackV, c.stackE = make([]int, nT*(nV+1)), make([]int, nT*nV)
	c.posV, c.posE = make([]int, nT), make([]int, nT)
	c.startV, c.bottomV, c.bottomE = make([]int, nT), make([]int, nT), make([]int, nT)
	c.bestV, c.bestE = make([]int, nT*(nV+1)), make([]int, nT*nV)
	c.bestPosV, c.bestPosE = make([]int, nT), make([]int, nT)
	c.bestBotV, c.bestBotE = make([]int, nT), make([]int, nT)
	c.bestValues = make([]int, nT)
	c.order = make([]int, nT)
	c.suffix = make([]int, nT)
	c.soloMax = make([]int, nT)
	for t := range c.order {
		c.order[t] = t
		c.bottomV[t], c.bestBotV[t] = -1, -1
	}
}

// Calculate runs the search and returns the best total.
//
// The context is checked periodically at the top of the per-vertex
// recursion; on cancellation the partial best is discarded and ctx.Err()
// is returned.
func (c *Calculator) Calculate(ctx context.Context) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c.ctx, c.err, c.tick, c.stats = ctx, nil, 0, Stats{}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	// A cancelled search may leave marks behind.
	clear(c.edgeUsed)
	clear(c.travelUsed)
	clear(c.passUsed)
	clear(c.visited)
	for t := range c.order {
		c.order[t] = t
	}
	c.haveSolo = false
	c.winFirst, c.winLast = -1, -1

	if c.predict && c.nT > 1 {
		c.notify, c.useEval = false, false
		for t := 0; t < c.nT; t++ {
			c.soloMax[t] = c.searchWindow(t, t)
			if c.err != nil {
				return 0, c.err
			}
		}
		c.haveSolo = true
		sort.SliceStable(c.order, func(i, j int) bool { return c.soloMax[c.order[i]] > c.soloMax[c.order[j]] })
	}

	c.notify, c.useEval = true, c.evaluator != nil
	value := c.searchWindow(0, c.nT-1)
	if c.err != nil {
		return 0, c.err
	}
	if c.listener != nil {
		c.listener.Notify(value, true)
	}

	return value, nil
}

// Variant returns the edge-rule variant.
func (c *Calculator) Variant() Variant { return c.variant }

// Dimensions returns the maxima the arrays were sized from.
func (c *Calculator) Dimensions() Dimensions { return c.dims }

// Stats returns the counters of the last Calculate call.
func (c *Calculator) Stats() Stats { return c.stats }

// BestValue returns the best total of the last Calculate call.
func (c *Calculator) BestValue() int { return c.best }

// BestRun returns the best route of train t. Bottom runs are joined in
// front of the start vertex, so the route reads end to end.
func (c *Calculator) BestRun(t int) Run {
	if t < 0 || t >= c.nT {
		return Run{Train: t}
	}
	r := runOf(c.bestV[t*(c.nV+1):t*(c.nV+1)+c.bestPosV[t]], c.bestE[t*c.nV:t*c.nV+c.bestPosE[t]], c.bestBotV[t], c.bestBotE[t])
	r.Train, r.Value = t, c.bestValues[t]

	return r
}

// BestRuns returns BestRun for every train in index order.
func (c *Calculator) BestRuns() []Run {
	out := make([]Run, c.nT)
	for t := range out {
		out[t] = c.BestRun(t)
	}

	return out
}

// CurrentRun returns the live route of train t during a search, in the
// same orientation as BestRun. Intended for Evaluator implementations.
func (c *Calculator) CurrentRun(t int) Run {
	if t < 0 || t >= c.nT {
		return Run{Train: t}
	}
	r := runOf(c.stackV[t*(c.nV+1):t*(c.nV+1)+c.posV[t]], c.stackE[t*c.nV:t*c.nV+c.posE[t]], c.bottomV[t], c.bottomE[t])
	r.Train, r.Value = t, c.curValue[t]

	return r
}

// Trains returns the number of trains.
func (c *Calculator) Trains() int { return c.nT }

// IsSink reports whether vertex v is a sink.
func (c *Calculator) IsSink(v int) bool { return v >= 0 && v < c.nV && c.vSink[v] }

// runOf joins a stack into a route. A bottom part (vertices from bv,
// edges from be) is reversed in front of the forward part.
func runOf(vs, es []int, bv, be int) Run {
	if len(vs) == 0 {
		return Run{}
	}
	r := Run{Vertices: make([]int, 0, len(vs)), Edges: make([]int, 0, len(es))}
	if bv < 0 || bv > len(vs) {
		r.Vertices = append(r.Vertices, vs...)
		r.Edges = append(r.Edges, es...)

		return r
	}
	for i := len(vs) - 1; i >= bv; i-- {
		r.Vertices = append(r.Vertices, vs[i])
	}
	r.Vertices = append(r.Vertices, vs[:bv]...)
	for i := len(es) - 1; i >= be; i-- {
		r.Edges = append(r.Edges, es[i])
	}
	r.Edges = append(r.Edges, es[:be]...)

	return r
}
