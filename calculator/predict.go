// SPDX-License-Identifier: MIT
//
// File: predict.go
// Role: Upper bounds for branch-and-bound pruning.
//
// Every bound over-estimates: stop values are taken from the best vertices
// of the whole graph regardless of reachability, and every positive
// complex bonus not yet earned is assumed earned. Negative bonuses never
// raise a bound; a run may always avoid them.

package calculator

import "sort"

// preparePrediction builds the per-train prefix tables of stop values.
func (c *Calculator) preparePrediction() {
	c.sortAll = make([][]int, c.nT)
	c.sortMajor = make([][]int, c.nT)
	c.sortMinor = make([][]int, c.nT)
	c.freeValue = make([]int, c.nT)
	for t := 0; t < c.nT; t++ {
		var all, major, minor []int
		free := 0
		for v := 0; v < c.nV; v++ {
			val := c.vValue[t*c.nV+v]
			if val <= 0 {
				continue
			}
			switch {
			case c.vMajor[v]:
				major = append(major, val)
				all = append(all, val)
			case c.vMinor[v] && !c.tIgnore[t]:
				minor = append(minor, val)
				all = append(all, val)
			default:
				free += val
			}
		}
		c.sortAll[t], c.sortMajor[t], c.sortMinor[t] = prefixDesc(all), prefixDesc(major), prefixDesc(minor)
		c.freeValue[t] = free
	}
}

// prefixDesc sorts vals descending and returns prefix sums (p[0] = 0).
func prefixDesc(vals []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))
	p := make([]int, len(vals)+1)
	for i, v := range vals {
		p[i+1] = p[i] + v
	}

	return p
}

// take returns the sum of the k best values of a prefix table.
func take(prefix []int, k int) int {
	if k <= 0 {
		return 0
	}
	if k >= len(prefix) {
		return prefix[len(prefix)-1]
	}

	return prefix[k]
}

// estimate bounds what train t can still add with its remaining limits.
func (c *Calculator) estimate(t int) int {
	est := c.freeValue[t] + c.bonusPending[t]
	maj, min := c.majors[t], c.minors[t]
	switch {
	case c.tIgnore[t]:
		est += take(c.sortMajor[t], maj)
	case min < 0:
		est += take(c.sortAll[t], maj+min)
	default:
		est += take(c.sortAll[t], maj) + take(c.sortMinor[t], min)
	}

	return est
}

// staticMax bounds the value of train t on an empty run.
func (c *Calculator) staticMax(t int) int {
	est := c.freeValue[t]
	for b := 0; b < c.nB; b++ {
		if c.bAllowed[t*c.nB+b] {
			est += c.bonusGain(b)
		}
	}
	switch {
	case c.tIgnore[t]:
		est += take(c.sortMajor[t], c.tMajors[t])
	default:
		est += take(c.sortAll[t], c.tMajors[t]) + take(c.sortMinor[t], c.tMinors[t])
	}

	return est
}

// bonusGain is the share of bonus b the bounds may count on.
func (c *Calculator) bonusGain(b int) int { return max(0, c.bValue[b]) }

// setWindow activates positions first..last and recomputes the suffix
// bounds when the window changed.
func (c *Calculator) setWindow(first, last int) {
	if first == c.winFirst && last == c.winLast {
		return
	}
	c.winFirst, c.winLast = first, last
	acc := 0
	for p := last; p >= first; p-- {
		c.suffix[p] = acc
		t := c.order[p]
		if c.haveSolo {
			acc += c.soloMax[t]
		} else {
			acc += c.staticMax(t)
		}
	}
}

// bound is the best total reachable from the current state of the train
// at position p.
func (c *Calculator) bound(p int) int {
	c.stats.Predictions++
	total := 0
	for q := c.winFirst; q < p; q++ {
		total += c.curValue[c.order[q]]
	}
	t := c.order[p]
	total += c.curValue[t] + c.estimate(t) + c.suffix[p]
	if c.useEval {
		total += c.evaluator.Predict(c)
	}

	return total
}
