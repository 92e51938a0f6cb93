// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: Branch-and-bound recursion: trains, start vertices, edges, bottom runs.
// Determinism: start vertices and edges are tried in index order.

package calculator

// ctxCheckMask sets how often the recursion polls the context.
const ctxCheckMask = 0x3f

// searchWindow solves the train positions first..last and returns the
// best total. Train states outside the window are left untouched.
func (c *Calculator) searchWindow(first, last int) int {
	c.best = 0
	for t := 0; t < c.nT; t++ {
		c.bestPosV[t], c.bestPosE[t], c.bestBotV[t], c.bestBotE[t], c.bestValues[t] = 0, 0, -1, 0, 0
	}
	c.setWindow(first, last)
	c.runTrain(first)

	return c.best
}

// runTrain searches every run of the train at position p, including not
// running it.
func (c *Calculator) runTrain(p int) {
	t := c.order[p]
	c.resetTrain(t)
	if c.predict && c.bound(p) <= c.best {
		c.stats.Pruned++

		return
	}

	base := t * c.nV
	tried := 0
	for _, s := range c.starts {
		if c.err != nil {
			break
		}
		if c.visited[base+s] == 0 {
			c.startV[t] = s
			if c.encounter(t, s) {
				c.explore(p, s, true)
				c.leave(t, s)
			}
		}
		// Every route through s was found from s. Visit-set members of s
		// stay open: routes through them need not contain s.
		c.visited[base+s]++
		tried++
	}
	for _, s := range c.starts[:tried] {
		c.visited[base+s]--
	}
	if c.err == nil {
		c.nextTrain(p)
	}
}

// resetTrain restores the counters of train t to an empty run.
func (c *Calculator) resetTrain(t int) {
	c.curValue[t], c.stops[t] = 0, 0
	c.majors[t], c.minors[t], c.dist[t] = c.tMajors[t], c.tMinors[t], c.tDistance[t]
	c.posV[t], c.posE[t] = 0, 0
	c.bottomV[t], c.bottomE[t] = -1, 0
	pending := 0
	for b := 0; b < c.nB; b++ {
		c.bonusLeft[t*c.nB+b] = c.bSize[b]
		if c.bAllowed[t*c.nB+b] {
			pending += c.bonusGain(b)
		}
	}
	c.bonusPending[t] = pending
}

// explore follows every usable edge out of v.
func (c *Calculator) explore(p, v int, free bool) {
	if c.cancelled() {
		return
	}
	t := c.order[p]
	base := t * c.nV
	for i := c.adjStart[v]; i < c.adjStart[v+1]; i++ {
		if c.err != nil {
			return
		}
		e, w := c.adjEdge[i], c.adjNext[i]
		if c.visited[base+w] > 0 || !c.rules.usable(c, t, e, free) {
			continue
		}
		c.rules.travel(c, t, e)
		c.stackE[t*c.nV+c.posE[t]] = e
		c.posE[t]++
		c.stats.EdgesTravelled++

		if c.encounter(t, w) {
			if !c.predict || c.bound(p) > c.best {
				if !c.vSink[w] {
					c.explore(p, w, c.rules.arrivedFree(c, e, w))
				}
				c.finalize(p, w)
			} else {
				c.stats.Pruned++
			}
			c.leave(t, w)
		}

		c.posE[t]--
		c.rules.retreat(c, t, e)
	}
}

// finalize treats v as the end of the current run of the train at p.
func (c *Calculator) finalize(p, v int) {
	if c.err != nil || !(c.vMajor[v] || c.vMinor[v]) {
		return
	}
	t := c.order[p]
	s := c.startV[t]
	// A sink start may only be left once.
	if c.bottomV[t] < 0 && c.posE[t] > 0 && (c.vMajor[s] || c.vMinor[s]) && !c.vSink[s] {
		c.bottomV[t], c.bottomE[t] = c.posV[t], c.posE[t]
		c.explore(p, s, true)
		c.bottomV[t], c.bottomE[t] = -1, 0
	}
	if c.stops[t] >= 2 {
		c.nextTrain(p)
	}
}

// nextTrain continues with the next position or evaluates.
func (c *Calculator) nextTrain(p int) {
	if c.err != nil {
		return
	}
	if p == c.winLast {
		c.evaluate()

		return
	}
	c.runTrain(p + 1)
}

// encounter adds vertex v to the run of train t. It reports false, and
// changes nothing, when counting v would exceed the train limits.
func (c *Calculator) encounter(t, v int) bool {
	maj, min := c.majors[t], c.minors[t]
	counted := true
	switch {
	case c.vMajor[v]:
		maj--
	case c.vMinor[v] && !c.tIgnore[t]:
		min--
	default:
		counted = false
	}
	if maj < 0 || (!c.tExpress[t] && maj+min < 0) {
		return false
	}
	c.majors[t], c.minors[t] = maj, min
	if counted {
		c.stops[t]++
	}
	c.curValue[t] += c.vValue[t*c.nV+v]
	c.mark(t, v, 1)

	kb := t * c.nB
	for i := c.vBonusStart[v]; i < c.vBonusStart[v+1]; i++ {
		b := c.vBonus[i]
		if !c.bAllowed[kb+b] {
			continue
		}
		c.bonusLeft[kb+b]--
		if c.bonusLeft[kb+b] == 0 {
			c.curValue[t] += c.bValue[b]
			c.bonusPending[t] -= c.bonusGain(b)
		}
	}

	c.stackV[t*(c.nV+1)+c.posV[t]] = v
	c.posV[t]++
	c.stats.VerticesVisited++

	return true
}

// leave undoes encounter(t, v).
func (c *Calculator) leave(t, v int) {
	c.posV[t]--

	kb := t * c.nB
	for i := c.vBonusStart[v]; i < c.vBonusStart[v+1]; i++ {
		b := c.vBonus[i]
		if !c.bAllowed[kb+b] {
			continue
		}
		if c.bonusLeft[kb+b] == 0 {
			c.curValue[t] -= c.bValue[b]
			c.bonusPending[t] += c.bonusGain(b)
		}
		c.bonusLeft[kb+b]++
	}

	c.mark(t, v, -1)
	c.curValue[t] -= c.vValue[t*c.nV+v]
	switch {
	case c.vMajor[v]:
		c.majors[t]++
		c.stops[t]--
	case c.vMinor[v] && !c.tIgnore[t]:
		c.minors[t]++
		c.stops[t]--
	}
}

// mark adds delta to the visit marks of v and of its visit-set members.
func (c *Calculator) mark(t, v, delta int) {
	base := t * c.nV
	c.visited[base+v] += delta
	for i := c.visitStart[v]; i < c.visitStart[v+1]; i++ {
		c.visited[base+c.visitMember[i]] += delta
	}
}

// evaluate scores the complete candidate and records a new best.
func (c *Calculator) evaluate() {
	c.stats.Evaluations++
	total := 0
	for p := c.winFirst; p <= c.winLast; p++ {
		total += c.curValue[c.order[p]]
	}
	if c.useEval {
		total += c.evaluator.Evaluate(c)
	}
	if total <= c.best {
		return
	}
	c.best = total
	c.stats.Improvements++
	for p := c.winFirst; p <= c.winLast; p++ {
		t := c.order[p]
		bv, be := t*(c.nV+1), t*c.nV
		copy(c.bestV[bv:bv+c.posV[t]], c.stackV[bv:bv+c.posV[t]])
		copy(c.bestE[be:be+c.posE[t]], c.stackE[be:be+c.posE[t]])
		c.bestPosV[t], c.bestPosE[t] = c.posV[t], c.posE[t]
		c.bestBotV[t], c.bestBotE[t] = c.bottomV[t], c.bottomE[t]
		c.bestValues[t] = c.curValue[t]
	}
	if c.notify && c.listener != nil {
		c.listener.Notify(total, false)
	}
}

// cancelled polls the context every ctxCheckMask+1 calls.
func (c *Calculator) cancelled() bool {
	if c.err != nil {
		return true
	}
	c.tick++
	if c.tick&ctxCheckMask == 0 {
		c.err = c.ctx.Err()
	}

	return c.err != nil
}
