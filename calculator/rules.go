// SPDX-License-Identifier: MIT

package calculator

// edgeRules is the part of the search that differs between variants.
type edgeRules interface {
	// usable reports whether train t may take edge e from a vertex it
	// reached free (or forced, when free is false).
	usable(c *Calculator, t, e int, free bool) bool
	travel(c *Calculator, t, e int)
	retreat(c *Calculator, t, e int)
	// arrivedFree reports whether a train reaching w over e may leave w
	// over any edge.
	arrivedFree(c *Calculator, e, w int) bool
}

// simpleRules: plain edge ownership plus the greedy rule.
type simpleRules struct{}

func (simpleRules) usable(c *Calculator, _, e int, free bool) bool {
	return !c.edgeUsed[e] && (free || c.eGreedy[e])
}

func (simpleRules) travel(c *Calculator, _, e int)  { c.edgeUsed[e] = true }
func (simpleRules) retreat(c *Calculator, _, e int) { c.edgeUsed[e] = false }

func (simpleRules) arrivedFree(c *Calculator, e, w int) bool {
	return c.eGreedy[e] || !c.vSide[w]
}

// multiRules: macro-edges exclude every other macro-edge of their travel
// sets, and a train crosses each pass point once.
type multiRules struct{}

func (multiRules) usable(c *Calculator, t, e int, _ bool) bool {
	if c.edgeUsed[e] {
		return false
	}
	for i := c.eTravelStart[e]; i < c.eTravelStart[e+1]; i++ {
		if c.travelUsed[c.eTravel[i]] > 0 {
			return false
		}
	}
	base := t * c.nPass
	for i := c.ePassStart[e]; i < c.ePassStart[e+1]; i++ {
		if c.passUsed[base+c.ePass[i]] > 0 {
			return false
		}
	}

	return true
}

func (multiRules) travel(c *Calculator, t, e int) {
	c.edgeUsed[e] = true
	for i := c.eTravelStart[e]; i < c.eTravelStart[e+1]; i++ {
		c.travelUsed[c.eTravel[i]]++
	}
	base := t * c.nPass
	for i := c.ePassStart[e]; i < c.ePassStart[e+1]; i++ {
		c.passUsed[base+c.ePass[i]]++
	}
}

func (multiRules) retreat(c *Calculator, t, e int) {
	c.edgeUsed[e] = false
	for i := c.eTravelStart[e]; i < c.eTravelStart[e+1]; i++ {
		c.travelUsed[c.eTravel[i]]--
	}
	base := t * c.nPass
	for i := c.ePassStart[e]; i < c.ePassStart[e+1]; i++ {
		c.passUsed[base+c.ePass[i]]--
	}
}

func (multiRules) arrivedFree(*Calculator, int, int) bool { return true }

// distanceRules: multiRules plus the hex budget of distance-limited trains.
type distanceRules struct{ multiRules }

func (r distanceRules) usable(c *Calculator, t, e int, free bool) bool {
	if c.tHex[t] && c.dist[t] < c.eDist[e] {
		return false
	}

	return r.multiRules.usable(c, t, e, free)
}

func (r distanceRules) travel(c *Calculator, t, e int) {
	r.multiRules.travel(c, t, e)
	if c.tHex[t] {
		c.dist[t] -= c.eDist[e]
	}
}

func (r distanceRules) retreat(c *Calculator, t, e int) {
	r.multiRules.retreat(c, t, e)
	if c.tHex[t] {
		c.dist[t] += c.eDist[e]
	}
}
