package lattice

// Ganter's Next Closure algorithm.
//
// Closed attribute sets are enumerated in lectic (reverse-lexicographic)
// order over the fixed attribute order: A precedes B exactly when the
// smallest attribute in their symmetric difference belongs to B. The
// sequence is strictly increasing, duplicate-free, and bounded above by
// the closure of the full attribute universe, which guarantees
// termination.

// Enumerator lazily produces the closed attribute sets of a Context in
// lectic order. The zero seed is the empty set; the first set produced is
// its lectic successor.
type Enumerator struct {
	ctx     *Context
	current Set
	done    bool
}

// Enumerate returns a fresh Enumerator over the Context's closed sets.
func (c *Context) Enumerate() *Enumerator {
	return &Enumerator{ctx: c, current: make(Set)}
}

// Next returns the next closed attribute set, or false when the sequence
// is exhausted. The returned Set is owned by the caller.
func (e *Enumerator) Next() (Set, bool) {
	if e.done {
		return nil, false
	}
	next, ok := e.ctx.nextClosure(e.current)
	if !ok {
		e.done = true
		return nil, false
	}
	e.current = next
	if next.Equal(e.ctx.attributes) {
		// The full universe's closure is the top of the sequence.
		e.done = true
	}
	return next.Clone(), true
}

// nextClosure computes the lectic successor of the closed set last.
// It scans attributes from the largest to the smallest in the fixed order,
// discarding the tail of the working set above each scan position while
// searching for the branch point.
func (c *Context) nextClosure(last Set) (Set, bool) {
	working := last.Clone()
	for i := len(c.order) - 1; i >= 0; i-- {
		attr := c.order[i]
		if working.Has(attr) {
			working.Remove(attr)
			continue
		}

		probe := working.Clone()
		probe.Add(attr)
		candidate := c.ClosureAttrs(probe)

		// The candidate is the lectic successor only if closing did not
		// pull in an attribute smaller than the branch point; a smaller
		// addition means a lesser branch would be reached first.
		valid := true
		for added := range candidate {
			if !working.Has(added) && added < attr {
				valid = false
				break
			}
		}
		if valid {
			return candidate, true
		}
	}
	// Scan exhausted: last is the top closed set.
	return nil, false
}

// lecticLess reports whether a strictly precedes b in lectic order:
// the smallest attribute on which they differ belongs to b.
func (c *Context) lecticLess(a, b Set) bool {
	for _, attr := range c.order {
		inA, inB := a.Has(attr), b.Has(attr)
		if inA != inB {
			return inB
		}
	}
	return false
}
