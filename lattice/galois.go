package lattice

// The Galois connection between entity subsets and attribute subsets.
//
// Up and Down are order-reversing maps whose compositions ClosureAttrs and
// ClosureEnts are closure operators: extensive, idempotent, and monotone.

// Up returns the entities possessing every attribute in attrs.
//
// Two deliberate conventions diverge from textbook FCA and must be
// preserved together (the enumerator's behavior depends on them):
//   - Up of the empty set is the empty set, not the full entity universe.
//   - Attributes absent from the inverted relation are silently skipped
//     rather than forcing an empty intersection or raising an error.
func (c *Context) Up(attrs Set) Set {
	if len(attrs) == 0 {
		return make(Set)
	}
	var sharing Set
	for attr := range attrs {
		holders, ok := c.inverted[attr]
		if !ok {
			continue
		}
		if sharing == nil {
			sharing = holders.Clone()
			continue
		}
		sharing = sharing.Intersect(holders)
	}
	if sharing == nil {
		// Every attribute was unknown; nothing to intersect.
		return make(Set)
	}
	return sharing
}

// Down returns the attributes shared by every entity in ents.
// Down of the empty set is the full attribute universe (standard
// convention). Entities absent from the relation are skipped.
func (c *Context) Down(ents Set) Set {
	if len(ents) == 0 {
		return c.attributes.Clone()
	}
	var shared Set
	for entity := range ents {
		row, ok := c.relation[entity]
		if !ok {
			continue
		}
		if shared == nil {
			shared = row.Clone()
			continue
		}
		shared = shared.Intersect(row)
	}
	if shared == nil {
		return make(Set)
	}
	return shared
}

// ClosureAttrs computes Down(Up(attrs)): the attributes shared by all
// entities that possess every attribute in attrs. Results are memoized on
// the canonical encoding of attrs; the enumerator and the cover builder
// revisit the same subsets many times.
func (c *Context) ClosureAttrs(attrs Set) Set {
	key := attrs.Key()
	if cached, ok := c.closures[key]; ok {
		return cached.Clone()
	}
	closed := c.Down(c.Up(attrs))
	c.closures[key] = closed
	return closed.Clone()
}

// ClosureEnts computes Up(Down(ents)): the entities possessing every
// attribute shared by all entities in ents.
func (c *Context) ClosureEnts(ents Set) Set {
	return c.Up(c.Down(ents))
}
