package lattice

import "sort"

// coverEdges derives the direct-cover relation over the concept list: an
// edge (parent, child) for every ordered pair whose intensions are in
// strict-subset relation with no third concept's intension strictly
// between them. The result is the transitive reduction of the
// strict-subset order — the Hasse diagram — and is acyclic by
// construction since every edge strictly grows the intension.
//
// The check is all-pairs, quadratic to cubic in the number of concepts,
// and runs once per completed lattice.
func coverEdges(concepts []Concept) ([]CoverEdge, map[int][]int, map[int][]int) {
	edges := []CoverEdge{}
	children := make(map[int][]int)
	parents := make(map[int][]int)

	for _, parent := range concepts {
		for _, child := range concepts {
			if parent.ID == child.ID {
				continue
			}
			if !parent.Intension.StrictSubsetOf(child.Intension) {
				continue
			}
			if hasIntermediate(concepts, parent.Intension, child.Intension) {
				continue
			}
			edges = append(edges, CoverEdge{Parent: parent.ID, Child: child.ID})
			children[parent.ID] = append(children[parent.ID], child.ID)
			parents[child.ID] = append(parents[child.ID], parent.ID)
		}
	}

	for id := range children {
		sort.Ints(children[id])
	}
	for id := range parents {
		sort.Ints(parents[id])
	}

	return edges, children, parents
}

// hasIntermediate reports whether some concept's intension lies strictly
// between lo and hi in the subset order, which makes (lo, hi) an indirect
// relation rather than a cover.
func hasIntermediate(concepts []Concept, lo, hi Set) bool {
	for _, other := range concepts {
		if lo.StrictSubsetOf(other.Intension) && other.Intension.StrictSubsetOf(hi) {
			return true
		}
	}
	return false
}
