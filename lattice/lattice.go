package lattice

import (
	"github.com/teranos/galois/logger"
)

// Concept is a formal concept: a maximal extension/intension pair
// satisfying the Galois fixed-point invariant Extension == Up(Intension)
// and Intension == Down(Extension). Concepts are uniquely identified by
// their intension and carry a sequential id in lectic discovery order.
type Concept struct {
	ID        int
	Extension Set
	Intension Set
}

// CoverEdge is a direct-cover edge of the Hasse diagram: the parent's
// intension is a strict subset of the child's with no concept strictly
// between them.
type CoverEdge struct {
	Parent int
	Child  int
}

// Lattice is the computed concept lattice: the ordered concept list and
// the direct-cover relation over concept ids. It is derived once from a
// Context and never mutated afterwards.
type Lattice struct {
	Concepts []Concept
	Edges    []CoverEdge

	children map[int][]int
	parents  map[int][]int
}

// Build drives the enumerator to exhaustion and derives the cover graph.
//
// Each discovered intension is paired with its extension via Up and
// assigned the next sequential id. An empty attribute universe is a valid
// degenerate input: it yields the trivial one-concept lattice whose
// extension is the whole entity universe and whose intension is empty.
func Build(c *Context) *Lattice {
	log := logger.Named("lattice")

	var concepts []Concept
	if len(c.order) == 0 {
		concepts = []Concept{{
			ID:        0,
			Extension: c.entities.Clone(),
			Intension: make(Set),
		}}
	} else {
		enum := c.Enumerate()
		for {
			intension, ok := enum.Next()
			if !ok {
				break
			}
			concepts = append(concepts, Concept{
				ID:        len(concepts),
				Extension: c.Up(intension),
				Intension: intension,
			})
		}
	}

	edges, children, parents := coverEdges(concepts)

	log.Debugw("Built concept lattice",
		logger.FieldEntities, len(c.entities),
		logger.FieldAttributes, len(c.attributes),
		logger.FieldConcepts, len(concepts),
		logger.FieldEdges, len(edges),
	)

	return &Lattice{
		Concepts: concepts,
		Edges:    edges,
		children: children,
		parents:  parents,
	}
}

// Children returns the ids of the concepts directly covered by id
// (strictly larger intensions with nothing in between).
func (l *Lattice) Children(id int) []int {
	out := make([]int, len(l.children[id]))
	copy(out, l.children[id])
	return out
}

// Parents returns the ids of the concepts that directly cover id.
func (l *Lattice) Parents(id int) []int {
	out := make([]int, len(l.parents[id]))
	copy(out, l.parents[id])
	return out
}
