// Package render turns a computed concept lattice into renderer-facing
// structures: a JSON graph document for D3-style frontends and Graphviz
// DOT text for static diagrams.
//
// The package consumes exactly the concept list and cover edges; it never
// touches the formal context or closure state.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/galois/lattice"
	"github.com/teranos/galois/logger"
)

// Builder assembles Graph documents from concept lattices.
type Builder struct {
	log     *zap.SugaredLogger
	omitTop bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithOmitTop drops the degenerate top concept (the one whose extension
// is empty) from the rendered graph, together with its incident edges.
// Diagrams of sparse contexts read better without it.
func WithOmitTop() Option {
	return func(b *Builder) {
		b.omitTop = true
	}
}

// NewBuilder creates a lattice graph builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		log: logger.Named("render"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildGraph converts a concept list and its cover edges into the
// renderer-facing Graph document. Node ids are "c<id>"; levels follow
// intension size so layered layouts stack sub-concepts below their
// super-concepts.
func (b *Builder) BuildGraph(concepts []lattice.Concept, edges []lattice.CoverEdge, description string) *Graph {
	graph := &Graph{
		Nodes: []Node{},
		Links: []Link{},
		Meta: Meta{
			GraphID:     uuid.NewString(),
			GeneratedAt: time.Now(),
			Config: map[string]string{
				"description": description,
			},
		},
	}

	omitted := make(map[int]bool)
	for _, concept := range concepts {
		if b.omitTop && len(concept.Extension) == 0 {
			omitted[concept.ID] = true
			continue
		}
		graph.Nodes = append(graph.Nodes, Node{
			ID:        nodeID(concept.ID),
			Concept:   concept.ID,
			Label:     conceptLabel(concept),
			Level:     len(concept.Intension),
			Intension: concept.Intension.Sorted(),
			Extension: concept.Extension.Sorted(),
			Visible:   true,
			Group:     len(concept.Intension),
		})
	}

	for _, edge := range edges {
		if omitted[edge.Parent] || omitted[edge.Child] {
			continue
		}
		graph.Links = append(graph.Links, Link{
			Source: nodeID(edge.Parent),
			Target: nodeID(edge.Child),
			Type:   LinkTypeCovers,
			Weight: 1,
		})
	}

	graph.Meta.Stats = Stats{
		TotalNodes: len(graph.Nodes),
		TotalEdges: len(graph.Links),
	}

	b.log.Debugw("Built lattice graph",
		logger.FieldConcepts, len(graph.Nodes),
		logger.FieldEdges, len(graph.Links),
	)

	return graph
}

// nodeID renders a stable node identifier from a concept id.
func nodeID(id int) string {
	return fmt.Sprintf("c%d", id)
}

// conceptLabel renders the two-line display label: the intension over the
// extension, both sorted.
func conceptLabel(c lattice.Concept) string {
	return strings.Join(c.Intension.Sorted(), ", ") + "\n" + strings.Join(c.Extension.Sorted(), ", ")
}
