package render

import (
	"fmt"
	"strings"

	"github.com/teranos/galois/lattice"
)

// BuildDOT renders the lattice as Graphviz DOT text, hierarchical
// top-to-bottom: parents (smaller intensions) above the children they
// cover. Feed the output to `dot` for a drawn Hasse diagram.
func (b *Builder) BuildDOT(concepts []lattice.Concept, edges []lattice.CoverEdge, title string) string {
	var sb strings.Builder

	sb.WriteString("digraph lattice {\n")
	if title != "" {
		fmt.Fprintf(&sb, "  label=%s;\n", dotQuote(title))
	}
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, style=rounded, fontsize=10];\n")

	omitted := make(map[int]bool)
	for _, concept := range concepts {
		if b.omitTop && len(concept.Extension) == 0 {
			omitted[concept.ID] = true
			continue
		}
		fmt.Fprintf(&sb, "  %s [label=%s];\n",
			nodeID(concept.ID), dotQuote(conceptLabel(concept)))
	}

	for _, edge := range edges {
		if omitted[edge.Parent] || omitted[edge.Child] {
			continue
		}
		fmt.Fprintf(&sb, "  %s -> %s;\n", nodeID(edge.Parent), nodeID(edge.Child))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// dotQuote escapes a label for a double-quoted DOT string.
func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
