package render

import (
	"time"
)

// Graph is the complete renderer-facing structure for a concept lattice.
// It is built from the concept list and cover edges alone; layout engines
// and drawing frontends consume it without access to the underlying
// formal context.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node represents one concept in the lattice.
type Node struct {
	ID        string   `json:"id"`              // "c<concept id>"
	Concept   int      `json:"concept"`         // Concept id in discovery order
	Label     string   `json:"label"`           // Display label: intension over extension
	Level     int      `json:"level"`           // Intension size, for layered layouts
	Intension []string `json:"intension"`       // Sorted attribute identifiers
	Extension []string `json:"extension"`       // Sorted entity identifiers
	Visible   bool     `json:"visible"`         // Backend controls visibility
	Group     int      `json:"group,omitempty"` // For coloring/clustering by level
}

// Link represents a direct-cover edge between two concepts.
type Link struct {
	Source string  `json:"source"` // Node ID of the parent concept
	Target string  `json:"target"` // Node ID of the child concept
	Type   string  `json:"type"`   // Always "covers"
	Weight float64 `json:"value"`  // Link strength (D3 uses "value")
}

// Meta contains metadata about the generated graph.
type Meta struct {
	GraphID     string            `json:"graph_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Stats       Stats             `json:"stats"`
	Config      map[string]string `json:"config"`
}

// Stats provides graph statistics.
type Stats struct {
	TotalNodes int `json:"total_nodes,omitempty"`
	TotalEdges int `json:"total_edges,omitempty"`
}

// LinkTypeCovers is the single relationship type a Hasse diagram carries.
const LinkTypeCovers = "covers"
