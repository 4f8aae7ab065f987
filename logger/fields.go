package logger

// Standard field names for consistent structured logging across galois.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Formal context shape
	FieldEntities   = "entities"
	FieldAttributes = "attributes"

	// Lattice results
	FieldConcepts = "concepts"
	FieldEdges    = "edges"

	// Reasoning
	FieldClauses = "clauses"
	FieldFacts   = "facts"
	FieldCycles  = "cycles"

	// Timing
	FieldDurationMS = "duration_ms"
)
