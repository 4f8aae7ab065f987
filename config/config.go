// Package config loads and validates galois configuration from
// galois.toml and GALOIS_* environment variables via Viper.
package config

// Config represents the galois configuration.
type Config struct {
	Lattice LatticeConfig `mapstructure:"lattice"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// LatticeConfig bounds the lattice computation.
type LatticeConfig struct {
	// MaxAttributes caps the attribute universe accepted by the engine.
	// Lattice size is worst-case exponential in the number of attributes,
	// so the bound protects against adversarially large contexts.
	MaxAttributes int `mapstructure:"max_attributes"`
}

// OutputConfig configures how results are rendered.
type OutputConfig struct {
	Format  string `mapstructure:"format"`   // table, json, dot
	OmitTop bool   `mapstructure:"omit_top"` // drop the empty-extension top concept from diagrams
}

// LogConfig configures logging output.
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of console output
}

// Recognized output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatDOT   = "dot"
)
