package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/galois/lattice"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("lattice.max_attributes", lattice.DefaultMaxAttributes)

	v.SetDefault("output.format", FormatTable)
	v.SetDefault("output.omit_top", false)

	v.SetDefault("log.json", false)
}
