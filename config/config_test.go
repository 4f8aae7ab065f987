package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/galois/errors"
	"github.com/teranos/galois/lattice"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, lattice.DefaultMaxAttributes, cfg.Lattice.MaxAttributes)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.False(t, cfg.Output.OmitTop)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galois.toml")
	content := `
[lattice]
max_attributes = 128

[output]
format = "dot"
omit_top = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Lattice.MaxAttributes)
	assert.Equal(t, FormatDOT, cfg.Output.Format)
	assert.True(t, cfg.Output.OmitTop)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidateRejectsBadFormat(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("output.format", "svg")

	_, err := LoadWithViper(v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownFormat))
}

func TestValidateRejectsNonPositiveBound(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("lattice.max_attributes", 0)

	_, err := LoadWithViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_attributes")
}
