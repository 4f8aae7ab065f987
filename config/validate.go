package config

import "github.com/teranos/galois/errors"

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Lattice.MaxAttributes <= 0 {
		return errors.Newf("lattice.max_attributes must be > 0, got %d", c.Lattice.MaxAttributes)
	}

	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatDOT:
	default:
		return errors.Wrapf(errors.ErrUnknownFormat,
			"output.format must be one of %s, %s, %s; got %q",
			FormatTable, FormatJSON, FormatDOT, c.Output.Format)
	}

	return nil
}
