package am

import "github.com/mhctools/mhclab/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Registry.Path == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "registry.path cannot be empty")
	}

	// Chunk size: 0 = use default, negative = invalid
	if c.Assay.ChunkSize < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "assay.chunk_size must be >= 0, got %d", c.Assay.ChunkSize)
	}

	if c.Log.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}

// EffectiveChunkSize returns the configured chunk size, or DefaultChunkSize
// when unset.
func (c *Config) EffectiveChunkSize() int {
	if c.Assay.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.Assay.ChunkSize
}
