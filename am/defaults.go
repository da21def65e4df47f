package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Registry defaults
	v.SetDefault("registry.path", "mhc_allele_names.xml")

	// Assay defaults
	v.SetDefault("assay.path", "mhc_ligand_full.csv")
	v.SetDefault("assay.chunk_size", DefaultChunkSize)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}
