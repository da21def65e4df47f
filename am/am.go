package am

// Config represents the core mhclab configuration
type Config struct {
	Registry RegistryConfig `mapstructure:"registry"`
	Assay    AssayConfig    `mapstructure:"assay"`
	Log      LogConfig      `mapstructure:"log"`
}

// RegistryConfig configures the MHC allele name registry source
type RegistryConfig struct {
	Path string `mapstructure:"path"` // Path to the allele names XML file
}

// AssayConfig configures assay data ingestion
type AssayConfig struct {
	Path      string `mapstructure:"path"`       // Path to the assay CSV file
	ChunkSize int    `mapstructure:"chunk_size"` // Rows per chunk (default: 50000)
}

// LogConfig configures logging output
type LogConfig struct {
	JSON      bool `mapstructure:"json"`      // JSON structured output instead of console
	Verbosity int  `mapstructure:"verbosity"` // Base verbosity (CLI -v flags add to this)
}

// DefaultChunkSize bounds memory while streaming multi-million-row assay files
const DefaultChunkSize = 50000
