package commands

import (
	"github.com/spf13/cobra"

	"github.com/mhctools/mhclab/am"
	"github.com/mhctools/mhclab/errors"
	"github.com/mhctools/mhclab/mhc"
)

// loadConfig resolves the active configuration, honoring --config.
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := am.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := am.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openCatalog loads the allele catalog from the configured registry path,
// unless --registry overrides it.
func openCatalog(cmd *cobra.Command, cfg *am.Config) (*mhc.Catalog, error) {
	path := cfg.Registry.Path
	if override, _ := cmd.Flags().GetString("registry"); override != "" {
		path = override
	}

	catalog, err := mhc.LoadCatalog(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load allele catalog")
	}
	return catalog, nil
}

// strFlag returns a pointer to a string flag's value, or nil when unset.
func strFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
