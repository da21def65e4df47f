package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// AmCmd shows the active configuration
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Show the active configuration",
	Long: `Show the mhclab configuration after defaults, mhclab.toml and
MHCLAB_* environment variables have been merged.`,
	RunE: runAmCommand,
}

func runAmCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rows := pterm.TableData{
		{"Setting", "Value"},
		{"registry.path", cfg.Registry.Path},
		{"assay.path", cfg.Assay.Path},
		{"assay.chunk_size", strconv.Itoa(cfg.EffectiveChunkSize())},
		{"log.json", strconv.FormatBool(cfg.Log.JSON)},
		{"log.verbosity", strconv.Itoa(cfg.Log.Verbosity)},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
