package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhctools/mhclab/cmd/mhclab/commands"
	"github.com/mhctools/mhclab/logger"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "mhclab",
	Short: "mhclab - MHC allele catalog and assay normalization",
	Long: `mhclab - Immunological assay normalization against the IEDB allele registry.

mhclab loads the MHC allele name registry, resolves the inconsistent MHC
identifiers found in bulk assay exports to canonical allele records, and
answers multi-criteria queries over both the catalog and the normalized data.

Available commands:
  am        - Show the active configuration
  alleles   - Query the allele name catalog
  normalize - Normalize an assay export and optionally filter it

Examples:
  mhclab alleles HLA-A2                 # Resolve a name or alias
  mhclab alleles --class I --organism "Homo sapiens (human)"
  mhclab normalize --assay ligands.csv --format tsv
  mhclab normalize --qualitative --chain-any Beta-2-microglobulin`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		level := logger.VerbosityToLevel(verbosity)
		if err := logger.InitializeWithLevel(jsonOutput, level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase output verbosity (-v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "JSON log output instead of console")
	rootCmd.PersistentFlags().String("config", "", "Path to mhclab.toml (default: discovered)")

	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.AllelesCmd)
	rootCmd.AddCommand(commands.NormalizeCmd)
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
