package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhctools/mhclab/assay"
	"github.com/mhctools/mhclab/errors"
	"github.com/mhctools/mhclab/logger"
	"github.com/mhctools/mhclab/mhc"
)

var (
	normalizeFormat string
	normalizeOut    string
)

// NormalizeCmd runs the assay normalization pipeline
var NormalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize an assay export and optionally filter it",
	Long: `Normalize a bulk assay export against the allele catalog.

The assay file is streamed in bounded chunks; each row's MHC identifier is
resolved to its canonical allele record and enriched with the derived class
and species. Filter flags are applied to the normalized table before output.

Examples:
  mhclab normalize --assay ligands.csv
  mhclab normalize --name HLA-A*02:01 --qualitative
  mhclab normalize --chain-any Beta-2-microglobulin --format json --out result.json`,
	RunE: runNormalizeCommand,
}

func init() {
	NormalizeCmd.Flags().String("registry", "", "Registry XML path (overrides config)")
	NormalizeCmd.Flags().String("assay", "", "Assay CSV path (overrides config)")
	NormalizeCmd.Flags().Int("chunk-size", 0, "Rows per chunk (overrides config)")

	NormalizeCmd.Flags().String("name", "", "MHC name constraint")
	NormalizeCmd.Flags().String("class", "", "MHC class constraint")
	NormalizeCmd.Flags().String("chain1", "", "Chain 1 name constraint")
	NormalizeCmd.Flags().String("chain2", "", "Chain 2 name constraint")
	NormalizeCmd.Flags().String("chain-any", "", "Either-chain name constraint")
	NormalizeCmd.Flags().String("organism", "", "Organism name constraint")
	NormalizeCmd.Flags().Bool("qualitative", false, "Keep only rows with qualitative data")
	NormalizeCmd.Flags().Bool("quantitative", false, "Keep only rows with quantitative data")

	NormalizeCmd.Flags().StringVarP(&normalizeFormat, "format", "f", "tsv", "Output format (tsv/json)")
	NormalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "Output file (default: stdout)")
}

func runNormalizeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	catalog, err := openCatalog(cmd, cfg)
	if err != nil {
		return err
	}
	logger.Infow("allele catalog loaded",
		logger.FieldPath, cfg.Registry.Path,
		logger.FieldCount, catalog.Len())

	assayPath := cfg.Assay.Path
	if override, _ := cmd.Flags().GetString("assay"); override != "" {
		assayPath = override
	}
	chunkSize := cfg.EffectiveChunkSize()
	if override, _ := cmd.Flags().GetInt("chunk-size"); override > 0 {
		chunkSize = override
	}

	source, err := assay.OpenChunkReader(assayPath, chunkSize)
	if err != nil {
		return errors.Wrap(err, "failed to open assay data")
	}
	defer source.Close()

	var emitter assay.ProgressEmitter
	if logger.JSONOutput {
		emitter = assay.NewJSONEmitter(os.Stderr)
	} else {
		emitter = assay.NewCLIEmitter(verbosityOf(cmd))
	}

	normalizer := assay.NewNormalizerWithOptions(catalog, assay.NormalizerOptions{
		Emitter: emitter,
	})
	table, err := normalizer.Normalize(context.Background(), source)
	if err != nil {
		return errors.Wrap(err, "normalization failed")
	}

	filter := &assay.Filter{
		Query: mhc.Query{
			Name:     strFlag(cmd, "name"),
			Class:    strFlag(cmd, "class"),
			Chain1:   strFlag(cmd, "chain1"),
			Chain2:   strFlag(cmd, "chain2"),
			ChainAny: strFlag(cmd, "chain-any"),
			Organism: strFlag(cmd, "organism"),
		},
	}
	filter.QualitativePresent, _ = cmd.Flags().GetBool("qualitative")
	filter.QuantitativePresent, _ = cmd.Flags().GetBool("quantitative")

	result := filter.Apply(table, catalog)
	logger.Infow("table filtered",
		logger.FieldTotalCount, table.Len(),
		logger.FieldCount, result.Len())

	out := os.Stdout
	if normalizeOut != "" {
		f, err := os.Create(normalizeOut)
		if err != nil {
			return errors.Wrapf(err, "failed to create output file %s", normalizeOut)
		}
		defer f.Close()
		out = f
	}

	if normalizeFormat == "json" {
		return assay.WriteJSON(out, result)
	}
	return assay.WriteTSV(out, result)
}

func verbosityOf(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}
