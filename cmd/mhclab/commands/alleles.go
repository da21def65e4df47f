package commands

import (
	"encoding/json"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mhctools/mhclab/errors"
	"github.com/mhctools/mhclab/mhc"
)

var allelesFormat string

// AllelesCmd queries the allele name catalog
var AllelesCmd = &cobra.Command{
	Use:   "alleles [NAME]",
	Short: "Query the allele name catalog",
	Long: `Query the MHC allele name catalog.

NAME matches the canonical name or any registered alias, case-insensitively.
Additional flags add equality constraints; all constraints are ANDed.

Examples:
  mhclab alleles HLA-A2                       # Resolve a name or alias
  mhclab alleles --class I                    # All class I records
  mhclab alleles --chain-any Beta-2-microglobulin
  mhclab alleles --organism-id 9606 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAllelesCommand,
}

func init() {
	AllelesCmd.Flags().String("registry", "", "Registry XML path (overrides config)")
	AllelesCmd.Flags().String("class", "", "MHC class constraint")
	AllelesCmd.Flags().String("chain1", "", "Chain 1 name constraint")
	AllelesCmd.Flags().String("chain2", "", "Chain 2 name constraint")
	AllelesCmd.Flags().String("chain-any", "", "Either-chain name constraint")
	AllelesCmd.Flags().String("restriction-level", "", "Restriction level constraint")
	AllelesCmd.Flags().String("organism", "", "Organism name constraint")
	AllelesCmd.Flags().String("organism-id", "", "Organism taxonomy id constraint (exact)")
	AllelesCmd.Flags().StringVarP(&allelesFormat, "format", "f", "table", "Output format (table/json)")
}

func runAllelesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	catalog, err := openCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	query := &mhc.Query{
		Class:            strFlag(cmd, "class"),
		Chain1:           strFlag(cmd, "chain1"),
		Chain2:           strFlag(cmd, "chain2"),
		ChainAny:         strFlag(cmd, "chain-any"),
		RestrictionLevel: strFlag(cmd, "restriction-level"),
		Organism:         strFlag(cmd, "organism"),
		OrganismID:       strFlag(cmd, "organism-id"),
	}
	if len(args) == 1 {
		query.Name = &args[0]
	}

	results := catalog.FindAll(query)

	if allelesFormat == "json" {
		return displayAllelesJSON(results)
	}
	return displayAllelesTable(results)
}

func displayAllelesTable(results []*mhc.Allele) error {
	pterm.Printf("Found %s alleles\n\n", pterm.Green(len(results)))

	rows := pterm.TableData{{"Name", "Class", "Organism", "Aliases"}}
	for _, a := range results {
		rows = append(rows, []string{
			a.Name,
			deref(a.Class),
			deref(a.Organism),
			a.SynonymList(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func displayAllelesJSON(results []*mhc.Allele) error {
	type alleleJSON struct {
		Name             string   `json:"name"`
		Class            *string  `json:"mhc_class"`
		Chain1           *string  `json:"chain_1"`
		Chain2           *string  `json:"chain_2"`
		Aliases          []string `json:"aliases"`
		Organism         *string  `json:"organism"`
		OrganismID       *string  `json:"organism_id"`
		RestrictionLevel *string  `json:"restriction_level"`
	}

	out := make([]alleleJSON, 0, len(results))
	for _, a := range results {
		out = append(out, alleleJSON{
			Name:             a.Name,
			Class:            a.Class,
			Chain1:           a.Chain1,
			Chain2:           a.Chain2,
			Aliases:          a.Aliases,
			Organism:         a.Organism,
			OrganismID:       a.OrganismID,
			RestrictionLevel: a.RestrictionLevel,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "failed to encode alleles as JSON")
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
