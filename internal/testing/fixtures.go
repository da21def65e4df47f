// Package testing provides shared fixtures for mhclab tests.
package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// RegistryXML is a small allele-name registry covering the catalog shapes
// exercised by tests: synonyms, class I and II, two organisms, and an entry
// without synonyms.
const RegistryXML = `<?xml version="1.0" encoding="UTF-8"?>
<MhcAlleleNameList xsi:noNamespaceSchemaLocation="http://www.iedb.org/schema/MhcAlleleNameList.xsd" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
    <MhcAlleleName>
        <MhcAlleleRestrictionId>1</MhcAlleleRestrictionId>
        <DisplayedRestriction>HLA-A*02:01</DisplayedRestriction>
        <Synonyms>HLA-A2|A*02:01|A2</Synonyms>
        <RestrictionLevel>complete molecule</RestrictionLevel>
        <Organism>Homo sapiens (human)</Organism>
        <OrganismNcbiTaxId>9606</OrganismNcbiTaxId>
        <Class>I</Class>
        <Chain1Name>HLA-A*02:01</Chain1Name>
        <Chain2Name>Beta-2-microglobulin</Chain2Name>
    </MhcAlleleName>
    <MhcAlleleName>
        <MhcAlleleRestrictionId>2</MhcAlleleRestrictionId>
        <DisplayedRestriction>HLA-DRB1*01:01</DisplayedRestriction>
        <RestrictionLevel>complete molecule</RestrictionLevel>
        <Organism>Homo sapiens (human)</Organism>
        <OrganismNcbiTaxId>9606</OrganismNcbiTaxId>
        <Class>II</Class>
        <Chain1Name>HLA-DRA*01:01</Chain1Name>
        <Chain2Name>HLA-DRB1*01:01</Chain2Name>
    </MhcAlleleName>
    <MhcAlleleName>
        <MhcAlleleRestrictionId>3</MhcAlleleRestrictionId>
        <DisplayedRestriction>H-2-Kb</DisplayedRestriction>
        <Synonyms>H2-Kb|Kb</Synonyms>
        <RestrictionLevel>complete molecule</RestrictionLevel>
        <Organism>Mus musculus (house mouse)</Organism>
        <OrganismNcbiTaxId>10090</OrganismNcbiTaxId>
        <Class>I</Class>
        <Chain1Name>H-2-Kb</Chain1Name>
        <Chain2Name>Beta-2-microglobulin</Chain2Name>
    </MhcAlleleName>
</MhcAlleleNameList>`

// AssayCSV is a two-row-header assay file matching RegistryXML: a canonical
// name, an alias, a mouse alias, and an unregistered name.
const AssayCSV = `Assay,Assay,Assay,Assay,Assay,Epitope,MHC Restriction
"Qualitative Measurement","Quantitative measurement","Response measured","Units","IRI",Name,Name
Positive-High,100.5,"qualitative binding",nM,http://example.com/1,KLEDLERDL,HLA-A*02:01
Positive,75.2,"quantitative binding",uM,http://example.com/2,LITGRLQSL,HLA-A2
Negative,,,"",http://example.com/3,TRVAFAGL,H2-Kb
Positive,50.0,"binding",nM,http://example.com/4,UNKNOWN,UnknownMhc`

// WriteFile writes content to a temp file and returns its path.
// The file is removed when the test finishes.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteRegistry writes the canned registry fixture and returns its path.
func WriteRegistry(t *testing.T) string {
	t.Helper()
	return WriteFile(t, "mhc_allele_names.xml", RegistryXML)
}

// WriteAssay writes the canned assay fixture and returns its path.
func WriteAssay(t *testing.T) string {
	t.Helper()
	return WriteFile(t, "mhc_ligand_full.csv", AssayCSV)
}
