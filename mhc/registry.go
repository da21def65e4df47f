package mhc

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/mhctools/mhclab/errors"
)

// alleleNameEntry mirrors one <MhcAlleleName> element of the registry file.
// Pointer fields distinguish absent elements from present-but-empty ones.
type alleleNameEntry struct {
	RestrictionID    *string `xml:"MhcAlleleRestrictionId"`
	Name             *string `xml:"DisplayedRestriction"`
	Class            *string `xml:"Class"`
	Chain1           *string `xml:"Chain1Name"`
	Chain2           *string `xml:"Chain2Name"`
	Organism         *string `xml:"Organism"`
	OrganismID       *string `xml:"OrganismNcbiTaxId"`
	RestrictionLevel *string `xml:"RestrictionLevel"`
	Synonyms         *string `xml:"Synonyms"`
}

// LoadCatalog parses the MHC allele name registry XML file.
//
// The registry is loaded whole or not at all: an entry missing its unique key
// or canonical name fails the load with errors.ErrMalformedRecord, since a
// partially-loaded catalog silently changes resolution outcomes. A path that
// does not resolve fails with errors.ErrNotFound.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("MHC allele names file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to open registry file %s", path)
	}
	defer f.Close()

	return parseRegistry(f)
}

func parseRegistry(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{}
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse registry XML")
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "MhcAlleleName" {
			continue
		}

		var entry alleleNameEntry
		if err := dec.DecodeElement(&entry, &start); err != nil {
			return nil, errors.Wrap(err, "failed to decode MhcAlleleName element")
		}

		allele, id, err := entry.toAllele()
		if err != nil {
			return nil, err
		}
		catalog.add(id, allele)
	}

	return catalog, nil
}

func (e *alleleNameEntry) toAllele() (*Allele, string, error) {
	id := textOf(e.RestrictionID)
	if id == nil {
		return nil, "", errors.NewMalformedRecordError("registry entry has no MhcAlleleRestrictionId")
	}
	name := textOf(e.Name)
	if name == nil {
		return nil, "", errors.NewMalformedRecordError("registry entry %s has no DisplayedRestriction", *id)
	}

	aliases := []string{}
	if syn := textOf(e.Synonyms); syn != nil {
		aliases = strings.Split(*syn, "|")
	}

	return &Allele{
		Name:             *name,
		Class:            textOf(e.Class),
		Chain1:           textOf(e.Chain1),
		Chain2:           textOf(e.Chain2),
		Aliases:          aliases,
		Organism:         textOf(e.Organism),
		OrganismID:       textOf(e.OrganismID),
		RestrictionLevel: textOf(e.RestrictionLevel),
	}, *id, nil
}

// textOf treats empty element text the same as an absent element.
func textOf(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
