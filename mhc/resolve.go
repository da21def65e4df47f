package mhc

// Resolution is the outcome of resolving a raw MHC identifier against the
// catalog. It is a tagged value: when Resolved is true, MHCName carries the
// canonical name and Class/Organism the catalog's derived attributes; when
// false, MHCName preserves the original raw value (possibly nil) and
// Class/Organism are nil.
type Resolution struct {
	Resolved bool
	MHCName  *string
	Class    *string
	Organism *string
}

// Resolve maps a raw, possibly inconsistent identifier to a canonical allele
// record. It never returns an error: a missing identifier, an unregistered
// name, and an ambiguous name all degrade to an unresolved result carrying
// the original value. Bulk normalization must not abort because one row's
// identifier cannot be resolved.
func (c *Catalog) Resolve(raw *string) Resolution {
	if raw == nil {
		return Resolution{MHCName: nil}
	}

	allele, err := c.FindOne(&Query{Name: raw})
	if err != nil || allele == nil {
		// Ambiguity is swallowed here: partial data is preferred over
		// halting the pipeline.
		return Resolution{MHCName: raw}
	}

	return Resolution{
		Resolved: true,
		MHCName:  &allele.Name,
		Class:    allele.Class,
		Organism: allele.Organism,
	}
}
