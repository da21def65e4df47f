// Package mhc implements the MHC allele name catalog: an in-memory,
// insertion-ordered registry of allele records with alias-aware lookup
// and raw-identifier resolution.
//
// The catalog is built once from a registry file and is read-only
// afterwards; concurrent reads are safe without locking.
package mhc

import (
	"fmt"
	"strings"
)

// Allele is a single catalog record. Name is the unique, case-preserving
// canonical identifier; every other field may be absent (nil).
// Aliases is never nil; order and duplicates are preserved as declared.
type Allele struct {
	Name             string
	Class            *string
	Chain1           *string
	Chain2           *string
	Aliases          []string
	Organism         *string
	OrganismID       *string
	RestrictionLevel *string
}

// SynonymList renders the aliases back to the registry's pipe-delimited
// form. Round-trips losslessly with the parsed Synonyms field.
func (a *Allele) SynonymList() string {
	return strings.Join(a.Aliases, "|")
}

// String returns the display form of the allele.
func (a *Allele) String() string {
	class := "unknown"
	if a.Class != nil {
		class = *a.Class
	}
	return fmt.Sprintf("%s - class %s MHC molecule", a.Name, class)
}

// Ptr returns a pointer to v. Convenience for building queries and fixtures.
func Ptr[T any](v T) *T {
	return &v
}
