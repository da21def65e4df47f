package mhc

import (
	"github.com/mhctools/mhclab/errors"
)

// Catalog holds allele records in registry insertion order, keyed internally
// by the registry's opaque restriction id. Lookups are always by attribute
// match via FindAll/FindOne; the key is never exposed past load.
type Catalog struct {
	records []*Allele
	byID    map[string]*Allele
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// FindAll returns every record matching the query, in insertion order.
// A nil query matches everything.
func (c *Catalog) FindAll(q *Query) []*Allele {
	if q == nil {
		out := make([]*Allele, len(c.records))
		copy(out, c.records)
		return out
	}

	var out []*Allele
	for _, a := range c.records {
		if q.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// FindOne returns the single record matching the query, or nil when nothing
// matches. More than one match is an error wrapping errors.ErrAmbiguousMatch:
// a single-answer lookup must not silently pick among candidates.
func (c *Catalog) FindOne(q *Query) (*Allele, error) {
	var found *Allele
	for _, a := range c.records {
		if q != nil && !q.Matches(a) {
			continue
		}
		if found != nil {
			return nil, errors.Wrap(errors.ErrAmbiguousMatch, "multiple MHC allele names found for query")
		}
		found = a
	}
	return found, nil
}

func (c *Catalog) add(id string, a *Allele) {
	if c.byID == nil {
		c.byID = make(map[string]*Allele)
	}
	c.records = append(c.records, a)
	c.byID[id] = a
}
