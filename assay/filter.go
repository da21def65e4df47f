package assay

import (
	"strings"

	"github.com/mhctools/mhclab/mhc"
)

// Filter is a declarative query over a normalized table. It extends the
// catalog query with two presence flags covering the measurement columns.
// All constraints are ANDed; a zero-value Filter retains every row.
type Filter struct {
	mhc.Query

	// QualitativePresent retains only rows whose qualitative_data field is
	// non-nil, non-empty, and not the literal string "null".
	QualitativePresent bool

	// QuantitativePresent does the same for quantitative_data.
	QuantitativePresent bool
}

// Apply filters the table and returns a new table with the same column
// order. The input is never modified, and applying the same filter twice
// yields the same rows.
//
// OrganismID is a known gap: the normalized table does not retain the
// organism taxonomy id, so a filter specifying it does not constrain rows
// here (it still constrains catalog lookups). RestrictionLevel is likewise
// not represented in the table and only participates in catalog queries.
//
// Chain constraints have no table column either; they are resolved back
// through the catalog: every distinct surviving mhc_name is combined with
// the chain constraints into a strict single-record lookup, and kept only
// when exactly one catalog record matches. This pass runs after the cheap
// column constraints to shrink its working set.
func (f *Filter) Apply(table *Table, catalog *mhc.Catalog) *Table {
	out := NewTable()
	if table == nil || table.Len() == 0 {
		return out
	}

	for _, rec := range table.Records() {
		if f.matchesColumns(&rec) {
			out.Append(rec)
		}
	}

	if f.Chain1 != nil || f.Chain2 != nil || f.ChainAny != nil {
		out = f.applyChainPass(out, catalog)
	}

	return out
}

// matchesColumns applies the constraints that map directly onto table
// columns, plus the presence flags.
func (f *Filter) matchesColumns(rec *Record) bool {
	if f.Name != nil && !cellFoldEq(rec.MHCName, *f.Name) {
		return false
	}
	if f.Class != nil && !cellFoldEq(rec.MHCClass, *f.Class) {
		return false
	}
	if f.Organism != nil && !cellFoldEq(rec.Species, *f.Organism) {
		return false
	}
	if f.QualitativePresent && !present(rec.Qualitative) {
		return false
	}
	if f.QuantitativePresent && !present(rec.Quantitative) {
		return false
	}
	return true
}

// applyChainPass retains rows whose mhc_name resolves, together with the
// requested chain constraints, to exactly one catalog record. Ambiguous or
// absent catalog matches exclude the name; zero surviving names is an empty
// result, not an error.
func (f *Filter) applyChainPass(table *Table, catalog *mhc.Catalog) *Table {
	valid := make(map[string]bool)
	checked := make(map[string]bool)

	for _, rec := range table.Records() {
		if rec.MHCName == nil {
			continue
		}
		name := *rec.MHCName
		if checked[name] {
			continue
		}
		checked[name] = true

		q := &mhc.Query{
			Name:     &name,
			Chain1:   f.Chain1,
			Chain2:   f.Chain2,
			ChainAny: f.ChainAny,
		}
		if allele, err := catalog.FindOne(q); err == nil && allele != nil {
			valid[name] = true
		}
	}

	out := NewTable()
	for _, rec := range table.Records() {
		if rec.MHCName != nil && valid[*rec.MHCName] {
			out.Append(rec)
		}
	}
	return out
}

func cellFoldEq(cell *string, value string) bool {
	return cell != nil && strings.EqualFold(*cell, value)
}

// present reports whether a measurement cell carries data. Some source rows
// write the literal string "null" instead of leaving the cell empty.
func present(cell *string) bool {
	return cell != nil && *cell != "" && *cell != "null"
}
