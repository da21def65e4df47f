// Package assay implements the streaming assay-record normalization and
// filtering engine. Raw assay rows are consumed in bounded-size chunks,
// their MHC identifiers resolved against the mhc catalog, and the result
// accumulated into an in-memory table with a fixed column schema.
package assay

// Canonical output column names.
const (
	ColMHCName      = "mhc_name"
	ColMHCClass     = "mhc_class"
	ColQualitative  = "qualitative_data"
	ColQuantitative = "quantitative_data"
	ColResponse     = "assay_response"
	ColSpecies      = "species"
	ColEpitope      = "epitope"
)

// OutputColumns is the fixed column order of every normalized table,
// including an empty one.
var OutputColumns = []string{
	ColMHCName,
	ColMHCClass,
	ColQualitative,
	ColQuantitative,
	ColResponse,
	ColSpecies,
	ColEpitope,
}

// Record is one normalized assay row. Nil means the field was absent in the
// source or could not be derived.
type Record struct {
	MHCName      *string
	MHCClass     *string
	Qualitative  *string
	Quantitative *string
	Response     *string
	Species      *string
	Epitope      *string
}

// Field returns the record value for a canonical column name.
func (r *Record) Field(column string) *string {
	switch column {
	case ColMHCName:
		return r.MHCName
	case ColMHCClass:
		return r.MHCClass
	case ColQualitative:
		return r.Qualitative
	case ColQuantitative:
		return r.Quantitative
	case ColResponse:
		return r.Response
	case ColSpecies:
		return r.Species
	case ColEpitope:
		return r.Epitope
	}
	return nil
}

func (r *Record) setField(column string, value *string) {
	switch column {
	case ColMHCName:
		r.MHCName = value
	case ColMHCClass:
		r.MHCClass = value
	case ColQualitative:
		r.Qualitative = value
	case ColQuantitative:
		r.Quantitative = value
	case ColResponse:
		r.Response = value
	case ColSpecies:
		r.Species = value
	case ColEpitope:
		r.Epitope = value
	}
}

// Table is an accumulated, ordered set of normalized records. It is only
// appended to during normalization and read-only afterwards.
type Table struct {
	records []Record
}

// NewTable returns an empty table with the canonical column schema.
func NewTable() *Table {
	return &Table{}
}

// Columns returns the table's column names in their fixed order.
func (t *Table) Columns() []string {
	out := make([]string, len(OutputColumns))
	copy(out, OutputColumns)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns the rows in input order. Callers must not modify the
// returned slice.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	return t.records
}

// Append adds a row. Intended for construction; once a table is handed to
// Filter it is treated as read-only.
func (t *Table) Append(r Record) {
	t.records = append(t.records, r)
}
