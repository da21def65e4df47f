package assay

// ColumnKey is the two-level identity of a source column. Assay files carry
// paired header rows: a group label and a sub-label, e.g.
// ("Assay", "Qualitative Measurement").
type ColumnKey struct {
	Group string
	Label string
}

// DefaultColumnMapping maps source column pairs to canonical field names.
// A declared field whose source pair is absent from a chunk is filled with
// nil for every row of that chunk.
var DefaultColumnMapping = map[ColumnKey]string{
	{Group: "MHC Restriction", Label: "Name"}:           ColMHCName,
	{Group: "Assay", Label: "Qualitative Measurement"}:  ColQualitative,
	{Group: "Assay", Label: "Quantitative measurement"}: ColQuantitative,
	{Group: "Assay", Label: "Response measured"}:        ColResponse,
	{Group: "Epitope", Label: "Name"}:                   ColEpitope,
}
