package assay_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhctools/mhclab/assay"
	mhctest "github.com/mhctools/mhclab/internal/testing"
	"github.com/mhctools/mhclab/mhc"
)

func loadTestCatalog(t *testing.T) *mhc.Catalog {
	t.Helper()
	catalog, err := mhc.LoadCatalog(mhctest.WriteRegistry(t))
	require.NoError(t, err)
	return catalog
}

func normalizeFixture(t *testing.T, chunkSize int) *assay.Table {
	t.Helper()

	cr, err := assay.NewChunkReader(strings.NewReader(mhctest.AssayCSV), chunkSize)
	require.NoError(t, err)

	table, err := assay.NewNormalizer(loadTestCatalog(t)).Normalize(context.Background(), cr)
	require.NoError(t, err)
	return table
}

func TestNormalizeColumns(t *testing.T) {
	table := normalizeFixture(t, 100)

	expected := []string{
		"mhc_name", "mhc_class", "qualitative_data", "quantitative_data",
		"assay_response", "species", "epitope",
	}
	assert.Equal(t, expected, table.Columns())
}

func TestNormalizeResolvesCanonicalName(t *testing.T) {
	table := normalizeFixture(t, 100)
	require.Equal(t, 4, table.Len())

	rec := table.Records()[0]
	require.NotNil(t, rec.MHCName)
	assert.Equal(t, "HLA-A*02:01", *rec.MHCName)
	require.NotNil(t, rec.MHCClass)
	assert.Equal(t, "I", *rec.MHCClass)
	require.NotNil(t, rec.Species)
	assert.Equal(t, "Homo sapiens (human)", *rec.Species)
	require.NotNil(t, rec.Epitope)
	assert.Equal(t, "KLEDLERDL", *rec.Epitope)
}

func TestNormalizeTranslatesAlias(t *testing.T) {
	table := normalizeFixture(t, 100)

	// Input row 2 carries the alias HLA-A2
	rec := table.Records()[1]
	require.NotNil(t, rec.MHCName)
	assert.Equal(t, "HLA-A*02:01", *rec.MHCName, "alias translates to the main name")
	require.NotNil(t, rec.MHCClass)
	assert.Equal(t, "I", *rec.MHCClass)

	// Input row 3 carries the mouse alias H2-Kb
	rec = table.Records()[2]
	require.NotNil(t, rec.MHCName)
	assert.Equal(t, "H-2-Kb", *rec.MHCName)
	require.NotNil(t, rec.Species)
	assert.Equal(t, "Mus musculus (house mouse)", *rec.Species)
}

func TestNormalizeUnregisteredName(t *testing.T) {
	table := normalizeFixture(t, 100)

	rec := table.Records()[3]
	require.NotNil(t, rec.MHCName)
	assert.Equal(t, "UnknownMhc", *rec.MHCName, "raw value is preserved")
	assert.Nil(t, rec.MHCClass)
	assert.Nil(t, rec.Species)
}

func TestNormalizeOrderPreservedAcrossChunkSizes(t *testing.T) {
	expected := []string{"KLEDLERDL", "LITGRLQSL", "TRVAFAGL", "UNKNOWN"}

	for _, chunkSize := range []int{1, 2, 3, 100, 0} {
		table := normalizeFixture(t, chunkSize)
		require.Equal(t, len(expected), table.Len(), "chunk size %d", chunkSize)

		for i, rec := range table.Records() {
			require.NotNil(t, rec.Epitope)
			assert.Equal(t, expected[i], *rec.Epitope,
				"row %d out of order with chunk size %d", i, chunkSize)
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	csv := "Assay,Epitope,MHC Restriction\n" +
		"Qualitative Measurement,Name,Name\n"

	cr, err := assay.NewChunkReader(strings.NewReader(csv), 100)
	require.NoError(t, err)

	table, err := assay.NewNormalizer(loadTestCatalog(t)).Normalize(context.Background(), cr)
	require.NoError(t, err)

	assert.Equal(t, 0, table.Len())
	assert.Len(t, table.Columns(), 7, "empty result keeps the canonical columns")
}

func TestNormalizeMissingMappedColumn(t *testing.T) {
	// No quantitative or response columns in the source at all
	csv := "Epitope,MHC Restriction\n" +
		"Name,Name\n" +
		"PEPTIDE1,HLA-A2\n"

	cr, err := assay.NewChunkReader(strings.NewReader(csv), 100)
	require.NoError(t, err)

	table, err := assay.NewNormalizer(loadTestCatalog(t)).Normalize(context.Background(), cr)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	rec := table.Records()[0]
	assert.Nil(t, rec.Quantitative)
	assert.Nil(t, rec.Qualitative)
	assert.Nil(t, rec.Response)
	require.NotNil(t, rec.MHCName)
	assert.Equal(t, "HLA-A*02:01", *rec.MHCName)
}

func TestNormalizeMissingMHCColumn(t *testing.T) {
	csv := "Epitope\nName\nPEPTIDE1\n"

	cr, err := assay.NewChunkReader(strings.NewReader(csv), 100)
	require.NoError(t, err)

	table, err := assay.NewNormalizer(loadTestCatalog(t)).Normalize(context.Background(), cr)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	rec := table.Records()[0]
	assert.Nil(t, rec.MHCName)
	assert.Nil(t, rec.MHCClass)
	assert.Nil(t, rec.Species)
}

func TestNormalizeEmitsProgress(t *testing.T) {
	var emitted recordingEmitter

	cr, err := assay.NewChunkReader(strings.NewReader(mhctest.AssayCSV), 2)
	require.NoError(t, err)

	norm := assay.NewNormalizerWithOptions(loadTestCatalog(t), assay.NormalizerOptions{
		Emitter: &emitted,
	})
	_, err = norm.Normalize(context.Background(), cr)
	require.NoError(t, err)

	assert.Equal(t, []string{"normalize"}, emitted.stages)
	require.Len(t, emitted.summaries, 1)
	assert.Equal(t, 4, emitted.summaries[0]["rows"])
	assert.Equal(t, 2, emitted.summaries[0]["chunks"])
	assert.NotEmpty(t, emitted.summaries[0]["run_id"])
}

// recordingEmitter captures progress events for assertions.
type recordingEmitter struct {
	stages    []string
	chunks    []int
	summaries []map[string]interface{}
	errs      []error
}

func (r *recordingEmitter) EmitStage(stage, _ string) { r.stages = append(r.stages, stage) }
func (r *recordingEmitter) EmitChunk(index, _, _ int) { r.chunks = append(r.chunks, index) }
func (r *recordingEmitter) EmitComplete(summary map[string]interface{}) {
	r.summaries = append(r.summaries, summary)
}
func (r *recordingEmitter) EmitError(_ string, err error) { r.errs = append(r.errs, err) }
