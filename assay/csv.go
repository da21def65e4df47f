package assay

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/mhctools/mhclab/errors"
)

// ChunkReader streams a two-row-header CSV assay file as bounded chunks.
// It implements Source.
type ChunkReader struct {
	reader    *csv.Reader
	closer    io.Closer
	columns   []ColumnKey
	chunkSize int
	index     int
	done      bool
}

// OpenChunkReader opens an assay CSV file for chunked reading. A path that
// does not resolve fails with errors.ErrNotFound.
func OpenChunkReader(path string, chunkSize int) (*ChunkReader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("assay data file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to open assay file %s", path)
	}

	cr, err := NewChunkReader(f, chunkSize)
	if err != nil {
		f.Close()
		return nil, err
	}
	cr.closer = f
	return cr, nil
}

// NewChunkReader wraps r, consuming the two header rows immediately.
// chunkSize <= 0 falls back to a single unbounded chunk.
func NewChunkReader(r io.Reader, chunkSize int) (*ChunkReader, error) {
	cr := &ChunkReader{
		reader:    csv.NewReader(r),
		chunkSize: chunkSize,
	}
	cr.reader.FieldsPerRecord = -1

	groups, err := cr.reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read group header row")
	}
	labels, err := cr.reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read label header row")
	}

	cr.columns = buildColumns(groups, labels)
	return cr, nil
}

// buildColumns pairs the two header rows into column identities. Empty group
// cells inherit the nearest group to their left, matching how spreadsheet
// exports span a group label across its columns.
func buildColumns(groups, labels []string) []ColumnKey {
	n := len(labels)
	if len(groups) > n {
		n = len(groups)
	}

	columns := make([]ColumnKey, n)
	group := ""
	for i := 0; i < n; i++ {
		if i < len(groups) && groups[i] != "" {
			group = groups[i]
		}
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		columns[i] = ColumnKey{Group: group, Label: label}
	}
	return columns
}

// Next returns the next chunk of rows, or io.EOF after the last one.
func (cr *ChunkReader) Next(ctx context.Context) (*Chunk, error) {
	if cr.done {
		return nil, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunk := &Chunk{
		Index:   cr.index,
		Columns: cr.columns,
	}

	for cr.chunkSize <= 0 || len(chunk.Rows) < cr.chunkSize {
		record, err := cr.reader.Read()
		if err == io.EOF {
			cr.done = true
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read assay row in chunk %d", cr.index)
		}
		chunk.Rows = append(chunk.Rows, toCells(record, len(cr.columns)))
	}

	if len(chunk.Rows) == 0 {
		return nil, io.EOF
	}
	cr.index++
	return chunk, nil
}

// Close releases the underlying file, if any.
func (cr *ChunkReader) Close() error {
	if cr.closer == nil {
		return nil
	}
	return cr.closer.Close()
}

// toCells widens a raw CSV record to the header width and maps empty cells
// to nil.
func toCells(record []string, width int) []*string {
	cells := make([]*string, width)
	for i := 0; i < width && i < len(record); i++ {
		if record[i] == "" {
			continue
		}
		v := record[i]
		cells[i] = &v
	}
	return cells
}
