package assay

import "context"

// Chunk is a bounded slice of raw assay rows sharing one header layout.
// Chunk boundaries are a memory concern only; they never affect output
// content or ordering.
type Chunk struct {
	Index   int         // 0-based position in the stream
	Columns []ColumnKey // source column identities, in file order
	Rows    [][]*string // each row has len(Columns) cells; nil cell = empty
}

// Source yields chunks of raw assay rows in strict input order.
// Implementations return io.EOF after the final chunk.
type Source interface {
	Next(ctx context.Context) (*Chunk, error)
}
