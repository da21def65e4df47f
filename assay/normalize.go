package assay

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mhctools/mhclab/logger"
	"github.com/mhctools/mhclab/mhc"
)

// Normalizer consumes streamed chunks of raw assay rows, maps source columns
// to canonical fields, resolves each row's MHC identifier against the
// catalog, and accumulates the normalized table.
type Normalizer struct {
	catalog *mhc.Catalog
	mapping map[ColumnKey]string
	log     *zap.SugaredLogger
	emitter ProgressEmitter
	limiter *rate.Limiter
}

// NormalizerOptions provides optional configuration for a Normalizer.
type NormalizerOptions struct {
	Mapping map[ColumnKey]string // Source column mapping (default: DefaultColumnMapping)
	Logger  *zap.SugaredLogger   // Logger for run diagnostics (default: global)
	Emitter ProgressEmitter      // Progress sink (default: NopEmitter)
}

// NewNormalizer creates a normalizer with the default column mapping and no
// progress emission.
func NewNormalizer(catalog *mhc.Catalog) *Normalizer {
	return NewNormalizerWithOptions(catalog, NormalizerOptions{})
}

// NewNormalizerWithOptions creates a normalizer with custom options.
func NewNormalizerWithOptions(catalog *mhc.Catalog, opts NormalizerOptions) *Normalizer {
	if opts.Mapping == nil {
		opts.Mapping = DefaultColumnMapping
	}
	if opts.Logger == nil {
		opts.Logger = logger.ComponentLogger("normalizer")
	}
	if opts.Emitter == nil {
		opts.Emitter = NopEmitter{}
	}

	return &Normalizer{
		catalog: catalog,
		mapping: opts.Mapping,
		log:     opts.Logger,
		emitter: opts.Emitter,
		// Chunk progress is throttled so multi-million-row runs do not
		// flood the terminal; completion is always emitted.
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

// Normalize drains the source and returns the accumulated table. Row order
// in the output equals row order in the input, across chunk boundaries.
// An empty source yields an empty table with the canonical columns.
func (n *Normalizer) Normalize(ctx context.Context, source Source) (*Table, error) {
	runID := uuid.New().String()
	start := time.Now()
	table := NewTable()

	n.emitter.EmitStage("normalize", "resolving MHC identifiers")
	n.log.Infow("normalization started",
		logger.FieldRunID, runID)

	chunks := 0
	for {
		chunk, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			n.emitter.EmitError("normalize", err)
			return nil, err
		}

		n.normalizeChunk(chunk, table)
		chunks++

		if n.limiter.Allow() {
			n.emitter.EmitChunk(chunk.Index, len(chunk.Rows), table.Len())
		}
		n.log.Debugw("chunk normalized",
			logger.FieldRunID, runID,
			logger.FieldChunkIndex, chunk.Index,
			logger.FieldRowCount, len(chunk.Rows))
	}

	summary := map[string]interface{}{
		"run_id": runID,
		"chunks": chunks,
		"rows":   table.Len(),
	}
	n.emitter.EmitComplete(summary)
	n.log.Infow("normalization finished",
		logger.FieldRunID, runID,
		logger.FieldTotalCount, table.Len(),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return table, nil
}

// normalizeChunk maps and resolves one chunk's rows into the table.
func (n *Normalizer) normalizeChunk(chunk *Chunk, table *Table) {
	// Position of each mapped canonical field in this chunk's header.
	// A mapped field absent from the chunk stays nil for all its rows.
	positions := make(map[string]int, len(n.mapping))
	for i, col := range chunk.Columns {
		if field, ok := n.mapping[col]; ok {
			if _, seen := positions[field]; !seen {
				positions[field] = i
			}
		}
	}

	for _, row := range chunk.Rows {
		var rec Record
		for field, pos := range positions {
			if pos < len(row) {
				rec.setField(field, row[pos])
			}
		}

		res := n.catalog.Resolve(rec.MHCName)
		rec.MHCName = res.MHCName
		rec.MHCClass = res.Class
		rec.Species = res.Organism

		table.Append(rec)
	}
}
