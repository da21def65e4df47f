package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across mhclab.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID     = "run_id"
	FieldComponent = "component"

	// Operations
	FieldOperation = "operation"
	FieldPath      = "path"
	FieldQuery     = "query"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount      = "count"
	FieldRowCount   = "row_count"
	FieldChunkIndex = "chunk_index"
	FieldChunkSize  = "chunk_size"
	FieldTotalCount = "total_count"

	// Domain
	FieldAllele   = "allele"
	FieldRawName  = "raw_name"
	FieldOrganism = "organism"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
func ComponentLogger(component string) *zap.SugaredLogger {
	return Logger.With(FieldComponent, component)
}
