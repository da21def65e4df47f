// Package errors provides error handling for mhclab.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Common sentinel errors for use across mhclab.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates a registry or assay data file path does not resolve
	ErrNotFound = New("not found")

	// ErrAmbiguousMatch indicates a single-record lookup matched more than one
	// catalog record
	ErrAmbiguousMatch = New("ambiguous match")

	// ErrMalformedRecord indicates a registry entry is missing its required
	// canonical name
	ErrMalformedRecord = New("malformed record")

	// ErrInvalidConfig indicates the loaded configuration failed validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsAmbiguousMatchError checks if an error is or wraps ErrAmbiguousMatch
func IsAmbiguousMatchError(err error) bool {
	return err != nil && Is(err, ErrAmbiguousMatch)
}

// IsMalformedRecordError checks if an error is or wraps ErrMalformedRecord
func IsMalformedRecordError(err error) bool {
	return err != nil && Is(err, ErrMalformedRecord)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewMalformedRecordError creates a malformed-record error with a formatted message
func NewMalformedRecordError(format string, args ...interface{}) error {
	return Wrap(ErrMalformedRecord, Newf(format, args...).Error())
}
