package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelErrors(t *testing.T) {
	notFound := Wrap(ErrNotFound, "registry file missing")
	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsAmbiguousMatchError(notFound))

	ambiguous := Wrapf(ErrAmbiguousMatch, "identifier %q", "HLA-A2")
	assert.True(t, IsAmbiguousMatchError(ambiguous))
	assert.False(t, IsNotFoundError(ambiguous))

	malformed := NewMalformedRecordError("entry %s has no name", "R-1234")
	assert.True(t, IsMalformedRecordError(malformed))
	assert.Contains(t, malformed.Error(), "R-1234")
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("no such file: %s", "alleles.xml")
	require.NotNil(t, err)
	assert.True(t, Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "alleles.xml")
}

func TestCheckersHandleNil(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsAmbiguousMatchError(nil))
	assert.False(t, IsMalformedRecordError(nil))
}
