package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnNotFoundErrorMessage(t *testing.T) {
	err := &ColumnNotFoundError{TableName: "data.csv", ColumnName: "salary", Available: []string{"id", "age"}}
	assert.Equal(t, "column 'salary' not found in table 'data.csv' (available: id, age)", err.Error())

	bare := &ColumnNotFoundError{TableName: "empty.json", ColumnName: "x"}
	assert.Equal(t, "column 'x' not found in table 'empty.json'", bare.Error())
}

func TestInvalidPrecisionError(t *testing.T) {
	err := NewNegativePrecision(-1)
	assert.Contains(t, err.Error(), "invalid precision '-1'")

	wrapped := fmt.Errorf("run failed: %w", err)
	var target *InvalidPrecisionError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "-1", target.Value)
}

func TestUnsupportedFormatError(t *testing.T) {
	inferred := &UnsupportedFormatError{Path: "data.txt"}
	assert.Contains(t, inferred.Error(), "could not infer file type of data.txt")

	override := &UnsupportedFormatError{Path: "data", Format: "xml"}
	assert.Contains(t, override.Error(), "unsupported file type 'xml'")
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &ParseError{Path: "in.csv", Format: "csv", Line: 3, Reason: "wrong number of fields", Err: io.ErrUnexpectedEOF}

	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "cannot parse in.csv as csv - at record 3 - wrong number of fields - unexpected EOF", err.Error())
}
