package errors

import (
	"fmt"
	"strings"
)

// ColumnNotFoundError is returned when the requested column is not part of
// the table schema.
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
	Available  []string // columns the table does have, in schema order
}

func (e *ColumnNotFoundError) Error() string {
	msg := fmt.Sprintf("column '%s' not found in table '%s'", e.ColumnName, e.TableName)
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(e.Available, ", "))
	}
	return msg
}

// InvalidPrecisionError is returned for a negative, non-integer or otherwise
// unusable precision setting.
type InvalidPrecisionError struct {
	Value  string // offending input as given by the caller
	Reason string
}

func (e *InvalidPrecisionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid precision '%s'", e.Value)
	}
	return fmt.Sprintf("invalid precision '%s': %s", e.Value, e.Reason)
}

// UnsupportedFormatError is returned when a file is neither CSV nor JSON and
// no usable override was given.
type UnsupportedFormatError struct {
	Path   string
	Format string // explicit override, empty when the extension was used
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("unsupported file type '%s' for %s (choose csv or json)", e.Format, e.Path)
	}
	return fmt.Sprintf("could not infer file type of %s from its extension, specify csv or json", e.Path)
}

// ParseError describes malformed input data
type ParseError struct {
	Path   string
	Format string
	Line   int // 1-based line or record number, 0 if unknown
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("cannot parse %s as %s", e.Path, e.Format))

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("at record %d", e.Line))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewNegativePrecision(value int) *InvalidPrecisionError {
	return &InvalidPrecisionError{
		Value:  fmt.Sprintf("%d", value),
		Reason: "must be zero or a positive number of decimal places",
	}
}
