package storage

import (
	"path/filepath"
	"strings"

	"github.com/leengari/numsanitize/internal/domain/errors"
)

// Format is a supported table file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat resolves a case-insensitive format name
func ParseFormat(name string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatCSV:
		return FormatCSV, true
	case FormatJSON:
		return FormatJSON, true
	}
	return "", false
}

// DetectFormat picks the format for path. A non-empty override always wins;
// otherwise the file extension decides. File contents are never inspected.
func DetectFormat(path, override string) (Format, error) {
	if strings.TrimSpace(override) != "" {
		f, ok := ParseFormat(override)
		if !ok {
			return "", &errors.UnsupportedFormatError{Path: path, Format: override}
		}
		return f, nil
	}

	f, ok := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if !ok {
		return "", &errors.UnsupportedFormatError{Path: path}
	}
	return f, nil
}
