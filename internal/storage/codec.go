package storage

import (
	"bytes"
	"path/filepath"

	"github.com/leengari/numsanitize/internal/domain/errors"
	"github.com/leengari/numsanitize/internal/domain/schema"
)

// Decode parses file content in the given format. path is only used to name
// the table and in error messages.
func Decode(content []byte, path string, format Format) (*schema.Table, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(bytes.NewReader(content), path)
	case FormatJSON:
		return decodeJSON(content, path)
	default:
		return nil, &errors.UnsupportedFormatError{Path: path, Format: string(format)}
	}
}

// Encode serializes t in the given format, columns in schema order
func Encode(t *schema.Table, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return encodeCSV(t)
	case FormatJSON:
		return encodeJSON(t)
	default:
		return nil, &errors.UnsupportedFormatError{Path: t.Path, Format: string(format)}
	}
}

func tableName(path string) string {
	if path == "" {
		return "table"
	}
	return filepath.Base(path)
}
