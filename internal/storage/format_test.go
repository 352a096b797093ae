package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/leengari/numsanitize/internal/domain/errors"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		override string
		want     Format
	}{
		{"csv extension", "data.csv", "", FormatCSV},
		{"json extension", "dir/data.json", "", FormatJSON},
		{"upper case extension", "DATA.CSV", "", FormatCSV},
		{"override wins over extension", "data.csv", "json", FormatJSON},
		{"override without extension", "data", "CSV", FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.path, tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatUnsupported(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		override string
	}{
		{"no extension", "data", ""},
		{"unknown extension", "data.xlsx", ""},
		{"unknown override", "data.csv", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectFormat(tt.path, tt.override)

			var unsupported *domainerrors.UnsupportedFormatError
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, tt.path, unsupported.Path)
			assert.Equal(t, tt.override, unsupported.Format)
		})
	}
}
