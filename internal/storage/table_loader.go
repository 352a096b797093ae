package storage

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/numsanitize/internal/domain/schema"
)

// LoadTable reads the file at path and parses it in the given format
func LoadTable(path string, format Format, logger *slog.Logger) (*schema.Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	table, err := Decode(content, path, format)
	if err != nil {
		return nil, err
	}
	table.Path = path

	logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("format", string(format)),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.ColumnNames())),
	)

	return table, nil
}
