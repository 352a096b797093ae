package writer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/numsanitize/internal/domain/schema"
	"github.com/leengari/numsanitize/internal/storage"
)

// SaveTable encodes t in the given format and replaces the file at path
// atomically (temp file + rename). An existing file keeps its permissions.
// A nil logger logs through slog.Default().
func SaveTable(t *schema.Table, path string, format storage.Format, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if t == nil || path == "" {
		return fmt.Errorf("cannot save table: nil or missing path")
	}

	// 1. Encode everything in memory first so a bad value never leaves a partial file
	content, err := storage.Encode(t, format)
	if err != nil {
		return fmt.Errorf("failed to encode table %s as %s: %w", t.Name, format, err)
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("cannot save table %s: %s is a directory", t.Name, path)
		}
		perm = info.Mode().Perm()
	}

	// 2. Write to temp
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("failed to write temp file for %s: %w", path, err)
	}

	// 3. Atomic replace
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp → %s: %w", path, err)
	}

	logger.Info("Table saved successfully",
		slog.String("table", t.Name),
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("row_count", len(t.Rows)),
	)

	return nil
}
