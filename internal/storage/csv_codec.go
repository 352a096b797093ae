package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/leengari/numsanitize/internal/domain/data"
	"github.com/leengari/numsanitize/internal/domain/errors"
	"github.com/leengari/numsanitize/internal/domain/schema"
)

// decodeCSV reads a header row followed by records. Cells are kept as their
// raw text so untouched columns are written back exactly; empty cells
// become nil.
func decodeCSV(r io.Reader, path string) (*schema.Table, error) {
	reader := csv.NewReader(r)
	table := schema.NewTable(tableName(path))

	header, err := reader.Read()
	if err == io.EOF {
		return table, nil
	}
	if err != nil {
		return nil, csvParseError(path, err)
	}

	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
			header[i] = name
		}
		if !table.AddColumn(name) {
			return nil, &errors.ParseError{
				Path:   path,
				Format: string(FormatCSV),
				Line:   1,
				Reason: fmt.Sprintf("duplicate column '%s'", name),
			}
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvParseError(path, err)
		}

		values := make(map[string]interface{}, len(header))
		for i, cell := range record {
			if cell == "" {
				values[header[i]] = nil
				continue
			}
			values[header[i]] = cell
		}
		table.Rows = append(table.Rows, data.NewRow(values))
	}

	return table, nil
}

func csvParseError(path string, err error) error {
	pe := &errors.ParseError{Path: path, Format: string(FormatCSV), Err: err}
	var csvErr *csv.ParseError
	if stderrors.As(err, &csvErr) {
		pe.Line = csvErr.Line
		pe.Err = csvErr.Err
	}
	return pe
}

func encodeCSV(t *schema.Table) ([]byte, error) {
	var buf bytes.Buffer
	columns := t.ColumnNames()
	if len(columns) == 0 {
		return buf.Bytes(), nil
	}

	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}

	record := make([]string, len(columns))
	for _, row := range t.Rows {
		for i, col := range columns {
			record[i] = formatCell(row.Data[col])
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

// formatCell renders a cell value as CSV text
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return string(val)
	case json.RawMessage:
		return string(val)
	case decimal.Decimal:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
