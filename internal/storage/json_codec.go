package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"

	"github.com/leengari/numsanitize/internal/domain/data"
	"github.com/leengari/numsanitize/internal/domain/errors"
	"github.com/leengari/numsanitize/internal/domain/schema"
)

const jsonIndent = "    "

// decodeJSON reads a top-level array of objects. Comments and trailing
// commas are stripped first. Column order is the order in which keys are
// first seen; numbers keep their original text as json.Number and nested
// objects or arrays are kept verbatim as compact json.RawMessage.
func decodeJSON(content []byte, path string) (*schema.Table, error) {
	parseErr := func(line int, reason string, err error) error {
		return &errors.ParseError{Path: path, Format: string(FormatJSON), Line: line, Reason: reason, Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(content)))
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, parseErr(0, "empty document", nil)
	}
	if err != nil {
		return nil, parseErr(0, "", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, parseErr(0, "expected an array of records", nil)
	}

	table := schema.NewTable(tableName(path))
	for record := 1; dec.More(); record++ {
		row, err := decodeRecord(dec, table)
		if err != nil {
			return nil, parseErr(record, "", err)
		}
		table.Rows = append(table.Rows, row)
	}

	if _, err := dec.Token(); err != nil {
		return nil, parseErr(0, "", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, parseErr(0, "unexpected data after the records array", nil)
	}

	return table, nil
}

func decodeRecord(dec *json.Decoder, table *schema.Table) (data.Row, error) {
	tok, err := dec.Token()
	if err != nil {
		return data.Row{}, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return data.Row{}, fmt.Errorf("expected an object, got %v", tok)
	}

	values := make(map[string]interface{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return data.Row{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return data.Row{}, fmt.Errorf("expected an object key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return data.Row{}, fmt.Errorf("value of '%s': %w", key, err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return data.Row{}, fmt.Errorf("value of '%s': %w", key, err)
		}

		values[key] = value
		table.AddColumn(key)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return data.Row{}, err
	}
	return data.NewRow(values), nil
}

func decodeValue(raw json.RawMessage) (interface{}, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return nil, err
		}
		return json.RawMessage(compact.Bytes()), nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// encodeJSON writes the rows as an indented array of objects. Keys follow
// schema order; keys absent from a row stay absent and keys outside the
// schema are not written.
func encodeJSON(t *schema.Table) ([]byte, error) {
	var buf bytes.Buffer
	if len(t.Rows) == 0 {
		buf.WriteString("[]\n")
		return buf.Bytes(), nil
	}

	columns := t.ColumnNames()
	keys := make([][]byte, len(columns))
	for i, col := range columns {
		k, err := marshalValue(col)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	buf.WriteString("[\n")
	for i, row := range t.Rows {
		buf.WriteString(jsonIndent + "{")
		written := 0
		for c, col := range columns {
			v, ok := row.Data[col]
			if !ok {
				continue
			}
			val, err := marshalValue(v)
			if err != nil {
				return nil, fmt.Errorf("row %d, column '%s': %w", i, col, err)
			}
			if written > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n" + jsonIndent + jsonIndent)
			buf.Write(keys[c])
			buf.WriteString(": ")
			buf.Write(val)
			written++
		}
		if written > 0 {
			buf.WriteString("\n" + jsonIndent)
		}
		buf.WriteString("}")
		if i < len(t.Rows)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")

	return buf.Bytes(), nil
}

func marshalValue(v interface{}) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}
