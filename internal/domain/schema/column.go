package schema

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/leengari/numsanitize/internal/domain/data"
)

type ColumnType string

const (
	ColumnTypeInt   ColumnType = "INT"
	ColumnTypeFloat ColumnType = "FLOAT"
	ColumnTypeText  ColumnType = "TEXT"
	ColumnTypeBool  ColumnType = "BOOL"
	ColumnTypeJSON  ColumnType = "JSON"
	ColumnTypeNull  ColumnType = "NULL"
	ColumnTypeMixed ColumnType = "MIXED"
)

type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type,omitempty"`
}

// InferColumnType looks at every value of column and reports the narrowest
// type that covers them all. Nulls and missing keys are ignored.
func InferColumnType(rows []data.Row, column string) ColumnType {
	result := ColumnTypeNull
	for _, row := range rows {
		v, ok := row.Get(column)
		if !ok || v == nil {
			continue
		}
		t := valueType(v)
		switch {
		case result == ColumnTypeNull:
			result = t
		case result == t:
		case isNumeric(result) && isNumeric(t):
			result = ColumnTypeFloat
		default:
			return ColumnTypeMixed
		}
	}
	return result
}

func isNumeric(t ColumnType) bool {
	return t == ColumnTypeInt || t == ColumnTypeFloat
}

func valueType(v interface{}) ColumnType {
	switch val := v.(type) {
	case bool:
		return ColumnTypeBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ColumnTypeInt
	case float32, float64:
		return ColumnTypeFloat
	case json.Number:
		if strings.ContainsAny(string(val), ".eE") {
			return ColumnTypeFloat
		}
		return ColumnTypeInt
	case json.RawMessage:
		return ColumnTypeJSON
	case string:
		s := strings.TrimSpace(val)
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ColumnTypeInt
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return ColumnTypeFloat
		}
		return ColumnTypeText
	default:
		return ColumnTypeText
	}
}
