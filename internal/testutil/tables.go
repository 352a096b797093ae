package testutil

import (
	"github.com/leengari/numsanitize/internal/domain/data"
	"github.com/leengari/numsanitize/internal/domain/schema"
)

// CreateTestTable creates a table with the given columns and one row per
// entry of values. A nil entry in a values slice becomes a null cell; use
// Missing to leave the key out of the row entirely.
func CreateTestTable(name string, columns []string, values ...[]interface{}) *schema.Table {
	table := schema.NewTable(name, columns...)
	for _, vals := range values {
		m := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if i >= len(vals) {
				break
			}
			if _, skip := vals[i].(missing); skip {
				continue
			}
			m[col] = vals[i]
		}
		table.Rows = append(table.Rows, data.NewRow(m))
	}
	return table
}

type missing struct{}

// Missing marks a cell whose key is absent from the row
var Missing interface{} = missing{}

// CreateMeasurementsTable creates a small table with a mixed "amount" column
func CreateMeasurementsTable() *schema.Table {
	return CreateTestTable("measurements",
		[]string{"id", "name", "amount"},
		[]interface{}{int64(1), "alice", 1.245},
		[]interface{}{int64(2), "bob", 2.5},
		[]interface{}{int64(3), "charlie", "n/a"},
		[]interface{}{int64(4), "dave", nil},
		[]interface{}{int64(5), "erin", int64(3)},
	)
}

// ColumnValues returns the value of column for every row, nil when absent
func ColumnValues(table *schema.Table, column string) []interface{} {
	values := make([]interface{}, len(table.Rows))
	for i, row := range table.Rows {
		values[i] = row.Data[column]
	}
	return values
}
