package testutil

import (
	"testing"

	"github.com/leengari/numsanitize/internal/domain/data"
	"github.com/leengari/numsanitize/internal/domain/schema"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if a row has the expected number of columns
func AssertColumnCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertColumnExists checks if a column exists in a row
func AssertColumnExists(t *testing.T, row data.Row, column, context string) {
	t.Helper()
	if _, exists := row.Data[column]; !exists {
		t.Errorf("%s: expected column '%s' to exist", context, column)
	}
}

// AssertColumnNotExists checks if a column does not exist in a row
func AssertColumnNotExists(t *testing.T, row data.Row, column, context string) {
	t.Helper()
	if _, exists := row.Data[column]; exists {
		t.Errorf("%s: did not expect column '%s' to exist", context, column)
	}
}

// AssertSameShape checks that two tables have the same columns, in order,
// and the same number of rows with the same keys per row
func AssertSameShape(t *testing.T, want, got *schema.Table, context string) {
	t.Helper()
	AssertRowCount(t, len(got.Rows), len(want.Rows), context)

	wantCols, gotCols := want.ColumnNames(), got.ColumnNames()
	if len(wantCols) != len(gotCols) {
		t.Errorf("%s: expected columns %v, got %v", context, wantCols, gotCols)
		return
	}
	for i := range wantCols {
		if wantCols[i] != gotCols[i] {
			t.Errorf("%s: expected columns %v, got %v", context, wantCols, gotCols)
			return
		}
	}

	for i := 0; i < len(want.Rows) && i < len(got.Rows); i++ {
		AssertColumnCount(t, len(got.Rows[i].Data), len(want.Rows[i].Data), context)
		for col := range want.Rows[i].Data {
			AssertColumnExists(t, got.Rows[i], col, context)
		}
	}
}

// AssertNullValue checks if a value is nil
func AssertNullValue(t *testing.T, value interface{}, context string) {
	t.Helper()
	if value != nil {
		t.Errorf("%s: expected NULL value, got: %v", context, value)
	}
}
