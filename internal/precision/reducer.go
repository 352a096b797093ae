package precision

import (
	"github.com/leengari/numsanitize/internal/domain/errors"
	"github.com/leengari/numsanitize/internal/domain/schema"
)

// Apply returns a copy of table in which every numeric value of column is
// rounded according to spec. Null and missing values are kept as they are.
// Values that are present but not numeric are kept as well and reported as
// warnings, in row order. table itself is never modified. The column's Type
// in the returned schema describes the rounded values.
//
// A column missing from the schema or an invalid spec fails the whole call
// and no table is returned.
func Apply(table *schema.Table, column string, spec Spec) (*schema.Table, []Warning, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}

	if table == nil || !table.HasColumn(column) {
		notFound := &errors.ColumnNotFoundError{ColumnName: column}
		if table != nil {
			notFound.TableName = table.Name
			notFound.Available = table.ColumnNames()
		}
		return nil, nil, notFound
	}

	out := table.Clone()
	var warnings []Warning

	for i, row := range out.Rows {
		value, exists := row.Get(column)
		if !exists || value == nil {
			continue
		}

		rounded, reason := Round(value, spec)
		if reason != "" {
			warnings = append(warnings, Warning{
				Row:    i,
				Column: column,
				Value:  value,
				Reason: reason,
			})
			continue
		}
		row.Set(column, rounded)
	}

	if col := out.GetColumn(column); col != nil {
		col.Type = schema.InferColumnType(out.Rows, column)
	}

	return out, warnings, nil
}
