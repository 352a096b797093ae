package schema

import (
	"github.com/leengari/numsanitize/internal/domain/data"
)

// TableSchema holds the ordered column list of a table
type TableSchema struct {
	TableName string
	Columns   []Column
}

// Table is an in-memory table: an ordered schema plus ordered rows.
// Path is the file the table was loaded from, if any.
type Table struct {
	Name   string
	Path   string
	Schema *TableSchema
	Rows   []data.Row
}

// NewTable creates an empty table with the given column names, in order
func NewTable(name string, columns ...string) *Table {
	t := &Table{
		Name:   name,
		Schema: &TableSchema{TableName: name},
		Rows:   []data.Row{},
	}
	for _, c := range columns {
		t.AddColumn(c)
	}
	return t
}

// AddColumn appends a column to the schema unless it already exists.
// Returns true when the column was added.
func (t *Table) AddColumn(name string) bool {
	if t.Schema == nil {
		t.Schema = &TableSchema{TableName: t.Name}
	}
	if t.HasColumn(name) {
		return false
	}
	t.Schema.Columns = append(t.Schema.Columns, Column{Name: name})
	return true
}

// HasColumn reports whether name is part of the table schema
func (t *Table) HasColumn(name string) bool {
	return t.GetColumn(name) != nil
}

// GetColumn returns the schema column called name, or nil
func (t *Table) GetColumn(name string) *Column {
	if t.Schema == nil {
		return nil
	}
	for i := range t.Schema.Columns {
		if t.Schema.Columns[i].Name == name {
			return &t.Schema.Columns[i]
		}
	}
	return nil
}

// ColumnNames returns the column names in schema order
func (t *Table) ColumnNames() []string {
	if t.Schema == nil {
		return nil
	}
	names := make([]string, len(t.Schema.Columns))
	for i, c := range t.Schema.Columns {
		names[i] = c.Name
	}
	return names
}

// Clone returns a copy of the table whose schema and rows can be changed
// without affecting t.
func (t *Table) Clone() *Table {
	clone := &Table{
		Name: t.Name,
		Path: t.Path,
		Rows: make([]data.Row, len(t.Rows)),
	}
	if t.Schema != nil {
		clone.Schema = &TableSchema{
			TableName: t.Schema.TableName,
			Columns:   append([]Column(nil), t.Schema.Columns...),
		}
	}
	for i, row := range t.Rows {
		clone.Rows[i] = row.Copy()
	}
	return clone
}
