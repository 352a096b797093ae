package data

// Row represents a single record of a table
// Key = column name, Value = cell value
type Row struct {
	Data map[string]interface{}
}

// NewRow creates a new Row with the given data
func NewRow(data map[string]interface{}) Row {
	if data == nil {
		data = make(map[string]interface{})
	}
	return Row{Data: data}
}

// Copy creates a shallow copy of the row so the caller's map is never mutated.
// Cell values are scalars or immutable raw JSON, so a shallow copy is enough.
func (r Row) Copy() Row {
	copy := make(map[string]interface{}, len(r.Data))
	for k, v := range r.Data {
		copy[k] = v
	}
	return Row{Data: copy}
}

// Get returns the value stored under column and whether the key is present
func (r Row) Get(column string) (interface{}, bool) {
	v, ok := r.Data[column]
	return v, ok
}

// Set stores value under column
func (r Row) Set(column string, value interface{}) {
	r.Data[column] = value
}
