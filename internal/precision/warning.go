package precision

import "fmt"

// Warning reports a row whose value in the target column was left unchanged
// because it could not be read as a number.
type Warning struct {
	Row    int // 0-based row index
	Column string
	Value  interface{}
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: column '%s' value %v: %s", w.Row, w.Column, w.Value, w.Reason)
}
