package storage

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/leengari/numsanitize/internal/domain/errors"
	"github.com/leengari/numsanitize/internal/testutil"
)

func TestDecodeJSON(t *testing.T) {
	content := `[
		{"id": 1, "lat": 51.50735, "tags": ["a", "b"], "meta": {"z": 1, "a": 2}},
		{"lat": null, "id": 2, "extra": "x"},
		{"id": 3, "lat": "n/a", "ok": true}
	]`

	table, err := Decode([]byte(content), "points.json", FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "lat", "tags", "meta", "extra", "ok"}, table.ColumnNames())
	testutil.AssertRowCount(t, len(table.Rows), 3, "json rows")

	assert.Equal(t, json.Number("51.50735"), table.Rows[0].Data["lat"])
	assert.Equal(t, json.RawMessage(`["a","b"]`), table.Rows[0].Data["tags"])
	assert.Equal(t, json.RawMessage(`{"z":1,"a":2}`), table.Rows[0].Data["meta"])
	testutil.AssertNullValue(t, table.Rows[1].Data["lat"], "null lat")
	testutil.AssertColumnNotExists(t, table.Rows[1], "tags", "second row")
	assert.Equal(t, true, table.Rows[2].Data["ok"])
}

func TestDecodeJSONWithCommentsAndTrailingCommas(t *testing.T) {
	content := `[
		// exported by hand
		{"id": 1, "v": 2.5,},
		/* second */ {"id": 2, "v": 3},
	]`

	table, err := Decode([]byte(content), "c.json", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{json.Number("2.5"), json.Number("3")}, testutil.ColumnValues(table, "v"))
}

func TestDecodeJSONEmptyArray(t *testing.T) {
	table, err := Decode([]byte("[]"), "e.json", FormatJSON)
	require.NoError(t, err)

	assert.Empty(t, table.Rows)
	assert.Empty(t, table.ColumnNames())
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
	}{
		{"empty document", "", 0},
		{"object instead of array", `{"id": 1}`, 0},
		{"scalar element", `[{"id": 1}, 2]`, 2},
		{"truncated", `[{"id": 1}`, 0},
		{"trailing data", `[{"id": 1}] [2]`, 0},
		{"bad value", `[{"id": tru}]`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.content), "bad.json", FormatJSON)

			var parseErr *domainerrors.ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	table := testutil.CreateTestTable("out",
		[]string{"id", "amount", "note", "meta"},
		[]interface{}{int64(1), 1.01, "<b>", json.RawMessage(`{"k":1}`)},
		[]interface{}{json.Number("2"), nil, testutil.Missing, testutil.Missing},
	)

	content, err := Encode(table, FormatJSON)
	require.NoError(t, err)

	want := `[
    {
        "id": 1,
        "amount": 1.01,
        "note": "<b>",
        "meta": {"k":1}
    },
    {
        "id": 2,
        "amount": null
    }
]
`
	assert.Equal(t, want, string(content))
}

func TestEncodeJSONEdgeCases(t *testing.T) {
	empty, err := Encode(testutil.CreateTestTable("e", []string{"a"}), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))

	blankRow := testutil.CreateTestTable("b", []string{"a"}, []interface{}{testutil.Missing})
	content, err := Encode(blankRow, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[\n    {}\n]\n", string(content))
}

func TestJSONRoundTripPreservesOrderAndNumbers(t *testing.T) {
	content := `[
    {
        "b": 1.10,
        "a": 12345678901234567890,
        "c": "x"
    }
]
`
	table, err := Decode([]byte(content), "in.json", FormatJSON)
	require.NoError(t, err)

	out, err := Encode(table, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, content, string(out))
}
