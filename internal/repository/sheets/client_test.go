package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValues(t *testing.T) {
	values := [][]interface{}{
		{"id", "name", "origin", "registered_at"},
		{"v1", "Ana", "Springfield", "2024-01-10T08:00:00Z"},
		{"v2", "Luis"},
	}

	rows, err := decodeValues(CollectionVisitors, values)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0]["name"])
	assert.Equal(t, "Springfield", rows[0]["origin"])
	assert.Equal(t, "", rows[1]["origin"], "short rows are filled with empty cells")
}

func TestDecodeValues_DropsEmptyHeaders(t *testing.T) {
	values := [][]interface{}{
		{"id", "", "name"},
		{"v1", "stray", "Ana"},
	}

	rows, err := decodeValues(CollectionVisitors, values)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0]["name"])
	_, hasEmpty := rows[0][""]
	assert.False(t, hasEmpty, "columns with empty headers must be dropped")
}

func TestDecodeValues_MissingHeaderRow(t *testing.T) {
	_, err := decodeValues(CollectionVisitors, [][]interface{}{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestDecodeValues_NonStringCells(t *testing.T) {
	values := [][]interface{}{
		{"id", "name", "origin", "registered_at"},
		{1, "Ana", true, "2024-01-10T08:00:00Z"},
	}

	rows, err := decodeValues(CollectionVisitors, values)
	require.NoError(t, err)
	assert.Equal(t, "1", rows[0]["id"])
	assert.Equal(t, "true", rows[0]["origin"])
}

func TestPadValues(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", ""}, padValues([]string{"a", "b"}, 4))
	assert.Equal(t, []string{"a", "b"}, padValues([]string{"a", "b"}, 2))
	assert.Equal(t, []string{"a", "b"}, padValues([]string{"a", "b"}, 1))
}

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		1:  "A",
		4:  "D",
		7:  "G",
		26: "Z",
		27: "AA",
		52: "AZ",
	}
	for n, want := range cases {
		assert.Equal(t, want, columnLetter(n), "columnLetter(%d)", n)
	}
}
