package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	input := "Name,Comment\nalice,great\nbob,\n"
	tab, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Comment"}, tab.Columns())
	assert.Equal(t, 2, tab.Len())

	v, ok := tab.Cell(0, "Comment")
	assert.True(t, ok)
	assert.Equal(t, "great", v)
}

func TestLoadCSVEmptyInput(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadCSVRaggedRows(t *testing.T) {
	input := "A,B,C\nx\ny,z\n"
	tab, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)

	_, ok := tab.Cell(0, "B")
	assert.False(t, ok, "short row cells are missing")
	v, ok := tab.Cell(1, "B")
	assert.True(t, ok)
	assert.Equal(t, "z", v)
}

func TestCellMissingSemantics(t *testing.T) {
	tab := New([]string{"D"}, [][]string{{"text"}, {""}, {"  "}})

	tests := []struct {
		name    string
		row     int
		col     string
		want    string
		present bool
	}{
		{"present value", 0, "D", "text", true},
		{"empty cell missing", 1, "D", "", false},
		{"whitespace-only cell missing", 2, "D", "", false},
		{"row out of range", 9, "D", "", false},
		{"negative row", -1, "D", "", false},
		{"unknown column", 0, "Nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tab.Cell(tt.row, tt.col)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestCellTrimsSurroundingWhitespace(t *testing.T) {
	tab := New([]string{"D"}, [][]string{{"  padded value  "}})
	v, ok := tab.Cell(0, "D")
	assert.True(t, ok)
	assert.Equal(t, "padded value", v)
}

func TestRenameColumns(t *testing.T) {
	tab := New([]string{"What did you think of image 1?", "Pick adjectives"}, [][]string{{"nice", "bold"}})

	require.NoError(t, tab.RenameColumns([]string{"Description_1", "Adjectives_1"}))
	assert.Equal(t, []string{"Description_1", "Adjectives_1"}, tab.Columns())

	v, ok := tab.Cell(0, "Description_1")
	assert.True(t, ok)
	assert.Equal(t, "nice", v)

	_, ok = tab.Cell(0, "What did you think of image 1?")
	assert.False(t, ok, "old name no longer resolves")
}

func TestRenameColumnsCountMismatch(t *testing.T) {
	tab := New([]string{"A", "B"}, nil)
	assert.Error(t, tab.RenameColumns([]string{"OnlyOne"}))
}
