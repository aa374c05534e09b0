package csvsniff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffProfilesColumns(t *testing.T) {
	csv := strings.Join([]string{
		"date,region,revenue",
		"2024-01-05,North,1200.50",
		"2024-01-06,South,900",
		"2024-01-07,East,1534.25",
	}, "\n")

	preview, err := Sniff(csv)
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "region", "revenue"}, preview.Headers)
	assert.Equal(t, 3, preview.RowCount)
	require.Len(t, preview.Columns, 3)

	assert.Equal(t, TypeDateTime, preview.Columns[0].Type)
	assert.Equal(t, TypeCategorical, preview.Columns[1].Type)
	assert.Equal(t, TypeNumerical, preview.Columns[2].Type)

	assert.Equal(t, []string{"North", "South", "East"}, preview.Columns[1].Samples)
}

func TestSniffMixedColumnIsCategorical(t *testing.T) {
	csv := "code\n100\nA-200\n300\n"
	preview, err := Sniff(csv)
	require.NoError(t, err)
	assert.Equal(t, TypeCategorical, preview.Columns[0].Type)
}

func TestSniffLimitsSamples(t *testing.T) {
	var rows []string
	rows = append(rows, "n")
	for i := 0; i < 20; i++ {
		rows = append(rows, "1")
	}
	preview, err := Sniff(strings.Join(rows, "\n"))
	require.NoError(t, err)

	assert.Len(t, preview.SampleRows, 5)
	assert.Equal(t, 20, preview.RowCount)
	assert.Len(t, preview.Columns[0].Samples, 3)
}

func TestSniffEmptyColumnIsCategorical(t *testing.T) {
	csv := "a,b\n1,\n2,\n"
	preview, err := Sniff(csv)
	require.NoError(t, err)
	assert.Equal(t, TypeNumerical, preview.Columns[0].Type)
	assert.Equal(t, TypeCategorical, preview.Columns[1].Type)
	assert.Empty(t, preview.Columns[1].Samples)
}

func TestSniffEmptyInput(t *testing.T) {
	_, err := Sniff("")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Sniff("\n\n")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSniffRaggedRows(t *testing.T) {
	csv := "a,b\n1,2\n3\n"
	preview, err := Sniff(csv)
	require.NoError(t, err)
	assert.Equal(t, TypeNumerical, preview.Columns[0].Type)
	assert.Equal(t, []string{"2"}, preview.Columns[1].Samples)
}
