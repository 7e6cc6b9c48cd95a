package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
)

func TestWindowSource(t *testing.T) {
	inner := NewMemorySourceFromRows([][]interface{}{
		{"a1", "b1", "c1", "d1"},
		{"a2", "b2", "c2", "d2"},
		{"a3", "b3", "c3", "d3"},
		{"a4"},
	})
	w := NewWindowSource(inner, models.PrintArea{R1: 2, C1: 2, R2: 3, C2: 3})

	highest, err := w.HighestRow()
	require.NoError(t, err)
	assert.Equal(t, 3, highest)

	col, err := w.HighestColumn(1)
	require.NoError(t, err)
	assert.Equal(t, "", col)

	col, err = w.HighestColumn(2)
	require.NoError(t, err)
	assert.Equal(t, "C", col)

	v, err := w.CellValue("B", 2)
	require.NoError(t, err)
	assert.Equal(t, "b2", v)

	v, err = w.CellValue("A", 2)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = w.CellValue("D", 3)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestWindowSourceRowLeftOfArea(t *testing.T) {
	inner := NewMemorySourceFromRows([][]interface{}{
		{"a1"},
		{"a2", "b2", "c2"},
	})
	w := NewWindowSource(inner, models.PrintArea{R1: 1, C1: 2, R2: 2, C2: 3})

	col, err := w.HighestColumn(1)
	require.NoError(t, err)
	assert.Equal(t, "", col)

	col, err = w.HighestColumn(2)
	require.NoError(t, err)
	assert.Equal(t, "C", col)
}

func TestMemorySource(t *testing.T) {
	src, err := NewMemorySource(map[string]interface{}{
		"B1": "h",
		"C3": 0,
		"A2": "",
		"D2": nil,
	})
	require.NoError(t, err)

	highest, _ := src.HighestRow()
	assert.Equal(t, 3, highest)

	col, _ := src.HighestColumn(2)
	assert.Equal(t, "A", col)
	col, _ = src.HighestColumn(4)
	assert.Equal(t, "", col)

	v, _ := src.CellValue("C", 3)
	assert.Equal(t, 0, v)
	v, _ = src.CellValue("A", 2)
	assert.Equal(t, "", v)
	v, _ = src.CellValue("D", 2)
	assert.Nil(t, v)

	_, err = NewMemorySource(map[string]interface{}{"1A": "x"})
	assert.Error(t, err)
}
