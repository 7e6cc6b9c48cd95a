package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"raw", "positional", "keyed", "summary"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestRenderWorkbook(t *testing.T) {
	grids := detect(t, twoTables)
	wb := &models.WorkbookGrids{
		BookName: "book.xlsx",
		Sheets:   map[string]models.SheetGrids{"S": {Grids: grids}},
	}

	view, err := RenderWorkbook(wb, FormatPositional)
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", view.BookName)
	assert.Equal(t, ToPositional(grids), view.Sheets["S"])

	view, err = RenderWorkbook(wb, FormatSummary)
	require.NoError(t, err)
	assert.Len(t, view.Sheets["S"], 2)

	view, err = RenderWorkbook(wb, FormatKeyed)
	require.NoError(t, err)
	data, err := ToJSON(view, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"S":{"table_1":{"row_1":{"cell_1":""`)

	raw, err := Render(&models.SheetGrids{Grids: grids}, FormatRaw)
	require.NoError(t, err)
	assert.Equal(t, grids, raw.(*models.SheetGrids).Grids)

	_, err = RenderWorkbook(wb, Format("xml"))
	assert.Error(t, err)
}
