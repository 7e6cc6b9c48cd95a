package output

import (
	"fmt"

	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	"github.com/xuri/excelize/v2"
)

// GridSummary describes the footprint of one detected grid.
type GridSummary struct {
	// Table is the 1-based position of the grid in discovery order.
	Table int `json:"table"`
	// Origin is the grid's anchor cell.
	Origin string `json:"origin"`
	// Range is the bounding box of the grid, e.g. "A1:D10".
	Range string `json:"range"`
	// Rows is the number of sheet rows the grid spans.
	Rows int `json:"rows"`
	// Cells is the number of non-placeholder cells.
	Cells int `json:"cells"`
	// Density is Cells divided by the bounding box area.
	Density float64 `json:"density"`
}

// Summarize computes the bounding range and fill density of each grid.
func Summarize(grids []models.Grid) []GridSummary {
	out := make([]GridSummary, 0, len(grids))
	for i, g := range grids {
		minRow, maxRow, minCol, maxCol := findDataBounds(g)
		if minRow < 0 {
			continue
		}

		cells := countNonEmptyCells(g)
		total := (maxRow - minRow + 1) * (maxCol - minCol + 1)

		// Convert to Excel range notation
		startCell, _ := excelize.CoordinatesToCellName(minCol, minRow)
		endCell, _ := excelize.CoordinatesToCellName(maxCol, maxRow)

		out = append(out, GridSummary{
			Table:   i + 1,
			Origin:  g.Origin.String(),
			Range:   fmt.Sprintf("%s:%s", startCell, endCell),
			Rows:    maxRow - minRow + 1,
			Cells:   cells,
			Density: float64(cells) / float64(total),
		})
	}
	return out
}

// findDataBounds finds the 1-based bounding box of a grid's records.
func findDataBounds(g models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			col, err := excelize.ColumnNameToNumber(cell.Column)
			if err != nil {
				continue
			}
			if minRow < 0 || cell.Row < minRow {
				minRow = cell.Row
			}
			if maxRow < 0 || cell.Row > maxRow {
				maxRow = cell.Row
			}
			if minCol < 0 || col < minCol {
				minCol = col
			}
			if maxCol < 0 || col > maxCol {
				maxCol = col
			}
		}
	}

	return
}

// countNonEmptyCells counts records that are not migration placeholders.
func countNonEmptyCells(g models.Grid) int {
	count := 0
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			if !cell.Synthetic {
				count++
			}
		}
	}
	return count
}
