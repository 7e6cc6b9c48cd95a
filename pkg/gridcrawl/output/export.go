// Package output reshapes detected grids and serializes them to JSON.
package output

import (
	"strconv"

	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Positional holds cell values indexed by grid, row and cell. Index 0 is
// the first grid (row, cell) in discovery order.
type Positional [][][]interface{}

// ToPositional renumbers grids and rows in discovery order and keeps only
// the cell values.
func ToPositional(grids []models.Grid) Positional {
	out := make(Positional, 0, len(grids))
	for _, g := range grids {
		rows := make([][]interface{}, 0, len(g.Rows))
		for _, r := range g.Rows {
			cells := make([]interface{}, 0, len(r.Cells))
			for _, c := range r.Cells {
				cells = append(cells, c.Value)
			}
			rows = append(rows, cells)
		}
		out = append(out, rows)
	}
	return out
}

// Keyed is an ordered string-keyed view of the grids:
// "table_<n>" -> "row_<m>" -> "cell_<k>" -> value, all 1-based. Tables,
// rows and cells are nested Keyed maps and marshal in insertion order.
type Keyed = orderedmap.OrderedMap[string, interface{}]

// ToKeyed builds the keyed view of grids.
func ToKeyed(grids []models.Grid) *Keyed {
	tables := orderedmap.New[string, interface{}]()
	for gi, g := range grids {
		rows := orderedmap.New[string, interface{}]()
		for ri, r := range g.Rows {
			cells := orderedmap.New[string, interface{}]()
			for ci, c := range r.Cells {
				cells.Set("cell_"+strconv.Itoa(ci+1), c.Value)
			}
			rows.Set("row_"+strconv.Itoa(ri+1), cells)
		}
		tables.Set("table_"+strconv.Itoa(gi+1), rows)
	}
	return tables
}
