package models

// GridRow is one sheet row of a grid.
type GridRow struct {
	// Number is the sheet row number (not renumbered).
	Number int `json:"row"`
	// Cells holds the row's records in ascending column order.
	Cells []CellRecord `json:"cells"`
}

// Grid is a detected cluster of cells treated as one table.
type Grid struct {
	// ID is the sequential id assigned at discovery (1-based).
	ID int `json:"id"`
	// Origin is the anchor address of the grid.
	Origin Address `json:"origin"`
	// Rows holds the grid's rows ordered by row number.
	Rows []GridRow `json:"rows"`
}

// CellCount returns the number of records in the grid, placeholders included.
func (g *Grid) CellCount() int {
	n := 0
	for _, r := range g.Rows {
		n += len(r.Cells)
	}
	return n
}

// Row returns the row with the given sheet row number.
func (g *Grid) Row(number int) (*GridRow, bool) {
	for i := range g.Rows {
		if g.Rows[i].Number == number {
			return &g.Rows[i], true
		}
	}
	return nil, false
}

// Contains reports whether the grid holds a record at addr.
func (g *Grid) Contains(addr Address) bool {
	row, ok := g.Row(addr.Row)
	if !ok {
		return false
	}
	name := addr.String()
	for _, c := range row.Cells {
		if c.Address == name {
			return true
		}
	}
	return false
}

// CrawlStats summarizes the events of one crawl.
type CrawlStats struct {
	// Grids is the number of grids detected.
	Grids int `json:"grids"`
	// Cells is the number of records filed, placeholders included.
	Cells int `json:"cells"`
	// Migrations counts stair-step header migrations.
	Migrations int `json:"migrations"`
	// IndexFallbacks counts vertical lookups that missed the origins index.
	IndexFallbacks int `json:"index_fallbacks"`
	// ReadErrors counts cell reads that failed and were treated as empty.
	ReadErrors int `json:"read_errors"`
	// UnresolvedStaggers lists cells where a deeper stair-step was seen
	// but not resolved.
	UnresolvedStaggers []string `json:"unresolved_staggers,omitempty"`
}
