package models

// WorkbookGrids represents workbook-level container with per-sheet grids.
type WorkbookGrids struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to SheetGrids.
	Sheets map[string]SheetGrids `json:"sheets"`
	// SheetOrder lists the crawled sheet names in workbook order.
	SheetOrder []string `json:"sheet_order"`
}
