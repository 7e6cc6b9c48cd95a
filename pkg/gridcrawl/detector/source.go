package detector

// CellSource is the read-only view of a sheet consumed by the Detector.
type CellSource interface {
	// HighestRow returns the highest row index holding data.
	HighestRow() (int, error)
	// HighestColumn returns the label of the rightmost populated column of
	// row. An empty label means the row is blank.
	HighestColumn(row int) (string, error)
	// CellValue returns the value at column and row, or nil when the cell
	// is empty. The Detector treats a returned error as an empty cell.
	CellValue(column string, row int) (interface{}, error)
}
