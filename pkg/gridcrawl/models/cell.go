package models

// CellRecord is a single non-empty cell filed under a grid.
type CellRecord struct {
	// Column is the column label.
	Column string `json:"col"`
	// Row is the row index (1-based).
	Row int `json:"row"`
	// Address is the rendered cell name, e.g. "B3".
	Address string `json:"cell"`
	// Value is the cell value. Nil means the cell is empty.
	Value interface{} `json:"value"`
	// Synthetic marks the empty placeholder inserted by a header migration.
	Synthetic bool `json:"synthetic,omitempty"`
}

// NewCellRecord builds a record for the cell at addr.
func NewCellRecord(addr Address, value interface{}) CellRecord {
	return CellRecord{
		Column:  addr.Column,
		Row:     addr.Row,
		Address: addr.String(),
		Value:   value,
	}
}

// Placeholder builds the synthetic empty record used to square off a
// stair-step header row.
func Placeholder(addr Address) CellRecord {
	rec := NewCellRecord(addr, "")
	rec.Synthetic = true
	return rec
}
