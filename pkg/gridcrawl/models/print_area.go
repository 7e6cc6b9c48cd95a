package models

// PrintArea represents cell coordinate bounds for a print area or a
// user-supplied range.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether the 1-based column and row fall inside the area.
func (p PrintArea) Contains(col, row int) bool {
	return row >= p.R1 && row <= p.R2 && col >= p.C1 && col <= p.C2
}
