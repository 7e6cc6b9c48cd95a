// Package models defines data structures for grid detection.
package models

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Address identifies a cell by column label and 1-based row.
type Address struct {
	// Column is the column label (e.g. "B").
	Column string `json:"col"`
	// Row is the row index (1-based).
	Row int `json:"row"`
}

// NewAddress returns the address of column and row.
func NewAddress(column string, row int) Address {
	return Address{Column: column, Row: row}
}

// ParseAddress parses a cell name such as "B3".
func ParseAddress(name string) (Address, error) {
	col, row, err := excelize.SplitCellName(name)
	if err != nil {
		return Address{}, err
	}
	return Address{Column: col, Row: row}, nil
}

// String renders the address as "ColumnRow".
func (a Address) String() string {
	return a.Column + strconv.Itoa(a.Row)
}

// Above returns the address one row up.
func (a Address) Above() Address {
	return Address{Column: a.Column, Row: a.Row - 1}
}

// Right returns the address one column to the right.
// An unparseable column yields the zero Address.
func (a Address) Right() Address {
	n, err := excelize.ColumnNameToNumber(a.Column)
	if err != nil {
		return Address{}
	}
	next, err := excelize.ColumnNumberToName(n + 1)
	if err != nil {
		return Address{}
	}
	return Address{Column: next, Row: a.Row}
}

// ColumnIndex returns the 1-based column number, or 0 if the label is invalid.
func (a Address) ColumnIndex() int {
	n, err := excelize.ColumnNameToNumber(a.Column)
	if err != nil {
		return 0
	}
	return n
}
