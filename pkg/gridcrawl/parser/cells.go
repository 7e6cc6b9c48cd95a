// Package parser provides the sheet readers consumed by the grid detector.
package parser

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// SheetSource is a CellSource over one worksheet of an xlsx file.
// The sheet is read once when the source is created.
type SheetSource struct {
	name string
	rows [][]string
}

// NewSheetSource reads sheetName from f.
func NewSheetSource(f *excelize.File, sheetName string) (*SheetSource, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return &SheetSource{name: sheetName, rows: rows}, nil
}

// Name returns the worksheet name.
func (s *SheetSource) Name() string {
	return s.name
}

// HighestRow returns the last row holding any cell.
func (s *SheetSource) HighestRow() (int, error) {
	return len(s.rows), nil
}

// HighestColumn returns the label of the rightmost non-empty cell in row,
// or "" when the row is blank.
func (s *SheetSource) HighestColumn(row int) (string, error) {
	if row < 1 || row > len(s.rows) {
		return "", nil
	}
	cells := s.rows[row-1]
	last := len(cells)
	for last > 0 && cells[last-1] == "" {
		last--
	}
	if last == 0 {
		return "", nil
	}
	return excelize.ColumnNumberToName(last)
}

// CellValue returns the typed value of a cell, or nil if it is empty.
func (s *SheetSource) CellValue(column string, row int) (interface{}, error) {
	col, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return nil, fmt.Errorf("cell %s%d: %w", column, row, err)
	}
	if row < 1 || row > len(s.rows) || col > len(s.rows[row-1]) {
		return nil, nil
	}
	raw := s.rows[row-1][col-1]
	if raw == "" {
		return nil, nil
	}
	return parseValue(raw), nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
