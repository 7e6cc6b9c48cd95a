package parser

import (
	"fmt"

	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	"github.com/xuri/excelize/v2"
)

// MemorySource is a CellSource over an in-memory set of cells.
type MemorySource struct {
	cells      map[models.Address]interface{}
	lastColumn map[int]int
	highestRow int
}

// NewMemorySource builds a source from cell names ("B3") to values.
// Nil values are treated as empty.
func NewMemorySource(cells map[string]interface{}) (*MemorySource, error) {
	m := &MemorySource{
		cells:      make(map[models.Address]interface{}),
		lastColumn: make(map[int]int),
	}
	for name, value := range cells {
		addr, err := models.ParseAddress(name)
		if err != nil {
			return nil, fmt.Errorf("invalid cell name %q: %w", name, err)
		}
		m.set(addr, value)
	}
	return m, nil
}

// NewMemorySourceFromRows builds a source from a row-major slice where
// rows[0][0] is A1. Nil entries are empty cells.
func NewMemorySourceFromRows(rows [][]interface{}) *MemorySource {
	m := &MemorySource{
		cells:      make(map[models.Address]interface{}),
		lastColumn: make(map[int]int),
	}
	for r, row := range rows {
		for c, value := range row {
			name, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				continue
			}
			m.set(models.NewAddress(name, r+1), value)
		}
	}
	return m
}

func (m *MemorySource) set(addr models.Address, value interface{}) {
	if value == nil {
		return
	}
	m.cells[addr] = value
	if col := addr.ColumnIndex(); col > m.lastColumn[addr.Row] {
		m.lastColumn[addr.Row] = col
	}
	if addr.Row > m.highestRow {
		m.highestRow = addr.Row
	}
}

// HighestRow returns the highest populated row.
func (m *MemorySource) HighestRow() (int, error) {
	return m.highestRow, nil
}

// HighestColumn returns the rightmost populated column of row, or "".
func (m *MemorySource) HighestColumn(row int) (string, error) {
	col, ok := m.lastColumn[row]
	if !ok {
		return "", nil
	}
	return excelize.ColumnNumberToName(col)
}

// CellValue returns the value at column and row, or nil.
func (m *MemorySource) CellValue(column string, row int) (interface{}, error) {
	return m.cells[models.NewAddress(column, row)], nil
}
