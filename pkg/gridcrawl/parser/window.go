package parser

import (
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	"github.com/xuri/excelize/v2"
)

// cellSource matches detector.CellSource.
type cellSource interface {
	HighestRow() (int, error)
	HighestColumn(row int) (string, error)
	CellValue(column string, row int) (interface{}, error)
}

// WindowSource restricts a CellSource to a rectangular area. Cells outside
// the area read as empty; addresses keep their sheet coordinates.
type WindowSource struct {
	inner cellSource
	area  models.PrintArea
}

// NewWindowSource wraps inner so only cells inside area are visible.
func NewWindowSource(inner cellSource, area models.PrintArea) *WindowSource {
	return &WindowSource{inner: inner, area: area}
}

// HighestRow returns the inner highest row capped at the area's last row.
func (w *WindowSource) HighestRow() (int, error) {
	n, err := w.inner.HighestRow()
	if err != nil {
		return 0, err
	}
	if n > w.area.R2 {
		n = w.area.R2
	}
	return n, nil
}

// HighestColumn returns the inner highest column capped at the area's last
// column. Rows outside the area are blank.
func (w *WindowSource) HighestColumn(row int) (string, error) {
	if row < w.area.R1 || row > w.area.R2 {
		return "", nil
	}
	label, err := w.inner.HighestColumn(row)
	if err != nil || label == "" {
		return label, err
	}
	col, err := excelize.ColumnNameToNumber(label)
	if err != nil {
		return "", err
	}
	if col < w.area.C1 {
		return "", nil
	}
	if col > w.area.C2 {
		col = w.area.C2
	}
	return excelize.ColumnNumberToName(col)
}

// CellValue returns the inner value for cells inside the area and nil
// otherwise.
func (w *WindowSource) CellValue(column string, row int) (interface{}, error) {
	col, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return nil, err
	}
	if !w.area.Contains(col, row) {
		return nil, nil
	}
	return w.inner.CellValue(column, row)
}
