package output

import (
	"fmt"

	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
)

// Format selects the view written for each sheet.
type Format string

const (
	// FormatRaw writes every grid with full cell detail.
	FormatRaw Format = "raw"
	// FormatPositional writes nested arrays of values.
	FormatPositional Format = "positional"
	// FormatKeyed writes table_/row_/cell_ keyed objects.
	FormatKeyed Format = "keyed"
	// FormatSummary writes the range and density of each grid.
	FormatSummary Format = "summary"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatRaw, FormatPositional, FormatKeyed, FormatSummary:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be raw, positional, keyed, or summary)", s)
	}
}

// Render returns the view of one sheet in the given format.
func Render(sheet *models.SheetGrids, format Format) (interface{}, error) {
	switch format {
	case FormatRaw:
		return sheet, nil
	case FormatPositional:
		return ToPositional(sheet.Grids), nil
	case FormatKeyed:
		return ToKeyed(sheet.Grids), nil
	case FormatSummary:
		return Summarize(sheet.Grids), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

// WorkbookView is the serialized form of a workbook in one format.
type WorkbookView struct {
	BookName string                 `json:"book_name"`
	Format   Format                 `json:"format"`
	Sheets   map[string]interface{} `json:"sheets"`
}

// RenderWorkbook renders every sheet of wb.
func RenderWorkbook(wb *models.WorkbookGrids, format Format) (*WorkbookView, error) {
	view := &WorkbookView{
		BookName: wb.BookName,
		Format:   format,
		Sheets:   make(map[string]interface{}, len(wb.Sheets)),
	}
	for name, sheet := range wb.Sheets {
		sheet := sheet
		v, err := Render(&sheet, format)
		if err != nil {
			return nil, err
		}
		view.Sheets[name] = v
	}
	return view, nil
}
