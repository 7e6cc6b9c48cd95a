package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaError reports a print area whose reference could not be parsed,
// such as a range deleted from the sheet ("Sheet1!#REF!").
type PrintAreaError struct {
	Sheet    string
	RefersTo string
}

func (e *PrintAreaError) Error() string {
	return fmt.Sprintf("sheet %s: invalid print area reference %q", e.Sheet, e.RefersTo)
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas. A print area
// defined with a range list yields one entry per range. References that
// cannot be parsed are skipped and reported as joined *PrintAreaError
// values alongside the areas that were read.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.PrintArea, error) {
	result := make(map[string][]models.PrintArea)
	var errs []error

	for _, dn := range f.GetDefinedName() {
		if !isPrintAreaName(dn.Name) {
			continue
		}

		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" || len(areas) == 0 {
			sheet := dn.Scope
			if sheet == "" || sheet == "Workbook" {
				sheet = sheetName
			}
			errs = append(errs, &PrintAreaError{Sheet: sheet, RefersTo: dn.RefersTo})
			continue
		}
		result[sheetName] = append(result[sheetName], areas...)
	}

	return result, errors.Join(errs...)
}

// isPrintAreaName matches the built-in print area name with or without
// the _xlnm prefix.
func isPrintAreaName(name string) bool {
	return strings.EqualFold(name, "_xlnm.Print_Area") || strings.EqualFold(name, "Print_Area")
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea

	// Split by comma for multiple print areas
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Split by ! to separate sheet name and range
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := part[:idx]
			rangeStr := part[idx+1:]

			// Remove quotes from sheet name
			sheet = strings.Trim(sheet, "'")
			if sheetName == "" {
				sheetName = sheet
			}

			// Parse the range
			if area := parseRangeToArea(rangeStr); area != nil {
				areas = append(areas, *area)
			}
		}
	}

	return sheetName, areas
}

// ParseRange parses a range such as "A1:D10" or "$A$1:$D$10". A single
// cell name yields a one-cell area.
func ParseRange(rangeStr string) (models.PrintArea, error) {
	rangeStr = strings.TrimSpace(rangeStr)
	if !strings.Contains(rangeStr, ":") {
		rangeStr = rangeStr + ":" + rangeStr
	}
	area := parseRangeToArea(rangeStr)
	if area == nil {
		return models.PrintArea{}, fmt.Errorf("invalid range: %q", rangeStr)
	}
	if area.R1 > area.R2 {
		area.R1, area.R2 = area.R2, area.R1
	}
	if area.C1 > area.C2 {
		area.C1, area.C2 = area.C2, area.C1
	}
	return *area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
