package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.PrintArea
		wantErr  bool
	}{
		{"A1:D10", models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"$B$2:$C$3", models.PrintArea{R1: 2, C1: 2, R2: 3, C2: 3}, false},
		{"D10:A1", models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"C5", models.PrintArea{R1: 5, C1: 3, R2: 5, C2: 3}, false},
		{"A1:B2:C3", models.PrintArea{}, true},
		{"nope", models.PrintArea{}, true},
	}

	for _, tt := range tests {
		area, err := ParseRange(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, area, tt.input)
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	sheet, areas := parsePrintAreaReference("'My Sheet'!$A$1:$B$4,'My Sheet'!$D$1:$E$2")
	assert.Equal(t, "My Sheet", sheet)
	assert.Equal(t, []models.PrintArea{
		{R1: 1, C1: 1, R2: 4, C2: 2},
		{R1: 1, C1: 4, R2: 2, C2: 5},
	}, areas)
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$5",
		Scope:    "Sheet1",
	}))

	areas, err := ExtractPrintAreas(f)
	require.NoError(t, err)
	assert.Equal(t, []models.PrintArea{{R1: 1, C1: 1, R2: 5, C2: 3}}, areas["Sheet1"])
}

func TestExtractPrintAreasInvalidReference(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Sheet2")
	require.NoError(t, err)
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!#REF!",
		Scope:    "Sheet1",
	}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet2!$B$2:$C$3",
		Scope:    "Sheet2",
	}))

	areas, err := ExtractPrintAreas(f)
	require.Error(t, err)

	var areaErr *PrintAreaError
	require.True(t, errors.As(err, &areaErr))
	assert.Equal(t, "Sheet1", areaErr.Sheet)
	assert.Equal(t, "Sheet1!#REF!", areaErr.RefersTo)
	assert.Contains(t, err.Error(), `invalid print area reference "Sheet1!#REF!"`)

	assert.Empty(t, areas["Sheet1"])
	assert.Equal(t, []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}}, areas["Sheet2"])
}
