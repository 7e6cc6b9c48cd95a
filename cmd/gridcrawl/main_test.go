package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]interface{}{
		"B1": "H1", "C1": "H2",
		"A2": 1, "B2": 2, "C2": 3,
		"E5": "lonely",
	}
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunKeyed(t *testing.T) {
	out, err := execute(t, writeTestWorkbook(t))
	require.NoError(t, err)

	var view struct {
		BookName string                                                  `json:"book_name"`
		Format   string                                                  `json:"format"`
		Sheets   map[string]map[string]map[string]map[string]interface{} `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))

	assert.Equal(t, "input.xlsx", view.BookName)
	assert.Equal(t, "keyed", view.Format)
	sheet := view.Sheets["Sheet1"]
	assert.Equal(t, "", sheet["table_1"]["row_1"]["cell_1"])
	assert.Equal(t, "H2", sheet["table_1"]["row_1"]["cell_3"])
	assert.Equal(t, float64(3), sheet["table_1"]["row_2"]["cell_3"])
	assert.Equal(t, "lonely", sheet["table_2"]["row_1"]["cell_1"])
}

func TestRunSummaryToFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.json")
	metricsPath := filepath.Join(dir, "metrics.prom")

	_, err := execute(t, writeTestWorkbook(t), "--format", "summary", "--pretty", "-o", outPath, "--metrics-file", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")

	var view struct {
		Sheets map[string][]struct {
			Range string `json:"range"`
		} `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal(data, &view))
	require.Len(t, view.Sheets["Sheet1"], 2)
	assert.Equal(t, "A1:C2", view.Sheets["Sheet1"][0].Range)
	assert.Equal(t, "E5:E5", view.Sheets["Sheet1"][1].Range)

	metricsText, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metricsText), "gridcrawl_grids_detected_total 2")
	assert.Contains(t, string(metricsText), "gridcrawl_header_migrations_total 1")
}

func TestRunSheetsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sheets")
	out, err := execute(t, writeTestWorkbook(t), "--format", "positional", "--sheets-dir", dir)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))

	data, err := os.ReadFile(filepath.Join(dir, "Sheet1.json"))
	require.NoError(t, err)

	var pos [][][]interface{}
	require.NoError(t, json.Unmarshal(data, &pos))
	require.Len(t, pos, 2)
	assert.Equal(t, []interface{}{"", "H1", "H2"}, pos[0][0])
}

func TestRunConfigFileAndFlagPrecedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "gridcrawl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: summary\n"), 0644))
	input := writeTestWorkbook(t)

	out, err := execute(t, input, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"format":"summary"`)

	out, err = execute(t, input, "--config", cfgPath, "--format", "raw")
	require.NoError(t, err)
	assert.Contains(t, out, `"format":"raw"`)
	assert.Contains(t, out, `"synthetic":true`)
}

func TestRunErrors(t *testing.T) {
	input := writeTestWorkbook(t)

	_, err := execute(t, input, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, input, "--stagger", "guess")
	assert.Error(t, err)

	_, err = execute(t, input, "--sheet", "Missing")
	assert.Error(t, err)

	_, err = execute(t, filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)

	_, err = execute(t)
	assert.Error(t, err)
}
