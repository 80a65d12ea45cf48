package utils

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"roomplanner/models"
)

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExtractSize(t *testing.T) {
	tests := []struct {
		text         string
		width, depth float64
		ok           bool
	}{
		{"2.0x0.9", 2.0, 0.9, true},
		{"2 x 0.9m", 2, 0.9, true},
		{"1.5×0.4", 1.5, 0.4, true},
		{"1*0.5", 1, 0.5, true},
		{"0.8-0.4", 0.8, 0.4, true},
		{"large", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			w, d, ok := extractSize(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.width, w, 1e-9)
			assert.InDelta(t, tt.depth, d, 1e-9)
		})
	}
}

func TestReadCatalogExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Category", "Width", "Depth", "Price"},
		{"Oslo Sofa", "Sofa", 2.0, 0.9, 800},
		{"Oak Coffee Table", "coffee", 1.0, 0.5, "$200"},
	})

	items, warnings, err := ReadCatalogExcel(path)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []models.FurnitureItem{
		{Name: "Oslo Sofa", Category: "sofa", Width: 2.0, Depth: 0.9, Price: 800},
		{Name: "Oak Coffee Table", Category: "coffee", Width: 1.0, Depth: 0.5, Price: 200},
	}, items)
}

func TestReadCatalogExcel_SizeColumn(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Item", "Type", "Size", "Cost"},
		{"Low TV Stand", "tvstand", "1.5x0.4", 300},
	})

	items, _, err := ReadCatalogExcel(path)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.InDelta(t, 1.5, items[0].Width, 1e-9)
	assert.InDelta(t, 0.4, items[0].Depth, 1e-9)
	assert.Equal(t, 300, items[0].Price)
}

func TestReadCatalogExcel_SkipsBadRows(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Category", "Width", "Depth", "Price"},
		{"Mystery", "", 1, 1, 10},
		{"Flat Shelf", "bookshelf", "wide", 0.3, 100},
		{"Free Chair", "armchair", 0.8, 0.8, "n/a"},
		{"Good Chair", "armchair", 0.8, 0.8, 450},
	})

	items, warnings, err := ReadCatalogExcel(path)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Good Chair", items[0].Name)
	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "Row 2")
}

func TestReadCatalogExcel_MissingColumns(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Width", "Depth"},
		{"Oslo Sofa", 2.0, 0.9},
	})

	_, _, err := ReadCatalogExcel(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "price")
}

func TestReadCatalogExcel_MissingFile(t *testing.T) {
	_, _, err := ReadCatalogExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestWriteLayoutExcel(t *testing.T) {
	result := models.LayoutResult{
		Room: models.RoomSpec{Length: 6, Width: 4, Budget: 3000},
		Placed: []models.PlacedItem{
			{FurnitureItem: models.FurnitureItem{Name: "Oslo Sofa", Category: "sofa", Width: 2, Depth: 0.9, Price: 800}, X: 2, Y: 0.5},
		},
		TotalCost:       800,
		RemainingBudget: 2200,
		Warnings:        []string{"No coffee table found in furniture catalog."},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLayoutExcel(&buf, result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(layoutSheet)
	require.NoError(t, err)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Oslo Sofa", rows[1][0])
	assert.Equal(t, "sofa", rows[1][1])
	assert.Equal(t, []string{"Total cost", "800"}, rows[6])
	assert.Equal(t, []string{"Remaining budget", "2200"}, rows[7])

	warnings, err := f.GetRows(warningsSheet)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, "No coffee table found in furniture catalog.", warnings[1][0])
}
