package catalog

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"roomplanner/layout"
	"roomplanner/models"
)

func TestDefault_CoversEveryCategory(t *testing.T) {
	items, err := Default().List(context.Background())
	require.NoError(t, err)

	for _, category := range layout.Categories() {
		_, ok := layout.FindByCategory(items, category)
		assert.True(t, ok, "no %s in built-in catalog", category)
	}
}

func TestStatic_ListReturnsCopy(t *testing.T) {
	s := NewStatic([]models.FurnitureItem{{Name: "Sofa", Category: "sofa"}})

	items, err := s.List(context.Background())
	require.NoError(t, err)
	items[0].Name = "changed"

	again, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sofa", again[0].Name)
}

func TestStatic_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Default().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Name", "Category", "Width", "Depth", "Price"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Oslo Sofa", "sofa", 2.0, 0.9, 800}))
	require.NoError(t, f.SaveAs(path))

	p, err := Open(path, log.New(io.Discard))
	require.NoError(t, err)

	items, err := p.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Oslo Sofa", items[0].Name)
}

func TestOpen_EmptyPathUsesBuiltin(t *testing.T) {
	p, err := Open("", log.New(io.Discard))
	require.NoError(t, err)

	items, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(builtin))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"), log.New(io.Discard))
	assert.Error(t, err)
}
