// Package catalog supplies the furniture list the layout engine chooses from.
package catalog

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"roomplanner/models"
	"roomplanner/utils"
)

// Provider lists furniture in a stable order. Callers must not modify the
// returned slice.
type Provider interface {
	List(ctx context.Context) ([]models.FurnitureItem, error)
}

// Static serves a fixed in-memory list.
type Static struct {
	items []models.FurnitureItem
}

func NewStatic(items []models.FurnitureItem) *Static {
	return &Static{items: append([]models.FurnitureItem(nil), items...)}
}

func (s *Static) List(ctx context.Context) ([]models.FurnitureItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.FurnitureItem(nil), s.items...), nil
}

// Default returns the built-in catalog.
func Default() *Static {
	return NewStatic(builtin)
}

// FromExcel loads a spreadsheet once and serves it from memory. Skipped
// rows are logged as warnings.
func FromExcel(path string, logger *log.Logger) (*Static, error) {
	items, warnings, err := utils.ReadCatalogExcel(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	for _, w := range warnings {
		logger.Warn("catalog row skipped", "file", path, "detail", w)
	}
	logger.Info("catalog loaded", "file", path, "items", len(items))
	return NewStatic(items), nil
}

// Open returns the spreadsheet catalog at path, or the built-in one when path
// is empty.
func Open(path string, logger *log.Logger) (Provider, error) {
	if path == "" {
		return Default(), nil
	}
	return FromExcel(path, logger)
}

var builtin = []models.FurnitureItem{
	{Name: "Modern Sofa", Category: models.CategorySofa, Width: 2.0, Depth: 0.9, Price: 800},
	{Name: "Compact Loveseat", Category: models.CategorySofa, Width: 1.6, Depth: 0.85, Price: 550},
	{Name: "Wooden Coffee Table", Category: models.CategoryCoffee, Width: 1.0, Depth: 0.5, Price: 200},
	{Name: "Glass Coffee Table", Category: models.CategoryCoffee, Width: 1.2, Depth: 0.6, Price: 320},
	{Name: "TV Stand", Category: models.CategoryTVStand, Width: 1.5, Depth: 0.4, Price: 300},
	{Name: "Tall Bookshelf", Category: models.CategoryBookshelf, Width: 0.8, Depth: 0.3, Price: 250},
	{Name: "Side Table", Category: models.CategorySideTable, Width: 0.5, Depth: 0.5, Price: 100},
	{Name: "Armchair", Category: models.CategoryArmchair, Width: 0.8, Depth: 0.8, Price: 400},
}
