// Package layout places furniture inside a rectangular room.
//
// The placement pass is deterministic: categories are visited in a fixed
// order, each one gets at most one candidate position (two for the armchair)
// computed from the room orientation and the sofa, and candidates are
// validated against the room bounds, earlier placements and the budget.
// Refusals never fail the run; they surface as warnings on the result.
package layout

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"roomplanner/models"
)

// step binds a category to its rule. Mandatory categories warn when the
// catalog has nothing for them.
type step struct {
	category  string
	label     string
	mandatory bool
	place     rule
}

var sequence = []step{
	{category: models.CategorySofa, label: "sofa", mandatory: true, place: placeSofa},
	{category: models.CategoryCoffee, label: "coffee table", mandatory: true, place: placeCoffee},
	{category: models.CategoryTVStand, label: "TV stand", mandatory: true, place: placeTVStand},
	{category: models.CategoryBookshelf, label: "bookshelf", place: placeBookshelf},
	{category: models.CategorySideTable, label: "side table", place: placeSideTable},
	{category: models.CategoryArmchair, label: "armchair", place: placeArmchair},
}

// Categories returns the categories in placement order.
func Categories() []string {
	out := make([]string, len(sequence))
	for i, s := range sequence {
		out[i] = s.category
	}
	return out
}

// Engine runs placement passes. It holds no per-run state and is safe for
// concurrent use.
type Engine struct {
	logger *log.Logger
}

// New returns an engine that reports refusals to logger at debug level.
// A nil logger discards output.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{logger: logger}
}

// GenerateLayout runs a placement pass with a silent engine.
func GenerateLayout(room models.RoomSpec, items []models.FurnitureItem) models.LayoutResult {
	return New(nil).Generate(room, items)
}

// Generate places at most one item per known category. items is not modified.
func (e *Engine) Generate(room models.RoomSpec, items []models.FurnitureItem) models.LayoutResult {
	p := &placement{
		room:       room,
		horizontal: room.Length >= room.Width,
		placed:     []models.PlacedItem{},
		budget:     NewAccountant(room.Budget),
	}
	warnings := []string{}

	for _, s := range sequence {
		item, ok := FindByCategory(items, s.category)
		if !ok {
			if s.mandatory {
				warnings = append(warnings, "No "+s.label+" found in furniture catalog.")
			}
			e.logger.Debug("category skipped", "category", s.category, "reason", ReasonMissing)
			continue
		}

		c, rej := s.place(p, item)
		if rej != nil {
			if rej.warning != "" {
				warnings = append(warnings, rej.warning)
			}
			e.logger.Debug("placement refused", "category", s.category, "item", item.Name, "reason", rej.reason)
			continue
		}

		p.placed = append(p.placed, c)
		p.budget.Commit(item.Price)
		e.logger.Debug("placed", "category", s.category, "item", item.Name, "x", c.X, "y", c.Y)
	}

	return models.LayoutResult{
		Room:            room,
		Placed:          p.placed,
		TotalCost:       p.budget.Spent(),
		RemainingBudget: p.budget.Remaining(),
		Warnings:        warnings,
	}
}

// FindByCategory returns the first item whose category matches, ignoring case.
func FindByCategory(items []models.FurnitureItem, category string) (models.FurnitureItem, bool) {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.FurnitureItem{}, false
	}
	for _, f := range items {
		if f.IsCategory(category) {
			return f, true
		}
	}
	return models.FurnitureItem{}, false
}
