package layout

import "roomplanner/models"

const (
	WallClearance  = 0.5 // sofa and TV stand distance from their wall
	CoffeeDistance = 0.8 // gap between sofa and coffee table
	minInset       = 0.1 // smallest offset used when centring
	sideTableGap   = 0.1
	armchairGap    = 0.3
	armchairInset  = 0.2
)

// Reason classifies a refused placement.
type Reason int

const (
	ReasonMissing  Reason = iota // no catalog item for the category
	ReasonNoAnchor               // the sofa the rule is relative to was not placed
	ReasonGeometry               // out of bounds or overlapping
	ReasonBudget                 // geometrically valid but unaffordable
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonNoAnchor:
		return "no-anchor"
	case ReasonGeometry:
		return "geometry"
	case ReasonBudget:
		return "budget"
	default:
		return "unknown"
	}
}

// rejection is a refused candidate. An empty warning means the refusal is silent.
type rejection struct {
	reason  Reason
	warning string
}

// placement is the read-only view a rule gets of the run so far.
type placement struct {
	room       models.RoomSpec
	horizontal bool
	placed     []models.PlacedItem
	budget     *Accountant
}

// rule computes and validates the candidate for one category.
type rule func(p *placement, item models.FurnitureItem) (models.PlacedItem, *rejection)

func at(item models.FurnitureItem, x, y float64) models.PlacedItem {
	return models.PlacedItem{FurnitureItem: item, X: x, Y: y}
}

func (p *placement) fits(c models.PlacedItem) bool {
	return Fits(RectOf(c), p.room.Length, p.room.Width)
}

func (p *placement) valid(c models.PlacedItem) bool {
	return p.fits(c) && !OverlapsAny(RectOf(c), p.placed)
}

func (p *placement) sofa() (models.PlacedItem, bool) {
	for _, placed := range p.placed {
		if placed.IsCategory(models.CategorySofa) {
			return placed, true
		}
	}
	return models.PlacedItem{}, false
}

func reject(reason Reason, warning string) *rejection {
	return &rejection{reason: reason, warning: warning}
}

// placeSofa centres the sofa against the top wall, or the left wall when the
// room is deeper than it is long.
func placeSofa(p *placement, item models.FurnitureItem) (models.PlacedItem, *rejection) {
	var c models.PlacedItem
	if p.horizontal {
		c = at(item, max(minInset, (p.room.Length-item.Width)/2), WallClearance)
	} else {
		c = at(item, WallClearance, max(minInset, (p.room.Width-item.Depth)/2))
	}
	if !p.fits(c) {
		return c, reject(ReasonGeometry, "Sofa does not fit the room with the chosen orientation.")
	}
	return c, nil
}

// placeCoffee puts the coffee table CoffeeDistance in front of the sofa,
// centred on it.
func placeCoffee(p *placement, item models.FurnitureItem) (models.PlacedItem, *rejection) {
	sofa, ok := p.sofa()
	if !ok {
		return models.PlacedItem{}, reject(ReasonNoAnchor, "Coffee table skipped: no sofa has been placed.")
	}
	var c models.PlacedItem
	if p.horizontal {
		c = at(item, sofa.X+(sofa.Width-item.Width)/2, sofa.Y+sofa.Depth+CoffeeDistance)
	} else {
		c = at(item, sofa.X+sofa.Width+CoffeeDistance, sofa.Y+(sofa.Depth-item.Depth)/2)
	}
	if !p.valid(c) {
		return c, reject(ReasonGeometry, "Coffee table could not be placed without overlap.")
	}
	return c, nil
}

// placeTVStand puts the TV stand against the wall opposite the sofa.
func placeTVStand(p *placement, item models.FurnitureItem) (models.PlacedItem, *rejection) {
	if _, ok := p.sofa(); !ok {
		return models.PlacedItem{}, reject(ReasonNoAnchor, "TV stand skipped: no sofa has been placed.")
	}
	var c models.PlacedItem
	if p.horizontal {
		c = at(item, max(minInset, (p.room.Length-item.Width)/2), p.room.Width-item.Depth-WallClearance)
	} else {
		c = at(item, p.room.Length-item.Width-WallClearance, max(minInset, (p.room.Width-item.Depth)/2))
	}
	if !p.valid(c) {
		return c, reject(ReasonGeometry, "TV stand could not be placed without overlap.")
	}
	return c, nil
}

// placeBookshelf tries the near corner. Only the budget refusal is reported.
func placeBookshelf(p *placement, item models.FurnitureItem) (models.PlacedItem, *rejection) {
	c := at(item, minInset, minInset)
	if !p.valid(c) {
		return c, reject(ReasonGeometry, "")
	}
	if !p.budget.CanAfford(item.Price) {
		return c, reject(ReasonBudget, "Bookshelf available but exceeds budget.")
	}
	return c, nil
}

// placeSideTable goes just right of the sofa, on the same line.
func placeSideTable(p *placement, item models.FurnitureItem) (models.PlacedItem, *rejection) {
	sofa, ok := p.sofa()
	if !ok {
		return models.PlacedItem{}, reject(ReasonNoAnchor, "")
	}
	c := at(item, sofa.X+sofa.Width+sideTableGap, sofa.Y)
	if !p.valid(c) {
		return c, reject(ReasonGeometry, "")
	}
	if !p.budget.CanAfford(item.Price) {
		return c, reject(ReasonBudget, "")
	}
	return c, nil
}

// placeArmchair prefers a slot beside a coffee table and falls back to the
// corner opposite the origin along Y.
func placeArmchair(p *placement, item models.FurnitureItem) (models.PlacedItem, *rejection) {
	if !p.budget.CanAfford(item.Price) {
		return models.PlacedItem{}, reject(ReasonBudget, "")
	}
	for _, placed := range p.placed {
		if !placed.IsCategory(models.CategoryCoffee) {
			continue
		}
		if c := at(item, placed.X+placed.Width+armchairGap, placed.Y); p.valid(c) {
			return c, nil
		}
	}
	c := at(item, armchairInset, p.room.Width-item.Depth-armchairInset)
	if !p.valid(c) {
		return c, reject(ReasonGeometry, "")
	}
	return c, nil
}
