package models

import "strings"

// 家具类别
const (
	CategorySofa      = "sofa"
	CategoryCoffee    = "coffee"
	CategoryTVStand   = "tvstand"
	CategoryBookshelf = "bookshelf"
	CategorySideTable = "sidetable"
	CategoryArmchair  = "armchair"
)

// 房间输入 (meters, currency units)
type RoomSpec struct {
	Length float64 `json:"length" form:"length" toml:"length" binding:"required,gte=3,lte=15"`
	Width  float64 `json:"width" form:"width" toml:"width" binding:"required,gte=3,lte=15"`
	Budget int     `json:"budget" form:"budget" toml:"budget" binding:"required,gte=500,lte=10000"`
}

// 家具目录条目
type FurnitureItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Width    float64 `json:"width"` // along X
	Depth    float64 `json:"depth"` // along Y
	Price    int     `json:"price"`
}

// IsCategory reports whether the item belongs to category, ignoring case.
func (f FurnitureItem) IsCategory(category string) bool {
	return strings.EqualFold(f.Category, category)
}

// 已放置的家具位置, (X, Y) is the corner nearest the origin.
type PlacedItem struct {
	FurnitureItem
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// 布局结果
type LayoutResult struct {
	Room            RoomSpec     `json:"room"`
	Placed          []PlacedItem `json:"placed"`
	TotalCost       int          `json:"totalCost"`
	RemainingBudget int          `json:"remainingBudget"`
	Warnings        []string     `json:"warnings"`
}

// AI 建议的单件家具, X/Y are centre coordinates.
type SuggestedFurniture struct {
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Reasoning string  `json:"reasoning"`
}

// AI 布局建议
type Suggestion struct {
	SuggestedFurniture []SuggestedFurniture `json:"suggestedFurniture"`
	TotalEstimatedCost int                  `json:"totalEstimatedCost"`
	Reasoning          string               `json:"reasoning"`
}
