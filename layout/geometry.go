package layout

import "roomplanner/models"

// epsilon absorbs floating point rounding on the far walls.
const epsilon = 1e-6

// Rect is an axis-aligned box in room coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectOf returns the footprint of a placed item.
func RectOf(p models.PlacedItem) Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Depth}
}

// Fits reports whether r lies inside [0, roomWidth] × [0, roomHeight].
func Fits(r Rect, roomWidth, roomHeight float64) bool {
	if r.X < 0 || r.Y < 0 {
		return false
	}
	if r.X+r.Width > roomWidth+epsilon {
		return false
	}
	if r.Y+r.Height > roomHeight+epsilon {
		return false
	}
	return true
}

// Overlaps reports strict intersection; boxes sharing an edge do not overlap.
func Overlaps(a, b Rect) bool {
	noOverlap := a.X+a.Width <= b.X || b.X+b.Width <= a.X ||
		a.Y+a.Height <= b.Y || b.Y+b.Height <= a.Y
	return !noOverlap
}

// OverlapsAny reports whether candidate overlaps any already placed item.
func OverlapsAny(candidate Rect, placed []models.PlacedItem) bool {
	for _, p := range placed {
		if Overlaps(candidate, RectOf(p)) {
			return true
		}
	}
	return false
}
