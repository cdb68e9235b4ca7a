// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Scale is the fixed-point factor: 1 field pixel = 1000 units.
// Sub-pixel positions (the brick grid centers land on half pixels)
// stay exact without floating point, keeping the simulation deterministic.
const Scale = 1000

// Unit is a fixed-point scalar in field-pixel units, scaled by Scale.
type Unit int

// ToUnit converts a whole pixel coordinate to fixed-point.
func ToUnit(px int) Unit {
	return Unit(px * Scale)
}

// Px converts fixed-point back to whole pixels (truncated).
func (u Unit) Px() int {
	return int(u) / Scale
}

// Half returns u/2 without losing the sub-pixel remainder.
func (u Unit) Half() Unit {
	return u / 2
}

// Abs returns the absolute value.
func (u Unit) Abs() Unit {
	if u < 0 {
		return -u
	}
	return u
}

// ClampUnit restricts a value to [minVal, maxVal].
func ClampUnit(val, minVal, maxVal Unit) Unit {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Box is an axis-aligned bounding box in field coordinates.
// Edges are stored directly rather than as origin+size because every
// collision rule in the game is phrased in terms of edges.
type Box struct {
	Left, Top, Right, Bottom Unit
}

// BoxAround builds a box from a center point and half-extents.
func BoxAround(cx, cy, halfW, halfH Unit) Box {
	return Box{
		Left:   cx - halfW,
		Top:    cy - halfH,
		Right:  cx + halfW,
		Bottom: cy + halfH,
	}
}

// Width returns the horizontal extent.
func (b Box) Width() Unit {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Box) Height() Unit {
	return b.Bottom - b.Top
}

// MidX returns the horizontal midpoint.
func (b Box) MidX() Unit {
	return (b.Left + b.Right).Half()
}

// MidY returns the vertical midpoint.
func (b Box) MidY() Unit {
	return (b.Top + b.Bottom).Half()
}

// Shift returns the box translated by (dx, dy).
func (b Box) Shift(dx, dy Unit) Box {
	return Box{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
	}
}

// Overlaps reports whether two boxes intersect. Touching edges count as
// an overlap, matching canvas-style overlap queries.
func (b Box) Overlaps(o Box) bool {
	if b.Right < o.Left || o.Right < b.Left {
		return false
	}
	if b.Bottom < o.Top || o.Bottom < b.Top {
		return false
	}
	return true
}

// Clamp restricts an integer to [minVal, maxVal].
func Clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
