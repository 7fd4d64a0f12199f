package fishing

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Overlaps reports whether r and o share a region of non-zero area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && r.Right > o.Left && r.Top < o.Bottom && r.Bottom > o.Top
}

// Entity is a movable rectangle with a velocity. It does no bounds checking;
// the owner decides whether to clamp (Boat) or reflect (Creature).
type Entity struct {
	X, Y   float64 // top-left corner
	W, H   float64
	VX, VY float64 // pixels per tick
}

// MoveBy translates the entity unconditionally.
func (e *Entity) MoveBy(dx, dy float64) {
	e.X += dx
	e.Y += dy
}

// Bounds returns the entity's current rectangle.
func (e *Entity) Bounds() Rect {
	return Rect{Left: e.X, Top: e.Y, Right: e.X + e.W, Bottom: e.Y + e.H}
}
