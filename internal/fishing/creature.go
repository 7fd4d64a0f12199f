package fishing

import "strconv"

// Creature is a drifting, bouncing catchable entity.
type Creature struct {
	Entity
	ID      int
	Species Species
}

// Update advances the creature one tick inside a width x height window.
// Velocity is applied first, then each axis is reflected independently if
// the rectangle has crossed that axis' window edges. Position is not
// clamped, so a creature can sit partly outside the window for one tick.
func (c *Creature) Update(width, height float64) {
	c.MoveBy(c.VX, c.VY)

	b := c.Bounds()
	if b.Left < 0 || b.Right > width {
		c.VX = -c.VX
	}
	if b.Top < 0 || b.Bottom > height {
		c.VY = -c.VY
	}
}

// Label returns a short identifier such as "F3" or "L12".
func (c *Creature) Label() string {
	return c.Species.labelPrefix() + strconv.Itoa(c.ID)
}

// View returns a read-only snapshot for rendering.
func (c *Creature) View() CreatureView {
	return CreatureView{
		ID:      c.ID,
		Species: c.Species,
		X:       c.X,
		Y:       c.Y,
		W:       c.W,
		H:       c.H,
	}
}

// CreatureView is a detached copy of a live creature's render state.
type CreatureView struct {
	ID      int
	Species Species
	X, Y    float64
	W, H    float64
}

// Bounds returns the rectangle the view covers.
func (v CreatureView) Bounds() Rect {
	return Rect{Left: v.X, Top: v.Y, Right: v.X + v.W, Bottom: v.Y + v.H}
}

// Label mirrors Creature.Label.
func (v CreatureView) Label() string {
	return v.Species.labelPrefix() + strconv.Itoa(v.ID)
}
