package fishing

// Direction is a horizontal boat move command.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Boat is the player's entity. It only ever moves horizontally.
type Boat struct {
	Entity
	Speed float64
}

// newBoat places the boat horizontally centred with its top margin pixels
// above the bottom edge.
func newBoat(cfg Config) *Boat {
	return &Boat{
		Entity: Entity{
			X: float64(cfg.Width-cfg.BoatWidth) / 2,
			Y: float64(cfg.Height - cfg.BoatMargin),
			W: float64(cfg.BoatWidth),
			H: float64(cfg.BoatHeight),
		},
		Speed: float64(cfg.BoatSpeed),
	}
}

// Move steps the boat one speed unit in dir. A step is only taken when the
// boat is not already at that edge; the result is kept inside
// [0, windowWidth-W]. Unknown directions are ignored. Move reports whether
// the boat's position changed.
func (b *Boat) Move(dir Direction, windowWidth float64) bool {
	before := b.X
	switch dir {
	case Left:
		if b.X > 0 {
			b.MoveBy(-b.Speed, 0)
		}
	case Right:
		if b.X+b.W < windowWidth {
			b.MoveBy(b.Speed, 0)
		}
	default:
		return false
	}

	maxX := windowWidth - b.W
	if b.X < 0 {
		b.X = 0
	}
	if b.X > maxX {
		b.X = maxX
	}
	return b.X != before
}
