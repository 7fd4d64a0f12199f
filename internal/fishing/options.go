package fishing

import (
	"log/slog"
	"math"
	"math/rand"
)

// optionKind controls the pass in which an option is applied.
type optionKind int

const (
	optSetup     optionKind = iota // rng, logger, spawn switch: applied before spawning
	optPlacement                   // explicit creatures and boat position: applied after spawning
)

// Option configures a World during New.
type Option struct {
	kind optionKind
	fn   func(*World)
}

// WithSeed makes creature spawning deterministic.
func WithSeed(seed int64) Option {
	return Option{optSetup, func(w *World) {
		w.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}}
}

// WithRand uses r for spawning. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return Option{optSetup, func(w *World) {
		if r != nil {
			w.rng = r
		}
	}}
}

// WithLogger routes world log output to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return Option{optSetup, func(w *World) {
		if l != nil {
			w.logger = l
		}
	}}
}

// WithoutSpawn skips the random initial population. Combine with
// WithCreature to build exact scenarios.
func WithoutSpawn() Option {
	return Option{optSetup, func(w *World) {
		w.spawn = false
	}}
}

// WithCreature adds one creature of species sp at (x,y) moving at (vx,vy).
func WithCreature(sp Species, x, y, vx, vy float64) Option {
	return Option{optPlacement, func(w *World) {
		w.addCreature(sp, x, y, vx, vy)
	}}
}

// WithBoatX places the boat's left edge at x, clamped into the window.
func WithBoatX(x float64) Option {
	return Option{optPlacement, func(w *World) {
		w.boat.X = math.Max(0, math.Min(x, w.width-w.boat.W))
	}}
}
