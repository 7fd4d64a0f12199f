package fishing

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid world config")

// Default window and entity dimensions.
const (
	DefaultWidth          = 800
	DefaultHeight         = 600
	DefaultBoatWidth      = 60
	DefaultBoatHeight     = 20
	DefaultBoatSpeed      = 5
	DefaultBoatMargin     = 50 // boat top sits this far above the bottom edge
	DefaultCreatureWidth  = 30
	DefaultCreatureHeight = 15
	DefaultLives          = 3
)

// Upper bounds accepted by Validate. They keep spawn ranges well inside int.
const (
	MaxDimension  = 1 << 20
	MaxSpeedBound = 1 << 20
)

// Config is everything a World needs to be constructed. Nothing in the
// package reads globals, so independent worlds can coexist.
type Config struct {
	Width  int
	Height int

	BoatWidth  int
	BoatHeight int
	BoatSpeed  int
	BoatMargin int

	CreatureWidth  int
	CreatureHeight int

	Species map[Species]SpeciesTraits

	Lives  int
	Method Method
}

// DefaultConfig returns the stock 800x600 game.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		BoatWidth:      DefaultBoatWidth,
		BoatHeight:     DefaultBoatHeight,
		BoatSpeed:      DefaultBoatSpeed,
		BoatMargin:     DefaultBoatMargin,
		CreatureWidth:  DefaultCreatureWidth,
		CreatureHeight: DefaultCreatureHeight,
		Species:        DefaultSpeciesTraits(),
		Lives:          DefaultLives,
		Method:         MethodRod,
	}
}

// Validate rejects configurations that cannot describe a finite playfield.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: window size %dx%d exceeds %d", ErrInvalidConfig, c.Width, c.Height, MaxDimension)
	}
	if c.BoatWidth <= 0 || c.BoatHeight <= 0 {
		return fmt.Errorf("%w: boat size %dx%d must be positive", ErrInvalidConfig, c.BoatWidth, c.BoatHeight)
	}
	if c.BoatWidth > c.Width {
		return fmt.Errorf("%w: boat width %d exceeds window width %d", ErrInvalidConfig, c.BoatWidth, c.Width)
	}
	if c.BoatSpeed <= 0 {
		return fmt.Errorf("%w: boat speed %d must be positive", ErrInvalidConfig, c.BoatSpeed)
	}
	if c.BoatMargin < c.BoatHeight || c.BoatMargin > c.Height {
		return fmt.Errorf("%w: boat margin %d must be within [%d, %d]", ErrInvalidConfig, c.BoatMargin, c.BoatHeight, c.Height)
	}
	if c.CreatureWidth <= 0 || c.CreatureHeight <= 0 {
		return fmt.Errorf("%w: creature size %dx%d must be positive", ErrInvalidConfig, c.CreatureWidth, c.CreatureHeight)
	}
	if len(c.Species) == 0 {
		return fmt.Errorf("%w: species table is empty", ErrInvalidConfig)
	}
	for sp, tr := range c.Species {
		if !sp.Valid() {
			return fmt.Errorf("%w: unknown species %d", ErrInvalidConfig, int(sp))
		}
		if tr.Points < 0 || tr.SpeedBound < 0 || tr.SpawnCount < 0 {
			return fmt.Errorf("%w: %s traits must be non-negative (points=%d speed=%d count=%d)",
				ErrInvalidConfig, sp, tr.Points, tr.SpeedBound, tr.SpawnCount)
		}
		if tr.SpeedBound > MaxSpeedBound {
			return fmt.Errorf("%w: %s speed bound %d exceeds %d", ErrInvalidConfig, sp, tr.SpeedBound, MaxSpeedBound)
		}
	}
	if c.Lives < 0 {
		return fmt.Errorf("%w: lives %d must be non-negative", ErrInvalidConfig, c.Lives)
	}
	if !c.Method.Valid() {
		return fmt.Errorf("%w: unknown fishing method %d", ErrInvalidConfig, int(c.Method))
	}
	return nil
}

// Traits returns the configured traits for sp, or the zero value if sp is
// not in the table.
func (c Config) Traits(sp Species) SpeciesTraits {
	return c.Species[sp]
}

// TotalSpawn is the number of creatures a fresh world starts with.
func (c Config) TotalSpawn() int {
	n := 0
	for _, tr := range c.Species {
		n += tr.SpawnCount
	}
	return n
}

// clone deep-copies the species table so a World never shares it with the caller.
func (c Config) clone() Config {
	out := c
	out.Species = make(map[Species]SpeciesTraits, len(c.Species))
	for sp, tr := range c.Species {
		out.Species[sp] = tr
	}
	return out
}
