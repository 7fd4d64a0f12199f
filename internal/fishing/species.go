package fishing

import (
	"image/color"
	"strings"
)

// Species identifies a kind of creature.
type Species int

const (
	Fish Species = iota
	Scallop
	Crab
	Lobster
	speciesCount
)

var speciesNames = [speciesCount]string{
	Fish:    "fish",
	Scallop: "scallop",
	Crab:    "crab",
	Lobster: "lobster",
}

// String returns the lower-case species name.
func (s Species) String() string {
	if s < 0 || s >= speciesCount {
		return "unknown"
	}
	return speciesNames[s]
}

// Valid reports whether s is one of the known species.
func (s Species) Valid() bool {
	return s >= 0 && s < speciesCount
}

// labelPrefix is the single-letter tag used in creature labels ("F3", "L0").
func (s Species) labelPrefix() string {
	if !s.Valid() {
		return "?"
	}
	return strings.ToUpper(speciesNames[s][:1])
}

// AllSpecies returns every species in declaration order.
func AllSpecies() []Species {
	out := make([]Species, 0, speciesCount)
	for s := Species(0); s < speciesCount; s++ {
		out = append(out, s)
	}
	return out
}

// ParseSpecies maps a case-insensitive name back to its Species.
func ParseSpecies(name string) (Species, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range speciesNames {
		if n == name {
			return Species(i), true
		}
	}
	return 0, false
}

// SpeciesTraits is the per-species data row. SpeedBound is only consulted
// when a creature is spawned.
type SpeciesTraits struct {
	Points     int
	SpeedBound int
	SpawnCount int
	Color      color.RGBA
}

// DefaultSpeciesTraits returns the stock traits table.
func DefaultSpeciesTraits() map[Species]SpeciesTraits {
	return map[Species]SpeciesTraits{
		Fish:    {Points: 1, SpeedBound: 2, SpawnCount: 10, Color: color.RGBA{R: 0, G: 105, B: 148, A: 255}},
		Scallop: {Points: 5, SpeedBound: 1, SpawnCount: 5, Color: color.RGBA{R: 255, G: 255, B: 0, A: 255}},
		Crab:    {Points: 3, SpeedBound: 3, SpawnCount: 3, Color: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		Lobster: {Points: 10, SpeedBound: 2, SpawnCount: 2, Color: color.RGBA{R: 128, G: 0, B: 128, A: 255}},
	}
}
