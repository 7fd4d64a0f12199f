// Package config builds the game's settings from an optional dotenv file and
// FISHING_* environment variables. Process environment wins over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Garsondee/Fishing-Game/internal/fishing"
	"github.com/joho/godotenv"
)

const envPrefix = "FISHING_"

// Settings is everything the entrypoints need to start a game.
type Settings struct {
	World    fishing.Config
	Seed     int64 // 0 means pick one from the clock
	LogLevel slog.Level
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		World:    fishing.DefaultConfig(),
		LogLevel: slog.LevelInfo,
	}
}

// source resolves a variable from the process environment first, then from
// values read out of the dotenv file.
type source struct {
	file map[string]string
}

func (s source) lookup(name string) (string, bool) {
	key := envPrefix + name
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	if v, ok := s.file[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	return "", false
}

func (s source) intVar(name string, dst *int) error {
	v, ok := s.lookup(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s%s: %w", envPrefix, name, err)
	}
	*dst = n
	return nil
}

// Load reads envFile (skipped when empty or missing) and the environment on
// top of Default, then validates the world config.
func Load(envFile string) (Settings, error) {
	src := source{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("config: reading %s: %w", envFile, err)
		default:
			src.file = values
		}
	}
	return load(src)
}

func load(src source) (Settings, error) {
	s := Default()
	cfg := &s.World

	for name, dst := range map[string]*int{
		"WIDTH":           &cfg.Width,
		"HEIGHT":          &cfg.Height,
		"BOAT_WIDTH":      &cfg.BoatWidth,
		"BOAT_HEIGHT":     &cfg.BoatHeight,
		"BOAT_SPEED":      &cfg.BoatSpeed,
		"BOAT_MARGIN":     &cfg.BoatMargin,
		"CREATURE_WIDTH":  &cfg.CreatureWidth,
		"CREATURE_HEIGHT": &cfg.CreatureHeight,
		"LIVES":           &cfg.Lives,
	} {
		if err := src.intVar(name, dst); err != nil {
			return Settings{}, err
		}
	}

	for _, sp := range fishing.AllSpecies() {
		tr := cfg.Species[sp]
		prefix := strings.ToUpper(sp.String()) + "_"
		if err := src.intVar(prefix+"COUNT", &tr.SpawnCount); err != nil {
			return Settings{}, err
		}
		if err := src.intVar(prefix+"POINTS", &tr.Points); err != nil {
			return Settings{}, err
		}
		if err := src.intVar(prefix+"SPEED", &tr.SpeedBound); err != nil {
			return Settings{}, err
		}
		cfg.Species[sp] = tr
	}

	if v, ok := src.lookup("METHOD"); ok {
		m, ok := fishing.ParseMethod(v)
		if !ok {
			return Settings{}, fmt.Errorf("config: %sMETHOD: unknown fishing method %q", envPrefix, v)
		}
		cfg.Method = m
	}

	if v, ok := src.lookup("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("config: %sSEED: %w", envPrefix, err)
		}
		s.Seed = seed
	}

	if v, ok := src.lookup("LOG_LEVEL"); ok {
		if err := s.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Settings{}, fmt.Errorf("config: %sLOG_LEVEL: %w", envPrefix, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}
