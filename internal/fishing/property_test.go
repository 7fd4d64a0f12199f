package fishing

import (
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_BoatStaysInsideWindow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := DefaultConfig()
		cfg.Width = rapid.IntRange(cfg.BoatWidth, 2000).Draw(t, "width")
		cfg.BoatSpeed = rapid.IntRange(1, 64).Draw(t, "speed")
		w, err := New(cfg, WithoutSpawn())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		maxX := float64(cfg.Width - cfg.BoatWidth)
		moves := rapid.SliceOfN(rapid.IntRange(-1, 2), 0, 500).Draw(t, "moves")
		for _, m := range moves {
			w.MoveBoat(Direction(m))
			if x := w.BoatState().Left; x < 0 || x > maxX {
				t.Fatalf("boat x=%v outside [0,%v]", x, maxX)
			}
		}
	})
}

func TestProperty_CreatureSizeNeverChanges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		ticks := rapid.IntRange(0, 400).Draw(t, "ticks")
		w, err := New(DefaultConfig(), WithSeed(seed))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		for i := 0; i < ticks; i++ {
			w.Tick()
		}
		for _, c := range w.ActiveCreatures() {
			if c.W != DefaultCreatureWidth || c.H != DefaultCreatureHeight {
				t.Fatalf("%s size %vx%v after %d ticks", c.Label(), c.W, c.H, ticks)
			}
		}
	})
}

func TestProperty_CatchAccounting(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := DefaultConfig()
		n := rapid.IntRange(0, 30).Draw(t, "creatures")
		opts := []Option{WithoutSpawn()}
		for i := 0; i < n; i++ {
			sp := rapid.SampledFrom(AllSpecies()).Draw(t, "species")
			x := float64(rapid.IntRange(300, 470).Draw(t, "x"))
			y := float64(rapid.IntRange(500, 600).Draw(t, "y"))
			opts = append(opts, WithCreature(sp, x, y, 0, 0))
		}
		w, err := New(cfg, opts...)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		boat := w.BoatState()
		wantCaught, wantPoints := 0, 0
		for _, c := range w.ActiveCreatures() {
			if boat.Overlaps(c.Bounds()) {
				wantCaught++
				wantPoints += cfg.Species[c.Species].Points
			}
		}

		before := w.LiveCount()
		res := w.Catch()
		if len(res.Caught) != wantCaught || w.LiveCount() != before-wantCaught {
			t.Fatalf("caught %d (live %d->%d), want %d", len(res.Caught), before, w.LiveCount(), wantCaught)
		}
		if w.Score() != wantPoints || res.Points != wantPoints {
			t.Fatalf("score=%d points=%d, want %d", w.Score(), res.Points, wantPoints)
		}

		again := w.Catch()
		if len(again.Caught) != 0 || w.Score() != wantPoints {
			t.Fatalf("second catch removed %d, score %d", len(again.Caught), w.Score())
		}
	})
}
