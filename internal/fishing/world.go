package fishing

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"
)

// World owns the boat, every live creature, and the score. It is driven by a
// single caller: Tick once per frame, MoveBoat and Catch between ticks.
type World struct {
	cfg    Config
	width  float64
	height float64

	boat *Boat
	// creatures is the only place live creatures are stored. Per-species
	// groups are derived from it on demand.
	creatures []*Creature
	nextID    int

	score  int
	lives  int
	method Method
	tick   int
	caught map[Species]int

	events *EventLog
	rng    *rand.Rand
	logger *slog.Logger
	spawn  bool
}

// CatchResult describes what a single Catch call removed.
type CatchResult struct {
	Caught []CreatureView
	Points int
}

// New builds a world from cfg. Options are applied in two passes: setup
// options (seed, logger, spawn switch) before the random population is
// spawned, placement options (explicit creatures, boat position) after.
func New(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.clone()
	w := &World{
		cfg:    cfg,
		width:  float64(cfg.Width),
		height: float64(cfg.Height),
		boat:   newBoat(cfg),
		lives:  cfg.Lives,
		method: cfg.Method,
		caught: make(map[Species]int, len(cfg.Species)),
		events: NewEventLog(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- game only
		logger: slog.New(slog.DiscardHandler),
		spawn:  true,
	}
	for _, o := range opts {
		if o.kind == optSetup {
			o.fn(w)
		}
	}
	if w.spawn {
		w.spawnPopulation()
	}
	for _, o := range opts {
		if o.kind == optPlacement {
			o.fn(w)
		}
	}
	w.logger.Info("world ready",
		"width", cfg.Width,
		"height", cfg.Height,
		"creatures", len(w.creatures),
		"method", w.method.String())
	return w, nil
}

// spawnPopulation creates each species' spawn count at random integer
// positions inside the window, with integer velocities in [-bound, bound].
func (w *World) spawnPopulation() {
	for _, sp := range AllSpecies() {
		tr, ok := w.cfg.Species[sp]
		if !ok {
			continue
		}
		for i := 0; i < tr.SpawnCount; i++ {
			x := float64(w.rng.Intn(w.cfg.Width + 1))
			y := float64(w.rng.Intn(w.cfg.Height + 1))
			vx := float64(w.rng.Intn(2*tr.SpeedBound+1) - tr.SpeedBound)
			vy := float64(w.rng.Intn(2*tr.SpeedBound+1) - tr.SpeedBound)
			w.addCreature(sp, x, y, vx, vy)
		}
	}
}

func (w *World) addCreature(sp Species, x, y, vx, vy float64) *Creature {
	c := &Creature{
		Entity: Entity{
			X: x, Y: y,
			W: float64(w.cfg.CreatureWidth), H: float64(w.cfg.CreatureHeight),
			VX: vx, VY: vy,
		},
		ID:      w.nextID,
		Species: sp,
	}
	w.nextID++
	w.creatures = append(w.creatures, c)
	w.events.Add(w.tick, c.Label(), sp.String(), CategorySpawn, "spawned",
		fmt.Sprintf("(%.0f,%.0f) v=(%.0f,%.0f)", x, y, vx, vy), 0)
	return c
}

// Tick advances every live creature by one step.
func (w *World) Tick() {
	w.tick++
	for _, c := range w.creatures {
		c.Update(w.width, w.height)
	}
}

// MoveBoat applies one move command and reports whether the boat moved.
func (w *World) MoveBoat(dir Direction) bool {
	moved := w.boat.Move(dir, w.width)
	if moved {
		w.events.Add(w.tick, "--", "--", CategoryBoat, "move",
			fmt.Sprintf("%s x=%.0f", dir, w.boat.X), w.boat.X)
	}
	return moved
}

// Catch removes every creature overlapping the boat and scores it. Catching
// nothing is a normal outcome. The fishing method does not affect the result.
func (w *World) Catch() CatchResult {
	boat := w.boat.Bounds()

	var caught []*Creature
	for _, c := range w.creatures {
		if boat.Overlaps(c.Bounds()) {
			caught = append(caught, c)
		}
	}
	if len(caught) == 0 {
		return CatchResult{}
	}

	gone := make(map[*Creature]bool, len(caught))
	res := CatchResult{Caught: make([]CreatureView, 0, len(caught))}
	for _, c := range caught {
		gone[c] = true
		pts := w.cfg.Species[c.Species].Points
		w.score += pts
		w.caught[c.Species]++
		res.Points += pts
		res.Caught = append(res.Caught, c.View())
		w.events.Add(w.tick, c.Label(), c.Species.String(), CategoryCatch, "caught",
			fmt.Sprintf("%s +%d", c.Species, pts), float64(pts))
		w.logger.Debug("creature caught",
			"creature", c.Label(),
			"species", c.Species.String(),
			"points", pts,
			"tick", w.tick)
	}

	kept := w.creatures[:0]
	for _, c := range w.creatures {
		if !gone[c] {
			kept = append(kept, c)
		}
	}
	// Drop stale pointers in the tail so removed creatures can be collected.
	for i := len(kept); i < len(w.creatures); i++ {
		w.creatures[i] = nil
	}
	w.creatures = kept
	return res
}

// ActiveCreatures returns a snapshot of every live creature.
func (w *World) ActiveCreatures() []CreatureView {
	out := make([]CreatureView, len(w.creatures))
	for i, c := range w.creatures {
		out[i] = c.View()
	}
	return out
}

// CreaturesOf returns a snapshot of the live creatures of one species.
func (w *World) CreaturesOf(sp Species) []CreatureView {
	var out []CreatureView
	for _, c := range w.creatures {
		if c.Species == sp {
			out = append(out, c.View())
		}
	}
	return out
}

// LiveCount returns the number of creatures still in the water.
func (w *World) LiveCount() int {
	return len(w.creatures)
}

// BoatState returns the boat's current rectangle.
func (w *World) BoatState() Rect {
	return w.boat.Bounds()
}

// Score returns the accumulated points.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives. Nothing in the game decrements it.
func (w *World) Lives() int { return w.lives }

// CurrentMethod returns the fishing method shown to the player.
func (w *World) CurrentMethod() Method { return w.method }

// TickCount returns how many ticks have run.
func (w *World) TickCount() int { return w.tick }

// Config returns a copy of the world's configuration.
func (w *World) Config() Config { return w.cfg.clone() }

// Events returns the world's event log.
func (w *World) Events() *EventLog { return w.events }

// CaughtBySpecies returns how many creatures of each species were caught.
func (w *World) CaughtBySpecies() map[Species]int {
	out := make(map[Species]int, len(w.caught))
	for sp, n := range w.caught {
		out[sp] = n
	}
	return out
}

// summaryCatches is how many catch events Summary lists.
const summaryCatches = 5

// Summary returns a short plain-text report of the world state.
func (w *World) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", w.tick)
	fmt.Fprintf(&sb, "Score: %d  Lives: %d  Method: %s\n", w.score, w.lives, w.method)

	sb.WriteString("Caught: ")
	for _, sp := range AllSpecies() {
		fmt.Fprintf(&sb, "%s=%d  ", sp, w.caught[sp])
	}
	sb.WriteByte('\n')

	live := map[Species]int{}
	for _, c := range w.creatures {
		live[c.Species]++
	}
	sb.WriteString("Live: ")
	for _, sp := range AllSpecies() {
		fmt.Fprintf(&sb, "%s=%d  ", sp, live[sp])
	}
	sb.WriteByte('\n')

	b := w.boat.Bounds()
	fmt.Fprintf(&sb, "Boat: (%.0f,%.0f)-(%.0f,%.0f)\n", b.Left, b.Top, b.Right, b.Bottom)

	catches := w.events.Filter(CategoryCatch, "caught")
	if len(catches) > summaryCatches {
		catches = catches[len(catches)-summaryCatches:]
	}
	if len(catches) > 0 {
		sb.WriteString("Recent catches:\n")
		for _, e := range catches {
			sb.WriteString("  ")
			sb.WriteString(e.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
