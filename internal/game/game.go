package game

import (
	"image/color"
	"log/slog"

	"github.com/Garsondee/Fishing-Game/internal/fishing"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	waterColor = color.RGBA{R: 135, G: 206, B: 250, A: 255}
	boatColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// statusTicks is how long a one-line status message stays on screen (~2s).
const statusTicks = 120

// Game adapts a fishing.World to Ebiten: it decodes key presses into world
// commands, ticks the world once per Update, and draws the world state.
type Game struct {
	world  *fishing.World
	width  int
	height int
	colors map[fishing.Species]color.RGBA

	feed     *CatchFeed
	showFeed bool

	// Edge-triggered input: a held key issues one command per press.
	prevKeys   map[ebiten.Key]bool
	keyPressed func(ebiten.Key) bool

	copyText func(string) error
	logger   *slog.Logger

	status      string
	statusTimer int
}

// New wraps world for rendering. A nil logger discards output.
func New(world *fishing.World, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := world.Config()
	colors := make(map[fishing.Species]color.RGBA, len(cfg.Species))
	for sp, tr := range cfg.Species {
		colors[sp] = tr.Color
	}
	return &Game{
		world:      world,
		width:      cfg.Width,
		height:     cfg.Height,
		colors:     colors,
		feed:       NewCatchFeed(),
		showFeed:   true,
		prevKeys:   make(map[ebiten.Key]bool),
		keyPressed: ebiten.IsKeyPressed,
		copyText:   clipboard.WriteAll,
		logger:     logger,
	}
}

// World returns the simulated world.
func (g *Game) World() *fishing.World {
	return g.world
}

// Update handles input, then advances the world one tick.
func (g *Game) Update() error {
	if g.handleInput() {
		g.logger.Info("quit requested", "tick", g.world.TickCount(), "score", g.world.Score())
		return ebiten.Termination
	}

	g.world.Tick()

	if g.statusTimer > 0 {
		g.statusTimer--
		if g.statusTimer == 0 {
			g.status = ""
		}
	}
	return nil
}

// catch runs one catch command and feeds the result to the on-screen log.
func (g *Game) catch() {
	res := g.world.Catch()
	tick := g.world.TickCount()
	cfg := g.world.Config()
	for _, c := range res.Caught {
		g.feed.Add(tick, c.Label(), c.Species, cfg.Traits(c.Species).Points)
	}
	if len(res.Caught) > 0 {
		g.logger.Debug("catch",
			"tick", tick,
			"caught", len(res.Caught),
			"points", res.Points,
			"score", g.world.Score())
	}
}

// copyReport puts the world summary on the system clipboard.
func (g *Game) copyReport() {
	if err := g.copyText(g.world.Summary()); err != nil {
		g.logger.Warn("clipboard unavailable", "err", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("report copied to clipboard")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTimer = statusTicks
}

// Draw renders the water, creatures, boat, HUD and catch feed.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(waterColor)

	for _, c := range g.world.ActiveCreatures() {
		vector.FillRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), g.colors[c.Species], false)
	}

	b := g.world.BoatState()
	vector.FillRect(screen, float32(b.Left), float32(b.Top), float32(b.Width()), float32(b.Height()), boatColor, false)

	g.drawHUD(screen)

	if g.showFeed {
		g.feed.Draw(screen, g.width-feedPanelWidth-8, 8, g.colors)
	}
}

// Layout keeps the logical screen at the configured window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
