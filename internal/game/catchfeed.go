package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Fishing-Game/internal/fishing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 200
	feedMaxEntries = 8
	feedLineHeight = 14
)

// CatchEntry is a single line in the catch feed.
type CatchEntry struct {
	Tick    int
	Label   string // e.g. "F3", "L12"
	Species fishing.Species
	Points  int
}

// CatchFeed is a ring buffer of recent catches rendered on-screen.
type CatchFeed struct {
	entries []CatchEntry
	head    int
	count   int
}

// NewCatchFeed creates a feed with a fixed capacity.
func NewCatchFeed() *CatchFeed {
	return &CatchFeed{
		entries: make([]CatchEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *CatchFeed) Add(tick int, label string, sp fishing.Species, points int) {
	f.entries[f.head] = CatchEntry{
		Tick:    tick,
		Label:   label,
		Species: sp,
		Points:  points,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *CatchFeed) Recent() []CatchEntry {
	result := make([]CatchEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed panel with its top-left corner at (panelX, panelY).
func (f *CatchFeed) Draw(screen *ebiten.Image, panelX, panelY int, colors map[fishing.Species]color.RGBA) {
	panelH := 20 + feedMaxEntries*feedLineHeight
	vector.FillRect(screen, float32(panelX), float32(panelY), feedPanelWidth, float32(panelH), color.RGBA{R: 10, G: 30, B: 50, A: 160}, false)
	vector.StrokeRect(screen, float32(panelX), float32(panelY), feedPanelWidth, float32(panelH), 1.0, color.RGBA{R: 220, G: 240, B: 255, A: 120}, false)
	ebitenutil.DebugPrintAt(screen, "CATCHES", panelX+8, panelY+2)

	y := panelY + 18
	for _, e := range f.Recent() {
		vector.FillRect(screen, float32(panelX+6), float32(y+4), 4, 6, colors[e.Species], false)
		line := fmt.Sprintf("%5d %-4s %-7s +%d", e.Tick, e.Label, e.Species, e.Points)
		ebitenutil.DebugPrintAt(screen, line, panelX+14, y)
		y += feedLineHeight
	}
}
