package game

import (
	"github.com/Garsondee/Fishing-Game/internal/fishing"
	"github.com/hajimehoshi/ebiten/v2"
)

// handleInput turns fresh key presses into world commands. It reports
// whether the player asked to quit.
func (g *Game) handleInput() bool {
	currentKeys := map[ebiten.Key]bool{}

	// justPressed records every key's state, then reports whether any of
	// them went down this frame.
	justPressed := func(keys ...ebiten.Key) bool {
		hit := false
		for _, k := range keys {
			currentKeys[k] = g.keyPressed(k)
			if currentKeys[k] && !g.prevKeys[k] {
				hit = true
			}
		}
		return hit
	}

	quit := justPressed(ebiten.KeyEscape, ebiten.KeyQ)

	if justPressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		g.world.MoveBoat(fishing.Left)
	}
	if justPressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		g.world.MoveBoat(fishing.Right)
	}
	if justPressed(ebiten.KeySpace) {
		g.catch()
	}

	// H: toggle the catch feed panel.
	if justPressed(ebiten.KeyH) {
		g.showFeed = !g.showFeed
	}
	// C: copy a score report.
	if justPressed(ebiten.KeyC) {
		g.copyReport()
	}

	g.prevKeys = currentKeys
	return quit
}
