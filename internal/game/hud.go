package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// hudScale upscales the 7x13 bitmap font so HUD lines read at ~26px.
const hudScale = 2

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawText renders s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, x, y float64, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

// hudLines is the score/lives/method overlay, top to bottom.
func (g *Game) hudLines() []string {
	return []string{
		fmt.Sprintf("Score: %d", g.world.Score()),
		fmt.Sprintf("Lives: %d", g.world.Lives()),
		fmt.Sprintf("Fishing Method: %s", g.world.CurrentMethod()),
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	for i, line := range g.hudLines() {
		drawText(screen, line, 10, float64(10+30*i), hudScale, color.White)
	}
	if g.status != "" {
		drawText(screen, g.status, 10, float64(g.height-24), 1, color.White)
	}
}
