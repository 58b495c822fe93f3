package polyfall

import (
	"fmt"

	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/engine"
)

const (
	hudHeight      = 2
	sidePanelWidth = 14
	ghostColor     = core.ColorGray
)

// Render draws the board, the side panel and the HUD. Board cells are two
// characters wide to look square in a terminal.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "failed to build piece catalog")
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize and restart")
		return
	}

	snap := g.eng.Snapshot()

	boardW := snap.Width*2 + 2
	offsetX := (g.screenW - boardW - sidePanelWidth) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	offsetY := hudHeight

	g.renderHUD(dst, snap)
	g.renderBoard(dst, snap, offsetX, offsetY)
	g.renderSidePanel(dst, snap, offsetX+boardW+2, offsetY)

	switch snap.Status {
	case engine.StatusPaused:
		dst.DrawTextCentered(dst.Height()/2, "  PAUSED  ")
	case engine.StatusGameOver:
		dst.DrawTextCentered(dst.Height()/2, "  GAME OVER  ")
		dst.DrawTextCentered(dst.Height()/2+1, "  R to restart, B for menu  ")
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	dst.DrawText(1, 0, g.Title())
	if g.notice != "" {
		dst.DrawTextColored(1+len(g.Title())+2, 0, g.notice, core.ColorYellow)
	}
	hud := fmt.Sprintf("Score: %d   Level: %d   Lines: %d",
		snap.Stats.Score, snap.Stats.Level, snap.Stats.Lines)
	dst.DrawText(1, 1, hud)
}

func (g *Game) renderBoard(dst *core.Screen, snap engine.Snapshot, offsetX, offsetY int) {
	dst.DrawBox(core.NewRect(offsetX, offsetY, snap.Width*2+2, snap.Height+2))

	drawCell := func(x, y int, r rune, c core.Color) {
		sx := offsetX + 1 + x*2
		sy := offsetY + 1 + y
		dst.SetCell(sx, sy, r, c)
		dst.SetCell(sx+1, sy, r, c)
	}

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if cell := snap.Cells[y][x]; cell.Filled {
				drawCell(x, y, '█', cell.Color)
			}
		}
	}

	// Ghost first so the active piece overdraws it when they overlap.
	if g.ghostEnabled && snap.Ghost != nil {
		for _, c := range snap.Ghost.AbsoluteCells() {
			drawCell(c.X, c.Y, '░', ghostColor)
		}
	}
	if snap.Active != nil {
		for _, c := range snap.Active.AbsoluteCells() {
			drawCell(c.X, c.Y, '█', snap.Active.Color)
		}
	}
}

func (g *Game) renderSidePanel(dst *core.Screen, snap engine.Snapshot, x, y int) {
	dst.DrawText(x, y, "NEXT")
	row := y + 1
	for _, id := range snap.Queue {
		row += g.renderPreview(dst, x, row, id) + 1
	}

	dst.DrawText(x, row+1, "HOLD")
	if snap.HeldID >= 0 {
		g.renderPreview(dst, x, row+2, snap.HeldID)
	} else {
		dst.DrawText(x, row+2, "  -")
	}
}

// renderPreview draws a piece's cells at the given origin and returns the
// number of rows used. Oversized previews are clipped by the screen bounds.
func (g *Game) renderPreview(dst *core.Screen, x, y, id int) int {
	def, ok := g.eng.Definition(id)
	if !ok {
		return 1
	}
	for _, c := range def.Cells {
		dst.SetCell(x+c.X*2, y+c.Y, '█', def.Color)
		dst.SetCell(x+c.X*2+1, y+c.Y, '█', def.Color)
	}
	return def.Box.H
}
