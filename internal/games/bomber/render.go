package bomber

import (
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// Visual characters for rendering
const (
	SolidChar        = '█'
	DestructibleChar = '▒'
	BombChar         = '●'
	FlameChar        = '*'
	BombPowerUpChar  = 'B'
	FlamePowerUpChar = 'F'
)

const (
	hudHeight    = 2 // status line + separator
	footerHeight = 1 // per-player stats
)

var playerColors = map[core.PlayerID]core.Color{
	core.Player1: core.ColorBrightBlue,
	core.Player2: core.ColorBrightRed,
}

type layout struct {
	cellW   int
	offsetX int
	offsetY int
}

func (g *Game) cellWidth() int {
	return core.Clamp(g.cfg.Render.CellWidth, 1, 4)
}

// MinScreenSize returns the smallest terminal the arena fits in.
func (g *Game) MinScreenSize() (int, int) {
	return sim.Width*g.cellWidth() + 2, hudHeight + sim.Height + footerHeight
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		return layout{}, false
	}
	cellW := g.cellWidth()
	return layout{
		cellW:   cellW,
		offsetX: (dst.Width() - sim.Width*cellW) / 2,
		offsetY: hudHeight,
	}, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	lay, ok := g.layout(dst)
	if !ok {
		minW, minH := g.MinScreenSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", minW, minH))
		return
	}

	snap := g.sim.Snapshot()
	g.renderArena(dst, lay, &snap)
	g.renderFooter(dst, lay, &snap)

	switch {
	case g.matchOver:
		s1, s2 := g.scores()
		g.renderOverlay(dst,
			fmt.Sprintf("Player %d wins the match %d-%d!", int(g.matchWinner), s1, s2),
			"Press R for a new match, B for menu")
	case snap.RoundOver && snap.Winner == core.NoPlayer:
		g.renderOverlay(dst, "Draw!", "Press R to reset.")
	case snap.RoundOver:
		g.renderOverlay(dst, fmt.Sprintf("Player %d wins!", int(snap.Winner)), "Press R to reset.")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	s1, s2 := g.scores()
	hud := fmt.Sprintf(" Bomber | P1: %d  P2: %d | Round %d | First to %d", s1, s2, g.round, g.cfg.Match.RoundsToWin)
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderArena draws tiles, then power-ups, bombs, flames and players on
// top, each layer hiding the one below.
func (g *Game) renderArena(dst *core.Screen, lay layout, snap *sim.Snapshot) {
	for y := range sim.Height {
		for x := range sim.Width {
			p := sim.Point{X: x, Y: y}
			fill, mark, color := tileGlyph(snap, p)
			g.drawCell(dst, lay, p, fill, mark, color)
		}
	}
}

func tileGlyph(snap *sim.Snapshot, p sim.Point) (fill, mark rune, color core.Color) {
	if pl, ok := snap.PlayerAt(p); ok {
		return ' ', rune('0' + int(pl.ID)), playerColors[pl.ID]
	}
	if snap.Burning(p) {
		return FlameChar, FlameChar, core.ColorBrightYellow
	}
	if b, ok := snap.BombAt(p); ok {
		color := core.ColorYellow
		if b.Timer < 1 && int(b.Timer*8)%2 == 0 {
			color = core.ColorBrightRed
		}
		return ' ', BombChar, color
	}

	t := snap.Tile(p)
	switch t.PowerUp {
	case sim.BombCapacity:
		return ' ', BombPowerUpChar, core.ColorBrightCyan
	case sim.FlameLength:
		return ' ', FlamePowerUpChar, core.ColorBrightMagenta
	}

	switch t.Type {
	case sim.Solid:
		return SolidChar, SolidChar, core.ColorGray
	case sim.Destructible:
		return DestructibleChar, DestructibleChar, core.ColorOrange
	default:
		return ' ', ' ', core.ColorDefault
	}
}

// drawCell paints one tile as cellW columns with mark in the middle.
func (g *Game) drawCell(dst *core.Screen, lay layout, p sim.Point, fill, mark rune, color core.Color) {
	x0 := lay.offsetX + p.X*lay.cellW
	y := lay.offsetY + p.Y
	for i := range lay.cellW {
		r := fill
		if i == lay.cellW/2 {
			r = mark
		}
		dst.SetColored(x0+i, y, r, color)
	}
}

// renderFooter draws both players' stats under the arena.
func (g *Game) renderFooter(dst *core.Screen, lay layout, snap *sim.Snapshot) {
	y := lay.offsetY + sim.Height
	x := lay.offsetX
	for _, pl := range snap.Players {
		status := fmt.Sprintf("P%d bombs %d/%d flame %d", int(pl.ID), pl.BombCapacity-pl.ActiveBombs, pl.BombCapacity, pl.FlameLength)
		if !pl.Alive {
			status = fmt.Sprintf("P%d down", int(pl.ID))
		}
		dst.DrawTextColored(x, y, status, playerColors[pl.ID])
		x += len(status) + 3
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorBrightWhite)
}
