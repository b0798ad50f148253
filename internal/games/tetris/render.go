package tetris

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const (
	cellW  = 2 // each field cell is two terminal columns wide
	panelW = 16
)

var (
	blockGlyph = []rune("██")
	ghostGlyph = []rune("░░")
	stackGlyph = []rune("▓▓")
)

// layout holds the screen positions of the well and the side panel.
type layout struct {
	wellX, wellY int // top-left corner of the box around the well
	wellW, wellH int
	panelX       int
}

// computeLayout centers the well and panel on a w×h screen. It reports false
// when they do not fit.
func (g *Game) computeLayout(w, h int) (layout, bool) {
	ecfg := g.engine.Config()
	l := layout{
		wellW: ecfg.Width*cellW + 2,
		wellH: ecfg.VisibleRows() + 2,
	}
	totalW := l.wellW + 1 + panelW
	if w < totalW || h < l.wellH {
		return l, false
	}
	l.wellX = (w - totalW) / 2
	l.wellY = (h - l.wellH) / 2
	l.panelX = l.wellX + l.wellW + 1
	return l, true
}

// kindColor returns the guideline colour of a piece kind.
func kindColor(k core.Kind) platformcore.Color {
	switch k {
	case core.KindI:
		return platformcore.ColorCyan
	case core.KindO:
		return platformcore.ColorYellow
	case core.KindS:
		return platformcore.ColorGreen
	case core.KindZ:
		return platformcore.ColorRed
	case core.KindJ:
		return platformcore.ColorBlue
	case core.KindL:
		return platformcore.ColorOrange
	case core.KindT:
		return platformcore.ColorMagenta
	default:
		return platformcore.ColorWhite
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}

	l, ok := g.computeLayout(dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", l.wellW+1+panelW, l.wellH))
		return
	}

	g.renderWell(dst, l)
	g.renderPanel(dst, l)

	switch {
	case g.won:
		g.renderOverlay(dst, l, "FINISHED", platformcore.FormatDuration(platformcore.TicksToDuration(g.finishTicks, g.tickRate)))
	case g.gameOver:
		g.renderOverlay(dst, l, "GAME OVER", "R to restart")
	case g.paused:
		g.renderOverlay(dst, l, "PAUSED", "P to resume")
	}
}

// drawCell paints one field cell. Rows inside the hidden buffer are skipped.
func (g *Game) drawCell(dst *platformcore.Screen, l layout, x, y int, glyph []rune, c platformcore.Color) {
	hidden := g.engine.Config().HiddenRows
	if y < hidden {
		return
	}
	sx := l.wellX + 1 + x*cellW
	sy := l.wellY + 1 + y - hidden
	for i, r := range glyph {
		dst.SetColored(sx+i, sy, r, c)
	}
}

// renderWell draws the border, the stack, the ghost and the active piece.
func (g *Game) renderWell(dst *platformcore.Screen, l layout) {
	dst.DrawBox(platformcore.NewRect(l.wellX, l.wellY, l.wellW, l.wellH), platformcore.ColorGray)

	clearing := g.engine.ClearingRows()
	for y, row := range g.engine.FieldRows() {
		color := platformcore.ColorWhite
		glyph := stackGlyph
		if containsRow(clearing, y) {
			color = platformcore.ColorBrightWhite
			glyph = blockGlyph
		}
		for x, filled := range row {
			if filled {
				g.drawCell(dst, l, x, y, glyph, color)
			}
		}
	}

	state := g.engine.State()
	if state != core.StateFalling && state != core.StateLanding {
		return
	}

	active := g.engine.ActivePiece()
	color := kindColor(active.Kind)
	for _, c := range g.engine.GhostPiece().Cells {
		g.drawCell(dst, l, c.X, c.Y, ghostGlyph, platformcore.ColorGray)
	}
	for _, c := range active.Cells {
		g.drawCell(dst, l, c.X, c.Y, blockGlyph, color)
	}
}

// renderPanel draws score, level, lines and the next-piece preview.
func (g *Game) renderPanel(dst *platformcore.Screen, l layout) {
	score := g.engine.Score()
	x, y := l.panelX, l.wellY

	label := func(name, value string) {
		dst.DrawTextColored(x, y, name, platformcore.ColorGray)
		dst.DrawTextColored(x, y+1, value, platformcore.ColorBrightWhite)
		y += 3
	}

	dst.DrawTextColored(x, y, g.Title(), platformcore.ColorCyan)
	y += 2

	label("SCORE", strconv.Itoa(score.Points))
	if g.mode == ModeSprint {
		label("LINES", fmt.Sprintf("%d/%d", score.DeletedLines, g.cfg.Gameplay.SprintLines))
		label("TIME", platformcore.FormatDuration(platformcore.TicksToDuration(g.engine.Ticks(), g.tickRate)))
	} else {
		label("LEVEL", strconv.Itoa(score.Level))
		label("LINES", strconv.Itoa(score.DeletedLines))
	}

	if g.banner != "" {
		dst.DrawTextColored(x, y, g.banner, platformcore.ColorBrightYellow)
	}
	y += 2

	dst.DrawTextColored(x, y, "NEXT", platformcore.ColorGray)
	y++
	bottom := l.wellY + l.wellH
	for _, k := range g.next {
		if y+2 > bottom {
			break
		}
		drawPreview(dst, x, y, k)
		y += 3
	}
}

// drawPreview draws a kind in its spawn orientation with its top row at y.
func drawPreview(dst *platformcore.Screen, x, y int, k core.Kind) {
	cells := core.Cells(k, core.RotationSpawn)
	minY := cells[0].Y
	for _, c := range cells {
		minY = min(minY, c.Y)
	}
	color := kindColor(k)
	for _, c := range cells {
		for i, r := range blockGlyph {
			dst.SetColored(x+c.X*cellW+i, y+c.Y-minY, r, color)
		}
	}
}

// renderOverlay draws a two-line message across the middle of the well.
func (g *Game) renderOverlay(dst *platformcore.Screen, l layout, title, subtitle string) {
	inner := l.wellW - 2
	y := l.wellY + l.wellH/2 - 1
	for i, text := range []string{title, subtitle} {
		row := y + i
		dst.DrawHLine(l.wellX+1, row, inner, ' ', platformcore.ColorDefault)
		tx := l.wellX + 1 + (inner-len([]rune(text)))/2
		dst.DrawTextColored(tx, row, text, platformcore.ColorBrightYellow)
	}
}

func containsRow(rows []int, y int) bool {
	for _, r := range rows {
		if r == y {
			return true
		}
	}
	return false
}
