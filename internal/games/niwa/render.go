package niwa

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/niwa/internal/core"
	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/puzzle"
	"github.com/vovakirdan/niwa/internal/world"
)

// Rows taken by the HUD (title and separator) and the footer (separator
// and message line).
const (
	hudRows    = 2
	footerRows = 2
)

// Render draws the current state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.session == nil {
		msg := "No garden to tend"
		if g.failed != nil {
			msg = g.failed.Error()
		}
		g.renderOverlay(dst, msg, "Esc: back")
		return
	}

	size := g.session.Room().Size()
	boardW, boardH := int(size.X)+2, int(size.Y)+2
	area := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-footerRows)
	if boardW > area.W || boardH > area.H {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudRows+footerRows))
		return
	}

	frame := area.Centered(boardW, boardH)
	frameColor := core.ColorHUD
	if g.session.Casting() {
		frameColor = core.ColorTrace
	}
	dst.DrawBox(frame, frameColor)
	g.renderBoard(dst, frame.X+1, frame.Y+1)
	g.renderFooter(dst)

	if g.gameOver {
		g.renderOverlay(dst, "Every garden is tended", fmt.Sprintf("Final score: %d", g.session.Score()))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.session != nil {
		v, e, c := g.session.RegionSummary()
		hud += fmt.Sprintf(" | %s | Score: %d | Regions: %d open %d sealed %d done | Moves: %d",
			g.levelName, g.session.Score(), v, e, c, g.session.Moves())
		if g.session.Casting() {
			hud += " | CAST"
		}
	}
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDim)
}

func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	trace := g.traced()
	size := g.session.Room().Size()
	for p := range size.Rect(grid.East, grid.South).All() {
		r := g.session.GlyphAt(p)
		c := g.colorAt(p)
		if trace[p] && p != g.session.Actor() {
			c = core.ColorTrace
		}
		dst.SetColored(ox+int(p.X), oy+int(p.Y), r, c)
	}
}

// colorAt mirrors the precedence of Session.GlyphAt.
func (g *Game) colorAt(p grid.Position) core.Color {
	if p == g.session.Actor() {
		return core.ColorActor
	}
	pz := g.session.Puzzle()
	if c, ok := pz.Cell(p); ok {
		switch {
		case c.HasPlant() && c.IsSprouted():
			return core.ColorBloom
		case c.HasPlant():
			return core.ColorPlant
		}
		switch pz.Status(c.Region) {
		case puzzle.Complete:
			return core.ColorComplete
		case puzzle.Exhausted:
			return core.ColorExhausted
		default:
			return core.ColorVirgin
		}
	}
	t, ok := g.session.Room().Tile(p)
	switch {
	case !ok:
		return core.ColorDefault
	case t.Obstructed():
		return core.ColorRock
	default:
		return materialColor(t.Material)
	}
}

func materialColor(m world.Material) core.Color {
	switch m {
	case world.Grass:
		return core.ColorGrass
	case world.Dirt:
		return core.ColorDirt
	case world.Sand:
		return core.ColorSand
	case world.Stone:
		return core.ColorStone
	case world.Water:
		return core.ColorWater
	default:
		return core.ColorDefault
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - footerRows
	dst.DrawHLine(0, y, dst.Width(), '─', core.ColorDim)

	line, color := g.hint, core.ColorDim
	switch {
	case g.message != "":
		line, color = g.message, core.ColorHUD
	case g.session.Casting():
		line, color = "cast armed: pick a direction", core.ColorTrace
	}
	dst.DrawTextColored(1, y+1, line, color)
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorHUD)
	drawCentered(dst, box, box.Y+1, line1, core.ColorHUD)
	drawCentered(dst, box, box.Y+3, line2, core.ColorDim)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColored(core.Clamp(x, 0, max(dst.Width()-1, 0)), y, text, c)
}
