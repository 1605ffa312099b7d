package cauldron

import (
	"fmt"

	"github.com/vovakirdan/cauldron/internal/core"
)

// Visual characters for rendering
const (
	ShelfChar    = '='
	WallChar     = '│'
	FloorChar    = '─'
	CornerLeft   = '╰'
	CornerRight  = '╯'
	HighlightClr = core.ColorBrightWhite
)

var kindGlyphs = [MaxKind + 1]rune{'o', '*', '%', '&', '#', '$', '@', '+', '~', '^', 'x'}

var kindColors = [MaxKind + 1]core.Color{
	core.ColorGreen, core.ColorYellow, core.ColorMagenta, core.ColorCyan,
	core.ColorBlue, core.ColorOrange, core.ColorBrightGreen, core.ColorBrightMagenta,
	core.ColorBrightCyan, core.ColorRed, core.ColorBrightYellow,
}

// kindStyle returns the glyph and colour for an ingredient kind.
func kindStyle(kind int) (rune, core.Color) {
	if kind < 0 || kind > MaxKind {
		return '?', core.ColorGray
	}
	return kindGlyphs[kind], kindColors[kind]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cam := g.camera
	if cam.ViewW != dst.Width() || cam.ViewH != dst.Height() {
		cam = core.NewCamera(dst.Width(), dst.Height(), g.cfg.World.Width, g.cfg.World.Height)
	}
	if !cam.Valid() {
		return
	}

	g.drawShelves(dst, cam)
	g.drawIngredients(dst, cam)
	g.drawCauldron(dst, cam)
	g.arrow.render(dst, cam)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawShelves(dst *core.Screen, cam core.Camera) {
	query := g.shelfFilter.Query()
	for query.Next() {
		s, t := query.Get()
		hw, hh := s.Width/2, s.Height/2
		corners := [4]core.Vec2{
			core.V(-hw, -hh), core.V(hw, -hh), core.V(hw, hh), core.V(-hw, hh),
		}
		for i := range corners {
			a := t.Pos.Add(corners[i].Rotate(t.Angle))
			b := t.Pos.Add(corners[(i+1)%4].Rotate(t.Angle))
			x0, y0 := cam.WorldToViewport(a)
			x1, y1 := cam.WorldToViewport(b)
			dst.DrawLine(x0, y0, x1, y1, ShelfChar, core.ColorGray)
		}
	}
}

func (g *Game) drawIngredients(dst *core.Screen, cam core.Camera) {
	wanted := g.picker.Current()
	query := g.ingredientFilter.Query()
	for query.Next() {
		ing, t, c := query.Get()
		glyph, color := kindStyle(ing.Kind)
		if ing.Kind == wanted {
			color = HighlightClr
		}
		cx, cy := cam.WorldToViewport(t.Pos)
		dw, dh := cam.CellsFor(2*c.Radius, 2*c.Radius)
		dst.DrawEllipse(cx, cy, dw/2, dh/2, glyph, color)
	}
}

// drawCauldron draws an open-topped pot: two walls and a floor.
func (g *Game) drawCauldron(dst *core.Screen, cam core.Camera) {
	_, c, t, ok := g.cauldronEntity()
	if !ok {
		return
	}
	box := core.BoxAround(t.Pos, c.Size, c.Size)
	x0, y0 := cam.WorldToViewport(core.V(box.MinX, box.MaxY))
	x1, y1 := cam.WorldToViewport(core.V(box.MaxX, box.MinY))
	x1 = core.Clamp(x1, x0, cam.ViewW-1)
	y1 = core.Clamp(y1, y0, cam.ViewH-1)

	for y := y0; y < y1; y++ {
		dst.SetColored(x0, y, WallChar, core.ColorYellow)
		dst.SetColored(x1, y, WallChar, core.ColorYellow)
	}
	dst.DrawHLine(x0+1, y1, x1-x0-1, FloorChar, core.ColorYellow)
	dst.SetColored(x0, y1, CornerLeft, core.ColorYellow)
	dst.SetColored(x1, y1, CornerRight, core.ColorYellow)
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Caught: %d  Spawned: %d  Lost: %d  Wanted: ", g.caught, g.spawned, g.lost)
	dst.DrawText(1, 0, hud)
	glyph, _ := kindStyle(g.picker.Current())
	dst.SetColored(1+len(hud), 0, glyph, HighlightClr)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
