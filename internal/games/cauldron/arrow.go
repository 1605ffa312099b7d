package cauldron

import (
	"math"

	"github.com/vovakirdan/cauldron/internal/core"
)

// arrow is the drag feedback gizmo, from the drag start to start+impulse.
type arrow struct {
	from, to core.Vec2
	visible  bool
}

func (a *arrow) Show(from, to core.Vec2) {
	a.from, a.to, a.visible = from, to, true
}

func (a *arrow) Hide() {
	*a = arrow{}
}

// arrowHeads are indexed by octant, counter-clockwise from +x.
var arrowHeads = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// headRune picks the arrow head for direction d (world y up).
func headRune(d core.Vec2) rune {
	if d == (core.Vec2{}) {
		return '•'
	}
	angle := math.Atan2(d.Y, d.X)
	octant := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrowHeads[octant]
}

func (a *arrow) render(dst *core.Screen, cam core.Camera) {
	if !a.visible {
		return
	}
	x0, y0 := cam.WorldToViewport(a.from)
	x1, y1 := cam.WorldToViewport(a.to)
	dst.DrawLine(x0, y0, x1, y1, '·', core.ColorRed)
	dst.SetColored(x1, y1, headRune(a.to.Sub(a.from)), core.ColorBrightRed)
}
