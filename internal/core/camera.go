package core

// Camera maps terminal cells onto the fixed-size world. The world is
// WorldW x WorldH units centred on the origin; the viewport is ViewW x ViewH
// cells with (0,0) in the top-left corner.
type Camera struct {
	ViewW, ViewH   int
	WorldW, WorldH float64
}

// NewCamera creates a camera for the given viewport and world sizes.
func NewCamera(viewW, viewH int, worldW, worldH float64) Camera {
	return Camera{ViewW: viewW, ViewH: viewH, WorldW: worldW, WorldH: worldH}
}

// Valid reports whether the camera can map between the two spaces.
func (c Camera) Valid() bool {
	return c.ViewW > 0 && c.ViewH > 0 && c.WorldW > 0 && c.WorldH > 0
}

// cellSize returns the world size of one cell.
func (c Camera) cellSize() (float64, float64) {
	return c.WorldW / float64(c.ViewW), c.WorldH / float64(c.ViewH)
}

// ViewportToWorld returns the world point at the centre of cell (x, y).
// ok is false when the cell lies outside the viewport.
func (c Camera) ViewportToWorld(x, y int) (Vec2, bool) {
	if !c.Valid() || x < 0 || y < 0 || x >= c.ViewW || y >= c.ViewH {
		return Vec2{}, false
	}
	cw, ch := c.cellSize()
	return Vec2{
		X: (float64(x)+0.5)*cw - c.WorldW/2,
		Y: c.WorldH/2 - (float64(y)+0.5)*ch,
	}, true
}

// WorldToViewport returns the cell containing world point p.
// The result may lie outside the viewport.
func (c Camera) WorldToViewport(p Vec2) (int, int) {
	if !c.Valid() {
		return -1, -1
	}
	cw, ch := c.cellSize()
	x := (p.X + c.WorldW/2) / cw
	y := (c.WorldH/2 - p.Y) / ch
	return floorInt(x), floorInt(y)
}

// CellsFor returns how many cells a world length spans horizontally and
// vertically, at least one each.
func (c Camera) CellsFor(w, h float64) (int, int) {
	if !c.Valid() {
		return 1, 1
	}
	cw, ch := c.cellSize()
	return max(1, int(w/cw+0.5)), max(1, int(h/ch+0.5))
}

// CursorWorld resolves the pointer to a world position.
// ok is false when the pointer is not over the viewport.
func (c Camera) CursorWorld(p Pointer) (Vec2, bool) {
	if !p.Inside {
		return Vec2{}, false
	}
	return c.ViewportToWorld(p.X, p.Y)
}

func floorInt(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
