package cauldron

import "github.com/vovakirdan/cauldron/internal/core"

// Ingredient marks a falling ingredient.
type Ingredient struct {
	Kind int    // 0..MaxKind, picks glyph and colour
	Seq  uint64 // spawn order, higher is newer
}

// Transform is the pose copied back from the physics world every tick.
type Transform struct {
	Pos   core.Vec2
	Angle float64
}

// Collider is the ingredient's bounding circle.
type Collider struct {
	Radius float64
}

// Cauldron is the player-controlled container. Exactly one exists.
type Cauldron struct {
	Selected bool // never set; kept for parity with the ingredient picker
	Size     float64
}

// Shelf is a static rotated box ingredients tumble off.
type Shelf struct {
	Width, Height float64
}

// MaxKind is the highest ingredient kind id.
const MaxKind = 10
