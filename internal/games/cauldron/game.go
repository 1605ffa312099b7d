// Package cauldron implements the cauldron catching game.
// Ingredients drop off a shelf; the player drags the cauldron along the
// floor or flings ingredients into it with mouse gestures. Motion is
// simulated by a rigid-body world and entities live in an ECS world.
package cauldron

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/cauldron/internal/audio"
	"github.com/vovakirdan/cauldron/internal/config"
	"github.com/vovakirdan/cauldron/internal/core"
	"github.com/vovakirdan/cauldron/internal/gesture"
	"github.com/vovakirdan/cauldron/internal/physics"
	"github.com/vovakirdan/cauldron/internal/registry"
)

const (
	ID    = "cauldron"
	Title = "Cauldron"
)

// Game implements the cauldron game logic.
type Game struct {
	cfg  config.CauldronConfig
	log  *log.Logger
	cues audio.Cues

	runtime core.RuntimeConfig
	camera  core.Camera
	rng     *rand.Rand
	dt      float64 // seconds per tick

	world            *ecs.World
	ingredients      *ecs.Map3[Ingredient, Transform, Collider]
	cauldrons        *ecs.Map2[Cauldron, Transform]
	shelves          *ecs.Map2[Shelf, Transform]
	ingredientFilter *ecs.Filter3[Ingredient, Transform, Collider]
	cauldronFilter   *ecs.Filter2[Cauldron, Transform]
	shelfFilter      *ecs.Filter2[Shelf, Transform]

	physics    *physics.World
	tracker    gesture.Tracker
	arrow      arrow
	timer      SpawnTimer
	difficulty *config.DifficultyManager
	picker     Picker
	schedule   schedule

	pointer core.Pointer
	ticks   int
	nextSeq uint64
	caught  int
	spawned int
	lost    int
	paused  bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithCues sets the sound cue player. The default is silent.
func WithCues(c audio.Cues) Option {
	return func(g *Game) {
		if c != nil {
			g.cues = c
		}
	}
}

// New creates a new cauldron game. Call Reset before stepping it.
func New(cfg config.CauldronConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		log:      log.New(io.Discard),
		cues:     audio.Nop{},
		schedule: newSchedule(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset builds a fresh scene: shelves, the cauldron, and an empty sky.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.runtime = rc
	g.dt = rc.TickDuration().Seconds()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.camera = core.NewCamera(rc.ScreenW, rc.ScreenH, g.cfg.World.Width, g.cfg.World.Height)

	w := ecs.NewWorld()
	g.world = &w
	g.ingredients = ecs.NewMap3[Ingredient, Transform, Collider](g.world)
	g.cauldrons = ecs.NewMap2[Cauldron, Transform](g.world)
	g.shelves = ecs.NewMap2[Shelf, Transform](g.world)
	g.ingredientFilter = ecs.NewFilter3[Ingredient, Transform, Collider](g.world)
	g.cauldronFilter = ecs.NewFilter2[Cauldron, Transform](g.world)
	g.shelfFilter = ecs.NewFilter2[Shelf, Transform](g.world)
	g.physics = physics.NewWorld(g.cfg.World.Gravity)

	g.tracker.Reset()
	g.arrow.Hide()
	g.timer = NewSpawnTimer(g.cfg.Spawner.Period)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.picker = NewPicker(g.cfg.Spawner.Kinds)

	g.pointer = core.Pointer{}
	g.ticks = 0
	g.nextSeq = 0
	g.caught, g.spawned, g.lost = 0, 0, 0
	g.paused = false

	g.buildScene()
	g.requireOneCauldron()

	g.log.Info("scene ready", "seed", rc.Seed, "tick_rate", rc.TickRate,
		"view", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH))
}

// buildScene adds the static shelves and the cauldron resting on the floor.
func (g *Game) buildScene() {
	for _, sc := range g.cfg.Shelves {
		pos := core.V(sc.X, sc.Y)
		e := g.shelves.NewEntity(
			&Shelf{Width: sc.Width, Height: sc.Height},
			&Transform{Pos: pos, Angle: sc.Angle},
		)
		g.physics.AddShelf(e, pos, sc.Width, sc.Height, sc.Angle, g.cfg.Spawner.Friction)
	}

	size := g.cfg.Cauldron.Size
	pos := core.V(0, -g.cfg.World.Height/2+size/2)
	e := g.cauldrons.NewEntity(&Cauldron{Size: size}, &Transform{Pos: pos})
	g.physics.AddContainer(e, pos, size)
}

// requireOneCauldron panics unless exactly one cauldron exists. Every
// system that touches the cauldron relies on it.
func (g *Game) requireOneCauldron() {
	n := 0
	query := g.cauldronFilter.Query()
	for query.Next() {
		n++
	}
	if n != 1 {
		panic(fmt.Sprintf("cauldron: expected exactly one cauldron, found %d", n))
	}
}

// Resize follows a terminal resize. The world keeps its size; only the
// camera changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.camera = core.NewCamera(w, h, g.cfg.World.Width, g.cfg.World.Height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.log.Info("pause toggled", "paused", g.paused)
	}
	if in.Has(core.ActionNext) {
		g.picker.Next()
	}
	g.pointer = in.Pointer

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.schedule.run(g)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.caught,
		Spawned: g.spawned,
		Lost:    g.lost,
		Paused:  g.paused,
	}
}

// Camera returns the current cell/world mapping.
func (g *Game) Camera() core.Camera {
	return g.camera
}

// IngredientView is a read-only snapshot of one ingredient.
type IngredientView struct {
	Entity ecs.Entity
	Kind   int
	Seq    uint64
	Pos    core.Vec2
	Radius float64
}

// Ingredients returns all live ingredients in no particular order.
func (g *Game) Ingredients() []IngredientView {
	var out []IngredientView
	query := g.ingredientFilter.Query()
	for query.Next() {
		ing, t, c := query.Get()
		out = append(out, IngredientView{
			Entity: query.Entity(),
			Kind:   ing.Kind,
			Seq:    ing.Seq,
			Pos:    t.Pos,
			Radius: c.Radius,
		})
	}
	return out
}

// CauldronPos returns the centre of the cauldron.
func (g *Game) CauldronPos() core.Vec2 {
	_, _, t, ok := g.cauldronEntity()
	if !ok {
		return core.Vec2{}
	}
	return t.Pos
}

// Register the game with the registry
func init() {
	registry.Register(ID, Title, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadCauldron(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyCauldronPreset(&cfg, preset)
		if opts.FloorBound {
			cfg.Sweeper.FloorBound = true
		}
		return New(cfg, WithLogger(opts.Logger), WithCues(opts.Cues)), nil
	})
}
