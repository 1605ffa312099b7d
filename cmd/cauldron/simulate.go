package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cauldron/internal/core"
	"github.com/vovakirdan/cauldron/internal/games/cauldron"
	"github.com/vovakirdan/cauldron/internal/registry"
)

var (
	flagTicks      int
	flagFlingEvery int
	flagWidth      int
	flagHeight     int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [game]",
	Short: "Run the game headless with a scripted player",
	Long: `Runs the simulation without a terminal UI. A scripted player grabs the
highest ingredient every --fling-every ticks and flings it toward the
cauldron. Logs go to stderr and a summary is printed at the end.

Examples:
  cauldron simulate --ticks 3600 --seed 42
  cauldron simulate --fling-every 0 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFlingEvery, "fling-every", 120, "Start a fling every N ticks (0 = never)")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 128, "Virtual viewport width in cells")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 72, "Virtual viewport height in cells")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		FloorBound: flagFloorBound,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     seed,
	})

	// Only the cauldron exposes what the scripted player needs.
	cg, scripted := game.(*cauldron.Game)
	bot := &flinger{every: flagFlingEvery}

	var state core.GameState
	for tick := 1; tick <= flagTicks; tick++ {
		in := core.NewInputFrame()
		if scripted {
			in.Pointer = bot.pointer(cg, tick)
		}
		state = game.Step(in).State
	}

	logger.Info("simulation finished", "ticks", flagTicks, "seed", seed)
	fmt.Printf("ticks=%d caught=%d spawned=%d lost=%d\n", flagTicks, state.Score, state.Spawned, state.Lost)
	return nil
}

// flingSteps is how many ticks a scripted gesture moves before release.
const flingSteps = 3

// flinger plays scripted gestures: press on the highest ingredient, move
// toward the cauldron for flingSteps ticks, then release.
type flinger struct {
	every int
	step  int // 0 when idle
	from  core.Vec2
	to    core.Vec2
}

// pointer returns the pointer state for the given tick.
func (f *flinger) pointer(g *cauldron.Game, tick int) core.Pointer {
	cam := g.Camera()
	view := core.NewRect(0, 0, cam.ViewW, cam.ViewH)
	at := func(p core.Vec2, primary bool) core.Pointer {
		x, y := cam.WorldToViewport(p)
		inside := view.Contains(x, y)
		return core.Pointer{X: x, Y: y, Inside: inside, Primary: primary && inside}
	}

	switch {
	case f.step == 0:
		if f.every <= 0 || tick%f.every != 0 {
			return core.Pointer{}
		}
		target, ok := highest(cam, g.Ingredients())
		if !ok {
			return core.Pointer{}
		}
		f.from = target.Pos
		f.to = g.CauldronPos()
		f.step = 1
		return at(f.from, true)

	case f.step <= flingSteps:
		p := f.from.Lerp(f.to, float64(f.step)/float64(flingSteps+1))
		f.step++
		return at(p, true)

	default:
		f.step = 0
		return at(f.to, false)
	}
}

// highest returns the on-screen ingredient with the greatest y.
func highest(cam core.Camera, ings []cauldron.IngredientView) (cauldron.IngredientView, bool) {
	view := core.NewRect(0, 0, cam.ViewW, cam.ViewH)
	var best cauldron.IngredientView
	found := false
	for _, ing := range ings {
		if !view.Contains(cam.WorldToViewport(ing.Pos)) {
			continue
		}
		if !found || ing.Pos.Y > best.Pos.Y {
			best = ing
			found = true
		}
	}
	return best, found
}
