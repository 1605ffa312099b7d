package cauldron

// system is one step of the per-tick update.
type system struct {
	name string
	run  func(g *Game)
	when func(g *Game) bool // nil means always
}

// schedule runs systems in a fixed order. A system's run condition is
// evaluated right before it runs, so it sees the effects of earlier systems
// in the same tick.
type schedule []system

func (s schedule) run(g *Game) {
	for _, sys := range s {
		if sys.when != nil && !sys.when(g) {
			continue
		}
		sys.run(g)
	}
}

// names lists the systems in run order.
func (s schedule) names() []string {
	out := make([]string, len(s))
	for i, sys := range s {
		out[i] = sys.name
	}
	return out
}

func dragging(g *Game) bool {
	return g.tracker.Active()
}

// newSchedule returns the tick order: spawn, detect, translate, sweep, move,
// catch, then the physics step and transform sync.
func newSchedule() schedule {
	return schedule{
		{name: "spawn", run: (*Game).spawnIngredients},
		{name: "detect", run: (*Game).detectDrag},
		{name: "translate", run: (*Game).translateDrag, when: dragging},
		{name: "sweep", run: (*Game).sweepOutside},
		{name: "move", run: (*Game).moveCauldron},
		{name: "catch", run: (*Game).handleCatches},
		{name: "physics", run: (*Game).stepPhysics},
		{name: "sync", run: (*Game).syncTransforms},
	}
}
