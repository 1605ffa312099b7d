package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/cauldron.yaml
var defaultCauldronYAML []byte

// DefaultCauldronConfig returns the default cauldron game configuration.
func DefaultCauldronConfig() CauldronConfig {
	return CauldronConfig{
		World: WorldConfig{
			Width:   1280,
			Height:  720,
			Gravity: -98.1, // 9.81 m/s² at 10 units per metre
		},
		Spawner: SpawnerConfig{
			Period:   3.0,
			X:        -200,
			Y:        580,
			Jitter:   20,
			Kinds:    11,
			Mass:     Linear{Base: 0.2, Per: 4},
			Radius:   Linear{Base: 20, Per: 40},
			Bounce:   Linear{Base: 0.8, Per: -1},
			Friction: 0.5,
		},
		Gesture: GestureConfig{
			Torque:       14.0,
			ImpulseScale: 1.0,
		},
		Cauldron: PlayerConfig{
			Size:   150,
			Follow: 0.7,
			Lift:   120,
		},
		Sweeper: SweeperConfig{
			FloorBound: false,
		},
		Shelves: []ShelfConfig{
			{X: -200, Y: 214, Width: 500, Height: 50, Angle: -math.Pi / 15.7},
			{X: 300, Y: 58, Width: 400, Height: 50, Angle: math.Pi / 10},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpawnReduction: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCauldronYAML
}
