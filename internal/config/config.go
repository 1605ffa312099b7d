// Package config provides YAML-based game configuration loading and
// difficulty management for the cauldron game.
package config

import (
	"errors"
	"fmt"
)

// CauldronConfig contains all configuration for the cauldron game.
type CauldronConfig struct {
	World      WorldConfig      `yaml:"world"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Gesture    GestureConfig    `yaml:"gesture"`
	Cauldron   PlayerConfig     `yaml:"cauldron"`
	Sweeper    SweeperConfig    `yaml:"sweeper"`
	Shelves    []ShelfConfig    `yaml:"shelves"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the visible world and its physics.
type WorldConfig struct {
	Width   float64 `yaml:"width"`   // Visible width in world units
	Height  float64 `yaml:"height"`  // Visible height in world units
	Gravity float64 `yaml:"gravity"` // Vertical acceleration, negative = down
}

// SpawnerConfig defines when and how ingredients are spawned.
// Mass, radius and restitution are linear in a random size in [0, 1).
type SpawnerConfig struct {
	Period   float64 `yaml:"period"` // Seconds between spawns
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Jitter   float64 `yaml:"jitter"` // Max horizontal offset either way
	Kinds    int     `yaml:"kinds"`  // Number of ingredient kinds
	Mass     Linear  `yaml:"mass"`
	Radius   Linear  `yaml:"radius"`
	Bounce   Linear  `yaml:"restitution"`
	Friction float64 `yaml:"friction"`
}

// Linear is base + size*per.
type Linear struct {
	Base float64 `yaml:"base"`
	Per  float64 `yaml:"per"`
}

// At evaluates the function for the given size.
func (l Linear) At(size float64) float64 {
	return l.Base + size*l.Per
}

// GestureConfig defines how a drag becomes an impulse.
type GestureConfig struct {
	Torque       float64 `yaml:"torque"`        // Fixed torque impulse on release
	ImpulseScale float64 `yaml:"impulse_scale"` // Multiplier for the linear impulse
}

// PlayerConfig defines the cauldron.
type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	Follow float64 `yaml:"follow"` // Fraction of the remaining distance covered per tick
	Lift   float64 `yaml:"lift"`   // How far above the floor the cauldron may be raised
}

// SweeperConfig defines which ingredients count as gone.
type SweeperConfig struct {
	// FloorBound also removes ingredients that fall below the window.
	FloorBound bool `yaml:"floor_bound"`
}

// ShelfConfig is a static rotated box.
type ShelfConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Angle  float64 `yaml:"angle"` // Radians, counter-clockwise
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnReduction float64 `yaml:"spawn_reduction"` // Fraction of the period removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the values the simulation cannot work without.
func (c CauldronConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	case c.Spawner.Period <= 0:
		return fmt.Errorf("%w: spawner period must be positive, got %v", ErrInvalid, c.Spawner.Period)
	case c.Spawner.Kinds <= 0:
		return fmt.Errorf("%w: spawner kinds must be positive, got %d", ErrInvalid, c.Spawner.Kinds)
	case c.Spawner.Radius.At(0) <= 0:
		return fmt.Errorf("%w: ingredient radius must be positive", ErrInvalid)
	case c.Spawner.Mass.At(0) <= 0:
		return fmt.Errorf("%w: ingredient mass must be positive", ErrInvalid)
	case c.Cauldron.Size <= 0:
		return fmt.Errorf("%w: cauldron size must be positive, got %v", ErrInvalid, c.Cauldron.Size)
	case c.Cauldron.Follow <= 0 || c.Cauldron.Follow > 1:
		return fmt.Errorf("%w: cauldron follow must be in (0, 1], got %v", ErrInvalid, c.Cauldron.Follow)
	}
	for i, s := range c.Shelves {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: shelf %d size must be positive", ErrInvalid, i)
		}
	}
	return nil
}

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
