// cauldron is a terminal catching game driven by mouse gestures.
//
// Usage:
//
//	cauldron list              - List available games
//	cauldron play [game]       - Play a game (default: cauldron)
//	cauldron simulate [game]   - Run the game headless with a scripted player
//	cauldron config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
//	--floor-bound        - Despawn ingredients below the window (default: true)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cauldron/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/cauldron/internal/games/cauldron"
)

const defaultGame = "cauldron"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagFloorBound bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cauldron",
	Short: "Cauldron - fling ingredients into the pot",
	Long: `Cauldron is a terminal game: ingredients tumble off a shelf and you
catch them in the cauldron, either by dragging the cauldron along the floor
or by flinging ingredients into it with the mouse.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  simulate  - Run headless with a scripted player
  config    - Print the default configuration

Examples:
  cauldron play
  cauldron play --difficulty hard --log /tmp/cauldron.log
  cauldron simulate --ticks 3600 --seed 42
  cauldron config > my-cauldron.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagFloorBound, "floor-bound", true, "Despawn ingredients that fall below the window")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cauldron",
		Level:           level,
	}), nil
}

// gameArg returns the game named on the command line or the default.
func gameArg(args []string) (string, error) {
	id := defaultGame
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q, run 'cauldron list' to see available games", id)
	}
	return id, nil
}
