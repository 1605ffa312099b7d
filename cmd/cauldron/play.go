package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cauldron/internal/audio"
	"github.com/vovakirdan/cauldron/internal/core"
	"github.com/vovakirdan/cauldron/internal/platform/tui"
	"github.com/vovakirdan/cauldron/internal/registry"
)

var (
	flagLogFile string
	flagVolume  float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in the terminal. The terminal must report mouse events.

Controls:
  Mouse drag on ingredient  - Fling it on release
  Mouse drag on cauldron    - Move the cauldron
  Tab                       - Next wanted ingredient
  P                         - Pause
  R                         - Restart
  Ctrl+S                    - Screenshot to ~/.cauldron/screenshots
  Q/Esc/Ctrl+C              - Quit

Difficulty options:
  easy   - Slow spawns, speeds up with catches
  normal - Starts at 30% difficulty, progresses to max
  hard   - Fast spawns from the start
  fixed  - No progression, spawns stay at the configured period

Examples:
  cauldron play
  cauldron play --difficulty easy
  cauldron play --volume 0 --log /tmp/cauldron.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file (default: discard)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume in [0, 1], 0 disables sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	var cues audio.Cues = audio.Nop{}
	if flagVolume > 0 {
		spk, spkErr := audio.NewSpeaker(flagVolume)
		if spkErr != nil {
			logger.Warn("sound disabled", "error", spkErr)
		} else {
			defer spk.Close()
			cues = spk
		}
	}

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		FloorBound: flagFloorBound,
		Logger:     logger,
		Cues:       cues,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
