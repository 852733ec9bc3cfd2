package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/froggit/internal/config"
	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
	"github.com/vovakirdan/froggit/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. Without a level id a picker is shown.

Controls:
  Arrows/WASD  - Hop
  Enter/Space  - Start, next frog
  P/Esc        - Pause
  R            - Restart (after the level ends)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, quick hops, traffic starts slow
  normal - 3 lives, traffic speeds up as homes fill
  hard   - 2 lives, slow hops, traffic starts fast
  fixed  - No progression, lane speeds as written in the level

Examples:
  froggit play
  froggit play level1
  froggit play level3 --difficulty hard
  froggit play bridge --levels ./my-levels
  froggit play --config ./my-froggit.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadFroggit(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyFroggitPreset(&cfg, preset)

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	loader := openLoader()
	loader.Logger = logger

	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		id, err = pickLevel(loader, cfg.Gameplay.Level, width, height)
		if err != nil {
			return err
		}
		if id == "" {
			return nil // Quit from the picker
		}
	}

	lvl, err := loader.LoadByID(id)
	if err != nil {
		return fmt.Errorf("%w (run 'froggit levels' to see available levels)", err)
	}
	logger.Info("starting level", "level", lvl.ID, "difficulty", preset, "lives", cfg.Gameplay.Lives)

	game := froggit.New(lvl, froggit.Options{Config: cfg, Logger: logger})
	state, err := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	switch {
	case state.Won:
		fmt.Printf("%s cleared! Score: %d\n", lvl.Name, state.Score)
	case state.Score > 0:
		fmt.Printf("Score: %d\n", state.Score)
	}
	return nil
}

// pickLevel shows the level picker with initial highlighted and returns the
// chosen id, or "" on quit.
func pickLevel(loader *levels.Loader, initial string, width, height int) (string, error) {
	all, err := loader.LoadAll()
	if err != nil {
		return "", err
	}

	entries := make([]tui.LevelEntry, len(all))
	for i, l := range all {
		entries[i] = tui.LevelEntry{
			ID:    l.ID,
			Name:  l.Name,
			Cols:  l.Layout.Cols,
			Rows:  len(l.Layout.Lanes),
			Goals: l.Goals(),
		}
	}
	return tui.RunLevelSelect(entries, initial, width, height)
}
