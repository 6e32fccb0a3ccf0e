package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-inkball/internal/core"
	"github.com/vovakirdan/tui-inkball/internal/games/inkball"
	"github.com/vovakirdan/tui-inkball/internal/platform/tui"
	"github.com/vovakirdan/tui-inkball/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Inkball",
	Long: `Start playing the configured levels.

Controls:
  Left drag     - Draw an ink line
  Right click   - Erase the line under the cursor
  Space/P       - Pause
  R             - Restart from the first level
  ?             - Toggle help
  Ctrl+S        - Save a text screenshot to ~/.inkball/screenshots
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 50% more time and slower spawns
  normal - Level settings as configured
  hard   - 25% less time and faster spawns

Examples:
  inkball play
  inkball play --difficulty hard
  inkball play --level 3
  inkball play --config ./my-levels/inkball.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addLevelFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on (1-based)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyLevelFlags(); err != nil {
		return err
	}
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}
	inkball.SetStartLevel(flagLevel)

	// Logs would garble the alternate screen, so they go to a file.
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	game := inkball.New(inkball.WithLogger(log.Default()))
	if err := game.Load(); err != nil {
		return fmt.Errorf("cannot load levels: %w", err)
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

	// Continue without storage if the database cannot be opened
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// openLogFile opens ~/.inkball/inkball.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".inkball")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "inkball.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
