package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-inkball/internal/config"
	"github.com/vovakirdan/tui-inkball/internal/games/inkball"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addLevelFlags registers the flags that select which levels are loaded.
func addLevelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom inkball config (YAML or JSON)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyLevelFlags hands the level flags to the game package.
func applyLevelFlags() error {
	if flagDifficulty != "" {
		if _, ok := config.ParseDifficultyPreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
	}
	inkball.SetConfigPath(flagConfig)
	inkball.SetDifficultyPreset(flagDifficulty)
	return nil
}
