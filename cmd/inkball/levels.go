package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-inkball/internal/games/inkball"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Long: `Shows every level of the active configuration with its time limit,
spawn interval and number of balls. The --difficulty preset is applied.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	addLevelFlags(levelsCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	if err := applyLevelFlags(); err != nil {
		return err
	}

	levels, err := inkball.LoadLevels()
	if err != nil {
		return fmt.Errorf("cannot load levels: %w", err)
	}

	// Calculate column widths
	maxNameLen := len("Name")
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %6s  %8s  %5s\n", "#", maxNameLen, "Name", "Time", "Interval", "Balls")
	fmt.Printf("  %-3s  %-*s  %6s  %8s  %5s\n", "-", maxNameLen, "----", "----", "--------", "-----")

	for i, l := range levels {
		fmt.Printf("  %-3d  %-*s  %5ds  %7ds  %5d\n", i+1, maxNameLen, l.Name, l.Time, l.SpawnInterval, len(l.Balls))
	}

	fmt.Println()
	fmt.Println("Run 'inkball play --level <n>' to start on a level.")
	return nil
}
