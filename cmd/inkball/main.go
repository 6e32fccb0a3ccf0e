// inkball is a terminal rendition of the Inkball physics puzzle: draw ink
// lines with the mouse to steer colored balls into matching holes.
//
// Usage:
//
//	inkball play             - Play the configured levels
//	inkball levels           - List the configured levels
//	inkball serve            - Start SSH server for remote play
//	inkball scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.inkball/scores.db)
//	--log-level <level>   - debug, info, warn or error
//
// Defaults can also come from the environment or a .env file:
// INKBALL_DB, INKBALL_FPS, INKBALL_LOG_LEVEL and INKBALL_SSH_ADDR.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// envFlags maps environment variables to the flags they override.
var envFlags = map[string]string{
	"INKBALL_DB":        "db",
	"INKBALL_FPS":       "fps",
	"INKBALL_LOG_LEVEL": "log-level",
	"INKBALL_SSH_ADDR":  "ssh",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inkball",
	Short: "Inkball - steer colored balls into their holes",
	Long: `Inkball is a physics puzzle played in the terminal with the mouse.
Balls roll out of entry points; drag with the left button to draw ink
lines that bounce them into holes of the same color. Each line vanishes
after one bounce. Right-click erases a line.

Available commands:
  play     - Play the configured levels
  levels   - List the configured levels
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  inkball play
  inkball play --difficulty easy --level 2
  inkball serve --ssh :2222
  inkball scores --tui`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.inkball/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env, applies environment overrides to flags that were not
// set on the command line and configures the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read .env: %w", err)
	}

	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
