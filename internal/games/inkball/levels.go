package inkball

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-inkball/internal/config"
	"github.com/vovakirdan/tui-inkball/internal/games/inkball/engine"
)

// LevelsFromConfig validates the configuration and converts every level to an
// engine descriptor. Layout files are read here, so the engine never touches
// the filesystem.
func LevelsFromConfig(cfg config.InkballConfig) ([]engine.LevelDescriptor, error) {
	if len(cfg.Levels) == 0 {
		return nil, &engine.ConfigError{Level: 0, Field: "levels"}
	}

	increase, err := colorTable(cfg.ScoreIncrease, "score_increase_from_hole_capture")
	if err != nil {
		return nil, err
	}
	decrease, err := colorTable(cfg.ScoreDecrease, "score_decrease_from_wrong_hole")
	if err != nil {
		return nil, err
	}

	levels := make([]engine.LevelDescriptor, 0, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		if lc.Time == nil {
			return nil, &engine.ConfigError{Level: i, Field: "time"}
		}
		if lc.SpawnInterval == nil {
			return nil, &engine.ConfigError{Level: i, Field: "spawn_interval"}
		}
		if lc.IncreaseModifier == nil {
			return nil, &engine.ConfigError{Level: i, Field: "score_increase_from_hole_capture_modifier"}
		}
		if lc.DecreaseModifier == nil {
			return nil, &engine.ConfigError{Level: i, Field: "score_decrease_from_wrong_hole_modifier"}
		}

		rows, err := cfg.ReadLayout(lc.Layout)
		if err != nil {
			return nil, &engine.ConfigError{Level: i, Field: "layout", Err: err}
		}

		balls := make([]engine.ColorIndex, 0, len(lc.Balls))
		for _, name := range lc.Balls {
			c, ok := engine.ParseColor(name)
			if !ok {
				return nil, &engine.ConfigError{Level: i, Field: "balls", Err: fmt.Errorf("unknown color %q", name)}
			}
			balls = append(balls, c)
		}

		d := engine.LevelDescriptor{
			Name:          lc.Name,
			Time:          *lc.Time,
			SpawnInterval: *lc.SpawnInterval,
			Rules: engine.ScoreRules{
				Increase:         increase,
				Decrease:         decrease,
				IncreaseModifier: *lc.IncreaseModifier,
				DecreaseModifier: *lc.DecreaseModifier,
			},
			Balls:  balls,
			Layout: rows,
		}
		if d.Name == "" {
			d.Name = fmt.Sprintf("Level %d", i+1)
		}
		if err := d.Validate(i); err != nil {
			return nil, err
		}
		levels = append(levels, d)
	}
	return levels, nil
}

// colorTable converts a color-name keyed score map. Colors missing from the
// map score zero.
func colorTable(m map[string]int, field string) (map[engine.ColorIndex]int, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[engine.ColorIndex]int, len(m))
	for _, name := range names {
		c, ok := engine.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("inkball: %s: unknown color %q: %w", field, name, engine.ErrConfiguration)
		}
		out[c] = m[name]
	}
	return out, nil
}
