package config

import "math"

// presetScale returns the multiplier applied to level time and spawn interval.
func presetScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1
	}
}

// ApplyInkballPreset scales every level's time and spawn interval.
// Easy levels last longer and spawn balls more slowly; hard levels are
// shorter and spawn faster. Missing values stay missing so validation still
// reports them.
func ApplyInkballPreset(cfg *InkballConfig, preset DifficultyPreset) {
	scale := presetScale(preset)
	if scale == 1 {
		return
	}
	for i := range cfg.Levels {
		lvl := &cfg.Levels[i]
		lvl.Time = scaleSeconds(lvl.Time, scale)
		lvl.SpawnInterval = scaleSeconds(lvl.SpawnInterval, scale)
	}
}

// scaleSeconds returns a new value so the source config is never aliased.
func scaleSeconds(v *int, scale float64) *int {
	if v == nil || *v <= 0 {
		return v
	}
	s := max(int(math.Round(float64(*v)*scale)), 1)
	return &s
}
