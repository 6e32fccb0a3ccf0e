// Package config loads game configuration from YAML files.
package config

// InkballConfig is the full game configuration: the ordered level list and
// the per-color score tables shared by every level.
//
// The file format is the same key set as the classic JSON config, so a JSON
// config file also loads (JSON is valid YAML).
type InkballConfig struct {
	Levels        []LevelConfig  `yaml:"levels"`
	ScoreIncrease map[string]int `yaml:"score_increase_from_hole_capture"`
	ScoreDecrease map[string]int `yaml:"score_decrease_from_wrong_hole"`

	// dir is the directory the config was read from. Layout paths are
	// resolved against it. Empty means the embedded defaults.
	dir string
}

// LevelConfig describes one level. Pointer fields distinguish a missing key
// from an explicit zero.
type LevelConfig struct {
	Name             string   `yaml:"name,omitempty"`
	Layout           string   `yaml:"layout"`
	Time             *int     `yaml:"time"`
	SpawnInterval    *int     `yaml:"spawn_interval"`
	IncreaseModifier *float64 `yaml:"score_increase_from_hole_capture_modifier"`
	DecreaseModifier *float64 `yaml:"score_decrease_from_wrong_hole_modifier"`
	Balls            []string `yaml:"balls"`
}

// Dir returns the directory layouts are resolved against, or "" for the
// embedded defaults.
func (c InkballConfig) Dir() string {
	return c.dir
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI value to a preset. Unknown values
// return "" and false.
func ParseDifficultyPreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
