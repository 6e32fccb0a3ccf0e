package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInkballEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadInkball("")
	if err != nil {
		t.Fatalf("LoadInkball() failed: %v", err)
	}
	if cfg.Dir() != "" {
		t.Errorf("embedded config should have no directory, got %q", cfg.Dir())
	}
	if len(cfg.Levels) != 3 {
		t.Fatalf("expected 3 default levels, got %d", len(cfg.Levels))
	}
	if cfg.ScoreIncrease["yellow"] != 100 {
		t.Errorf("yellow increase = %d, expected 100", cfg.ScoreIncrease["yellow"])
	}

	for i, lvl := range cfg.Levels {
		rows, err := cfg.ReadLayout(lvl.Layout)
		if err != nil {
			t.Fatalf("level %d: ReadLayout(%q) failed: %v", i, lvl.Layout, err)
		}
		if len(rows) != 18 {
			t.Errorf("level %d: expected 18 rows, got %d", i, len(rows))
		}
	}
}

func TestLoadInkballLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "configs", "inkball.yaml"), `
levels:
  - layout: only.txt
    time: 30
    spawn_interval: 5
    balls: [grey]
`)

	cfg, err := LoadInkball("")
	if err != nil {
		t.Fatalf("LoadInkball() failed: %v", err)
	}
	if len(cfg.Levels) != 1 || *cfg.Levels[0].Time != 30 {
		t.Errorf("expected the local config, got %+v", cfg.Levels)
	}
}

func TestLoadInkballCustomJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	writeFile(t, path, `{
  "levels": [
    {
      "layout": "level1.txt",
      "time": 120,
      "spawn_interval": 10,
      "score_increase_from_hole_capture_modifier": 1,
      "score_decrease_from_wrong_hole_modifier": 1,
      "balls": ["blue", "orange", "grey", "yellow"]
    }
  ],
  "score_increase_from_hole_capture": {"grey": 70, "orange": 50, "blue": 50, "green": 50, "yellow": 100},
  "score_decrease_from_wrong_hole": {"grey": 0, "orange": 25, "blue": 25, "green": 25, "yellow": 100}
}`)
	layout := "XXXXXXXXXXXXXXXXXX\nX  S             X\n"
	writeFile(t, filepath.Join(dir, "level1.txt"), layout)

	cfg, err := LoadInkball(path)
	if err != nil {
		t.Fatalf("LoadInkball() failed: %v", err)
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir() = %q, expected %q", cfg.Dir(), dir)
	}

	lvl := cfg.Levels[0]
	if *lvl.SpawnInterval != 10 || len(lvl.Balls) != 4 {
		t.Errorf("unexpected level: %+v", lvl)
	}
	if lvl.IncreaseModifier == nil || *lvl.IncreaseModifier != 1 {
		t.Errorf("increase modifier = %v, expected 1", lvl.IncreaseModifier)
	}

	rows, err := cfg.ReadLayout(lvl.Layout)
	if err != nil {
		t.Fatalf("ReadLayout() failed: %v", err)
	}
	if len(rows) != 2 || rows[1] != "X  S             X" {
		t.Errorf("layout should come from the config directory, got %q", rows)
	}
}

func TestLoadInkballCustomPathErrors(t *testing.T) {
	if _, err := LoadInkball(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "levels: [unterminated")
	if _, err := LoadInkball(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestMissingKeysStayNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "levels:\n  - layout: level1.txt\n    balls: [grey]\n")

	cfg, err := LoadInkball(path)
	if err != nil {
		t.Fatalf("LoadInkball() failed: %v", err)
	}
	lvl := cfg.Levels[0]
	if lvl.Time != nil || lvl.SpawnInterval != nil {
		t.Error("missing time and spawn_interval should stay nil")
	}
	if lvl.IncreaseModifier != nil || lvl.DecreaseModifier != nil {
		t.Error("missing score modifiers should stay nil")
	}
}

func TestReadLayout(t *testing.T) {
	cfg := InkballConfig{dir: t.TempDir()}

	// Falls back to the embedded file by base name
	rows, err := cfg.ReadLayout("levels/level2.txt")
	if err != nil {
		t.Fatalf("ReadLayout() fallback failed: %v", err)
	}
	if len(rows) != 18 {
		t.Errorf("expected 18 rows, got %d", len(rows))
	}

	rows, err = cfg.ReadLayout("XX\r\nS \n")
	if err != nil {
		t.Fatalf("inline layout failed: %v", err)
	}
	if len(rows) != 2 || rows[0] != "XX" || rows[1] != "S " {
		t.Errorf("inline layout rows = %q", rows)
	}

	if _, err := cfg.ReadLayout("nope.txt"); err == nil {
		t.Error("unknown layout should fail")
	}
	if _, err := cfg.ReadLayout(""); !errors.Is(err, ErrNoLayout) {
		t.Errorf("empty layout error = %v, expected ErrNoLayout", err)
	}
}

func TestApplyInkballPreset(t *testing.T) {
	time, interval := 120, 10
	cfg := InkballConfig{Levels: []LevelConfig{
		{Time: &time, SpawnInterval: &interval},
		{},
	}}

	easy := cloneLevels(cfg)
	ApplyInkballPreset(&easy, DifficultyEasy)
	if *easy.Levels[0].Time != 180 || *easy.Levels[0].SpawnInterval != 15 {
		t.Errorf("easy: time=%d interval=%d", *easy.Levels[0].Time, *easy.Levels[0].SpawnInterval)
	}
	if easy.Levels[1].Time != nil {
		t.Error("missing values must stay missing")
	}

	hard := cloneLevels(cfg)
	ApplyInkballPreset(&hard, DifficultyHard)
	if *hard.Levels[0].Time != 90 || *hard.Levels[0].SpawnInterval != 8 {
		t.Errorf("hard: time=%d interval=%d", *hard.Levels[0].Time, *hard.Levels[0].SpawnInterval)
	}

	ApplyInkballPreset(&cfg, DifficultyNormal)
	if *cfg.Levels[0].Time != 120 {
		t.Error("normal preset should not change the config")
	}
	if time != 120 || interval != 10 {
		t.Error("presets must not write through the source pointers")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard"} {
		if p, ok := ParseDifficultyPreset(s); !ok || string(p) != s {
			t.Errorf("ParseDifficultyPreset(%q) = %q, %v", s, p, ok)
		}
	}
	if _, ok := ParseDifficultyPreset("insane"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func cloneLevels(cfg InkballConfig) InkballConfig {
	out := cfg
	out.Levels = append([]LevelConfig(nil), cfg.Levels...)
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
