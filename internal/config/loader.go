package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoLayout is returned for a level without a layout reference.
var ErrNoLayout = errors.New("config: level has no layout")

// LoadInkball loads the Inkball configuration.
// Search order: customPath -> ~/.inkball/configs/inkball.yaml -> ./configs/inkball.yaml -> embedded default
func LoadInkball(customPath string) (InkballConfig, error) {
	// A custom path must load; the other locations are optional.
	if customPath != "" {
		return readInkball(customPath)
	}

	if userCfgPath := userConfigPath("inkball.yaml"); userCfgPath != "" {
		if cfg, err := readInkball(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := readInkball(filepath.Join("configs", "inkball.yaml")); err == nil {
		return cfg, nil
	}

	return DefaultInkballConfig(), nil
}

func readInkball(p string) (InkballConfig, error) {
	var cfg InkballConfig
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", p, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", p, err)
	}
	cfg.dir = filepath.Dir(p)
	return cfg, nil
}

// ReadLayout returns the text rows of a level layout.
//
// A layout containing a newline is taken as the rows themselves. Otherwise it
// names a file: relative names are resolved against the config directory,
// and names not found there fall back to the embedded levels by base name.
func (c InkballConfig) ReadLayout(name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNoLayout
	}
	if strings.Contains(name, "\n") {
		return splitLayout(name), nil
	}

	if c.dir != "" || filepath.IsAbs(name) {
		p := name
		if !filepath.IsAbs(p) {
			p = filepath.Join(c.dir, p)
		}
		data, err := os.ReadFile(p)
		if err == nil {
			return splitLayout(string(data)), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to read layout %s: %w", p, err)
		}
	}

	data, err := defaultLevels.ReadFile(path.Join("defaults", "levels", filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("config: layout %q not found: %w", name, err)
	}
	return splitLayout(string(data)), nil
}

// splitLayout splits layout text into rows. A trailing newline does not
// produce an extra empty row.
func splitLayout(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".inkball", "configs", filename)
}
