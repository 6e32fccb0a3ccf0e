package config

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/inkball.yaml
var defaultInkballYAML []byte

//go:embed defaults/levels/*.txt
var defaultLevels embed.FS

// DefaultInkballConfig returns the built-in level set.
func DefaultInkballConfig() InkballConfig {
	var cfg InkballConfig
	if err := yaml.Unmarshal(defaultInkballYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded inkball.yaml is invalid: %v", err))
	}
	return cfg
}
