// Package config loads optional runtime settings from a YAML file.
// Every field has a default; command-line flags override the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings.
type Config struct {
	ContentDir string `yaml:"content_dir"`
	Seed       int64  `yaml:"seed"`
	Plain      bool   `yaml:"plain"`
	DebugLog   string `yaml:"debug_log"`
}

// Default returns the built-in defaults. Seed 0 means "pick from the
// clock" and is resolved by the caller.
func Default() Config {
	return Config{
		ContentDir: "content",
	}
}

// Load reads settings from path, merged over the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
