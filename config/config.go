// Package config loads the optional YAML document the CLI driver's
// -config flag points at, supplying the two runtime knobs spec.md leaves
// as fixed defaults: the recursion guard's depth and the initial log
// level. CLI flags take precedence over a loaded config file, which takes
// precedence over these built-in defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxCallDepth and DefaultLogLevel match spec.md §4.5/§6.
const (
	DefaultMaxCallDepth = 1000
	DefaultLogLevel     = "warning"
)

// Config is the shape of the YAML document accepted by -config. Both
// fields are optional; a missing one keeps its default.
type Config struct {
	MaxCallDepth int    `yaml:"maxCallDepth"`
	LogLevel     string `yaml:"logLevel"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{MaxCallDepth: DefaultMaxCallDepth, LogLevel: DefaultLogLevel}
}

// Load reads and parses the YAML document at path over top of the
// defaults: a field absent from the document keeps its default rather
// than zeroing out.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MaxCallDepth <= 0 {
		cfg.MaxCallDepth = DefaultMaxCallDepth
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}
