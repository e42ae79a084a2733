// Package config carries the tunable parsing/validation behavior of the
// module, mirrored on gateway-go/internal/config.Config: a plain struct
// with yaml tags, a Default() constructor, and a Load() that overlays a
// YAML file onto the defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls parser tolerances and validation reporting mode. None of
// it changes wire-format semantics; it only controls how strictly this
// module reacts to borderline input.
type Config struct {
	Version    string           `yaml:"version"`
	Parser     ParserConfig     `yaml:"parser"`
	Validation ValidationConfig `yaml:"validation"`
}

// ParserConfig controls tolerance of non-canonical input.
type ParserConfig struct {
	// MaxMessageBytes bounds the raw input accepted by ParseAuto, guarding
	// against unbounded allocation on malformed input with no trailer.
	MaxMessageBytes int `yaml:"max_message_bytes"`
}

// ValidationConfig controls how NVR violations are reported.
type ValidationConfig struct {
	// ShortCircuit stops at the first validation failure instead of
	// collecting every violation into a Report (spec.md §7).
	ShortCircuit bool `yaml:"short_circuit"`

	// MaxOccurrenceOverrides lets an integrator relax a message type's
	// maximum repeat count for a given tag without forking the schema,
	// keyed "MT/TAG" e.g. "940/61".
	MaxOccurrenceOverrides map[string]int `yaml:"max_occurrence_overrides"`
}

// Default returns the module's out-of-the-box configuration: strict
// decimal-comma-only parsing is relaxed (dot accepted), validation collects
// every error rather than stopping at the first.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Parser: ParserConfig{
			MaxMessageBytes: 1 << 20,
		},
		Validation: ValidationConfig{
			ShortCircuit:           false,
			MaxOccurrenceOverrides: map[string]int{},
		},
	}
}

// Load reads a YAML file at path and overlays it onto Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
