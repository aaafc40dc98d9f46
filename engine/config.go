package engine

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigKey is the fixed top-level key engine registrations live under in an
// external config document.
const ConfigKey = "notifications"

// Config maps engine names to either a boolean-true sentinel (use defaults)
// or a configuration map passed to the engine's Setup. False or nil values
// disable the entry.
type Config map[string]any

// LoadConfig reads engine registrations from a YAML file, taken from the
// fixed ConfigKey. A file without that key yields an empty Config, which
// leaves the caller's programmatic registrations untouched.
//
//	notifications:
//	  html: true
//	  humane:
//	    theme: bigbox
//	  json:
//	    field: messages
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read engine config: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse engine config: %w", err)
	}

	section, ok := doc[ConfigKey].(map[string]any)
	if !ok {
		return Config{}, nil
	}
	return Config(section), nil
}

// Merge overlays external registrations on top of c and returns the result.
// On key collision the external entry wins: programmatic config takes lower
// precedence than externally-loaded config. Neither input is modified.
func (c Config) Merge(external Config) Config {
	merged := make(Config, len(c)+len(external))
	maps.Copy(merged, c)
	maps.Copy(merged, external)
	return merged
}
