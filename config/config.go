package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI configuration
type Config struct {
	// Timezone is the default IANA timezone used to interpret zone-less datetimes, e.g. "Europe/London"
	Timezone string `yaml:"timezone,omitempty"`
	// Boundary selects which edge of the settlement period conversions report: "right", "left" or "middle"
	Boundary string `yaml:"boundary,omitempty"`
}

// DefaultConfigPath returns the config file path used when none is given on the command line.
func DefaultConfigPath() string {
	return "sp2ts.yaml"
}

// Load reads the config file, returning zero-value defaults if the file does not exist.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
