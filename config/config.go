package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the runtime settings that can be overridden from a
// YAML file. Everything has a sensible default so the game runs with
// no file at all.
type Config struct {
	// Seed for the world RNG. Zero means derive from the clock.
	Seed int64 `yaml:"seed"`

	Audio Audio `yaml:"audio"`
	Keys  Keys  `yaml:"keys"`
}

// Audio holds the sound settings
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
}

// Keys maps actions to key names. Single runes bind directly; the
// names "space", "enter", "esc", "tab" and the arrow keys are
// recognized as specials.
type Keys struct {
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Attack  string `yaml:"attack"`
	Dodge   string `yaml:"dodge"`
	Restart string `yaml:"restart"`
	Quit    string `yaml:"quit"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 0.7,
		},
		Keys: Keys{
			Up:      "w",
			Down:    "s",
			Left:    "a",
			Right:   "d",
			Attack:  "space",
			Dodge:   "e",
			Restart: "r",
			Quit:    "q",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file
// is not an error; a present but malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config read: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse applies YAML data onto cfg. Only keys present in the data are
// overridden.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return cfg.validate()
}

func (c *Config) validate() error {
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume %.2f out of range [0, 1]", c.Audio.MasterVolume)
	}
	if c.Seed < 0 {
		return fmt.Errorf("seed must not be negative")
	}
	for name, key := range map[string]string{
		"up": c.Keys.Up, "down": c.Keys.Down, "left": c.Keys.Left,
		"right": c.Keys.Right, "attack": c.Keys.Attack,
		"dodge": c.Keys.Dodge, "restart": c.Keys.Restart, "quit": c.Keys.Quit,
	} {
		if key == "" {
			return fmt.Errorf("keys.%s must not be empty", name)
		}
	}
	return nil
}
