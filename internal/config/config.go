// Package config defines game configuration and how it is loaded.
package config

import (
	"errors"

	"github.com/spacehole-rogue/spacecleanup/internal/world"
)

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Config contains process configuration.
type Config struct {
	// Duration is the length of a round in seconds.
	Duration int `koanf:"duration"`

	// Items is the catalog of things to stow. Targets are derived from it.
	Items []world.Item `koanf:"items"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Width and Height set the logical screen size in pixels.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	// Seed feeds the spark and starfield rngs. Zero picks one from the clock.
	Seed uint64 `koanf:"seed"`

	// Mute disables tone playback.
	Mute bool `koanf:"mute"`

	// Volume scales tones exponentially in base 2: 0 is unchanged, -1 halves.
	Volume float64 `koanf:"volume"`
}

// Volume bounds. Above MaxVolume the envelope peak clips.
const (
	MinVolume = -10.0
	MaxVolume = 2.0
)

// New returns a Config holding the built-in defaults.
func New() *Config {
	return &Config{
		Duration: 45,
		Items:    world.DefaultItems(),
		LogLevel: "info",
		Width:    1280,
		Height:   720,
	}
}
