package internal

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App  ApplicationConfig `yaml:"app"`
	UI   UIConfig          `yaml:"ui"`
	Seed SeedConfig        `yaml:"seed"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.UI.Validate()
}

// ApplicationConfig holds application-level configuration.
//
// LogFile is where structured logs go; the terminal UI owns stdout, so an
// empty path disables logging entirely.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	LogFile  string     `yaml:"log_file"`
}

// UIConfig holds terminal rendering configuration.
type UIConfig struct {
	// SoundEffectTTL is how long a click overlay stays on screen.
	SoundEffectTTL time.Duration `yaml:"sound_effect_ttl"`
	// AltScreen controls whether the program takes over the full terminal.
	AltScreen bool `yaml:"alt_screen"`
}

// Validate validates the UI configuration.
func (c *UIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SoundEffectTTL, validation.Required, validation.Min(100*time.Millisecond)),
	)
}

// SeedConfig points at an optional seed data file. When Path is empty the
// embedded seed records are used.
type SeedConfig struct {
	Path string `yaml:"path"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		UI: UIConfig{
			SoundEffectTTL: time.Second,
			AltScreen:      true,
		},
	}
}
