package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the operator-level scheduling configuration. Changing a value
// takes effect on the next recompute; it never rewrites stored times.
type Config struct {
	// BufferMinutes is the minimum gap reflow preserves between the end
	// of one event and the start of the next.
	BufferMinutes int `yaml:"buffer_minutes"`

	// LeadMinutes is how long before an event's start its reminder fires.
	LeadMinutes int `yaml:"lead_minutes"`

	// HorizonHours bounds how far ahead reminder timers are armed.
	HorizonHours int `yaml:"horizon_hours"`

	// Working window for free-slot suggestions, as hours of day.
	WorkdayOpenHour  int `yaml:"workday_open_hour"`
	WorkdayCloseHour int `yaml:"workday_close_hour"`

	// TravelSpeedKmh is the assumed commute speed for leave-by estimates.
	TravelSpeedKmh float64 `yaml:"travel_speed_kmh"`

	// RoundToMinutes snaps requested start times to this interval at the
	// creation boundary. Reflow never re-rounds.
	RoundToMinutes int `yaml:"round_to_minutes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BufferMinutes:    20,
		LeadMinutes:      10,
		HorizonHours:     6,
		WorkdayOpenHour:  9,
		WorkdayCloseHour: 18,
		TravelSpeedKmh:   25,
		RoundToMinutes:   15,
	}
}

// Validate rejects configurations the engine cannot honor. A negative
// buffer would make the reflow invariant unsatisfiable, so it is a
// configuration error, never silently clamped.
func (c *Config) Validate() error {
	if c.BufferMinutes < 0 {
		return errors.New("buffer_minutes must not be negative")
	}
	if c.LeadMinutes <= 0 {
		return errors.New("lead_minutes must be positive")
	}
	if c.HorizonHours <= 0 {
		return errors.New("horizon_hours must be positive")
	}
	if c.WorkdayOpenHour < 0 || c.WorkdayCloseHour > 24 || c.WorkdayOpenHour >= c.WorkdayCloseHour {
		return fmt.Errorf("working window %d–%d is not a valid hour range", c.WorkdayOpenHour, c.WorkdayCloseHour)
	}
	if c.TravelSpeedKmh <= 0 {
		return errors.New("travel_speed_kmh must be positive")
	}
	if c.RoundToMinutes <= 0 || c.RoundToMinutes > 60 {
		return errors.New("round_to_minutes must be in 1..60")
	}
	return nil
}

// Load reads the YAML config at path. On first run the file does not
// exist yet: defaults are written there with 0600 permissions and
// returned.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML with owner-only permissions.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
