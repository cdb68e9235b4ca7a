package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.brickout/config.yaml -> ./config.yaml -> defaults.
// Missing fields in a loaded file fall back to the defaults; an explicit
// customPath that cannot be read or parsed is an error.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, validate(cfg)
			}
		}
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, validate(cfg)
		}
	}

	return cfg, nil
}

// userConfigPath returns the per-user config path, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickout", "config.yaml")
}

func validate(cfg Config) error {
	if cfg.Timing.TickIntervalMS <= 0 {
		return fmt.Errorf("config: tick_interval_ms must be positive, got %d", cfg.Timing.TickIntervalMS)
	}
	if cfg.Timing.ResetDelayMS <= 0 {
		return fmt.Errorf("config: reset_delay_ms must be positive, got %d", cfg.Timing.ResetDelayMS)
	}
	return nil
}
