// Package config provides YAML-based platform configuration: tick pacing,
// history database location, and SSH server settings. Gameplay geometry and
// the brick layout are fixed constants in the game package and deliberately
// not configurable.
package config

import "time"

// Config is the root configuration document.
type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// TimingConfig controls the delays the platform feeds the simulation.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"` // delay between simulation ticks
	ResetDelayMS   int `yaml:"reset_delay_ms"`   // delay before a lost ball is re-docked
}

// StorageConfig locates the round-history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address        string `yaml:"address"`
	HostKeyPath    string `yaml:"host_key_path"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			TickIntervalMS: 50,
			ResetDelayMS:   1000,
		},
		Storage: StorageConfig{
			DBPath: "~/.brickout/history.db",
		},
		Server: ServerConfig{
			Address:        ":23234",
			IdleTimeoutMin: 30,
		},
	}
}

// TickInterval returns the tick delay as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// ResetDelay returns the life-reset delay as a duration.
func (c Config) ResetDelay() time.Duration {
	return time.Duration(c.Timing.ResetDelayMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMin) * time.Minute
}
