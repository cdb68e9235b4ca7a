package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Timing.TickIntervalMS != 50 {
		t.Errorf("default tick interval = %d ms, expected 50", cfg.Timing.TickIntervalMS)
	}
	if cfg.Timing.ResetDelayMS != 1000 {
		t.Errorf("default reset delay = %d ms, expected 1000", cfg.Timing.ResetDelayMS)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("default db path should be set")
	}
	if cfg.Server.Address != ":23234" {
		t.Errorf("default server address = %q, expected :23234", cfg.Server.Address)
	}

	if cfg.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 50ms", cfg.TickInterval())
	}
	if cfg.ResetDelay() != time.Second {
		t.Errorf("ResetDelay() = %v, expected 1s", cfg.ResetDelay())
	}
	if cfg.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v, expected 30m", cfg.IdleTimeout())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
timing:
  tick_interval_ms: 25
storage:
  db_path: /tmp/test-history.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Timing.TickIntervalMS != 25 {
		t.Errorf("tick interval = %d, expected 25 from file", cfg.Timing.TickIntervalMS)
	}
	if cfg.Storage.DBPath != "/tmp/test-history.db" {
		t.Errorf("db path = %q, expected value from file", cfg.Storage.DBPath)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Timing.ResetDelayMS != 1000 {
		t.Errorf("reset delay = %d, expected default 1000", cfg.Timing.ResetDelayMS)
	}
	if cfg.Server.Address != ":23234" {
		t.Errorf("server address = %q, expected default", cfg.Server.Address)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("an explicit config path that does not exist must be an error")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timing: [not a map"), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("a malformed explicit config must be an error")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "zero tick interval",
			content: `
timing:
  tick_interval_ms: 0
`,
		},
		{
			name: "negative reset delay",
			content: `
timing:
  reset_delay_ms: -5
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("writing test config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("invalid timing values must fail validation")
			}
		})
	}
}
