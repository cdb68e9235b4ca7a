package core

import "time"

// RuntimeConfig carries the platform parameters the game runner needs:
// terminal dimensions and the collaborator-provided delays. The simulation
// itself never reads the clock; ticks and the life-reset are delivered by
// the platform at these intervals.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Delay between simulation ticks
	ResetDelay   time.Duration // Delay before a lost ball is re-docked
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 50 * time.Millisecond,
		ResetDelay:   time.Second,
	}
}
