package core

// RuntimeConfig contains configuration passed to the session at start.
// The terminal size is in cells; the simulation itself runs in the logical
// 1280x720 space and is scaled to cells at render time.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Delta returns the fixed per-tick time step in seconds. Every timer in
// the simulation (ability, spawn, difficulty) advances by this one value,
// keeping them synchronized.
func (c RuntimeConfig) Delta() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}
