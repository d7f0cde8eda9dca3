package core

import "time"

// RuntimeConfig contains configuration passed to the game loop and platforms.
type RuntimeConfig struct {
	Title      string  // Window/terminal title
	CanvasW    int     // Logical canvas width in pixels
	CanvasH    int     // Logical canvas height in pixels
	ClearColor Color   // Background drawn before the map
	FixedStep  float64 // Seconds per physics tick
	Damping    float32 // Velocity fraction removed per tick
	Accel      float32 // Velocity added per tick per held direction
	FrameLimit int     // Rendered frames per second, 0 = unthrottled

	// HoldDuration is how long a key counts as held after its last press.
	// Terminals report presses and repeats, never releases.
	HoldDuration time.Duration

	Bindings KeyBindings
}

// DefaultConfig returns a RuntimeConfig matching the reference game:
// a 768x432 window, 100Hz physics, 0.2 damping and unit acceleration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Title:        "I Wanna Be The Suleyth",
		CanvasW:      768,
		CanvasH:      432,
		ClearColor:   ColorWhite,
		FixedStep:    0.01,
		Damping:      0.2,
		Accel:        1.0,
		FrameLimit:   60,
		HoldDuration: 150 * time.Millisecond,
		Bindings:     DefaultBindings(),
	}
}

// FrameInterval returns the target time per rendered frame, or 0 when unthrottled.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.FrameLimit <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FrameLimit)
}
