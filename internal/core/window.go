package core

// Window is the platform surface the game loop drives: a render target,
// an event queue and key-down queries. Implementations live under
// internal/platform and are created through the registry.
type Window interface {
	// Target returns the render target drawn into each frame.
	Target() RenderTarget

	// PollEvents drains pending discrete events without blocking.
	PollEvents() []Event

	// KeyDown reports whether k is currently held.
	KeyDown(k Key) bool

	// Present shows the current frame.
	Present() error

	// Close releases the surface and restores the terminal.
	Close() error
}
