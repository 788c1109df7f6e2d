package core

// RuntimeConfig contains configuration passed to views at initialization.
// Sizes are in logical units; the renderer maps them onto terminal cells.
type RuntimeConfig struct {
	ScreenW  float64 // Logical screen width
	ScreenH  float64 // Logical screen height
	TickRate int     // Frames per second (default 60)
	Seed     int64   // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  640,
		ScreenH:  384,
		TickRate: 60,
		Seed:     0,
	}
}

// Bounds returns the visible screen area as a rectangle at the origin.
func (c RuntimeConfig) Bounds() Rect {
	return NewRect(0, 0, c.ScreenW, c.ScreenH)
}
