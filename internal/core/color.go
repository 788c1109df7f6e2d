package core

import "fmt"

// RGB is a 24-bit color used for canvas pixels and text.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a "#rrggbb" string, suitable for lipgloss.Color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors for views and the HUD.
var (
	ColorBlack  = RGB{0, 0, 0}
	ColorWhite  = RGB{255, 255, 255}
	ColorGray   = RGB{128, 128, 128}
	ColorRed    = RGB{220, 50, 47}
	ColorYellow = RGB{255, 214, 10}
	ColorGreen  = RGB{80, 200, 120}
	ColorCyan   = RGB{42, 161, 152}
	ColorPurple = RGB{100, 30, 130}
	ColorOrange = RGB{255, 140, 0}
)
