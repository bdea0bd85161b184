package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell or a drawn shape.
// The zero value means "use the terminal default".
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB creates an explicit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors shared by renderers.
var (
	ColorDefault = Color{}
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(255, 0, 0)
	ColorGreen   = RGB(0, 255, 0)
	ColorBlue    = RGB(0, 0, 255)
	ColorBrown   = RGB(139, 69, 19)
	ColorGray    = RGB(105, 105, 105)
)
