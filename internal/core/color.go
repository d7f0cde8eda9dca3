package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit color with an alpha channel.
// Alpha is only used as a mask when blitting: zero alpha pixels are skipped.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Predefined colors for clearing and placeholders.
var (
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorMagenta = RGB(255, 0, 255)
	ColorSky     = RGB(135, 206, 235)
)

// Transparent reports whether the pixel should be skipped by Copy.
func (c Color) Transparent() bool {
	return c.A == 0
}

// Hex formats the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
