package widget

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGBA colour with components in the range [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

var (
	Transparent = Color{}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{A: 1}
)

// RGB8 creates an opaque colour from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 creates a colour from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// HexColor converts a 0xRRGGBB value to an opaque colour.
func HexColor(hex uint32) Color {
	return RGB8(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// ParseColor parses "#rrggbb", "#rgb" or "transparent".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return Transparent, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return RGB8(r, g, b), nil
}

// RGBA8 returns the colour as 8-bit components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// IsTransparent reports whether the colour paints nothing.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// Hex formats the colour as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xFF
	default:
		return uint8(v*255 + 0.5)
	}
}
