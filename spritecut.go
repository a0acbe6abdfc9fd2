package spritecut

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a drawing call.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is used for HUD text.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is used for the pixel grid.
var ColorBlack = Color{0, 0, 0, 1}

// Log colors.
var (
	ColorLogError = MustParseHexColor("#ff2929")
	ColorLogInfo  = MustParseHexColor("#0fff00")
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// Hex formats c as #RRGGBBAA.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X",
		uint8(clamp01(c.R)*255+0.5), uint8(clamp01(c.G)*255+0.5),
		uint8(clamp01(c.B)*255+0.5), uint8(clamp01(c.A)*255+0.5))
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA (the leading # is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("spritecut: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("spritecut: bad hex color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustParseHexColor is like ParseHexColor but panics on malformed input.
// Intended for package-level color tables.
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
