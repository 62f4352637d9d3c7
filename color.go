package avatar

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"
)

// Color is a background color for an Avatar. It is stored canonically as
// an RGB triple with 8 bits per channel. When constructed from a hex
// string the original spelling is retained, so String reports the color
// the way the caller wrote it.
//
// The zero Color is opaque black.
type Color struct {
	r, g, b  uint8
	spelling string // original hex input, "" when built from RGB or random
}

// ParseHex parses a hex color of exactly six hex digits, with or without a
// leading '#'. Letter case is not significant.
// Any other input returns an error wrapping ErrInvalidColor.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q must have exactly 6 hex digits", ErrInvalidColor, s)
	}
	var v [6]uint8
	for i := 0; i < 6; i++ {
		n, ok := hexDigit(h[i])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q contains a non-hex character", ErrInvalidColor, s)
		}
		v[i] = n
	}
	return Color{
		r:        v[0]<<4 | v[1],
		g:        v[2]<<4 | v[3],
		b:        v[4]<<4 | v[5],
		spelling: s,
	}, nil
}

// hexDigit is a helper for hex parsing
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// FromRGB builds a Color from an RGB triple. Each channel must lie in
// [0, 255]; anything else returns an error wrapping ErrInvalidColor.
func FromRGB(r, g, b int) (Color, error) {
	for _, ch := range [3]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("%w: channel %d out of range [0, 255]", ErrInvalidColor, ch)
		}
	}
	return Color{r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

// randomColor draws a color with each channel independently uniform over
// [0, 255].
func randomColor(rnd *rand.Rand) Color {
	return Color{
		r: uint8(rnd.IntN(256)),
		g: uint8(rnd.IntN(256)),
		b: uint8(rnd.IntN(256)),
	}
}

// RGB returns the canonical channel values.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// Hex returns the canonical lowercase "#rrggbb" form.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b) }

// String returns the hex spelling the color was parsed from when it came
// from ParseHex, otherwise the RGB triple as "(r, g, b)".
func (c Color) String() string {
	if c.spelling != "" {
		return c.spelling
	}
	return fmt.Sprintf("(%d, %d, %d)", c.r, c.g, c.b)
}

// NRGBA converts the color to the standard library representation used
// for compositing. Always fully opaque.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: 0xff}
}
