// Package color provides the chart palette: the fixed brand colors, a stable
// color per category label, and a sequential ramp for heatmaps.
package color

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Brand colors.
//
//nolint:gochecknoglobals // Static palette
var (
	Background = MustHex("#f5f5f1")
	Movie      = MustHex("#e50914")
	MovieAlt   = MustHex("#b20710")
	TV         = MustHex("#221f1f")
	Grid       = MustHex("#d9d9d4")
)

// Hex parses "#rrggbb" or "rrggbb".
func Hex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHex is Hex for compile-time constants; it panics on malformed input.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex formats c as "#RRGGBB".
func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ForLabel returns a consistent color for a category label.
// The same label always gets the same color.
func ForLabel(label string) color.RGBA {
	h := 0
	for _, c := range label {
		h = 31*h + int(c)
	}
	if h < 0 {
		h = -h
	}
	hue := float64(h % 360)

	// S=0.55, L=0.5 keeps neighbouring bars distinguishable on the light background.
	r, g, b := hslToRGB(hue, 0.55, 0.5)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Ramp maps t in [0, 1] onto a light-to-brand-red scale. Values outside the
// range are clamped.
func Ramp(t float64) color.RGBA {
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	// Hue 358 is the brand red; lightness runs from near-white down to 0.35.
	r, g, b := hslToRGB(358, 0.9, 0.95-0.6*t)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// hslToRGB converts HSL color space to RGB.
// h: hue (0-360), s: saturation (0-1), l: lightness (0-1)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	h /= 360.0

	var r1, g1, b1 float64

	if s == 0 {
		r1, g1, b1 = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r1 = hueToRGB(p, q, h+1.0/3.0)
		g1 = hueToRGB(p, q, h)
		b1 = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(r1*255 + 0.5), uint8(g1*255 + 0.5), uint8(b1*255 + 0.5)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
