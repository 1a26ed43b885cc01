// Package hsb holds the shared color record of the picker and the conversion
// between HSB and RGB.
package hsb

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hue/saturation/brightness triple.
// Hue is in [0, 1) and wraps; saturation and brightness are in [0, 1].
type Color struct {
	H, S, B float64
}

// New returns a normalized Color.
func New(h, s, b float64) Color {
	return Color{h, s, b}.Normalize()
}

// White is what the wheel resolves to where the hue is undefined.
var White = Color{H: 0, S: 0, B: 1}

// Normalize wraps the hue and clamps saturation and brightness.
// NaN components become 0.
func (c Color) Normalize() Color {
	return Color{
		H: WrapHue(c.H),
		S: Clamp01(c.S),
		B: Clamp01(c.B),
	}
}

// Valid reports whether all components are already normalized.
func (c Color) Valid() bool {
	return c.H >= 0 && c.H < 1 &&
		c.S >= 0 && c.S <= 1 &&
		c.B >= 0 && c.B <= 1
}

// RGBA converts to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return HueRGBA(c.H, c.S, c.B)
}

// HueRGBA converts raw components to color.RGBA. Unlike Color it accepts a
// hue of exactly 1 (the last stop of a full hue sweep), which is the same
// as 0.
func HueRGBA(h, s, b float64) color.RGBA {
	// colorful expects degrees in [0, 360)
	deg := math.Mod(h*360, 360)
	if deg < 0 {
		deg += 360
	}

	r, g, bl := colorful.Hsv(deg, Clamp01(s), Clamp01(b)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// FromRGBA converts back from RGB. Alpha is ignored.
func FromRGBA(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent
		return Color{}
	}

	h, s, v := cf.Hsv()
	return New(h/360, s, v)
}

// WrapHue maps any hue into [0, 1).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}

	h -= math.Floor(h)
	if h >= 1 {
		h = 0
	}

	return h
}

// Clamp01 clamps v into [0, 1]; NaN becomes 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}

	return v
}
