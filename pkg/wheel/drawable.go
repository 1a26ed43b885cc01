package wheel

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/hsb"
)

const (
	// StopCount is the number of hue stops of the angular gradient.
	StopCount = 11
	stopStep  = 0.1
)

// Stop is one color stop of the angular gradient.
// Offset runs clockwise on screen from the +X axis, 0..1 for a full turn.
type Stop struct {
	Offset float64
	Hue    float64
	Color  color.RGBA
}

// RadialMask fades from Inner at the center to Outer at EndRadius.
// The colors are not premultiplied so that a transparent white stays white.
type RadialMask struct {
	Inner, Outer           color.NRGBA
	StartRadius, EndRadius float64
}

// Knob is the draggable indicator.
type Knob struct {
	Center geom.Point
	Radius float64
	Fill   color.RGBA
	Stroke color.RGBA
}

// Drawable is everything a host needs to draw the wheel for one frame.
type Drawable struct {
	Center geom.Point
	Radius float64
	Stops  [StopCount]Stop
	Mask   RadialMask
	Knob   Knob
}

// Stops returns the hue stops 1.0 -> 0.0 in steps of 0.1, every stop using the
// given saturation and brightness.
func Stops(saturation, brightness float64) (stops [StopCount]Stop) {
	for i := range stops {
		hue := 1 - float64(i)*stopStep
		if hue < 0 {
			hue = 0
		}

		stops[i] = Stop{
			Offset: float64(i) / (StopCount - 1),
			Hue:    hue,
			Color:  hsb.HueRGBA(hue, saturation, brightness),
		}
	}

	return stops
}

// Render describes the wheel for the current state. ok is false while there
// is no geometry, in which case nothing interactive should be drawn.
func (f *Field) Render() (Drawable, bool) {
	if f.geometry == nil {
		return Drawable{}, false
	}

	return Drawable{
		Center: f.geometry.Center,
		Radius: f.geometry.Radius,
		// the gradient uses the slider's gain as saturation; the radial mask
		// whitens it toward the center
		Stops: Stops(f.gain, f.brightness),
		Mask: RadialMask{
			Inner:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Outer:       color.NRGBA{R: 255, G: 255, B: 255, A: 0},
			StartRadius: 0,
			EndRadius:   f.geometry.Radius,
		},
		Knob: Knob{
			Center: f.knob,
			Radius: f.knobRadius,
			Fill:   f.resolve().RGBA(),
			Stroke: colornames.White,
		},
	}, true
}
