// Package slider implements the linear saturation slider. The thumb position
// along the track maps linearly onto a saturation gain in [0, 1].
package slider

import (
	"image/color"

	"github.com/kpango/glg"
	"golang.org/x/image/colornames"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/hsb"
)

// DefaultThumbRadius fits a thumb into a 50px high track.
const DefaultThumbRadius = 25

// Geometry of the track.
type Geometry struct {
	Origin     geom.Point
	TrackWidth float64
	Height     float64
}

// Slider is the saturation slider control.
type Slider struct {
	thumbRadius float64
	geometry    *Geometry

	value float64
	color hsb.Color
}

// NewSlider creates a slider with the given thumb radius.
func NewSlider(thumbRadius float64) *Slider {
	if thumbRadius < 0 {
		thumbRadius = 0
	}

	return &Slider{
		thumbRadius: thumbRadius,
		value:       1,
		color:       hsb.White,
	}
}

// Layout sets the track from the slider's area. The track spans the full
// width of the area.
func (s *Slider) Layout(area geom.Rect) Geometry {
	w := area.Size.Width
	if w < 0 {
		w = 0
	}

	h := area.Size.Height
	if h < 0 {
		h = 0
	}

	s.geometry = &Geometry{
		Origin:     area.Min,
		TrackWidth: w,
		Height:     h,
	}

	return *s.geometry
}

// Geometry returns the current geometry, if any.
func (s *Slider) Geometry() (Geometry, bool) {
	if s.geometry == nil {
		return Geometry{}, false
	}

	return *s.geometry, true
}

// ValueAt maps an X position relative to the track start onto [0, 1].
// The thumb stops at the track ends. A zero-width track has no interior,
// so anything right of its start is 1.
func ValueAt(x, trackWidth float64) float64 {
	if trackWidth <= 0 {
		if x > 0 {
			return 1
		}

		return 0
	}

	return hsb.Clamp01(x / trackWidth)
}

// DragChanged maps a pointer X in surface coordinates to the new gain.
func (s *Slider) DragChanged(pointerX float64) (float64, bool) {
	if s.geometry == nil {
		glg.Debugf("slider: drag at x=%v ignored, no geometry yet", pointerX)
		return s.value, false
	}

	s.value = ValueAt(pointerX-s.geometry.Origin.X, s.geometry.TrackWidth)

	return s.value, true
}

// ThumbOffset returns the thumb's offset from the track start for value,
// shifted left by the thumb radius so the thumb is centered on the value.
func (s *Slider) ThumbOffset(value float64) float64 {
	if s.geometry == nil {
		return -s.thumbRadius
	}

	return hsb.Clamp01(value)*s.geometry.TrackWidth - s.thumbRadius
}

// OnExternalChange records the latest gain and resolved color for rendering.
func (s *Slider) OnExternalChange(state hsb.State) {
	state = state.Normalize()
	s.value, s.color = state.Gain, state.Color
}

// Value is the last known gain.
func (s *Slider) Value() float64 {
	return s.value
}

// Thumb is the draggable indicator.
type Thumb struct {
	// Offset from the track origin along X (already corrected by Radius).
	Offset float64
	Radius float64
	Fill   color.RGBA
	Stroke color.RGBA
}

// Drawable is everything a host needs to draw the slider for one frame.
// The track is a capsule filled with a linear gradient from Start to End.
type Drawable struct {
	Origin     geom.Point
	TrackWidth float64
	Height     float64
	Start, End color.RGBA
	Thumb      Thumb
}

// Render describes the slider for the last recorded value and color.
func (s *Slider) Render() (Drawable, bool) {
	if s.geometry == nil {
		return Drawable{}, false
	}

	fill := s.color.RGBA()

	return Drawable{
		Origin:     s.geometry.Origin,
		TrackWidth: s.geometry.TrackWidth,
		Height:     s.geometry.Height,
		Start:      colornames.White,
		End:        fill,
		Thumb: Thumb{
			Offset: s.ThumbOffset(s.value),
			Radius: s.thumbRadius,
			Fill:   fill,
			// black at half opacity, premultiplied
			Stroke: color.RGBA{A: 128},
		},
	}, true
}
