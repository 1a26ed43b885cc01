// Package wheel implements the radial hue/saturation field: the knob lives
// inside a disk, its angle selects the hue and its distance from the center
// the relative saturation.
package wheel

import (
	"github.com/kpango/glg"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/hsb"
)

// DefaultMargin keeps a knob of the same radius from clipping at the edge of
// the surface.
const DefaultMargin = 16

// Geometry describes the disk of the wheel in surface coordinates.
type Geometry struct {
	Center geom.Point
	Radius float64
}

// Field is the color wheel control.
// Until Layout has produced a usable geometry every input operation is a
// no-op that reports ok == false.
type Field struct {
	margin     float64
	knobRadius float64

	size     geom.Size
	origin   geom.Point
	laidOut  bool
	geometry *Geometry
	knob     geom.Point

	gain, brightness float64
}

// NewField creates a wheel whose radius leaves margin pixels free around
// the disk. The knob is drawn with the same radius as the margin.
func NewField(margin float64) *Field {
	if margin < 0 {
		margin = 0
	}

	return &Field{
		margin:     margin,
		knobRadius: margin,
		gain:       1,
		brightness: 1,
	}
}

// SetKnobRadius changes the visual radius of the knob.
func (f *Field) SetKnobRadius(r float64) *Field {
	if r < 0 {
		r = 0
	}

	f.knobRadius = r
	return f
}

// Geometry returns the current geometry, if any.
func (f *Field) Geometry() (Geometry, bool) {
	if f.geometry == nil {
		return Geometry{}, false
	}

	return *f.geometry, true
}

// Knob returns the knob position in surface coordinates.
func (f *Field) Knob() (geom.Point, bool) {
	if f.geometry == nil {
		return geom.Point{}, false
	}

	return f.knob, true
}

// Layout derives the geometry from the area the wheel occupies.
// origin is the top-left corner of that area in surface coordinates.
//
// A new size moves the knob back to the center and resolves white. Repeating a layout with the same
// area changes nothing, so it is safe to call on every frame.
func (f *Field) Layout(origin geom.Point, size geom.Size, s hsb.State) (hsb.State, bool) {
	if f.laidOut && size == f.size && origin == f.origin {
		return f.OnExternalChange(s), f.geometry != nil
	}

	f.size, f.origin, f.laidOut = size, origin, true

	radius := min(size.Width/2, size.Height/2) - f.margin
	if radius <= 0 {
		glg.Warnf("wheel: area %vx%v too small for margin %v, wheel hidden", size.Width, size.Height, f.margin)

		f.geometry = nil
		return f.OnExternalChange(s), false
	}

	f.geometry = &Geometry{
		Center: origin.Add(size.Center()),
		Radius: radius,
	}
	f.knob = f.geometry.Center

	glg.Debugf("wheel: layout center=%v radius=%v", f.geometry.Center, radius)

	s = s.Normalize()
	f.gain, f.brightness = s.Gain, s.Brightness
	s.Color = hsb.White

	return s, true
}

// DragChanged moves the knob to the pointer (clamped onto the disk) and
// resolves the new color. Events arriving before layout are ignored.
func (f *Field) DragChanged(pointer geom.Point, s hsb.State) (hsb.State, bool) {
	if f.geometry == nil {
		glg.Debugf("wheel: drag at %v ignored, no geometry yet", pointer)
		return s, false
	}

	// offset from the center, clamped onto the disk
	d, _ := geom.ClampToDisk(pointer.Sub(f.geometry.Center), f.geometry.Radius)

	// the clamped point is what gets stored, never the raw pointer
	f.knob = f.geometry.Center.Add(d)

	return f.OnExternalChange(s), true
}

// OnExternalChange recomputes the color from the stored knob when the gain or
// brightness changed elsewhere. The knob does not move.
func (f *Field) OnExternalChange(s hsb.State) hsb.State {
	s = s.Normalize()
	f.gain, f.brightness = s.Gain, s.Brightness

	if f.geometry == nil {
		return s
	}

	s.Color = f.resolve()
	return s
}

// SetKnobPolar places the knob from an angle in degrees and a fraction of
// the radius in [0, 1].
func (f *Field) SetKnobPolar(angle, fraction float64) bool {
	if f.geometry == nil {
		return false
	}

	fraction = hsb.Clamp01(fraction)
	f.knob = f.geometry.Center.Add(geom.FromPolar(angle, fraction*f.geometry.Radius))

	return true
}

// KnobPolar returns the knob position as angle in degrees and fraction of the
// radius.
func (f *Field) KnobPolar() (angle, fraction float64, ok bool) {
	if f.geometry == nil {
		return 0, 0, false
	}

	angle, distance := geom.ToPolar(f.knob.Sub(f.geometry.Center))
	return angle, hsb.Clamp01(distance / f.geometry.Radius), true
}

// Color returns the color the knob currently resolves to.
func (f *Field) Color() (hsb.Color, bool) {
	if f.geometry == nil {
		return hsb.Color{}, false
	}

	return f.resolve(), true
}

func (f *Field) resolve() hsb.Color {
	angle, distance := geom.ToPolar(f.knob.Sub(f.geometry.Center))
	if distance == 0 {
		// no angle at the origin
		return hsb.White
	}

	if distance > f.geometry.Radius {
		distance = f.geometry.Radius
	}

	return hsb.New(
		angle/360,
		distance/f.geometry.Radius*f.gain,
		f.brightness,
	)
}
