// Package picker ties the color wheel and the saturation slider to one shared
// color state and routes pointer gestures to the control they started on.
package picker

import (
	"image/color"

	"github.com/kpango/glg"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/hsb"
	"github.com/gucio321/huewheel/pkg/slider"
	"github.com/gucio321/huewheel/pkg/wheel"
)

// Phase of a pointer gesture.
type Phase int

const (
	PhaseStarted Phase = iota
	PhaseChanged
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	}

	return "unknown"
}

// PointerEvent is one sample of the single pointer, in surface coordinates.
type PointerEvent struct {
	Location geom.Point
	Phase    Phase
}

type control int

const (
	controlNone control = iota
	controlWheel
	controlSlider
)

// Areas is how the host split its surface between the controls.
type Areas struct {
	Swatch, Wheel, Slider geom.Rect
}

// DefaultSwatchRadius rounds the corners of the preview swatch.
const DefaultSwatchRadius = 8

// Options configure a Picker.
type Options struct {
	// Margin around the wheel disk.
	Margin float64
	// KnobRadius is the visual radius of the wheel knob.
	KnobRadius float64
	// ThumbRadius is the visual radius of the slider thumb.
	ThumbRadius float64
	// SwatchRadius is the corner radius of the preview swatch.
	SwatchRadius float64
	Initial      hsb.State
}

// DefaultOptions: white at full brightness, slider at its end.
func DefaultOptions() Options {
	return Options{
		Margin:       wheel.DefaultMargin,
		KnobRadius:   wheel.DefaultMargin,
		ThumbRadius:  slider.DefaultThumbRadius,
		SwatchRadius: DefaultSwatchRadius,
		Initial:      hsb.DefaultState(),
	}
}

// Picker owns the shared state and both controls. It is not safe for
// concurrent use; all calls are expected on the UI thread.
type Picker struct {
	binding *Binding
	wheel   *wheel.Field
	slider  *slider.Slider
	handler *EventHandler

	swatchRadius float64

	areas   Areas
	laidOut bool
	active  control
}

// New creates a picker. Nothing is interactive until Layout.
func New(opts Options) *Picker {
	p := &Picker{
		binding: NewBinding(opts.Initial),
		wheel:   wheel.NewField(opts.Margin).SetKnobRadius(opts.KnobRadius),
		slider:  slider.NewSlider(opts.ThumbRadius),

		swatchRadius: max(opts.SwatchRadius, 0),
	}

	p.slider.OnExternalChange(p.binding.Get())

	return p
}

// SetHandler sets where change events are delivered.
func (p *Picker) SetHandler(h *EventHandler) *Picker {
	p.handler = h
	return p
}

// State returns the shared state.
func (p *Picker) State() hsb.State {
	return p.binding.Get()
}

// Wheel exposes the wheel control.
func (p *Picker) Wheel() *wheel.Field {
	return p.wheel
}

// Slider exposes the slider control.
func (p *Picker) Slider() *slider.Slider {
	return p.slider
}

// Dragging reports whether a gesture is captured by one of the controls.
func (p *Picker) Dragging() bool {
	return p.active != controlNone
}

// Layout hands each control its area. Calling it again with the same areas
// does not disturb the knob or an ongoing gesture.
func (p *Picker) Layout(a Areas) {
	p.areas = a
	p.laidOut = true

	s, _ := p.wheel.Layout(a.Wheel.Min, a.Wheel.Size, p.binding.Get())
	p.slider.Layout(a.Slider)

	p.commit(s, EventColorChanged)
}

// HandlePointer processes one pointer sample and reports whether it changed
// or captured anything.
func (p *Picker) HandlePointer(ev PointerEvent) bool {
	switch ev.Phase {
	case PhaseStarted:
		p.active = p.hitTest(ev.Location)
		if p.active == controlNone {
			glg.Debugf("picker: gesture at %v hit no control", ev.Location)
			return false
		}

		// a press already selects, like a drag with zero minimum distance
		p.dragChanged(ev.Location)
		return true
	case PhaseChanged:
		if p.active == controlNone {
			return false
		}

		p.dragChanged(ev.Location)
		return true
	case PhaseEnded:
		// nothing to commit, the last change already is the result
		wasActive := p.active != controlNone
		p.active = controlNone
		return wasActive
	}

	return false
}

func (p *Picker) hitTest(loc geom.Point) control {
	if !p.laidOut {
		return controlNone
	}

	if _, ok := p.wheel.Geometry(); ok && p.areas.Wheel.Contains(loc) {
		return controlWheel
	}

	if d, ok := p.slider.Render(); ok {
		if p.areas.Slider.Contains(loc) {
			return controlSlider
		}

		thumb := geom.Pt(d.Origin.X+d.Thumb.Offset+d.Thumb.Radius, d.Origin.Y+d.Height/2)
		if loc.Sub(thumb).Len() <= d.Thumb.Radius {
			return controlSlider
		}
	}

	return controlNone
}

func (p *Picker) dragChanged(loc geom.Point) {
	switch p.active {
	case controlWheel:
		s, ok := p.wheel.DragChanged(loc, p.binding.Get())
		if ok {
			p.commit(s, EventColorChanged)
		}
	case controlSlider:
		gain, ok := p.slider.DragChanged(loc.X)
		if !ok {
			return
		}

		s := p.binding.Get()
		s.Gain = gain
		p.commit(p.wheel.OnExternalChange(s), EventGainChanged)
	}
}

// SetBrightness writes the brightness from outside (e.g. a brightness
// control). The knob stays where it is.
func (p *Picker) SetBrightness(b float64) {
	s := p.binding.Get()
	s.Brightness = b
	p.commit(p.wheel.OnExternalChange(s), EventBrightnessChanged)
}

// SetGain writes the saturation gain from outside.
func (p *Picker) SetGain(g float64) {
	s := p.binding.Get()
	s.Gain = g
	p.commit(p.wheel.OnExternalChange(s), EventGainChanged)
}

// Set replaces the whole state. Once the wheel is laid out, hue and
// saturation keep following the knob; use Select to move it.
func (p *Picker) Set(s hsb.State) {
	p.commit(p.wheel.OnExternalChange(s), EventColorChanged)
}

// Select moves the knob to the given hue and relative saturation (fraction
// of the radius) as if the user dragged it there.
func (p *Picker) Select(hue, relative float64) bool {
	if !p.wheel.SetKnobPolar(hsb.WrapHue(hue)*360, relative) {
		glg.Debugf("picker: select(%v, %v) ignored, no geometry yet", hue, relative)
		return false
	}

	p.commit(p.wheel.OnExternalChange(p.binding.Get()), EventColorChanged)
	return true
}

// commit writes s, lets the slider see the result and reports the change.
func (p *Picker) commit(s hsb.State, kind EventType) {
	changed := p.binding.Set(s)
	p.slider.OnExternalChange(p.binding.Get())

	if changed {
		p.handler.Emit(Event{Type: kind, State: p.binding.Get()})
	}
}

// Frame is the drawable description of the whole picker for one frame.
type Frame struct {
	State hsb.State

	Wheel        wheel.Drawable
	WheelVisible bool

	Slider        slider.Drawable
	SliderVisible bool

	Swatch geom.Rect
	// SwatchRadius never exceeds half the shorter side of Swatch.
	SwatchRadius float64
	Preview      color.RGBA
}

// Frame describes what to draw now.
func (p *Picker) Frame() Frame {
	f := Frame{
		State:   p.binding.Get(),
		Swatch:  p.areas.Swatch,
		Preview: p.binding.Get().Color.RGBA(),
	}

	side := min(f.Swatch.Size.Width, f.Swatch.Size.Height)
	f.SwatchRadius = max(min(p.swatchRadius, side/2), 0)

	f.Wheel, f.WheelVisible = p.wheel.Render()
	f.Slider, f.SliderVisible = p.slider.Render()

	return f
}
