// Package viewer is the interactive host surface: an ebiten game that owns a
// picker, feeds it pointer gestures and draws its frames.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kpango/glg"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/hsb"
	"github.com/gucio321/huewheel/pkg/picker"
	"github.com/gucio321/huewheel/pkg/preset"
	"github.com/gucio321/huewheel/pkg/render"
	"github.com/gucio321/huewheel/pkg/slider"
	"github.com/gucio321/huewheel/pkg/wheel"
)

var _ ebiten.Game = &Viewer{}

// brightnessStep is the brightness change per scroll wheel notch.
const brightnessStep = 0.05

type wheelKey struct {
	radius float64
	stops  [wheel.StopCount]wheel.Stop
}

type trackKey struct {
	width, height float64
	end           color.RGBA
}

// Viewer hosts a picker in an ebiten window.
type Viewer struct {
	picker  *picker.Picker
	preset  *preset.Preset
	pointer pointerTracker

	width, height int

	// the gradients are rasterized in software, so they are only redone
	// when their look changes
	wheelImage *ebiten.Image
	wheelKey   wheelKey
	trackImage *ebiten.Image
	trackKey   trackKey
}

// NewViewer creates a viewer for p arranged according to pre.
func NewViewer(p *picker.Picker, pre *preset.Preset) *Viewer {
	return &Viewer{
		picker: p,
		preset: pre,
	}
}

// Picker returns the hosted picker.
func (v *Viewer) Picker() *picker.Picker {
	return v.picker
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if ev, ok := v.pointer.poll(); ok {
		v.picker.HandlePointer(ev)
	}

	// the scroll wheel is the host's brightness control
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		b := hsb.Clamp01(v.picker.State().Brightness + wheelY*brightnessStep)
		glg.Debugf("viewer: brightness %.2f", b)
		v.picker.SetBrightness(b)
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)

	f := v.picker.Frame()

	if !f.Swatch.Size.Empty() {
		drawRoundedRect(screen, f.Swatch, f.SwatchRadius, f.Preview)
	}

	if f.WheelVisible {
		v.drawWheel(screen, f.Wheel)
	}

	if f.SliderVisible {
		v.drawSlider(screen, f.Slider)
	}

	s := f.State
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("H %.3f S %.3f B %.3f\ngain %.3f brightness %.3f", s.Color.H, s.Color.S, s.Color.B, s.Gain, s.Brightness),
		int(f.Swatch.Min.X), int(f.Swatch.Max().Y)+4)
}

func (v *Viewer) drawWheel(screen *ebiten.Image, w wheel.Drawable) {
	key := wheelKey{radius: w.Radius, stops: w.Stops}
	if v.wheelImage == nil || key != v.wheelKey {
		if v.wheelImage != nil {
			v.wheelImage.Deallocate()
		}

		v.wheelImage = ebiten.NewImageFromImage(render.Wheel(w, v.preset.Samples))
		v.wheelKey = key
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(w.Center.X-w.Radius, w.Center.Y-w.Radius)
	screen.DrawImage(v.wheelImage, op)

	k := w.Knob
	vector.DrawFilledCircle(screen, float32(k.Center.X), float32(k.Center.Y), float32(k.Radius), k.Fill, true)
	vector.StrokeCircle(screen, float32(k.Center.X), float32(k.Center.Y), float32(k.Radius), 2, k.Stroke, true)
}

func (v *Viewer) drawSlider(screen *ebiten.Image, s slider.Drawable) {
	key := trackKey{width: s.TrackWidth, height: s.Height, end: s.End}
	if v.trackImage == nil || key != v.trackKey {
		if v.trackImage != nil {
			v.trackImage.Deallocate()
		}

		v.trackImage = ebiten.NewImageFromImage(render.Track(s, v.preset.Samples))
		v.trackKey = key
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.Origin.X, s.Origin.Y)
	screen.DrawImage(v.trackImage, op)

	cx := float32(s.Origin.X + s.Thumb.Offset + s.Thumb.Radius)
	cy := float32(s.Origin.Y + s.Height/2)
	vector.DrawFilledCircle(screen, cx, cy, float32(s.Thumb.Radius), s.Thumb.Stroke, true)
	vector.DrawFilledCircle(screen, cx, cy, float32(s.Thumb.Radius-2), s.Thumb.Fill, true)
}

// drawRoundedRect fills r with corners of the given radius. c has to be
// opaque: the pieces overlap.
func drawRoundedRect(screen *ebiten.Image, r geom.Rect, radius float64, c color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Size.Width), float32(r.Size.Height)
	rr := float32(radius)

	vector.DrawFilledRect(screen, x+rr, y, w-2*rr, h, c, true)
	vector.DrawFilledRect(screen, x, y+rr, w, h-2*rr, c, true)

	if rr <= 0 {
		return
	}

	for _, corner := range [4][2]float32{{x + rr, y + rr}, {x + w - rr, y + rr}, {x + rr, y + h - rr}, {x + w - rr, y + h - rr}} {
		vector.DrawFilledCircle(screen, corner[0], corner[1], rr, c, true)
	}
}

// Layout arranges the picker whenever the window size changes.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		glg.Debugf("viewer: surface %dx%d", outsideWidth, outsideHeight)
		v.picker.Layout(v.preset.Arrange(float64(outsideWidth), float64(outsideHeight)))
	}

	return outsideWidth, outsideHeight
}
