package wheel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/hsb"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// newLaidOut returns a field laid out on a 232x232 surface with margin 16,
// which gives a radius of 100 around (116, 116).
func newLaidOut(t *testing.T) (*Field, hsb.State) {
	t.Helper()

	f := NewField(DefaultMargin)
	s, ok := f.Layout(geom.Point{}, geom.Size{Width: 232, Height: 232}, hsb.DefaultState())
	if !ok {
		t.Fatal("layout failed")
	}

	return f, s
}

func TestLayout(t *testing.T) {
	f, s := newLaidOut(t)

	g, ok := f.Geometry()
	if !ok {
		t.Fatal("no geometry after layout")
	}
	if g.Radius != 100 || g.Center != geom.Pt(116, 116) {
		t.Fatalf("geometry = %+v, want center (116,116) radius 100", g)
	}

	if knob, _ := f.Knob(); knob != g.Center {
		t.Fatalf("knob = %v, want center", knob)
	}

	if s.Color != hsb.White {
		t.Fatalf("color after layout = %+v, want white", s.Color)
	}
}

func TestLayoutNonSquare(t *testing.T) {
	f := NewField(10)
	if _, ok := f.Layout(geom.Pt(5, 7), geom.Size{Width: 300, Height: 120}, hsb.DefaultState()); !ok {
		t.Fatal("layout failed")
	}

	g, _ := f.Geometry()
	if g.Radius != 50 || g.Center != geom.Pt(155, 67) {
		t.Fatalf("geometry = %+v", g)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	f, s := newLaidOut(t)

	s, _ = f.DragChanged(geom.Pt(150, 80), s)
	before, _ := f.Knob()

	again, ok := f.Layout(geom.Point{}, geom.Size{Width: 232, Height: 232}, s)
	if !ok {
		t.Fatal("second layout failed")
	}

	if after, _ := f.Knob(); after != before {
		t.Fatalf("knob moved from %v to %v on repeated layout", before, after)
	}

	if again.Color != s.Color {
		t.Fatalf("color changed on repeated layout: %+v -> %+v", s.Color, again.Color)
	}
}

func TestLayoutResizeResetsKnob(t *testing.T) {
	f, s := newLaidOut(t)
	s, _ = f.DragChanged(geom.Pt(200, 116), s)

	s, ok := f.Layout(geom.Point{}, geom.Size{Width: 300, Height: 300}, s)
	if !ok {
		t.Fatal("layout failed")
	}

	g, _ := f.Geometry()
	if knob, _ := f.Knob(); knob != g.Center {
		t.Fatalf("knob = %v, want %v", knob, g.Center)
	}
	if s.Color.S != 0 {
		t.Fatalf("saturation after resize = %v, want 0", s.Color.S)
	}
}

func TestLayoutTooSmall(t *testing.T) {
	f := NewField(DefaultMargin)
	s := hsb.DefaultState()

	if _, ok := f.Layout(geom.Point{}, geom.Size{Width: 32, Height: 500}, s); ok {
		t.Fatal("layout with zero radius reported ok")
	}

	if _, ok := f.Geometry(); ok {
		t.Fatal("geometry present for zero radius")
	}

	if _, ok := f.DragChanged(geom.Pt(10, 10), s); ok {
		t.Fatal("drag accepted without geometry")
	}

	if _, ok := f.Render(); ok {
		t.Fatal("render produced a drawable without geometry")
	}
}

func TestDragBeforeLayout(t *testing.T) {
	f := NewField(DefaultMargin)
	s := hsb.State{Color: hsb.Color{H: 0.3, S: 0.4, B: 0.5}, Gain: 0.6, Brightness: 0.5}

	got, ok := f.DragChanged(geom.Pt(50, 50), s)
	if ok {
		t.Fatal("drag before layout reported ok")
	}
	if got != s {
		t.Fatalf("state changed by ignored drag: %+v", got)
	}

	if f.SetKnobPolar(10, 0.5) {
		t.Fatal("SetKnobPolar before layout reported ok")
	}
	if _, _, ok := f.KnobPolar(); ok {
		t.Fatal("KnobPolar before layout reported ok")
	}
}

func TestDragRightIsRed(t *testing.T) {
	f, s := newLaidOut(t)
	s.Gain = 0.8

	s, ok := f.DragChanged(geom.Pt(216, 116), s)
	if !ok {
		t.Fatal("drag rejected")
	}

	if !almostEqual(s.Color.H, 0) {
		t.Fatalf("hue = %v, want 0", s.Color.H)
	}
	if !almostEqual(s.Color.S, 0.8) {
		t.Fatalf("saturation = %v, want 1.0 * 0.8", s.Color.S)
	}
	if s.Color.B != 1 {
		t.Fatalf("brightness = %v, want 1", s.Color.B)
	}
}

func TestDragUpIsQuarterHue(t *testing.T) {
	f, s := newLaidOut(t)

	s, _ = f.DragChanged(geom.Pt(116, 16), s)
	if !almostEqual(s.Color.H, 0.25) {
		t.Fatalf("hue = %v, want 0.25", s.Color.H)
	}
	if !almostEqual(s.Color.S, 1) {
		t.Fatalf("saturation = %v, want 1", s.Color.S)
	}
}

func TestDragOutsideClampsToBoundary(t *testing.T) {
	f, s := newLaidOut(t)
	g, _ := f.Geometry()

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		angle := r.Float64() * 2 * math.Pi
		dist := g.Radius * (1 + r.Float64()*10)
		p := g.Center.Add(geom.Pt(math.Cos(angle)*dist, math.Sin(angle)*dist))

		s, _ = f.DragChanged(p, s)

		knob, _ := f.Knob()
		if got := knob.Sub(g.Center).Len(); math.Abs(got-g.Radius) > 1e-9 {
			t.Fatalf("drag to %v stored knob %v at distance %v, want %v", p, knob, got, g.Radius)
		}
	}
}

func TestDragInsideStoresRawPoint(t *testing.T) {
	f, s := newLaidOut(t)

	for _, p := range []geom.Point{geom.Pt(116, 116), geom.Pt(120, 130), geom.Pt(50, 116), geom.Pt(180, 60)} {
		s, _ = f.DragChanged(p, s)
		if knob, _ := f.Knob(); knob != p {
			t.Fatalf("knob = %v, want raw pointer %v", knob, p)
		}
	}
}

func TestDragCenterIsAchromatic(t *testing.T) {
	f, s := newLaidOut(t)
	s, _ = f.DragChanged(geom.Pt(200, 30), s)
	if s.Color.S == 0 {
		t.Fatal("precondition: expected a saturated color")
	}

	s, _ = f.DragChanged(geom.Pt(116, 116), s)
	if s.Color.S != 0 {
		t.Fatalf("saturation at center = %v, want exactly 0", s.Color.S)
	}
}

func TestCenterIsWhiteAtAnyBrightness(t *testing.T) {
	f, s := newLaidOut(t)
	s.Brightness = 0.3
	s = f.OnExternalChange(s)

	s, _ = f.DragChanged(geom.Pt(216, 116), s)
	if s.Color.B != 0.3 {
		t.Fatalf("rim brightness = %v, want 0.3", s.Color.B)
	}

	s, _ = f.DragChanged(geom.Pt(116, 116), s)
	if s.Color != hsb.White {
		t.Fatalf("center = %+v, want white", s.Color)
	}
	if s.Brightness != 0.3 {
		t.Fatalf("brightness lost at center: %v", s.Brightness)
	}

	// leaving the center picks the brightness up again
	s, _ = f.DragChanged(geom.Pt(116, 66), s)
	if s.Color.B != 0.3 {
		t.Fatalf("brightness after leaving center = %v, want 0.3", s.Color.B)
	}
}

func TestColorAlwaysValid(t *testing.T) {
	f, s := newLaidOut(t)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		p := geom.Pt(r.Float64()*600-200, r.Float64()*600-200)
		s.Gain = r.Float64()*1.4 - 0.2
		s.Brightness = r.Float64()*1.4 - 0.2

		var ok bool
		s, ok = f.DragChanged(p, s)
		if !ok {
			t.Fatal("drag rejected")
		}
		if !s.Color.Valid() || s.Gain < 0 || s.Gain > 1 {
			t.Fatalf("invalid state after drag to %v: %+v", p, s)
		}
	}
}

func TestOnExternalChangeKeepsKnob(t *testing.T) {
	f, s := newLaidOut(t)
	s, _ = f.DragChanged(geom.Pt(166, 116), s)
	knob, _ := f.Knob()

	if !almostEqual(s.Color.S, 0.5) {
		t.Fatalf("saturation = %v, want 0.5", s.Color.S)
	}

	s.Gain = 0.5
	s.Brightness = 0.4
	s = f.OnExternalChange(s)

	if after, _ := f.Knob(); after != knob {
		t.Fatalf("knob moved on external change: %v -> %v", knob, after)
	}
	if !almostEqual(s.Color.S, 0.25) || s.Color.B != 0.4 || !almostEqual(s.Color.H, 0) {
		t.Fatalf("color after external change = %+v", s.Color)
	}
}

func TestKnobPolarRoundTrip(t *testing.T) {
	f, _ := newLaidOut(t)

	for angle := 0.0; angle < 360; angle += 11.25 {
		for _, fraction := range []float64{0.05, 0.3, 0.5, 0.99, 1} {
			if !f.SetKnobPolar(angle, fraction) {
				t.Fatal("SetKnobPolar rejected")
			}

			gotAngle, gotFraction, ok := f.KnobPolar()
			if !ok {
				t.Fatal("KnobPolar rejected")
			}
			if math.Abs(gotAngle-angle) > 1e-7 && math.Abs(gotAngle-angle-360) > 1e-7 {
				t.Fatalf("angle %v came back as %v", angle, gotAngle)
			}
			if math.Abs(gotFraction-fraction) > 1e-9 {
				t.Fatalf("fraction %v came back as %v", fraction, gotFraction)
			}
		}
	}
}

func TestStops(t *testing.T) {
	stops := Stops(1, 1)

	if len(stops) != 11 {
		t.Fatalf("len = %d", len(stops))
	}

	for i, stop := range stops {
		if !almostEqual(stop.Hue, 1-float64(i)*0.1) {
			t.Fatalf("stop %d hue = %v", i, stop.Hue)
		}
		if !almostEqual(stop.Offset, float64(i)/10) {
			t.Fatalf("stop %d offset = %v", i, stop.Offset)
		}
	}

	if stops[0].Color != stops[10].Color {
		t.Fatalf("first and last stop differ: %v vs %v", stops[0].Color, stops[10].Color)
	}
}

func TestRender(t *testing.T) {
	f, s := newLaidOut(t)
	s.Gain = 0.5
	s.Brightness = 0.9
	s = f.OnExternalChange(s)
	s, _ = f.DragChanged(geom.Pt(116, 16), s)

	d, ok := f.Render()
	if !ok {
		t.Fatal("no drawable")
	}

	if d.Radius != 100 || d.Center != geom.Pt(116, 116) {
		t.Fatalf("drawable geometry = %v %v", d.Center, d.Radius)
	}
	if d.Knob.Center != geom.Pt(116, 16) || d.Knob.Radius != DefaultMargin {
		t.Fatalf("knob = %+v", d.Knob)
	}
	if d.Knob.Fill != s.Color.RGBA() {
		t.Fatalf("knob fill = %v, want %v", d.Knob.Fill, s.Color.RGBA())
	}
	if d.Stops != Stops(0.5, 0.9) {
		t.Fatal("stops do not use the current gain and brightness")
	}
	if d.Mask.Inner.A != 255 || d.Mask.Outer.A != 0 || d.Mask.EndRadius != 100 {
		t.Fatalf("mask = %+v", d.Mask)
	}
}
