// Package render rasterizes the drawable descriptions produced by the wheel,
// the slider and the picker into plain images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/colornames"

	"github.com/gucio321/huewheel/pkg/geom"
	"github.com/gucio321/huewheel/pkg/picker"
	"github.com/gucio321/huewheel/pkg/slider"
	"github.com/gucio321/huewheel/pkg/wheel"
)

// DefaultSamples is the per-axis supersampling used for edges.
const DefaultSamples = 4

// Background fills the frame behind the controls.
var Background = colornames.Black

// sampleOffsets returns n evenly spaced subpixel offsets in (0, 1).
func sampleOffsets(n int) []float64 {
	if n < 1 {
		n = 1
	}

	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = (float64(i) + 0.5) / float64(n)
	}

	return offsets
}

// WheelColorAt returns the color of the wheel (gradient with the radial mask
// applied) at offset d from its center. ok is false outside the disk.
func WheelColorAt(w wheel.Drawable, d geom.Point) (c color.NRGBA, ok bool) {
	dist := d.Len()
	if dist > w.Radius || w.Radius <= 0 {
		return color.NRGBA{}, false
	}

	base := angularColor(w.Stops, d)

	// the mask fades linearly between its two radii
	t := 0.0
	if span := w.Mask.EndRadius - w.Mask.StartRadius; span > 0 {
		t = clamp((dist-w.Mask.StartRadius)/span, 0, 1)
	}

	mask := lerpNRGBA(w.Mask.Inner, w.Mask.Outer, t)

	// source-over of the mask onto the opaque gradient
	a := float64(mask.A) / 255
	return color.NRGBA{
		R: blend(mask.R, base.R, a),
		G: blend(mask.G, base.G, a),
		B: blend(mask.B, base.B, a),
		A: 255,
	}, true
}

// angularColor interpolates the stops by the clockwise screen angle of d.
func angularColor(stops [wheel.StopCount]wheel.Stop, d geom.Point) color.RGBA {
	loc := math.Atan2(d.Y, d.X) / (2 * math.Pi)
	if loc < 0 {
		loc++
	}

	for i := 1; i < len(stops); i++ {
		if loc > stops[i].Offset && i < len(stops)-1 {
			continue
		}

		prev := stops[i-1]
		span := stops[i].Offset - prev.Offset
		t := 0.0
		if span > 0 {
			t = clamp((loc-prev.Offset)/span, 0, 1)
		}

		return lerpRGBA(prev.Color, stops[i].Color, t)
	}

	return stops[0].Color
}

// Wheel rasterizes the wheel disk into an image whose top-left corner is at
// Center - Radius.
func Wheel(w wheel.Drawable, samples int) *image.NRGBA {
	size := int(math.Ceil(2 * w.Radius))
	if size <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	offsets := sampleOffsets(samples)
	total := float64(len(offsets) * len(offsets))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var rr, gg, bb float64
			var coverage int
			for _, oy := range offsets {
				for _, ox := range offsets {
					d := geom.Pt(float64(x)+ox-w.Radius, float64(y)+oy-w.Radius)
					c, ok := WheelColorAt(w, d)
					if !ok {
						continue
					}

					rr += float64(c.R)
					gg += float64(c.G)
					bb += float64(c.B)
					coverage++
				}
			}

			if coverage == 0 {
				continue
			}

			n := float64(coverage)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rr/n + 0.5),
				G: uint8(gg/n + 0.5),
				B: uint8(bb/n + 0.5),
				A: uint8(255*n/total + 0.5),
			})
		}
	}

	return img
}

// Track rasterizes the slider track (capsule with a white -> color gradient).
func Track(s slider.Drawable, samples int) *image.NRGBA {
	w, h := int(math.Ceil(s.TrackWidth)), int(math.Ceil(s.Height))
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	offsets := sampleOffsets(samples)
	total := float64(len(offsets) * len(offsets))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var coverage int
			for _, oy := range offsets {
				for _, ox := range offsets {
					if inCapsule(float64(x)+ox, float64(y)+oy, s.TrackWidth, s.Height) {
						coverage++
					}
				}
			}

			if coverage == 0 {
				continue
			}

			c := lerpRGBA(s.Start, s.End, clamp((float64(x)+0.5)/s.TrackWidth, 0, 1))
			img.SetNRGBA(x, y, color.NRGBA{
				R: c.R, G: c.G, B: c.B,
				A: uint8(255*float64(coverage)/total + 0.5),
			})
		}
	}

	return img
}

func inCapsule(x, y, w, h float64) bool {
	r := math.Min(w, h) / 2
	cy := h / 2

	switch {
	case x < r:
		return math.Hypot(x-r, y-cy) <= r
	case x > w-r:
		return math.Hypot(x-(w-r), y-cy) <= r
	}

	return y >= 0 && y <= h
}

// Frame draws a whole picker frame onto a width x height image: swatch,
// wheel with knob, slider track with thumb.
func Frame(f picker.Frame, width, height, samples int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	if !f.Swatch.Size.Empty() {
		RoundedRect(dst, f.Swatch, f.SwatchRadius, f.Preview, samples)
	}

	if f.WheelVisible {
		w := f.Wheel
		img := Wheel(w, samples)
		at := image.Pt(int(math.Round(w.Center.X-w.Radius)), int(math.Round(w.Center.Y-w.Radius)))
		draw.Draw(dst, img.Bounds().Add(at), img, image.Point{}, draw.Over)

		Disc(dst, w.Knob.Center, w.Knob.Radius+1, w.Knob.Stroke, samples)
		Disc(dst, w.Knob.Center, w.Knob.Radius, w.Knob.Fill, samples)
	}

	if f.SliderVisible {
		s := f.Slider
		img := Track(s, samples)
		at := image.Pt(int(math.Round(s.Origin.X)), int(math.Round(s.Origin.Y)))
		draw.Draw(dst, img.Bounds().Add(at), img, image.Point{}, draw.Over)

		thumb := geom.Pt(s.Origin.X+s.Thumb.Offset+s.Thumb.Radius, s.Origin.Y+s.Height/2)
		Disc(dst, thumb, s.Thumb.Radius, s.Thumb.Stroke, samples)
		Disc(dst, thumb, s.Thumb.Radius-2, s.Thumb.Fill, samples)
	}

	return dst
}

// Disc draws an antialiased filled circle over dst.
func Disc(dst draw.Image, center geom.Point, radius float64, c color.Color, samples int) {
	if radius <= 0 {
		return
	}

	inside := func(x, y float64) bool {
		return math.Hypot(x-center.X, y-center.Y) <= radius
	}

	fill(dst, image.Rect(
		int(math.Floor(center.X-radius)), int(math.Floor(center.Y-radius)),
		int(math.Ceil(center.X+radius))+1, int(math.Ceil(center.Y+radius))+1,
	), inside, c, samples)
}

// RoundedRect draws an antialiased rectangle with corners of the given
// radius over dst.
func RoundedRect(dst draw.Image, r geom.Rect, radius float64, c color.Color, samples int) {
	if r.Size.Empty() {
		return
	}

	radius = clamp(radius, 0, math.Min(r.Size.Width, r.Size.Height)/2)
	end := r.Max()

	inside := func(x, y float64) bool {
		// distance to the rectangle shrunk by radius
		cx := clamp(x, r.Min.X+radius, end.X-radius)
		cy := clamp(y, r.Min.Y+radius, end.Y-radius)
		return math.Hypot(x-cx, y-cy) <= radius
	}

	fill(dst, image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(end.X)), int(math.Ceil(end.Y)),
	), inside, c, samples)
}

// fill paints c over every pixel of b, weighted by how many of its subpixel
// samples are inside the shape.
func fill(dst draw.Image, b image.Rectangle, inside func(x, y float64) bool, c color.Color, samples int) {
	offsets := sampleOffsets(samples)
	total := len(offsets) * len(offsets)
	src := image.NewUniform(c)

	b = b.Intersect(dst.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var coverage int
			for _, oy := range offsets {
				for _, ox := range offsets {
					if inside(float64(x)+ox, float64(y)+oy) {
						coverage++
					}
				}
			}

			if coverage == 0 {
				continue
			}

			mask := image.NewUniform(color.Alpha{A: uint8(255 * coverage / total)})
			draw.DrawMask(dst, image.Rect(x, y, x+1, y+1), src, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func blend(top, bottom uint8, a float64) uint8 {
	return uint8(float64(top)*a + float64(bottom)*(1-a) + 0.5)
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}
