// Package geom provides the small amount of 2D geometry the picker needs:
// points, sizes, rectangles and the mapping between screen offsets and
// polar coordinates.
package geom

import "math"

// Point is a position or an offset in screen coordinates (Y grows downward).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Mul(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar}
}

// Len returns the euclidean length of p treated as an offset.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Center returns the middle of a surface of this size.
func (s Size) Center() Point {
	return Point{s.Width / 2, s.Height / 2}
}

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  Point
	Size Size
}

// R builds a Rect from x, y, width and height.
func R(x, y, w, h float64) Rect {
	return Rect{Min: Point{x, y}, Size: Size{w, h}}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{r.Min.X + r.Size.Width, r.Min.Y + r.Size.Height}
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X <= max.X && p.Y >= r.Min.Y && p.Y <= max.Y
}

// Local translates a point in the rectangle's parent space into r's space.
func (r Rect) Local(p Point) Point {
	return p.Sub(r.Min)
}
