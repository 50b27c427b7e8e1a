package gfx

import "github.com/chewxy/math32"

// Point is a position or displacement in 2D space. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y float32
}

// P is shorthand for Point{x, y}.
func P(x, y float32) Point {
	return Point{x, y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{p.X * s, p.Y * s}
}

// Floor returns p with both components rounded toward negative infinity.
func (p Point) Floor() Point {
	return Point{math32.Floor(p.X), math32.Floor(p.Y)}
}

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{math32.Min(p.X, q.X), math32.Min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{math32.Max(p.X, q.X), math32.Max(p.Y, q.Y)}
}

// Size returns the point reinterpreted as a size.
func (p Point) Size() Size {
	return Size{p.X, p.Y}
}

// Size is a width and height pair.
type Size struct {
	W, H float32
}

// S is shorthand for Size{w, h}.
func S(w, h float32) Size {
	return Size{w, h}
}

// Min returns the component-wise minimum of s and t.
func (s Size) Min(t Size) Size {
	return Size{math32.Min(s.W, t.W), math32.Min(s.H, t.H)}
}

// Point returns the size reinterpreted as a point.
func (s Size) Point() Point {
	return Point{s.W, s.H}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Rect is an axis-aligned rectangle given by its top-left origin and size.
type Rect struct {
	Origin Point
	Size   Size
}

// R is shorthand for Rect{Point{x, y}, Size{w, h}}.
func R(x, y, w, h float32) Rect {
	return Rect{Point{x, y}, Size{w, h}}
}

// RectOrigin returns a rectangle of the given size anchored at (0, 0).
func RectOrigin(size Size) Rect {
	return Rect{Size: size}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return r.Origin
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{r.Origin.X + r.Size.W, r.Origin.Y + r.Size.H}
}

// Contains reports whether p lies inside the rectangle. The interval is
// half-open: points on the min edges are inside, points on the max edges
// are outside.
func (r Rect) Contains(p Point) bool {
	min, max := r.Min(), r.Max()
	return p.X >= min.X && p.X < max.X &&
		p.Y >= min.Y && p.Y < max.Y
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{r.Origin.X + r.Size.W/2, r.Origin.Y + r.Size.H/2}
}

// Intersects reports whether r and s overlap. Rectangles sharing only an
// edge do not intersect.
func (r Rect) Intersects(s Rect) bool {
	return r.Min().X < s.Max().X && r.Max().X > s.Min().X &&
		r.Min().Y < s.Max().Y && r.Max().Y > s.Min().Y
}

// Intersection returns the overlapping region of r and s, or a zero Rect
// when they don't intersect.
func (r Rect) Intersection(s Rect) Rect {
	if !r.Intersects(s) {
		return Rect{}
	}
	min := r.Min().Max(s.Min())
	max := r.Max().Min(s.Max())
	return Box{min, max}.Rect()
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float32) Rect {
	return Rect{
		Point{r.Origin.X - d, r.Origin.Y - d},
		Size{r.Size.W + 2*d, r.Size.H + 2*d},
	}
}

// WithOrigin returns r moved to the given origin.
func (r Rect) WithOrigin(p Point) Rect {
	return Rect{p, r.Size}
}

// WithSize returns r resized in place.
func (r Rect) WithSize(s Size) Rect {
	return Rect{r.Origin, s}
}

// Translate returns r shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{r.Origin.Add(d), r.Size}
}

// Points returns the four corners in clockwise order starting top-left.
func (r Rect) Points() [4]Point {
	min, max := r.Min(), r.Max()
	return [4]Point{
		min,
		{max.X, min.Y},
		max,
		{min.X, max.Y},
	}
}

// Box returns the rectangle in min/max form.
func (r Rect) Box() Box {
	return Box{r.Min(), r.Max()}
}

// Box is an axis-aligned rectangle in min/max corner form.
type Box struct {
	Min, Max Point
}

// Rect returns the box in origin/size form.
func (b Box) Rect() Rect {
	return Rect{b.Min, Size{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y}}
}

// Expand grows the box by d on every side.
func (b Box) Expand(d float32) Box {
	return Box{
		Point{b.Min.X - d, b.Min.Y - d},
		Point{b.Max.X + d, b.Max.Y + d},
	}
}

// Repeat is a texture repeat factor along each axis.
type Repeat struct {
	X, Y float32
}

// RepeatOnce is the default repeat: the texture is sampled exactly once.
var RepeatOnce = Repeat{1, 1}
