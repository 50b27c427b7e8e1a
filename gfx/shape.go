package gfx

import "github.com/chewxy/math32"

// ShapeVertex is a solid-color vertex. Rotation is resolved at render
// time: the position rotates by Angle around Center.
type ShapeVertex struct {
	Position Point
	Z        float32
	Angle    float32
	Center   Point
	Color    Rgba8
}

// Rotation rotates a shape's vertices by Angle radians around Center.
type Rotation struct {
	Angle  float32
	Center Point
}

// Stroke is a shape outline. A zero Width means no outline.
type Stroke struct {
	Width float32
	Color Rgba8
}

// Fill describes how a shape's interior is painted. The zero value leaves
// the interior empty.
type Fill struct {
	color Rgba8
	solid bool
}

// Solid returns a fill with the given color.
func Solid(c Rgba8) Fill {
	return Fill{c, true}
}

// Shape is anything that can tessellate itself into shape vertices.
type Shape interface {
	Vertices() []ShapeVertex
}

func vertex(p Point, z float32, rot Rotation, c Rgba8) ShapeVertex {
	return ShapeVertex{Position: p, Z: z, Angle: rot.Angle, Center: rot.Center, Color: c}
}

// quad appends the two triangles covering b.
func quad(vs []ShapeVertex, b Box, z float32, rot Rotation, c Rgba8) []ShapeVertex {
	return append(vs,
		vertex(b.Min, z, rot, c),
		vertex(b.Max, z, rot, c),
		vertex(Point{b.Max.X, b.Min.Y}, z, rot, c),
		vertex(b.Min, z, rot, c),
		vertex(b.Max, z, rot, c),
		vertex(Point{b.Min.X, b.Max.Y}, z, rot, c),
	)
}

// --- Rectangle ---

// Rectangle is a rectangle shape with an optional stroke and fill. The
// stroke is drawn inside the rectangle bounds.
type Rectangle struct {
	Rect     Rect
	Z        float32
	Rotation Rotation
	Stroke   Stroke
	Fill     Fill
}

// FillRect returns a solid rectangle.
func FillRect(r Rect, c Rgba8) Rectangle {
	return Rectangle{Rect: r, Fill: Solid(c)}
}

// StrokeRect returns an outlined rectangle.
func StrokeRect(r Rect, width float32, c Rgba8) Rectangle {
	return Rectangle{Rect: r, Stroke: Stroke{width, c}}
}

// Vertices tessellates the rectangle.
func (r Rectangle) Vertices() []ShapeVertex {
	outer := r.Rect.Box()
	inner := outer.Expand(-r.Stroke.Width)

	var vs []ShapeVertex
	if r.Stroke.Width > 0 {
		c := r.Stroke.Color
		// Top, bottom, left, right edge quads between the outer and
		// inner boxes.
		vs = quad(vs, Box{outer.Min, Point{outer.Max.X, inner.Min.Y}}, r.Z, r.Rotation, c)
		vs = quad(vs, Box{Point{outer.Min.X, inner.Max.Y}, outer.Max}, r.Z, r.Rotation, c)
		vs = quad(vs, Box{Point{outer.Min.X, inner.Min.Y}, Point{inner.Min.X, inner.Max.Y}}, r.Z, r.Rotation, c)
		vs = quad(vs, Box{Point{inner.Max.X, inner.Min.Y}, Point{outer.Max.X, inner.Max.Y}}, r.Z, r.Rotation, c)
	}
	if r.Fill.solid {
		vs = quad(vs, inner, r.Z, r.Rotation, r.Fill.color)
	}
	return vs
}

// --- Circle ---

// defaultCircleSegments is the tessellation used when Segments is zero.
const defaultCircleSegments = 32

// Circle is a circle shape with an optional stroke and fill.
type Circle struct {
	Center   Point
	Radius   float32
	Segments int
	Z        float32
	Stroke   Stroke
	Fill     Fill
}

// FillCircle returns a solid circle.
func FillCircle(center Point, radius float32, c Rgba8) Circle {
	return Circle{Center: center, Radius: radius, Fill: Solid(c)}
}

// StrokeCircle returns an outlined circle.
func StrokeCircle(center Point, radius, width float32, c Rgba8) Circle {
	return Circle{Center: center, Radius: radius, Stroke: Stroke{width, c}}
}

// rim returns the point on the circle at the i-th of n segments.
func (c Circle) rim(i, n int, radius float32) Point {
	sin, cos := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
	return Point{c.Center.X + cos*radius, c.Center.Y + sin*radius}
}

// Vertices tessellates the circle as a triangle fan (fill) and a triangle
// ring between the outer and inner radius (stroke).
func (c Circle) Vertices() []ShapeVertex {
	n := c.Segments
	if n <= 0 {
		n = defaultCircleSegments
	}
	var vs []ShapeVertex
	if c.Stroke.Width > 0 {
		inner := c.Radius - c.Stroke.Width
		for i := 0; i < n; i++ {
			o0, o1 := c.rim(i, n, c.Radius), c.rim(i+1, n, c.Radius)
			i0, i1 := c.rim(i, n, inner), c.rim(i+1, n, inner)
			vs = append(vs,
				vertex(o0, c.Z, Rotation{}, c.Stroke.Color),
				vertex(o1, c.Z, Rotation{}, c.Stroke.Color),
				vertex(i0, c.Z, Rotation{}, c.Stroke.Color),
				vertex(i0, c.Z, Rotation{}, c.Stroke.Color),
				vertex(o1, c.Z, Rotation{}, c.Stroke.Color),
				vertex(i1, c.Z, Rotation{}, c.Stroke.Color),
			)
		}
	}
	if c.Fill.solid {
		radius := c.Radius
		if c.Stroke.Width > 0 {
			radius -= c.Stroke.Width
		}
		center := vertex(c.Center, c.Z, Rotation{}, c.Fill.color)
		for i := 0; i < n; i++ {
			vs = append(vs,
				center,
				vertex(c.rim(i, n, radius), c.Z, Rotation{}, c.Fill.color),
				vertex(c.rim(i+1, n, radius), c.Z, Rotation{}, c.Fill.color),
			)
		}
	}
	return vs
}

// --- Line ---

// Line is a straight line segment with a stroke width.
type Line struct {
	P1, P2   Point
	Z        float32
	Rotation Rotation
	Stroke   Stroke
}

// NewLine returns a line between two points.
func NewLine(p1, p2 Point, width float32, c Rgba8) Line {
	return Line{P1: p1, P2: p2, Stroke: Stroke{width, c}}
}

// Vertices tessellates the line as a quad extruded along its normal.
func (l Line) Vertices() []ShapeVertex {
	dx, dy := l.P2.X-l.P1.X, l.P2.Y-l.P1.Y
	length := math32.Sqrt(dx*dx + dy*dy)
	if length == 0 || l.Stroke.Width == 0 {
		return nil
	}
	// Unit normal scaled to half the stroke width.
	nx := -dy / length * l.Stroke.Width / 2
	ny := dx / length * l.Stroke.Width / 2

	a := Point{l.P1.X + nx, l.P1.Y + ny}
	b := Point{l.P1.X - nx, l.P1.Y - ny}
	c := Point{l.P2.X - nx, l.P2.Y - ny}
	d := Point{l.P2.X + nx, l.P2.Y + ny}
	col := l.Stroke.Color
	return []ShapeVertex{
		vertex(a, l.Z, l.Rotation, col),
		vertex(b, l.Z, l.Rotation, col),
		vertex(c, l.Z, l.Rotation, col),
		vertex(a, l.Z, l.Rotation, col),
		vertex(c, l.Z, l.Rotation, col),
		vertex(d, l.Z, l.Rotation, col),
	}
}

// --- Batch ---

// ShapeBatch accumulates tessellated shapes for a single draw.
type ShapeBatch struct {
	vertices []ShapeVertex
}

// Add tessellates the shape into the batch.
func (b *ShapeBatch) Add(s Shape) {
	b.vertices = append(b.vertices, s.Vertices()...)
}

// Vertices returns the accumulated vertices.
func (b *ShapeBatch) Vertices() []ShapeVertex {
	return b.vertices
}

// Clear empties the batch, keeping its capacity.
func (b *ShapeBatch) Clear() {
	b.vertices = b.vertices[:0]
}

// IsEmpty reports whether the batch holds no vertices.
func (b *ShapeBatch) IsEmpty() bool {
	return len(b.vertices) == 0
}
