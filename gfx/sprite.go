package gfx

import "fmt"

// SpriteVertex is a textured vertex.
type SpriteVertex struct {
	Position Point
	Z        float32
	UV       Point
	Color    Rgba8
	Opacity  float32
}

// Sprite is a textured quad: a source rectangle in texture space mapped
// onto a destination rectangle. A zero Color leaves texture samples
// unmodified.
type Sprite struct {
	Src    Rect
	Dst    Rect
	Z      float32
	Color  Rgba
	Alpha  float32
	Repeat Repeat
}

// SpriteBatch accumulates sprites sampled from one texture of the given
// pixel dimensions.
type SpriteBatch struct {
	W, H  float32
	items []Sprite
}

// NewSpriteBatch returns a batch for a texture of the given size.
func NewSpriteBatch(w, h float32) *SpriteBatch {
	return &SpriteBatch{W: w, H: h}
}

// Add appends a sprite. Repeating the texture requires the source
// rectangle to cover it entirely.
func (b *SpriteBatch) Add(src, dst Rect, z float32, color Rgba, alpha float32, repeat Repeat) {
	if repeat != RepeatOnce && src != R(0, 0, b.W, b.H) {
		panic(fmt.Sprintf("gfx: texture repeat requires the full-texture source rect, got %v", src))
	}
	b.items = append(b.items, Sprite{
		Src:    src,
		Dst:    dst,
		Z:      z,
		Color:  color,
		Alpha:  alpha,
		Repeat: repeat,
	})
}

// Push appends a prepared sprite without repeat validation.
func (b *SpriteBatch) Push(s Sprite) {
	b.items = append(b.items, s)
}

// Offset shifts the destination of every sprite in the batch.
func (b *SpriteBatch) Offset(d Point) {
	for i := range b.items {
		b.items[i].Dst.Origin = b.items[i].Dst.Origin.Add(d)
	}
}

// Clear empties the batch, keeping its capacity.
func (b *SpriteBatch) Clear() {
	b.items = b.items[:0]
}

// IsEmpty reports whether the batch holds no sprites.
func (b *SpriteBatch) IsEmpty() bool {
	return len(b.items) == 0
}

// Len returns the number of sprites in the batch.
func (b *SpriteBatch) Len() int {
	return len(b.items)
}

// Vertices emits two triangles per sprite. UVs are normalized to the
// texture size and multiplied by the repeat factor.
func (b *SpriteBatch) Vertices() []SpriteVertex {
	vs := make([]SpriteVertex, 0, len(b.items)*6)
	for _, s := range b.items {
		repeat := s.Repeat
		if repeat == (Repeat{}) {
			repeat = RepeatOnce
		}
		c := s.Color.Rgba8()

		dmin, dmax := s.Dst.Min(), s.Dst.Max()
		uvmin := Point{s.Src.Min().X / b.W, s.Src.Min().Y / b.H}
		uvmax := Point{
			s.Src.Max().X * repeat.X / b.W,
			s.Src.Max().Y * repeat.Y / b.H,
		}

		sv := func(p, uv Point) SpriteVertex {
			return SpriteVertex{Position: p, Z: s.Z, UV: uv, Color: c, Opacity: s.Alpha}
		}
		vs = append(vs,
			sv(dmin, uvmin),
			sv(dmax, uvmax),
			sv(Point{dmax.X, dmin.Y}, Point{uvmax.X, uvmin.Y}),
			sv(dmin, uvmin),
			sv(dmax, uvmax),
			sv(Point{dmin.X, dmax.Y}, Point{uvmin.X, uvmax.Y}),
		)
	}
	return vs
}
