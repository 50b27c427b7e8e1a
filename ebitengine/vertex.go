package ebitengine

import (
	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cloudhead/easel"
	"github.com/cloudhead/easel/gfx"
)

// Vertex colors are submitted premultiplied; every DrawTriangles call
// sets ColorScaleModePremultipliedAlpha to match.

// shapeVertices converts a shape batch into ebiten vertices against the
// white pixel source. Rotation is resolved here: each position rotates
// by its angle around its center before the paint transform applies.
func shapeVertices(vs []gfx.ShapeVertex, t gfx.Transform) []ebiten.Vertex {
	out := make([]ebiten.Vertex, len(vs))
	for i, v := range vs {
		p := v.Position
		if v.Angle != 0 {
			sin, cos := math32.Sincos(v.Angle)
			dx, dy := p.X-v.Center.X, p.Y-v.Center.Y
			p = gfx.Point{
				X: v.Center.X + dx*cos - dy*sin,
				Y: v.Center.Y + dx*sin + dy*cos,
			}
		}
		p = t.Apply(p)

		c := v.Color.Rgba()
		out[i] = ebiten.Vertex{
			DstX: p.X,
			DstY: p.Y,
			// Sample the center of the 1x1 white source.
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: c.R * c.A,
			ColorG: c.G * c.A,
			ColorB: c.B * c.A,
			ColorA: c.A,
		}
	}
	return out
}

// spriteVertices converts a sprite batch sampling a texture of the given
// pixel size. UVs arrive normalized; ebiten wants texel coordinates. A
// zero vertex color means untinted, and opacity fades all channels so
// source-over compositing stays premultiplied.
func spriteVertices(vs []gfx.SpriteVertex, t gfx.Transform, size gfx.Size) []ebiten.Vertex {
	out := make([]ebiten.Vertex, len(vs))
	for i, v := range vs {
		p := t.Apply(v.Position)

		r, g, b, a := float32(1), float32(1), float32(1), float32(1)
		if v.Color != (gfx.Rgba8{}) {
			c := v.Color.Rgba()
			r, g, b, a = c.R*c.A, c.G*c.A, c.B*c.A, c.A
		}
		out[i] = ebiten.Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			SrcX:   v.UV.X * size.W,
			SrcY:   v.UV.Y * size.H,
			ColorR: r * v.Opacity,
			ColorG: g * v.Opacity,
			ColorB: b * v.Opacity,
			ColorA: a * v.Opacity,
		}
	}
	return out
}

// triangleIndices returns the identity index list 0..n-1. Paints arrive
// as expanded triangle lists, so no vertices are shared.
func triangleIndices(n int) []uint32 {
	inds := make([]uint32, n)
	for i := range inds {
		inds[i] = uint32(i)
	}
	return inds
}

// spriteAddress picks the source address mode for a sprite batch. UVs
// beyond the texture bounds mean the paint wants the texture repeated.
func spriteAddress(vs []gfx.SpriteVertex) ebiten.Address {
	for _, v := range vs {
		if v.UV.X > 1 || v.UV.Y > 1 || v.UV.X < 0 || v.UV.Y < 0 {
			return ebiten.AddressRepeat
		}
	}
	return ebiten.AddressUnsafe
}

// ebitenBlend maps a blending mode onto ebiten's compositing pipeline.
func ebitenBlend(b easel.Blending) ebiten.Blend {
	switch b {
	case easel.BlendAdd:
		return ebiten.BlendLighter
	case easel.BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case easel.BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	}
	return ebiten.BlendSourceOver
}

// cursorBlend returns the blend for the pointer sprite. Inverting styles
// flip the pixels under the sprite so the pointer stays visible over its
// own color; coverage comes from the sprite's alpha, which assumes a
// white glyph in the cursor atlas.
func cursorBlend(invert bool) ebiten.Blend {
	if !invert {
		return ebiten.BlendSourceOver
	}
	return ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOneMinusDestinationColor,
		BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
}

// premultiply converts straight-alpha texels into the premultiplied RGBA
// byte layout ebiten images use.
func premultiply(texels []gfx.Rgba8) []byte {
	out := make([]byte, len(texels)*4)
	for i, t := range texels {
		a := int(t.A)
		out[i*4+0] = byte(int(t.R) * a / 0xff)
		out[i*4+1] = byte(int(t.G) * a / 0xff)
		out[i*4+2] = byte(int(t.B) * a / 0xff)
		out[i*4+3] = t.A
	}
	return out
}

// unpremultiply converts premultiplied RGBA bytes read back from an
// ebiten image into straight-alpha texels.
func unpremultiply(pix []byte) []gfx.Rgba8 {
	out := make([]gfx.Rgba8, len(pix)/4)
	for i := range out {
		r, g, b, a := pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3]
		if a > 0 && a < 0xff {
			r = byte(min(int(r)*0xff/int(a), 0xff))
			g = byte(min(int(g)*0xff/int(a), 0xff))
			b = byte(min(int(b)*0xff/int(a), 0xff))
		}
		out[i] = gfx.Rgba8{R: r, G: g, B: b, A: a}
	}
	return out
}
