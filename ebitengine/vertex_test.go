package ebitengine

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cloudhead/easel"
	"github.com/cloudhead/easel/gfx"
)

func approxVertex(t *testing.T, got ebiten.Vertex, x, y float32) {
	t.Helper()
	if math32.Abs(got.DstX-x) > 1e-4 || math32.Abs(got.DstY-y) > 1e-4 {
		t.Errorf("vertex at (%g, %g), want (%g, %g)", got.DstX, got.DstY, x, y)
	}
}

func TestShapeVertices(t *testing.T) {
	rect := gfx.FillRect(gfx.R(2, 3, 4, 5), gfx.RGBA8(0xff, 0x00, 0x00, 0xff))
	got := shapeVertices(rect.Vertices(), gfx.Translation(gfx.P(10, 20)))

	if len(got) != 6 {
		t.Fatalf("got %d vertices, want 6", len(got))
	}
	// Quad corners translate with the paint transform.
	approxVertex(t, got[0], 12, 23)
	approxVertex(t, got[1], 16, 28)
	approxVertex(t, got[2], 16, 23)
	approxVertex(t, got[5], 12, 28)

	v := got[0]
	if v.SrcX != 0.5 || v.SrcY != 0.5 {
		t.Errorf("source = (%g, %g), want white pixel center", v.SrcX, v.SrcY)
	}
	if v.ColorR != 1 || v.ColorG != 0 || v.ColorB != 0 || v.ColorA != 1 {
		t.Errorf("color = (%g, %g, %g, %g), want opaque red", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestShapeVerticesPremultiply(t *testing.T) {
	vs := []gfx.ShapeVertex{{Position: gfx.P(0, 0), Color: gfx.RGBA8(0xff, 0xff, 0xff, 0x7f)}}
	got := shapeVertices(vs, gfx.Identity())

	a := float32(0x7f) / 0xff
	v := got[0]
	if math32.Abs(v.ColorR-a) > 1e-4 || math32.Abs(v.ColorA-a) > 1e-4 {
		t.Errorf("color = (%g, %g, %g, %g), want premultiplied by %g", v.ColorR, v.ColorG, v.ColorB, v.ColorA, a)
	}
}

func TestShapeVerticesRotation(t *testing.T) {
	// A quarter turn around the origin sends (2, 0) to (0, 2).
	vs := []gfx.ShapeVertex{{
		Position: gfx.P(2, 0),
		Angle:    math32.Pi / 2,
		Center:   gfx.P(0, 0),
		Color:    gfx.White,
	}}
	got := shapeVertices(vs, gfx.Identity())
	approxVertex(t, got[0], 0, 2)

	// Rotation happens before the paint transform.
	got = shapeVertices(vs, gfx.Translation(gfx.P(100, 0)))
	approxVertex(t, got[0], 100, 2)
}

func TestSpriteVertices(t *testing.T) {
	batch := gfx.NewSpriteBatch(64, 32)
	batch.Add(gfx.R(16, 8, 32, 16), gfx.R(0, 0, 32, 16), 0, gfx.Rgba{}, 1, gfx.RepeatOnce)

	got := spriteVertices(batch.Vertices(), gfx.Translation(gfx.P(5, 6)), gfx.S(64, 32))
	if len(got) != 6 {
		t.Fatalf("got %d vertices, want 6", len(got))
	}

	// Normalized UVs come back out as texel coordinates.
	v := got[0]
	if v.SrcX != 16 || v.SrcY != 8 {
		t.Errorf("source = (%g, %g), want (16, 8)", v.SrcX, v.SrcY)
	}
	if got[1].SrcX != 48 || got[1].SrcY != 24 {
		t.Errorf("source max = (%g, %g), want (48, 24)", got[1].SrcX, got[1].SrcY)
	}
	approxVertex(t, v, 5, 6)

	// The zero color means untinted.
	if v.ColorR != 1 || v.ColorG != 1 || v.ColorB != 1 || v.ColorA != 1 {
		t.Errorf("color = (%g, %g, %g, %g), want white", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestSpriteVerticesTintAndOpacity(t *testing.T) {
	vs := []gfx.SpriteVertex{{
		Position: gfx.P(0, 0),
		UV:       gfx.P(0, 0),
		Color:    gfx.RGBA8(0xff, 0x00, 0x00, 0xff),
		Opacity:  0.5,
	}}
	got := spriteVertices(vs, gfx.Identity(), gfx.S(8, 8))

	v := got[0]
	if math32.Abs(v.ColorR-0.5) > 1e-4 || v.ColorG != 0 || v.ColorB != 0 || math32.Abs(v.ColorA-0.5) > 1e-4 {
		t.Errorf("color = (%g, %g, %g, %g), want half-faded red", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestSpriteAddress(t *testing.T) {
	once := []gfx.SpriteVertex{{UV: gfx.P(0, 0)}, {UV: gfx.P(1, 1)}}
	if got := spriteAddress(once); got != ebiten.AddressUnsafe {
		t.Errorf("address = %v, want unsafe for UVs within bounds", got)
	}
	repeat := []gfx.SpriteVertex{{UV: gfx.P(0, 0)}, {UV: gfx.P(4, 1)}}
	if got := spriteAddress(repeat); got != ebiten.AddressRepeat {
		t.Errorf("address = %v, want repeat for UVs beyond bounds", got)
	}
}

func TestTriangleIndices(t *testing.T) {
	got := triangleIndices(6)
	for i, idx := range got {
		if idx != uint32(i) {
			t.Fatalf("index %d = %d, want identity", i, idx)
		}
	}
}

func TestEbitenBlend(t *testing.T) {
	if got := ebitenBlend(easel.BlendAlpha); got != ebiten.BlendSourceOver {
		t.Error("alpha blending should map to source-over")
	}
	if got := ebitenBlend(easel.BlendAdd); got != ebiten.BlendLighter {
		t.Error("additive blending should map to lighter")
	}
	if got := ebitenBlend(easel.BlendMultiply); got.BlendFactorSourceRGB != ebiten.BlendFactorDestinationColor {
		t.Error("multiply should scale the source by the destination color")
	}
	if got := ebitenBlend(easel.BlendScreen); got.BlendFactorDestinationRGB != ebiten.BlendFactorOneMinusSourceColor {
		t.Error("screen should scale the destination by the inverse source")
	}
}

func TestCursorBlend(t *testing.T) {
	if got := cursorBlend(false); got != ebiten.BlendSourceOver {
		t.Error("plain cursors should composite source-over")
	}
	got := cursorBlend(true)
	if got.BlendFactorSourceRGB != ebiten.BlendFactorOneMinusDestinationColor {
		t.Error("inverting cursors should flip the destination color")
	}
	if got.BlendFactorDestinationAlpha != ebiten.BlendFactorOne {
		t.Error("inverting cursors should keep the destination alpha")
	}
}

func TestPremultiply(t *testing.T) {
	got := premultiply([]gfx.Rgba8{{R: 0xff, G: 0x80, B: 0x00, A: 0x80}})
	want := []byte{0x80, 0x40, 0x00, 0x80}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	got := unpremultiply([]byte{0x80, 0x40, 0x00, 0x80})
	want := gfx.Rgba8{R: 0xff, G: 0x7f, B: 0x00, A: 0x80}
	if got[0] != want {
		t.Errorf("texel = %+v, want %+v", got[0], want)
	}

	// Opaque and transparent texels pass through untouched.
	got = unpremultiply([]byte{0x10, 0x20, 0x30, 0xff, 0x00, 0x00, 0x00, 0x00})
	if got[0] != (gfx.Rgba8{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("opaque texel = %+v", got[0])
	}
	if got[1] != (gfx.Rgba8{}) {
		t.Errorf("transparent texel = %+v, want zero", got[1])
	}
}
