package easel

import (
	"testing"

	"github.com/cloudhead/easel/gfx"
)

func TestCursorStyleStrings(t *testing.T) {
	tests := []struct {
		style CursorStyle
		want  string
	}{
		{CursorPointer, "pointer"},
		{CursorHand, "hand"},
		{CursorGrab, "grab"},
		{CursorSampler, "sampler"},
		{CursorCrosshair, "crosshair"},
		{CursorOmni, "omni"},
		{CursorErase, "erase"},
		{CursorFlood, "flood"},
		{CursorStyle(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("CursorStyle(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestCursorStyleInvert(t *testing.T) {
	inverted := map[CursorStyle]bool{
		CursorCrosshair: true,
		CursorErase:     true,
	}
	for style := CursorPointer; style <= CursorFlood; style++ {
		if got, want := style.Invert(), inverted[style]; got != want {
			t.Errorf("%s.Invert() = %v, want %v", style, got, want)
		}
	}
}

func TestCursorSpriteHotspot(t *testing.T) {
	cursor := Cursor{Style: CursorPointer, Origin: gfx.P(100, 50)}
	batch := cursor.Sprite(TextureInfo{W: 128, H: 16})

	if batch.Len() != 1 {
		t.Fatalf("batch.Len() = %d, want 1", batch.Len())
	}
	vs := batch.Vertices()
	if len(vs) != 6 {
		t.Fatalf("len(vs) = %d, want 6", len(vs))
	}

	// The arrow's tip sits five pixels right and one pixel down of the
	// tile corner, so the quad shifts the other way.
	if got, want := vs[0].Position, gfx.P(95, 49); got != want {
		t.Errorf("dst min = %v, want %v", got, want)
	}
	if got, want := vs[1].Position, gfx.P(111, 65); got != want {
		t.Errorf("dst max = %v, want %v", got, want)
	}

	// The pointer tile is the seventh 16px cell on the first row.
	if got, want := vs[0].UV, gfx.P(0.75, 0); got != want {
		t.Errorf("uv min = %v, want %v", got, want)
	}
	if got, want := vs[1].UV, gfx.P(0.875, 1); got != want {
		t.Errorf("uv max = %v, want %v", got, want)
	}
}

func TestCursorSpriteCrosshairCentersOnOrigin(t *testing.T) {
	cursor := Cursor{Style: CursorCrosshair, Origin: gfx.P(64, 64)}
	vs := cursor.Sprite(TextureInfo{W: 128, H: 16}).Vertices()

	if got, want := vs[0].Position, gfx.P(56, 56); got != want {
		t.Errorf("dst min = %v, want %v", got, want)
	}
	if got, want := vs[1].Position, gfx.P(72, 72); got != want {
		t.Errorf("dst max = %v, want %v", got, want)
	}
}
