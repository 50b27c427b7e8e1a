package gfx

import "testing"

func TestSpriteBatchVertices(t *testing.T) {
	b := NewSpriteBatch(64, 64)
	b.Add(R(16, 16, 16, 16), R(100, 100, 32, 32), 0, Rgba{}, 1, RepeatOnce)

	vs := b.Vertices()
	if len(vs) != 6 {
		t.Fatalf("len(vertices) = %d, want 6", len(vs))
	}

	// First vertex is the destination min with the normalized source min.
	if vs[0].Position != P(100, 100) {
		t.Errorf("position = %v, want (100, 100)", vs[0].Position)
	}
	if vs[0].UV != P(0.25, 0.25) {
		t.Errorf("uv = %v, want (0.25, 0.25)", vs[0].UV)
	}
	// Second vertex is the destination max with the normalized source max.
	if vs[1].Position != P(132, 132) {
		t.Errorf("position = %v, want (132, 132)", vs[1].Position)
	}
	if vs[1].UV != P(0.5, 0.5) {
		t.Errorf("uv = %v, want (0.5, 0.5)", vs[1].UV)
	}
	if vs[0].Opacity != 1 {
		t.Errorf("opacity = %v, want 1", vs[0].Opacity)
	}
}

func TestSpriteRepeatUVs(t *testing.T) {
	b := NewSpriteBatch(8, 8)
	b.Add(R(0, 0, 8, 8), R(0, 0, 16, 16), 0, Rgba{}, 1, Repeat{2, 2})

	vs := b.Vertices()
	if vs[1].UV != P(2, 2) {
		t.Errorf("max uv = %v, want (2, 2)", vs[1].UV)
	}
}

func TestSpriteRepeatRequiresFullSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("repeat with a partial source rect should panic")
		}
	}()
	b := NewSpriteBatch(8, 8)
	b.Add(R(0, 0, 4, 4), R(0, 0, 16, 16), 0, Rgba{}, 1, Repeat{2, 2})
}

func TestSpriteBatchOffset(t *testing.T) {
	b := NewSpriteBatch(8, 8)
	b.Add(R(0, 0, 8, 8), R(10, 10, 8, 8), 0, Rgba{}, 1, RepeatOnce)
	b.Offset(P(5, -5))

	vs := b.Vertices()
	if vs[0].Position != P(15, 5) {
		t.Errorf("offset position = %v, want (15, 5)", vs[0].Position)
	}
}

func TestSpriteColorQuantized(t *testing.T) {
	b := NewSpriteBatch(8, 8)
	b.Add(R(0, 0, 8, 8), R(0, 0, 8, 8), 0, Rgba{1, 0, 0, 1}, 1, RepeatOnce)

	vs := b.Vertices()
	if vs[0].Color != Red {
		t.Errorf("vertex color = %v, want red", vs[0].Color)
	}
}

func TestSpriteBatchClearLen(t *testing.T) {
	b := NewSpriteBatch(8, 8)
	if !b.IsEmpty() {
		t.Error("new batch should be empty")
	}
	b.Push(Sprite{Src: R(0, 0, 8, 8), Dst: R(0, 0, 8, 8), Alpha: 1})
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
	b.Clear()
	if !b.IsEmpty() {
		t.Error("cleared batch should be empty")
	}
}
