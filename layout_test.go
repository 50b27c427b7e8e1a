package easel

import (
	"testing"

	"github.com/cloudhead/easel/gfx"
)

func alignOffset(t *testing.T, a *Align[*eventLog]) gfx.Point {
	t.Helper()
	log := &eventLog{}
	size := a.Layout(gfx.S(512, 512), &LayoutContext{}, log, &Env{})
	if want := gfx.S(512, 512); size != want {
		t.Fatalf("align size = %v, want %v (align fills its parent)", size, want)
	}
	return a.pod.Offset
}

func TestAlignCenter(t *testing.T) {
	a := Center[*eventLog](&stub{name: "a", size: gfx.S(32, 32)})
	if got, want := alignOffset(t, a), gfx.P(240, 240); got != want {
		t.Errorf("offset = %v, want %v", got, want)
	}
}

func TestAlignEdges(t *testing.T) {
	tests := []struct {
		name  string
		align *Align[*eventLog]
		want  gfx.Point
	}{
		{"top", Top[*eventLog](&stub{size: gfx.S(32, 32)}), gfx.P(240, 0)},
		{"bottom", Bottom[*eventLog](&stub{size: gfx.S(32, 32)}), gfx.P(240, 480)},
		{"left", Left[*eventLog](&stub{size: gfx.S(32, 32)}), gfx.P(0, 240)},
		{"right", Right[*eventLog](&stub{size: gfx.S(32, 32)}), gfx.P(480, 240)},
	}
	for _, tt := range tests {
		if got := alignOffset(t, tt.align); got != tt.want {
			t.Errorf("%s: offset = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAlignInsets(t *testing.T) {
	a := NewAlign[*eventLog](&stub{size: gfx.S(32, 32)}).Top(8).Right(16)
	if got, want := alignOffset(t, a), gfx.P(464, 8); got != want {
		t.Errorf("offset = %v, want %v", got, want)
	}
}

func TestAlignTopWinsOverBottom(t *testing.T) {
	a := NewAlign[*eventLog](&stub{size: gfx.S(32, 32)}).Top(8).Bottom(8)
	if got, want := alignOffset(t, a), gfx.P(240, 8); got != want {
		t.Errorf("offset = %v, want %v", got, want)
	}
}

func TestAlignCursorOnlyWhileHovered(t *testing.T) {
	log := &eventLog{}
	a := Center[*eventLog](WithCursor[*eventLog](&stub{size: gfx.S(32, 32)}, CursorHand))
	a.Layout(gfx.S(512, 512), &LayoutContext{}, log, &Env{})
	ctx := NewContext(gfx.P(0, 0), nil)

	if _, ok := a.Cursor(); ok {
		t.Error("cursor claimed without hover")
	}

	a.Event(MouseMove{Point: gfx.P(256, 256)}, ctx, &Env{}, log)
	style, ok := a.Cursor()
	if !ok || style != CursorHand {
		t.Errorf("cursor = %v, %t, want %v, true", style, ok, CursorHand)
	}

	a.Event(MouseMove{Point: gfx.P(0, 0)}, ctx, &Env{}, log)
	if _, ok := a.Cursor(); ok {
		t.Error("cursor still claimed after the pointer left")
	}
}

func TestSizedBoxClampsToParent(t *testing.T) {
	log := &eventLog{}
	box := Sized[*eventLog](&stub{name: "a"}, gfx.S(64, 64))

	if got := box.Layout(gfx.S(512, 512), &LayoutContext{}, log, &Env{}); got != gfx.S(64, 64) {
		t.Errorf("size = %v, want 64x64", got)
	}
	if got := box.Layout(gfx.S(32, 512), &LayoutContext{}, log, &Env{}); got != gfx.S(32, 64) {
		t.Errorf("clamped size = %v, want 32x64", got)
	}
}

func TestSizedBoxContainsUsesRequestedSize(t *testing.T) {
	box := Sized[*eventLog](&stub{name: "a"}, gfx.S(64, 64))

	if !box.Contains(gfx.P(63, 63)) {
		t.Error("inside the requested size should be contained")
	}
	if box.Contains(gfx.P(64, 64)) {
		t.Error("the far edge is exclusive")
	}
}

func TestSizedBoxString(t *testing.T) {
	box := Sized[*eventLog](&stub{name: "swatch"}, gfx.S(64, 48))
	if got, want := box.String(), "SizedBox[64x48](swatch)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInteractiveCursor(t *testing.T) {
	w := WithCursor[*eventLog](&stub{name: "a"}, CursorCrosshair)
	style, ok := w.Cursor()
	if !ok || style != CursorCrosshair {
		t.Errorf("cursor = %v, %t, want %v, true", style, ok, CursorCrosshair)
	}
}

func TestInteractiveForwardsEvents(t *testing.T) {
	log := &eventLog{}
	w := WithCursor[*eventLog](&stub{name: "a"}, CursorHand)
	ctx := NewContext(gfx.P(0, 0), nil)

	w.Event(Tick{}, ctx, &Env{}, log)
	if err := log.has("a:Tick"); err != nil {
		t.Error(err)
	}
}
