package easel

import (
	"testing"
	"time"

	"github.com/chewxy/math32"

	"github.com/cloudhead/easel/gfx"
)

// slidePaintY paints the slide on a fresh canvas and returns the painted
// vertical displacement.
func slidePaintY(s *Slide[*eventLog]) float32 {
	g := NewGraphics()
	s.Paint(NewCanvas(g, gfx.S(100, 100)), nil)
	paint := g.Effects()[0].(PaintEffect).Paint.(ShapePaint)
	return paint.Transform.Apply(gfx.P(0, 0)).Y
}

func TestSlideStartsDisplaced(t *testing.T) {
	log := &eventLog{}
	s := NewSlide[*eventLog](NewSwatch[*eventLog](gfx.Red), gfx.P(0, -64), time.Second)
	s.Layout(gfx.S(100, 100), &LayoutContext{}, log, &Env{})

	if got := slidePaintY(s); got != -64 {
		t.Errorf("painted y = %g, want -64 before the first update", got)
	}
}

func TestSlideEases(t *testing.T) {
	log := &eventLog{}
	s := NewSlide[*eventLog](NewSwatch[*eventLog](gfx.Red), gfx.P(0, -64), time.Second)
	s.Layout(gfx.S(100, 100), &LayoutContext{}, log, &Env{})
	ctx := NewContext(gfx.P(0, 0), nil)

	// Half the duration through an out-quad is 3/4 progress.
	s.Update(500*time.Millisecond, ctx, log)

	if got, want := slidePaintY(s), float32(-16); math32.Abs(got-want) > 1e-3 {
		t.Errorf("painted y = %g, want %g", got, want)
	}
}

func TestSlideComesToRest(t *testing.T) {
	log := &eventLog{}
	s := NewSlide[*eventLog](NewSwatch[*eventLog](gfx.Red), gfx.P(0, -64), time.Second)
	s.Layout(gfx.S(100, 100), &LayoutContext{}, log, &Env{})
	ctx := NewContext(gfx.P(0, 0), nil)

	s.Update(2*time.Second, ctx, log)

	if got := slidePaintY(s); got != 0 {
		t.Errorf("painted y = %g, want 0 after the slide finishes", got)
	}
}

// The displacement is cosmetic: hit testing sees the child at rest.
func TestSlideContainsAtRest(t *testing.T) {
	log := &eventLog{}
	s := NewSlide[*eventLog](Sized[*eventLog](&stub{name: "a"}, gfx.S(10, 10)), gfx.P(0, -64), time.Second)
	s.Layout(gfx.S(100, 100), &LayoutContext{}, log, &Env{})

	if !s.Contains(gfx.P(5, 5)) {
		t.Error("resting position should be contained mid-slide")
	}
	if s.Contains(gfx.P(5, -59)) {
		t.Error("displaced position should not be contained")
	}
}

func TestSwatchPaintsItsBounds(t *testing.T) {
	g := NewGraphics()
	w := NewSwatch[*eventLog](gfx.Blue)

	w.Paint(NewCanvas(g, gfx.S(32, 32)), nil)

	effects := g.Effects()
	if len(effects) != 1 {
		t.Fatalf("got %d effects, want 1", len(effects))
	}
	paint := effects[0].(PaintEffect).Paint.(ShapePaint)
	if len(paint.Vertices) != 6 {
		t.Errorf("got %d vertices, want 6", len(paint.Vertices))
	}
}

func TestPainterDelegates(t *testing.T) {
	g := NewGraphics()
	var painted bool
	w := NewPainter[*eventLog](func(canvas Canvas, data *eventLog) {
		painted = true
		canvas.Fill(canvas.Bounds(), gfx.Green)
	})

	w.Paint(NewCanvas(g, gfx.S(32, 32)), nil)

	if !painted {
		t.Error("paint function did not run")
	}
	if len(g.Effects()) != 1 {
		t.Error("paint function's fill was not queued")
	}
}
