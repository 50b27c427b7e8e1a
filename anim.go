package easel

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/cloudhead/easel/gfx"
)

// Slide is an entrance transition: the child starts displaced and eases
// into its resting position. The displacement is cosmetic, so layout and
// hit testing see the child at rest the whole time.
type Slide[T any] struct {
	pod      *Pod[T]
	from     gfx.Point
	duration float32
	easing   ease.TweenFunc
	tween    *gween.Tween
	progress float32
}

// NewSlide returns a transition sliding the child in from the given
// displacement over the duration.
func NewSlide[T any](child Widget[T], from gfx.Point, duration time.Duration) *Slide[T] {
	return &Slide[T]{
		pod:      NewPod(child),
		from:     from,
		duration: float32(duration.Seconds()),
		easing:   ease.OutQuad,
	}
}

// Ease replaces the easing curve.
func (s *Slide[T]) Ease(fn ease.TweenFunc) *Slide[T] {
	s.easing = fn
	return s
}

func (s *Slide[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	return s.pod.Layout(parent, ctx, data, env)
}

// Paint paints the child displaced by however much of the slide remains.
func (s *Slide[T]) Paint(canvas Canvas, data T) {
	rest := s.from.Mul(1 - s.progress)
	s.pod.Paint(canvas.Transform(gfx.Translation(rest)), data)
}

// Update advances the transition. The tween is created on the first
// update so builder calls after construction still apply.
func (s *Slide[T]) Update(delta time.Duration, ctx Context, data T) {
	if s.tween == nil {
		s.tween = gween.New(0, 1, s.duration, s.easing)
	}
	s.progress, _ = s.tween.Update(float32(delta.Seconds()))
	s.pod.Update(delta, ctx, data)
}

func (s *Slide[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	return s.pod.Event(event, ctx, env, data)
}

func (s *Slide[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	s.pod.Lifecycle(lc, ctx, env, data)
}

func (s *Slide[T]) Frame(surfaces Surfaces, data T) {
	s.pod.Frame(surfaces, data)
}

func (s *Slide[T]) Contains(point gfx.Point) bool {
	return s.pod.Contains(point)
}

func (s *Slide[T]) Cursor() (CursorStyle, bool) {
	return s.pod.Cursor()
}

func (s *Slide[T]) String() string {
	return fmt.Sprintf("Slide(%s)", s.pod.Widget())
}
