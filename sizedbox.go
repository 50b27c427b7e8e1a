package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
)

// SizedBox constrains its child to a fixed size. The child is offered the
// requested size clamped to the parent, so a box never overflows the
// space it was given.
type SizedBox[T any] struct {
	pod  *Pod[T]
	size gfx.Size
}

// NewSizedBox returns a zero-sized box around the widget.
func NewSizedBox[T any](widget Widget[T]) *SizedBox[T] {
	return &SizedBox[T]{pod: NewPod(widget)}
}

// Width sets the requested width.
func (s *SizedBox[T]) Width(w float32) *SizedBox[T] {
	s.size.W = w
	return s
}

// Height sets the requested height.
func (s *SizedBox[T]) Height(h float32) *SizedBox[T] {
	s.size.H = h
	return s
}

// Layout offers the child the requested size clamped to the parent and
// takes the child's size.
func (s *SizedBox[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	return s.pod.Layout(s.size.Min(parent), ctx, data, env)
}

// Paint paints the child on a canvas resized to the laid-out bounds.
func (s *SizedBox[T]) Paint(canvas Canvas, data T) {
	s.pod.Paint(canvas.Resize(s.pod.Size), data)
}

func (s *SizedBox[T]) Update(delta time.Duration, ctx Context, data T) {
	s.pod.Update(delta, ctx, data)
}

func (s *SizedBox[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	return s.pod.Event(event, ctx, env, data)
}

func (s *SizedBox[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	s.pod.Lifecycle(lc, ctx, env, data)
}

func (s *SizedBox[T]) Frame(surfaces Surfaces, data T) {
	s.pod.Frame(surfaces, data)
}

// Contains tests against the requested size, not the laid-out one.
func (s *SizedBox[T]) Contains(point gfx.Point) bool {
	return gfx.RectOrigin(s.size).Contains(point)
}

func (s *SizedBox[T]) Cursor() (CursorStyle, bool) {
	return s.pod.Cursor()
}

func (s *SizedBox[T]) String() string {
	return fmt.Sprintf("SizedBox[%gx%g](%s)", s.size.W, s.size.H, s.pod.Widget())
}

// Sized constrains the widget to a fixed size.
func Sized[T any](widget Widget[T], size gfx.Size) *SizedBox[T] {
	return NewSizedBox(widget).Width(size.W).Height(size.H)
}
