package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
)

// inset is an optional distance from a parent edge.
type inset struct {
	set bool
	v   float32
}

// Align positions its child within the parent. By default the child is
// centered on both axes; pinning an edge overrides centering on that
// axis. Top wins over Bottom and Left over Right when both are pinned.
// Align always fills its parent.
type Align[T any] struct {
	pod *Pod[T]

	top    inset
	right  inset
	bottom inset
	left   inset
}

// NewAlign returns an aligner that centers the widget.
func NewAlign[T any](widget Widget[T]) *Align[T] {
	return &Align[T]{pod: NewPod(widget)}
}

// Top pins the child's top edge at the given inset.
func (a *Align[T]) Top(v float32) *Align[T] {
	a.top = inset{true, v}
	return a
}

// Right pins the child's right edge at the given inset.
func (a *Align[T]) Right(v float32) *Align[T] {
	a.right = inset{true, v}
	return a
}

// Bottom pins the child's bottom edge at the given inset.
func (a *Align[T]) Bottom(v float32) *Align[T] {
	a.bottom = inset{true, v}
	return a
}

// Left pins the child's left edge at the given inset.
func (a *Align[T]) Left(v float32) *Align[T] {
	a.left = inset{true, v}
	return a
}

// Layout places the child and claims the whole parent.
func (a *Align[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	size := a.pod.Layout(parent, ctx, data, env)

	x := (parent.W - size.W) / 2
	y := (parent.H - size.H) / 2

	if a.top.set {
		y = a.top.v
	} else if a.bottom.set {
		y = parent.H - a.bottom.v - size.H
	}
	if a.left.set {
		x = a.left.v
	} else if a.right.set {
		x = parent.W - a.right.v - size.W
	}

	a.pod.Offset = gfx.P(x, y)
	return parent
}

func (a *Align[T]) Paint(canvas Canvas, data T) {
	a.pod.Paint(canvas, data)
}

func (a *Align[T]) Update(delta time.Duration, ctx Context, data T) {
	a.pod.Update(delta, ctx, data)
}

func (a *Align[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	return a.pod.Event(event, ctx, env, data)
}

func (a *Align[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	a.pod.Lifecycle(lc, ctx, env, data)
}

func (a *Align[T]) Frame(surfaces Surfaces, data T) {
	a.pod.Frame(surfaces, data)
}

func (a *Align[T]) Contains(point gfx.Point) bool {
	return a.pod.Contains(point)
}

// Cursor reports the child's cursor only while the child is hovered, so
// an aligner filling the window doesn't claim the pointer everywhere.
func (a *Align[T]) Cursor() (CursorStyle, bool) {
	if a.pod.Hot {
		return a.pod.Cursor()
	}
	return 0, false
}

func (a *Align[T]) String() string {
	return fmt.Sprintf("Align(%s)", a.pod.Widget())
}

// Center centers the widget in its parent.
func Center[T any](widget Widget[T]) *Align[T] {
	return NewAlign(widget)
}

// Top pins the widget to the top edge, centered horizontally.
func Top[T any](widget Widget[T]) *Align[T] {
	return NewAlign(widget).Top(0)
}

// Bottom pins the widget to the bottom edge, centered horizontally.
func Bottom[T any](widget Widget[T]) *Align[T] {
	return NewAlign(widget).Bottom(0)
}

// Left pins the widget to the left edge, centered vertically.
func Left[T any](widget Widget[T]) *Align[T] {
	return NewAlign(widget).Left(0)
}

// Right pins the widget to the right edge, centered vertically.
func Right[T any](widget Widget[T]) *Align[T] {
	return NewAlign(widget).Right(0)
}
