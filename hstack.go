package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
)

// HStack lays its children out left to right, wrapping to a new row when
// a child would overflow the parent width.
type HStack[T any] struct {
	children []*Pod[T]
	spacing  float32
	size     gfx.Size
}

// NewHStack returns a stack of the given children.
func NewHStack[T any](children ...Widget[T]) *HStack[T] {
	s := &HStack[T]{}
	for _, c := range children {
		s.Push(c)
	}
	return s
}

// Push appends a child.
func (s *HStack[T]) Push(child Widget[T]) {
	s.children = append(s.children, NewPod(child))
}

// Spacing sets the horizontal gap between children.
func (s *HStack[T]) Spacing(spacing float32) *HStack[T] {
	s.spacing = spacing
	return s
}

// Bounds returns the stack's laid-out bounds at the origin.
func (s *HStack[T]) Bounds() gfx.Rect {
	return gfx.RectOrigin(s.size)
}

// Layout flows the children, wrapping rows at the parent width.
func (s *HStack[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	var offset gfx.Point
	var height float32

	for _, child := range s.children {
		child.Layout(parent, ctx, data, env)
		height = max(height, child.Size.H)

		if offset.X+child.Size.W > parent.W {
			offset.Y += child.Size.H
			offset.X = 0
			height += child.Size.H
		}
		child.Offset = offset
		offset.X += child.Size.W + s.spacing
	}
	s.size = gfx.S(offset.X-s.spacing, height)
	return s.size
}

func (s *HStack[T]) Paint(canvas Canvas, data T) {
	for _, child := range s.children {
		child.Paint(canvas, data)
	}
}

func (s *HStack[T]) Update(delta time.Duration, ctx Context, data T) {
	for _, child := range s.children {
		child.Update(delta, ctx, data)
	}
}

// Event offers the event to each child in order, stopping at the first
// one that breaks.
func (s *HStack[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	for _, child := range s.children {
		if child.Event(event, ctx, env, data) == Break {
			return Break
		}
	}
	return Continue
}

func (s *HStack[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	for _, child := range s.children {
		child.Lifecycle(lc, ctx, env, data)
	}
}

func (s *HStack[T]) Frame(surfaces Surfaces, data T) {
	for _, child := range s.children {
		child.Frame(surfaces, data)
	}
}

func (s *HStack[T]) Contains(point gfx.Point) bool {
	return s.Bounds().Contains(point)
}

// Cursor reports the hovered child's cursor.
func (s *HStack[T]) Cursor() (CursorStyle, bool) {
	for _, child := range s.children {
		if child.Hot {
			return child.Cursor()
		}
	}
	return 0, false
}

func (s *HStack[T]) String() string {
	return fmt.Sprintf("HStack(%d)", len(s.children))
}
