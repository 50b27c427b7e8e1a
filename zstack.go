package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
)

// ZStack layers its children over each other. Children paint bottom to
// top and receive events top to bottom, so the visually topmost child
// gets the first say.
type ZStack[T any] struct {
	children []*Pod[T]
}

// NewZStack returns a stack of the given layers, bottom first.
func NewZStack[T any](children ...Widget[T]) *ZStack[T] {
	s := &ZStack[T]{}
	for _, c := range children {
		s.Push(c)
	}
	return s
}

// Push appends a layer on top.
func (s *ZStack[T]) Push(child Widget[T]) {
	s.children = append(s.children, NewPod(child))
}

// Layout offers every layer the parent constraint and claims the whole
// parent.
func (s *ZStack[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	for _, child := range s.children {
		child.Layout(parent, ctx, data, env)
	}
	return parent
}

func (s *ZStack[T]) Paint(canvas Canvas, data T) {
	for _, child := range s.children {
		child.Paint(canvas, data)
	}
}

func (s *ZStack[T]) Update(delta time.Duration, ctx Context, data T) {
	for _, child := range s.children {
		child.Update(delta, ctx, data)
	}
}

// Event routes top to bottom. Pointer moves go only to the topmost layer
// under the pointer; any other layer still marked hot is then sent a
// synthesized exit, so obscured layers don't keep stale hover state.
func (s *ZStack[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	flow := Continue
	var hot WidgetID
	var moved bool

	for i := len(s.children) - 1; i >= 0; i-- {
		child := s.children[i]

		if move, ok := event.(MouseMove); ok {
			if child.Contains(move.Point) {
				flow = child.Event(event, ctx, env, data)
				hot, moved = child.ID, true
				break
			}
			continue
		}
		if flow = child.Event(event, ctx, env, data); flow == Break {
			break
		}
	}

	if moved {
		for _, child := range s.children {
			if child.ID != hot && child.Hot {
				child.Event(MouseExit{}, ctx, env, data)
			}
		}
	}
	return flow
}

func (s *ZStack[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	for _, child := range s.children {
		child.Lifecycle(lc, ctx, env, data)
	}
}

func (s *ZStack[T]) Frame(surfaces Surfaces, data T) {
	for _, child := range s.children {
		child.Frame(surfaces, data)
	}
}

func (s *ZStack[T]) Contains(point gfx.Point) bool {
	for i := len(s.children) - 1; i >= 0; i-- {
		if s.children[i].Contains(point) {
			return true
		}
	}
	return false
}

// Cursor returns the topmost hovered layer's cursor. Hovered layers
// without a cursor don't shadow the ones beneath.
func (s *ZStack[T]) Cursor() (CursorStyle, bool) {
	for i := len(s.children) - 1; i >= 0; i-- {
		child := s.children[i]
		if !child.Hot {
			continue
		}
		if style, ok := child.Cursor(); ok {
			return style, true
		}
	}
	return 0, false
}

func (s *ZStack[T]) String() string {
	return fmt.Sprintf("ZStack(%d)", len(s.children))
}
