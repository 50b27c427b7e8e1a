package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
	"github.com/cloudhead/easel/platform"
)

// Button is a child widget with click tracking. The pod supplies the
// hot and active state the click controller decides with.
type Button[T any] struct {
	child      *Pod[T]
	controller *Click[T]
}

// NewButton returns a button invoking action on a completed left click.
func NewButton[T any](child Widget[T], action func(ctx Context, data T)) *Button[T] {
	return &Button[T]{
		child:      NewPod(child),
		controller: NewClick(platform.MouseButtonLeft, action),
	}
}

func (b *Button[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	return b.child.Layout(parent, ctx, data, env)
}

func (b *Button[T]) Paint(canvas Canvas, data T) {
	b.child.Paint(canvas, data)
}

func (b *Button[T]) Update(delta time.Duration, ctx Context, data T) {
	b.child.Update(delta, ctx, data)
}

func (b *Button[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	return b.controller.ControlEvent(b.child, event, ctx, env, data)
}

func (b *Button[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	b.child.Lifecycle(lc, ctx, env, data)
}

func (b *Button[T]) Frame(surfaces Surfaces, data T) {
	b.child.Frame(surfaces, data)
}

func (b *Button[T]) Contains(point gfx.Point) bool {
	return b.child.Contains(point)
}

func (b *Button[T]) Cursor() (CursorStyle, bool) {
	return b.child.Cursor()
}

func (b *Button[T]) String() string {
	return fmt.Sprintf("Button(%s)", b.child.Widget())
}
