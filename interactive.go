package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
)

// Interactive gives a widget a pointer cursor without the widget having
// to implement Cursor itself.
type Interactive[T any] struct {
	widget Widget[T]
	cursor CursorStyle
}

// WithCursor wraps the widget with a cursor style.
func WithCursor[T any](widget Widget[T], style CursorStyle) *Interactive[T] {
	return &Interactive[T]{widget: widget, cursor: style}
}

func (i *Interactive[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	return i.widget.Layout(parent, ctx, data, env)
}

func (i *Interactive[T]) Paint(canvas Canvas, data T) {
	i.widget.Paint(canvas, data)
}

func (i *Interactive[T]) Update(delta time.Duration, ctx Context, data T) {
	i.widget.Update(delta, ctx, data)
}

func (i *Interactive[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	return i.widget.Event(event, ctx, env, data)
}

func (i *Interactive[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	i.widget.Lifecycle(lc, ctx, env, data)
}

func (i *Interactive[T]) Frame(surfaces Surfaces, data T) {
	i.widget.Frame(surfaces, data)
}

func (i *Interactive[T]) Contains(point gfx.Point) bool {
	return i.widget.Contains(point)
}

func (i *Interactive[T]) Cursor() (CursorStyle, bool) {
	return i.cursor, true
}

func (i *Interactive[T]) String() string {
	return fmt.Sprintf("Interactive(%s)", i.widget)
}
