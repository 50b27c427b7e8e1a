package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
)

// Pod wraps a widget with identity, position and pointer state. Parents
// that manage children through pods get hover and press tracking without
// the child knowing about either.
type Pod[T any] struct {
	// ID uniquely identifies the pod within the process.
	ID WidgetID
	// Size is the laid-out size, recorded by Layout.
	Size gfx.Size
	// Offset is the position in the parent, set by the parent's layout.
	Offset gfx.Point
	// Hot is true while the pointer is over the widget.
	Hot bool
	// Active is true while a press that started on the widget is held.
	Active bool

	widget Widget[T]
}

// NewPod wraps the widget in a pod with a fresh ID.
func NewPod[T any](widget Widget[T]) *Pod[T] {
	return &Pod[T]{ID: NextWidgetID(), widget: widget}
}

// Widget returns the wrapped widget.
func (p *Pod[T]) Widget() Widget[T] {
	return p.widget
}

// Layout sizes the widget and records the result.
func (p *Pod[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	p.Size = p.widget.Layout(parent, ctx, data, env)
	return p.Size
}

// Paint paints the widget at the pod's offset. With debugging enabled the
// pod bounds are outlined as well.
func (p *Pod[T]) Paint(canvas Canvas, data T) {
	canvas = canvas.Transform(gfx.Translation(p.Offset))
	p.widget.Paint(canvas, data)

	if Debug() {
		bounds := gfx.RectOrigin(p.Size)
		fill := uint8(0x11)
		if p.Hot {
			fill = 0x22
		}
		canvas.Stroke(bounds, 1, gfx.Green.WithAlpha(0x44))
		canvas.Fill(bounds, gfx.Green.WithAlpha(fill))
	}
}

// Update forwards to the widget with the pod's context applied.
func (p *Pod[T]) Update(delta time.Duration, ctx Context, data T) {
	p.widget.Update(delta, p.context(ctx), data)
}

// Event tracks pointer state and forwards the event to the widget in
// local coordinates. The child context carries the state as it was when
// the event arrived, not the state after the transition.
func (p *Pod[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	ctx = p.context(ctx)

	switch e := event.(type) {
	case MouseEnter:
		local := e.Point.Sub(p.Offset)
		if !p.hits(local) {
			return Continue
		}
		p.Hot = true
		return p.widget.Event(MouseEnter{local}, ctx, env, data)

	case MouseExit:
		if !p.Hot {
			return Continue
		}
		p.Hot = false
		return p.widget.Event(event, ctx, env, data)

	case MouseMove:
		local := e.Point.Sub(p.Offset)
		switch {
		case p.hits(local):
			if p.Hot {
				return p.widget.Event(MouseMove{local}, ctx, env, data)
			}
			p.Hot = true
			return p.widget.Event(MouseEnter{local}, ctx, env, data)
		case p.Hot:
			p.Hot = false
			return p.widget.Event(MouseExit{}, ctx, env, data)
		default:
			return Continue
		}

	case MouseDown:
		debugf("%s MouseDown (hot = %t)", p, p.Hot)
		if !p.Hot {
			return Continue
		}
		p.Active = true
		return p.widget.Event(event, ctx, env, data)

	case MouseUp:
		if !p.Active {
			debugf("%s MouseUp (inactive)", p)
			return Continue
		}
		debugf("%s MouseUp (active)", p)
		// The release is delivered with the active flag still set, so
		// handlers can tell a completed press from a stray release.
		p.Active = false
		return p.widget.Event(event, ctx.WithActive(true), env, data)

	default:
		return p.widget.Event(event, ctx, env, data)
	}
}

// Lifecycle forwards to the widget with the pod's context applied.
func (p *Pod[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	p.widget.Lifecycle(lc, p.context(ctx), env, data)
}

// Frame forwards to the widget.
func (p *Pod[T]) Frame(surfaces Surfaces, data T) {
	p.widget.Frame(surfaces, data)
}

// Contains delegates to the widget in local coordinates. The pod bounds
// are deliberately not checked, so a child that extends past its laid-out
// size stays hittable.
func (p *Pod[T]) Contains(point gfx.Point) bool {
	return p.widget.Contains(point.Sub(p.Offset))
}

// Cursor forwards to the widget.
func (p *Pod[T]) Cursor() (CursorStyle, bool) {
	return p.widget.Cursor()
}

func (p *Pod[T]) String() string {
	return fmt.Sprintf("%s#%d", p.widget, p.ID)
}

// context derives the child context from the pod's current state.
func (p *Pod[T]) context(ctx Context) Context {
	return ctx.Offset(p.Offset).WithHot(p.Hot).WithActive(p.Active)
}

// hits reports whether a local point falls inside both the pod bounds and
// the widget's own hit shape.
func (p *Pod[T]) hits(local gfx.Point) bool {
	return gfx.RectOrigin(p.Size).Contains(local) && p.widget.Contains(local)
}
