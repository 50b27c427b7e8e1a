package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
	"github.com/cloudhead/easel/platform"
)

// Controller intercepts the dynamic half of a widget's contract. Layout
// and paint always go straight to the child; events, updates, lifecycle
// and frame notifications pass through the controller, which decides what
// the child sees.
type Controller[T any] interface {
	ControlEvent(child Widget[T], event Event, ctx Context, env *Env, data T) EventResult
	ControlUpdate(child Widget[T], delta time.Duration, ctx Context, data T)
	ControlLifecycle(child Widget[T], lc Lifecycle, ctx Context, env *Env, data T)
	ControlFrame(child Widget[T], surfaces Surfaces, data T)
}

// BaseController forwards everything unchanged. Embed it to intercept
// only what you need.
type BaseController[T any] struct{}

func (BaseController[T]) ControlEvent(child Widget[T], event Event, ctx Context, env *Env, data T) EventResult {
	return child.Event(event, ctx, env, data)
}

func (BaseController[T]) ControlUpdate(child Widget[T], delta time.Duration, ctx Context, data T) {
	child.Update(delta, ctx, data)
}

func (BaseController[T]) ControlLifecycle(child Widget[T], lc Lifecycle, ctx Context, env *Env, data T) {
	child.Lifecycle(lc, ctx, env, data)
}

func (BaseController[T]) ControlFrame(child Widget[T], surfaces Surfaces, data T) {
	child.Frame(surfaces, data)
}

// Control pairs a widget with a controller.
type Control[T any] struct {
	widget     Widget[T]
	controller Controller[T]
}

// NewControl wraps the widget with the controller.
func NewControl[T any](widget Widget[T], controller Controller[T]) *Control[T] {
	return &Control[T]{widget: widget, controller: controller}
}

func (c *Control[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	return c.widget.Layout(parent, ctx, data, env)
}

func (c *Control[T]) Paint(canvas Canvas, data T) {
	c.widget.Paint(canvas, data)
}

func (c *Control[T]) Update(delta time.Duration, ctx Context, data T) {
	c.controller.ControlUpdate(c.widget, delta, ctx, data)
}

func (c *Control[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	return c.controller.ControlEvent(c.widget, event, ctx, env, data)
}

func (c *Control[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	c.controller.ControlLifecycle(c.widget, lc, ctx, env, data)
}

func (c *Control[T]) Frame(surfaces Surfaces, data T) {
	c.controller.ControlFrame(c.widget, surfaces, data)
}

func (c *Control[T]) Contains(point gfx.Point) bool {
	return c.widget.Contains(point)
}

func (c *Control[T]) Cursor() (CursorStyle, bool) {
	return c.widget.Cursor()
}

func (c *Control[T]) String() string {
	return fmt.Sprintf("Control(%s)", c.widget)
}

// --- Click ---

// Click invokes an action when a press on the subtree completes with a
// release over it. Presses that drag off before release don't fire.
type Click[T any] struct {
	BaseController[T]

	button platform.MouseButton
	action func(ctx Context, data T)
}

// NewClick returns a click controller for the given button.
func NewClick[T any](button platform.MouseButton, action func(ctx Context, data T)) *Click[T] {
	return &Click[T]{button: button, action: action}
}

func (c *Click[T]) ControlEvent(child Widget[T], event Event, ctx Context, env *Env, data T) EventResult {
	switch e := event.(type) {
	case MouseDown:
		if e.Button == c.button {
			return Break
		}
	case MouseUp:
		if e.Button == c.button {
			// Hot and active together mean the press both started and
			// ended on the subtree.
			if ctx.Active && ctx.Hot {
				c.action(ctx, data)
			}
			return Break
		}
	}
	return child.Event(event, ctx, env, data)
}

// --- Hover ---

// Hover invokes an action when the pointer enters or leaves the subtree.
type Hover[T any] struct {
	BaseController[T]

	action func(ctx Context, data T, hovered bool)
}

// NewHover returns a hover controller.
func NewHover[T any](action func(ctx Context, data T, hovered bool)) *Hover[T] {
	return &Hover[T]{action: action}
}

func (h *Hover[T]) ControlEvent(child Widget[T], event Event, ctx Context, env *Env, data T) EventResult {
	switch event.(type) {
	case MouseEnter:
		h.action(ctx, data, true)
		// Continue so stacked siblings still see their exits.
		return Continue
	case MouseExit:
		h.action(ctx, data, false)
		return Continue
	}
	return child.Event(event, ctx, env, data)
}

// OnClick makes the widget respond to left clicks.
func OnClick[T any](widget Widget[T], action func(ctx Context, data T)) *Control[T] {
	return NewControl(widget, NewClick(platform.MouseButtonLeft, action))
}

// OnHover makes the widget respond to pointer enter and exit.
func OnHover[T any](widget Widget[T], action func(ctx Context, data T, hovered bool)) *Control[T] {
	return NewControl(widget, NewHover(action))
}
