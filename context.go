package easel

import "github.com/cloudhead/easel/gfx"

// Context carries per-dispatch widget state: the transform from local to
// window space, the pointer position in local space, the synced surfaces,
// and the receiving pod's hot/active flags. Derivation methods return
// copies; a context is never mutated in place.
type Context struct {
	// Transform maps local coordinates to window coordinates.
	Transform gfx.Transform
	// Cursor is the pointer position in local coordinates.
	Cursor gfx.Point
	// Surfaces is the read view of renderer-synced texture pixels.
	Surfaces Surfaces
	// Hot is the receiving pod's hot flag at event entry.
	Hot bool
	// Active is the receiving pod's active flag at event entry.
	Active bool
}

// NewContext returns a root context: identity transform, not hot, not
// active.
func NewContext(cursor gfx.Point, surfaces Surfaces) Context {
	return Context{
		Transform: gfx.Identity(),
		Cursor:    cursor,
		Surfaces:  surfaces,
	}
}

// WithTransform composes t into the context: the transform gains t as its
// innermost step and the cursor moves into the new local space.
func (c Context) WithTransform(t gfx.Transform) Context {
	c.Transform = c.Transform.Mul(t)
	c.Cursor = t.Unapply(c.Cursor)
	return c
}

// Offset composes a translation, entering a child's coordinate space.
func (c Context) Offset(offset gfx.Point) Context {
	return c.WithTransform(gfx.Translation(offset))
}

// WithHot returns the context with the hot flag replaced.
func (c Context) WithHot(hot bool) Context {
	c.Hot = hot
	return c
}

// WithActive returns the context with the active flag replaced.
func (c Context) WithActive(active bool) Context {
	c.Active = active
	return c
}

// LayoutContext carries the resources available during layout.
type LayoutContext struct {
	Fonts map[FontID]*Font
}

// Font returns a registered font, if present.
func (c *LayoutContext) Font(id FontID) (*Font, bool) {
	f, ok := c.Fonts[id]
	return f, ok
}
