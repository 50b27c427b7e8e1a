package easel

import "github.com/cloudhead/easel/gfx"

// Canvas is a transform- and target-scoped view over a Graphics.
// Widgets paint through it; derivations are cheap copies, so narrowing a
// canvas for a child never affects the parent's.
type Canvas struct {
	graphics  *Graphics
	transform gfx.Transform
	size      gfx.Size
	target    *TextureID
	blending  Blending
}

// NewCanvas returns a screen-targeted canvas over the graphics state.
func NewCanvas(graphics *Graphics, size gfx.Size) Canvas {
	return Canvas{
		graphics:  graphics,
		transform: gfx.Identity(),
		size:      size,
	}
}

// Transform derives a canvas whose paints are additionally transformed
// by t, applied in the current space.
func (c Canvas) Transform(t gfx.Transform) Canvas {
	c.transform = c.transform.Mul(t)
	return c
}

// Resize derives a canvas with different bounds.
func (c Canvas) Resize(size gfx.Size) Canvas {
	c.size = size
	return c
}

// On derives a canvas painting onto an offscreen texture instead of the
// screen.
func (c Canvas) On(id TextureID) Canvas {
	c.target = &id
	return c
}

// WithBlending derives a canvas with a blending mode.
func (c Canvas) WithBlending(b Blending) Canvas {
	c.blending = b
	return c
}

// Bounds returns the canvas rectangle at the origin.
func (c Canvas) Bounds() gfx.Rect {
	return gfx.RectOrigin(c.size)
}

// Size returns the canvas dimensions.
func (c Canvas) Size() gfx.Size {
	return c.size
}

// Paint queues a paint. On a targeted canvas the paint goes to the
// target in texture space; on a screen canvas it picks up the canvas
// transform.
func (c Canvas) Paint(p Paint) {
	if c.target != nil {
		c.graphics.Paint(p.on(*c.target), c.blending)
		return
	}
	c.graphics.Paint(p.withTransform(c.transform), c.blending)
}

// Fill paints a filled rectangle.
func (c Canvas) Fill(rect gfx.Rect, color gfx.Rgba8) {
	c.Paint(NewShapePaint(gfx.FillRect(rect, color).Vertices()))
}

// Stroke paints a rectangle outline.
func (c Canvas) Stroke(rect gfx.Rect, width float32, color gfx.Rgba8) {
	c.Paint(NewShapePaint(gfx.StrokeRect(rect, width, color).Vertices()))
}

// Offscreen registers an offscreen target for later On calls.
func (c Canvas) Offscreen(id TextureID, size gfx.Size) TextureID {
	c.graphics.Offscreen(id, size)
	return id
}

// Clear queues a clear of the canvas target. Only targeted canvases can
// be cleared.
func (c Canvas) Clear(color gfx.Rgba8) {
	if c.target == nil {
		panic("easel: clear requires an offscreen target")
	}
	c.graphics.Clear(*c.target, color)
}

// Upload queues a raw pixel write to the canvas target. Only targeted
// canvases can be written to.
func (c Canvas) Upload(texels []gfx.Rgba8) {
	if c.target == nil {
		panic("easel: upload requires an offscreen target")
	}
	c.graphics.Upload(*c.target, texels)
}
