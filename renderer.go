package easel

import (
	"sync/atomic"

	"github.com/cloudhead/easel/gfx"
)

// TextureID identifies a texture owned by the renderer.
type TextureID uint64

// Reserved texture IDs claimed at setup.
const (
	// DefaultFontTexture holds the default font atlas.
	DefaultFontTexture TextureID = 0
	// DefaultCursorsTexture holds the cursor sprite atlas.
	DefaultCursorsTexture TextureID = 1
)

var lastTextureID = func() *atomic.Uint64 {
	var id atomic.Uint64
	id.Store(uint64(DefaultCursorsTexture))
	return &id
}()

// NextTextureID returns a process-unique texture ID, starting after the
// reserved IDs. Safe for concurrent use.
func NextTextureID() TextureID {
	return TextureID(lastTextureID.Add(1))
}

// TextureInfo describes a registered texture.
type TextureInfo struct {
	W, H int
}

// Size returns the texture dimensions.
func (t TextureInfo) Size() gfx.Size {
	return gfx.S(float32(t.W), float32(t.H))
}

// Blending selects a compositing operation for a paint.
type Blending uint8

const (
	BlendAlpha    Blending = iota // source-over (standard alpha blending)
	BlendAdd                      // additive / lighter
	BlendMultiply                 // multiply (only darkens)
	BlendScreen                   // screen (only brightens)
)

// --- Paints ---

// Paint is a pending draw: vertices, a transform, and an optional
// offscreen target. A nil Target paints to the screen.
type Paint interface {
	isPaint()
	// withTransform applies t after the paint's own transform.
	withTransform(t gfx.Transform) Paint
	// on retargets the paint to an offscreen texture.
	on(id TextureID) Paint
}

// ShapePaint draws solid-color triangles.
type ShapePaint struct {
	Vertices  []gfx.ShapeVertex
	Transform gfx.Transform
	Target    *TextureID
}

// SpritePaint draws textured triangles sampling the given texture.
type SpritePaint struct {
	Texture   TextureID
	Vertices  []gfx.SpriteVertex
	Transform gfx.Transform
	Target    *TextureID
}

// NewShapePaint wraps shape vertices in a paint with the identity
// transform.
func NewShapePaint(vertices []gfx.ShapeVertex) ShapePaint {
	return ShapePaint{Vertices: vertices, Transform: gfx.Identity()}
}

// NewSpritePaint wraps sprite vertices in a paint with the identity
// transform.
func NewSpritePaint(texture TextureID, vertices []gfx.SpriteVertex) SpritePaint {
	return SpritePaint{Texture: texture, Vertices: vertices, Transform: gfx.Identity()}
}

// NewTexturePaint draws the whole texture as an untinted quad at the
// origin.
func NewTexturePaint(id TextureID, info TextureInfo) SpritePaint {
	size := info.Size()
	batch := gfx.NewSpriteBatch(size.W, size.H)
	batch.Add(gfx.RectOrigin(size), gfx.RectOrigin(size), 0, gfx.Rgba{}, 1, gfx.RepeatOnce)
	return NewSpritePaint(id, batch.Vertices())
}

func (ShapePaint) isPaint() {}

func (p ShapePaint) withTransform(t gfx.Transform) Paint {
	p.Transform = t.Mul(p.Transform)
	return p
}

func (p ShapePaint) on(id TextureID) Paint {
	p.Target = &id
	return p
}

func (SpritePaint) isPaint() {}

func (p SpritePaint) withTransform(t gfx.Transform) Paint {
	p.Transform = t.Mul(p.Transform)
	return p
}

func (p SpritePaint) on(id TextureID) Paint {
	p.Target = &id
	return p
}

// --- Effects ---

// Effect is a deferred renderer command. The graphics queue collects
// effects during the paint pass; the renderer consumes them once per
// tick.
type Effect interface {
	isEffect()
}

// PaintEffect submits a paint with a blending mode.
type PaintEffect struct {
	Paint    Paint
	Blending Blending
}

// ClearEffect clears an offscreen texture to a color.
type ClearEffect struct {
	Target TextureID
	Color  gfx.Rgba8
}

// TextureEffect registers a texture: a static image upload, or an
// offscreen render target.
type TextureEffect struct {
	ID        TextureID
	Image     *gfx.Image
	Offscreen bool
}

// ResizeEffect resizes an offscreen texture, preserving content.
type ResizeEffect struct {
	ID   TextureID
	Size gfx.Size
}

// UploadEffect replaces an offscreen texture's pixels.
type UploadEffect struct {
	ID     TextureID
	Texels []gfx.Rgba8
}

func (PaintEffect) isEffect()   {}
func (ClearEffect) isEffect()   {}
func (TextureEffect) isEffect() {}
func (ResizeEffect) isEffect()  {}
func (UploadEffect) isEffect()  {}

// --- Renderer ---

// Renderer executes the frame's effects against the GPU (or any other
// sink). Implementations live outside the core; see the ebitengine
// package.
type Renderer interface {
	// Frame consumes the tick's effects, draws the cursor sprite last,
	// and syncs offscreen pixels into the store. An error skips the
	// frame but never stops the application.
	Frame(effects []Effect, cursor CursorSprite, store TextureStore) error
	// Resized reports a new window size in physical pixels.
	Resized(size gfx.Size)
	// ScaleFactorChanged reports a DPI change.
	ScaleFactorChanged(factor float32)
}

// TextureStore receives texture pixel readbacks from the renderer.
type TextureStore interface {
	Store(id TextureID, image *gfx.Image)
}

// CursorSprite is the pointer sprite drawn on top of each frame.
type CursorSprite struct {
	Texture TextureID
	Batch   *gfx.SpriteBatch
	Invert  bool
}
