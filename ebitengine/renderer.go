package ebitengine

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cloudhead/easel"
	"github.com/cloudhead/easel/gfx"
)

// Renderer executes effect queues on Ebitengine. Paints land on a
// UI-resolution surface that Draw scales onto the backbuffer, so one UI
// unit covers a crisp block of window pixels. Offscreen targets are
// regular images, painted during the tick and read back into the
// texture store when dirtied.
type Renderer struct {
	scale    float32
	ui       *ebiten.Image
	textures map[easel.TextureID]*texture
}

// texture is a GPU-resident texture and whether it doubles as a render
// target.
type texture struct {
	image     *ebiten.Image
	offscreen bool
}

// NewRenderer returns a renderer for a window of the given size in
// physical pixels, painting UI units at the given scale.
func NewRenderer(size gfx.Size, scale float32) *Renderer {
	if scale <= 0 {
		panic("ebitengine: renderer scale must be positive")
	}
	r := &Renderer{
		scale:    scale,
		textures: make(map[easel.TextureID]*texture),
	}
	r.Resized(size)
	return r
}

// Frame executes one tick's effects: texture registrations and resizes
// first-come, then per-target uploads, clears and paints, then the
// screen paints, with the cursor sprite on top. Painted targets are read
// back into the store afterwards.
func (r *Renderer) Frame(effects []easel.Effect, cursor easel.CursorSprite, store easel.TextureStore) error {
	f := newFrame()

	for _, effect := range effects {
		switch e := effect.(type) {
		case easel.TextureEffect:
			if err := r.texture(e); err != nil {
				return err
			}
		case easel.ResizeEffect:
			if err := r.resize(e); err != nil {
				return err
			}
		case easel.ClearEffect:
			f.touch(e.Target)
			f.clears[e.Target] = e.Color
		case easel.UploadEffect:
			f.touch(e.ID)
			f.uploads[e.ID] = e.Texels
		case easel.PaintEffect:
			if err := r.paint(f, e); err != nil {
				return err
			}
		default:
			return fmt.Errorf("ebitengine: unknown effect %T", effect)
		}
	}

	if err := r.offscreen(f); err != nil {
		return err
	}

	r.ui.Clear()
	for _, op := range f.screen {
		drawOp(r.ui, op)
	}
	if err := r.drawCursor(cursor); err != nil {
		return err
	}
	r.sync(f, store)
	return nil
}

// Resized reallocates the screen surface for a new window size. The
// next frame repaints it fully.
func (r *Renderer) Resized(size gfx.Size) {
	w := max(int(size.W/r.scale), 1)
	h := max(int(size.H/r.scale), 1)
	r.ui = ebiten.NewImage(w, h)
}

// ScaleFactorChanged reports a monitor DPI change. Ebitengine composites
// the backbuffer itself, so there is nothing to rebuild.
func (r *Renderer) ScaleFactorChanged(factor float32) {}

// Draw scales the finished screen surface onto the backbuffer. The game
// calls it once per display frame.
func (r *Renderer) Draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.scale), float64(r.scale))
	screen.DrawImage(r.ui, &op)
}

// --- Effect execution ---

// frame buckets one tick's effects the way they execute: uploads and
// clears coalesce per target, paints keep their queue order.
type frame struct {
	screen  []paintOp
	targets map[easel.TextureID][]paintOp
	clears  map[easel.TextureID]gfx.Rgba8
	uploads map[easel.TextureID][]gfx.Rgba8
	touched []easel.TextureID        // targets in first-touch order
	dirty   map[easel.TextureID]bool // targets painted this frame
}

// paintOp is a converted paint, ready for a single DrawTriangles call.
type paintOp struct {
	vertices []ebiten.Vertex
	src      *ebiten.Image
	blend    ebiten.Blend
	address  ebiten.Address
}

func newFrame() *frame {
	return &frame{
		targets: make(map[easel.TextureID][]paintOp),
		clears:  make(map[easel.TextureID]gfx.Rgba8),
		uploads: make(map[easel.TextureID][]gfx.Rgba8),
		dirty:   make(map[easel.TextureID]bool),
	}
}

// touch records a target the frame works on, keeping first-touch order.
func (f *frame) touch(id easel.TextureID) {
	if _, ok := f.targets[id]; !ok {
		f.targets[id] = nil
		f.touched = append(f.touched, id)
	}
}

// texture registers a texture upload or render target. Re-registering a
// render target keeps its contents; re-uploading a static texture
// replaces them.
func (r *Renderer) texture(e easel.TextureEffect) error {
	if e.Image.W < 1 || e.Image.H < 1 {
		return fmt.Errorf("ebitengine: texture %d has zero size", e.ID)
	}
	if e.Offscreen {
		if _, ok := r.textures[e.ID]; ok {
			return nil
		}
	}
	img := ebiten.NewImage(e.Image.W, e.Image.H)
	img.WritePixels(premultiply(e.Image.Pixels))
	r.textures[e.ID] = &texture{image: img, offscreen: e.Offscreen}
	return nil
}

// resize reallocates a render target, keeping the old contents in the
// top-left corner.
func (r *Renderer) resize(e easel.ResizeEffect) error {
	t, ok := r.textures[e.ID]
	if !ok || !t.offscreen {
		return nil
	}
	w, h := int(e.Size.W), int(e.Size.H)
	if w < 1 || h < 1 {
		return fmt.Errorf("ebitengine: resize of texture %d to zero size", e.ID)
	}
	img := ebiten.NewImage(w, h)
	img.DrawImage(t.image, nil)
	t.image = img
	return nil
}

// paint converts a paint effect and buckets it for its target.
func (r *Renderer) paint(f *frame, e easel.PaintEffect) error {
	var op paintOp
	var target *easel.TextureID

	switch p := e.Paint.(type) {
	case easel.ShapePaint:
		if len(p.Vertices) == 0 {
			return nil
		}
		op = paintOp{
			vertices: shapeVertices(p.Vertices, p.Transform),
			src:      whitePixel(),
			blend:    ebitenBlend(e.Blending),
		}
		target = p.Target
	case easel.SpritePaint:
		if len(p.Vertices) == 0 {
			return nil
		}
		if p.Target != nil && *p.Target == p.Texture {
			return fmt.Errorf("ebitengine: paint samples its own target %d", p.Texture)
		}
		t, ok := r.textures[p.Texture]
		if !ok {
			return fmt.Errorf("ebitengine: sprite paint samples unknown texture %d", p.Texture)
		}
		op = paintOp{
			vertices: spriteVertices(p.Vertices, p.Transform, imageSize(t.image)),
			src:      t.image,
			blend:    ebitenBlend(e.Blending),
			address:  spriteAddress(p.Vertices),
		}
		target = p.Target
	default:
		return fmt.Errorf("ebitengine: unknown paint %T", e.Paint)
	}

	if target == nil {
		f.screen = append(f.screen, op)
		return nil
	}
	f.touch(*target)
	f.targets[*target] = append(f.targets[*target], op)
	f.dirty[*target] = true
	return nil
}

// offscreen runs the frame's per-target work: an upload replaces the
// pixels outright, otherwise a pending clear applies before the
// target's paints. Targets that were never registered are skipped.
func (r *Renderer) offscreen(f *frame) error {
	for _, id := range f.touched {
		t, ok := r.textures[id]
		if !ok || !t.offscreen {
			continue
		}
		if texels, ok := f.uploads[id]; ok {
			if _, clearing := f.clears[id]; clearing {
				fmt.Fprintf(os.Stderr, "[easel] ignoring clear of texture %d: upload pending\n", id)
			}
			if n := len(f.targets[id]); n > 0 {
				fmt.Fprintf(os.Stderr, "[easel] ignoring %d paints on texture %d: upload pending\n", n, id)
			}
			b := t.image.Bounds()
			if len(texels) != b.Dx()*b.Dy() {
				return fmt.Errorf("ebitengine: upload of %d texels to %dx%d texture %d",
					len(texels), b.Dx(), b.Dy(), id)
			}
			t.image.WritePixels(premultiply(texels))
			continue
		}
		if c, ok := f.clears[id]; ok {
			t.image.Fill(c)
		}
		for _, op := range f.targets[id] {
			drawOp(t.image, op)
		}
	}
	return nil
}

// drawCursor paints the pointer sprite over the finished frame.
func (r *Renderer) drawCursor(cursor easel.CursorSprite) error {
	t, ok := r.textures[cursor.Texture]
	if !ok {
		return errors.New("ebitengine: missing cursors texture")
	}
	vs := cursor.Batch.Vertices()
	drawOp(r.ui, paintOp{
		vertices: spriteVertices(vs, gfx.Identity(), imageSize(t.image)),
		src:      t.image,
		blend:    cursorBlend(cursor.Invert),
		address:  spriteAddress(vs),
	})
	return nil
}

// sync reads painted targets back into host memory so widgets can sample
// them next tick.
func (r *Renderer) sync(f *frame, store easel.TextureStore) {
	for _, id := range f.touched {
		if !f.dirty[id] {
			continue
		}
		t, ok := r.textures[id]
		if !ok || !t.offscreen {
			continue
		}
		b := t.image.Bounds()
		pix := make([]byte, 4*b.Dx()*b.Dy())
		t.image.ReadPixels(pix)
		store.Store(id, gfx.NewImage(unpremultiply(pix), b.Dx(), b.Dy()))
	}
}

// drawOp submits a converted paint onto dst.
func drawOp(dst *ebiten.Image, op paintOp) {
	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = op.blend
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.Address = op.address
	dst.DrawTriangles32(op.vertices, triangleIndices(len(op.vertices)), op.src, &triOp)
}

func imageSize(img *ebiten.Image) gfx.Size {
	b := img.Bounds()
	return gfx.S(float32(b.Dx()), float32(b.Dy()))
}

// The white pixel backs untextured shape paints. The renderer is single
// threaded, so a plain lazy init suffices.
var whitePixelImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
