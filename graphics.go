package easel

import "github.com/cloudhead/easel/gfx"

// Graphics is the host-side drawing state shared between the widget tree
// and the renderer: the texture and font tables, the cursor, and the
// queue of effects pending for the next frame.
//
// Widgets never touch it directly; they go through a Canvas.
type Graphics struct {
	textures map[TextureID]TextureInfo
	fonts    map[FontID]*Font
	cursor   Cursor
	effects  []Effect
}

// NewGraphics returns an empty graphics state.
func NewGraphics() *Graphics {
	return &Graphics{
		textures: make(map[TextureID]TextureInfo),
		fonts:    make(map[FontID]*Font),
	}
}

// Texture registers a static texture. Registration is idempotent: only
// the first call for an ID uploads the image.
func (g *Graphics) Texture(id TextureID, image *gfx.Image) {
	if _, ok := g.textures[id]; ok {
		return
	}
	g.textures[id] = TextureInfo{W: image.W, H: image.H}
	g.effects = append(g.effects, TextureEffect{ID: id, Image: image})
}

// Offscreen registers a render target. Idempotent like Texture; when the
// requested size differs from the registered one the target is resized
// instead, preserving its contents.
func (g *Graphics) Offscreen(id TextureID, size gfx.Size) {
	w, h := int(size.W), int(size.H)
	info, ok := g.textures[id]
	if !ok {
		g.textures[id] = TextureInfo{W: w, H: h}
		g.effects = append(g.effects, TextureEffect{
			ID:        id,
			Image:     gfx.BlankImage(w, h),
			Offscreen: true,
		})
		return
	}
	if info.W != w || info.H != h {
		g.textures[id] = TextureInfo{W: w, H: h}
		g.effects = append(g.effects, ResizeEffect{ID: id, Size: size})
	}
}

// Font decodes and registers a bitmap font under the ID. The glyph atlas
// takes a fresh texture.
func (g *Graphics) Font(id FontID, data []byte, format FontFormat) error {
	font, atlas, err := DecodeFont(data, format)
	if err != nil {
		return err
	}
	font.Texture = NextTextureID()
	g.Texture(font.Texture, atlas)
	g.fonts[id] = font
	return nil
}

// Paint appends a paint effect.
func (g *Graphics) Paint(p Paint, blending Blending) {
	g.effects = append(g.effects, PaintEffect{Paint: p, Blending: blending})
}

// Clear appends a clear of an offscreen target.
func (g *Graphics) Clear(target TextureID, color gfx.Rgba8) {
	g.effects = append(g.effects, ClearEffect{Target: target, Color: color})
}

// Upload appends a raw pixel write to an offscreen target.
func (g *Graphics) Upload(target TextureID, texels []gfx.Rgba8) {
	g.effects = append(g.effects, UploadEffect{ID: target, Texels: texels})
}

// Effects drains the pending queue. The renderer calls this once per
// frame; after the call the queue is empty until new paints arrive.
func (g *Graphics) Effects() []Effect {
	effects := g.effects
	g.effects = nil
	return effects
}

// CursorSprite returns the pointer sprite for the current cursor. The
// default cursor atlas must have been registered.
func (g *Graphics) CursorSprite() CursorSprite {
	info, ok := g.textures[DefaultCursorsTexture]
	if !ok {
		panic("easel: cursor atlas is not registered")
	}
	return CursorSprite{
		Texture: DefaultCursorsTexture,
		Batch:   g.cursor.Sprite(info),
		Invert:  g.cursor.Style.Invert(),
	}
}
