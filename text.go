package easel

import (
	"fmt"
	"time"

	"github.com/cloudhead/easel/gfx"
)

// FontID names a registered font.
type FontID string

// DefaultFont is the font used when none is specified.
const DefaultFont FontID = "default"

// FontFormat identifies a bitmap font encoding.
type FontFormat uint8

const (
	UF1 FontFormat = iota // 8x8 glyphs, one ICN tile each
	UF2                   // 16x16 glyphs, four ICN tiles each
)

// TileSize returns the glyph tile dimensions for the format.
func (f FontFormat) TileSize() gfx.Size {
	if f == UF1 {
		return gfx.S(8, 8)
	}
	return gfx.S(16, 16)
}

// GlyphSize is the atlas cell size of a decoded glyph in pixels.
const GlyphSize = 16

// fontAtlasSize is the side length of the rasterized glyph atlas.
const fontAtlasSize = 256

// FontErrorKind classifies font decoding failures.
type FontErrorKind uint8

const (
	FontErrShortData         FontErrorKind = iota // payload smaller than the width table
	FontErrByteLength                             // tile data isn't a whole number of tiles
	FontErrTileCount                              // wrong number of tiles for the format
	FontErrUnsupportedFormat                      // only UF2 decodes
)

// FontError describes a rejected font payload.
type FontError struct {
	Kind   FontErrorKind
	Detail string
}

// Error implements error.
func (e *FontError) Error() string {
	return "easel: decode font: " + e.Detail
}

// Font is a decoded bitmap font: a per-byte advance table and the glyph
// atlas texture.
type Font struct {
	Widths  [256]uint8
	Texture TextureID
	Tile    gfx.Size
}

// TextWidth measures a string by summing per-byte advances.
func (f *Font) TextWidth(s string) float32 {
	var w float32
	for i := 0; i < len(s); i++ {
		w += float32(f.Widths[s[i]])
	}
	return w
}

// TextHeight returns the line height.
func (f *Font) TextHeight() float32 {
	return GlyphSize
}

// uf2Tiles is the tile count of a complete UF2 font: 256 glyphs of four
// 8x8 tiles each.
const uf2Tiles = 1024

// DecodeFont decodes a bitmap font payload: a 256-byte width table
// followed by the glyph ICN tiles. Only UF2 is supported. The returned
// image is the 256x256 white-on-transparent glyph atlas; the caller
// registers it as a texture and fills in the Font's texture ID.
func DecodeFont(data []byte, format FontFormat) (*Font, *gfx.Image, error) {
	if format != UF2 {
		return nil, nil, &FontError{FontErrUnsupportedFormat, fmt.Sprintf("format %d is not supported, want UF2", format)}
	}
	if len(data) < 256 {
		return nil, nil, &FontError{FontErrShortData, fmt.Sprintf("payload is %d bytes, want at least 256", len(data))}
	}
	tileData := data[256:]
	if len(tileData)%gfx.ICNTile != 0 {
		return nil, nil, &FontError{FontErrByteLength, fmt.Sprintf("tile data is %d bytes, want a multiple of %d", len(tileData), gfx.ICNTile)}
	}
	tiles := len(tileData) / gfx.ICNTile
	if tiles != uf2Tiles {
		return nil, nil, &FontError{FontErrTileCount, fmt.Sprintf("payload has %d tiles, want %d", tiles, uf2Tiles)}
	}

	font := &Font{Tile: format.TileSize()}
	copy(font.Widths[:], data[:256])

	// Each glyph is four tiles in top-left, bottom-left, top-right,
	// bottom-right order: a pair of tiles fills an 8-pixel column, and
	// the raster wraps every 16 glyphs.
	atlas := gfx.BlankImage(fontAtlasSize, fontAtlasSize)
	x, y := 0, 0
	for i := 0; i < tiles; i += 2 {
		top := tileData[i*gfx.ICNTile : (i+1)*gfx.ICNTile]
		bottom := tileData[(i+1)*gfx.ICNTile : (i+2)*gfx.ICNTile]
		atlas.DrawICN(top, x, y, gfx.White)
		atlas.DrawICN(bottom, x, y+gfx.ICNTile, gfx.White)
		x += gfx.ICNTile
		if x == fontAtlasSize {
			x = 0
			y += GlyphSize
		}
	}
	return font, atlas, nil
}

// --- Text batching ---

// TextBatch accumulates glyph sprites against a font atlas.
type TextBatch struct {
	batch *gfx.SpriteBatch
	font  *Font
}

// NewTextBatch returns an empty batch for the font.
func NewTextBatch(font *Font) *TextBatch {
	return &TextBatch{
		batch: gfx.NewSpriteBatch(fontAtlasSize, fontAtlasSize),
		font:  font,
	}
}

// Add lays out a string starting at the pen position. Glyph cells are
// fixed-size; the pen advances by each byte's width.
func (t *TextBatch) Add(text string, sx, sy float32, color gfx.Rgba8) {
	for i := 0; i < len(text); i++ {
		b := text[i]
		src := gfx.R(
			float32(b%16)*GlyphSize,
			float32(b/16)*GlyphSize,
			GlyphSize, GlyphSize,
		)
		dst := gfx.R(sx, sy, GlyphSize, GlyphSize)
		t.batch.Add(src, dst, 0, color.Rgba(), 1, gfx.RepeatOnce)
		sx += float32(t.font.Widths[b])
	}
}

// Vertices returns the accumulated glyph vertices.
func (t *TextBatch) Vertices() []gfx.SpriteVertex {
	return t.batch.Vertices()
}

// --- Text widget ---

// TextAlign controls where the pen starts relative to the text origin.
type TextAlign uint8

const (
	AlignLeft   TextAlign = iota // pen starts at the origin (default)
	AlignCenter                  // text is centered on the origin
	AlignRight                   // text ends at the origin
)

// Text renders a string with a bitmap font.
type Text[T any] struct {
	Base[T]

	body      string
	font      FontID
	color     gfx.Rgba8
	align     TextAlign
	transform gfx.Transform
	size      gfx.Size
}

// NewText returns a white, left-aligned text widget using the default
// font.
func NewText[T any](body string) *Text[T] {
	return &Text[T]{
		body:      body,
		font:      DefaultFont,
		color:     gfx.White,
		transform: gfx.Identity(),
	}
}

// Font sets the font.
func (t *Text[T]) Font(id FontID) *Text[T] {
	t.font = id
	return t
}

// Color sets the text color.
func (t *Text[T]) Color(c gfx.Rgba8) *Text[T] {
	t.color = c
	return t
}

// Align sets the text alignment.
func (t *Text[T]) Align(a TextAlign) *Text[T] {
	t.align = a
	return t
}

// Transform sets an extra transform applied to the glyphs.
func (t *Text[T]) Transform(m gfx.Transform) *Text[T] {
	t.transform = m
	return t
}

// SetBody replaces the text.
func (t *Text[T]) SetBody(body string) {
	t.body = body
}

// Layout measures the text against the font's advance table. An
// unregistered font measures zero.
func (t *Text[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	font, ok := ctx.Font(t.font)
	if !ok {
		t.size = gfx.Size{}
		return t.size
	}
	t.size = gfx.S(font.TextWidth(t.body), font.TextHeight())
	return t.size
}

// Paint queues the glyph sprites. Painting with an unregistered font is a
// programming error.
func (t *Text[T]) Paint(canvas Canvas, data T) {
	font, ok := canvas.graphics.fonts[t.font]
	if !ok {
		panic(fmt.Sprintf("easel: paint with unregistered font %q", t.font))
	}

	var sx float32
	switch t.align {
	case AlignCenter:
		sx -= font.TextWidth(t.body) / 2
	case AlignRight:
		sx -= font.TextWidth(t.body)
	}

	batch := NewTextBatch(font)
	batch.Add(t.body, sx, 0, t.color)

	paint := NewSpritePaint(font.Texture, batch.Vertices())
	paint.Transform = t.transform
	canvas.Paint(paint)
}

// Update implements Widget.
func (t *Text[T]) Update(delta time.Duration, ctx Context, data T) {}

func (t *Text[T]) String() string {
	return fmt.Sprintf("Text(%q)", t.body)
}
