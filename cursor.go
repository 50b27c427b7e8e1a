package easel

import "github.com/cloudhead/easel/gfx"

// CursorSize is the side length of a cursor tile in the atlas.
const CursorSize = 16

// CursorStyle selects a pointer sprite from the cursor atlas.
type CursorStyle uint8

const (
	CursorPointer   CursorStyle = iota // default arrow
	CursorHand                         // grabbable
	CursorGrab                         // grabbing
	CursorSampler                      // color picker
	CursorCrosshair                    // precise drawing
	CursorOmni                         // pan in any direction
	CursorErase                        // eraser
	CursorFlood                        // flood fill
)

// cursorInfo locates a style in the atlas and positions its hotspot.
type cursorInfo struct {
	rect   gfx.Rect
	offset gfx.Point
	invert bool
}

// Tiles are laid out on the atlas's first row.
var cursorInfos = [...]cursorInfo{
	CursorPointer:   {gfx.R(96, 0, CursorSize, CursorSize), gfx.P(-5, -1), false},
	CursorHand:      {gfx.R(48, 0, CursorSize, CursorSize), gfx.P(-5, -1), false},
	CursorGrab:      {gfx.R(112, 0, CursorSize, CursorSize), gfx.P(-5, -1), false},
	CursorSampler:   {gfx.R(0, 0, CursorSize, CursorSize), gfx.P(-2, -15), false},
	CursorCrosshair: {gfx.R(16, 0, CursorSize, CursorSize), gfx.P(-8, -8), true},
	CursorOmni:      {gfx.R(32, 0, CursorSize, CursorSize), gfx.P(-8, -8), false},
	CursorErase:     {gfx.R(64, 0, CursorSize, CursorSize), gfx.P(-8, -8), true},
	CursorFlood:     {gfx.R(80, 0, CursorSize, CursorSize), gfx.P(-8, -8), false},
}

// String returns the style name.
func (s CursorStyle) String() string {
	switch s {
	case CursorPointer:
		return "pointer"
	case CursorHand:
		return "hand"
	case CursorGrab:
		return "grab"
	case CursorSampler:
		return "sampler"
	case CursorCrosshair:
		return "crosshair"
	case CursorOmni:
		return "omni"
	case CursorErase:
		return "erase"
	case CursorFlood:
		return "flood"
	}
	return "unknown"
}

// Invert reports whether the style is drawn with inverted blending so it
// stays visible over its own color.
func (s CursorStyle) Invert() bool {
	return cursorInfos[s].invert
}

// Cursor is the pointer state drawn each frame: a style and the pointer
// position in UI coordinates.
type Cursor struct {
	Style  CursorStyle
	Origin gfx.Point
}

// Sprite builds the one-quad sprite batch for the cursor against its
// atlas. The destination is the origin shifted by the style's hotspot.
func (c Cursor) Sprite(info TextureInfo) *gfx.SpriteBatch {
	ci := cursorInfos[c.Style]
	size := info.Size()
	batch := gfx.NewSpriteBatch(size.W, size.H)
	batch.Add(
		ci.rect,
		ci.rect.WithOrigin(c.Origin.Add(ci.offset)),
		1,
		gfx.Rgba{},
		1,
		gfx.RepeatOnce,
	)
	return batch
}
