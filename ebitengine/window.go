package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cloudhead/easel/gfx"
)

// Window is the platform.Window over the Ebitengine host. The game
// feeds it the laid-out size each frame; everything else is polled from
// Ebitengine's global input state.
type Window struct {
	size   gfx.Size
	closed bool

	// Last polled state, for synthesizing transition events.
	lastSize   gfx.Size
	lastCursor gfx.Point
	inside     bool
	focused    bool
	minimized  bool
	factor     float32
	chars      []rune
}

// NewWindow returns a window of the given initial size in physical
// pixels. The size tracks the Ebitengine layout once the game runs.
func NewWindow(size gfx.Size) *Window {
	return &Window{size: size, lastSize: size, factor: 1}
}

// IsOpen reports whether the window is still alive. It turns false when
// the user asks to close the window.
func (w *Window) IsOpen() bool {
	return !w.closed
}

// Size returns the window size in physical pixels.
func (w *Window) Size() gfx.Size {
	return w.size
}

// CursorPos returns the pointer position in physical pixels.
func (w *Window) CursorPos() gfx.Point {
	x, y := ebiten.CursorPosition()
	return gfx.P(float32(x), float32(y))
}

// ScaleFactor returns the monitor DPI scale.
func (w *Window) ScaleFactor() float32 {
	return float32(ebiten.Monitor().DeviceScaleFactor())
}

// Clipboard returns no text: Ebitengine has no clipboard access.
func (w *Window) Clipboard() (string, bool) {
	return "", false
}

// SetCursorVisible shows or hides the hardware cursor.
func (w *Window) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// Present is a no-op: Ebitengine presents after every Draw.
func (w *Window) Present() {}

// resize records the laid-out window size. The next Poll reports the
// change.
func (w *Window) resize(size gfx.Size) {
	w.size = size
}
