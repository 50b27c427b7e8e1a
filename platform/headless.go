package platform

import "github.com/cloudhead/easel/gfx"

// Headless is an in-memory Window for tests and tools. Events are queued
// with Push and delivered in batches: each EndFrame call seals the events
// pushed since the previous one into a single Poll result.
//
// Polling keeps the simulated OS state in step with the script: draining
// a CursorMoved updates CursorPos, a Resized updates Size, and a
// ScaleFactorChanged updates ScaleFactor.
type Headless struct {
	// AutoClose makes IsOpen report false once every queued batch has
	// been polled, so a launch loop driven by a finite script exits.
	AutoClose bool

	batches   [][]WindowEvent
	pending   []WindowEvent
	size      gfx.Size
	cursor    gfx.Point
	scale     float32
	clipboard string
	hasClip   bool
	visible   bool
	presented int
	closed    bool
}

// NewHeadless returns a headless window of the given physical size.
func NewHeadless(size gfx.Size) *Headless {
	return &Headless{size: size, scale: 1, visible: true}
}

// Push queues events onto the batch currently being built.
func (w *Headless) Push(events ...WindowEvent) {
	w.pending = append(w.pending, events...)
}

// EndFrame seals the pending events into a batch.
func (w *Headless) EndFrame() {
	w.batches = append(w.batches, w.pending)
	w.pending = nil
}

// Quit closes the window; IsOpen reports false afterwards.
func (w *Headless) Quit() {
	w.closed = true
}

// SetClipboard sets the clipboard contents.
func (w *Headless) SetClipboard(text string) {
	w.clipboard = text
	w.hasClip = true
}

// SetScaleFactor sets the reported DPI scale.
func (w *Headless) SetScaleFactor(f float32) {
	w.scale = f
}

// CursorVisible reports the hardware-cursor visibility set by the
// application.
func (w *Headless) CursorVisible() bool {
	return w.visible
}

// Presented returns the number of Present calls so far.
func (w *Headless) Presented() int {
	return w.presented
}

// --- Window interface ---

// IsOpen implements Window.
func (w *Headless) IsOpen() bool {
	if w.closed {
		return false
	}
	if w.AutoClose && len(w.batches) == 0 && len(w.pending) == 0 {
		return false
	}
	return true
}

// Poll implements Window. It returns the next sealed batch, or the
// pending events when nothing was sealed.
func (w *Headless) Poll() []WindowEvent {
	var batch []WindowEvent
	switch {
	case len(w.batches) > 0:
		batch = w.batches[0]
		w.batches = w.batches[1:]
	case len(w.pending) > 0:
		batch = w.pending
		w.pending = nil
	default:
		return nil
	}
	for _, ev := range batch {
		switch e := ev.(type) {
		case CursorMoved:
			w.cursor = e.Position
		case Resized:
			w.size = e.Size
		case ScaleFactorChanged:
			w.scale = e.Factor
		}
	}
	return batch
}

// Size implements Window.
func (w *Headless) Size() gfx.Size {
	return w.size
}

// CursorPos implements Window.
func (w *Headless) CursorPos() gfx.Point {
	return w.cursor
}

// ScaleFactor implements Window.
func (w *Headless) ScaleFactor() float32 {
	return w.scale
}

// Clipboard implements Window.
func (w *Headless) Clipboard() (string, bool) {
	return w.clipboard, w.hasClip
}

// SetCursorVisible implements Window.
func (w *Headless) SetCursorVisible(visible bool) {
	w.visible = visible
}

// Present implements Window.
func (w *Headless) Present() {
	w.presented++
}

var _ Window = (*Headless)(nil)
