package platform

import (
	"testing"

	"github.com/cloudhead/easel/gfx"
)

func TestHeadlessBatches(t *testing.T) {
	w := NewHeadless(gfx.S(640, 480))
	w.Push(CursorMoved{gfx.P(1, 1)}, CursorMoved{gfx.P(2, 2)})
	w.EndFrame()
	w.Push(MouseInput{State: Pressed, Button: MouseButtonLeft})
	w.EndFrame()

	first := w.Poll()
	if len(first) != 2 {
		t.Fatalf("first batch has %d events, want 2", len(first))
	}
	second := w.Poll()
	if len(second) != 1 {
		t.Fatalf("second batch has %d events, want 1", len(second))
	}
	if w.Poll() != nil {
		t.Error("drained window should poll nil")
	}
}

func TestHeadlessPendingWithoutEndFrame(t *testing.T) {
	w := NewHeadless(gfx.S(100, 100))
	w.Push(CursorEntered{})
	if got := w.Poll(); len(got) != 1 {
		t.Fatalf("pending events should be polled, got %d", len(got))
	}
}

func TestHeadlessTracksState(t *testing.T) {
	w := NewHeadless(gfx.S(640, 480))
	w.Push(CursorMoved{gfx.P(10, 20)}, Resized{gfx.S(800, 600)}, ScaleFactorChanged{2})
	w.Poll()

	if got := w.CursorPos(); got != gfx.P(10, 20) {
		t.Errorf("CursorPos = %v, want (10, 20)", got)
	}
	if got := w.Size(); got != gfx.S(800, 600) {
		t.Errorf("Size = %v, want (800, 600)", got)
	}
	if got := w.ScaleFactor(); got != 2 {
		t.Errorf("ScaleFactor = %v, want 2", got)
	}
}

func TestHeadlessStateAdvancesPerBatch(t *testing.T) {
	w := NewHeadless(gfx.S(640, 480))
	w.Push(CursorMoved{gfx.P(1, 1)})
	w.EndFrame()
	w.Push(CursorMoved{gfx.P(9, 9)})
	w.EndFrame()

	w.Poll()
	if got := w.CursorPos(); got != gfx.P(1, 1) {
		t.Errorf("CursorPos after first batch = %v, want (1, 1)", got)
	}
	w.Poll()
	if got := w.CursorPos(); got != gfx.P(9, 9) {
		t.Errorf("CursorPos after second batch = %v, want (9, 9)", got)
	}
}

func TestHeadlessAutoClose(t *testing.T) {
	w := NewHeadless(gfx.S(100, 100))
	w.AutoClose = true
	w.Push(CursorEntered{})
	w.EndFrame()

	if !w.IsOpen() {
		t.Fatal("window with queued events should be open")
	}
	w.Poll()
	if w.IsOpen() {
		t.Error("drained auto-close window should be closed")
	}
}

func TestHeadlessQuit(t *testing.T) {
	w := NewHeadless(gfx.S(100, 100))
	if !w.IsOpen() {
		t.Fatal("new window should be open")
	}
	w.Quit()
	if w.IsOpen() {
		t.Error("quit window should be closed")
	}
}

func TestHeadlessClipboard(t *testing.T) {
	w := NewHeadless(gfx.S(100, 100))
	if _, ok := w.Clipboard(); ok {
		t.Error("clipboard should start empty")
	}
	w.SetClipboard("hello")
	text, ok := w.Clipboard()
	if !ok || text != "hello" {
		t.Errorf("Clipboard = (%q, %v), want (\"hello\", true)", text, ok)
	}
}

func TestHeadlessPresentCursorVisible(t *testing.T) {
	w := NewHeadless(gfx.S(100, 100))
	w.Present()
	w.Present()
	if got := w.Presented(); got != 2 {
		t.Errorf("Presented = %d, want 2", got)
	}
	w.SetCursorVisible(false)
	if w.CursorVisible() {
		t.Error("cursor should be hidden")
	}
}
