// Package platform defines the window abstraction and the raw event
// vocabulary the widget core consumes. Events arrive in physical pixel
// coordinates; the application layer scales them into UI space.
//
// [Window] is the contract a backend implements. [Headless] is a
// scriptable in-memory window for tests and tools; the production
// backend lives in the ebitengine package.
package platform

import "github.com/cloudhead/easel/gfx"

// WindowEvent is a raw event delivered by a window backend.
type WindowEvent interface {
	isWindowEvent()
}

// Resized reports a new window size in physical pixels. A zero size means
// the window was minimized.
type Resized struct {
	Size gfx.Size
}

// CursorMoved reports the pointer position in physical pixels.
type CursorMoved struct {
	Position gfx.Point
}

// CursorEntered fires when the pointer enters the window.
type CursorEntered struct{}

// CursorLeft fires when the pointer leaves the window.
type CursorLeft struct{}

// MouseInput reports a mouse button press or release.
type MouseInput struct {
	State  InputState
	Button MouseButton
	Mods   Modifiers
}

// Scroll reports mouse wheel movement.
type Scroll struct {
	Delta gfx.Point
}

// KeyboardInput reports a key press, release, or repeat.
type KeyboardInput struct {
	State InputState
	Key   Key
	Mods  Modifiers
}

// ReceivedCharacter reports translated text input.
type ReceivedCharacter struct {
	Char rune
}

// Focused reports a change of input focus.
type Focused struct {
	Focused bool
}

// Minimized fires when the window is iconified.
type Minimized struct{}

// Restored fires when the window is brought back from minimized state.
type Restored struct{}

// ScaleFactorChanged reports a DPI scale change, e.g. after moving the
// window to another monitor.
type ScaleFactorChanged struct {
	Factor float32
}

// CloseRequested fires when the user asks to close the window. Backends
// report it; the application loop exits when the window itself closes.
type CloseRequested struct{}

func (Resized) isWindowEvent()            {}
func (CursorMoved) isWindowEvent()        {}
func (CursorEntered) isWindowEvent()      {}
func (CursorLeft) isWindowEvent()         {}
func (MouseInput) isWindowEvent()         {}
func (Scroll) isWindowEvent()             {}
func (KeyboardInput) isWindowEvent()      {}
func (ReceivedCharacter) isWindowEvent()  {}
func (Focused) isWindowEvent()            {}
func (Minimized) isWindowEvent()          {}
func (Restored) isWindowEvent()           {}
func (ScaleFactorChanged) isWindowEvent() {}
func (CloseRequested) isWindowEvent()     {}

// InputState describes what happened to a button or key.
type InputState uint8

const (
	Pressed  InputState = iota // went down this frame
	Released                   // went up this frame
	Repeated                   // key repeat while held
)

// String returns the state name.
func (s InputState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case Repeated:
		return "repeated"
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// Modifiers is the set of modifier keys held during an event.
type Modifiers struct {
	Shift, Ctrl, Alt, Meta bool
}

// Window is the surface the application runs against.
type Window interface {
	// IsOpen reports whether the window is still alive. The application
	// loop exits when it turns false.
	IsOpen() bool
	// Poll returns the events accumulated since the last call.
	Poll() []WindowEvent
	// Size returns the window size in physical pixels.
	Size() gfx.Size
	// CursorPos returns the pointer position in physical pixels.
	CursorPos() gfx.Point
	// ScaleFactor returns the monitor DPI scale.
	ScaleFactor() float32
	// Clipboard returns the clipboard text, if any.
	Clipboard() (string, bool)
	// SetCursorVisible shows or hides the hardware cursor.
	SetCursorVisible(visible bool)
	// Present commits the frame.
	Present()
}
