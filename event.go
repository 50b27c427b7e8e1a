package easel

import (
	"time"

	"github.com/cloudhead/easel/gfx"
	"github.com/cloudhead/easel/platform"
)

// Event is a widget event. Pointer coordinates are local to the receiving
// widget: each Pod translates them into its own space before forwarding.
type Event interface {
	isEvent()
}

// MouseDown reports a button press over the widget.
type MouseDown struct {
	Button platform.MouseButton
}

// MouseUp reports a button release.
type MouseUp struct {
	Button platform.MouseButton
}

// MouseMove reports pointer movement while inside the widget.
type MouseMove struct {
	Point gfx.Point
}

// MouseEnter reports the pointer entering the widget.
type MouseEnter struct {
	Point gfx.Point
}

// MouseExit reports the pointer leaving the widget.
type MouseExit struct{}

// MouseScroll reports wheel movement.
type MouseScroll struct {
	Delta gfx.Point
}

// KeyDown reports a key press. Repeat is set for key-repeat deliveries.
type KeyDown struct {
	Key    platform.Key
	Mods   platform.Modifiers
	Repeat bool
}

// KeyUp reports a key release.
type KeyUp struct {
	Key  platform.Key
	Mods platform.Modifiers
}

// CharacterReceived reports translated text input.
type CharacterReceived struct {
	Char rune
}

// Paste delivers clipboard text, triggered by shift+insert.
type Paste struct {
	Text string
}

// Resized reports the new window size in UI coordinates.
type Resized struct {
	Size gfx.Size
}

// Tick carries the frame delta. It is dispatched once per tick, after all
// other events.
type Tick struct {
	Delta time.Duration
}

func (MouseDown) isEvent()         {}
func (MouseUp) isEvent()           {}
func (MouseMove) isEvent()         {}
func (MouseEnter) isEvent()        {}
func (MouseExit) isEvent()         {}
func (MouseScroll) isEvent()       {}
func (KeyDown) isEvent()           {}
func (KeyUp) isEvent()             {}
func (CharacterReceived) isEvent() {}
func (Paste) isEvent()             {}
func (Resized) isEvent()           {}
func (Tick) isEvent()              {}
