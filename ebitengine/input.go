package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cloudhead/easel/gfx"
	"github.com/cloudhead/easel/platform"
)

// Key repeat timing, expressed as fractions of a second and resolved
// against the current tick rate.
const (
	repeatDelayDiv = 2  // first repeat after 1/2 s
	repeatRateDiv  = 20 // then 20 repeats per second
)

// Poll synthesizes window events from Ebitengine's input state: edges
// come from diffing against the previous call. The game calls it once
// per tick.
func (w *Window) Poll() []platform.WindowEvent {
	var events []platform.WindowEvent
	mods := readModifiers()

	if factor := w.ScaleFactor(); factor != w.factor {
		w.factor = factor
		events = append(events, platform.ScaleFactorChanged{Factor: factor})
	}
	if w.size != w.lastSize {
		w.lastSize = w.size
		events = append(events, platform.Resized{Size: w.size})
	}
	if minimized := ebiten.IsWindowMinimized(); minimized != w.minimized {
		w.minimized = minimized
		if minimized {
			events = append(events, platform.Minimized{})
		} else {
			events = append(events, platform.Restored{})
		}
	}
	if focused := ebiten.IsFocused(); focused != w.focused {
		w.focused = focused
		events = append(events, platform.Focused{Focused: focused})
	}

	events = w.pollCursor(events)
	events = pollButtons(events, mods)

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		events = append(events, platform.Scroll{
			Delta: gfx.P(float32(dx), float32(dy)),
		})
	}

	events = pollKeys(events, mods)

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, char := range w.chars {
		events = append(events, platform.ReceivedCharacter{Char: char})
	}

	if ebiten.IsWindowBeingClosed() {
		w.closed = true
		events = append(events, platform.CloseRequested{})
	}
	return events
}

// pollCursor reports pointer movement and window enter/leave edges. The
// pointer counts as inside while its position falls within the window.
func (w *Window) pollCursor(events []platform.WindowEvent) []platform.WindowEvent {
	pos := w.CursorPos()
	inside := gfx.Rect{Size: w.size}.Contains(pos)

	switch {
	case inside && !w.inside:
		events = append(events,
			platform.CursorEntered{},
			platform.CursorMoved{Position: pos},
		)
	case !inside && w.inside:
		events = append(events, platform.CursorLeft{})
	case inside && pos != w.lastCursor:
		events = append(events, platform.CursorMoved{Position: pos})
	}
	w.inside = inside
	w.lastCursor = pos
	return events
}

// buttons maps Ebitengine mouse buttons onto the platform vocabulary.
var buttons = [...]struct {
	eb     ebiten.MouseButton
	button platform.MouseButton
}{
	{ebiten.MouseButtonLeft, platform.MouseButtonLeft},
	{ebiten.MouseButtonRight, platform.MouseButtonRight},
	{ebiten.MouseButtonMiddle, platform.MouseButtonMiddle},
}

func pollButtons(events []platform.WindowEvent, mods platform.Modifiers) []platform.WindowEvent {
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			events = append(events, platform.MouseInput{
				State: platform.Pressed, Button: b.button, Mods: mods,
			})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			events = append(events, platform.MouseInput{
				State: platform.Released, Button: b.button, Mods: mods,
			})
		}
	}
	return events
}

// keys maps Ebitengine keys onto the platform vocabulary. Unmapped keys
// never surface; the application layer has nothing to say about them.
var keys = [...]struct {
	eb  ebiten.Key
	key platform.Key
}{
	{ebiten.KeyA, platform.KeyA},
	{ebiten.KeyB, platform.KeyB},
	{ebiten.KeyC, platform.KeyC},
	{ebiten.KeyD, platform.KeyD},
	{ebiten.KeyE, platform.KeyE},
	{ebiten.KeyF, platform.KeyF},
	{ebiten.KeyG, platform.KeyG},
	{ebiten.KeyH, platform.KeyH},
	{ebiten.KeyI, platform.KeyI},
	{ebiten.KeyJ, platform.KeyJ},
	{ebiten.KeyK, platform.KeyK},
	{ebiten.KeyL, platform.KeyL},
	{ebiten.KeyM, platform.KeyM},
	{ebiten.KeyN, platform.KeyN},
	{ebiten.KeyO, platform.KeyO},
	{ebiten.KeyP, platform.KeyP},
	{ebiten.KeyQ, platform.KeyQ},
	{ebiten.KeyR, platform.KeyR},
	{ebiten.KeyS, platform.KeyS},
	{ebiten.KeyT, platform.KeyT},
	{ebiten.KeyU, platform.KeyU},
	{ebiten.KeyV, platform.KeyV},
	{ebiten.KeyW, platform.KeyW},
	{ebiten.KeyX, platform.KeyX},
	{ebiten.KeyY, platform.KeyY},
	{ebiten.KeyZ, platform.KeyZ},
	{ebiten.KeyDigit0, platform.Key0},
	{ebiten.KeyDigit1, platform.Key1},
	{ebiten.KeyDigit2, platform.Key2},
	{ebiten.KeyDigit3, platform.Key3},
	{ebiten.KeyDigit4, platform.Key4},
	{ebiten.KeyDigit5, platform.Key5},
	{ebiten.KeyDigit6, platform.Key6},
	{ebiten.KeyDigit7, platform.Key7},
	{ebiten.KeyDigit8, platform.Key8},
	{ebiten.KeyDigit9, platform.Key9},
	{ebiten.KeyArrowUp, platform.KeyUp},
	{ebiten.KeyArrowDown, platform.KeyDown},
	{ebiten.KeyArrowLeft, platform.KeyLeft},
	{ebiten.KeyArrowRight, platform.KeyRight},
	{ebiten.KeyBackspace, platform.KeyBackspace},
	{ebiten.KeyEnter, platform.KeyReturn},
	{ebiten.KeySpace, platform.KeySpace},
	{ebiten.KeyTab, platform.KeyTab},
	{ebiten.KeyEscape, platform.KeyEscape},
	{ebiten.KeyInsert, platform.KeyInsert},
	{ebiten.KeyDelete, platform.KeyDelete},
	{ebiten.KeyHome, platform.KeyHome},
	{ebiten.KeyEnd, platform.KeyEnd},
	{ebiten.KeyPageUp, platform.KeyPageUp},
	{ebiten.KeyPageDown, platform.KeyPageDown},
	{ebiten.KeyShift, platform.KeyShift},
	{ebiten.KeyControl, platform.KeyControl},
	{ebiten.KeyAlt, platform.KeyAlt},
}

func pollKeys(events []platform.WindowEvent, mods platform.Modifiers) []platform.WindowEvent {
	delay := ebiten.TPS() / repeatDelayDiv
	rate := max(ebiten.TPS()/repeatRateDiv, 1)

	for _, k := range keys {
		switch d := inpututil.KeyPressDuration(k.eb); {
		case inpututil.IsKeyJustPressed(k.eb):
			events = append(events, platform.KeyboardInput{
				State: platform.Pressed, Key: k.key, Mods: mods,
			})
		case d > delay && (d-delay)%rate == 0:
			events = append(events, platform.KeyboardInput{
				State: platform.Repeated, Key: k.key, Mods: mods,
			})
		case inpututil.IsKeyJustReleased(k.eb):
			events = append(events, platform.KeyboardInput{
				State: platform.Released, Key: k.key, Mods: mods,
			})
		}
	}
	return events
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() platform.Modifiers {
	var mods platform.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods.Shift = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods.Ctrl = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods.Alt = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods.Meta = true
	}
	return mods
}
