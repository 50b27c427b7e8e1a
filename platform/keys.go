package platform

// Key identifies a keyboard key, independent of layout-translated text.
type Key uint8

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyBackspace
	KeyReturn
	KeySpace
	KeyTab
	KeyEscape
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyShift
	KeyControl
	KeyAlt
)

// keyNames is indexed by Key.
var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyA:         "a",
	KeyB:         "b",
	KeyC:         "c",
	KeyD:         "d",
	KeyE:         "e",
	KeyF:         "f",
	KeyG:         "g",
	KeyH:         "h",
	KeyI:         "i",
	KeyJ:         "j",
	KeyK:         "k",
	KeyL:         "l",
	KeyM:         "m",
	KeyN:         "n",
	KeyO:         "o",
	KeyP:         "p",
	KeyQ:         "q",
	KeyR:         "r",
	KeyS:         "s",
	KeyT:         "t",
	KeyU:         "u",
	KeyV:         "v",
	KeyW:         "w",
	KeyX:         "x",
	KeyY:         "y",
	KeyZ:         "z",
	Key0:         "0",
	Key1:         "1",
	Key2:         "2",
	Key3:         "3",
	Key4:         "4",
	Key5:         "5",
	Key6:         "6",
	Key7:         "7",
	Key8:         "8",
	Key9:         "9",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyBackspace: "backspace",
	KeyReturn:    "return",
	KeySpace:     "space",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page-up",
	KeyPageDown:  "page-down",
	KeyShift:     "shift",
	KeyControl:   "control",
	KeyAlt:       "alt",
}

// String returns the key's script name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// keysByName is the reverse of keyNames, for script parsing.
var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = Key(k)
	}
	return m
}()

// ParseKey resolves a script key name. Unrecognized names yield
// (KeyUnknown, false).
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	if !ok || k == KeyUnknown {
		return KeyUnknown, false
	}
	return k, true
}
