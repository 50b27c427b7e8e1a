package platform

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/cloudhead/easel/gfx"
)

// scriptStep is a single entry in a JSON event script.
type scriptStep struct {
	Event   string  `json:"event"`
	X       float32 `json:"x,omitempty"`
	Y       float32 `json:"y,omitempty"`
	W       float32 `json:"w,omitempty"`
	H       float32 `json:"h,omitempty"`
	State   string  `json:"state,omitempty"`
	Button  string  `json:"button,omitempty"`
	Key     string  `json:"key,omitempty"`
	Char    string  `json:"char,omitempty"`
	Shift   bool    `json:"shift,omitempty"`
	Ctrl    bool    `json:"ctrl,omitempty"`
	Alt     bool    `json:"alt,omitempty"`
	Meta    bool    `json:"meta,omitempty"`
	Focused bool    `json:"focused,omitempty"`
	Factor  float32 `json:"factor,omitempty"`
}

// ParseScript parses a JSON event script: an array of steps, each with an
// "event" name and its parameters. The "click" step expands into a move,
// press, and release sequence. Scripts drive a [Headless] window in tests
// and replay sessions.
func ParseScript(data []byte) ([]WindowEvent, error) {
	var steps []scriptStep
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("platform: parse event script: %w", err)
	}
	var events []WindowEvent
	for i, step := range steps {
		evs, err := parseStep(step)
		if err != nil {
			return nil, fmt.Errorf("platform: event script step %d: %w", i, err)
		}
		events = append(events, evs...)
	}
	return events, nil
}

// LoadScript parses a JSON event script into the window queue. The extra
// "frame" step seals a batch, delimiting what one Poll call returns.
func (w *Headless) LoadScript(data []byte) error {
	var steps []scriptStep
	if err := json.Unmarshal(data, &steps); err != nil {
		return fmt.Errorf("platform: parse event script: %w", err)
	}
	for i, step := range steps {
		if step.Event == "frame" {
			w.EndFrame()
			continue
		}
		evs, err := parseStep(step)
		if err != nil {
			return fmt.Errorf("platform: event script step %d: %w", i, err)
		}
		w.Push(evs...)
	}
	return nil
}

func parseStep(step scriptStep) ([]WindowEvent, error) {
	mods := Modifiers{Shift: step.Shift, Ctrl: step.Ctrl, Alt: step.Alt, Meta: step.Meta}

	switch step.Event {
	case "cursor-moved":
		return []WindowEvent{CursorMoved{gfx.P(step.X, step.Y)}}, nil
	case "cursor-entered":
		return []WindowEvent{CursorEntered{}}, nil
	case "cursor-left":
		return []WindowEvent{CursorLeft{}}, nil
	case "mouse-input":
		state, err := parseState(step.State)
		if err != nil {
			return nil, err
		}
		button, err := parseButton(step.Button)
		if err != nil {
			return nil, err
		}
		return []WindowEvent{MouseInput{State: state, Button: button, Mods: mods}}, nil
	case "click":
		button := MouseButtonLeft
		if step.Button != "" {
			var err error
			if button, err = parseButton(step.Button); err != nil {
				return nil, err
			}
		}
		return []WindowEvent{
			CursorMoved{gfx.P(step.X, step.Y)},
			MouseInput{State: Pressed, Button: button, Mods: mods},
			MouseInput{State: Released, Button: button, Mods: mods},
		}, nil
	case "scroll":
		return []WindowEvent{Scroll{gfx.P(step.X, step.Y)}}, nil
	case "keyboard-input":
		state, err := parseState(step.State)
		if err != nil {
			return nil, err
		}
		key, ok := ParseKey(step.Key)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", step.Key)
		}
		return []WindowEvent{KeyboardInput{State: state, Key: key, Mods: mods}}, nil
	case "received-character":
		r, size := utf8.DecodeRuneInString(step.Char)
		if size == 0 || r == utf8.RuneError {
			return nil, fmt.Errorf("malformed char %q", step.Char)
		}
		return []WindowEvent{ReceivedCharacter{r}}, nil
	case "resized":
		return []WindowEvent{Resized{gfx.S(step.W, step.H)}}, nil
	case "focused":
		return []WindowEvent{Focused{step.Focused}}, nil
	case "minimized":
		return []WindowEvent{Minimized{}}, nil
	case "restored":
		return []WindowEvent{Restored{}}, nil
	case "scale-factor-changed":
		return []WindowEvent{ScaleFactorChanged{step.Factor}}, nil
	case "close-requested":
		return []WindowEvent{CloseRequested{}}, nil
	case "":
		return nil, fmt.Errorf("missing event name")
	default:
		return nil, fmt.Errorf("unknown event %q", step.Event)
	}
}

func parseState(s string) (InputState, error) {
	switch s {
	case "pressed":
		return Pressed, nil
	case "released":
		return Released, nil
	case "repeated":
		return Repeated, nil
	}
	return 0, fmt.Errorf("unknown input state %q", s)
}

func parseButton(s string) (MouseButton, error) {
	switch s {
	case "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", s)
}
