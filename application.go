package easel

import (
	"time"

	"github.com/cloudhead/easel/gfx"
	"github.com/cloudhead/easel/platform"
)

// DefaultScale is the UI pixel scale new applications start with: one UI
// unit covers a 2x2 block of physical pixels.
const DefaultScale = 2

// Application carries launch configuration and the resources registered
// before a session starts: fonts, textures, the cursor atlas and the
// widget environment.
type Application[T any] struct {
	title    string
	graphics *Graphics
	env      *Env
	scale    float32
}

// NewApplication returns an application with the default UI scale.
func NewApplication[T any](title string) *Application[T] {
	return &Application[T]{
		title:    title,
		graphics: NewGraphics(),
		env:      &Env{},
		scale:    DefaultScale,
	}
}

// Title returns the window title.
func (a *Application[T]) Title() string {
	return a.title
}

// Env returns the widget environment seeded at launch.
func (a *Application[T]) Env() *Env {
	return a.env
}

// UIScale returns the configured UI pixel scale.
func (a *Application[T]) UIScale() float32 {
	return a.scale
}

// Font decodes a bitmap font and registers it under the ID.
func (a *Application[T]) Font(id FontID, data []byte, format FontFormat) error {
	debugf("loading font %q", id)
	return a.graphics.Font(id, data, format)
}

// Cursors registers the cursor sprite atlas.
func (a *Application[T]) Cursors(image *gfx.Image) *Application[T] {
	a.graphics.Texture(DefaultCursorsTexture, image)
	return a
}

// Image registers a named texture and publishes its ID in the widget
// environment, where image widgets resolve it during initialization.
func (a *Application[T]) Image(name string, image *gfx.Image) *Application[T] {
	id := NextTextureID()
	a.graphics.Texture(id, image)
	SetEnv(a.env, NewKey[TextureID](name), id)
	return a
}

// Scale sets the UI pixel scale.
func (a *Application[T]) Scale(factor float32) *Application[T] {
	if factor != float32(int(factor)) {
		debugf("non-integral scale %g will blur output", factor)
	}
	a.scale = factor
	return a
}

// Start begins a session on the window: the root widget is wrapped in a
// pod, initialized with the registered textures and laid out against the
// window size. The caller drives the session by calling Tick.
func (a *Application[T]) Start(win platform.Window, root Widget[T], data T) *Session[T] {
	if factor := win.ScaleFactor(); factor != 1 {
		debugf("window scale factor is %g; rendering may be blurry", factor)
	}
	s := &Session[T]{
		app:   a,
		win:   win,
		root:  NewPod(root),
		data:  data,
		store: make(Surfaces),
	}
	ctx := NewContext(gfx.Point{}, s.store)
	s.root.Lifecycle(Initialized{Textures: a.graphics.textures}, ctx, a.env, data)
	s.root.Update(0, ctx, data)
	s.root.Layout(s.uiSize(), &LayoutContext{Fonts: a.graphics.fonts}, data, a.env)

	return s
}

// Launch starts a session and runs it until the window closes, ticking
// with wall-clock deltas. Backends that own the main loop, such as the
// ebitengine package, call Start and Tick themselves instead.
func (a *Application[T]) Launch(win platform.Window, renderer Renderer, root Widget[T], data T) {
	s := a.Start(win, root, data)
	last := time.Now()
	for win.IsOpen() {
		now := time.Now()
		s.Tick(win.Poll(), now.Sub(last), renderer)
		last = now
		win.Present()
	}
}

// Session is a running application: the window, the widget tree and the
// state shared with the renderer between ticks.
type Session[T any] struct {
	app  *Application[T]
	win  platform.Window
	root *Pod[T]
	data T

	store   Surfaces
	pending []Event

	resized   bool
	hovered   bool
	minimized bool
}

// Tick runs one frame. Window events are translated into widget events
// and dispatched, the tree is updated, laid out and painted, and the
// queued effects are handed to the renderer. A renderer failure is
// logged and the tick carries on, so one bad frame cannot wedge the
// session.
//
// While the window is minimized nothing is dispatched or drawn, but
// translated events are retained; the backlog is delivered on the first
// tick after restore.
func (s *Session[T]) Tick(events []platform.WindowEvent, delta time.Duration, renderer Renderer) {
	s.translate(events, renderer)
	if s.minimized {
		return
	}
	s.pending = coalesceMoves(s.pending)

	size := s.uiSize()
	cursor := s.scaled(s.win.CursorPos())
	s.app.graphics.cursor.Origin = cursor

	if s.resized {
		s.resized = false
		renderer.Resized(s.win.Size())
		s.pending = append(s.pending, Resized{Size: size})
	}
	s.pending = append(s.pending, Tick{Delta: delta})

	var stats tickStats
	ctx := NewContext(cursor, s.store)

	start := time.Now()
	stats.eventCount = len(s.pending)
	for _, event := range s.pending {
		s.root.Event(event, ctx, s.app.env, s.data)
	}
	s.pending = s.pending[:0]
	stats.dispatchTime = time.Since(start)

	style, ok := s.root.Cursor()
	if !ok {
		style = CursorPointer
	}
	s.app.graphics.cursor.Style = style

	start = time.Now()
	s.root.Update(delta, ctx, s.data)
	stats.updateTime = time.Since(start)

	start = time.Now()
	s.root.Layout(size, &LayoutContext{Fonts: s.app.graphics.fonts}, s.data, s.app.env)
	stats.layoutTime = time.Since(start)

	start = time.Now()
	s.root.Paint(NewCanvas(s.app.graphics, size), s.data)
	stats.paintTime = time.Since(start)

	effects := s.app.graphics.Effects()
	stats.effectCount = len(effects)

	start = time.Now()
	if err := renderer.Frame(effects, s.app.graphics.CursorSprite(), s.store); err != nil {
		errorf("render: %v", err)
	}
	stats.renderTime = time.Since(start)

	// The frame pass runs even when rendering failed, so widgets keep
	// seeing whatever surfaces the renderer last synced.
	s.root.Frame(s.store, s.data)

	if Debug() {
		stats.log()
	}
}

// translate turns raw window events into widget events on the pending
// queue and folds window state changes into session flags.
func (s *Session[T]) translate(events []platform.WindowEvent, renderer Renderer) {
	for _, event := range events {
		switch e := event.(type) {
		case platform.CursorMoved:
			s.pending = append(s.pending, MouseMove{Point: s.scaled(e.Position)})
		case platform.MouseInput:
			switch e.State {
			case platform.Pressed:
				s.pending = append(s.pending, MouseDown{Button: e.Button})
			case platform.Released:
				s.pending = append(s.pending, MouseUp{Button: e.Button})
			}
		case platform.Scroll:
			s.pending = append(s.pending, MouseScroll{Delta: e.Delta})
		case platform.KeyboardInput:
			switch {
			case e.Key == platform.KeyUnknown:
				debugf("ignoring unidentified key (%s)", e.State)
			case e.Key == platform.KeyInsert && e.State == platform.Pressed && e.Mods.Shift:
				if text, ok := s.win.Clipboard(); ok {
					s.pending = append(s.pending, Paste{Text: text})
				}
			case e.State == platform.Pressed:
				s.pending = append(s.pending, KeyDown{Key: e.Key, Mods: e.Mods})
			case e.State == platform.Repeated:
				s.pending = append(s.pending, KeyDown{Key: e.Key, Mods: e.Mods, Repeat: true})
			case e.State == platform.Released:
				s.pending = append(s.pending, KeyUp{Key: e.Key, Mods: e.Mods})
			}
		case platform.ReceivedCharacter:
			s.pending = append(s.pending, CharacterReceived{Char: e.Char})
		case platform.Resized:
			if e.Size.IsZero() {
				s.minimized = true
			} else {
				s.minimized = false
				s.resized = true
			}
		case platform.CursorEntered:
			// The pointer is drawn as a sprite; hide the system cursor
			// while it is over the window.
			s.hovered = true
			s.win.SetCursorVisible(false)
		case platform.CursorLeft:
			s.hovered = false
			s.win.SetCursorVisible(true)
		case platform.Focused:
			if e.Focused && s.hovered {
				s.win.SetCursorVisible(false)
			} else if !e.Focused {
				s.win.SetCursorVisible(true)
			}
		case platform.Minimized:
			s.minimized = true
		case platform.Restored:
			s.minimized = false
		case platform.ScaleFactorChanged:
			renderer.ScaleFactorChanged(e.Factor)
		case platform.CloseRequested:
			// The loop watches Window.IsOpen; nothing to do here.
		}
	}
}

// uiSize returns the window size in UI coordinates.
func (s *Session[T]) uiSize() gfx.Size {
	return s.win.Size().Point().Mul(1 / s.app.scale).Size()
}

// scaled maps a physical pixel position into UI coordinates.
func (s *Session[T]) scaled(p gfx.Point) gfx.Point {
	return p.Mul(1 / s.app.scale).Floor()
}

// coalesceMoves collapses each run of consecutive mouse moves into its
// last event. Intermediate positions within a single tick carry no
// information the final one does not.
func coalesceMoves(events []Event) []Event {
	out := events[:0]
	for _, event := range events {
		if _, ok := event.(MouseMove); ok && len(out) > 0 {
			if _, ok := out[len(out)-1].(MouseMove); ok {
				out[len(out)-1] = event
				continue
			}
		}
		out = append(out, event)
	}
	return out
}
