package easel

import (
	"sync/atomic"
	"time"

	"github.com/cloudhead/easel/gfx"
)

// Widget is a node in the user interface tree, parameterized over the
// application data it is shown for. Data flows through every call; only
// Event and Frame are expected to mutate it, so T is usually a pointer
// type.
//
// Most widgets embed [Base] and override the handful of methods they
// care about.
type Widget[T any] interface {
	// Layout measures the widget against the parent constraint and
	// returns its size. Container widgets lay out their children here.
	Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size
	// Paint queues paint effects for this widget on the canvas.
	Paint(canvas Canvas, data T)
	// Update advances widget state by the elapsed frame time.
	Update(delta time.Duration, ctx Context, data T)
	// Event handles a widget event. Returning Break stops propagation.
	Event(event Event, ctx Context, env *Env, data T) EventResult
	// Lifecycle handles tree lifecycle notifications.
	Lifecycle(lc Lifecycle, ctx Context, env *Env, data T)
	// Frame runs after the renderer has consumed the frame's effects,
	// with the surfaces it synced back.
	Frame(surfaces Surfaces, data T)
	// Contains reports whether a point in local coordinates hits the
	// widget. It must be pure.
	Contains(point gfx.Point) bool
	// Cursor returns the cursor style the widget wants shown, if any.
	Cursor() (CursorStyle, bool)
	// String describes the widget for debugging.
	String() string
}

// EventResult tells the dispatcher whether an event was consumed.
type EventResult uint8

const (
	// Continue propagates the event to further widgets.
	Continue EventResult = iota
	// Break stops propagation.
	Break
)

// WidgetID uniquely identifies a Pod within a process. The zero ID means
// "none".
type WidgetID uint64

var lastWidgetID atomic.Uint64

// NextWidgetID returns a process-unique widget ID. Safe for concurrent
// use; everything else in the tree is single-threaded.
func NextWidgetID() WidgetID {
	return WidgetID(lastWidgetID.Add(1))
}

// Lifecycle is a tree lifecycle notification.
type Lifecycle interface {
	isLifecycle()
}

// Initialized is delivered once after setup, before the first layout.
// Textures maps every texture registered at launch to its info, letting
// widgets resolve named textures.
type Initialized struct {
	Textures map[TextureID]TextureInfo
}

func (Initialized) isLifecycle() {}

// Surfaces is the read view of texture pixels synced back by the
// renderer, keyed by texture ID.
type Surfaces map[TextureID]*gfx.Image

// Store implements TextureStore.
func (s Surfaces) Store(id TextureID, image *gfx.Image) {
	s[id] = image
}

// Texture returns the synced pixels for a texture, if present.
func (s Surfaces) Texture(id TextureID) (*gfx.Image, bool) {
	img, ok := s[id]
	return img, ok
}

// Padding is a per-edge inset.
type Padding struct {
	Top, Right, Bottom, Left float32
}

// Uniform returns equal padding on all edges.
func Uniform(p float32) Padding {
	return Padding{p, p, p, p}
}

// --- Base ---

// Base provides no-op defaults for the Widget interface. Layout returns
// the parent constraint and Contains reports true, so a bare Base fills
// whatever space it is given.
type Base[T any] struct{}

// Layout implements Widget.
func (Base[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	return parent
}

// Paint implements Widget.
func (Base[T]) Paint(canvas Canvas, data T) {}

// Update implements Widget.
func (Base[T]) Update(delta time.Duration, ctx Context, data T) {}

// Event implements Widget.
func (Base[T]) Event(event Event, ctx Context, env *Env, data T) EventResult {
	return Continue
}

// Lifecycle implements Widget.
func (Base[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {}

// Frame implements Widget.
func (Base[T]) Frame(surfaces Surfaces, data T) {}

// Contains implements Widget.
func (Base[T]) Contains(point gfx.Point) bool {
	return true
}

// Cursor implements Widget.
func (Base[T]) Cursor() (CursorStyle, bool) {
	return CursorPointer, false
}

func (Base[T]) String() string {
	return "widget"
}
