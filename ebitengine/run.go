// Package ebitengine hosts easel applications on Ebitengine: it owns
// the main loop, feeds platform events into the session, and renders
// effect queues with the GPU.
//
// The split follows Ebitengine's game contract: the session ticks in
// Update, where offscreen work and readbacks are legal, and Draw only
// scales the finished frame onto the backbuffer.
package ebitengine

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cloudhead/easel"
	"github.com/cloudhead/easel/gfx"
)

// DefaultWindowSize is used when Options leaves the size zero.
var DefaultWindowSize = gfx.S(960, 640)

// Options configure the host window.
type Options struct {
	// Size is the initial window size in physical pixels. Zero means
	// DefaultWindowSize.
	Size gfx.Size
	// Resizable lets the user resize the window.
	Resizable bool
}

// Run opens a window for the application and runs its session until the
// window closes. It must be called from the main goroutine and blocks
// until the session ends.
func Run[T any](app *easel.Application[T], root easel.Widget[T], data T, opts Options) error {
	size := opts.Size
	if size.IsZero() {
		size = DefaultWindowSize
	}

	ebiten.SetWindowTitle(app.Title())
	ebiten.SetWindowSize(int(size.W), int(size.H))
	ebiten.SetWindowClosingHandled(true)
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	return ebiten.RunGame(&game[T]{
		app:      app,
		root:     root,
		data:     data,
		win:      NewWindow(size),
		renderer: NewRenderer(size, app.UIScale()),
	})
}

// game adapts a session to the Ebitengine game contract.
type game[T any] struct {
	app      *easel.Application[T]
	root     easel.Widget[T]
	data     T
	win      *Window
	renderer *Renderer
	session  *easel.Session[T]
	last     time.Time
}

// Update runs one session tick with wall-clock deltas. The session
// starts lazily on the first tick, after the first Layout has reported
// the real window size.
func (g *game[T]) Update() error {
	if g.session == nil {
		g.session = g.app.Start(g.win, g.root, g.data)
		g.last = time.Now()
	}
	now := time.Now()
	g.session.Tick(g.win.Poll(), now.Sub(g.last), g.renderer)
	g.last = now

	if !g.win.IsOpen() {
		return ebiten.Termination
	}
	return nil
}

func (g *game[T]) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

// Layout reports the window size back to the session and keeps the
// backbuffer at window resolution.
func (g *game[T]) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.win.resize(gfx.S(float32(outsideWidth), float32(outsideHeight)))
	return outsideWidth, outsideHeight
}
