// Package easel is a retained-mode widget core for interactive 2D
// drawing tools.
//
// Easel provides the widget tree, pointer state tracking, layout, and a
// deferred paint pipeline. Widgets never draw; painting queues effects
// on a [Graphics] state, and a [Renderer] consumes the queue once per
// tick. The production renderer lives in the ebitengine package; any
// backend implementing [Renderer] and [platform.Window] works.
//
// # Quick start
//
// An application is configured with its resources, then launched with a
// root widget and the state the tree operates on:
//
//	app := easel.NewApplication[*State]("easel")
//	if err := app.Font(easel.DefaultFont, fontData, easel.UF2); err != nil {
//		log.Fatal(err)
//	}
//	app.Cursors(cursorAtlas)
//	app.Launch(win, renderer, root, state)
//
// Backends that own the main loop, such as Ebitengine, call
// [Application.Start] once and [Session.Tick] per frame instead.
//
// # Widget tree
//
// Every node implements [Widget], usually by embedding [Base] and
// overriding the methods it cares about. Containers hold children
// wrapped in a [Pod], which tracks identity, layout bounds, the local
// offset, and the hot/active pointer state; pods translate pointer
// coordinates so each widget works in its own space.
//
//	row := easel.NewHStack[*State]().Spacing(8)
//	row.Push(easel.NewSwatch[*State](gfx.Red))
//	row.Push(easel.NewSwatch[*State](gfx.Blue))
//	root := easel.NewZStack[*State](easel.Center[*State](row))
//
// Application state of type T threads through every widget call, so
// handlers mutate it directly rather than going through callbacks:
//
//	easel.OnClick(swatch, func(ctx easel.Context, s *State) {
//		s.color = color
//	})
//
// # Painting
//
// Paint methods receive a [Canvas]: a cheap value carrying a transform
// and a target. Drawing queues [Effect] values; nothing touches the GPU
// until the renderer drains the queue with [Graphics.Effects]. Targeting
// an offscreen texture with [Canvas.On] queues effects in that texture's
// own coordinate space.
package easel
