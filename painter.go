package easel

import "github.com/cloudhead/easel/gfx"

// Painter turns a paint function into a widget. It fills whatever space
// it is given.
type Painter[T any] struct {
	Base[T]

	paint func(canvas Canvas, data T)
}

// NewPainter returns a widget painting with the given function.
func NewPainter[T any](paint func(canvas Canvas, data T)) *Painter[T] {
	return &Painter[T]{paint: paint}
}

func (p *Painter[T]) Paint(canvas Canvas, data T) {
	p.paint(canvas, data)
}

func (p *Painter[T]) String() string {
	return "Painter"
}

// Swatch fills its bounds with a single color.
type Swatch[T any] struct {
	Base[T]

	Color gfx.Rgba8
}

// NewSwatch returns a widget filling its bounds with the color.
func NewSwatch[T any](color gfx.Rgba8) *Swatch[T] {
	return &Swatch[T]{Color: color}
}

func (s *Swatch[T]) Paint(canvas Canvas, data T) {
	canvas.Fill(canvas.Bounds(), s.Color)
}

func (s *Swatch[T]) String() string {
	return s.Color.String()
}
