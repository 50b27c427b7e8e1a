package easel

import (
	"fmt"

	"github.com/cloudhead/easel/gfx"
)

// Image displays a registered texture at its native size. Images can be
// constructed over a known texture ID, or by name, resolving to an ID
// when the tree is initialized.
type Image[T any] struct {
	Base[T]

	id       TextureID
	info     TextureInfo
	name     string
	resolved bool
}

// TextureImage returns an image over an already registered texture.
func TextureImage[T any](id TextureID, info TextureInfo) *Image[T] {
	return &Image[T]{id: id, info: info, resolved: true}
}

// NamedImage returns an image that resolves its name when the tree is
// initialized. The name must have been registered with the application
// builder.
func NamedImage[T any](name string) *Image[T] {
	return &Image[T]{name: name}
}

// Layout returns the texture's size. Unresolved images take no space.
func (img *Image[T]) Layout(parent gfx.Size, ctx *LayoutContext, data T, env *Env) gfx.Size {
	if !img.resolved {
		return gfx.Size{}
	}
	return img.info.Size()
}

// Paint queues the textured quad.
func (img *Image[T]) Paint(canvas Canvas, data T) {
	if !img.resolved {
		return
	}
	canvas.Paint(NewTexturePaint(img.id, img.info))
}

// Lifecycle resolves named images against the environment and the
// committed texture table.
func (img *Image[T]) Lifecycle(lc Lifecycle, ctx Context, env *Env, data T) {
	init, ok := lc.(Initialized)
	if !ok || img.resolved || img.name == "" {
		return
	}
	id, ok := LookupEnv(env, NewKey[TextureID](img.name))
	if !ok {
		debugf("image: no texture registered under %q", img.name)
		return
	}
	info, ok := init.Textures[id]
	if !ok {
		debugf("image: texture %d for %q was never committed", id, img.name)
		return
	}
	img.id, img.info, img.resolved = id, info, true
}

func (img *Image[T]) String() string {
	if img.name != "" {
		return fmt.Sprintf("Image(%q)", img.name)
	}
	return fmt.Sprintf("Image(%d)", img.id)
}
