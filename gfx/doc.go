// Package gfx provides the geometry, color, and vertex-generation
// primitives shared by the widget core and its renderers.
//
// Coordinates are float32 with the origin at the top-left and Y growing
// downward. [Rect] containment is half-open: min edges are inside, max
// edges are outside. [Transform] is a 2D affine matrix in column layout;
// composition via [Transform.Mul] applies the argument first.
//
// [Image] is a CPU-side pixel buffer with straight alpha. It implements
// the standard library's image.Image and draw.Image, decodes and encodes
// the uncompressed .rgba format, and blits 8x8 1-bit ICN tiles used by
// bitmap fonts.
//
// [ShapeBatch] and [SpriteBatch] tessellate shapes and textured quads
// into vertices consumed by a renderer.
package gfx
