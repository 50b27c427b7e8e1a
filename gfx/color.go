package gfx

import (
	"fmt"
	"image/color"
)

// Rgba8 is an 8-bit RGBA color. Not premultiplied; premultiplication
// occurs at render submission time.
type Rgba8 struct {
	R, G, B, A uint8
}

// Named colors.
var (
	Transparent = Rgba8{0x00, 0x00, 0x00, 0x00}
	White       = Rgba8{0xff, 0xff, 0xff, 0xff}
	Black       = Rgba8{0x00, 0x00, 0x00, 0xff}
	Grey        = Rgba8{0x7f, 0x7f, 0x7f, 0xff}
	Red         = Rgba8{0xff, 0x00, 0x00, 0xff}
	Green       = Rgba8{0x00, 0xff, 0x00, 0xff}
	Blue        = Rgba8{0x00, 0x00, 0xff, 0xff}
	Yellow      = Rgba8{0xff, 0xff, 0x00, 0xff}
)

// RGBA8 returns the color with the given components.
func RGBA8(r, g, b, a uint8) Rgba8 {
	return Rgba8{r, g, b, a}
}

// WithAlpha returns the color with its alpha replaced.
func (c Rgba8) WithAlpha(a uint8) Rgba8 {
	return Rgba8{c.R, c.G, c.B, a}
}

// Invert returns the color with the RGB channels inverted. Alpha is kept.
func (c Rgba8) Invert() Rgba8 {
	return Rgba8{0xff - c.R, 0xff - c.G, 0xff - c.B, c.A}
}

// String renders the color as "#rrggbb", with the alpha byte appended
// only when it isn't 0xff.
func (c Rgba8) String() string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements image/color.Color with straight-to-premultiplied
// conversion, like color.NRGBA.
func (c Rgba8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// Rgba returns the color with float components in [0, 1].
func (c Rgba8) Rgba() Rgba {
	return Rgba{
		float32(c.R) / 0xff,
		float32(c.G) / 0xff,
		float32(c.B) / 0xff,
		float32(c.A) / 0xff,
	}
}

// ParseColor parses a "#rrggbb" hex string. The alpha is 0xff.
func ParseColor(s string) (Rgba8, error) {
	var c Rgba8
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("gfx: malformed color %q, want \"#rrggbb\"", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("gfx: malformed color %q: %w", s, err)
	}
	c.A = 0xff
	return c, nil
}

// Rgba is an RGBA color with float components in [0, 1]. Not premultiplied.
type Rgba struct {
	R, G, B, A float32
}

// Rgba8 quantizes the color to 8 bits per channel, rounding to nearest.
func (c Rgba) Rgba8() Rgba8 {
	return Rgba8{
		uint8(c.R*0xff + 0.5),
		uint8(c.G*0xff + 0.5),
		uint8(c.B*0xff + 0.5),
		uint8(c.A*0xff + 0.5),
	}
}

var _ color.Color = Rgba8{}
