package gfx

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"
)

// Image is a CPU-side image: a row-major pixel buffer with straight alpha.
type Image struct {
	W, H   int
	Pixels []Rgba8
}

// NewImage creates an image from an existing pixel buffer. The buffer
// length must be exactly w*h.
func NewImage(pixels []Rgba8, w, h int) *Image {
	if len(pixels) != w*h {
		panic(fmt.Sprintf("gfx: image has %d pixels, want %d (%dx%d)", len(pixels), w*h, w, h))
	}
	return &Image{W: w, H: h, Pixels: pixels}
}

// BlankImage creates a fully transparent image.
func BlankImage(w, h int) *Image {
	return &Image{W: w, H: h, Pixels: make([]Rgba8, w*h)}
}

// Size returns the image dimensions.
func (i *Image) Size() Size {
	return Size{float32(i.W), float32(i.H)}
}

// Sample returns the pixel at (x, y), and whether the coordinate is in
// bounds.
func (i *Image) Sample(x, y int) (Rgba8, bool) {
	if x < 0 || y < 0 || x >= i.W || y >= i.H {
		return Rgba8{}, false
	}
	return i.Pixels[i.W*y+x], true
}

// SetPixel writes the pixel at (x, y). Out-of-bounds writes are dropped.
func (i *Image) SetPixel(x, y int, c Rgba8) {
	if x < 0 || y < 0 || x >= i.W || y >= i.H {
		return
	}
	i.Pixels[i.W*y+x] = c
}

// ICNTile is the side length of an ICN tile in pixels.
const ICNTile = 8

// DrawICN blits an 8x8 1-bit ICN tile at (x, y). Each of the 8 bytes is a
// row, bit 7 leftmost; set bits paint c, clear bits leave the destination
// untouched.
func (i *Image) DrawICN(tile []byte, x, y int, c Rgba8) {
	if len(tile) < ICNTile {
		panic(fmt.Sprintf("gfx: icn tile is %d bytes, want %d", len(tile), ICNTile))
	}
	for v := 0; v < ICNTile; v++ {
		row := tile[v]
		for h := 0; h < ICNTile; h++ {
			if row>>(7-h)&1 == 1 {
				i.SetPixel(x+h, y+v, c)
			}
		}
	}
}

// Scale returns the image scaled up by an integer factor using
// nearest-neighbour sampling.
func (i *Image) Scale(factor int) *Image {
	dst := BlankImage(i.W*factor, i.H*factor)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), i, i.Bounds(), draw.Src, nil)
	return dst
}

// --- stdlib image interop ---

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

// At implements image.Image.
func (i *Image) At(x, y int) color.Color {
	c, ok := i.Sample(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set implements draw.Image.
func (i *Image) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i.SetPixel(x, y, Rgba8{n.R, n.G, n.B, n.A})
}

var (
	_ image.Image = (*Image)(nil)
	_ draw.Image  = (*Image)(nil)
)

// --- .rgba codec ---

// rgbaMagic identifies the uncompressed .rgba image format: the magic,
// big-endian u32 width and height, then W*H*4 bytes of RGBA data.
var rgbaMagic = [4]byte{'R', 'G', 'B', 'A'}

const rgbaHeaderLen = 12

// DecodeImage decodes an .rgba image.
func DecodeImage(data []byte) (*Image, error) {
	if len(data) < rgbaHeaderLen {
		return nil, fmt.Errorf("gfx: rgba image is %d bytes, want at least %d", len(data), rgbaHeaderLen)
	}
	if [4]byte(data[:4]) != rgbaMagic {
		return nil, fmt.Errorf("gfx: bad rgba magic %q", data[:4])
	}
	w := int(binary.BigEndian.Uint32(data[4:8]))
	h := int(binary.BigEndian.Uint32(data[8:12]))
	body := data[rgbaHeaderLen:]
	if len(body) != w*h*4 {
		return nil, fmt.Errorf("gfx: rgba image body is %d bytes, want %d (%dx%d)", len(body), w*h*4, w, h)
	}
	pixels := make([]Rgba8, w*h)
	for i := range pixels {
		pixels[i] = Rgba8{body[i*4], body[i*4+1], body[i*4+2], body[i*4+3]}
	}
	return NewImage(pixels, w, h), nil
}

// Encode writes the image in the .rgba format.
func (i *Image) Encode(w io.Writer) error {
	header := make([]byte, rgbaHeaderLen)
	copy(header, rgbaMagic[:])
	binary.BigEndian.PutUint32(header[4:], uint32(i.W))
	binary.BigEndian.PutUint32(header[8:], uint32(i.H))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("gfx: encode rgba header: %w", err)
	}
	body := make([]byte, 0, len(i.Pixels)*4)
	for _, p := range i.Pixels {
		body = append(body, p.R, p.G, p.B, p.A)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("gfx: encode rgba body: %w", err)
	}
	return nil
}
