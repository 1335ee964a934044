package pixbuf

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. RGB is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// RGBModel converts any color to RGB. Color channels are un-premultiplied
// before alpha is dropped, as ToRGB24 does.
var RGBModel color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// RGB24 is an in-memory 24-bit image. It is the surface type for transforms
// that carry no alpha.
type RGB24 struct {
	// Pix holds the pixels in R, G, B order. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int
	Rect   image.Rectangle
}

// NewRGB24 returns a zeroed RGB24 with the given bounds.
func NewRGB24(r image.Rectangle) *RGB24 {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &RGB24{Pix: make([]uint8, 3*w*h), Stride: 3 * w, Rect: r}
}

// ColorModel implements image.Image.
func (p *RGB24) ColorModel() color.Model { return RGBModel }

// Bounds implements image.Image.
func (p *RGB24) Bounds() image.Rectangle { return p.Rect }

// At implements image.Image.
func (p *RGB24) At(x, y int) color.Color { return p.RGBAt(x, y) }

// RGBAt returns the color at (x, y) in image coordinates, or the zero RGB
// outside the bounds.
func (p *RGB24) RGBAt(x, y int) RGB {
	if !(image.Point{x, y}.In(p.Rect)) {
		return RGB{}
	}
	i := p.PixOffset(x, y)
	return RGB{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}
}

// Set implements draw.Image.
func (p *RGB24) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := RGBModel.Convert(c).(RGB)
	p.Pix[i], p.Pix[i+1], p.Pix[i+2] = c1.R, c1.G, c1.B
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *RGB24) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Opaque reports that every pixel is opaque, which lets image/png skip alpha.
func (p *RGB24) Opaque() bool { return true }

func (p *RGB24) validate() error {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: rgb24 surface has empty bounds %v", ErrShape, p.Rect)
	}
	if p.Stride < 3*w {
		return fmt.Errorf("%w: rgb24 stride %d shorter than row of %d pixels", ErrShape, p.Stride, w)
	}
	if need := (h-1)*p.Stride + 3*w; len(p.Pix) < need {
		return fmt.Errorf("%w: rgb24 surface needs %d bytes, got %d", ErrShape, need, len(p.Pix))
	}
	return nil
}
