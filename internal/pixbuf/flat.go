package pixbuf

import "fmt"

// Flat is a row-major interleaved RGB buffer with explicit geometry.
//
// The pixel at (x, y) starts at Pix[(y*Width+x)*3]. The geometry cannot be
// inferred from len(Pix), so Width and Height must always be set.
type Flat struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewFlat allocates a zeroed Flat buffer.
func NewFlat(width, height int) *Flat {
	return &Flat{Pix: make([]uint8, width*height*3), Width: width, Height: height}
}

// Validate checks that len(Pix) == 3*Width*Height.
func (f *Flat) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil flat buffer", ErrShape)
	}
	return checkGeometry("flat buffer", len(f.Pix), f.Width, f.Height, 3)
}

// Dims implements Reader.
func (f *Flat) Dims() (int, int) { return f.Width, f.Height }

// Offset returns the index of the red byte of (x, y).
func (f *Flat) Offset(x, y int) int { return (y*f.Width + x) * 3 }

// RGBAt implements Reader.
func (f *Flat) RGBAt(x, y int) (uint8, uint8, uint8) {
	i := f.Offset(x, y)
	s := f.Pix[i : i+3 : i+3]
	return s[0], s[1], s[2]
}

// SetRGB implements Buffer.
func (f *Flat) SetRGB(x, y int, r, g, b uint8) {
	i := f.Offset(x, y)
	s := f.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = r, g, b
}

// Clone returns a deep copy.
func (f *Flat) Clone() *Flat {
	return &Flat{Pix: append([]uint8(nil), f.Pix...), Width: f.Width, Height: f.Height}
}
