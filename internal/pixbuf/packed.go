package pixbuf

import "fmt"

// Packed3 is a 3-D RGB array indexed [x][y][channel].
//
// The pixel at (x, y) starts at Pix[(x*Height+y)*3]. Note that X is the
// outer index: consecutive bytes walk down a column, not along a row.
type Packed3 struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewPacked3 allocates a zeroed Packed3 of the given size.
func NewPacked3(width, height int) *Packed3 {
	return &Packed3{Pix: make([]uint8, width*height*3), Width: width, Height: height}
}

// Validate checks that Pix holds exactly Width*Height RGB triples.
func (p *Packed3) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil rgb array", ErrShape)
	}
	return checkGeometry("rgb array", len(p.Pix), p.Width, p.Height, 3)
}

// Dims implements Reader.
func (p *Packed3) Dims() (int, int) { return p.Width, p.Height }

// ColumnMajor reports that memory order runs down columns.
func (p *Packed3) ColumnMajor() bool { return true }

// Offset returns the index of the red byte of (x, y).
func (p *Packed3) Offset(x, y int) int { return (x*p.Height + y) * 3 }

// RGBAt implements Reader.
func (p *Packed3) RGBAt(x, y int) (uint8, uint8, uint8) {
	i := p.Offset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return s[0], s[1], s[2]
}

// SetRGB implements Buffer.
func (p *Packed3) SetRGB(x, y int, r, g, b uint8) {
	i := p.Offset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = r, g, b
}

// Clone returns a deep copy.
func (p *Packed3) Clone() *Packed3 {
	return &Packed3{Pix: append([]uint8(nil), p.Pix...), Width: p.Width, Height: p.Height}
}

// AlphaPlane is a 2-D alpha array indexed [x][y], Pix[x*Height+y].
type AlphaPlane struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewAlphaPlane allocates a zeroed AlphaPlane of the given size.
func NewAlphaPlane(width, height int) *AlphaPlane {
	return &AlphaPlane{Pix: make([]uint8, width*height), Width: width, Height: height}
}

// Validate checks that Pix holds exactly Width*Height values.
func (a *AlphaPlane) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil alpha array", ErrShape)
	}
	return checkGeometry("alpha array", len(a.Pix), a.Width, a.Height, 1)
}

// Dims implements Sizer.
func (a *AlphaPlane) Dims() (int, int) { return a.Width, a.Height }

// AlphaAt implements AlphaReader.
func (a *AlphaPlane) AlphaAt(x, y int) uint8 { return a.Pix[x*a.Height+y] }

// SetAlpha implements AlphaWriter.
func (a *AlphaPlane) SetAlpha(x, y int, v uint8) { a.Pix[x*a.Height+y] = v }

// Clone returns a deep copy.
func (a *AlphaPlane) Clone() *AlphaPlane {
	return &AlphaPlane{Pix: append([]uint8(nil), a.Pix...), Width: a.Width, Height: a.Height}
}

// Packed3Alpha pairs an RGB array with a separate alpha plane of the same size.
type Packed3Alpha struct {
	RGB   *Packed3
	Alpha *AlphaPlane
}

// NewPacked3Alpha allocates a zeroed RGB array and alpha plane.
func NewPacked3Alpha(width, height int) *Packed3Alpha {
	return &Packed3Alpha{RGB: NewPacked3(width, height), Alpha: NewAlphaPlane(width, height)}
}

// Validate checks both arrays and that they share width and height.
func (p *Packed3Alpha) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil rgba arrays", ErrShape)
	}
	if err := p.RGB.Validate(); err != nil {
		return err
	}
	if err := p.Alpha.Validate(); err != nil {
		return err
	}
	if err := SameDims(p.RGB, p.Alpha); err != nil {
		return fmt.Errorf("rgb and alpha arrays: %w", err)
	}
	return nil
}

// Dims implements Reader.
func (p *Packed3Alpha) Dims() (int, int) { return p.RGB.Dims() }

// ColumnMajor reports that memory order runs down columns.
func (p *Packed3Alpha) ColumnMajor() bool { return true }

// RGBAt implements Reader.
func (p *Packed3Alpha) RGBAt(x, y int) (uint8, uint8, uint8) { return p.RGB.RGBAt(x, y) }

// SetRGB implements Buffer.
func (p *Packed3Alpha) SetRGB(x, y int, r, g, b uint8) { p.RGB.SetRGB(x, y, r, g, b) }

// AlphaAt implements AlphaReader.
func (p *Packed3Alpha) AlphaAt(x, y int) uint8 { return p.Alpha.AlphaAt(x, y) }

// SetAlpha implements AlphaWriter.
func (p *Packed3Alpha) SetAlpha(x, y int, a uint8) { p.Alpha.SetAlpha(x, y, a) }

// Clone returns a deep copy of both arrays.
func (p *Packed3Alpha) Clone() *Packed3Alpha {
	return &Packed3Alpha{RGB: p.RGB.Clone(), Alpha: p.Alpha.Clone()}
}
