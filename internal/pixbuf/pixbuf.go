package pixbuf

import (
	"errors"
	"fmt"
)

// ErrShape reports a structural mismatch: buffer length, geometry, channel
// layout, pixel type, or companion-buffer dimensions.
var ErrShape = errors.New("buffer shape mismatch")

// Sizer reports buffer geometry.
type Sizer interface {
	// Dims returns the image width (X extent) and height (Y extent).
	Dims() (width, height int)
}

// Reader is read access to the RGB channels of a buffer.
type Reader interface {
	Sizer
	// RGBAt returns the pixel at (x, y). Coordinates are not bounds checked
	// beyond what the underlying slice enforces.
	RGBAt(x, y int) (r, g, b uint8)
}

// Buffer is a Reader that can also be written.
type Buffer interface {
	Reader
	SetRGB(x, y int, r, g, b uint8)
}

// AlphaReader is implemented by layouts carrying an alpha channel.
type AlphaReader interface {
	AlphaAt(x, y int) uint8
}

// AlphaWriter is implemented by layouts whose alpha channel can be written.
type AlphaWriter interface {
	SetAlpha(x, y int, a uint8)
}

// alphaReporter lets a layout that implements AlphaReader state at run time
// that it has no alpha, as a 24-bit Surface does.
type alphaReporter interface {
	HasAlpha() bool
}

// AlphaOf returns the alpha channel of r, if it has one.
func AlphaOf(r Reader) (AlphaReader, bool) {
	if rep, ok := r.(alphaReporter); ok && !rep.HasAlpha() {
		return nil, false
	}
	a, ok := r.(AlphaReader)
	return a, ok
}

// checkGeometry validates that a buffer of n bytes holds width*height pixels
// of bpp bytes each.
func checkGeometry(kind string, n, width, height, bpp int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %s has empty geometry %dx%d", ErrShape, kind, width, height)
	}
	want := width * height * bpp
	if want/bpp/height != width {
		return fmt.Errorf("%w: %s geometry %dx%d overflows", ErrShape, kind, width, height)
	}
	if n != want {
		return fmt.Errorf("%w: %s of %dx%d needs %d bytes, got %d", ErrShape, kind, width, height, want, n)
	}
	return nil
}

// SameDims reports an ErrShape when a and b disagree on width or height.
func SameDims(a, b Sizer) error {
	aw, ah := a.Dims()
	bw, bh := b.Dims()
	if aw != bw || ah != bh {
		return fmt.Errorf("%w: dimensions %dx%d and %dx%d differ", ErrShape, aw, ah, bw, bh)
	}
	return nil
}
