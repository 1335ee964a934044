package pixbuf

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Surface adapts an in-memory Go image to Buffer. It holds either a 24-bit
// *RGB24 or a 32-bit *image.NRGBA and addresses pixels relative to the
// image's bounds origin.
type Surface struct {
	rgb    *RGB24
	nrgba  *image.NRGBA
	pix    []uint8
	stride int
	bpp    int
	width  int
	height int
}

// NewSurface wraps img without copying.
//
// Parameters:
//   - img: A *RGB24 (24-bit) or *image.NRGBA (32-bit, straight alpha).
//     Sub-images are accepted; pixels are addressed relative to
//     img.Bounds().Min.
//
// Returns:
//   - *Surface: A view whose writes land directly in img.Pix.
//   - error: Non-nil, wrapping ErrShape, when img is nil (typed or untyped),
//     has empty bounds, has a stride shorter than one row, or has a Pix slice
//     too short for its bounds. Any other image type (premultiplied *image.RGBA,
//     paletted, gray, 16-bit) is also an ErrShape, because its channels cannot
//     be rewritten without a conversion. Use ToRGB24 or ToNRGBA first.
func NewSurface(img image.Image) (*Surface, error) {
	switch im := img.(type) {
	case *RGB24:
		if im == nil {
			break
		}
		if err := im.validate(); err != nil {
			return nil, err
		}
		return &Surface{
			rgb:    im,
			pix:    im.Pix[im.PixOffset(im.Rect.Min.X, im.Rect.Min.Y):],
			stride: im.Stride,
			bpp:    3,
			width:  im.Rect.Dx(),
			height: im.Rect.Dy(),
		}, nil
	case *image.NRGBA:
		if im == nil {
			break
		}
		if err := validateNRGBA(im); err != nil {
			return nil, err
		}
		return &Surface{
			nrgba:  im,
			pix:    im.Pix[im.PixOffset(im.Rect.Min.X, im.Rect.Min.Y):],
			stride: im.Stride,
			bpp:    4,
			width:  im.Rect.Dx(),
			height: im.Rect.Dy(),
		}, nil
	}
	return nil, fmt.Errorf("%w: unsupported surface type %T, want *pixbuf.RGB24 or *image.NRGBA", ErrShape, img)
}

func validateNRGBA(im *image.NRGBA) error {
	w, h := im.Rect.Dx(), im.Rect.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: nrgba surface has empty bounds %v", ErrShape, im.Rect)
	}
	if im.Stride < 4*w {
		return fmt.Errorf("%w: nrgba stride %d shorter than row of %d pixels", ErrShape, im.Stride, w)
	}
	if need := im.PixOffset(im.Rect.Min.X, im.Rect.Min.Y) + (h-1)*im.Stride + 4*w; len(im.Pix) < need {
		return fmt.Errorf("%w: nrgba surface needs %d bytes, got %d", ErrShape, need, len(im.Pix))
	}
	return nil
}

// Validate checks that s is non-nil and that its pixel slice still covers
// every row of its bounds.
func (s *Surface) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil surface", ErrShape)
	}
	if s.width <= 0 || s.height <= 0 {
		return fmt.Errorf("%w: surface has empty geometry %dx%d", ErrShape, s.width, s.height)
	}
	if need := (s.height-1)*s.stride + s.bpp*s.width; s.stride < s.bpp*s.width || len(s.pix) < need {
		return fmt.Errorf("%w: surface of %dx%d needs %d bytes, got %d", ErrShape, s.width, s.height, need, len(s.pix))
	}
	return nil
}

// Image returns the wrapped image.
func (s *Surface) Image() image.Image {
	if s.rgb != nil {
		return s.rgb
	}
	return s.nrgba
}

// HasAlpha reports whether the surface carries an alpha channel.
func (s *Surface) HasAlpha() bool { return s.bpp == 4 }

// Dims implements Reader.
func (s *Surface) Dims() (int, int) { return s.width, s.height }

func (s *Surface) offset(x, y int) int { return y*s.stride + x*s.bpp }

// RGBAt implements Reader.
func (s *Surface) RGBAt(x, y int) (uint8, uint8, uint8) {
	i := s.offset(x, y)
	p := s.pix[i : i+3 : i+3]
	return p[0], p[1], p[2]
}

// SetRGB implements Buffer. Alpha, if any, is left untouched.
func (s *Surface) SetRGB(x, y int, r, g, b uint8) {
	i := s.offset(x, y)
	p := s.pix[i : i+3 : i+3]
	p[0], p[1], p[2] = r, g, b
}

// AlphaAt implements AlphaReader. A 24-bit surface reports fully opaque;
// use AlphaOf to tell the two apart.
func (s *Surface) AlphaAt(x, y int) uint8 {
	if s.bpp != 4 {
		return 0xff
	}
	return s.pix[s.offset(x, y)+3]
}

// SetAlpha implements AlphaWriter. It is a no-op on a 24-bit surface.
func (s *Surface) SetAlpha(x, y int, a uint8) {
	if s.bpp != 4 {
		return
	}
	s.pix[s.offset(x, y)+3] = a
}

// NewRGB24Surface allocates a zeroed 24-bit surface anchored at the origin.
func NewRGB24Surface(width, height int) *Surface {
	s, _ := NewSurface(NewRGB24(image.Rect(0, 0, width, height)))
	return s
}

// NewNRGBASurface allocates a zeroed 32-bit surface anchored at the origin.
func NewNRGBASurface(width, height int) *Surface {
	s, _ := NewSurface(image.NewNRGBA(image.Rect(0, 0, width, height)))
	return s
}

// ToNRGBA converts any decoded image into a fresh 32-bit surface image with
// straight alpha, anchored at the origin.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ToRGB24 converts any decoded image into a fresh 24-bit surface image.
// Alpha is discarded; color channels are un-premultiplied first.
func ToRGB24(img image.Image) *RGB24 {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := NewRGB24(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := y * src.Stride
		di := y * dst.Stride
		for x := 0; x < w; x++ {
			copy(dst.Pix[di:di+3], src.Pix[si:si+3])
			si += 4
			di += 3
		}
	}
	return dst
}
