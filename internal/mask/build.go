package mask

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/saturation-mcp/internal/pixbuf"
)

// BWThreshold is the luma (0-255) at or above which FromBlackAndWhite
// produces a weight of 1.
const BWThreshold = 128

// luma returns ITU-R BT.601 luma in [0, 255]. Integer weights keep gray
// inputs exact, so a gray of 128 lands exactly on the threshold.
func luma(r, g, b uint8) float64 {
	return float64(299*int(r)+587*int(g)+114*int(b)) / 1000
}

// build runs fn over every pixel of src, rows in parallel.
func build(src pixbuf.Reader, fn func(x, y int) float32) (*Mask, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil mask source", pixbuf.ErrShape)
	}
	if v, ok := src.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	w, h := src.Dims()
	m, err := New(w, h)
	if err != nil {
		return nil, err
	}
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			row := m.weights[y*w : (y+1)*w]
			for x := range row {
				row[x] = fn(x, y)
			}
		}
	})
	return m, nil
}

// FromGrayscale weights each pixel by the mean of its channels over 255.
func FromGrayscale(src pixbuf.Reader) (*Mask, error) {
	return build(src, func(x, y int) float32 {
		r, g, b := src.RGBAt(x, y)
		return clamp01((float64(r) + float64(g) + float64(b)) / 3 / 255)
	})
}

// FromLuminance weights each pixel by its BT.601 luma over 255.
func FromLuminance(src pixbuf.Reader) (*Mask, error) {
	return build(src, func(x, y int) float32 {
		return clamp01(luma(src.RGBAt(x, y)) / 255)
	})
}

// FromBlackAndWhite produces a binary mask: 1 where luma >= BWThreshold.
func FromBlackAndWhite(src pixbuf.Reader) (*Mask, error) {
	return build(src, func(x, y int) float32 {
		if luma(src.RGBAt(x, y)) >= BWThreshold {
			return 1
		}
		return 0
	})
}

// FromAlpha weights each pixel by its alpha over 255. Sources without an
// alpha channel fail with pixbuf.ErrShape.
func FromAlpha(src pixbuf.Reader) (*Mask, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil mask source", pixbuf.ErrShape)
	}
	a, ok := pixbuf.AlphaOf(src)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no alpha channel", pixbuf.ErrShape, src)
	}
	return build(src, func(x, y int) float32 {
		return float32(a.AlphaAt(x, y)) / 255
	})
}
