package saturation

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/saturation-mcp/internal/mask"
	"github.com/ironsheep/saturation-mcp/internal/pixbuf"
)

// columnMajor is implemented by layouts whose memory order walks columns
// first; the engine splits those by column to keep each worker's range
// contiguous.
type columnMajor interface {
	ColumnMajor() bool
}

// pass is one transform over a whole buffer. src and dst may be the same
// buffer (in place). srcA and dstA are set only when alpha must be carried
// into a separate output.
type pass struct {
	src     pixbuf.Reader
	dst     pixbuf.Buffer
	srcA    pixbuf.AlphaReader
	dstA    pixbuf.AlphaWriter
	factor  float64
	mask    *mask.Mask
	inPlace bool
}

func newPass(dst pixbuf.Buffer, src pixbuf.Reader, factor float64, m *mask.Mask) *pass {
	p := &pass{src: src, dst: dst, factor: factor, mask: m}
	if pixbuf.Reader(dst) == src {
		p.inPlace = true
		return p
	}
	if a, ok := pixbuf.AlphaOf(src); ok {
		if _, ok := pixbuf.AlphaOf(dst); ok {
			if w, ok := dst.(pixbuf.AlphaWriter); ok {
				p.srcA, p.dstA = a, w
			}
		}
	}
	return p
}

func (p *pass) run() {
	w, h := p.src.Dims()
	if cm, ok := p.src.(columnMajor); ok && cm.ColumnMajor() {
		parallel.Line(w, func(start, end int) {
			for x := start; x < end; x++ {
				for y := 0; y < h; y++ {
					p.pixel(x, y)
				}
			}
		})
		return
	}
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				p.pixel(x, y)
			}
		}
	})
}

func (p *pass) pixel(x, y int) {
	f := p.factor
	if p.mask != nil {
		f *= float64(p.mask.At(x, y))
	}
	r, g, b := p.src.RGBAt(x, y)
	if f != 0 || !p.inPlace {
		r, g, b = Apply(r, g, b, f)
		p.dst.SetRGB(x, y, r, g, b)
	}
	if p.dstA != nil {
		p.dstA.SetAlpha(x, y, p.srcA.AlphaAt(x, y))
	}
}

// Transform is the layout-independent engine entry. It writes the saturated
// pixels of src into dst, which may be src itself. Every exported entry point
// of this package ends here.
//
// Parameters:
//   - dst: The output buffer. It must have the same dimensions as src.
//   - src: The input buffer.
//   - factor: Saturation change in [-1, 1].
//   - m: Optional per-pixel weights; nil applies factor everywhere.
//
// Alpha is copied from src to dst when both carry it. When dst is src, alpha
// is left untouched.
//
// # Errors
//
// Checks run in this order and all of them complete before any pixel is
// read or written:
//   - ErrFactorRange: factor is NaN or outside [-1, 1].
//   - pixbuf.ErrShape: src or dst is nil (typed or untyped) or fails its
//     Validate method; src and dst differ in size; m is malformed or does
//     not match the size of src.
func Transform(dst pixbuf.Buffer, src pixbuf.Reader, factor float64, m *mask.Mask) error {
	if err := checkFactor(factor); err != nil {
		return err
	}
	if err := checkBuffer("source", src); err != nil {
		return err
	}
	if err := checkBuffer("destination", dst); err != nil {
		return err
	}
	if err := pixbuf.SameDims(src, dst); err != nil {
		return fmt.Errorf("source and destination: %w", err)
	}
	if err := checkMask(m, src); err != nil {
		return err
	}
	newPass(dst, src, factor, m).run()
	return nil
}
