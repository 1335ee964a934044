package saturation

import (
	"image"

	"github.com/ironsheep/saturation-mcp/internal/mask"
	"github.com/ironsheep/saturation-mcp/internal/pixbuf"
)

// === 24-bit arrays ===

// Saturate24 returns a new RGB array with saturation shifted by factor.
//
// Parameters:
//   - rgb: Source array indexed [x][y][channel]. It is not modified.
//   - factor: Saturation change in [-1, 1]. -1 grays every pixel, 0 is the
//     identity, 1 doubles saturation (clamped).
//
// Returns:
//   - *pixbuf.Packed3: A new array of the same size.
//   - error: ErrFactorRange for a bad factor, or pixbuf.ErrShape when rgb is
//     nil or its Pix length does not match Width*Height*3.
func Saturate24(rgb *pixbuf.Packed3, factor float64) (*pixbuf.Packed3, error) {
	return Saturate24Masked(rgb, factor, nil)
}

// Saturate24Masked is Saturate24 with the factor weighted per pixel by m.
//
// A weight of 0 leaves a pixel unchanged; a weight of 1 applies the full
// factor. A nil m behaves like an all-ones mask.
//
// # Errors
//
// As Saturate24, plus pixbuf.ErrShape when m is malformed or its size is not
// rgb's Width x Height.
func Saturate24Masked(rgb *pixbuf.Packed3, factor float64, m *mask.Mask) (*pixbuf.Packed3, error) {
	if err := prepare(rgb, factor, m); err != nil {
		return nil, err
	}
	out := pixbuf.NewPacked3(rgb.Width, rgb.Height)
	if err := Transform(out, rgb, factor, m); err != nil {
		return nil, err
	}
	return out, nil
}

// Saturate24InPlace rewrites rgb. The caller must hold exclusive access to
// rgb for the duration of the call.
//
// Errors are those of Saturate24; on error rgb is unchanged.
func Saturate24InPlace(rgb *pixbuf.Packed3, factor float64) error {
	return Saturate24MaskedInPlace(rgb, factor, nil)
}

// Saturate24MaskedInPlace rewrites rgb with the factor weighted by m.
//
// Errors are those of Saturate24Masked; on error rgb is unchanged.
func Saturate24MaskedInPlace(rgb *pixbuf.Packed3, factor float64, m *mask.Mask) error {
	return Transform(rgb, rgb, factor, m)
}

// === 32-bit arrays ===

// Saturate32 returns new RGB and alpha arrays. Alpha is copied unchanged.
//
// Parameters:
//   - src: RGB array and alpha plane of the same size. Neither is modified.
//   - factor: Saturation change in [-1, 1].
//
// Returns:
//   - *pixbuf.Packed3Alpha: New arrays of the same size.
//   - error: ErrFactorRange for a bad factor, or pixbuf.ErrShape when src or
//     either array is nil, either array has the wrong length, or the RGB
//     array and alpha plane differ in width or height.
func Saturate32(src *pixbuf.Packed3Alpha, factor float64) (*pixbuf.Packed3Alpha, error) {
	return Saturate32Masked(src, factor, nil)
}

// Saturate32Masked is Saturate32 with the factor weighted per pixel by m.
//
// # Errors
//
// As Saturate32, plus pixbuf.ErrShape when m does not match src's size.
func Saturate32Masked(src *pixbuf.Packed3Alpha, factor float64, m *mask.Mask) (*pixbuf.Packed3Alpha, error) {
	if err := prepare(src, factor, m); err != nil {
		return nil, err
	}
	w, h := src.Dims()
	out := pixbuf.NewPacked3Alpha(w, h)
	if err := Transform(out, src, factor, m); err != nil {
		return nil, err
	}
	return out, nil
}

// Saturate32InPlace rewrites the RGB array of src; alpha is not touched.
//
// Errors are those of Saturate32; on error src is unchanged.
func Saturate32InPlace(src *pixbuf.Packed3Alpha, factor float64) error {
	return Saturate32MaskedInPlace(src, factor, nil)
}

// Saturate32MaskedInPlace is Saturate32InPlace weighted by m.
func Saturate32MaskedInPlace(src *pixbuf.Packed3Alpha, factor float64, m *mask.Mask) error {
	return Transform(src, src, factor, m)
}

// === Surfaces ===

// SaturateSurface24 returns a new 24-bit surface.
//
// Parameters:
//   - img: A *pixbuf.RGB24, or an *image.NRGBA whose alpha is dropped from
//     the result. It is not modified.
//   - factor: Saturation change in [-1, 1].
//
// Returns:
//   - *pixbuf.RGB24: A new image anchored at the origin with img's size.
//   - error: ErrFactorRange for a bad factor, or pixbuf.ErrShape for a nil
//     or malformed image or any other image type (see pixbuf.NewSurface).
func SaturateSurface24(img image.Image, factor float64) (*pixbuf.RGB24, error) {
	return SaturateSurface24Masked(img, factor, nil)
}

// SaturateSurface24Masked is SaturateSurface24 weighted by m.
//
// # Errors
//
// As SaturateSurface24, plus pixbuf.ErrShape when m does not match the size
// of img.Bounds().
func SaturateSurface24Masked(img image.Image, factor float64, m *mask.Mask) (*pixbuf.RGB24, error) {
	src, err := prepareSurface(img, factor, m, false)
	if err != nil {
		return nil, err
	}
	w, h := src.Dims()
	out := pixbuf.NewRGB24(image.Rect(0, 0, w, h))
	dst, err := pixbuf.NewSurface(out)
	if err != nil {
		return nil, err
	}
	if err := Transform(dst, src, factor, m); err != nil {
		return nil, err
	}
	return out, nil
}

// SaturateSurface24InPlace rewrites the color channels of img. Alpha, if
// present, is not touched.
//
// Errors are those of SaturateSurface24; on error img is unchanged.
func SaturateSurface24InPlace(img image.Image, factor float64) error {
	return SaturateSurface24MaskedInPlace(img, factor, nil)
}

// SaturateSurface24MaskedInPlace is SaturateSurface24InPlace weighted by m.
func SaturateSurface24MaskedInPlace(img image.Image, factor float64, m *mask.Mask) error {
	src, err := prepareSurface(img, factor, m, false)
	if err != nil {
		return err
	}
	return Transform(src, src, factor, m)
}

// SaturateSurface32 returns a new 32-bit surface with alpha copied unchanged.
//
// Parameters:
//   - img: An *image.NRGBA. It is not modified.
//   - factor: Saturation change in [-1, 1].
//
// Returns:
//   - *image.NRGBA: A new image anchored at the origin with img's size.
//   - error: ErrFactorRange for a bad factor, or pixbuf.ErrShape for a nil
//     or malformed image, a 24-bit *pixbuf.RGB24, or any other image type.
func SaturateSurface32(img image.Image, factor float64) (*image.NRGBA, error) {
	return SaturateSurface32Masked(img, factor, nil)
}

// SaturateSurface32Masked is SaturateSurface32 weighted by m.
//
// # Errors
//
// As SaturateSurface32, plus pixbuf.ErrShape when m does not match the size
// of img.Bounds().
func SaturateSurface32Masked(img image.Image, factor float64, m *mask.Mask) (*image.NRGBA, error) {
	src, err := prepareSurface(img, factor, m, true)
	if err != nil {
		return nil, err
	}
	w, h := src.Dims()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	dst, err := pixbuf.NewSurface(out)
	if err != nil {
		return nil, err
	}
	if err := Transform(dst, src, factor, m); err != nil {
		return nil, err
	}
	return out, nil
}

// SaturateSurface32InPlace rewrites the color channels of a 32-bit surface.
//
// Errors are those of SaturateSurface32; on error img is unchanged.
func SaturateSurface32InPlace(img image.Image, factor float64) error {
	return SaturateSurface32MaskedInPlace(img, factor, nil)
}

// SaturateSurface32MaskedInPlace is SaturateSurface32InPlace weighted by m.
func SaturateSurface32MaskedInPlace(img image.Image, factor float64, m *mask.Mask) error {
	src, err := prepareSurface(img, factor, m, true)
	if err != nil {
		return err
	}
	return Transform(src, src, factor, m)
}

// === Flat buffers ===

// SaturateBuffer returns a new flat buffer of the same geometry.
//
// Parameters:
//   - buf: Row-major interleaved RGB with explicit Width and Height. It is
//     not modified.
//   - factor: Saturation change in [-1, 1].
//   - m: Optional per-pixel weights; nil applies factor everywhere.
//
// Returns:
//   - *pixbuf.Flat: A new buffer with buf's geometry.
//   - error: ErrFactorRange for a bad factor, or pixbuf.ErrShape when buf is
//     nil, len(buf.Pix) is not 3*Width*Height, or m does not match.
func SaturateBuffer(buf *pixbuf.Flat, factor float64, m *mask.Mask) (*pixbuf.Flat, error) {
	if err := prepare(buf, factor, m); err != nil {
		return nil, err
	}
	out := pixbuf.NewFlat(buf.Width, buf.Height)
	if err := Transform(out, buf, factor, m); err != nil {
		return nil, err
	}
	return out, nil
}

// SaturateBufferInPlace rewrites buf. m may be nil.
//
// Errors are those of SaturateBuffer; on error buf is unchanged.
func SaturateBufferInPlace(buf *pixbuf.Flat, factor float64, m *mask.Mask) error {
	return Transform(buf, buf, factor, m)
}
