package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/saturation-mcp/internal/mask"
	"github.com/ironsheep/saturation-mcp/internal/pixbuf"
)

// Surface depths accepted by the saturation kernel.
const (
	Depth24 = 24
	Depth32 = 32
)

// MaskKind names a mask builder.
type MaskKind string

// Mask builders, see package mask.
const (
	MaskGrayscale  MaskKind = "grayscale"
	MaskLuminance  MaskKind = "luminance"
	MaskBlackWhite MaskKind = "bw"
	MaskAlpha      MaskKind = "alpha"
)

// MaskKinds lists every accepted MaskKind.
var MaskKinds = []MaskKind{MaskGrayscale, MaskLuminance, MaskBlackWhite, MaskAlpha}

// alphaCapable reports whether img's pixel type can carry alpha.
func alphaCapable(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK, *pixbuf.RGB24:
		return false
	}
	return true
}

// HasAlpha reports whether img has an alpha channel in use, that is, at
// least one pixel that is not fully opaque.
func HasAlpha(img image.Image) bool {
	if !alphaCapable(img) {
		return false
	}
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}

// DefaultDepth returns Depth32 for images with alpha and Depth24 otherwise.
func DefaultDepth(img image.Image) int {
	if HasAlpha(img) {
		return Depth32
	}
	return Depth24
}

// LoadSurface returns a private copy of img as the kernel surface type for
// depth: *pixbuf.RGB24 for 24, *image.NRGBA for 32.
func LoadSurface(img image.Image, depth int) (image.Image, error) {
	switch depth {
	case Depth24:
		return pixbuf.ToRGB24(img), nil
	case Depth32:
		return pixbuf.ToNRGBA(img), nil
	}
	return nil, fmt.Errorf("unsupported depth %d, want %d or %d", depth, Depth24, Depth32)
}

// FitTo scales img to exactly width x height with a Lanczos filter. Images
// already at that size are returned as is.
func FitTo(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// BuildMask derives a width x height mask from img, scaling img first when
// its size differs. An alpha mask from a pixel type without alpha (gray,
// YCbCr, RGB24) fails with pixbuf.ErrShape.
func BuildMask(img image.Image, kind MaskKind, width, height int) (*mask.Mask, error) {
	fitted := FitTo(img, width, height)

	var surf image.Image
	if alphaCapable(img) {
		surf = pixbuf.ToNRGBA(fitted)
	} else {
		surf = pixbuf.ToRGB24(fitted)
	}
	src, err := pixbuf.NewSurface(surf)
	if err != nil {
		return nil, err
	}

	switch kind {
	case MaskGrayscale, "":
		return mask.FromGrayscale(src)
	case MaskLuminance:
		return mask.FromLuminance(src)
	case MaskBlackWhite:
		return mask.FromBlackAndWhite(src)
	case MaskAlpha:
		return mask.FromAlpha(src)
	}
	return nil, fmt.Errorf("unknown mask kind %q", kind)
}

// MaskImage renders m as an 8-bit grayscale image, weight 1 as white.
func MaskImage(m *mask.Mask) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+m.Width()]
		for x := range row {
			row[x] = uint8(m.At(x, y)*255 + 0.5)
		}
	}
	return img
}

// EncodePNG encodes img as a base64 PNG string.
func EncodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Save writes img to path, choosing the encoder from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
