package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components and straight
// (non-premultiplied) alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// This is the space the saturation transform operates in: the transform
// scales S and leaves H and L in place.
type HSLColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-1 (0=gray, 1=vivid)
	L float64 `json:"l"` // Lightness: 0-1 (0=black, 0.5=normal, 1=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// Coordinates are relative to the image bounds origin. Colors are read as
// straight alpha, so a half-transparent red reports R=255, not 128.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)

	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  rgbToHSL(c.R, c.G, c.B),
	}, nil
}

// rgbToHSL converts 8-bit RGB values to HSL color space.
func rgbToHSL(r, g, b uint8) HSLColor {
	h, s, l := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hsl()
	return HSLColor{H: h, S: s, L: l}
}
