package saturation

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Factor limits.
const (
	MinFactor = -1.0
	MaxFactor = 1.0
)

// Shift scales an HSL saturation s in [0, 1] by (1 + factor) and clamps the
// result to [0, 1]. Negative factors move toward gray, positive ones away.
func Shift(s, factor float64) float64 {
	return math.Min(1, math.Max(0, s*(1+factor)))
}

// Apply returns the 8-bit color (r, g, b) with its HSL saturation shifted by
// factor. The factor must already be known to lie in [-1, 1].
//
// Channels are clamped to [0, 255] and rounded to nearest. A zero factor and
// achromatic input are returned unchanged.
func Apply(r, g, b uint8, factor float64) (uint8, uint8, uint8) {
	if factor == 0 {
		return r, g, b
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	if s == 0 {
		return r, g, b
	}
	return colorful.Hsl(h, Shift(s, factor), l).Clamped().RGB255()
}
