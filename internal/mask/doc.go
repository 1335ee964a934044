// Package mask provides per-pixel weight grids that modulate how strongly the
// saturation transform applies at each position.
//
// A Mask holds one float32 weight per pixel, always within [0.0, 1.0]. The
// invariant is enforced at construction and on Set, so any *Mask obtained
// from this package can be used directly as a multiplicative blend weight.
// A nil *Mask means "no mask", equivalent to all ones.
//
// Builders derive a mask from any pixbuf.Reader:
//   - FromGrayscale: mean of the three channels, a continuous gradient
//   - FromLuminance: ITU-R BT.601 luma, a continuous gradient
//   - FromBlackAndWhite: 1 where luma reaches BWThreshold, else 0
//   - FromAlpha: the alpha channel; fails with pixbuf.ErrShape without one
//
// Masks are sized width x height with width the X extent, matching the image
// they were built from.
package mask
