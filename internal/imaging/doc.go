// Package imaging provides the host-side image handling around the
// saturation kernel: loading and caching decoded files, describing them,
// converting them to kernel surfaces, scaling mask images to a target size,
// sampling colors and encoding results.
//
// The kernel itself (packages pixbuf, mask and saturation) never decodes or
// encodes files; everything that touches the file system or an image codec
// lives here.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached images are shared
// and must not be mutated; LoadSurface always returns a private copy that
// the kernel may rewrite in place.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with straight alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-1), Lightness (0-1)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Images exceeding the configured pixel limit
//   - File I/O errors during image loading
//   - Encoding errors during image output
package imaging
