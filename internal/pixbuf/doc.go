// Package pixbuf provides uniform pixel access over the buffer layouts the
// saturation kernel accepts.
//
// # Layouts
//
// Four physical layouts are supported:
//   - Packed3: a 3-D array indexed [x][y][channel], stored as
//     Pix[(x*Height+y)*3+c]. This is the column-major layout surface arrays use.
//   - Packed3Alpha: a Packed3 plus a co-indexed AlphaPlane (Pix[x*Height+y]).
//   - Flat: a row-major interleaved RGB buffer, Pix[(y*Width+x)*3+c], whose
//     geometry must be supplied explicitly since several (width, height) pairs
//     share the same length.
//   - Surface: an opaque handle over an in-memory Go image, either the 24-bit
//     RGB24 type defined here or a 32-bit *image.NRGBA.
//
// Every layout implements Reader and Buffer. Layouts carrying alpha also
// implement AlphaReader and AlphaWriter; use AlphaOf to resolve optional alpha.
//
// # Coordinates
//
// All coordinates are 0-based with (0,0) at the top-left, X increasing
// rightward and Y increasing downward, regardless of the memory order.
// Width is always the X extent and Height the Y extent.
//
// # Ownership
//
// Views never copy. Clone is the only operation that allocates, and it is used
// when a transform materialises a new output. Buffers are not safe for
// concurrent mutation; callers own synchronization.
//
// # Errors
//
// Structural problems (wrong length, empty geometry, mismatched companion
// buffers, unsupported image types) are reported as errors wrapping ErrShape.
package pixbuf
