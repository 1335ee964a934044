// Package saturation implements the per-pixel saturation transform.
//
// Every entry point validates its arguments completely before touching a
// pixel: a factor outside [-1, 1] fails with ErrFactorRange, and malformed
// buffers, mismatched RGB/alpha planes or a mask of the wrong size fail with
// pixbuf.ErrShape. A failed call leaves every buffer byte-for-byte unchanged.
//
// # Entry points
//
// The exported functions cover each combination of bit depth (24 or 32),
// input shape (arrays, surfaces, flat buffer), masking and mutation:
//
//	Saturate24, Saturate24Masked, Saturate24InPlace, Saturate24MaskedInPlace
//	Saturate32, Saturate32Masked, Saturate32InPlace, Saturate32MaskedInPlace
//	SaturateSurface24[Masked][InPlace], SaturateSurface32[Masked][InPlace]
//	SaturateBuffer, SaturateBufferInPlace
//
// All of them share one engine. A nil *mask.Mask means no mask. Copy variants
// allocate the output once and return it; in-place variants rewrite the
// caller's buffer and assume exclusive access for the duration of the call.
//
// # Concurrency
//
// The pass is split across goroutines over disjoint line ranges. No pixel
// depends on another, so results are identical for any GOMAXPROCS. Calls are
// independent; concurrent calls are safe when they share no buffers.
package saturation
