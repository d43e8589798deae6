// Package conv2d applies 2D convolution kernels to RGB rasters by
// multiplication in the frequency domain.
//
// The engine splits a [raster.Raster] into three planes, convolves each plane
// with the same [Kernel], and merges the results back into a new raster:
//
//	k := conv2d.Sharpen()
//	out, err := conv2d.Apply(img, k)
//
// # Circular convolution
//
// The kernel is zero-padded to the plane size with its weights placed at the
// top-left origin, not centred. Both are transformed with an un-normalised
// forward 2D FFT, multiplied element-wise and transformed back. The result is
// a circular convolution: contributions that fall off one edge wrap around to
// the opposite edge, and the output is shifted by the kernel size relative to
// a centred convolution. Real parts are rounded half to even.
//
//	out[i][j] = Σ k[u][v] · in[(i-u) mod H][(j-v) mod W]
//
// [DirectCircular] computes the same sum in the spatial domain and is useful
// as a reference for small inputs.
//
// # Concurrency
//
// The three channel convolutions run in separate goroutines by default and
// are joined before the merge. Use [WithParallel] to run them sequentially.
// A [Convolver] owns FFT scratch space and must not be shared between
// goroutines; [Pipeline] takes one per channel from its [ConvolverPool].
//
// # Known limitations
//
// Non-finite kernel weights and very large planes are not guarded; they
// propagate NaN or lose precision in the FFT without an error.
package conv2d
