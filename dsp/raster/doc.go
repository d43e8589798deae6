// Package raster provides the pixel and sample containers used by the 2D
// convolution engine, together with the channel splitter and merger.
//
// A [Raster] is an interleaved 8-bit RGB image of fixed height and width.
// A [Plane] is a single-channel grid of float64 samples with the same shape.
//
//	planes, err := raster.Split(img)      // three H×W planes, R, G, B
//	out, err := raster.Merge(r, g, b, raster.OverflowWrap)
//
// # Overflow
//
// Merge coerces each sample to 8 bits. [OverflowWrap] keeps the low 8 bits of
// the rounded value, so -1 becomes 255 and 256 becomes 0. [OverflowClamp]
// saturates to [0, 255] instead. Wrap is the default used by the conv2d
// pipeline because it reproduces the reference output bit for bit.
//
// # Errors
//
// Every dimension problem is reported as a [*ShapeError], which matches
// [ErrShape] under errors.Is.
package raster
