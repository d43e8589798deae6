package raster

import (
	"fmt"
	"math"
)

// Overflow selects how Merge maps samples outside [0, 255] to bytes.
type Overflow int

const (
	// OverflowWrap keeps the low 8 bits of the rounded sample (256 -> 0, -1 -> 255).
	OverflowWrap Overflow = iota

	// OverflowClamp saturates the rounded sample to [0, 255].
	OverflowClamp
)

// String returns the lower-case name of the mode.
func (o Overflow) String() string {
	switch o {
	case OverflowWrap:
		return "wrap"
	case OverflowClamp:
		return "clamp"
	default:
		return fmt.Sprintf("overflow(%d)", int(o))
	}
}

// Split decomposes r into three planes in channel order, so that
// planes[c].At(i, j) == float64(r.At(i, j)[c]).
func Split(r *Raster) ([Channels]*Plane, error) {
	var planes [Channels]*Plane
	if err := r.Validate(); err != nil {
		return planes, err
	}

	for c := range planes {
		planes[c] = NewPlane(r.Height, r.Width)
	}

	n := r.Height * r.Width
	for k := 0; k < n; k++ {
		o := k * Channels
		planes[0].Data[k] = float64(r.Pix[o])
		planes[1].Data[k] = float64(r.Pix[o+1])
		planes[2].Data[k] = float64(r.Pix[o+2])
	}
	return planes, nil
}

// SplitRows is Split for the nested-slice interchange form.
// It reports non-rectangular input as a ShapeError.
func SplitRows(rows [][][Channels]uint8) ([Channels]*Plane, error) {
	r, err := FromRows(rows)
	if err != nil {
		var planes [Channels]*Plane
		return planes, err
	}
	return Split(r)
}

// Merge interleaves three equally shaped planes into a new Raster.
// Each sample is rounded half to even and then coerced to a byte according to mode.
func Merge(r, g, b *Plane, mode Overflow) (*Raster, error) {
	for _, p := range [...]*Plane{r, g, b} {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	if !r.SameShape(g) {
		return nil, NewShapeError("merge", r.Height, r.Width, g.Height, g.Width)
	}
	if !r.SameShape(b) {
		return nil, NewShapeError("merge", r.Height, r.Width, b.Height, b.Width)
	}

	out := New(r.Height, r.Width)
	toByte := wrapByte
	if mode == OverflowClamp {
		toByte = clampByte
	}

	for k := range r.Data {
		o := k * Channels
		out.Pix[o] = toByte(r.Data[k])
		out.Pix[o+1] = toByte(g.Data[k])
		out.Pix[o+2] = toByte(b.Data[k])
	}
	return out, nil
}

// MergeRows is Merge returning the nested-slice interchange form.
func MergeRows(r, g, b *Plane, mode Overflow) ([][][Channels]uint8, error) {
	out, err := Merge(r, g, b, mode)
	if err != nil {
		return nil, err
	}
	return out.Rows(), nil
}

// wrapByte truncates to the low 8 bits. Non-finite input is a known limitation.
func wrapByte(v float64) uint8 {
	return uint8(int64(math.RoundToEven(v)))
}

func clampByte(v float64) uint8 {
	v = math.RoundToEven(v)
	switch {
	case v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(v)
	}
}
