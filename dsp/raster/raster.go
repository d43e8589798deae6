package raster

import (
	"fmt"
	"image"
)

// Channels is the number of interleaved samples per pixel.
const Channels = 3

// Raster is an interleaved 8-bit RGB image stored row-major.
// Pixel (i, j) occupies Pix[3*(i*Width+j) : 3*(i*Width+j)+3].
//
// Height and Width are fixed at construction.
type Raster struct {
	Height int
	Width  int
	Pix    []uint8
}

// New returns a black Raster of the given size.
// Negative dimensions are treated as zero.
func New(height, width int) *Raster {
	height = max(height, 0)
	width = max(width, 0)
	return &Raster{
		Height: height,
		Width:  width,
		Pix:    make([]uint8, height*width*Channels),
	}
}

// FromPix wraps pix as a Raster without copying.
// It fails with a ShapeError unless len(pix) == 3*height*width.
func FromPix(height, width int, pix []uint8) (*Raster, error) {
	if height < 0 || width < 0 {
		return nil, &ShapeError{Op: "frompix", Want: "non-negative dimensions", Got: dims(height, width)}
	}
	if want := height * width * Channels; len(pix) != want {
		return nil, &ShapeError{
			Op:   "frompix",
			Want: fmt.Sprintf("%d samples", want),
			Got:  fmt.Sprintf("%d samples", len(pix)),
		}
	}
	return &Raster{Height: height, Width: width, Pix: pix}, nil
}

// FromRows copies a row-major slice of pixel triples into a new Raster.
// Every row must have the same length as the first one.
func FromRows(rows [][][Channels]uint8) (*Raster, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	r := New(height, width)
	for i, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{
				Op:   "fromrows",
				Want: fmt.Sprintf("row %d of width %d", i, width),
				Got:  fmt.Sprintf("width %d", len(row)),
			}
		}
		copy(r.Pix[i*width*Channels:], pixelsToBytes(row))
	}
	return r, nil
}

func pixelsToBytes(row [][Channels]uint8) []uint8 {
	out := make([]uint8, 0, len(row)*Channels)
	for _, px := range row {
		out = append(out, px[0], px[1], px[2])
	}
	return out
}

// Validate checks that Pix holds exactly Height*Width pixels.
// A nil raster is reported as a ShapeError.
func (r *Raster) Validate() error {
	if r == nil {
		return &ShapeError{Op: "validate", Want: "raster", Got: "nil"}
	}
	if r.Height < 0 || r.Width < 0 {
		return &ShapeError{Op: "validate", Want: "non-negative dimensions", Got: dims(r.Height, r.Width)}
	}
	if want := r.Height * r.Width * Channels; len(r.Pix) != want {
		return &ShapeError{
			Op:   "validate",
			Want: fmt.Sprintf("%d samples for %s", want, dims(r.Height, r.Width)),
			Got:  fmt.Sprintf("%d samples", len(r.Pix)),
		}
	}
	return nil
}

// At returns the pixel at row i, column j.
func (r *Raster) At(i, j int) [Channels]uint8 {
	o := (i*r.Width + j) * Channels
	return [Channels]uint8{r.Pix[o], r.Pix[o+1], r.Pix[o+2]}
}

// Set stores px at row i, column j.
func (r *Raster) Set(i, j int, px [Channels]uint8) {
	o := (i*r.Width + j) * Channels
	r.Pix[o], r.Pix[o+1], r.Pix[o+2] = px[0], px[1], px[2]
}

// Fill sets every pixel to px.
func (r *Raster) Fill(px [Channels]uint8) {
	for o := 0; o+Channels <= len(r.Pix); o += Channels {
		r.Pix[o], r.Pix[o+1], r.Pix[o+2] = px[0], px[1], px[2]
	}
}

// Rows returns a copy of the raster as row-major pixel triples.
func (r *Raster) Rows() [][][Channels]uint8 {
	rows := make([][][Channels]uint8, r.Height)
	for i := range rows {
		rows[i] = make([][Channels]uint8, r.Width)
		for j := range rows[i] {
			rows[i][j] = r.At(i, j)
		}
	}
	return rows
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.Pix))
	copy(pix, r.Pix)
	return &Raster{Height: r.Height, Width: r.Width, Pix: pix}
}

// Bounds returns the raster extent as an image rectangle anchored at the origin.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// Equal reports whether r and other have the same shape and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r.Height != other.Height || r.Width != other.Width || len(r.Pix) != len(other.Pix) {
		return false
	}
	for i := range r.Pix {
		if r.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
