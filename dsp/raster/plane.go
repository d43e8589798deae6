package raster

import "fmt"

// Plane is a single-channel grid of samples stored row-major.
// Sample (i, j) is Data[i*Width+j].
type Plane struct {
	Height int
	Width  int
	Data   []float64
}

// NewPlane returns a zero-filled Plane.
// Negative dimensions are treated as zero.
func NewPlane(height, width int) *Plane {
	height = max(height, 0)
	width = max(width, 0)
	return &Plane{
		Height: height,
		Width:  width,
		Data:   make([]float64, height*width),
	}
}

// PlaneFromRows copies a rectangular [][]float64 into a new Plane.
func PlaneFromRows(rows [][]float64) (*Plane, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	p := NewPlane(height, width)
	for i, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{
				Op:   "plane",
				Want: fmt.Sprintf("row %d of width %d", i, width),
				Got:  fmt.Sprintf("width %d", len(row)),
			}
		}
		copy(p.Row(i), row)
	}
	return p, nil
}

// At returns sample (i, j).
func (p *Plane) At(i, j int) float64 {
	return p.Data[i*p.Width+j]
}

// Set stores v at (i, j).
func (p *Plane) Set(i, j int, v float64) {
	p.Data[i*p.Width+j] = v
}

// Row returns row i as a sub-slice of Data.
func (p *Plane) Row(i int) []float64 {
	return p.Data[i*p.Width : (i+1)*p.Width]
}

// Rows returns a copy of the plane as [][]float64.
func (p *Plane) Rows() [][]float64 {
	rows := make([][]float64, p.Height)
	for i := range rows {
		rows[i] = append([]float64(nil), p.Row(i)...)
	}
	return rows
}

// SameShape reports whether p and q have equal dimensions.
func (p *Plane) SameShape(q *Plane) bool {
	return p.Height == q.Height && p.Width == q.Width
}

// Validate checks that Data holds exactly Height*Width samples.
// A nil plane is reported as a ShapeError.
func (p *Plane) Validate() error {
	if p == nil {
		return &ShapeError{Op: "plane", Want: "plane", Got: "nil"}
	}
	if p.Height < 0 || p.Width < 0 || len(p.Data) != p.Height*p.Width {
		return &ShapeError{
			Op:   "plane",
			Want: fmt.Sprintf("%d samples for %s", max(p.Height, 0)*max(p.Width, 0), dims(p.Height, p.Width)),
			Got:  fmt.Sprintf("%d samples", len(p.Data)),
		}
	}
	return nil
}

// Clone returns a deep copy of p.
func (p *Plane) Clone() *Plane {
	data := make([]float64, len(p.Data))
	copy(data, p.Data)
	return &Plane{Height: p.Height, Width: p.Width, Data: data}
}
