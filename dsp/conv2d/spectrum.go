package conv2d

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// Spectrum is the 2D discrete Fourier transform of a Plane, stored row-major.
type Spectrum struct {
	Height int
	Width  int
	Data   []complex128
}

// At returns coefficient (i, j).
func (s *Spectrum) At(i, j int) complex128 {
	return s.Data[i*s.Width+j]
}

// Mul returns the element-wise product of s and other.
func (s *Spectrum) Mul(other *Spectrum) (*Spectrum, error) {
	if s.Height != other.Height || s.Width != other.Width {
		return nil, raster.NewShapeError("spectrum", s.Height, s.Width, other.Height, other.Width)
	}
	out := &Spectrum{Height: s.Height, Width: s.Width, Data: make([]complex128, len(s.Data))}
	for i := range out.Data {
		out.Data[i] = s.Data[i] * other.Data[i]
	}
	return out, nil
}

// axisPlan transforms one row or column in place.
type axisPlan interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// unitPlan is the transform of length 1, which is the identity.
type unitPlan struct{}

func (unitPlan) Forward(dst, src []complex128) error {
	copy(dst, src)
	return nil
}

func (unitPlan) Inverse(dst, src []complex128) error {
	copy(dst, src)
	return nil
}

func newAxisPlan(n int) (axisPlan, error) {
	if n == 1 {
		return unitPlan{}, nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("conv2d: failed to create FFT plan of size %d: %w", n, err)
	}
	return plan, nil
}

// Convolver holds the FFT plans and scratch space for one plane size.
// The 2D transform runs over rows first, then over columns.
// The forward transform is un-normalised; the inverse scales by 1/(H*W).
//
// A Convolver is not safe for concurrent use.
type Convolver struct {
	height int
	width  int

	rowPlan axisPlan
	colPlan axisPlan

	column []complex128
}

// NewConvolver prepares transforms for height×width planes.
func NewConvolver(height, width int) (*Convolver, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyInput
	}

	rowPlan, err := newAxisPlan(width)
	if err != nil {
		return nil, err
	}

	colPlan := rowPlan
	if height != width {
		colPlan, err = newAxisPlan(height)
		if err != nil {
			return nil, err
		}
	}

	return &Convolver{
		height:  height,
		width:   width,
		rowPlan: rowPlan,
		colPlan: colPlan,
		column:  make([]complex128, height),
	}, nil
}

// Height returns the plane height the convolver was built for.
func (c *Convolver) Height() int { return c.height }

// Width returns the plane width the convolver was built for.
func (c *Convolver) Width() int { return c.width }

// Forward returns the 2D spectrum of p.
func (c *Convolver) Forward(p *raster.Plane) (*Spectrum, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Height != c.height || p.Width != c.width {
		return nil, raster.NewShapeError("forward", c.height, c.width, p.Height, p.Width)
	}

	data := make([]complex128, len(p.Data))
	for i, v := range p.Data {
		data[i] = complex(v, 0)
	}
	if err := c.transform(data, false); err != nil {
		return nil, err
	}
	return &Spectrum{Height: c.height, Width: c.width, Data: data}, nil
}

// Inverse returns the real part of the inverse 2D transform of s, unrounded.
// s is left untouched.
func (c *Convolver) Inverse(s *Spectrum) (*raster.Plane, error) {
	if s.Height != c.height || s.Width != c.width || len(s.Data) != c.height*c.width {
		return nil, raster.NewShapeError("inverse", c.height, c.width, s.Height, s.Width)
	}

	data := make([]complex128, len(s.Data))
	copy(data, s.Data)
	if err := c.transform(data, true); err != nil {
		return nil, err
	}

	out := raster.NewPlane(c.height, c.width)
	for i, v := range data {
		out.Data[i] = real(v)
	}
	return out, nil
}

// KernelSpectrum pads k to the convolver size and returns its spectrum.
func (c *Convolver) KernelSpectrum(k *Kernel) (*Spectrum, error) {
	padded, err := Pad(k, c.height, c.width)
	if err != nil {
		return nil, err
	}
	return c.Forward(padded)
}

// transform runs the separable 2D FFT over data in place.
func (c *Convolver) transform(data []complex128, inverse bool) error {
	run := func(p axisPlan, buf []complex128) error {
		if inverse {
			return p.Inverse(buf, buf)
		}
		return p.Forward(buf, buf)
	}

	for i := 0; i < c.height; i++ {
		row := data[i*c.width : (i+1)*c.width]
		if err := run(c.rowPlan, row); err != nil {
			return fmt.Errorf("conv2d: row transform failed: %w", err)
		}
	}

	for j := 0; j < c.width; j++ {
		for i := 0; i < c.height; i++ {
			c.column[i] = data[i*c.width+j]
		}
		if err := run(c.colPlan, c.column); err != nil {
			return fmt.Errorf("conv2d: column transform failed: %w", err)
		}
		for i := 0; i < c.height; i++ {
			data[i*c.width+j] = c.column[i]
		}
	}
	return nil
}
