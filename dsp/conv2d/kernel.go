package conv2d

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// Errors returned by kernel and convolution functions.
var (
	ErrEmptyInput        = errors.New("conv2d: empty input")
	ErrEmptyKernel       = errors.New("conv2d: empty kernel")
	ErrInvalidKernelSpec = errors.New("conv2d: invalid kernel specification")
)

// Kernel is an immutable kh×kw matrix of real weights stored row-major.
type Kernel struct {
	height  int
	width   int
	weights []float64
}

// NewKernel copies a rectangular matrix into a Kernel.
func NewKernel(rows [][]float64) (*Kernel, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyKernel
	}
	width := len(rows[0])
	weights := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, &raster.ShapeError{
				Op:   "kernel",
				Want: fmt.Sprintf("row %d of width %d", i, width),
				Got:  fmt.Sprintf("width %d", len(row)),
			}
		}
		weights = append(weights, row...)
	}
	return &Kernel{height: len(rows), width: width, weights: weights}, nil
}

// NewKernelFromWeights copies a row-major weight slice of size height*width.
func NewKernelFromWeights(height, width int, weights []float64) (*Kernel, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyKernel
	}
	if len(weights) != height*width {
		return nil, &raster.ShapeError{
			Op:   "kernel",
			Want: fmt.Sprintf("%d weights", height*width),
			Got:  fmt.Sprintf("%d weights", len(weights)),
		}
	}
	return &Kernel{height: height, width: width, weights: append([]float64(nil), weights...)}, nil
}

// MustKernel is NewKernel for literals known to be valid. It panics on error.
func MustKernel(rows [][]float64) *Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Height returns the number of kernel rows.
func (k *Kernel) Height() int { return k.height }

// Width returns the number of kernel columns.
func (k *Kernel) Width() int { return k.width }

// At returns weight (i, j).
func (k *Kernel) At(i, j int) float64 {
	return k.weights[i*k.width+j]
}

// Weights returns a copy of the row-major weights.
func (k *Kernel) Weights() []float64 {
	return append([]float64(nil), k.weights...)
}

// Rows returns a copy of the kernel as [][]float64.
func (k *Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.height)
	for i := range rows {
		rows[i] = append([]float64(nil), k.weights[i*k.width:(i+1)*k.width]...)
	}
	return rows
}

// Sum returns the sum of all weights, the gain of the kernel on a flat image.
func (k *Kernel) Sum() float64 {
	var s float64
	for _, w := range k.weights {
		s += w
	}
	return s
}

// String formats the kernel in the syntax accepted by ParseKernel.
func (k *Kernel) String() string {
	var sb strings.Builder
	for i := 0; i < k.height; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j := 0; j < k.width; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", k.At(i, j))
		}
	}
	return sb.String()
}

// checkFit reports a ShapeError when k does not fit inside a height×width plane.
func checkFit(op string, height, width int, k *Kernel) error {
	if k == nil || len(k.weights) == 0 {
		return ErrEmptyKernel
	}
	if k.height > height || k.width > width {
		return &raster.ShapeError{
			Op:   op,
			Want: fmt.Sprintf("kernel no larger than %dx%d", height, width),
			Got:  fmt.Sprintf("kernel %dx%d", k.height, k.width),
		}
	}
	return nil
}
