package conv2d

import (
	"fmt"
	"math"
	"sort"
)

// Identity returns the 1×1 kernel [1]. Convolving with it is a no-op.
func Identity() *Kernel {
	return MustKernel([][]float64{{1}})
}

// Sharpen returns the 3×3 sharpening kernel
//
//	 0 -1  0
//	-1  5 -1
//	 0 -1  0
func Sharpen() *Kernel {
	return MustKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
}

// Laplacian returns the 4-neighbour Laplacian. Its weights sum to zero.
func Laplacian() *Kernel {
	return MustKernel([][]float64{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	})
}

// EdgeDetect returns the 8-neighbour outline kernel.
func EdgeDetect() *Kernel {
	return MustKernel([][]float64{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	})
}

// Box returns an n×n averaging kernel with every weight equal to 1/n².
func Box(n int) (*Kernel, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: box size must be positive, got %d", ErrInvalidKernelSpec, n)
	}
	w := make([]float64, n*n)
	avg := 1 / float64(n*n)
	for i := range w {
		w[i] = avg
	}
	return &Kernel{height: n, width: n, weights: w}, nil
}

// Gaussian returns a size×size Gaussian kernel with standard deviation sigma,
// centred on the middle tap and scaled so its weights sum to one.
func Gaussian(size int, sigma float64) (*Kernel, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: gaussian size must be positive, got %d", ErrInvalidKernelSpec, size)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: gaussian sigma must be positive and finite, got %v", ErrInvalidKernelSpec, sigma)
	}

	center := float64(size-1) / 2
	denom := 2 * sigma * sigma
	w := make([]float64, size*size)

	var sum float64
	for i := 0; i < size; i++ {
		dy := float64(i) - center
		for j := 0; j < size; j++ {
			dx := float64(j) - center
			v := math.Exp(-(dx*dx + dy*dy) / denom)
			w[i*size+j] = v
			sum += v
		}
	}
	for i := range w {
		w[i] /= sum
	}
	return &Kernel{height: size, width: size, weights: w}, nil
}

type presetEntry struct {
	build func(size int, sigma float64) (*Kernel, error)
}

func fixed(k func() *Kernel) presetEntry {
	return presetEntry{build: func(int, float64) (*Kernel, error) { return k(), nil }}
}

var presets = map[string]presetEntry{
	"identity":  fixed(Identity),
	"sharpen":   fixed(Sharpen),
	"laplacian": fixed(Laplacian),
	"edge":      fixed(EdgeDetect),
	"box": {build: func(size int, _ float64) (*Kernel, error) {
		return Box(size)
	}},
	"gaussian": {build: func(size int, sigma float64) (*Kernel, error) {
		return Gaussian(size, sigma)
	}},
}

// Preset builds a named kernel. size and sigma are used by the
// parametric presets ("box" uses size, "gaussian" uses both).
func Preset(name string, size int, sigma float64) (*Kernel, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidKernelSpec, name)
	}
	return p.build(size, sigma)
}

// PresetNames returns the names accepted by Preset in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
