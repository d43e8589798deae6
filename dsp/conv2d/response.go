package conv2d

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// FrequencyResponse returns |FFT(Pad(k, height, width))|, the gain the kernel
// applies to each spatial frequency of a height×width plane. Bin (0, 0) is the DC gain.
func FrequencyResponse(k *Kernel, height, width int) (*raster.Plane, error) {
	c, err := NewConvolver(height, width)
	if err != nil {
		return nil, err
	}

	freq, err := c.KernelSpectrum(k)
	if err != nil {
		return nil, err
	}

	re := make([]float64, len(freq.Data))
	im := make([]float64, len(freq.Data))
	for i, v := range freq.Data {
		re[i] = real(v)
		im[i] = imag(v)
	}

	out := raster.NewPlane(height, width)
	vecmath.Magnitude(out.Data, re, im)
	return out, nil
}
