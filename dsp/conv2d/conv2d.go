package conv2d

import (
	"math"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// Pad embeds k in a zero-filled height×width plane with the kernel weights
// at the top-left origin.
func Pad(k *Kernel, height, width int) (*raster.Plane, error) {
	if err := checkFit("pad", height, width, k); err != nil {
		return nil, err
	}
	out := raster.NewPlane(height, width)
	for i := 0; i < k.height; i++ {
		copy(out.Row(i), k.weights[i*k.width:(i+1)*k.width])
	}
	return out, nil
}

// Convolve computes the circular convolution of p with k through the 2D FFT
// and returns a new plane of rounded values. Values are not clamped.
//
// It fails with a *raster.ShapeError if k is taller or wider than p.
func Convolve(p *raster.Plane, k *Kernel) (*raster.Plane, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkFit("convolve", p.Height, p.Width, k); err != nil {
		return nil, err
	}

	c, err := NewConvolver(p.Height, p.Width)
	if err != nil {
		return nil, err
	}

	kernelFreq, err := c.KernelSpectrum(k)
	if err != nil {
		return nil, err
	}
	return c.ConvolveSpectrum(p, kernelFreq)
}

// ConvolveSpectrum convolves p with a kernel already in the frequency domain.
// kernelFreq is only read, so one spectrum may serve several convolvers.
func (c *Convolver) ConvolveSpectrum(p *raster.Plane, kernelFreq *Spectrum) (*raster.Plane, error) {
	if kernelFreq.Height != c.height || kernelFreq.Width != c.width {
		return nil, raster.NewShapeError("convolve", c.height, c.width, kernelFreq.Height, kernelFreq.Width)
	}

	freq, err := c.Forward(p)
	if err != nil {
		return nil, err
	}

	// Multiply in frequency domain
	for i := range freq.Data {
		freq.Data[i] *= kernelFreq.Data[i]
	}

	out, err := c.Inverse(freq)
	if err != nil {
		return nil, err
	}
	roundInPlace(out.Data)
	return out, nil
}

func roundInPlace(data []float64) {
	for i, v := range data {
		data[i] = math.RoundToEven(v)
	}
}
