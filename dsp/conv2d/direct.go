package conv2d

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// DirectCircular computes the same circular convolution as Convolve in the
// spatial domain, in O(H*W*kh*kw). Results are rounded half to even.
func DirectCircular(p *raster.Plane, k *Kernel) (*raster.Plane, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkFit("convolve", p.Height, p.Width, k); err != nil {
		return nil, err
	}

	h, w := p.Height, p.Width
	out := raster.NewPlane(h, w)
	temp := make([]float64, w)

	// Each tap (u, v) adds a scaled copy of the input shifted by (u, v) with wrap-around.
	for u := 0; u < k.height; u++ {
		for v := 0; v < k.width; v++ {
			weight := k.At(u, v)
			if weight == 0 {
				continue
			}
			for i := 0; i < h; i++ {
				vecmath.ScaleBlock(temp, p.Row(i), weight)

				dst := out.Row((i + u) % h)
				vecmath.AddBlockInPlace(dst[v:], temp[:w-v])
				if v > 0 {
					vecmath.AddBlockInPlace(dst[:v], temp[w-v:])
				}
			}
		}
	}

	roundInPlace(out.Data)
	return out, nil
}
