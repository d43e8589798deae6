package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// DeterministicRaster fills an h×w raster with seeded random bytes.
func DeterministicRaster(seed int64, h, w int) *raster.Raster {
	r := raster.New(h, w)
	rng := rand.New(rand.NewSource(seed))
	for i := range r.Pix {
		r.Pix[i] = uint8(rng.Intn(256))
	}
	return r
}

// UniformRaster returns an h×w raster with every pixel set to px.
func UniformRaster(h, w int, px [3]uint8) *raster.Raster {
	r := raster.New(h, w)
	r.Fill(px)
	return r
}

// DeterministicPlane fills an h×w plane with seeded random integers in [0, 255].
func DeterministicPlane(seed int64, h, w int) *raster.Plane {
	p := raster.NewPlane(h, w)
	rng := rand.New(rand.NewSource(seed))
	for i := range p.Data {
		p.Data[i] = float64(rng.Intn(256))
	}
	return p
}

// Impulse returns an h×w plane that is zero except for a 1 at (i, j).
func Impulse(h, w, i, j int) *raster.Plane {
	p := raster.NewPlane(h, w)
	if i >= 0 && i < h && j >= 0 && j < w {
		p.Set(i, j, 1)
	}
	return p
}

// PermuteChannels returns a copy of r with channel c taken from perm[c].
func PermuteChannels(r *raster.Raster, perm [3]int) *raster.Raster {
	out := r.Clone()
	for o := 0; o+3 <= len(r.Pix); o += 3 {
		for c := range perm {
			out.Pix[o+c] = r.Pix[o+perm[c]]
		}
	}
	return out
}
