package conv2d

import (
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// Pipeline applies one kernel to whole rasters: split, convolve each
// channel, merge. It holds no per-image state and may be used from
// several goroutines at once.
type Pipeline struct {
	kernel *Kernel
	cfg    Config
	pool   *ConvolverPool
}

// NewPipeline creates a pipeline for k.
func NewPipeline(k *Kernel, opts ...Option) (*Pipeline, error) {
	if k == nil || len(k.weights) == 0 {
		return nil, ErrEmptyKernel
	}
	return &Pipeline{kernel: k, cfg: ApplyOptions(opts...), pool: NewConvolverPool()}, nil
}

// Kernel returns the pipeline kernel.
func (p *Pipeline) Kernel() *Kernel {
	return p.kernel
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Apply convolves every channel of r with the pipeline kernel and returns a
// new raster. r is not modified. Shape errors from any stage are returned
// unchanged.
func (p *Pipeline) Apply(r *raster.Raster) (*raster.Raster, error) {
	planes, err := raster.Split(r)
	if err != nil {
		return nil, err
	}
	if err := checkFit("convolve", r.Height, r.Width, p.kernel); err != nil {
		return nil, err
	}

	// The kernel spectrum depends only on the kernel and the plane size,
	// so it is computed once and shared read-only by the channel workers.
	kc, err := p.pool.Get(r.Height, r.Width)
	if err != nil {
		return nil, err
	}
	defer p.pool.Put(kc)
	kernelFreq, err := kc.KernelSpectrum(p.kernel)
	if err != nil {
		return nil, err
	}

	var out [raster.Channels]*raster.Plane

	if !p.cfg.Parallel {
		for c, plane := range planes {
			if out[c], err = kc.ConvolveSpectrum(plane, kernelFreq); err != nil {
				return nil, err
			}
		}
		return raster.Merge(out[0], out[1], out[2], p.cfg.Overflow)
	}

	var g errgroup.Group
	for c, plane := range planes {
		g.Go(func() error {
			cv, err := p.pool.Get(r.Height, r.Width)
			if err != nil {
				return err
			}
			defer p.pool.Put(cv)
			res, err := cv.ConvolveSpectrum(plane, kernelFreq)
			if err != nil {
				return err
			}
			out[c] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return raster.Merge(out[0], out[1], out[2], p.cfg.Overflow)
}

// Apply is a convenience wrapper around NewPipeline and Pipeline.Apply.
func Apply(r *raster.Raster, k *Kernel, opts ...Option) (*raster.Raster, error) {
	p, err := NewPipeline(k, opts...)
	if err != nil {
		return nil, err
	}
	return p.Apply(r)
}
