package conv2d

import "sync"

type planeSize struct {
	height int
	width  int
}

// ConvolverPool provides sync.Pool-based Convolver reuse so repeated calls
// on same-sized planes do not rebuild FFT plans. It is safe for concurrent use.
type ConvolverPool struct {
	pools sync.Map // planeSize -> *sync.Pool
}

// NewConvolverPool returns a ConvolverPool ready for use.
func NewConvolverPool() *ConvolverPool {
	return &ConvolverPool{}
}

// Get returns a Convolver for height×width planes.
// Callers must return it via Put when done.
func (p *ConvolverPool) Get(height, width int) (*Convolver, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyInput
	}
	if sp, ok := p.pools.Load(planeSize{height, width}); ok {
		if c, ok := sp.(*sync.Pool).Get().(*Convolver); ok {
			return c, nil
		}
	}
	return NewConvolver(height, width)
}

// Put returns c to the pool for reuse.
// The caller must not use c after calling Put.
func (p *ConvolverPool) Put(c *Convolver) {
	if c == nil {
		return
	}
	sp, _ := p.pools.LoadOrStore(planeSize{c.height, c.width}, &sync.Pool{})
	sp.(*sync.Pool).Put(c)
}
