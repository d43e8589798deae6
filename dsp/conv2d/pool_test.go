package conv2d

import (
	"errors"
	"sync"
	"testing"

	"github.com/cwbudde/algo-imgconv/internal/testutil"
)

func TestConvolverPoolGetMatchesSize(t *testing.T) {
	p := NewConvolverPool()

	c, err := p.Get(4, 6)
	if err != nil {
		t.Fatal(err)
	}
	if c.Height() != 4 || c.Width() != 6 {
		t.Fatalf("Get(4, 6) = %dx%d", c.Height(), c.Width())
	}
	p.Put(c)

	// A pooled 4x6 convolver must never be handed out for another size.
	c2, err := p.Get(6, 4)
	if err != nil {
		t.Fatal(err)
	}
	if c2.Height() != 6 || c2.Width() != 4 {
		t.Fatalf("Get(6, 4) = %dx%d", c2.Height(), c2.Width())
	}
}

func TestConvolverPoolEmpty(t *testing.T) {
	p := NewConvolverPool()
	if _, err := p.Get(0, 3); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestConvolverPoolPutNilSafe(_ *testing.T) {
	p := NewConvolverPool()
	p.Put(nil) // must not panic
}

func TestConvolverPoolReuseGivesSameResult(t *testing.T) {
	p := NewConvolverPool()
	plane := testutil.DeterministicPlane(3, 5, 7)
	k := Sharpen()

	want, err := Convolve(plane, k)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := p.Get(5, 7)
			if err != nil {
				t.Error(err)
				return
			}
			defer p.Put(c)

			kf, err := c.KernelSpectrum(k)
			if err != nil {
				t.Error(err)
				return
			}
			got, err := c.ConvolveSpectrum(plane, kf)
			if err != nil {
				t.Error(err)
				return
			}
			if d, _ := testutil.MaxAbsDiff(got, want); d != 0 {
				t.Errorf("pooled convolver differs by %v", d)
			}
		}()
	}
	wg.Wait()
}
