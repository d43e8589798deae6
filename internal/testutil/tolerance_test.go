package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

func TestMaxAbsDiff(t *testing.T) {
	a, _ := raster.PlaneFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := raster.PlaneFromRows([][]float64{{1, 2.1}, {3, 4}})

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffShapeMismatch(t *testing.T) {
	_, err := MaxAbsDiff(raster.NewPlane(2, 2), raster.NewPlane(1, 4))
	if err == nil {
		t.Fatal("expected error for shape mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := DeterministicPlane(1, 3, 3)

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical planes", d)
	}
}

func TestRequirePlaneNearlyEqual(t *testing.T) {
	a := DeterministicPlane(3, 4, 4)
	b := a.Clone()
	b.Data[5] += 1e-12
	RequirePlaneNearlyEqual(t, a, b, 1e-9)
}

func TestRequireRasterEqual(t *testing.T) {
	r := DeterministicRaster(9, 3, 2)
	RequireRasterEqual(t, r, r.Clone())
}
