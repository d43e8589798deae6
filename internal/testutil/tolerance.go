package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-imgconv/dsp/raster"
)

// RequirePlaneNearlyEqual fails t if got and want differ in shape or if any
// sample pair differs by more than eps.
func RequirePlaneNearlyEqual(t *testing.T, got, want *raster.Plane, eps float64) {
	t.Helper()
	if !got.SameShape(want) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Height, got.Width, want.Height, want.Width)
	}
	for k := range got.Data {
		diff := math.Abs(got.Data[k] - want.Data[k])
		if diff > eps {
			i, j := k/got.Width, k%got.Width
			t.Fatalf("sample (%d, %d): got %v, want %v (diff %v > eps %v)", i, j, got.Data[k], want.Data[k], diff, eps)
		}
	}
}

// RequireRasterEqual fails t at the first pixel where got and want differ.
func RequireRasterEqual(t *testing.T, got, want *raster.Raster) {
	t.Helper()
	if got.Height != want.Height || got.Width != want.Width {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Height, got.Width, want.Height, want.Width)
	}
	for i := 0; i < got.Height; i++ {
		for j := 0; j < got.Width; j++ {
			if g, w := got.At(i, j), want.At(i, j); g != w {
				t.Fatalf("pixel (%d, %d): got %v, want %v", i, j, g, w)
			}
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two planes.
// Returns an error if the planes differ in shape.
func MaxAbsDiff(a, b *raster.Plane) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("shape mismatch: %dx%d vs %dx%d", a.Height, a.Width, b.Height, b.Width)
	}
	maxDiff := 0.0
	for i := range a.Data {
		d := math.Abs(a.Data[i] - b.Data[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
