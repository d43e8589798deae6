package raster

import (
	"errors"
	"testing"
)

func TestNewZeroFilled(t *testing.T) {
	r := New(2, 3)
	if r.Height != 2 || r.Width != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", r.Height, r.Width)
	}
	if len(r.Pix) != 18 {
		t.Fatalf("len(Pix) = %d, want 18", len(r.Pix))
	}
	for i, v := range r.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0", i, v)
		}
	}
}

func TestNewNegativeDims(t *testing.T) {
	r := New(-1, 4)
	if r.Height != 0 || len(r.Pix) != 0 {
		t.Fatalf("New(-1, 4) = %dx%d with %d samples, want empty", r.Height, r.Width, len(r.Pix))
	}
}

func TestFromPix(t *testing.T) {
	pix := []uint8{1, 2, 3, 4, 5, 6}
	r, err := FromPix(1, 2, pix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.At(0, 1); got != [3]uint8{4, 5, 6} {
		t.Fatalf("At(0, 1) = %v, want [4 5 6]", got)
	}

	_, err = FromPix(2, 2, pix)
	if !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}

func TestFromRows(t *testing.T) {
	rows := [][][3]uint8{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	}
	r, err := FromRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range rows {
		for j := range rows[i] {
			if got := r.At(i, j); got != rows[i][j] {
				t.Errorf("At(%d, %d) = %v, want %v", i, j, got, rows[i][j])
			}
		}
	}

	back := r.Rows()
	if len(back) != 2 || back[1][0] != rows[1][0] {
		t.Fatalf("Rows() = %v, want %v", back, rows)
	}
}

func TestFromRowsRagged(t *testing.T) {
	rows := [][][3]uint8{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}},
	}
	_, err := FromRows(rows)

	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ShapeError, got %v", err)
	}
	if se.Op != "fromrows" {
		t.Errorf("Op = %q, want fromrows", se.Op)
	}
}

func TestSetFillClone(t *testing.T) {
	r := New(2, 2)
	r.Fill([3]uint8{9, 9, 9})
	r.Set(1, 1, [3]uint8{1, 2, 3})

	c := r.Clone()
	if !c.Equal(r) {
		t.Fatal("Clone should equal original")
	}
	c.Set(0, 0, [3]uint8{0, 0, 0})
	if r.At(0, 0) != [3]uint8{9, 9, 9} {
		t.Fatal("Clone should not share memory with original")
	}
	if c.Equal(r) {
		t.Fatal("modified clone should differ")
	}
}

func TestValidate(t *testing.T) {
	r := &Raster{Height: 2, Width: 2, Pix: make([]uint8, 11)}
	err := r.Validate()
	if !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
	want := "validate: raster: shape mismatch: want 12 samples for 2x2, got 11 samples"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	_, err = FromPix(1, 1, make([]uint8, 2))
	want = "frompix: raster: shape mismatch: want 3 samples, got 2 samples"
	if err == nil || err.Error() != want {
		t.Fatalf("FromPix error = %v, want %q", err, want)
	}
}

func TestValidateNil(t *testing.T) {
	var r *Raster
	if err := r.Validate(); !errors.Is(err, ErrShape) {
		t.Fatalf("nil raster: expected ErrShape, got %v", err)
	}

	var p *Plane
	if err := p.Validate(); !errors.Is(err, ErrShape) {
		t.Fatalf("nil plane: expected ErrShape, got %v", err)
	}

	if _, err := Split(nil); !errors.Is(err, ErrShape) {
		t.Fatalf("Split(nil): expected ErrShape, got %v", err)
	}
	q := NewPlane(1, 1)
	if _, err := Merge(q, nil, q, OverflowWrap); !errors.Is(err, ErrShape) {
		t.Fatalf("Merge with nil plane: expected ErrShape, got %v", err)
	}
}

func TestShapeErrorMessage(t *testing.T) {
	err := NewShapeError("merge", 2, 3, 4, 5)
	want := "merge: raster: shape mismatch: want 2x3, got 4x5"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestPlaneFromRows(t *testing.T) {
	p, err := PlaneFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Height != 3 || p.Width != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", p.Height, p.Width)
	}
	if p.At(2, 1) != 6 {
		t.Fatalf("At(2, 1) = %v, want 6", p.At(2, 1))
	}

	_, err = PlaneFromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}

func TestPlaneRowsAreCopies(t *testing.T) {
	p := NewPlane(2, 2)
	p.Set(0, 0, 7)
	rows := p.Rows()
	rows[0][0] = 1
	if p.At(0, 0) != 7 {
		t.Fatal("Rows() must return a copy")
	}
}
