package raster

import (
	"errors"
	"fmt"
)

// ErrShape is the sentinel matched by every ShapeError.
var ErrShape = errors.New("raster: shape mismatch")

// ShapeError reports a dimension mismatch between a buffer and what an
// operation requires.
type ShapeError struct {
	Op   string // operation that rejected the input, e.g. "split"
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: want %s, got %s", e.Op, ErrShape.Error(), e.Want, e.Got)
}

// Unwrap lets errors.Is(err, ErrShape) succeed.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// NewShapeError builds a ShapeError from two height×width pairs.
func NewShapeError(op string, wantH, wantW, gotH, gotW int) *ShapeError {
	return &ShapeError{
		Op:   op,
		Want: dims(wantH, wantW),
		Got:  dims(gotH, gotW),
	}
}

func dims(h, w int) string {
	return fmt.Sprintf("%dx%d", h, w)
}
