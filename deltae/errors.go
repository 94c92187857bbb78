package deltae

import "errors"

var (
	// ErrShapeMismatch is returned when the two inputs do not have the
	// same shape.
	ErrShapeMismatch = errors.New("deltae: provided datasets must have the same shape")

	// ErrInvalidShape is returned when an input is neither a 3-element
	// vector nor an (h, w, 3) array.
	ErrInvalidShape = errors.New("deltae: provided colors must be either a 3-element vector or an (h, w, 3) array")

	// ErrDataSize is returned by NewArray when the data does not fill the
	// requested shape.
	ErrDataSize = errors.New("deltae: data length does not match shape")
)
