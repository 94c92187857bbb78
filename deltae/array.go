package deltae

import (
	"fmt"
)

// Array is an n-dimensional array of colour values stored in row-major
// order. The last dimension holds the channels, in B,G,R order.
type Array struct {
	shape []int
	data  []float64
}

// NewArray returns an array with the given shape holding a copy of data.
func NewArray(data []float64, shape ...int) (*Array, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension in %v", ErrDataSize, shape)
		}
		n *= d
	}
	if len(shape) == 0 || n != len(data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrDataSize, len(data), shape)
	}

	return &Array{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}, nil
}

// Vector returns a rank-1 array holding values.
func Vector(values ...float64) *Array {
	return &Array{
		shape: []int{len(values)},
		data:  append([]float64(nil), values...),
	}
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Data returns a copy of the array's values.
func (a *Array) Data() []float64 {
	return append([]float64(nil), a.data...)
}

// Len returns the number of values in the array.
func (a *Array) Len() int {
	return len(a.data)
}

// Triplet is a single colour in B,G,R order.
type Triplet [3]float64

// Array returns t as a rank-1 array of length 3.
func (t Triplet) Array() *Array {
	return Vector(t[0], t[1], t[2])
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
