package deltae

import "math"

// Result is either a Scalar, for a single pair of colours, or an
// *ImageDiff, for a pair of images.
type Result interface {
	// Average returns the scalar delta E, or the mean of the difference
	// map.
	Average() float64

	isResult()
}

// Scalar is the delta E between two colours.
type Scalar float64

// Average returns s.
func (s Scalar) Average() float64 { return float64(s) }

func (Scalar) isResult() {}

// ImageDiff holds the per-pixel delta E of two images and its mean.
type ImageDiff struct {
	Map  *Map
	Mean float64
}

// Average returns d.Mean.
func (d *ImageDiff) Average() float64 { return d.Mean }

func (*ImageDiff) isResult() {}

// Map is a height x width array of per-pixel delta E values.
type Map struct {
	Height int
	Width  int
	Values []float64
}

// At returns the delta E at (y, x).
func (m *Map) At(y, x int) float64 {
	return m.Values[y*m.Width+x]
}

// Min returns the smallest value in the map, or NaN if it is empty.
func (m *Map) Min() float64 {
	if len(m.Values) == 0 {
		return math.NaN()
	}
	min := math.Inf(1)
	for _, v := range m.Values {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value in the map, or NaN if it is empty.
func (m *Map) Max() float64 {
	if len(m.Values) == 0 {
		return math.NaN()
	}
	max := math.Inf(-1)
	for _, v := range m.Values {
		if v > max {
			max = v
		}
	}
	return max
}

func (m *Map) mean() float64 {
	if len(m.Values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range m.Values {
		sum += v
	}
	return sum / float64(len(m.Values))
}
