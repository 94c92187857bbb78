// Package deltae computes the CIE76 colour difference (delta E) between two
// sRGB colours or two sRGB images viewed under illuminant D65.
//
// Inputs are B,G,R digital counts. They are scaled to [0,1] by a maximum
// count, converted to L*a*b* and compared by Euclidean distance. A pair of
// colours yields a Scalar; a pair of images yields an *ImageDiff holding the
// per-pixel distances and their mean.
package deltae

import (
	"fmt"
	"math"

	"github.com/mmuldo/deltae/colorspace"
)

// DefaultMaxCount is the maximum digital count of 8-bit data.
const DefaultMaxCount = 255

// Calculator computes delta E with a fixed converter and maximum count.
// It holds no mutable state and may be shared between goroutines.
type Calculator struct {
	converter colorspace.Converter
	maxCount  float64
}

// NewCalculator returns a Calculator. A nil converter selects
// colorspace.D65 and a zero maxCount selects DefaultMaxCount. maxCount is
// the largest value any component may take on, not necessarily the largest
// value present in the data.
func NewCalculator(converter colorspace.Converter, maxCount float64) *Calculator {
	if converter == nil {
		converter = colorspace.D65
	}
	if maxCount == 0 {
		maxCount = DefaultMaxCount
	}
	return &Calculator{
		converter: converter,
		maxCount:  maxCount,
	}
}

// Compute returns the delta E between color1 and color2 using the D65
// converter.
func Compute(color1, color2 *Array, maxCount float64) (Result, error) {
	return NewCalculator(nil, maxCount).Calculate(color1, color2)
}

// MaxCount returns the count that inputs are divided by.
func (c *Calculator) MaxCount() float64 {
	return c.maxCount
}

// Calculate returns the delta E between color1 and color2. Both must have
// the same shape, which is either (3) or (h, w, 3). A result covering a
// single pixel is returned as a Scalar, anything else as an *ImageDiff.
func (c *Calculator) Calculate(color1, color2 *Array) (Result, error) {
	if color1 == nil || color2 == nil {
		return nil, fmt.Errorf("%w: nil array", ErrInvalidShape)
	}
	if err := checkShape(color1.shape); err != nil {
		return nil, err
	}
	if err := checkShape(color2.shape); err != nil {
		return nil, err
	}
	if !sameShape(color1.shape, color2.shape) {
		return nil, fmt.Errorf("%w: %v != %v", ErrShapeMismatch, color1.shape, color2.shape)
	}

	im1 := c.normalize(color1)
	im2 := c.normalize(color2)

	m := c.distance(im1, im2)
	if len(m.Values) == 1 {
		return Scalar(m.Values[0]), nil
	}
	return &ImageDiff{
		Map:  m,
		Mean: m.mean(),
	}, nil
}

// Triplets returns the delta E between two colours.
func (c *Calculator) Triplets(color1, color2 Triplet) float64 {
	im1 := c.normalize(color1.Array())
	im2 := c.normalize(color2.Array())
	return c.distance(im1, im2).Values[0]
}

// checkShape accepts a 3-element vector or an (h, w, 3) array.
func checkShape(shape []int) error {
	switch {
	case len(shape) == 1 && shape[0] == 3:
		return nil
	case len(shape) == 3 && shape[2] == 3:
		return nil
	}
	return fmt.Errorf("%w: got shape %v", ErrInvalidShape, shape)
}

// normalize scales a copy of a to [0,1] and presents it as an image. A
// vector becomes a 1x1 image. Values above maxCount are kept as they are.
func (c *Calculator) normalize(a *Array) *colorspace.Image {
	var im *colorspace.Image
	if len(a.shape) == 1 {
		im = colorspace.NewImage(1, 1)
	} else {
		im = colorspace.NewImage(a.shape[0], a.shape[1])
	}
	for i, v := range a.data {
		im.Pix[i] = v / c.maxCount
	}
	return im
}

func (c *Calculator) distance(im1, im2 *colorspace.Image) *Map {
	lab1 := c.converter.BGRToLab(im1)
	lab2 := c.converter.BGRToLab(im2)

	m := &Map{
		Height: im1.Height,
		Width:  im1.Width,
		Values: make([]float64, im1.Pixels()),
	}
	for i := range m.Values {
		var sum float64
		for ch := 0; ch < 3; ch++ {
			d := lab1.Pix[i*3+ch] - lab2.Pix[i*3+ch]
			sum += d * d
		}
		m.Values[i] = math.Sqrt(sum)
	}
	return m
}
