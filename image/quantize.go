package image

import (
	"fmt"
	"image"

	"github.com/esimov/colorquant"
)

// Quantize reduces img to at most n colours without dithering.
func Quantize(img image.Image, n int) (*image.NRGBA, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrColorCount, n)
	}

	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, n, false, true)

	return o, nil
}
