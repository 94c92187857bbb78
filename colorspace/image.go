// Package colorspace converts floating-point sRGB images to CIE L*a*b*.
package colorspace

// Image is a floating-point image with three interleaved channels per
// pixel, stored row by row.
type Image struct {
	Height int
	Width  int
	Pix    []float64
}

// NewImage returns a zeroed height x width image.
func NewImage(height, width int) *Image {
	return &Image{
		Height: height,
		Width:  width,
		Pix:    make([]float64, height*width*3),
	}
}

func (im *Image) offset(y, x int) int {
	return (y*im.Width + x) * 3
}

// At returns the three channel values of the pixel at (y, x).
func (im *Image) At(y, x int) [3]float64 {
	i := im.offset(y, x)
	return [3]float64{im.Pix[i], im.Pix[i+1], im.Pix[i+2]}
}

// Set stores the three channel values of the pixel at (y, x).
func (im *Image) Set(y, x int, v [3]float64) {
	i := im.offset(y, x)
	im.Pix[i], im.Pix[i+1], im.Pix[i+2] = v[0], v[1], v[2]
}

// Pixels returns the number of pixels in the image.
func (im *Image) Pixels() int {
	return im.Height * im.Width
}
