package colorspace

import (
	"github.com/jkl1337/go-chromath"
)

// D65 is the converter used when none is supplied.
var D65 Converter = NewD65()

// Converter turns a normalized B,G,R image into an L,a,b image of the same
// size.
type Converter interface {
	BGRToLab(src *Image) *Image
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(src *Image) *Image

// BGRToLab calls f(src).
func (f ConverterFunc) BGRToLab(src *Image) *Image {
	return f(src)
}

// Chromath converts sRGB to L*a*b* under illuminant D65 through XYZ.
// Input values are expected in [0,1] but are not clamped.
type Chromath struct {
	rgb2Xyz *chromath.RGBTransformer
	lab2Xyz *chromath.LabTransformer
}

// NewD65 returns a converter for the sRGB working space with a D65
// reference white and no chromatic adaptation.
func NewD65() *Chromath {
	return &Chromath{
		rgb2Xyz: chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil),
		lab2Xyz: chromath.NewLabTransformer(&chromath.IlluminantRefD65),
	}
}

// Lab converts a single colour given in B,G,R order.
func (c *Chromath) Lab(b, g, r float64) chromath.Lab {
	xyz := c.rgb2Xyz.Convert(chromath.RGB{r, g, b})
	return c.lab2Xyz.Invert(xyz)
}

// BGRToLab converts every pixel of src. The result has the same size.
func (c *Chromath) BGRToLab(src *Image) *Image {
	dst := NewImage(src.Height, src.Width)
	for i := 0; i+2 < len(src.Pix); i += 3 {
		lab := c.Lab(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		dst.Pix[i] = lab.L()
		dst.Pix[i+1] = lab.A()
		dst.Pix[i+2] = lab.B()
	}
	return dst
}
