package image

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/mmuldo/deltae/deltae"
)

// MapImage renders m as a grayscale image in which a delta E of scale or
// more is white. A scale <= 0 uses the largest value in the map.
func MapImage(m *deltae.Map, scale float64) *image.Gray {
	if scale <= 0 {
		scale = m.Max()
	}

	g := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := 0.0
			if scale > 0 {
				v = math.Min(m.At(y, x)/scale, 1)
			}
			g.SetGray(x, y, color.Gray{Y: uint8(math.Round(v * 255))})
		}
	}
	return g
}

// EncodeMap writes m to w as a grayscale PNG.
func EncodeMap(w io.Writer, m *deltae.Map, scale float64) error {
	return png.Encode(w, MapImage(m, scale))
}

// SaveMap writes m to the PNG file at path.
func SaveMap(path string, m *deltae.Map, scale float64) error {
	p, e := homedir.Expand(path)
	if e != nil {
		return fmt.Errorf("expand %s: %w", path, e)
	}

	f, e := os.Create(p)
	if e != nil {
		return e
	}

	if e = EncodeMap(f, m, scale); e != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", p, e)
	}
	return f.Close()
}
