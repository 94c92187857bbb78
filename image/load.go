// Package image reads image files into delta E input arrays and writes
// delta E maps back out as images.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mmuldo/deltae/deltae"
)

var (
	// ErrUnsupportedDepth is returned for bit depths other than 8 and 16.
	ErrUnsupportedDepth = errors.New("image: unsupported bit depth")

	// ErrColorCount is returned when quantizing to fewer than one colour.
	ErrColorCount = errors.New("image: color count must be positive")
)

// Load decodes the image at path. A leading ~ is expanded to the user's
// home directory.
func Load(path string) (image.Image, error) {
	p, e := homedir.Expand(path)
	if e != nil {
		return nil, fmt.Errorf("expand %s: %w", path, e)
	}

	f, e := os.Open(p)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, fmt.Errorf("decode %s: %w", p, e)
	}

	return i, nil
}

// CheckDepth reports whether bits is a supported bit depth (8 or 16).
func CheckDepth(bits int) error {
	if bits != 8 && bits != 16 {
		return fmt.Errorf("%w: %d", ErrUnsupportedDepth, bits)
	}
	return nil
}

// MaxCount returns the largest digital count representable in bits.
func MaxCount(bits int) (float64, error) {
	if e := CheckDepth(bits); e != nil {
		return 0, e
	}
	return float64(uint64(1)<<uint(bits) - 1), nil
}

// ToArray returns img as an (h, w, 3) array in B,G,R order holding 8-bit
// or 16-bit digital counts. Colours are read alpha-premultiplied, the way
// image/color reports them.
func ToArray(img image.Image, bits int) (*deltae.Array, error) {
	if e := CheckDepth(bits); e != nil {
		return nil, e
	}
	shift := uint32(16 - bits)

	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	data := make([]float64, 0, h*w*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			data = append(data,
				float64(bl>>shift),
				float64(g>>shift),
				float64(r>>shift),
			)
		}
	}

	return deltae.NewArray(data, h, w, 3)
}
