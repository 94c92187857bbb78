package image

import (
	"image"
	"image/color"
	"sort"
)

// ColorCount is a colour and the number of pixels it covers.
type ColorCount struct {
	Color color.Color
	Count int
}

// ColorCountList sorts by count, most frequent first. Ties are broken by
// the colour's packed RGBA value so the order is stable.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return pack(ccl[i].Color) < pack(ccl[j].Color)
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

func pack(c color.Color) uint64 {
	r, g, b, a := c.RGBA()
	return uint64(r)<<48 | uint64(g)<<32 | uint64(b)<<16 | uint64(a)
}

// GetColors returns a map of an image's colors
// and the number of times each color occurs
func GetColors(img image.Image) map[color.Color]int {
	m := make(map[color.Color]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			m[img.At(x, y)]++
		}
	}

	return m
}

// RankColors orders the colours of m by prevalence.
func RankColors(m map[color.Color]int) ColorCountList {
	cc := make(ColorCountList, len(m))

	i := 0
	for k, v := range m {
		cc[i] = ColorCount{k, v}
		i++
	}

	sort.Sort(cc)
	return cc
}
