package deltae

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mmuldo/deltae/colorspace"
)

// scaled maps each normalized channel straight to a Lab channel scaled by
// 100, so distances can be worked out by hand.
var scaled = colorspace.ConverterFunc(func(src *colorspace.Image) *colorspace.Image {
	dst := colorspace.NewImage(src.Height, src.Width)
	for i, v := range src.Pix {
		dst.Pix[i] = v * 100
	}
	return dst
})

func mustArray(t *testing.T, data []float64, shape ...int) *Array {
	t.Helper()
	a, err := NewArray(data, shape...)
	if err != nil {
		t.Fatalf("NewArray(%v) failed: %v", shape, err)
	}
	return a
}

func solid(t *testing.T, h, w int, bgr Triplet) *Array {
	t.Helper()
	data := make([]float64, 0, h*w*3)
	for i := 0; i < h*w; i++ {
		data = append(data, bgr[0], bgr[1], bgr[2])
	}
	return mustArray(t, data, h, w, 3)
}

func TestCalculate_Triplets(t *testing.T) {
	calc := NewCalculator(scaled, 0)

	tests := []struct {
		name     string
		color1   *Array
		color2   *Array
		expected float64
	}{
		{
			name:     "Identical",
			color1:   Vector(204, 127, 51),
			color2:   Vector(204, 127, 51),
			expected: 0,
		},
		{
			name:     "OneChannel",
			color1:   Vector(255, 0, 0),
			color2:   Vector(0, 0, 0),
			expected: 100,
		},
		{
			name:     "ThreeFourFive",
			color1:   Vector(0, 0, 0),
			color2:   Vector(0, 255*0.03, 255*0.04),
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(tt.color1, tt.color2)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			s, ok := result.(Scalar)
			if !ok {
				t.Fatalf("Calculate() returned %T, want Scalar", result)
			}
			if math.Abs(float64(s)-tt.expected) > 1e-9 {
				t.Errorf("Calculate() = %v, want %v", s, tt.expected)
			}
			if s.Average() != float64(s) {
				t.Errorf("Average() = %v, want %v", s.Average(), s)
			}
		})
	}
}

func TestCalculate_Symmetric(t *testing.T) {
	calc := NewCalculator(nil, 0)
	pairs := [][2]Triplet{
		{{204, 127, 51}, {32, 200, 207}},
		{{0, 0, 0}, {255, 255, 255}},
		{{12, 240, 99}, {13, 241, 98}},
	}

	for _, p := range pairs {
		forward := calc.Triplets(p[0], p[1])
		backward := calc.Triplets(p[1], p[0])
		if forward != backward {
			t.Errorf("Triplets(%v, %v) = %v, reversed = %v", p[0], p[1], forward, backward)
		}
	}
}

func TestCalculate_Images(t *testing.T) {
	calc := NewCalculator(scaled, 0)

	t.Run("Identical", func(t *testing.T) {
		img := solid(t, 4, 5, Triplet{10, 20, 30})
		result, err := calc.Calculate(img, img)
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		diff, ok := result.(*ImageDiff)
		if !ok {
			t.Fatalf("Calculate() returned %T, want *ImageDiff", result)
		}
		if diff.Map.Height != 4 || diff.Map.Width != 5 {
			t.Errorf("map is %dx%d, want 4x5", diff.Map.Height, diff.Map.Width)
		}
		if d := cmp.Diff(make([]float64, 20), diff.Map.Values); d != "" {
			t.Errorf("map mismatch (-want +got):\n%s", d)
		}
		if diff.Mean != 0 {
			t.Errorf("Mean = %v, want 0", diff.Mean)
		}
	})

	t.Run("MeanOfMap", func(t *testing.T) {
		img1 := mustArray(t, []float64{
			0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0,
		}, 2, 2, 3)
		img2 := mustArray(t, []float64{
			255, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 255 * 0.03, 255 * 0.04,
		}, 2, 2, 3)

		result, err := calc.Calculate(img1, img2)
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		diff := result.(*ImageDiff)

		want := []float64{100, 0, 0, 5}
		if d := cmp.Diff(want, diff.Map.Values, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("map mismatch (-want +got):\n%s", d)
		}
		if math.Abs(diff.Mean-26.25) > 1e-9 {
			t.Errorf("Mean = %v, want 26.25", diff.Mean)
		}
		if diff.Average() != diff.Mean {
			t.Errorf("Average() = %v, want %v", diff.Average(), diff.Mean)
		}
		if diff.Map.At(1, 1) != diff.Map.Values[3] {
			t.Errorf("At(1, 1) = %v, want %v", diff.Map.At(1, 1), diff.Map.Values[3])
		}
		if diff.Map.Min() != 0 || math.Abs(diff.Map.Max()-100) > 1e-9 {
			t.Errorf("Min, Max = %v, %v, want 0, 100", diff.Map.Min(), diff.Map.Max())
		}
	})

	t.Run("SinglePixelImage", func(t *testing.T) {
		result, err := calc.Calculate(
			mustArray(t, []float64{255, 0, 0}, 1, 1, 3),
			mustArray(t, []float64{0, 0, 0}, 1, 1, 3),
		)
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if _, ok := result.(Scalar); !ok {
			t.Errorf("Calculate() returned %T, want Scalar", result)
		}
	})
}

func TestCalculate_Errors(t *testing.T) {
	calc := NewCalculator(scaled, 0)

	tests := []struct {
		name     string
		color1   *Array
		color2   *Array
		expected error
	}{
		{
			name:     "ShortVector",
			color1:   Vector(1, 2),
			color2:   Vector(1, 2, 3),
			expected: ErrInvalidShape,
		},
		{
			name:     "LongVectors",
			color1:   Vector(1, 2, 3, 4),
			color2:   Vector(1, 2, 3, 4),
			expected: ErrInvalidShape,
		},
		{
			name:     "TwoChannelImages",
			color1:   mustArray(t, make([]float64, 8), 2, 2, 2),
			color2:   mustArray(t, make([]float64, 8), 2, 2, 2),
			expected: ErrInvalidShape,
		},
		{
			name:     "RankTwo",
			color1:   mustArray(t, make([]float64, 6), 2, 3),
			color2:   mustArray(t, make([]float64, 6), 2, 3),
			expected: ErrInvalidShape,
		},
		{
			name:     "RankFour",
			color1:   mustArray(t, make([]float64, 12), 1, 2, 2, 3),
			color2:   mustArray(t, make([]float64, 12), 1, 2, 2, 3),
			expected: ErrInvalidShape,
		},
		{
			name:     "DifferentImageSizes",
			color1:   solid(t, 4, 4, Triplet{}),
			color2:   solid(t, 5, 5, Triplet{}),
			expected: ErrShapeMismatch,
		},
		{
			name:     "VectorAndImage",
			color1:   Vector(1, 2, 3),
			color2:   mustArray(t, []float64{1, 2, 3}, 1, 1, 3),
			expected: ErrShapeMismatch,
		},
		{
			name:     "SameSizeDifferentValues",
			color1:   solid(t, 2, 3, Triplet{1, 1, 1}),
			color2:   solid(t, 3, 2, Triplet{1, 1, 1}),
			expected: ErrShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(tt.color1, tt.color2)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("Calculate() error = %v, want %v", err, tt.expected)
			}
			if result != nil {
				t.Errorf("Calculate() result = %v, want nil", result)
			}
		})
	}
}

func TestCalculate_DoesNotMutateInputs(t *testing.T) {
	calc := NewCalculator(scaled, 0)
	data := []float64{204, 127, 51}
	color1 := mustArray(t, data, 3)
	color2 := Vector(32, 200, 207)

	if _, err := calc.Calculate(color1, color2); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if d := cmp.Diff([]float64{204, 127, 51}, color1.Data()); d != "" {
		t.Errorf("color1 changed (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{32, 200, 207}, color2.Data()); d != "" {
		t.Errorf("color2 changed (-want +got):\n%s", d)
	}

	data[0] = 0
	if color1.Data()[0] != 204 {
		t.Error("NewArray should copy its data")
	}
}

func TestCalculate_PassesUnclampedBGR(t *testing.T) {
	var seen [][]float64
	record := colorspace.ConverterFunc(func(src *colorspace.Image) *colorspace.Image {
		seen = append(seen, append([]float64(nil), src.Pix...))
		return colorspace.NewImage(src.Height, src.Width)
	})

	calc := NewCalculator(record, 100)
	if _, err := calc.Calculate(Vector(300, 50, -10), Vector(0, 0, 0)); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	want := [][]float64{{3, 0.5, -0.1}, {0, 0, 0}}
	if d := cmp.Diff(want, seen, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("converter input mismatch (-want +got):\n%s", d)
	}
}

func TestNewCalculator_Defaults(t *testing.T) {
	calc := NewCalculator(nil, 0)
	if calc.MaxCount() != DefaultMaxCount {
		t.Errorf("MaxCount() = %v, want %v", calc.MaxCount(), DefaultMaxCount)
	}
	if calc.converter != colorspace.D65 {
		t.Error("nil converter should select colorspace.D65")
	}
}

func TestNewArray(t *testing.T) {
	if _, err := NewArray([]float64{1, 2, 3, 4}, 1, 1, 3); !errors.Is(err, ErrDataSize) {
		t.Errorf("NewArray() error = %v, want %v", err, ErrDataSize)
	}
	if _, err := NewArray([]float64{1, 2, 3}); !errors.Is(err, ErrDataSize) {
		t.Errorf("NewArray() without shape error = %v, want %v", err, ErrDataSize)
	}
	if _, err := NewArray(nil, -1, 0, 3); !errors.Is(err, ErrDataSize) {
		t.Errorf("NewArray() with negative dimension error = %v, want %v", err, ErrDataSize)
	}

	a := mustArray(t, make([]float64, 12), 2, 2, 3)
	shape := a.Shape()
	shape[0] = 7
	if d := cmp.Diff([]int{2, 2, 3}, a.Shape()); d != "" {
		t.Errorf("Shape() should return a copy (-want +got):\n%s", d)
	}
	if a.Len() != 12 {
		t.Errorf("Len() = %d, want 12", a.Len())
	}
}

func TestCalculate_NilArray(t *testing.T) {
	calc := NewCalculator(scaled, 0)
	if _, err := calc.Calculate(nil, Vector(1, 2, 3)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Calculate(nil, v) error = %v, want %v", err, ErrInvalidShape)
	}
	if _, err := calc.Calculate(Vector(1, 2, 3), nil); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Calculate(v, nil) error = %v, want %v", err, ErrInvalidShape)
	}
}

func TestCalculate_EmptyImages(t *testing.T) {
	calc := NewCalculator(scaled, 0)
	empty := mustArray(t, nil, 0, 4, 3)

	result, err := calc.Calculate(empty, empty)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	diff, ok := result.(*ImageDiff)
	if !ok {
		t.Fatalf("Calculate() returned %T, want *ImageDiff", result)
	}
	if len(diff.Map.Values) != 0 || diff.Map.Width != 4 {
		t.Errorf("map = %+v, want 0x4 and no values", diff.Map)
	}
	for name, v := range map[string]float64{"Mean": diff.Mean, "Min": diff.Map.Min(), "Max": diff.Map.Max()} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}
}
