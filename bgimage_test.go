package ggplot

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/shape"
)

// lookupMap is an ImageLookup backed by a map of native sizes.
type lookupMap map[paint.ImageID][2]int

func (m lookupMap) ImageSize(id paint.ImageID) (int, int, bool) {
	s, ok := m[id]
	return s[0], s[1], ok
}

var wideBounds = paint.RectFromMinMax(gg.Pt(0, 0), gg.Pt(200, 100))

func assertRectInDelta(t *testing.T, want, got paint.Rect) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, 1e-6, "min x")
	assert.InDelta(t, want.Min.Y, got.Min.Y, 1e-6, "min y")
	assert.InDelta(t, want.Max.X, got.Max.X, 1e-6, "max x")
	assert.InDelta(t, want.Max.Y, got.Max.Y, 1e-6, "max y")
}

func TestSizeRatioWidescreen(t *testing.T) {
	r := SizeRatio(16, 9).Rect(wideBounds, 1, nil)

	w := 100 * 16.0 / 9.0
	assertRectInDelta(t, paint.RectFromMinSize(gg.Pt(100-w/2, 0), gg.Pt(w, 100)), r)
	assert.InDelta(t, 177.7778, r.Width(), 1e-4)
	assert.InDelta(t, 11.1111, r.Min.X, 1e-4)
}

func TestSizeRatioPreservesAspectAndFits(t *testing.T) {
	bounds := []paint.Rect{
		wideBounds,
		paint.RectFromMinMax(gg.Pt(10, 10), gg.Pt(60, 310)),
		paint.RectFromMinSize(gg.Pt(-40, 25), gg.Pt(123, 123)),
	}
	ratios := [][2]float64{{16, 9}, {1, 1}, {3, 4}, {1, 10}, {0.5, 0.25}}

	for _, b := range bounds {
		for _, ratio := range ratios {
			r := SizeRatio(ratio[0], ratio[1]).Rect(b, 1, nil)

			assert.InDelta(t, ratio[0]/ratio[1], r.Width()/r.Height(), 1e-9)
			assert.True(t, b.ContainsRect(r, 1e-9), "%v does not fit %v", r, b)
			assert.InDelta(t, b.Center().X, r.Center().X, 1e-9)
			assert.InDelta(t, b.Center().Y, r.Center().Y, 1e-9)

			// At least one dimension touches the bounds.
			touches := r.Width() >= b.Width()-1e-9 || r.Height() >= b.Height()-1e-9
			assert.True(t, touches, "%v is not maximal in %v", r, b)
		}
	}
}

func TestSizeRatioDegenerate(t *testing.T) {
	empty := paint.RectFromMinSize(gg.Pt(5, 5), gg.Pt(0, 10))

	assert.Equal(t, wideBounds, SizeRatio(0, 9).Rect(wideBounds, 1, nil))
	assert.Equal(t, wideBounds, SizeRatio(16, 0).Rect(wideBounds, 1, nil))
	assert.Equal(t, empty, SizeRatio(16, 9).Rect(empty, 1, nil))
}

func TestSizeFill(t *testing.T) {
	assert.Equal(t, wideBounds, SizeFill().Rect(wideBounds, 1, nil))
	assert.Equal(t, wideBounds, ImageSize{}.Rect(wideBounds, 1, nil))
}

func TestSizeOriginal(t *testing.T) {
	lookup := lookupMap{7: {40, 20}}

	r := SizeOriginal().Rect(wideBounds, 7, lookup)
	assert.Equal(t, paint.RectFromMinMax(gg.Pt(80, 40), gg.Pt(120, 60)), r)

	assert.Equal(t, wideBounds, SizeOriginal().Rect(wideBounds, 8, lookup), "unknown image")
	assert.Equal(t, wideBounds, SizeOriginal().Rect(wideBounds, 7, nil), "no lookup")
}

func TestSizeFit(t *testing.T) {
	lookup := lookupMap{7: {40, 40}}

	r := SizeFit().Rect(wideBounds, 7, lookup)
	assertRectInDelta(t, paint.RectFromMinMax(gg.Pt(50, 0), gg.Pt(150, 100)), r)
}

func TestSizeFitUnknownImageIsBounds(t *testing.T) {
	bounds := []paint.Rect{
		wideBounds,
		paint.RectFromMinMax(gg.Pt(3, 7), gg.Pt(310, 97)),
		paint.RectFromMinMax(gg.Pt(0, 0), gg.Pt(333, 77)),
	}
	for _, b := range bounds {
		assert.Equal(t, b, SizeFit().Rect(b, 99, lookupMap{}), "unknown image in %v", b)
		assert.Equal(t, b, SizeFit().Rect(b, 7, nil), "no lookup in %v", b)
	}
}

func TestSizeExact(t *testing.T) {
	r := SizeExact(300, 10).Rect(wideBounds, 1, nil)
	// Exact sizes may overflow the bounds.
	assert.Equal(t, paint.RectFromMinMax(gg.Pt(-50, 45), gg.Pt(250, 55)), r)
}

func TestParseImageSize(t *testing.T) {
	tests := []struct {
		in   string
		want ImageSize
	}{
		{"fill", SizeFill()},
		{"FIT", SizeFit()},
		{" original ", SizeOriginal()},
		{"ratio:16:9", SizeRatio(16, 9)},
		{"Ratio:1.5:1", SizeRatio(1.5, 1)},
		{"exact:640x480", SizeExact(640, 480)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseImageSize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := ParseImageSize(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestParseImageSizeErrors(t *testing.T) {
	inputs := []string{
		"", "stretch", "fill:1", "ratio", "ratio:16", "ratio:a:b", "exact:640", "exact:640:480", "exact:wxh",
		// Non-finite values.
		"ratio:nan:1", "ratio:inf:1", "ratio:1:-Inf", "exact:NaNx1", "exact:1x+inf",
	}
	for _, in := range inputs {
		_, err := ParseImageSize(in)
		assert.ErrorIs(t, err, ErrInvalidImageSize, "input %q", in)
	}
}

func TestImageSizeText(t *testing.T) {
	var s ImageSize
	require.NoError(t, s.UnmarshalText([]byte("exact:2.5x4")))
	assert.Equal(t, SizeExact(2.5, 4), s)

	b, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "exact:2.5x4", string(b))

	assert.Error(t, s.UnmarshalText([]byte("bogus")))
	assert.Equal(t, SizeExact(2.5, 4), s, "failed unmarshal keeps the old value")
}

func TestBackgroundImage(t *testing.T) {
	rec := shape.NewRecorder()
	b := New(wideBounds, rec, WithoutClip(), WithImageLookup(lookupMap{3: {20, 10}}))

	assert.Same(t, b, b.BackgroundImage(3, SizeOriginal()))

	want := shape.Image{
		ID:   3,
		Rect: paint.RectFromMinMax(gg.Pt(90, 45), gg.Pt(110, 55)),
		UV:   paint.UnitRect,
		Tint: paint.White,
	}
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, want, rec.Shapes()[0])
}

func TestBackgroundImageIgnoresView(t *testing.T) {
	rec := shape.NewRecorder()
	b := New(wideBounds, rec, WithoutClip()).Offset(30, 30).Scale(2)

	b.BackgroundImage(1, SizeFill())

	require.Equal(t, 1, rec.Len())
	assert.Equal(t, wideBounds, rec.Shapes()[0].(shape.Image).Rect)
}
