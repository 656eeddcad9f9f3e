package ggplot

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/shape"
)

var allAnchors = []paint.Align2{
	paint.LeftTop, paint.CenterTop, paint.RightTop,
	paint.LeftCenter, paint.CenterCenter, paint.RightCenter,
	paint.LeftBottom, paint.CenterBottom, paint.RightBottom,
}

func TestRotateAnchorHasOrderFour(t *testing.T) {
	for _, a := range allAnchors {
		assert.Equal(t, a, rotateAnchor(a, 4), "anchor %v", a)
		assert.Equal(t, a, rotateAnchor(a, 0), "anchor %v", a)
	}
}

func TestRotateAnchorCenterIsFixed(t *testing.T) {
	for turns := range 8 {
		assert.Equal(t, paint.CenterCenter, rotateAnchor(paint.CenterCenter, turns))
	}
}

func TestRotateAnchorCycles(t *testing.T) {
	corners := []paint.Align2{paint.LeftTop, paint.RightTop, paint.RightBottom, paint.LeftBottom}
	edges := []paint.Align2{paint.LeftCenter, paint.CenterTop, paint.RightCenter, paint.CenterBottom}

	for _, cycle := range [][]paint.Align2{corners, edges} {
		for i, a := range cycle {
			for turns := range 4 {
				assert.Equal(t, cycle[(i+turns)%4], rotateAnchor(a, turns), "%v rotated %d times", a, turns)
			}
		}
	}
}

func TestPosAlign2(t *testing.T) {
	tests := []struct {
		pos  Pos
		want paint.Align2
	}{
		{Pos{HLeft, VTop}, paint.LeftTop},
		{Pos{HCenter, VTop}, paint.CenterTop},
		{Pos{HRight, VTop}, paint.RightTop},
		{Pos{HLeft, VCenter}, paint.LeftCenter},
		{Pos{HCenter, VCenter}, paint.CenterCenter},
		{Pos{HRight, VCenter}, paint.RightCenter},
		{Pos{HLeft, VBottom}, paint.LeftBottom},
		{Pos{HCenter, VBottom}, paint.CenterBottom},
		{Pos{HRight, VBottom}, paint.RightBottom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pos.align2(), "%+v", tt.pos)
	}
}

func TestFontFamilyMapping(t *testing.T) {
	assert.Equal(t, paint.Proportional, FamilySerif.paintFamily())
	assert.Equal(t, paint.Proportional, FamilySansSerif.paintFamily())
	assert.Equal(t, paint.Proportional, FontFamily("").paintFamily())
	assert.Equal(t, paint.Monospace, FamilyMonospace.paintFamily())
	assert.Equal(t, paint.Named("Fira Code"), FontFamily("Fira Code").paintFamily())
}

func TestFontTransform(t *testing.T) {
	assert.Equal(t, 0, Rotate0.Turns())
	assert.Equal(t, 3, Rotate270.Turns())
	assert.Equal(t, 1, FontTransform(5).Turns())
	assert.Equal(t, 3, FontTransform(-1).Turns())
	assert.InDelta(t, math.Pi/2, Rotate90.Angle(), 1e-12)
	assert.InDelta(t, math.Pi, Rotate180.Angle(), 1e-12)
}

// textShapes returns the recorded text shapes.
func textShapes(rec *shape.Recorder) []shape.Text {
	var out []shape.Text
	for _, s := range rec.Shapes() {
		if ts, ok := s.(shape.Text); ok {
			out = append(out, ts)
		}
	}
	return out
}

func TestDrawTextEmptyEmitsNothing(t *testing.T) {
	rec := shape.NewRecorder()
	b := New(testBounds, rec, WithoutClip())

	styles := []TextStyle{
		{Size: 12},
		{Size: 30, Family: FamilyMonospace, Anchor: Pos{HRight, VBottom}, Transform: Rotate90},
		{Size: 8, Family: "Missing Family", Transform: Rotate270},
	}
	for _, s := range styles {
		require.NoError(t, b.DrawText("", s, image.Pt(10, 10)))
	}
	assert.Equal(t, 0, rec.Len())
}

func TestDrawTextAnchoring(t *testing.T) {
	// DefaultMeasurer: 0.5em per rune, 1.25em line height.
	// "abcd" at 10pt measures 20 x 12.5.
	tests := []struct {
		name   string
		anchor Pos
		rot    FontTransform
		want   gg.Point
	}{
		{"left top", Pos{HLeft, VTop}, Rotate0, gg.Pt(50, 50)},
		{"center center", Pos{HCenter, VCenter}, Rotate0, gg.Pt(40, 43.75)},
		{"right bottom", Pos{HRight, VBottom}, Rotate0, gg.Pt(30, 37.5)},
		{"left top rotated once", Pos{HLeft, VTop}, Rotate90, gg.Pt(30, 50)},
		{"left top rotated twice", Pos{HLeft, VTop}, Rotate180, gg.Pt(30, 37.5)},
		{"left top rotated thrice", Pos{HLeft, VTop}, Rotate270, gg.Pt(50, 37.5)},
		{"left center rotated once", Pos{HLeft, VCenter}, Rotate90, gg.Pt(40, 50)},
		{"center center rotated", Pos{HCenter, VCenter}, Rotate270, gg.Pt(40, 43.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := shape.NewRecorder()
			b := New(testBounds, rec, WithoutClip())
			style := TextStyle{Size: 10, Color: RGB(1, 2, 3), Anchor: tt.anchor, Transform: tt.rot}

			require.NoError(t, b.DrawText("abcd", style, image.Pt(50, 50)))

			texts := textShapes(rec)
			require.Len(t, texts, 1)
			got := texts[0]
			assert.Equal(t, tt.want, got.Pos)
			assert.InDelta(t, tt.rot.Angle(), got.Angle, 1e-12)
			assert.Equal(t, "abcd", got.Galley.Text)
			assert.Equal(t, RGB(1, 2, 3).NRGBA(), got.Galley.Color)
			assert.Equal(t, paint.FontID{Size: 10, Family: paint.Proportional}, got.Galley.Font)
		})
	}
}

func TestDrawTextFollowsView(t *testing.T) {
	rec := shape.NewRecorder()
	b := New(testBounds, rec, WithoutClip()).Offset(10, 5).Scale(2)

	require.NoError(t, b.DrawText("x", TextStyle{Size: 10, Family: "Fira Code"}, image.Pt(50, 50)))

	texts := textShapes(rec)
	require.Len(t, texts, 1)
	assert.Equal(t, gg.Pt(60, 55), texts[0].Pos)
	assert.Equal(t, paint.Named("Fira Code"), texts[0].Galley.Font.Family)
	// Font size is not scaled by the view.
	assert.Equal(t, 10.0, texts[0].Galley.Font.Size)
}
