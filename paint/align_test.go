package paint

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
)

func TestAnchorRect(t *testing.T) {
	r := RectFromMinSize(gg.Pt(100, 100), gg.Pt(20, 10))

	tests := []struct {
		anchor Align2
		want   gg.Point
	}{
		{LeftTop, gg.Pt(100, 100)},
		{CenterTop, gg.Pt(90, 100)},
		{RightTop, gg.Pt(80, 100)},
		{LeftCenter, gg.Pt(100, 95)},
		{CenterCenter, gg.Pt(90, 95)},
		{RightCenter, gg.Pt(80, 95)},
		{LeftBottom, gg.Pt(100, 90)},
		{CenterBottom, gg.Pt(90, 90)},
		{RightBottom, gg.Pt(80, 90)},
	}
	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			got := tt.anchor.AnchorRect(r)
			assert.Equal(t, tt.want, got.Min)
			assert.Equal(t, r.Size(), got.Size())
			assert.Equal(t, got, tt.anchor.AnchorSize(gg.Pt(100, 100), gg.Pt(20, 10)))
		})
	}
}

func TestAlign2Accessors(t *testing.T) {
	assert.Equal(t, AlignMax, RightCenter.X())
	assert.Equal(t, AlignCenter, RightCenter.Y())
	assert.Equal(t, "Center", AlignCenter.String())
	assert.Equal(t, "Unknown", Align(9).String())
}

func TestAlign2String(t *testing.T) {
	assert.Equal(t, "LeftTop", LeftTop.String())
	assert.Equal(t, "CenterBottom", CenterBottom.String())
	assert.Equal(t, "RightCenter", RightCenter.String())
	assert.Equal(t, "Unknown", Align2{AlignMax, Align(7)}.String())
}
