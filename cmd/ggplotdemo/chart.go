package main

import (
	"image"
	"math"
	"strconv"

	"github.com/gogpu/ggplot"
)

// Chart palette.
var (
	axisColor   = ggplot.RGB(40, 40, 40)
	gridColor   = ggplot.RGBA(0, 0, 0, 0.15)
	seriesColor = ggplot.RGB(31, 119, 180)
	barColor    = ggplot.RGBA(255, 127, 14, 0.6)
	markerColor = ggplot.RGB(214, 39, 40)
	noiseColor  = ggplot.RGBA(44, 160, 44, 0.8)
)

// drawChart issues the commands a plotting engine would for a small line
// chart with bars, markers, a legend and axis labels. Coordinates are
// logical, relative to the backend's bounds.
func drawChart(b ggplot.DrawingBackend, title string) error {
	if err := b.EnsurePrepared(); err != nil {
		return err
	}

	w, h := b.Size()
	left, right := 60, w-20
	top, bottom := 40, h-50
	plotW, plotH := right-left, bottom-top

	toScreen := func(x, y float64) image.Point {
		return image.Pt(left+int(x*float64(plotW)), bottom-int(y*float64(plotH)))
	}

	label := ggplot.TextStyle{Size: 12, Family: ggplot.FamilySansSerif, Color: axisColor}

	// Grid and tick labels.
	for i := 0; i <= 10; i++ {
		t := float64(i) / 10
		x := toScreen(t, 0).X
		y := toScreen(0, t).Y
		_ = b.DrawLine(image.Pt(x, top), image.Pt(x, bottom), ggplot.NewStyle(gridColor, 1))
		_ = b.DrawLine(image.Pt(left, y), image.Pt(right, y), ggplot.NewStyle(gridColor, 1))

		xl := label
		xl.Anchor = ggplot.Pos{H: ggplot.HCenter, V: ggplot.VTop}
		_ = b.DrawText(strconv.Itoa(i), xl, image.Pt(x, bottom+6))

		yl := label
		yl.Anchor = ggplot.Pos{H: ggplot.HRight, V: ggplot.VCenter}
		yl.Family = ggplot.FamilyMonospace
		_ = b.DrawText(strconv.FormatFloat(t, 'f', 1, 64), yl, image.Pt(left-6, y))
	}

	// Bars.
	for i := 0; i < 10; i++ {
		v := 0.2 + 0.6*math.Abs(math.Cos(float64(i)*0.7))
		ul := toScreen(float64(i)/10+0.02, v*0.5)
		br := toScreen(float64(i+1)/10-0.02, 0)
		_ = b.DrawRect(ul, br, ggplot.NewStyle(barColor, 1), true)
	}

	// Line series with markers.
	const n = 50
	series := make([]image.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		series = append(series, toScreen(t, 0.5+0.4*math.Sin(t*2*math.Pi)))
	}
	_ = b.DrawPath(series, ggplot.NewStyle(seriesColor, 2))
	for i := 0; i <= n; i += 5 {
		_ = b.DrawCircle(series[i], 4, ggplot.NewStyle(markerColor, 1), true)
		_ = b.DrawCircle(series[i], 7, ggplot.NewStyle(markerColor, 1), false)
	}

	// Noise as single pixels.
	for i := 0; i < 200; i++ {
		t := float64(i) / 200
		y := 0.5 + 0.4*math.Sin(t*2*math.Pi) + 0.05*math.Sin(float64(i)*12.9898)
		_ = b.DrawPixel(toScreen(t, y), noiseColor)
	}

	// Axes.
	_ = b.DrawLine(image.Pt(left, bottom), image.Pt(right, bottom), ggplot.NewStyle(axisColor, 2))
	_ = b.DrawLine(image.Pt(left, top), image.Pt(left, bottom), ggplot.NewStyle(axisColor, 2))

	// Legend: outlined box, a triangle swatch and a label.
	lx, ly := right-140, top+10
	_ = b.DrawRect(image.Pt(lx, ly), image.Pt(right-10, ly+30), ggplot.NewStyle(ggplot.White.WithAlpha(0.8), 1), true)
	_ = b.DrawRect(image.Pt(lx, ly), image.Pt(right-10, ly+30), ggplot.NewStyle(axisColor, 1), false)
	_ = b.FillPolygon([]image.Point{
		image.Pt(lx+10, ly+22), image.Pt(lx+20, ly+8), image.Pt(lx+30, ly+22),
	}, ggplot.NewStyle(seriesColor, 0))
	legend := label
	legend.Anchor = ggplot.Pos{H: ggplot.HLeft, V: ggplot.VCenter}
	_ = b.DrawText("sin(2πt)", legend, image.Pt(lx+40, ly+15))

	// Titles.
	heading := ggplot.TextStyle{
		Size:   18,
		Family: ggplot.FamilySerif,
		Color:  axisColor,
		Anchor: ggplot.Pos{H: ggplot.HCenter, V: ggplot.VBottom},
	}
	_ = b.DrawText(title, heading, image.Pt(left+plotW/2, top-8))

	yTitle := label
	yTitle.Anchor = ggplot.Pos{H: ggplot.HCenter, V: ggplot.VBottom}
	yTitle.Transform = ggplot.Rotate270
	_ = b.DrawText("amplitude", yTitle, image.Pt(left-40, top+plotH/2))

	xTitle := label
	xTitle.Anchor = ggplot.Pos{H: ggplot.HCenter, V: ggplot.VBottom}
	_ = b.DrawText("time", xTitle, image.Pt(left+plotW/2, h-4))

	return b.Present()
}
