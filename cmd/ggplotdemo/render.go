package main

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/canvas"
	"github.com/gogpu/ggplot/fonts"
	"github.com/gogpu/ggplot/internal/config"
	"github.com/gogpu/ggplot/paint"
	"github.com/gogpu/ggplot/shape"
	"github.com/gogpu/ggplot/texture"
)

// render draws the chart described by cfg and writes cfg.Output.
//
// The adapter paints into a shape recorder first; the recording is then
// replayed onto a gg context. Recording keeps the adapter's output
// inspectable (the shape count is logged) without changing the pixels.
func render(cfg config.Config) error {
	book, err := fonts.NewBook()
	if err != nil {
		return err
	}
	for _, f := range cfg.Fonts {
		name, err := book.RegisterFile(f.Name, f.Path)
		if err != nil {
			return err
		}
		ggplot.Logger().Debug("font registered", "family", name, "path", f.Path)
	}

	images := texture.NewRegistry()
	background := paint.NoImage
	if cfg.Background.Image != "" {
		if background, err = images.Load(cfg.Background.Image); err != nil {
			return err
		}
	}
	policy, err := cfg.Background.Policy()
	if err != nil {
		return err
	}

	rec := shape.NewRecorder(shape.WithMeasurer(book))
	full := paint.RectFromMinSize(gg.Pt(0, 0), gg.Pt(float64(cfg.Width), float64(cfg.Height)))
	m := cfg.Margin
	region := ggplot.NewRegion(paint.RectFromMinMax(full.Min.Add(gg.Pt(m, m)), full.Max.Sub(gg.Pt(m, m))))

	b := region.Backend(rec,
		ggplot.WithImageLookup(images),
		ggplot.WithView(cfg.View.GGView()),
	)
	if background != paint.NoImage {
		b.BackgroundImage(background, policy)
	}
	if err := drawChart(b, cfg.Title); err != nil {
		return err
	}
	recording := rec.Finish()

	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer func() {
		_ = dc.Close()
	}()
	dc.ClearWithColor(gg.White)
	recording.Playback(canvas.New(dc, canvas.WithFonts(book), canvas.WithImages(images)))

	if err := dc.SavePNG(cfg.Output); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}
	ggplot.Logger().Info("chart saved",
		"output", cfg.Output,
		"width", cfg.Width,
		"height", cfg.Height,
		"shapes", recording.Len(),
		"policy", policy.String(),
	)
	return nil
}
