package canvas

import (
	"image"
	"math"

	"github.com/gogpu/ggplot/paint"
)

// uvRect converts normalized texture coordinates to a pixel rectangle of a
// w by h image, clamped to the image.
func uvRect(uv paint.Rect, w, h int) image.Rectangle {
	uv = uv.Canon()
	r := image.Rect(
		int(math.Floor(uv.Min.X*float64(w))),
		int(math.Floor(uv.Min.Y*float64(h))),
		int(math.Ceil(uv.Max.X*float64(w))),
		int(math.Ceil(uv.Max.Y*float64(h))),
	)
	return r.Intersect(image.Rect(0, 0, w, h))
}
