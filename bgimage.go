package ggplot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/paint"
)

// ErrInvalidImageSize is returned by ParseImageSize for malformed input.
var ErrInvalidImageSize = errors.New("ggplot: invalid image size")

// ImageLookup reports the native pixel size of a host image.
type ImageLookup interface {
	// ImageSize returns ok == false when the image is unknown.
	ImageSize(id paint.ImageID) (width, height int, ok bool)
}

// imageSizeKind enumerates the sizing policies.
type imageSizeKind uint8

const (
	sizeFill imageSizeKind = iota
	sizeRatio
	sizeFit
	sizeOriginal
	sizeExact
)

// ImageSize is the policy that decides where a background image is drawn
// relative to the chart bounds. The zero value is SizeFill.
type ImageSize struct {
	kind imageSizeKind
	w, h float64
}

// SizeFill stretches the image over the whole bounds.
func SizeFill() ImageSize { return ImageSize{kind: sizeFill} }

// SizeRatio draws the largest w:h rectangle that fits the bounds, centered.
func SizeRatio(w, h float64) ImageSize { return ImageSize{kind: sizeRatio, w: w, h: h} }

// SizeFit is SizeRatio with the image's native aspect ratio.
func SizeFit() ImageSize { return ImageSize{kind: sizeFit} }

// SizeOriginal draws the image at its native size, centered.
func SizeOriginal() ImageSize { return ImageSize{kind: sizeOriginal} }

// SizeExact draws the image at exactly w by h, centered.
func SizeExact(w, h float64) ImageSize { return ImageSize{kind: sizeExact, w: w, h: h} }

// Rect computes the destination rectangle of image id inside bounds.
// lookup may be nil, in which case the native size is unknown.
//
// Rect never fails: degenerate ratios and unknown images yield bounds.
func (s ImageSize) Rect(bounds paint.Rect, id paint.ImageID, lookup ImageLookup) paint.Rect {
	switch s.kind {
	case sizeRatio:
		return ratioRect(bounds, s.w, s.h)
	case sizeFit:
		w, h, ok := nativeSize(id, lookup)
		if !ok {
			return bounds
		}
		return ratioRect(bounds, float64(w), float64(h))
	case sizeOriginal:
		w, h, ok := nativeSize(id, lookup)
		if !ok {
			return bounds
		}
		return paint.RectFromCenterSize(bounds.Center(), gg.Pt(float64(w), float64(h)))
	case sizeExact:
		return paint.RectFromCenterSize(bounds.Center(), gg.Pt(s.w, s.h))
	default:
		return bounds
	}
}

// nativeSize looks up the pixel size of image id. Missing lookups and
// unknown images are logged and reported as !ok.
func nativeSize(id paint.ImageID, lookup ImageLookup) (w, h int, ok bool) {
	if lookup == nil {
		Logger().Debug("ggplot: no image lookup, using bounds", "image", id)
		return 0, 0, false
	}
	if w, h, ok = lookup.ImageSize(id); !ok {
		Logger().Debug("ggplot: unknown image size, using bounds", "image", id)
	}
	return w, h, ok
}

// ratioRect returns the largest rectangle with aspect w:h that fits inside
// bounds, centered on it.
func ratioRect(bounds paint.Rect, w, h float64) paint.Rect {
	bw, bh := bounds.Width(), bounds.Height()
	if bw == 0 || bh == 0 || w == 0 || h == 0 {
		return bounds
	}

	candidate := gg.Pt(w, h).Normalize().Mul(math.Max(bw, bh))
	scale := math.Min(bw/candidate.X, bh/candidate.Y)

	return paint.RectFromCenterSize(bounds.Center(), candidate.Mul(scale))
}

// String returns the policy in the syntax ParseImageSize accepts.
func (s ImageSize) String() string {
	switch s.kind {
	case sizeRatio:
		return "ratio:" + formatFloat(s.w) + ":" + formatFloat(s.h)
	case sizeFit:
		return "fit"
	case sizeOriginal:
		return "original"
	case sizeExact:
		return "exact:" + formatFloat(s.w) + "x" + formatFloat(s.h)
	default:
		return "fill"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ImageSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ImageSize) UnmarshalText(b []byte) error {
	v, err := ParseImageSize(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseImageSize parses "fill", "fit", "original", "ratio:W:H" or
// "exact:WxH". Matching is case-insensitive.
func ParseImageSize(s string) (ImageSize, error) {
	name, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch name {
	case "fill", "fit", "original":
		if args != "" {
			return ImageSize{}, fmt.Errorf("%w: %q takes no arguments", ErrInvalidImageSize, name)
		}
		switch name {
		case "fit":
			return SizeFit(), nil
		case "original":
			return SizeOriginal(), nil
		}
		return SizeFill(), nil
	case "ratio":
		w, h, err := parsePair(args, ":")
		if err != nil {
			return ImageSize{}, err
		}
		return SizeRatio(w, h), nil
	case "exact":
		w, h, err := parsePair(args, "x")
		if err != nil {
			return ImageSize{}, err
		}
		return SizeExact(w, h), nil
	default:
		return ImageSize{}, fmt.Errorf("%w: unknown policy %q", ErrInvalidImageSize, s)
	}
}

func parsePair(s, sep string) (a, b float64, err error) {
	left, right, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("%w: want two values separated by %q, got %q", ErrInvalidImageSize, sep, s)
	}
	if a, err = parseFinite(left); err != nil {
		return 0, 0, err
	}
	if b, err = parseFinite(right); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// parseFinite parses a float, rejecting NaN and infinities.
func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidImageSize, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidImageSize, s)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// BackgroundImage paints image id behind the chart, sized by size, and
// returns b for chaining. The image is painted immediately, so call this
// before issuing chart commands.
func (b *Backend) BackgroundImage(id paint.ImageID, size ImageSize) *Backend {
	r := size.Rect(b.bounds, id, b.lookup)
	b.painter.Image(id, r, paint.UnitRect, paint.White)
	return b
}
