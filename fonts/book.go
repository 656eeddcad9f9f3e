// Package fonts resolves host font families to gg font sources and measures
// text with them.
//
// A Book always knows the proportional and monospace families (the Go fonts
// from golang.org/x/image/font/gofont). Named families are registered by the
// application; lookups by name are case-insensitive.
package fonts

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/paint"
)

// ErrNoFamilyName is returned by RegisterData when no name is given and the
// font does not declare a family.
var ErrNoFamilyName = errors.New("fonts: font has no family name")

// Book maps host font families to font sources.
//
// Book is safe for concurrent use.
type Book struct {
	mu           sync.RWMutex
	proportional *text.FontSource
	monospace    *text.FontSource
	named        map[string]*text.FontSource
}

// NewBook creates a Book with the Go fonts as proportional and monospace
// defaults.
func NewBook() (*Book, error) {
	prop, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: load proportional: %w", err)
	}
	mono, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: load monospace: %w", err)
	}
	return &Book{
		proportional: prop,
		monospace:    mono,
		named:        make(map[string]*text.FontSource),
	}, nil
}

// familyKey folds name so that lookups ignore case.
func familyKey(name string) string {
	return cases.Fold().String(name)
}

// Register adds src under name, replacing any family of the same name.
func (b *Book) Register(name string, src *text.FontSource) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.named[familyKey(name)] = src
}

// RegisterData parses a TTF/OTF font and registers it under name. When name
// is empty the family name declared by the font is used. It returns the name
// the font was registered under.
func (b *Book) RegisterData(name string, data []byte) (string, error) {
	if name == "" {
		face, err := gotext.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("fonts: parse font: %w", err)
		}
		name = face.Describe().Family
		if name == "" {
			return "", ErrNoFamilyName
		}
	}

	src, err := text.NewFontSource(data)
	if err != nil {
		return "", fmt.Errorf("fonts: load %q: %w", name, err)
	}
	b.Register(name, src)
	return name, nil
}

// RegisterFile reads a font file and registers it like RegisterData.
func (b *Book) RegisterFile(name, path string) (string, error) {
	// #nosec G304 -- font path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fonts: read font file: %w", err)
	}
	return b.RegisterData(name, data)
}

// Has reports whether a named family is registered.
func (b *Book) Has(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.named[familyKey(name)]
	return ok
}

// Source returns the font source for a family. Unknown named families fall
// back to the proportional default.
func (b *Book) Source(f paint.FontFamily) *text.FontSource {
	switch f.Kind {
	case paint.KindMonospace:
		return b.monospace
	case paint.KindNamed:
		b.mu.RLock()
		src, ok := b.named[familyKey(f.Name)]
		b.mu.RUnlock()
		if ok {
			return src
		}
		ggplot.Logger().Warn("fonts: unknown family, using proportional", "family", f.Name)
	}
	return b.proportional
}

// Face returns a face for the font. A non-positive size yields nil.
func (b *Book) Face(id paint.FontID) text.Face {
	if id.Size <= 0 {
		return nil
	}
	return b.Source(id.Family).Face(id.Size)
}

// Measure implements shape.Measurer. It returns the advance width, the line
// height and the ascent of a single line of text.
func (b *Book) Measure(s string, id paint.FontID) (width, height, ascent float64) {
	face := b.Face(id)
	if face == nil || s == "" {
		return 0, 0, 0
	}
	width, height = text.Measure(s, face)
	return width, height, face.Metrics().Ascent
}
