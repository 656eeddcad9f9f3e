package fonts

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/paint"
)

func newBook(t *testing.T) *Book {
	t.Helper()
	b, err := NewBook()
	require.NoError(t, err)
	return b
}

func TestDefaultFamilies(t *testing.T) {
	b := newBook(t)

	prop := b.Source(paint.Proportional)
	mono := b.Source(paint.Monospace)
	require.NotNil(t, prop)
	require.NotNil(t, mono)
	assert.NotSame(t, prop, mono)
}

func TestUnknownFamilyFallsBack(t *testing.T) {
	b := newBook(t)
	assert.Same(t, b.Source(paint.Proportional), b.Source(paint.Named("No Such Font")))
	assert.False(t, b.Has("No Such Font"))
}

func TestUnknownFamilyLogsWarning(t *testing.T) {
	orig := ggplot.Logger()
	t.Cleanup(func() { ggplot.SetLogger(orig) })

	var buf bytes.Buffer
	ggplot.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	b := newBook(t)
	b.Source(paint.Named("No Such Font"))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "No Such Font")
}

func TestRegisterDataUsesDeclaredFamily(t *testing.T) {
	b := newBook(t)

	name, err := b.RegisterData("", gomono.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go Mono", name)

	assert.True(t, b.Has("go mono"))
	assert.True(t, b.Has("GO MONO"))
	assert.NotSame(t, b.Source(paint.Proportional), b.Source(paint.Named("Go mono")))
}

func TestRegisterDataExplicitName(t *testing.T) {
	b := newBook(t)

	name, err := b.RegisterData("Body", goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Body", name)
	assert.True(t, b.Has("body"))
}

func TestRegisterDataInvalid(t *testing.T) {
	b := newBook(t)

	_, err := b.RegisterData("", []byte("not a font"))
	assert.Error(t, err)
	_, err = b.RegisterData("Broken", []byte("not a font"))
	assert.Error(t, err)
	assert.False(t, b.Has("Broken"))
}

func TestRegisterFile(t *testing.T) {
	b := newBook(t)
	path := filepath.Join(t.TempDir(), "mono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0o600))

	name, err := b.RegisterFile("Code", path)
	require.NoError(t, err)
	assert.Equal(t, "Code", name)

	_, err = b.RegisterFile("Missing", filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	b := newBook(t)
	id := paint.FontID{Size: 16, Family: paint.Proportional}

	w, h, ascent := b.Measure("Hello", id)
	assert.Positive(t, w)
	assert.Positive(t, h)
	assert.Positive(t, ascent)
	assert.LessOrEqual(t, ascent, h)

	w2, _, _ := b.Measure("Hello, world", id)
	assert.Greater(t, w2, w)

	w, h, ascent = b.Measure("", id)
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Zero(t, ascent)

	w, _, _ = b.Measure("Hello", paint.FontID{Size: 0})
	assert.Zero(t, w)
	assert.Nil(t, b.Face(paint.FontID{Size: -1}))
}

func TestMonospaceAdvance(t *testing.T) {
	b := newBook(t)
	mono := paint.FontID{Size: 12, Family: paint.Monospace}
	prop := paint.FontID{Size: 12, Family: paint.Proportional}

	narrow, _, _ := b.Measure("iiii", mono)
	wide, _, _ := b.Measure("MMMM", mono)
	assert.InDelta(t, narrow, wide, 1e-6)

	narrow, _, _ = b.Measure("iiii", prop)
	wide, _, _ = b.Measure("MMMM", prop)
	assert.Less(t, narrow, wide)
}

func TestBookConcurrentUse(t *testing.T) {
	b := newBook(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = b.RegisterData("Shared", goregular.TTF)
				return
			}
			b.Measure("abc", paint.FontID{Size: 10, Family: paint.Named("shared")})
		}()
	}
	wg.Wait()
	assert.True(t, b.Has("shared"))
}
