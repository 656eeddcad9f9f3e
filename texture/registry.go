// Package texture keeps decoded images addressable by paint.ImageID.
//
// A Registry is the host's image store: canvas.Canvas draws from it and
// ggplot.Backend asks it for native image sizes when sizing a background.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"sort"
	"sync"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/paint"
)

// ErrUnknownImage is returned when an ImageID is not registered.
var ErrUnknownImage = errors.New("texture: unknown image")

// entry is one registered image.
type entry struct {
	buf  *gg.ImageBuf
	name string
}

// Registry maps ImageIDs to decoded images.
//
// Registry is safe for concurrent use. Size lookups take a read lock
// for the duration of the lookup only.
type Registry struct {
	mu     sync.RWMutex
	next   paint.ImageID
	images map[paint.ImageID]entry
}

var _ ggplot.ImageLookup = (*Registry)(nil)

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		next:   paint.NoImage + 1,
		images: make(map[paint.ImageID]entry),
	}
}

// Add registers an image buffer under name and returns its handle.
func (r *Registry) Add(name string, buf *gg.ImageBuf) paint.ImageID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.next++
	r.images[id] = entry{buf: buf, name: name}
	return id
}

// AddImage registers a standard library image.
func (r *Registry) AddImage(name string, img image.Image) paint.ImageID {
	return r.Add(name, gg.ImageBufFromImage(img))
}

// Decode reads an image in any registered format and adds it.
func (r *Registry) Decode(name string, rd io.Reader) (paint.ImageID, error) {
	img, format, err := image.Decode(rd)
	if err != nil {
		return paint.NoImage, fmt.Errorf("texture: decode %q: %w", name, err)
	}
	id := r.AddImage(name, img)
	ggplot.Logger().Debug("texture: image added", "name", name, "format", format, "id", id)
	return id, nil
}

// Load decodes an image file and adds it under its path.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func (r *Registry) Load(path string) (paint.ImageID, error) {
	// #nosec G304 -- image path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return paint.NoImage, fmt.Errorf("texture: open image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return r.Decode(path, f)
}

// Remove unregisters an image. Removing an unknown id is a no-op.
func (r *Registry) Remove(id paint.ImageID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.images, id)
}

// Image returns the buffer registered under id.
func (r *Registry) Image(id paint.ImageID) (*gg.ImageBuf, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.images[id]
	return e.buf, ok
}

// ImageSize implements ggplot.ImageLookup.
func (r *Registry) ImageSize(id paint.ImageID) (width, height int, ok bool) {
	r.mu.RLock()
	e, ok := r.images[id]
	r.mu.RUnlock()
	if !ok {
		return 0, 0, false
	}
	width, height = e.buf.Bounds()
	return width, height, true
}

// Name returns the name an image was registered under.
func (r *Registry) Name(id paint.ImageID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.images[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownImage, id)
	}
	return e.name, nil
}

// IDs returns the registered handles in ascending order.
func (r *Registry) IDs() []paint.ImageID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]paint.ImageID, 0, len(r.images))
	for id := range r.images {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of registered images.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images)
}
