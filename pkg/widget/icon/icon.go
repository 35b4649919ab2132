// Package icon provides a widget that shows a square SVG icon.
//
// SVG documents are rasterised once per (name, size) and kept for the life
// of the process, since widget trees are rebuilt every frame.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/BrandonKowalski/massrename/internal/logging"
	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// Source is a named SVG document. The name identifies the raster in the
// cache, so two sources with the same name must carry the same data.
type Source struct {
	Name string
	Data []byte
}

type cacheKey struct {
	name string
	size int
}

var rasters sync.Map // cacheKey -> *image.RGBA

// Rasterize renders src into a size×size image.
func Rasterize(src Source, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon %q: invalid size %d", src.Name, size)
	}

	key := cacheKey{name: src.Name, size: size}
	if cached, ok := rasters.Load(key); ok {
		return cached.(*image.RGBA), nil
	}

	svg, err := oksvg.ReadIconStream(bytes.NewReader(src.Data))
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", src.Name, err)
	}

	svg.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	svg.Draw(rasterx.NewDasher(size, size, scanner), 1)

	actual, _ := rasters.LoadOrStore(key, rgba)
	return actual.(*image.RGBA), nil
}

// Icon is a passive square image widget.
type Icon[M any] struct {
	widget.Leaf[M]
	source Source
	size   uint16
}

// New creates an icon drawn at size pixels square.
func New[M any](source Source, size uint16) *Icon[M] {
	return &Icon[M]{source: source, size: size}
}

func (i *Icon[M]) Width() widget.Length  { return widget.Units(i.size) }
func (i *Icon[M]) Height() widget.Length { return widget.Units(i.size) }

func (i *Icon[M]) Layout(_ widget.Renderer, limits widget.Limits) widget.Node {
	limits = limits.Width(i.Width()).Height(i.Height())
	side := float32(i.size)
	return widget.NewNode(limits.Resolve(widget.Size{Width: side, Height: side}))
}

func (i *Icon[M]) Draw(r widget.Renderer, _ widget.RenderStyle, layout widget.Layout, _ widget.Point, _ widget.Rectangle) {
	img, err := Rasterize(i.source, int(i.size))
	if err != nil {
		logging.GetInternalLogger().Error("icon rasterize failed", "icon", i.source.Name, "error", err)
		return
	}
	r.DrawImage(img, layout.Bounds())
}
