package sdlhost

import (
	"image"
	"image/draw"
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/massrename/internal/logging"
	"github.com/BrandonKowalski/massrename/pkg/widget"
)

const (
	textCacheSize  = 512
	imageCacheSize = 64
)

type textKey struct {
	content string
	size    int
	color   widget.Color
}

// renderer paints widget draw commands with an SDL renderer.
type renderer struct {
	sdl      *sdl.Renderer
	fonts    *fontSet
	textSize int
	texts    *textureCache[textKey]
	images   *textureCache[image.Image]
	clip     widget.ClipStack
}

var _ widget.Renderer = (*renderer)(nil)

func newRenderer(r *sdl.Renderer, fonts *fontSet, textSize int) *renderer {
	return &renderer{
		sdl:      r,
		fonts:    fonts,
		textSize: textSize,
		texts:    newTextureCache[textKey](textCacheSize),
		images:   newTextureCache[image.Image](imageCacheSize),
	}
}

func (r *renderer) clear(c widget.Color) {
	r.setColor(c)
	r.sdl.Clear()
}

func (r *renderer) setColor(c widget.Color) {
	red, green, blue, alpha := c.RGBA8()
	r.sdl.SetDrawColor(red, green, blue, alpha)
}

func (r *renderer) FillQuad(q widget.Quad, background widget.Color) {
	if !r.clip.Visible(q.Bounds) {
		return
	}
	hasBorder := q.BorderWidth > 0 && !q.BorderColor.IsTransparent()

	if q.BorderRadius <= 0 && !hasBorder {
		if background.IsTransparent() {
			return
		}
		r.setColor(background)
		b := q.Bounds
		r.sdl.FillRectF(&sdl.FRect{X: b.X, Y: b.Y, W: b.Width, H: b.Height})
		return
	}

	fill, border := widget.QuadSpans(q)
	if !background.IsTransparent() {
		r.fillSpans(fill, background)
	}
	if hasBorder {
		r.fillSpans(border, q.BorderColor)
	}
}

func (r *renderer) fillSpans(spans []widget.Span, c widget.Color) {
	if len(spans) == 0 {
		return
	}
	rects := make([]sdl.FRect, len(spans))
	for i, s := range spans {
		rects[i] = sdl.FRect{X: s.X0, Y: s.Y, W: s.Width(), H: 1}
	}
	r.setColor(c)
	r.sdl.FillRectsF(rects)
}

func (r *renderer) FillText(t widget.Text) {
	if t.Content == "" || t.Color.IsTransparent() || !r.clip.Visible(t.Bounds) {
		return
	}

	size := r.pixelSize(t.Size)
	texture := r.textTexture(textKey{content: t.Content, size: size, color: t.Color})
	if texture == nil {
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	b := t.Bounds
	width, height := min(float32(w), b.Width), min(float32(h), b.Height)
	x := b.X + offset(t.HorizontalAlignment, b.Width, width)
	y := b.Y + offset(t.VerticalAlignment, b.Height, height)

	src := &sdl.Rect{W: int32(width), H: int32(height)}
	r.sdl.CopyF(texture, src, &sdl.FRect{X: x, Y: y, W: float32(src.W), H: float32(src.H)})
}

func offset(align widget.TextAlign, space, extent float32) float32 {
	switch align {
	case widget.TextAlignCenter:
		return (space - extent) / 2
	case widget.TextAlignEnd:
		return space - extent
	default:
		return 0
	}
}

func (r *renderer) textTexture(key textKey) *sdl.Texture {
	if texture := r.texts.get(key); texture != nil {
		return texture
	}

	font, err := r.fonts.get(key.size)
	if err != nil {
		logging.GetInternalLogger().Error("Font unavailable", "size", key.size, "error", err)
		return nil
	}

	red, green, blue, alpha := key.color.RGBA8()
	surface, err := font.RenderUTF8Blended(key.content, sdl.Color{R: red, G: green, B: blue, A: alpha})
	if err != nil {
		logging.GetInternalLogger().Error("Failed to render text", "text", key.content, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := r.sdl.CreateTextureFromSurface(surface)
	if err != nil {
		logging.GetInternalLogger().Error("Failed to create text texture", "error", err)
		return nil
	}

	r.texts.set(key, texture)
	return texture
}

// DrawImage caches the uploaded texture by img, so img must be comparable
// and unchanging, such as the *image.RGBA the icon cache hands out.
func (r *renderer) DrawImage(img image.Image, bounds widget.Rectangle) {
	if !r.clip.Visible(bounds) {
		return
	}
	texture := r.images.get(img)
	if texture == nil {
		var err error
		if texture, err = r.imageTexture(img); err != nil {
			logging.GetInternalLogger().Error("Failed to upload image", "error", err)
			return
		}
		r.images.set(img, texture)
	}

	r.sdl.CopyF(texture, nil, &sdl.FRect{X: bounds.X, Y: bounds.Y, W: bounds.Width, H: bounds.Height})
}

// imageTexture uploads img as straight-alpha RGBA, which is what SDL's
// blend mode expects.
func (r *renderer) imageTexture(img image.Image) (*sdl.Texture, error) {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(b.Dx()), int32(b.Dy()), 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < b.Dy(); y++ {
		copy(pixels[y*pitch:y*pitch+nrgba.Stride], nrgba.Pix[y*nrgba.Stride:(y+1)*nrgba.Stride])
	}

	texture, err := r.sdl.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// PushClip also culls commands wholly outside the clip, since SDL treats an
// empty clip rectangle as no clip at all.
func (r *renderer) PushClip(bounds widget.Rectangle) {
	r.applyClip(r.clip.Push(bounds), true)
}

func (r *renderer) PopClip() {
	r.clip.Pop()
	r.applyClip(r.clip.Current())
}

func (r *renderer) applyClip(bounds widget.Rectangle, ok bool) {
	if !ok {
		r.sdl.SetClipRect(nil)
		return
	}
	x, y := int32(math.Floor(float64(bounds.X))), int32(math.Floor(float64(bounds.Y)))
	r.sdl.SetClipRect(&sdl.Rect{
		X: x,
		Y: y,
		W: int32(math.Ceil(float64(bounds.Right()))) - x,
		H: int32(math.Ceil(float64(bounds.Bottom()))) - y,
	})
}

func (r *renderer) MeasureText(content string, size float32) widget.Size {
	px := r.pixelSize(size)
	font, err := r.fonts.get(px)
	if err != nil {
		return widget.Size{Height: float32(px)}
	}
	if content == "" {
		return widget.Size{Height: float32(font.Height())}
	}

	w, h, err := font.SizeUTF8(content)
	if err != nil {
		return widget.Size{Height: float32(font.Height())}
	}
	return widget.Size{Width: float32(w), Height: float32(h)}
}

func (r *renderer) DefaultTextSize() float32 {
	return float32(r.textSize)
}

func (r *renderer) pixelSize(size float32) int {
	if size <= 0 {
		return r.textSize
	}
	return int(size + 0.5)
}

func (r *renderer) destroy() {
	r.texts.destroy()
	r.images.destroy()
}
