package widget

import "image"

// RenderStyle carries ambient style hints from a parent to its children.
type RenderStyle struct {
	TextColor Color
}

// Quad is a filled rectangle with an optional border.
type Quad struct {
	Bounds       Rectangle
	BorderRadius float32
	BorderWidth  float32
	BorderColor  Color
}

// TextAlign places text on one axis of its bounds.
type TextAlign int

const (
	TextAlignStart TextAlign = iota
	TextAlignCenter
	TextAlignEnd
)

// Text is a single run of text to paint.
type Text struct {
	Content             string
	Bounds              Rectangle
	Color               Color
	Size                float32
	HorizontalAlignment TextAlign
	VerticalAlignment   TextAlign
}

// Renderer is the drawing surface the host provides to widgets.
type Renderer interface {
	// FillQuad paints q filled with background, then strokes its border.
	FillQuad(q Quad, background Color)

	// FillText paints a run of text.
	FillText(t Text)

	// DrawImage paints img scaled into bounds.
	DrawImage(img image.Image, bounds Rectangle)

	// MeasureText returns the extent of content rendered at size.
	MeasureText(content string, size float32) Size

	// DefaultTextSize is the text size used when a widget does not set one.
	DefaultTextSize() float32

	// PushClip limits painting to bounds, intersected with the current clip,
	// until the matching PopClip.
	PushClip(bounds Rectangle)
	PopClip()
}

// ClipStack tracks nested clip rectangles for a Renderer implementation.
// The zero value clips nothing.
type ClipStack struct {
	rects []Rectangle
}

// Push intersects bounds with the current clip and makes it current.
func (c *ClipStack) Push(bounds Rectangle) Rectangle {
	if top, ok := c.Current(); ok {
		bounds, _ = top.Intersection(bounds)
	}
	c.rects = append(c.rects, bounds)
	return bounds
}

// Pop restores the previous clip. Popping an empty stack does nothing.
func (c *ClipStack) Pop() {
	if len(c.rects) > 0 {
		c.rects = c.rects[:len(c.rects)-1]
	}
}

// Current returns the active clip. ok is false when nothing is clipped.
func (c *ClipStack) Current() (Rectangle, bool) {
	if len(c.rects) == 0 {
		return Rectangle{}, false
	}
	return c.rects[len(c.rects)-1], true
}

// Visible reports whether anything of r survives the clip.
func (c *ClipStack) Visible(r Rectangle) bool {
	top, ok := c.Current()
	if !ok {
		return true
	}
	_, overlap := top.Intersection(r)
	return overlap
}
