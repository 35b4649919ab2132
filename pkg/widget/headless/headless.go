// Package headless provides a widget.Renderer that paints nothing and
// records every draw command. It backs tests and layout dumps.
package headless

import (
	"fmt"
	"image"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/massrename/pkg/widget"
)

// DefaultTextSize is the text size reported when none is configured.
const DefaultTextSize float32 = 16

// OpKind identifies a recorded draw command.
type OpKind int

const (
	OpQuad OpKind = iota
	OpText
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpQuad:
		return "quad"
	case OpText:
		return "text"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Op is one recorded draw command. Only the fields relevant to Kind are set.
type Op struct {
	Kind       OpKind
	Quad       widget.Quad
	Background widget.Color
	Text       widget.Text
	Image      image.Image
	Bounds     widget.Rectangle
}

// Renderer records draw commands in order.
//
// Text is measured on a monospace grid: each terminal cell is half the text
// size wide and a line is one text size tall. Commands that fall entirely
// outside the current clip are not recorded.
type Renderer struct {
	ops      []Op
	textSize float32
	clip     widget.ClipStack
}

// New creates a renderer using DefaultTextSize.
func New() *Renderer {
	return &Renderer{textSize: DefaultTextSize}
}

// NewWithTextSize creates a renderer with a custom default text size.
func NewWithTextSize(size float32) *Renderer {
	return &Renderer{textSize: size}
}

func (r *Renderer) FillQuad(q widget.Quad, background widget.Color) {
	r.record(Op{Kind: OpQuad, Quad: q, Background: background, Bounds: q.Bounds})
}

func (r *Renderer) FillText(t widget.Text) {
	r.record(Op{Kind: OpText, Text: t, Bounds: t.Bounds})
}

func (r *Renderer) DrawImage(img image.Image, bounds widget.Rectangle) {
	r.record(Op{Kind: OpImage, Image: img, Bounds: bounds})
}

func (r *Renderer) PushClip(bounds widget.Rectangle) {
	r.clip.Push(bounds)
}

func (r *Renderer) PopClip() {
	r.clip.Pop()
}

func (r *Renderer) record(op Op) {
	if r.clip.Visible(op.Bounds) {
		r.ops = append(r.ops, op)
	}
}

func (r *Renderer) MeasureText(content string, size float32) widget.Size {
	if size <= 0 {
		size = r.textSize
	}
	cells := runewidth.StringWidth(content)
	return widget.Size{Width: float32(cells) * size / 2, Height: size}
}

func (r *Renderer) DefaultTextSize() float32 {
	return r.textSize
}

// Ops returns the recorded commands.
func (r *Renderer) Ops() []Op {
	return r.ops
}

// OpsOf returns the recorded commands of one kind.
func (r *Renderer) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets all recorded commands.
func (r *Renderer) Reset() {
	r.ops = r.ops[:0]
	r.clip = widget.ClipStack{}
}

// Dump writes one line per recorded command.
func (r *Renderer) Dump(w io.Writer) error {
	for i, op := range r.ops {
		b := op.Bounds
		var err error
		switch op.Kind {
		case OpQuad:
			_, err = fmt.Fprintf(w, "%3d quad  (%g,%g %gx%g) bg=%s border=%g/%s radius=%g\n",
				i, b.X, b.Y, b.Width, b.Height, op.Background.Hex(),
				op.Quad.BorderWidth, op.Quad.BorderColor.Hex(), op.Quad.BorderRadius)
		case OpText:
			_, err = fmt.Fprintf(w, "%3d text  (%g,%g %gx%g) color=%s %q\n",
				i, b.X, b.Y, b.Width, b.Height, op.Text.Color.Hex(), op.Text.Content)
		case OpImage:
			_, err = fmt.Fprintf(w, "%3d image (%g,%g %gx%g)\n", i, b.X, b.Y, b.Width, b.Height)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
