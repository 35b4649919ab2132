// Package text provides a widget that shows a single line of text.
package text

import "github.com/BrandonKowalski/massrename/pkg/widget"

// Text is a passive text label.
type Text[M any] struct {
	widget.Leaf[M]
	settings
	content string
}

type settings struct {
	size       float32
	color      *widget.Color
	width      widget.Length
	height     widget.Length
	horizontal widget.TextAlign
	vertical   widget.TextAlign
}

// Option configures a Text.
type Option func(*settings)

// New creates a label showing content. Without options it uses the
// renderer's default size and the colour its parent passes down.
func New[M any](content string, opts ...Option) *Text[M] {
	t := &Text[M]{
		settings: settings{
			width:  widget.Shrink,
			height: widget.Shrink,
		},
		content: content,
	}
	for _, opt := range opts {
		opt(&t.settings)
	}
	return t
}

// WithSize sets the text size in pixels.
func WithSize(size float32) Option {
	return func(s *settings) {
		s.size = size
	}
}

// WithColor fixes the colour, ignoring the one inherited from the parent.
func WithColor(c widget.Color) Option {
	return func(s *settings) {
		s.color = &c
	}
}

func WithWidth(width widget.Length) Option {
	return func(s *settings) {
		s.width = width
	}
}

func WithHeight(height widget.Length) Option {
	return func(s *settings) {
		s.height = height
	}
}

// WithHorizontalAlignment places the text within wider bounds.
func WithHorizontalAlignment(align widget.TextAlign) Option {
	return func(s *settings) {
		s.horizontal = align
	}
}

// WithVerticalAlignment places the text within taller bounds.
func WithVerticalAlignment(align widget.TextAlign) Option {
	return func(s *settings) {
		s.vertical = align
	}
}

// Content returns the label text.
func (t *Text[M]) Content() string {
	return t.content
}

func (t *Text[M]) Width() widget.Length  { return t.width }
func (t *Text[M]) Height() widget.Length { return t.height }

func (t *Text[M]) Layout(r widget.Renderer, limits widget.Limits) widget.Node {
	limits = limits.Width(t.width).Height(t.height)
	return widget.NewNode(limits.Resolve(r.MeasureText(t.content, t.textSize(r))))
}

func (t *Text[M]) Draw(r widget.Renderer, style widget.RenderStyle, layout widget.Layout, _ widget.Point, _ widget.Rectangle) {
	color := style.TextColor
	if t.color != nil {
		color = *t.color
	}

	r.FillText(widget.Text{
		Content:             t.content,
		Bounds:              layout.Bounds(),
		Color:               color,
		Size:                t.textSize(r),
		HorizontalAlignment: t.horizontal,
		VerticalAlignment:   t.vertical,
	})
}

func (t *Text[M]) textSize(r widget.Renderer) float32 {
	if t.size > 0 {
		return t.size
	}
	return r.DefaultTextSize()
}
