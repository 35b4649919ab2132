// Package container lays children out in a line, either top to bottom
// (Column) or left to right (Row).
package container

import (
	"math"

	"github.com/BrandonKowalski/massrename/pkg/widget"
	"github.com/BrandonKowalski/massrename/pkg/widget/flex"
)

type settings struct {
	padding    widget.Padding
	spacing    float32
	width      widget.Length
	height     widget.Length
	maxWidth   uint32
	maxHeight  uint32
	alignItems widget.Alignment
}

// Option configures a Column or a Row.
type Option func(*settings)

func defaults() settings {
	return settings{
		width:      widget.Shrink,
		height:     widget.Shrink,
		maxWidth:   math.MaxUint32,
		maxHeight:  math.MaxUint32,
		alignItems: widget.AlignStart,
	}
}

func WithPadding(padding widget.Padding) Option {
	return func(s *settings) { s.padding = padding }
}

// WithSpacing sets the gap between consecutive children.
func WithSpacing(units uint16) Option {
	return func(s *settings) { s.spacing = float32(units) }
}

func WithWidth(width widget.Length) Option {
	return func(s *settings) { s.width = width }
}

func WithHeight(height widget.Length) Option {
	return func(s *settings) { s.height = height }
}

func WithMaxWidth(maxWidth uint32) Option {
	return func(s *settings) { s.maxWidth = maxWidth }
}

func WithMaxHeight(maxHeight uint32) Option {
	return func(s *settings) { s.maxHeight = maxHeight }
}

// WithAlignItems sets the alignment of children on the cross axis.
func WithAlignItems(align widget.Alignment) Option {
	return func(s *settings) { s.alignItems = align }
}

// line is the behaviour Column and Row share.
type line[M any] struct {
	settings
	axis     flex.Axis
	children []widget.Widget[M]
}

func newLine[M any](axis flex.Axis, children []widget.Widget[M], opts []Option) line[M] {
	l := line[M]{settings: defaults(), axis: axis, children: children}
	for _, opt := range opts {
		opt(&l.settings)
	}
	return l
}

func (l *line[M]) Width() widget.Length  { return l.width }
func (l *line[M]) Height() widget.Length { return l.height }

func (l *line[M]) Layout(r widget.Renderer, limits widget.Limits) widget.Node {
	limits = limits.
		MaxWidth(l.maxWidth).
		MaxHeight(l.maxHeight).
		Width(l.width).
		Height(l.height)

	return flex.Resolve(l.axis, r, limits, l.padding, l.spacing, l.alignItems, l.children)
}

func (l *line[M]) Draw(r widget.Renderer, style widget.RenderStyle, layout widget.Layout, cursor widget.Point, viewport widget.Rectangle) {
	for i, childLayout := range layout.Children() {
		l.children[i].Draw(r, style, childLayout, cursor, viewport)
	}
}

func (l *line[M]) OnEvent(ev widget.Event, layout widget.Layout, cursor widget.Point, r widget.Renderer, clipboard widget.Clipboard, shell *widget.Shell[M]) widget.Status {
	status := widget.Ignored
	for i, childLayout := range layout.Children() {
		status = status.Merge(l.children[i].OnEvent(ev, childLayout, cursor, r, clipboard, shell))
	}
	return status
}

func (l *line[M]) MouseInteraction(layout widget.Layout, cursor widget.Point, viewport widget.Rectangle, r widget.Renderer) widget.Interaction {
	out := widget.InteractionIdle
	for i, childLayout := range layout.Children() {
		out = max(out, l.children[i].MouseInteraction(childLayout, cursor, viewport, r))
	}
	return out
}

func (l *line[M]) Overlay(layout widget.Layout, r widget.Renderer) widget.Overlay[M] {
	for i, childLayout := range layout.Children() {
		if o := l.children[i].Overlay(childLayout, r); o != nil {
			return o
		}
	}
	return nil
}

func (l *line[M]) push(child widget.Widget[M]) {
	l.children = append(l.children, child)
}

// Column stacks children vertically.
type Column[M any] struct {
	line[M]
}

// NewColumn creates a column of children.
func NewColumn[M any](children []widget.Widget[M], opts ...Option) *Column[M] {
	return &Column[M]{line: newLine(flex.Vertical, children, opts)}
}

// Push appends a child.
func (c *Column[M]) Push(child widget.Widget[M]) *Column[M] {
	c.push(child)
	return c
}

// Row places children side by side.
type Row[M any] struct {
	line[M]
}

// NewRow creates a row of children.
func NewRow[M any](children []widget.Widget[M], opts ...Option) *Row[M] {
	return &Row[M]{line: newLine(flex.Horizontal, children, opts)}
}

// Push appends a child.
func (r *Row[M]) Push(child widget.Widget[M]) *Row[M] {
	r.push(child)
	return r
}
