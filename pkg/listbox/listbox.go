// Package listbox provides a vertical list of widgets whose rows can be
// selected with the mouse or touch, singly, as a toggle set, or as a
// contiguous range, and deleted with the Delete key.
//
// A ListBox is cheap and is meant to be rebuilt every frame. The selection
// lives in a State that the application keeps and lends to each new
// ListBox:
//
//	lb := listbox.WithChildren(&app.listState, rows, func(mask []bool) Message {
//	    return FilesDeleted{Mask: mask}
//	}, listbox.WithSpacing(4))
package listbox

import (
	"math"

	"github.com/BrandonKowalski/massrename/pkg/widget"
	"github.com/BrandonKowalski/massrename/pkg/widget/flex"
)

// ListBox is a vertically stacked, multi-selectable container.
type ListBox[M any] struct {
	settings
	state    *State
	children []widget.Widget[M]
	onDelete func(mask []bool) M
}

type settings struct {
	style      StyleSheet
	maxWidth   uint32
	maxHeight  uint32
	width      widget.Length
	height     widget.Length
	padding    widget.Padding
	spacing    float32
	alignItems widget.Alignment
}

// Option configures a ListBox at construction.
type Option func(*settings)

// New creates an empty ListBox. onDelete builds the message published when
// the user deletes the selected rows; it receives the selection as it was
// before the deletion.
func New[M any](state *State, onDelete func(mask []bool) M, opts ...Option) *ListBox[M] {
	return WithChildren(state, nil, onDelete, opts...)
}

// WithChildren creates a ListBox holding children. The state is resized to
// track exactly len(children) rows.
func WithChildren[M any](state *State, children []widget.Widget[M], onDelete func(mask []bool) M, opts ...Option) *ListBox[M] {
	state.resize(len(children))

	l := &ListBox[M]{
		settings: settings{
			style:      DefaultStyle(),
			maxWidth:   math.MaxUint32,
			maxHeight:  math.MaxUint32,
			width:      widget.Fill,
			height:     widget.Fill,
			alignItems: widget.AlignStart,
		},
		state:    state,
		children: children,
		onDelete: onDelete,
	}

	for _, opt := range opts {
		opt(&l.settings)
	}

	return l
}

// WithStyle sets the style sheet.
func WithStyle(style StyleSheet) Option {
	return func(l *settings) {
		if style != nil {
			l.style = style
		}
	}
}

// WithMaxWidth caps the width in pixels.
func WithMaxWidth(maxWidth uint32) Option {
	return func(l *settings) {
		l.maxWidth = maxWidth
	}
}

// WithMaxHeight caps the height in pixels.
func WithMaxHeight(maxHeight uint32) Option {
	return func(l *settings) {
		l.maxHeight = maxHeight
	}
}

// WithWidth sets the horizontal sizing policy.
func WithWidth(width widget.Length) Option {
	return func(l *settings) {
		l.width = width
	}
}

// WithHeight sets the vertical sizing policy.
func WithHeight(height widget.Length) Option {
	return func(l *settings) {
		l.height = height
	}
}

// WithPadding sets the space between the border and the rows.
func WithPadding(padding widget.Padding) Option {
	return func(l *settings) {
		l.padding = padding
	}
}

// WithSpacing sets the vertical gap between rows.
func WithSpacing(units uint16) Option {
	return func(l *settings) {
		l.spacing = float32(units)
	}
}

// WithAlignItems sets the horizontal alignment of the rows.
func WithAlignItems(align widget.Alignment) Option {
	return func(l *settings) {
		l.alignItems = align
	}
}

// Push appends a row, tracked as unselected.
func (l *ListBox[M]) Push(child widget.Widget[M]) *ListBox[M] {
	l.children = append(l.children, child)
	l.state.push()
	return l
}

// Len returns the number of rows.
func (l *ListBox[M]) Len() int {
	return len(l.children)
}

func (l *ListBox[M]) Width() widget.Length {
	return l.width
}

func (l *ListBox[M]) Height() widget.Length {
	return l.height
}

// Layout stacks the rows top to bottom.
func (l *ListBox[M]) Layout(r widget.Renderer, limits widget.Limits) widget.Node {
	limits = limits.
		MaxWidth(l.maxWidth).
		MaxHeight(l.maxHeight).
		Width(l.width).
		Height(l.height)

	return flex.Resolve(flex.Vertical, r, limits, l.padding, l.spacing, l.alignItems, l.children)
}

func (l *ListBox[M]) MouseInteraction(layout widget.Layout, cursor widget.Point, viewport widget.Rectangle, r widget.Renderer) widget.Interaction {
	out := widget.InteractionIdle
	for i, childLayout := range layout.Children() {
		out = max(out, l.children[i].MouseInteraction(childLayout, cursor, viewport, r))
	}
	return out
}

func (l *ListBox[M]) Overlay(layout widget.Layout, r widget.Renderer) widget.Overlay[M] {
	for i, childLayout := range layout.Children() {
		if o := l.children[i].Overlay(childLayout, r); o != nil {
			return o
		}
	}
	return nil
}

func (l *ListBox[M]) selectionBounds(bounds, child widget.Rectangle, style Style) widget.Rectangle {
	return SelectionBounds(l.padding, l.spacing, bounds, child, style)
}
